package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"listing-admin-service/internal/constants"
	"listing-admin-service/internal/contextkeys"
	"listing-admin-service/internal/core/domain"
	"listing-admin-service/internal/core/port"
	"listing-admin-service/pkg/rabbitmq"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// listingCreatedDTO - тело события listing.created
type listingCreatedDTO struct {
	ID       uuid.UUID       `json:"id"`
	Category domain.Category `json:"category"`
	Address  string          `json:"address"`
	Status   domain.Status   `json:"status"`
}

// listingUpdatedDTO - тело события listing.updated
type listingUpdatedDTO struct {
	ID     uuid.UUID `json:"id"`
	Fields []string  `json:"fields"`
}

// statusChangedDTO - тело события listing.status
type statusChangedDTO struct {
	ID     uuid.UUID     `json:"id"`
	Status domain.Status `json:"status"`
}

// listingDeletedDTO - тело события listing.deleted
type listingDeletedDTO struct {
	ID uuid.UUID `json:"id"`
}

// ListingEventsAdapter публикует события об объявлениях в RabbitMQ.
type ListingEventsAdapter struct {
	producer *rabbitmq.Publisher
}

func NewListingEventsAdapter(producer *rabbitmq.Publisher) (*ListingEventsAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	return &ListingEventsAdapter{producer: producer}, nil
}

func (a *ListingEventsAdapter) ListingCreated(ctx context.Context, listing domain.Listing) error {
	dto := listingCreatedDTO{
		ID:       listing.ID,
		Category: listing.Category,
		Address:  listing.Address,
		Status:   listing.Status,
	}
	return a.publish(ctx, constants.RoutingKeyListingCreated, dto)
}

func (a *ListingEventsAdapter) ListingUpdated(ctx context.Context, id uuid.UUID, fields []domain.Field) error {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, string(f))
	}
	return a.publish(ctx, constants.RoutingKeyListingUpdated, listingUpdatedDTO{ID: id, Fields: names})
}

func (a *ListingEventsAdapter) StatusChanged(ctx context.Context, id uuid.UUID, status domain.Status) error {
	return a.publish(ctx, constants.RoutingKeyListingStatus, statusChangedDTO{ID: id, Status: status})
}

func (a *ListingEventsAdapter) ListingDeleted(ctx context.Context, id uuid.UUID) error {
	return a.publish(ctx, constants.RoutingKeyListingDeleted, listingDeletedDTO{ID: id})
}

func (a *ListingEventsAdapter) publish(ctx context.Context, routingKey string, dto any) error {
	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":   "ListingEventsAdapter",
		"routing_key": routingKey,
	})

	body, _ := json.Marshal(dto)

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent, // Для сохранения сообщений при перезапуске брокера
		Timestamp:    time.Now(),
		Headers:      make(amqp.Table),
	}

	traceID := contextkeys.TraceIDFromContext(ctx)
	if traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	// Таймаут на операцию публикации, если контекст его не предоставляет
	publishCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err := a.producer.Publish(publishCtx, routingKey, msg)
	if err != nil {
		adapterLogger.Error("Failed to publish listing event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish event %s: %w", routingKey, err)
	}

	adapterLogger.Debug("Published listing event", nil)
	return nil
}
