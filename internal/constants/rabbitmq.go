package constants

// Обменник для событий об изменениях объявлений
const (
	ListingEventsExchange = "listing_events_exchange"
)

// Ключи маршрутизации
const (
	RoutingKeyListingCreated = "listing.created"
	RoutingKeyListingUpdated = "listing.updated"
	RoutingKeyListingStatus  = "listing.status"
	RoutingKeyListingDeleted = "listing.deleted"
)
