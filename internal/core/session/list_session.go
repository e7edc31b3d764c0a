// Package session моделирует состояние "текущий запрос / текущее
// редактирование" явным объектом с определенными переходами вместо
// разрозненных глобальных флагов loading/editing.
package session

import (
	"sync"

	"listing-admin-service/internal/core/domain"

	"github.com/google/uuid"
)

// LoadState - состояние загрузки списка.
type LoadState int8

const (
	LoadIdle LoadState = iota
	LoadLoading
	LoadLoaded
	LoadErrored
)

func (s LoadState) String() string {
	switch s {
	case LoadIdle:
		return "idle"
	case LoadLoading:
		return "loading"
	case LoadLoaded:
		return "loaded"
	case LoadErrored:
		return "errored"
	}
	return "unknown"
}

// ListSession держит локальный кэш списка и два слота состояния:
// загрузку (idle -> loading -> loaded/errored) и редактирование
// (единственный "currently editing id", без блокировки записи в
// хранилище). Кэш работает по принципу last-write-wins.
//
// Каждой загрузке выдается монотонный request id: ответ с устаревшим
// id отбрасывается, чтобы поздний ответ не затер более свежие данные.
type ListSession struct {
	mu sync.Mutex

	state         LoadState
	lastRequestID uint64

	rows []domain.Listing

	editingID uuid.UUID
	editing   bool
}

func NewListSession() *ListSession {
	return &ListSession{state: LoadIdle}
}

// BeginLoad переводит сессию в loading и возвращает id нового запроса.
// Предыдущий незавершенный запрос не отменяется - он просто устареет.
func (s *ListSession) BeginLoad() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastRequestID++
	s.state = LoadLoading
	return s.lastRequestID
}

// CompleteLoad фиксирует результат загрузки. Возвращает false, если
// ответ устарел (с момента запроса был выдан более новый id) - тогда
// кэш не меняется.
func (s *ListSession) CompleteLoad(requestID uint64, rows []domain.Listing) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if requestID != s.lastRequestID {
		return false
	}
	s.rows = make([]domain.Listing, len(rows))
	copy(s.rows, rows)
	s.state = LoadLoaded
	return true
}

// FailLoad фиксирует ошибку загрузки. Кэш очищается, а не остается
// со старыми строками: показывать прежний список под новым фильтром
// было бы ложью. Устаревший ответ отбрасывается и здесь.
func (s *ListSession) FailLoad(requestID uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if requestID != s.lastRequestID {
		return false
	}
	s.rows = nil
	s.state = LoadErrored
	return true
}

// State возвращает текущее состояние загрузки.
func (s *ListSession) State() LoadState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Snapshot возвращает копию кэшированных строк.
func (s *ListSession) Snapshot() []domain.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Listing, len(s.rows))
	copy(out, s.rows)
	return out
}

// --- Слот редактирования ---

// BeginEdit занимает слот редактирования. В режиме редактирования
// может быть максимум одна строка; повторный вызов просто заменяет id
// (семантика исходной админки, не блокировка).
func (s *ListSession) BeginEdit(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingID = id
	s.editing = true
}

// EditingID возвращает id редактируемой строки, если слот занят.
func (s *ListSession) EditingID() (uuid.UUID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editingID, s.editing
}

// FinishEdit освобождает слот (после сохранения или отмены).
func (s *ListSession) FinishEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = false
	s.editingID = uuid.UUID{}
}

// --- Патчи локального кэша ---
// Применяются только после успешного ответа хранилища; при ошибке
// операции кэш не меняется.

// Prepend ставит новую запись в начало списка (порядок по created_at
// по убыванию, свежая запись всегда сверху).
func (s *ListSession) Prepend(listing domain.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append([]domain.Listing{listing}, s.rows...)
}

// Merge накладывает значения обновления на кэшированную запись.
func (s *ListSession) Merge(id uuid.UUID, values map[domain.Field]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].ID == id {
			domain.ApplyValues(&s.rows[i], values)
			return
		}
	}
}

// SetStatus патчит статус кэшированной записи.
func (s *ListSession) SetStatus(id uuid.UUID, status domain.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows[i].Status = status
			return
		}
	}
}

// Remove удаляет запись из кэша.
func (s *ListSession) Remove(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return
		}
	}
}
