package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gold-store/internal/domain"
	"gold-store/internal/storage"
)

var (
	ErrTicketNotFound = errors.New("support ticket not found")
)

// TicketRepository defines the interface for support ticket data access
type TicketRepository interface {
	List(ctx context.Context) ([]domain.SupportMessage, error)
	Prepend(ctx context.Context, ticket domain.SupportMessage) error
	MarkReplied(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	UnreadCount(ctx context.Context) (int, error)
}

type ticketRepository struct {
	mu      sync.Mutex
	store   *storage.Store
	tickets []domain.SupportMessage
}

// NewTicketRepository loads the persisted ticket list, starting empty when
// nothing usable is stored.
func NewTicketRepository(store *storage.Store) TicketRepository {
	r := &ticketRepository{store: store}
	if !store.Load(keyTickets, &r.tickets) || r.tickets == nil {
		r.tickets = []domain.SupportMessage{}
	}
	return r
}

// List returns the tickets newest-first.
func (r *ticketRepository) List(ctx context.Context) ([]domain.SupportMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.SupportMessage, len(r.tickets))
	copy(out, r.tickets)
	return out, nil
}

// Prepend records a new ticket at the head of the list.
func (r *ticketRepository) Prepend(ctx context.Context, ticket domain.SupportMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tickets = append([]domain.SupportMessage{ticket}, r.tickets...)
	return r.persist()
}

// MarkReplied transitions the ticket status to "replied". The transition is
// one-way; marking an already replied ticket again is harmless.
func (r *ticketRepository) MarkReplied(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tickets {
		if r.tickets[i].ID == id {
			r.tickets[i].Status = domain.TicketStatusReplied
			return r.persist()
		}
	}
	return ErrTicketNotFound
}

// Delete removes exactly the ticket with the given id.
func (r *ticketRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tickets {
		if r.tickets[i].ID == id {
			r.tickets = append(r.tickets[:i], r.tickets[i+1:]...)
			return r.persist()
		}
	}
	return ErrTicketNotFound
}

// UnreadCount returns the number of tickets still in status "new".
func (r *ticketRepository) UnreadCount(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, t := range r.tickets {
		if t.Status == domain.TicketStatusNew {
			count++
		}
	}
	return count, nil
}

func (r *ticketRepository) persist() error {
	if err := r.store.Save(keyTickets, r.tickets); err != nil {
		return fmt.Errorf("failed to persist support tickets: %w", err)
	}
	return nil
}
