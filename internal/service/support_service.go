package service

import (
	"context"
	"fmt"
	"time"

	"gold-store/internal/domain"
	"gold-store/internal/notify"
	"gold-store/internal/repository"

	"go.uber.org/zap"
)

// SupportService defines the interface for support ticket intake and the
// admin-side ticket operations.
type SupportService interface {
	Submit(ctx context.Context, contact, text string) (*domain.SupportMessage, error)
	List(ctx context.Context) ([]domain.SupportMessage, error)
	MarkReplied(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	UnreadCount(ctx context.Context) (int, error)
}

type supportService struct {
	ticketRepo repository.TicketRepository
	notifier   notify.Notifier
	logger     *zap.Logger
}

// NewSupportService creates a new instance of SupportService
func NewSupportService(ticketRepo repository.TicketRepository, notifier notify.Notifier, logger *zap.Logger) SupportService {
	return &supportService{
		ticketRepo: ticketRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

// Submit forwards the request to the admin chat and records the ticket
// only after delivery succeeds. A failed delivery records nothing.
func (s *supportService) Submit(ctx context.Context, contact, text string) (*domain.SupportMessage, error) {
	msg := fmt.Sprintf("<b>🆘 SUPPORT</b>\n\n👤 Contact: %s\n💬 Text: %s", contact, text)

	if err := s.notifier.Send(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to deliver support request: %w", err)
	}

	ticket := domain.SupportMessage{
		ID:      time.Now().UnixMilli(),
		Contact: contact,
		Text:    text,
		Date:    time.Now().Format("02.01.2006 15:04"),
		Status:  domain.TicketStatusNew,
	}

	if err := s.ticketRepo.Prepend(ctx, ticket); err != nil {
		return nil, fmt.Errorf("failed to record ticket: %w", err)
	}

	s.logger.Info("Support ticket recorded", zap.Int64("ticket_id", ticket.ID))
	return &ticket, nil
}

// List returns all tickets, newest-first.
func (s *supportService) List(ctx context.Context) ([]domain.SupportMessage, error) {
	return s.ticketRepo.List(ctx)
}

// MarkReplied flips the ticket to replied. The reply itself happens over
// the contact channel, outside this service; nothing is sent here.
func (s *supportService) MarkReplied(ctx context.Context, id int64) error {
	return s.ticketRepo.MarkReplied(ctx, id)
}

// Delete removes the ticket.
func (s *supportService) Delete(ctx context.Context, id int64) error {
	return s.ticketRepo.Delete(ctx, id)
}

// UnreadCount is the number of tickets still awaiting a reply.
func (s *supportService) UnreadCount(ctx context.Context) (int, error) {
	return s.ticketRepo.UnreadCount(ctx)
}
