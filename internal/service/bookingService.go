package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ds124wfegd/eventease/internal/database"
	"github.com/ds124wfegd/eventease/internal/entity"
	"github.com/ds124wfegd/eventease/internal/notify"
	"github.com/sirupsen/logrus"
)

type BookingService struct {
	repo   database.BookingRepository
	events *EventSender
	now    func() time.Time
}

func NewBookingService(repo database.BookingRepository, events *EventSender) *BookingService {
	return &BookingService{
		repo:   repo,
		events: events,
		now:    time.Now,
	}
}

func (s *BookingService) CreateBooking(ctx context.Context, req *entity.CreateBookingRequest) (*entity.Booking, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	booking := s.repo.Create(func(id int) entity.Booking {
		return entity.Booking{
			ID:       id,
			Category: *req.Category,
			Event:    *req.Event,
			Name:     *req.Name,
			Email:    *req.Email,
			Date:     s.now().UTC().Format(entity.DateLayout),
			Status:   entity.BookingStatusConfirmed,
		}
	})

	logrus.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"event":      booking.Event,
	}).Info("Booking created")

	s.events.Send(ctx, notify.Event{
		Type:       notify.BookingCreated,
		ID:         booking.ID,
		OccurredAt: s.now().UTC(),
		Payload:    booking,
	})

	return &booking, nil
}

func (s *BookingService) GetAllBookings(ctx context.Context) ([]entity.Booking, error) {
	return s.repo.GetAll(), nil
}

func (s *BookingService) DeleteBooking(ctx context.Context, id int) error {
	booking, err := s.repo.Delete(id)
	if err != nil {
		return fmt.Errorf("delete booking %d: %w", id, err)
	}

	logrus.WithField("booking_id", id).Info("Booking deleted")

	s.events.Send(ctx, notify.Event{
		Type:       notify.BookingDeleted,
		ID:         id,
		OccurredAt: s.now().UTC(),
		Payload:    booking,
	})
	return nil
}
