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

type ContactService struct {
	repo   database.ContactRepository
	events *EventSender
	now    func() time.Time
}

func NewContactService(repo database.ContactRepository, events *EventSender) *ContactService {
	return &ContactService{
		repo:   repo,
		events: events,
		now:    time.Now,
	}
}

func (s *ContactService) CreateContact(ctx context.Context, req *entity.CreateContactRequest) (*entity.Contact, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}

	contact := s.repo.Create(func(id int) entity.Contact {
		return entity.Contact{
			ID:      id,
			Name:    *req.Name,
			Email:   *req.Email,
			Message: *req.Message,
			Date:    s.now().UTC().Format(entity.DateLayout),
		}
	})

	logrus.WithField("contact_id", contact.ID).Info("Contact message received")

	s.events.Send(ctx, notify.Event{
		Type:       notify.ContactCreated,
		ID:         contact.ID,
		OccurredAt: s.now().UTC(),
		Payload:    contact,
	})

	return &contact, nil
}

func (s *ContactService) GetAllContacts(ctx context.Context) ([]entity.Contact, error) {
	return s.repo.GetAll(), nil
}
