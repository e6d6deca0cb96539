package database

import "github.com/ds124wfegd/eventease/internal/entity"

// BookingRepository stores bookings in insertion order.
type BookingRepository interface {
	// Create assigns the next id and appends the record built by fill.
	Create(fill func(id int) entity.Booking) entity.Booking
	GetAll() []entity.Booking
	Delete(id int) (entity.Booking, error)
}

type ContactRepository interface {
	Create(fill func(id int) entity.Contact) entity.Contact
	GetAll() []entity.Contact
}
