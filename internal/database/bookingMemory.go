package database

import "github.com/ds124wfegd/eventease/internal/entity"

type BookingMemory struct {
	list *recordList[entity.Booking]
}

func NewBookingRepository() *BookingMemory {
	return &BookingMemory{
		list: newRecordList(func(b entity.Booking) int { return b.ID }),
	}
}

func (r *BookingMemory) Create(fill func(id int) entity.Booking) entity.Booking {
	return r.list.create(fill)
}

func (r *BookingMemory) GetAll() []entity.Booking {
	return r.list.getAll()
}

func (r *BookingMemory) Delete(id int) (entity.Booking, error) {
	return r.list.delete(id)
}
