package database

import "github.com/ds124wfegd/eventease/internal/entity"

type ContactMemory struct {
	list *recordList[entity.Contact]
}

func NewContactRepository() *ContactMemory {
	return &ContactMemory{
		list: newRecordList(func(c entity.Contact) int { return c.ID }),
	}
}

func (r *ContactMemory) Create(fill func(id int) entity.Contact) entity.Contact {
	return r.list.create(fill)
}

func (r *ContactMemory) GetAll() []entity.Contact {
	return r.list.getAll()
}
