package adapters

import (
	"time"

	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/models/domain"
	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/models/store"
)

const dateLayout = "2006-01-02"

func MapStoreEventRowToDomainEvent(row store.EventRow) domain.Event {
	e := domain.Event{
		ID:          row.ID,
		Name:        row.Name,
		Location:    row.Location,
		Description: row.Description,
		Note:        row.Note,
		Favorite:    row.Favorite,
	}
	if row.CategoryID != nil {
		id := *row.CategoryID
		e.CategoryID = &id
	}
	if row.Category != nil {
		e.Category = *row.Category
	}
	if row.Date != nil {
		if t, err := time.Parse(dateLayout, *row.Date); err == nil {
			e.Date = &t
		}
	}
	return e
}

func MapStoreCategoryRowToDomainCategory(row store.CategoryRow) domain.Category {
	c := domain.Category{
		ID:   row.ID,
		Name: row.Name,
	}
	if row.Description != nil {
		c.Description = *row.Description
	}
	return c
}

func MapStoreUserRowToDomainUser(row store.UserRow) domain.User {
	return domain.User{
		ID:    row.ID,
		Name:  row.Name,
		Login: row.Login,
		Email: row.Email,
	}
}
