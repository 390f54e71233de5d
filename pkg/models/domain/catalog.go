package domain

import "time"

type Category struct {
	ID          int64
	Name        string
	Description string
}

type Event struct {
	ID          int64
	Name        string
	CategoryID  *int64
	Category    string
	Location    string
	Date        *time.Time
	Description string
	Note        string
	// Favorite is a denormalized convenience flag; the favorites relation
	// is the source of truth.
	Favorite bool
}

type User struct {
	ID    int64
	Name  string
	Login string
	Email string
}
