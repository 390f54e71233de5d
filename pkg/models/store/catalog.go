package store

type EventRow struct {
	ID          int64
	Name        string
	CategoryID  *int64
	Category    *string
	Location    string
	Date        *string
	Description string
	Note        string
	Favorite    bool
}

type CategoryRow struct {
	ID          int64
	Name        string
	Description *string
}

type UserRow struct {
	ID    int64
	Name  string
	Login string
	Email string
}
