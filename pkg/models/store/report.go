package store

// ReportRecord is one raw aggregated row as projected by the report query:
// one record per event, with all favoriting usernames collapsed into a single
// comma-separated string. Pointer fields carry through SQL NULLs; resolving
// them into display values is the adapter's job.
type ReportRecord struct {
	EventID     int64
	Name        string
	Category    *string
	Location    string
	Date        *string
	Description string
	Favorite    bool
	// UserNames is nil when no favorite rows matched the event at all.
	UserNames *string
}
