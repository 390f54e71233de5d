package report

import "fmt"

// QueryError wraps a statement the record store rejected or could not
// execute. It is never retried.
type QueryError struct {
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("report query failed: %v", e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
