package recommender

import "fmt"

// NotFoundError indicates that none of the top-ranked candidates belongs to
// the requested state. User-visible and non-fatal.
type NotFoundError struct {
	State string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no trek found in state %s", e.State)
}
