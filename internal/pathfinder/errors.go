package pathfinder

import (
	"errors"
	"fmt"

	"github.com/persistorai/wikipath/internal/models"
)

// ErrNotFound matches any NotFoundError via errors.Is.
var ErrNotFound = errors.New("title not found")

// NotFoundError reports a title the link source does not know.
type NotFoundError struct {
	Title  string
	Reason string
}

func (e *NotFoundError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("title %q not found: %s", e.Title, e.Reason)
	}
	return fmt.Sprintf("title %q not found", e.Title)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ResolutionError reports a transport or protocol failure while resolving a title.
type ResolutionError struct {
	Title string
	Err   error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolving %q: %v", e.Title, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// FetchError reports a failure while listing the outbound links of a page.
type FetchError struct {
	ID  models.PageID
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching links of page %d: %v", e.ID, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
