// Package pathfinder finds paths between articles in the link graph exposed
// by a LinkSource. A Finder owns all caches and traversal state for exactly
// one run; nothing is shared between runs.
package pathfinder

import (
	"context"

	"github.com/persistorai/wikipath/internal/models"
)

// LinkSource is the remote capability the traversal depends on.
type LinkSource interface {
	// LookupIdentifier resolves a title, following redirects on the remote side.
	// A title the source positively knows to be absent yields Lookup.Found=false
	// and a nil error; transport or protocol failures yield a non-nil error.
	LookupIdentifier(ctx context.Context, title string) (models.Lookup, error)

	// ListOutboundLinks returns the complete outbound link listing of a page in
	// source order.
	ListOutboundLinks(ctx context.Context, id models.PageID) ([]models.Link, error)
}
