package mediawiki

import (
	"context"
	"fmt"
	"net/url"

	"github.com/persistorai/wikipath/internal/models"
)

// LookupIdentifier resolves title to its page ID, letting the API follow
// redirects. Pages outside the main namespace are reported as not found.
func (c *Client) LookupIdentifier(ctx context.Context, title string) (models.Lookup, error) {
	params := url.Values{}
	params.Set("titles", title)
	params.Set("redirects", "1")

	var resp queryResponse
	if err := c.query(ctx, "lookup", params, &resp); err != nil {
		return models.Lookup{}, fmt.Errorf("looking up %q: %w", title, err)
	}

	if len(resp.Query.Pages) == 0 {
		return models.Lookup{}, fmt.Errorf("looking up %q: response contained no pages", title)
	}

	p := resp.Query.Pages[0]
	switch {
	case p.Invalid:
		reason := p.InvalidReason
		if reason == "" {
			reason = "invalid title"
		}
		return models.Lookup{Found: false, Reason: reason}, nil
	case p.Missing:
		return models.Lookup{Found: false, Reason: "page does not exist"}, nil
	case p.Namespace != models.MainNamespace:
		return models.Lookup{Found: false, Reason: fmt.Sprintf("not an article (namespace %d)", p.Namespace)}, nil
	}

	return models.Lookup{
		Found:          true,
		ID:             models.PageID(p.PageID),
		CanonicalTitle: p.Title,
	}, nil
}
