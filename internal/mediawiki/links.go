package mediawiki

import (
	"context"
	"fmt"
	"net/url"

	"github.com/persistorai/wikipath/internal/models"
)

// maxContinuations bounds the number of continuation pages for one listing.
const maxContinuations = 500

type queryResponse struct {
	Continue map[string]any `json:"continue"`
	Query    struct {
		Redirects []struct {
			From string `json:"from"`
			To   string `json:"to"`
		} `json:"redirects"`
		Pages []page `json:"pages"`
	} `json:"query"`
}

type page struct {
	PageID        int64         `json:"pageid"`
	Namespace     int           `json:"ns"`
	Title         string        `json:"title"`
	Missing       bool          `json:"missing"`
	Invalid       bool          `json:"invalid"`
	InvalidReason string        `json:"invalidreason"`
	Links         []models.Link `json:"links"`
}

// ListOutboundLinks returns every main-namespace link on the page, following
// API continuation until the listing is complete.
func (c *Client) ListOutboundLinks(ctx context.Context, id models.PageID) ([]models.Link, error) {
	params := url.Values{}
	params.Set("prop", "links")
	params.Set("pageids", id.String())
	params.Set("plnamespace", "0")
	params.Set("pllimit", "max")

	var links []models.Link
	seenTokens := map[string]bool{}

	for range maxContinuations {
		var resp queryResponse
		if err := c.query(ctx, "links", params, &resp); err != nil {
			return nil, fmt.Errorf("listing links of page %d: %w", id, err)
		}

		for _, p := range resp.Query.Pages {
			if p.Missing || p.Invalid {
				return nil, fmt.Errorf("page %d: %w", id, models.ErrPageMissing)
			}
			links = append(links, p.Links...)
		}

		if len(resp.Continue) == 0 {
			return links, nil
		}

		token := fmt.Sprint(resp.Continue["plcontinue"])
		if seenTokens[token] {
			return nil, fmt.Errorf("listing links of page %d: continuation %q repeated", id, token)
		}
		seenTokens[token] = true

		for k, v := range resp.Continue {
			params.Set(k, fmt.Sprint(v))
		}
	}

	return nil, fmt.Errorf("listing links of page %d: more than %d continuation pages", id, maxContinuations)
}
