package pathfinder

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/persistorai/wikipath/internal/models"
)

// NormalizeTitle accepts a bare article title or an article URL such as
// https://en.wikipedia.org/wiki/German_Empire and returns the plain title.
func NormalizeTitle(input string) (string, error) {
	s := strings.TrimSpace(input)

	if u, err := url.Parse(s); err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		switch p := u.EscapedPath(); {
		case strings.HasPrefix(p, "/wiki/"):
			dec, err := url.PathUnescape(strings.TrimPrefix(p, "/wiki/"))
			if err != nil {
				return "", fmt.Errorf("decoding title in %q: %w", input, err)
			}
			s = dec
		case u.Query().Get("title") != "":
			s = u.Query().Get("title")
		default:
			return "", fmt.Errorf("%q is not an article URL", input)
		}
	} else if strings.Contains(s, "%") {
		if dec, err := url.PathUnescape(s); err == nil {
			s = dec
		}
	}

	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[:i]
	}

	s = strings.TrimSpace(strings.ReplaceAll(s, "_", " "))
	if s == "" {
		return "", models.ErrMissingTitle
	}

	return s, nil
}
