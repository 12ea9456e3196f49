package images

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Sourcer resolves an image query into a URL or data URL.
type Sourcer interface {
	Name() string
	Source(ctx context.Context, query string) (string, error)
}

// ErrNoImage is returned when a sourcer cannot produce an image for a query.
var ErrNoImage = errors.New("no image available")

// PicsumURL returns a deterministic placeholder URL for a seed. It is the
// terminal fallback of the image chain and never fails.
func PicsumURL(seed string, width, height int) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/%d/%d", seed, width, height)
}

// ImproveQuery enriches a raw image label so generation and stock-photo
// lookups land closer to the intended subject.
func ImproveQuery(query string) string {
	lower := strings.ToLower(query)
	switch {
	case strings.Contains(lower, "biriyani") || strings.Contains(lower, "biryani"):
		return "biryani rice dish indian food"
	case strings.Contains(lower, "lamb") && containsAny(lower, "rogan", "josh", "food", "dish", "curry"):
		return "lamb rogan josh kashmiri curry indian food"
	case strings.Contains(lower, "food") || strings.Contains(lower, "dish"):
		return query + " food cuisine dish"
	case strings.Contains(lower, "cleaning"):
		return "professional cleaning service"
	case strings.Contains(lower, "portfolio"):
		return "professional portfolio work"
	default:
		return query
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
