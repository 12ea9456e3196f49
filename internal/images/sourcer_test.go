package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPicsumURL(t *testing.T) {
	assert.Equal(t, "https://picsum.photos/seed/hero/800/500", PicsumURL("hero", 800, 500))
	assert.Equal(t, "https://picsum.photos/seed/profile/400/400", PicsumURL("profile", 400, 400))
}

func TestImproveQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"biryani gets cuisine terms", "chicken biryani platter", "biryani rice dish indian food"},
		{"biriyani spelling variant", "special biriyani", "biryani rice dish indian food"},
		{"lamb curry", "lamb rogan josh", "lamb rogan josh kashmiri curry indian food"},
		{"lamb food", "lamb food closeup", "lamb rogan josh kashmiri curry indian food"},
		{"lamb dish", "grilled lamb dish", "lamb rogan josh kashmiri curry indian food"},
		{"generic dish gets suffix", "signature dish", "signature dish food cuisine dish"},
		{"cleaning service", "office cleaning team", "professional cleaning service"},
		{"portfolio work", "portfolio hero", "professional portfolio work"},
		{"plain query unchanged", "mountain sunrise", "mountain sunrise"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ImproveQuery(tt.query))
		})
	}
}
