package images

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const unsplashBaseURL = "https://api.unsplash.com"

// Unsplash fetches a random stock photo matching a query.
type Unsplash struct {
	accessKey  string
	baseURL    string
	httpClient *http.Client
}

// NewUnsplash builds the Unsplash sourcer. Without an access key it reports
// ErrNoImage so the chain falls through to the placeholder.
func NewUnsplash(accessKey string) *Unsplash {
	return &Unsplash{
		accessKey:  accessKey,
		baseURL:    unsplashBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// WithBaseURL points the sourcer at a different endpoint.
func (u *Unsplash) WithBaseURL(base string) *Unsplash {
	u.baseURL = base
	return u
}

func (u *Unsplash) Name() string { return "unsplash" }

type unsplashPhoto struct {
	URLs struct {
		Regular string `json:"regular"`
	} `json:"urls"`
}

// Source returns the URL of a random landscape photo for the query.
func (u *Unsplash) Source(ctx context.Context, query string) (string, error) {
	if u.accessKey == "" {
		return "", fmt.Errorf("unsplash: access key not configured: %w", ErrNoImage)
	}

	params := url.Values{}
	params.Set("query", ImproveQuery(query))
	params.Set("orientation", "landscape")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		u.baseURL+"/photos/random?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("building unsplash request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+u.accessKey)

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("unsplash request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unsplash returned status %d", resp.StatusCode)
	}

	var photo unsplashPhoto
	if err := json.NewDecoder(resp.Body).Decode(&photo); err != nil {
		return "", fmt.Errorf("decoding unsplash response: %w", err)
	}
	if photo.URLs.Regular == "" {
		return "", fmt.Errorf("unsplash: %w", ErrNoImage)
	}
	return photo.URLs.Regular, nil
}
