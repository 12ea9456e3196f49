package page

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!DOCTYPE html>
<html>
<head>
<title>Acme Studio</title>
<meta name="description" content="Design studio in Oslo">
<style>
body { color: #112233; background: #445566; font-family: Inter, sans-serif; }
h1 { color: #112233; font-family: Playfair Display; }
</style>
</head>
<body>
<header><nav>menu</nav></header>
<section class="hero">Welcome</section>
<footer>contact</footer>
</body>
</html>`

func TestFetchReferenceDesign(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	summary, err := FetchReferenceDesign(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Contains(t, summary, "Website Title: Acme Studio")
	assert.Contains(t, summary, "Description: Design studio in Oslo")
	assert.Contains(t, summary, "Color Scheme: #112233, #445566")
	assert.Contains(t, summary, "Inter")
	assert.Contains(t, summary, "Header/Navigation")
	assert.Contains(t, summary, "Hero Section")
	assert.Contains(t, summary, "Footer")
	assert.Contains(t, summary, "INSTRUCTIONS:")
}

func TestFetchReferenceDesignErrors(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer srv.Close()

		_, err := FetchReferenceDesign(context.Background(), srv.URL)
		assert.ErrorContains(t, err, "404")
	})

	t.Run("unreachable host", func(t *testing.T) {
		_, err := FetchReferenceDesign(context.Background(), "http://127.0.0.1:1")
		assert.Error(t, err)
	})
}

func TestFetchReferenceDesignMinimalPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>plain</body></html>"))
	}))
	defer srv.Close()

	summary, err := FetchReferenceDesign(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, summary, "Standard layout")
}
