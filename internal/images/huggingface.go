package images

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	hfInferenceBaseURL = "https://api-inference.huggingface.co/models"

	// FluxRepoID is the primary text-to-image model; it needs an API token.
	FluxRepoID = "black-forest-labs/FLUX.1-dev"

	// StableDiffusionRepoID is the secondary model, usable anonymously.
	StableDiffusionRepoID = "stabilityai/stable-diffusion-3-5-large"
)

// HuggingFace generates images through the HF inference API and returns them
// as base64 data URLs.
type HuggingFace struct {
	token      string
	baseURL    string
	repoID     string
	steps      int
	guidance   float64
	needsToken bool
	httpClient *http.Client
}

// NewFlux builds the FLUX.1-dev sourcer. Without a token it reports
// ErrNoImage on every call so the chain moves on.
func NewFlux(token string) *HuggingFace {
	return &HuggingFace{
		token:      token,
		baseURL:    hfInferenceBaseURL,
		repoID:     FluxRepoID,
		steps:      28,
		guidance:   3.5,
		needsToken: true,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// NewStableDiffusion builds the Stable Diffusion 3.5 sourcer.
func NewStableDiffusion(token string) *HuggingFace {
	return &HuggingFace{
		token:      token,
		baseURL:    hfInferenceBaseURL,
		repoID:     StableDiffusionRepoID,
		steps:      25,
		guidance:   7.5,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// WithBaseURL points the sourcer at a different endpoint.
func (h *HuggingFace) WithBaseURL(url string) *HuggingFace {
	h.baseURL = url
	return h
}

func (h *HuggingFace) Name() string { return "huggingface/" + h.repoID }

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	NumInferenceSteps int     `json:"num_inference_steps"`
	GuidanceScale     float64 `json:"guidance_scale"`
	Width             int     `json:"width"`
	Height            int     `json:"height"`
}

// Source generates an image for the query and returns it as a PNG data URL.
func (h *HuggingFace) Source(ctx context.Context, query string) (string, error) {
	if h.needsToken && h.token == "" {
		return "", fmt.Errorf("%s: token not configured: %w", h.Name(), ErrNoImage)
	}

	payload, err := json.Marshal(hfRequest{
		Inputs: ImproveQuery(query),
		Parameters: hfParameters{
			NumInferenceSteps: h.steps,
			GuidanceScale:     h.guidance,
			Width:             1024,
			Height:            768,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshaling hf request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		h.baseURL+"/"+h.repoID, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("building hf request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s request failed: %w", h.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%s returned status %d: %s", h.Name(), resp.StatusCode, string(body))
	}

	imgData, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading hf image: %w", err)
	}
	if len(imgData) == 0 {
		return "", fmt.Errorf("%s: empty image body: %w", h.Name(), ErrNoImage)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(imgData), nil
}
