package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sitegen_server/internal/design"
	"sitegen_server/internal/llm"
	"sitegen_server/internal/session"
	"sitegen_server/internal/site"
)

// SiteService matches *site.Generator and lets tests stub the service.
type SiteService interface {
	Generate(ctx context.Context, in site.GenerateInput) (*site.Result, error)
	Update(ctx context.Context, in site.UpdateInput) (*site.Result, error)
}

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	generator    SiteService
	sessions     *session.Store
	presets      design.PresetCatalog
	library      design.ComponentLibrary
	enhancements design.EnhancementLibrary
	logger       *zap.Logger
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(
	generator SiteService,
	sessions *session.Store,
	presets design.PresetCatalog,
	library design.ComponentLibrary,
	enhancements design.EnhancementLibrary,
	logger *zap.Logger,
) *APIHandler {
	return &APIHandler{
		generator:    generator,
		sessions:     sessions,
		presets:      presets,
		library:      library,
		enhancements: enhancements,
		logger:       logger,
	}
}

// --- Structs for API Requests/Responses ---

type GenerateRequest struct {
	Prompt            string                              `json:"prompt" binding:"required"`
	StylePreset       string                              `json:"style_preset"`
	ReferenceURL      string                              `json:"reference_url" binding:"omitempty,url"`
	ProfileImageURL   string                              `json:"profile_image_url"`
	UploadedImages    map[string]string                   `json:"uploaded_images"`
	PreferredSections map[string]design.SectionPreference `json:"preferred_sections"`
	Enhancements      []string                            `json:"interactive_enhancements"`
}

type UpdateRequest struct {
	SessionID         string                              `json:"session_id"`
	CurrentHTML       string                              `json:"current_html"`
	UpdatePrompt      string                              `json:"update_prompt" binding:"required"`
	OriginalPrompt    string                              `json:"original_prompt"`
	StylePreset       string                              `json:"style_preset"`
	ProfileImageURL   string                              `json:"profile_image_url"`
	PreferredSections map[string]design.SectionPreference `json:"preferred_sections"`
}

type SiteResponse struct {
	Success            bool                                 `json:"success"`
	SessionID          string                               `json:"session_id,omitempty"`
	Content            string                               `json:"content"`
	ComponentBlueprint string                               `json:"component_blueprint,omitempty"`
	ComponentVariants  map[string]design.ComponentSelection `json:"component_variants,omitempty"`
}

// --- API Handlers ---

// POST /site/generate
func (h *APIHandler) GenerateSite(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if req.StylePreset != "" {
		if _, ok := h.presets[req.StylePreset]; !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown style preset: " + req.StylePreset})
			return
		}
	}

	h.logger.Info("generation request received",
		zap.Int("prompt_chars", len(req.Prompt)), zap.String("style_preset", req.StylePreset))

	result, err := h.generator.Generate(c.Request.Context(), site.GenerateInput{
		Prompt:            req.Prompt,
		StylePreset:       req.StylePreset,
		ReferenceURL:      req.ReferenceURL,
		ProfileImageURL:   req.ProfileImageURL,
		UploadedImages:    req.UploadedImages,
		PreferredSections: req.PreferredSections,
		Enhancements:      req.Enhancements,
	})
	if err != nil {
		h.respondGenerationError(c, err)
		return
	}

	// The session keeps the same validated image set the generator used, so
	// later updates replay exactly what the first pass accepted.
	uploaded := site.CollectImages(req.ProfileImageURL, req.UploadedImages)
	rec := h.sessions.Create(req.Prompt, req.StylePreset, result.HTML, uploaded)

	h.logger.Info("site generated", zap.String("session_id", rec.ID), zap.Int("html_chars", len(result.HTML)))
	c.JSON(http.StatusCreated, SiteResponse{
		Success:            true,
		SessionID:          rec.ID,
		Content:            result.HTML,
		ComponentBlueprint: result.Blueprint,
		ComponentVariants:  result.Selections,
	})
}

// POST /site/update
func (h *APIHandler) UpdateSite(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	in := site.UpdateInput{
		CurrentHTML:       req.CurrentHTML,
		UpdatePrompt:      req.UpdatePrompt,
		OriginalPrompt:    req.OriginalPrompt,
		StylePreset:       req.StylePreset,
		PreferredSections: req.PreferredSections,
	}
	if req.ProfileImageURL != "" {
		in.UploadedImages = map[string]string{"profile": req.ProfileImageURL}
	}

	// A session id pulls the tracked page state; raw current_html serves
	// stateless clients.
	if req.SessionID != "" {
		rec, err := h.sessions.Get(req.SessionID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		in.CurrentHTML = rec.CurrentHTML
		if in.OriginalPrompt == "" {
			in.OriginalPrompt = rec.OriginalPrompt
		}
		if in.StylePreset == "" {
			in.StylePreset = rec.StylePreset
		}
		if in.UploadedImages == nil {
			in.UploadedImages = rec.Images
		}
	}
	if in.CurrentHTML == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Either session_id or current_html is required"})
		return
	}

	result, err := h.generator.Update(c.Request.Context(), in)
	if err != nil {
		h.respondGenerationError(c, err)
		return
	}

	if req.SessionID != "" {
		if err := h.sessions.UpdateHTML(req.SessionID, result.HTML); err != nil {
			h.logger.Warn("failed to persist updated page", zap.String("session_id", req.SessionID), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, SiteResponse{
		Success:            true,
		SessionID:          req.SessionID,
		Content:            result.HTML,
		ComponentBlueprint: result.Blueprint,
		ComponentVariants:  result.Selections,
	})
}

// GET /catalog/presets
func (h *APIHandler) ListPresets(c *gin.Context) {
	c.JSON(http.StatusOK, h.presets)
}

// GET /catalog/components
func (h *APIHandler) ListComponents(c *gin.Context) {
	c.JSON(http.StatusOK, h.library)
}

// GET /catalog/enhancements
func (h *APIHandler) ListEnhancements(c *gin.Context) {
	c.JSON(http.StatusOK, h.enhancements)
}

func (h *APIHandler) respondGenerationError(c *gin.Context, err error) {
	h.logger.Error("generation failed", zap.Error(err))
	switch {
	case errors.Is(err, llm.ErrNoProvider):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "No LLM provider is configured"})
	case errors.Is(err, llm.ErrAllProvidersFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": "All LLM providers failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate site"})
	}
}
