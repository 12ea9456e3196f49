package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	internalapi "sitegen_server/internal/api"
)

// RegisterRoutes sets up the API endpoints and groups them logically.
func RegisterRoutes(router *gin.Engine, h *internalapi.APIHandler) {

	// --- Page Generation ---
	siteGroup := router.Group("/site")
	{
		siteGroup.POST("/generate", h.GenerateSite) // Generate a new page from a brief
		siteGroup.POST("/update", h.UpdateSite)     // Conversational update of an existing page
	}

	// --- Design Catalogs ---
	// The frontend reads these to populate its pickers.
	catalogGroup := router.Group("/catalog")
	{
		catalogGroup.GET("/presets", h.ListPresets)
		catalogGroup.GET("/components", h.ListComponents)
		catalogGroup.GET("/enhancements", h.ListEnhancements)
	}

	// --- Simple Health Check ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
