package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/suitopia/internal/domain/model"
)

// ContentHandler serves site content, contracts and the theme.
type ContentHandler struct {
	facade ContentFacade
}

// NewContentHandler constructs ContentHandler.
func NewContentHandler(facade ContentFacade) *ContentHandler {
	return &ContentHandler{facade: facade}
}

// SiteContent handles GET /api/site-content.
func (h *ContentHandler) SiteContent(c *gin.Context) {
	content, err := h.facade.SiteContent(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, content)
}

// SaveSiteContent handles POST /api/site-content.
func (h *ContentHandler) SaveSiteContent(c *gin.Context) {
	var content model.SiteContent
	if err := c.ShouldBindJSON(&content); err != nil {
		badRequest(c, err)
		return
	}
	saved, err := h.facade.SaveSiteContent(c.Request.Context(), content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// Contracts handles GET /api/contracts.
func (h *ContentHandler) Contracts(c *gin.Context) {
	contracts, err := h.facade.Contracts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contracts)
}

// SaveContracts handles POST /api/contracts.
func (h *ContentHandler) SaveContracts(c *gin.Context) {
	var contracts model.Contracts
	if err := c.ShouldBindJSON(&contracts); err != nil {
		badRequest(c, err)
		return
	}
	saved, err := h.facade.SaveContracts(c.Request.Context(), contracts)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// Theme handles GET /api/theme.
func (h *ContentHandler) Theme(c *gin.Context) {
	theme, err := h.facade.Theme(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, theme)
}
