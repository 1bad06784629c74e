package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/suitopia/internal/server/http/dto"
)

// MediaHandler proxies the astronomy picture of the day.
type MediaHandler struct {
	facade MediaFacade
}

// NewMediaHandler constructs MediaHandler.
func NewMediaHandler(facade MediaFacade) *MediaHandler {
	return &MediaHandler{facade: facade}
}

// PictureOfTheDay handles GET /api/apod.
func (h *MediaHandler) PictureOfTheDay(c *gin.Context) {
	media, err := h.facade.PictureOfTheDay(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Message: "media service is currently unavailable"})
		return
	}
	c.JSON(http.StatusOK, media)
}
