package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/suitopia/internal/server/http/dto"
)

// UploadHandler accepts image uploads.
type UploadHandler struct {
	facade   UploadFacade
	maxBytes int64
}

// NewUploadHandler constructs UploadHandler limiting bodies to maxBytes.
func NewUploadHandler(facade UploadFacade, maxBytes int64) *UploadHandler {
	return &UploadHandler{facade: facade, maxBytes: maxBytes}
}

// Upload handles POST /api/upload with multipart field "file".
func (h *UploadHandler) Upload(c *gin.Context) {
	if h.maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes)
	}

	header, err := c.FormFile("file")
	if err != nil {
		_ = c.Error(err)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{Message: "file is too large"})
			return
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "no file uploaded"})
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	url, err := h.facade.SaveUpload(c.Request.Context(), header.Filename, file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UploadResponse{Success: true, URL: url})
}
