package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/polkiloo/suitopia/internal/pkg/auth"
	"github.com/polkiloo/suitopia/internal/server/http/dto"
)

// AdminHandler issues back-office session tokens.
type AdminHandler struct {
	facade AdminFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade AdminFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	token, err := h.facade.AdminLogin(req.Password)
	if err != nil {
		if errors.Is(err, pkgAuth.ErrDisabled) {
			_ = c.Error(err)
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AdminLoginResponse{Token: token})
}
