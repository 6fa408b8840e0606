package identity

import (
	"errors"
	"net/http"

	"github.com/coraxie-ca/comp3005-project/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Login godoc
// @Summary      Login
// @Description  Authenticates by email lookup across admin, trainer and member accounts, in that order.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest  true  "Credentials"
// @Success      200      {object}  api.Result
// @Failure      400      {object}  api.Result
// @Failure      401      {object}  api.Result
// @Router       /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Error(err.Error()))
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, api.Error("Invalid email or password"))
			return
		}
		c.JSON(http.StatusInternalServerError, api.Error("Failed to login"))
		return
	}

	c.JSON(http.StatusOK, api.Success("Logged in as "+resp.Principal.Role, resp))
}

// Refresh godoc
// @Summary      Refresh access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      RefreshRequest  true  "Refresh token"
// @Success      200      {object}  api.Result
// @Failure      400      {object}  api.Result
// @Failure      401      {object}  api.Result
// @Router       /auth/refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Error(err.Error()))
		return
	}

	accessToken, principal, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, api.Error("Invalid or expired refresh token"))
		return
	}

	c.JSON(http.StatusOK, api.Success("Token refreshed", gin.H{
		"access_token": accessToken,
		"principal":    principal,
	}))
}
