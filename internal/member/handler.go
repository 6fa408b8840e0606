package member

import (
	"errors"
	"net/http"

	"github.com/coraxie-ca/comp3005-project/internal/api"
	"github.com/coraxie-ca/comp3005-project/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Register godoc
// @Summary      Register new member
// @Description  Creates a member account and returns access & refresh tokens.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      RegisterRequest  true  "Member registration data"
// @Success      201      {object}  api.Result
// @Failure      400      {object}  api.Result
// @Failure      409      {object}  api.Result
// @Failure      500      {object}  api.Result
// @Router       /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Error(err.Error()))
		return
	}

	m, accessToken, refreshToken, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDate):
			c.JSON(http.StatusBadRequest, api.Error(err.Error()))
		case errors.Is(err, ErrEmailInUse):
			c.JSON(http.StatusConflict, api.Error("The email address '"+req.Email+"' is already in use. Please use a different email."))
		default:
			c.JSON(http.StatusInternalServerError, api.Error("Failed to register member"))
		}
		return
	}

	c.JSON(http.StatusCreated, api.Success("Member "+m.Name+" registered successfully", RegisterResponse{
		Member:       *m,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}))
}

// GetMe godoc
// @Summary      Get current member
// @Tags         member
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  api.Result
// @Failure      401  {object}  api.Result
// @Failure      404  {object}  api.Result
// @Router       /me [get]
func (h *Handler) GetMe(c *gin.Context) {
	memberID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.Error("User not authenticated"))
		return
	}

	m, err := h.service.GetByID(c.Request.Context(), memberID)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, api.Error("Member not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, api.Error("Failed to fetch member"))
		return
	}

	c.JSON(http.StatusOK, api.Success("Member profile", m))
}

// UpdateProfile godoc
// @Summary      Update member profile
// @Description  Updates provided fields only; omitted fields are unchanged.
// @Tags         member
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      UpdateProfileRequest  true  "Fields to update"
// @Success      200      {object}  api.Result
// @Failure      400      {object}  api.Result
// @Failure      409      {object}  api.Result
// @Failure      500      {object}  api.Result
// @Router       /me/profile [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	memberID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.Error("User not authenticated"))
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Error(err.Error()))
		return
	}

	if req.Name == nil && req.Email == nil && req.DateOfBirth == nil && req.Gender == nil {
		c.JSON(http.StatusOK, api.Info("No changes requested"))
		return
	}

	m, err := h.service.UpdateProfile(c.Request.Context(), memberID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDate):
			c.JSON(http.StatusBadRequest, api.Error(err.Error()))
		case errors.Is(err, ErrEmailInUse):
			c.JSON(http.StatusConflict, api.Error("Update failed: the new email address is already in use by another member"))
		case errors.Is(err, ErrMemberNotFound):
			c.JSON(http.StatusNotFound, api.Error("Member not found"))
		default:
			c.JSON(http.StatusInternalServerError, api.Error("Failed to update profile"))
		}
		return
	}

	c.JSON(http.StatusOK, api.Success("Profile updated", m))
}
