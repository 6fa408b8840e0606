package admin

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

// CreateAdmin godoc
// @Summary      Create admin
// @Description  Onboards a new administrator. Admin only.
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateAdminRequest  true  "Admin data"
// @Success      201      {object}  api.Result
// @Failure      400      {object}  api.Result
// @Failure      409      {object}  api.Result
// @Router       /admin/admins [post]
func (h *Handler) CreateAdmin(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Error(err.Error()))
		return
	}

	a, err := h.service.CreateAdmin(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailInUse) {
			c.JSON(http.StatusConflict, api.Error("The email address '"+req.Email+"' is already in use. Please use a different email."))
			return
		}
		c.JSON(http.StatusInternalServerError, api.Error("Failed to create admin"))
		return
	}

	c.JSON(http.StatusCreated, api.Success("Admin "+a.Name+" created", a))
}
