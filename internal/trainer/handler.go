package trainer

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

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

// CreateAvailability godoc
// @Summary      Set trainer availability
// @Description  Creates one-hour slots for the authenticated trainer. Weekly recurrence creates 5 occurrences, one per week. Dates already taken are skipped and reported.
// @Tags         trainers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateAvailabilityRequest  true  "Availability request"
// @Success      201      {object}  api.Result
// @Failure      400      {object}  api.Result
// @Failure      500      {object}  api.Result
// @Router       /availability [post]
func (h *Handler) CreateAvailability(c *gin.Context) {
	trainerID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.Error("User not authenticated"))
		return
	}

	var req CreateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Error(err.Error()))
		return
	}

	report, err := h.service.CreateAvailability(c.Request.Context(), trainerID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrInvalidHour), errors.Is(err, ErrInvalidRecurrence):
			c.JSON(http.StatusBadRequest, api.Error(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, api.Error("Failed to set availability"))
		}
		return
	}

	msg := fmt.Sprintf("%d of %d slots added for trainer %d", report.Created, report.Attempted, trainerID)
	c.JSON(http.StatusCreated, api.Success(msg, report))
}

// ListMySessions godoc
// @Summary      List active PT sessions
// @Description  Returns the authenticated trainer's booked sessions from the active sessions view.
// @Tags         trainers
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  api.Result
// @Failure      500  {object}  api.Result
// @Router       /sessions [get]
func (h *Handler) ListMySessions(c *gin.Context) {
	trainerID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.Error("User not authenticated"))
		return
	}

	sessions, err := h.service.ActiveSessions(c.Request.Context(), trainerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.Error("Failed to retrieve active PT sessions"))
		return
	}

	c.JSON(http.StatusOK, api.Success(fmt.Sprintf("Found %d active sessions", len(sessions)), sessions))
}

// ListTrainers godoc
// @Summary      List trainers
// @Tags         trainers
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  api.Result
// @Failure      500  {object}  api.Result
// @Router       /trainers [get]
func (h *Handler) ListTrainers(c *gin.Context) {
	trainers, err := h.service.ListTrainers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.Error("Failed to fetch trainers"))
		return
	}

	c.JSON(http.StatusOK, api.Success("Trainers", trainers))
}

// ListOpenSlots godoc
// @Summary      List a trainer's open slots
// @Tags         trainers
// @Security     BearerAuth
// @Produce      json
// @Param        trainerID  path      int  true  "Trainer ID"
// @Success      200        {object}  api.Result
// @Failure      400        {object}  api.Result
// @Failure      404        {object}  api.Result
// @Router       /trainers/{trainerID}/slots [get]
func (h *Handler) ListOpenSlots(c *gin.Context) {
	trainerID, err := strconv.Atoi(c.Param("trainerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.Error("Invalid trainer ID"))
		return
	}

	slots, err := h.service.GetOpenSlots(c.Request.Context(), trainerID)
	if err != nil {
		if errors.Is(err, ErrTrainerNotFound) {
			c.JSON(http.StatusNotFound, api.Error("Trainer not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, api.Error("Failed to fetch slots"))
		return
	}

	c.JSON(http.StatusOK, api.Success("Open slots", slots))
}

// CreateTrainer godoc
// @Summary      Create trainer
// @Description  Onboards a new trainer. Admin only.
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateTrainerRequest  true  "Trainer data"
// @Success      201      {object}  api.Result
// @Failure      400      {object}  api.Result
// @Failure      409      {object}  api.Result
// @Router       /admin/trainers [post]
func (h *Handler) CreateTrainer(c *gin.Context) {
	var req CreateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Error(err.Error()))
		return
	}

	t, err := h.service.CreateTrainer(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailInUse) {
			c.JSON(http.StatusConflict, api.Error("The email address '"+req.Email+"' is already in use. Please use a different email."))
			return
		}
		c.JSON(http.StatusInternalServerError, api.Error("Failed to create trainer"))
		return
	}

	c.JSON(http.StatusCreated, api.Success("Trainer "+t.Name+" created", t))
}
