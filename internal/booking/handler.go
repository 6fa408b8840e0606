package booking

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

// BookSession godoc
// @Summary      Book a PT session
// @Description  Books the trainer's open one-hour slot at (date, start_hour) for the authenticated member. Room assignment is pending until an admin assigns one.
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      BookRequest  true  "Booking request"
// @Success      201      {object}  api.Result
// @Failure      400      {object}  api.Result
// @Failure      404      {object}  api.Result
// @Failure      500      {object}  api.Result
// @Router       /sessions/book [post]
func (h *Handler) BookSession(c *gin.Context) {
	memberID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.Error("User not authenticated"))
		return
	}

	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Error(err.Error()))
		return
	}

	confirmation, err := h.service.BookSession(c.Request.Context(), memberID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrInvalidHour):
			c.JSON(http.StatusBadRequest, api.Error(err.Error()))
		case errors.Is(err, ErrSlotUnavailable):
			msg := fmt.Sprintf("Trainer %d is not available on %s at %02d:00 for a 1-hour session, or the slot is already booked",
				req.TrainerID, req.Date, req.StartHour)
			c.JSON(http.StatusNotFound, api.Error(msg))
		default:
			c.JSON(http.StatusInternalServerError, api.Error("Booking failed due to a database error"))
		}
		return
	}

	msg := fmt.Sprintf("PT session booked with trainer %d on %s at %02d:00 (Slot ID: %d). Room assignment pending.",
		confirmation.TrainerID, confirmation.Date, confirmation.StartHour, confirmation.SlotID)
	c.JSON(http.StatusCreated, api.Success(msg, confirmation))
}

// AssignRoom godoc
// @Summary      Assign a room to a booked session
// @Description  Allocates a room to a booked slot, enforcing room/date/hour exclusivity. Admin only. Assignments are immutable.
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        slotID   path      int                true  "Slot ID"
// @Param        request  body      AssignRoomRequest  true  "Room to assign"
// @Success      200      {object}  api.Result
// @Failure      400      {object}  api.Result
// @Failure      404      {object}  api.Result
// @Failure      409      {object}  api.Result
// @Failure      500      {object}  api.Result
// @Router       /admin/sessions/{slotID}/room [post]
func (h *Handler) AssignRoom(c *gin.Context) {
	slotID, err := strconv.Atoi(c.Param("slotID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.Error("Invalid slot ID"))
		return
	}

	var req AssignRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Error(err.Error()))
		return
	}

	err = h.service.AssignRoom(c.Request.Context(), slotID, req.RoomID)
	if err != nil {
		var assigned *AlreadyAssignedError
		switch {
		case errors.Is(err, ErrScheduleNotFound):
			c.JSON(http.StatusNotFound, api.Error(fmt.Sprintf("SchedulePT slot %d not found", slotID)))
		case errors.As(err, &assigned):
			c.JSON(http.StatusConflict, api.Error(fmt.Sprintf("Slot %d is already assigned to room %d", slotID, assigned.RoomID)))
		case errors.Is(err, ErrRoomNotFound):
			c.JSON(http.StatusNotFound, api.Error(fmt.Sprintf("Room %d does not exist", req.RoomID)))
		case errors.Is(err, ErrSlotNotFound):
			c.JSON(http.StatusNotFound, api.Error(fmt.Sprintf("Availability slot %d not found", slotID)))
		case errors.Is(err, ErrRoomConflict):
			c.JSON(http.StatusConflict, api.Error(fmt.Sprintf("Room %d is not available at that date and hour", req.RoomID)))
		default:
			c.JSON(http.StatusInternalServerError, api.Error("Database error while assigning room"))
		}
		return
	}

	c.JSON(http.StatusOK, api.Success(fmt.Sprintf("Room %d assigned to slot %d", req.RoomID, slotID), nil))
}
