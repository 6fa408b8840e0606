package room

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/coraxie-ca/comp3005-project/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreateRoom godoc
// @Summary      Create room
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateRoomRequest  true  "Room data"
// @Success      201      {object}  api.Result
// @Failure      400      {object}  api.Result
// @Failure      500      {object}  api.Result
// @Router       /admin/rooms [post]
func (h *Handler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Error(err.Error()))
		return
	}

	room, err := h.service.CreateRoom(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.Error("Failed to create room"))
		return
	}

	c.JSON(http.StatusCreated, api.Success(fmt.Sprintf("Room %d created", room.ID), room))
}

// ListRooms godoc
// @Summary      List rooms
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  api.Result
// @Failure      500  {object}  api.Result
// @Router       /admin/rooms [get]
func (h *Handler) ListRooms(c *gin.Context) {
	rooms, err := h.service.ListRooms(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.Error("Failed to fetch rooms"))
		return
	}

	c.JSON(http.StatusOK, api.Success("Rooms", rooms))
}

// LogIssue godoc
// @Summary      Log equipment issue
// @Description  Records a maintenance issue with status "Needs Repair".
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      LogIssueRequest  true  "Issue data"
// @Success      201      {object}  api.Result
// @Failure      400      {object}  api.Result
// @Failure      404      {object}  api.Result
// @Failure      409      {object}  api.Result
// @Router       /admin/equipment [post]
func (h *Handler) LogIssue(c *gin.Context) {
	var req LogIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Error(err.Error()))
		return
	}

	equipment, err := h.service.LogIssue(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrRoomNotFound):
			c.JSON(http.StatusNotFound, api.Error(fmt.Sprintf("Room %d does not exist", req.RoomID)))
		case errors.Is(err, ErrEquipmentExists):
			c.JSON(http.StatusConflict, api.Error(fmt.Sprintf("Equipment %d already has a logged issue", req.EquipmentID)))
		default:
			c.JSON(http.StatusInternalServerError, api.Error("Failed to log equipment issue"))
		}
		return
	}

	msg := fmt.Sprintf("Issue logged for equipment %d in room %d. Status: %s", equipment.EquipmentID, equipment.RoomID, equipment.Status)
	c.JSON(http.StatusCreated, api.Success(msg, equipment))
}

// UpdateStatus godoc
// @Summary      Update equipment status
// @Description  Overwrites the status with the provided value. No transition rules are enforced.
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        equipmentID  path      int                  true  "Equipment ID"
// @Param        request      body      UpdateStatusRequest  true  "New status"
// @Success      200          {object}  api.Result
// @Failure      400          {object}  api.Result
// @Failure      404          {object}  api.Result
// @Router       /admin/equipment/{equipmentID}/status [put]
func (h *Handler) UpdateStatus(c *gin.Context) {
	equipmentID, err := strconv.Atoi(c.Param("equipmentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.Error("Invalid equipment ID"))
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Error(err.Error()))
		return
	}

	equipment, err := h.service.UpdateStatus(c.Request.Context(), equipmentID, req)
	if err != nil {
		if errors.Is(err, ErrEquipmentNotFound) {
			c.JSON(http.StatusNotFound, api.Error(fmt.Sprintf("Equipment %d not found", equipmentID)))
			return
		}
		c.JSON(http.StatusInternalServerError, api.Error("Failed to update equipment status"))
		return
	}

	msg := fmt.Sprintf("Status for equipment %d updated to: %s", equipmentID, equipment.Status)
	c.JSON(http.StatusOK, api.Success(msg, equipment))
}

// GetEquipment godoc
// @Summary      Get equipment record
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        equipmentID  path      int  true  "Equipment ID"
// @Success      200          {object}  api.Result
// @Failure      400          {object}  api.Result
// @Failure      404          {object}  api.Result
// @Router       /admin/equipment/{equipmentID} [get]
func (h *Handler) GetEquipment(c *gin.Context) {
	equipmentID, err := strconv.Atoi(c.Param("equipmentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.Error("Invalid equipment ID"))
		return
	}

	equipment, err := h.service.GetEquipment(c.Request.Context(), equipmentID)
	if err != nil {
		if errors.Is(err, ErrEquipmentNotFound) {
			c.JSON(http.StatusNotFound, api.Error(fmt.Sprintf("Equipment %d not found", equipmentID)))
			return
		}
		c.JSON(http.StatusInternalServerError, api.Error("Failed to fetch equipment"))
		return
	}

	c.JSON(http.StatusOK, api.Success("Equipment", equipment))
}

// ListEquipment godoc
// @Summary      List equipment by status
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        status  query     string  true  "Status filter"
// @Success      200     {object}  api.Result
// @Failure      400     {object}  api.Result
// @Router       /admin/equipment [get]
func (h *Handler) ListEquipment(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		c.JSON(http.StatusBadRequest, api.Error("status query parameter required"))
		return
	}

	equipment, err := h.service.ListEquipmentByStatus(c.Request.Context(), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.Error("Failed to fetch equipment"))
		return
	}

	c.JSON(http.StatusOK, api.Success("Equipment", equipment))
}
