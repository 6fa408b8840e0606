package health

import (
	"fmt"
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

// LogMetric godoc
// @Summary      Log a health metric
// @Description  Appends a metric entry. Active goals whose target weight the entry reaches are completed in the same transaction.
// @Tags         health
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      LogMetricRequest  true  "Metric entry"
// @Success      201      {object}  api.Result
// @Failure      400      {object}  api.Result
// @Failure      500      {object}  api.Result
// @Router       /me/metrics [post]
func (h *Handler) LogMetric(c *gin.Context) {
	memberID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.Error("User not authenticated"))
		return
	}

	var req LogMetricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Error(err.Error()))
		return
	}

	resp, err := h.service.LogMetric(c.Request.Context(), memberID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.Error("Failed to log health metric"))
		return
	}

	msg := "Health metric logged"
	if n := len(resp.CompletedGoals); n > 0 {
		msg = fmt.Sprintf("Health metric logged; %d fitness goal(s) completed", n)
	}
	c.JSON(http.StatusCreated, api.Success(msg, resp))
}

// ListMetrics godoc
// @Summary      List my health metrics
// @Tags         health
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  api.Result
// @Failure      500  {object}  api.Result
// @Router       /me/metrics [get]
func (h *Handler) ListMetrics(c *gin.Context) {
	memberID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.Error("User not authenticated"))
		return
	}

	records, err := h.service.ListMetrics(c.Request.Context(), memberID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.Error("Failed to fetch health metrics"))
		return
	}

	c.JSON(http.StatusOK, api.Success("Health metrics", records))
}

// SetGoal godoc
// @Summary      Set a fitness goal
// @Tags         health
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      SetGoalRequest  true  "Goal targets"
// @Success      201      {object}  api.Result
// @Failure      400      {object}  api.Result
// @Failure      500      {object}  api.Result
// @Router       /me/goals [post]
func (h *Handler) SetGoal(c *gin.Context) {
	memberID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.Error("User not authenticated"))
		return
	}

	var req SetGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Error(err.Error()))
		return
	}

	goal, err := h.service.SetGoal(c.Request.Context(), memberID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.Error("Failed to set fitness goal"))
		return
	}

	c.JSON(http.StatusCreated, api.Success("New fitness goal set", goal))
}

// ListGoals godoc
// @Summary      List my fitness goals
// @Tags         health
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  api.Result
// @Failure      500  {object}  api.Result
// @Router       /me/goals [get]
func (h *Handler) ListGoals(c *gin.Context) {
	memberID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.Error("User not authenticated"))
		return
	}

	goals, err := h.service.ListGoals(c.Request.Context(), memberID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.Error("Failed to fetch fitness goals"))
		return
	}

	c.JSON(http.StatusOK, api.Success("Fitness goals", goals))
}
