package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-pulse/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/kanso-pulse/internal/core/services"
	"github.com/comitanigiacomo/kanso-pulse/internal/platform/logger"
)

type GoalHandler struct {
	store *services.GoalStore
	log   *logger.Logger
}

func NewGoalHandler(store *services.GoalStore, log *logger.Logger) *GoalHandler {
	return &GoalHandler{store: store, log: log}
}

type setTargetRequest struct {
	Target *float64 `json:"target" binding:"required"`
}

func (h *GoalHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/goals", h.List)
	public.GET("/goals/:name", h.Get)
	protected.PUT("/goals/:name", h.SetTarget)
}

// List godoc
// @Summary List goal targets
// @Tags goals
// @Param period query string false "daily, weekly or custom; omitted returns every goal"
// @Success 200 {array} domain.GoalTarget
// @Router /goals [get]
func (h *GoalHandler) List(c *gin.Context) {
	period, filtered := c.GetQuery("period")
	if !filtered {
		c.JSON(http.StatusOK, h.store.List())
		return
	}

	goals, err := h.store.ListByPeriod(period)
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, goals)
}

// Get godoc
// @Summary Get one goal by name
// @Tags goals
// @Param name path string true "Goal name"
// @Success 200 {object} domain.GoalTarget
// @Failure 404 {object} map[string]string
// @Router /goals/{name} [get]
func (h *GoalHandler) Get(c *gin.Context) {
	goal, err := h.store.Get(c.Param("name"))
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// SetTarget godoc
// @Summary Change a goal target
// @Tags goals
// @Security BearerAuth
// @Param name path string true "Goal name"
// @Param body body setTargetRequest true "New target"
// @Success 200 {object} domain.GoalTarget
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /goals/{name} [put]
func (h *GoalHandler) SetTarget(c *gin.Context) {
	var req setTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	goal, err := h.store.SetTarget(c.Request.Context(), c.Param("name"), *req.Target)
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	// without auth there is no token subject to attribute the change to
	subject, ok := middleware.GetSubject(c)
	if !ok {
		subject = "anonymous"
	}
	h.log.Info("goal target changed", "goal", goal.Name, "target", goal.Target, "subject", subject)

	c.JSON(http.StatusOK, goal)
}
