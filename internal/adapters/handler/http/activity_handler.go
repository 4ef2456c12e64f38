package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-pulse/internal/core/domain"
	"github.com/comitanigiacomo/kanso-pulse/internal/core/services"
	"github.com/comitanigiacomo/kanso-pulse/internal/platform/logger"
)

const defaultListLimit = 7

type ActivityHandler struct {
	svc *services.ActivityService
	log *logger.Logger
}

func NewActivityHandler(svc *services.ActivityService, log *logger.Logger) *ActivityHandler {
	return &ActivityHandler{svc: svc, log: log}
}

type logActivityRequest struct {
	Steps          int     `json:"steps"`
	CaloriesBurned int     `json:"calories_burned"`
	DistanceKm     float64 `json:"distance_km"`
	ActiveMinutes  int     `json:"active_minutes"`
}

func (r logActivityRequest) input() services.LogActivityInput {
	return services.LogActivityInput{
		Steps:          r.Steps,
		CaloriesBurned: r.CaloriesBurned,
		DistanceKm:     r.DistanceKm,
		ActiveMinutes:  r.ActiveMinutes,
	}
}

type recordActivityRequest struct {
	Date string `json:"date" binding:"required"`
	logActivityRequest
}

func (h *ActivityHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/activities", h.List)
	protected.POST("/activities/today", h.LogToday)
	protected.POST("/activities", h.Record)
}

// List godoc
// @Summary Most recent activity records, newest first
// @Tags activity
// @Param limit query int false "Number of days (default 7)"
// @Success 200 {array} domain.ActivityRecord
// @Router /activities [get]
func (h *ActivityHandler) List(c *gin.Context) {
	limit, ok := queryLimit(c)
	if !ok {
		return
	}

	records, err := h.svc.Recent(c.Request.Context(), limit)
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// LogToday godoc
// @Summary Create or overwrite today's activity
// @Tags activity
// @Security BearerAuth
// @Param body body logActivityRequest true "Today's totals"
// @Success 200 {object} domain.ActivityRecord
// @Failure 400 {object} map[string]string
// @Router /activities/today [post]
func (h *ActivityHandler) LogToday(c *gin.Context) {
	var req logActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	record, err := h.svc.LogToday(c.Request.Context(), req.input())
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// Record godoc
// @Summary Append a finished day
// @Tags activity
// @Security BearerAuth
// @Param body body recordActivityRequest true "Day totals, date as YYYY-MM-DD"
// @Success 201 {object} domain.ActivityRecord
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /activities [post]
func (h *ActivityHandler) Record(c *gin.Context) {
	var req recordActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	date, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		badRequest(c, "invalid date format, use YYYY-MM-DD")
		return
	}

	record, err := h.svc.Record(c.Request.Context(), date, req.input())
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// queryLimit writes the 400 response itself when the value is unusable.
func queryLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return defaultListLimit, true
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		badRequest(c, "limit must be a positive integer")
		return 0, false
	}
	return limit, true
}
