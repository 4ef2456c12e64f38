package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-pulse/internal/core/services"
	"github.com/comitanigiacomo/kanso-pulse/internal/platform/logger"
)

type MetricsHandler struct {
	dashboard *services.DashboardService
	log       *logger.Logger
}

func NewMetricsHandler(dashboard *services.DashboardService, log *logger.Logger) *MetricsHandler {
	return &MetricsHandler{dashboard: dashboard, log: log}
}

func (h *MetricsHandler) RegisterRoutes(public *gin.RouterGroup) {
	public.GET("/dashboard/summary", h.Summary)
	public.GET("/profile", h.Profile)

	m := public.Group("/metrics")
	{
		m.GET("/bmi", h.BMI)
		m.GET("/calorie-balance", h.CalorieBalance)
		m.GET("/weight-projection", h.WeightProjection)
	}
}

// Summary godoc
// @Summary Everything the dashboard renders for today
// @Tags metrics
// @Success 200 {object} domain.DashboardSummary
// @Router /dashboard/summary [get]
func (h *MetricsHandler) Summary(c *gin.Context) {
	summary, err := h.dashboard.Summary(c.Request.Context())
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Profile godoc
// @Summary The configured user profile
// @Tags metrics
// @Success 200 {object} domain.UserProfile
// @Failure 404 {object} map[string]string
// @Router /profile [get]
func (h *MetricsHandler) Profile(c *gin.Context) {
	profile, err := h.dashboard.Profile(c.Request.Context())
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// BMI godoc
// @Summary Body mass index and category
// @Tags metrics
// @Param weight_kg query number true "Weight in kg"
// @Param height_cm query number true "Height in cm"
// @Success 200 {object} domain.BMIResult
// @Failure 400 {object} map[string]string
// @Router /metrics/bmi [get]
func (h *MetricsHandler) BMI(c *gin.Context) {
	weight, ok := queryFloat(c, "weight_kg")
	if !ok {
		return
	}
	height, ok := queryFloat(c, "height_cm")
	if !ok {
		return
	}

	res, err := h.dashboard.BMI(weight, height)
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// CalorieBalance godoc
// @Summary Consumed minus burned calories
// @Tags metrics
// @Param consumed query int true "Calories consumed"
// @Param burned query int true "Calories burned"
// @Success 200 {object} map[string]int
// @Router /metrics/calorie-balance [get]
func (h *MetricsHandler) CalorieBalance(c *gin.Context) {
	consumed, err := strconv.Atoi(c.Query("consumed"))
	if err != nil {
		badRequest(c, "consumed must be an integer")
		return
	}
	burned, err := strconv.Atoi(c.Query("burned"))
	if err != nil {
		badRequest(c, "burned must be an integer")
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance": h.dashboard.CalorieBalance(consumed, burned)})
}

// WeightProjection godoc
// @Summary Weeks needed to reach a weekly weight-change goal
// @Tags metrics
// @Param weekly_deficit_kcal query number true "Weekly calorie deficit"
// @Param goal_kg_per_week query number true "Weight change goal per week"
// @Success 200 {object} domain.WeightProjection
// @Router /metrics/weight-projection [get]
func (h *MetricsHandler) WeightProjection(c *gin.Context) {
	deficit, ok := queryFloat(c, "weekly_deficit_kcal")
	if !ok {
		return
	}
	goal, ok := queryFloat(c, "goal_kg_per_week")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.dashboard.WeightProjection(deficit, goal))
}

func queryFloat(c *gin.Context, name string) (float64, bool) {
	v, err := strconv.ParseFloat(c.Query(name), 64)
	if err != nil {
		badRequest(c, name+" must be a number")
		return 0, false
	}
	return v, true
}
