package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-pulse/internal/core/domain"
	"github.com/comitanigiacomo/kanso-pulse/internal/core/services"
	"github.com/comitanigiacomo/kanso-pulse/internal/platform/logger"
)

type NutritionHandler struct {
	svc *services.NutritionService
	log *logger.Logger
}

func NewNutritionHandler(svc *services.NutritionService, log *logger.Logger) *NutritionHandler {
	return &NutritionHandler{svc: svc, log: log}
}

type logMealRequest struct {
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

func (h *NutritionHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/nutrition", h.List)
	protected.POST("/nutrition/today/meals", h.LogMeal)
	protected.POST("/nutrition/today/water", h.AddWater)
}

// List godoc
// @Summary Most recent nutrition records, newest first
// @Tags nutrition
// @Param limit query int false "Number of days (default 7)"
// @Success 200 {array} domain.NutritionRecord
// @Router /nutrition [get]
func (h *NutritionHandler) List(c *gin.Context) {
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

// LogMeal godoc
// @Summary Add a meal to today's food journal
// @Tags nutrition
// @Security BearerAuth
// @Param body body logMealRequest true "Meal"
// @Success 200 {object} domain.NutritionRecord
// @Router /nutrition/today/meals [post]
func (h *NutritionHandler) LogMeal(c *gin.Context) {
	var req logMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	record, err := h.svc.LogMeal(c.Request.Context(), domain.Meal{
		Calories: req.Calories,
		ProteinG: req.ProteinG,
		CarbsG:   req.CarbsG,
		FatG:     req.FatG,
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// AddWater godoc
// @Summary Add one glass of water to today
// @Tags nutrition
// @Security BearerAuth
// @Success 200 {object} domain.NutritionRecord
// @Router /nutrition/today/water [post]
func (h *NutritionHandler) AddWater(c *gin.Context) {
	record, err := h.svc.AddWater(c.Request.Context())
	if err != nil {
		handleError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, record)
}
