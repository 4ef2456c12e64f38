package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-pulse/internal/adapters/notify"
)

type NotificationHandler struct {
	feed *notify.Feed
}

func NewNotificationHandler(feed *notify.Feed) *NotificationHandler {
	return &NotificationHandler{feed: feed}
}

func (h *NotificationHandler) RegisterRoutes(public *gin.RouterGroup) {
	public.GET("/notifications", h.List)
}

// List godoc
// @Summary Recent toast notifications, newest first
// @Tags notifications
// @Param limit query int false "Maximum number of notifications (default 7)"
// @Success 200 {array} domain.Notification
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	limit, ok := queryLimit(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.feed.Recent(limit))
}
