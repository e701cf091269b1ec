package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/cleaning-booking/internal/auth"
	"github.com/BruksfildServices01/cleaning-booking/internal/httperr"
	"github.com/BruksfildServices01/cleaning-booking/internal/httpresp"
	ucNotification "github.com/BruksfildServices01/cleaning-booking/internal/usecase/notification"
)

type NotificationHandler struct {
	inbox  *ucNotification.Inbox
	sendUC *ucNotification.Send
}

func NewNotificationHandler(inbox *ucNotification.Inbox, sendUC *ucNotification.Send) *NotificationHandler {
	return &NotificationHandler{inbox: inbox, sendUC: sendUC}
}

type SendNotificationRequest struct {
	UserID    looseInt `json:"userId"`
	Title     string   `json:"title"`
	Message   string   `json:"message"`
	TypeID    looseInt `json:"typeId"`
	RelatedID looseInt `json:"relatedId"`
}

func (h *NotificationHandler) List(c *gin.Context) {
	items, err := h.inbox.List(c.Request.Context(), auth.FromContext(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, items)
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	n, err := h.inbox.UnreadCount(c.Request.Context(), auth.FromContext(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.inbox.MarkRead(c.Request.Context(), auth.FromContext(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Success(c)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	n, err := h.inbox.MarkAllRead(c.Request.Context(), auth.FromContext(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Success(c, gin.H{"updated": n})
}

// Send is the admin endpoint for writing a notification to any user.
func (h *NotificationHandler) Send(c *gin.Context) {
	var req SendNotificationRequest
	if !bindJSON(c, &req) {
		return
	}

	n, err := h.sendUC.Execute(c.Request.Context(), ucNotification.SendInput{
		UserID:    req.UserID.Uint(),
		Title:     req.Title,
		Message:   req.Message,
		TypeID:    req.TypeID.UintPtr(),
		RelatedID: req.RelatedID.UintPtr(),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, n)
}
