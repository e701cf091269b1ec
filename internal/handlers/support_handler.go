package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/cleaning-booking/internal/auth"
	"github.com/BruksfildServices01/cleaning-booking/internal/httperr"
	"github.com/BruksfildServices01/cleaning-booking/internal/httpresp"
	ucTicket "github.com/BruksfildServices01/cleaning-booking/internal/usecase/ticket"
)

// SupportUseCases is shared by the customer and the admin handler.
type SupportUseCases struct {
	Create       *ucTicket.CreateTicket
	List         *ucTicket.ListTickets
	Get          *ucTicket.GetTicket
	Post         *ucTicket.PostMessage
	PostGuest    *ucTicket.PostGuestMessage
	MarkRead     *ucTicket.MarkRead
	UpdateStatus *ucTicket.UpdateStatus
	CountUnread  *ucTicket.CountUnread
}

// SupportHandler serves one surface of the helpdesk. The same use cases
// back /support and /admin/support; the surface decides the scoping.
type SupportHandler struct {
	surface ucTicket.Surface
	uc      SupportUseCases
}

func NewSupportHandler(surface ucTicket.Surface, uc SupportUseCases) *SupportHandler {
	return &SupportHandler{surface: surface, uc: uc}
}

// --------- Requests ---------

type CreateTicketRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type PostMessageRequest struct {
	Message string `json:"message"`
}

type GuestMessageRequest struct {
	TicketID looseInt `json:"ticketId"`
	Message  string   `json:"message"`
}

type UpdateTicketStatusRequest struct {
	Status string `json:"status"`
}

// --------- Handlers ---------

func (h *SupportHandler) List(c *gin.Context) {
	tickets, err := h.uc.List.Execute(c.Request.Context(), h.surface, auth.FromContext(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, tickets)
}

// Create opens a ticket. Anonymous callers get a guest ticket.
func (h *SupportHandler) Create(c *gin.Context) {
	var req CreateTicketRequest
	if !bindJSON(c, &req) {
		return
	}

	t, err := h.uc.Create.Execute(c.Request.Context(), auth.FromContext(c), ucTicket.CreateTicketInput{
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *SupportHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	t, err := h.uc.Get.Execute(c.Request.Context(), h.surface, auth.FromContext(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *SupportHandler) PostMessage(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req PostMessageRequest
	if !bindJSON(c, &req) {
		return
	}

	m, err := h.uc.Post.Execute(c.Request.Context(), h.surface, auth.FromContext(c), id, req.Message)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// PostGuestMessage serves the contact form: POST /support/messages.
func (h *SupportHandler) PostGuestMessage(c *gin.Context) {
	var req GuestMessageRequest
	if !bindJSON(c, &req) {
		return
	}

	m, err := h.uc.PostGuest.Execute(c.Request.Context(), auth.FromContext(c), ucTicket.GuestMessageInput{
		TicketID: req.TicketID.Uint(),
		Message:  req.Message,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *SupportHandler) MarkRead(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	n, err := h.uc.MarkRead.Execute(c.Request.Context(), h.surface, auth.FromContext(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Success(c, gin.H{"updated": n})
}

func (h *SupportHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateTicketStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	t, err := h.uc.UpdateStatus.Execute(c.Request.Context(), h.surface, auth.FromContext(c), id, req.Status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *SupportHandler) UnreadCount(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	n, err := h.uc.CountUnread.Execute(c.Request.Context(), auth.FromContext(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}
