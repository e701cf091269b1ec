package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/cleaning-booking/internal/auth"
	"github.com/BruksfildServices01/cleaning-booking/internal/httperr"
	"github.com/BruksfildServices01/cleaning-booking/internal/httpresp"
	ucOrder "github.com/BruksfildServices01/cleaning-booking/internal/usecase/order"
)

// ======================================================
// HANDLER
// ======================================================

type OrderHandler struct {
	createUC   *ucOrder.CreateOrder
	listUC     *ucOrder.ListOrders
	getUC      *ucOrder.GetOrder
	cancelUC   *ucOrder.CancelOrder
	payUC      *ucOrder.PayOrder
	checkoutUC *ucOrder.StartCheckout
	assignUC   *ucOrder.AssignEmployee
}

func NewOrderHandler(
	createUC *ucOrder.CreateOrder,
	listUC *ucOrder.ListOrders,
	getUC *ucOrder.GetOrder,
	cancelUC *ucOrder.CancelOrder,
	payUC *ucOrder.PayOrder,
	checkoutUC *ucOrder.StartCheckout,
	assignUC *ucOrder.AssignEmployee,
) *OrderHandler {
	return &OrderHandler{
		createUC:   createUC,
		listUC:     listUC,
		getUC:      getUC,
		cancelUC:   cancelUC,
		payUC:      payUC,
		checkoutUC: checkoutUC,
		assignUC:   assignUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateOrderRequest struct {
	ServiceID    looseInt         `json:"serviceId"`
	Address      string           `json:"address"`
	PropertyType looseInt         `json:"propertyType"`
	Rooms        looseInt         `json:"rooms"`
	Square       looseInt         `json:"square"`
	Date         string           `json:"date"`
	TotalPrice   *decimal.Decimal `json:"totalPrice"`
	Comments     string           `json:"comments"`
}

type CancelOrderRequest struct {
	OrderID looseInt `json:"orderId"`
}

type PayOrderRequest struct {
	Method string `json:"method"`
}

type AssignEmployeeRequest struct {
	EmployeeID looseInt `json:"employeeId"`
}

// ======================================================
// CUSTOMER
// ======================================================

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.listUC.Execute(c.Request.Context(), auth.FromContext(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, orders)
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	o, err := h.createUC.Execute(c.Request.Context(), auth.FromContext(c), ucOrder.CreateOrderInput{
		ServiceID:      req.ServiceID.Uint(),
		PropertyTypeID: req.PropertyType.Uint(),
		Address:        req.Address,
		Rooms:          req.Rooms.IntPtr(),
		Square:         req.Square.IntPtr(),
		Date:           req.Date,
		TotalPrice:     req.TotalPrice,
		Comments:       req.Comments,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": o.ID})
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	o, err := h.getUC.Execute(c.Request.Context(), auth.FromContext(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// Cancel takes the order id from the body: PATCH /orders {orderId}.
func (h *OrderHandler) Cancel(c *gin.Context) {
	var req CancelOrderRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.OrderID.Uint() == 0 {
		httperr.Respond(c, httperr.ErrMissingField("orderId"))
		return
	}

	if err := h.cancelUC.Execute(c.Request.Context(), auth.FromContext(c), req.OrderID.Uint()); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Success(c)
}

// ======================================================
// PAYMENT
// ======================================================

func (h *OrderHandler) Pay(c *gin.Context) {
	id, ok := paramID(c, "orderId")
	if !ok {
		return
	}

	var req PayOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	o, err := h.payUC.Execute(c.Request.Context(), auth.FromContext(c), id, req.Method)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *OrderHandler) Checkout(c *gin.Context) {
	id, ok := paramID(c, "orderId")
	if !ok {
		return
	}

	checkout, err := h.checkoutUC.Execute(c.Request.Context(), auth.FromContext(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, checkout)
}

// ======================================================
// ADMIN
// ======================================================

func (h *OrderHandler) Assign(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req AssignEmployeeRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.assignUC.Execute(c.Request.Context(), id, req.EmployeeID.Uint()); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Success(c)
}
