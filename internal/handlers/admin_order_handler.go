package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/cleaning-booking/internal/httperr"
	"github.com/BruksfildServices01/cleaning-booking/internal/httpresp"
	ucOrder "github.com/BruksfildServices01/cleaning-booking/internal/usecase/order"
)

type AdminOrderHandler struct {
	listUC   *ucOrder.ListAdminOrders
	createUC *ucOrder.AdminCreateOrder
	updateUC *ucOrder.AdminUpdateOrder
	deleteUC *ucOrder.AdminDeleteOrder
}

func NewAdminOrderHandler(
	listUC *ucOrder.ListAdminOrders,
	createUC *ucOrder.AdminCreateOrder,
	updateUC *ucOrder.AdminUpdateOrder,
	deleteUC *ucOrder.AdminDeleteOrder,
) *AdminOrderHandler {
	return &AdminOrderHandler{
		listUC:   listUC,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

// --------- Requests ---------

type AdminCreateOrderRequest struct {
	UserID         looseInt         `json:"userId"`
	StatusID       looseInt         `json:"statusId"`
	TotalPrice     *decimal.Decimal `json:"totalPrice"`
	ServiceID      looseInt         `json:"serviceId"`
	PropertyTypeID looseInt         `json:"propertyTypeId"`
	EmployeeID     looseInt         `json:"employeeId"`
	Address        string           `json:"address"`
	Date           string           `json:"date"`
	Comments       string           `json:"comments"`
}

// AdminUpdateOrderRequest has no userId: an order never changes owner.
type AdminUpdateOrderRequest struct {
	ID              looseInt         `json:"id"`
	StatusID        looseInt         `json:"statusId"`
	PaymentStatusID looseInt         `json:"paymentStatusId"`
	TotalPrice      *decimal.Decimal `json:"totalPrice"`
	Address         *string          `json:"address"`
	Date            *string          `json:"date"`
	Comments        *string          `json:"comments"`
}

// --------- Handlers ---------

func (h *AdminOrderHandler) List(c *gin.Context) {
	h.list(c, false)
}

// ListUnassigned serves /admin/orders/emp: orders still waiting for an
// employee.
func (h *AdminOrderHandler) ListUnassigned(c *gin.Context) {
	h.list(c, true)
}

func (h *AdminOrderHandler) list(c *gin.Context, unassignedOnly bool) {
	orders, err := h.listUC.Execute(c.Request.Context(), unassignedOnly)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, orders)
}

func (h *AdminOrderHandler) Create(c *gin.Context) {
	var req AdminCreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	o, err := h.createUC.Execute(c.Request.Context(), ucOrder.AdminCreateOrderInput{
		UserID:         req.UserID.Uint(),
		StatusID:       req.StatusID.Uint(),
		TotalPrice:     req.TotalPrice,
		ServiceID:      req.ServiceID.Uint(),
		PropertyTypeID: req.PropertyTypeID.Uint(),
		EmployeeID:     req.EmployeeID.UintPtr(),
		Address:        req.Address,
		Date:           req.Date,
		Comments:       req.Comments,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

func (h *AdminOrderHandler) Update(c *gin.Context) {
	var req AdminUpdateOrderRequest
	if !bindJSON(c, &req) {
		return
	}
	id, ok := targetID(c, req.ID)
	if !ok {
		return
	}

	o, err := h.updateUC.Execute(c.Request.Context(), id, ucOrder.AdminUpdateOrderInput{
		StatusID:        req.StatusID.UintPtr(),
		PaymentStatusID: req.PaymentStatusID.UintPtr(),
		TotalPrice:      req.TotalPrice,
		Address:         req.Address,
		Date:            req.Date,
		Comments:        req.Comments,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *AdminOrderHandler) Delete(c *gin.Context) {
	id, ok := deleteTargetID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Success(c)
}
