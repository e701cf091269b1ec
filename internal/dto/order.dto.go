package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type LookupDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// OrderDTO is the owner's view of an order.
type OrderDTO struct {
	ID              uint            `json:"id"`
	UserID          uint            `json:"userId"`
	EmployeeID      *uint           `json:"employeeId"`
	ServiceID       uint            `json:"serviceId"`
	ServiceName     string          `json:"serviceName"`
	PropertyTypeID  uint            `json:"propertyTypeId"`
	Address         string          `json:"address"`
	Rooms           *int            `json:"rooms"`
	Square          int             `json:"square"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	Date            time.Time       `json:"date"`
	EndDate         *time.Time      `json:"endDate"`
	Comments        string          `json:"comments"`
	Status          LookupDTO       `json:"status"`
	PaymentStatusID uint            `json:"paymentStatusId"`
	PaymentStatus   string          `json:"paymentStatus"`
	PaymentMethodID *uint           `json:"paymentMethodId"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// AdminOrderDTO is a back-office row joined with owner and status names.
type AdminOrderDTO struct {
	ID                uint            `json:"id"`
	UserID            uint            `json:"userId"`
	UserName          string          `json:"userName"`
	EmployeeID        *uint           `json:"employeeId"`
	EmployeeName      *string         `json:"employeeName"`
	ServiceID         uint            `json:"serviceId"`
	ServiceName       string          `json:"serviceName"`
	PropertyTypeID    uint            `json:"propertyTypeId"`
	Address           string          `json:"address"`
	Rooms             *int            `json:"rooms"`
	Square            int             `json:"square"`
	TotalPrice        decimal.Decimal `json:"totalPrice"`
	Date              time.Time       `json:"date"`
	EndDate           *time.Time      `json:"endDate"`
	Comments          string          `json:"comments"`
	StatusID          uint            `json:"statusId"`
	StatusDescription string          `json:"statusDescription"`
	PaymentStatusID   uint            `json:"paymentStatusId"`
	PaymentMethodID   *uint           `json:"paymentMethodId"`
	CreatedAt         time.Time       `json:"createdAt"`
}
