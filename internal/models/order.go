package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:20;uniqueIndex;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
}

type PaymentStatus struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:20;uniqueIndex;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
}

type PaymentMethod struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:20;uniqueIndex;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
}

// Order never changes owner. TotalPrice is fixed when the order is placed.
type Order struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	EmployeeID *uint `gorm:"index" json:"employeeId"`
	Employee   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ServiceID uint    `gorm:"not null;index" json:"serviceId"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	PropertyTypeID uint         `gorm:"not null" json:"propertyTypeId"`
	PropertyType   PropertyType `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	Address    string          `gorm:"size:255;not null" json:"address"`
	Rooms      *int            `json:"rooms"`
	Square     int             `gorm:"not null;default:0" json:"square"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"totalPrice"`
	Date       time.Time       `gorm:"not null;index" json:"date"`
	EndDate    *time.Time      `json:"endDate"`
	Comments   string          `gorm:"size:500" json:"comments"`

	StatusID uint        `gorm:"not null;default:1;index" json:"statusId"`
	Status   OrderStatus `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	PaymentStatusID uint           `gorm:"not null;default:1" json:"paymentStatusId"`
	PaymentStatus   PaymentStatus  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	PaymentMethodID *uint          `json:"paymentMethodId"`
	PaymentMethod   *PaymentMethod `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}
