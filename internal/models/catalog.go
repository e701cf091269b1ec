package models

import "github.com/shopspring/decimal"

func init() {
	// Money is exchanged with clients as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

type ServiceCategory struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
}

// Service is a price-list entry. At most one of BasePrice and PricePerSquare
// drives pricing.
type Service struct {
	ID             uint             `gorm:"primaryKey" json:"id"`
	Name           string           `gorm:"size:100;not null" json:"name"`
	Description    string           `gorm:"type:text" json:"description"`
	PricePerSquare *decimal.Decimal `gorm:"type:numeric(12,2)" json:"pricePerSquare"`
	BasePrice      *decimal.Decimal `gorm:"type:numeric(12,2)" json:"basePrice"`
	Duration       int              `json:"duration"`
	IsActive       bool             `gorm:"not null" json:"isActive"`
	ImageURL       string           `gorm:"size:255" json:"imageUrl"`

	CategoryID uint            `gorm:"not null;index" json:"categoryId"`
	Category   ServiceCategory `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
}

type PropertyType struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:20;uniqueIndex;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
}
