package dto

import "github.com/shopspring/decimal"

type PopularServiceDTO struct {
	ID             uint             `json:"id"`
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	PricePerSquare *decimal.Decimal `json:"pricePerSquare"`
	BasePrice      *decimal.Decimal `json:"basePrice"`
	Duration       int              `json:"duration"`
	CategoryID     uint             `json:"categoryId"`
	ImageURL       string           `json:"imageUrl"`
	OrderCount     int64            `json:"orderCount"`
}

type QuoteDTO struct {
	ServiceID  uint            `json:"serviceId"`
	Square     int             `json:"square"`
	Rooms      *int            `json:"rooms"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}
