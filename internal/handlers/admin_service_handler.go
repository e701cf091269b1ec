package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/cleaning-booking/internal/cache"
	"github.com/BruksfildServices01/cleaning-booking/internal/httperr"
	"github.com/BruksfildServices01/cleaning-booking/internal/httpresp"
	"github.com/BruksfildServices01/cleaning-booking/internal/models"
)

const defaultCategoryID = 1

// AdminServiceHandler edits the price list. Every successful write drops
// the catalog cache.
type AdminServiceHandler struct {
	db    *gorm.DB
	cache cache.Cache
}

func NewAdminServiceHandler(db *gorm.DB, c cache.Cache) *AdminServiceHandler {
	return &AdminServiceHandler{db: db, cache: c}
}

// --------- Requests ---------

type ServiceRequest struct {
	ID             looseInt         `json:"id"`
	Name           *string          `json:"name"`
	Description    *string          `json:"description"`
	BasePrice      *decimal.Decimal `json:"basePrice"`
	PricePerSquare *decimal.Decimal `json:"pricePerSquare"`
	CategoryID     looseInt         `json:"categoryId"`
	Duration       looseInt         `json:"duration"`
	ImageURL       *string          `json:"imageUrl"`
	IsActive       *bool            `json:"isActive"`
}

// --------- Handlers ---------

func (h *AdminServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.WithContext(c.Request.Context()).
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, services)
}

func (h *AdminServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		httperr.Respond(c, httperr.ErrMissingField("name"))
		return
	}

	s := models.Service{
		CategoryID: defaultCategoryID,
		IsActive:   true,
	}
	if !h.apply(c, &s, &req) {
		return
	}

	if err := h.db.WithContext(c.Request.Context()).
		Omit(clause.Associations).
		Create(&s).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	cache.InvalidateCatalog(c.Request.Context(), h.cache)
	c.JSON(http.StatusCreated, s)
}

func (h *AdminServiceHandler) Update(c *gin.Context) {
	var req ServiceRequest
	if !bindJSON(c, &req) {
		return
	}
	id, ok := targetID(c, req.ID)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	var s models.Service
	if err := h.db.WithContext(ctx).First(&s, id).Error; err != nil {
		respondDB(c, err, "service_not_found")
		return
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		httperr.Respond(c, httperr.ErrMissingField("name"))
		return
	}
	if !h.apply(c, &s, &req) {
		return
	}

	if err := h.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(&s).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	cache.InvalidateCatalog(ctx, h.cache)
	c.JSON(http.StatusOK, s)
}

func (h *AdminServiceHandler) Delete(c *gin.Context) {
	id, ok := deleteTargetID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	res := h.db.WithContext(ctx).Delete(&models.Service{}, id)
	if res.Error != nil {
		httperr.Respond(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found")
		return
	}

	cache.InvalidateCatalog(ctx, h.cache)
	httpresp.Success(c)
}

// apply copies the fields present in req onto s.
func (h *AdminServiceHandler) apply(c *gin.Context, s *models.Service, req *ServiceRequest) bool {
	if req.Name != nil {
		s.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		s.Description = *req.Description
	}
	if req.BasePrice != nil {
		if req.BasePrice.IsNegative() {
			httperr.BadRequest(c, "invalid_request")
			return false
		}
		s.BasePrice = req.BasePrice
	}
	if req.PricePerSquare != nil {
		if req.PricePerSquare.IsNegative() {
			httperr.BadRequest(c, "invalid_request")
			return false
		}
		s.PricePerSquare = req.PricePerSquare
	}
	if req.Duration.Set {
		if req.Duration.Value < 0 {
			httperr.BadRequest(c, "invalid_request")
			return false
		}
		s.Duration = int(req.Duration.Value)
	}
	if req.ImageURL != nil {
		s.ImageURL = strings.TrimSpace(*req.ImageURL)
	}
	if req.IsActive != nil {
		s.IsActive = *req.IsActive
	}

	if req.CategoryID.Set {
		var count int64
		h.db.WithContext(c.Request.Context()).
			Model(&models.ServiceCategory{}).
			Where("id = ?", req.CategoryID.Uint()).
			Count(&count)
		if count == 0 {
			httperr.BadRequest(c, "invalid_category")
			return false
		}
		s.CategoryID = req.CategoryID.Uint()
	}
	return true
}
