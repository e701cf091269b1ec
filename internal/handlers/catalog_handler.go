package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cleaning-booking/internal/cache"
	"github.com/BruksfildServices01/cleaning-booking/internal/dto"
	"github.com/BruksfildServices01/cleaning-booking/internal/httperr"
	"github.com/BruksfildServices01/cleaning-booking/internal/httpresp"
	"github.com/BruksfildServices01/cleaning-booking/internal/models"
	"github.com/BruksfildServices01/cleaning-booking/internal/pricing"
)

const popularLimit = 5

// CatalogHandler serves the public price list. Every read goes through the
// catalog cache; admin service changes drop it.
type CatalogHandler struct {
	db    *gorm.DB
	cache cache.Cache
	ttl   time.Duration
}

func NewCatalogHandler(db *gorm.DB, c cache.Cache, ttl time.Duration) *CatalogHandler {
	return &CatalogHandler{db: db, cache: c, ttl: ttl}
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := cache.Remember(c.Request.Context(), h.cache, cache.CatalogPrefix+"services", h.ttl,
		func(ctx context.Context) ([]models.Service, error) {
			var out []models.Service
			err := h.db.WithContext(ctx).
				Where("is_active = ?", true).
				Order("id ASC").
				Find(&out).Error
			return out, err
		})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, services)
}

// Popular returns the active services with the most orders.
func (h *CatalogHandler) Popular(c *gin.Context) {
	services, err := cache.Remember(c.Request.Context(), h.cache, cache.CatalogPrefix+"services:popular", h.ttl,
		func(ctx context.Context) ([]dto.PopularServiceDTO, error) {
			var out []dto.PopularServiceDTO
			err := h.db.WithContext(ctx).
				Model(&models.Service{}).
				Select(`services.id, services.name, services.description,
					services.price_per_square, services.base_price, services.duration,
					services.category_id, services.image_url,
					COUNT(orders.id) AS order_count`).
				Joins("LEFT JOIN orders ON orders.service_id = services.id").
				Where("services.is_active = ?", true).
				Group("services.id").
				Order("order_count DESC, services.id ASC").
				Limit(popularLimit).
				Scan(&out).Error
			return out, err
		})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, services)
}

func (h *CatalogHandler) GetService(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	s, err := h.service(c.Request.Context(), id)
	if err != nil {
		respondDB(c, err, "service_not_found")
		return
	}
	c.JSON(http.StatusOK, s)
}

// Quote prices a service for ?square= and ?rooms= the same way order
// creation checks submitted totals.
func (h *CatalogHandler) Quote(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	square, err := queryInt(c, "square")
	if err != nil {
		httperr.BadRequest(c, "invalid_request")
		return
	}
	var rooms *int
	if c.Query("rooms") != "" {
		r, err := queryInt(c, "rooms")
		if err != nil {
			httperr.BadRequest(c, "invalid_request")
			return
		}
		rooms = &r
	}

	s, err := h.service(c.Request.Context(), id)
	if err != nil {
		respondDB(c, err, "service_not_found")
		return
	}

	total, ok := pricing.Quote(s, square, rooms)
	if !ok {
		httperr.BadRequest(c, "not_quotable")
		return
	}

	c.JSON(http.StatusOK, dto.QuoteDTO{
		ServiceID:  s.ID,
		Square:     square,
		Rooms:      rooms,
		TotalPrice: total,
	})
}

func (h *CatalogHandler) ListPropertyTypes(c *gin.Context) {
	types, err := cache.Remember(c.Request.Context(), h.cache, cache.CatalogPrefix+"property-types", h.ttl,
		func(ctx context.Context) ([]models.PropertyType, error) {
			var out []models.PropertyType
			err := h.db.WithContext(ctx).Order("id ASC").Find(&out).Error
			return out, err
		})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, types)
}

func (h *CatalogHandler) ListOrderStatuses(c *gin.Context) {
	statuses, err := cache.Remember(c.Request.Context(), h.cache, cache.CatalogPrefix+"order-statuses", h.ttl,
		func(ctx context.Context) ([]models.OrderStatus, error) {
			var out []models.OrderStatus
			err := h.db.WithContext(ctx).Order("id ASC").Find(&out).Error
			return out, err
		})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, statuses)
}

func (h *CatalogHandler) service(ctx context.Context, id uint) (*models.Service, error) {
	return cache.Remember(ctx, h.cache, fmt.Sprintf("%sservice:%d", cache.CatalogPrefix, id), h.ttl,
		func(ctx context.Context) (*models.Service, error) {
			var s models.Service
			if err := h.db.WithContext(ctx).First(&s, id).Error; err != nil {
				return nil, err
			}
			return &s, nil
		})
}

func queryInt(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
