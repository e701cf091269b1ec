package db

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/cleaning-booking/internal/domain/notification"
	"github.com/BruksfildServices01/cleaning-booking/internal/domain/order"
	"github.com/BruksfildServices01/cleaning-booking/internal/domain/ticket"
	"github.com/BruksfildServices01/cleaning-booking/internal/domain/user"
	"github.com/BruksfildServices01/cleaning-booking/internal/models"
)

// SeedReferenceData upserts the lookup rows the application relies on. It is
// run by cmd/seed, never by the API process. Ids are fixed because code
// refers to them through the domain status types.
func SeedReferenceData(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		roles := []models.Role{}
		for _, r := range user.AllRoles {
			roles = append(roles, models.Role{ID: r.ID(), Name: r.Name(), Description: roleDescriptions[r]})
		}
		if err := upsert(tx, &roles); err != nil {
			return err
		}

		orderStatuses := []models.OrderStatus{}
		for _, s := range order.AllStatuses {
			orderStatuses = append(orderStatuses, models.OrderStatus{ID: s.ID(), Name: s.Name(), Description: orderStatusDescriptions[s]})
		}
		if err := upsert(tx, &orderStatuses); err != nil {
			return err
		}

		paymentStatuses := []models.PaymentStatus{}
		for _, s := range order.AllPaymentStatuses {
			paymentStatuses = append(paymentStatuses, models.PaymentStatus{ID: s.ID(), Name: s.Name(), Description: paymentStatusDescriptions[s]})
		}
		if err := upsert(tx, &paymentStatuses); err != nil {
			return err
		}

		methods := []models.PaymentMethod{}
		for _, m := range order.AllPaymentMethods {
			methods = append(methods, models.PaymentMethod{ID: m.ID(), Name: m.Name(), Description: methodDescriptions[m]})
		}
		if err := upsert(tx, &methods); err != nil {
			return err
		}

		ticketStatuses := []models.TicketStatus{}
		for i, s := range ticket.AllStatuses {
			ticketStatuses = append(ticketStatuses, models.TicketStatus{ID: uint(i + 1), Name: s.String(), Description: ticketStatusDescriptions[s]})
		}
		if err := upsert(tx, &ticketStatuses); err != nil {
			return err
		}

		types := []models.NotificationType{
			{ID: notification.TypeOrder, Name: "order", Description: "Заказы"},
			{ID: notification.TypeSupport, Name: "support", Description: "Поддержка"},
			{ID: notification.TypeSystem, Name: "system", Description: "Системные"},
		}
		if err := upsert(tx, &types); err != nil {
			return err
		}

		categories := []models.ServiceCategory{
			{ID: 1, Name: "regular", Description: "Основные услуги"},
			{ID: 2, Name: "additional", Description: "Дополнительные услуги"},
			{ID: 3, Name: "special", Description: "Специальные услуги"},
		}
		if err := upsert(tx, &categories); err != nil {
			return err
		}

		propertyTypes := []models.PropertyType{
			{ID: 1, Name: "APARTMENT", Description: "Квартира"},
			{ID: 2, Name: "OFFICE", Description: "Офис"},
			{ID: 3, Name: "COTTAGE", Description: "Загородный дом"},
		}
		return upsert(tx, &propertyTypes)
	})
}

// SeedDemoCatalog inserts a starter price list into an empty services table.
func SeedDemoCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Service{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	price := func(v int64) *decimal.Decimal {
		d := decimal.NewFromInt(v)
		return &d
	}

	services := []models.Service{
		{Name: "Генеральная уборка", PricePerSquare: price(80), CategoryID: 1, Duration: 240, IsActive: true},
		{Name: "Поддерживающая уборка", PricePerSquare: price(50), CategoryID: 1, Duration: 120, IsActive: true},
		{Name: "Уборка после ремонта", PricePerSquare: price(120), CategoryID: 3, Duration: 360, IsActive: true},
		{Name: "Мойка окон", BasePrice: price(300), CategoryID: 2, Duration: 30, IsActive: true},
	}
	return db.Create(&services).Error
}

func upsert[T any](tx *gorm.DB, rows *[]T) error {
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "description"}),
	}).Create(rows).Error
	if err != nil {
		return fmt.Errorf("seed %T: %w", rows, err)
	}
	return nil
}

var roleDescriptions = map[user.Role]string{
	user.RoleClient:   "Клиент",
	user.RoleEmployee: "Сотрудник",
	user.RoleAdmin:    "Администратор",
}

var orderStatusDescriptions = map[order.Status]string{
	order.StatusPending:    "Ожидает подтверждения",
	order.StatusAssigned:   "Назначен исполнитель",
	order.StatusInProgress: "В работе",
	order.StatusCompleted:  "Выполнен",
	order.StatusCancelled:  "Отменен",
}

var paymentStatusDescriptions = map[order.PaymentStatus]string{
	order.PaymentUnpaid:   "Не оплачен",
	order.PaymentPaid:     "Оплачен",
	order.PaymentRefunded: "Возврат",
}

var methodDescriptions = map[order.PaymentMethod]string{
	order.MethodCash:   "Наличными",
	order.MethodCard:   "Картой",
	order.MethodOnline: "Онлайн",
}

var ticketStatusDescriptions = map[ticket.Status]string{
	ticket.StatusOpen:       "Открыт",
	ticket.StatusInProgress: "В работе",
	ticket.StatusClosed:     "Закрыт",
}
