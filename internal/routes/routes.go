package routes

import (
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cleaning-booking/internal/auth"
	"github.com/BruksfildServices01/cleaning-booking/internal/cache"
	"github.com/BruksfildServices01/cleaning-booking/internal/config"
	"github.com/BruksfildServices01/cleaning-booking/internal/domain/notification"
	"github.com/BruksfildServices01/cleaning-booking/internal/domain/user"
	"github.com/BruksfildServices01/cleaning-booking/internal/gateway"
	"github.com/BruksfildServices01/cleaning-booking/internal/handlers"
	"github.com/BruksfildServices01/cleaning-booking/internal/i18n"
	infraRepo "github.com/BruksfildServices01/cleaning-booking/internal/infra/repository"
	"github.com/BruksfildServices01/cleaning-booking/internal/middleware"
	"github.com/BruksfildServices01/cleaning-booking/internal/storage"
	ucNotification "github.com/BruksfildServices01/cleaning-booking/internal/usecase/notification"
	ucOrder "github.com/BruksfildServices01/cleaning-booking/internal/usecase/order"
	ucTicket "github.com/BruksfildServices01/cleaning-booking/internal/usecase/ticket"
	"github.com/BruksfildServices01/cleaning-booking/internal/validators"
)

// Deps are the process-wide collaborators the router is built from.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Logger   *slog.Logger
	I18n     *i18n.Service
	Location *time.Location

	Tokens   *auth.Tokens
	Cache    cache.Cache
	Uploader *storage.Uploader
	Gateway  gateway.Gateway

	// Notifier fans notices out in the background; Writer is the
	// synchronous path used by the admin send endpoint.
	Notifier notification.Notifier
	Writer   ucNotification.Writer

	Domains validators.DomainChecker
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(d.Logger))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.I18n(d.I18n))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if !cfg.S3Enabled() {
		r.Static("/uploads", filepath.Join(cfg.UploadDir, "uploads"))
	}

	// ======================================================
	// INFRA
	// ======================================================
	orderRepo := infraRepo.NewOrderGormRepository(d.DB)
	ticketRepo := infraRepo.NewTicketGormRepository(d.DB)
	notificationRepo := infraRepo.NewNotificationGormRepository(d.DB)
	userRepo := infraRepo.NewUserGormRepository(d.DB)
	uow := infraRepo.NewGormUnitOfWork(d.DB)

	// ======================================================
	// USE CASES: ORDERS
	// ======================================================
	createOrderUC := ucOrder.NewCreateOrder(orderRepo, d.Notifier, d.Location)
	listOrdersUC := ucOrder.NewListOrders(orderRepo)
	getOrderUC := ucOrder.NewGetOrder(orderRepo)
	cancelOrderUC := ucOrder.NewCancelOrder(orderRepo)
	payOrderUC := ucOrder.NewPayOrder(orderRepo)
	checkoutUC := ucOrder.NewStartCheckout(orderRepo, d.Gateway)
	assignUC := ucOrder.NewAssignEmployee(orderRepo, userRepo, d.Notifier)

	listAdminOrdersUC := ucOrder.NewListAdminOrders(orderRepo)
	adminCreateOrderUC := ucOrder.NewAdminCreateOrder(orderRepo, userRepo, d.Location)
	adminUpdateOrderUC := ucOrder.NewAdminUpdateOrder(orderRepo, d.Location)
	adminDeleteOrderUC := ucOrder.NewAdminDeleteOrder(orderRepo)

	// ======================================================
	// USE CASES: SUPPORT & NOTIFICATIONS
	// ======================================================
	supportUC := handlers.SupportUseCases{
		Create:       ucTicket.NewCreateTicket(ticketRepo, uow, d.Notifier),
		List:         ucTicket.NewListTickets(ticketRepo),
		Get:          ucTicket.NewGetTicket(ticketRepo),
		Post:         ucTicket.NewPostMessage(ticketRepo, uow, d.Notifier),
		PostGuest:    ucTicket.NewPostGuestMessage(ticketRepo),
		MarkRead:     ucTicket.NewMarkRead(ticketRepo),
		UpdateStatus: ucTicket.NewUpdateStatus(ticketRepo),
		CountUnread:  ucTicket.NewCountUnread(ticketRepo),
	}

	inbox := ucNotification.NewInbox(notificationRepo)
	sendNotificationUC := ucNotification.NewSend(d.Writer, userRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	sessions := handlers.NewSessions(d.Tokens, cfg.IsProduction())

	authHandler := handlers.NewAuthHandler(d.DB, sessions, d.Domains)
	meHandler := handlers.NewMeHandler(d.DB, sessions)
	catalogHandler := handlers.NewCatalogHandler(d.DB, d.Cache, cfg.CatalogCacheTTL)

	orderHandler := handlers.NewOrderHandler(
		createOrderUC,
		listOrdersUC,
		getOrderUC,
		cancelOrderUC,
		payOrderUC,
		checkoutUC,
		assignUC,
	)
	adminOrderHandler := handlers.NewAdminOrderHandler(
		listAdminOrdersUC,
		adminCreateOrderUC,
		adminUpdateOrderUC,
		adminDeleteOrderUC,
	)

	supportHandler := handlers.NewSupportHandler(ucTicket.Customer, supportUC)
	adminSupportHandler := handlers.NewSupportHandler(ucTicket.Admin, supportUC)
	notificationHandler := handlers.NewNotificationHandler(inbox, sendNotificationUC)

	adminUserHandler := handlers.NewAdminUserHandler(d.DB)
	adminServiceHandler := handlers.NewAdminServiceHandler(d.DB, d.Cache)
	adminScheduleHandler := handlers.NewAdminScheduleHandler(d.DB, d.Location)
	statsHandler := handlers.NewStatsHandler(d.DB, d.Location)
	uploadHandler := handlers.NewUploadHandler(d.Uploader, cfg.UploadMaxBytes)

	authRequired := middleware.Auth(d.Tokens)
	authOptional := middleware.OptionalAuth(d.Tokens)
	adminOnly := middleware.RequireRole(user.RoleAdmin)
	loginLimit := middleware.RateLimit(middleware.NewRateLimiter(cfg.AuthRateLimitRPS, cfg.AuthRateLimitBurst))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", loginLimit, authHandler.Register)
		api.POST("/auth/login", loginLimit, authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)

		// ------------------------------
		// CATALOG (public)
		// ------------------------------
		api.GET("/services", catalogHandler.ListServices)
		api.GET("/services/popular", catalogHandler.Popular)
		api.GET("/services/:id", catalogHandler.GetService)
		api.GET("/services/:id/quote", catalogHandler.Quote)
		api.GET("/property-types", catalogHandler.ListPropertyTypes)
		api.GET("/order-statuses", catalogHandler.ListOrderStatuses)

		// ------------------------------
		// SUPPORT (guests allowed)
		// ------------------------------
		guest := api.Group("/support")
		guest.Use(authOptional)
		{
			guest.POST("/tickets", supportHandler.Create)
			guest.POST("/messages", supportHandler.PostGuestMessage)
			guest.GET("/tickets/:id/unread-count", supportHandler.UnreadCount)
		}

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(authRequired)
		{
			secured.GET("/me", meHandler.GetMe)
			secured.POST("/user/update", meHandler.UpdateProfile)
			secured.POST("/user/change-password", meHandler.ChangePassword)

			// orders
			secured.GET("/orders", orderHandler.List)
			secured.POST("/orders", orderHandler.Create)
			secured.PATCH("/orders", orderHandler.Cancel)
			secured.GET("/orders/:id", orderHandler.Get)
			secured.POST("/orders/:id/assign", adminOnly, orderHandler.Assign)

			// payment
			secured.POST("/payment/:orderId", orderHandler.Pay)
			secured.POST("/payment/:orderId/checkout", orderHandler.Checkout)

			// support
			secured.GET("/support/tickets", supportHandler.List)
			secured.GET("/support/tickets/:id", supportHandler.Get)
			secured.POST("/support/tickets/:id/messages", supportHandler.PostMessage)
			secured.POST("/support/tickets/:id/read", supportHandler.MarkRead)
			secured.PUT("/support/tickets/:id/status", supportHandler.UpdateStatus)

			// notifications
			secured.GET("/notifications", notificationHandler.List)
			secured.GET("/notifications/unread-count", notificationHandler.UnreadCount)
			secured.PUT("/notifications/read-all", notificationHandler.MarkAllRead)
			secured.PUT("/notifications/:id/read", notificationHandler.MarkRead)
			secured.POST("/notifications", adminOnly, notificationHandler.Send)

			secured.POST("/upload", uploadHandler.Upload)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(authRequired, adminOnly)
		{
			admin.GET("/orders", adminOrderHandler.List)
			admin.GET("/orders/emp", adminOrderHandler.ListUnassigned)
			admin.POST("/orders", adminOrderHandler.Create)
			crud(admin, "/orders", adminOrderHandler.Update, adminOrderHandler.Delete)

			admin.GET("/services", adminServiceHandler.List)
			admin.POST("/services", adminServiceHandler.Create)
			crud(admin, "/services", adminServiceHandler.Update, adminServiceHandler.Delete)

			admin.GET("/users", adminUserHandler.List)
			admin.GET("/users/employees", adminUserHandler.Employees)
			admin.POST("/users", adminUserHandler.Create)
			crud(admin, "/users", adminUserHandler.Update, adminUserHandler.Delete)
			admin.GET("/roles", adminUserHandler.Roles)

			admin.GET("/schedule", adminScheduleHandler.List)
			admin.POST("/schedule", adminScheduleHandler.Create)
			crud(admin, "/schedule", adminScheduleHandler.Update, adminScheduleHandler.Delete)

			admin.GET("/support/tickets", adminSupportHandler.List)
			admin.GET("/support/tickets/:id", adminSupportHandler.Get)
			admin.POST("/support/tickets/:id/messages", adminSupportHandler.PostMessage)
			admin.POST("/support/tickets/:id/read", adminSupportHandler.MarkRead)
			admin.PUT("/support/tickets/:id/status", adminSupportHandler.UpdateStatus)

			admin.GET("/stats", statsHandler.Stats)
			admin.GET("/employee-performance", statsHandler.EmployeePerformance)
		}
	}
}

// crud mounts update and delete both on the collection, with the id in the
// body, and on /:id.
func crud(g *gin.RouterGroup, path string, update, remove gin.HandlerFunc) {
	for _, p := range []string{path, path + "/:id"} {
		g.PUT(p, update)
		g.PATCH(p, update)
		g.DELETE(p, remove)
	}
}
