package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/delacruzclinic/clinic-booking/internal/audit"
	"github.com/delacruzclinic/clinic-booking/internal/cache"
	"github.com/delacruzclinic/clinic-booking/internal/config"
	"github.com/delacruzclinic/clinic-booking/internal/handlers"
	infraRepo "github.com/delacruzclinic/clinic-booking/internal/infra/repository"
	"github.com/delacruzclinic/clinic-booking/internal/middleware"
	ucBooking "github.com/delacruzclinic/clinic-booking/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, slots *cache.BookedSlots) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	userRepo := infraRepo.NewUserGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		slots,
		auditDispatcher,
	)

	checkSlotsUC := ucBooking.NewCheckSlots(
		bookingRepo,
		slots,
	)

	listBookingsUC := ucBooking.NewListBookings(
		bookingRepo,
	)

	removeBookingsUC := ucBooking.NewRemoveBookings(
		bookingRepo,
		slots,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		checkSlotsUC,
	)

	adminBookingHandler := handlers.NewAdminBookingHandler(
		listBookingsUC,
		removeBookingsUC,
	)

	authHandler := handlers.NewAuthHandler(db, cfg, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC BOOKING FLOW
		// ------------------------------
		bookings := api.Group("/bookings")
		{
			bookings.GET("/check", bookingHandler.Check)
			bookings.GET("/slots", bookingHandler.Slots)
			bookings.GET("/schedule-window", bookingHandler.ScheduleWindow)
			bookings.POST("", bookingHandler.Create)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.GET("/auth/me", authHandler.Me)
		api.POST("/auth/logout", authHandler.Logout)

		// ------------------------------
		// ADMIN (SESSION RE-VERIFIED PER REQUEST)
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg, userRepo))
		{
			admin.GET("/bookings", adminBookingHandler.List)
			admin.DELETE("/bookings", adminBookingHandler.Delete)

			admin.POST("/change-password", authHandler.ChangePassword)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
