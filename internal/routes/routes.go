package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/serenitywellness/spa-manager/internal/activity"
	"github.com/serenitywellness/spa-manager/internal/handlers"
	infraRepo "github.com/serenitywellness/spa-manager/internal/infra/repository"
	ucBooking "github.com/serenitywellness/spa-manager/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {

	// ------------------------------
	// INFRA (SINGLETONS)
	// ------------------------------
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	activityLogger := activity.NewLogger(db)
	activityDispatcher := activity.NewDispatcher(activityLogger)

	// ------------------------------
	// USE CASES — BOOKINGS
	// ------------------------------
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, activityDispatcher)
	updateBookingUC := ucBooking.NewUpdateBooking(bookingRepo, activityDispatcher)
	cancelBookingUC := ucBooking.NewCancelBooking(bookingRepo, activityDispatcher)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)
	getBookingUC := ucBooking.NewGetBooking(bookingRepo)

	// ------------------------------
	// HANDLERS
	// ------------------------------
	treatmentHandler := handlers.NewTreatmentHandler(db, activityDispatcher)
	personnelHandler := handlers.NewPersonnelHandler(db, activityDispatcher)
	roomHandler := handlers.NewRoomHandler(db, activityDispatcher)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db, activityDispatcher)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		updateBookingUC,
		cancelBookingUC,
		listBookingsUC,
		getBookingUC,
	)

	analyticsHandler := handlers.NewAnalyticsHandler(db)

	// ------------------------------
	// TREATMENTS
	// ------------------------------
	r.GET("/treatments", treatmentHandler.List)
	r.POST("/treatments", treatmentHandler.Create)
	r.GET("/treatments/:id", treatmentHandler.Get)
	r.PUT("/treatments/:id", treatmentHandler.Update)
	r.DELETE("/treatments/:id", treatmentHandler.Deactivate)

	// ------------------------------
	// PERSONNEL + WORKING HOURS
	// ------------------------------
	r.GET("/personnel", personnelHandler.List)
	r.POST("/personnel", personnelHandler.Create)
	r.GET("/personnel/working-hours", workingHoursHandler.List)
	r.POST("/personnel/working-hours", workingHoursHandler.Replace)
	r.GET("/personnel/:id", personnelHandler.Get)
	r.PUT("/personnel/:id", personnelHandler.Update)
	r.DELETE("/personnel/:id", personnelHandler.Deactivate)

	// ------------------------------
	// ROOMS
	// ------------------------------
	r.GET("/rooms", roomHandler.List)
	r.POST("/rooms", roomHandler.Create)
	r.GET("/rooms/:id", roomHandler.Get)
	r.PUT("/rooms/:id", roomHandler.Update)
	r.DELETE("/rooms/:id", roomHandler.SetMaintenance)

	// ------------------------------
	// BOOKINGS
	// ------------------------------
	r.GET("/bookings", bookingHandler.List)
	r.POST("/bookings", bookingHandler.Create)
	r.GET("/bookings/:id", bookingHandler.Get)
	r.PUT("/bookings/:id", bookingHandler.Update)
	r.DELETE("/bookings/:id", bookingHandler.Cancel)

	// ------------------------------
	// ANALYTICS
	// ------------------------------
	r.GET("/analytics/treatments", analyticsHandler.TreatmentSummary)
}
