package handlers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/serenitywellness/spa-manager/internal/domain/booking"
	"github.com/serenitywellness/spa-manager/internal/httperr"
	"github.com/serenitywellness/spa-manager/internal/httpresp"
	ucBooking "github.com/serenitywellness/spa-manager/internal/usecase/booking"
)

type BookingHandler struct {
	createUC *ucBooking.CreateBooking
	updateUC *ucBooking.UpdateBooking
	cancelUC *ucBooking.CancelBooking
	listUC   *ucBooking.ListBookings
	getUC    *ucBooking.GetBooking
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	updateUC *ucBooking.UpdateBooking,
	cancelUC *ucBooking.CancelBooking,
	listUC *ucBooking.ListBookings,
	getUC *ucBooking.GetBooking,
) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
		updateUC: updateUC,
		cancelUC: cancelUC,
		listUC:   listUC,
		getUC:    getUC,
	}
}

// --------- Requests ---------

type CreateBookingRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientEmail string `json:"client_email" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`

	BookingDate string `json:"booking_date" binding:"required"`
	BookingTime string `json:"booking_time" binding:"required"`

	TreatmentID  string   `json:"treatment_id" binding:"required"`
	RoomID       string   `json:"room_id" binding:"required"`
	PersonnelIDs []string `json:"personnel_ids"`

	Notes string `json:"notes"`
}

type UpdateBookingRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// --------- Handlers ---------

func (h *BookingHandler) List(c *gin.Context) {
	rows, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		log.Println("list bookings:", err)
		httperr.Internal(c, "Failed to fetch bookings")
		return
	}

	httpresp.OK(c, rows)
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Missing required fields")
		return
	}

	row, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		ClientName:   req.ClientName,
		ClientEmail:  req.ClientEmail,
		ClientPhone:  req.ClientPhone,
		BookingDate:  req.BookingDate,
		BookingTime:  req.BookingTime,
		TreatmentID:  req.TreatmentID,
		RoomID:       req.RoomID,
		PersonnelIDs: req.PersonnelIDs,
		Notes:        req.Notes,
	})
	if err != nil {
		log.Println("create booking:", err)
		httperr.Internal(c, "Failed to create booking")
		return
	}

	httpresp.Created(c, row)
}

func (h *BookingHandler) Get(c *gin.Context) {
	row, err := h.getUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Booking not found")
			return
		}
		log.Println("get booking:", err)
		httperr.Internal(c, "Failed to fetch booking")
		return
	}

	httpresp.OK(c, row)
}

func (h *BookingHandler) Update(c *gin.Context) {
	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Missing required fields")
		return
	}

	row, err := h.updateUC.Execute(
		c.Request.Context(),
		c.Param("id"),
		domain.Status(req.Status),
		req.Notes,
	)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_status") {
			httperr.BadRequest(c, "Invalid status")
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Booking not found")
			return
		}
		log.Println("update booking:", err)
		httperr.Internal(c, "Failed to update booking")
		return
	}

	httpresp.OK(c, row)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	if err := h.cancelUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		log.Println("cancel booking:", err)
		httperr.Internal(c, "Failed to cancel booking")
		return
	}

	httpresp.Message(c, "Booking cancelled successfully")
}
