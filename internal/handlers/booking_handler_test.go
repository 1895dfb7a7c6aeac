package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/serenitywellness/spa-manager/internal/models"
)

func createTestTreatment(t *testing.T, db *gorm.DB, name string, price float64) string {
	t.Helper()

	treatment := models.Treatment{
		ID:              uuid.NewString(),
		Name:            name,
		DurationMinutes: 60,
		Price:           price,
		IsActive:        true,
	}
	if err := db.Create(&treatment).Error; err != nil {
		t.Fatalf("failed to create treatment: %v", err)
	}
	return treatment.ID
}

func createTestRoom(t *testing.T, db *gorm.DB, name string) string {
	t.Helper()

	room := models.Room{
		ID:       uuid.NewString(),
		Name:     name,
		Capacity: 2,
		Status:   models.RoomStatusAvailable,
	}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("failed to create room: %v", err)
	}
	return room.ID
}

func bookingPayload(treatmentID, roomID string, personnelIDs []string) gin.H {
	return gin.H{
		"client_name":   "Alice Client",
		"client_email":  "alice@example.com",
		"client_phone":  "+1-555-0199",
		"booking_date":  "2026-09-10",
		"booking_time":  "14:00",
		"treatment_id":  treatmentID,
		"room_id":       roomID,
		"personnel_ids": personnelIDs,
	}
}

func TestCreateBookingWithPersonnel(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestApp(db)

	treatmentID := createTestTreatment(t, db, "Swedish Massage", 80)
	roomID := createTestRoom(t, db, "Suite A")
	first := createTestPersonnel(t, db, "maria")
	second := createTestPersonnel(t, db, "jonas")

	w := performRequest(router, http.MethodPost, "/bookings",
		bookingPayload(treatmentID, roomID, []string{first, second}))
	assert.Equal(t, http.StatusCreated, w.Code)

	created := decodeMap(t, w)
	assert.Equal(t, "confirmed", created["status"])
	assert.Equal(t, "Swedish Massage", created["treatment_name"])
	assert.Equal(t, "Suite A", created["room_name"])
	assert.Equal(t, "jonas, maria", created["personnel_names"])

	var links int64
	db.Model(&models.BookingPersonnel{}).
		Where("booking_id = ?", created["id"]).
		Count(&links)
	assert.Equal(t, int64(2), links)
}

func TestCreateBookingWithoutPersonnel(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestApp(db)

	treatmentID := createTestTreatment(t, db, "Facial", 65)
	roomID := createTestRoom(t, db, "Suite B")

	w := performRequest(router, http.MethodPost, "/bookings",
		bookingPayload(treatmentID, roomID, nil))
	assert.Equal(t, http.StatusCreated, w.Code)

	created := decodeMap(t, w)
	assert.Equal(t, "confirmed", created["status"])
	assert.Equal(t, "", created["personnel_names"])
}

// An unknown personnel id violates the association foreign key; the whole
// transaction must roll back, leaving no booking and no join rows behind.
func TestCreateBookingUnknownPersonnelRollsBack(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestApp(db)

	treatmentID := createTestTreatment(t, db, "Hot Stone", 95)
	roomID := createTestRoom(t, db, "Suite C")

	w := performRequest(router, http.MethodPost, "/bookings",
		bookingPayload(treatmentID, roomID, []string{uuid.NewString()}))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to create booking", decodeMap(t, w)["error"])

	var bookings, links int64
	db.Model(&models.Booking{}).Count(&bookings)
	db.Model(&models.BookingPersonnel{}).Count(&links)
	assert.Equal(t, int64(0), bookings)
	assert.Equal(t, int64(0), links)
}

func TestCreateBookingMissingFields(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestApp(db)

	w := performRequest(router, http.MethodPost, "/bookings", gin.H{
		"client_name": "Alice Client",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required fields", decodeMap(t, w)["error"])

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestUpdateBookingStatusAndCancel(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestApp(db)

	treatmentID := createTestTreatment(t, db, "Swedish Massage", 80)
	roomID := createTestRoom(t, db, "Suite A")

	w := performRequest(router, http.MethodPost, "/bookings",
		bookingPayload(treatmentID, roomID, nil))
	id := decodeMap(t, w)["id"].(string)

	w = performRequest(router, http.MethodPut, "/bookings/"+id, gin.H{
		"status": "completed", "notes": "client happy",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	updated := decodeMap(t, w)
	assert.Equal(t, "completed", updated["status"])
	assert.Equal(t, "client happy", updated["notes"])

	// cancel overwrites completed, and a second cancel is still a success
	for i := 0; i < 2; i++ {
		w = performRequest(router, http.MethodDelete, "/bookings/"+id, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Booking cancelled successfully", decodeMap(t, w)["message"])
	}

	w = performRequest(router, http.MethodGet, "/bookings/"+id, nil)
	assert.Equal(t, "cancelled", decodeMap(t, w)["status"])
}

func TestUpdateBookingInvalidStatus(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestApp(db)

	treatmentID := createTestTreatment(t, db, "Facial", 65)
	roomID := createTestRoom(t, db, "Suite B")

	w := performRequest(router, http.MethodPost, "/bookings",
		bookingPayload(treatmentID, roomID, nil))
	id := decodeMap(t, w)["id"].(string)

	w = performRequest(router, http.MethodPut, "/bookings/"+id, gin.H{
		"status": "postponed",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid status", decodeMap(t, w)["error"])

	w = performRequest(router, http.MethodGet, "/bookings/"+id, nil)
	assert.Equal(t, "confirmed", decodeMap(t, w)["status"])
}

func TestUpdateBookingUnknownID(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestApp(db)

	w := performRequest(router, http.MethodPut, "/bookings/"+uuid.NewString(), gin.H{
		"status": "completed",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Booking not found", decodeMap(t, w)["error"])
}

func TestGetBookingNotFound(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestApp(db)

	w := performRequest(router, http.MethodGet, "/bookings/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListBookingsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestApp(db)

	treatmentID := createTestTreatment(t, db, "Swedish Massage", 80)
	roomID := createTestRoom(t, db, "Suite A")

	for _, slot := range []struct{ date, time string }{
		{"2026-09-10", "09:00"},
		{"2026-09-12", "11:00"},
		{"2026-09-12", "15:00"},
	} {
		payload := bookingPayload(treatmentID, roomID, nil)
		payload["booking_date"] = slot.date
		payload["booking_time"] = slot.time
		w := performRequest(router, http.MethodPost, "/bookings", payload)
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	w := performRequest(router, http.MethodGet, "/bookings", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	list := decodeList(t, w)
	assert.Len(t, list, 3)
	assert.Equal(t, "2026-09-12", list[0]["booking_date"])
	assert.Equal(t, "15:00", list[0]["booking_time"])
	assert.Equal(t, "11:00", list[1]["booking_time"])
	assert.Equal(t, "2026-09-10", list[2]["booking_date"])
}

func TestTreatmentCountsAndAnalytics(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestApp(db)

	treatmentID := createTestTreatment(t, db, "Swedish Massage", 80)
	roomID := createTestRoom(t, db, "Suite A")

	var ids []string
	for i := 0; i < 3; i++ {
		w := performRequest(router, http.MethodPost, "/bookings",
			bookingPayload(treatmentID, roomID, nil))
		ids = append(ids, decodeMap(t, w)["id"].(string))
	}

	// complete two of the three
	for _, id := range ids[:2] {
		performRequest(router, http.MethodPut, "/bookings/"+id, gin.H{"status": "completed"})
	}

	w := performRequest(router, http.MethodGet, "/treatments", nil)
	list := decodeList(t, w)
	assert.Len(t, list, 1)
	assert.Equal(t, float64(1), list[0]["active_bookings"])
	assert.Equal(t, float64(2), list[0]["completed_bookings"])

	w = performRequest(router, http.MethodGet, "/analytics/treatments", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	summary := decodeMap(t, w)
	assert.Equal(t, 160.0, summary["total_revenue"])
	assert.Equal(t, float64(2), summary["total_completed"])
	assert.Equal(t, "Swedish Massage", summary["most_popular"])
}
