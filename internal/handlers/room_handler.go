package handlers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/serenitywellness/spa-manager/internal/activity"
	"github.com/serenitywellness/spa-manager/internal/httperr"
	"github.com/serenitywellness/spa-manager/internal/httpresp"
	"github.com/serenitywellness/spa-manager/internal/models"
)

type RoomHandler struct {
	db       *gorm.DB
	activity *activity.Dispatcher
}

func NewRoomHandler(db *gorm.DB, activity *activity.Dispatcher) *RoomHandler {
	return &RoomHandler{db: db, activity: activity}
}

// --------- Requests ---------

type CreateRoomRequest struct {
	Name        string `json:"name" binding:"required"`
	Capacity    int    `json:"capacity" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type UpdateRoomRequest struct {
	Name            string `json:"name"`
	Capacity        int    `json:"capacity"`
	Description     string `json:"description"`
	Status          string `json:"status"`
	MaintenanceNote string `json:"maintenance_note"`
}

// --------- Handlers ---------

// List returns every room, maintenance ones included, so the desk can see
// the whole floor at once.
func (h *RoomHandler) List(c *gin.Context) {
	rooms := []models.Room{}
	if err := h.db.Order("name").Find(&rooms).Error; err != nil {
		log.Println("list rooms:", err)
		httperr.Internal(c, "Failed to fetch rooms")
		return
	}

	httpresp.OK(c, rooms)
}

func (h *RoomHandler) Create(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Missing required fields")
		return
	}

	status := req.Status
	if status == "" {
		status = models.RoomStatusAvailable
	}

	room := models.Room{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Capacity:    req.Capacity,
		Description: req.Description,
		Status:      status,
	}

	if err := h.db.Create(&room).Error; err != nil {
		log.Println("create room:", err)
		httperr.Internal(c, "Failed to create room")
		return
	}

	var created models.Room
	if err := h.db.First(&created, "id = ?", room.ID).Error; err != nil {
		log.Println("read created room:", err)
		httperr.Internal(c, "Failed to create room")
		return
	}

	h.activity.Dispatch(activity.Event{
		Action:   "room_created",
		Entity:   "room",
		EntityID: created.ID,
		Metadata: map[string]any{"name": created.Name},
	})

	httpresp.Created(c, created)
}

func (h *RoomHandler) Get(c *gin.Context) {
	var room models.Room
	if err := h.db.First(&room, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Room not found")
			return
		}
		log.Println("get room:", err)
		httperr.Internal(c, "Failed to fetch room")
		return
	}

	httpresp.OK(c, room)
}

func (h *RoomHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Missing required fields")
		return
	}

	err := h.db.Model(&models.Room{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":             req.Name,
			"capacity":         req.Capacity,
			"description":      req.Description,
			"status":           req.Status,
			"maintenance_note": req.MaintenanceNote,
		}).Error
	if err != nil {
		log.Println("update room:", err)
		httperr.Internal(c, "Failed to update room")
		return
	}

	var updated models.Room
	if err := h.db.First(&updated, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Room not found")
			return
		}
		log.Println("read updated room:", err)
		httperr.Internal(c, "Failed to update room")
		return
	}

	h.activity.Dispatch(activity.Event{
		Action:   "room_updated",
		Entity:   "room",
		EntityID: id,
	})

	httpresp.OK(c, updated)
}

// SetMaintenance is the soft-delete for rooms.
func (h *RoomHandler) SetMaintenance(c *gin.Context) {
	id := c.Param("id")

	err := h.db.Model(&models.Room{}).
		Where("id = ?", id).
		Update("status", models.RoomStatusMaintenance).Error
	if err != nil {
		log.Println("set room maintenance:", err)
		httperr.Internal(c, "Failed to set room to maintenance")
		return
	}

	h.activity.Dispatch(activity.Event{
		Action:   "room_maintenance",
		Entity:   "room",
		EntityID: id,
	})

	httpresp.Message(c, "Room set to maintenance successfully")
}
