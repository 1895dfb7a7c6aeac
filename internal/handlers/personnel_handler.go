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

type PersonnelHandler struct {
	db       *gorm.DB
	activity *activity.Dispatcher
}

func NewPersonnelHandler(db *gorm.DB, activity *activity.Dispatcher) *PersonnelHandler {
	return &PersonnelHandler{db: db, activity: activity}
}

// --------- Requests ---------

type CreatePersonnelRequest struct {
	Name  string `json:"name" binding:"required"`
	Role  string `json:"role" binding:"required"`
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone"`
}

type UpdatePersonnelRequest struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	IsActive bool   `json:"is_active"`
}

// --------- Handlers ---------

func (h *PersonnelHandler) List(c *gin.Context) {
	staff := []models.Personnel{}
	err := h.db.
		Where("is_active = ?", true).
		Order("name").
		Find(&staff).Error
	if err != nil {
		log.Println("list personnel:", err)
		httperr.Internal(c, "Failed to fetch personnel")
		return
	}

	httpresp.OK(c, staff)
}

func (h *PersonnelHandler) Create(c *gin.Context) {
	var req CreatePersonnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Missing required fields")
		return
	}

	person := models.Personnel{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Role:     req.Role,
		Email:    req.Email,
		Phone:    req.Phone,
		IsActive: true,
	}

	if err := h.db.Create(&person).Error; err != nil {
		log.Println("create personnel:", err)
		httperr.Internal(c, "Failed to create personnel")
		return
	}

	var created models.Personnel
	if err := h.db.First(&created, "id = ?", person.ID).Error; err != nil {
		log.Println("read created personnel:", err)
		httperr.Internal(c, "Failed to create personnel")
		return
	}

	h.activity.Dispatch(activity.Event{
		Action:   "personnel_created",
		Entity:   "personnel",
		EntityID: created.ID,
		Metadata: map[string]any{"name": created.Name, "role": created.Role},
	})

	httpresp.Created(c, created)
}

func (h *PersonnelHandler) Get(c *gin.Context) {
	var person models.Personnel
	if err := h.db.First(&person, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Personnel not found")
			return
		}
		log.Println("get personnel:", err)
		httperr.Internal(c, "Failed to fetch personnel")
		return
	}

	httpresp.OK(c, person)
}

func (h *PersonnelHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdatePersonnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Missing required fields")
		return
	}

	err := h.db.Model(&models.Personnel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":      req.Name,
			"role":      req.Role,
			"email":     req.Email,
			"phone":     req.Phone,
			"is_active": req.IsActive,
		}).Error
	if err != nil {
		log.Println("update personnel:", err)
		httperr.Internal(c, "Failed to update personnel")
		return
	}

	var updated models.Personnel
	if err := h.db.First(&updated, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Personnel not found")
			return
		}
		log.Println("read updated personnel:", err)
		httperr.Internal(c, "Failed to update personnel")
		return
	}

	h.activity.Dispatch(activity.Event{
		Action:   "personnel_updated",
		Entity:   "personnel",
		EntityID: id,
	})

	httpresp.OK(c, updated)
}

// Deactivate flips is_active only. Bookings already referencing this
// personnel are left untouched.
func (h *PersonnelHandler) Deactivate(c *gin.Context) {
	id := c.Param("id")

	err := h.db.Model(&models.Personnel{}).
		Where("id = ?", id).
		Update("is_active", false).Error
	if err != nil {
		log.Println("deactivate personnel:", err)
		httperr.Internal(c, "Failed to deactivate personnel")
		return
	}

	h.activity.Dispatch(activity.Event{
		Action:   "personnel_deactivated",
		Entity:   "personnel",
		EntityID: id,
	})

	httpresp.Message(c, "Personnel deactivated successfully")
}
