package handlers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/serenitywellness/spa-manager/internal/activity"
	"github.com/serenitywellness/spa-manager/internal/dto"
	"github.com/serenitywellness/spa-manager/internal/httperr"
	"github.com/serenitywellness/spa-manager/internal/httpresp"
	"github.com/serenitywellness/spa-manager/internal/models"
)

type TreatmentHandler struct {
	db       *gorm.DB
	activity *activity.Dispatcher
}

func NewTreatmentHandler(db *gorm.DB, activity *activity.Dispatcher) *TreatmentHandler {
	return &TreatmentHandler{db: db, activity: activity}
}

// --------- Requests ---------

type CreateTreatmentRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration_minutes" binding:"required"`
	Price           float64 `json:"price" binding:"required"`
}

type UpdateTreatmentRequest struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	IsActive        bool    `json:"is_active"`
}

// treatmentStatsQuery counts confirmed and completed bookings per active
// treatment. The same rows feed both the listing and the analytics summary.
const treatmentStatsQuery = `
	SELECT
		t.*,
		COUNT(CASE WHEN b.status = 'confirmed' THEN 1 END) AS active_bookings,
		COUNT(CASE WHEN b.status = 'completed' THEN 1 END) AS completed_bookings
	FROM treatments t
	LEFT JOIN bookings b ON b.treatment_id = t.id
	WHERE t.is_active = TRUE
	GROUP BY t.id
	ORDER BY t.name
`

func fetchTreatmentStats(db *gorm.DB) ([]dto.TreatmentListDTO, error) {
	rows := []dto.TreatmentListDTO{}
	if err := db.Raw(treatmentStatsQuery).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// --------- Handlers ---------

func (h *TreatmentHandler) List(c *gin.Context) {
	rows, err := fetchTreatmentStats(h.db)
	if err != nil {
		log.Println("list treatments:", err)
		httperr.Internal(c, "Failed to fetch treatments")
		return
	}

	httpresp.OK(c, rows)
}

func (h *TreatmentHandler) Create(c *gin.Context) {
	var req CreateTreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Missing required fields")
		return
	}

	treatment := models.Treatment{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		IsActive:        true,
	}

	if err := h.db.Create(&treatment).Error; err != nil {
		log.Println("create treatment:", err)
		httperr.Internal(c, "Failed to create treatment")
		return
	}

	var created models.Treatment
	if err := h.db.First(&created, "id = ?", treatment.ID).Error; err != nil {
		log.Println("read created treatment:", err)
		httperr.Internal(c, "Failed to create treatment")
		return
	}

	h.activity.Dispatch(activity.Event{
		Action:   "treatment_created",
		Entity:   "treatment",
		EntityID: created.ID,
		Metadata: map[string]any{"name": created.Name},
	})

	httpresp.Created(c, created)
}

func (h *TreatmentHandler) Get(c *gin.Context) {
	var treatment models.Treatment
	if err := h.db.First(&treatment, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Treatment not found")
			return
		}
		log.Println("get treatment:", err)
		httperr.Internal(c, "Failed to fetch treatment")
		return
	}

	httpresp.OK(c, treatment)
}

// Update overwrites every mutable field. There is no existence pre-check:
// an unknown id writes zero rows and the re-read below reports not-found.
func (h *TreatmentHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateTreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Missing required fields")
		return
	}

	err := h.db.Model(&models.Treatment{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":             req.Name,
			"description":      req.Description,
			"duration_minutes": req.DurationMinutes,
			"price":            req.Price,
			"is_active":        req.IsActive,
		}).Error
	if err != nil {
		log.Println("update treatment:", err)
		httperr.Internal(c, "Failed to update treatment")
		return
	}

	var updated models.Treatment
	if err := h.db.First(&updated, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Treatment not found")
			return
		}
		log.Println("read updated treatment:", err)
		httperr.Internal(c, "Failed to update treatment")
		return
	}

	h.activity.Dispatch(activity.Event{
		Action:   "treatment_updated",
		Entity:   "treatment",
		EntityID: id,
	})

	httpresp.OK(c, updated)
}

func (h *TreatmentHandler) Deactivate(c *gin.Context) {
	id := c.Param("id")

	err := h.db.Model(&models.Treatment{}).
		Where("id = ?", id).
		Update("is_active", false).Error
	if err != nil {
		log.Println("deactivate treatment:", err)
		httperr.Internal(c, "Failed to deactivate treatment")
		return
	}

	h.activity.Dispatch(activity.Event{
		Action:   "treatment_deactivated",
		Entity:   "treatment",
		EntityID: id,
	})

	httpresp.Message(c, "Treatment deactivated successfully")
}
