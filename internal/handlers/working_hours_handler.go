package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/serenitywellness/spa-manager/internal/activity"
	"github.com/serenitywellness/spa-manager/internal/dto"
	"github.com/serenitywellness/spa-manager/internal/httperr"
	"github.com/serenitywellness/spa-manager/internal/httpresp"
	"github.com/serenitywellness/spa-manager/internal/models"
)

type WorkingHoursHandler struct {
	db       *gorm.DB
	activity *activity.Dispatcher
}

func NewWorkingHoursHandler(db *gorm.DB, activity *activity.Dispatcher) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db, activity: activity}
}

type WorkingDayConfig struct {
	DayOfWeek string `json:"day_of_week"`
	IsWorking bool   `json:"is_working"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type ReplaceWorkingHoursRequest struct {
	PersonnelID  string             `json:"personnel_id" binding:"required"`
	WorkingHours []WorkingDayConfig `json:"working_hours" binding:"required"`
}

// weekdayOrder sorts monday through sunday in calendar order. Postgres has
// no FIELD(), so the listing uses a CASE expression instead.
const weekdayOrder = `
	CASE wh.day_of_week
		WHEN 'monday' THEN 1
		WHEN 'tuesday' THEN 2
		WHEN 'wednesday' THEN 3
		WHEN 'thursday' THEN 4
		WHEN 'friday' THEN 5
		WHEN 'saturday' THEN 6
		WHEN 'sunday' THEN 7
		ELSE 8
	END
`

func (h *WorkingHoursHandler) List(c *gin.Context) {
	query := `
		SELECT wh.*, p.name AS personnel_name
		FROM working_hours wh
		LEFT JOIN personnel p ON p.id = wh.personnel_id
	`
	args := []any{}

	if personnelID := c.Query("personnel_id"); personnelID != "" {
		query += ` WHERE wh.personnel_id = ?`
		args = append(args, personnelID)
	}

	query += ` ORDER BY p.name, ` + weekdayOrder

	rows := []dto.WorkingHoursListDTO{}
	if err := h.db.Raw(query, args...).Scan(&rows).Error; err != nil {
		log.Println("list working hours:", err)
		httperr.Internal(c, "Failed to fetch working hours")
		return
	}

	httpresp.OK(c, rows)
}

// Replace swaps the whole schedule of one personnel: delete everything,
// insert what was supplied, all inside one transaction. The caller is
// expected to send all seven days; fewer days leave gaps in the schedule.
func (h *WorkingHoursHandler) Replace(c *gin.Context) {
	var req ReplaceWorkingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Missing required fields")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("personnel_id = ?", req.PersonnelID).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}

		for _, day := range req.WorkingHours {
			wh := models.WorkingHours{
				PersonnelID: req.PersonnelID,
				DayOfWeek:   day.DayOfWeek,
				IsWorking:   day.IsWorking,
				StartTime:   day.StartTime,
				EndTime:     day.EndTime,
			}
			if err := tx.Create(&wh).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		log.Println("replace working hours:", err)
		httperr.Internal(c, "Failed to update working hours")
		return
	}

	rows := []models.WorkingHours{}
	err = h.db.Raw(`
		SELECT wh.*
		FROM working_hours wh
		WHERE wh.personnel_id = ?
		ORDER BY `+weekdayOrder, req.PersonnelID).Scan(&rows).Error
	if err != nil {
		log.Println("read working hours:", err)
		httperr.Internal(c, "Failed to update working hours")
		return
	}

	h.activity.Dispatch(activity.Event{
		Action:   "working_hours_replaced",
		Entity:   "personnel",
		EntityID: req.PersonnelID,
		Metadata: map[string]any{"days": len(req.WorkingHours)},
	})

	httpresp.Created(c, rows)
}
