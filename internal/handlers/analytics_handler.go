package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/serenitywellness/spa-manager/internal/httperr"
	"github.com/serenitywellness/spa-manager/internal/httpresp"
	"github.com/serenitywellness/spa-manager/internal/reports"
)

type AnalyticsHandler struct {
	db *gorm.DB
}

func NewAnalyticsHandler(db *gorm.DB) *AnalyticsHandler {
	return &AnalyticsHandler{db: db}
}

type TreatmentRevenueRow struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Duration          string  `json:"duration"`
	Price             float64 `json:"price"`
	PriceDisplay      string  `json:"price_display"`
	ActiveBookings    int     `json:"active_bookings"`
	CompletedBookings int     `json:"completed_bookings"`
	TotalRevenue      float64 `json:"total_revenue"`
}

type TreatmentAnalytics struct {
	TotalRevenue   float64               `json:"total_revenue"`
	TotalCompleted int                   `json:"total_completed"`
	MostPopular    string                `json:"most_popular"`
	Treatments     []TreatmentRevenueRow `json:"treatments"`
}

// TreatmentSummary derives revenue and popularity figures from the same
// treatment+counter rows the listing endpoint serves.
func (h *AnalyticsHandler) TreatmentSummary(c *gin.Context) {
	stats, err := fetchTreatmentStats(h.db)
	if err != nil {
		log.Println("treatment analytics:", err)
		httperr.Internal(c, "Failed to fetch treatment analytics")
		return
	}

	ranked := reports.RankByPopularity(stats)

	rows := make([]TreatmentRevenueRow, 0, len(ranked))
	for _, t := range ranked {
		rows = append(rows, TreatmentRevenueRow{
			ID:                t.ID,
			Name:              t.Name,
			Duration:          reports.FormatDuration(t.DurationMinutes),
			Price:             t.Price,
			PriceDisplay:      reports.FormatPrice(t.Price),
			ActiveBookings:    t.ActiveBookings,
			CompletedBookings: t.CompletedBookings,
			TotalRevenue:      t.Price * float64(t.CompletedBookings),
		})
	}

	summary := TreatmentAnalytics{
		TotalRevenue:   reports.TotalRevenue(stats),
		TotalCompleted: reports.TotalCompleted(stats),
		Treatments:     rows,
	}
	if len(rows) > 0 {
		summary.MostPopular = rows[0].Name
	}

	httpresp.OK(c, summary)
}
