// Package reports holds the read-side aggregation over treatment rows and
// their booking counters. Nothing here persists state.
package reports

import (
	"fmt"
	"sort"

	"github.com/serenitywellness/spa-manager/internal/dto"
)

// TotalRevenue sums price x completed bookings across all treatments.
func TotalRevenue(treatments []dto.TreatmentListDTO) float64 {
	var total float64
	for _, t := range treatments {
		total += t.Price * float64(t.CompletedBookings)
	}
	return total
}

// TotalCompleted sums completed bookings across all treatments.
func TotalCompleted(treatments []dto.TreatmentListDTO) int {
	var total int
	for _, t := range treatments {
		total += t.CompletedBookings
	}
	return total
}

// RankByPopularity returns a copy sorted by completed bookings, most booked
// first. Ties keep the incoming (name) order.
func RankByPopularity(treatments []dto.TreatmentListDTO) []dto.TreatmentListDTO {
	ranked := make([]dto.TreatmentListDTO, len(treatments))
	copy(ranked, treatments)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CompletedBookings > ranked[j].CompletedBookings
	})

	return ranked
}

// FormatDuration renders minutes as "1h 30m", "2h", or "45m".
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60

	if hours > 0 {
		if mins > 0 {
			return fmt.Sprintf("%dh %dm", hours, mins)
		}
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dm", mins)
}

// FormatPrice renders a price as "$80.00".
func FormatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}
