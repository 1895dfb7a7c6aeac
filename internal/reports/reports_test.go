package reports

import (
	"testing"

	"github.com/serenitywellness/spa-manager/internal/dto"
)

func sampleTreatments() []dto.TreatmentListDTO {
	return []dto.TreatmentListDTO{
		{ID: "a", Name: "Aromatherapy", Price: 70, CompletedBookings: 2},
		{ID: "b", Name: "Hot Stone", Price: 95, CompletedBookings: 5},
		{ID: "c", Name: "Swedish Massage", Price: 80, CompletedBookings: 0},
	}
}

func TestTotalRevenue(t *testing.T) {
	got := TotalRevenue(sampleTreatments())
	want := 70*2 + 95*5 + 80*0.0
	if got != want {
		t.Fatalf("TotalRevenue = %v, want %v", got, want)
	}
}

func TestTotalRevenueEmpty(t *testing.T) {
	if got := TotalRevenue(nil); got != 0 {
		t.Fatalf("TotalRevenue(nil) = %v, want 0", got)
	}
}

func TestTotalCompleted(t *testing.T) {
	if got := TotalCompleted(sampleTreatments()); got != 7 {
		t.Fatalf("TotalCompleted = %d, want 7", got)
	}
}

func TestRankByPopularity(t *testing.T) {
	in := sampleTreatments()
	ranked := RankByPopularity(in)

	if ranked[0].ID != "b" || ranked[1].ID != "a" || ranked[2].ID != "c" {
		t.Fatalf("unexpected ranking order: %v %v %v", ranked[0].ID, ranked[1].ID, ranked[2].ID)
	}

	// input must stay untouched
	if in[0].ID != "a" {
		t.Fatalf("input slice was reordered")
	}
}

func TestRankByPopularityStableOnTies(t *testing.T) {
	in := []dto.TreatmentListDTO{
		{ID: "x", Name: "Facial", CompletedBookings: 3},
		{ID: "y", Name: "Manicure", CompletedBookings: 3},
	}
	ranked := RankByPopularity(in)
	if ranked[0].ID != "x" || ranked[1].ID != "y" {
		t.Fatalf("tie order changed: %v %v", ranked[0].ID, ranked[1].ID)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{45, "45m"},
		{60, "1h"},
		{90, "1h 30m"},
		{120, "2h"},
		{15, "15m"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.minutes); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{80, "$80.00"},
		{65.5, "$65.50"},
		{0, "$0.00"},
	}

	for _, tt := range tests {
		if got := FormatPrice(tt.price); got != tt.want {
			t.Errorf("FormatPrice(%v) = %q, want %q", tt.price, got, tt.want)
		}
	}
}
