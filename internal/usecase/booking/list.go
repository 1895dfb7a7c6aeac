package booking

import (
	"context"

	domain "github.com/serenitywellness/spa-manager/internal/domain/booking"
	"github.com/serenitywellness/spa-manager/internal/dto"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

func (uc *ListBookings) Execute(ctx context.Context) ([]dto.BookingDetailsDTO, error) {
	return uc.repo.List(ctx)
}
