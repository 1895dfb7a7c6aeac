package booking

import (
	"context"

	domain "github.com/serenitywellness/spa-manager/internal/domain/booking"
	"github.com/serenitywellness/spa-manager/internal/dto"
)

type GetBooking struct {
	repo domain.Repository
}

func NewGetBooking(repo domain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

func (uc *GetBooking) Execute(ctx context.Context, id string) (*dto.BookingDetailsDTO, error) {
	return uc.repo.Get(ctx, id)
}
