package booking

import (
	"context"

	"github.com/serenitywellness/spa-manager/internal/activity"
	domain "github.com/serenitywellness/spa-manager/internal/domain/booking"
	"github.com/serenitywellness/spa-manager/internal/dto"
	"github.com/serenitywellness/spa-manager/internal/httperr"
)

type UpdateBooking struct {
	repo     domain.Repository
	activity *activity.Dispatcher
}

func NewUpdateBooking(repo domain.Repository, activity *activity.Dispatcher) *UpdateBooking {
	return &UpdateBooking{
		repo:     repo,
		activity: activity,
	}
}

// Execute overwrites status and notes only. An unknown id writes zero rows
// and surfaces as not-found on the re-read.
func (uc *UpdateBooking) Execute(
	ctx context.Context,
	id string,
	status domain.Status,
	notes string,
) (*dto.BookingDetailsDTO, error) {

	if !status.Valid() {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	if err := uc.repo.UpdateStatusNotes(ctx, id, status, notes); err != nil {
		return nil, err
	}

	row, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.activity.Dispatch(activity.Event{
		Action:   "booking_updated",
		Entity:   "booking",
		EntityID: id,
		Metadata: map[string]any{"status": string(status)},
	})

	return row, nil
}
