package booking

import (
	"context"

	"github.com/serenitywellness/spa-manager/internal/activity"
	domain "github.com/serenitywellness/spa-manager/internal/domain/booking"
)

type CancelBooking struct {
	repo     domain.Repository
	activity *activity.Dispatcher
}

func NewCancelBooking(repo domain.Repository, activity *activity.Dispatcher) *CancelBooking {
	return &CancelBooking{
		repo:     repo,
		activity: activity,
	}
}

// Execute sets status=cancelled whatever the current status is, so
// cancelling twice (or cancelling a completed booking) succeeds.
func (uc *CancelBooking) Execute(ctx context.Context, id string) error {
	if err := uc.repo.SetStatus(ctx, id, domain.StatusCancelled); err != nil {
		return err
	}

	uc.activity.Dispatch(activity.Event{
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: id,
	})

	return nil
}
