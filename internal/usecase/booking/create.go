package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/serenitywellness/spa-manager/internal/activity"
	domain "github.com/serenitywellness/spa-manager/internal/domain/booking"
	"github.com/serenitywellness/spa-manager/internal/dto"
	"github.com/serenitywellness/spa-manager/internal/models"
)

type CreateBookingInput struct {
	ClientName  string
	ClientEmail string
	ClientPhone string

	BookingDate string
	BookingTime string

	TreatmentID  string
	RoomID       string
	PersonnelIDs []string

	Notes string
}

type CreateBooking struct {
	repo     domain.Repository
	activity *activity.Dispatcher
}

func NewCreateBooking(repo domain.Repository, activity *activity.Dispatcher) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		activity: activity,
	}
}

// Execute inserts the booking and its personnel associations atomically.
// No availability check is performed: the room and the assigned personnel
// may already be booked at the same date and time, the room may be under
// maintenance, and the personnel may be inactive.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*dto.BookingDetailsDTO, error) {

	b := &models.Booking{
		ID:          uuid.NewString(),
		ClientName:  in.ClientName,
		ClientEmail: in.ClientEmail,
		ClientPhone: in.ClientPhone,
		BookingDate: in.BookingDate,
		BookingTime: in.BookingTime,
		TreatmentID: in.TreatmentID,
		RoomID:      in.RoomID,
		Status:      string(domain.InitialStatus()),
		Notes:       in.Notes,
	}

	if err := uc.repo.Create(ctx, b, in.PersonnelIDs); err != nil {
		return nil, err
	}

	uc.activity.Dispatch(activity.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: b.ID,
		Metadata: map[string]any{
			"booking_date": b.BookingDate,
			"booking_time": b.BookingTime,
		},
	})

	return uc.repo.Get(ctx, b.ID)
}
