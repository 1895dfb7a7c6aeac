package booking

import (
	"context"

	"github.com/serenitywellness/spa-manager/internal/dto"
	"github.com/serenitywellness/spa-manager/internal/models"
)

// Repository is the persistence contract for bookings. Transitions between
// statuses are independent of related entities: deactivating a treatment,
// room, or personnel never touches bookings that reference them.
type Repository interface {
	// List returns every booking regardless of status, newest date/time first.
	List(ctx context.Context) ([]dto.BookingDetailsDTO, error)

	// Get returns one enriched booking or gorm.ErrRecordNotFound.
	Get(ctx context.Context, id string) (*dto.BookingDetailsDTO, error)

	// Create inserts the booking and one association row per personnel id
	// inside a single transaction. Any failure rolls back the whole write.
	Create(ctx context.Context, b *models.Booking, personnelIDs []string) error

	// UpdateStatusNotes overwrites status and notes only. Updating an
	// unknown id affects zero rows and is not an error.
	UpdateStatusNotes(ctx context.Context, id string, status Status, notes string) error

	// SetStatus sets the status unconditionally, whatever the current one.
	SetStatus(ctx context.Context, id string, status Status) error
}
