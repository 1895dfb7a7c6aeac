package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/serenitywellness/spa-manager/internal/domain/booking"
	"github.com/serenitywellness/spa-manager/internal/dto"
	"github.com/serenitywellness/spa-manager/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// bookingDetailsSelect enriches a booking row with treatment/room names and
// the assigned personnel joined into one string, matching the list shape.
const bookingDetailsSelect = `
	SELECT
		b.*,
		t.name AS treatment_name,
		r.name AS room_name,
		COALESCE(string_agg(p.name, ', ' ORDER BY p.name), '') AS personnel_names
	FROM bookings b
	LEFT JOIN treatments t ON t.id = b.treatment_id
	LEFT JOIN rooms r ON r.id = b.room_id
	LEFT JOIN booking_personnel bp ON bp.booking_id = b.id
	LEFT JOIN personnel p ON p.id = bp.personnel_id
`

const bookingDetailsGroup = ` GROUP BY b.id, t.name, r.name`

func (r *BookingGormRepository) List(ctx context.Context) ([]dto.BookingDetailsDTO, error) {
	rows := []dto.BookingDetailsDTO{}

	err := r.db.WithContext(ctx).
		Raw(bookingDetailsSelect + bookingDetailsGroup +
			` ORDER BY b.booking_date DESC, b.booking_time DESC`).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *BookingGormRepository) Get(ctx context.Context, id string) (*dto.BookingDetailsDTO, error) {
	var row dto.BookingDetailsDTO

	res := r.db.WithContext(ctx).
		Raw(bookingDetailsSelect+` WHERE b.id = ?`+bookingDetailsGroup, id).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return &row, nil
}

func (r *BookingGormRepository) Create(
	ctx context.Context,
	b *models.Booking,
	personnelIDs []string,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(b).Error; err != nil {
			return err
		}

		for _, personnelID := range personnelIDs {
			link := models.BookingPersonnel{
				BookingID:   b.ID,
				PersonnelID: personnelID,
			}
			if err := tx.Omit(clause.Associations).Create(&link).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *BookingGormRepository) UpdateStatusNotes(
	ctx context.Context,
	id string,
	status domain.Status,
	notes string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": string(status),
			"notes":  notes,
		}).Error
}

func (r *BookingGormRepository) SetStatus(
	ctx context.Context,
	id string,
	status domain.Status,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
