package facility

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bluey22/tee-time/go/internal/apperrors"
	"github.com/bluey22/tee-time/go/internal/models"
	"github.com/bluey22/tee-time/go/internal/sqlutil"
)

// Repository implements facility data access operations
type Repository struct {
	db sqlutil.DBTX
}

// NewRepository creates a new facility repository bound to db.
func NewRepository(db sqlutil.DBTX) *Repository {
	return &Repository{db: db}
}

// Get retrieves a facility by ID.
func (r *Repository) Get(ctx context.Context, id int) (*models.Facility, error) {
	const query = `
		SELECT facility_id, name,
		       COALESCE(address, ''), COALESCE(city, ''), COALESCE(state, ''), COALESCE(zip, ''),
		       phone, website
		FROM facility
		WHERE facility_id = $1
	`
	var f models.Facility
	err := r.db.QueryRow(ctx, query, id).Scan(
		&f.ID,
		&f.Name,
		&f.Address,
		&f.City,
		&f.State,
		&f.Zip,
		&f.Phone,
		&f.Website,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.E(apperrors.KindNotFound, "facility.Get", "facility %d not found", id)
		}
		return nil, fmt.Errorf("failed to get facility: %w", err)
	}
	return &f, nil
}
