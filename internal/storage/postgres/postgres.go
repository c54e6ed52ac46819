package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"artistBooker/internal/config"
	"artistBooker/internal/models"
	"artistBooker/internal/storage"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type Storage struct {
	DB *sqlx.DB
}

const schema = `
	CREATE TABLE IF NOT EXISTS bookings (
		id               BIGSERIAL PRIMARY KEY,
		contractor_name  VARCHAR(255) NOT NULL,
		artist_id        VARCHAR(255) NOT NULL,
		artist_name      VARCHAR(255) NOT NULL,
		artist_image_url TEXT,
		cache_amount     NUMERIC(10, 2),
		event_date       DATE NOT NULL,
		event_address    TEXT,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`

const bookingColumns = `id, contractor_name, artist_id, artist_name, artist_image_url,
		event_date, cache_amount, event_address, created_at, updated_at`

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sqlx.Connect("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if _, err = db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create bookings table: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) SaveBooking(ctx context.Context, input models.NewBooking) (*models.Booking, error) {
	query := `
		INSERT INTO bookings (contractor_name, artist_id, artist_name, artist_image_url,
			event_date, cache_amount, event_address)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + bookingColumns

	var booking models.Booking
	err := s.DB.GetContext(ctx, &booking, query,
		input.ContractorName,
		input.ArtistID,
		input.ArtistName,
		input.ArtistImageURL,
		input.EventDate,
		input.CacheAmount,
		input.EventAddress,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}

	return &booking, nil
}

func (s *Storage) AllBookings(ctx context.Context, search string, page, perPage int) ([]models.Booking, int, error) {
	if page < 1 {
		page = 1
	}

	where := ""
	args := []any{}
	if search != "" {
		where = `WHERE artist_name ILIKE '%' || $1 || '%' OR contractor_name ILIKE '%' || $1 || '%'`
		args = append(args, search)
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM bookings %s`, where)
	if err := s.DB.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM bookings
		%s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d`,
		bookingColumns, where, len(args)+1, len(args)+2)
	args = append(args, perPage, (page-1)*perPage)

	bookings := []models.Booking{}
	if err := s.DB.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to get bookings: %w", err)
	}

	return bookings, total, nil
}

func (s *Storage) GetBooking(ctx context.Context, id int64) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var booking models.Booking
	err := s.DB.GetContext(ctx, &booking, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return &booking, nil
}

func (s *Storage) UpdateBooking(ctx context.Context, id int64, patch storage.BookingPatch) (*models.Booking, error) {
	if patch.IsEmpty() {
		return s.GetBooking(ctx, id)
	}

	query, args := buildUpdate(id, patch)

	var booking models.Booking
	err := s.DB.GetContext(ctx, &booking, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	return &booking, nil
}

func (s *Storage) DeleteBooking(ctx context.Context, id int64) error {
	result, err := s.DB.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if affected == 0 {
		return storage.ErrBookingNotFound
	}

	return nil
}

// buildUpdate renders an UPDATE statement touching only the fields the
// patch carries, always bumping updated_at.
func buildUpdate(id int64, patch storage.BookingPatch) (string, []any) {
	sets := []string{}
	args := []any{}

	addSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.ContractorName != nil {
		addSet("contractor_name", *patch.ContractorName)
	}
	if patch.EventDate != nil {
		addSet("event_date", *patch.EventDate)
	}
	if patch.CacheAmount != nil {
		addSet("cache_amount", *patch.CacheAmount)
	}
	if patch.EventAddress != nil {
		addSet("event_address", *patch.EventAddress)
	}

	sets = append(sets, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE bookings SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), bookingColumns)

	return query, args
}
