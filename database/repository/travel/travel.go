package travelRepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	jsoniter "github.com/json-iterator/go"

	"tripdesk/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrNotFound is returned when a single-row lookup matches nothing.
var ErrNotFound = errors.New("record not found")

// ErrUnavailable is returned when the datastore is not configured.
var ErrUnavailable = errors.New("datastore not configured")

// Repo serves the passthrough travel tables: hotels, flights and packages.
// Rows are fetched as jsonb documents and returned as-is; these tables have
// no normalization layer.
type Repo struct {
	Pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{Pool: pool}
}

func (r *Repo) ListHotels(ctx context.Context) ([]models.RawRecord, error) {
	return r.list(ctx, `
		SELECT to_jsonb(h) FROM hotels_hotel h
		WHERE h.test_data = false
		ORDER BY h.created_at DESC`)
}

func (r *Repo) GetHotel(ctx context.Context, id string) (models.RawRecord, error) {
	return r.get(ctx, `SELECT to_jsonb(h) FROM hotels_hotel h WHERE h.id = $1`, id)
}

func (r *Repo) ListFlights(ctx context.Context) ([]models.RawRecord, error) {
	return r.list(ctx, `
		SELECT to_jsonb(f) FROM flights_flight f
		WHERE f.is_active = true AND f.available_seats > 0
		ORDER BY f.departure_datetime ASC`)
}

func (r *Repo) GetFlight(ctx context.Context, id string) (models.RawRecord, error) {
	return r.get(ctx, `SELECT to_jsonb(f) FROM flights_flight f WHERE f.id = $1`, id)
}

func (r *Repo) ListPackages(ctx context.Context) ([]models.RawRecord, error) {
	return r.list(ctx, `
		SELECT to_jsonb(p) FROM packages_package p
		ORDER BY p.created_at DESC`)
}

func (r *Repo) GetPackage(ctx context.Context, id string) (models.RawRecord, error) {
	return r.get(ctx, `SELECT to_jsonb(p) FROM packages_package p WHERE p.id = $1`, id)
}

func (r *Repo) list(ctx context.Context, sql string) ([]models.RawRecord, error) {
	if r.Pool == nil {
		return nil, ErrUnavailable
	}
	rows, err := r.Pool.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.RawRecord{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var record models.RawRecord
		if err := json.Unmarshal(doc, &record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (r *Repo) get(ctx context.Context, sql string, id string) (models.RawRecord, error) {
	if r.Pool == nil {
		return nil, ErrUnavailable
	}
	var doc []byte
	if err := r.Pool.QueryRow(ctx, sql, id).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var record models.RawRecord
	if err := json.Unmarshal(doc, &record); err != nil {
		return nil, err
	}
	return record, nil
}
