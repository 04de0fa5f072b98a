package visaRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	jsoniter "github.com/json-iterator/go"

	"tripdesk/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	// ErrNotFound is returned when a lookup matches nothing.
	ErrNotFound = errors.New("not found")
	// ErrUnavailable is returned when the datastore is not configured.
	ErrUnavailable = errors.New("datastore not configured")
)

// ApplicationFilters narrow a user's application listing.
type ApplicationFilters struct {
	Status       string
	CountryCode  string
	CategorySlug string
	DateFrom     string
	DateTo       string
	Page         int
	Limit        int
}

// Repo serves the visa passthrough tables: countries, visa_categories and
// applications.
type Repo struct {
	Pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{Pool: pool}
}

// ListCountries returns a page of countries ordered by name, optionally
// narrowed by a case-insensitive name search.
func (r *Repo) ListCountries(ctx context.Context, search string, page, limit int) ([]models.RawRecord, int, error) {
	if r.Pool == nil {
		return nil, 0, ErrUnavailable
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int
	countSQL := `SELECT count(*) FROM countries WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')`
	if err := r.Pool.QueryRow(ctx, countSQL, search).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.Pool.Query(ctx, `
		SELECT to_jsonb(c) FROM countries c
		WHERE ($1 = '' OR c.name ILIKE '%' || $1 || '%')
		ORDER BY c.name
		LIMIT $2 OFFSET $3`, search, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	countries := []models.RawRecord{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, 0, err
		}
		var record models.RawRecord
		if err := json.Unmarshal(doc, &record); err != nil {
			return nil, 0, err
		}
		countries = append(countries, record)
	}
	return countries, total, rows.Err()
}

func (r *Repo) GetCountry(ctx context.Context, code string) (models.RawRecord, error) {
	if r.Pool == nil {
		return nil, ErrUnavailable
	}
	var doc []byte
	err := r.Pool.QueryRow(ctx,
		`SELECT to_jsonb(c) FROM countries c WHERE c.code = upper($1)`, code).Scan(&doc)
	if err != nil {
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

// CategoryExists verifies a visa category by country code and slug.
func (r *Repo) CategoryExists(ctx context.Context, countryCode, slug string) (bool, error) {
	if r.Pool == nil {
		return false, ErrUnavailable
	}
	var id string
	err := r.Pool.QueryRow(ctx, `
		SELECT id FROM visa_categories
		WHERE country_code = upper($1) AND slug = $2`, countryCode, slug).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateApplication inserts a new draft application and returns it.
func (r *Repo) CreateApplication(ctx context.Context, app models.VisaApplication) (*models.VisaApplication, error) {
	if r.Pool == nil {
		return nil, ErrUnavailable
	}
	if app.ID == "" {
		app.ID = uuid.New().String()
	}
	app.Status = models.VisaStatusDraft
	app.PaymentStatus = "unpaid"
	now := time.Now().UTC().Format(time.RFC3339)
	app.CreatedAt = now
	app.UpdatedAt = now

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO applications
			(id, user_id, country_code, category_slug, applicant, travel,
			 status, payment_status, created_at, updated_at)
		VALUES ($1, $2, upper($3), $4, $5, $6, $7, $8, $9, $10)`,
		app.ID, app.UserID, app.CountryCode, app.CategorySlug,
		app.Applicant, app.Travel, app.Status, app.PaymentStatus,
		app.CreatedAt, app.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// ListApplications returns a page of the user's applications, newest first.
func (r *Repo) ListApplications(ctx context.Context, userID string, f ApplicationFilters) ([]models.VisaApplication, int, error) {
	if r.Pool == nil {
		return nil, 0, ErrUnavailable
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 20
	}

	where := `WHERE user_id = $1
		AND ($2 = '' OR status = $2)
		AND ($3 = '' OR country_code = upper($3))
		AND ($4 = '' OR category_slug = $4)
		AND ($5 = '' OR created_at >= $5)
		AND ($6 = '' OR created_at <= $6)`
	args := []interface{}{userID, f.Status, f.CountryCode, f.CategorySlug, f.DateFrom, f.DateTo}

	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT count(*) FROM applications `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sql := fmt.Sprintf(`
		SELECT id, user_id, country_code, category_slug, applicant, travel,
		       status, payment_status, created_at, updated_at
		FROM applications %s
		ORDER BY created_at DESC
		LIMIT %d OFFSET %d`, where, f.Limit, (f.Page-1)*f.Limit)

	rows, err := r.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	apps := []models.VisaApplication{}
	for rows.Next() {
		var app models.VisaApplication
		if err := rows.Scan(&app.ID, &app.UserID, &app.CountryCode, &app.CategorySlug,
			&app.Applicant, &app.Travel, &app.Status, &app.PaymentStatus,
			&app.CreatedAt, &app.UpdatedAt); err != nil {
			return nil, 0, err
		}
		apps = append(apps, app)
	}
	return apps, total, rows.Err()
}

// GetApplication returns one of the user's applications by id.
func (r *Repo) GetApplication(ctx context.Context, userID, id string) (*models.VisaApplication, error) {
	if r.Pool == nil {
		return nil, ErrUnavailable
	}
	var app models.VisaApplication
	err := r.Pool.QueryRow(ctx, `
		SELECT id, user_id, country_code, category_slug, applicant, travel,
		       status, payment_status, created_at, updated_at
		FROM applications
		WHERE id = $1 AND user_id = $2`, id, userID).
		Scan(&app.ID, &app.UserID, &app.CountryCode, &app.CategorySlug,
			&app.Applicant, &app.Travel, &app.Status, &app.PaymentStatus,
			&app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

// SubmitApplication moves one of the user's draft applications into the
// submitted state. A missing application or one already past draft reports
// not found.
func (r *Repo) SubmitApplication(ctx context.Context, userID, id string) (*models.VisaApplication, error) {
	if r.Pool == nil {
		return nil, ErrUnavailable
	}
	now := time.Now().UTC().Format(time.RFC3339)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE applications
		SET status = $1, updated_at = $2
		WHERE id = $3 AND user_id = $4 AND status = $5`,
		models.VisaStatusSubmitted, now, id, userID, models.VisaStatusDraft)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return r.GetApplication(ctx, userID, id)
}

// UpdateApplication patches applicant/travel details. Only draft
// applications can change; anything else reports not found.
func (r *Repo) UpdateApplication(ctx context.Context, userID, id string, applicant, travel []byte) (*models.VisaApplication, error) {
	if r.Pool == nil {
		return nil, ErrUnavailable
	}
	now := time.Now().UTC().Format(time.RFC3339)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE applications
		SET applicant = COALESCE($1, applicant),
		    travel = COALESCE($2, travel),
		    updated_at = $3
		WHERE id = $4 AND user_id = $5 AND status = $6`,
		applicant, travel, now, id, userID, models.VisaStatusDraft)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return r.GetApplication(ctx, userID, id)
}
