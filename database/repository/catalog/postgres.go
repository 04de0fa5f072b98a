package catalogRepo

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	jsoniter "github.com/json-iterator/go"

	"tripdesk/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Rows come back as full jsonb documents so the normalizer sees whatever
// columns the deployment happens to have.
const (
	guidesJoinQuery = `
		SELECT to_jsonb(g) || jsonb_build_object('destination', to_jsonb(d))
		FROM guides g
		LEFT JOIN destinations d ON d.id = g.destination_id`

	guidesPlainQuery = `SELECT to_jsonb(g) FROM guides g`

	transportJoinQuery = `
		SELECT to_jsonb(t) || jsonb_build_object(
			'from_destination', to_jsonb(fd),
			'to_destination', to_jsonb(td))
		FROM transport_options t
		LEFT JOIN destinations fd ON fd.id = t.from_destination_id
		LEFT JOIN destinations td ON td.id = t.to_destination_id`
)

// PostgresSource reads catalog records from the primary relational
// datastore.
type PostgresSource struct {
	Pool *pgxpool.Pool
}

func NewPostgresSource(pool *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{Pool: pool}
}

func (s *PostgresSource) Configured() bool {
	return s != nil && s.Pool != nil
}

// FetchGuides tries the destination join first; deployments without the
// destinations FK fall back to a plain select with embedded location data.
func (s *PostgresSource) FetchGuides(ctx context.Context) ([]models.RawRecord, error) {
	records, err := s.query(ctx, guidesJoinQuery)
	if err != nil {
		records, err = s.query(ctx, guidesPlainQuery)
	}
	return records, err
}

func (s *PostgresSource) FetchTransport(ctx context.Context) ([]models.RawRecord, error) {
	return s.query(ctx, transportJoinQuery)
}

func (s *PostgresSource) query(ctx context.Context, sql string) ([]models.RawRecord, error) {
	rows, err := s.Pool.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.RawRecord
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

// SchemaMissing reports whether err is the "relation does not exist" class
// of failure that makes a primary fetch eligible for fallback substitution.
func SchemaMissing(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "42P01"
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "relation") && strings.Contains(msg, "does not exist")
}

// IsNoRows reports the single-row not-found condition from pgx.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
