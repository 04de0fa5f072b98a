package catalogRepo

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tripdesk/models"
)

// stubSource scripts the primary datastore for provider tests.
type stubSource struct {
	configured bool
	guides     []models.RawRecord
	transport  []models.RawRecord
	err        error
}

func (s *stubSource) Configured() bool { return s.configured }

func (s *stubSource) FetchGuides(context.Context) ([]models.RawRecord, error) {
	return s.guides, s.err
}

func (s *stubSource) FetchTransport(context.Context) ([]models.RawRecord, error) {
	return s.transport, s.err
}

func testProvider(t *testing.T, primary PrimarySource, transportPath string) *Provider {
	t.Helper()
	return NewProvider(primary,
		filepath.Join("testdata", "guides.json"),
		transportPath,
		nil, 0, zap.NewNop())
}

func TestFetchGuidesUnconfiguredPrimaryServesFallback(t *testing.T) {
	p := testProvider(t, &stubSource{configured: false}, filepath.Join("testdata", "transport.json"))

	ds, err := p.FetchGuides(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, ds.Source)
	require.Len(t, ds.Items, 1)
	assert.Equal(t, "Fallback Guide", ds.Items[0]["name"])
	assert.Empty(t, ds.Warning)
}

func TestFetchGuidesPrimaryWins(t *testing.T) {
	primary := &stubSource{
		configured: true,
		guides:     []models.RawRecord{{"id": float64(7), "name": "Primary Guide"}},
	}
	p := testProvider(t, primary, filepath.Join("testdata", "transport.json"))

	ds, err := p.FetchGuides(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourcePrimary, ds.Source)
	require.Len(t, ds.Items, 1)
	assert.Equal(t, "Primary Guide", ds.Items[0]["name"])
}

func TestFetchGuidesEmptyPrimarySubstitutesFallback(t *testing.T) {
	p := testProvider(t, &stubSource{configured: true}, filepath.Join("testdata", "transport.json"))

	ds, err := p.FetchGuides(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, ds.Source)
	assert.Len(t, ds.Items, 1)
}

func TestFetchGuidesSchemaMissingSubstitutesWithWarning(t *testing.T) {
	primary := &stubSource{
		configured: true,
		err:        &pgconn.PgError{Code: "42P01", Message: `relation "guides" does not exist`},
	}
	p := testProvider(t, primary, filepath.Join("testdata", "transport.json"))

	ds, err := p.FetchGuides(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, ds.Source)
	assert.Len(t, ds.Items, 1)
	assert.NotEmpty(t, ds.Warning)
}

func TestFetchGuidesOtherPrimaryFailureIsReturned(t *testing.T) {
	primary := &stubSource{configured: true, err: errors.New("connection refused")}
	p := testProvider(t, primary, filepath.Join("testdata", "transport.json"))

	_, err := p.FetchGuides(context.Background())
	assert.Error(t, err)
}

func TestFetchTransportLocalDatasetWinsOverPrimary(t *testing.T) {
	primary := &stubSource{
		configured: true,
		transport:  []models.RawRecord{{"id": float64(9), "name": "Primary Express"}},
	}
	p := testProvider(t, primary, filepath.Join("testdata", "transport.json"))

	ds, err := p.FetchTransport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, ds.Source)
	require.Len(t, ds.Items, 1)
	assert.Equal(t, "Fallback Express", ds.Items[0]["name"])
}

func TestFetchTransportConsultsPrimaryWhenLocalEmpty(t *testing.T) {
	primary := &stubSource{
		configured: true,
		transport:  []models.RawRecord{{"id": float64(9), "name": "Primary Express"}},
	}
	p := testProvider(t, primary, filepath.Join("testdata", "missing.json"))

	ds, err := p.FetchTransport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourcePrimary, ds.Source)
	require.Len(t, ds.Items, 1)
	assert.Equal(t, "Primary Express", ds.Items[0]["name"])
}

func TestFetchTransportNoLocalNoPrimaryYieldsEmptyFallback(t *testing.T) {
	p := testProvider(t, &stubSource{configured: false}, filepath.Join("testdata", "missing.json"))

	ds, err := p.FetchTransport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, ds.Source)
	assert.Empty(t, ds.Items)
}

func TestSchemaMissing(t *testing.T) {
	assert.True(t, SchemaMissing(&pgconn.PgError{Code: "42P01"}))
	assert.True(t, SchemaMissing(errors.New(`ERROR: relation "guides" does not exist`)))
	assert.False(t, SchemaMissing(errors.New("connection refused")))
	assert.False(t, SchemaMissing(nil))
}

func TestFallbackFileMalformedYieldsEmptySet(t *testing.T) {
	f := newFallbackFile(filepath.Join("testdata", "missing.json"), zap.NewNop())
	assert.Empty(t, f.Items())
}
