package artifacts

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"crane_fmv/internal/domain/entities"

	"github.com/minio/minio-go/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func sampleResults() []entities.ValuationResult {
	computed := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	return []entities.ValuationResult{
		{
			ID:            "v1",
			ReportID:      "rep-1",
			AssetPosition: 1,
			Asset: entities.AssetDescriptor{
				Manufacturer: "Liebherr", Model: "LTM 1100-4.2", Year: 2015, CapacityTons: 100,
				Hours: 12000, Condition: entities.ConditionGood, Location: "US-TX",
			},
			Tier:           entities.ReportTypeSpotCheck,
			Revision:       1,
			EstimatedValue: decimal.RequireFromString("623000.50"),
			Band:           entities.ConfidenceBand{Low: decimal.RequireFromString("529550.42"), High: decimal.RequireFromString("716450.58")},
			MarketSnapshot: "static-2026.10",
			ComputedAt:     computed,
		},
	}
}

func TestHTMLRenderer_Deterministic(t *testing.T) {
	r := NewHTMLRenderer()
	in := RenderInput{ReportID: "rep-1", Type: entities.ReportTypeSpotCheck, Results: sampleResults()}

	a, err := r.Render(in)
	require.NoError(t, err)
	b, err := r.Render(in)
	require.NoError(t, err)
	require.Equal(t, a, b)

	html := string(a)
	require.Contains(t, html, "Spot Check")
	require.Contains(t, html, "USD 623000.50")
	require.Contains(t, html, "Liebherr LTM 1100-4.2 (100 t)")
	require.Contains(t, html, "Revision 1")
}

func TestHTMLRenderer_EscapesInput(t *testing.T) {
	results := sampleResults()
	results[0].Asset.Model = `<script>alert(1)</script>`

	out, err := NewHTMLRenderer().Render(RenderInput{ReportID: "rep-1", Type: entities.ReportTypeSpotCheck, Results: results})
	require.NoError(t, err)
	require.NotContains(t, string(out), "<script>")
}

func TestGenerator_IdempotentRender(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	g := NewGenerator(store)

	h1, err := g.Render(ctx, "rep-1", entities.ReportTypeSpotCheck, sampleResults())
	require.NoError(t, err)
	h2, err := g.Render(ctx, "rep-1", entities.ReportTypeSpotCheck, sampleResults())
	require.NoError(t, err)
	require.Equal(t, h1, h2)
	require.Equal(t, 1, store.Len())
	require.True(t, strings.HasPrefix(h1.Key, "reports/rep-1/"))

	body, contentType, ok := store.Get(h1.Key)
	require.True(t, ok)
	require.Equal(t, "text/html; charset=utf-8", contentType)
	require.EqualValues(t, len(body), h1.Size)

	changed := sampleResults()
	changed[0].Revision = 2
	h3, err := g.Render(ctx, "rep-1", entities.ReportTypeSpotCheck, changed)
	require.NoError(t, err)
	require.NotEqual(t, h1.Key, h3.Key)

	url, err := g.DownloadURL(ctx, h1, 5*time.Minute)
	require.NoError(t, err)
	require.Contains(t, url, h1.Key)

	_, err = g.DownloadURL(ctx, entities.ArtifactHandle{Key: "reports/rep-9/none.html"}, time.Minute)
	require.ErrorIs(t, err, ErrArtifactNotFound)

	_, err = g.Render(ctx, "rep-1", entities.ReportTypeSpotCheck, nil)
	require.Error(t, err)
}

type failingStore struct{}

func (failingStore) PutIfAbsent(context.Context, string, string, []byte) error {
	return errors.New("bucket unavailable")
}

func (failingStore) PresignGet(context.Context, string, time.Duration) (string, error) {
	return "", errors.New("bucket unavailable")
}

func TestGenerator_StoreFailure(t *testing.T) {
	_, err := NewGenerator(failingStore{}).Render(context.Background(), "rep-1", entities.ReportTypeSpotCheck, sampleResults())
	require.EqualError(t, err, "bucket unavailable")
}

func TestIsNoSuchKey(t *testing.T) {
	require.True(t, isNoSuchKey(minio.ErrorResponse{Code: "NoSuchKey", StatusCode: http.StatusNotFound}))
	require.False(t, isNoSuchKey(minio.ErrorResponse{Code: "AccessDenied", StatusCode: http.StatusForbidden}))
}
