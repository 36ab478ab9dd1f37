package artifacts

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"crane_fmv/internal/domain/entities"
	"crane_fmv/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Generator renders valuation results and stores the document under a key
// derived from its content, so rendering the same results twice yields the
// same handle and a single stored object.
type Generator struct {
	renderer *HTMLRenderer
	store    Store
	log      *zap.Logger
}

var _ interfaces.IArtifactGenerator = (*Generator)(nil)

func NewGenerator(store Store) *Generator {
	return &Generator{renderer: NewHTMLRenderer(), store: store, log: zap.L().Named("artifacts")}
}

func (g *Generator) Render(ctx context.Context, reportID string, reportType entities.ReportType, results []entities.ValuationResult) (entities.ArtifactHandle, error) {
	if len(results) == 0 {
		return entities.ArtifactHandle{}, errors.New("no valuation results to render")
	}

	body, err := g.renderer.Render(RenderInput{ReportID: reportID, Type: reportType, Results: results})
	if err != nil {
		return entities.ArtifactHandle{}, fmt.Errorf("render: %w", err)
	}
	sum := sha256.Sum256(body)
	digest := hex.EncodeToString(sum[:])

	handle := entities.ArtifactHandle{
		Key:         fmt.Sprintf("reports/%s/%s%s", reportID, digest, g.renderer.Extension()),
		ContentType: g.renderer.ContentType(),
		SHA256:      digest,
		Size:        int64(len(body)),
	}
	if err := g.store.PutIfAbsent(ctx, handle.Key, handle.ContentType, body); err != nil {
		g.log.Warn("store artifact failed", zap.String("report_id", reportID), zap.String("key", handle.Key), zap.Error(err))
		return entities.ArtifactHandle{}, err
	}
	g.log.Info("artifact stored", zap.String("report_id", reportID), zap.String("key", handle.Key), zap.Int64("size", handle.Size))
	return handle, nil
}

func (g *Generator) DownloadURL(ctx context.Context, handle entities.ArtifactHandle, ttl time.Duration) (string, error) {
	return g.store.PresignGet(ctx, handle.Key, ttl)
}
