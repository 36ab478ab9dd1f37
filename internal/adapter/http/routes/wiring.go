package routes

import (
	"context"
	"fmt"

	"crane_fmv/internal/adapter/http/handlers"
	"crane_fmv/internal/adapter/persistence/memory"
	"crane_fmv/internal/adapter/persistence/repository"
	"crane_fmv/internal/config"
	"crane_fmv/internal/domain/pricing"
	"crane_fmv/internal/domain/valuation"
	"crane_fmv/internal/infrastructure/artifacts"
	"crane_fmv/internal/infrastructure/database"
	"crane_fmv/internal/infrastructure/metrics"
	"crane_fmv/internal/infrastructure/payments"
	"crane_fmv/internal/usecase"
	"crane_fmv/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Dependencies is the wired object graph served by the router.
type Dependencies struct {
	Reports        *usecase.ReportUseCase
	Pricing        *usecase.PricingUseCase
	ReportHandler  *handlers.ReportHandler
	PricingHandler *handlers.PricingHandler
}

type stores struct {
	reports    interfaces.IReportRepository
	valuations interfaces.IValuationRepository
	payments   interfaces.IPaymentRecordRepository
}

// BuildDependencies wires storage, the payment gate, the artifact store and
// the use cases from cfg. Lifecycle collectors are registered on registerer.
func BuildDependencies(ctx context.Context, cfg config.Config, registerer prometheus.Registerer) (Dependencies, error) {
	log := zap.L().Named("wiring")

	st, err := buildStores(ctx, cfg.Storage)
	if err != nil {
		return Dependencies{}, err
	}

	gate, err := payments.NewMercadoPagoGateway(cfg.Payments.MercadoPagoAccessToken, cfg.Payments.Mock)
	if err != nil {
		// Reports can still be drafted; confirmPayment answers gate unavailable.
		log.Warn("payment gate not configured", zap.Error(err))
	}

	store, err := buildArtifactStore(ctx, cfg.Artifacts)
	if err != nil {
		return Dependencies{}, err
	}

	table, err := pricing.NewTable(cfg.Pricing.Prices())
	if err != nil {
		return Dependencies{}, fmt.Errorf("pricing table: %w", err)
	}

	evaluator := valuation.NewEvaluator(
		valuation.NewStaticMarket(valuation.DefaultSnapshot()),
		valuation.WithConcurrency(cfg.Lifecycle.ValuationConcurrency),
	)

	deps := usecase.ReportDeps{
		Reports:        st.reports,
		Valuations:     st.valuations,
		Payments:       st.payments,
		Generator:      artifacts.NewGenerator(store),
		Evaluator:      evaluator,
		Pricing:        table,
		Metrics:        metrics.NewLifecycleMetrics(registerer),
		FleetMaxAssets: cfg.Lifecycle.FleetMaxAssets,
		ArtifactURLTTL: cfg.Artifacts.URLTTL,
	}
	if gate != nil {
		deps.Gate = gate
	}

	reports := usecase.NewReportUseCase(deps)
	pricingUC := usecase.NewPricingUseCase(table)

	return Dependencies{
		Reports:        reports,
		Pricing:        pricingUC,
		ReportHandler:  handlers.NewReportHandler(reports, cfg.AdminToken, cfg.Lifecycle.ExternalCallTimeout),
		PricingHandler: handlers.NewPricingHandler(pricingUC, cfg.AdminToken),
	}, nil
}

func buildStores(ctx context.Context, cfg config.Storage) (stores, error) {
	if cfg.Driver == config.StorageMemory {
		zap.L().Named("wiring").Warn("using in-memory storage; data is lost on restart")
		return stores{
			reports:    memory.NewReportMemoryRepository(),
			valuations: memory.NewValuationMemoryRepository(),
			payments:   memory.NewPaymentRecordMemoryRepository(),
		}, nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return stores{}, err
	}
	if cfg.DynamoDBEndpoint != "" {
		if err := database.EnsureTables(ctx, ddb, cfg); err != nil {
			return stores{}, err
		}
	}
	return stores{
		reports:    repository.NewReportDynamoRepository(ddb, cfg.ReportsTable),
		valuations: repository.NewValuationDynamoRepository(ddb, cfg.ValuationsTable),
		payments:   repository.NewPaymentRecordDynamoRepository(ddb, cfg.PaymentsTable),
	}, nil
}

func buildArtifactStore(ctx context.Context, cfg config.Artifacts) (artifacts.Store, error) {
	if cfg.Store == config.ArtifactStoreMemory {
		return artifacts.NewMemoryStore(), nil
	}

	client, err := artifacts.NewMinIOClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}
	store, err := artifacts.NewMinioStore(client, cfg.MinioBucket)
	if err != nil {
		return nil, err
	}
	if err := store.EnsureBucket(ctx, cfg.MinioRegion); err != nil {
		return nil, err
	}
	return store, nil
}
