package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	receiptspb "github.com/snapledger/snapledger/gen/proto/receipts/v1"
	"github.com/snapledger/snapledger/internal/async"
	"github.com/snapledger/snapledger/internal/common"
	"github.com/snapledger/snapledger/internal/export"
	"github.com/snapledger/snapledger/internal/imgenc"
	"github.com/snapledger/snapledger/internal/ingest"
	"github.com/snapledger/snapledger/internal/ocr"
	"github.com/snapledger/snapledger/internal/parser"
	"github.com/snapledger/snapledger/internal/pipeline"
	repo "github.com/snapledger/snapledger/internal/repository"
	svc "github.com/snapledger/snapledger/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := svc.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer svc.CloseDB(entc, pool, logger)

	if err := svc.PingDB(ctx, pool, logger, cfg.Database.DialTimeout); err != nil {
		os.Exit(1)
	}

	profilesRepo := repo.NewProfileRepository(entc, logger)
	receiptsRepo := repo.NewReceiptRepository(entc, logger)
	filesRepo := repo.NewReceiptFileRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)
	categoryRepo := repo.NewCategoryRepository(entc, logger)

	if err := categoryRepo.Seed(ctx); err != nil {
		logger.Error("failed to seed categories", "error", err)
		os.Exit(1)
	}

	// Extraction stack. The daemon always runs the production chain; the mock
	// provider is only reachable from the dev CLIs.
	chain := ocr.BuildChain(cfg.OCR, logger)
	encoder := imgenc.NewEncoder(imgenc.Config{Preprocess: true}, nil, logger)
	fieldParser := parser.NewParser(logger)

	processor := pipeline.NewProcessor(logger, encoder, chain, fieldParser, cfg.OCR.Language)
	fileProcessor := pipeline.NewFileProcessor(
		logger, encoder, chain, fieldParser,
		filesRepo, profilesRepo, jobsRepo, receiptsRepo, categoryRepo,
		cfg.OCR.Language,
	)

	queue := async.NewProcessorQueue(fileProcessor, logger,
		async.WithWorkers(cfg.Ingest.Workers),
		async.WithQueueSize(cfg.Ingest.QueueSize),
		async.WithProcessTimeout(cfg.Ingest.ProcessTimeout),
	)

	ingestor := ingest.NewFSIngestor(profilesRepo, filesRepo, logger)

	// gRPC server
	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	exporter := export.NewService(receiptsRepo, logger)
	receiptspb.RegisterProfilesServiceServer(grpcServer, svc.NewProfileServer(profilesRepo, logger))
	receiptspb.RegisterReceiptsServiceServer(grpcServer,
		svc.NewReceiptService(processor, receiptsRepo, profilesRepo, categoryRepo, exporter, logger))
	receiptspb.RegisterIngestionServiceServer(grpcServer,
		svc.NewIngestionService(ingestor, queue, profilesRepo, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	if len(cfg.Ingest.WatchDirs) > 0 {
		startWatcher(ctx, cfg, ingestor, queue, profilesRepo, logger)
	}

	logger.Info("snapledgerd listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}

// startWatcher feeds files dropped into the watch roots through ingest and
// onto the processing queue under the default profile.
func startWatcher(
	ctx context.Context,
	cfg *common.Config,
	ingestor ingest.Ingestor,
	queue *async.ProcessorQueue,
	profilesRepo repo.ProfileRepository,
	logger *slog.Logger,
) {
	profile, err := profilesRepo.GetOrCreateByName(ctx, cfg.Ingest.DefaultProfile, cfg.Ingest.DefaultCurrency)
	if err != nil {
		logger.Error("watcher disabled: default profile unavailable", "error", err)
		return
	}

	events, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:    cfg.Ingest.WatchDirs,
		Debounce: cfg.Ingest.Debounce,
	}, logger)
	if err != nil {
		logger.Error("watcher disabled", "error", err)
		return
	}
	logger.Info("watching for receipts", "roots", cfg.Ingest.WatchDirs, "profile", profile.Name)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case path, ok := <-events:
				if !ok {
					return
				}
				r, err := ingestor.IngestPath(ctx, profile.ID, path)
				if err != nil {
					logger.Error("watch ingest failed", "path", path, "error", err)
					continue
				}
				if r.Deduplicated {
					continue
				}
				if fileID, err := uuid.Parse(r.FileID); err == nil {
					_ = queue.Enqueue(ctx, async.Job{FileID: fileID})
				}
			case err, ok := <-errs:
				if ok && err != nil {
					logger.Error("watcher error", "error", err)
				}
			}
		}
	}()
}
