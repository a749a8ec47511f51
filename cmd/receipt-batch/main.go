package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/snapledger/snapledger/gen/ent"
	"github.com/snapledger/snapledger/internal/common"
	"github.com/snapledger/snapledger/internal/export"
	"github.com/snapledger/snapledger/internal/imgenc"
	"github.com/snapledger/snapledger/internal/ingest"
	"github.com/snapledger/snapledger/internal/ocr"
	"github.com/snapledger/snapledger/internal/parser"
	"github.com/snapledger/snapledger/internal/pipeline"
	repo "github.com/snapledger/snapledger/internal/repository"
)

// receipt-batch processes a directory of receipt images in one run and writes
// an XLSX summary. With --inmem it needs no Postgres at all.
func main() {
	var (
		inmem   = flag.Bool("inmem", false, "use an in-memory SQLite database")
		dir     = flag.String("dir", "", "directory to process receipts from (required)")
		out     = flag.String("out", "", "output XLSX file path (defaults to parent directory)")
		fromStr = flag.String("from", "", "from date YYYY-MM-DD")
		toStr   = flag.String("to", "", "to date YYYY-MM-DD")
	)
	flag.Parse()

	if *dir == "" {
		fmt.Fprintln(os.Stderr, "Error: --dir is required")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "receipts.xlsx")
	}

	var from, to *time.Time
	if *fromStr != "" {
		parsed, err := time.Parse("2006-01-02", *fromStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid --from date, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
		from = &parsed
	}
	if *toStr != "" {
		parsed, err := time.Parse("2006-01-02", *toStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid --to date, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
		to = &parsed
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	entc, cleanup, err := openDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	profilesRepo := repo.NewProfileRepository(entc, logger)
	receiptsRepo := repo.NewReceiptRepository(entc, logger)
	filesRepo := repo.NewReceiptFileRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)
	categoryRepo := repo.NewCategoryRepository(entc, logger)

	if err := categoryRepo.Seed(ctx); err != nil {
		logger.Error("failed to seed categories", "error", err)
		os.Exit(1)
	}

	profile, err := profilesRepo.GetOrCreateByName(ctx, cfg.Ingest.DefaultProfile, cfg.Ingest.DefaultCurrency)
	if err != nil {
		logger.Error("failed to get or create profile", "error", err)
		os.Exit(1)
	}
	logger.Info("using profile", "id", profile.ID, "name", profile.Name)

	// Real providers against a real database; the mock is only admitted for
	// throwaway in-memory runs.
	chain := ocr.BuildChain(cfg.OCR, logger)
	if *inmem {
		chain = ocr.BuildDevChain(cfg.OCR, logger)
	}
	encoder := imgenc.NewEncoder(imgenc.Config{Preprocess: true}, nil, logger)
	fileProcessor := pipeline.NewFileProcessor(
		logger, encoder, chain, parser.NewParser(logger),
		filesRepo, profilesRepo, jobsRepo, receiptsRepo, categoryRepo,
		cfg.OCR.Language,
	)

	ingestor := ingest.NewFSIngestor(profilesRepo, filesRepo, logger)

	logger.Info("starting ingestion", "dir", *dir, "profile", profile.ID)
	results, stats, err := ingestor.IngestDirectory(ctx, profile.ID, *dir, true)
	if err != nil {
		logger.Error("failed to ingest directory", "error", err)
		os.Exit(1)
	}
	logger.Info("ingestion complete",
		"scanned", stats.Scanned, "matched", stats.Matched,
		"succeeded", stats.Succeeded, "deduplicated", stats.Deduplicated, "failed", stats.Failed,
	)

	processed, failed := 0, 0
	for _, r := range results {
		if r.Err != "" || r.FileID == "" || r.Deduplicated {
			continue
		}
		fileID, err := uuid.Parse(r.FileID)
		if err != nil {
			continue
		}
		if _, err := fileProcessor.ProcessFile(ctx, fileID); err != nil {
			logger.Error("processing failed", "file_id", r.FileID, "path", r.SourcePath, "error", err)
			failed++
			continue
		}
		processed++
	}
	logger.Info("processing complete", "processed", processed, "failed", failed)

	exporter := export.NewService(receiptsRepo, logger)
	xlsx, err := exporter.ExportReceiptsXLSX(ctx, profile.ID, from, to)
	if err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsx, 0o644); err != nil {
		logger.Error("failed to write output file", "path", *out, "error", err)
		os.Exit(1)
	}
	logger.Info("export written", "path", *out, "bytes", len(xlsx))
}

func openDatabase(ctx context.Context, cfg *common.Config, inmem bool, logger *slog.Logger) (*ent.Client, func(), error) {
	if inmem {
		entc, err := repo.OpenSQLite(ctx, repo.InMemoryDSN, logger)
		if err != nil {
			return nil, nil, err
		}
		return entc, func() { _ = entc.Close() }, nil
	}

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, nil, err
	}
	return entc, func() { repo.Close(entc, pool, logger) }, nil
}
