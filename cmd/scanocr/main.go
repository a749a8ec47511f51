package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/snapledger/snapledger/internal/common"
	"github.com/snapledger/snapledger/internal/imgenc"
	"github.com/snapledger/snapledger/internal/ocr"
	"github.com/snapledger/snapledger/internal/parser"
	"github.com/snapledger/snapledger/internal/pipeline"
)

// scanocr runs a single image through the extraction pipeline and prints the
// structured record as JSON. No database involved.
func main() {
	var (
		currency = flag.String("currency", "USD", "ISO 4217 currency code for item lines")
		timeout  = flag.Duration("timeout", 2*time.Minute, "overall deadline")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: scanocr [flags] <image-path-or-url>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	ref := flag.Arg(0)

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	chain := ocr.BuildDevChain(cfg.OCR, logger)
	encoder := imgenc.NewEncoder(imgenc.Config{Preprocess: true}, nil, logger)
	proc := pipeline.NewProcessor(logger, encoder, chain, parser.NewParser(logger), cfg.OCR.Language)

	data, err := proc.ProcessReceipt(ctx, ref, *currency)
	if err != nil {
		logger.Error("extraction failed", "ref", ref, "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		logger.Error("encode output", "error", err)
		os.Exit(1)
	}
}
