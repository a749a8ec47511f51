// Package imgenc turns an image reference (local path or URL) into the
// base64 data-URI payload the OCR providers transmit.
package imgenc

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"

	"github.com/snapledger/snapledger/constants"
)

// EncodingError reports that an image reference could not be read by either
// strategy.
type EncodingError struct {
	Ref   string
	Cause error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encode image %q: %v", e.Ref, e.Cause)
}

func (e *EncodingError) Unwrap() error { return e.Cause }

type Config struct {
	// Preprocess runs a light cleanup pass (grayscale, upscale small photos)
	// before encoding. Skipped silently when the bytes do not decode as an
	// image, e.g. for PDFs.
	Preprocess bool

	// MinHeight is the pixel height below which a photo is upscaled.
	MinHeight int

	FetchTimeout time.Duration
}

type Encoder struct {
	cfg    Config
	client *http.Client
	logger *slog.Logger
}

func NewEncoder(cfg Config, client *http.Client, logger *slog.Logger) *Encoder {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MinHeight <= 0 {
		cfg.MinHeight = 800
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 15 * time.Second
	}
	if client == nil {
		client = &http.Client{Timeout: cfg.FetchTimeout}
	}
	return &Encoder{cfg: cfg, client: client, logger: logger}
}

// Encode reads the referenced image and returns it as a data URI. The fetch
// strategy is tried first; on any failure the direct filesystem read is the
// fallback. Retry policy belongs to the caller.
func (e *Encoder) Encode(ctx context.Context, ref string) (string, error) {
	start := time.Now()

	raw, fetchErr := e.fetch(ctx, ref)
	if fetchErr != nil {
		e.logger.Debug("imgenc.fetch_failed", "ref", ref, "error", fetchErr)
		var readErr error
		raw, readErr = os.ReadFile(ref)
		if readErr != nil {
			e.logger.Error("imgenc.encode_failed", "ref", ref, "fetch_error", fetchErr, "read_error", readErr)
			return "", &EncodingError{Ref: ref, Cause: readErr}
		}
	}

	mime := mimeForRef(ref)
	if e.cfg.Preprocess {
		if out, ok := e.preprocess(ref, raw); ok {
			raw, mime = out, "image/png"
		}
	}

	uri := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(raw)
	e.logger.Debug("imgenc.encode_ok", "ref", ref, "bytes", len(raw), "elapsed_ms", time.Since(start).Milliseconds())
	return uri, nil
}

func (e *Encoder) fetch(ctx context.Context, ref string) ([]byte, error) {
	if !strings.HasPrefix(ref, "http://") && !strings.HasPrefix(ref, "https://") {
		return nil, fmt.Errorf("not a fetchable URL")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, err
	}
	resp, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			e.logger.Warn("imgenc.body_close_error", "ref", ref, "error", cerr)
		}
	}()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("non-2xx status: %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// preprocess grayscales the photo and upscales small captures, which measurably
// helps the cheaper OCR engines. Input that does not decode is passed through.
func (e *Encoder) preprocess(ref string, raw []byte) ([]byte, bool) {
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		e.logger.Debug("imgenc.preprocess_skipped", "ref", ref, "error", err)
		return raw, false
	}

	gray := imaging.Grayscale(img)
	if gray.Bounds().Dy() < e.cfg.MinHeight {
		gray = imaging.Resize(gray, 0, e.cfg.MinHeight+400, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, gray, imaging.PNG); err != nil {
		e.logger.Warn("imgenc.preprocess_encode_failed", "ref", ref, "error", err)
		return raw, false
	}
	return buf.Bytes(), true
}

func mimeForRef(ref string) string {
	switch constants.NormalizeExt(filepath.Ext(ref)) {
	case "png":
		return "image/png"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "pdf":
		return "application/pdf"
	default:
		return "image/png"
	}
}
