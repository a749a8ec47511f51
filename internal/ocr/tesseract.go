package ocr

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Tesseract is the last real provider: a locally installed tesseract binary.
// It needs no network or quota but is absent from most deployments, so
// Available() gates it on PATH lookup.
type Tesseract struct {
	bin    string
	lang   string
	runner Runner
	logger *slog.Logger
}

func NewTesseract(bin, lang string, logger *slog.Logger) *Tesseract {
	if logger == nil {
		logger = slog.Default()
	}
	if bin == "" {
		bin = "tesseract"
	}
	if lang == "" {
		lang = "eng"
	}
	return &Tesseract{bin: bin, lang: lang, runner: execRunner{}, logger: logger}
}

func (t *Tesseract) Name() string { return "tesseract" }

func (t *Tesseract) Available() bool {
	_, err := exec.LookPath(t.bin)
	return err == nil
}

func (t *Tesseract) ExtractText(ctx context.Context, payload Payload) (string, error) {
	path := payload.SourcePath
	if path == "" {
		tmp, cleanup, err := t.materialize(payload.DataURI)
		if err != nil {
			return "", &ProviderError{Provider: t.Name(), Kind: KindNoTextDetected, Message: "materialize payload", Err: err}
		}
		defer cleanup()
		path = tmp
	}

	args := []string{path, "stdout", "-l", t.lang}
	out, errb, err := t.runner.Run(ctx, t.bin, args...)
	if err != nil {
		return "", &ProviderError{
			Provider: t.Name(), Kind: KindNoTextDetected,
			Message: fmt.Sprintf("tesseract: %s", truncate(string(errb), 512)), Err: err,
		}
	}
	return string(out), nil
}

// materialize writes the data-URI bytes to a temp file so the binary can read
// them. Callers without a SourcePath pay this cost.
func (t *Tesseract) materialize(dataURI string) (string, func(), error) {
	_, b64, ok := strings.Cut(dataURI, ",")
	if !ok {
		return "", nil, fmt.Errorf("not a data URI")
	}
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", nil, fmt.Errorf("decode base64: %w", err)
	}
	dir, err := os.MkdirTemp("", "sl-ocr-*")
	if err != nil {
		return "", nil, err
	}
	path := filepath.Join(dir, "receipt.png")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		_ = os.RemoveAll(dir)
		return "", nil, err
	}
	return path, func() { _ = os.RemoveAll(dir) }, nil
}
