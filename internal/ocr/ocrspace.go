package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// OCR.space exit codes.
const (
	ocrSpaceExitOK          = 1
	ocrSpaceExitProcFailed  = 2
	ocrSpaceExitEngineError = 3
	ocrSpaceExitFatal       = 4
	ocrSpaceExitQuota       = 99
)

type OCRSpaceConfig struct {
	APIKey string
	URL    string // defaults to the hosted endpoint
	Engine int    // OCREngine form field; engine 2 handles receipts better
}

// OCRSpace is the primary provider: the hosted OCR.space REST API.
type OCRSpace struct {
	cfg    OCRSpaceConfig
	client *http.Client
	logger *slog.Logger
}

func NewOCRSpace(cfg OCRSpaceConfig, client *http.Client, logger *slog.Logger) *OCRSpace {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.URL == "" {
		cfg.URL = "https://api.ocr.space/parse/image"
	}
	if cfg.Engine <= 0 {
		cfg.Engine = 2
	}
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &OCRSpace{cfg: cfg, client: client, logger: logger}
}

func (o *OCRSpace) Name() string { return "ocrspace" }

func (o *OCRSpace) Available() bool { return o.cfg.APIKey != "" }

type ocrSpaceResponse struct {
	OCRExitCode   int `json:"OCRExitCode"`
	ErrorMessage  any `json:"ErrorMessage"` // string or []string depending on failure
	ParsedResults []struct {
		ParsedText string `json:"ParsedText"`
	} `json:"ParsedResults"`
}

func (o *OCRSpace) ExtractText(ctx context.Context, payload Payload) (string, error) {
	if o.cfg.APIKey == "" {
		return "", &ProviderError{Provider: o.Name(), Kind: KindConfigMissing, Message: "OCRSPACE_API_KEY not set"}
	}

	body, contentType, err := o.buildForm(payload)
	if err != nil {
		return "", &ProviderError{Provider: o.Name(), Kind: KindNetworkFailure, Message: "build request form", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.cfg.URL, body)
	if err != nil {
		return "", &ProviderError{Provider: o.Name(), Kind: KindNetworkFailure, Message: "build request", Err: err}
	}
	req.Header.Set("Content-Type", contentType)

	start := time.Now()
	resp, err := o.client.Do(req)
	if err != nil {
		return "", &ProviderError{Provider: o.Name(), Kind: KindNetworkFailure, Message: "request failed", Err: err}
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			o.logger.Warn("ocr.ocrspace.body_close_error", "error", cerr)
		}
	}()

	raw, _ := io.ReadAll(resp.Body)
	o.logger.Debug("ocr.ocrspace.response",
		"status", resp.StatusCode, "bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests {
		return "", &ProviderError{Provider: o.Name(), Kind: KindQuotaExceeded, Message: fmt.Sprintf("http status %d", resp.StatusCode)}
	}
	if resp.StatusCode/100 != 2 {
		return "", &ProviderError{Provider: o.Name(), Kind: KindNetworkFailure, Message: fmt.Sprintf("http status %d", resp.StatusCode)}
	}

	var parsed ocrSpaceResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", &ProviderError{Provider: o.Name(), Kind: KindNetworkFailure, Message: "decode response", Err: err}
	}

	switch parsed.OCRExitCode {
	case ocrSpaceExitOK:
	case ocrSpaceExitQuota:
		return "", &ProviderError{Provider: o.Name(), Kind: KindQuotaExceeded, Message: flattenErrorMessage(parsed.ErrorMessage)}
	case ocrSpaceExitEngineError, ocrSpaceExitFatal:
		return "", &ProviderError{Provider: o.Name(), Kind: KindNoTextDetected, Message: flattenErrorMessage(parsed.ErrorMessage)}
	case ocrSpaceExitProcFailed:
		return "", &ProviderError{Provider: o.Name(), Kind: KindNetworkFailure, Message: fmt.Sprintf("processing failed: %s", flattenErrorMessage(parsed.ErrorMessage))}
	default:
		return "", &ProviderError{Provider: o.Name(), Kind: KindNetworkFailure, Message: fmt.Sprintf("exit code %d: %s", parsed.OCRExitCode, flattenErrorMessage(parsed.ErrorMessage))}
	}

	var sb strings.Builder
	for _, r := range parsed.ParsedResults {
		sb.WriteString(r.ParsedText)
		sb.WriteString("\n")
	}
	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return "", &ProviderError{Provider: o.Name(), Kind: KindNoTextDetected, Message: "empty parsed results"}
	}
	return text, nil
}

func (o *OCRSpace) buildForm(payload Payload) (*bytes.Buffer, string, error) {
	lang := payload.Language
	if lang == "" {
		lang = "eng"
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fields := map[string]string{
		"base64Image":       payload.DataURI,
		"language":          lang,
		"isOverlayRequired": "false",
		"detectOrientation": "true",
		"scale":             "true",
		"OCREngine":         strconv.Itoa(o.cfg.Engine),
		"apikey":            o.cfg.APIKey,
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func flattenErrorMessage(v any) string {
	switch m := v.(type) {
	case string:
		return m
	case []any:
		parts := make([]string, 0, len(m))
		for _, p := range m {
			if s, ok := p.(string); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "; ")
	default:
		return ""
	}
}
