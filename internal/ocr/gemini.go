package ocr

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiTranscribePrompt = `Transcribe every line of text visible on this retail receipt.
Output the raw text only, one receipt line per output line, top to bottom.
Do not summarize, translate, or add commentary.`

// Gemini is the second provider: vision transcription through the Gemini API.
type Gemini struct {
	apiKey    string
	modelName string
	client    *genai.Client
	logger    *slog.Logger
}

func NewGemini(apiKey, modelName string, logger *slog.Logger) *Gemini {
	if logger == nil {
		logger = slog.Default()
	}
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}
	return &Gemini{apiKey: apiKey, modelName: modelName, logger: logger}
}

func (g *Gemini) Name() string { return "gemini" }

func (g *Gemini) Available() bool { return g.apiKey != "" }

func (g *Gemini) ExtractText(ctx context.Context, payload Payload) (string, error) {
	if g.apiKey == "" {
		return "", &ProviderError{Provider: g.Name(), Kind: KindConfigMissing, Message: "GEMINI_API_KEY not set"}
	}

	format, data, err := decodeDataURI(payload.DataURI)
	if err != nil {
		return "", &ProviderError{Provider: g.Name(), Kind: KindNoTextDetected, Message: "undecodable payload", Err: err}
	}

	if g.client == nil {
		client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
		if err != nil {
			return "", &ProviderError{Provider: g.Name(), Kind: KindNetworkFailure, Message: "create client", Err: err}
		}
		g.client = client
	}

	model := g.client.GenerativeModel(g.modelName)
	resp, err := model.GenerateContent(ctx,
		genai.ImageData(format, data),
		genai.Text(geminiTranscribePrompt),
	)
	if err != nil {
		kind := KindNetworkFailure
		if isQuotaErr(err) {
			kind = KindQuotaExceeded
		}
		return "", &ProviderError{Provider: g.Name(), Kind: kind, Message: "generate content", Err: err}
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", &ProviderError{Provider: g.Name(), Kind: KindNoTextDetected, Message: "empty response"}
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", &ProviderError{Provider: g.Name(), Kind: KindNoTextDetected, Message: "no text parts in response"}
	}
	g.logger.Debug("ocr.gemini.ok", "model", g.modelName, "bytes", len(text))
	return text, nil
}

// Close releases the underlying API client, if one was created.
func (g *Gemini) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

// decodeDataURI splits a data:image/...;base64,... payload into the format
// suffix genai expects ("png", "jpeg") and the raw bytes.
func decodeDataURI(uri string) (string, []byte, error) {
	head, b64, ok := strings.Cut(uri, ",")
	if !ok {
		return "", nil, fmt.Errorf("not a data URI")
	}
	format := "png"
	if mime, _, ok := strings.Cut(strings.TrimPrefix(head, "data:"), ";"); ok {
		if _, sub, ok := strings.Cut(mime, "/"); ok && sub != "" {
			format = sub
		}
	}
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", nil, fmt.Errorf("decode base64: %w", err)
	}
	return format, data, nil
}

func isQuotaErr(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "quota") || strings.Contains(msg, "resource exhausted") || strings.Contains(msg, "429")
}
