// Package ocr runs an ordered chain of OCR backends over an encoded receipt
// image until one of them yields usable text.
package ocr

import (
	"context"
)

// MinUsableTextLen is the threshold below which a provider response is treated
// as NoTextDetected instead of being returned as truncated garbage.
const MinUsableTextLen = 10

// Payload is the encoded image handed to each provider in turn.
type Payload struct {
	// DataURI is the base64 data URI produced by imgenc.
	DataURI string
	// SourcePath is the original local path, when known. Local engines read
	// the file directly instead of round-tripping through base64.
	SourcePath string
	// Language is the OCR language hint, e.g. "eng".
	Language string
}

// Provider is one OCR backend in the chain.
type Provider interface {
	Name() string
	// Available reports whether the provider can run in the current
	// environment (credentials present, binary on PATH, ...). Unavailable
	// providers are skipped without counting as failures.
	Available() bool
	// ExtractText returns raw text for the payload, or a *ProviderError.
	ExtractText(ctx context.Context, payload Payload) (string, error)
}
