package ocr

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies why a single provider failed.
type ErrorKind string

const (
	KindConfigMissing  ErrorKind = "CONFIG_MISSING"
	KindQuotaExceeded  ErrorKind = "QUOTA_EXCEEDED"
	KindNetworkFailure ErrorKind = "NETWORK_FAILURE"
	KindNoTextDetected ErrorKind = "NO_TEXT_DETECTED"
)

// ProviderError is one provider's failure, tagged for caller remediation
// (quota -> wait or upgrade, network -> check connectivity, config -> set
// credentials).
type ProviderError struct {
	Provider string
	Kind     ErrorKind
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s: %v", e.Provider, e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", e.Provider, e.Kind, e.Message)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// ChainError aggregates every provider failure once the chain is exhausted.
type ChainError struct {
	Failures []*ProviderError
}

func (e *ChainError) Error() string {
	if len(e.Failures) == 0 {
		return "ocr: no providers configured"
	}
	parts := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		parts[i] = f.Error()
	}
	return "ocr: all providers failed: " + strings.Join(parts, "; ")
}

// HasKind reports whether any provider failed with the given kind.
func (e *ChainError) HasKind(kind ErrorKind) bool {
	for _, f := range e.Failures {
		if f.Kind == kind {
			return true
		}
	}
	return false
}

// AsChainError unwraps err into a *ChainError if it is one.
func AsChainError(err error) (*ChainError, bool) {
	var ce *ChainError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
