package ocr

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/snapledger/snapledger/internal/common"
)

func TestOCR(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "OCR Suite")
}

// fakeProvider is a scripted chain member.
type fakeProvider struct {
	name      string
	available bool
	text      string
	err       error
	calls     int
}

func (f *fakeProvider) Name() string    { return f.name }
func (f *fakeProvider) Available() bool { return f.available }

func (f *fakeProvider) ExtractText(ctx context.Context, payload Payload) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

var _ = Describe("Chain", func() {
	var (
		logger  *slog.Logger
		payload Payload
	)

	BeforeEach(func() {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		payload = Payload{DataURI: "data:image/png;base64,aGVsbG8=", Language: "eng"}
	})

	When("the first provider hits its quota and the second succeeds", func() {
		It("returns the second provider's text with attribution and no error", func() {
			first := &fakeProvider{
				name: "primary", available: true,
				err: &ProviderError{Provider: "primary", Kind: KindQuotaExceeded, Message: "monthly limit"},
			}
			second := &fakeProvider{name: "backup", available: true, text: "GROCERY MART\nTOTAL 12.50\n"}

			chain := NewChain(logger, first, second)
			res, err := chain.Extract(context.Background(), payload)

			Expect(err).NotTo(HaveOccurred())
			Expect(res.Provider).To(Equal("backup"))
			Expect(res.Text).To(Equal("GROCERY MART\nTOTAL 12.50"))
			Expect(first.calls).To(Equal(1))
			Expect(second.calls).To(Equal(1))
		})
	})

	When("every provider fails", func() {
		It("returns a single aggregate error listing each failure", func() {
			first := &fakeProvider{
				name: "primary", available: true,
				err: &ProviderError{Provider: "primary", Kind: KindQuotaExceeded, Message: "monthly limit"},
			}
			second := &fakeProvider{
				name: "backup", available: true,
				err: &ProviderError{Provider: "backup", Kind: KindNetworkFailure, Message: "timeout"},
			}

			chain := NewChain(logger, first, second)
			_, err := chain.Extract(context.Background(), payload)

			ce, ok := AsChainError(err)
			Expect(ok).To(BeTrue())
			Expect(ce.Failures).To(HaveLen(2))
			Expect(ce.HasKind(KindQuotaExceeded)).To(BeTrue())
			Expect(ce.HasKind(KindNetworkFailure)).To(BeTrue())
			Expect(ce.Error()).To(ContainSubstring("primary"))
			Expect(ce.Error()).To(ContainSubstring("backup"))
		})
	})

	When("a provider is unavailable", func() {
		It("skips it without recording a failure", func() {
			skipped := &fakeProvider{name: "unconfigured", available: false}
			second := &fakeProvider{name: "backup", available: true, text: "CORNER STORE\nTOTAL 3.00\n"}

			chain := NewChain(logger, skipped, second)
			res, err := chain.Extract(context.Background(), payload)

			Expect(err).NotTo(HaveOccurred())
			Expect(res.Provider).To(Equal("backup"))
			Expect(skipped.calls).To(BeZero())
		})

		It("excludes it from the aggregate when everything else fails", func() {
			skipped := &fakeProvider{name: "unconfigured", available: false}
			failing := &fakeProvider{
				name: "backup", available: true,
				err: &ProviderError{Provider: "backup", Kind: KindNetworkFailure, Message: "timeout"},
			}

			chain := NewChain(logger, skipped, failing)
			_, err := chain.Extract(context.Background(), payload)

			ce, ok := AsChainError(err)
			Expect(ok).To(BeTrue())
			Expect(ce.Failures).To(HaveLen(1))
			Expect(ce.Failures[0].Provider).To(Equal("backup"))
		})
	})

	When("a provider returns text below the usable threshold", func() {
		It("records a no-text failure and tries the next provider", func() {
			short := &fakeProvider{name: "primary", available: true, text: "x"}
			second := &fakeProvider{name: "backup", available: true, text: "CORNER STORE\nTOTAL 8.00\n"}

			chain := NewChain(logger, short, second)
			res, err := chain.Extract(context.Background(), payload)

			Expect(err).NotTo(HaveOccurred())
			Expect(res.Provider).To(Equal("backup"))
		})

		It("classifies the short text as no text detected when it exhausts the chain", func() {
			short := &fakeProvider{name: "primary", available: true, text: "x"}

			chain := NewChain(logger, short)
			_, err := chain.Extract(context.Background(), payload)

			ce, ok := AsChainError(err)
			Expect(ok).To(BeTrue())
			Expect(ce.Failures).To(HaveLen(1))
			Expect(ce.Failures[0].Kind).To(Equal(KindNoTextDetected))
		})
	})

	When("the context is already cancelled", func() {
		It("stops walking and records the cancellation", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			p := &fakeProvider{name: "primary", available: true, text: "CORNER STORE\nTOTAL 8.00\n"}

			chain := NewChain(logger, p)
			_, err := chain.Extract(ctx, payload)

			ce, ok := AsChainError(err)
			Expect(ok).To(BeTrue())
			Expect(ce.Failures).To(HaveLen(1))
			Expect(p.calls).To(BeZero())
		})
	})

	When("no providers are configured", func() {
		It("returns an aggregate with no failures", func() {
			chain := NewChain(logger)
			_, err := chain.Extract(context.Background(), payload)

			ce, ok := AsChainError(err)
			Expect(ok).To(BeTrue())
			Expect(ce.Failures).To(BeEmpty())
		})
	})
})

var _ = Describe("BuildChain", func() {
	var cfg common.OCRConfig

	BeforeEach(func() {
		cfg = common.OCRConfig{OCRSpaceAPIKey: "key", AllowMock: true}
	})

	names := func(c *Chain) []string {
		out := make([]string, len(c.providers))
		for i, p := range c.providers {
			out[i] = p.Name()
		}
		return out
	}

	It("never admits the mock provider, even when the gate is set", func() {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		chain := BuildChain(cfg, logger)
		Expect(names(chain)).To(Equal([]string{"ocrspace", "gemini", "tesseract"}))
	})

	It("appends the mock on the dev path only behind the gate", func() {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		Expect(names(BuildDevChain(cfg, logger))).To(Equal([]string{"ocrspace", "gemini", "tesseract", "mock"}))

		cfg.AllowMock = false
		Expect(names(BuildDevChain(cfg, logger))).NotTo(ContainElement("mock"))
	})
})

var _ = Describe("OCRSpace", func() {
	var (
		logger  *slog.Logger
		payload Payload
		handler http.HandlerFunc
		server  *httptest.Server
		prov    *OCRSpace
	)

	BeforeEach(func() {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		payload = Payload{DataURI: "data:image/jpeg;base64,aGVsbG8=", Language: "eng"}
		handler = nil
	})

	JustBeforeEach(func() {
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handler(w, r)
		}))
		DeferCleanup(server.Close)
		prov = NewOCRSpace(OCRSpaceConfig{APIKey: "test-key", URL: server.URL}, server.Client(), logger)
	})

	When("the API parses the image", func() {
		BeforeEach(func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"OCRExitCode":1,"ParsedResults":[{"ParsedText":"SHOPRITE\nTOTAL 20.76"}]}`))
			}
		})

		It("returns the concatenated parsed text", func() {
			text, err := prov.ExtractText(context.Background(), payload)
			Expect(err).NotTo(HaveOccurred())
			Expect(text).To(ContainSubstring("SHOPRITE"))
			Expect(text).To(ContainSubstring("TOTAL 20.76"))
		})
	})

	When("the request is built", func() {
		var form map[string]string

		BeforeEach(func() {
			form = map[string]string{}
			handler = func(w http.ResponseWriter, r *http.Request) {
				_, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
				Expect(err).NotTo(HaveOccurred())
				mr := multipart.NewReader(r.Body, params["boundary"])
				for {
					part, err := mr.NextPart()
					if err == io.EOF {
						break
					}
					Expect(err).NotTo(HaveOccurred())
					val, _ := io.ReadAll(part)
					form[part.FormName()] = string(val)
				}
				w.Write([]byte(`{"OCRExitCode":1,"ParsedResults":[{"ParsedText":"SHOPRITE\nTOTAL 20.76"}]}`))
			}
		})

		It("sends the expected multipart fields", func() {
			_, err := prov.ExtractText(context.Background(), payload)
			Expect(err).NotTo(HaveOccurred())
			Expect(form["base64Image"]).To(Equal(payload.DataURI))
			Expect(form["language"]).To(Equal("eng"))
			Expect(form["apikey"]).To(Equal("test-key"))
			Expect(form["OCREngine"]).To(Equal("2"))
			Expect(form["isOverlayRequired"]).To(Equal("false"))
			Expect(form["detectOrientation"]).To(Equal("true"))
			Expect(form["scale"]).To(Equal("true"))
		})
	})

	When("the API reports quota exhaustion", func() {
		BeforeEach(func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"OCRExitCode":99,"ErrorMessage":"You exceeded your free plan"}`))
			}
		})

		It("classifies the failure as quota exceeded", func() {
			_, err := prov.ExtractText(context.Background(), payload)
			pe, ok := err.(*ProviderError)
			Expect(ok).To(BeTrue())
			Expect(pe.Kind).To(Equal(KindQuotaExceeded))
			Expect(pe.Message).To(ContainSubstring("free plan"))
		})
	})

	When("the API returns HTTP 429", func() {
		BeforeEach(func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			}
		})

		It("classifies the failure as quota exceeded", func() {
			_, err := prov.ExtractText(context.Background(), payload)
			pe, ok := err.(*ProviderError)
			Expect(ok).To(BeTrue())
			Expect(pe.Kind).To(Equal(KindQuotaExceeded))
		})
	})

	When("the API finds no text", func() {
		BeforeEach(func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"OCRExitCode":3,"ErrorMessage":["Unable to recognize text","Image too blurry"]}`))
			}
		})

		It("classifies the failure as no text detected and flattens the message list", func() {
			_, err := prov.ExtractText(context.Background(), payload)
			pe, ok := err.(*ProviderError)
			Expect(ok).To(BeTrue())
			Expect(pe.Kind).To(Equal(KindNoTextDetected))
			Expect(pe.Message).To(Equal("Unable to recognize text; Image too blurry"))
		})
	})

	When("the API reports a processing failure", func() {
		BeforeEach(func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"OCRExitCode":2,"ErrorMessage":"Timed out waiting for results"}`))
			}
		})

		It("classifies the failure as a network failure", func() {
			_, err := prov.ExtractText(context.Background(), payload)
			pe, ok := err.(*ProviderError)
			Expect(ok).To(BeTrue())
			Expect(pe.Kind).To(Equal(KindNetworkFailure))
			Expect(pe.Message).To(ContainSubstring("processing failed"))
		})
	})

	When("the API returns an unexpected exit code", func() {
		BeforeEach(func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"OCRExitCode":7,"ErrorMessage":"internal"}`))
			}
		})

		It("classifies the failure as a network failure", func() {
			_, err := prov.ExtractText(context.Background(), payload)
			pe, ok := err.(*ProviderError)
			Expect(ok).To(BeTrue())
			Expect(pe.Kind).To(Equal(KindNetworkFailure))
		})
	})

	When("parsed results are empty despite a success code", func() {
		BeforeEach(func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"OCRExitCode":1,"ParsedResults":[{"ParsedText":"  "}]}`))
			}
		})

		It("classifies the failure as no text detected", func() {
			_, err := prov.ExtractText(context.Background(), payload)
			pe, ok := err.(*ProviderError)
			Expect(ok).To(BeTrue())
			Expect(pe.Kind).To(Equal(KindNoTextDetected))
		})
	})

	When("no API key is configured", func() {
		It("reports itself unavailable and fails fast with a config error", func() {
			unconfigured := NewOCRSpace(OCRSpaceConfig{}, nil, logger)
			Expect(unconfigured.Available()).To(BeFalse())

			_, err := unconfigured.ExtractText(context.Background(), payload)
			pe, ok := err.(*ProviderError)
			Expect(ok).To(BeTrue())
			Expect(pe.Kind).To(Equal(KindConfigMissing))
		})
	})
})

var _ = Describe("Normalize", func() {
	It("collapses CRLF, tabs, and repeated spaces", func() {
		out := Normalize("SHOP\r\nTOTAL\t\t5.00\nA    B")
		Expect(out).To(Equal("SHOP\nTOTAL 5.00\nA B"))
	})

	It("strips separator noise lines and squeezes blank runs", func() {
		out := Normalize("SHOP\n-----\n\n\n\nTOTAL 5.00")
		Expect(out).To(Equal("SHOP\n\nTOTAL 5.00"))
	})

	It("leaves empty input alone", func() {
		Expect(Normalize("")).To(Equal(""))
	})
})
