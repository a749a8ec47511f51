package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/snapledger/snapledger/internal/entity"
	"github.com/snapledger/snapledger/internal/ocr"
)

func TestPipeline(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Pipeline Suite")
}

type stubEncoder struct {
	uri string
	err error
}

func (s *stubEncoder) Encode(ctx context.Context, ref string) (string, error) {
	return s.uri, s.err
}

type stubExtractor struct {
	text    string
	err     error
	payload ocr.Payload
}

func (s *stubExtractor) ExtractText(ctx context.Context, payload ocr.Payload) (string, error) {
	s.payload = payload
	return s.text, s.err
}

type stubParser struct {
	data     *entity.ReceiptData
	err      error
	text     string
	currency string
}

func (s *stubParser) Parse(text, currency string) (*entity.ReceiptData, error) {
	s.text = text
	s.currency = currency
	if s.err != nil {
		return nil, s.err
	}
	out := *s.data
	return &out, nil
}

var _ = Describe("ProcessReceipt", func() {
	var (
		logger    *slog.Logger
		encoder   *stubEncoder
		extractor *stubExtractor
		parser    *stubParser
		proc      *Processor
	)

	BeforeEach(func() {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		encoder = &stubEncoder{uri: "data:image/png;base64,aGVsbG8="}
		extractor = &stubExtractor{text: "SHOPRITE SUPERMARKET\nTOTAL 20.76"}
		parser = &stubParser{data: &entity.ReceiptData{Merchant: "SHOPRITE SUPERMARKET", Date: "2024-01-15"}}
	})

	JustBeforeEach(func() {
		proc = NewProcessor(logger, encoder, extractor, parser, "")
	})

	It("runs encode, extract, parse, and classify in order", func() {
		data, err := proc.ProcessReceipt(context.Background(), "/tmp/receipt.png", "USD")

		Expect(err).NotTo(HaveOccurred())
		Expect(parser.text).To(Equal(extractor.text))
		Expect(data.Merchant).To(Equal("SHOPRITE SUPERMARKET"))
		Expect(parser.currency).To(Equal("USD"))
		Expect(data.Category).To(Equal("Groceries"))
	})

	It("hands the encoded payload and language hint to the extractor", func() {
		_, err := proc.ProcessReceipt(context.Background(), "/tmp/receipt.png", "USD")

		Expect(err).NotTo(HaveOccurred())
		Expect(extractor.payload.DataURI).To(Equal(encoder.uri))
		Expect(extractor.payload.SourcePath).To(Equal("/tmp/receipt.png"))
		Expect(extractor.payload.Language).To(Equal("eng"))
	})

	It("omits the source path for remote references", func() {
		_, err := proc.ProcessReceipt(context.Background(), "https://example.com/receipt.png", "USD")

		Expect(err).NotTo(HaveOccurred())
		Expect(extractor.payload.SourcePath).To(Equal(""))
	})

	When("the merchant matches no classification rule", func() {
		BeforeEach(func() {
			parser.data = &entity.ReceiptData{Merchant: "ACME WIDGETS", Date: "2024-01-15"}
		})

		It("leaves the category empty", func() {
			data, err := proc.ProcessReceipt(context.Background(), "/tmp/receipt.png", "USD")

			Expect(err).NotTo(HaveOccurred())
			Expect(data.Category).To(Equal(""))
		})
	})

	When("encoding fails", func() {
		BeforeEach(func() {
			encoder.err = errors.New("no such file")
		})

		It("fails the whole operation", func() {
			_, err := proc.ProcessReceipt(context.Background(), "/tmp/receipt.png", "USD")

			Expect(err).To(MatchError(ContainSubstring("encode image")))
		})
	})

	When("every OCR provider fails", func() {
		BeforeEach(func() {
			extractor.err = &ocr.ChainError{Failures: []*ocr.ProviderError{
				{Provider: "ocrspace", Kind: ocr.KindQuotaExceeded, Message: "monthly limit"},
			}}
		})

		It("surfaces the aggregate to the caller", func() {
			_, err := proc.ProcessReceipt(context.Background(), "/tmp/receipt.png", "USD")

			Expect(err).To(HaveOccurred())
			ce, ok := ocr.AsChainError(err)
			Expect(ok).To(BeTrue())
			Expect(ce.HasKind(ocr.KindQuotaExceeded)).To(BeTrue())
		})
	})

	When("parsing fails", func() {
		BeforeEach(func() {
			parser.err = errors.New("empty text")
		})

		It("fails the whole operation", func() {
			_, err := proc.ProcessReceipt(context.Background(), "/tmp/receipt.png", "USD")

			Expect(err).To(MatchError(ContainSubstring("parse receipt")))
		})
	})
})
