package imgenc

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestEncoder(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Image Encoder Suite")
}

func pngBytes(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	Expect(png.Encode(&buf, img)).To(Succeed())
	return buf.Bytes()
}

var _ = Describe("Encode", func() {
	var (
		logger *slog.Logger
		dir    string
	)

	BeforeEach(func() {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		dir = GinkgoT().TempDir()
	})

	When("reading a local PNG file", func() {
		It("returns a png data URI", func() {
			path := filepath.Join(dir, "receipt.png")
			Expect(os.WriteFile(path, pngBytes(4, 4), 0o644)).To(Succeed())

			enc := NewEncoder(Config{}, nil, logger)
			uri, err := enc.Encode(context.Background(), path)

			Expect(err).NotTo(HaveOccurred())
			Expect(uri).To(HavePrefix("data:image/png;base64,"))
		})
	})

	When("preprocessing is enabled", func() {
		It("re-encodes photos as png regardless of source format", func() {
			path := filepath.Join(dir, "receipt.jpg")
			// A jpg-named file holding png bytes still decodes; the output
			// mime follows the re-encoded bytes, not the extension.
			Expect(os.WriteFile(path, pngBytes(4, 4), 0o644)).To(Succeed())

			enc := NewEncoder(Config{Preprocess: true, MinHeight: 2}, nil, logger)
			uri, err := enc.Encode(context.Background(), path)

			Expect(err).NotTo(HaveOccurred())
			Expect(uri).To(HavePrefix("data:image/png;base64,"))
		})

		It("passes non-image bytes through untouched", func() {
			path := filepath.Join(dir, "receipt.pdf")
			Expect(os.WriteFile(path, []byte("%PDF-1.4 not really"), 0o644)).To(Succeed())

			enc := NewEncoder(Config{Preprocess: true}, nil, logger)
			uri, err := enc.Encode(context.Background(), path)

			Expect(err).NotTo(HaveOccurred())
			Expect(uri).To(HavePrefix("data:application/pdf;base64,"))
		})
	})

	When("the reference is an HTTP URL", func() {
		It("fetches the bytes from the server", func() {
			raw := pngBytes(4, 4)
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write(raw)
			}))
			DeferCleanup(server.Close)

			enc := NewEncoder(Config{}, server.Client(), logger)
			uri, err := enc.Encode(context.Background(), server.URL+"/receipt.png")

			Expect(err).NotTo(HaveOccurred())
			Expect(strings.HasPrefix(uri, "data:image/png;base64,")).To(BeTrue())
		})
	})

	When("the reference does not exist", func() {
		It("returns an EncodingError carrying the ref", func() {
			enc := NewEncoder(Config{}, nil, logger)
			_, err := enc.Encode(context.Background(), filepath.Join(dir, "missing.png"))

			var encErr *EncodingError
			Expect(err).To(HaveOccurred())
			Expect(errors.As(err, &encErr)).To(BeTrue())
			Expect(encErr.Ref).To(ContainSubstring("missing.png"))
		})
	})
})
