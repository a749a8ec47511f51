package ingest

import (
	"context"
	"encoding/hex"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/snapledger/snapledger/gen/ent"
	"github.com/snapledger/snapledger/internal/repository"
)

func TestIngest(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Ingest Suite")
}

type fakeProfileRepo struct {
	known map[uuid.UUID]bool
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Profile, error) {
	return &ent.Profile{ID: id}, nil
}

func (f *fakeProfileRepo) GetOrCreateByName(ctx context.Context, name, defaultCurrency string) (*ent.Profile, error) {
	return &ent.Profile{ID: uuid.New(), Name: name, DefaultCurrency: defaultCurrency}, nil
}

func (f *fakeProfileRepo) CreateProfile(ctx context.Context, p *repository.Profile) (*ent.Profile, error) {
	return &ent.Profile{ID: uuid.New(), Name: p.Name, DefaultCurrency: p.DefaultCurrency}, nil
}

func (f *fakeProfileRepo) ListProfiles(ctx context.Context) ([]*ent.Profile, error) {
	return nil, nil
}

func (f *fakeProfileRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return f.known[id], nil
}

// fakeFileRepo dedupes on content hash like the real repository does.
type fakeFileRepo struct {
	byHash map[string]*ent.ReceiptFile
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{byHash: map[string]*ent.ReceiptFile{}}
}

func (f *fakeFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.ReceiptFile, error) {
	for _, row := range f.byHash {
		if row.ID == id {
			return row, nil
		}
	}
	return nil, os.ErrNotExist
}

func (f *fakeFileRepo) GetByProfileAndHash(ctx context.Context, profileID uuid.UUID, hash []byte) (*ent.ReceiptFile, error) {
	if row, ok := f.byHash[hex.EncodeToString(hash)]; ok {
		return row, nil
	}
	return nil, os.ErrNotExist
}

func (f *fakeFileRepo) Create(ctx context.Context, profileID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.ReceiptFile, error) {
	row := &ent.ReceiptFile{
		ID:         uuid.New(),
		ProfileID:  profileID,
		SourcePath: sourcePath,
		Filename:   filename,
		FileExt:    ext,
		FileSize:   size,
		UploadedAt: uploadedAt,
	}
	f.byHash[hex.EncodeToString(hash)] = row
	return row, nil
}

func (f *fakeFileRepo) UpsertByHash(ctx context.Context, profileID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.ReceiptFile, bool, error) {
	if row, ok := f.byHash[hex.EncodeToString(hash)]; ok {
		return row, true, nil
	}
	row, err := f.Create(ctx, profileID, sourcePath, filename, ext, size, hash, uploadedAt)
	return row, false, err
}

var _ = Describe("FSIngestor", func() {
	var (
		profileID uuid.UUID
		profiles  *fakeProfileRepo
		files     *fakeFileRepo
		ing       *FSIngestor
		dir       string
	)

	BeforeEach(func() {
		profileID = uuid.New()
		profiles = &fakeProfileRepo{known: map[uuid.UUID]bool{profileID: true}}
		files = newFakeFileRepo()
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		ing = NewFSIngestor(profiles, files, logger)
		dir = GinkgoT().TempDir()
	})

	writeFile := func(name, content string) string {
		path := filepath.Join(dir, name)
		Expect(os.MkdirAll(filepath.Dir(path), 0o755)).To(Succeed())
		Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())
		return path
	}

	Describe("IngestPath", func() {
		It("registers a new file with its content hash", func() {
			path := writeFile("receipt.jpg", "image bytes")

			res, err := ing.IngestPath(context.Background(), profileID, path)

			Expect(err).NotTo(HaveOccurred())
			Expect(res.FileID).NotTo(BeEmpty())
			Expect(res.Deduplicated).To(BeFalse())
			Expect(res.FileExt).To(Equal("jpg"))
			Expect(res.HashHex).To(HaveLen(64))
		})

		It("dedupes a second file with identical bytes", func() {
			first := writeFile("receipt.jpg", "image bytes")
			second := writeFile("copy.jpg", "image bytes")

			r1, err := ing.IngestPath(context.Background(), profileID, first)
			Expect(err).NotTo(HaveOccurred())
			r2, err := ing.IngestPath(context.Background(), profileID, second)
			Expect(err).NotTo(HaveOccurred())

			Expect(r2.Deduplicated).To(BeTrue())
			Expect(r2.FileID).To(Equal(r1.FileID))
		})

		It("rejects unsupported extensions", func() {
			path := writeFile("notes.txt", "not a receipt")

			_, err := ing.IngestPath(context.Background(), profileID, path)

			Expect(err).To(MatchError(ContainSubstring("unsupported")))
		})

		It("rejects unknown profiles", func() {
			path := writeFile("receipt.jpg", "image bytes")

			_, err := ing.IngestPath(context.Background(), uuid.New(), path)

			Expect(err).To(MatchError(ContainSubstring("not found")))
		})
	})

	Describe("IngestDirectory", func() {
		It("walks the tree, skipping hidden entries and non-receipt files", func() {
			writeFile("a.jpg", "one")
			writeFile("nested/b.png", "two")
			writeFile("nested/b-copy.png", "two")
			writeFile("notes.txt", "skip me")
			writeFile(".hidden/c.jpg", "three")

			results, stats, err := ing.IngestDirectory(context.Background(), profileID, dir, true)

			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(3))
			Expect(stats.Matched).To(Equal(uint32(3)))
			Expect(stats.Succeeded).To(Equal(uint32(3)))
			Expect(stats.Deduplicated).To(Equal(uint32(1)))
			Expect(stats.Failed).To(BeZero())
		})

		It("requires a root path", func() {
			_, _, err := ing.IngestDirectory(context.Background(), profileID, "  ", true)
			Expect(err).To(HaveOccurred())
		})
	})
})

var _ = Describe("StartWatcher", func() {
	var (
		dir    string
		logger *slog.Logger
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	})

	It("requires at least one root", func() {
		_, _, err := StartWatcher(context.Background(), WatchConfig{}, logger)
		Expect(err).To(HaveOccurred())
	})

	It("emits paths for new receipt files after the debounce window", func() {
		ctx, cancel := context.WithCancel(context.Background())
		DeferCleanup(cancel)

		evCh, errCh, err := StartWatcher(ctx, WatchConfig{
			Roots:    []string{dir},
			Debounce: 20 * time.Millisecond,
		}, logger)
		Expect(err).NotTo(HaveOccurred())

		path := filepath.Join(dir, "receipt.jpg")
		Expect(os.WriteFile(path, []byte("image bytes"), 0o644)).To(Succeed())
		// A second write inside the window must coalesce, not crash the loop.
		Expect(os.WriteFile(path, []byte("image bytes again"), 0o644)).To(Succeed())

		Eventually(evCh, "3s").Should(Receive(Equal(path)))
		Consistently(errCh, "100ms").ShouldNot(Receive())
	})

	It("ignores files outside the allowed extension set", func() {
		ctx, cancel := context.WithCancel(context.Background())
		DeferCleanup(cancel)

		evCh, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{dir}}, logger)
		Expect(err).NotTo(HaveOccurred())

		Expect(os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o644)).To(Succeed())
		Consistently(evCh, "200ms").ShouldNot(Receive())
	})
})

var _ = Describe("path helpers", func() {
	It("matches the allowed extension set with or without the dot", func() {
		Expect(AllowedExt(".jpg")).To(BeTrue())
		Expect(AllowedExt("PNG")).To(BeTrue())
		Expect(AllowedExt("pdf")).To(BeTrue())
		Expect(AllowedExt(".txt")).To(BeFalse())
		Expect(AllowedExt("")).To(BeFalse())
	})

	It("treats dot-prefixed basenames as hidden", func() {
		Expect(IsHidden("/scans/.DS_Store")).To(BeTrue())
		Expect(IsHidden("/scans/.cache/receipt.jpg")).To(BeFalse())
		Expect(IsHidden("/scans/receipt.jpg")).To(BeFalse())
	})
})
