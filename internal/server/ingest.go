package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	receiptspb "github.com/snapledger/snapledger/gen/proto/receipts/v1"
	"github.com/snapledger/snapledger/internal/async"
	"github.com/snapledger/snapledger/internal/ingest"
	"github.com/snapledger/snapledger/internal/repository"
)

type IngestionService struct {
	receiptspb.UnimplementedIngestionServiceServer
	ingestor    ingest.Ingestor
	profileRepo repository.ProfileRepository
	queue       *async.ProcessorQueue
	logger      *slog.Logger
}

func NewIngestionService(ing ingest.Ingestor, queue *async.ProcessorQueue, p repository.ProfileRepository, logger *slog.Logger) *IngestionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &IngestionService{
		ingestor:    ing,
		queue:       queue,
		profileRepo: p,
		logger:      logger,
	}
}

func (s *IngestionService) IngestFile(ctx context.Context, req *receiptspb.IngestFileRequest) (*receiptspb.IngestResponse, error) {
	profileID, err := s.requireProfile(ctx, req.GetProfileId())
	if err != nil {
		return nil, err
	}

	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("ingest request missing path", "profile_id", profileID)
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}

	s.logger.Info("starting file ingest", "profile_id", profileID, "path", path)
	r, err := s.ingestor.IngestPath(ctx, profileID, path)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest: %v", err)
	}
	s.logger.Info("file ingest succeeded", "profile_id", profileID, "file_id", r.FileID, "deduplicated", r.Deduplicated)

	resp := toPBIngestResponse(r)
	s.enqueue(ctx, r)
	return resp, nil
}

func (s *IngestionService) IngestDirectory(ctx context.Context, req *receiptspb.IngestDirectoryRequest) (*receiptspb.IngestDirectoryResponse, error) {
	profileID, err := s.requireProfile(ctx, req.GetProfileId())
	if err != nil {
		return nil, err
	}
	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		s.logger.Error("ingest directory request missing root_path", "profile_id", profileID)
		return nil, status.Error(codes.InvalidArgument, "root_path is required")
	}

	s.logger.Info("starting directory ingest", "profile_id", profileID, "root", root, "skip_hidden", req.GetSkipHidden())
	results, stats, err := s.ingestor.IngestDirectory(ctx, profileID, root, req.GetSkipHidden())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest directory: %v", err)
	}
	s.logger.Info("directory ingest completed",
		"profile_id", profileID,
		"scanned", stats.Scanned, "matched", stats.Matched,
		"succeeded", stats.Succeeded, "deduplicated", stats.Deduplicated, "failed", stats.Failed,
	)

	out := &receiptspb.IngestDirectoryResponse{
		Scanned:      stats.Scanned,
		Matched:      stats.Matched,
		Succeeded:    stats.Succeeded,
		Deduplicated: stats.Deduplicated,
		Failed:       stats.Failed,
		Results:      make([]*receiptspb.IngestResponse, 0, len(results)),
	}
	for _, r := range results {
		out.Results = append(out.Results, toPBIngestResponse(r))
		s.enqueue(ctx, r)
	}
	return out, nil
}

func (s *IngestionService) requireProfile(ctx context.Context, raw string) (uuid.UUID, error) {
	pid := strings.TrimSpace(raw)
	if pid == "" {
		s.logger.Error("ingest request missing profile_id")
		return uuid.Nil, status.Error(codes.InvalidArgument, "profile_id is required")
	}
	profileID, err := uuid.Parse(pid)
	if err != nil {
		s.logger.Error("invalid profile_id format for ingest", "profile_id", pid, "error", err)
		return uuid.Nil, status.Error(codes.InvalidArgument, "profile_id must be a UUID")
	}
	if exists, _ := s.profileRepo.Exists(ctx, profileID); !exists {
		s.logger.Error("profile not found for ingest", "profile_id", profileID)
		return uuid.Nil, status.Error(codes.InvalidArgument, "profile not found")
	}
	return profileID, nil
}

func (s *IngestionService) enqueue(ctx context.Context, r ingest.IngestionResult) {
	if r.Err != "" || r.FileID == "" || r.Deduplicated {
		return
	}
	fileUUID, err := uuid.Parse(r.FileID)
	if err != nil {
		return
	}
	_ = s.queue.Enqueue(ctx, async.Job{FileID: fileUUID})
}

func toPBIngestResponse(r ingest.IngestionResult) *receiptspb.IngestResponse {
	return &receiptspb.IngestResponse{
		FileId:         r.FileID,
		Deduplicated:   r.Deduplicated,
		ContentHashHex: r.HashHex,
		FileExt:        r.FileExt,
		UploadedAt:     r.UploadedAt.UTC().Format(time.RFC3339),
		SourcePath:     r.SourcePath,
		Error:          r.Err,
	}
}
