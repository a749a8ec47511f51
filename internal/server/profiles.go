package server

import (
	"context"
	"log/slog"

	receiptspb "github.com/snapledger/snapledger/gen/proto/receipts/v1"
	"github.com/snapledger/snapledger/internal/common"
	"github.com/snapledger/snapledger/internal/repository"
	"github.com/snapledger/snapledger/internal/utils"
)

type ProfileServer struct {
	receiptspb.UnimplementedProfilesServiceServer
	repo   repository.ProfileRepository
	logger *slog.Logger
}

func NewProfileServer(repo repository.ProfileRepository, logger *slog.Logger) *ProfileServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProfileServer{
		repo:   repo,
		logger: logger,
	}
}

// CreateProfile creates a new profile.
func (s *ProfileServer) CreateProfile(ctx context.Context, req *receiptspb.CreateProfileRequest) (*receiptspb.CreateProfileResponse, error) {
	if verr := common.Required("name", req.GetName()); verr != nil {
		return nil, common.InvalidArgumentError(verr.Error())
	}
	if verr := common.CurrencyCode("default_currency", req.GetDefaultCurrency()); verr != nil {
		return nil, common.InvalidArgumentError(verr.Error())
	}

	p, err := s.repo.CreateProfile(ctx, &repository.Profile{
		Name:            req.GetName(),
		DefaultCurrency: req.GetDefaultCurrency(),
	})
	if err != nil {
		s.logger.Error("create profile failed", "name", req.GetName(), "error", err)
		return nil, common.InternalError("create profile failed")
	}

	return &receiptspb.CreateProfileResponse{
		Profile: utils.ToPBProfile(p),
	}, nil
}

// ListProfiles lists all the profiles.
func (s *ProfileServer) ListProfiles(ctx context.Context, _ *receiptspb.ListProfilesRequest) (*receiptspb.ListProfilesResponse, error) {
	plist, err := s.repo.ListProfiles(ctx)
	if err != nil {
		s.logger.Error("list profiles failed", "error", err)
		return nil, common.InternalError("list profiles failed")
	}

	out := make([]*receiptspb.Profile, 0, len(plist))
	for _, p := range plist {
		out = append(out, utils.ToPBProfile(p))
	}
	return &receiptspb.ListProfilesResponse{Profiles: out}, nil
}
