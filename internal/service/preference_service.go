// internal/service/preference_service.go
package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	taskv1 "github.com/daybook-app/daybook/api/proto/task/v1/generated"
	ent "github.com/daybook-app/daybook/ent/generated"
	"github.com/daybook-app/daybook/internal/repository"
	"github.com/daybook-app/daybook/internal/timezone"
)

type PreferenceService struct {
	taskv1.UnimplementedPreferenceServiceServer
	prefs    *repository.PreferenceRepository
	resolver *timezone.Resolver
	logger   *zap.Logger
}

func NewPreferenceService(prefs *repository.PreferenceRepository, resolver *timezone.Resolver, logger *zap.Logger) *PreferenceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PreferenceService{
		prefs:    prefs,
		resolver: resolver,
		logger:   logger,
	}
}

// GetPreferences returns the caller's stored settings.
func (s *PreferenceService) GetPreferences(ctx context.Context, _ *taskv1.GetPreferencesRequest) (*taskv1.PreferencesResponse, error) {
	_, userID, err := requestScope(ctx)
	if err != nil {
		return nil, err
	}

	prefs, err := s.prefs.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "user not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to load preferences: %v", err)
	}

	return &taskv1.PreferencesResponse{
		Timezone:               prefs.Timezone,
		CompletedRetentionDays: int32(prefs.RetentionDays),
	}, nil
}

// UpdatePreferences persists new settings. A timezone change
// invalidates the resolver cache so the very next filter request
// classifies against the new zone.
func (s *PreferenceService) UpdatePreferences(ctx context.Context, req *taskv1.UpdatePreferencesRequest) (*taskv1.PreferencesResponse, error) {
	_, userID, err := requestScope(ctx)
	if err != nil {
		return nil, err
	}

	if req.Timezone != nil && *req.Timezone != "" {
		if _, err := time.LoadLocation(*req.Timezone); err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "unknown timezone %q", *req.Timezone)
		}
	}

	var retentionDays *int
	if req.CompletedRetentionDays != nil {
		if *req.CompletedRetentionDays < 1 {
			return nil, status.Error(codes.InvalidArgument, "completed retention must be at least 1 day")
		}
		days := int(*req.CompletedRetentionDays)
		retentionDays = &days
	}

	prefs, err := s.prefs.Update(ctx, userID, req.Timezone, retentionDays)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "user not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to update preferences: %v", err)
	}

	if req.Timezone != nil {
		s.resolver.Invalidate(ctx, userID.String())
	}

	return &taskv1.PreferencesResponse{
		Timezone:               prefs.Timezone,
		CompletedRetentionDays: int32(prefs.RetentionDays),
	}, nil
}
