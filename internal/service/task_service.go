// internal/service/task_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	taskv1 "github.com/daybook-app/daybook/api/proto/task/v1/generated"
	ent "github.com/daybook-app/daybook/ent/generated"
	"github.com/daybook-app/daybook/internal/filter"
	"github.com/daybook-app/daybook/internal/middleware"
	"github.com/daybook-app/daybook/internal/models"
	"github.com/daybook-app/daybook/internal/repository"
	"github.com/daybook-app/daybook/internal/schedule"
	"github.com/daybook-app/daybook/internal/timezone"
)

const maxPageSize = 100

type TaskService struct {
	taskv1.UnimplementedTaskServiceServer
	repo       *repository.TaskRepository
	engine     *filter.Engine
	aggregator *filter.CountAggregator
	resolver   *timezone.Resolver
	clock      func() time.Time
	logger     *zap.Logger
}

// NewTaskService wires the task handlers. A nil clock means the wall
// clock.
func NewTaskService(repo *repository.TaskRepository, engine *filter.Engine, aggregator *filter.CountAggregator, resolver *timezone.Resolver, clock func() time.Time, logger *zap.Logger) *TaskService {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TaskService{
		repo:       repo,
		engine:     engine,
		aggregator: aggregator,
		resolver:   resolver,
		clock:      clock,
		logger:     logger,
	}
}

// CreateTask creates a new task. A due date arrives as a calendar date
// and is anchored to local midnight in the caller's timezone.
func (s *TaskService) CreateTask(ctx context.Context, req *taskv1.CreateTaskRequest) (*taskv1.CreateTaskResponse, error) {
	tenantID, userID, err := requestScope(ctx)
	if err != nil {
		return nil, err
	}

	if req.Title == "" {
		return nil, status.Error(codes.InvalidArgument, "title is required")
	}

	dueDate, err := s.parseDueDate(ctx, userID, req.DueDate)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, repository.TaskInput{
		TenantID:    tenantID,
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    convertPriorityToModel(req.Priority),
		DueDate:     dueDate,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to create task: %v", err)
	}

	s.aggregator.Invalidate(ctx, tenantID, userID)

	return &taskv1.CreateTaskResponse{
		Task: convertTaskToProto(created),
	}, nil
}

// GetTask retrieves a task by ID
func (s *TaskService) GetTask(ctx context.Context, req *taskv1.GetTaskRequest) (*taskv1.GetTaskResponse, error) {
	tenantID, _, err := requestScope(ctx)
	if err != nil {
		return nil, err
	}

	id, err := parseTaskID(req.Id)
	if err != nil {
		return nil, err
	}

	found, err := s.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, taskError("get", err)
	}

	return &taskv1.GetTaskResponse{
		Task: convertTaskToProto(found),
	}, nil
}

// UpdateTask updates title, description, priority, or due date.
func (s *TaskService) UpdateTask(ctx context.Context, req *taskv1.UpdateTaskRequest) (*taskv1.UpdateTaskResponse, error) {
	tenantID, userID, err := requestScope(ctx)
	if err != nil {
		return nil, err
	}

	id, err := parseTaskID(req.Id)
	if err != nil {
		return nil, err
	}

	input := repository.TaskUpdate{ClearDueDate: req.ClearDueDate}
	if req.Title != "" {
		input.Title = &req.Title
	}
	if req.Description != "" {
		input.Description = &req.Description
	}
	if req.Priority != taskv1.Priority_PRIORITY_UNSPECIFIED {
		priority := convertPriorityToModel(req.Priority)
		input.Priority = &priority
	}
	if !req.ClearDueDate && req.DueDate != "" {
		dueDate, err := s.parseDueDate(ctx, userID, req.DueDate)
		if err != nil {
			return nil, err
		}
		input.DueDate = dueDate
	}

	updated, err := s.repo.Update(ctx, tenantID, id, input)
	if err != nil {
		return nil, taskError("update", err)
	}

	s.aggregator.Invalidate(ctx, tenantID, userID)

	return &taskv1.UpdateTaskResponse{
		Task: convertTaskToProto(updated),
	}, nil
}

// CompleteTask marks a task done, stamping the completion instant.
func (s *TaskService) CompleteTask(ctx context.Context, req *taskv1.CompleteTaskRequest) (*taskv1.CompleteTaskResponse, error) {
	tenantID, userID, err := requestScope(ctx)
	if err != nil {
		return nil, err
	}

	id, err := parseTaskID(req.Id)
	if err != nil {
		return nil, err
	}

	completed, err := s.repo.Complete(ctx, tenantID, id, s.clock().UTC())
	if err != nil {
		return nil, taskError("complete", err)
	}

	s.aggregator.Invalidate(ctx, tenantID, userID)

	return &taskv1.CompleteTaskResponse{
		Task: convertTaskToProto(completed),
	}, nil
}

// ReopenTask returns a completed or archived task to the active state.
func (s *TaskService) ReopenTask(ctx context.Context, req *taskv1.ReopenTaskRequest) (*taskv1.ReopenTaskResponse, error) {
	tenantID, userID, err := requestScope(ctx)
	if err != nil {
		return nil, err
	}

	id, err := parseTaskID(req.Id)
	if err != nil {
		return nil, err
	}

	reopened, err := s.repo.Reopen(ctx, tenantID, id)
	if err != nil {
		return nil, taskError("reopen", err)
	}

	s.aggregator.Invalidate(ctx, tenantID, userID)

	return &taskv1.ReopenTaskResponse{
		Task: convertTaskToProto(reopened),
	}, nil
}

// ArchiveTask hides a task from every bucket.
func (s *TaskService) ArchiveTask(ctx context.Context, req *taskv1.ArchiveTaskRequest) (*taskv1.ArchiveTaskResponse, error) {
	tenantID, userID, err := requestScope(ctx)
	if err != nil {
		return nil, err
	}

	id, err := parseTaskID(req.Id)
	if err != nil {
		return nil, err
	}

	archived, err := s.repo.Archive(ctx, tenantID, id)
	if err != nil {
		return nil, taskError("archive", err)
	}

	s.aggregator.Invalidate(ctx, tenantID, userID)

	return &taskv1.ArchiveTaskResponse{
		Task: convertTaskToProto(archived),
	}, nil
}

// DeleteTask deletes a task
func (s *TaskService) DeleteTask(ctx context.Context, req *taskv1.DeleteTaskRequest) (*emptypb.Empty, error) {
	tenantID, userID, err := requestScope(ctx)
	if err != nil {
		return nil, err
	}

	id, err := parseTaskID(req.Id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, tenantID, id); err != nil {
		return nil, taskError("delete", err)
	}

	s.aggregator.Invalidate(ctx, tenantID, userID)

	return &emptypb.Empty{}, nil
}

// ListTasks returns one bucket of the caller's tasks, ordered, with the
// total count for the same filter.
func (s *TaskService) ListTasks(ctx context.Context, req *taskv1.ListTasksRequest) (*taskv1.ListTasksResponse, error) {
	tenantID, userID, err := requestScope(ctx)
	if err != nil {
		return nil, err
	}

	pageSize := req.PageSize
	if pageSize < 0 {
		pageSize = 0
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	query := models.FilterQuery{
		Bucket:               convertBucketToModel(req.Bucket),
		IncludeCompletedDays: int(req.IncludeCompletedDays),
		Limit:                int(pageSize),
		Offset:               int(req.Offset),
	}

	result, err := s.engine.GetFilteredTasks(ctx, tenantID, userID, query)
	if err != nil {
		switch {
		case errors.Is(err, filter.ErrUnknownBucket):
			return nil, status.Error(codes.InvalidArgument, "unknown filter bucket")
		default:
			s.logger.Error("list tasks failed",
				zap.String("tenant_id", tenantID),
				zap.Error(err))
			return nil, status.Error(codes.Internal, "failed to list tasks")
		}
	}

	protoTasks := make([]*taskv1.Task, len(result.Tasks))
	for i, t := range result.Tasks {
		protoTasks[i] = convertTaskToProto(t)
	}

	return &taskv1.ListTasksResponse{
		Tasks:      protoTasks,
		TotalCount: int32(result.Count),
	}, nil
}

// GetFilterCounts returns the badge totals for every bucket.
func (s *TaskService) GetFilterCounts(ctx context.Context, _ *taskv1.GetFilterCountsRequest) (*taskv1.GetFilterCountsResponse, error) {
	tenantID, userID, err := requestScope(ctx)
	if err != nil {
		return nil, err
	}

	counts := s.aggregator.GetFilterCounts(ctx, tenantID, userID)

	return &taskv1.GetFilterCountsResponse{
		All:       int32(counts.All),
		Today:     int32(counts.Today),
		Overdue:   int32(counts.Overdue),
		Upcoming:  int32(counts.Upcoming),
		NoDueDate: int32(counts.NoDueDate),
		Focus:     int32(counts.Focus),
	}, nil
}

// parseDueDate anchors a calendar-date string to local midnight in the
// caller's resolved timezone. Empty input means no due date.
func (s *TaskService) parseDueDate(ctx context.Context, userID uuid.UUID, dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	zone := s.resolver.Resolve(ctx, userID.String())
	instant, err := schedule.ToUTC(dateStr, zone)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidDateFormat) {
			return nil, status.Errorf(codes.InvalidArgument, "invalid due date %q, expected YYYY-MM-DD", dateStr)
		}
		return nil, status.Errorf(codes.Internal, "failed to convert due date: %v", err)
	}
	return &instant, nil
}

// Helper functions

func requestScope(ctx context.Context) (string, uuid.UUID, error) {
	tenantID, ok := middleware.TenantIDFromContext(ctx)
	if !ok {
		return "", uuid.Nil, status.Error(codes.Unauthenticated, "missing tenant scope")
	}
	rawUserID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return "", uuid.Nil, status.Error(codes.Unauthenticated, "missing user scope")
	}
	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return "", uuid.Nil, status.Error(codes.Unauthenticated, "invalid user ID in token")
	}
	return tenantID, userID, nil
}

func parseTaskID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "invalid task ID format")
	}
	return id, nil
}

func taskError(op string, err error) error {
	if ent.IsNotFound(err) {
		return status.Error(codes.NotFound, "task not found")
	}
	return status.Errorf(codes.Internal, "failed to %s task: %v", op, err)
}

func convertTaskToProto(t models.Task) *taskv1.Task {
	proto := &taskv1.Task{
		Id:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		Status:      convertStatusToProto(t.Status),
		Priority:    convertPriorityToProto(t.Priority),
		CreatedAt:   timestamppb.New(t.CreatedAt),
		UpdatedAt:   timestamppb.New(t.UpdatedAt),
	}

	if t.DueDate != nil {
		proto.DueDate = timestamppb.New(*t.DueDate)
	}
	if t.CompletedAt != nil {
		proto.CompletedAt = timestamppb.New(*t.CompletedAt)
	}

	return proto
}

func convertStatusToProto(s models.Status) taskv1.TaskStatus {
	switch s {
	case models.StatusActive:
		return taskv1.TaskStatus_TASK_STATUS_ACTIVE
	case models.StatusCompleted:
		return taskv1.TaskStatus_TASK_STATUS_COMPLETED
	case models.StatusArchived:
		return taskv1.TaskStatus_TASK_STATUS_ARCHIVED
	default:
		return taskv1.TaskStatus_TASK_STATUS_UNSPECIFIED
	}
}

func convertPriorityToProto(p models.Priority) taskv1.Priority {
	switch p {
	case models.PriorityLow:
		return taskv1.Priority_PRIORITY_LOW
	case models.PriorityMedium:
		return taskv1.Priority_PRIORITY_MEDIUM
	case models.PriorityHigh:
		return taskv1.Priority_PRIORITY_HIGH
	case models.PriorityUrgent:
		return taskv1.Priority_PRIORITY_URGENT
	default:
		return taskv1.Priority_PRIORITY_UNSPECIFIED
	}
}

func convertPriorityToModel(p taskv1.Priority) models.Priority {
	switch p {
	case taskv1.Priority_PRIORITY_LOW:
		return models.PriorityLow
	case taskv1.Priority_PRIORITY_MEDIUM:
		return models.PriorityMedium
	case taskv1.Priority_PRIORITY_HIGH:
		return models.PriorityHigh
	case taskv1.Priority_PRIORITY_URGENT:
		return models.PriorityUrgent
	default:
		return models.PriorityMedium
	}
}

func convertBucketToModel(b taskv1.FilterBucket) models.Bucket {
	switch b {
	case taskv1.FilterBucket_FILTER_BUCKET_TODAY:
		return models.BucketToday
	case taskv1.FilterBucket_FILTER_BUCKET_OVERDUE:
		return models.BucketOverdue
	case taskv1.FilterBucket_FILTER_BUCKET_UPCOMING:
		return models.BucketUpcoming
	case taskv1.FilterBucket_FILTER_BUCKET_NO_DUE_DATE:
		return models.BucketNoDueDate
	case taskv1.FilterBucket_FILTER_BUCKET_FOCUS:
		return models.BucketFocus
	default:
		return models.BucketAll
	}
}
