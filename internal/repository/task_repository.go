// internal/repository/task_repository.go
package repository

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	ent "github.com/daybook-app/daybook/ent/generated"
	"github.com/daybook-app/daybook/ent/generated/predicate"
	"github.com/daybook-app/daybook/ent/generated/task"
	"github.com/daybook-app/daybook/internal/filter"
	"github.com/daybook-app/daybook/internal/models"
	"github.com/daybook-app/daybook/internal/schedule"
)

// TaskRepository is the Ent-backed task store. It implements
// filter.Store for the engine and filter.BucketCounter as the one-query
// aggregate path, plus the CRUD used by the service layer.
type TaskRepository struct {
	client *ent.Client
	db     *sqlx.DB
}

// NewTaskRepository wires the repository over the Ent client. db may be
// nil; without it the bucket-counts fast path is unavailable and the
// aggregator falls back to its bulk scan.
func NewTaskRepository(client *ent.Client, db *sqlx.DB) *TaskRepository {
	return &TaskRepository{
		client: client,
		db:     db,
	}
}

// TaskInput carries the fields for creating a task.
type TaskInput struct {
	TenantID    string
	UserID      uuid.UUID
	Title       string
	Description string
	Priority    models.Priority
	DueDate     *time.Time
}

// TaskUpdate carries the optional fields for updating a task. A nil
// field is left untouched; ClearDueDate removes the due date.
type TaskUpdate struct {
	Title        *string
	Description  *string
	Priority     *models.Priority
	DueDate      *time.Time
	ClearDueDate bool
}

func (r *TaskRepository) Create(ctx context.Context, input TaskInput) (models.Task, error) {
	priority := input.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	created, err := r.client.Task.
		Create().
		SetTenantID(input.TenantID).
		SetUserID(input.UserID).
		SetTitle(input.Title).
		SetDescription(input.Description).
		SetStatus(task.StatusActive).
		SetPriority(task.Priority(priority)).
		SetNillableDueDate(input.DueDate).
		Save(ctx)
	if err != nil {
		return models.Task{}, err
	}
	return toDomain(created), nil
}

func (r *TaskRepository) GetByID(ctx context.Context, tenantID string, id uuid.UUID) (models.Task, error) {
	found, err := r.client.Task.
		Query().
		Where(task.ID(id), task.TenantID(tenantID)).
		Only(ctx)
	if err != nil {
		return models.Task{}, err
	}
	return toDomain(found), nil
}

func (r *TaskRepository) Update(ctx context.Context, tenantID string, id uuid.UUID, input TaskUpdate) (models.Task, error) {
	// UpdateOneID has no Where clause, so the tenant check rides on the
	// lookup.
	if _, err := r.GetByID(ctx, tenantID, id); err != nil {
		return models.Task{}, err
	}

	update := r.client.Task.UpdateOneID(id)
	if input.Title != nil {
		update = update.SetTitle(*input.Title)
	}
	if input.Description != nil {
		update = update.SetDescription(*input.Description)
	}
	if input.Priority != nil {
		update = update.SetPriority(task.Priority(*input.Priority))
	}
	if input.ClearDueDate {
		update = update.ClearDueDate()
	} else if input.DueDate != nil {
		update = update.SetDueDate(*input.DueDate)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return models.Task{}, err
	}
	return toDomain(updated), nil
}

// Complete marks a task done. The completion instant is set in the same
// write that flips the status, keeping the completed ⇔ completed_at
// invariant.
func (r *TaskRepository) Complete(ctx context.Context, tenantID string, id uuid.UUID, at time.Time) (models.Task, error) {
	if _, err := r.GetByID(ctx, tenantID, id); err != nil {
		return models.Task{}, err
	}

	updated, err := r.client.Task.
		UpdateOneID(id).
		SetStatus(task.StatusCompleted).
		SetCompletedAt(at).
		Save(ctx)
	if err != nil {
		return models.Task{}, err
	}
	return toDomain(updated), nil
}

// Reopen returns a completed or archived task to the active state and
// clears its completion instant.
func (r *TaskRepository) Reopen(ctx context.Context, tenantID string, id uuid.UUID) (models.Task, error) {
	if _, err := r.GetByID(ctx, tenantID, id); err != nil {
		return models.Task{}, err
	}

	updated, err := r.client.Task.
		UpdateOneID(id).
		SetStatus(task.StatusActive).
		ClearCompletedAt().
		Save(ctx)
	if err != nil {
		return models.Task{}, err
	}
	return toDomain(updated), nil
}

func (r *TaskRepository) Archive(ctx context.Context, tenantID string, id uuid.UUID) (models.Task, error) {
	if _, err := r.GetByID(ctx, tenantID, id); err != nil {
		return models.Task{}, err
	}

	updated, err := r.client.Task.
		UpdateOneID(id).
		SetStatus(task.StatusArchived).
		Save(ctx)
	if err != nil {
		return models.Task{}, err
	}
	return toDomain(updated), nil
}

func (r *TaskRepository) Delete(ctx context.Context, tenantID string, id uuid.UUID) error {
	affected, err := r.client.Task.
		Delete().
		Where(task.ID(id), task.TenantID(tenantID)).
		Exec(ctx)
	if err != nil {
		return err
	}
	if affected == 0 {
		return &ent.NotFoundError{}
	}
	return nil
}

// FindTasks implements filter.Store.
func (r *TaskRepository) FindTasks(ctx context.Context, tenantID string, userID uuid.UUID, p filter.Predicate) ([]models.Task, error) {
	query := r.client.Task.
		Query().
		Where(buildPredicates(tenantID, userID, p)...)

	if p.Order == filter.OrderSmart {
		query = query.Order(smartOrder())
	}
	if p.Limit > 0 {
		query = query.Limit(p.Limit)
	}
	if p.Offset > 0 {
		query = query.Offset(p.Offset)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}

	out := make([]models.Task, len(rows))
	for i, row := range rows {
		out[i] = toDomain(row)
	}
	return out, nil
}

// CountTasks implements filter.Store; it counts the full selection
// regardless of pagination in the predicate.
func (r *TaskRepository) CountTasks(ctx context.Context, tenantID string, userID uuid.UUID, p filter.Predicate) (int, error) {
	count, err := r.client.Task.
		Query().
		Where(buildPredicates(tenantID, userID, p)...).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return count, nil
}

// BucketCounts implements filter.BucketCounter: every badge total in a
// single conditional-aggregate query. Ent's builder has no FILTER
// support, hence raw SQL through sqlx.
func (r *TaskRepository) BucketCounts(ctx context.Context, tenantID string, userID uuid.UUID, b schedule.Boundaries) (models.Counts, error) {
	if r.db == nil {
		return models.Counts{}, fmt.Errorf("bucket counts: no sql handle configured")
	}

	const query = `
SELECT
    COUNT(*) FILTER (WHERE status = 'active'
        OR (status = 'completed' AND completed_at >= ?))               AS all_count,
    COUNT(*) FILTER (WHERE status = 'active' AND due_date < ?)        AS overdue_count,
    COUNT(*) FILTER (WHERE status = 'active'
        AND due_date >= ? AND due_date < ?)                           AS today_count,
    COUNT(*) FILTER (WHERE status = 'active'
        AND due_date >= ? AND due_date < ?)                           AS upcoming_count,
    COUNT(*) FILTER (WHERE status = 'active' AND due_date IS NULL)    AS no_due_count
FROM tasks
WHERE tenant_id = ? AND user_id = ?`

	var counts models.Counts
	err := r.db.GetContext(ctx, &counts, r.db.Rebind(query),
		b.CompletedCutoff,
		b.TodayStart,
		b.TodayStart, b.TodayEnd,
		b.TodayEnd, b.WeekFromNow,
		tenantID, userID,
	)
	if err != nil {
		return models.Counts{}, fmt.Errorf("bucket counts: %w", err)
	}
	return counts, nil
}

// buildPredicates translates the engine predicate into Ent conditions.
// The status clause is (status IN statuses OR completed within cutoff);
// due-date conditions AND over it and never match NULL due dates.
func buildPredicates(tenantID string, userID uuid.UUID, p filter.Predicate) []predicate.Task {
	preds := []predicate.Task{
		task.TenantID(tenantID),
		task.UserID(userID),
	}

	var statusClauses []predicate.Task
	if len(p.Statuses) > 0 {
		statuses := make([]task.Status, len(p.Statuses))
		for i, s := range p.Statuses {
			statuses[i] = task.Status(s)
		}
		statusClauses = append(statusClauses, task.StatusIn(statuses...))
	}
	if p.CompletedSince != nil {
		statusClauses = append(statusClauses, task.And(
			task.StatusEQ(task.StatusCompleted),
			task.CompletedAtGTE(*p.CompletedSince),
		))
	}
	if len(statusClauses) > 0 {
		preds = append(preds, task.Or(statusClauses...))
	}

	if p.DueMissing != nil {
		if *p.DueMissing {
			preds = append(preds, task.DueDateIsNil())
		} else {
			preds = append(preds, task.DueDateNotNil())
		}
	}
	if p.DueFrom != nil {
		preds = append(preds, task.DueDateGTE(*p.DueFrom))
	}
	if p.DueBefore != nil {
		preds = append(preds, task.DueDateLT(*p.DueBefore))
	}

	return preds
}

// smartOrder is the display order pushed down to SQL so pagination
// slices the same sequence the engine would produce: status, priority
// descending, due date ascending with NULLs last, newest first.
func smartOrder() func(*sql.Selector) {
	return func(s *sql.Selector) {
		s.OrderExpr(sql.ExprP(
			"CASE status WHEN 'active' THEN 0 WHEN 'completed' THEN 1 ELSE 2 END",
		))
		s.OrderExpr(sql.ExprP(
			"CASE priority WHEN 'urgent' THEN 0 WHEN 'high' THEN 1 WHEN 'medium' THEN 2 ELSE 3 END",
		))
		// "IS NULL" sorts dated rows (false) ahead of undated ones
		s.OrderExpr(sql.ExprP("due_date IS NULL, due_date ASC"))
		s.OrderExpr(sql.ExprP("created_at DESC"))
	}
}

func toDomain(t *ent.Task) models.Task {
	return models.Task{
		ID:          t.ID,
		TenantID:    t.TenantID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Status:      models.Status(t.Status),
		Priority:    models.Priority(t.Priority),
		DueDate:     t.DueDate,
		CompletedAt: t.CompletedAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
