// Code generated by ent, DO NOT EDIT.

package generated

import (
	"github.com/daybook-app/daybook/ent/generated/predicate"
	"github.com/daybook-app/daybook/ent/generated/task"
	"github.com/daybook-app/daybook/ent/generated/user"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/entql"
	"entgo.io/ent/schema/field"
)

// schemaGraph holds a representation of ent/schema at runtime.
var schemaGraph = func() *sqlgraph.Schema {
	graph := &sqlgraph.Schema{Nodes: make([]*sqlgraph.Node, 2)}
	graph.Nodes[0] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   task.Table,
			Columns: task.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: task.FieldID,
			},
		},
		Type: "Task",
		Fields: map[string]*sqlgraph.FieldSpec{
			task.FieldTenantID:    {Type: field.TypeString, Column: task.FieldTenantID},
			task.FieldUserID:      {Type: field.TypeUUID, Column: task.FieldUserID},
			task.FieldTitle:       {Type: field.TypeString, Column: task.FieldTitle},
			task.FieldDescription: {Type: field.TypeString, Column: task.FieldDescription},
			task.FieldStatus:      {Type: field.TypeEnum, Column: task.FieldStatus},
			task.FieldPriority:    {Type: field.TypeEnum, Column: task.FieldPriority},
			task.FieldDueDate:     {Type: field.TypeTime, Column: task.FieldDueDate},
			task.FieldCompletedAt: {Type: field.TypeTime, Column: task.FieldCompletedAt},
			task.FieldCreatedAt:   {Type: field.TypeTime, Column: task.FieldCreatedAt},
			task.FieldUpdatedAt:   {Type: field.TypeTime, Column: task.FieldUpdatedAt},
		},
	}
	graph.Nodes[1] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   user.Table,
			Columns: user.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: user.FieldID,
			},
		},
		Type: "User",
		Fields: map[string]*sqlgraph.FieldSpec{
			user.FieldTenantID:               {Type: field.TypeString, Column: user.FieldTenantID},
			user.FieldEmail:                  {Type: field.TypeString, Column: user.FieldEmail},
			user.FieldDisplayName:            {Type: field.TypeString, Column: user.FieldDisplayName},
			user.FieldTimezone:               {Type: field.TypeString, Column: user.FieldTimezone},
			user.FieldCompletedRetentionDays: {Type: field.TypeInt, Column: user.FieldCompletedRetentionDays},
			user.FieldIsActive:               {Type: field.TypeBool, Column: user.FieldIsActive},
			user.FieldCreatedAt:              {Type: field.TypeTime, Column: user.FieldCreatedAt},
			user.FieldUpdatedAt:              {Type: field.TypeTime, Column: user.FieldUpdatedAt},
		},
	}
	graph.MustAddE(
		"owner",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.OwnerTable,
			Columns: []string{task.OwnerColumn},
			Bidi:    false,
		},
		"Task",
		"User",
	)
	graph.MustAddE(
		"tasks",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.TasksTable,
			Columns: []string{user.TasksColumn},
			Bidi:    false,
		},
		"User",
		"Task",
	)
	return graph
}()

// predicateAdder wraps the addPredicate method.
// All update, update-one and query builders implement this interface.
type predicateAdder interface {
	addPredicate(func(s *sql.Selector))
}

// addPredicate implements the predicateAdder interface.
func (_q *TaskQuery) addPredicate(pred func(s *sql.Selector)) {
	_q.predicates = append(_q.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the TaskQuery builder.
func (_q *TaskQuery) Filter() *TaskFilter {
	return &TaskFilter{config: _q.config, predicateAdder: _q}
}

// addPredicate implements the predicateAdder interface.
func (m *TaskMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the TaskMutation builder.
func (m *TaskMutation) Filter() *TaskFilter {
	return &TaskFilter{config: m.config, predicateAdder: m}
}

// TaskFilter provides a generic filtering capability at runtime for TaskQuery.
type TaskFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *TaskFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[0].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *TaskFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(task.FieldID))
}

// WhereTenantID applies the entql string predicate on the tenant_id field.
func (f *TaskFilter) WhereTenantID(p entql.StringP) {
	f.Where(p.Field(task.FieldTenantID))
}

// WhereUserID applies the entql [16]byte predicate on the user_id field.
func (f *TaskFilter) WhereUserID(p entql.ValueP) {
	f.Where(p.Field(task.FieldUserID))
}

// WhereTitle applies the entql string predicate on the title field.
func (f *TaskFilter) WhereTitle(p entql.StringP) {
	f.Where(p.Field(task.FieldTitle))
}

// WhereDescription applies the entql string predicate on the description field.
func (f *TaskFilter) WhereDescription(p entql.StringP) {
	f.Where(p.Field(task.FieldDescription))
}

// WhereStatus applies the entql string predicate on the status field.
func (f *TaskFilter) WhereStatus(p entql.StringP) {
	f.Where(p.Field(task.FieldStatus))
}

// WherePriority applies the entql string predicate on the priority field.
func (f *TaskFilter) WherePriority(p entql.StringP) {
	f.Where(p.Field(task.FieldPriority))
}

// WhereDueDate applies the entql time.Time predicate on the due_date field.
func (f *TaskFilter) WhereDueDate(p entql.TimeP) {
	f.Where(p.Field(task.FieldDueDate))
}

// WhereCompletedAt applies the entql time.Time predicate on the completed_at field.
func (f *TaskFilter) WhereCompletedAt(p entql.TimeP) {
	f.Where(p.Field(task.FieldCompletedAt))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *TaskFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(task.FieldCreatedAt))
}

// WhereUpdatedAt applies the entql time.Time predicate on the updated_at field.
func (f *TaskFilter) WhereUpdatedAt(p entql.TimeP) {
	f.Where(p.Field(task.FieldUpdatedAt))
}

// WhereHasOwner applies a predicate to check if query has an edge owner.
func (f *TaskFilter) WhereHasOwner() {
	f.Where(entql.HasEdge("owner"))
}

// WhereHasOwnerWith applies a predicate to check if query has an edge owner with a given conditions (other predicates).
func (f *TaskFilter) WhereHasOwnerWith(preds ...predicate.User) {
	f.Where(entql.HasEdgeWith("owner", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (_q *UserQuery) addPredicate(pred func(s *sql.Selector)) {
	_q.predicates = append(_q.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the UserQuery builder.
func (_q *UserQuery) Filter() *UserFilter {
	return &UserFilter{config: _q.config, predicateAdder: _q}
}

// addPredicate implements the predicateAdder interface.
func (m *UserMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the UserMutation builder.
func (m *UserMutation) Filter() *UserFilter {
	return &UserFilter{config: m.config, predicateAdder: m}
}

// UserFilter provides a generic filtering capability at runtime for UserQuery.
type UserFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *UserFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[1].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *UserFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(user.FieldID))
}

// WhereTenantID applies the entql string predicate on the tenant_id field.
func (f *UserFilter) WhereTenantID(p entql.StringP) {
	f.Where(p.Field(user.FieldTenantID))
}

// WhereEmail applies the entql string predicate on the email field.
func (f *UserFilter) WhereEmail(p entql.StringP) {
	f.Where(p.Field(user.FieldEmail))
}

// WhereDisplayName applies the entql string predicate on the display_name field.
func (f *UserFilter) WhereDisplayName(p entql.StringP) {
	f.Where(p.Field(user.FieldDisplayName))
}

// WhereTimezone applies the entql string predicate on the timezone field.
func (f *UserFilter) WhereTimezone(p entql.StringP) {
	f.Where(p.Field(user.FieldTimezone))
}

// WhereCompletedRetentionDays applies the entql int predicate on the completed_retention_days field.
func (f *UserFilter) WhereCompletedRetentionDays(p entql.IntP) {
	f.Where(p.Field(user.FieldCompletedRetentionDays))
}

// WhereIsActive applies the entql bool predicate on the is_active field.
func (f *UserFilter) WhereIsActive(p entql.BoolP) {
	f.Where(p.Field(user.FieldIsActive))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *UserFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(user.FieldCreatedAt))
}

// WhereUpdatedAt applies the entql time.Time predicate on the updated_at field.
func (f *UserFilter) WhereUpdatedAt(p entql.TimeP) {
	f.Where(p.Field(user.FieldUpdatedAt))
}

// WhereHasTasks applies a predicate to check if query has an edge tasks.
func (f *UserFilter) WhereHasTasks() {
	f.Where(entql.HasEdge("tasks"))
}

// WhereHasTasksWith applies a predicate to check if query has an edge tasks with a given conditions (other predicates).
func (f *UserFilter) WhereHasTasksWith(preds ...predicate.Task) {
	f.Where(entql.HasEdgeWith("tasks", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}
