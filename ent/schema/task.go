// ent/schema/task.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Task holds the schema definition for the Task entity.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.String("tenant_id").
			NotEmpty().
			Immutable().
			Comment("Tenant the task belongs to"),

		field.UUID("user_id", uuid.UUID{}).
			Comment("Owning user"),

		field.String("title").
			NotEmpty().
			Comment("Task title"),

		field.Text("description").
			Optional().
			Comment("Detailed description of the task"),

		field.Enum("status").
			Values("active", "completed", "archived").
			Default("active").
			Comment("Current lifecycle state of the task"),

		field.Enum("priority").
			Values("low", "medium", "high", "urgent").
			Default("medium").
			Comment("Priority level of the task"),

		field.Time("due_date").
			Optional().
			Nillable().
			Comment("Absolute UTC instant the task is due; local midnight of the chosen calendar date"),

		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("When the task was completed; set exactly while status is completed"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the task was created"),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the task was last updated"),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("tasks").
			Field("user_id").
			Unique().
			Required(),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		// The filter engine always scopes by tenant and user, then status
		index.Fields("tenant_id", "user_id", "status"),

		// Range scans over due dates back the bucket predicates
		index.Fields("tenant_id", "user_id", "due_date"),

		// Completed-within-cutoff branch of the visibility predicate
		index.Fields("tenant_id", "user_id", "completed_at"),

		// Index on created_at for sorting
		index.Fields("created_at"),
	}
}
