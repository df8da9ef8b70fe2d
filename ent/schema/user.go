// ent/schema/user.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// User holds the schema definition for the User entity. Identity lives
// in the external auth service; this row carries the preferences the
// filter engine reads.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.String("tenant_id").
			NotEmpty().
			Immutable().
			Comment("Tenant the user belongs to"),

		field.String("email").
			NotEmpty().
			Unique().
			Comment("User email address"),

		field.String("display_name").
			Optional().
			Default("").
			MaxLen(100).
			Comment("Name shown in the UI"),

		field.String("timezone").
			Optional().
			Default("").
			Comment("IANA timezone identifier; empty means UTC"),

		field.Int("completed_retention_days").
			Default(7).
			Comment("How many days completed tasks stay visible"),

		field.Bool("is_active").
			Default(true).
			Comment("Whether the user account is active"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the user was created"),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the user was last updated"),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("tasks", Task.Type).
			Comment("Tasks owned by this user"),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").
			Unique(),

		index.Fields("tenant_id"),
	}
}
