package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Counter is a named monotonically increasing sequence. The shipment
// sequence and the per-role public-id sequences live here. Increments run
// inside the caller's transaction under a row-level exclusive lock so
// concurrent creations cannot observe the same value.
type Counter struct {
	ent.Schema
}

func (Counter) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Counter) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			MaxLen(50),

		field.Int64("value").
			Default(0).
			NonNegative(),
	}
}
