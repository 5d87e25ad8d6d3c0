package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// InventoryItem is a packaging consumable (box, tape, filler). Only the
// quantity decrement on packaging touches the core flow.
type InventoryItem struct {
	ent.Schema
}

func (InventoryItem) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (InventoryItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			MaxLen(200),

		field.Int("quantity").
			Default(0).
			NonNegative(),
	}
}
