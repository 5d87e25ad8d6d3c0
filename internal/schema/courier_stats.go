package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// CourierStats holds the per-courier commission scheme, reliability
// counters and cached ledger aggregates.
type CourierStats struct {
	ent.Schema
}

func (CourierStats) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (CourierStats) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("courier_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id (one stats row per courier)"),

		field.Enum("commission_scheme").
			Values("flat", "percentage").
			Default("flat"),

		field.Float("commission_value").
			Default(0).
			Comment("Percentage when scheme=percentage; ignored for flat (the priority schedule wins)"),

		field.Int("consecutive_failures").
			Default(0).
			NonNegative(),

		field.Bool("restricted").
			Default(false).
			Comment("Restricted couriers are excluded from auto-assignment"),

		field.String("restriction_reason").
			MaxLen(500).
			Optional().
			Nillable(),

		field.Float("current_balance").
			Default(0).
			Comment("Advisory cache; the transactions ledger is authoritative"),

		field.Float("total_earnings").
			Default(0).
			Comment("Advisory cache of lifetime gross earnings"),
	}
}

func (CourierStats) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("courier", User.Type).
			Ref("courier_stats").
			Unique().
			Required().
			Field("courier_id"),
	}
}

func (CourierStats) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("restricted"),
	}
}
