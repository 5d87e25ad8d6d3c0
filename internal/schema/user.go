package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// User is any platform account: client, courier, admin or staff.
// A user may hold several roles, but one dominant role drives the
// fee/commission logic.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("public_id").
			Unique().
			MaxLen(20).
			Comment("Role-prefixed public identifier, e.g. CL-000042"),

		field.String("name").
			MaxLen(200),

		field.String("email").
			Unique().
			MaxLen(255),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.JSON("roles", []string{}).
			Comment("client | courier | admin | staff"),

		field.Enum("status").
			Values("ACTIVE", "SUSPENDED").
			Default("ACTIVE"),

		// Client pricing profile
		field.Float("flat_rate_fee").
			Default(0).
			Comment("Base shipping fee before priority multiplier"),

		field.JSON("priority_multipliers", map[string]float64{}).
			Optional().
			Comment("priority → fee multiplier, e.g. {standard:1, urgent:1.5, express:2}"),

		field.Enum("partner_tier").
			Values("bronze", "silver", "gold").
			Optional().
			Nillable(),

		field.Bool("tier_manual_override").
			Default(false).
			Comment("If true the daily tier recalculation skips this client"),

		field.Float("wallet_balance").
			Default(0).
			Comment("Advisory cache; the transactions ledger is authoritative"),

		// Courier coverage
		field.JSON("zones", []string{}).
			Optional().
			Comment("Serviceable destination zones for couriers"),

		field.UUID("referred_by", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Referring user; earns a fixed bonus per delivery by this courier"),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("referrals", User.Type).
			From("referrer").
			Unique().
			Field("referred_by"),
		edge.To("shipments", Shipment.Type),
		edge.To("courier_stats", CourierStats.Type).
			Unique(),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
		index.Fields("public_id"),
	}
}
