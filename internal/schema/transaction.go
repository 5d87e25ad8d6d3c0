package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Transaction is an append-only ledger entry for a client or courier
// account. Amounts are never rewritten after creation, with one documented
// exception: a pending withdrawal_request row is mutated in place (type,
// status and optionally amount) when an admin approves or declines it.
type Transaction struct {
	ent.Schema
}

func (Transaction) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Transaction) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("account_type").
			Values("client", "courier"),

		field.UUID("account_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.Enum("type").
			Values(
				"commission",
				"referral_bonus",
				"penalty",
				"deposit",
				"payment",
				"withdrawal_request",
				"withdrawal_processed",
				"withdrawal_declined",
			),

		field.Float("amount").
			Comment("Signed amount; withdrawals are negative"),

		field.UUID("shipment_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.Enum("status").
			Values("processed", "pending", "declined", "failed").
			Default("processed"),

		field.String("payment_method").
			MaxLen(50).
			Optional().
			Nillable().
			Comment("Payout channel requested by the account holder"),

		field.String("evidence_ref").
			MaxLen(500).
			Optional().
			Nillable().
			Comment("Blob storage reference for payout evidence"),

		field.Time("processed_at").
			Optional().
			Nillable(),
	}
}

func (Transaction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_type", "account_id", "created_at"),
		index.Fields("account_type", "account_id", "type", "status"),
		index.Fields("shipment_id"),
	}
}
