package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/karimsaad/wasel_backend/internal/model"
)

// Shipment is the central work item: a package moving from a client to a
// recipient through the packaging → assignment → delivery lifecycle.
type Shipment struct {
	ent.Schema
}

func (Shipment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Shipment) Fields() []ent.Field {
	return []ent.Field{
		field.String("display_id").
			Unique().
			MaxLen(30).
			Comment("Human-readable id: {governorate}-{yymmdd}-{batch}-{seq}"),

		field.UUID("client_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.String("recipient_name").
			MaxLen(200),

		field.String("recipient_phone").
			MaxLen(20),

		field.JSON("from_address", model.Address{}),

		field.JSON("to_address", model.Address{}),

		field.Enum("priority").
			Values("standard", "urgent", "express").
			Default("standard"),

		field.Enum("payment_method").
			Values("cod", "transfer", "wallet"),

		field.Float("package_value").
			Default(0).
			Comment("Declared value collected from the recipient for COD/wallet"),

		field.Float("amount_to_collect").
			Default(0).
			Comment("Transfer-method collection amount; fee settled out of band"),

		field.Float("shipping_fee").
			Default(0).
			Comment("Client fee, fixed at creation"),

		field.Float("courier_commission").
			Default(0).
			Comment("Courier commission, fixed at assignment"),

		field.Float("price").
			Default(0).
			Comment("Final shipment price per payment method"),

		field.Enum("status").
			Values("waiting_packaging", "packaged", "assigned", "out_for_delivery", "delivered", "failed").
			Default("waiting_packaging"),

		field.JSON("status_history", []model.StatusEvent{}).
			Comment("Append-only ordered history; last entry mirrors status"),

		field.UUID("courier_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.JSON("packaging_log", []model.PackagingLine{}).
			Optional().
			Comment("Inventory items consumed during packaging"),

		field.String("packaging_notes").
			MaxLen(1000).
			Optional().
			Nillable(),

		field.String("failure_reason").
			MaxLen(500).
			Optional().
			Nillable(),

		field.String("failure_photo").
			MaxLen(500).
			Optional().
			Nillable().
			Comment("Blob storage reference for the failure evidence photo"),

		field.Time("delivered_at").
			Optional().
			Nillable(),
	}
}

func (Shipment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("client", User.Type).
			Ref("shipments").
			Unique().
			Required().
			Field("client_id"),
	}
}

func (Shipment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("client_id", "created_at"),
		index.Fields("status"),
		index.Fields("courier_id", "status"),
	}
}
