package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TierSetting is a named threshold/discount pair evaluated against each
// client's rolling 30-day shipment count.
type TierSetting struct {
	ent.Schema
}

func (TierSetting) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (TierSetting) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("tier").
			Values("bronze", "silver", "gold"),

		field.Int("min_shipments").
			NonNegative().
			Comment("Rolling 30-day shipment count required for this tier"),

		field.Float("discount_percent").
			Comment("Client fee discount granted by this tier (0–100)"),
	}
}

func (TierSetting) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tier").Unique(),
	}
}
