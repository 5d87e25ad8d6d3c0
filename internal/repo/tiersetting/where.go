// Code generated by ent, DO NOT EDIT.

package tiersetting

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/karimsaad/wasel_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldEQ(FieldUpdatedAt, v))
}

// MinShipments applies equality check predicate on the "min_shipments" field. It's identical to MinShipmentsEQ.
func MinShipments(v int) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldEQ(FieldMinShipments, v))
}

// DiscountPercent applies equality check predicate on the "discount_percent" field. It's identical to DiscountPercentEQ.
func DiscountPercent(v float64) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldEQ(FieldDiscountPercent, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldLTE(FieldUpdatedAt, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v Tier) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v Tier) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...Tier) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...Tier) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldNotIn(FieldTier, vs...))
}

// MinShipmentsEQ applies the EQ predicate on the "min_shipments" field.
func MinShipmentsEQ(v int) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldEQ(FieldMinShipments, v))
}

// MinShipmentsNEQ applies the NEQ predicate on the "min_shipments" field.
func MinShipmentsNEQ(v int) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldNEQ(FieldMinShipments, v))
}

// MinShipmentsIn applies the In predicate on the "min_shipments" field.
func MinShipmentsIn(vs ...int) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldIn(FieldMinShipments, vs...))
}

// MinShipmentsNotIn applies the NotIn predicate on the "min_shipments" field.
func MinShipmentsNotIn(vs ...int) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldNotIn(FieldMinShipments, vs...))
}

// MinShipmentsGT applies the GT predicate on the "min_shipments" field.
func MinShipmentsGT(v int) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldGT(FieldMinShipments, v))
}

// MinShipmentsGTE applies the GTE predicate on the "min_shipments" field.
func MinShipmentsGTE(v int) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldGTE(FieldMinShipments, v))
}

// MinShipmentsLT applies the LT predicate on the "min_shipments" field.
func MinShipmentsLT(v int) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldLT(FieldMinShipments, v))
}

// MinShipmentsLTE applies the LTE predicate on the "min_shipments" field.
func MinShipmentsLTE(v int) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldLTE(FieldMinShipments, v))
}

// DiscountPercentEQ applies the EQ predicate on the "discount_percent" field.
func DiscountPercentEQ(v float64) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldEQ(FieldDiscountPercent, v))
}

// DiscountPercentNEQ applies the NEQ predicate on the "discount_percent" field.
func DiscountPercentNEQ(v float64) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldNEQ(FieldDiscountPercent, v))
}

// DiscountPercentIn applies the In predicate on the "discount_percent" field.
func DiscountPercentIn(vs ...float64) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldIn(FieldDiscountPercent, vs...))
}

// DiscountPercentNotIn applies the NotIn predicate on the "discount_percent" field.
func DiscountPercentNotIn(vs ...float64) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldNotIn(FieldDiscountPercent, vs...))
}

// DiscountPercentGT applies the GT predicate on the "discount_percent" field.
func DiscountPercentGT(v float64) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldGT(FieldDiscountPercent, v))
}

// DiscountPercentGTE applies the GTE predicate on the "discount_percent" field.
func DiscountPercentGTE(v float64) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldGTE(FieldDiscountPercent, v))
}

// DiscountPercentLT applies the LT predicate on the "discount_percent" field.
func DiscountPercentLT(v float64) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldLT(FieldDiscountPercent, v))
}

// DiscountPercentLTE applies the LTE predicate on the "discount_percent" field.
func DiscountPercentLTE(v float64) predicate.TierSetting {
	return predicate.TierSetting(sql.FieldLTE(FieldDiscountPercent, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TierSetting) predicate.TierSetting {
	return predicate.TierSetting(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TierSetting) predicate.TierSetting {
	return predicate.TierSetting(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TierSetting) predicate.TierSetting {
	return predicate.TierSetting(sql.NotPredicates(p))
}
