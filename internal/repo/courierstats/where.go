// Code generated by ent, DO NOT EDIT.

package courierstats

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/karimsaad/wasel_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldEQ(FieldUpdatedAt, v))
}

// CourierID applies equality check predicate on the "courier_id" field. It's identical to CourierIDEQ.
func CourierID(v uuid.UUID) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldEQ(FieldCourierID, v))
}

// CommissionValue applies equality check predicate on the "commission_value" field. It's identical to CommissionValueEQ.
func CommissionValue(v float64) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldEQ(FieldCommissionValue, v))
}

// ConsecutiveFailures applies equality check predicate on the "consecutive_failures" field. It's identical to ConsecutiveFailuresEQ.
func ConsecutiveFailures(v int) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldEQ(FieldConsecutiveFailures, v))
}

// Restricted applies equality check predicate on the "restricted" field. It's identical to RestrictedEQ.
func Restricted(v bool) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldEQ(FieldRestricted, v))
}

// RestrictionReason applies equality check predicate on the "restriction_reason" field. It's identical to RestrictionReasonEQ.
func RestrictionReason(v string) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldEQ(FieldRestrictionReason, v))
}

// CurrentBalance applies equality check predicate on the "current_balance" field. It's identical to CurrentBalanceEQ.
func CurrentBalance(v float64) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldEQ(FieldCurrentBalance, v))
}

// TotalEarnings applies equality check predicate on the "total_earnings" field. It's identical to TotalEarningsEQ.
func TotalEarnings(v float64) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldEQ(FieldTotalEarnings, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldLTE(FieldUpdatedAt, v))
}

// CourierIDEQ applies the EQ predicate on the "courier_id" field.
func CourierIDEQ(v uuid.UUID) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldEQ(FieldCourierID, v))
}

// CourierIDNEQ applies the NEQ predicate on the "courier_id" field.
func CourierIDNEQ(v uuid.UUID) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldNEQ(FieldCourierID, v))
}

// CourierIDIn applies the In predicate on the "courier_id" field.
func CourierIDIn(vs ...uuid.UUID) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldIn(FieldCourierID, vs...))
}

// CourierIDNotIn applies the NotIn predicate on the "courier_id" field.
func CourierIDNotIn(vs ...uuid.UUID) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldNotIn(FieldCourierID, vs...))
}

// CommissionSchemeEQ applies the EQ predicate on the "commission_scheme" field.
func CommissionSchemeEQ(v CommissionScheme) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldEQ(FieldCommissionScheme, v))
}

// CommissionSchemeNEQ applies the NEQ predicate on the "commission_scheme" field.
func CommissionSchemeNEQ(v CommissionScheme) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldNEQ(FieldCommissionScheme, v))
}

// CommissionSchemeIn applies the In predicate on the "commission_scheme" field.
func CommissionSchemeIn(vs ...CommissionScheme) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldIn(FieldCommissionScheme, vs...))
}

// CommissionSchemeNotIn applies the NotIn predicate on the "commission_scheme" field.
func CommissionSchemeNotIn(vs ...CommissionScheme) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldNotIn(FieldCommissionScheme, vs...))
}

// CommissionValueEQ applies the EQ predicate on the "commission_value" field.
func CommissionValueEQ(v float64) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldEQ(FieldCommissionValue, v))
}

// CommissionValueNEQ applies the NEQ predicate on the "commission_value" field.
func CommissionValueNEQ(v float64) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldNEQ(FieldCommissionValue, v))
}

// CommissionValueIn applies the In predicate on the "commission_value" field.
func CommissionValueIn(vs ...float64) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldIn(FieldCommissionValue, vs...))
}

// CommissionValueNotIn applies the NotIn predicate on the "commission_value" field.
func CommissionValueNotIn(vs ...float64) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldNotIn(FieldCommissionValue, vs...))
}

// CommissionValueGT applies the GT predicate on the "commission_value" field.
func CommissionValueGT(v float64) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldGT(FieldCommissionValue, v))
}

// CommissionValueGTE applies the GTE predicate on the "commission_value" field.
func CommissionValueGTE(v float64) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldGTE(FieldCommissionValue, v))
}

// CommissionValueLT applies the LT predicate on the "commission_value" field.
func CommissionValueLT(v float64) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldLT(FieldCommissionValue, v))
}

// CommissionValueLTE applies the LTE predicate on the "commission_value" field.
func CommissionValueLTE(v float64) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldLTE(FieldCommissionValue, v))
}

// ConsecutiveFailuresEQ applies the EQ predicate on the "consecutive_failures" field.
func ConsecutiveFailuresEQ(v int) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldEQ(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresNEQ applies the NEQ predicate on the "consecutive_failures" field.
func ConsecutiveFailuresNEQ(v int) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldNEQ(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresIn applies the In predicate on the "consecutive_failures" field.
func ConsecutiveFailuresIn(vs ...int) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldIn(FieldConsecutiveFailures, vs...))
}

// ConsecutiveFailuresNotIn applies the NotIn predicate on the "consecutive_failures" field.
func ConsecutiveFailuresNotIn(vs ...int) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldNotIn(FieldConsecutiveFailures, vs...))
}

// ConsecutiveFailuresGT applies the GT predicate on the "consecutive_failures" field.
func ConsecutiveFailuresGT(v int) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldGT(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresGTE applies the GTE predicate on the "consecutive_failures" field.
func ConsecutiveFailuresGTE(v int) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldGTE(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresLT applies the LT predicate on the "consecutive_failures" field.
func ConsecutiveFailuresLT(v int) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldLT(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresLTE applies the LTE predicate on the "consecutive_failures" field.
func ConsecutiveFailuresLTE(v int) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldLTE(FieldConsecutiveFailures, v))
}

// RestrictedEQ applies the EQ predicate on the "restricted" field.
func RestrictedEQ(v bool) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldEQ(FieldRestricted, v))
}

// RestrictedNEQ applies the NEQ predicate on the "restricted" field.
func RestrictedNEQ(v bool) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldNEQ(FieldRestricted, v))
}

// RestrictionReasonEQ applies the EQ predicate on the "restriction_reason" field.
func RestrictionReasonEQ(v string) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldEQ(FieldRestrictionReason, v))
}

// RestrictionReasonNEQ applies the NEQ predicate on the "restriction_reason" field.
func RestrictionReasonNEQ(v string) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldNEQ(FieldRestrictionReason, v))
}

// RestrictionReasonIn applies the In predicate on the "restriction_reason" field.
func RestrictionReasonIn(vs ...string) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldIn(FieldRestrictionReason, vs...))
}

// RestrictionReasonNotIn applies the NotIn predicate on the "restriction_reason" field.
func RestrictionReasonNotIn(vs ...string) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldNotIn(FieldRestrictionReason, vs...))
}

// RestrictionReasonGT applies the GT predicate on the "restriction_reason" field.
func RestrictionReasonGT(v string) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldGT(FieldRestrictionReason, v))
}

// RestrictionReasonGTE applies the GTE predicate on the "restriction_reason" field.
func RestrictionReasonGTE(v string) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldGTE(FieldRestrictionReason, v))
}

// RestrictionReasonLT applies the LT predicate on the "restriction_reason" field.
func RestrictionReasonLT(v string) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldLT(FieldRestrictionReason, v))
}

// RestrictionReasonLTE applies the LTE predicate on the "restriction_reason" field.
func RestrictionReasonLTE(v string) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldLTE(FieldRestrictionReason, v))
}

// RestrictionReasonContains applies the Contains predicate on the "restriction_reason" field.
func RestrictionReasonContains(v string) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldContains(FieldRestrictionReason, v))
}

// RestrictionReasonHasPrefix applies the HasPrefix predicate on the "restriction_reason" field.
func RestrictionReasonHasPrefix(v string) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldHasPrefix(FieldRestrictionReason, v))
}

// RestrictionReasonHasSuffix applies the HasSuffix predicate on the "restriction_reason" field.
func RestrictionReasonHasSuffix(v string) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldHasSuffix(FieldRestrictionReason, v))
}

// RestrictionReasonIsNil applies the IsNil predicate on the "restriction_reason" field.
func RestrictionReasonIsNil() predicate.CourierStats {
	return predicate.CourierStats(sql.FieldIsNull(FieldRestrictionReason))
}

// RestrictionReasonNotNil applies the NotNil predicate on the "restriction_reason" field.
func RestrictionReasonNotNil() predicate.CourierStats {
	return predicate.CourierStats(sql.FieldNotNull(FieldRestrictionReason))
}

// RestrictionReasonEqualFold applies the EqualFold predicate on the "restriction_reason" field.
func RestrictionReasonEqualFold(v string) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldEqualFold(FieldRestrictionReason, v))
}

// RestrictionReasonContainsFold applies the ContainsFold predicate on the "restriction_reason" field.
func RestrictionReasonContainsFold(v string) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldContainsFold(FieldRestrictionReason, v))
}

// CurrentBalanceEQ applies the EQ predicate on the "current_balance" field.
func CurrentBalanceEQ(v float64) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldEQ(FieldCurrentBalance, v))
}

// CurrentBalanceNEQ applies the NEQ predicate on the "current_balance" field.
func CurrentBalanceNEQ(v float64) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldNEQ(FieldCurrentBalance, v))
}

// CurrentBalanceIn applies the In predicate on the "current_balance" field.
func CurrentBalanceIn(vs ...float64) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldIn(FieldCurrentBalance, vs...))
}

// CurrentBalanceNotIn applies the NotIn predicate on the "current_balance" field.
func CurrentBalanceNotIn(vs ...float64) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldNotIn(FieldCurrentBalance, vs...))
}

// CurrentBalanceGT applies the GT predicate on the "current_balance" field.
func CurrentBalanceGT(v float64) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldGT(FieldCurrentBalance, v))
}

// CurrentBalanceGTE applies the GTE predicate on the "current_balance" field.
func CurrentBalanceGTE(v float64) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldGTE(FieldCurrentBalance, v))
}

// CurrentBalanceLT applies the LT predicate on the "current_balance" field.
func CurrentBalanceLT(v float64) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldLT(FieldCurrentBalance, v))
}

// CurrentBalanceLTE applies the LTE predicate on the "current_balance" field.
func CurrentBalanceLTE(v float64) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldLTE(FieldCurrentBalance, v))
}

// TotalEarningsEQ applies the EQ predicate on the "total_earnings" field.
func TotalEarningsEQ(v float64) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldEQ(FieldTotalEarnings, v))
}

// TotalEarningsNEQ applies the NEQ predicate on the "total_earnings" field.
func TotalEarningsNEQ(v float64) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldNEQ(FieldTotalEarnings, v))
}

// TotalEarningsIn applies the In predicate on the "total_earnings" field.
func TotalEarningsIn(vs ...float64) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldIn(FieldTotalEarnings, vs...))
}

// TotalEarningsNotIn applies the NotIn predicate on the "total_earnings" field.
func TotalEarningsNotIn(vs ...float64) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldNotIn(FieldTotalEarnings, vs...))
}

// TotalEarningsGT applies the GT predicate on the "total_earnings" field.
func TotalEarningsGT(v float64) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldGT(FieldTotalEarnings, v))
}

// TotalEarningsGTE applies the GTE predicate on the "total_earnings" field.
func TotalEarningsGTE(v float64) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldGTE(FieldTotalEarnings, v))
}

// TotalEarningsLT applies the LT predicate on the "total_earnings" field.
func TotalEarningsLT(v float64) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldLT(FieldTotalEarnings, v))
}

// TotalEarningsLTE applies the LTE predicate on the "total_earnings" field.
func TotalEarningsLTE(v float64) predicate.CourierStats {
	return predicate.CourierStats(sql.FieldLTE(FieldTotalEarnings, v))
}

// HasCourier applies the HasEdge predicate on the "courier" edge.
func HasCourier() predicate.CourierStats {
	return predicate.CourierStats(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, CourierTable, CourierColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCourierWith applies the HasEdge predicate on the "courier" edge with a given conditions (other predicates).
func HasCourierWith(preds ...predicate.User) predicate.CourierStats {
	return predicate.CourierStats(func(s *sql.Selector) {
		step := newCourierStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CourierStats) predicate.CourierStats {
	return predicate.CourierStats(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CourierStats) predicate.CourierStats {
	return predicate.CourierStats(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CourierStats) predicate.CourierStats {
	return predicate.CourierStats(sql.NotPredicates(p))
}
