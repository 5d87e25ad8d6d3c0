// Code generated by ent, DO NOT EDIT.

package courierstats

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the courierstats type in the database.
	Label = "courier_stats"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldCourierID holds the string denoting the courier_id field in the database.
	FieldCourierID = "courier_id"
	// FieldCommissionScheme holds the string denoting the commission_scheme field in the database.
	FieldCommissionScheme = "commission_scheme"
	// FieldCommissionValue holds the string denoting the commission_value field in the database.
	FieldCommissionValue = "commission_value"
	// FieldConsecutiveFailures holds the string denoting the consecutive_failures field in the database.
	FieldConsecutiveFailures = "consecutive_failures"
	// FieldRestricted holds the string denoting the restricted field in the database.
	FieldRestricted = "restricted"
	// FieldRestrictionReason holds the string denoting the restriction_reason field in the database.
	FieldRestrictionReason = "restriction_reason"
	// FieldCurrentBalance holds the string denoting the current_balance field in the database.
	FieldCurrentBalance = "current_balance"
	// FieldTotalEarnings holds the string denoting the total_earnings field in the database.
	FieldTotalEarnings = "total_earnings"
	// EdgeCourier holds the string denoting the courier edge name in mutations.
	EdgeCourier = "courier"
	// Table holds the table name of the courierstats in the database.
	Table = "courier_stats"
	// CourierTable is the table that holds the courier relation/edge.
	CourierTable = "courier_stats"
	// CourierInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	CourierInverseTable = "users"
	// CourierColumn is the table column denoting the courier relation/edge.
	CourierColumn = "courier_id"
)

// Columns holds all SQL columns for courierstats fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldCourierID,
	FieldCommissionScheme,
	FieldCommissionValue,
	FieldConsecutiveFailures,
	FieldRestricted,
	FieldRestrictionReason,
	FieldCurrentBalance,
	FieldTotalEarnings,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultCommissionValue holds the default value on creation for the "commission_value" field.
	DefaultCommissionValue float64
	// DefaultConsecutiveFailures holds the default value on creation for the "consecutive_failures" field.
	DefaultConsecutiveFailures int
	// ConsecutiveFailuresValidator is a validator for the "consecutive_failures" field. It is called by the builders before save.
	ConsecutiveFailuresValidator func(int) error
	// DefaultRestricted holds the default value on creation for the "restricted" field.
	DefaultRestricted bool
	// RestrictionReasonValidator is a validator for the "restriction_reason" field. It is called by the builders before save.
	RestrictionReasonValidator func(string) error
	// DefaultCurrentBalance holds the default value on creation for the "current_balance" field.
	DefaultCurrentBalance float64
	// DefaultTotalEarnings holds the default value on creation for the "total_earnings" field.
	DefaultTotalEarnings float64
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// CommissionScheme defines the type for the "commission_scheme" enum field.
type CommissionScheme string

// CommissionSchemeFlat is the default value of the CommissionScheme enum.
const DefaultCommissionScheme = CommissionSchemeFlat

// CommissionScheme values.
const (
	CommissionSchemeFlat       CommissionScheme = "flat"
	CommissionSchemePercentage CommissionScheme = "percentage"
)

func (cs CommissionScheme) String() string {
	return string(cs)
}

// CommissionSchemeValidator is a validator for the "commission_scheme" field enum values. It is called by the builders before save.
func CommissionSchemeValidator(cs CommissionScheme) error {
	switch cs {
	case CommissionSchemeFlat, CommissionSchemePercentage:
		return nil
	default:
		return fmt.Errorf("courierstats: invalid enum value for commission_scheme field: %q", cs)
	}
}

// OrderOption defines the ordering options for the CourierStats queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCourierID orders the results by the courier_id field.
func ByCourierID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCourierID, opts...).ToFunc()
}

// ByCommissionScheme orders the results by the commission_scheme field.
func ByCommissionScheme(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommissionScheme, opts...).ToFunc()
}

// ByCommissionValue orders the results by the commission_value field.
func ByCommissionValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommissionValue, opts...).ToFunc()
}

// ByConsecutiveFailures orders the results by the consecutive_failures field.
func ByConsecutiveFailures(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsecutiveFailures, opts...).ToFunc()
}

// ByRestricted orders the results by the restricted field.
func ByRestricted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRestricted, opts...).ToFunc()
}

// ByRestrictionReason orders the results by the restriction_reason field.
func ByRestrictionReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRestrictionReason, opts...).ToFunc()
}

// ByCurrentBalance orders the results by the current_balance field.
func ByCurrentBalance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentBalance, opts...).ToFunc()
}

// ByTotalEarnings orders the results by the total_earnings field.
func ByTotalEarnings(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalEarnings, opts...).ToFunc()
}

// ByCourierField orders the results by courier field.
func ByCourierField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCourierStep(), sql.OrderByField(field, opts...))
	}
}
func newCourierStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CourierInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, CourierTable, CourierColumn),
	)
}
