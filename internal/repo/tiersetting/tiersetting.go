// Code generated by ent, DO NOT EDIT.

package tiersetting

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the tiersetting type in the database.
	Label = "tier_setting"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldTier holds the string denoting the tier field in the database.
	FieldTier = "tier"
	// FieldMinShipments holds the string denoting the min_shipments field in the database.
	FieldMinShipments = "min_shipments"
	// FieldDiscountPercent holds the string denoting the discount_percent field in the database.
	FieldDiscountPercent = "discount_percent"
	// Table holds the table name of the tiersetting in the database.
	Table = "tier_settings"
)

// Columns holds all SQL columns for tiersetting fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldTier,
	FieldMinShipments,
	FieldDiscountPercent,
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
	// MinShipmentsValidator is a validator for the "min_shipments" field. It is called by the builders before save.
	MinShipmentsValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Tier defines the type for the "tier" enum field.
type Tier string

// Tier values.
const (
	TierBronze Tier = "bronze"
	TierSilver Tier = "silver"
	TierGold   Tier = "gold"
)

func (t Tier) String() string {
	return string(t)
}

// TierValidator is a validator for the "tier" field enum values. It is called by the builders before save.
func TierValidator(t Tier) error {
	switch t {
	case TierBronze, TierSilver, TierGold:
		return nil
	default:
		return fmt.Errorf("tiersetting: invalid enum value for tier field: %q", t)
	}
}

// OrderOption defines the ordering options for the TierSetting queries.
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

// ByTier orders the results by the tier field.
func ByTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier, opts...).ToFunc()
}

// ByMinShipments orders the results by the min_shipments field.
func ByMinShipments(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinShipments, opts...).ToFunc()
}

// ByDiscountPercent orders the results by the discount_percent field.
func ByDiscountPercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiscountPercent, opts...).ToFunc()
}
