// Code generated by ent, DO NOT EDIT.

package user

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the user type in the database.
	Label = "user"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldPublicID holds the string denoting the public_id field in the database.
	FieldPublicID = "public_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldRoles holds the string denoting the roles field in the database.
	FieldRoles = "roles"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldFlatRateFee holds the string denoting the flat_rate_fee field in the database.
	FieldFlatRateFee = "flat_rate_fee"
	// FieldPriorityMultipliers holds the string denoting the priority_multipliers field in the database.
	FieldPriorityMultipliers = "priority_multipliers"
	// FieldPartnerTier holds the string denoting the partner_tier field in the database.
	FieldPartnerTier = "partner_tier"
	// FieldTierManualOverride holds the string denoting the tier_manual_override field in the database.
	FieldTierManualOverride = "tier_manual_override"
	// FieldWalletBalance holds the string denoting the wallet_balance field in the database.
	FieldWalletBalance = "wallet_balance"
	// FieldZones holds the string denoting the zones field in the database.
	FieldZones = "zones"
	// FieldReferredBy holds the string denoting the referred_by field in the database.
	FieldReferredBy = "referred_by"
	// EdgeReferrer holds the string denoting the referrer edge name in mutations.
	EdgeReferrer = "referrer"
	// EdgeReferrals holds the string denoting the referrals edge name in mutations.
	EdgeReferrals = "referrals"
	// EdgeShipments holds the string denoting the shipments edge name in mutations.
	EdgeShipments = "shipments"
	// EdgeCourierStats holds the string denoting the courier_stats edge name in mutations.
	EdgeCourierStats = "courier_stats"
	// Table holds the table name of the user in the database.
	Table = "users"
	// ReferrerTable is the table that holds the referrer relation/edge.
	ReferrerTable = "users"
	// ReferrerColumn is the table column denoting the referrer relation/edge.
	ReferrerColumn = "referred_by"
	// ReferralsTable is the table that holds the referrals relation/edge.
	ReferralsTable = "users"
	// ReferralsColumn is the table column denoting the referrals relation/edge.
	ReferralsColumn = "referred_by"
	// ShipmentsTable is the table that holds the shipments relation/edge.
	ShipmentsTable = "shipments"
	// ShipmentsInverseTable is the table name for the Shipment entity.
	// It exists in this package in order to avoid circular dependency with the "shipment" package.
	ShipmentsInverseTable = "shipments"
	// ShipmentsColumn is the table column denoting the shipments relation/edge.
	ShipmentsColumn = "client_id"
	// CourierStatsTable is the table that holds the courier_stats relation/edge.
	CourierStatsTable = "courier_stats"
	// CourierStatsInverseTable is the table name for the CourierStats entity.
	// It exists in this package in order to avoid circular dependency with the "courierstats" package.
	CourierStatsInverseTable = "courier_stats"
	// CourierStatsColumn is the table column denoting the courier_stats relation/edge.
	CourierStatsColumn = "courier_id"
)

// Columns holds all SQL columns for user fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
	FieldPublicID,
	FieldName,
	FieldEmail,
	FieldPhone,
	FieldRoles,
	FieldStatus,
	FieldFlatRateFee,
	FieldPriorityMultipliers,
	FieldPartnerTier,
	FieldTierManualOverride,
	FieldWalletBalance,
	FieldZones,
	FieldReferredBy,
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
	// PublicIDValidator is a validator for the "public_id" field. It is called by the builders before save.
	PublicIDValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	PhoneValidator func(string) error
	// DefaultFlatRateFee holds the default value on creation for the "flat_rate_fee" field.
	DefaultFlatRateFee float64
	// DefaultTierManualOverride holds the default value on creation for the "tier_manual_override" field.
	DefaultTierManualOverride bool
	// DefaultWalletBalance holds the default value on creation for the "wallet_balance" field.
	DefaultWalletBalance float64
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Status defines the type for the "status" enum field.
type Status string

// StatusACTIVE is the default value of the Status enum.
const DefaultStatus = StatusACTIVE

// Status values.
const (
	StatusACTIVE    Status = "ACTIVE"
	StatusSUSPENDED Status = "SUSPENDED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusACTIVE, StatusSUSPENDED:
		return nil
	default:
		return fmt.Errorf("user: invalid enum value for status field: %q", s)
	}
}

// PartnerTier defines the type for the "partner_tier" enum field.
type PartnerTier string

// PartnerTier values.
const (
	PartnerTierBronze PartnerTier = "bronze"
	PartnerTierSilver PartnerTier = "silver"
	PartnerTierGold   PartnerTier = "gold"
)

func (pt PartnerTier) String() string {
	return string(pt)
}

// PartnerTierValidator is a validator for the "partner_tier" field enum values. It is called by the builders before save.
func PartnerTierValidator(pt PartnerTier) error {
	switch pt {
	case PartnerTierBronze, PartnerTierSilver, PartnerTierGold:
		return nil
	default:
		return fmt.Errorf("user: invalid enum value for partner_tier field: %q", pt)
	}
}

// OrderOption defines the ordering options for the User queries.
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

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByPublicID orders the results by the public_id field.
func ByPublicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublicID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByFlatRateFee orders the results by the flat_rate_fee field.
func ByFlatRateFee(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlatRateFee, opts...).ToFunc()
}

// ByPartnerTier orders the results by the partner_tier field.
func ByPartnerTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPartnerTier, opts...).ToFunc()
}

// ByTierManualOverride orders the results by the tier_manual_override field.
func ByTierManualOverride(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTierManualOverride, opts...).ToFunc()
}

// ByWalletBalance orders the results by the wallet_balance field.
func ByWalletBalance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWalletBalance, opts...).ToFunc()
}

// ByReferredBy orders the results by the referred_by field.
func ByReferredBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReferredBy, opts...).ToFunc()
}

// ByReferrerField orders the results by referrer field.
func ByReferrerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReferrerStep(), sql.OrderByField(field, opts...))
	}
}

// ByReferralsCount orders the results by referrals count.
func ByReferralsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newReferralsStep(), opts...)
	}
}

// ByReferrals orders the results by referrals terms.
func ByReferrals(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReferralsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByShipmentsCount orders the results by shipments count.
func ByShipmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newShipmentsStep(), opts...)
	}
}

// ByShipments orders the results by shipments terms.
func ByShipments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newShipmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCourierStatsField orders the results by courier_stats field.
func ByCourierStatsField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCourierStatsStep(), sql.OrderByField(field, opts...))
	}
}
func newReferrerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ReferrerTable, ReferrerColumn),
	)
}
func newReferralsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ReferralsTable, ReferralsColumn),
	)
}
func newShipmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ShipmentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ShipmentsTable, ShipmentsColumn),
	)
}
func newCourierStatsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CourierStatsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, CourierStatsTable, CourierStatsColumn),
	)
}
