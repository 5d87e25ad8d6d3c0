// Code generated by ent, DO NOT EDIT.

package shipment

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the shipment type in the database.
	Label = "shipment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDisplayID holds the string denoting the display_id field in the database.
	FieldDisplayID = "display_id"
	// FieldClientID holds the string denoting the client_id field in the database.
	FieldClientID = "client_id"
	// FieldRecipientName holds the string denoting the recipient_name field in the database.
	FieldRecipientName = "recipient_name"
	// FieldRecipientPhone holds the string denoting the recipient_phone field in the database.
	FieldRecipientPhone = "recipient_phone"
	// FieldFromAddress holds the string denoting the from_address field in the database.
	FieldFromAddress = "from_address"
	// FieldToAddress holds the string denoting the to_address field in the database.
	FieldToAddress = "to_address"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldPaymentMethod holds the string denoting the payment_method field in the database.
	FieldPaymentMethod = "payment_method"
	// FieldPackageValue holds the string denoting the package_value field in the database.
	FieldPackageValue = "package_value"
	// FieldAmountToCollect holds the string denoting the amount_to_collect field in the database.
	FieldAmountToCollect = "amount_to_collect"
	// FieldShippingFee holds the string denoting the shipping_fee field in the database.
	FieldShippingFee = "shipping_fee"
	// FieldCourierCommission holds the string denoting the courier_commission field in the database.
	FieldCourierCommission = "courier_commission"
	// FieldPrice holds the string denoting the price field in the database.
	FieldPrice = "price"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStatusHistory holds the string denoting the status_history field in the database.
	FieldStatusHistory = "status_history"
	// FieldCourierID holds the string denoting the courier_id field in the database.
	FieldCourierID = "courier_id"
	// FieldPackagingLog holds the string denoting the packaging_log field in the database.
	FieldPackagingLog = "packaging_log"
	// FieldPackagingNotes holds the string denoting the packaging_notes field in the database.
	FieldPackagingNotes = "packaging_notes"
	// FieldFailureReason holds the string denoting the failure_reason field in the database.
	FieldFailureReason = "failure_reason"
	// FieldFailurePhoto holds the string denoting the failure_photo field in the database.
	FieldFailurePhoto = "failure_photo"
	// FieldDeliveredAt holds the string denoting the delivered_at field in the database.
	FieldDeliveredAt = "delivered_at"
	// EdgeClient holds the string denoting the client edge name in mutations.
	EdgeClient = "client"
	// Table holds the table name of the shipment in the database.
	Table = "shipments"
	// ClientTable is the table that holds the client relation/edge.
	ClientTable = "shipments"
	// ClientInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	ClientInverseTable = "users"
	// ClientColumn is the table column denoting the client relation/edge.
	ClientColumn = "client_id"
)

// Columns holds all SQL columns for shipment fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDisplayID,
	FieldClientID,
	FieldRecipientName,
	FieldRecipientPhone,
	FieldFromAddress,
	FieldToAddress,
	FieldPriority,
	FieldPaymentMethod,
	FieldPackageValue,
	FieldAmountToCollect,
	FieldShippingFee,
	FieldCourierCommission,
	FieldPrice,
	FieldStatus,
	FieldStatusHistory,
	FieldCourierID,
	FieldPackagingLog,
	FieldPackagingNotes,
	FieldFailureReason,
	FieldFailurePhoto,
	FieldDeliveredAt,
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
	// DisplayIDValidator is a validator for the "display_id" field. It is called by the builders before save.
	DisplayIDValidator func(string) error
	// RecipientNameValidator is a validator for the "recipient_name" field. It is called by the builders before save.
	RecipientNameValidator func(string) error
	// RecipientPhoneValidator is a validator for the "recipient_phone" field. It is called by the builders before save.
	RecipientPhoneValidator func(string) error
	// DefaultPackageValue holds the default value on creation for the "package_value" field.
	DefaultPackageValue float64
	// DefaultAmountToCollect holds the default value on creation for the "amount_to_collect" field.
	DefaultAmountToCollect float64
	// DefaultShippingFee holds the default value on creation for the "shipping_fee" field.
	DefaultShippingFee float64
	// DefaultCourierCommission holds the default value on creation for the "courier_commission" field.
	DefaultCourierCommission float64
	// DefaultPrice holds the default value on creation for the "price" field.
	DefaultPrice float64
	// PackagingNotesValidator is a validator for the "packaging_notes" field. It is called by the builders before save.
	PackagingNotesValidator func(string) error
	// FailureReasonValidator is a validator for the "failure_reason" field. It is called by the builders before save.
	FailureReasonValidator func(string) error
	// FailurePhotoValidator is a validator for the "failure_photo" field. It is called by the builders before save.
	FailurePhotoValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Priority defines the type for the "priority" enum field.
type Priority string

// PriorityStandard is the default value of the Priority enum.
const DefaultPriority = PriorityStandard

// Priority values.
const (
	PriorityStandard Priority = "standard"
	PriorityUrgent   Priority = "urgent"
	PriorityExpress  Priority = "express"
)

func (pr Priority) String() string {
	return string(pr)
}

// PriorityValidator is a validator for the "priority" field enum values. It is called by the builders before save.
func PriorityValidator(pr Priority) error {
	switch pr {
	case PriorityStandard, PriorityUrgent, PriorityExpress:
		return nil
	default:
		return fmt.Errorf("shipment: invalid enum value for priority field: %q", pr)
	}
}

// PaymentMethod defines the type for the "payment_method" enum field.
type PaymentMethod string

// PaymentMethod values.
const (
	PaymentMethodCod      PaymentMethod = "cod"
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodWallet   PaymentMethod = "wallet"
)

func (pm PaymentMethod) String() string {
	return string(pm)
}

// PaymentMethodValidator is a validator for the "payment_method" field enum values. It is called by the builders before save.
func PaymentMethodValidator(pm PaymentMethod) error {
	switch pm {
	case PaymentMethodCod, PaymentMethodTransfer, PaymentMethodWallet:
		return nil
	default:
		return fmt.Errorf("shipment: invalid enum value for payment_method field: %q", pm)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusWaitingPackaging is the default value of the Status enum.
const DefaultStatus = StatusWaitingPackaging

// Status values.
const (
	StatusWaitingPackaging Status = "waiting_packaging"
	StatusPackaged         Status = "packaged"
	StatusAssigned         Status = "assigned"
	StatusOutForDelivery   Status = "out_for_delivery"
	StatusDelivered        Status = "delivered"
	StatusFailed           Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusWaitingPackaging, StatusPackaged, StatusAssigned, StatusOutForDelivery, StatusDelivered, StatusFailed:
		return nil
	default:
		return fmt.Errorf("shipment: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Shipment queries.
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

// ByDisplayID orders the results by the display_id field.
func ByDisplayID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayID, opts...).ToFunc()
}

// ByClientID orders the results by the client_id field.
func ByClientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientID, opts...).ToFunc()
}

// ByRecipientName orders the results by the recipient_name field.
func ByRecipientName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecipientName, opts...).ToFunc()
}

// ByRecipientPhone orders the results by the recipient_phone field.
func ByRecipientPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecipientPhone, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByPaymentMethod orders the results by the payment_method field.
func ByPaymentMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentMethod, opts...).ToFunc()
}

// ByPackageValue orders the results by the package_value field.
func ByPackageValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPackageValue, opts...).ToFunc()
}

// ByAmountToCollect orders the results by the amount_to_collect field.
func ByAmountToCollect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmountToCollect, opts...).ToFunc()
}

// ByShippingFee orders the results by the shipping_fee field.
func ByShippingFee(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShippingFee, opts...).ToFunc()
}

// ByCourierCommission orders the results by the courier_commission field.
func ByCourierCommission(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCourierCommission, opts...).ToFunc()
}

// ByPrice orders the results by the price field.
func ByPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrice, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCourierID orders the results by the courier_id field.
func ByCourierID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCourierID, opts...).ToFunc()
}

// ByPackagingNotes orders the results by the packaging_notes field.
func ByPackagingNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPackagingNotes, opts...).ToFunc()
}

// ByFailureReason orders the results by the failure_reason field.
func ByFailureReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureReason, opts...).ToFunc()
}

// ByFailurePhoto orders the results by the failure_photo field.
func ByFailurePhoto(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailurePhoto, opts...).ToFunc()
}

// ByDeliveredAt orders the results by the delivered_at field.
func ByDeliveredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveredAt, opts...).ToFunc()
}

// ByClientField orders the results by client field.
func ByClientField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newClientStep(), sql.OrderByField(field, opts...))
	}
}
func newClientStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClientInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ClientTable, ClientColumn),
	)
}
