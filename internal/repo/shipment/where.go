// Code generated by ent, DO NOT EDIT.

package shipment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/karimsaad/wasel_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Shipment {
	return predicate.Shipment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Shipment {
	return predicate.Shipment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Shipment {
	return predicate.Shipment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Shipment {
	return predicate.Shipment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Shipment {
	return predicate.Shipment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Shipment {
	return predicate.Shipment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Shipment {
	return predicate.Shipment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Shipment {
	return predicate.Shipment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Shipment {
	return predicate.Shipment(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Shipment {
	return predicate.Shipment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Shipment {
	return predicate.Shipment(sql.FieldEQ(FieldUpdatedAt, v))
}

// DisplayID applies equality check predicate on the "display_id" field. It's identical to DisplayIDEQ.
func DisplayID(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldEQ(FieldDisplayID, v))
}

// ClientID applies equality check predicate on the "client_id" field. It's identical to ClientIDEQ.
func ClientID(v uuid.UUID) predicate.Shipment {
	return predicate.Shipment(sql.FieldEQ(FieldClientID, v))
}

// RecipientName applies equality check predicate on the "recipient_name" field. It's identical to RecipientNameEQ.
func RecipientName(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldEQ(FieldRecipientName, v))
}

// RecipientPhone applies equality check predicate on the "recipient_phone" field. It's identical to RecipientPhoneEQ.
func RecipientPhone(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldEQ(FieldRecipientPhone, v))
}

// PackageValue applies equality check predicate on the "package_value" field. It's identical to PackageValueEQ.
func PackageValue(v float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldEQ(FieldPackageValue, v))
}

// AmountToCollect applies equality check predicate on the "amount_to_collect" field. It's identical to AmountToCollectEQ.
func AmountToCollect(v float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldEQ(FieldAmountToCollect, v))
}

// ShippingFee applies equality check predicate on the "shipping_fee" field. It's identical to ShippingFeeEQ.
func ShippingFee(v float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldEQ(FieldShippingFee, v))
}

// CourierCommission applies equality check predicate on the "courier_commission" field. It's identical to CourierCommissionEQ.
func CourierCommission(v float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldEQ(FieldCourierCommission, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldEQ(FieldPrice, v))
}

// CourierID applies equality check predicate on the "courier_id" field. It's identical to CourierIDEQ.
func CourierID(v uuid.UUID) predicate.Shipment {
	return predicate.Shipment(sql.FieldEQ(FieldCourierID, v))
}

// PackagingNotes applies equality check predicate on the "packaging_notes" field. It's identical to PackagingNotesEQ.
func PackagingNotes(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldEQ(FieldPackagingNotes, v))
}

// FailureReason applies equality check predicate on the "failure_reason" field. It's identical to FailureReasonEQ.
func FailureReason(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldEQ(FieldFailureReason, v))
}

// FailurePhoto applies equality check predicate on the "failure_photo" field. It's identical to FailurePhotoEQ.
func FailurePhoto(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldEQ(FieldFailurePhoto, v))
}

// DeliveredAt applies equality check predicate on the "delivered_at" field. It's identical to DeliveredAtEQ.
func DeliveredAt(v time.Time) predicate.Shipment {
	return predicate.Shipment(sql.FieldEQ(FieldDeliveredAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Shipment {
	return predicate.Shipment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Shipment {
	return predicate.Shipment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Shipment {
	return predicate.Shipment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Shipment {
	return predicate.Shipment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Shipment {
	return predicate.Shipment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Shipment {
	return predicate.Shipment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Shipment {
	return predicate.Shipment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Shipment {
	return predicate.Shipment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Shipment {
	return predicate.Shipment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Shipment {
	return predicate.Shipment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Shipment {
	return predicate.Shipment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Shipment {
	return predicate.Shipment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Shipment {
	return predicate.Shipment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Shipment {
	return predicate.Shipment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Shipment {
	return predicate.Shipment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Shipment {
	return predicate.Shipment(sql.FieldLTE(FieldUpdatedAt, v))
}

// DisplayIDEQ applies the EQ predicate on the "display_id" field.
func DisplayIDEQ(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldEQ(FieldDisplayID, v))
}

// DisplayIDNEQ applies the NEQ predicate on the "display_id" field.
func DisplayIDNEQ(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldNEQ(FieldDisplayID, v))
}

// DisplayIDIn applies the In predicate on the "display_id" field.
func DisplayIDIn(vs ...string) predicate.Shipment {
	return predicate.Shipment(sql.FieldIn(FieldDisplayID, vs...))
}

// DisplayIDNotIn applies the NotIn predicate on the "display_id" field.
func DisplayIDNotIn(vs ...string) predicate.Shipment {
	return predicate.Shipment(sql.FieldNotIn(FieldDisplayID, vs...))
}

// DisplayIDGT applies the GT predicate on the "display_id" field.
func DisplayIDGT(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldGT(FieldDisplayID, v))
}

// DisplayIDGTE applies the GTE predicate on the "display_id" field.
func DisplayIDGTE(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldGTE(FieldDisplayID, v))
}

// DisplayIDLT applies the LT predicate on the "display_id" field.
func DisplayIDLT(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldLT(FieldDisplayID, v))
}

// DisplayIDLTE applies the LTE predicate on the "display_id" field.
func DisplayIDLTE(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldLTE(FieldDisplayID, v))
}

// DisplayIDContains applies the Contains predicate on the "display_id" field.
func DisplayIDContains(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldContains(FieldDisplayID, v))
}

// DisplayIDHasPrefix applies the HasPrefix predicate on the "display_id" field.
func DisplayIDHasPrefix(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldHasPrefix(FieldDisplayID, v))
}

// DisplayIDHasSuffix applies the HasSuffix predicate on the "display_id" field.
func DisplayIDHasSuffix(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldHasSuffix(FieldDisplayID, v))
}

// DisplayIDEqualFold applies the EqualFold predicate on the "display_id" field.
func DisplayIDEqualFold(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldEqualFold(FieldDisplayID, v))
}

// DisplayIDContainsFold applies the ContainsFold predicate on the "display_id" field.
func DisplayIDContainsFold(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldContainsFold(FieldDisplayID, v))
}

// ClientIDEQ applies the EQ predicate on the "client_id" field.
func ClientIDEQ(v uuid.UUID) predicate.Shipment {
	return predicate.Shipment(sql.FieldEQ(FieldClientID, v))
}

// ClientIDNEQ applies the NEQ predicate on the "client_id" field.
func ClientIDNEQ(v uuid.UUID) predicate.Shipment {
	return predicate.Shipment(sql.FieldNEQ(FieldClientID, v))
}

// ClientIDIn applies the In predicate on the "client_id" field.
func ClientIDIn(vs ...uuid.UUID) predicate.Shipment {
	return predicate.Shipment(sql.FieldIn(FieldClientID, vs...))
}

// ClientIDNotIn applies the NotIn predicate on the "client_id" field.
func ClientIDNotIn(vs ...uuid.UUID) predicate.Shipment {
	return predicate.Shipment(sql.FieldNotIn(FieldClientID, vs...))
}

// RecipientNameEQ applies the EQ predicate on the "recipient_name" field.
func RecipientNameEQ(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldEQ(FieldRecipientName, v))
}

// RecipientNameNEQ applies the NEQ predicate on the "recipient_name" field.
func RecipientNameNEQ(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldNEQ(FieldRecipientName, v))
}

// RecipientNameIn applies the In predicate on the "recipient_name" field.
func RecipientNameIn(vs ...string) predicate.Shipment {
	return predicate.Shipment(sql.FieldIn(FieldRecipientName, vs...))
}

// RecipientNameNotIn applies the NotIn predicate on the "recipient_name" field.
func RecipientNameNotIn(vs ...string) predicate.Shipment {
	return predicate.Shipment(sql.FieldNotIn(FieldRecipientName, vs...))
}

// RecipientNameGT applies the GT predicate on the "recipient_name" field.
func RecipientNameGT(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldGT(FieldRecipientName, v))
}

// RecipientNameGTE applies the GTE predicate on the "recipient_name" field.
func RecipientNameGTE(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldGTE(FieldRecipientName, v))
}

// RecipientNameLT applies the LT predicate on the "recipient_name" field.
func RecipientNameLT(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldLT(FieldRecipientName, v))
}

// RecipientNameLTE applies the LTE predicate on the "recipient_name" field.
func RecipientNameLTE(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldLTE(FieldRecipientName, v))
}

// RecipientNameContains applies the Contains predicate on the "recipient_name" field.
func RecipientNameContains(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldContains(FieldRecipientName, v))
}

// RecipientNameHasPrefix applies the HasPrefix predicate on the "recipient_name" field.
func RecipientNameHasPrefix(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldHasPrefix(FieldRecipientName, v))
}

// RecipientNameHasSuffix applies the HasSuffix predicate on the "recipient_name" field.
func RecipientNameHasSuffix(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldHasSuffix(FieldRecipientName, v))
}

// RecipientNameEqualFold applies the EqualFold predicate on the "recipient_name" field.
func RecipientNameEqualFold(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldEqualFold(FieldRecipientName, v))
}

// RecipientNameContainsFold applies the ContainsFold predicate on the "recipient_name" field.
func RecipientNameContainsFold(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldContainsFold(FieldRecipientName, v))
}

// RecipientPhoneEQ applies the EQ predicate on the "recipient_phone" field.
func RecipientPhoneEQ(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldEQ(FieldRecipientPhone, v))
}

// RecipientPhoneNEQ applies the NEQ predicate on the "recipient_phone" field.
func RecipientPhoneNEQ(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldNEQ(FieldRecipientPhone, v))
}

// RecipientPhoneIn applies the In predicate on the "recipient_phone" field.
func RecipientPhoneIn(vs ...string) predicate.Shipment {
	return predicate.Shipment(sql.FieldIn(FieldRecipientPhone, vs...))
}

// RecipientPhoneNotIn applies the NotIn predicate on the "recipient_phone" field.
func RecipientPhoneNotIn(vs ...string) predicate.Shipment {
	return predicate.Shipment(sql.FieldNotIn(FieldRecipientPhone, vs...))
}

// RecipientPhoneGT applies the GT predicate on the "recipient_phone" field.
func RecipientPhoneGT(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldGT(FieldRecipientPhone, v))
}

// RecipientPhoneGTE applies the GTE predicate on the "recipient_phone" field.
func RecipientPhoneGTE(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldGTE(FieldRecipientPhone, v))
}

// RecipientPhoneLT applies the LT predicate on the "recipient_phone" field.
func RecipientPhoneLT(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldLT(FieldRecipientPhone, v))
}

// RecipientPhoneLTE applies the LTE predicate on the "recipient_phone" field.
func RecipientPhoneLTE(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldLTE(FieldRecipientPhone, v))
}

// RecipientPhoneContains applies the Contains predicate on the "recipient_phone" field.
func RecipientPhoneContains(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldContains(FieldRecipientPhone, v))
}

// RecipientPhoneHasPrefix applies the HasPrefix predicate on the "recipient_phone" field.
func RecipientPhoneHasPrefix(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldHasPrefix(FieldRecipientPhone, v))
}

// RecipientPhoneHasSuffix applies the HasSuffix predicate on the "recipient_phone" field.
func RecipientPhoneHasSuffix(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldHasSuffix(FieldRecipientPhone, v))
}

// RecipientPhoneEqualFold applies the EqualFold predicate on the "recipient_phone" field.
func RecipientPhoneEqualFold(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldEqualFold(FieldRecipientPhone, v))
}

// RecipientPhoneContainsFold applies the ContainsFold predicate on the "recipient_phone" field.
func RecipientPhoneContainsFold(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldContainsFold(FieldRecipientPhone, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.Shipment {
	return predicate.Shipment(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.Shipment {
	return predicate.Shipment(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.Shipment {
	return predicate.Shipment(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.Shipment {
	return predicate.Shipment(sql.FieldNotIn(FieldPriority, vs...))
}

// PaymentMethodEQ applies the EQ predicate on the "payment_method" field.
func PaymentMethodEQ(v PaymentMethod) predicate.Shipment {
	return predicate.Shipment(sql.FieldEQ(FieldPaymentMethod, v))
}

// PaymentMethodNEQ applies the NEQ predicate on the "payment_method" field.
func PaymentMethodNEQ(v PaymentMethod) predicate.Shipment {
	return predicate.Shipment(sql.FieldNEQ(FieldPaymentMethod, v))
}

// PaymentMethodIn applies the In predicate on the "payment_method" field.
func PaymentMethodIn(vs ...PaymentMethod) predicate.Shipment {
	return predicate.Shipment(sql.FieldIn(FieldPaymentMethod, vs...))
}

// PaymentMethodNotIn applies the NotIn predicate on the "payment_method" field.
func PaymentMethodNotIn(vs ...PaymentMethod) predicate.Shipment {
	return predicate.Shipment(sql.FieldNotIn(FieldPaymentMethod, vs...))
}

// PackageValueEQ applies the EQ predicate on the "package_value" field.
func PackageValueEQ(v float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldEQ(FieldPackageValue, v))
}

// PackageValueNEQ applies the NEQ predicate on the "package_value" field.
func PackageValueNEQ(v float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldNEQ(FieldPackageValue, v))
}

// PackageValueIn applies the In predicate on the "package_value" field.
func PackageValueIn(vs ...float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldIn(FieldPackageValue, vs...))
}

// PackageValueNotIn applies the NotIn predicate on the "package_value" field.
func PackageValueNotIn(vs ...float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldNotIn(FieldPackageValue, vs...))
}

// PackageValueGT applies the GT predicate on the "package_value" field.
func PackageValueGT(v float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldGT(FieldPackageValue, v))
}

// PackageValueGTE applies the GTE predicate on the "package_value" field.
func PackageValueGTE(v float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldGTE(FieldPackageValue, v))
}

// PackageValueLT applies the LT predicate on the "package_value" field.
func PackageValueLT(v float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldLT(FieldPackageValue, v))
}

// PackageValueLTE applies the LTE predicate on the "package_value" field.
func PackageValueLTE(v float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldLTE(FieldPackageValue, v))
}

// AmountToCollectEQ applies the EQ predicate on the "amount_to_collect" field.
func AmountToCollectEQ(v float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldEQ(FieldAmountToCollect, v))
}

// AmountToCollectNEQ applies the NEQ predicate on the "amount_to_collect" field.
func AmountToCollectNEQ(v float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldNEQ(FieldAmountToCollect, v))
}

// AmountToCollectIn applies the In predicate on the "amount_to_collect" field.
func AmountToCollectIn(vs ...float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldIn(FieldAmountToCollect, vs...))
}

// AmountToCollectNotIn applies the NotIn predicate on the "amount_to_collect" field.
func AmountToCollectNotIn(vs ...float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldNotIn(FieldAmountToCollect, vs...))
}

// AmountToCollectGT applies the GT predicate on the "amount_to_collect" field.
func AmountToCollectGT(v float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldGT(FieldAmountToCollect, v))
}

// AmountToCollectGTE applies the GTE predicate on the "amount_to_collect" field.
func AmountToCollectGTE(v float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldGTE(FieldAmountToCollect, v))
}

// AmountToCollectLT applies the LT predicate on the "amount_to_collect" field.
func AmountToCollectLT(v float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldLT(FieldAmountToCollect, v))
}

// AmountToCollectLTE applies the LTE predicate on the "amount_to_collect" field.
func AmountToCollectLTE(v float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldLTE(FieldAmountToCollect, v))
}

// ShippingFeeEQ applies the EQ predicate on the "shipping_fee" field.
func ShippingFeeEQ(v float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldEQ(FieldShippingFee, v))
}

// ShippingFeeNEQ applies the NEQ predicate on the "shipping_fee" field.
func ShippingFeeNEQ(v float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldNEQ(FieldShippingFee, v))
}

// ShippingFeeIn applies the In predicate on the "shipping_fee" field.
func ShippingFeeIn(vs ...float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldIn(FieldShippingFee, vs...))
}

// ShippingFeeNotIn applies the NotIn predicate on the "shipping_fee" field.
func ShippingFeeNotIn(vs ...float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldNotIn(FieldShippingFee, vs...))
}

// ShippingFeeGT applies the GT predicate on the "shipping_fee" field.
func ShippingFeeGT(v float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldGT(FieldShippingFee, v))
}

// ShippingFeeGTE applies the GTE predicate on the "shipping_fee" field.
func ShippingFeeGTE(v float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldGTE(FieldShippingFee, v))
}

// ShippingFeeLT applies the LT predicate on the "shipping_fee" field.
func ShippingFeeLT(v float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldLT(FieldShippingFee, v))
}

// ShippingFeeLTE applies the LTE predicate on the "shipping_fee" field.
func ShippingFeeLTE(v float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldLTE(FieldShippingFee, v))
}

// CourierCommissionEQ applies the EQ predicate on the "courier_commission" field.
func CourierCommissionEQ(v float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldEQ(FieldCourierCommission, v))
}

// CourierCommissionNEQ applies the NEQ predicate on the "courier_commission" field.
func CourierCommissionNEQ(v float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldNEQ(FieldCourierCommission, v))
}

// CourierCommissionIn applies the In predicate on the "courier_commission" field.
func CourierCommissionIn(vs ...float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldIn(FieldCourierCommission, vs...))
}

// CourierCommissionNotIn applies the NotIn predicate on the "courier_commission" field.
func CourierCommissionNotIn(vs ...float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldNotIn(FieldCourierCommission, vs...))
}

// CourierCommissionGT applies the GT predicate on the "courier_commission" field.
func CourierCommissionGT(v float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldGT(FieldCourierCommission, v))
}

// CourierCommissionGTE applies the GTE predicate on the "courier_commission" field.
func CourierCommissionGTE(v float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldGTE(FieldCourierCommission, v))
}

// CourierCommissionLT applies the LT predicate on the "courier_commission" field.
func CourierCommissionLT(v float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldLT(FieldCourierCommission, v))
}

// CourierCommissionLTE applies the LTE predicate on the "courier_commission" field.
func CourierCommissionLTE(v float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldLTE(FieldCourierCommission, v))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v float64) predicate.Shipment {
	return predicate.Shipment(sql.FieldLTE(FieldPrice, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Shipment {
	return predicate.Shipment(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Shipment {
	return predicate.Shipment(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Shipment {
	return predicate.Shipment(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Shipment {
	return predicate.Shipment(sql.FieldNotIn(FieldStatus, vs...))
}

// CourierIDEQ applies the EQ predicate on the "courier_id" field.
func CourierIDEQ(v uuid.UUID) predicate.Shipment {
	return predicate.Shipment(sql.FieldEQ(FieldCourierID, v))
}

// CourierIDNEQ applies the NEQ predicate on the "courier_id" field.
func CourierIDNEQ(v uuid.UUID) predicate.Shipment {
	return predicate.Shipment(sql.FieldNEQ(FieldCourierID, v))
}

// CourierIDIn applies the In predicate on the "courier_id" field.
func CourierIDIn(vs ...uuid.UUID) predicate.Shipment {
	return predicate.Shipment(sql.FieldIn(FieldCourierID, vs...))
}

// CourierIDNotIn applies the NotIn predicate on the "courier_id" field.
func CourierIDNotIn(vs ...uuid.UUID) predicate.Shipment {
	return predicate.Shipment(sql.FieldNotIn(FieldCourierID, vs...))
}

// CourierIDGT applies the GT predicate on the "courier_id" field.
func CourierIDGT(v uuid.UUID) predicate.Shipment {
	return predicate.Shipment(sql.FieldGT(FieldCourierID, v))
}

// CourierIDGTE applies the GTE predicate on the "courier_id" field.
func CourierIDGTE(v uuid.UUID) predicate.Shipment {
	return predicate.Shipment(sql.FieldGTE(FieldCourierID, v))
}

// CourierIDLT applies the LT predicate on the "courier_id" field.
func CourierIDLT(v uuid.UUID) predicate.Shipment {
	return predicate.Shipment(sql.FieldLT(FieldCourierID, v))
}

// CourierIDLTE applies the LTE predicate on the "courier_id" field.
func CourierIDLTE(v uuid.UUID) predicate.Shipment {
	return predicate.Shipment(sql.FieldLTE(FieldCourierID, v))
}

// CourierIDIsNil applies the IsNil predicate on the "courier_id" field.
func CourierIDIsNil() predicate.Shipment {
	return predicate.Shipment(sql.FieldIsNull(FieldCourierID))
}

// CourierIDNotNil applies the NotNil predicate on the "courier_id" field.
func CourierIDNotNil() predicate.Shipment {
	return predicate.Shipment(sql.FieldNotNull(FieldCourierID))
}

// PackagingLogIsNil applies the IsNil predicate on the "packaging_log" field.
func PackagingLogIsNil() predicate.Shipment {
	return predicate.Shipment(sql.FieldIsNull(FieldPackagingLog))
}

// PackagingLogNotNil applies the NotNil predicate on the "packaging_log" field.
func PackagingLogNotNil() predicate.Shipment {
	return predicate.Shipment(sql.FieldNotNull(FieldPackagingLog))
}

// PackagingNotesEQ applies the EQ predicate on the "packaging_notes" field.
func PackagingNotesEQ(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldEQ(FieldPackagingNotes, v))
}

// PackagingNotesNEQ applies the NEQ predicate on the "packaging_notes" field.
func PackagingNotesNEQ(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldNEQ(FieldPackagingNotes, v))
}

// PackagingNotesIn applies the In predicate on the "packaging_notes" field.
func PackagingNotesIn(vs ...string) predicate.Shipment {
	return predicate.Shipment(sql.FieldIn(FieldPackagingNotes, vs...))
}

// PackagingNotesNotIn applies the NotIn predicate on the "packaging_notes" field.
func PackagingNotesNotIn(vs ...string) predicate.Shipment {
	return predicate.Shipment(sql.FieldNotIn(FieldPackagingNotes, vs...))
}

// PackagingNotesGT applies the GT predicate on the "packaging_notes" field.
func PackagingNotesGT(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldGT(FieldPackagingNotes, v))
}

// PackagingNotesGTE applies the GTE predicate on the "packaging_notes" field.
func PackagingNotesGTE(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldGTE(FieldPackagingNotes, v))
}

// PackagingNotesLT applies the LT predicate on the "packaging_notes" field.
func PackagingNotesLT(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldLT(FieldPackagingNotes, v))
}

// PackagingNotesLTE applies the LTE predicate on the "packaging_notes" field.
func PackagingNotesLTE(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldLTE(FieldPackagingNotes, v))
}

// PackagingNotesContains applies the Contains predicate on the "packaging_notes" field.
func PackagingNotesContains(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldContains(FieldPackagingNotes, v))
}

// PackagingNotesHasPrefix applies the HasPrefix predicate on the "packaging_notes" field.
func PackagingNotesHasPrefix(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldHasPrefix(FieldPackagingNotes, v))
}

// PackagingNotesHasSuffix applies the HasSuffix predicate on the "packaging_notes" field.
func PackagingNotesHasSuffix(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldHasSuffix(FieldPackagingNotes, v))
}

// PackagingNotesIsNil applies the IsNil predicate on the "packaging_notes" field.
func PackagingNotesIsNil() predicate.Shipment {
	return predicate.Shipment(sql.FieldIsNull(FieldPackagingNotes))
}

// PackagingNotesNotNil applies the NotNil predicate on the "packaging_notes" field.
func PackagingNotesNotNil() predicate.Shipment {
	return predicate.Shipment(sql.FieldNotNull(FieldPackagingNotes))
}

// PackagingNotesEqualFold applies the EqualFold predicate on the "packaging_notes" field.
func PackagingNotesEqualFold(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldEqualFold(FieldPackagingNotes, v))
}

// PackagingNotesContainsFold applies the ContainsFold predicate on the "packaging_notes" field.
func PackagingNotesContainsFold(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldContainsFold(FieldPackagingNotes, v))
}

// FailureReasonEQ applies the EQ predicate on the "failure_reason" field.
func FailureReasonEQ(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldEQ(FieldFailureReason, v))
}

// FailureReasonNEQ applies the NEQ predicate on the "failure_reason" field.
func FailureReasonNEQ(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldNEQ(FieldFailureReason, v))
}

// FailureReasonIn applies the In predicate on the "failure_reason" field.
func FailureReasonIn(vs ...string) predicate.Shipment {
	return predicate.Shipment(sql.FieldIn(FieldFailureReason, vs...))
}

// FailureReasonNotIn applies the NotIn predicate on the "failure_reason" field.
func FailureReasonNotIn(vs ...string) predicate.Shipment {
	return predicate.Shipment(sql.FieldNotIn(FieldFailureReason, vs...))
}

// FailureReasonGT applies the GT predicate on the "failure_reason" field.
func FailureReasonGT(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldGT(FieldFailureReason, v))
}

// FailureReasonGTE applies the GTE predicate on the "failure_reason" field.
func FailureReasonGTE(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldGTE(FieldFailureReason, v))
}

// FailureReasonLT applies the LT predicate on the "failure_reason" field.
func FailureReasonLT(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldLT(FieldFailureReason, v))
}

// FailureReasonLTE applies the LTE predicate on the "failure_reason" field.
func FailureReasonLTE(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldLTE(FieldFailureReason, v))
}

// FailureReasonContains applies the Contains predicate on the "failure_reason" field.
func FailureReasonContains(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldContains(FieldFailureReason, v))
}

// FailureReasonHasPrefix applies the HasPrefix predicate on the "failure_reason" field.
func FailureReasonHasPrefix(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldHasPrefix(FieldFailureReason, v))
}

// FailureReasonHasSuffix applies the HasSuffix predicate on the "failure_reason" field.
func FailureReasonHasSuffix(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldHasSuffix(FieldFailureReason, v))
}

// FailureReasonIsNil applies the IsNil predicate on the "failure_reason" field.
func FailureReasonIsNil() predicate.Shipment {
	return predicate.Shipment(sql.FieldIsNull(FieldFailureReason))
}

// FailureReasonNotNil applies the NotNil predicate on the "failure_reason" field.
func FailureReasonNotNil() predicate.Shipment {
	return predicate.Shipment(sql.FieldNotNull(FieldFailureReason))
}

// FailureReasonEqualFold applies the EqualFold predicate on the "failure_reason" field.
func FailureReasonEqualFold(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldEqualFold(FieldFailureReason, v))
}

// FailureReasonContainsFold applies the ContainsFold predicate on the "failure_reason" field.
func FailureReasonContainsFold(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldContainsFold(FieldFailureReason, v))
}

// FailurePhotoEQ applies the EQ predicate on the "failure_photo" field.
func FailurePhotoEQ(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldEQ(FieldFailurePhoto, v))
}

// FailurePhotoNEQ applies the NEQ predicate on the "failure_photo" field.
func FailurePhotoNEQ(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldNEQ(FieldFailurePhoto, v))
}

// FailurePhotoIn applies the In predicate on the "failure_photo" field.
func FailurePhotoIn(vs ...string) predicate.Shipment {
	return predicate.Shipment(sql.FieldIn(FieldFailurePhoto, vs...))
}

// FailurePhotoNotIn applies the NotIn predicate on the "failure_photo" field.
func FailurePhotoNotIn(vs ...string) predicate.Shipment {
	return predicate.Shipment(sql.FieldNotIn(FieldFailurePhoto, vs...))
}

// FailurePhotoGT applies the GT predicate on the "failure_photo" field.
func FailurePhotoGT(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldGT(FieldFailurePhoto, v))
}

// FailurePhotoGTE applies the GTE predicate on the "failure_photo" field.
func FailurePhotoGTE(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldGTE(FieldFailurePhoto, v))
}

// FailurePhotoLT applies the LT predicate on the "failure_photo" field.
func FailurePhotoLT(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldLT(FieldFailurePhoto, v))
}

// FailurePhotoLTE applies the LTE predicate on the "failure_photo" field.
func FailurePhotoLTE(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldLTE(FieldFailurePhoto, v))
}

// FailurePhotoContains applies the Contains predicate on the "failure_photo" field.
func FailurePhotoContains(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldContains(FieldFailurePhoto, v))
}

// FailurePhotoHasPrefix applies the HasPrefix predicate on the "failure_photo" field.
func FailurePhotoHasPrefix(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldHasPrefix(FieldFailurePhoto, v))
}

// FailurePhotoHasSuffix applies the HasSuffix predicate on the "failure_photo" field.
func FailurePhotoHasSuffix(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldHasSuffix(FieldFailurePhoto, v))
}

// FailurePhotoIsNil applies the IsNil predicate on the "failure_photo" field.
func FailurePhotoIsNil() predicate.Shipment {
	return predicate.Shipment(sql.FieldIsNull(FieldFailurePhoto))
}

// FailurePhotoNotNil applies the NotNil predicate on the "failure_photo" field.
func FailurePhotoNotNil() predicate.Shipment {
	return predicate.Shipment(sql.FieldNotNull(FieldFailurePhoto))
}

// FailurePhotoEqualFold applies the EqualFold predicate on the "failure_photo" field.
func FailurePhotoEqualFold(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldEqualFold(FieldFailurePhoto, v))
}

// FailurePhotoContainsFold applies the ContainsFold predicate on the "failure_photo" field.
func FailurePhotoContainsFold(v string) predicate.Shipment {
	return predicate.Shipment(sql.FieldContainsFold(FieldFailurePhoto, v))
}

// DeliveredAtEQ applies the EQ predicate on the "delivered_at" field.
func DeliveredAtEQ(v time.Time) predicate.Shipment {
	return predicate.Shipment(sql.FieldEQ(FieldDeliveredAt, v))
}

// DeliveredAtNEQ applies the NEQ predicate on the "delivered_at" field.
func DeliveredAtNEQ(v time.Time) predicate.Shipment {
	return predicate.Shipment(sql.FieldNEQ(FieldDeliveredAt, v))
}

// DeliveredAtIn applies the In predicate on the "delivered_at" field.
func DeliveredAtIn(vs ...time.Time) predicate.Shipment {
	return predicate.Shipment(sql.FieldIn(FieldDeliveredAt, vs...))
}

// DeliveredAtNotIn applies the NotIn predicate on the "delivered_at" field.
func DeliveredAtNotIn(vs ...time.Time) predicate.Shipment {
	return predicate.Shipment(sql.FieldNotIn(FieldDeliveredAt, vs...))
}

// DeliveredAtGT applies the GT predicate on the "delivered_at" field.
func DeliveredAtGT(v time.Time) predicate.Shipment {
	return predicate.Shipment(sql.FieldGT(FieldDeliveredAt, v))
}

// DeliveredAtGTE applies the GTE predicate on the "delivered_at" field.
func DeliveredAtGTE(v time.Time) predicate.Shipment {
	return predicate.Shipment(sql.FieldGTE(FieldDeliveredAt, v))
}

// DeliveredAtLT applies the LT predicate on the "delivered_at" field.
func DeliveredAtLT(v time.Time) predicate.Shipment {
	return predicate.Shipment(sql.FieldLT(FieldDeliveredAt, v))
}

// DeliveredAtLTE applies the LTE predicate on the "delivered_at" field.
func DeliveredAtLTE(v time.Time) predicate.Shipment {
	return predicate.Shipment(sql.FieldLTE(FieldDeliveredAt, v))
}

// DeliveredAtIsNil applies the IsNil predicate on the "delivered_at" field.
func DeliveredAtIsNil() predicate.Shipment {
	return predicate.Shipment(sql.FieldIsNull(FieldDeliveredAt))
}

// DeliveredAtNotNil applies the NotNil predicate on the "delivered_at" field.
func DeliveredAtNotNil() predicate.Shipment {
	return predicate.Shipment(sql.FieldNotNull(FieldDeliveredAt))
}

// HasClient applies the HasEdge predicate on the "client" edge.
func HasClient() predicate.Shipment {
	return predicate.Shipment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ClientTable, ClientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClientWith applies the HasEdge predicate on the "client" edge with a given conditions (other predicates).
func HasClientWith(preds ...predicate.User) predicate.Shipment {
	return predicate.Shipment(func(s *sql.Selector) {
		step := newClientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Shipment) predicate.Shipment {
	return predicate.Shipment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Shipment) predicate.Shipment {
	return predicate.Shipment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Shipment) predicate.Shipment {
	return predicate.Shipment(sql.NotPredicates(p))
}
