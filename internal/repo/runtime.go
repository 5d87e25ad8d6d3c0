// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/karimsaad/wasel_backend/internal/repo/counter"
	"github.com/karimsaad/wasel_backend/internal/repo/courierstats"
	"github.com/karimsaad/wasel_backend/internal/repo/inventoryitem"
	"github.com/karimsaad/wasel_backend/internal/repo/shipment"
	"github.com/karimsaad/wasel_backend/internal/repo/tiersetting"
	"github.com/karimsaad/wasel_backend/internal/repo/transaction"
	"github.com/karimsaad/wasel_backend/internal/repo/user"
	"github.com/karimsaad/wasel_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	counterMixin := schema.Counter{}.Mixin()
	counterMixinFields0 := counterMixin[0].Fields()
	_ = counterMixinFields0
	counterMixinFields1 := counterMixin[1].Fields()
	_ = counterMixinFields1
	counterFields := schema.Counter{}.Fields()
	_ = counterFields
	// counterDescCreatedAt is the schema descriptor for created_at field.
	counterDescCreatedAt := counterMixinFields1[0].Descriptor()
	// counter.DefaultCreatedAt holds the default value on creation for the created_at field.
	counter.DefaultCreatedAt = counterDescCreatedAt.Default.(func() time.Time)
	// counterDescUpdatedAt is the schema descriptor for updated_at field.
	counterDescUpdatedAt := counterMixinFields1[1].Descriptor()
	// counter.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	counter.DefaultUpdatedAt = counterDescUpdatedAt.Default.(func() time.Time)
	// counter.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	counter.UpdateDefaultUpdatedAt = counterDescUpdatedAt.UpdateDefault.(func() time.Time)
	// counterDescName is the schema descriptor for name field.
	counterDescName := counterFields[0].Descriptor()
	// counter.NameValidator is a validator for the "name" field. It is called by the builders before save.
	counter.NameValidator = counterDescName.Validators[0].(func(string) error)
	// counterDescValue is the schema descriptor for value field.
	counterDescValue := counterFields[1].Descriptor()
	// counter.DefaultValue holds the default value on creation for the value field.
	counter.DefaultValue = counterDescValue.Default.(int64)
	// counter.ValueValidator is a validator for the "value" field. It is called by the builders before save.
	counter.ValueValidator = counterDescValue.Validators[0].(func(int64) error)
	// counterDescID is the schema descriptor for id field.
	counterDescID := counterMixinFields0[0].Descriptor()
	// counter.DefaultID holds the default value on creation for the id field.
	counter.DefaultID = counterDescID.Default.(func() uuid.UUID)
	courierstatsMixin := schema.CourierStats{}.Mixin()
	courierstatsMixinFields0 := courierstatsMixin[0].Fields()
	_ = courierstatsMixinFields0
	courierstatsMixinFields1 := courierstatsMixin[1].Fields()
	_ = courierstatsMixinFields1
	courierstatsFields := schema.CourierStats{}.Fields()
	_ = courierstatsFields
	// courierstatsDescCreatedAt is the schema descriptor for created_at field.
	courierstatsDescCreatedAt := courierstatsMixinFields1[0].Descriptor()
	// courierstats.DefaultCreatedAt holds the default value on creation for the created_at field.
	courierstats.DefaultCreatedAt = courierstatsDescCreatedAt.Default.(func() time.Time)
	// courierstatsDescUpdatedAt is the schema descriptor for updated_at field.
	courierstatsDescUpdatedAt := courierstatsMixinFields1[1].Descriptor()
	// courierstats.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	courierstats.DefaultUpdatedAt = courierstatsDescUpdatedAt.Default.(func() time.Time)
	// courierstats.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	courierstats.UpdateDefaultUpdatedAt = courierstatsDescUpdatedAt.UpdateDefault.(func() time.Time)
	// courierstatsDescCommissionValue is the schema descriptor for commission_value field.
	courierstatsDescCommissionValue := courierstatsFields[2].Descriptor()
	// courierstats.DefaultCommissionValue holds the default value on creation for the commission_value field.
	courierstats.DefaultCommissionValue = courierstatsDescCommissionValue.Default.(float64)
	// courierstatsDescConsecutiveFailures is the schema descriptor for consecutive_failures field.
	courierstatsDescConsecutiveFailures := courierstatsFields[3].Descriptor()
	// courierstats.DefaultConsecutiveFailures holds the default value on creation for the consecutive_failures field.
	courierstats.DefaultConsecutiveFailures = courierstatsDescConsecutiveFailures.Default.(int)
	// courierstats.ConsecutiveFailuresValidator is a validator for the "consecutive_failures" field. It is called by the builders before save.
	courierstats.ConsecutiveFailuresValidator = courierstatsDescConsecutiveFailures.Validators[0].(func(int) error)
	// courierstatsDescRestricted is the schema descriptor for restricted field.
	courierstatsDescRestricted := courierstatsFields[4].Descriptor()
	// courierstats.DefaultRestricted holds the default value on creation for the restricted field.
	courierstats.DefaultRestricted = courierstatsDescRestricted.Default.(bool)
	// courierstatsDescRestrictionReason is the schema descriptor for restriction_reason field.
	courierstatsDescRestrictionReason := courierstatsFields[5].Descriptor()
	// courierstats.RestrictionReasonValidator is a validator for the "restriction_reason" field. It is called by the builders before save.
	courierstats.RestrictionReasonValidator = courierstatsDescRestrictionReason.Validators[0].(func(string) error)
	// courierstatsDescCurrentBalance is the schema descriptor for current_balance field.
	courierstatsDescCurrentBalance := courierstatsFields[6].Descriptor()
	// courierstats.DefaultCurrentBalance holds the default value on creation for the current_balance field.
	courierstats.DefaultCurrentBalance = courierstatsDescCurrentBalance.Default.(float64)
	// courierstatsDescTotalEarnings is the schema descriptor for total_earnings field.
	courierstatsDescTotalEarnings := courierstatsFields[7].Descriptor()
	// courierstats.DefaultTotalEarnings holds the default value on creation for the total_earnings field.
	courierstats.DefaultTotalEarnings = courierstatsDescTotalEarnings.Default.(float64)
	// courierstatsDescID is the schema descriptor for id field.
	courierstatsDescID := courierstatsMixinFields0[0].Descriptor()
	// courierstats.DefaultID holds the default value on creation for the id field.
	courierstats.DefaultID = courierstatsDescID.Default.(func() uuid.UUID)
	inventoryitemMixin := schema.InventoryItem{}.Mixin()
	inventoryitemMixinFields0 := inventoryitemMixin[0].Fields()
	_ = inventoryitemMixinFields0
	inventoryitemMixinFields1 := inventoryitemMixin[1].Fields()
	_ = inventoryitemMixinFields1
	inventoryitemFields := schema.InventoryItem{}.Fields()
	_ = inventoryitemFields
	// inventoryitemDescCreatedAt is the schema descriptor for created_at field.
	inventoryitemDescCreatedAt := inventoryitemMixinFields1[0].Descriptor()
	// inventoryitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	inventoryitem.DefaultCreatedAt = inventoryitemDescCreatedAt.Default.(func() time.Time)
	// inventoryitemDescUpdatedAt is the schema descriptor for updated_at field.
	inventoryitemDescUpdatedAt := inventoryitemMixinFields1[1].Descriptor()
	// inventoryitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	inventoryitem.DefaultUpdatedAt = inventoryitemDescUpdatedAt.Default.(func() time.Time)
	// inventoryitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	inventoryitem.UpdateDefaultUpdatedAt = inventoryitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// inventoryitemDescName is the schema descriptor for name field.
	inventoryitemDescName := inventoryitemFields[0].Descriptor()
	// inventoryitem.NameValidator is a validator for the "name" field. It is called by the builders before save.
	inventoryitem.NameValidator = inventoryitemDescName.Validators[0].(func(string) error)
	// inventoryitemDescQuantity is the schema descriptor for quantity field.
	inventoryitemDescQuantity := inventoryitemFields[1].Descriptor()
	// inventoryitem.DefaultQuantity holds the default value on creation for the quantity field.
	inventoryitem.DefaultQuantity = inventoryitemDescQuantity.Default.(int)
	// inventoryitem.QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	inventoryitem.QuantityValidator = inventoryitemDescQuantity.Validators[0].(func(int) error)
	// inventoryitemDescID is the schema descriptor for id field.
	inventoryitemDescID := inventoryitemMixinFields0[0].Descriptor()
	// inventoryitem.DefaultID holds the default value on creation for the id field.
	inventoryitem.DefaultID = inventoryitemDescID.Default.(func() uuid.UUID)
	shipmentMixin := schema.Shipment{}.Mixin()
	shipmentMixinFields0 := shipmentMixin[0].Fields()
	_ = shipmentMixinFields0
	shipmentMixinFields1 := shipmentMixin[1].Fields()
	_ = shipmentMixinFields1
	shipmentFields := schema.Shipment{}.Fields()
	_ = shipmentFields
	// shipmentDescCreatedAt is the schema descriptor for created_at field.
	shipmentDescCreatedAt := shipmentMixinFields1[0].Descriptor()
	// shipment.DefaultCreatedAt holds the default value on creation for the created_at field.
	shipment.DefaultCreatedAt = shipmentDescCreatedAt.Default.(func() time.Time)
	// shipmentDescUpdatedAt is the schema descriptor for updated_at field.
	shipmentDescUpdatedAt := shipmentMixinFields1[1].Descriptor()
	// shipment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	shipment.DefaultUpdatedAt = shipmentDescUpdatedAt.Default.(func() time.Time)
	// shipment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	shipment.UpdateDefaultUpdatedAt = shipmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// shipmentDescDisplayID is the schema descriptor for display_id field.
	shipmentDescDisplayID := shipmentFields[0].Descriptor()
	// shipment.DisplayIDValidator is a validator for the "display_id" field. It is called by the builders before save.
	shipment.DisplayIDValidator = shipmentDescDisplayID.Validators[0].(func(string) error)
	// shipmentDescRecipientName is the schema descriptor for recipient_name field.
	shipmentDescRecipientName := shipmentFields[2].Descriptor()
	// shipment.RecipientNameValidator is a validator for the "recipient_name" field. It is called by the builders before save.
	shipment.RecipientNameValidator = shipmentDescRecipientName.Validators[0].(func(string) error)
	// shipmentDescRecipientPhone is the schema descriptor for recipient_phone field.
	shipmentDescRecipientPhone := shipmentFields[3].Descriptor()
	// shipment.RecipientPhoneValidator is a validator for the "recipient_phone" field. It is called by the builders before save.
	shipment.RecipientPhoneValidator = shipmentDescRecipientPhone.Validators[0].(func(string) error)
	// shipmentDescPackageValue is the schema descriptor for package_value field.
	shipmentDescPackageValue := shipmentFields[8].Descriptor()
	// shipment.DefaultPackageValue holds the default value on creation for the package_value field.
	shipment.DefaultPackageValue = shipmentDescPackageValue.Default.(float64)
	// shipmentDescAmountToCollect is the schema descriptor for amount_to_collect field.
	shipmentDescAmountToCollect := shipmentFields[9].Descriptor()
	// shipment.DefaultAmountToCollect holds the default value on creation for the amount_to_collect field.
	shipment.DefaultAmountToCollect = shipmentDescAmountToCollect.Default.(float64)
	// shipmentDescShippingFee is the schema descriptor for shipping_fee field.
	shipmentDescShippingFee := shipmentFields[10].Descriptor()
	// shipment.DefaultShippingFee holds the default value on creation for the shipping_fee field.
	shipment.DefaultShippingFee = shipmentDescShippingFee.Default.(float64)
	// shipmentDescCourierCommission is the schema descriptor for courier_commission field.
	shipmentDescCourierCommission := shipmentFields[11].Descriptor()
	// shipment.DefaultCourierCommission holds the default value on creation for the courier_commission field.
	shipment.DefaultCourierCommission = shipmentDescCourierCommission.Default.(float64)
	// shipmentDescPrice is the schema descriptor for price field.
	shipmentDescPrice := shipmentFields[12].Descriptor()
	// shipment.DefaultPrice holds the default value on creation for the price field.
	shipment.DefaultPrice = shipmentDescPrice.Default.(float64)
	// shipmentDescPackagingNotes is the schema descriptor for packaging_notes field.
	shipmentDescPackagingNotes := shipmentFields[17].Descriptor()
	// shipment.PackagingNotesValidator is a validator for the "packaging_notes" field. It is called by the builders before save.
	shipment.PackagingNotesValidator = shipmentDescPackagingNotes.Validators[0].(func(string) error)
	// shipmentDescFailureReason is the schema descriptor for failure_reason field.
	shipmentDescFailureReason := shipmentFields[18].Descriptor()
	// shipment.FailureReasonValidator is a validator for the "failure_reason" field. It is called by the builders before save.
	shipment.FailureReasonValidator = shipmentDescFailureReason.Validators[0].(func(string) error)
	// shipmentDescFailurePhoto is the schema descriptor for failure_photo field.
	shipmentDescFailurePhoto := shipmentFields[19].Descriptor()
	// shipment.FailurePhotoValidator is a validator for the "failure_photo" field. It is called by the builders before save.
	shipment.FailurePhotoValidator = shipmentDescFailurePhoto.Validators[0].(func(string) error)
	// shipmentDescID is the schema descriptor for id field.
	shipmentDescID := shipmentMixinFields0[0].Descriptor()
	// shipment.DefaultID holds the default value on creation for the id field.
	shipment.DefaultID = shipmentDescID.Default.(func() uuid.UUID)
	tiersettingMixin := schema.TierSetting{}.Mixin()
	tiersettingMixinFields0 := tiersettingMixin[0].Fields()
	_ = tiersettingMixinFields0
	tiersettingMixinFields1 := tiersettingMixin[1].Fields()
	_ = tiersettingMixinFields1
	tiersettingFields := schema.TierSetting{}.Fields()
	_ = tiersettingFields
	// tiersettingDescCreatedAt is the schema descriptor for created_at field.
	tiersettingDescCreatedAt := tiersettingMixinFields1[0].Descriptor()
	// tiersetting.DefaultCreatedAt holds the default value on creation for the created_at field.
	tiersetting.DefaultCreatedAt = tiersettingDescCreatedAt.Default.(func() time.Time)
	// tiersettingDescUpdatedAt is the schema descriptor for updated_at field.
	tiersettingDescUpdatedAt := tiersettingMixinFields1[1].Descriptor()
	// tiersetting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tiersetting.DefaultUpdatedAt = tiersettingDescUpdatedAt.Default.(func() time.Time)
	// tiersetting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tiersetting.UpdateDefaultUpdatedAt = tiersettingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// tiersettingDescMinShipments is the schema descriptor for min_shipments field.
	tiersettingDescMinShipments := tiersettingFields[1].Descriptor()
	// tiersetting.MinShipmentsValidator is a validator for the "min_shipments" field. It is called by the builders before save.
	tiersetting.MinShipmentsValidator = tiersettingDescMinShipments.Validators[0].(func(int) error)
	// tiersettingDescID is the schema descriptor for id field.
	tiersettingDescID := tiersettingMixinFields0[0].Descriptor()
	// tiersetting.DefaultID holds the default value on creation for the id field.
	tiersetting.DefaultID = tiersettingDescID.Default.(func() uuid.UUID)
	transactionMixin := schema.Transaction{}.Mixin()
	transactionMixinFields0 := transactionMixin[0].Fields()
	_ = transactionMixinFields0
	transactionMixinFields1 := transactionMixin[1].Fields()
	_ = transactionMixinFields1
	transactionFields := schema.Transaction{}.Fields()
	_ = transactionFields
	// transactionDescCreatedAt is the schema descriptor for created_at field.
	transactionDescCreatedAt := transactionMixinFields1[0].Descriptor()
	// transaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	transaction.DefaultCreatedAt = transactionDescCreatedAt.Default.(func() time.Time)
	// transactionDescPaymentMethod is the schema descriptor for payment_method field.
	transactionDescPaymentMethod := transactionFields[6].Descriptor()
	// transaction.PaymentMethodValidator is a validator for the "payment_method" field. It is called by the builders before save.
	transaction.PaymentMethodValidator = transactionDescPaymentMethod.Validators[0].(func(string) error)
	// transactionDescEvidenceRef is the schema descriptor for evidence_ref field.
	transactionDescEvidenceRef := transactionFields[7].Descriptor()
	// transaction.EvidenceRefValidator is a validator for the "evidence_ref" field. It is called by the builders before save.
	transaction.EvidenceRefValidator = transactionDescEvidenceRef.Validators[0].(func(string) error)
	// transactionDescID is the schema descriptor for id field.
	transactionDescID := transactionMixinFields0[0].Descriptor()
	// transaction.DefaultID holds the default value on creation for the id field.
	transaction.DefaultID = transactionDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescPublicID is the schema descriptor for public_id field.
	userDescPublicID := userFields[0].Descriptor()
	// user.PublicIDValidator is a validator for the "public_id" field. It is called by the builders before save.
	user.PublicIDValidator = userDescPublicID.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[1].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPhone is the schema descriptor for phone field.
	userDescPhone := userFields[3].Descriptor()
	// user.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	user.PhoneValidator = userDescPhone.Validators[0].(func(string) error)
	// userDescFlatRateFee is the schema descriptor for flat_rate_fee field.
	userDescFlatRateFee := userFields[6].Descriptor()
	// user.DefaultFlatRateFee holds the default value on creation for the flat_rate_fee field.
	user.DefaultFlatRateFee = userDescFlatRateFee.Default.(float64)
	// userDescTierManualOverride is the schema descriptor for tier_manual_override field.
	userDescTierManualOverride := userFields[9].Descriptor()
	// user.DefaultTierManualOverride holds the default value on creation for the tier_manual_override field.
	user.DefaultTierManualOverride = userDescTierManualOverride.Default.(bool)
	// userDescWalletBalance is the schema descriptor for wallet_balance field.
	userDescWalletBalance := userFields[10].Descriptor()
	// user.DefaultWalletBalance holds the default value on creation for the wallet_balance field.
	user.DefaultWalletBalance = userDescWalletBalance.Default.(float64)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
