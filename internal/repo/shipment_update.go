// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/karimsaad/wasel_backend/internal/model"
	"github.com/karimsaad/wasel_backend/internal/repo/predicate"
	"github.com/karimsaad/wasel_backend/internal/repo/shipment"
	"github.com/karimsaad/wasel_backend/internal/repo/user"
)

// ShipmentUpdate is the builder for updating Shipment entities.
type ShipmentUpdate struct {
	config
	hooks    []Hook
	mutation *ShipmentMutation
}

// Where appends a list predicates to the ShipmentUpdate builder.
func (_u *ShipmentUpdate) Where(ps ...predicate.Shipment) *ShipmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ShipmentUpdate) SetUpdatedAt(v time.Time) *ShipmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDisplayID sets the "display_id" field.
func (_u *ShipmentUpdate) SetDisplayID(v string) *ShipmentUpdate {
	_u.mutation.SetDisplayID(v)
	return _u
}

// SetNillableDisplayID sets the "display_id" field if the given value is not nil.
func (_u *ShipmentUpdate) SetNillableDisplayID(v *string) *ShipmentUpdate {
	if v != nil {
		_u.SetDisplayID(*v)
	}
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *ShipmentUpdate) SetClientID(v uuid.UUID) *ShipmentUpdate {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *ShipmentUpdate) SetNillableClientID(v *uuid.UUID) *ShipmentUpdate {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetRecipientName sets the "recipient_name" field.
func (_u *ShipmentUpdate) SetRecipientName(v string) *ShipmentUpdate {
	_u.mutation.SetRecipientName(v)
	return _u
}

// SetNillableRecipientName sets the "recipient_name" field if the given value is not nil.
func (_u *ShipmentUpdate) SetNillableRecipientName(v *string) *ShipmentUpdate {
	if v != nil {
		_u.SetRecipientName(*v)
	}
	return _u
}

// SetRecipientPhone sets the "recipient_phone" field.
func (_u *ShipmentUpdate) SetRecipientPhone(v string) *ShipmentUpdate {
	_u.mutation.SetRecipientPhone(v)
	return _u
}

// SetNillableRecipientPhone sets the "recipient_phone" field if the given value is not nil.
func (_u *ShipmentUpdate) SetNillableRecipientPhone(v *string) *ShipmentUpdate {
	if v != nil {
		_u.SetRecipientPhone(*v)
	}
	return _u
}

// SetFromAddress sets the "from_address" field.
func (_u *ShipmentUpdate) SetFromAddress(v model.Address) *ShipmentUpdate {
	_u.mutation.SetFromAddress(v)
	return _u
}

// SetNillableFromAddress sets the "from_address" field if the given value is not nil.
func (_u *ShipmentUpdate) SetNillableFromAddress(v *model.Address) *ShipmentUpdate {
	if v != nil {
		_u.SetFromAddress(*v)
	}
	return _u
}

// SetToAddress sets the "to_address" field.
func (_u *ShipmentUpdate) SetToAddress(v model.Address) *ShipmentUpdate {
	_u.mutation.SetToAddress(v)
	return _u
}

// SetNillableToAddress sets the "to_address" field if the given value is not nil.
func (_u *ShipmentUpdate) SetNillableToAddress(v *model.Address) *ShipmentUpdate {
	if v != nil {
		_u.SetToAddress(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ShipmentUpdate) SetPriority(v shipment.Priority) *ShipmentUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ShipmentUpdate) SetNillablePriority(v *shipment.Priority) *ShipmentUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetPaymentMethod sets the "payment_method" field.
func (_u *ShipmentUpdate) SetPaymentMethod(v shipment.PaymentMethod) *ShipmentUpdate {
	_u.mutation.SetPaymentMethod(v)
	return _u
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_u *ShipmentUpdate) SetNillablePaymentMethod(v *shipment.PaymentMethod) *ShipmentUpdate {
	if v != nil {
		_u.SetPaymentMethod(*v)
	}
	return _u
}

// SetPackageValue sets the "package_value" field.
func (_u *ShipmentUpdate) SetPackageValue(v float64) *ShipmentUpdate {
	_u.mutation.ResetPackageValue()
	_u.mutation.SetPackageValue(v)
	return _u
}

// SetNillablePackageValue sets the "package_value" field if the given value is not nil.
func (_u *ShipmentUpdate) SetNillablePackageValue(v *float64) *ShipmentUpdate {
	if v != nil {
		_u.SetPackageValue(*v)
	}
	return _u
}

// AddPackageValue adds value to the "package_value" field.
func (_u *ShipmentUpdate) AddPackageValue(v float64) *ShipmentUpdate {
	_u.mutation.AddPackageValue(v)
	return _u
}

// SetAmountToCollect sets the "amount_to_collect" field.
func (_u *ShipmentUpdate) SetAmountToCollect(v float64) *ShipmentUpdate {
	_u.mutation.ResetAmountToCollect()
	_u.mutation.SetAmountToCollect(v)
	return _u
}

// SetNillableAmountToCollect sets the "amount_to_collect" field if the given value is not nil.
func (_u *ShipmentUpdate) SetNillableAmountToCollect(v *float64) *ShipmentUpdate {
	if v != nil {
		_u.SetAmountToCollect(*v)
	}
	return _u
}

// AddAmountToCollect adds value to the "amount_to_collect" field.
func (_u *ShipmentUpdate) AddAmountToCollect(v float64) *ShipmentUpdate {
	_u.mutation.AddAmountToCollect(v)
	return _u
}

// SetShippingFee sets the "shipping_fee" field.
func (_u *ShipmentUpdate) SetShippingFee(v float64) *ShipmentUpdate {
	_u.mutation.ResetShippingFee()
	_u.mutation.SetShippingFee(v)
	return _u
}

// SetNillableShippingFee sets the "shipping_fee" field if the given value is not nil.
func (_u *ShipmentUpdate) SetNillableShippingFee(v *float64) *ShipmentUpdate {
	if v != nil {
		_u.SetShippingFee(*v)
	}
	return _u
}

// AddShippingFee adds value to the "shipping_fee" field.
func (_u *ShipmentUpdate) AddShippingFee(v float64) *ShipmentUpdate {
	_u.mutation.AddShippingFee(v)
	return _u
}

// SetCourierCommission sets the "courier_commission" field.
func (_u *ShipmentUpdate) SetCourierCommission(v float64) *ShipmentUpdate {
	_u.mutation.ResetCourierCommission()
	_u.mutation.SetCourierCommission(v)
	return _u
}

// SetNillableCourierCommission sets the "courier_commission" field if the given value is not nil.
func (_u *ShipmentUpdate) SetNillableCourierCommission(v *float64) *ShipmentUpdate {
	if v != nil {
		_u.SetCourierCommission(*v)
	}
	return _u
}

// AddCourierCommission adds value to the "courier_commission" field.
func (_u *ShipmentUpdate) AddCourierCommission(v float64) *ShipmentUpdate {
	_u.mutation.AddCourierCommission(v)
	return _u
}

// SetPrice sets the "price" field.
func (_u *ShipmentUpdate) SetPrice(v float64) *ShipmentUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *ShipmentUpdate) SetNillablePrice(v *float64) *ShipmentUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *ShipmentUpdate) AddPrice(v float64) *ShipmentUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ShipmentUpdate) SetStatus(v shipment.Status) *ShipmentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ShipmentUpdate) SetNillableStatus(v *shipment.Status) *ShipmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStatusHistory sets the "status_history" field.
func (_u *ShipmentUpdate) SetStatusHistory(v []model.StatusEvent) *ShipmentUpdate {
	_u.mutation.SetStatusHistory(v)
	return _u
}

// AppendStatusHistory appends value to the "status_history" field.
func (_u *ShipmentUpdate) AppendStatusHistory(v []model.StatusEvent) *ShipmentUpdate {
	_u.mutation.AppendStatusHistory(v)
	return _u
}

// SetCourierID sets the "courier_id" field.
func (_u *ShipmentUpdate) SetCourierID(v uuid.UUID) *ShipmentUpdate {
	_u.mutation.SetCourierID(v)
	return _u
}

// SetNillableCourierID sets the "courier_id" field if the given value is not nil.
func (_u *ShipmentUpdate) SetNillableCourierID(v *uuid.UUID) *ShipmentUpdate {
	if v != nil {
		_u.SetCourierID(*v)
	}
	return _u
}

// ClearCourierID clears the value of the "courier_id" field.
func (_u *ShipmentUpdate) ClearCourierID() *ShipmentUpdate {
	_u.mutation.ClearCourierID()
	return _u
}

// SetPackagingLog sets the "packaging_log" field.
func (_u *ShipmentUpdate) SetPackagingLog(v []model.PackagingLine) *ShipmentUpdate {
	_u.mutation.SetPackagingLog(v)
	return _u
}

// AppendPackagingLog appends value to the "packaging_log" field.
func (_u *ShipmentUpdate) AppendPackagingLog(v []model.PackagingLine) *ShipmentUpdate {
	_u.mutation.AppendPackagingLog(v)
	return _u
}

// ClearPackagingLog clears the value of the "packaging_log" field.
func (_u *ShipmentUpdate) ClearPackagingLog() *ShipmentUpdate {
	_u.mutation.ClearPackagingLog()
	return _u
}

// SetPackagingNotes sets the "packaging_notes" field.
func (_u *ShipmentUpdate) SetPackagingNotes(v string) *ShipmentUpdate {
	_u.mutation.SetPackagingNotes(v)
	return _u
}

// SetNillablePackagingNotes sets the "packaging_notes" field if the given value is not nil.
func (_u *ShipmentUpdate) SetNillablePackagingNotes(v *string) *ShipmentUpdate {
	if v != nil {
		_u.SetPackagingNotes(*v)
	}
	return _u
}

// ClearPackagingNotes clears the value of the "packaging_notes" field.
func (_u *ShipmentUpdate) ClearPackagingNotes() *ShipmentUpdate {
	_u.mutation.ClearPackagingNotes()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *ShipmentUpdate) SetFailureReason(v string) *ShipmentUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *ShipmentUpdate) SetNillableFailureReason(v *string) *ShipmentUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *ShipmentUpdate) ClearFailureReason() *ShipmentUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetFailurePhoto sets the "failure_photo" field.
func (_u *ShipmentUpdate) SetFailurePhoto(v string) *ShipmentUpdate {
	_u.mutation.SetFailurePhoto(v)
	return _u
}

// SetNillableFailurePhoto sets the "failure_photo" field if the given value is not nil.
func (_u *ShipmentUpdate) SetNillableFailurePhoto(v *string) *ShipmentUpdate {
	if v != nil {
		_u.SetFailurePhoto(*v)
	}
	return _u
}

// ClearFailurePhoto clears the value of the "failure_photo" field.
func (_u *ShipmentUpdate) ClearFailurePhoto() *ShipmentUpdate {
	_u.mutation.ClearFailurePhoto()
	return _u
}

// SetDeliveredAt sets the "delivered_at" field.
func (_u *ShipmentUpdate) SetDeliveredAt(v time.Time) *ShipmentUpdate {
	_u.mutation.SetDeliveredAt(v)
	return _u
}

// SetNillableDeliveredAt sets the "delivered_at" field if the given value is not nil.
func (_u *ShipmentUpdate) SetNillableDeliveredAt(v *time.Time) *ShipmentUpdate {
	if v != nil {
		_u.SetDeliveredAt(*v)
	}
	return _u
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (_u *ShipmentUpdate) ClearDeliveredAt() *ShipmentUpdate {
	_u.mutation.ClearDeliveredAt()
	return _u
}

// SetClient sets the "client" edge to the User entity.
func (_u *ShipmentUpdate) SetClient(v *User) *ShipmentUpdate {
	return _u.SetClientID(v.ID)
}

// Mutation returns the ShipmentMutation object of the builder.
func (_u *ShipmentUpdate) Mutation() *ShipmentMutation {
	return _u.mutation
}

// ClearClient clears the "client" edge to the User entity.
func (_u *ShipmentUpdate) ClearClient() *ShipmentUpdate {
	_u.mutation.ClearClient()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ShipmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ShipmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ShipmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ShipmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ShipmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := shipment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ShipmentUpdate) check() error {
	if v, ok := _u.mutation.DisplayID(); ok {
		if err := shipment.DisplayIDValidator(v); err != nil {
			return &ValidationError{Name: "display_id", err: fmt.Errorf(`repo: validator failed for field "Shipment.display_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RecipientName(); ok {
		if err := shipment.RecipientNameValidator(v); err != nil {
			return &ValidationError{Name: "recipient_name", err: fmt.Errorf(`repo: validator failed for field "Shipment.recipient_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RecipientPhone(); ok {
		if err := shipment.RecipientPhoneValidator(v); err != nil {
			return &ValidationError{Name: "recipient_phone", err: fmt.Errorf(`repo: validator failed for field "Shipment.recipient_phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := shipment.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`repo: validator failed for field "Shipment.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentMethod(); ok {
		if err := shipment.PaymentMethodValidator(v); err != nil {
			return &ValidationError{Name: "payment_method", err: fmt.Errorf(`repo: validator failed for field "Shipment.payment_method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := shipment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Shipment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PackagingNotes(); ok {
		if err := shipment.PackagingNotesValidator(v); err != nil {
			return &ValidationError{Name: "packaging_notes", err: fmt.Errorf(`repo: validator failed for field "Shipment.packaging_notes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailureReason(); ok {
		if err := shipment.FailureReasonValidator(v); err != nil {
			return &ValidationError{Name: "failure_reason", err: fmt.Errorf(`repo: validator failed for field "Shipment.failure_reason": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailurePhoto(); ok {
		if err := shipment.FailurePhotoValidator(v); err != nil {
			return &ValidationError{Name: "failure_photo", err: fmt.Errorf(`repo: validator failed for field "Shipment.failure_photo": %w`, err)}
		}
	}
	if _u.mutation.ClientCleared() && len(_u.mutation.ClientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Shipment.client"`)
	}
	return nil
}

func (_u *ShipmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(shipment.Table, shipment.Columns, sqlgraph.NewFieldSpec(shipment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(shipment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DisplayID(); ok {
		_spec.SetField(shipment.FieldDisplayID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecipientName(); ok {
		_spec.SetField(shipment.FieldRecipientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecipientPhone(); ok {
		_spec.SetField(shipment.FieldRecipientPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromAddress(); ok {
		_spec.SetField(shipment.FieldFromAddress, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ToAddress(); ok {
		_spec.SetField(shipment.FieldToAddress, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(shipment.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PaymentMethod(); ok {
		_spec.SetField(shipment.FieldPaymentMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PackageValue(); ok {
		_spec.SetField(shipment.FieldPackageValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPackageValue(); ok {
		_spec.AddField(shipment.FieldPackageValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AmountToCollect(); ok {
		_spec.SetField(shipment.FieldAmountToCollect, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmountToCollect(); ok {
		_spec.AddField(shipment.FieldAmountToCollect, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ShippingFee(); ok {
		_spec.SetField(shipment.FieldShippingFee, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedShippingFee(); ok {
		_spec.AddField(shipment.FieldShippingFee, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CourierCommission(); ok {
		_spec.SetField(shipment.FieldCourierCommission, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCourierCommission(); ok {
		_spec.AddField(shipment.FieldCourierCommission, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(shipment.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(shipment.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(shipment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StatusHistory(); ok {
		_spec.SetField(shipment.FieldStatusHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStatusHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, shipment.FieldStatusHistory, value)
		})
	}
	if value, ok := _u.mutation.CourierID(); ok {
		_spec.SetField(shipment.FieldCourierID, field.TypeUUID, value)
	}
	if _u.mutation.CourierIDCleared() {
		_spec.ClearField(shipment.FieldCourierID, field.TypeUUID)
	}
	if value, ok := _u.mutation.PackagingLog(); ok {
		_spec.SetField(shipment.FieldPackagingLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPackagingLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, shipment.FieldPackagingLog, value)
		})
	}
	if _u.mutation.PackagingLogCleared() {
		_spec.ClearField(shipment.FieldPackagingLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.PackagingNotes(); ok {
		_spec.SetField(shipment.FieldPackagingNotes, field.TypeString, value)
	}
	if _u.mutation.PackagingNotesCleared() {
		_spec.ClearField(shipment.FieldPackagingNotes, field.TypeString)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(shipment.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(shipment.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.FailurePhoto(); ok {
		_spec.SetField(shipment.FieldFailurePhoto, field.TypeString, value)
	}
	if _u.mutation.FailurePhotoCleared() {
		_spec.ClearField(shipment.FieldFailurePhoto, field.TypeString)
	}
	if value, ok := _u.mutation.DeliveredAt(); ok {
		_spec.SetField(shipment.FieldDeliveredAt, field.TypeTime, value)
	}
	if _u.mutation.DeliveredAtCleared() {
		_spec.ClearField(shipment.FieldDeliveredAt, field.TypeTime)
	}
	if _u.mutation.ClientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   shipment.ClientTable,
			Columns: []string{shipment.ClientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   shipment.ClientTable,
			Columns: []string{shipment.ClientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{shipment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ShipmentUpdateOne is the builder for updating a single Shipment entity.
type ShipmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ShipmentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ShipmentUpdateOne) SetUpdatedAt(v time.Time) *ShipmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDisplayID sets the "display_id" field.
func (_u *ShipmentUpdateOne) SetDisplayID(v string) *ShipmentUpdateOne {
	_u.mutation.SetDisplayID(v)
	return _u
}

// SetNillableDisplayID sets the "display_id" field if the given value is not nil.
func (_u *ShipmentUpdateOne) SetNillableDisplayID(v *string) *ShipmentUpdateOne {
	if v != nil {
		_u.SetDisplayID(*v)
	}
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *ShipmentUpdateOne) SetClientID(v uuid.UUID) *ShipmentUpdateOne {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *ShipmentUpdateOne) SetNillableClientID(v *uuid.UUID) *ShipmentUpdateOne {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetRecipientName sets the "recipient_name" field.
func (_u *ShipmentUpdateOne) SetRecipientName(v string) *ShipmentUpdateOne {
	_u.mutation.SetRecipientName(v)
	return _u
}

// SetNillableRecipientName sets the "recipient_name" field if the given value is not nil.
func (_u *ShipmentUpdateOne) SetNillableRecipientName(v *string) *ShipmentUpdateOne {
	if v != nil {
		_u.SetRecipientName(*v)
	}
	return _u
}

// SetRecipientPhone sets the "recipient_phone" field.
func (_u *ShipmentUpdateOne) SetRecipientPhone(v string) *ShipmentUpdateOne {
	_u.mutation.SetRecipientPhone(v)
	return _u
}

// SetNillableRecipientPhone sets the "recipient_phone" field if the given value is not nil.
func (_u *ShipmentUpdateOne) SetNillableRecipientPhone(v *string) *ShipmentUpdateOne {
	if v != nil {
		_u.SetRecipientPhone(*v)
	}
	return _u
}

// SetFromAddress sets the "from_address" field.
func (_u *ShipmentUpdateOne) SetFromAddress(v model.Address) *ShipmentUpdateOne {
	_u.mutation.SetFromAddress(v)
	return _u
}

// SetNillableFromAddress sets the "from_address" field if the given value is not nil.
func (_u *ShipmentUpdateOne) SetNillableFromAddress(v *model.Address) *ShipmentUpdateOne {
	if v != nil {
		_u.SetFromAddress(*v)
	}
	return _u
}

// SetToAddress sets the "to_address" field.
func (_u *ShipmentUpdateOne) SetToAddress(v model.Address) *ShipmentUpdateOne {
	_u.mutation.SetToAddress(v)
	return _u
}

// SetNillableToAddress sets the "to_address" field if the given value is not nil.
func (_u *ShipmentUpdateOne) SetNillableToAddress(v *model.Address) *ShipmentUpdateOne {
	if v != nil {
		_u.SetToAddress(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ShipmentUpdateOne) SetPriority(v shipment.Priority) *ShipmentUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ShipmentUpdateOne) SetNillablePriority(v *shipment.Priority) *ShipmentUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetPaymentMethod sets the "payment_method" field.
func (_u *ShipmentUpdateOne) SetPaymentMethod(v shipment.PaymentMethod) *ShipmentUpdateOne {
	_u.mutation.SetPaymentMethod(v)
	return _u
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_u *ShipmentUpdateOne) SetNillablePaymentMethod(v *shipment.PaymentMethod) *ShipmentUpdateOne {
	if v != nil {
		_u.SetPaymentMethod(*v)
	}
	return _u
}

// SetPackageValue sets the "package_value" field.
func (_u *ShipmentUpdateOne) SetPackageValue(v float64) *ShipmentUpdateOne {
	_u.mutation.ResetPackageValue()
	_u.mutation.SetPackageValue(v)
	return _u
}

// SetNillablePackageValue sets the "package_value" field if the given value is not nil.
func (_u *ShipmentUpdateOne) SetNillablePackageValue(v *float64) *ShipmentUpdateOne {
	if v != nil {
		_u.SetPackageValue(*v)
	}
	return _u
}

// AddPackageValue adds value to the "package_value" field.
func (_u *ShipmentUpdateOne) AddPackageValue(v float64) *ShipmentUpdateOne {
	_u.mutation.AddPackageValue(v)
	return _u
}

// SetAmountToCollect sets the "amount_to_collect" field.
func (_u *ShipmentUpdateOne) SetAmountToCollect(v float64) *ShipmentUpdateOne {
	_u.mutation.ResetAmountToCollect()
	_u.mutation.SetAmountToCollect(v)
	return _u
}

// SetNillableAmountToCollect sets the "amount_to_collect" field if the given value is not nil.
func (_u *ShipmentUpdateOne) SetNillableAmountToCollect(v *float64) *ShipmentUpdateOne {
	if v != nil {
		_u.SetAmountToCollect(*v)
	}
	return _u
}

// AddAmountToCollect adds value to the "amount_to_collect" field.
func (_u *ShipmentUpdateOne) AddAmountToCollect(v float64) *ShipmentUpdateOne {
	_u.mutation.AddAmountToCollect(v)
	return _u
}

// SetShippingFee sets the "shipping_fee" field.
func (_u *ShipmentUpdateOne) SetShippingFee(v float64) *ShipmentUpdateOne {
	_u.mutation.ResetShippingFee()
	_u.mutation.SetShippingFee(v)
	return _u
}

// SetNillableShippingFee sets the "shipping_fee" field if the given value is not nil.
func (_u *ShipmentUpdateOne) SetNillableShippingFee(v *float64) *ShipmentUpdateOne {
	if v != nil {
		_u.SetShippingFee(*v)
	}
	return _u
}

// AddShippingFee adds value to the "shipping_fee" field.
func (_u *ShipmentUpdateOne) AddShippingFee(v float64) *ShipmentUpdateOne {
	_u.mutation.AddShippingFee(v)
	return _u
}

// SetCourierCommission sets the "courier_commission" field.
func (_u *ShipmentUpdateOne) SetCourierCommission(v float64) *ShipmentUpdateOne {
	_u.mutation.ResetCourierCommission()
	_u.mutation.SetCourierCommission(v)
	return _u
}

// SetNillableCourierCommission sets the "courier_commission" field if the given value is not nil.
func (_u *ShipmentUpdateOne) SetNillableCourierCommission(v *float64) *ShipmentUpdateOne {
	if v != nil {
		_u.SetCourierCommission(*v)
	}
	return _u
}

// AddCourierCommission adds value to the "courier_commission" field.
func (_u *ShipmentUpdateOne) AddCourierCommission(v float64) *ShipmentUpdateOne {
	_u.mutation.AddCourierCommission(v)
	return _u
}

// SetPrice sets the "price" field.
func (_u *ShipmentUpdateOne) SetPrice(v float64) *ShipmentUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *ShipmentUpdateOne) SetNillablePrice(v *float64) *ShipmentUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *ShipmentUpdateOne) AddPrice(v float64) *ShipmentUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ShipmentUpdateOne) SetStatus(v shipment.Status) *ShipmentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ShipmentUpdateOne) SetNillableStatus(v *shipment.Status) *ShipmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStatusHistory sets the "status_history" field.
func (_u *ShipmentUpdateOne) SetStatusHistory(v []model.StatusEvent) *ShipmentUpdateOne {
	_u.mutation.SetStatusHistory(v)
	return _u
}

// AppendStatusHistory appends value to the "status_history" field.
func (_u *ShipmentUpdateOne) AppendStatusHistory(v []model.StatusEvent) *ShipmentUpdateOne {
	_u.mutation.AppendStatusHistory(v)
	return _u
}

// SetCourierID sets the "courier_id" field.
func (_u *ShipmentUpdateOne) SetCourierID(v uuid.UUID) *ShipmentUpdateOne {
	_u.mutation.SetCourierID(v)
	return _u
}

// SetNillableCourierID sets the "courier_id" field if the given value is not nil.
func (_u *ShipmentUpdateOne) SetNillableCourierID(v *uuid.UUID) *ShipmentUpdateOne {
	if v != nil {
		_u.SetCourierID(*v)
	}
	return _u
}

// ClearCourierID clears the value of the "courier_id" field.
func (_u *ShipmentUpdateOne) ClearCourierID() *ShipmentUpdateOne {
	_u.mutation.ClearCourierID()
	return _u
}

// SetPackagingLog sets the "packaging_log" field.
func (_u *ShipmentUpdateOne) SetPackagingLog(v []model.PackagingLine) *ShipmentUpdateOne {
	_u.mutation.SetPackagingLog(v)
	return _u
}

// AppendPackagingLog appends value to the "packaging_log" field.
func (_u *ShipmentUpdateOne) AppendPackagingLog(v []model.PackagingLine) *ShipmentUpdateOne {
	_u.mutation.AppendPackagingLog(v)
	return _u
}

// ClearPackagingLog clears the value of the "packaging_log" field.
func (_u *ShipmentUpdateOne) ClearPackagingLog() *ShipmentUpdateOne {
	_u.mutation.ClearPackagingLog()
	return _u
}

// SetPackagingNotes sets the "packaging_notes" field.
func (_u *ShipmentUpdateOne) SetPackagingNotes(v string) *ShipmentUpdateOne {
	_u.mutation.SetPackagingNotes(v)
	return _u
}

// SetNillablePackagingNotes sets the "packaging_notes" field if the given value is not nil.
func (_u *ShipmentUpdateOne) SetNillablePackagingNotes(v *string) *ShipmentUpdateOne {
	if v != nil {
		_u.SetPackagingNotes(*v)
	}
	return _u
}

// ClearPackagingNotes clears the value of the "packaging_notes" field.
func (_u *ShipmentUpdateOne) ClearPackagingNotes() *ShipmentUpdateOne {
	_u.mutation.ClearPackagingNotes()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *ShipmentUpdateOne) SetFailureReason(v string) *ShipmentUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *ShipmentUpdateOne) SetNillableFailureReason(v *string) *ShipmentUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *ShipmentUpdateOne) ClearFailureReason() *ShipmentUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetFailurePhoto sets the "failure_photo" field.
func (_u *ShipmentUpdateOne) SetFailurePhoto(v string) *ShipmentUpdateOne {
	_u.mutation.SetFailurePhoto(v)
	return _u
}

// SetNillableFailurePhoto sets the "failure_photo" field if the given value is not nil.
func (_u *ShipmentUpdateOne) SetNillableFailurePhoto(v *string) *ShipmentUpdateOne {
	if v != nil {
		_u.SetFailurePhoto(*v)
	}
	return _u
}

// ClearFailurePhoto clears the value of the "failure_photo" field.
func (_u *ShipmentUpdateOne) ClearFailurePhoto() *ShipmentUpdateOne {
	_u.mutation.ClearFailurePhoto()
	return _u
}

// SetDeliveredAt sets the "delivered_at" field.
func (_u *ShipmentUpdateOne) SetDeliveredAt(v time.Time) *ShipmentUpdateOne {
	_u.mutation.SetDeliveredAt(v)
	return _u
}

// SetNillableDeliveredAt sets the "delivered_at" field if the given value is not nil.
func (_u *ShipmentUpdateOne) SetNillableDeliveredAt(v *time.Time) *ShipmentUpdateOne {
	if v != nil {
		_u.SetDeliveredAt(*v)
	}
	return _u
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (_u *ShipmentUpdateOne) ClearDeliveredAt() *ShipmentUpdateOne {
	_u.mutation.ClearDeliveredAt()
	return _u
}

// SetClient sets the "client" edge to the User entity.
func (_u *ShipmentUpdateOne) SetClient(v *User) *ShipmentUpdateOne {
	return _u.SetClientID(v.ID)
}

// Mutation returns the ShipmentMutation object of the builder.
func (_u *ShipmentUpdateOne) Mutation() *ShipmentMutation {
	return _u.mutation
}

// ClearClient clears the "client" edge to the User entity.
func (_u *ShipmentUpdateOne) ClearClient() *ShipmentUpdateOne {
	_u.mutation.ClearClient()
	return _u
}

// Where appends a list predicates to the ShipmentUpdate builder.
func (_u *ShipmentUpdateOne) Where(ps ...predicate.Shipment) *ShipmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ShipmentUpdateOne) Select(field string, fields ...string) *ShipmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Shipment entity.
func (_u *ShipmentUpdateOne) Save(ctx context.Context) (*Shipment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ShipmentUpdateOne) SaveX(ctx context.Context) *Shipment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ShipmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ShipmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ShipmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := shipment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ShipmentUpdateOne) check() error {
	if v, ok := _u.mutation.DisplayID(); ok {
		if err := shipment.DisplayIDValidator(v); err != nil {
			return &ValidationError{Name: "display_id", err: fmt.Errorf(`repo: validator failed for field "Shipment.display_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RecipientName(); ok {
		if err := shipment.RecipientNameValidator(v); err != nil {
			return &ValidationError{Name: "recipient_name", err: fmt.Errorf(`repo: validator failed for field "Shipment.recipient_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RecipientPhone(); ok {
		if err := shipment.RecipientPhoneValidator(v); err != nil {
			return &ValidationError{Name: "recipient_phone", err: fmt.Errorf(`repo: validator failed for field "Shipment.recipient_phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := shipment.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`repo: validator failed for field "Shipment.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentMethod(); ok {
		if err := shipment.PaymentMethodValidator(v); err != nil {
			return &ValidationError{Name: "payment_method", err: fmt.Errorf(`repo: validator failed for field "Shipment.payment_method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := shipment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Shipment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PackagingNotes(); ok {
		if err := shipment.PackagingNotesValidator(v); err != nil {
			return &ValidationError{Name: "packaging_notes", err: fmt.Errorf(`repo: validator failed for field "Shipment.packaging_notes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailureReason(); ok {
		if err := shipment.FailureReasonValidator(v); err != nil {
			return &ValidationError{Name: "failure_reason", err: fmt.Errorf(`repo: validator failed for field "Shipment.failure_reason": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailurePhoto(); ok {
		if err := shipment.FailurePhotoValidator(v); err != nil {
			return &ValidationError{Name: "failure_photo", err: fmt.Errorf(`repo: validator failed for field "Shipment.failure_photo": %w`, err)}
		}
	}
	if _u.mutation.ClientCleared() && len(_u.mutation.ClientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Shipment.client"`)
	}
	return nil
}

func (_u *ShipmentUpdateOne) sqlSave(ctx context.Context) (_node *Shipment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(shipment.Table, shipment.Columns, sqlgraph.NewFieldSpec(shipment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Shipment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, shipment.FieldID)
		for _, f := range fields {
			if !shipment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != shipment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(shipment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DisplayID(); ok {
		_spec.SetField(shipment.FieldDisplayID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecipientName(); ok {
		_spec.SetField(shipment.FieldRecipientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecipientPhone(); ok {
		_spec.SetField(shipment.FieldRecipientPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromAddress(); ok {
		_spec.SetField(shipment.FieldFromAddress, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ToAddress(); ok {
		_spec.SetField(shipment.FieldToAddress, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(shipment.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PaymentMethod(); ok {
		_spec.SetField(shipment.FieldPaymentMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PackageValue(); ok {
		_spec.SetField(shipment.FieldPackageValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPackageValue(); ok {
		_spec.AddField(shipment.FieldPackageValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AmountToCollect(); ok {
		_spec.SetField(shipment.FieldAmountToCollect, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmountToCollect(); ok {
		_spec.AddField(shipment.FieldAmountToCollect, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ShippingFee(); ok {
		_spec.SetField(shipment.FieldShippingFee, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedShippingFee(); ok {
		_spec.AddField(shipment.FieldShippingFee, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CourierCommission(); ok {
		_spec.SetField(shipment.FieldCourierCommission, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCourierCommission(); ok {
		_spec.AddField(shipment.FieldCourierCommission, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(shipment.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(shipment.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(shipment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StatusHistory(); ok {
		_spec.SetField(shipment.FieldStatusHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStatusHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, shipment.FieldStatusHistory, value)
		})
	}
	if value, ok := _u.mutation.CourierID(); ok {
		_spec.SetField(shipment.FieldCourierID, field.TypeUUID, value)
	}
	if _u.mutation.CourierIDCleared() {
		_spec.ClearField(shipment.FieldCourierID, field.TypeUUID)
	}
	if value, ok := _u.mutation.PackagingLog(); ok {
		_spec.SetField(shipment.FieldPackagingLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPackagingLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, shipment.FieldPackagingLog, value)
		})
	}
	if _u.mutation.PackagingLogCleared() {
		_spec.ClearField(shipment.FieldPackagingLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.PackagingNotes(); ok {
		_spec.SetField(shipment.FieldPackagingNotes, field.TypeString, value)
	}
	if _u.mutation.PackagingNotesCleared() {
		_spec.ClearField(shipment.FieldPackagingNotes, field.TypeString)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(shipment.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(shipment.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.FailurePhoto(); ok {
		_spec.SetField(shipment.FieldFailurePhoto, field.TypeString, value)
	}
	if _u.mutation.FailurePhotoCleared() {
		_spec.ClearField(shipment.FieldFailurePhoto, field.TypeString)
	}
	if value, ok := _u.mutation.DeliveredAt(); ok {
		_spec.SetField(shipment.FieldDeliveredAt, field.TypeTime, value)
	}
	if _u.mutation.DeliveredAtCleared() {
		_spec.ClearField(shipment.FieldDeliveredAt, field.TypeTime)
	}
	if _u.mutation.ClientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   shipment.ClientTable,
			Columns: []string{shipment.ClientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   shipment.ClientTable,
			Columns: []string{shipment.ClientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Shipment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{shipment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
