// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/karimsaad/wasel_backend/internal/model"
	"github.com/karimsaad/wasel_backend/internal/repo/shipment"
	"github.com/karimsaad/wasel_backend/internal/repo/user"
)

// ShipmentCreate is the builder for creating a Shipment entity.
type ShipmentCreate struct {
	config
	mutation *ShipmentMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ShipmentCreate) SetCreatedAt(v time.Time) *ShipmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ShipmentCreate) SetNillableCreatedAt(v *time.Time) *ShipmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ShipmentCreate) SetUpdatedAt(v time.Time) *ShipmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ShipmentCreate) SetNillableUpdatedAt(v *time.Time) *ShipmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDisplayID sets the "display_id" field.
func (_c *ShipmentCreate) SetDisplayID(v string) *ShipmentCreate {
	_c.mutation.SetDisplayID(v)
	return _c
}

// SetClientID sets the "client_id" field.
func (_c *ShipmentCreate) SetClientID(v uuid.UUID) *ShipmentCreate {
	_c.mutation.SetClientID(v)
	return _c
}

// SetRecipientName sets the "recipient_name" field.
func (_c *ShipmentCreate) SetRecipientName(v string) *ShipmentCreate {
	_c.mutation.SetRecipientName(v)
	return _c
}

// SetRecipientPhone sets the "recipient_phone" field.
func (_c *ShipmentCreate) SetRecipientPhone(v string) *ShipmentCreate {
	_c.mutation.SetRecipientPhone(v)
	return _c
}

// SetFromAddress sets the "from_address" field.
func (_c *ShipmentCreate) SetFromAddress(v model.Address) *ShipmentCreate {
	_c.mutation.SetFromAddress(v)
	return _c
}

// SetToAddress sets the "to_address" field.
func (_c *ShipmentCreate) SetToAddress(v model.Address) *ShipmentCreate {
	_c.mutation.SetToAddress(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *ShipmentCreate) SetPriority(v shipment.Priority) *ShipmentCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *ShipmentCreate) SetNillablePriority(v *shipment.Priority) *ShipmentCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetPaymentMethod sets the "payment_method" field.
func (_c *ShipmentCreate) SetPaymentMethod(v shipment.PaymentMethod) *ShipmentCreate {
	_c.mutation.SetPaymentMethod(v)
	return _c
}

// SetPackageValue sets the "package_value" field.
func (_c *ShipmentCreate) SetPackageValue(v float64) *ShipmentCreate {
	_c.mutation.SetPackageValue(v)
	return _c
}

// SetNillablePackageValue sets the "package_value" field if the given value is not nil.
func (_c *ShipmentCreate) SetNillablePackageValue(v *float64) *ShipmentCreate {
	if v != nil {
		_c.SetPackageValue(*v)
	}
	return _c
}

// SetAmountToCollect sets the "amount_to_collect" field.
func (_c *ShipmentCreate) SetAmountToCollect(v float64) *ShipmentCreate {
	_c.mutation.SetAmountToCollect(v)
	return _c
}

// SetNillableAmountToCollect sets the "amount_to_collect" field if the given value is not nil.
func (_c *ShipmentCreate) SetNillableAmountToCollect(v *float64) *ShipmentCreate {
	if v != nil {
		_c.SetAmountToCollect(*v)
	}
	return _c
}

// SetShippingFee sets the "shipping_fee" field.
func (_c *ShipmentCreate) SetShippingFee(v float64) *ShipmentCreate {
	_c.mutation.SetShippingFee(v)
	return _c
}

// SetNillableShippingFee sets the "shipping_fee" field if the given value is not nil.
func (_c *ShipmentCreate) SetNillableShippingFee(v *float64) *ShipmentCreate {
	if v != nil {
		_c.SetShippingFee(*v)
	}
	return _c
}

// SetCourierCommission sets the "courier_commission" field.
func (_c *ShipmentCreate) SetCourierCommission(v float64) *ShipmentCreate {
	_c.mutation.SetCourierCommission(v)
	return _c
}

// SetNillableCourierCommission sets the "courier_commission" field if the given value is not nil.
func (_c *ShipmentCreate) SetNillableCourierCommission(v *float64) *ShipmentCreate {
	if v != nil {
		_c.SetCourierCommission(*v)
	}
	return _c
}

// SetPrice sets the "price" field.
func (_c *ShipmentCreate) SetPrice(v float64) *ShipmentCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_c *ShipmentCreate) SetNillablePrice(v *float64) *ShipmentCreate {
	if v != nil {
		_c.SetPrice(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ShipmentCreate) SetStatus(v shipment.Status) *ShipmentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ShipmentCreate) SetNillableStatus(v *shipment.Status) *ShipmentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStatusHistory sets the "status_history" field.
func (_c *ShipmentCreate) SetStatusHistory(v []model.StatusEvent) *ShipmentCreate {
	_c.mutation.SetStatusHistory(v)
	return _c
}

// SetCourierID sets the "courier_id" field.
func (_c *ShipmentCreate) SetCourierID(v uuid.UUID) *ShipmentCreate {
	_c.mutation.SetCourierID(v)
	return _c
}

// SetNillableCourierID sets the "courier_id" field if the given value is not nil.
func (_c *ShipmentCreate) SetNillableCourierID(v *uuid.UUID) *ShipmentCreate {
	if v != nil {
		_c.SetCourierID(*v)
	}
	return _c
}

// SetPackagingLog sets the "packaging_log" field.
func (_c *ShipmentCreate) SetPackagingLog(v []model.PackagingLine) *ShipmentCreate {
	_c.mutation.SetPackagingLog(v)
	return _c
}

// SetPackagingNotes sets the "packaging_notes" field.
func (_c *ShipmentCreate) SetPackagingNotes(v string) *ShipmentCreate {
	_c.mutation.SetPackagingNotes(v)
	return _c
}

// SetNillablePackagingNotes sets the "packaging_notes" field if the given value is not nil.
func (_c *ShipmentCreate) SetNillablePackagingNotes(v *string) *ShipmentCreate {
	if v != nil {
		_c.SetPackagingNotes(*v)
	}
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *ShipmentCreate) SetFailureReason(v string) *ShipmentCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *ShipmentCreate) SetNillableFailureReason(v *string) *ShipmentCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetFailurePhoto sets the "failure_photo" field.
func (_c *ShipmentCreate) SetFailurePhoto(v string) *ShipmentCreate {
	_c.mutation.SetFailurePhoto(v)
	return _c
}

// SetNillableFailurePhoto sets the "failure_photo" field if the given value is not nil.
func (_c *ShipmentCreate) SetNillableFailurePhoto(v *string) *ShipmentCreate {
	if v != nil {
		_c.SetFailurePhoto(*v)
	}
	return _c
}

// SetDeliveredAt sets the "delivered_at" field.
func (_c *ShipmentCreate) SetDeliveredAt(v time.Time) *ShipmentCreate {
	_c.mutation.SetDeliveredAt(v)
	return _c
}

// SetNillableDeliveredAt sets the "delivered_at" field if the given value is not nil.
func (_c *ShipmentCreate) SetNillableDeliveredAt(v *time.Time) *ShipmentCreate {
	if v != nil {
		_c.SetDeliveredAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ShipmentCreate) SetID(v uuid.UUID) *ShipmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ShipmentCreate) SetNillableID(v *uuid.UUID) *ShipmentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetClient sets the "client" edge to the User entity.
func (_c *ShipmentCreate) SetClient(v *User) *ShipmentCreate {
	return _c.SetClientID(v.ID)
}

// Mutation returns the ShipmentMutation object of the builder.
func (_c *ShipmentCreate) Mutation() *ShipmentMutation {
	return _c.mutation
}

// Save creates the Shipment in the database.
func (_c *ShipmentCreate) Save(ctx context.Context) (*Shipment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ShipmentCreate) SaveX(ctx context.Context) *Shipment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ShipmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ShipmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ShipmentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := shipment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := shipment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := shipment.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.PackageValue(); !ok {
		v := shipment.DefaultPackageValue
		_c.mutation.SetPackageValue(v)
	}
	if _, ok := _c.mutation.AmountToCollect(); !ok {
		v := shipment.DefaultAmountToCollect
		_c.mutation.SetAmountToCollect(v)
	}
	if _, ok := _c.mutation.ShippingFee(); !ok {
		v := shipment.DefaultShippingFee
		_c.mutation.SetShippingFee(v)
	}
	if _, ok := _c.mutation.CourierCommission(); !ok {
		v := shipment.DefaultCourierCommission
		_c.mutation.SetCourierCommission(v)
	}
	if _, ok := _c.mutation.Price(); !ok {
		v := shipment.DefaultPrice
		_c.mutation.SetPrice(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := shipment.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := shipment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ShipmentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Shipment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Shipment.updated_at"`)}
	}
	if _, ok := _c.mutation.DisplayID(); !ok {
		return &ValidationError{Name: "display_id", err: errors.New(`repo: missing required field "Shipment.display_id"`)}
	}
	if v, ok := _c.mutation.DisplayID(); ok {
		if err := shipment.DisplayIDValidator(v); err != nil {
			return &ValidationError{Name: "display_id", err: fmt.Errorf(`repo: validator failed for field "Shipment.display_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ClientID(); !ok {
		return &ValidationError{Name: "client_id", err: errors.New(`repo: missing required field "Shipment.client_id"`)}
	}
	if _, ok := _c.mutation.RecipientName(); !ok {
		return &ValidationError{Name: "recipient_name", err: errors.New(`repo: missing required field "Shipment.recipient_name"`)}
	}
	if v, ok := _c.mutation.RecipientName(); ok {
		if err := shipment.RecipientNameValidator(v); err != nil {
			return &ValidationError{Name: "recipient_name", err: fmt.Errorf(`repo: validator failed for field "Shipment.recipient_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecipientPhone(); !ok {
		return &ValidationError{Name: "recipient_phone", err: errors.New(`repo: missing required field "Shipment.recipient_phone"`)}
	}
	if v, ok := _c.mutation.RecipientPhone(); ok {
		if err := shipment.RecipientPhoneValidator(v); err != nil {
			return &ValidationError{Name: "recipient_phone", err: fmt.Errorf(`repo: validator failed for field "Shipment.recipient_phone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FromAddress(); !ok {
		return &ValidationError{Name: "from_address", err: errors.New(`repo: missing required field "Shipment.from_address"`)}
	}
	if _, ok := _c.mutation.ToAddress(); !ok {
		return &ValidationError{Name: "to_address", err: errors.New(`repo: missing required field "Shipment.to_address"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`repo: missing required field "Shipment.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := shipment.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`repo: validator failed for field "Shipment.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PaymentMethod(); !ok {
		return &ValidationError{Name: "payment_method", err: errors.New(`repo: missing required field "Shipment.payment_method"`)}
	}
	if v, ok := _c.mutation.PaymentMethod(); ok {
		if err := shipment.PaymentMethodValidator(v); err != nil {
			return &ValidationError{Name: "payment_method", err: fmt.Errorf(`repo: validator failed for field "Shipment.payment_method": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PackageValue(); !ok {
		return &ValidationError{Name: "package_value", err: errors.New(`repo: missing required field "Shipment.package_value"`)}
	}
	if _, ok := _c.mutation.AmountToCollect(); !ok {
		return &ValidationError{Name: "amount_to_collect", err: errors.New(`repo: missing required field "Shipment.amount_to_collect"`)}
	}
	if _, ok := _c.mutation.ShippingFee(); !ok {
		return &ValidationError{Name: "shipping_fee", err: errors.New(`repo: missing required field "Shipment.shipping_fee"`)}
	}
	if _, ok := _c.mutation.CourierCommission(); !ok {
		return &ValidationError{Name: "courier_commission", err: errors.New(`repo: missing required field "Shipment.courier_commission"`)}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`repo: missing required field "Shipment.price"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Shipment.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := shipment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Shipment.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StatusHistory(); !ok {
		return &ValidationError{Name: "status_history", err: errors.New(`repo: missing required field "Shipment.status_history"`)}
	}
	if v, ok := _c.mutation.PackagingNotes(); ok {
		if err := shipment.PackagingNotesValidator(v); err != nil {
			return &ValidationError{Name: "packaging_notes", err: fmt.Errorf(`repo: validator failed for field "Shipment.packaging_notes": %w`, err)}
		}
	}
	if v, ok := _c.mutation.FailureReason(); ok {
		if err := shipment.FailureReasonValidator(v); err != nil {
			return &ValidationError{Name: "failure_reason", err: fmt.Errorf(`repo: validator failed for field "Shipment.failure_reason": %w`, err)}
		}
	}
	if v, ok := _c.mutation.FailurePhoto(); ok {
		if err := shipment.FailurePhotoValidator(v); err != nil {
			return &ValidationError{Name: "failure_photo", err: fmt.Errorf(`repo: validator failed for field "Shipment.failure_photo": %w`, err)}
		}
	}
	if len(_c.mutation.ClientIDs()) == 0 {
		return &ValidationError{Name: "client", err: errors.New(`repo: missing required edge "Shipment.client"`)}
	}
	return nil
}

func (_c *ShipmentCreate) sqlSave(ctx context.Context) (*Shipment, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ShipmentCreate) createSpec() (*Shipment, *sqlgraph.CreateSpec) {
	var (
		_node = &Shipment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(shipment.Table, sqlgraph.NewFieldSpec(shipment.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(shipment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(shipment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DisplayID(); ok {
		_spec.SetField(shipment.FieldDisplayID, field.TypeString, value)
		_node.DisplayID = value
	}
	if value, ok := _c.mutation.RecipientName(); ok {
		_spec.SetField(shipment.FieldRecipientName, field.TypeString, value)
		_node.RecipientName = value
	}
	if value, ok := _c.mutation.RecipientPhone(); ok {
		_spec.SetField(shipment.FieldRecipientPhone, field.TypeString, value)
		_node.RecipientPhone = value
	}
	if value, ok := _c.mutation.FromAddress(); ok {
		_spec.SetField(shipment.FieldFromAddress, field.TypeJSON, value)
		_node.FromAddress = value
	}
	if value, ok := _c.mutation.ToAddress(); ok {
		_spec.SetField(shipment.FieldToAddress, field.TypeJSON, value)
		_node.ToAddress = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(shipment.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.PaymentMethod(); ok {
		_spec.SetField(shipment.FieldPaymentMethod, field.TypeEnum, value)
		_node.PaymentMethod = value
	}
	if value, ok := _c.mutation.PackageValue(); ok {
		_spec.SetField(shipment.FieldPackageValue, field.TypeFloat64, value)
		_node.PackageValue = value
	}
	if value, ok := _c.mutation.AmountToCollect(); ok {
		_spec.SetField(shipment.FieldAmountToCollect, field.TypeFloat64, value)
		_node.AmountToCollect = value
	}
	if value, ok := _c.mutation.ShippingFee(); ok {
		_spec.SetField(shipment.FieldShippingFee, field.TypeFloat64, value)
		_node.ShippingFee = value
	}
	if value, ok := _c.mutation.CourierCommission(); ok {
		_spec.SetField(shipment.FieldCourierCommission, field.TypeFloat64, value)
		_node.CourierCommission = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(shipment.FieldPrice, field.TypeFloat64, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(shipment.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StatusHistory(); ok {
		_spec.SetField(shipment.FieldStatusHistory, field.TypeJSON, value)
		_node.StatusHistory = value
	}
	if value, ok := _c.mutation.CourierID(); ok {
		_spec.SetField(shipment.FieldCourierID, field.TypeUUID, value)
		_node.CourierID = &value
	}
	if value, ok := _c.mutation.PackagingLog(); ok {
		_spec.SetField(shipment.FieldPackagingLog, field.TypeJSON, value)
		_node.PackagingLog = value
	}
	if value, ok := _c.mutation.PackagingNotes(); ok {
		_spec.SetField(shipment.FieldPackagingNotes, field.TypeString, value)
		_node.PackagingNotes = &value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(shipment.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = &value
	}
	if value, ok := _c.mutation.FailurePhoto(); ok {
		_spec.SetField(shipment.FieldFailurePhoto, field.TypeString, value)
		_node.FailurePhoto = &value
	}
	if value, ok := _c.mutation.DeliveredAt(); ok {
		_spec.SetField(shipment.FieldDeliveredAt, field.TypeTime, value)
		_node.DeliveredAt = &value
	}
	if nodes := _c.mutation.ClientIDs(); len(nodes) > 0 {
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
		_node.ClientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ShipmentCreateBulk is the builder for creating many Shipment entities in bulk.
type ShipmentCreateBulk struct {
	config
	err      error
	builders []*ShipmentCreate
}

// Save creates the Shipment entities in the database.
func (_c *ShipmentCreateBulk) Save(ctx context.Context) ([]*Shipment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Shipment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ShipmentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ShipmentCreateBulk) SaveX(ctx context.Context) []*Shipment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ShipmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ShipmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
