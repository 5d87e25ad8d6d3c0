// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/karimsaad/wasel_backend/internal/repo/predicate"
	"github.com/karimsaad/wasel_backend/internal/repo/tiersetting"
)

// TierSettingUpdate is the builder for updating TierSetting entities.
type TierSettingUpdate struct {
	config
	hooks    []Hook
	mutation *TierSettingMutation
}

// Where appends a list predicates to the TierSettingUpdate builder.
func (_u *TierSettingUpdate) Where(ps ...predicate.TierSetting) *TierSettingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TierSettingUpdate) SetUpdatedAt(v time.Time) *TierSettingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTier sets the "tier" field.
func (_u *TierSettingUpdate) SetTier(v tiersetting.Tier) *TierSettingUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *TierSettingUpdate) SetNillableTier(v *tiersetting.Tier) *TierSettingUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetMinShipments sets the "min_shipments" field.
func (_u *TierSettingUpdate) SetMinShipments(v int) *TierSettingUpdate {
	_u.mutation.ResetMinShipments()
	_u.mutation.SetMinShipments(v)
	return _u
}

// SetNillableMinShipments sets the "min_shipments" field if the given value is not nil.
func (_u *TierSettingUpdate) SetNillableMinShipments(v *int) *TierSettingUpdate {
	if v != nil {
		_u.SetMinShipments(*v)
	}
	return _u
}

// AddMinShipments adds value to the "min_shipments" field.
func (_u *TierSettingUpdate) AddMinShipments(v int) *TierSettingUpdate {
	_u.mutation.AddMinShipments(v)
	return _u
}

// SetDiscountPercent sets the "discount_percent" field.
func (_u *TierSettingUpdate) SetDiscountPercent(v float64) *TierSettingUpdate {
	_u.mutation.ResetDiscountPercent()
	_u.mutation.SetDiscountPercent(v)
	return _u
}

// SetNillableDiscountPercent sets the "discount_percent" field if the given value is not nil.
func (_u *TierSettingUpdate) SetNillableDiscountPercent(v *float64) *TierSettingUpdate {
	if v != nil {
		_u.SetDiscountPercent(*v)
	}
	return _u
}

// AddDiscountPercent adds value to the "discount_percent" field.
func (_u *TierSettingUpdate) AddDiscountPercent(v float64) *TierSettingUpdate {
	_u.mutation.AddDiscountPercent(v)
	return _u
}

// Mutation returns the TierSettingMutation object of the builder.
func (_u *TierSettingUpdate) Mutation() *TierSettingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TierSettingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TierSettingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TierSettingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TierSettingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TierSettingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tiersetting.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TierSettingUpdate) check() error {
	if v, ok := _u.mutation.Tier(); ok {
		if err := tiersetting.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`repo: validator failed for field "TierSetting.tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MinShipments(); ok {
		if err := tiersetting.MinShipmentsValidator(v); err != nil {
			return &ValidationError{Name: "min_shipments", err: fmt.Errorf(`repo: validator failed for field "TierSetting.min_shipments": %w`, err)}
		}
	}
	return nil
}

func (_u *TierSettingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tiersetting.Table, tiersetting.Columns, sqlgraph.NewFieldSpec(tiersetting.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tiersetting.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(tiersetting.FieldTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MinShipments(); ok {
		_spec.SetField(tiersetting.FieldMinShipments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinShipments(); ok {
		_spec.AddField(tiersetting.FieldMinShipments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DiscountPercent(); ok {
		_spec.SetField(tiersetting.FieldDiscountPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDiscountPercent(); ok {
		_spec.AddField(tiersetting.FieldDiscountPercent, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tiersetting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TierSettingUpdateOne is the builder for updating a single TierSetting entity.
type TierSettingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TierSettingMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TierSettingUpdateOne) SetUpdatedAt(v time.Time) *TierSettingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTier sets the "tier" field.
func (_u *TierSettingUpdateOne) SetTier(v tiersetting.Tier) *TierSettingUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *TierSettingUpdateOne) SetNillableTier(v *tiersetting.Tier) *TierSettingUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetMinShipments sets the "min_shipments" field.
func (_u *TierSettingUpdateOne) SetMinShipments(v int) *TierSettingUpdateOne {
	_u.mutation.ResetMinShipments()
	_u.mutation.SetMinShipments(v)
	return _u
}

// SetNillableMinShipments sets the "min_shipments" field if the given value is not nil.
func (_u *TierSettingUpdateOne) SetNillableMinShipments(v *int) *TierSettingUpdateOne {
	if v != nil {
		_u.SetMinShipments(*v)
	}
	return _u
}

// AddMinShipments adds value to the "min_shipments" field.
func (_u *TierSettingUpdateOne) AddMinShipments(v int) *TierSettingUpdateOne {
	_u.mutation.AddMinShipments(v)
	return _u
}

// SetDiscountPercent sets the "discount_percent" field.
func (_u *TierSettingUpdateOne) SetDiscountPercent(v float64) *TierSettingUpdateOne {
	_u.mutation.ResetDiscountPercent()
	_u.mutation.SetDiscountPercent(v)
	return _u
}

// SetNillableDiscountPercent sets the "discount_percent" field if the given value is not nil.
func (_u *TierSettingUpdateOne) SetNillableDiscountPercent(v *float64) *TierSettingUpdateOne {
	if v != nil {
		_u.SetDiscountPercent(*v)
	}
	return _u
}

// AddDiscountPercent adds value to the "discount_percent" field.
func (_u *TierSettingUpdateOne) AddDiscountPercent(v float64) *TierSettingUpdateOne {
	_u.mutation.AddDiscountPercent(v)
	return _u
}

// Mutation returns the TierSettingMutation object of the builder.
func (_u *TierSettingUpdateOne) Mutation() *TierSettingMutation {
	return _u.mutation
}

// Where appends a list predicates to the TierSettingUpdate builder.
func (_u *TierSettingUpdateOne) Where(ps ...predicate.TierSetting) *TierSettingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TierSettingUpdateOne) Select(field string, fields ...string) *TierSettingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TierSetting entity.
func (_u *TierSettingUpdateOne) Save(ctx context.Context) (*TierSetting, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TierSettingUpdateOne) SaveX(ctx context.Context) *TierSetting {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TierSettingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TierSettingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TierSettingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tiersetting.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TierSettingUpdateOne) check() error {
	if v, ok := _u.mutation.Tier(); ok {
		if err := tiersetting.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`repo: validator failed for field "TierSetting.tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MinShipments(); ok {
		if err := tiersetting.MinShipmentsValidator(v); err != nil {
			return &ValidationError{Name: "min_shipments", err: fmt.Errorf(`repo: validator failed for field "TierSetting.min_shipments": %w`, err)}
		}
	}
	return nil
}

func (_u *TierSettingUpdateOne) sqlSave(ctx context.Context) (_node *TierSetting, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tiersetting.Table, tiersetting.Columns, sqlgraph.NewFieldSpec(tiersetting.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "TierSetting.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tiersetting.FieldID)
		for _, f := range fields {
			if !tiersetting.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != tiersetting.FieldID {
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
		_spec.SetField(tiersetting.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(tiersetting.FieldTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MinShipments(); ok {
		_spec.SetField(tiersetting.FieldMinShipments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinShipments(); ok {
		_spec.AddField(tiersetting.FieldMinShipments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DiscountPercent(); ok {
		_spec.SetField(tiersetting.FieldDiscountPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDiscountPercent(); ok {
		_spec.AddField(tiersetting.FieldDiscountPercent, field.TypeFloat64, value)
	}
	_node = &TierSetting{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tiersetting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
