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
	"github.com/karimsaad/wasel_backend/internal/repo/tiersetting"
)

// TierSettingCreate is the builder for creating a TierSetting entity.
type TierSettingCreate struct {
	config
	mutation *TierSettingMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *TierSettingCreate) SetCreatedAt(v time.Time) *TierSettingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TierSettingCreate) SetNillableCreatedAt(v *time.Time) *TierSettingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TierSettingCreate) SetUpdatedAt(v time.Time) *TierSettingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TierSettingCreate) SetNillableUpdatedAt(v *time.Time) *TierSettingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTier sets the "tier" field.
func (_c *TierSettingCreate) SetTier(v tiersetting.Tier) *TierSettingCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetMinShipments sets the "min_shipments" field.
func (_c *TierSettingCreate) SetMinShipments(v int) *TierSettingCreate {
	_c.mutation.SetMinShipments(v)
	return _c
}

// SetDiscountPercent sets the "discount_percent" field.
func (_c *TierSettingCreate) SetDiscountPercent(v float64) *TierSettingCreate {
	_c.mutation.SetDiscountPercent(v)
	return _c
}

// SetID sets the "id" field.
func (_c *TierSettingCreate) SetID(v uuid.UUID) *TierSettingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TierSettingCreate) SetNillableID(v *uuid.UUID) *TierSettingCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TierSettingMutation object of the builder.
func (_c *TierSettingCreate) Mutation() *TierSettingMutation {
	return _c.mutation
}

// Save creates the TierSetting in the database.
func (_c *TierSettingCreate) Save(ctx context.Context) (*TierSetting, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TierSettingCreate) SaveX(ctx context.Context) *TierSetting {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TierSettingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TierSettingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TierSettingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tiersetting.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := tiersetting.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := tiersetting.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TierSettingCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "TierSetting.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "TierSetting.updated_at"`)}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`repo: missing required field "TierSetting.tier"`)}
	}
	if v, ok := _c.mutation.Tier(); ok {
		if err := tiersetting.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`repo: validator failed for field "TierSetting.tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MinShipments(); !ok {
		return &ValidationError{Name: "min_shipments", err: errors.New(`repo: missing required field "TierSetting.min_shipments"`)}
	}
	if v, ok := _c.mutation.MinShipments(); ok {
		if err := tiersetting.MinShipmentsValidator(v); err != nil {
			return &ValidationError{Name: "min_shipments", err: fmt.Errorf(`repo: validator failed for field "TierSetting.min_shipments": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DiscountPercent(); !ok {
		return &ValidationError{Name: "discount_percent", err: errors.New(`repo: missing required field "TierSetting.discount_percent"`)}
	}
	return nil
}

func (_c *TierSettingCreate) sqlSave(ctx context.Context) (*TierSetting, error) {
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

func (_c *TierSettingCreate) createSpec() (*TierSetting, *sqlgraph.CreateSpec) {
	var (
		_node = &TierSetting{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tiersetting.Table, sqlgraph.NewFieldSpec(tiersetting.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tiersetting.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(tiersetting.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(tiersetting.FieldTier, field.TypeEnum, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.MinShipments(); ok {
		_spec.SetField(tiersetting.FieldMinShipments, field.TypeInt, value)
		_node.MinShipments = value
	}
	if value, ok := _c.mutation.DiscountPercent(); ok {
		_spec.SetField(tiersetting.FieldDiscountPercent, field.TypeFloat64, value)
		_node.DiscountPercent = value
	}
	return _node, _spec
}

// TierSettingCreateBulk is the builder for creating many TierSetting entities in bulk.
type TierSettingCreateBulk struct {
	config
	err      error
	builders []*TierSettingCreate
}

// Save creates the TierSetting entities in the database.
func (_c *TierSettingCreateBulk) Save(ctx context.Context) ([]*TierSetting, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TierSetting, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TierSettingMutation)
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
func (_c *TierSettingCreateBulk) SaveX(ctx context.Context) []*TierSetting {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TierSettingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TierSettingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
