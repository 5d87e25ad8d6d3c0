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
	"github.com/karimsaad/wasel_backend/internal/repo/courierstats"
	"github.com/karimsaad/wasel_backend/internal/repo/user"
)

// CourierStatsCreate is the builder for creating a CourierStats entity.
type CourierStatsCreate struct {
	config
	mutation *CourierStatsMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *CourierStatsCreate) SetCreatedAt(v time.Time) *CourierStatsCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CourierStatsCreate) SetNillableCreatedAt(v *time.Time) *CourierStatsCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CourierStatsCreate) SetUpdatedAt(v time.Time) *CourierStatsCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CourierStatsCreate) SetNillableUpdatedAt(v *time.Time) *CourierStatsCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCourierID sets the "courier_id" field.
func (_c *CourierStatsCreate) SetCourierID(v uuid.UUID) *CourierStatsCreate {
	_c.mutation.SetCourierID(v)
	return _c
}

// SetCommissionScheme sets the "commission_scheme" field.
func (_c *CourierStatsCreate) SetCommissionScheme(v courierstats.CommissionScheme) *CourierStatsCreate {
	_c.mutation.SetCommissionScheme(v)
	return _c
}

// SetNillableCommissionScheme sets the "commission_scheme" field if the given value is not nil.
func (_c *CourierStatsCreate) SetNillableCommissionScheme(v *courierstats.CommissionScheme) *CourierStatsCreate {
	if v != nil {
		_c.SetCommissionScheme(*v)
	}
	return _c
}

// SetCommissionValue sets the "commission_value" field.
func (_c *CourierStatsCreate) SetCommissionValue(v float64) *CourierStatsCreate {
	_c.mutation.SetCommissionValue(v)
	return _c
}

// SetNillableCommissionValue sets the "commission_value" field if the given value is not nil.
func (_c *CourierStatsCreate) SetNillableCommissionValue(v *float64) *CourierStatsCreate {
	if v != nil {
		_c.SetCommissionValue(*v)
	}
	return _c
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_c *CourierStatsCreate) SetConsecutiveFailures(v int) *CourierStatsCreate {
	_c.mutation.SetConsecutiveFailures(v)
	return _c
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_c *CourierStatsCreate) SetNillableConsecutiveFailures(v *int) *CourierStatsCreate {
	if v != nil {
		_c.SetConsecutiveFailures(*v)
	}
	return _c
}

// SetRestricted sets the "restricted" field.
func (_c *CourierStatsCreate) SetRestricted(v bool) *CourierStatsCreate {
	_c.mutation.SetRestricted(v)
	return _c
}

// SetNillableRestricted sets the "restricted" field if the given value is not nil.
func (_c *CourierStatsCreate) SetNillableRestricted(v *bool) *CourierStatsCreate {
	if v != nil {
		_c.SetRestricted(*v)
	}
	return _c
}

// SetRestrictionReason sets the "restriction_reason" field.
func (_c *CourierStatsCreate) SetRestrictionReason(v string) *CourierStatsCreate {
	_c.mutation.SetRestrictionReason(v)
	return _c
}

// SetNillableRestrictionReason sets the "restriction_reason" field if the given value is not nil.
func (_c *CourierStatsCreate) SetNillableRestrictionReason(v *string) *CourierStatsCreate {
	if v != nil {
		_c.SetRestrictionReason(*v)
	}
	return _c
}

// SetCurrentBalance sets the "current_balance" field.
func (_c *CourierStatsCreate) SetCurrentBalance(v float64) *CourierStatsCreate {
	_c.mutation.SetCurrentBalance(v)
	return _c
}

// SetNillableCurrentBalance sets the "current_balance" field if the given value is not nil.
func (_c *CourierStatsCreate) SetNillableCurrentBalance(v *float64) *CourierStatsCreate {
	if v != nil {
		_c.SetCurrentBalance(*v)
	}
	return _c
}

// SetTotalEarnings sets the "total_earnings" field.
func (_c *CourierStatsCreate) SetTotalEarnings(v float64) *CourierStatsCreate {
	_c.mutation.SetTotalEarnings(v)
	return _c
}

// SetNillableTotalEarnings sets the "total_earnings" field if the given value is not nil.
func (_c *CourierStatsCreate) SetNillableTotalEarnings(v *float64) *CourierStatsCreate {
	if v != nil {
		_c.SetTotalEarnings(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CourierStatsCreate) SetID(v uuid.UUID) *CourierStatsCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CourierStatsCreate) SetNillableID(v *uuid.UUID) *CourierStatsCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCourier sets the "courier" edge to the User entity.
func (_c *CourierStatsCreate) SetCourier(v *User) *CourierStatsCreate {
	return _c.SetCourierID(v.ID)
}

// Mutation returns the CourierStatsMutation object of the builder.
func (_c *CourierStatsCreate) Mutation() *CourierStatsMutation {
	return _c.mutation
}

// Save creates the CourierStats in the database.
func (_c *CourierStatsCreate) Save(ctx context.Context) (*CourierStats, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CourierStatsCreate) SaveX(ctx context.Context) *CourierStats {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourierStatsCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourierStatsCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CourierStatsCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := courierstats.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := courierstats.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.CommissionScheme(); !ok {
		v := courierstats.DefaultCommissionScheme
		_c.mutation.SetCommissionScheme(v)
	}
	if _, ok := _c.mutation.CommissionValue(); !ok {
		v := courierstats.DefaultCommissionValue
		_c.mutation.SetCommissionValue(v)
	}
	if _, ok := _c.mutation.ConsecutiveFailures(); !ok {
		v := courierstats.DefaultConsecutiveFailures
		_c.mutation.SetConsecutiveFailures(v)
	}
	if _, ok := _c.mutation.Restricted(); !ok {
		v := courierstats.DefaultRestricted
		_c.mutation.SetRestricted(v)
	}
	if _, ok := _c.mutation.CurrentBalance(); !ok {
		v := courierstats.DefaultCurrentBalance
		_c.mutation.SetCurrentBalance(v)
	}
	if _, ok := _c.mutation.TotalEarnings(); !ok {
		v := courierstats.DefaultTotalEarnings
		_c.mutation.SetTotalEarnings(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := courierstats.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CourierStatsCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "CourierStats.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "CourierStats.updated_at"`)}
	}
	if _, ok := _c.mutation.CourierID(); !ok {
		return &ValidationError{Name: "courier_id", err: errors.New(`repo: missing required field "CourierStats.courier_id"`)}
	}
	if _, ok := _c.mutation.CommissionScheme(); !ok {
		return &ValidationError{Name: "commission_scheme", err: errors.New(`repo: missing required field "CourierStats.commission_scheme"`)}
	}
	if v, ok := _c.mutation.CommissionScheme(); ok {
		if err := courierstats.CommissionSchemeValidator(v); err != nil {
			return &ValidationError{Name: "commission_scheme", err: fmt.Errorf(`repo: validator failed for field "CourierStats.commission_scheme": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CommissionValue(); !ok {
		return &ValidationError{Name: "commission_value", err: errors.New(`repo: missing required field "CourierStats.commission_value"`)}
	}
	if _, ok := _c.mutation.ConsecutiveFailures(); !ok {
		return &ValidationError{Name: "consecutive_failures", err: errors.New(`repo: missing required field "CourierStats.consecutive_failures"`)}
	}
	if v, ok := _c.mutation.ConsecutiveFailures(); ok {
		if err := courierstats.ConsecutiveFailuresValidator(v); err != nil {
			return &ValidationError{Name: "consecutive_failures", err: fmt.Errorf(`repo: validator failed for field "CourierStats.consecutive_failures": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Restricted(); !ok {
		return &ValidationError{Name: "restricted", err: errors.New(`repo: missing required field "CourierStats.restricted"`)}
	}
	if v, ok := _c.mutation.RestrictionReason(); ok {
		if err := courierstats.RestrictionReasonValidator(v); err != nil {
			return &ValidationError{Name: "restriction_reason", err: fmt.Errorf(`repo: validator failed for field "CourierStats.restriction_reason": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentBalance(); !ok {
		return &ValidationError{Name: "current_balance", err: errors.New(`repo: missing required field "CourierStats.current_balance"`)}
	}
	if _, ok := _c.mutation.TotalEarnings(); !ok {
		return &ValidationError{Name: "total_earnings", err: errors.New(`repo: missing required field "CourierStats.total_earnings"`)}
	}
	if len(_c.mutation.CourierIDs()) == 0 {
		return &ValidationError{Name: "courier", err: errors.New(`repo: missing required edge "CourierStats.courier"`)}
	}
	return nil
}

func (_c *CourierStatsCreate) sqlSave(ctx context.Context) (*CourierStats, error) {
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

func (_c *CourierStatsCreate) createSpec() (*CourierStats, *sqlgraph.CreateSpec) {
	var (
		_node = &CourierStats{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(courierstats.Table, sqlgraph.NewFieldSpec(courierstats.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(courierstats.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(courierstats.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CommissionScheme(); ok {
		_spec.SetField(courierstats.FieldCommissionScheme, field.TypeEnum, value)
		_node.CommissionScheme = value
	}
	if value, ok := _c.mutation.CommissionValue(); ok {
		_spec.SetField(courierstats.FieldCommissionValue, field.TypeFloat64, value)
		_node.CommissionValue = value
	}
	if value, ok := _c.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(courierstats.FieldConsecutiveFailures, field.TypeInt, value)
		_node.ConsecutiveFailures = value
	}
	if value, ok := _c.mutation.Restricted(); ok {
		_spec.SetField(courierstats.FieldRestricted, field.TypeBool, value)
		_node.Restricted = value
	}
	if value, ok := _c.mutation.RestrictionReason(); ok {
		_spec.SetField(courierstats.FieldRestrictionReason, field.TypeString, value)
		_node.RestrictionReason = &value
	}
	if value, ok := _c.mutation.CurrentBalance(); ok {
		_spec.SetField(courierstats.FieldCurrentBalance, field.TypeFloat64, value)
		_node.CurrentBalance = value
	}
	if value, ok := _c.mutation.TotalEarnings(); ok {
		_spec.SetField(courierstats.FieldTotalEarnings, field.TypeFloat64, value)
		_node.TotalEarnings = value
	}
	if nodes := _c.mutation.CourierIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   courierstats.CourierTable,
			Columns: []string{courierstats.CourierColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CourierID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CourierStatsCreateBulk is the builder for creating many CourierStats entities in bulk.
type CourierStatsCreateBulk struct {
	config
	err      error
	builders []*CourierStatsCreate
}

// Save creates the CourierStats entities in the database.
func (_c *CourierStatsCreateBulk) Save(ctx context.Context) ([]*CourierStats, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CourierStats, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CourierStatsMutation)
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
func (_c *CourierStatsCreateBulk) SaveX(ctx context.Context) []*CourierStats {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourierStatsCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourierStatsCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
