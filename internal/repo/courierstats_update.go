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
	"github.com/google/uuid"
	"github.com/karimsaad/wasel_backend/internal/repo/courierstats"
	"github.com/karimsaad/wasel_backend/internal/repo/predicate"
	"github.com/karimsaad/wasel_backend/internal/repo/user"
)

// CourierStatsUpdate is the builder for updating CourierStats entities.
type CourierStatsUpdate struct {
	config
	hooks    []Hook
	mutation *CourierStatsMutation
}

// Where appends a list predicates to the CourierStatsUpdate builder.
func (_u *CourierStatsUpdate) Where(ps ...predicate.CourierStats) *CourierStatsUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CourierStatsUpdate) SetUpdatedAt(v time.Time) *CourierStatsUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCourierID sets the "courier_id" field.
func (_u *CourierStatsUpdate) SetCourierID(v uuid.UUID) *CourierStatsUpdate {
	_u.mutation.SetCourierID(v)
	return _u
}

// SetNillableCourierID sets the "courier_id" field if the given value is not nil.
func (_u *CourierStatsUpdate) SetNillableCourierID(v *uuid.UUID) *CourierStatsUpdate {
	if v != nil {
		_u.SetCourierID(*v)
	}
	return _u
}

// SetCommissionScheme sets the "commission_scheme" field.
func (_u *CourierStatsUpdate) SetCommissionScheme(v courierstats.CommissionScheme) *CourierStatsUpdate {
	_u.mutation.SetCommissionScheme(v)
	return _u
}

// SetNillableCommissionScheme sets the "commission_scheme" field if the given value is not nil.
func (_u *CourierStatsUpdate) SetNillableCommissionScheme(v *courierstats.CommissionScheme) *CourierStatsUpdate {
	if v != nil {
		_u.SetCommissionScheme(*v)
	}
	return _u
}

// SetCommissionValue sets the "commission_value" field.
func (_u *CourierStatsUpdate) SetCommissionValue(v float64) *CourierStatsUpdate {
	_u.mutation.ResetCommissionValue()
	_u.mutation.SetCommissionValue(v)
	return _u
}

// SetNillableCommissionValue sets the "commission_value" field if the given value is not nil.
func (_u *CourierStatsUpdate) SetNillableCommissionValue(v *float64) *CourierStatsUpdate {
	if v != nil {
		_u.SetCommissionValue(*v)
	}
	return _u
}

// AddCommissionValue adds value to the "commission_value" field.
func (_u *CourierStatsUpdate) AddCommissionValue(v float64) *CourierStatsUpdate {
	_u.mutation.AddCommissionValue(v)
	return _u
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_u *CourierStatsUpdate) SetConsecutiveFailures(v int) *CourierStatsUpdate {
	_u.mutation.ResetConsecutiveFailures()
	_u.mutation.SetConsecutiveFailures(v)
	return _u
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_u *CourierStatsUpdate) SetNillableConsecutiveFailures(v *int) *CourierStatsUpdate {
	if v != nil {
		_u.SetConsecutiveFailures(*v)
	}
	return _u
}

// AddConsecutiveFailures adds value to the "consecutive_failures" field.
func (_u *CourierStatsUpdate) AddConsecutiveFailures(v int) *CourierStatsUpdate {
	_u.mutation.AddConsecutiveFailures(v)
	return _u
}

// SetRestricted sets the "restricted" field.
func (_u *CourierStatsUpdate) SetRestricted(v bool) *CourierStatsUpdate {
	_u.mutation.SetRestricted(v)
	return _u
}

// SetNillableRestricted sets the "restricted" field if the given value is not nil.
func (_u *CourierStatsUpdate) SetNillableRestricted(v *bool) *CourierStatsUpdate {
	if v != nil {
		_u.SetRestricted(*v)
	}
	return _u
}

// SetRestrictionReason sets the "restriction_reason" field.
func (_u *CourierStatsUpdate) SetRestrictionReason(v string) *CourierStatsUpdate {
	_u.mutation.SetRestrictionReason(v)
	return _u
}

// SetNillableRestrictionReason sets the "restriction_reason" field if the given value is not nil.
func (_u *CourierStatsUpdate) SetNillableRestrictionReason(v *string) *CourierStatsUpdate {
	if v != nil {
		_u.SetRestrictionReason(*v)
	}
	return _u
}

// ClearRestrictionReason clears the value of the "restriction_reason" field.
func (_u *CourierStatsUpdate) ClearRestrictionReason() *CourierStatsUpdate {
	_u.mutation.ClearRestrictionReason()
	return _u
}

// SetCurrentBalance sets the "current_balance" field.
func (_u *CourierStatsUpdate) SetCurrentBalance(v float64) *CourierStatsUpdate {
	_u.mutation.ResetCurrentBalance()
	_u.mutation.SetCurrentBalance(v)
	return _u
}

// SetNillableCurrentBalance sets the "current_balance" field if the given value is not nil.
func (_u *CourierStatsUpdate) SetNillableCurrentBalance(v *float64) *CourierStatsUpdate {
	if v != nil {
		_u.SetCurrentBalance(*v)
	}
	return _u
}

// AddCurrentBalance adds value to the "current_balance" field.
func (_u *CourierStatsUpdate) AddCurrentBalance(v float64) *CourierStatsUpdate {
	_u.mutation.AddCurrentBalance(v)
	return _u
}

// SetTotalEarnings sets the "total_earnings" field.
func (_u *CourierStatsUpdate) SetTotalEarnings(v float64) *CourierStatsUpdate {
	_u.mutation.ResetTotalEarnings()
	_u.mutation.SetTotalEarnings(v)
	return _u
}

// SetNillableTotalEarnings sets the "total_earnings" field if the given value is not nil.
func (_u *CourierStatsUpdate) SetNillableTotalEarnings(v *float64) *CourierStatsUpdate {
	if v != nil {
		_u.SetTotalEarnings(*v)
	}
	return _u
}

// AddTotalEarnings adds value to the "total_earnings" field.
func (_u *CourierStatsUpdate) AddTotalEarnings(v float64) *CourierStatsUpdate {
	_u.mutation.AddTotalEarnings(v)
	return _u
}

// SetCourier sets the "courier" edge to the User entity.
func (_u *CourierStatsUpdate) SetCourier(v *User) *CourierStatsUpdate {
	return _u.SetCourierID(v.ID)
}

// Mutation returns the CourierStatsMutation object of the builder.
func (_u *CourierStatsUpdate) Mutation() *CourierStatsMutation {
	return _u.mutation
}

// ClearCourier clears the "courier" edge to the User entity.
func (_u *CourierStatsUpdate) ClearCourier() *CourierStatsUpdate {
	_u.mutation.ClearCourier()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CourierStatsUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourierStatsUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CourierStatsUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourierStatsUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CourierStatsUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := courierstats.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourierStatsUpdate) check() error {
	if v, ok := _u.mutation.CommissionScheme(); ok {
		if err := courierstats.CommissionSchemeValidator(v); err != nil {
			return &ValidationError{Name: "commission_scheme", err: fmt.Errorf(`repo: validator failed for field "CourierStats.commission_scheme": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConsecutiveFailures(); ok {
		if err := courierstats.ConsecutiveFailuresValidator(v); err != nil {
			return &ValidationError{Name: "consecutive_failures", err: fmt.Errorf(`repo: validator failed for field "CourierStats.consecutive_failures": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RestrictionReason(); ok {
		if err := courierstats.RestrictionReasonValidator(v); err != nil {
			return &ValidationError{Name: "restriction_reason", err: fmt.Errorf(`repo: validator failed for field "CourierStats.restriction_reason": %w`, err)}
		}
	}
	if _u.mutation.CourierCleared() && len(_u.mutation.CourierIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "CourierStats.courier"`)
	}
	return nil
}

func (_u *CourierStatsUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(courierstats.Table, courierstats.Columns, sqlgraph.NewFieldSpec(courierstats.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(courierstats.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CommissionScheme(); ok {
		_spec.SetField(courierstats.FieldCommissionScheme, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CommissionValue(); ok {
		_spec.SetField(courierstats.FieldCommissionValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCommissionValue(); ok {
		_spec.AddField(courierstats.FieldCommissionValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(courierstats.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveFailures(); ok {
		_spec.AddField(courierstats.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Restricted(); ok {
		_spec.SetField(courierstats.FieldRestricted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RestrictionReason(); ok {
		_spec.SetField(courierstats.FieldRestrictionReason, field.TypeString, value)
	}
	if _u.mutation.RestrictionReasonCleared() {
		_spec.ClearField(courierstats.FieldRestrictionReason, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentBalance(); ok {
		_spec.SetField(courierstats.FieldCurrentBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCurrentBalance(); ok {
		_spec.AddField(courierstats.FieldCurrentBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalEarnings(); ok {
		_spec.SetField(courierstats.FieldTotalEarnings, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalEarnings(); ok {
		_spec.AddField(courierstats.FieldTotalEarnings, field.TypeFloat64, value)
	}
	if _u.mutation.CourierCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CourierIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{courierstats.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CourierStatsUpdateOne is the builder for updating a single CourierStats entity.
type CourierStatsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CourierStatsMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CourierStatsUpdateOne) SetUpdatedAt(v time.Time) *CourierStatsUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCourierID sets the "courier_id" field.
func (_u *CourierStatsUpdateOne) SetCourierID(v uuid.UUID) *CourierStatsUpdateOne {
	_u.mutation.SetCourierID(v)
	return _u
}

// SetNillableCourierID sets the "courier_id" field if the given value is not nil.
func (_u *CourierStatsUpdateOne) SetNillableCourierID(v *uuid.UUID) *CourierStatsUpdateOne {
	if v != nil {
		_u.SetCourierID(*v)
	}
	return _u
}

// SetCommissionScheme sets the "commission_scheme" field.
func (_u *CourierStatsUpdateOne) SetCommissionScheme(v courierstats.CommissionScheme) *CourierStatsUpdateOne {
	_u.mutation.SetCommissionScheme(v)
	return _u
}

// SetNillableCommissionScheme sets the "commission_scheme" field if the given value is not nil.
func (_u *CourierStatsUpdateOne) SetNillableCommissionScheme(v *courierstats.CommissionScheme) *CourierStatsUpdateOne {
	if v != nil {
		_u.SetCommissionScheme(*v)
	}
	return _u
}

// SetCommissionValue sets the "commission_value" field.
func (_u *CourierStatsUpdateOne) SetCommissionValue(v float64) *CourierStatsUpdateOne {
	_u.mutation.ResetCommissionValue()
	_u.mutation.SetCommissionValue(v)
	return _u
}

// SetNillableCommissionValue sets the "commission_value" field if the given value is not nil.
func (_u *CourierStatsUpdateOne) SetNillableCommissionValue(v *float64) *CourierStatsUpdateOne {
	if v != nil {
		_u.SetCommissionValue(*v)
	}
	return _u
}

// AddCommissionValue adds value to the "commission_value" field.
func (_u *CourierStatsUpdateOne) AddCommissionValue(v float64) *CourierStatsUpdateOne {
	_u.mutation.AddCommissionValue(v)
	return _u
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_u *CourierStatsUpdateOne) SetConsecutiveFailures(v int) *CourierStatsUpdateOne {
	_u.mutation.ResetConsecutiveFailures()
	_u.mutation.SetConsecutiveFailures(v)
	return _u
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_u *CourierStatsUpdateOne) SetNillableConsecutiveFailures(v *int) *CourierStatsUpdateOne {
	if v != nil {
		_u.SetConsecutiveFailures(*v)
	}
	return _u
}

// AddConsecutiveFailures adds value to the "consecutive_failures" field.
func (_u *CourierStatsUpdateOne) AddConsecutiveFailures(v int) *CourierStatsUpdateOne {
	_u.mutation.AddConsecutiveFailures(v)
	return _u
}

// SetRestricted sets the "restricted" field.
func (_u *CourierStatsUpdateOne) SetRestricted(v bool) *CourierStatsUpdateOne {
	_u.mutation.SetRestricted(v)
	return _u
}

// SetNillableRestricted sets the "restricted" field if the given value is not nil.
func (_u *CourierStatsUpdateOne) SetNillableRestricted(v *bool) *CourierStatsUpdateOne {
	if v != nil {
		_u.SetRestricted(*v)
	}
	return _u
}

// SetRestrictionReason sets the "restriction_reason" field.
func (_u *CourierStatsUpdateOne) SetRestrictionReason(v string) *CourierStatsUpdateOne {
	_u.mutation.SetRestrictionReason(v)
	return _u
}

// SetNillableRestrictionReason sets the "restriction_reason" field if the given value is not nil.
func (_u *CourierStatsUpdateOne) SetNillableRestrictionReason(v *string) *CourierStatsUpdateOne {
	if v != nil {
		_u.SetRestrictionReason(*v)
	}
	return _u
}

// ClearRestrictionReason clears the value of the "restriction_reason" field.
func (_u *CourierStatsUpdateOne) ClearRestrictionReason() *CourierStatsUpdateOne {
	_u.mutation.ClearRestrictionReason()
	return _u
}

// SetCurrentBalance sets the "current_balance" field.
func (_u *CourierStatsUpdateOne) SetCurrentBalance(v float64) *CourierStatsUpdateOne {
	_u.mutation.ResetCurrentBalance()
	_u.mutation.SetCurrentBalance(v)
	return _u
}

// SetNillableCurrentBalance sets the "current_balance" field if the given value is not nil.
func (_u *CourierStatsUpdateOne) SetNillableCurrentBalance(v *float64) *CourierStatsUpdateOne {
	if v != nil {
		_u.SetCurrentBalance(*v)
	}
	return _u
}

// AddCurrentBalance adds value to the "current_balance" field.
func (_u *CourierStatsUpdateOne) AddCurrentBalance(v float64) *CourierStatsUpdateOne {
	_u.mutation.AddCurrentBalance(v)
	return _u
}

// SetTotalEarnings sets the "total_earnings" field.
func (_u *CourierStatsUpdateOne) SetTotalEarnings(v float64) *CourierStatsUpdateOne {
	_u.mutation.ResetTotalEarnings()
	_u.mutation.SetTotalEarnings(v)
	return _u
}

// SetNillableTotalEarnings sets the "total_earnings" field if the given value is not nil.
func (_u *CourierStatsUpdateOne) SetNillableTotalEarnings(v *float64) *CourierStatsUpdateOne {
	if v != nil {
		_u.SetTotalEarnings(*v)
	}
	return _u
}

// AddTotalEarnings adds value to the "total_earnings" field.
func (_u *CourierStatsUpdateOne) AddTotalEarnings(v float64) *CourierStatsUpdateOne {
	_u.mutation.AddTotalEarnings(v)
	return _u
}

// SetCourier sets the "courier" edge to the User entity.
func (_u *CourierStatsUpdateOne) SetCourier(v *User) *CourierStatsUpdateOne {
	return _u.SetCourierID(v.ID)
}

// Mutation returns the CourierStatsMutation object of the builder.
func (_u *CourierStatsUpdateOne) Mutation() *CourierStatsMutation {
	return _u.mutation
}

// ClearCourier clears the "courier" edge to the User entity.
func (_u *CourierStatsUpdateOne) ClearCourier() *CourierStatsUpdateOne {
	_u.mutation.ClearCourier()
	return _u
}

// Where appends a list predicates to the CourierStatsUpdate builder.
func (_u *CourierStatsUpdateOne) Where(ps ...predicate.CourierStats) *CourierStatsUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CourierStatsUpdateOne) Select(field string, fields ...string) *CourierStatsUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CourierStats entity.
func (_u *CourierStatsUpdateOne) Save(ctx context.Context) (*CourierStats, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourierStatsUpdateOne) SaveX(ctx context.Context) *CourierStats {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CourierStatsUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourierStatsUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CourierStatsUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := courierstats.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourierStatsUpdateOne) check() error {
	if v, ok := _u.mutation.CommissionScheme(); ok {
		if err := courierstats.CommissionSchemeValidator(v); err != nil {
			return &ValidationError{Name: "commission_scheme", err: fmt.Errorf(`repo: validator failed for field "CourierStats.commission_scheme": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConsecutiveFailures(); ok {
		if err := courierstats.ConsecutiveFailuresValidator(v); err != nil {
			return &ValidationError{Name: "consecutive_failures", err: fmt.Errorf(`repo: validator failed for field "CourierStats.consecutive_failures": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RestrictionReason(); ok {
		if err := courierstats.RestrictionReasonValidator(v); err != nil {
			return &ValidationError{Name: "restriction_reason", err: fmt.Errorf(`repo: validator failed for field "CourierStats.restriction_reason": %w`, err)}
		}
	}
	if _u.mutation.CourierCleared() && len(_u.mutation.CourierIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "CourierStats.courier"`)
	}
	return nil
}

func (_u *CourierStatsUpdateOne) sqlSave(ctx context.Context) (_node *CourierStats, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(courierstats.Table, courierstats.Columns, sqlgraph.NewFieldSpec(courierstats.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "CourierStats.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, courierstats.FieldID)
		for _, f := range fields {
			if !courierstats.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != courierstats.FieldID {
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
		_spec.SetField(courierstats.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CommissionScheme(); ok {
		_spec.SetField(courierstats.FieldCommissionScheme, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CommissionValue(); ok {
		_spec.SetField(courierstats.FieldCommissionValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCommissionValue(); ok {
		_spec.AddField(courierstats.FieldCommissionValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(courierstats.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveFailures(); ok {
		_spec.AddField(courierstats.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Restricted(); ok {
		_spec.SetField(courierstats.FieldRestricted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RestrictionReason(); ok {
		_spec.SetField(courierstats.FieldRestrictionReason, field.TypeString, value)
	}
	if _u.mutation.RestrictionReasonCleared() {
		_spec.ClearField(courierstats.FieldRestrictionReason, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentBalance(); ok {
		_spec.SetField(courierstats.FieldCurrentBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCurrentBalance(); ok {
		_spec.AddField(courierstats.FieldCurrentBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalEarnings(); ok {
		_spec.SetField(courierstats.FieldTotalEarnings, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalEarnings(); ok {
		_spec.AddField(courierstats.FieldTotalEarnings, field.TypeFloat64, value)
	}
	if _u.mutation.CourierCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CourierIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CourierStats{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{courierstats.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
