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
	"github.com/karimsaad/wasel_backend/internal/repo/shipment"
	"github.com/karimsaad/wasel_backend/internal/repo/user"
)

// UserCreate is the builder for creating a User entity.
type UserCreate struct {
	config
	mutation *UserMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *UserCreate) SetCreatedAt(v time.Time) *UserCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UserCreate) SetNillableCreatedAt(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UserCreate) SetUpdatedAt(v time.Time) *UserCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UserCreate) SetNillableUpdatedAt(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *UserCreate) SetDeletedAt(v time.Time) *UserCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *UserCreate) SetNillableDeletedAt(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetPublicID sets the "public_id" field.
func (_c *UserCreate) SetPublicID(v string) *UserCreate {
	_c.mutation.SetPublicID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *UserCreate) SetName(v string) *UserCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *UserCreate) SetEmail(v string) *UserCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetPhone sets the "phone" field.
func (_c *UserCreate) SetPhone(v string) *UserCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *UserCreate) SetNillablePhone(v *string) *UserCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetRoles sets the "roles" field.
func (_c *UserCreate) SetRoles(v []string) *UserCreate {
	_c.mutation.SetRoles(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *UserCreate) SetStatus(v user.Status) *UserCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *UserCreate) SetNillableStatus(v *user.Status) *UserCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetFlatRateFee sets the "flat_rate_fee" field.
func (_c *UserCreate) SetFlatRateFee(v float64) *UserCreate {
	_c.mutation.SetFlatRateFee(v)
	return _c
}

// SetNillableFlatRateFee sets the "flat_rate_fee" field if the given value is not nil.
func (_c *UserCreate) SetNillableFlatRateFee(v *float64) *UserCreate {
	if v != nil {
		_c.SetFlatRateFee(*v)
	}
	return _c
}

// SetPriorityMultipliers sets the "priority_multipliers" field.
func (_c *UserCreate) SetPriorityMultipliers(v map[string]float64) *UserCreate {
	_c.mutation.SetPriorityMultipliers(v)
	return _c
}

// SetPartnerTier sets the "partner_tier" field.
func (_c *UserCreate) SetPartnerTier(v user.PartnerTier) *UserCreate {
	_c.mutation.SetPartnerTier(v)
	return _c
}

// SetNillablePartnerTier sets the "partner_tier" field if the given value is not nil.
func (_c *UserCreate) SetNillablePartnerTier(v *user.PartnerTier) *UserCreate {
	if v != nil {
		_c.SetPartnerTier(*v)
	}
	return _c
}

// SetTierManualOverride sets the "tier_manual_override" field.
func (_c *UserCreate) SetTierManualOverride(v bool) *UserCreate {
	_c.mutation.SetTierManualOverride(v)
	return _c
}

// SetNillableTierManualOverride sets the "tier_manual_override" field if the given value is not nil.
func (_c *UserCreate) SetNillableTierManualOverride(v *bool) *UserCreate {
	if v != nil {
		_c.SetTierManualOverride(*v)
	}
	return _c
}

// SetWalletBalance sets the "wallet_balance" field.
func (_c *UserCreate) SetWalletBalance(v float64) *UserCreate {
	_c.mutation.SetWalletBalance(v)
	return _c
}

// SetNillableWalletBalance sets the "wallet_balance" field if the given value is not nil.
func (_c *UserCreate) SetNillableWalletBalance(v *float64) *UserCreate {
	if v != nil {
		_c.SetWalletBalance(*v)
	}
	return _c
}

// SetZones sets the "zones" field.
func (_c *UserCreate) SetZones(v []string) *UserCreate {
	_c.mutation.SetZones(v)
	return _c
}

// SetReferredBy sets the "referred_by" field.
func (_c *UserCreate) SetReferredBy(v uuid.UUID) *UserCreate {
	_c.mutation.SetReferredBy(v)
	return _c
}

// SetNillableReferredBy sets the "referred_by" field if the given value is not nil.
func (_c *UserCreate) SetNillableReferredBy(v *uuid.UUID) *UserCreate {
	if v != nil {
		_c.SetReferredBy(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserCreate) SetID(v uuid.UUID) *UserCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UserCreate) SetNillableID(v *uuid.UUID) *UserCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetReferrerID sets the "referrer" edge to the User entity by ID.
func (_c *UserCreate) SetReferrerID(id uuid.UUID) *UserCreate {
	_c.mutation.SetReferrerID(id)
	return _c
}

// SetNillableReferrerID sets the "referrer" edge to the User entity by ID if the given value is not nil.
func (_c *UserCreate) SetNillableReferrerID(id *uuid.UUID) *UserCreate {
	if id != nil {
		_c = _c.SetReferrerID(*id)
	}
	return _c
}

// SetReferrer sets the "referrer" edge to the User entity.
func (_c *UserCreate) SetReferrer(v *User) *UserCreate {
	return _c.SetReferrerID(v.ID)
}

// AddReferralIDs adds the "referrals" edge to the User entity by IDs.
func (_c *UserCreate) AddReferralIDs(ids ...uuid.UUID) *UserCreate {
	_c.mutation.AddReferralIDs(ids...)
	return _c
}

// AddReferrals adds the "referrals" edges to the User entity.
func (_c *UserCreate) AddReferrals(v ...*User) *UserCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReferralIDs(ids...)
}

// AddShipmentIDs adds the "shipments" edge to the Shipment entity by IDs.
func (_c *UserCreate) AddShipmentIDs(ids ...uuid.UUID) *UserCreate {
	_c.mutation.AddShipmentIDs(ids...)
	return _c
}

// AddShipments adds the "shipments" edges to the Shipment entity.
func (_c *UserCreate) AddShipments(v ...*Shipment) *UserCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddShipmentIDs(ids...)
}

// SetCourierStatsID sets the "courier_stats" edge to the CourierStats entity by ID.
func (_c *UserCreate) SetCourierStatsID(id uuid.UUID) *UserCreate {
	_c.mutation.SetCourierStatsID(id)
	return _c
}

// SetNillableCourierStatsID sets the "courier_stats" edge to the CourierStats entity by ID if the given value is not nil.
func (_c *UserCreate) SetNillableCourierStatsID(id *uuid.UUID) *UserCreate {
	if id != nil {
		_c = _c.SetCourierStatsID(*id)
	}
	return _c
}

// SetCourierStats sets the "courier_stats" edge to the CourierStats entity.
func (_c *UserCreate) SetCourierStats(v *CourierStats) *UserCreate {
	return _c.SetCourierStatsID(v.ID)
}

// Mutation returns the UserMutation object of the builder.
func (_c *UserCreate) Mutation() *UserMutation {
	return _c.mutation
}

// Save creates the User in the database.
func (_c *UserCreate) Save(ctx context.Context) (*User, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserCreate) SaveX(ctx context.Context) *User {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := user.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := user.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := user.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.FlatRateFee(); !ok {
		v := user.DefaultFlatRateFee
		_c.mutation.SetFlatRateFee(v)
	}
	if _, ok := _c.mutation.TierManualOverride(); !ok {
		v := user.DefaultTierManualOverride
		_c.mutation.SetTierManualOverride(v)
	}
	if _, ok := _c.mutation.WalletBalance(); !ok {
		v := user.DefaultWalletBalance
		_c.mutation.SetWalletBalance(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := user.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "User.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "User.updated_at"`)}
	}
	if _, ok := _c.mutation.PublicID(); !ok {
		return &ValidationError{Name: "public_id", err: errors.New(`repo: missing required field "User.public_id"`)}
	}
	if v, ok := _c.mutation.PublicID(); ok {
		if err := user.PublicIDValidator(v); err != nil {
			return &ValidationError{Name: "public_id", err: fmt.Errorf(`repo: validator failed for field "User.public_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "User.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := user.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "User.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`repo: missing required field "User.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := user.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "User.email": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := user.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "User.phone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Roles(); !ok {
		return &ValidationError{Name: "roles", err: errors.New(`repo: missing required field "User.roles"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "User.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := user.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "User.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FlatRateFee(); !ok {
		return &ValidationError{Name: "flat_rate_fee", err: errors.New(`repo: missing required field "User.flat_rate_fee"`)}
	}
	if v, ok := _c.mutation.PartnerTier(); ok {
		if err := user.PartnerTierValidator(v); err != nil {
			return &ValidationError{Name: "partner_tier", err: fmt.Errorf(`repo: validator failed for field "User.partner_tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TierManualOverride(); !ok {
		return &ValidationError{Name: "tier_manual_override", err: errors.New(`repo: missing required field "User.tier_manual_override"`)}
	}
	if _, ok := _c.mutation.WalletBalance(); !ok {
		return &ValidationError{Name: "wallet_balance", err: errors.New(`repo: missing required field "User.wallet_balance"`)}
	}
	return nil
}

func (_c *UserCreate) sqlSave(ctx context.Context) (*User, error) {
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

func (_c *UserCreate) createSpec() (*User, *sqlgraph.CreateSpec) {
	var (
		_node = &User{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(user.Table, sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(user.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(user.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.PublicID(); ok {
		_spec.SetField(user.FieldPublicID, field.TypeString, value)
		_node.PublicID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(user.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(user.FieldPhone, field.TypeString, value)
		_node.Phone = &value
	}
	if value, ok := _c.mutation.Roles(); ok {
		_spec.SetField(user.FieldRoles, field.TypeJSON, value)
		_node.Roles = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(user.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.FlatRateFee(); ok {
		_spec.SetField(user.FieldFlatRateFee, field.TypeFloat64, value)
		_node.FlatRateFee = value
	}
	if value, ok := _c.mutation.PriorityMultipliers(); ok {
		_spec.SetField(user.FieldPriorityMultipliers, field.TypeJSON, value)
		_node.PriorityMultipliers = value
	}
	if value, ok := _c.mutation.PartnerTier(); ok {
		_spec.SetField(user.FieldPartnerTier, field.TypeEnum, value)
		_node.PartnerTier = &value
	}
	if value, ok := _c.mutation.TierManualOverride(); ok {
		_spec.SetField(user.FieldTierManualOverride, field.TypeBool, value)
		_node.TierManualOverride = value
	}
	if value, ok := _c.mutation.WalletBalance(); ok {
		_spec.SetField(user.FieldWalletBalance, field.TypeFloat64, value)
		_node.WalletBalance = value
	}
	if value, ok := _c.mutation.Zones(); ok {
		_spec.SetField(user.FieldZones, field.TypeJSON, value)
		_node.Zones = value
	}
	if nodes := _c.mutation.ReferrerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   user.ReferrerTable,
			Columns: []string{user.ReferrerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ReferredBy = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReferralsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ReferralsTable,
			Columns: []string{user.ReferralsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ShipmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ShipmentsTable,
			Columns: []string{user.ShipmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(shipment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CourierStatsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   user.CourierStatsTable,
			Columns: []string{user.CourierStatsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(courierstats.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// UserCreateBulk is the builder for creating many User entities in bulk.
type UserCreateBulk struct {
	config
	err      error
	builders []*UserCreate
}

// Save creates the User entities in the database.
func (_c *UserCreateBulk) Save(ctx context.Context) ([]*User, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*User, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserMutation)
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
func (_c *UserCreateBulk) SaveX(ctx context.Context) []*User {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
