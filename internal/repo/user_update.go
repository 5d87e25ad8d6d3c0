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
	"github.com/karimsaad/wasel_backend/internal/repo/courierstats"
	"github.com/karimsaad/wasel_backend/internal/repo/predicate"
	"github.com/karimsaad/wasel_backend/internal/repo/shipment"
	"github.com/karimsaad/wasel_backend/internal/repo/user"
)

// UserUpdate is the builder for updating User entities.
type UserUpdate struct {
	config
	hooks    []Hook
	mutation *UserMutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdate) Where(ps ...predicate.User) *UserUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdate) SetUpdatedAt(v time.Time) *UserUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *UserUpdate) SetDeletedAt(v time.Time) *UserUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *UserUpdate) SetNillableDeletedAt(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *UserUpdate) ClearDeletedAt() *UserUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetPublicID sets the "public_id" field.
func (_u *UserUpdate) SetPublicID(v string) *UserUpdate {
	_u.mutation.SetPublicID(v)
	return _u
}

// SetNillablePublicID sets the "public_id" field if the given value is not nil.
func (_u *UserUpdate) SetNillablePublicID(v *string) *UserUpdate {
	if v != nil {
		_u.SetPublicID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *UserUpdate) SetName(v string) *UserUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UserUpdate) SetNillableName(v *string) *UserUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserUpdate) SetEmail(v string) *UserUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdate) SetNillableEmail(v *string) *UserUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *UserUpdate) SetPhone(v string) *UserUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *UserUpdate) SetNillablePhone(v *string) *UserUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *UserUpdate) ClearPhone() *UserUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetRoles sets the "roles" field.
func (_u *UserUpdate) SetRoles(v []string) *UserUpdate {
	_u.mutation.SetRoles(v)
	return _u
}

// AppendRoles appends value to the "roles" field.
func (_u *UserUpdate) AppendRoles(v []string) *UserUpdate {
	_u.mutation.AppendRoles(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *UserUpdate) SetStatus(v user.Status) *UserUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UserUpdate) SetNillableStatus(v *user.Status) *UserUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFlatRateFee sets the "flat_rate_fee" field.
func (_u *UserUpdate) SetFlatRateFee(v float64) *UserUpdate {
	_u.mutation.ResetFlatRateFee()
	_u.mutation.SetFlatRateFee(v)
	return _u
}

// SetNillableFlatRateFee sets the "flat_rate_fee" field if the given value is not nil.
func (_u *UserUpdate) SetNillableFlatRateFee(v *float64) *UserUpdate {
	if v != nil {
		_u.SetFlatRateFee(*v)
	}
	return _u
}

// AddFlatRateFee adds value to the "flat_rate_fee" field.
func (_u *UserUpdate) AddFlatRateFee(v float64) *UserUpdate {
	_u.mutation.AddFlatRateFee(v)
	return _u
}

// SetPriorityMultipliers sets the "priority_multipliers" field.
func (_u *UserUpdate) SetPriorityMultipliers(v map[string]float64) *UserUpdate {
	_u.mutation.SetPriorityMultipliers(v)
	return _u
}

// ClearPriorityMultipliers clears the value of the "priority_multipliers" field.
func (_u *UserUpdate) ClearPriorityMultipliers() *UserUpdate {
	_u.mutation.ClearPriorityMultipliers()
	return _u
}

// SetPartnerTier sets the "partner_tier" field.
func (_u *UserUpdate) SetPartnerTier(v user.PartnerTier) *UserUpdate {
	_u.mutation.SetPartnerTier(v)
	return _u
}

// SetNillablePartnerTier sets the "partner_tier" field if the given value is not nil.
func (_u *UserUpdate) SetNillablePartnerTier(v *user.PartnerTier) *UserUpdate {
	if v != nil {
		_u.SetPartnerTier(*v)
	}
	return _u
}

// ClearPartnerTier clears the value of the "partner_tier" field.
func (_u *UserUpdate) ClearPartnerTier() *UserUpdate {
	_u.mutation.ClearPartnerTier()
	return _u
}

// SetTierManualOverride sets the "tier_manual_override" field.
func (_u *UserUpdate) SetTierManualOverride(v bool) *UserUpdate {
	_u.mutation.SetTierManualOverride(v)
	return _u
}

// SetNillableTierManualOverride sets the "tier_manual_override" field if the given value is not nil.
func (_u *UserUpdate) SetNillableTierManualOverride(v *bool) *UserUpdate {
	if v != nil {
		_u.SetTierManualOverride(*v)
	}
	return _u
}

// SetWalletBalance sets the "wallet_balance" field.
func (_u *UserUpdate) SetWalletBalance(v float64) *UserUpdate {
	_u.mutation.ResetWalletBalance()
	_u.mutation.SetWalletBalance(v)
	return _u
}

// SetNillableWalletBalance sets the "wallet_balance" field if the given value is not nil.
func (_u *UserUpdate) SetNillableWalletBalance(v *float64) *UserUpdate {
	if v != nil {
		_u.SetWalletBalance(*v)
	}
	return _u
}

// AddWalletBalance adds value to the "wallet_balance" field.
func (_u *UserUpdate) AddWalletBalance(v float64) *UserUpdate {
	_u.mutation.AddWalletBalance(v)
	return _u
}

// SetZones sets the "zones" field.
func (_u *UserUpdate) SetZones(v []string) *UserUpdate {
	_u.mutation.SetZones(v)
	return _u
}

// AppendZones appends value to the "zones" field.
func (_u *UserUpdate) AppendZones(v []string) *UserUpdate {
	_u.mutation.AppendZones(v)
	return _u
}

// ClearZones clears the value of the "zones" field.
func (_u *UserUpdate) ClearZones() *UserUpdate {
	_u.mutation.ClearZones()
	return _u
}

// SetReferredBy sets the "referred_by" field.
func (_u *UserUpdate) SetReferredBy(v uuid.UUID) *UserUpdate {
	_u.mutation.SetReferredBy(v)
	return _u
}

// SetNillableReferredBy sets the "referred_by" field if the given value is not nil.
func (_u *UserUpdate) SetNillableReferredBy(v *uuid.UUID) *UserUpdate {
	if v != nil {
		_u.SetReferredBy(*v)
	}
	return _u
}

// ClearReferredBy clears the value of the "referred_by" field.
func (_u *UserUpdate) ClearReferredBy() *UserUpdate {
	_u.mutation.ClearReferredBy()
	return _u
}

// SetReferrerID sets the "referrer" edge to the User entity by ID.
func (_u *UserUpdate) SetReferrerID(id uuid.UUID) *UserUpdate {
	_u.mutation.SetReferrerID(id)
	return _u
}

// SetNillableReferrerID sets the "referrer" edge to the User entity by ID if the given value is not nil.
func (_u *UserUpdate) SetNillableReferrerID(id *uuid.UUID) *UserUpdate {
	if id != nil {
		_u = _u.SetReferrerID(*id)
	}
	return _u
}

// SetReferrer sets the "referrer" edge to the User entity.
func (_u *UserUpdate) SetReferrer(v *User) *UserUpdate {
	return _u.SetReferrerID(v.ID)
}

// AddReferralIDs adds the "referrals" edge to the User entity by IDs.
func (_u *UserUpdate) AddReferralIDs(ids ...uuid.UUID) *UserUpdate {
	_u.mutation.AddReferralIDs(ids...)
	return _u
}

// AddReferrals adds the "referrals" edges to the User entity.
func (_u *UserUpdate) AddReferrals(v ...*User) *UserUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReferralIDs(ids...)
}

// AddShipmentIDs adds the "shipments" edge to the Shipment entity by IDs.
func (_u *UserUpdate) AddShipmentIDs(ids ...uuid.UUID) *UserUpdate {
	_u.mutation.AddShipmentIDs(ids...)
	return _u
}

// AddShipments adds the "shipments" edges to the Shipment entity.
func (_u *UserUpdate) AddShipments(v ...*Shipment) *UserUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddShipmentIDs(ids...)
}

// SetCourierStatsID sets the "courier_stats" edge to the CourierStats entity by ID.
func (_u *UserUpdate) SetCourierStatsID(id uuid.UUID) *UserUpdate {
	_u.mutation.SetCourierStatsID(id)
	return _u
}

// SetNillableCourierStatsID sets the "courier_stats" edge to the CourierStats entity by ID if the given value is not nil.
func (_u *UserUpdate) SetNillableCourierStatsID(id *uuid.UUID) *UserUpdate {
	if id != nil {
		_u = _u.SetCourierStatsID(*id)
	}
	return _u
}

// SetCourierStats sets the "courier_stats" edge to the CourierStats entity.
func (_u *UserUpdate) SetCourierStats(v *CourierStats) *UserUpdate {
	return _u.SetCourierStatsID(v.ID)
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdate) Mutation() *UserMutation {
	return _u.mutation
}

// ClearReferrer clears the "referrer" edge to the User entity.
func (_u *UserUpdate) ClearReferrer() *UserUpdate {
	_u.mutation.ClearReferrer()
	return _u
}

// ClearReferrals clears all "referrals" edges to the User entity.
func (_u *UserUpdate) ClearReferrals() *UserUpdate {
	_u.mutation.ClearReferrals()
	return _u
}

// RemoveReferralIDs removes the "referrals" edge to User entities by IDs.
func (_u *UserUpdate) RemoveReferralIDs(ids ...uuid.UUID) *UserUpdate {
	_u.mutation.RemoveReferralIDs(ids...)
	return _u
}

// RemoveReferrals removes "referrals" edges to User entities.
func (_u *UserUpdate) RemoveReferrals(v ...*User) *UserUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReferralIDs(ids...)
}

// ClearShipments clears all "shipments" edges to the Shipment entity.
func (_u *UserUpdate) ClearShipments() *UserUpdate {
	_u.mutation.ClearShipments()
	return _u
}

// RemoveShipmentIDs removes the "shipments" edge to Shipment entities by IDs.
func (_u *UserUpdate) RemoveShipmentIDs(ids ...uuid.UUID) *UserUpdate {
	_u.mutation.RemoveShipmentIDs(ids...)
	return _u
}

// RemoveShipments removes "shipments" edges to Shipment entities.
func (_u *UserUpdate) RemoveShipments(v ...*Shipment) *UserUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveShipmentIDs(ids...)
}

// ClearCourierStats clears the "courier_stats" edge to the CourierStats entity.
func (_u *UserUpdate) ClearCourierStats() *UserUpdate {
	_u.mutation.ClearCourierStats()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdate) check() error {
	if v, ok := _u.mutation.PublicID(); ok {
		if err := user.PublicIDValidator(v); err != nil {
			return &ValidationError{Name: "public_id", err: fmt.Errorf(`repo: validator failed for field "User.public_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := user.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "User.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := user.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "User.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := user.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "User.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := user.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "User.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PartnerTier(); ok {
		if err := user.PartnerTierValidator(v); err != nil {
			return &ValidationError{Name: "partner_tier", err: fmt.Errorf(`repo: validator failed for field "User.partner_tier": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(user.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(user.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PublicID(); ok {
		_spec.SetField(user.FieldPublicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(user.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(user.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(user.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Roles(); ok {
		_spec.SetField(user.FieldRoles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRoles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, user.FieldRoles, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(user.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FlatRateFee(); ok {
		_spec.SetField(user.FieldFlatRateFee, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFlatRateFee(); ok {
		_spec.AddField(user.FieldFlatRateFee, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PriorityMultipliers(); ok {
		_spec.SetField(user.FieldPriorityMultipliers, field.TypeJSON, value)
	}
	if _u.mutation.PriorityMultipliersCleared() {
		_spec.ClearField(user.FieldPriorityMultipliers, field.TypeJSON)
	}
	if value, ok := _u.mutation.PartnerTier(); ok {
		_spec.SetField(user.FieldPartnerTier, field.TypeEnum, value)
	}
	if _u.mutation.PartnerTierCleared() {
		_spec.ClearField(user.FieldPartnerTier, field.TypeEnum)
	}
	if value, ok := _u.mutation.TierManualOverride(); ok {
		_spec.SetField(user.FieldTierManualOverride, field.TypeBool, value)
	}
	if value, ok := _u.mutation.WalletBalance(); ok {
		_spec.SetField(user.FieldWalletBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWalletBalance(); ok {
		_spec.AddField(user.FieldWalletBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Zones(); ok {
		_spec.SetField(user.FieldZones, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedZones(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, user.FieldZones, value)
		})
	}
	if _u.mutation.ZonesCleared() {
		_spec.ClearField(user.FieldZones, field.TypeJSON)
	}
	if _u.mutation.ReferrerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReferrerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReferralsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReferralsIDs(); len(nodes) > 0 && !_u.mutation.ReferralsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReferralsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ShipmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedShipmentsIDs(); len(nodes) > 0 && !_u.mutation.ShipmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ShipmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CourierStatsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CourierStatsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserUpdateOne is the builder for updating a single User entity.
type UserUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdateOne) SetUpdatedAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *UserUpdateOne) SetDeletedAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableDeletedAt(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *UserUpdateOne) ClearDeletedAt() *UserUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetPublicID sets the "public_id" field.
func (_u *UserUpdateOne) SetPublicID(v string) *UserUpdateOne {
	_u.mutation.SetPublicID(v)
	return _u
}

// SetNillablePublicID sets the "public_id" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillablePublicID(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetPublicID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *UserUpdateOne) SetName(v string) *UserUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableName(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserUpdateOne) SetEmail(v string) *UserUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableEmail(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *UserUpdateOne) SetPhone(v string) *UserUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillablePhone(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *UserUpdateOne) ClearPhone() *UserUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetRoles sets the "roles" field.
func (_u *UserUpdateOne) SetRoles(v []string) *UserUpdateOne {
	_u.mutation.SetRoles(v)
	return _u
}

// AppendRoles appends value to the "roles" field.
func (_u *UserUpdateOne) AppendRoles(v []string) *UserUpdateOne {
	_u.mutation.AppendRoles(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *UserUpdateOne) SetStatus(v user.Status) *UserUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableStatus(v *user.Status) *UserUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFlatRateFee sets the "flat_rate_fee" field.
func (_u *UserUpdateOne) SetFlatRateFee(v float64) *UserUpdateOne {
	_u.mutation.ResetFlatRateFee()
	_u.mutation.SetFlatRateFee(v)
	return _u
}

// SetNillableFlatRateFee sets the "flat_rate_fee" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableFlatRateFee(v *float64) *UserUpdateOne {
	if v != nil {
		_u.SetFlatRateFee(*v)
	}
	return _u
}

// AddFlatRateFee adds value to the "flat_rate_fee" field.
func (_u *UserUpdateOne) AddFlatRateFee(v float64) *UserUpdateOne {
	_u.mutation.AddFlatRateFee(v)
	return _u
}

// SetPriorityMultipliers sets the "priority_multipliers" field.
func (_u *UserUpdateOne) SetPriorityMultipliers(v map[string]float64) *UserUpdateOne {
	_u.mutation.SetPriorityMultipliers(v)
	return _u
}

// ClearPriorityMultipliers clears the value of the "priority_multipliers" field.
func (_u *UserUpdateOne) ClearPriorityMultipliers() *UserUpdateOne {
	_u.mutation.ClearPriorityMultipliers()
	return _u
}

// SetPartnerTier sets the "partner_tier" field.
func (_u *UserUpdateOne) SetPartnerTier(v user.PartnerTier) *UserUpdateOne {
	_u.mutation.SetPartnerTier(v)
	return _u
}

// SetNillablePartnerTier sets the "partner_tier" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillablePartnerTier(v *user.PartnerTier) *UserUpdateOne {
	if v != nil {
		_u.SetPartnerTier(*v)
	}
	return _u
}

// ClearPartnerTier clears the value of the "partner_tier" field.
func (_u *UserUpdateOne) ClearPartnerTier() *UserUpdateOne {
	_u.mutation.ClearPartnerTier()
	return _u
}

// SetTierManualOverride sets the "tier_manual_override" field.
func (_u *UserUpdateOne) SetTierManualOverride(v bool) *UserUpdateOne {
	_u.mutation.SetTierManualOverride(v)
	return _u
}

// SetNillableTierManualOverride sets the "tier_manual_override" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableTierManualOverride(v *bool) *UserUpdateOne {
	if v != nil {
		_u.SetTierManualOverride(*v)
	}
	return _u
}

// SetWalletBalance sets the "wallet_balance" field.
func (_u *UserUpdateOne) SetWalletBalance(v float64) *UserUpdateOne {
	_u.mutation.ResetWalletBalance()
	_u.mutation.SetWalletBalance(v)
	return _u
}

// SetNillableWalletBalance sets the "wallet_balance" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableWalletBalance(v *float64) *UserUpdateOne {
	if v != nil {
		_u.SetWalletBalance(*v)
	}
	return _u
}

// AddWalletBalance adds value to the "wallet_balance" field.
func (_u *UserUpdateOne) AddWalletBalance(v float64) *UserUpdateOne {
	_u.mutation.AddWalletBalance(v)
	return _u
}

// SetZones sets the "zones" field.
func (_u *UserUpdateOne) SetZones(v []string) *UserUpdateOne {
	_u.mutation.SetZones(v)
	return _u
}

// AppendZones appends value to the "zones" field.
func (_u *UserUpdateOne) AppendZones(v []string) *UserUpdateOne {
	_u.mutation.AppendZones(v)
	return _u
}

// ClearZones clears the value of the "zones" field.
func (_u *UserUpdateOne) ClearZones() *UserUpdateOne {
	_u.mutation.ClearZones()
	return _u
}

// SetReferredBy sets the "referred_by" field.
func (_u *UserUpdateOne) SetReferredBy(v uuid.UUID) *UserUpdateOne {
	_u.mutation.SetReferredBy(v)
	return _u
}

// SetNillableReferredBy sets the "referred_by" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableReferredBy(v *uuid.UUID) *UserUpdateOne {
	if v != nil {
		_u.SetReferredBy(*v)
	}
	return _u
}

// ClearReferredBy clears the value of the "referred_by" field.
func (_u *UserUpdateOne) ClearReferredBy() *UserUpdateOne {
	_u.mutation.ClearReferredBy()
	return _u
}

// SetReferrerID sets the "referrer" edge to the User entity by ID.
func (_u *UserUpdateOne) SetReferrerID(id uuid.UUID) *UserUpdateOne {
	_u.mutation.SetReferrerID(id)
	return _u
}

// SetNillableReferrerID sets the "referrer" edge to the User entity by ID if the given value is not nil.
func (_u *UserUpdateOne) SetNillableReferrerID(id *uuid.UUID) *UserUpdateOne {
	if id != nil {
		_u = _u.SetReferrerID(*id)
	}
	return _u
}

// SetReferrer sets the "referrer" edge to the User entity.
func (_u *UserUpdateOne) SetReferrer(v *User) *UserUpdateOne {
	return _u.SetReferrerID(v.ID)
}

// AddReferralIDs adds the "referrals" edge to the User entity by IDs.
func (_u *UserUpdateOne) AddReferralIDs(ids ...uuid.UUID) *UserUpdateOne {
	_u.mutation.AddReferralIDs(ids...)
	return _u
}

// AddReferrals adds the "referrals" edges to the User entity.
func (_u *UserUpdateOne) AddReferrals(v ...*User) *UserUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReferralIDs(ids...)
}

// AddShipmentIDs adds the "shipments" edge to the Shipment entity by IDs.
func (_u *UserUpdateOne) AddShipmentIDs(ids ...uuid.UUID) *UserUpdateOne {
	_u.mutation.AddShipmentIDs(ids...)
	return _u
}

// AddShipments adds the "shipments" edges to the Shipment entity.
func (_u *UserUpdateOne) AddShipments(v ...*Shipment) *UserUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddShipmentIDs(ids...)
}

// SetCourierStatsID sets the "courier_stats" edge to the CourierStats entity by ID.
func (_u *UserUpdateOne) SetCourierStatsID(id uuid.UUID) *UserUpdateOne {
	_u.mutation.SetCourierStatsID(id)
	return _u
}

// SetNillableCourierStatsID sets the "courier_stats" edge to the CourierStats entity by ID if the given value is not nil.
func (_u *UserUpdateOne) SetNillableCourierStatsID(id *uuid.UUID) *UserUpdateOne {
	if id != nil {
		_u = _u.SetCourierStatsID(*id)
	}
	return _u
}

// SetCourierStats sets the "courier_stats" edge to the CourierStats entity.
func (_u *UserUpdateOne) SetCourierStats(v *CourierStats) *UserUpdateOne {
	return _u.SetCourierStatsID(v.ID)
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdateOne) Mutation() *UserMutation {
	return _u.mutation
}

// ClearReferrer clears the "referrer" edge to the User entity.
func (_u *UserUpdateOne) ClearReferrer() *UserUpdateOne {
	_u.mutation.ClearReferrer()
	return _u
}

// ClearReferrals clears all "referrals" edges to the User entity.
func (_u *UserUpdateOne) ClearReferrals() *UserUpdateOne {
	_u.mutation.ClearReferrals()
	return _u
}

// RemoveReferralIDs removes the "referrals" edge to User entities by IDs.
func (_u *UserUpdateOne) RemoveReferralIDs(ids ...uuid.UUID) *UserUpdateOne {
	_u.mutation.RemoveReferralIDs(ids...)
	return _u
}

// RemoveReferrals removes "referrals" edges to User entities.
func (_u *UserUpdateOne) RemoveReferrals(v ...*User) *UserUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReferralIDs(ids...)
}

// ClearShipments clears all "shipments" edges to the Shipment entity.
func (_u *UserUpdateOne) ClearShipments() *UserUpdateOne {
	_u.mutation.ClearShipments()
	return _u
}

// RemoveShipmentIDs removes the "shipments" edge to Shipment entities by IDs.
func (_u *UserUpdateOne) RemoveShipmentIDs(ids ...uuid.UUID) *UserUpdateOne {
	_u.mutation.RemoveShipmentIDs(ids...)
	return _u
}

// RemoveShipments removes "shipments" edges to Shipment entities.
func (_u *UserUpdateOne) RemoveShipments(v ...*Shipment) *UserUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveShipmentIDs(ids...)
}

// ClearCourierStats clears the "courier_stats" edge to the CourierStats entity.
func (_u *UserUpdateOne) ClearCourierStats() *UserUpdateOne {
	_u.mutation.ClearCourierStats()
	return _u
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdateOne) Where(ps ...predicate.User) *UserUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserUpdateOne) Select(field string, fields ...string) *UserUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated User entity.
func (_u *UserUpdateOne) Save(ctx context.Context) (*User, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdateOne) SaveX(ctx context.Context) *User {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdateOne) check() error {
	if v, ok := _u.mutation.PublicID(); ok {
		if err := user.PublicIDValidator(v); err != nil {
			return &ValidationError{Name: "public_id", err: fmt.Errorf(`repo: validator failed for field "User.public_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := user.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "User.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := user.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "User.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := user.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "User.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := user.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "User.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PartnerTier(); ok {
		if err := user.PartnerTierValidator(v); err != nil {
			return &ValidationError{Name: "partner_tier", err: fmt.Errorf(`repo: validator failed for field "User.partner_tier": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdateOne) sqlSave(ctx context.Context) (_node *User, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "User.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, user.FieldID)
		for _, f := range fields {
			if !user.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != user.FieldID {
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
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(user.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(user.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PublicID(); ok {
		_spec.SetField(user.FieldPublicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(user.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(user.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(user.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Roles(); ok {
		_spec.SetField(user.FieldRoles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRoles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, user.FieldRoles, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(user.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FlatRateFee(); ok {
		_spec.SetField(user.FieldFlatRateFee, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFlatRateFee(); ok {
		_spec.AddField(user.FieldFlatRateFee, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PriorityMultipliers(); ok {
		_spec.SetField(user.FieldPriorityMultipliers, field.TypeJSON, value)
	}
	if _u.mutation.PriorityMultipliersCleared() {
		_spec.ClearField(user.FieldPriorityMultipliers, field.TypeJSON)
	}
	if value, ok := _u.mutation.PartnerTier(); ok {
		_spec.SetField(user.FieldPartnerTier, field.TypeEnum, value)
	}
	if _u.mutation.PartnerTierCleared() {
		_spec.ClearField(user.FieldPartnerTier, field.TypeEnum)
	}
	if value, ok := _u.mutation.TierManualOverride(); ok {
		_spec.SetField(user.FieldTierManualOverride, field.TypeBool, value)
	}
	if value, ok := _u.mutation.WalletBalance(); ok {
		_spec.SetField(user.FieldWalletBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWalletBalance(); ok {
		_spec.AddField(user.FieldWalletBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Zones(); ok {
		_spec.SetField(user.FieldZones, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedZones(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, user.FieldZones, value)
		})
	}
	if _u.mutation.ZonesCleared() {
		_spec.ClearField(user.FieldZones, field.TypeJSON)
	}
	if _u.mutation.ReferrerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReferrerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReferralsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReferralsIDs(); len(nodes) > 0 && !_u.mutation.ReferralsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReferralsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ShipmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedShipmentsIDs(); len(nodes) > 0 && !_u.mutation.ShipmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ShipmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CourierStatsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CourierStatsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &User{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
