// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/karimsaad/wasel_backend/internal/model"
	"github.com/karimsaad/wasel_backend/internal/repo/counter"
	"github.com/karimsaad/wasel_backend/internal/repo/courierstats"
	"github.com/karimsaad/wasel_backend/internal/repo/inventoryitem"
	"github.com/karimsaad/wasel_backend/internal/repo/predicate"
	"github.com/karimsaad/wasel_backend/internal/repo/shipment"
	"github.com/karimsaad/wasel_backend/internal/repo/tiersetting"
	"github.com/karimsaad/wasel_backend/internal/repo/transaction"
	"github.com/karimsaad/wasel_backend/internal/repo/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCounter       = "Counter"
	TypeCourierStats  = "CourierStats"
	TypeInventoryItem = "InventoryItem"
	TypeShipment      = "Shipment"
	TypeTierSetting   = "TierSetting"
	TypeTransaction   = "Transaction"
	TypeUser          = "User"
)

// CounterMutation represents an operation that mutates the Counter nodes in the graph.
type CounterMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	name          *string
	value         *int64
	addvalue      *int64
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Counter, error)
	predicates    []predicate.Counter
}

var _ ent.Mutation = (*CounterMutation)(nil)

// counterOption allows management of the mutation configuration using functional options.
type counterOption func(*CounterMutation)

// newCounterMutation creates new mutation for the Counter entity.
func newCounterMutation(c config, op Op, opts ...counterOption) *CounterMutation {
	m := &CounterMutation{
		config:        c,
		op:            op,
		typ:           TypeCounter,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCounterID sets the ID field of the mutation.
func withCounterID(id uuid.UUID) counterOption {
	return func(m *CounterMutation) {
		var (
			err   error
			once  sync.Once
			value *Counter
		)
		m.oldValue = func(ctx context.Context) (*Counter, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Counter.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCounter sets the old Counter of the mutation.
func withCounter(node *Counter) counterOption {
	return func(m *CounterMutation) {
		m.oldValue = func(context.Context) (*Counter, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CounterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CounterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Counter entities.
func (m *CounterMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CounterMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CounterMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Counter.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CounterMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CounterMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Counter entity.
// If the Counter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CounterMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CounterMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CounterMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CounterMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Counter entity.
// If the Counter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CounterMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CounterMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *CounterMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CounterMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Counter entity.
// If the Counter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CounterMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CounterMutation) ResetName() {
	m.name = nil
}

// SetValue sets the "value" field.
func (m *CounterMutation) SetValue(i int64) {
	m.value = &i
	m.addvalue = nil
}

// Value returns the value of the "value" field in the mutation.
func (m *CounterMutation) Value() (r int64, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the Counter entity.
// If the Counter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CounterMutation) OldValue(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// AddValue adds i to the "value" field.
func (m *CounterMutation) AddValue(i int64) {
	if m.addvalue != nil {
		*m.addvalue += i
	} else {
		m.addvalue = &i
	}
}

// AddedValue returns the value that was added to the "value" field in this mutation.
func (m *CounterMutation) AddedValue() (r int64, exists bool) {
	v := m.addvalue
	if v == nil {
		return
	}
	return *v, true
}

// ResetValue resets all changes to the "value" field.
func (m *CounterMutation) ResetValue() {
	m.value = nil
	m.addvalue = nil
}

// Where appends a list predicates to the CounterMutation builder.
func (m *CounterMutation) Where(ps ...predicate.Counter) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CounterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CounterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Counter, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CounterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CounterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Counter).
func (m *CounterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CounterMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, counter.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, counter.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, counter.FieldName)
	}
	if m.value != nil {
		fields = append(fields, counter.FieldValue)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CounterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case counter.FieldCreatedAt:
		return m.CreatedAt()
	case counter.FieldUpdatedAt:
		return m.UpdatedAt()
	case counter.FieldName:
		return m.Name()
	case counter.FieldValue:
		return m.Value()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CounterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case counter.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case counter.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case counter.FieldName:
		return m.OldName(ctx)
	case counter.FieldValue:
		return m.OldValue(ctx)
	}
	return nil, fmt.Errorf("unknown Counter field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CounterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case counter.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case counter.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case counter.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case counter.FieldValue:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	}
	return fmt.Errorf("unknown Counter field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CounterMutation) AddedFields() []string {
	var fields []string
	if m.addvalue != nil {
		fields = append(fields, counter.FieldValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CounterMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case counter.FieldValue:
		return m.AddedValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CounterMutation) AddField(name string, value ent.Value) error {
	switch name {
	case counter.FieldValue:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValue(v)
		return nil
	}
	return fmt.Errorf("unknown Counter numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CounterMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CounterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CounterMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Counter nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CounterMutation) ResetField(name string) error {
	switch name {
	case counter.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case counter.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case counter.FieldName:
		m.ResetName()
		return nil
	case counter.FieldValue:
		m.ResetValue()
		return nil
	}
	return fmt.Errorf("unknown Counter field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CounterMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CounterMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CounterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CounterMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CounterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CounterMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CounterMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Counter unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CounterMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Counter edge %s", name)
}

// CourierStatsMutation represents an operation that mutates the CourierStats nodes in the graph.
type CourierStatsMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	created_at              *time.Time
	updated_at              *time.Time
	commission_scheme       *courierstats.CommissionScheme
	commission_value        *float64
	addcommission_value     *float64
	consecutive_failures    *int
	addconsecutive_failures *int
	restricted              *bool
	restriction_reason      *string
	current_balance         *float64
	addcurrent_balance      *float64
	total_earnings          *float64
	addtotal_earnings       *float64
	clearedFields           map[string]struct{}
	courier                 *uuid.UUID
	clearedcourier          bool
	done                    bool
	oldValue                func(context.Context) (*CourierStats, error)
	predicates              []predicate.CourierStats
}

var _ ent.Mutation = (*CourierStatsMutation)(nil)

// courierstatsOption allows management of the mutation configuration using functional options.
type courierstatsOption func(*CourierStatsMutation)

// newCourierStatsMutation creates new mutation for the CourierStats entity.
func newCourierStatsMutation(c config, op Op, opts ...courierstatsOption) *CourierStatsMutation {
	m := &CourierStatsMutation{
		config:        c,
		op:            op,
		typ:           TypeCourierStats,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCourierStatsID sets the ID field of the mutation.
func withCourierStatsID(id uuid.UUID) courierstatsOption {
	return func(m *CourierStatsMutation) {
		var (
			err   error
			once  sync.Once
			value *CourierStats
		)
		m.oldValue = func(ctx context.Context) (*CourierStats, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CourierStats.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCourierStats sets the old CourierStats of the mutation.
func withCourierStats(node *CourierStats) courierstatsOption {
	return func(m *CourierStatsMutation) {
		m.oldValue = func(context.Context) (*CourierStats, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CourierStatsMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CourierStatsMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CourierStats entities.
func (m *CourierStatsMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CourierStatsMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CourierStatsMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CourierStats.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CourierStatsMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CourierStatsMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CourierStats entity.
// If the CourierStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourierStatsMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CourierStatsMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CourierStatsMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CourierStatsMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CourierStats entity.
// If the CourierStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourierStatsMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CourierStatsMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCourierID sets the "courier_id" field.
func (m *CourierStatsMutation) SetCourierID(u uuid.UUID) {
	m.courier = &u
}

// CourierID returns the value of the "courier_id" field in the mutation.
func (m *CourierStatsMutation) CourierID() (r uuid.UUID, exists bool) {
	v := m.courier
	if v == nil {
		return
	}
	return *v, true
}

// OldCourierID returns the old "courier_id" field's value of the CourierStats entity.
// If the CourierStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourierStatsMutation) OldCourierID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourierID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourierID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourierID: %w", err)
	}
	return oldValue.CourierID, nil
}

// ResetCourierID resets all changes to the "courier_id" field.
func (m *CourierStatsMutation) ResetCourierID() {
	m.courier = nil
}

// SetCommissionScheme sets the "commission_scheme" field.
func (m *CourierStatsMutation) SetCommissionScheme(cs courierstats.CommissionScheme) {
	m.commission_scheme = &cs
}

// CommissionScheme returns the value of the "commission_scheme" field in the mutation.
func (m *CourierStatsMutation) CommissionScheme() (r courierstats.CommissionScheme, exists bool) {
	v := m.commission_scheme
	if v == nil {
		return
	}
	return *v, true
}

// OldCommissionScheme returns the old "commission_scheme" field's value of the CourierStats entity.
// If the CourierStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourierStatsMutation) OldCommissionScheme(ctx context.Context) (v courierstats.CommissionScheme, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommissionScheme is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommissionScheme requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommissionScheme: %w", err)
	}
	return oldValue.CommissionScheme, nil
}

// ResetCommissionScheme resets all changes to the "commission_scheme" field.
func (m *CourierStatsMutation) ResetCommissionScheme() {
	m.commission_scheme = nil
}

// SetCommissionValue sets the "commission_value" field.
func (m *CourierStatsMutation) SetCommissionValue(f float64) {
	m.commission_value = &f
	m.addcommission_value = nil
}

// CommissionValue returns the value of the "commission_value" field in the mutation.
func (m *CourierStatsMutation) CommissionValue() (r float64, exists bool) {
	v := m.commission_value
	if v == nil {
		return
	}
	return *v, true
}

// OldCommissionValue returns the old "commission_value" field's value of the CourierStats entity.
// If the CourierStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourierStatsMutation) OldCommissionValue(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommissionValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommissionValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommissionValue: %w", err)
	}
	return oldValue.CommissionValue, nil
}

// AddCommissionValue adds f to the "commission_value" field.
func (m *CourierStatsMutation) AddCommissionValue(f float64) {
	if m.addcommission_value != nil {
		*m.addcommission_value += f
	} else {
		m.addcommission_value = &f
	}
}

// AddedCommissionValue returns the value that was added to the "commission_value" field in this mutation.
func (m *CourierStatsMutation) AddedCommissionValue() (r float64, exists bool) {
	v := m.addcommission_value
	if v == nil {
		return
	}
	return *v, true
}

// ResetCommissionValue resets all changes to the "commission_value" field.
func (m *CourierStatsMutation) ResetCommissionValue() {
	m.commission_value = nil
	m.addcommission_value = nil
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (m *CourierStatsMutation) SetConsecutiveFailures(i int) {
	m.consecutive_failures = &i
	m.addconsecutive_failures = nil
}

// ConsecutiveFailures returns the value of the "consecutive_failures" field in the mutation.
func (m *CourierStatsMutation) ConsecutiveFailures() (r int, exists bool) {
	v := m.consecutive_failures
	if v == nil {
		return
	}
	return *v, true
}

// OldConsecutiveFailures returns the old "consecutive_failures" field's value of the CourierStats entity.
// If the CourierStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourierStatsMutation) OldConsecutiveFailures(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsecutiveFailures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsecutiveFailures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsecutiveFailures: %w", err)
	}
	return oldValue.ConsecutiveFailures, nil
}

// AddConsecutiveFailures adds i to the "consecutive_failures" field.
func (m *CourierStatsMutation) AddConsecutiveFailures(i int) {
	if m.addconsecutive_failures != nil {
		*m.addconsecutive_failures += i
	} else {
		m.addconsecutive_failures = &i
	}
}

// AddedConsecutiveFailures returns the value that was added to the "consecutive_failures" field in this mutation.
func (m *CourierStatsMutation) AddedConsecutiveFailures() (r int, exists bool) {
	v := m.addconsecutive_failures
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsecutiveFailures resets all changes to the "consecutive_failures" field.
func (m *CourierStatsMutation) ResetConsecutiveFailures() {
	m.consecutive_failures = nil
	m.addconsecutive_failures = nil
}

// SetRestricted sets the "restricted" field.
func (m *CourierStatsMutation) SetRestricted(b bool) {
	m.restricted = &b
}

// Restricted returns the value of the "restricted" field in the mutation.
func (m *CourierStatsMutation) Restricted() (r bool, exists bool) {
	v := m.restricted
	if v == nil {
		return
	}
	return *v, true
}

// OldRestricted returns the old "restricted" field's value of the CourierStats entity.
// If the CourierStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourierStatsMutation) OldRestricted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRestricted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRestricted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRestricted: %w", err)
	}
	return oldValue.Restricted, nil
}

// ResetRestricted resets all changes to the "restricted" field.
func (m *CourierStatsMutation) ResetRestricted() {
	m.restricted = nil
}

// SetRestrictionReason sets the "restriction_reason" field.
func (m *CourierStatsMutation) SetRestrictionReason(s string) {
	m.restriction_reason = &s
}

// RestrictionReason returns the value of the "restriction_reason" field in the mutation.
func (m *CourierStatsMutation) RestrictionReason() (r string, exists bool) {
	v := m.restriction_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldRestrictionReason returns the old "restriction_reason" field's value of the CourierStats entity.
// If the CourierStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourierStatsMutation) OldRestrictionReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRestrictionReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRestrictionReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRestrictionReason: %w", err)
	}
	return oldValue.RestrictionReason, nil
}

// ClearRestrictionReason clears the value of the "restriction_reason" field.
func (m *CourierStatsMutation) ClearRestrictionReason() {
	m.restriction_reason = nil
	m.clearedFields[courierstats.FieldRestrictionReason] = struct{}{}
}

// RestrictionReasonCleared returns if the "restriction_reason" field was cleared in this mutation.
func (m *CourierStatsMutation) RestrictionReasonCleared() bool {
	_, ok := m.clearedFields[courierstats.FieldRestrictionReason]
	return ok
}

// ResetRestrictionReason resets all changes to the "restriction_reason" field.
func (m *CourierStatsMutation) ResetRestrictionReason() {
	m.restriction_reason = nil
	delete(m.clearedFields, courierstats.FieldRestrictionReason)
}

// SetCurrentBalance sets the "current_balance" field.
func (m *CourierStatsMutation) SetCurrentBalance(f float64) {
	m.current_balance = &f
	m.addcurrent_balance = nil
}

// CurrentBalance returns the value of the "current_balance" field in the mutation.
func (m *CourierStatsMutation) CurrentBalance() (r float64, exists bool) {
	v := m.current_balance
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentBalance returns the old "current_balance" field's value of the CourierStats entity.
// If the CourierStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourierStatsMutation) OldCurrentBalance(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentBalance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentBalance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentBalance: %w", err)
	}
	return oldValue.CurrentBalance, nil
}

// AddCurrentBalance adds f to the "current_balance" field.
func (m *CourierStatsMutation) AddCurrentBalance(f float64) {
	if m.addcurrent_balance != nil {
		*m.addcurrent_balance += f
	} else {
		m.addcurrent_balance = &f
	}
}

// AddedCurrentBalance returns the value that was added to the "current_balance" field in this mutation.
func (m *CourierStatsMutation) AddedCurrentBalance() (r float64, exists bool) {
	v := m.addcurrent_balance
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentBalance resets all changes to the "current_balance" field.
func (m *CourierStatsMutation) ResetCurrentBalance() {
	m.current_balance = nil
	m.addcurrent_balance = nil
}

// SetTotalEarnings sets the "total_earnings" field.
func (m *CourierStatsMutation) SetTotalEarnings(f float64) {
	m.total_earnings = &f
	m.addtotal_earnings = nil
}

// TotalEarnings returns the value of the "total_earnings" field in the mutation.
func (m *CourierStatsMutation) TotalEarnings() (r float64, exists bool) {
	v := m.total_earnings
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalEarnings returns the old "total_earnings" field's value of the CourierStats entity.
// If the CourierStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourierStatsMutation) OldTotalEarnings(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalEarnings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalEarnings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalEarnings: %w", err)
	}
	return oldValue.TotalEarnings, nil
}

// AddTotalEarnings adds f to the "total_earnings" field.
func (m *CourierStatsMutation) AddTotalEarnings(f float64) {
	if m.addtotal_earnings != nil {
		*m.addtotal_earnings += f
	} else {
		m.addtotal_earnings = &f
	}
}

// AddedTotalEarnings returns the value that was added to the "total_earnings" field in this mutation.
func (m *CourierStatsMutation) AddedTotalEarnings() (r float64, exists bool) {
	v := m.addtotal_earnings
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalEarnings resets all changes to the "total_earnings" field.
func (m *CourierStatsMutation) ResetTotalEarnings() {
	m.total_earnings = nil
	m.addtotal_earnings = nil
}

// ClearCourier clears the "courier" edge to the User entity.
func (m *CourierStatsMutation) ClearCourier() {
	m.clearedcourier = true
	m.clearedFields[courierstats.FieldCourierID] = struct{}{}
}

// CourierCleared reports if the "courier" edge to the User entity was cleared.
func (m *CourierStatsMutation) CourierCleared() bool {
	return m.clearedcourier
}

// CourierIDs returns the "courier" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CourierID instead. It exists only for internal usage by the builders.
func (m *CourierStatsMutation) CourierIDs() (ids []uuid.UUID) {
	if id := m.courier; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCourier resets all changes to the "courier" edge.
func (m *CourierStatsMutation) ResetCourier() {
	m.courier = nil
	m.clearedcourier = false
}

// Where appends a list predicates to the CourierStatsMutation builder.
func (m *CourierStatsMutation) Where(ps ...predicate.CourierStats) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CourierStatsMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CourierStatsMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CourierStats, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CourierStatsMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CourierStatsMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CourierStats).
func (m *CourierStatsMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CourierStatsMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, courierstats.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, courierstats.FieldUpdatedAt)
	}
	if m.courier != nil {
		fields = append(fields, courierstats.FieldCourierID)
	}
	if m.commission_scheme != nil {
		fields = append(fields, courierstats.FieldCommissionScheme)
	}
	if m.commission_value != nil {
		fields = append(fields, courierstats.FieldCommissionValue)
	}
	if m.consecutive_failures != nil {
		fields = append(fields, courierstats.FieldConsecutiveFailures)
	}
	if m.restricted != nil {
		fields = append(fields, courierstats.FieldRestricted)
	}
	if m.restriction_reason != nil {
		fields = append(fields, courierstats.FieldRestrictionReason)
	}
	if m.current_balance != nil {
		fields = append(fields, courierstats.FieldCurrentBalance)
	}
	if m.total_earnings != nil {
		fields = append(fields, courierstats.FieldTotalEarnings)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CourierStatsMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case courierstats.FieldCreatedAt:
		return m.CreatedAt()
	case courierstats.FieldUpdatedAt:
		return m.UpdatedAt()
	case courierstats.FieldCourierID:
		return m.CourierID()
	case courierstats.FieldCommissionScheme:
		return m.CommissionScheme()
	case courierstats.FieldCommissionValue:
		return m.CommissionValue()
	case courierstats.FieldConsecutiveFailures:
		return m.ConsecutiveFailures()
	case courierstats.FieldRestricted:
		return m.Restricted()
	case courierstats.FieldRestrictionReason:
		return m.RestrictionReason()
	case courierstats.FieldCurrentBalance:
		return m.CurrentBalance()
	case courierstats.FieldTotalEarnings:
		return m.TotalEarnings()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CourierStatsMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case courierstats.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case courierstats.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case courierstats.FieldCourierID:
		return m.OldCourierID(ctx)
	case courierstats.FieldCommissionScheme:
		return m.OldCommissionScheme(ctx)
	case courierstats.FieldCommissionValue:
		return m.OldCommissionValue(ctx)
	case courierstats.FieldConsecutiveFailures:
		return m.OldConsecutiveFailures(ctx)
	case courierstats.FieldRestricted:
		return m.OldRestricted(ctx)
	case courierstats.FieldRestrictionReason:
		return m.OldRestrictionReason(ctx)
	case courierstats.FieldCurrentBalance:
		return m.OldCurrentBalance(ctx)
	case courierstats.FieldTotalEarnings:
		return m.OldTotalEarnings(ctx)
	}
	return nil, fmt.Errorf("unknown CourierStats field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CourierStatsMutation) SetField(name string, value ent.Value) error {
	switch name {
	case courierstats.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case courierstats.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case courierstats.FieldCourierID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourierID(v)
		return nil
	case courierstats.FieldCommissionScheme:
		v, ok := value.(courierstats.CommissionScheme)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommissionScheme(v)
		return nil
	case courierstats.FieldCommissionValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommissionValue(v)
		return nil
	case courierstats.FieldConsecutiveFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsecutiveFailures(v)
		return nil
	case courierstats.FieldRestricted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRestricted(v)
		return nil
	case courierstats.FieldRestrictionReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRestrictionReason(v)
		return nil
	case courierstats.FieldCurrentBalance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentBalance(v)
		return nil
	case courierstats.FieldTotalEarnings:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalEarnings(v)
		return nil
	}
	return fmt.Errorf("unknown CourierStats field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CourierStatsMutation) AddedFields() []string {
	var fields []string
	if m.addcommission_value != nil {
		fields = append(fields, courierstats.FieldCommissionValue)
	}
	if m.addconsecutive_failures != nil {
		fields = append(fields, courierstats.FieldConsecutiveFailures)
	}
	if m.addcurrent_balance != nil {
		fields = append(fields, courierstats.FieldCurrentBalance)
	}
	if m.addtotal_earnings != nil {
		fields = append(fields, courierstats.FieldTotalEarnings)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CourierStatsMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case courierstats.FieldCommissionValue:
		return m.AddedCommissionValue()
	case courierstats.FieldConsecutiveFailures:
		return m.AddedConsecutiveFailures()
	case courierstats.FieldCurrentBalance:
		return m.AddedCurrentBalance()
	case courierstats.FieldTotalEarnings:
		return m.AddedTotalEarnings()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CourierStatsMutation) AddField(name string, value ent.Value) error {
	switch name {
	case courierstats.FieldCommissionValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCommissionValue(v)
		return nil
	case courierstats.FieldConsecutiveFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsecutiveFailures(v)
		return nil
	case courierstats.FieldCurrentBalance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentBalance(v)
		return nil
	case courierstats.FieldTotalEarnings:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalEarnings(v)
		return nil
	}
	return fmt.Errorf("unknown CourierStats numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CourierStatsMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(courierstats.FieldRestrictionReason) {
		fields = append(fields, courierstats.FieldRestrictionReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CourierStatsMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CourierStatsMutation) ClearField(name string) error {
	switch name {
	case courierstats.FieldRestrictionReason:
		m.ClearRestrictionReason()
		return nil
	}
	return fmt.Errorf("unknown CourierStats nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CourierStatsMutation) ResetField(name string) error {
	switch name {
	case courierstats.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case courierstats.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case courierstats.FieldCourierID:
		m.ResetCourierID()
		return nil
	case courierstats.FieldCommissionScheme:
		m.ResetCommissionScheme()
		return nil
	case courierstats.FieldCommissionValue:
		m.ResetCommissionValue()
		return nil
	case courierstats.FieldConsecutiveFailures:
		m.ResetConsecutiveFailures()
		return nil
	case courierstats.FieldRestricted:
		m.ResetRestricted()
		return nil
	case courierstats.FieldRestrictionReason:
		m.ResetRestrictionReason()
		return nil
	case courierstats.FieldCurrentBalance:
		m.ResetCurrentBalance()
		return nil
	case courierstats.FieldTotalEarnings:
		m.ResetTotalEarnings()
		return nil
	}
	return fmt.Errorf("unknown CourierStats field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CourierStatsMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.courier != nil {
		edges = append(edges, courierstats.EdgeCourier)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CourierStatsMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case courierstats.EdgeCourier:
		if id := m.courier; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CourierStatsMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CourierStatsMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CourierStatsMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcourier {
		edges = append(edges, courierstats.EdgeCourier)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CourierStatsMutation) EdgeCleared(name string) bool {
	switch name {
	case courierstats.EdgeCourier:
		return m.clearedcourier
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CourierStatsMutation) ClearEdge(name string) error {
	switch name {
	case courierstats.EdgeCourier:
		m.ClearCourier()
		return nil
	}
	return fmt.Errorf("unknown CourierStats unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CourierStatsMutation) ResetEdge(name string) error {
	switch name {
	case courierstats.EdgeCourier:
		m.ResetCourier()
		return nil
	}
	return fmt.Errorf("unknown CourierStats edge %s", name)
}

// InventoryItemMutation represents an operation that mutates the InventoryItem nodes in the graph.
type InventoryItemMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	name          *string
	quantity      *int
	addquantity   *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*InventoryItem, error)
	predicates    []predicate.InventoryItem
}

var _ ent.Mutation = (*InventoryItemMutation)(nil)

// inventoryitemOption allows management of the mutation configuration using functional options.
type inventoryitemOption func(*InventoryItemMutation)

// newInventoryItemMutation creates new mutation for the InventoryItem entity.
func newInventoryItemMutation(c config, op Op, opts ...inventoryitemOption) *InventoryItemMutation {
	m := &InventoryItemMutation{
		config:        c,
		op:            op,
		typ:           TypeInventoryItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInventoryItemID sets the ID field of the mutation.
func withInventoryItemID(id uuid.UUID) inventoryitemOption {
	return func(m *InventoryItemMutation) {
		var (
			err   error
			once  sync.Once
			value *InventoryItem
		)
		m.oldValue = func(ctx context.Context) (*InventoryItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InventoryItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInventoryItem sets the old InventoryItem of the mutation.
func withInventoryItem(node *InventoryItem) inventoryitemOption {
	return func(m *InventoryItemMutation) {
		m.oldValue = func(context.Context) (*InventoryItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InventoryItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InventoryItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InventoryItem entities.
func (m *InventoryItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InventoryItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InventoryItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InventoryItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *InventoryItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InventoryItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InventoryItem entity.
// If the InventoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InventoryItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InventoryItemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InventoryItemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the InventoryItem entity.
// If the InventoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryItemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InventoryItemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *InventoryItemMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *InventoryItemMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the InventoryItem entity.
// If the InventoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryItemMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *InventoryItemMutation) ResetName() {
	m.name = nil
}

// SetQuantity sets the "quantity" field.
func (m *InventoryItemMutation) SetQuantity(i int) {
	m.quantity = &i
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *InventoryItemMutation) Quantity() (r int, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the InventoryItem entity.
// If the InventoryItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InventoryItemMutation) OldQuantity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds i to the "quantity" field.
func (m *InventoryItemMutation) AddQuantity(i int) {
	if m.addquantity != nil {
		*m.addquantity += i
	} else {
		m.addquantity = &i
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *InventoryItemMutation) AddedQuantity() (r int, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *InventoryItemMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
}

// Where appends a list predicates to the InventoryItemMutation builder.
func (m *InventoryItemMutation) Where(ps ...predicate.InventoryItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InventoryItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InventoryItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InventoryItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InventoryItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InventoryItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InventoryItem).
func (m *InventoryItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InventoryItemMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, inventoryitem.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, inventoryitem.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, inventoryitem.FieldName)
	}
	if m.quantity != nil {
		fields = append(fields, inventoryitem.FieldQuantity)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InventoryItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case inventoryitem.FieldCreatedAt:
		return m.CreatedAt()
	case inventoryitem.FieldUpdatedAt:
		return m.UpdatedAt()
	case inventoryitem.FieldName:
		return m.Name()
	case inventoryitem.FieldQuantity:
		return m.Quantity()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InventoryItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case inventoryitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case inventoryitem.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case inventoryitem.FieldName:
		return m.OldName(ctx)
	case inventoryitem.FieldQuantity:
		return m.OldQuantity(ctx)
	}
	return nil, fmt.Errorf("unknown InventoryItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InventoryItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case inventoryitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case inventoryitem.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case inventoryitem.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case inventoryitem.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	}
	return fmt.Errorf("unknown InventoryItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InventoryItemMutation) AddedFields() []string {
	var fields []string
	if m.addquantity != nil {
		fields = append(fields, inventoryitem.FieldQuantity)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InventoryItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case inventoryitem.FieldQuantity:
		return m.AddedQuantity()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InventoryItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case inventoryitem.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	}
	return fmt.Errorf("unknown InventoryItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InventoryItemMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InventoryItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InventoryItemMutation) ClearField(name string) error {
	return fmt.Errorf("unknown InventoryItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InventoryItemMutation) ResetField(name string) error {
	switch name {
	case inventoryitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case inventoryitem.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case inventoryitem.FieldName:
		m.ResetName()
		return nil
	case inventoryitem.FieldQuantity:
		m.ResetQuantity()
		return nil
	}
	return fmt.Errorf("unknown InventoryItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InventoryItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InventoryItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InventoryItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InventoryItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InventoryItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InventoryItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InventoryItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown InventoryItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InventoryItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown InventoryItem edge %s", name)
}

// ShipmentMutation represents an operation that mutates the Shipment nodes in the graph.
type ShipmentMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	created_at            *time.Time
	updated_at            *time.Time
	display_id            *string
	recipient_name        *string
	recipient_phone       *string
	from_address          *model.Address
	to_address            *model.Address
	priority              *shipment.Priority
	payment_method        *shipment.PaymentMethod
	package_value         *float64
	addpackage_value      *float64
	amount_to_collect     *float64
	addamount_to_collect  *float64
	shipping_fee          *float64
	addshipping_fee       *float64
	courier_commission    *float64
	addcourier_commission *float64
	price                 *float64
	addprice              *float64
	status                *shipment.Status
	status_history        *[]model.StatusEvent
	appendstatus_history  []model.StatusEvent
	courier_id            *uuid.UUID
	packaging_log         *[]model.PackagingLine
	appendpackaging_log   []model.PackagingLine
	packaging_notes       *string
	failure_reason        *string
	failure_photo         *string
	delivered_at          *time.Time
	clearedFields         map[string]struct{}
	client                *uuid.UUID
	clearedclient         bool
	done                  bool
	oldValue              func(context.Context) (*Shipment, error)
	predicates            []predicate.Shipment
}

var _ ent.Mutation = (*ShipmentMutation)(nil)

// shipmentOption allows management of the mutation configuration using functional options.
type shipmentOption func(*ShipmentMutation)

// newShipmentMutation creates new mutation for the Shipment entity.
func newShipmentMutation(c config, op Op, opts ...shipmentOption) *ShipmentMutation {
	m := &ShipmentMutation{
		config:        c,
		op:            op,
		typ:           TypeShipment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withShipmentID sets the ID field of the mutation.
func withShipmentID(id uuid.UUID) shipmentOption {
	return func(m *ShipmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Shipment
		)
		m.oldValue = func(ctx context.Context) (*Shipment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Shipment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withShipment sets the old Shipment of the mutation.
func withShipment(node *Shipment) shipmentOption {
	return func(m *ShipmentMutation) {
		m.oldValue = func(context.Context) (*Shipment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ShipmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ShipmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Shipment entities.
func (m *ShipmentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ShipmentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ShipmentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Shipment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ShipmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ShipmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Shipment entity.
// If the Shipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShipmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ShipmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ShipmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ShipmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Shipment entity.
// If the Shipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShipmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ShipmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDisplayID sets the "display_id" field.
func (m *ShipmentMutation) SetDisplayID(s string) {
	m.display_id = &s
}

// DisplayID returns the value of the "display_id" field in the mutation.
func (m *ShipmentMutation) DisplayID() (r string, exists bool) {
	v := m.display_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayID returns the old "display_id" field's value of the Shipment entity.
// If the Shipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShipmentMutation) OldDisplayID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayID: %w", err)
	}
	return oldValue.DisplayID, nil
}

// ResetDisplayID resets all changes to the "display_id" field.
func (m *ShipmentMutation) ResetDisplayID() {
	m.display_id = nil
}

// SetClientID sets the "client_id" field.
func (m *ShipmentMutation) SetClientID(u uuid.UUID) {
	m.client = &u
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *ShipmentMutation) ClientID() (r uuid.UUID, exists bool) {
	v := m.client
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the Shipment entity.
// If the Shipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShipmentMutation) OldClientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ResetClientID resets all changes to the "client_id" field.
func (m *ShipmentMutation) ResetClientID() {
	m.client = nil
}

// SetRecipientName sets the "recipient_name" field.
func (m *ShipmentMutation) SetRecipientName(s string) {
	m.recipient_name = &s
}

// RecipientName returns the value of the "recipient_name" field in the mutation.
func (m *ShipmentMutation) RecipientName() (r string, exists bool) {
	v := m.recipient_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRecipientName returns the old "recipient_name" field's value of the Shipment entity.
// If the Shipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShipmentMutation) OldRecipientName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecipientName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecipientName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecipientName: %w", err)
	}
	return oldValue.RecipientName, nil
}

// ResetRecipientName resets all changes to the "recipient_name" field.
func (m *ShipmentMutation) ResetRecipientName() {
	m.recipient_name = nil
}

// SetRecipientPhone sets the "recipient_phone" field.
func (m *ShipmentMutation) SetRecipientPhone(s string) {
	m.recipient_phone = &s
}

// RecipientPhone returns the value of the "recipient_phone" field in the mutation.
func (m *ShipmentMutation) RecipientPhone() (r string, exists bool) {
	v := m.recipient_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldRecipientPhone returns the old "recipient_phone" field's value of the Shipment entity.
// If the Shipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShipmentMutation) OldRecipientPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecipientPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecipientPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecipientPhone: %w", err)
	}
	return oldValue.RecipientPhone, nil
}

// ResetRecipientPhone resets all changes to the "recipient_phone" field.
func (m *ShipmentMutation) ResetRecipientPhone() {
	m.recipient_phone = nil
}

// SetFromAddress sets the "from_address" field.
func (m *ShipmentMutation) SetFromAddress(value model.Address) {
	m.from_address = &value
}

// FromAddress returns the value of the "from_address" field in the mutation.
func (m *ShipmentMutation) FromAddress() (r model.Address, exists bool) {
	v := m.from_address
	if v == nil {
		return
	}
	return *v, true
}

// OldFromAddress returns the old "from_address" field's value of the Shipment entity.
// If the Shipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShipmentMutation) OldFromAddress(ctx context.Context) (v model.Address, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromAddress: %w", err)
	}
	return oldValue.FromAddress, nil
}

// ResetFromAddress resets all changes to the "from_address" field.
func (m *ShipmentMutation) ResetFromAddress() {
	m.from_address = nil
}

// SetToAddress sets the "to_address" field.
func (m *ShipmentMutation) SetToAddress(value model.Address) {
	m.to_address = &value
}

// ToAddress returns the value of the "to_address" field in the mutation.
func (m *ShipmentMutation) ToAddress() (r model.Address, exists bool) {
	v := m.to_address
	if v == nil {
		return
	}
	return *v, true
}

// OldToAddress returns the old "to_address" field's value of the Shipment entity.
// If the Shipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShipmentMutation) OldToAddress(ctx context.Context) (v model.Address, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToAddress: %w", err)
	}
	return oldValue.ToAddress, nil
}

// ResetToAddress resets all changes to the "to_address" field.
func (m *ShipmentMutation) ResetToAddress() {
	m.to_address = nil
}

// SetPriority sets the "priority" field.
func (m *ShipmentMutation) SetPriority(s shipment.Priority) {
	m.priority = &s
}

// Priority returns the value of the "priority" field in the mutation.
func (m *ShipmentMutation) Priority() (r shipment.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Shipment entity.
// If the Shipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShipmentMutation) OldPriority(ctx context.Context) (v shipment.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *ShipmentMutation) ResetPriority() {
	m.priority = nil
}

// SetPaymentMethod sets the "payment_method" field.
func (m *ShipmentMutation) SetPaymentMethod(sm shipment.PaymentMethod) {
	m.payment_method = &sm
}

// PaymentMethod returns the value of the "payment_method" field in the mutation.
func (m *ShipmentMutation) PaymentMethod() (r shipment.PaymentMethod, exists bool) {
	v := m.payment_method
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentMethod returns the old "payment_method" field's value of the Shipment entity.
// If the Shipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShipmentMutation) OldPaymentMethod(ctx context.Context) (v shipment.PaymentMethod, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentMethod: %w", err)
	}
	return oldValue.PaymentMethod, nil
}

// ResetPaymentMethod resets all changes to the "payment_method" field.
func (m *ShipmentMutation) ResetPaymentMethod() {
	m.payment_method = nil
}

// SetPackageValue sets the "package_value" field.
func (m *ShipmentMutation) SetPackageValue(f float64) {
	m.package_value = &f
	m.addpackage_value = nil
}

// PackageValue returns the value of the "package_value" field in the mutation.
func (m *ShipmentMutation) PackageValue() (r float64, exists bool) {
	v := m.package_value
	if v == nil {
		return
	}
	return *v, true
}

// OldPackageValue returns the old "package_value" field's value of the Shipment entity.
// If the Shipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShipmentMutation) OldPackageValue(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPackageValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPackageValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPackageValue: %w", err)
	}
	return oldValue.PackageValue, nil
}

// AddPackageValue adds f to the "package_value" field.
func (m *ShipmentMutation) AddPackageValue(f float64) {
	if m.addpackage_value != nil {
		*m.addpackage_value += f
	} else {
		m.addpackage_value = &f
	}
}

// AddedPackageValue returns the value that was added to the "package_value" field in this mutation.
func (m *ShipmentMutation) AddedPackageValue() (r float64, exists bool) {
	v := m.addpackage_value
	if v == nil {
		return
	}
	return *v, true
}

// ResetPackageValue resets all changes to the "package_value" field.
func (m *ShipmentMutation) ResetPackageValue() {
	m.package_value = nil
	m.addpackage_value = nil
}

// SetAmountToCollect sets the "amount_to_collect" field.
func (m *ShipmentMutation) SetAmountToCollect(f float64) {
	m.amount_to_collect = &f
	m.addamount_to_collect = nil
}

// AmountToCollect returns the value of the "amount_to_collect" field in the mutation.
func (m *ShipmentMutation) AmountToCollect() (r float64, exists bool) {
	v := m.amount_to_collect
	if v == nil {
		return
	}
	return *v, true
}

// OldAmountToCollect returns the old "amount_to_collect" field's value of the Shipment entity.
// If the Shipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShipmentMutation) OldAmountToCollect(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmountToCollect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmountToCollect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmountToCollect: %w", err)
	}
	return oldValue.AmountToCollect, nil
}

// AddAmountToCollect adds f to the "amount_to_collect" field.
func (m *ShipmentMutation) AddAmountToCollect(f float64) {
	if m.addamount_to_collect != nil {
		*m.addamount_to_collect += f
	} else {
		m.addamount_to_collect = &f
	}
}

// AddedAmountToCollect returns the value that was added to the "amount_to_collect" field in this mutation.
func (m *ShipmentMutation) AddedAmountToCollect() (r float64, exists bool) {
	v := m.addamount_to_collect
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmountToCollect resets all changes to the "amount_to_collect" field.
func (m *ShipmentMutation) ResetAmountToCollect() {
	m.amount_to_collect = nil
	m.addamount_to_collect = nil
}

// SetShippingFee sets the "shipping_fee" field.
func (m *ShipmentMutation) SetShippingFee(f float64) {
	m.shipping_fee = &f
	m.addshipping_fee = nil
}

// ShippingFee returns the value of the "shipping_fee" field in the mutation.
func (m *ShipmentMutation) ShippingFee() (r float64, exists bool) {
	v := m.shipping_fee
	if v == nil {
		return
	}
	return *v, true
}

// OldShippingFee returns the old "shipping_fee" field's value of the Shipment entity.
// If the Shipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShipmentMutation) OldShippingFee(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShippingFee is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShippingFee requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShippingFee: %w", err)
	}
	return oldValue.ShippingFee, nil
}

// AddShippingFee adds f to the "shipping_fee" field.
func (m *ShipmentMutation) AddShippingFee(f float64) {
	if m.addshipping_fee != nil {
		*m.addshipping_fee += f
	} else {
		m.addshipping_fee = &f
	}
}

// AddedShippingFee returns the value that was added to the "shipping_fee" field in this mutation.
func (m *ShipmentMutation) AddedShippingFee() (r float64, exists bool) {
	v := m.addshipping_fee
	if v == nil {
		return
	}
	return *v, true
}

// ResetShippingFee resets all changes to the "shipping_fee" field.
func (m *ShipmentMutation) ResetShippingFee() {
	m.shipping_fee = nil
	m.addshipping_fee = nil
}

// SetCourierCommission sets the "courier_commission" field.
func (m *ShipmentMutation) SetCourierCommission(f float64) {
	m.courier_commission = &f
	m.addcourier_commission = nil
}

// CourierCommission returns the value of the "courier_commission" field in the mutation.
func (m *ShipmentMutation) CourierCommission() (r float64, exists bool) {
	v := m.courier_commission
	if v == nil {
		return
	}
	return *v, true
}

// OldCourierCommission returns the old "courier_commission" field's value of the Shipment entity.
// If the Shipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShipmentMutation) OldCourierCommission(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourierCommission is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourierCommission requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourierCommission: %w", err)
	}
	return oldValue.CourierCommission, nil
}

// AddCourierCommission adds f to the "courier_commission" field.
func (m *ShipmentMutation) AddCourierCommission(f float64) {
	if m.addcourier_commission != nil {
		*m.addcourier_commission += f
	} else {
		m.addcourier_commission = &f
	}
}

// AddedCourierCommission returns the value that was added to the "courier_commission" field in this mutation.
func (m *ShipmentMutation) AddedCourierCommission() (r float64, exists bool) {
	v := m.addcourier_commission
	if v == nil {
		return
	}
	return *v, true
}

// ResetCourierCommission resets all changes to the "courier_commission" field.
func (m *ShipmentMutation) ResetCourierCommission() {
	m.courier_commission = nil
	m.addcourier_commission = nil
}

// SetPrice sets the "price" field.
func (m *ShipmentMutation) SetPrice(f float64) {
	m.price = &f
	m.addprice = nil
}

// Price returns the value of the "price" field in the mutation.
func (m *ShipmentMutation) Price() (r float64, exists bool) {
	v := m.price
	if v == nil {
		return
	}
	return *v, true
}

// OldPrice returns the old "price" field's value of the Shipment entity.
// If the Shipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShipmentMutation) OldPrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrice: %w", err)
	}
	return oldValue.Price, nil
}

// AddPrice adds f to the "price" field.
func (m *ShipmentMutation) AddPrice(f float64) {
	if m.addprice != nil {
		*m.addprice += f
	} else {
		m.addprice = &f
	}
}

// AddedPrice returns the value that was added to the "price" field in this mutation.
func (m *ShipmentMutation) AddedPrice() (r float64, exists bool) {
	v := m.addprice
	if v == nil {
		return
	}
	return *v, true
}

// ResetPrice resets all changes to the "price" field.
func (m *ShipmentMutation) ResetPrice() {
	m.price = nil
	m.addprice = nil
}

// SetStatus sets the "status" field.
func (m *ShipmentMutation) SetStatus(s shipment.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ShipmentMutation) Status() (r shipment.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Shipment entity.
// If the Shipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShipmentMutation) OldStatus(ctx context.Context) (v shipment.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ShipmentMutation) ResetStatus() {
	m.status = nil
}

// SetStatusHistory sets the "status_history" field.
func (m *ShipmentMutation) SetStatusHistory(me []model.StatusEvent) {
	m.status_history = &me
	m.appendstatus_history = nil
}

// StatusHistory returns the value of the "status_history" field in the mutation.
func (m *ShipmentMutation) StatusHistory() (r []model.StatusEvent, exists bool) {
	v := m.status_history
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusHistory returns the old "status_history" field's value of the Shipment entity.
// If the Shipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShipmentMutation) OldStatusHistory(ctx context.Context) (v []model.StatusEvent, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusHistory: %w", err)
	}
	return oldValue.StatusHistory, nil
}

// AppendStatusHistory adds me to the "status_history" field.
func (m *ShipmentMutation) AppendStatusHistory(me []model.StatusEvent) {
	m.appendstatus_history = append(m.appendstatus_history, me...)
}

// AppendedStatusHistory returns the list of values that were appended to the "status_history" field in this mutation.
func (m *ShipmentMutation) AppendedStatusHistory() ([]model.StatusEvent, bool) {
	if len(m.appendstatus_history) == 0 {
		return nil, false
	}
	return m.appendstatus_history, true
}

// ResetStatusHistory resets all changes to the "status_history" field.
func (m *ShipmentMutation) ResetStatusHistory() {
	m.status_history = nil
	m.appendstatus_history = nil
}

// SetCourierID sets the "courier_id" field.
func (m *ShipmentMutation) SetCourierID(u uuid.UUID) {
	m.courier_id = &u
}

// CourierID returns the value of the "courier_id" field in the mutation.
func (m *ShipmentMutation) CourierID() (r uuid.UUID, exists bool) {
	v := m.courier_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCourierID returns the old "courier_id" field's value of the Shipment entity.
// If the Shipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShipmentMutation) OldCourierID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourierID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourierID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourierID: %w", err)
	}
	return oldValue.CourierID, nil
}

// ClearCourierID clears the value of the "courier_id" field.
func (m *ShipmentMutation) ClearCourierID() {
	m.courier_id = nil
	m.clearedFields[shipment.FieldCourierID] = struct{}{}
}

// CourierIDCleared returns if the "courier_id" field was cleared in this mutation.
func (m *ShipmentMutation) CourierIDCleared() bool {
	_, ok := m.clearedFields[shipment.FieldCourierID]
	return ok
}

// ResetCourierID resets all changes to the "courier_id" field.
func (m *ShipmentMutation) ResetCourierID() {
	m.courier_id = nil
	delete(m.clearedFields, shipment.FieldCourierID)
}

// SetPackagingLog sets the "packaging_log" field.
func (m *ShipmentMutation) SetPackagingLog(ml []model.PackagingLine) {
	m.packaging_log = &ml
	m.appendpackaging_log = nil
}

// PackagingLog returns the value of the "packaging_log" field in the mutation.
func (m *ShipmentMutation) PackagingLog() (r []model.PackagingLine, exists bool) {
	v := m.packaging_log
	if v == nil {
		return
	}
	return *v, true
}

// OldPackagingLog returns the old "packaging_log" field's value of the Shipment entity.
// If the Shipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShipmentMutation) OldPackagingLog(ctx context.Context) (v []model.PackagingLine, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPackagingLog is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPackagingLog requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPackagingLog: %w", err)
	}
	return oldValue.PackagingLog, nil
}

// AppendPackagingLog adds ml to the "packaging_log" field.
func (m *ShipmentMutation) AppendPackagingLog(ml []model.PackagingLine) {
	m.appendpackaging_log = append(m.appendpackaging_log, ml...)
}

// AppendedPackagingLog returns the list of values that were appended to the "packaging_log" field in this mutation.
func (m *ShipmentMutation) AppendedPackagingLog() ([]model.PackagingLine, bool) {
	if len(m.appendpackaging_log) == 0 {
		return nil, false
	}
	return m.appendpackaging_log, true
}

// ClearPackagingLog clears the value of the "packaging_log" field.
func (m *ShipmentMutation) ClearPackagingLog() {
	m.packaging_log = nil
	m.appendpackaging_log = nil
	m.clearedFields[shipment.FieldPackagingLog] = struct{}{}
}

// PackagingLogCleared returns if the "packaging_log" field was cleared in this mutation.
func (m *ShipmentMutation) PackagingLogCleared() bool {
	_, ok := m.clearedFields[shipment.FieldPackagingLog]
	return ok
}

// ResetPackagingLog resets all changes to the "packaging_log" field.
func (m *ShipmentMutation) ResetPackagingLog() {
	m.packaging_log = nil
	m.appendpackaging_log = nil
	delete(m.clearedFields, shipment.FieldPackagingLog)
}

// SetPackagingNotes sets the "packaging_notes" field.
func (m *ShipmentMutation) SetPackagingNotes(s string) {
	m.packaging_notes = &s
}

// PackagingNotes returns the value of the "packaging_notes" field in the mutation.
func (m *ShipmentMutation) PackagingNotes() (r string, exists bool) {
	v := m.packaging_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldPackagingNotes returns the old "packaging_notes" field's value of the Shipment entity.
// If the Shipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShipmentMutation) OldPackagingNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPackagingNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPackagingNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPackagingNotes: %w", err)
	}
	return oldValue.PackagingNotes, nil
}

// ClearPackagingNotes clears the value of the "packaging_notes" field.
func (m *ShipmentMutation) ClearPackagingNotes() {
	m.packaging_notes = nil
	m.clearedFields[shipment.FieldPackagingNotes] = struct{}{}
}

// PackagingNotesCleared returns if the "packaging_notes" field was cleared in this mutation.
func (m *ShipmentMutation) PackagingNotesCleared() bool {
	_, ok := m.clearedFields[shipment.FieldPackagingNotes]
	return ok
}

// ResetPackagingNotes resets all changes to the "packaging_notes" field.
func (m *ShipmentMutation) ResetPackagingNotes() {
	m.packaging_notes = nil
	delete(m.clearedFields, shipment.FieldPackagingNotes)
}

// SetFailureReason sets the "failure_reason" field.
func (m *ShipmentMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *ShipmentMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the Shipment entity.
// If the Shipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShipmentMutation) OldFailureReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (m *ShipmentMutation) ClearFailureReason() {
	m.failure_reason = nil
	m.clearedFields[shipment.FieldFailureReason] = struct{}{}
}

// FailureReasonCleared returns if the "failure_reason" field was cleared in this mutation.
func (m *ShipmentMutation) FailureReasonCleared() bool {
	_, ok := m.clearedFields[shipment.FieldFailureReason]
	return ok
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *ShipmentMutation) ResetFailureReason() {
	m.failure_reason = nil
	delete(m.clearedFields, shipment.FieldFailureReason)
}

// SetFailurePhoto sets the "failure_photo" field.
func (m *ShipmentMutation) SetFailurePhoto(s string) {
	m.failure_photo = &s
}

// FailurePhoto returns the value of the "failure_photo" field in the mutation.
func (m *ShipmentMutation) FailurePhoto() (r string, exists bool) {
	v := m.failure_photo
	if v == nil {
		return
	}
	return *v, true
}

// OldFailurePhoto returns the old "failure_photo" field's value of the Shipment entity.
// If the Shipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShipmentMutation) OldFailurePhoto(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailurePhoto is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailurePhoto requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailurePhoto: %w", err)
	}
	return oldValue.FailurePhoto, nil
}

// ClearFailurePhoto clears the value of the "failure_photo" field.
func (m *ShipmentMutation) ClearFailurePhoto() {
	m.failure_photo = nil
	m.clearedFields[shipment.FieldFailurePhoto] = struct{}{}
}

// FailurePhotoCleared returns if the "failure_photo" field was cleared in this mutation.
func (m *ShipmentMutation) FailurePhotoCleared() bool {
	_, ok := m.clearedFields[shipment.FieldFailurePhoto]
	return ok
}

// ResetFailurePhoto resets all changes to the "failure_photo" field.
func (m *ShipmentMutation) ResetFailurePhoto() {
	m.failure_photo = nil
	delete(m.clearedFields, shipment.FieldFailurePhoto)
}

// SetDeliveredAt sets the "delivered_at" field.
func (m *ShipmentMutation) SetDeliveredAt(t time.Time) {
	m.delivered_at = &t
}

// DeliveredAt returns the value of the "delivered_at" field in the mutation.
func (m *ShipmentMutation) DeliveredAt() (r time.Time, exists bool) {
	v := m.delivered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveredAt returns the old "delivered_at" field's value of the Shipment entity.
// If the Shipment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShipmentMutation) OldDeliveredAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveredAt: %w", err)
	}
	return oldValue.DeliveredAt, nil
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (m *ShipmentMutation) ClearDeliveredAt() {
	m.delivered_at = nil
	m.clearedFields[shipment.FieldDeliveredAt] = struct{}{}
}

// DeliveredAtCleared returns if the "delivered_at" field was cleared in this mutation.
func (m *ShipmentMutation) DeliveredAtCleared() bool {
	_, ok := m.clearedFields[shipment.FieldDeliveredAt]
	return ok
}

// ResetDeliveredAt resets all changes to the "delivered_at" field.
func (m *ShipmentMutation) ResetDeliveredAt() {
	m.delivered_at = nil
	delete(m.clearedFields, shipment.FieldDeliveredAt)
}

// ClearClient clears the "client" edge to the User entity.
func (m *ShipmentMutation) ClearClient() {
	m.clearedclient = true
	m.clearedFields[shipment.FieldClientID] = struct{}{}
}

// ClientCleared reports if the "client" edge to the User entity was cleared.
func (m *ShipmentMutation) ClientCleared() bool {
	return m.clearedclient
}

// ClientIDs returns the "client" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClientID instead. It exists only for internal usage by the builders.
func (m *ShipmentMutation) ClientIDs() (ids []uuid.UUID) {
	if id := m.client; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClient resets all changes to the "client" edge.
func (m *ShipmentMutation) ResetClient() {
	m.client = nil
	m.clearedclient = false
}

// Where appends a list predicates to the ShipmentMutation builder.
func (m *ShipmentMutation) Where(ps ...predicate.Shipment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ShipmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ShipmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Shipment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ShipmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ShipmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Shipment).
func (m *ShipmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ShipmentMutation) Fields() []string {
	fields := make([]string, 0, 23)
	if m.created_at != nil {
		fields = append(fields, shipment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, shipment.FieldUpdatedAt)
	}
	if m.display_id != nil {
		fields = append(fields, shipment.FieldDisplayID)
	}
	if m.client != nil {
		fields = append(fields, shipment.FieldClientID)
	}
	if m.recipient_name != nil {
		fields = append(fields, shipment.FieldRecipientName)
	}
	if m.recipient_phone != nil {
		fields = append(fields, shipment.FieldRecipientPhone)
	}
	if m.from_address != nil {
		fields = append(fields, shipment.FieldFromAddress)
	}
	if m.to_address != nil {
		fields = append(fields, shipment.FieldToAddress)
	}
	if m.priority != nil {
		fields = append(fields, shipment.FieldPriority)
	}
	if m.payment_method != nil {
		fields = append(fields, shipment.FieldPaymentMethod)
	}
	if m.package_value != nil {
		fields = append(fields, shipment.FieldPackageValue)
	}
	if m.amount_to_collect != nil {
		fields = append(fields, shipment.FieldAmountToCollect)
	}
	if m.shipping_fee != nil {
		fields = append(fields, shipment.FieldShippingFee)
	}
	if m.courier_commission != nil {
		fields = append(fields, shipment.FieldCourierCommission)
	}
	if m.price != nil {
		fields = append(fields, shipment.FieldPrice)
	}
	if m.status != nil {
		fields = append(fields, shipment.FieldStatus)
	}
	if m.status_history != nil {
		fields = append(fields, shipment.FieldStatusHistory)
	}
	if m.courier_id != nil {
		fields = append(fields, shipment.FieldCourierID)
	}
	if m.packaging_log != nil {
		fields = append(fields, shipment.FieldPackagingLog)
	}
	if m.packaging_notes != nil {
		fields = append(fields, shipment.FieldPackagingNotes)
	}
	if m.failure_reason != nil {
		fields = append(fields, shipment.FieldFailureReason)
	}
	if m.failure_photo != nil {
		fields = append(fields, shipment.FieldFailurePhoto)
	}
	if m.delivered_at != nil {
		fields = append(fields, shipment.FieldDeliveredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ShipmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case shipment.FieldCreatedAt:
		return m.CreatedAt()
	case shipment.FieldUpdatedAt:
		return m.UpdatedAt()
	case shipment.FieldDisplayID:
		return m.DisplayID()
	case shipment.FieldClientID:
		return m.ClientID()
	case shipment.FieldRecipientName:
		return m.RecipientName()
	case shipment.FieldRecipientPhone:
		return m.RecipientPhone()
	case shipment.FieldFromAddress:
		return m.FromAddress()
	case shipment.FieldToAddress:
		return m.ToAddress()
	case shipment.FieldPriority:
		return m.Priority()
	case shipment.FieldPaymentMethod:
		return m.PaymentMethod()
	case shipment.FieldPackageValue:
		return m.PackageValue()
	case shipment.FieldAmountToCollect:
		return m.AmountToCollect()
	case shipment.FieldShippingFee:
		return m.ShippingFee()
	case shipment.FieldCourierCommission:
		return m.CourierCommission()
	case shipment.FieldPrice:
		return m.Price()
	case shipment.FieldStatus:
		return m.Status()
	case shipment.FieldStatusHistory:
		return m.StatusHistory()
	case shipment.FieldCourierID:
		return m.CourierID()
	case shipment.FieldPackagingLog:
		return m.PackagingLog()
	case shipment.FieldPackagingNotes:
		return m.PackagingNotes()
	case shipment.FieldFailureReason:
		return m.FailureReason()
	case shipment.FieldFailurePhoto:
		return m.FailurePhoto()
	case shipment.FieldDeliveredAt:
		return m.DeliveredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ShipmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case shipment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case shipment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case shipment.FieldDisplayID:
		return m.OldDisplayID(ctx)
	case shipment.FieldClientID:
		return m.OldClientID(ctx)
	case shipment.FieldRecipientName:
		return m.OldRecipientName(ctx)
	case shipment.FieldRecipientPhone:
		return m.OldRecipientPhone(ctx)
	case shipment.FieldFromAddress:
		return m.OldFromAddress(ctx)
	case shipment.FieldToAddress:
		return m.OldToAddress(ctx)
	case shipment.FieldPriority:
		return m.OldPriority(ctx)
	case shipment.FieldPaymentMethod:
		return m.OldPaymentMethod(ctx)
	case shipment.FieldPackageValue:
		return m.OldPackageValue(ctx)
	case shipment.FieldAmountToCollect:
		return m.OldAmountToCollect(ctx)
	case shipment.FieldShippingFee:
		return m.OldShippingFee(ctx)
	case shipment.FieldCourierCommission:
		return m.OldCourierCommission(ctx)
	case shipment.FieldPrice:
		return m.OldPrice(ctx)
	case shipment.FieldStatus:
		return m.OldStatus(ctx)
	case shipment.FieldStatusHistory:
		return m.OldStatusHistory(ctx)
	case shipment.FieldCourierID:
		return m.OldCourierID(ctx)
	case shipment.FieldPackagingLog:
		return m.OldPackagingLog(ctx)
	case shipment.FieldPackagingNotes:
		return m.OldPackagingNotes(ctx)
	case shipment.FieldFailureReason:
		return m.OldFailureReason(ctx)
	case shipment.FieldFailurePhoto:
		return m.OldFailurePhoto(ctx)
	case shipment.FieldDeliveredAt:
		return m.OldDeliveredAt(ctx)
	}
	return nil, fmt.Errorf("unknown Shipment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ShipmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case shipment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case shipment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case shipment.FieldDisplayID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayID(v)
		return nil
	case shipment.FieldClientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case shipment.FieldRecipientName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecipientName(v)
		return nil
	case shipment.FieldRecipientPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecipientPhone(v)
		return nil
	case shipment.FieldFromAddress:
		v, ok := value.(model.Address)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromAddress(v)
		return nil
	case shipment.FieldToAddress:
		v, ok := value.(model.Address)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToAddress(v)
		return nil
	case shipment.FieldPriority:
		v, ok := value.(shipment.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case shipment.FieldPaymentMethod:
		v, ok := value.(shipment.PaymentMethod)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentMethod(v)
		return nil
	case shipment.FieldPackageValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPackageValue(v)
		return nil
	case shipment.FieldAmountToCollect:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmountToCollect(v)
		return nil
	case shipment.FieldShippingFee:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShippingFee(v)
		return nil
	case shipment.FieldCourierCommission:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourierCommission(v)
		return nil
	case shipment.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrice(v)
		return nil
	case shipment.FieldStatus:
		v, ok := value.(shipment.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case shipment.FieldStatusHistory:
		v, ok := value.([]model.StatusEvent)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusHistory(v)
		return nil
	case shipment.FieldCourierID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourierID(v)
		return nil
	case shipment.FieldPackagingLog:
		v, ok := value.([]model.PackagingLine)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPackagingLog(v)
		return nil
	case shipment.FieldPackagingNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPackagingNotes(v)
		return nil
	case shipment.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	case shipment.FieldFailurePhoto:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailurePhoto(v)
		return nil
	case shipment.FieldDeliveredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveredAt(v)
		return nil
	}
	return fmt.Errorf("unknown Shipment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ShipmentMutation) AddedFields() []string {
	var fields []string
	if m.addpackage_value != nil {
		fields = append(fields, shipment.FieldPackageValue)
	}
	if m.addamount_to_collect != nil {
		fields = append(fields, shipment.FieldAmountToCollect)
	}
	if m.addshipping_fee != nil {
		fields = append(fields, shipment.FieldShippingFee)
	}
	if m.addcourier_commission != nil {
		fields = append(fields, shipment.FieldCourierCommission)
	}
	if m.addprice != nil {
		fields = append(fields, shipment.FieldPrice)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ShipmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case shipment.FieldPackageValue:
		return m.AddedPackageValue()
	case shipment.FieldAmountToCollect:
		return m.AddedAmountToCollect()
	case shipment.FieldShippingFee:
		return m.AddedShippingFee()
	case shipment.FieldCourierCommission:
		return m.AddedCourierCommission()
	case shipment.FieldPrice:
		return m.AddedPrice()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ShipmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case shipment.FieldPackageValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPackageValue(v)
		return nil
	case shipment.FieldAmountToCollect:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmountToCollect(v)
		return nil
	case shipment.FieldShippingFee:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddShippingFee(v)
		return nil
	case shipment.FieldCourierCommission:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCourierCommission(v)
		return nil
	case shipment.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrice(v)
		return nil
	}
	return fmt.Errorf("unknown Shipment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ShipmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(shipment.FieldCourierID) {
		fields = append(fields, shipment.FieldCourierID)
	}
	if m.FieldCleared(shipment.FieldPackagingLog) {
		fields = append(fields, shipment.FieldPackagingLog)
	}
	if m.FieldCleared(shipment.FieldPackagingNotes) {
		fields = append(fields, shipment.FieldPackagingNotes)
	}
	if m.FieldCleared(shipment.FieldFailureReason) {
		fields = append(fields, shipment.FieldFailureReason)
	}
	if m.FieldCleared(shipment.FieldFailurePhoto) {
		fields = append(fields, shipment.FieldFailurePhoto)
	}
	if m.FieldCleared(shipment.FieldDeliveredAt) {
		fields = append(fields, shipment.FieldDeliveredAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ShipmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ShipmentMutation) ClearField(name string) error {
	switch name {
	case shipment.FieldCourierID:
		m.ClearCourierID()
		return nil
	case shipment.FieldPackagingLog:
		m.ClearPackagingLog()
		return nil
	case shipment.FieldPackagingNotes:
		m.ClearPackagingNotes()
		return nil
	case shipment.FieldFailureReason:
		m.ClearFailureReason()
		return nil
	case shipment.FieldFailurePhoto:
		m.ClearFailurePhoto()
		return nil
	case shipment.FieldDeliveredAt:
		m.ClearDeliveredAt()
		return nil
	}
	return fmt.Errorf("unknown Shipment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ShipmentMutation) ResetField(name string) error {
	switch name {
	case shipment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case shipment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case shipment.FieldDisplayID:
		m.ResetDisplayID()
		return nil
	case shipment.FieldClientID:
		m.ResetClientID()
		return nil
	case shipment.FieldRecipientName:
		m.ResetRecipientName()
		return nil
	case shipment.FieldRecipientPhone:
		m.ResetRecipientPhone()
		return nil
	case shipment.FieldFromAddress:
		m.ResetFromAddress()
		return nil
	case shipment.FieldToAddress:
		m.ResetToAddress()
		return nil
	case shipment.FieldPriority:
		m.ResetPriority()
		return nil
	case shipment.FieldPaymentMethod:
		m.ResetPaymentMethod()
		return nil
	case shipment.FieldPackageValue:
		m.ResetPackageValue()
		return nil
	case shipment.FieldAmountToCollect:
		m.ResetAmountToCollect()
		return nil
	case shipment.FieldShippingFee:
		m.ResetShippingFee()
		return nil
	case shipment.FieldCourierCommission:
		m.ResetCourierCommission()
		return nil
	case shipment.FieldPrice:
		m.ResetPrice()
		return nil
	case shipment.FieldStatus:
		m.ResetStatus()
		return nil
	case shipment.FieldStatusHistory:
		m.ResetStatusHistory()
		return nil
	case shipment.FieldCourierID:
		m.ResetCourierID()
		return nil
	case shipment.FieldPackagingLog:
		m.ResetPackagingLog()
		return nil
	case shipment.FieldPackagingNotes:
		m.ResetPackagingNotes()
		return nil
	case shipment.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	case shipment.FieldFailurePhoto:
		m.ResetFailurePhoto()
		return nil
	case shipment.FieldDeliveredAt:
		m.ResetDeliveredAt()
		return nil
	}
	return fmt.Errorf("unknown Shipment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ShipmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.client != nil {
		edges = append(edges, shipment.EdgeClient)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ShipmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case shipment.EdgeClient:
		if id := m.client; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ShipmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ShipmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ShipmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedclient {
		edges = append(edges, shipment.EdgeClient)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ShipmentMutation) EdgeCleared(name string) bool {
	switch name {
	case shipment.EdgeClient:
		return m.clearedclient
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ShipmentMutation) ClearEdge(name string) error {
	switch name {
	case shipment.EdgeClient:
		m.ClearClient()
		return nil
	}
	return fmt.Errorf("unknown Shipment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ShipmentMutation) ResetEdge(name string) error {
	switch name {
	case shipment.EdgeClient:
		m.ResetClient()
		return nil
	}
	return fmt.Errorf("unknown Shipment edge %s", name)
}

// TierSettingMutation represents an operation that mutates the TierSetting nodes in the graph.
type TierSettingMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	tier                *tiersetting.Tier
	min_shipments       *int
	addmin_shipments    *int
	discount_percent    *float64
	adddiscount_percent *float64
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*TierSetting, error)
	predicates          []predicate.TierSetting
}

var _ ent.Mutation = (*TierSettingMutation)(nil)

// tiersettingOption allows management of the mutation configuration using functional options.
type tiersettingOption func(*TierSettingMutation)

// newTierSettingMutation creates new mutation for the TierSetting entity.
func newTierSettingMutation(c config, op Op, opts ...tiersettingOption) *TierSettingMutation {
	m := &TierSettingMutation{
		config:        c,
		op:            op,
		typ:           TypeTierSetting,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTierSettingID sets the ID field of the mutation.
func withTierSettingID(id uuid.UUID) tiersettingOption {
	return func(m *TierSettingMutation) {
		var (
			err   error
			once  sync.Once
			value *TierSetting
		)
		m.oldValue = func(ctx context.Context) (*TierSetting, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TierSetting.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTierSetting sets the old TierSetting of the mutation.
func withTierSetting(node *TierSetting) tiersettingOption {
	return func(m *TierSettingMutation) {
		m.oldValue = func(context.Context) (*TierSetting, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TierSettingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TierSettingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TierSetting entities.
func (m *TierSettingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TierSettingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TierSettingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TierSetting.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TierSettingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TierSettingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TierSetting entity.
// If the TierSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TierSettingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TierSettingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TierSettingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TierSettingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TierSetting entity.
// If the TierSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TierSettingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TierSettingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTier sets the "tier" field.
func (m *TierSettingMutation) SetTier(t tiersetting.Tier) {
	m.tier = &t
}

// Tier returns the value of the "tier" field in the mutation.
func (m *TierSettingMutation) Tier() (r tiersetting.Tier, exists bool) {
	v := m.tier
	if v == nil {
		return
	}
	return *v, true
}

// OldTier returns the old "tier" field's value of the TierSetting entity.
// If the TierSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TierSettingMutation) OldTier(ctx context.Context) (v tiersetting.Tier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTier: %w", err)
	}
	return oldValue.Tier, nil
}

// ResetTier resets all changes to the "tier" field.
func (m *TierSettingMutation) ResetTier() {
	m.tier = nil
}

// SetMinShipments sets the "min_shipments" field.
func (m *TierSettingMutation) SetMinShipments(i int) {
	m.min_shipments = &i
	m.addmin_shipments = nil
}

// MinShipments returns the value of the "min_shipments" field in the mutation.
func (m *TierSettingMutation) MinShipments() (r int, exists bool) {
	v := m.min_shipments
	if v == nil {
		return
	}
	return *v, true
}

// OldMinShipments returns the old "min_shipments" field's value of the TierSetting entity.
// If the TierSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TierSettingMutation) OldMinShipments(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinShipments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinShipments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinShipments: %w", err)
	}
	return oldValue.MinShipments, nil
}

// AddMinShipments adds i to the "min_shipments" field.
func (m *TierSettingMutation) AddMinShipments(i int) {
	if m.addmin_shipments != nil {
		*m.addmin_shipments += i
	} else {
		m.addmin_shipments = &i
	}
}

// AddedMinShipments returns the value that was added to the "min_shipments" field in this mutation.
func (m *TierSettingMutation) AddedMinShipments() (r int, exists bool) {
	v := m.addmin_shipments
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinShipments resets all changes to the "min_shipments" field.
func (m *TierSettingMutation) ResetMinShipments() {
	m.min_shipments = nil
	m.addmin_shipments = nil
}

// SetDiscountPercent sets the "discount_percent" field.
func (m *TierSettingMutation) SetDiscountPercent(f float64) {
	m.discount_percent = &f
	m.adddiscount_percent = nil
}

// DiscountPercent returns the value of the "discount_percent" field in the mutation.
func (m *TierSettingMutation) DiscountPercent() (r float64, exists bool) {
	v := m.discount_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldDiscountPercent returns the old "discount_percent" field's value of the TierSetting entity.
// If the TierSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TierSettingMutation) OldDiscountPercent(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiscountPercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiscountPercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiscountPercent: %w", err)
	}
	return oldValue.DiscountPercent, nil
}

// AddDiscountPercent adds f to the "discount_percent" field.
func (m *TierSettingMutation) AddDiscountPercent(f float64) {
	if m.adddiscount_percent != nil {
		*m.adddiscount_percent += f
	} else {
		m.adddiscount_percent = &f
	}
}

// AddedDiscountPercent returns the value that was added to the "discount_percent" field in this mutation.
func (m *TierSettingMutation) AddedDiscountPercent() (r float64, exists bool) {
	v := m.adddiscount_percent
	if v == nil {
		return
	}
	return *v, true
}

// ResetDiscountPercent resets all changes to the "discount_percent" field.
func (m *TierSettingMutation) ResetDiscountPercent() {
	m.discount_percent = nil
	m.adddiscount_percent = nil
}

// Where appends a list predicates to the TierSettingMutation builder.
func (m *TierSettingMutation) Where(ps ...predicate.TierSetting) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TierSettingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TierSettingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TierSetting, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TierSettingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TierSettingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TierSetting).
func (m *TierSettingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TierSettingMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, tiersetting.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tiersetting.FieldUpdatedAt)
	}
	if m.tier != nil {
		fields = append(fields, tiersetting.FieldTier)
	}
	if m.min_shipments != nil {
		fields = append(fields, tiersetting.FieldMinShipments)
	}
	if m.discount_percent != nil {
		fields = append(fields, tiersetting.FieldDiscountPercent)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TierSettingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tiersetting.FieldCreatedAt:
		return m.CreatedAt()
	case tiersetting.FieldUpdatedAt:
		return m.UpdatedAt()
	case tiersetting.FieldTier:
		return m.Tier()
	case tiersetting.FieldMinShipments:
		return m.MinShipments()
	case tiersetting.FieldDiscountPercent:
		return m.DiscountPercent()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TierSettingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tiersetting.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tiersetting.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case tiersetting.FieldTier:
		return m.OldTier(ctx)
	case tiersetting.FieldMinShipments:
		return m.OldMinShipments(ctx)
	case tiersetting.FieldDiscountPercent:
		return m.OldDiscountPercent(ctx)
	}
	return nil, fmt.Errorf("unknown TierSetting field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TierSettingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tiersetting.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tiersetting.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case tiersetting.FieldTier:
		v, ok := value.(tiersetting.Tier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTier(v)
		return nil
	case tiersetting.FieldMinShipments:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinShipments(v)
		return nil
	case tiersetting.FieldDiscountPercent:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiscountPercent(v)
		return nil
	}
	return fmt.Errorf("unknown TierSetting field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TierSettingMutation) AddedFields() []string {
	var fields []string
	if m.addmin_shipments != nil {
		fields = append(fields, tiersetting.FieldMinShipments)
	}
	if m.adddiscount_percent != nil {
		fields = append(fields, tiersetting.FieldDiscountPercent)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TierSettingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tiersetting.FieldMinShipments:
		return m.AddedMinShipments()
	case tiersetting.FieldDiscountPercent:
		return m.AddedDiscountPercent()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TierSettingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tiersetting.FieldMinShipments:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinShipments(v)
		return nil
	case tiersetting.FieldDiscountPercent:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDiscountPercent(v)
		return nil
	}
	return fmt.Errorf("unknown TierSetting numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TierSettingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TierSettingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TierSettingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TierSetting nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TierSettingMutation) ResetField(name string) error {
	switch name {
	case tiersetting.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tiersetting.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case tiersetting.FieldTier:
		m.ResetTier()
		return nil
	case tiersetting.FieldMinShipments:
		m.ResetMinShipments()
		return nil
	case tiersetting.FieldDiscountPercent:
		m.ResetDiscountPercent()
		return nil
	}
	return fmt.Errorf("unknown TierSetting field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TierSettingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TierSettingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TierSettingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TierSettingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TierSettingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TierSettingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TierSettingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TierSetting unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TierSettingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TierSetting edge %s", name)
}

// TransactionMutation represents an operation that mutates the Transaction nodes in the graph.
type TransactionMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	created_at     *time.Time
	account_type   *transaction.AccountType
	account_id     *uuid.UUID
	_type          *transaction.Type
	amount         *float64
	addamount      *float64
	shipment_id    *uuid.UUID
	status         *transaction.Status
	payment_method *string
	evidence_ref   *string
	processed_at   *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Transaction, error)
	predicates     []predicate.Transaction
}

var _ ent.Mutation = (*TransactionMutation)(nil)

// transactionOption allows management of the mutation configuration using functional options.
type transactionOption func(*TransactionMutation)

// newTransactionMutation creates new mutation for the Transaction entity.
func newTransactionMutation(c config, op Op, opts ...transactionOption) *TransactionMutation {
	m := &TransactionMutation{
		config:        c,
		op:            op,
		typ:           TypeTransaction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTransactionID sets the ID field of the mutation.
func withTransactionID(id uuid.UUID) transactionOption {
	return func(m *TransactionMutation) {
		var (
			err   error
			once  sync.Once
			value *Transaction
		)
		m.oldValue = func(ctx context.Context) (*Transaction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Transaction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTransaction sets the old Transaction of the mutation.
func withTransaction(node *Transaction) transactionOption {
	return func(m *TransactionMutation) {
		m.oldValue = func(context.Context) (*Transaction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TransactionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TransactionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Transaction entities.
func (m *TransactionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TransactionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TransactionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Transaction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TransactionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TransactionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TransactionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetAccountType sets the "account_type" field.
func (m *TransactionMutation) SetAccountType(tt transaction.AccountType) {
	m.account_type = &tt
}

// AccountType returns the value of the "account_type" field in the mutation.
func (m *TransactionMutation) AccountType() (r transaction.AccountType, exists bool) {
	v := m.account_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountType returns the old "account_type" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldAccountType(ctx context.Context) (v transaction.AccountType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountType: %w", err)
	}
	return oldValue.AccountType, nil
}

// ResetAccountType resets all changes to the "account_type" field.
func (m *TransactionMutation) ResetAccountType() {
	m.account_type = nil
}

// SetAccountID sets the "account_id" field.
func (m *TransactionMutation) SetAccountID(u uuid.UUID) {
	m.account_id = &u
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *TransactionMutation) AccountID() (r uuid.UUID, exists bool) {
	v := m.account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldAccountID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *TransactionMutation) ResetAccountID() {
	m.account_id = nil
}

// SetType sets the "type" field.
func (m *TransactionMutation) SetType(t transaction.Type) {
	m._type = &t
}

// GetType returns the value of the "type" field in the mutation.
func (m *TransactionMutation) GetType() (r transaction.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldType(ctx context.Context) (v transaction.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *TransactionMutation) ResetType() {
	m._type = nil
}

// SetAmount sets the "amount" field.
func (m *TransactionMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *TransactionMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *TransactionMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *TransactionMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *TransactionMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetShipmentID sets the "shipment_id" field.
func (m *TransactionMutation) SetShipmentID(u uuid.UUID) {
	m.shipment_id = &u
}

// ShipmentID returns the value of the "shipment_id" field in the mutation.
func (m *TransactionMutation) ShipmentID() (r uuid.UUID, exists bool) {
	v := m.shipment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldShipmentID returns the old "shipment_id" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldShipmentID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShipmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShipmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShipmentID: %w", err)
	}
	return oldValue.ShipmentID, nil
}

// ClearShipmentID clears the value of the "shipment_id" field.
func (m *TransactionMutation) ClearShipmentID() {
	m.shipment_id = nil
	m.clearedFields[transaction.FieldShipmentID] = struct{}{}
}

// ShipmentIDCleared returns if the "shipment_id" field was cleared in this mutation.
func (m *TransactionMutation) ShipmentIDCleared() bool {
	_, ok := m.clearedFields[transaction.FieldShipmentID]
	return ok
}

// ResetShipmentID resets all changes to the "shipment_id" field.
func (m *TransactionMutation) ResetShipmentID() {
	m.shipment_id = nil
	delete(m.clearedFields, transaction.FieldShipmentID)
}

// SetStatus sets the "status" field.
func (m *TransactionMutation) SetStatus(t transaction.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TransactionMutation) Status() (r transaction.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldStatus(ctx context.Context) (v transaction.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TransactionMutation) ResetStatus() {
	m.status = nil
}

// SetPaymentMethod sets the "payment_method" field.
func (m *TransactionMutation) SetPaymentMethod(s string) {
	m.payment_method = &s
}

// PaymentMethod returns the value of the "payment_method" field in the mutation.
func (m *TransactionMutation) PaymentMethod() (r string, exists bool) {
	v := m.payment_method
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentMethod returns the old "payment_method" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldPaymentMethod(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentMethod: %w", err)
	}
	return oldValue.PaymentMethod, nil
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (m *TransactionMutation) ClearPaymentMethod() {
	m.payment_method = nil
	m.clearedFields[transaction.FieldPaymentMethod] = struct{}{}
}

// PaymentMethodCleared returns if the "payment_method" field was cleared in this mutation.
func (m *TransactionMutation) PaymentMethodCleared() bool {
	_, ok := m.clearedFields[transaction.FieldPaymentMethod]
	return ok
}

// ResetPaymentMethod resets all changes to the "payment_method" field.
func (m *TransactionMutation) ResetPaymentMethod() {
	m.payment_method = nil
	delete(m.clearedFields, transaction.FieldPaymentMethod)
}

// SetEvidenceRef sets the "evidence_ref" field.
func (m *TransactionMutation) SetEvidenceRef(s string) {
	m.evidence_ref = &s
}

// EvidenceRef returns the value of the "evidence_ref" field in the mutation.
func (m *TransactionMutation) EvidenceRef() (r string, exists bool) {
	v := m.evidence_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidenceRef returns the old "evidence_ref" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldEvidenceRef(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidenceRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidenceRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidenceRef: %w", err)
	}
	return oldValue.EvidenceRef, nil
}

// ClearEvidenceRef clears the value of the "evidence_ref" field.
func (m *TransactionMutation) ClearEvidenceRef() {
	m.evidence_ref = nil
	m.clearedFields[transaction.FieldEvidenceRef] = struct{}{}
}

// EvidenceRefCleared returns if the "evidence_ref" field was cleared in this mutation.
func (m *TransactionMutation) EvidenceRefCleared() bool {
	_, ok := m.clearedFields[transaction.FieldEvidenceRef]
	return ok
}

// ResetEvidenceRef resets all changes to the "evidence_ref" field.
func (m *TransactionMutation) ResetEvidenceRef() {
	m.evidence_ref = nil
	delete(m.clearedFields, transaction.FieldEvidenceRef)
}

// SetProcessedAt sets the "processed_at" field.
func (m *TransactionMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *TransactionMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *TransactionMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[transaction.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *TransactionMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[transaction.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *TransactionMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, transaction.FieldProcessedAt)
}

// Where appends a list predicates to the TransactionMutation builder.
func (m *TransactionMutation) Where(ps ...predicate.Transaction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TransactionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TransactionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Transaction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TransactionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TransactionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Transaction).
func (m *TransactionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TransactionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, transaction.FieldCreatedAt)
	}
	if m.account_type != nil {
		fields = append(fields, transaction.FieldAccountType)
	}
	if m.account_id != nil {
		fields = append(fields, transaction.FieldAccountID)
	}
	if m._type != nil {
		fields = append(fields, transaction.FieldType)
	}
	if m.amount != nil {
		fields = append(fields, transaction.FieldAmount)
	}
	if m.shipment_id != nil {
		fields = append(fields, transaction.FieldShipmentID)
	}
	if m.status != nil {
		fields = append(fields, transaction.FieldStatus)
	}
	if m.payment_method != nil {
		fields = append(fields, transaction.FieldPaymentMethod)
	}
	if m.evidence_ref != nil {
		fields = append(fields, transaction.FieldEvidenceRef)
	}
	if m.processed_at != nil {
		fields = append(fields, transaction.FieldProcessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TransactionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case transaction.FieldCreatedAt:
		return m.CreatedAt()
	case transaction.FieldAccountType:
		return m.AccountType()
	case transaction.FieldAccountID:
		return m.AccountID()
	case transaction.FieldType:
		return m.GetType()
	case transaction.FieldAmount:
		return m.Amount()
	case transaction.FieldShipmentID:
		return m.ShipmentID()
	case transaction.FieldStatus:
		return m.Status()
	case transaction.FieldPaymentMethod:
		return m.PaymentMethod()
	case transaction.FieldEvidenceRef:
		return m.EvidenceRef()
	case transaction.FieldProcessedAt:
		return m.ProcessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TransactionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case transaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case transaction.FieldAccountType:
		return m.OldAccountType(ctx)
	case transaction.FieldAccountID:
		return m.OldAccountID(ctx)
	case transaction.FieldType:
		return m.OldType(ctx)
	case transaction.FieldAmount:
		return m.OldAmount(ctx)
	case transaction.FieldShipmentID:
		return m.OldShipmentID(ctx)
	case transaction.FieldStatus:
		return m.OldStatus(ctx)
	case transaction.FieldPaymentMethod:
		return m.OldPaymentMethod(ctx)
	case transaction.FieldEvidenceRef:
		return m.OldEvidenceRef(ctx)
	case transaction.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Transaction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TransactionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case transaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case transaction.FieldAccountType:
		v, ok := value.(transaction.AccountType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountType(v)
		return nil
	case transaction.FieldAccountID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case transaction.FieldType:
		v, ok := value.(transaction.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case transaction.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case transaction.FieldShipmentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShipmentID(v)
		return nil
	case transaction.FieldStatus:
		v, ok := value.(transaction.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case transaction.FieldPaymentMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentMethod(v)
		return nil
	case transaction.FieldEvidenceRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidenceRef(v)
		return nil
	case transaction.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Transaction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TransactionMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, transaction.FieldAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TransactionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case transaction.FieldAmount:
		return m.AddedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TransactionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case transaction.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Transaction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TransactionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(transaction.FieldShipmentID) {
		fields = append(fields, transaction.FieldShipmentID)
	}
	if m.FieldCleared(transaction.FieldPaymentMethod) {
		fields = append(fields, transaction.FieldPaymentMethod)
	}
	if m.FieldCleared(transaction.FieldEvidenceRef) {
		fields = append(fields, transaction.FieldEvidenceRef)
	}
	if m.FieldCleared(transaction.FieldProcessedAt) {
		fields = append(fields, transaction.FieldProcessedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TransactionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TransactionMutation) ClearField(name string) error {
	switch name {
	case transaction.FieldShipmentID:
		m.ClearShipmentID()
		return nil
	case transaction.FieldPaymentMethod:
		m.ClearPaymentMethod()
		return nil
	case transaction.FieldEvidenceRef:
		m.ClearEvidenceRef()
		return nil
	case transaction.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown Transaction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TransactionMutation) ResetField(name string) error {
	switch name {
	case transaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case transaction.FieldAccountType:
		m.ResetAccountType()
		return nil
	case transaction.FieldAccountID:
		m.ResetAccountID()
		return nil
	case transaction.FieldType:
		m.ResetType()
		return nil
	case transaction.FieldAmount:
		m.ResetAmount()
		return nil
	case transaction.FieldShipmentID:
		m.ResetShipmentID()
		return nil
	case transaction.FieldStatus:
		m.ResetStatus()
		return nil
	case transaction.FieldPaymentMethod:
		m.ResetPaymentMethod()
		return nil
	case transaction.FieldEvidenceRef:
		m.ResetEvidenceRef()
		return nil
	case transaction.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown Transaction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TransactionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TransactionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TransactionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TransactionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TransactionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TransactionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TransactionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Transaction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TransactionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Transaction edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	created_at           *time.Time
	updated_at           *time.Time
	deleted_at           *time.Time
	public_id            *string
	name                 *string
	email                *string
	phone                *string
	roles                *[]string
	appendroles          []string
	status               *user.Status
	flat_rate_fee        *float64
	addflat_rate_fee     *float64
	priority_multipliers *map[string]float64
	partner_tier         *user.PartnerTier
	tier_manual_override *bool
	wallet_balance       *float64
	addwallet_balance    *float64
	zones                *[]string
	appendzones          []string
	clearedFields        map[string]struct{}
	referrer             *uuid.UUID
	clearedreferrer      bool
	referrals            map[uuid.UUID]struct{}
	removedreferrals     map[uuid.UUID]struct{}
	clearedreferrals     bool
	shipments            map[uuid.UUID]struct{}
	removedshipments     map[uuid.UUID]struct{}
	clearedshipments     bool
	courier_stats        *uuid.UUID
	clearedcourier_stats bool
	done                 bool
	oldValue             func(context.Context) (*User, error)
	predicates           []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *UserMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *UserMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *UserMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[user.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *UserMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[user.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *UserMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, user.FieldDeletedAt)
}

// SetPublicID sets the "public_id" field.
func (m *UserMutation) SetPublicID(s string) {
	m.public_id = &s
}

// PublicID returns the value of the "public_id" field in the mutation.
func (m *UserMutation) PublicID() (r string, exists bool) {
	v := m.public_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPublicID returns the old "public_id" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPublicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublicID: %w", err)
	}
	return oldValue.PublicID, nil
}

// ResetPublicID resets all changes to the "public_id" field.
func (m *UserMutation) ResetPublicID() {
	m.public_id = nil
}

// SetName sets the "name" field.
func (m *UserMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UserMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetPhone sets the "phone" field.
func (m *UserMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *UserMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *UserMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[user.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *UserMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[user.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *UserMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, user.FieldPhone)
}

// SetRoles sets the "roles" field.
func (m *UserMutation) SetRoles(s []string) {
	m.roles = &s
	m.appendroles = nil
}

// Roles returns the value of the "roles" field in the mutation.
func (m *UserMutation) Roles() (r []string, exists bool) {
	v := m.roles
	if v == nil {
		return
	}
	return *v, true
}

// OldRoles returns the old "roles" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRoles(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoles: %w", err)
	}
	return oldValue.Roles, nil
}

// AppendRoles adds s to the "roles" field.
func (m *UserMutation) AppendRoles(s []string) {
	m.appendroles = append(m.appendroles, s...)
}

// AppendedRoles returns the list of values that were appended to the "roles" field in this mutation.
func (m *UserMutation) AppendedRoles() ([]string, bool) {
	if len(m.appendroles) == 0 {
		return nil, false
	}
	return m.appendroles, true
}

// ResetRoles resets all changes to the "roles" field.
func (m *UserMutation) ResetRoles() {
	m.roles = nil
	m.appendroles = nil
}

// SetStatus sets the "status" field.
func (m *UserMutation) SetStatus(u user.Status) {
	m.status = &u
}

// Status returns the value of the "status" field in the mutation.
func (m *UserMutation) Status() (r user.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldStatus(ctx context.Context) (v user.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *UserMutation) ResetStatus() {
	m.status = nil
}

// SetFlatRateFee sets the "flat_rate_fee" field.
func (m *UserMutation) SetFlatRateFee(f float64) {
	m.flat_rate_fee = &f
	m.addflat_rate_fee = nil
}

// FlatRateFee returns the value of the "flat_rate_fee" field in the mutation.
func (m *UserMutation) FlatRateFee() (r float64, exists bool) {
	v := m.flat_rate_fee
	if v == nil {
		return
	}
	return *v, true
}

// OldFlatRateFee returns the old "flat_rate_fee" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldFlatRateFee(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlatRateFee is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlatRateFee requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlatRateFee: %w", err)
	}
	return oldValue.FlatRateFee, nil
}

// AddFlatRateFee adds f to the "flat_rate_fee" field.
func (m *UserMutation) AddFlatRateFee(f float64) {
	if m.addflat_rate_fee != nil {
		*m.addflat_rate_fee += f
	} else {
		m.addflat_rate_fee = &f
	}
}

// AddedFlatRateFee returns the value that was added to the "flat_rate_fee" field in this mutation.
func (m *UserMutation) AddedFlatRateFee() (r float64, exists bool) {
	v := m.addflat_rate_fee
	if v == nil {
		return
	}
	return *v, true
}

// ResetFlatRateFee resets all changes to the "flat_rate_fee" field.
func (m *UserMutation) ResetFlatRateFee() {
	m.flat_rate_fee = nil
	m.addflat_rate_fee = nil
}

// SetPriorityMultipliers sets the "priority_multipliers" field.
func (m *UserMutation) SetPriorityMultipliers(value map[string]float64) {
	m.priority_multipliers = &value
}

// PriorityMultipliers returns the value of the "priority_multipliers" field in the mutation.
func (m *UserMutation) PriorityMultipliers() (r map[string]float64, exists bool) {
	v := m.priority_multipliers
	if v == nil {
		return
	}
	return *v, true
}

// OldPriorityMultipliers returns the old "priority_multipliers" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPriorityMultipliers(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriorityMultipliers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriorityMultipliers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriorityMultipliers: %w", err)
	}
	return oldValue.PriorityMultipliers, nil
}

// ClearPriorityMultipliers clears the value of the "priority_multipliers" field.
func (m *UserMutation) ClearPriorityMultipliers() {
	m.priority_multipliers = nil
	m.clearedFields[user.FieldPriorityMultipliers] = struct{}{}
}

// PriorityMultipliersCleared returns if the "priority_multipliers" field was cleared in this mutation.
func (m *UserMutation) PriorityMultipliersCleared() bool {
	_, ok := m.clearedFields[user.FieldPriorityMultipliers]
	return ok
}

// ResetPriorityMultipliers resets all changes to the "priority_multipliers" field.
func (m *UserMutation) ResetPriorityMultipliers() {
	m.priority_multipliers = nil
	delete(m.clearedFields, user.FieldPriorityMultipliers)
}

// SetPartnerTier sets the "partner_tier" field.
func (m *UserMutation) SetPartnerTier(ut user.PartnerTier) {
	m.partner_tier = &ut
}

// PartnerTier returns the value of the "partner_tier" field in the mutation.
func (m *UserMutation) PartnerTier() (r user.PartnerTier, exists bool) {
	v := m.partner_tier
	if v == nil {
		return
	}
	return *v, true
}

// OldPartnerTier returns the old "partner_tier" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPartnerTier(ctx context.Context) (v *user.PartnerTier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPartnerTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPartnerTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPartnerTier: %w", err)
	}
	return oldValue.PartnerTier, nil
}

// ClearPartnerTier clears the value of the "partner_tier" field.
func (m *UserMutation) ClearPartnerTier() {
	m.partner_tier = nil
	m.clearedFields[user.FieldPartnerTier] = struct{}{}
}

// PartnerTierCleared returns if the "partner_tier" field was cleared in this mutation.
func (m *UserMutation) PartnerTierCleared() bool {
	_, ok := m.clearedFields[user.FieldPartnerTier]
	return ok
}

// ResetPartnerTier resets all changes to the "partner_tier" field.
func (m *UserMutation) ResetPartnerTier() {
	m.partner_tier = nil
	delete(m.clearedFields, user.FieldPartnerTier)
}

// SetTierManualOverride sets the "tier_manual_override" field.
func (m *UserMutation) SetTierManualOverride(b bool) {
	m.tier_manual_override = &b
}

// TierManualOverride returns the value of the "tier_manual_override" field in the mutation.
func (m *UserMutation) TierManualOverride() (r bool, exists bool) {
	v := m.tier_manual_override
	if v == nil {
		return
	}
	return *v, true
}

// OldTierManualOverride returns the old "tier_manual_override" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldTierManualOverride(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTierManualOverride is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTierManualOverride requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTierManualOverride: %w", err)
	}
	return oldValue.TierManualOverride, nil
}

// ResetTierManualOverride resets all changes to the "tier_manual_override" field.
func (m *UserMutation) ResetTierManualOverride() {
	m.tier_manual_override = nil
}

// SetWalletBalance sets the "wallet_balance" field.
func (m *UserMutation) SetWalletBalance(f float64) {
	m.wallet_balance = &f
	m.addwallet_balance = nil
}

// WalletBalance returns the value of the "wallet_balance" field in the mutation.
func (m *UserMutation) WalletBalance() (r float64, exists bool) {
	v := m.wallet_balance
	if v == nil {
		return
	}
	return *v, true
}

// OldWalletBalance returns the old "wallet_balance" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldWalletBalance(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWalletBalance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWalletBalance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWalletBalance: %w", err)
	}
	return oldValue.WalletBalance, nil
}

// AddWalletBalance adds f to the "wallet_balance" field.
func (m *UserMutation) AddWalletBalance(f float64) {
	if m.addwallet_balance != nil {
		*m.addwallet_balance += f
	} else {
		m.addwallet_balance = &f
	}
}

// AddedWalletBalance returns the value that was added to the "wallet_balance" field in this mutation.
func (m *UserMutation) AddedWalletBalance() (r float64, exists bool) {
	v := m.addwallet_balance
	if v == nil {
		return
	}
	return *v, true
}

// ResetWalletBalance resets all changes to the "wallet_balance" field.
func (m *UserMutation) ResetWalletBalance() {
	m.wallet_balance = nil
	m.addwallet_balance = nil
}

// SetZones sets the "zones" field.
func (m *UserMutation) SetZones(s []string) {
	m.zones = &s
	m.appendzones = nil
}

// Zones returns the value of the "zones" field in the mutation.
func (m *UserMutation) Zones() (r []string, exists bool) {
	v := m.zones
	if v == nil {
		return
	}
	return *v, true
}

// OldZones returns the old "zones" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldZones(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldZones is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldZones requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldZones: %w", err)
	}
	return oldValue.Zones, nil
}

// AppendZones adds s to the "zones" field.
func (m *UserMutation) AppendZones(s []string) {
	m.appendzones = append(m.appendzones, s...)
}

// AppendedZones returns the list of values that were appended to the "zones" field in this mutation.
func (m *UserMutation) AppendedZones() ([]string, bool) {
	if len(m.appendzones) == 0 {
		return nil, false
	}
	return m.appendzones, true
}

// ClearZones clears the value of the "zones" field.
func (m *UserMutation) ClearZones() {
	m.zones = nil
	m.appendzones = nil
	m.clearedFields[user.FieldZones] = struct{}{}
}

// ZonesCleared returns if the "zones" field was cleared in this mutation.
func (m *UserMutation) ZonesCleared() bool {
	_, ok := m.clearedFields[user.FieldZones]
	return ok
}

// ResetZones resets all changes to the "zones" field.
func (m *UserMutation) ResetZones() {
	m.zones = nil
	m.appendzones = nil
	delete(m.clearedFields, user.FieldZones)
}

// SetReferredBy sets the "referred_by" field.
func (m *UserMutation) SetReferredBy(u uuid.UUID) {
	m.referrer = &u
}

// ReferredBy returns the value of the "referred_by" field in the mutation.
func (m *UserMutation) ReferredBy() (r uuid.UUID, exists bool) {
	v := m.referrer
	if v == nil {
		return
	}
	return *v, true
}

// OldReferredBy returns the old "referred_by" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldReferredBy(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReferredBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReferredBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReferredBy: %w", err)
	}
	return oldValue.ReferredBy, nil
}

// ClearReferredBy clears the value of the "referred_by" field.
func (m *UserMutation) ClearReferredBy() {
	m.referrer = nil
	m.clearedFields[user.FieldReferredBy] = struct{}{}
}

// ReferredByCleared returns if the "referred_by" field was cleared in this mutation.
func (m *UserMutation) ReferredByCleared() bool {
	_, ok := m.clearedFields[user.FieldReferredBy]
	return ok
}

// ResetReferredBy resets all changes to the "referred_by" field.
func (m *UserMutation) ResetReferredBy() {
	m.referrer = nil
	delete(m.clearedFields, user.FieldReferredBy)
}

// SetReferrerID sets the "referrer" edge to the User entity by id.
func (m *UserMutation) SetReferrerID(id uuid.UUID) {
	m.referrer = &id
}

// ClearReferrer clears the "referrer" edge to the User entity.
func (m *UserMutation) ClearReferrer() {
	m.clearedreferrer = true
	m.clearedFields[user.FieldReferredBy] = struct{}{}
}

// ReferrerCleared reports if the "referrer" edge to the User entity was cleared.
func (m *UserMutation) ReferrerCleared() bool {
	return m.ReferredByCleared() || m.clearedreferrer
}

// ReferrerID returns the "referrer" edge ID in the mutation.
func (m *UserMutation) ReferrerID() (id uuid.UUID, exists bool) {
	if m.referrer != nil {
		return *m.referrer, true
	}
	return
}

// ReferrerIDs returns the "referrer" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReferrerID instead. It exists only for internal usage by the builders.
func (m *UserMutation) ReferrerIDs() (ids []uuid.UUID) {
	if id := m.referrer; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReferrer resets all changes to the "referrer" edge.
func (m *UserMutation) ResetReferrer() {
	m.referrer = nil
	m.clearedreferrer = false
}

// AddReferralIDs adds the "referrals" edge to the User entity by ids.
func (m *UserMutation) AddReferralIDs(ids ...uuid.UUID) {
	if m.referrals == nil {
		m.referrals = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.referrals[ids[i]] = struct{}{}
	}
}

// ClearReferrals clears the "referrals" edge to the User entity.
func (m *UserMutation) ClearReferrals() {
	m.clearedreferrals = true
}

// ReferralsCleared reports if the "referrals" edge to the User entity was cleared.
func (m *UserMutation) ReferralsCleared() bool {
	return m.clearedreferrals
}

// RemoveReferralIDs removes the "referrals" edge to the User entity by IDs.
func (m *UserMutation) RemoveReferralIDs(ids ...uuid.UUID) {
	if m.removedreferrals == nil {
		m.removedreferrals = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.referrals, ids[i])
		m.removedreferrals[ids[i]] = struct{}{}
	}
}

// RemovedReferrals returns the removed IDs of the "referrals" edge to the User entity.
func (m *UserMutation) RemovedReferralsIDs() (ids []uuid.UUID) {
	for id := range m.removedreferrals {
		ids = append(ids, id)
	}
	return
}

// ReferralsIDs returns the "referrals" edge IDs in the mutation.
func (m *UserMutation) ReferralsIDs() (ids []uuid.UUID) {
	for id := range m.referrals {
		ids = append(ids, id)
	}
	return
}

// ResetReferrals resets all changes to the "referrals" edge.
func (m *UserMutation) ResetReferrals() {
	m.referrals = nil
	m.clearedreferrals = false
	m.removedreferrals = nil
}

// AddShipmentIDs adds the "shipments" edge to the Shipment entity by ids.
func (m *UserMutation) AddShipmentIDs(ids ...uuid.UUID) {
	if m.shipments == nil {
		m.shipments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.shipments[ids[i]] = struct{}{}
	}
}

// ClearShipments clears the "shipments" edge to the Shipment entity.
func (m *UserMutation) ClearShipments() {
	m.clearedshipments = true
}

// ShipmentsCleared reports if the "shipments" edge to the Shipment entity was cleared.
func (m *UserMutation) ShipmentsCleared() bool {
	return m.clearedshipments
}

// RemoveShipmentIDs removes the "shipments" edge to the Shipment entity by IDs.
func (m *UserMutation) RemoveShipmentIDs(ids ...uuid.UUID) {
	if m.removedshipments == nil {
		m.removedshipments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.shipments, ids[i])
		m.removedshipments[ids[i]] = struct{}{}
	}
}

// RemovedShipments returns the removed IDs of the "shipments" edge to the Shipment entity.
func (m *UserMutation) RemovedShipmentsIDs() (ids []uuid.UUID) {
	for id := range m.removedshipments {
		ids = append(ids, id)
	}
	return
}

// ShipmentsIDs returns the "shipments" edge IDs in the mutation.
func (m *UserMutation) ShipmentsIDs() (ids []uuid.UUID) {
	for id := range m.shipments {
		ids = append(ids, id)
	}
	return
}

// ResetShipments resets all changes to the "shipments" edge.
func (m *UserMutation) ResetShipments() {
	m.shipments = nil
	m.clearedshipments = false
	m.removedshipments = nil
}

// SetCourierStatsID sets the "courier_stats" edge to the CourierStats entity by id.
func (m *UserMutation) SetCourierStatsID(id uuid.UUID) {
	m.courier_stats = &id
}

// ClearCourierStats clears the "courier_stats" edge to the CourierStats entity.
func (m *UserMutation) ClearCourierStats() {
	m.clearedcourier_stats = true
}

// CourierStatsCleared reports if the "courier_stats" edge to the CourierStats entity was cleared.
func (m *UserMutation) CourierStatsCleared() bool {
	return m.clearedcourier_stats
}

// CourierStatsID returns the "courier_stats" edge ID in the mutation.
func (m *UserMutation) CourierStatsID() (id uuid.UUID, exists bool) {
	if m.courier_stats != nil {
		return *m.courier_stats, true
	}
	return
}

// CourierStatsIDs returns the "courier_stats" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CourierStatsID instead. It exists only for internal usage by the builders.
func (m *UserMutation) CourierStatsIDs() (ids []uuid.UUID) {
	if id := m.courier_stats; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCourierStats resets all changes to the "courier_stats" edge.
func (m *UserMutation) ResetCourierStats() {
	m.courier_stats = nil
	m.clearedcourier_stats = false
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, user.FieldDeletedAt)
	}
	if m.public_id != nil {
		fields = append(fields, user.FieldPublicID)
	}
	if m.name != nil {
		fields = append(fields, user.FieldName)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.phone != nil {
		fields = append(fields, user.FieldPhone)
	}
	if m.roles != nil {
		fields = append(fields, user.FieldRoles)
	}
	if m.status != nil {
		fields = append(fields, user.FieldStatus)
	}
	if m.flat_rate_fee != nil {
		fields = append(fields, user.FieldFlatRateFee)
	}
	if m.priority_multipliers != nil {
		fields = append(fields, user.FieldPriorityMultipliers)
	}
	if m.partner_tier != nil {
		fields = append(fields, user.FieldPartnerTier)
	}
	if m.tier_manual_override != nil {
		fields = append(fields, user.FieldTierManualOverride)
	}
	if m.wallet_balance != nil {
		fields = append(fields, user.FieldWalletBalance)
	}
	if m.zones != nil {
		fields = append(fields, user.FieldZones)
	}
	if m.referrer != nil {
		fields = append(fields, user.FieldReferredBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldDeletedAt:
		return m.DeletedAt()
	case user.FieldPublicID:
		return m.PublicID()
	case user.FieldName:
		return m.Name()
	case user.FieldEmail:
		return m.Email()
	case user.FieldPhone:
		return m.Phone()
	case user.FieldRoles:
		return m.Roles()
	case user.FieldStatus:
		return m.Status()
	case user.FieldFlatRateFee:
		return m.FlatRateFee()
	case user.FieldPriorityMultipliers:
		return m.PriorityMultipliers()
	case user.FieldPartnerTier:
		return m.PartnerTier()
	case user.FieldTierManualOverride:
		return m.TierManualOverride()
	case user.FieldWalletBalance:
		return m.WalletBalance()
	case user.FieldZones:
		return m.Zones()
	case user.FieldReferredBy:
		return m.ReferredBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case user.FieldPublicID:
		return m.OldPublicID(ctx)
	case user.FieldName:
		return m.OldName(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldPhone:
		return m.OldPhone(ctx)
	case user.FieldRoles:
		return m.OldRoles(ctx)
	case user.FieldStatus:
		return m.OldStatus(ctx)
	case user.FieldFlatRateFee:
		return m.OldFlatRateFee(ctx)
	case user.FieldPriorityMultipliers:
		return m.OldPriorityMultipliers(ctx)
	case user.FieldPartnerTier:
		return m.OldPartnerTier(ctx)
	case user.FieldTierManualOverride:
		return m.OldTierManualOverride(ctx)
	case user.FieldWalletBalance:
		return m.OldWalletBalance(ctx)
	case user.FieldZones:
		return m.OldZones(ctx)
	case user.FieldReferredBy:
		return m.OldReferredBy(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case user.FieldPublicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublicID(v)
		return nil
	case user.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case user.FieldRoles:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoles(v)
		return nil
	case user.FieldStatus:
		v, ok := value.(user.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case user.FieldFlatRateFee:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlatRateFee(v)
		return nil
	case user.FieldPriorityMultipliers:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriorityMultipliers(v)
		return nil
	case user.FieldPartnerTier:
		v, ok := value.(user.PartnerTier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPartnerTier(v)
		return nil
	case user.FieldTierManualOverride:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTierManualOverride(v)
		return nil
	case user.FieldWalletBalance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWalletBalance(v)
		return nil
	case user.FieldZones:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetZones(v)
		return nil
	case user.FieldReferredBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReferredBy(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	var fields []string
	if m.addflat_rate_fee != nil {
		fields = append(fields, user.FieldFlatRateFee)
	}
	if m.addwallet_balance != nil {
		fields = append(fields, user.FieldWalletBalance)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case user.FieldFlatRateFee:
		return m.AddedFlatRateFee()
	case user.FieldWalletBalance:
		return m.AddedWalletBalance()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	case user.FieldFlatRateFee:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFlatRateFee(v)
		return nil
	case user.FieldWalletBalance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWalletBalance(v)
		return nil
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldDeletedAt) {
		fields = append(fields, user.FieldDeletedAt)
	}
	if m.FieldCleared(user.FieldPhone) {
		fields = append(fields, user.FieldPhone)
	}
	if m.FieldCleared(user.FieldPriorityMultipliers) {
		fields = append(fields, user.FieldPriorityMultipliers)
	}
	if m.FieldCleared(user.FieldPartnerTier) {
		fields = append(fields, user.FieldPartnerTier)
	}
	if m.FieldCleared(user.FieldZones) {
		fields = append(fields, user.FieldZones)
	}
	if m.FieldCleared(user.FieldReferredBy) {
		fields = append(fields, user.FieldReferredBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case user.FieldPhone:
		m.ClearPhone()
		return nil
	case user.FieldPriorityMultipliers:
		m.ClearPriorityMultipliers()
		return nil
	case user.FieldPartnerTier:
		m.ClearPartnerTier()
		return nil
	case user.FieldZones:
		m.ClearZones()
		return nil
	case user.FieldReferredBy:
		m.ClearReferredBy()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case user.FieldPublicID:
		m.ResetPublicID()
		return nil
	case user.FieldName:
		m.ResetName()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldPhone:
		m.ResetPhone()
		return nil
	case user.FieldRoles:
		m.ResetRoles()
		return nil
	case user.FieldStatus:
		m.ResetStatus()
		return nil
	case user.FieldFlatRateFee:
		m.ResetFlatRateFee()
		return nil
	case user.FieldPriorityMultipliers:
		m.ResetPriorityMultipliers()
		return nil
	case user.FieldPartnerTier:
		m.ResetPartnerTier()
		return nil
	case user.FieldTierManualOverride:
		m.ResetTierManualOverride()
		return nil
	case user.FieldWalletBalance:
		m.ResetWalletBalance()
		return nil
	case user.FieldZones:
		m.ResetZones()
		return nil
	case user.FieldReferredBy:
		m.ResetReferredBy()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.referrer != nil {
		edges = append(edges, user.EdgeReferrer)
	}
	if m.referrals != nil {
		edges = append(edges, user.EdgeReferrals)
	}
	if m.shipments != nil {
		edges = append(edges, user.EdgeShipments)
	}
	if m.courier_stats != nil {
		edges = append(edges, user.EdgeCourierStats)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeReferrer:
		if id := m.referrer; id != nil {
			return []ent.Value{*id}
		}
	case user.EdgeReferrals:
		ids := make([]ent.Value, 0, len(m.referrals))
		for id := range m.referrals {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeShipments:
		ids := make([]ent.Value, 0, len(m.shipments))
		for id := range m.shipments {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeCourierStats:
		if id := m.courier_stats; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedreferrals != nil {
		edges = append(edges, user.EdgeReferrals)
	}
	if m.removedshipments != nil {
		edges = append(edges, user.EdgeShipments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeReferrals:
		ids := make([]ent.Value, 0, len(m.removedreferrals))
		for id := range m.removedreferrals {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeShipments:
		ids := make([]ent.Value, 0, len(m.removedshipments))
		for id := range m.removedshipments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedreferrer {
		edges = append(edges, user.EdgeReferrer)
	}
	if m.clearedreferrals {
		edges = append(edges, user.EdgeReferrals)
	}
	if m.clearedshipments {
		edges = append(edges, user.EdgeShipments)
	}
	if m.clearedcourier_stats {
		edges = append(edges, user.EdgeCourierStats)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeReferrer:
		return m.clearedreferrer
	case user.EdgeReferrals:
		return m.clearedreferrals
	case user.EdgeShipments:
		return m.clearedshipments
	case user.EdgeCourierStats:
		return m.clearedcourier_stats
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	case user.EdgeReferrer:
		m.ClearReferrer()
		return nil
	case user.EdgeCourierStats:
		m.ClearCourierStats()
		return nil
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeReferrer:
		m.ResetReferrer()
		return nil
	case user.EdgeReferrals:
		m.ResetReferrals()
		return nil
	case user.EdgeShipments:
		m.ResetShipments()
		return nil
	case user.EdgeCourierStats:
		m.ResetCourierStats()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
