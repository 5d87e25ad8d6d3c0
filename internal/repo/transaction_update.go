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
	"github.com/karimsaad/wasel_backend/internal/repo/predicate"
	"github.com/karimsaad/wasel_backend/internal/repo/transaction"
)

// TransactionUpdate is the builder for updating Transaction entities.
type TransactionUpdate struct {
	config
	hooks    []Hook
	mutation *TransactionMutation
}

// Where appends a list predicates to the TransactionUpdate builder.
func (_u *TransactionUpdate) Where(ps ...predicate.Transaction) *TransactionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAccountType sets the "account_type" field.
func (_u *TransactionUpdate) SetAccountType(v transaction.AccountType) *TransactionUpdate {
	_u.mutation.SetAccountType(v)
	return _u
}

// SetNillableAccountType sets the "account_type" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableAccountType(v *transaction.AccountType) *TransactionUpdate {
	if v != nil {
		_u.SetAccountType(*v)
	}
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *TransactionUpdate) SetAccountID(v uuid.UUID) *TransactionUpdate {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableAccountID(v *uuid.UUID) *TransactionUpdate {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *TransactionUpdate) SetType(v transaction.Type) *TransactionUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableType(v *transaction.Type) *TransactionUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *TransactionUpdate) SetAmount(v float64) *TransactionUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableAmount(v *float64) *TransactionUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *TransactionUpdate) AddAmount(v float64) *TransactionUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetShipmentID sets the "shipment_id" field.
func (_u *TransactionUpdate) SetShipmentID(v uuid.UUID) *TransactionUpdate {
	_u.mutation.SetShipmentID(v)
	return _u
}

// SetNillableShipmentID sets the "shipment_id" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableShipmentID(v *uuid.UUID) *TransactionUpdate {
	if v != nil {
		_u.SetShipmentID(*v)
	}
	return _u
}

// ClearShipmentID clears the value of the "shipment_id" field.
func (_u *TransactionUpdate) ClearShipmentID() *TransactionUpdate {
	_u.mutation.ClearShipmentID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TransactionUpdate) SetStatus(v transaction.Status) *TransactionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableStatus(v *transaction.Status) *TransactionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPaymentMethod sets the "payment_method" field.
func (_u *TransactionUpdate) SetPaymentMethod(v string) *TransactionUpdate {
	_u.mutation.SetPaymentMethod(v)
	return _u
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillablePaymentMethod(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetPaymentMethod(*v)
	}
	return _u
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (_u *TransactionUpdate) ClearPaymentMethod() *TransactionUpdate {
	_u.mutation.ClearPaymentMethod()
	return _u
}

// SetEvidenceRef sets the "evidence_ref" field.
func (_u *TransactionUpdate) SetEvidenceRef(v string) *TransactionUpdate {
	_u.mutation.SetEvidenceRef(v)
	return _u
}

// SetNillableEvidenceRef sets the "evidence_ref" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableEvidenceRef(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetEvidenceRef(*v)
	}
	return _u
}

// ClearEvidenceRef clears the value of the "evidence_ref" field.
func (_u *TransactionUpdate) ClearEvidenceRef() *TransactionUpdate {
	_u.mutation.ClearEvidenceRef()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *TransactionUpdate) SetProcessedAt(v time.Time) *TransactionUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableProcessedAt(v *time.Time) *TransactionUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *TransactionUpdate) ClearProcessedAt() *TransactionUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// Mutation returns the TransactionMutation object of the builder.
func (_u *TransactionUpdate) Mutation() *TransactionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TransactionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TransactionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TransactionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TransactionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TransactionUpdate) check() error {
	if v, ok := _u.mutation.AccountType(); ok {
		if err := transaction.AccountTypeValidator(v); err != nil {
			return &ValidationError{Name: "account_type", err: fmt.Errorf(`repo: validator failed for field "Transaction.account_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := transaction.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "Transaction.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := transaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Transaction.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentMethod(); ok {
		if err := transaction.PaymentMethodValidator(v); err != nil {
			return &ValidationError{Name: "payment_method", err: fmt.Errorf(`repo: validator failed for field "Transaction.payment_method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EvidenceRef(); ok {
		if err := transaction.EvidenceRefValidator(v); err != nil {
			return &ValidationError{Name: "evidence_ref", err: fmt.Errorf(`repo: validator failed for field "Transaction.evidence_ref": %w`, err)}
		}
	}
	return nil
}

func (_u *TransactionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transaction.Table, transaction.Columns, sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AccountType(); ok {
		_spec.SetField(transaction.FieldAccountType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AccountID(); ok {
		_spec.SetField(transaction.FieldAccountID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(transaction.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(transaction.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(transaction.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ShipmentID(); ok {
		_spec.SetField(transaction.FieldShipmentID, field.TypeUUID, value)
	}
	if _u.mutation.ShipmentIDCleared() {
		_spec.ClearField(transaction.FieldShipmentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(transaction.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PaymentMethod(); ok {
		_spec.SetField(transaction.FieldPaymentMethod, field.TypeString, value)
	}
	if _u.mutation.PaymentMethodCleared() {
		_spec.ClearField(transaction.FieldPaymentMethod, field.TypeString)
	}
	if value, ok := _u.mutation.EvidenceRef(); ok {
		_spec.SetField(transaction.FieldEvidenceRef, field.TypeString, value)
	}
	if _u.mutation.EvidenceRefCleared() {
		_spec.ClearField(transaction.FieldEvidenceRef, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(transaction.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(transaction.FieldProcessedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TransactionUpdateOne is the builder for updating a single Transaction entity.
type TransactionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TransactionMutation
}

// SetAccountType sets the "account_type" field.
func (_u *TransactionUpdateOne) SetAccountType(v transaction.AccountType) *TransactionUpdateOne {
	_u.mutation.SetAccountType(v)
	return _u
}

// SetNillableAccountType sets the "account_type" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableAccountType(v *transaction.AccountType) *TransactionUpdateOne {
	if v != nil {
		_u.SetAccountType(*v)
	}
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *TransactionUpdateOne) SetAccountID(v uuid.UUID) *TransactionUpdateOne {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableAccountID(v *uuid.UUID) *TransactionUpdateOne {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *TransactionUpdateOne) SetType(v transaction.Type) *TransactionUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableType(v *transaction.Type) *TransactionUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *TransactionUpdateOne) SetAmount(v float64) *TransactionUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableAmount(v *float64) *TransactionUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *TransactionUpdateOne) AddAmount(v float64) *TransactionUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetShipmentID sets the "shipment_id" field.
func (_u *TransactionUpdateOne) SetShipmentID(v uuid.UUID) *TransactionUpdateOne {
	_u.mutation.SetShipmentID(v)
	return _u
}

// SetNillableShipmentID sets the "shipment_id" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableShipmentID(v *uuid.UUID) *TransactionUpdateOne {
	if v != nil {
		_u.SetShipmentID(*v)
	}
	return _u
}

// ClearShipmentID clears the value of the "shipment_id" field.
func (_u *TransactionUpdateOne) ClearShipmentID() *TransactionUpdateOne {
	_u.mutation.ClearShipmentID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TransactionUpdateOne) SetStatus(v transaction.Status) *TransactionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableStatus(v *transaction.Status) *TransactionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPaymentMethod sets the "payment_method" field.
func (_u *TransactionUpdateOne) SetPaymentMethod(v string) *TransactionUpdateOne {
	_u.mutation.SetPaymentMethod(v)
	return _u
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillablePaymentMethod(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetPaymentMethod(*v)
	}
	return _u
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (_u *TransactionUpdateOne) ClearPaymentMethod() *TransactionUpdateOne {
	_u.mutation.ClearPaymentMethod()
	return _u
}

// SetEvidenceRef sets the "evidence_ref" field.
func (_u *TransactionUpdateOne) SetEvidenceRef(v string) *TransactionUpdateOne {
	_u.mutation.SetEvidenceRef(v)
	return _u
}

// SetNillableEvidenceRef sets the "evidence_ref" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableEvidenceRef(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetEvidenceRef(*v)
	}
	return _u
}

// ClearEvidenceRef clears the value of the "evidence_ref" field.
func (_u *TransactionUpdateOne) ClearEvidenceRef() *TransactionUpdateOne {
	_u.mutation.ClearEvidenceRef()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *TransactionUpdateOne) SetProcessedAt(v time.Time) *TransactionUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableProcessedAt(v *time.Time) *TransactionUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *TransactionUpdateOne) ClearProcessedAt() *TransactionUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// Mutation returns the TransactionMutation object of the builder.
func (_u *TransactionUpdateOne) Mutation() *TransactionMutation {
	return _u.mutation
}

// Where appends a list predicates to the TransactionUpdate builder.
func (_u *TransactionUpdateOne) Where(ps ...predicate.Transaction) *TransactionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TransactionUpdateOne) Select(field string, fields ...string) *TransactionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Transaction entity.
func (_u *TransactionUpdateOne) Save(ctx context.Context) (*Transaction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TransactionUpdateOne) SaveX(ctx context.Context) *Transaction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TransactionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TransactionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TransactionUpdateOne) check() error {
	if v, ok := _u.mutation.AccountType(); ok {
		if err := transaction.AccountTypeValidator(v); err != nil {
			return &ValidationError{Name: "account_type", err: fmt.Errorf(`repo: validator failed for field "Transaction.account_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := transaction.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "Transaction.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := transaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Transaction.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentMethod(); ok {
		if err := transaction.PaymentMethodValidator(v); err != nil {
			return &ValidationError{Name: "payment_method", err: fmt.Errorf(`repo: validator failed for field "Transaction.payment_method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EvidenceRef(); ok {
		if err := transaction.EvidenceRefValidator(v); err != nil {
			return &ValidationError{Name: "evidence_ref", err: fmt.Errorf(`repo: validator failed for field "Transaction.evidence_ref": %w`, err)}
		}
	}
	return nil
}

func (_u *TransactionUpdateOne) sqlSave(ctx context.Context) (_node *Transaction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transaction.Table, transaction.Columns, sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Transaction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transaction.FieldID)
		for _, f := range fields {
			if !transaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != transaction.FieldID {
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
	if value, ok := _u.mutation.AccountType(); ok {
		_spec.SetField(transaction.FieldAccountType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AccountID(); ok {
		_spec.SetField(transaction.FieldAccountID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(transaction.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(transaction.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(transaction.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ShipmentID(); ok {
		_spec.SetField(transaction.FieldShipmentID, field.TypeUUID, value)
	}
	if _u.mutation.ShipmentIDCleared() {
		_spec.ClearField(transaction.FieldShipmentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(transaction.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PaymentMethod(); ok {
		_spec.SetField(transaction.FieldPaymentMethod, field.TypeString, value)
	}
	if _u.mutation.PaymentMethodCleared() {
		_spec.ClearField(transaction.FieldPaymentMethod, field.TypeString)
	}
	if value, ok := _u.mutation.EvidenceRef(); ok {
		_spec.SetField(transaction.FieldEvidenceRef, field.TypeString, value)
	}
	if _u.mutation.EvidenceRefCleared() {
		_spec.ClearField(transaction.FieldEvidenceRef, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(transaction.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(transaction.FieldProcessedAt, field.TypeTime)
	}
	_node = &Transaction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
