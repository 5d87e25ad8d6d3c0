// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/karimsaad/wasel_backend/internal/repo/courierstats"
	"github.com/karimsaad/wasel_backend/internal/repo/user"
)

// CourierStats is the model entity for the CourierStats schema.
type CourierStats struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id (one stats row per courier)
	CourierID uuid.UUID `json:"courier_id,omitempty"`
	// CommissionScheme holds the value of the "commission_scheme" field.
	CommissionScheme courierstats.CommissionScheme `json:"commission_scheme,omitempty"`
	// Percentage when scheme=percentage; ignored for flat (the priority schedule wins)
	CommissionValue float64 `json:"commission_value,omitempty"`
	// ConsecutiveFailures holds the value of the "consecutive_failures" field.
	ConsecutiveFailures int `json:"consecutive_failures,omitempty"`
	// Restricted couriers are excluded from auto-assignment
	Restricted bool `json:"restricted,omitempty"`
	// RestrictionReason holds the value of the "restriction_reason" field.
	RestrictionReason *string `json:"restriction_reason,omitempty"`
	// Advisory cache; the transactions ledger is authoritative
	CurrentBalance float64 `json:"current_balance,omitempty"`
	// Advisory cache of lifetime gross earnings
	TotalEarnings float64 `json:"total_earnings,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CourierStatsQuery when eager-loading is set.
	Edges        CourierStatsEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CourierStatsEdges holds the relations/edges for other nodes in the graph.
type CourierStatsEdges struct {
	// Courier holds the value of the courier edge.
	Courier *User `json:"courier,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CourierOrErr returns the Courier value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CourierStatsEdges) CourierOrErr() (*User, error) {
	if e.Courier != nil {
		return e.Courier, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "courier"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CourierStats) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case courierstats.FieldRestricted:
			values[i] = new(sql.NullBool)
		case courierstats.FieldCommissionValue, courierstats.FieldCurrentBalance, courierstats.FieldTotalEarnings:
			values[i] = new(sql.NullFloat64)
		case courierstats.FieldConsecutiveFailures:
			values[i] = new(sql.NullInt64)
		case courierstats.FieldCommissionScheme, courierstats.FieldRestrictionReason:
			values[i] = new(sql.NullString)
		case courierstats.FieldCreatedAt, courierstats.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case courierstats.FieldID, courierstats.FieldCourierID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CourierStats fields.
func (_m *CourierStats) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case courierstats.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case courierstats.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case courierstats.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case courierstats.FieldCourierID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field courier_id", values[i])
			} else if value != nil {
				_m.CourierID = *value
			}
		case courierstats.FieldCommissionScheme:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field commission_scheme", values[i])
			} else if value.Valid {
				_m.CommissionScheme = courierstats.CommissionScheme(value.String)
			}
		case courierstats.FieldCommissionValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field commission_value", values[i])
			} else if value.Valid {
				_m.CommissionValue = value.Float64
			}
		case courierstats.FieldConsecutiveFailures:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consecutive_failures", values[i])
			} else if value.Valid {
				_m.ConsecutiveFailures = int(value.Int64)
			}
		case courierstats.FieldRestricted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field restricted", values[i])
			} else if value.Valid {
				_m.Restricted = value.Bool
			}
		case courierstats.FieldRestrictionReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field restriction_reason", values[i])
			} else if value.Valid {
				_m.RestrictionReason = new(string)
				*_m.RestrictionReason = value.String
			}
		case courierstats.FieldCurrentBalance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field current_balance", values[i])
			} else if value.Valid {
				_m.CurrentBalance = value.Float64
			}
		case courierstats.FieldTotalEarnings:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_earnings", values[i])
			} else if value.Valid {
				_m.TotalEarnings = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CourierStats.
// This includes values selected through modifiers, order, etc.
func (_m *CourierStats) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCourier queries the "courier" edge of the CourierStats entity.
func (_m *CourierStats) QueryCourier() *UserQuery {
	return NewCourierStatsClient(_m.config).QueryCourier(_m)
}

// Update returns a builder for updating this CourierStats.
// Note that you need to call CourierStats.Unwrap() before calling this method if this CourierStats
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CourierStats) Update() *CourierStatsUpdateOne {
	return NewCourierStatsClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CourierStats entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CourierStats) Unwrap() *CourierStats {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: CourierStats is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CourierStats) String() string {
	var builder strings.Builder
	builder.WriteString("CourierStats(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("courier_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CourierID))
	builder.WriteString(", ")
	builder.WriteString("commission_scheme=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommissionScheme))
	builder.WriteString(", ")
	builder.WriteString("commission_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommissionValue))
	builder.WriteString(", ")
	builder.WriteString("consecutive_failures=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsecutiveFailures))
	builder.WriteString(", ")
	builder.WriteString("restricted=")
	builder.WriteString(fmt.Sprintf("%v", _m.Restricted))
	builder.WriteString(", ")
	if v := _m.RestrictionReason; v != nil {
		builder.WriteString("restriction_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("current_balance=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentBalance))
	builder.WriteString(", ")
	builder.WriteString("total_earnings=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalEarnings))
	builder.WriteByte(')')
	return builder.String()
}

// CourierStatsSlice is a parsable slice of CourierStats.
type CourierStatsSlice []*CourierStats
