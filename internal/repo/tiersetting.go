// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/karimsaad/wasel_backend/internal/repo/tiersetting"
)

// TierSetting is the model entity for the TierSetting schema.
type TierSetting struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Tier holds the value of the "tier" field.
	Tier tiersetting.Tier `json:"tier,omitempty"`
	// Rolling 30-day shipment count required for this tier
	MinShipments int `json:"min_shipments,omitempty"`
	// Client fee discount granted by this tier (0–100)
	DiscountPercent float64 `json:"discount_percent,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TierSetting) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tiersetting.FieldDiscountPercent:
			values[i] = new(sql.NullFloat64)
		case tiersetting.FieldMinShipments:
			values[i] = new(sql.NullInt64)
		case tiersetting.FieldTier:
			values[i] = new(sql.NullString)
		case tiersetting.FieldCreatedAt, tiersetting.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case tiersetting.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TierSetting fields.
func (_m *TierSetting) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tiersetting.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case tiersetting.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case tiersetting.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case tiersetting.FieldTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tier", values[i])
			} else if value.Valid {
				_m.Tier = tiersetting.Tier(value.String)
			}
		case tiersetting.FieldMinShipments:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field min_shipments", values[i])
			} else if value.Valid {
				_m.MinShipments = int(value.Int64)
			}
		case tiersetting.FieldDiscountPercent:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field discount_percent", values[i])
			} else if value.Valid {
				_m.DiscountPercent = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TierSetting.
// This includes values selected through modifiers, order, etc.
func (_m *TierSetting) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TierSetting.
// Note that you need to call TierSetting.Unwrap() before calling this method if this TierSetting
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TierSetting) Update() *TierSettingUpdateOne {
	return NewTierSettingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TierSetting entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TierSetting) Unwrap() *TierSetting {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: TierSetting is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TierSetting) String() string {
	var builder strings.Builder
	builder.WriteString("TierSetting(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("tier=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tier))
	builder.WriteString(", ")
	builder.WriteString("min_shipments=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinShipments))
	builder.WriteString(", ")
	builder.WriteString("discount_percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.DiscountPercent))
	builder.WriteByte(')')
	return builder.String()
}

// TierSettings is a parsable slice of TierSetting.
type TierSettings []*TierSetting
