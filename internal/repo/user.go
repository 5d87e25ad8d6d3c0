// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/karimsaad/wasel_backend/internal/repo/courierstats"
	"github.com/karimsaad/wasel_backend/internal/repo/user"
)

// User is the model entity for the User schema.
type User struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Role-prefixed public identifier, e.g. CL-000042
	PublicID string `json:"public_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// Phone holds the value of the "phone" field.
	Phone *string `json:"phone,omitempty"`
	// client | courier | admin | staff
	Roles []string `json:"roles,omitempty"`
	// Status holds the value of the "status" field.
	Status user.Status `json:"status,omitempty"`
	// Base shipping fee before priority multiplier
	FlatRateFee float64 `json:"flat_rate_fee,omitempty"`
	// priority → fee multiplier, e.g. {standard:1, urgent:1.5, express:2}
	PriorityMultipliers map[string]float64 `json:"priority_multipliers,omitempty"`
	// PartnerTier holds the value of the "partner_tier" field.
	PartnerTier *user.PartnerTier `json:"partner_tier,omitempty"`
	// If true the daily tier recalculation skips this client
	TierManualOverride bool `json:"tier_manual_override,omitempty"`
	// Advisory cache; the transactions ledger is authoritative
	WalletBalance float64 `json:"wallet_balance,omitempty"`
	// Serviceable destination zones for couriers
	Zones []string `json:"zones,omitempty"`
	// Referring user; earns a fixed bonus per delivery by this courier
	ReferredBy *uuid.UUID `json:"referred_by,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UserQuery when eager-loading is set.
	Edges        UserEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UserEdges holds the relations/edges for other nodes in the graph.
type UserEdges struct {
	// Referrer holds the value of the referrer edge.
	Referrer *User `json:"referrer,omitempty"`
	// Referrals holds the value of the referrals edge.
	Referrals []*User `json:"referrals,omitempty"`
	// Shipments holds the value of the shipments edge.
	Shipments []*Shipment `json:"shipments,omitempty"`
	// CourierStats holds the value of the courier_stats edge.
	CourierStats *CourierStats `json:"courier_stats,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// ReferrerOrErr returns the Referrer value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UserEdges) ReferrerOrErr() (*User, error) {
	if e.Referrer != nil {
		return e.Referrer, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "referrer"}
}

// ReferralsOrErr returns the Referrals value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) ReferralsOrErr() ([]*User, error) {
	if e.loadedTypes[1] {
		return e.Referrals, nil
	}
	return nil, &NotLoadedError{edge: "referrals"}
}

// ShipmentsOrErr returns the Shipments value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) ShipmentsOrErr() ([]*Shipment, error) {
	if e.loadedTypes[2] {
		return e.Shipments, nil
	}
	return nil, &NotLoadedError{edge: "shipments"}
}

// CourierStatsOrErr returns the CourierStats value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UserEdges) CourierStatsOrErr() (*CourierStats, error) {
	if e.CourierStats != nil {
		return e.CourierStats, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: courierstats.Label}
	}
	return nil, &NotLoadedError{edge: "courier_stats"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*User) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case user.FieldReferredBy:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case user.FieldRoles, user.FieldPriorityMultipliers, user.FieldZones:
			values[i] = new([]byte)
		case user.FieldTierManualOverride:
			values[i] = new(sql.NullBool)
		case user.FieldFlatRateFee, user.FieldWalletBalance:
			values[i] = new(sql.NullFloat64)
		case user.FieldPublicID, user.FieldName, user.FieldEmail, user.FieldPhone, user.FieldStatus, user.FieldPartnerTier:
			values[i] = new(sql.NullString)
		case user.FieldCreatedAt, user.FieldUpdatedAt, user.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		case user.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the User fields.
func (_m *User) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case user.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case user.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case user.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case user.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case user.FieldPublicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field public_id", values[i])
			} else if value.Valid {
				_m.PublicID = value.String
			}
		case user.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case user.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case user.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = new(string)
				*_m.Phone = value.String
			}
		case user.FieldRoles:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field roles", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Roles); err != nil {
					return fmt.Errorf("unmarshal field roles: %w", err)
				}
			}
		case user.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = user.Status(value.String)
			}
		case user.FieldFlatRateFee:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field flat_rate_fee", values[i])
			} else if value.Valid {
				_m.FlatRateFee = value.Float64
			}
		case user.FieldPriorityMultipliers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field priority_multipliers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PriorityMultipliers); err != nil {
					return fmt.Errorf("unmarshal field priority_multipliers: %w", err)
				}
			}
		case user.FieldPartnerTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field partner_tier", values[i])
			} else if value.Valid {
				_m.PartnerTier = new(user.PartnerTier)
				*_m.PartnerTier = user.PartnerTier(value.String)
			}
		case user.FieldTierManualOverride:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field tier_manual_override", values[i])
			} else if value.Valid {
				_m.TierManualOverride = value.Bool
			}
		case user.FieldWalletBalance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field wallet_balance", values[i])
			} else if value.Valid {
				_m.WalletBalance = value.Float64
			}
		case user.FieldZones:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field zones", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Zones); err != nil {
					return fmt.Errorf("unmarshal field zones: %w", err)
				}
			}
		case user.FieldReferredBy:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field referred_by", values[i])
			} else if value.Valid {
				_m.ReferredBy = new(uuid.UUID)
				*_m.ReferredBy = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the User.
// This includes values selected through modifiers, order, etc.
func (_m *User) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReferrer queries the "referrer" edge of the User entity.
func (_m *User) QueryReferrer() *UserQuery {
	return NewUserClient(_m.config).QueryReferrer(_m)
}

// QueryReferrals queries the "referrals" edge of the User entity.
func (_m *User) QueryReferrals() *UserQuery {
	return NewUserClient(_m.config).QueryReferrals(_m)
}

// QueryShipments queries the "shipments" edge of the User entity.
func (_m *User) QueryShipments() *ShipmentQuery {
	return NewUserClient(_m.config).QueryShipments(_m)
}

// QueryCourierStats queries the "courier_stats" edge of the User entity.
func (_m *User) QueryCourierStats() *CourierStatsQuery {
	return NewUserClient(_m.config).QueryCourierStats(_m)
}

// Update returns a builder for updating this User.
// Note that you need to call User.Unwrap() before calling this method if this User
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *User) Update() *UserUpdateOne {
	return NewUserClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the User entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *User) Unwrap() *User {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: User is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *User) String() string {
	var builder strings.Builder
	builder.WriteString("User(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("public_id=")
	builder.WriteString(_m.PublicID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	if v := _m.Phone; v != nil {
		builder.WriteString("phone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("roles=")
	builder.WriteString(fmt.Sprintf("%v", _m.Roles))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("flat_rate_fee=")
	builder.WriteString(fmt.Sprintf("%v", _m.FlatRateFee))
	builder.WriteString(", ")
	builder.WriteString("priority_multipliers=")
	builder.WriteString(fmt.Sprintf("%v", _m.PriorityMultipliers))
	builder.WriteString(", ")
	if v := _m.PartnerTier; v != nil {
		builder.WriteString("partner_tier=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("tier_manual_override=")
	builder.WriteString(fmt.Sprintf("%v", _m.TierManualOverride))
	builder.WriteString(", ")
	builder.WriteString("wallet_balance=")
	builder.WriteString(fmt.Sprintf("%v", _m.WalletBalance))
	builder.WriteString(", ")
	builder.WriteString("zones=")
	builder.WriteString(fmt.Sprintf("%v", _m.Zones))
	builder.WriteString(", ")
	if v := _m.ReferredBy; v != nil {
		builder.WriteString("referred_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Users is a parsable slice of User.
type Users []*User
