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
	"github.com/karimsaad/wasel_backend/internal/model"
	"github.com/karimsaad/wasel_backend/internal/repo/shipment"
	"github.com/karimsaad/wasel_backend/internal/repo/user"
)

// Shipment is the model entity for the Shipment schema.
type Shipment struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Human-readable id: {governorate}-{yymmdd}-{batch}-{seq}
	DisplayID string `json:"display_id,omitempty"`
	// FK → users.id
	ClientID uuid.UUID `json:"client_id,omitempty"`
	// RecipientName holds the value of the "recipient_name" field.
	RecipientName string `json:"recipient_name,omitempty"`
	// RecipientPhone holds the value of the "recipient_phone" field.
	RecipientPhone string `json:"recipient_phone,omitempty"`
	// FromAddress holds the value of the "from_address" field.
	FromAddress model.Address `json:"from_address,omitempty"`
	// ToAddress holds the value of the "to_address" field.
	ToAddress model.Address `json:"to_address,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority shipment.Priority `json:"priority,omitempty"`
	// PaymentMethod holds the value of the "payment_method" field.
	PaymentMethod shipment.PaymentMethod `json:"payment_method,omitempty"`
	// Declared value collected from the recipient for COD/wallet
	PackageValue float64 `json:"package_value,omitempty"`
	// Transfer-method collection amount; fee settled out of band
	AmountToCollect float64 `json:"amount_to_collect,omitempty"`
	// Client fee, fixed at creation
	ShippingFee float64 `json:"shipping_fee,omitempty"`
	// Courier commission, fixed at assignment
	CourierCommission float64 `json:"courier_commission,omitempty"`
	// Final shipment price per payment method
	Price float64 `json:"price,omitempty"`
	// Status holds the value of the "status" field.
	Status shipment.Status `json:"status,omitempty"`
	// Append-only ordered history; last entry mirrors status
	StatusHistory []model.StatusEvent `json:"status_history,omitempty"`
	// CourierID holds the value of the "courier_id" field.
	CourierID *uuid.UUID `json:"courier_id,omitempty"`
	// Inventory items consumed during packaging
	PackagingLog []model.PackagingLine `json:"packaging_log,omitempty"`
	// PackagingNotes holds the value of the "packaging_notes" field.
	PackagingNotes *string `json:"packaging_notes,omitempty"`
	// FailureReason holds the value of the "failure_reason" field.
	FailureReason *string `json:"failure_reason,omitempty"`
	// Blob storage reference for the failure evidence photo
	FailurePhoto *string `json:"failure_photo,omitempty"`
	// DeliveredAt holds the value of the "delivered_at" field.
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ShipmentQuery when eager-loading is set.
	Edges        ShipmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ShipmentEdges holds the relations/edges for other nodes in the graph.
type ShipmentEdges struct {
	// Client holds the value of the client edge.
	Client *User `json:"client,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ClientOrErr returns the Client value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ShipmentEdges) ClientOrErr() (*User, error) {
	if e.Client != nil {
		return e.Client, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "client"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Shipment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case shipment.FieldCourierID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case shipment.FieldFromAddress, shipment.FieldToAddress, shipment.FieldStatusHistory, shipment.FieldPackagingLog:
			values[i] = new([]byte)
		case shipment.FieldPackageValue, shipment.FieldAmountToCollect, shipment.FieldShippingFee, shipment.FieldCourierCommission, shipment.FieldPrice:
			values[i] = new(sql.NullFloat64)
		case shipment.FieldDisplayID, shipment.FieldRecipientName, shipment.FieldRecipientPhone, shipment.FieldPriority, shipment.FieldPaymentMethod, shipment.FieldStatus, shipment.FieldPackagingNotes, shipment.FieldFailureReason, shipment.FieldFailurePhoto:
			values[i] = new(sql.NullString)
		case shipment.FieldCreatedAt, shipment.FieldUpdatedAt, shipment.FieldDeliveredAt:
			values[i] = new(sql.NullTime)
		case shipment.FieldID, shipment.FieldClientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Shipment fields.
func (_m *Shipment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case shipment.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case shipment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case shipment.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case shipment.FieldDisplayID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_id", values[i])
			} else if value.Valid {
				_m.DisplayID = value.String
			}
		case shipment.FieldClientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field client_id", values[i])
			} else if value != nil {
				_m.ClientID = *value
			}
		case shipment.FieldRecipientName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recipient_name", values[i])
			} else if value.Valid {
				_m.RecipientName = value.String
			}
		case shipment.FieldRecipientPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recipient_phone", values[i])
			} else if value.Valid {
				_m.RecipientPhone = value.String
			}
		case shipment.FieldFromAddress:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field from_address", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FromAddress); err != nil {
					return fmt.Errorf("unmarshal field from_address: %w", err)
				}
			}
		case shipment.FieldToAddress:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field to_address", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ToAddress); err != nil {
					return fmt.Errorf("unmarshal field to_address: %w", err)
				}
			}
		case shipment.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = shipment.Priority(value.String)
			}
		case shipment.FieldPaymentMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_method", values[i])
			} else if value.Valid {
				_m.PaymentMethod = shipment.PaymentMethod(value.String)
			}
		case shipment.FieldPackageValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field package_value", values[i])
			} else if value.Valid {
				_m.PackageValue = value.Float64
			}
		case shipment.FieldAmountToCollect:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount_to_collect", values[i])
			} else if value.Valid {
				_m.AmountToCollect = value.Float64
			}
		case shipment.FieldShippingFee:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field shipping_fee", values[i])
			} else if value.Valid {
				_m.ShippingFee = value.Float64
			}
		case shipment.FieldCourierCommission:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field courier_commission", values[i])
			} else if value.Valid {
				_m.CourierCommission = value.Float64
			}
		case shipment.FieldPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field price", values[i])
			} else if value.Valid {
				_m.Price = value.Float64
			}
		case shipment.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = shipment.Status(value.String)
			}
		case shipment.FieldStatusHistory:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field status_history", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StatusHistory); err != nil {
					return fmt.Errorf("unmarshal field status_history: %w", err)
				}
			}
		case shipment.FieldCourierID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field courier_id", values[i])
			} else if value.Valid {
				_m.CourierID = new(uuid.UUID)
				*_m.CourierID = *value.S.(*uuid.UUID)
			}
		case shipment.FieldPackagingLog:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field packaging_log", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PackagingLog); err != nil {
					return fmt.Errorf("unmarshal field packaging_log: %w", err)
				}
			}
		case shipment.FieldPackagingNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field packaging_notes", values[i])
			} else if value.Valid {
				_m.PackagingNotes = new(string)
				*_m.PackagingNotes = value.String
			}
		case shipment.FieldFailureReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_reason", values[i])
			} else if value.Valid {
				_m.FailureReason = new(string)
				*_m.FailureReason = value.String
			}
		case shipment.FieldFailurePhoto:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_photo", values[i])
			} else if value.Valid {
				_m.FailurePhoto = new(string)
				*_m.FailurePhoto = value.String
			}
		case shipment.FieldDeliveredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field delivered_at", values[i])
			} else if value.Valid {
				_m.DeliveredAt = new(time.Time)
				*_m.DeliveredAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Shipment.
// This includes values selected through modifiers, order, etc.
func (_m *Shipment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryClient queries the "client" edge of the Shipment entity.
func (_m *Shipment) QueryClient() *UserQuery {
	return NewShipmentClient(_m.config).QueryClient(_m)
}

// Update returns a builder for updating this Shipment.
// Note that you need to call Shipment.Unwrap() before calling this method if this Shipment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Shipment) Update() *ShipmentUpdateOne {
	return NewShipmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Shipment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Shipment) Unwrap() *Shipment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Shipment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Shipment) String() string {
	var builder strings.Builder
	builder.WriteString("Shipment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("display_id=")
	builder.WriteString(_m.DisplayID)
	builder.WriteString(", ")
	builder.WriteString("client_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClientID))
	builder.WriteString(", ")
	builder.WriteString("recipient_name=")
	builder.WriteString(_m.RecipientName)
	builder.WriteString(", ")
	builder.WriteString("recipient_phone=")
	builder.WriteString(_m.RecipientPhone)
	builder.WriteString(", ")
	builder.WriteString("from_address=")
	builder.WriteString(fmt.Sprintf("%v", _m.FromAddress))
	builder.WriteString(", ")
	builder.WriteString("to_address=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToAddress))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("payment_method=")
	builder.WriteString(fmt.Sprintf("%v", _m.PaymentMethod))
	builder.WriteString(", ")
	builder.WriteString("package_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.PackageValue))
	builder.WriteString(", ")
	builder.WriteString("amount_to_collect=")
	builder.WriteString(fmt.Sprintf("%v", _m.AmountToCollect))
	builder.WriteString(", ")
	builder.WriteString("shipping_fee=")
	builder.WriteString(fmt.Sprintf("%v", _m.ShippingFee))
	builder.WriteString(", ")
	builder.WriteString("courier_commission=")
	builder.WriteString(fmt.Sprintf("%v", _m.CourierCommission))
	builder.WriteString(", ")
	builder.WriteString("price=")
	builder.WriteString(fmt.Sprintf("%v", _m.Price))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("status_history=")
	builder.WriteString(fmt.Sprintf("%v", _m.StatusHistory))
	builder.WriteString(", ")
	if v := _m.CourierID; v != nil {
		builder.WriteString("courier_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("packaging_log=")
	builder.WriteString(fmt.Sprintf("%v", _m.PackagingLog))
	builder.WriteString(", ")
	if v := _m.PackagingNotes; v != nil {
		builder.WriteString("packaging_notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FailureReason; v != nil {
		builder.WriteString("failure_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FailurePhoto; v != nil {
		builder.WriteString("failure_photo=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DeliveredAt; v != nil {
		builder.WriteString("delivered_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Shipments is a parsable slice of Shipment.
type Shipments []*Shipment
