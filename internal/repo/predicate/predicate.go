// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Counter is the predicate function for counter builders.
type Counter func(*sql.Selector)

// CourierStats is the predicate function for courierstats builders.
type CourierStats func(*sql.Selector)

// InventoryItem is the predicate function for inventoryitem builders.
type InventoryItem func(*sql.Selector)

// Shipment is the predicate function for shipment builders.
type Shipment func(*sql.Selector)

// TierSetting is the predicate function for tiersetting builders.
type TierSetting func(*sql.Selector)

// Transaction is the predicate function for transaction builders.
type Transaction func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
