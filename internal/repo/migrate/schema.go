// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CountersColumns holds the columns for the "counters" table.
	CountersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true, Size: 50},
		{Name: "value", Type: field.TypeInt64, Default: 0},
	}
	// CountersTable holds the schema information for the "counters" table.
	CountersTable = &schema.Table{
		Name:       "counters",
		Columns:    CountersColumns,
		PrimaryKey: []*schema.Column{CountersColumns[0]},
	}
	// CourierStatsColumns holds the columns for the "courier_stats" table.
	CourierStatsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "commission_scheme", Type: field.TypeEnum, Enums: []string{"flat", "percentage"}, Default: "flat"},
		{Name: "commission_value", Type: field.TypeFloat64, Default: 0},
		{Name: "consecutive_failures", Type: field.TypeInt, Default: 0},
		{Name: "restricted", Type: field.TypeBool, Default: false},
		{Name: "restriction_reason", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "current_balance", Type: field.TypeFloat64, Default: 0},
		{Name: "total_earnings", Type: field.TypeFloat64, Default: 0},
		{Name: "courier_id", Type: field.TypeUUID, Unique: true},
	}
	// CourierStatsTable holds the schema information for the "courier_stats" table.
	CourierStatsTable = &schema.Table{
		Name:       "courier_stats",
		Columns:    CourierStatsColumns,
		PrimaryKey: []*schema.Column{CourierStatsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "courier_stats_users_courier_stats",
				Columns:    []*schema.Column{CourierStatsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "courierstats_restricted",
				Unique:  false,
				Columns: []*schema.Column{CourierStatsColumns[6]},
			},
		},
	}
	// InventoryItemsColumns holds the columns for the "inventory_items" table.
	InventoryItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true, Size: 200},
		{Name: "quantity", Type: field.TypeInt, Default: 0},
	}
	// InventoryItemsTable holds the schema information for the "inventory_items" table.
	InventoryItemsTable = &schema.Table{
		Name:       "inventory_items",
		Columns:    InventoryItemsColumns,
		PrimaryKey: []*schema.Column{InventoryItemsColumns[0]},
	}
	// ShipmentsColumns holds the columns for the "shipments" table.
	ShipmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "display_id", Type: field.TypeString, Unique: true, Size: 30},
		{Name: "recipient_name", Type: field.TypeString, Size: 200},
		{Name: "recipient_phone", Type: field.TypeString, Size: 20},
		{Name: "from_address", Type: field.TypeJSON},
		{Name: "to_address", Type: field.TypeJSON},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"standard", "urgent", "express"}, Default: "standard"},
		{Name: "payment_method", Type: field.TypeEnum, Enums: []string{"cod", "transfer", "wallet"}},
		{Name: "package_value", Type: field.TypeFloat64, Default: 0},
		{Name: "amount_to_collect", Type: field.TypeFloat64, Default: 0},
		{Name: "shipping_fee", Type: field.TypeFloat64, Default: 0},
		{Name: "courier_commission", Type: field.TypeFloat64, Default: 0},
		{Name: "price", Type: field.TypeFloat64, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"waiting_packaging", "packaged", "assigned", "out_for_delivery", "delivered", "failed"}, Default: "waiting_packaging"},
		{Name: "status_history", Type: field.TypeJSON},
		{Name: "courier_id", Type: field.TypeUUID, Nullable: true},
		{Name: "packaging_log", Type: field.TypeJSON, Nullable: true},
		{Name: "packaging_notes", Type: field.TypeString, Nullable: true, Size: 1000},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "failure_photo", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "delivered_at", Type: field.TypeTime, Nullable: true},
		{Name: "client_id", Type: field.TypeUUID},
	}
	// ShipmentsTable holds the schema information for the "shipments" table.
	ShipmentsTable = &schema.Table{
		Name:       "shipments",
		Columns:    ShipmentsColumns,
		PrimaryKey: []*schema.Column{ShipmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "shipments_users_shipments",
				Columns:    []*schema.Column{ShipmentsColumns[23]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "shipment_client_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ShipmentsColumns[23], ShipmentsColumns[1]},
			},
			{
				Name:    "shipment_status",
				Unique:  false,
				Columns: []*schema.Column{ShipmentsColumns[15]},
			},
			{
				Name:    "shipment_courier_id_status",
				Unique:  false,
				Columns: []*schema.Column{ShipmentsColumns[17], ShipmentsColumns[15]},
			},
		},
	}
	// TierSettingsColumns holds the columns for the "tier_settings" table.
	TierSettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tier", Type: field.TypeEnum, Enums: []string{"bronze", "silver", "gold"}},
		{Name: "min_shipments", Type: field.TypeInt},
		{Name: "discount_percent", Type: field.TypeFloat64},
	}
	// TierSettingsTable holds the schema information for the "tier_settings" table.
	TierSettingsTable = &schema.Table{
		Name:       "tier_settings",
		Columns:    TierSettingsColumns,
		PrimaryKey: []*schema.Column{TierSettingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tiersetting_tier",
				Unique:  true,
				Columns: []*schema.Column{TierSettingsColumns[3]},
			},
		},
	}
	// TransactionsColumns holds the columns for the "transactions" table.
	TransactionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "account_type", Type: field.TypeEnum, Enums: []string{"client", "courier"}},
		{Name: "account_id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"commission", "referral_bonus", "penalty", "deposit", "payment", "withdrawal_request", "withdrawal_processed", "withdrawal_declined"}},
		{Name: "amount", Type: field.TypeFloat64},
		{Name: "shipment_id", Type: field.TypeUUID, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"processed", "pending", "declined", "failed"}, Default: "processed"},
		{Name: "payment_method", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "evidence_ref", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
	}
	// TransactionsTable holds the schema information for the "transactions" table.
	TransactionsTable = &schema.Table{
		Name:       "transactions",
		Columns:    TransactionsColumns,
		PrimaryKey: []*schema.Column{TransactionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "transaction_account_type_account_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TransactionsColumns[2], TransactionsColumns[3], TransactionsColumns[1]},
			},
			{
				Name:    "transaction_account_type_account_id_type_status",
				Unique:  false,
				Columns: []*schema.Column{TransactionsColumns[2], TransactionsColumns[3], TransactionsColumns[4], TransactionsColumns[7]},
			},
			{
				Name:    "transaction_shipment_id",
				Unique:  false,
				Columns: []*schema.Column{TransactionsColumns[6]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "public_id", Type: field.TypeString, Unique: true, Size: 20},
		{Name: "name", Type: field.TypeString, Size: 200},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "roles", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ACTIVE", "SUSPENDED"}, Default: "ACTIVE"},
		{Name: "flat_rate_fee", Type: field.TypeFloat64, Default: 0},
		{Name: "priority_multipliers", Type: field.TypeJSON, Nullable: true},
		{Name: "partner_tier", Type: field.TypeEnum, Nullable: true, Enums: []string{"bronze", "silver", "gold"}},
		{Name: "tier_manual_override", Type: field.TypeBool, Default: false},
		{Name: "wallet_balance", Type: field.TypeFloat64, Default: 0},
		{Name: "zones", Type: field.TypeJSON, Nullable: true},
		{Name: "referred_by", Type: field.TypeUUID, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "users_users_referrals",
				Columns:    []*schema.Column{UsersColumns[16]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[6]},
			},
			{
				Name:    "user_public_id",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CountersTable,
		CourierStatsTable,
		InventoryItemsTable,
		ShipmentsTable,
		TierSettingsTable,
		TransactionsTable,
		UsersTable,
	}
)

func init() {
	CourierStatsTable.ForeignKeys[0].RefTable = UsersTable
	ShipmentsTable.ForeignKeys[0].RefTable = UsersTable
	UsersTable.ForeignKeys[0].RefTable = UsersTable
}
