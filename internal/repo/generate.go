// Package repo holds the ent-generated client for the schemas under
// internal/schema. Run `go generate ./internal/...` after editing schemas.
package repo

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --feature sql/lock,sql/execquery --target . ../schema
