// Package model contains the persistence documents stored in SurrealDB and
// their conversions to and from domain entities. Documents keep record ids in
// SurrealDB's native form; entities only ever see plain UUIDs.
package model

import (
	"github.com/google/uuid"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// Table names for every stored collection.
const (
	TableUsers            = "users"
	TableWorkspaces       = "workspaces"
	TableGuests           = "guests"
	TableBudgetCategories = "budget_categories"
	TableTodos            = "todos"
	TableRegistries       = "registries"
	TableVendors          = "vendors"
	TableSeatingCharts    = "seating_charts"
	TablePosts            = "posts"
)

// NewRecordID builds a SurrealDB record id from a table name and UUID.
func NewRecordID(table string, id uuid.UUID) *surrealmodels.RecordID {
	return &surrealmodels.RecordID{
		Table: table,
		ID:    id.String(),
	}
}

// UUIDFromRecordID extracts the UUID part of a record id. A nil or malformed
// id yields uuid.Nil; callers treat that as an absent record.
func UUIDFromRecordID(rid *surrealmodels.RecordID) uuid.UUID {
	if rid == nil {
		return uuid.Nil
	}

	s, ok := rid.ID.(string)
	if !ok {
		return uuid.Nil
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}

	return id
}
