package usecase

import (
	"context"
	"time"

	"vivaha/internal/domain/entity"
)

// SyncSnapshot is the complete server-side planning state for one namespace,
// fetched in a single pass. Collections that could not be fetched are nil and
// listed in Partial; a partial snapshot is still usable, the client simply
// keeps its cached copy of the missing collections.
type SyncSnapshot struct {
	Guests     []*entity.Guest
	Budget     []*entity.BudgetCategory
	Todos      []*entity.Todo
	Registries []*entity.Registry
	Vendors    []*entity.Vendor
	Seating    *entity.SeatingChart
	Onboarding map[string]any
	SyncedAt   time.Time
	Partial    []string
}

// PushRecord is one client-side record submitted for reconciliation. Records
// carrying a server id are updates; records whose id has the local prefix
// were created offline and need a server id assigned.
type PushRecord struct {
	ID   string
	Data map[string]any
}

// PushInput carries one collection's offline changes.
type PushInput struct {
	DataType entity.DataType
	Records  []PushRecord
}

// PushResult reports the reconciliation outcome. CreatedIDs maps each local
// id to the server id that replaced it, so the client can rewrite its cache.
type PushResult struct {
	CreatedIDs map[string]string
	Updated    int
	Failed     []string
}

// SyncUsecase reconciles server state with client caches for one namespace.
type SyncUsecase interface {
	// Sync fetches every collection for the scope's namespace, refreshes
	// the server-side cache, and returns the snapshot. Concurrent syncs
	// for the same namespace share a single fetch.
	Sync(ctx context.Context, scope entity.Scope) (*SyncSnapshot, error)

	// Push applies offline changes for one collection. The operation is
	// idempotent: pushing the same records twice updates rather than
	// duplicates, because the first push assigns server ids.
	Push(ctx context.Context, scope entity.Scope, input PushInput) (*PushResult, error)
}
