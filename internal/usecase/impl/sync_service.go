package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	deliverycontext "vivaha/internal/delivery/context"
	"vivaha/internal/domain/entity"
	domainerrors "vivaha/internal/domain/errors"
	"vivaha/internal/domain/repository"
	"vivaha/internal/domain/service"
	"vivaha/internal/usecase"

	"github.com/go-viper/mapstructure/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// syncService implements the SyncUsecase interface.
type syncService struct {
	guestRepo     repository.GuestRepository
	budgetRepo    repository.BudgetRepository
	todoRepo      repository.TodoRepository
	registryRepo  repository.RegistryRepository
	vendorRepo    repository.VendorRepository
	seatingRepo   repository.SeatingRepository
	userRepo      repository.UserRepository
	workspaceRepo repository.WorkspaceRepository
	cache         service.CacheStore
	group         singleflight.Group
	logger        *slog.Logger
}

// SyncServiceParams holds dependencies for syncService, injected by Fx.
type SyncServiceParams struct {
	fx.In

	GuestRepo     repository.GuestRepository
	BudgetRepo    repository.BudgetRepository
	TodoRepo      repository.TodoRepository
	RegistryRepo  repository.RegistryRepository
	VendorRepo    repository.VendorRepository
	SeatingRepo   repository.SeatingRepository
	UserRepo      repository.UserRepository
	WorkspaceRepo repository.WorkspaceRepository
	Cache         service.CacheStore
	Logger        *slog.Logger
}

// NewSyncService is the constructor for syncService.
func NewSyncService(params SyncServiceParams) usecase.SyncUsecase {
	return &syncService{
		guestRepo:     params.GuestRepo,
		budgetRepo:    params.BudgetRepo,
		todoRepo:      params.TodoRepo,
		registryRepo:  params.RegistryRepo,
		vendorRepo:    params.VendorRepo,
		seatingRepo:   params.SeatingRepo,
		userRepo:      params.UserRepo,
		workspaceRepo: params.WorkspaceRepo,
		cache:         params.Cache,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *syncService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Sync fetches every collection for the scope's namespace in parallel.
// A collection whose fetch fails is reported in Partial instead of failing
// the whole snapshot; clients keep their cached copy of it. Concurrent syncs
// for the same namespace share one fetch.
func (srv *syncService) Sync(ctx context.Context, scope entity.Scope) (*usecase.SyncSnapshot, error) {
	ns := scope.Namespace()

	result, err, _ := srv.group.Do(ns.String(), func() (any, error) {
		return srv.fetchSnapshot(ctx, scope)
	})
	if err != nil {
		return nil, err
	}

	snapshot, ok := result.(*usecase.SyncSnapshot)
	if !ok {
		return nil, errors.New("unexpected snapshot type")
	}

	return snapshot, nil
}

func (srv *syncService) fetchSnapshot(ctx context.Context, scope entity.Scope) (*usecase.SyncSnapshot, error) {
	ns := scope.Namespace()

	// Entries written before namespacing are adopted on first contact.
	if err := srv.cache.MigrateLegacy(ctx, ns); err != nil {
		srv.log(ctx).WarnContext(ctx, "legacy cache migration failed",
			slog.String("namespace", ns.String()),
			slog.Any("error", err))
	}

	snapshot := &usecase.SyncSnapshot{SyncedAt: time.Now()}

	var mu sync.Mutex
	markPartial := func(dataType entity.DataType, err error) {
		srv.log(ctx).WarnContext(ctx, "collection fetch failed during sync",
			slog.String("namespace", ns.String()),
			slog.String("dataType", dataType.String()),
			slog.Any("error", err))

		mu.Lock()
		snapshot.Partial = append(snapshot.Partial, dataType.String())
		mu.Unlock()
	}

	var g errgroup.Group
	g.Go(func() error {
		guests, err := srv.guestRepo.ListByNamespace(ctx, ns)
		if err != nil {
			markPartial(entity.DataGuests, err)

			return nil
		}
		snapshot.Guests = guests
		refreshCollectionCache(ctx, srv.cache, ns, entity.DataGuests, guests, srv.log(ctx))

		return nil
	})
	g.Go(func() error {
		budget, err := srv.budgetRepo.ListByNamespace(ctx, ns)
		if err != nil {
			markPartial(entity.DataBudget, err)

			return nil
		}
		snapshot.Budget = budget
		refreshCollectionCache(ctx, srv.cache, ns, entity.DataBudget, budget, srv.log(ctx))

		return nil
	})
	g.Go(func() error {
		todos, err := srv.todoRepo.ListByNamespace(ctx, ns)
		if err != nil {
			markPartial(entity.DataTodos, err)

			return nil
		}
		snapshot.Todos = todos
		refreshCollectionCache(ctx, srv.cache, ns, entity.DataTodos, todos, srv.log(ctx))

		return nil
	})
	g.Go(func() error {
		registries, err := srv.registryRepo.ListByNamespace(ctx, ns)
		if err != nil {
			markPartial(entity.DataRegistries, err)

			return nil
		}
		snapshot.Registries = registries
		refreshCollectionCache(ctx, srv.cache, ns, entity.DataRegistries, registries, srv.log(ctx))

		return nil
	})
	g.Go(func() error {
		vendors, err := srv.vendorRepo.ListByNamespace(ctx, ns)
		if err != nil {
			markPartial(entity.DataVendors, err)

			return nil
		}
		snapshot.Vendors = vendors
		refreshCollectionCache(ctx, srv.cache, ns, entity.DataVendors, vendors, srv.log(ctx))

		return nil
	})
	g.Go(func() error {
		chart, err := srv.seatingRepo.FindByNamespace(ctx, ns)
		if err != nil {
			if errors.Is(err, repository.ErrSeatingNotFound) {
				return nil
			}
			markPartial(entity.DataSeating, err)

			return nil
		}
		snapshot.Seating = chart
		refreshCollectionCache(ctx, srv.cache, ns, entity.DataSeating, chart, srv.log(ctx))

		return nil
	})

	// Onboarding answers ride with the account, not the workspace.
	if !scope.IsWorkspace() {
		g.Go(func() error {
			user, err := srv.userRepo.FindByID(ctx, scope.UserID)
			if err != nil {
				markPartial(entity.DataOnboarding, err)

				return nil
			}
			snapshot.Onboarding = user.OnboardingData

			return nil
		})
	}

	// Fetch goroutines swallow their own errors.
	_ = g.Wait()

	return snapshot, nil
}

// Push applies offline changes for one collection. Records carrying the
// client-side local id prefix are created and mapped to fresh server ids;
// everything else is an update. Pushing the same batch twice updates rather
// than duplicates, because the first push already assigned server ids.
func (srv *syncService) Push(ctx context.Context, scope entity.Scope, input usecase.PushInput) (*usecase.PushResult, error) {
	ns := scope.Namespace()

	result := &usecase.PushResult{CreatedIDs: map[string]string{}}

	var err error
	switch input.DataType {
	case entity.DataGuests:
		err = pushCollection(ctx, ns, input.Records, result,
			func(g *entity.Guest) { g.Namespace = ns },
			srv.guestRepo.FindByID, srv.guestRepo.Create, srv.guestRepo.Update,
			func(g *entity.Guest) uuid.UUID { return g.ID })
	case entity.DataBudget:
		err = pushCollection(ctx, ns, input.Records, result,
			func(c *entity.BudgetCategory) { c.Namespace = ns },
			srv.budgetRepo.FindByID, srv.budgetRepo.Create, srv.budgetRepo.Update,
			func(c *entity.BudgetCategory) uuid.UUID { return c.ID })
	case entity.DataTodos:
		err = pushCollection(ctx, ns, input.Records, result,
			func(t *entity.Todo) { t.Namespace = ns },
			srv.todoRepo.FindByID, srv.todoRepo.Create, srv.todoRepo.Update,
			func(t *entity.Todo) uuid.UUID { return t.ID })
	case entity.DataVendors:
		err = pushCollection(ctx, ns, input.Records, result,
			func(v *entity.Vendor) { v.Namespace = ns },
			srv.vendorRepo.FindByID, srv.vendorRepo.Create, srv.vendorRepo.Update,
			func(v *entity.Vendor) uuid.UUID { return v.ID })
	default:
		return nil, domainerrors.ErrInvalidDataType.WithDetails(
			"pushable collections are guests, budget, todos, and vendors")
	}
	if err != nil {
		return nil, err
	}

	invalidateCollectionCache(ctx, srv.cache, ns, input.DataType, srv.log(ctx))
	bumpWorkspaceActivity(ctx, srv.workspaceRepo, scope, srv.log(ctx))

	return result, nil
}

// pushCollection reconciles one collection's records. T is the entity type;
// records that cannot be decoded or point at unknown server ids land in
// Failed rather than aborting the batch.
func pushCollection[T any](
	ctx context.Context,
	ns entity.NamespaceKey,
	records []usecase.PushRecord,
	result *usecase.PushResult,
	stamp func(*T),
	find func(context.Context, entity.NamespaceKey, uuid.UUID) (*T, error),
	create func(context.Context, *T) error,
	update func(context.Context, *T) error,
	idOf func(*T) uuid.UUID,
) error {
	for _, rec := range records {
		if rec.ID == "" || strings.HasPrefix(rec.ID, entity.LocalIDPrefix) {
			var doc T
			if err := decodeRecordData(rec.Data, &doc); err != nil {
				result.Failed = append(result.Failed, rec.ID)

				continue
			}
			stamp(&doc)
			if err := create(ctx, &doc); err != nil {
				return errors.Wrap(err, "failed to create pushed record")
			}
			if rec.ID != "" {
				result.CreatedIDs[rec.ID] = idOf(&doc).String()
			}

			continue
		}

		serverID, err := uuid.Parse(rec.ID)
		if err != nil {
			result.Failed = append(result.Failed, rec.ID)

			continue
		}

		existing, err := find(ctx, ns, serverID)
		if err != nil {
			result.Failed = append(result.Failed, rec.ID)

			continue
		}
		if err := decodeRecordData(rec.Data, existing); err != nil {
			result.Failed = append(result.Failed, rec.ID)

			continue
		}
		stamp(existing)
		if err := update(ctx, existing); err != nil {
			return errors.Wrap(err, "failed to update pushed record")
		}
		result.Updated++
	}

	return nil
}

// decodeRecordData overlays a client record's fields onto an entity. The
// identity and bookkeeping fields are server-owned and stripped before
// decoding so a client can never reassign them.
func decodeRecordData(data map[string]any, dest any) error {
	cleaned := make(map[string]any, len(data))
	for k, v := range data {
		switch k {
		case "id", "local_id", "namespace", "created_at", "updated_at":
			continue
		}
		cleaned[k] = v
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           dest,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeHookFunc(time.RFC3339),
	})
	if err != nil {
		return errors.Wrap(err, "failed to build record decoder")
	}

	if err := decoder.Decode(cleaned); err != nil {
		return errors.Wrap(err, "failed to decode record data")
	}

	return nil
}
