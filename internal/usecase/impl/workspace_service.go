package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "vivaha/internal/delivery/context"
	"vivaha/internal/domain/entity"
	domainerrors "vivaha/internal/domain/errors"
	"vivaha/internal/domain/repository"
	"vivaha/internal/domain/service"
	"vivaha/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// workspaceService implements the WorkspaceUsecase interface.
type workspaceService struct {
	workspaceRepo repository.WorkspaceRepository
	userRepo      repository.UserRepository
	guestRepo     repository.GuestRepository
	budgetRepo    repository.BudgetRepository
	todoRepo      repository.TodoRepository
	registryRepo  repository.RegistryRepository
	vendorRepo    repository.VendorRepository
	seatingRepo   repository.SeatingRepository
	postRepo      repository.PostRepository
	cache         service.CacheStore
	qrService     service.QRCodeService
	logger        *slog.Logger
}

// WorkspaceServiceParams holds dependencies for workspaceService, injected by Fx.
type WorkspaceServiceParams struct {
	fx.In

	WorkspaceRepo repository.WorkspaceRepository
	UserRepo      repository.UserRepository
	GuestRepo     repository.GuestRepository
	BudgetRepo    repository.BudgetRepository
	TodoRepo      repository.TodoRepository
	RegistryRepo  repository.RegistryRepository
	VendorRepo    repository.VendorRepository
	SeatingRepo   repository.SeatingRepository
	PostRepo      repository.PostRepository
	Cache         service.CacheStore
	QRService     service.QRCodeService
	Logger        *slog.Logger
}

// NewWorkspaceService is the constructor for workspaceService.
func NewWorkspaceService(params WorkspaceServiceParams) usecase.WorkspaceUsecase {
	return &workspaceService{
		workspaceRepo: params.WorkspaceRepo,
		userRepo:      params.UserRepo,
		guestRepo:     params.GuestRepo,
		budgetRepo:    params.BudgetRepo,
		todoRepo:      params.TodoRepo,
		registryRepo:  params.RegistryRepo,
		vendorRepo:    params.VendorRepo,
		seatingRepo:   params.SeatingRepo,
		postRepo:      params.PostRepo,
		cache:         params.Cache,
		qrService:     params.QRService,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *workspaceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create opens a new wedding workspace owned by the given user.
func (srv *workspaceService) Create(ctx context.Context, input usecase.CreateWorkspaceInput) (*entity.Workspace, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrWorkspaceNameRequired
	}
	if input.WeddingDate.IsZero() {
		return nil, domainerrors.ErrWorkspaceDateRequired
	}

	weddingType := input.WeddingType
	if weddingType == "" {
		weddingType = entity.WeddingSecular
	}
	if !weddingType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown wedding type")
	}

	workspace := &entity.Workspace{
		OwnerID:      input.OwnerID,
		Name:         input.Name,
		WeddingDate:  input.WeddingDate,
		WeddingType:  weddingType,
		Notes:        input.Notes,
		Status:       entity.StatusPlanning,
		LastActivity: time.Now(),
		TeamMembers:  []entity.TeamMember{},
	}

	if err := srv.workspaceRepo.Create(ctx, workspace); err != nil {
		return nil, errors.Wrap(err, "failed to create workspace")
	}

	return workspace, nil
}

// Get returns a workspace the user has access to.
func (srv *workspaceService) Get(ctx context.Context, userID, workspaceID uuid.UUID) (*entity.Workspace, error) {
	return srv.findAccessible(ctx, userID, workspaceID)
}

// List returns the workspaces the user owns or collaborates on. Archived
// workspaces are hidden unless asked for explicitly.
func (srv *workspaceService) List(ctx context.Context, input usecase.ListWorkspacesInput) ([]*entity.Workspace, error) {
	workspaces, err := srv.workspaceRepo.ListByMember(ctx, input.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list workspaces")
	}

	filtered := make([]*entity.Workspace, 0, len(workspaces))
	for _, w := range workspaces {
		if len(input.Statuses) > 0 {
			if !containsStatus(input.Statuses, w.Status) {
				continue
			}
		} else if w.Status == entity.StatusArchived && !input.IncludeArchived {
			continue
		}
		filtered = append(filtered, w)
	}

	return filtered, nil
}

// Update applies a partial update to a workspace.
func (srv *workspaceService) Update(ctx context.Context, userID, workspaceID uuid.UUID, input usecase.UpdateWorkspaceInput) (*entity.Workspace, error) {
	workspace, err := srv.findAccessible(ctx, userID, workspaceID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerrors.ErrWorkspaceNameRequired
		}
		workspace.Name = *input.Name
	}
	if input.WeddingDate != nil {
		if input.WeddingDate.IsZero() {
			return nil, domainerrors.ErrWorkspaceDateRequired
		}
		workspace.WeddingDate = *input.WeddingDate
	}
	if input.WeddingType != nil {
		if !input.WeddingType.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown wedding type")
		}
		workspace.WeddingType = *input.WeddingType
	}
	if input.Notes != nil {
		workspace.Notes = *input.Notes
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown workspace status")
		}
		workspace.Status = *input.Status
		if *input.Status == entity.StatusArchived {
			now := time.Now()
			workspace.ArchivedAt = &now
		} else {
			workspace.ArchivedAt = nil
		}
	}
	workspace.LastActivity = time.Now()
	workspace.UpdatedAt = time.Now()

	if err := srv.workspaceRepo.Update(ctx, workspace); err != nil {
		return nil, errors.Wrap(err, "failed to update workspace")
	}

	return workspace, nil
}

// Rename changes the workspace name.
func (srv *workspaceService) Rename(ctx context.Context, userID, workspaceID uuid.UUID, name string) (*entity.Workspace, error) {
	return srv.Update(ctx, userID, workspaceID, usecase.UpdateWorkspaceInput{Name: &name})
}

// Archive hides a workspace from default listings without deleting its data.
func (srv *workspaceService) Archive(ctx context.Context, userID, workspaceID uuid.UUID) (*entity.Workspace, error) {
	status := entity.StatusArchived

	return srv.Update(ctx, userID, workspaceID, usecase.UpdateWorkspaceInput{Status: &status})
}

// Unarchive restores an archived workspace to planning status.
func (srv *workspaceService) Unarchive(ctx context.Context, userID, workspaceID uuid.UUID) (*entity.Workspace, error) {
	status := entity.StatusPlanning

	return srv.Update(ctx, userID, workspaceID, usecase.UpdateWorkspaceInput{Status: &status})
}

// Duplicate creates a workspace shell copying an existing one's settings.
// Planning data is intentionally not copied; the duplicate starts with an
// empty namespace of its own.
func (srv *workspaceService) Duplicate(ctx context.Context, userID, workspaceID uuid.UUID) (*entity.Workspace, error) {
	source, err := srv.findAccessible(ctx, userID, workspaceID)
	if err != nil {
		return nil, err
	}

	copyWorkspace := &entity.Workspace{
		OwnerID:      userID,
		Name:         source.Name + " (Copy)",
		WeddingDate:  source.WeddingDate,
		WeddingType:  source.WeddingType,
		Notes:        source.Notes,
		Status:       entity.StatusPlanning,
		LastActivity: time.Now(),
		TeamMembers:  []entity.TeamMember{},
	}

	if err := srv.workspaceRepo.Create(ctx, copyWorkspace); err != nil {
		return nil, errors.Wrap(err, "failed to duplicate workspace")
	}

	return copyWorkspace, nil
}

// Delete permanently removes a workspace and purges every record and cache
// entry in its namespace. Only the owner may delete.
func (srv *workspaceService) Delete(ctx context.Context, userID, workspaceID uuid.UUID) error {
	workspace, err := srv.findAccessible(ctx, userID, workspaceID)
	if err != nil {
		return err
	}
	if workspace.OwnerID != userID {
		return domainerrors.ErrForbidden.WrapMessage("only the owner can delete a workspace")
	}

	ns := workspace.Namespace()
	purges := []struct {
		name string
		fn   func(context.Context, entity.NamespaceKey) error
	}{
		{"guests", srv.guestRepo.PurgeNamespace},
		{"budget", srv.budgetRepo.PurgeNamespace},
		{"todos", srv.todoRepo.PurgeNamespace},
		{"registries", srv.registryRepo.PurgeNamespace},
		{"vendors", srv.vendorRepo.PurgeNamespace},
		{"seating", srv.seatingRepo.PurgeNamespace},
		{"posts", srv.postRepo.PurgeNamespace},
	}
	for _, p := range purges {
		if err := p.fn(ctx, ns); err != nil {
			return errors.Wrapf(err, "failed to purge %s for workspace", p.name)
		}
	}

	if err := srv.cache.PurgeNamespace(ctx, ns); err != nil {
		srv.log(ctx).WarnContext(ctx, "failed to purge workspace cache",
			slog.String("workspaceID", workspaceID.String()),
			slog.Any("error", err))
	}

	if err := srv.workspaceRepo.Delete(ctx, workspaceID); err != nil {
		return errors.Wrap(err, "failed to delete workspace")
	}

	return nil
}

// AddTeamMember grants a collaborator access to the workspace. Only the owner
// can change the roster. Members without an account yet are stored by email
// and linked once they register.
func (srv *workspaceService) AddTeamMember(ctx context.Context, userID, workspaceID uuid.UUID, input usecase.AddTeamMemberInput) (*entity.Workspace, error) {
	if input.Email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("member email is required")
	}

	role := input.Role
	if role == "" {
		role = entity.TeamViewer
	}
	switch role {
	case entity.TeamPlanner, entity.TeamAssistant, entity.TeamCouple, entity.TeamViewer:
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown team role")
	}

	workspace, err := srv.findAccessible(ctx, userID, workspaceID)
	if err != nil {
		return nil, err
	}
	if workspace.OwnerID != userID {
		return nil, domainerrors.ErrForbidden.WrapMessage("only the owner can manage the team")
	}

	for _, m := range workspace.TeamMembers {
		if m.Email == input.Email {
			return nil, domainerrors.ErrConflict.WrapMessage("member already on the roster")
		}
	}

	member := entity.TeamMember{
		Email:   input.Email,
		Role:    role,
		AddedAt: time.Now(),
	}
	if user, err := srv.userRepo.FindByEmail(ctx, input.Email); err == nil {
		member.UserID = user.ID
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up member account")
	}

	workspace.TeamMembers = append(workspace.TeamMembers, member)
	workspace.UpdatedAt = time.Now()

	if err := srv.workspaceRepo.Update(ctx, workspace); err != nil {
		return nil, errors.Wrap(err, "failed to add team member")
	}

	return workspace, nil
}

// RecomputeMetrics refreshes the cached progress counters from the owning
// collections. The counters may lag by one refresh cycle; the collections
// remain the source of truth.
func (srv *workspaceService) RecomputeMetrics(ctx context.Context, userID, workspaceID uuid.UUID) (*entity.Workspace, error) {
	workspace, err := srv.findAccessible(ctx, userID, workspaceID)
	if err != nil {
		return nil, err
	}

	ns := workspace.Namespace()

	todos, err := srv.todoRepo.ListByNamespace(ctx, ns)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list todos for metrics")
	}
	vendors, err := srv.vendorRepo.ListByNamespace(ctx, ns)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendors for metrics")
	}
	categories, err := srv.budgetRepo.ListByNamespace(ctx, ns)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list budget for metrics")
	}

	metrics := entity.ProgressMetrics{TasksTotal: len(todos)}
	for _, t := range todos {
		if t.Completed {
			metrics.TasksCompleted++
		}
	}
	for _, v := range vendors {
		if v.Status == entity.VendorBooked {
			metrics.VendorsBooked++
		}
	}
	for _, c := range categories {
		metrics.BudgetAllocated += c.Allocated
	}

	workspace.Progress = metrics
	workspace.UpdatedAt = time.Now()

	if err := srv.workspaceRepo.Update(ctx, workspace); err != nil {
		return nil, errors.Wrap(err, "failed to store workspace metrics")
	}

	return workspace, nil
}

// InviteQR renders a QR code encoding an invitation to the workspace.
func (srv *workspaceService) InviteQR(ctx context.Context, userID, workspaceID uuid.UUID) ([]byte, error) {
	if _, err := srv.findAccessible(ctx, userID, workspaceID); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateInviteQR(workspaceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render invite QR code")
	}

	return png, nil
}

// findAccessible loads a workspace and verifies the user is on it.
func (srv *workspaceService) findAccessible(ctx context.Context, userID, workspaceID uuid.UUID) (*entity.Workspace, error) {
	workspace, err := srv.workspaceRepo.FindByID(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, repository.ErrWorkspaceNotFound) {
			return nil, domainerrors.ErrWorkspaceNotFound
		}

		return nil, errors.Wrap(err, "failed to load workspace")
	}

	if !workspace.IsMember(userID) {
		return nil, domainerrors.ErrWorkspaceAccessDenied
	}

	return workspace, nil
}

func containsStatus(statuses []entity.WorkspaceStatus, status entity.WorkspaceStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}

	return false
}
