package surreal

import (
	"context"
	"time"

	"vivaha/internal/domain/entity"
	"vivaha/internal/domain/repository"
	"vivaha/internal/errors"
	"vivaha/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/surrealdb/surrealdb.go"
)

type workspaceRepository struct {
	db *surrealdb.DB
}

// NewWorkspaceRepository creates the SurrealDB-backed workspace repository.
func NewWorkspaceRepository(db *surrealdb.DB) repository.WorkspaceRepository {
	return &workspaceRepository{db: db}
}

func (r *workspaceRepository) Create(ctx context.Context, workspace *entity.Workspace) error {
	if workspace.ID == uuid.Nil {
		workspace.ID = uuid.New()
	}
	now := time.Now()
	if workspace.CreatedAt.IsZero() {
		workspace.CreatedAt = now
	}
	workspace.UpdatedAt = now

	if _, err := surrealdb.Create[model.WorkspaceDocument](ctx, r.db, model.TableWorkspaces, model.WorkspaceFromEntity(workspace)); err != nil {
		return errors.Wrap(err, "create workspace")
	}

	return nil
}

func (r *workspaceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Workspace, error) {
	doc, err := surrealdb.Select[model.WorkspaceDocument](ctx, r.db, *model.NewRecordID(model.TableWorkspaces, id))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrWorkspaceNotFound
		}

		return nil, errors.Wrap(err, "find workspace by id")
	}
	if doc == nil {
		return nil, repository.ErrWorkspaceNotFound
	}

	return doc.ToEntity(), nil
}

func (r *workspaceRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, statuses []entity.WorkspaceStatus) ([]*entity.Workspace, error) {
	query := "SELECT * FROM workspaces WHERE owner_id = $owner"
	params := map[string]any{"owner": ownerID.String()}

	if len(statuses) > 0 {
		raw := make([]string, 0, len(statuses))
		for _, s := range statuses {
			raw = append(raw, string(s))
		}
		query += " AND status IN $statuses"
		params["statuses"] = raw
	}
	query += " ORDER BY last_activity DESC"

	res, err := surrealdb.Query[[]model.WorkspaceDocument](ctx, r.db, query, params)
	if err != nil {
		return nil, errors.Wrap(err, "list workspaces by owner")
	}

	return toWorkspaces(firstResult(res)), nil
}

func (r *workspaceRepository) ListByMember(ctx context.Context, userID uuid.UUID) ([]*entity.Workspace, error) {
	res, err := surrealdb.Query[[]model.WorkspaceDocument](ctx, r.db,
		"SELECT * FROM workspaces WHERE owner_id = $uid OR $uid IN team_members.user_id ORDER BY last_activity DESC",
		map[string]any{"uid": userID.String()})
	if err != nil {
		return nil, errors.Wrap(err, "list workspaces by member")
	}

	return toWorkspaces(firstResult(res)), nil
}

func (r *workspaceRepository) Update(ctx context.Context, workspace *entity.Workspace) error {
	workspace.UpdatedAt = time.Now()

	rid := model.NewRecordID(model.TableWorkspaces, workspace.ID)
	if _, err := surrealdb.Update[model.WorkspaceDocument](ctx, r.db, *rid, model.WorkspaceFromEntity(workspace)); err != nil {
		if isNotFound(err) {
			return repository.ErrWorkspaceNotFound
		}

		return errors.Wrap(err, "update workspace")
	}

	return nil
}

func (r *workspaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := surrealdb.Delete[model.WorkspaceDocument](ctx, r.db, *model.NewRecordID(model.TableWorkspaces, id)); err != nil {
		return errors.Wrap(err, "delete workspace")
	}

	return nil
}

func (r *workspaceRepository) TouchActivity(ctx context.Context, id uuid.UUID, at time.Time) error {
	res, err := surrealdb.Query[[]model.WorkspaceDocument](ctx, r.db,
		"UPDATE $rid SET last_activity = $at RETURN AFTER",
		map[string]any{
			"rid": model.NewRecordID(model.TableWorkspaces, id),
			"at":  at,
		})
	if err != nil {
		return errors.Wrap(err, "touch workspace activity")
	}
	if len(firstResult(res)) == 0 {
		return repository.ErrWorkspaceNotFound
	}

	return nil
}

func toWorkspaces(docs []model.WorkspaceDocument) []*entity.Workspace {
	workspaces := make([]*entity.Workspace, 0, len(docs))
	for i := range docs {
		workspaces = append(workspaces, docs[i].ToEntity())
	}

	return workspaces
}
