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

type userRepository struct {
	db *surrealdb.DB
}

// NewUserRepository creates the SurrealDB-backed user repository.
func NewUserRepository(db *surrealdb.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	doc, err := surrealdb.Select[model.UserDocument](ctx, r.db, *model.NewRecordID(model.TableUsers, id))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "find user by id")
	}
	if doc == nil {
		return nil, repository.ErrUserNotFound
	}

	return doc.ToEntity(), nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	res, err := surrealdb.Query[[]model.UserDocument](ctx, r.db,
		"SELECT * FROM users WHERE email = $email LIMIT 1",
		map[string]any{"email": email})
	if err != nil {
		return nil, errors.Wrap(err, "find user by email")
	}

	docs := firstResult(res)
	if len(docs) == 0 {
		return nil, repository.ErrUserNotFound
	}

	return docs[0].ToEntity(), nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	if _, err := r.FindByEmail(ctx, user.Email); err == nil {
		return repository.ErrUserAlreadyExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	if _, err := surrealdb.Create[model.UserDocument](ctx, r.db, model.TableUsers, model.UserFromEntity(user)); err != nil {
		return errors.Wrap(err, "create user")
	}

	return nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now()

	rid := model.NewRecordID(model.TableUsers, user.ID)
	if _, err := surrealdb.Update[model.UserDocument](ctx, r.db, *rid, model.UserFromEntity(user)); err != nil {
		if isNotFound(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "update user")
	}

	return nil
}

func (r *userRepository) UpdateOnboarding(ctx context.Context, id uuid.UUID, data map[string]any) error {
	res, err := surrealdb.Query[[]model.UserDocument](ctx, r.db,
		"UPDATE $rid SET onboarding_data = $data, onboarding_completed = true, updated_at = $now RETURN AFTER",
		map[string]any{
			"rid":  model.NewRecordID(model.TableUsers, id),
			"data": data,
			"now":  time.Now(),
		})
	if err != nil {
		return errors.Wrap(err, "update onboarding")
	}
	if len(firstResult(res)) == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
