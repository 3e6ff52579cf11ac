package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/fitlog/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by email. Can be used for login
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's profile fields (name, images, selected image)
	Update(ctx context.Context, user *entity.User) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type ExercisesRepositoryI interface {
	// Creates new exercise. In exercise only UserID, Name, Category, Notes are necessary
	Create(ctx context.Context, exercise *entity.Exercise) (uuid.UUID, error)
	// Searches exercise with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Exercise, error)
	// Lists exercises owned by user with uid. Requires pagination params provided
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Exercise, error)
	// Updates exercise by ID (ID in exercise is necessary)
	Update(ctx context.Context, exercise *entity.Exercise) error
	// Deletes exercise with id
	Delete(ctx context.Context, id uuid.UUID) error
	// Removes all exercises owned by uid. Zero rows removed is not an error
	DeleteByUserID(ctx context.Context, uid uuid.UUID) error
}

type WorkoutsRepositoryI interface {
	// Creates new workout entry. ExerciseID is kept as-is, even when it points nowhere
	Create(ctx context.Context, workout *entity.WorkoutEntry) (uuid.UUID, error)
	// Searches workout entry with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.WorkoutEntry, error)
	// Lists workout entries owned by user with uid. Requires pagination params provided
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.WorkoutEntry, error)
	// Lists workout entries of uid with date within [from, to)
	GetByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]*entity.WorkoutEntry, error)
	// Updates workout entry by ID (ID in workout is necessary)
	Update(ctx context.Context, workout *entity.WorkoutEntry) error
	// Deletes workout entry with id
	Delete(ctx context.Context, id uuid.UUID) error
	// Removes all workout entries owned by uid. Zero rows removed is not an error
	DeleteByUserID(ctx context.Context, uid uuid.UUID) error
}

type TodosRepositoryI interface {
	// Creates new todo item
	Create(ctx context.Context, todo *entity.TodoItem) (uuid.UUID, error)
	// Searches todo with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.TodoItem, error)
	// Lists todos of uid with date within [from, to), newest first
	GetByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]*entity.TodoItem, error)
	// Sets completion flag on todo with id
	SetCompleted(ctx context.Context, id uuid.UUID, isCompleted bool) error
	// Deletes todo with id
	Delete(ctx context.Context, id uuid.UUID) error
	// Removes all todos owned by uid. Zero rows removed is not an error
	DeleteByUserID(ctx context.Context, uid uuid.UUID) error
}

type PlansRepositoryI interface {
	// Creates new plan. Schedule map is stored as given
	Create(ctx context.Context, plan *entity.Plan) (uuid.UUID, error)
	// Searches plan with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Plan, error)
	// Lists plans owned by user with uid
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Plan, error)
	// Replaces plan fields and the whole schedule map by ID (ID in plan is necessary)
	Update(ctx context.Context, plan *entity.Plan) error
	// Deletes plan with id
	Delete(ctx context.Context, id uuid.UUID) error
	// Removes all plans owned by uid. Zero rows removed is not an error
	DeleteByUserID(ctx context.Context, uid uuid.UUID) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
