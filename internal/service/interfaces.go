package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/fitlog/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,min=3,max=100"`
	Email    string `validate:"required,email,max=254"`
	Password string `validate:"required,min=8,max=72"`
}

type CreateExerciseRequest struct {
	Name     string `validate:"required,max=100"`
	Category string `validate:"required,max=50"`
	Notes    string `validate:"max=500"`
}

type CreateWorkoutRequest struct {
	ExerciseID uuid.UUID
	Date       time.Time `validate:"required"`
	Sets       int       `validate:"required,min=1"`
	Reps       int       `validate:"required,min=1"`
	Weight     float64   `validate:"min=0"`
}

type CreateTodoRequest struct {
	Title string `validate:"required,max=200"`
}

type CreatePlanRequest struct {
	Title       string `validate:"required,max=100"`
	Description string `validate:"required,max=500"`
	Duration    string `validate:"required,oneof='1 week' '2 weeks' '4 weeks' '8 weeks' '12 weeks'"`
	Difficulty  string `validate:"required,oneof=Beginner Intermediate Advanced"`
}

type UpdatePlanRequest struct {
	Title          string `validate:"required,max=100"`
	Description    string `validate:"required,max=500"`
	Duration       string `validate:"required,oneof='1 week' '2 weeks' '4 weeks' '8 weeks' '12 weeks'"`
	Difficulty     string `validate:"required,oneof=Beginner Intermediate Advanced"`
	ScheduledTasks entity.WeekSchedule `validate:"required"`
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, email, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// Appends url to the gallery if absent; the url becomes the selected image either way
	AddImage(ctx context.Context, uid uuid.UUID, url string) (*entity.User, error)
	// Removes url from the gallery; selection moves to the first remaining image
	DeleteImage(ctx context.Context, uid uuid.UUID, url string) (*entity.User, error)
	// Marks url as selected. Url has to be a gallery member
	SelectImage(ctx context.Context, uid uuid.UUID, url string) (*entity.User, error)
	// Changes display name
	Rename(ctx context.Context, uid uuid.UUID, name string) (*entity.User, error)
	// Removes all records owned by uid, then the user row itself
	DeleteAccount(ctx context.Context, uid uuid.UUID) error
}

type ExercisesServiceI interface {
	CreateExercise(ctx context.Context, uid uuid.UUID, req *CreateExerciseRequest) (*entity.Exercise, error)
	GetUserExercises(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Exercise, error)
	UpdateExercise(ctx context.Context, exerciseID, uid uuid.UUID, req *CreateExerciseRequest) (*entity.Exercise, error)
	DeleteExercise(ctx context.Context, exerciseID, uid uuid.UUID) error
}

type WorkoutsServiceI interface {
	CreateEntry(ctx context.Context, uid uuid.UUID, req *CreateWorkoutRequest) (*entity.WorkoutEntry, error)
	GetUserEntries(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.WorkoutEntry, error)
	// Lists entries falling on the UTC day of date
	GetEntriesForDay(ctx context.Context, uid uuid.UUID, day time.Time) ([]*entity.WorkoutEntry, error)
	UpdateEntry(ctx context.Context, entryID, uid uuid.UUID, req *CreateWorkoutRequest) (*entity.WorkoutEntry, error)
	DeleteEntry(ctx context.Context, entryID, uid uuid.UUID) error
}

type TodosServiceI interface {
	CreateTodo(ctx context.Context, uid uuid.UUID, req *CreateTodoRequest) (*entity.TodoItem, error)
	// Lists todos falling on the UTC day of date, newest first
	GetTodosForDay(ctx context.Context, uid uuid.UUID, day time.Time) ([]*entity.TodoItem, error)
	SetCompleted(ctx context.Context, todoID, uid uuid.UUID, isCompleted bool) (*entity.TodoItem, error)
	DeleteTodo(ctx context.Context, todoID, uid uuid.UUID) error
}

type PlansServiceI interface {
	// Creates plan with all seven day buckets present and empty
	CreatePlan(ctx context.Context, uid uuid.UUID, req *CreatePlanRequest) (*entity.Plan, error)
	GetUserPlans(ctx context.Context, uid uuid.UUID) ([]*entity.Plan, error)
	GetPlan(ctx context.Context, planID, uid uuid.UUID) (*entity.Plan, error)
	// Replaces plan fields and the whole schedule map. Tasks without an id get a fresh one
	UpdatePlan(ctx context.Context, planID, uid uuid.UUID, req *UpdatePlanRequest) (*entity.Plan, error)
	DeletePlan(ctx context.Context, planID, uid uuid.UUID) error
}
