package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fitlog/internal/error_values"
	"github.com/limbo/fitlog/internal/repository"
	"github.com/limbo/fitlog/pkg/entity"
)

type WorkoutsService struct {
	repo repository.WorkoutsRepositoryI
}

func NewWorkoutsService(workoutsRepo repository.WorkoutsRepositoryI) *WorkoutsService {
	if workoutsRepo == nil {
		log.Fatal("provided nil workoutsRepo")
	}
	return &WorkoutsService{
		repo: workoutsRepo,
	}
}

func (ws *WorkoutsService) CreateEntry(ctx context.Context, uid uuid.UUID, req *CreateWorkoutRequest) (*entity.WorkoutEntry, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	w := entity.WorkoutEntry{
		UserID:     uid,
		ExerciseID: req.ExerciseID,
		Date:       req.Date.UTC(),
		Sets:       req.Sets,
		Reps:       req.Reps,
		Weight:     req.Weight,
	}
	id, err := ws.repo.Create(ctx, &w)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	entry, err := ws.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWorkoutNotFound) {
			return nil, err
		}
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	return entry, nil
}

func (ws *WorkoutsService) GetUserEntries(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.WorkoutEntry, error) {
	entries, err := ws.repo.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	return entries, nil
}

func (ws *WorkoutsService) GetEntriesForDay(ctx context.Context, uid uuid.UUID, day time.Time) ([]*entity.WorkoutEntry, error) {
	from, to := DayWindow(day)
	entries, err := ws.repo.GetByUserAndDateRange(ctx, uid, from, to)
	if err != nil {
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	return entries, nil
}

func (ws *WorkoutsService) UpdateEntry(ctx context.Context, entryID, uid uuid.UUID, req *CreateWorkoutRequest) (*entity.WorkoutEntry, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	entry, err := ws.repo.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWorkoutNotFound) {
			return nil, err
		}
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	if entry.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	entry.ExerciseID = req.ExerciseID
	entry.Date = req.Date.UTC()
	entry.Sets = req.Sets
	entry.Reps = req.Reps
	entry.Weight = req.Weight
	err = ws.repo.Update(ctx, entry)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWorkoutNotFound) {
			return nil, err
		}
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	return entry, nil
}

func (ws *WorkoutsService) DeleteEntry(ctx context.Context, entryID, uid uuid.UUID) error {
	entry, err := ws.repo.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWorkoutNotFound) {
			return err
		}
		return errors.New("workouts repository error: " + err.Error())
	}
	if entry.UserID != uid {
		return errorvalues.ErrWrongOwner
	}
	err = ws.repo.Delete(ctx, entryID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWorkoutNotFound) {
			return err
		}
		return errors.New("workouts repository error: " + err.Error())
	}
	return nil
}

// DayWindow returns the [start, end) bounds of the UTC day containing t.
func DayWindow(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	from := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return from, from.Add(24 * time.Hour)
}
