package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fitlog/internal/error_values"
	"github.com/limbo/fitlog/internal/repository"
	"github.com/limbo/fitlog/pkg/entity"
)

type ExercisesService struct {
	repo repository.ExercisesRepositoryI
}

func NewExercisesService(exercisesRepo repository.ExercisesRepositoryI) *ExercisesService {
	if exercisesRepo == nil {
		log.Fatal("provided nil exercisesRepo")
	}
	return &ExercisesService{
		repo: exercisesRepo,
	}
}

func (es *ExercisesService) CreateExercise(ctx context.Context, uid uuid.UUID, req *CreateExerciseRequest) (*entity.Exercise, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	e := entity.Exercise{
		UserID:   uid,
		Name:     req.Name,
		Category: req.Category,
		Notes:    req.Notes,
	}
	id, err := es.repo.Create(ctx, &e)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrOwnerNotFound):
			return nil, errorvalues.ErrUserNotFound
		case errors.Is(err, errorvalues.ErrExerciseExists):
			return nil, err
		}
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	exercise, err := es.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrExerciseNotFound) {
			return nil, err
		}
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	return exercise, nil
}

func (es *ExercisesService) GetUserExercises(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Exercise, error) {
	exercises, err := es.repo.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	return exercises, nil
}

func (es *ExercisesService) UpdateExercise(ctx context.Context, exerciseID, uid uuid.UUID, req *CreateExerciseRequest) (*entity.Exercise, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	exercise, err := es.repo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrExerciseNotFound) {
			return nil, err
		}
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	if exercise.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	exercise.Name = req.Name
	exercise.Category = req.Category
	exercise.Notes = req.Notes
	err = es.repo.Update(ctx, exercise)
	if err != nil {
		if errors.Is(err, errorvalues.ErrExerciseNotFound) || errors.Is(err, errorvalues.ErrExerciseExists) {
			return nil, err
		}
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	return exercise, nil
}

// Deleting an exercise leaves workout entries referencing it untouched.
func (es *ExercisesService) DeleteExercise(ctx context.Context, exerciseID, uid uuid.UUID) error {
	exercise, err := es.repo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrExerciseNotFound) {
			return err
		}
		return errors.New("exercises repository error: " + err.Error())
	}
	if exercise.UserID != uid {
		return errorvalues.ErrWrongOwner
	}
	err = es.repo.Delete(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrExerciseNotFound) {
			return err
		}
		return errors.New("exercises repository error: " + err.Error())
	}
	return nil
}
