package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrExerciseExists   = errors.New("user already has exercise with such name")
	ErrExerciseNotFound = errors.New("exercise doesn't exists")
	ErrWorkoutNotFound  = errors.New("workout entry doesn't exists")
	ErrTodoNotFound     = errors.New("todo doesn't exists")
	ErrPlanNotFound     = errors.New("plan doesn't exists")

	ErrWrongOwner    = errors.New("entity has different owner")
	ErrOwnerNotFound = errors.New("owner doesn't exists")

	ErrValidation      = errors.New("validation error")
	ErrImageNotFound   = errors.New("image is not in the gallery")
	ErrPartialDeletion = errors.New("account data removed partially")
)
