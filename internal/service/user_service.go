package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fitlog/internal/error_values"
	"github.com/limbo/fitlog/internal/repository"
	"github.com/limbo/fitlog/pkg/entity"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo          repository.UsersRepositoryI
	exercisesRepo repository.ExercisesRepositoryI
	workoutsRepo  repository.WorkoutsRepositoryI
	todosRepo     repository.TodosRepositoryI
	plansRepo     repository.PlansRepositoryI
}

func NewUserService(
	usersRepo repository.UsersRepositoryI,
	exercisesRepo repository.ExercisesRepositoryI,
	workoutsRepo repository.WorkoutsRepositoryI,
	todosRepo repository.TodosRepositoryI,
	plansRepo repository.PlansRepositoryI,
) *UserService {
	if usersRepo == nil || exercisesRepo == nil || workoutsRepo == nil || todosRepo == nil || plansRepo == nil {
		log.Fatal("on user service provided nil repos")
	}
	return &UserService{
		repo:          usersRepo,
		exercisesRepo: exercisesRepo,
		workoutsRepo:  workoutsRepo,
		todosRepo:     todosRepo,
		plansRepo:     plansRepo,
	}
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	err = us.repo.Create(ctx, &entity.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, err
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	user, err := us.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) Login(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := us.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

// AddImage is a no-op on the gallery when url is already there, but the url
// becomes the selected image regardless.
func (us *UserService) AddImage(ctx context.Context, uid uuid.UUID, url string) (*entity.User, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: image url is required", errorvalues.ErrValidation)
	}
	user, err := us.repo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if !slices.Contains(user.Images, url) {
		user.Images = append(user.Images, url)
	}
	user.SelectedImage = url
	if err = us.repo.Update(ctx, user); err != nil {
		return nil, errors.New("repository updating error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) DeleteImage(ctx context.Context, uid uuid.UUID, url string) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	idx := slices.Index(user.Images, url)
	if idx < 0 {
		return nil, errorvalues.ErrImageNotFound
	}
	user.Images = slices.Delete(user.Images, idx, idx+1)
	if user.SelectedImage == url {
		user.SelectedImage = ""
		if len(user.Images) > 0 {
			user.SelectedImage = user.Images[0]
		}
	}
	if err = us.repo.Update(ctx, user); err != nil {
		return nil, errors.New("repository updating error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) SelectImage(ctx context.Context, uid uuid.UUID, url string) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if !slices.Contains(user.Images, url) {
		return nil, errorvalues.ErrImageNotFound
	}
	user.SelectedImage = url
	if err = us.repo.Update(ctx, user); err != nil {
		return nil, errors.New("repository updating error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) Rename(ctx context.Context, uid uuid.UUID, name string) (*entity.User, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", errorvalues.ErrValidation)
	}
	user, err := us.repo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	user.Name = name
	if err = us.repo.Update(ctx, user); err != nil {
		return nil, errors.New("repository updating error: " + err.Error())
	}
	return user, nil
}

// DeleteAccount wipes dependent records collection by collection before the
// user row. The steps are idempotent but not transactional: any step failing
// leaves the rest for a retry and reports ErrPartialDeletion.
func (us *UserService) DeleteAccount(ctx context.Context, uid uuid.UUID) error {
	_, err := us.repo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository searching error: " + err.Error())
	}
	steps := []struct {
		name string
		f    func(context.Context, uuid.UUID) error
	}{
		{"exercises", us.exercisesRepo.DeleteByUserID},
		{"workouts", us.workoutsRepo.DeleteByUserID},
		{"todos", us.todosRepo.DeleteByUserID},
		{"plans", us.plansRepo.DeleteByUserID},
	}
	failed := error(nil)
	for _, step := range steps {
		if err := step.f(ctx, uid); err != nil {
			failed = errors.Join(failed, fmt.Errorf("wiping %s: %w", step.name, err))
		}
	}
	if failed != nil {
		return fmt.Errorf("%w: %w", errorvalues.ErrPartialDeletion, failed)
	}
	err = us.repo.Delete(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("%w: deleting user row: %w", errorvalues.ErrPartialDeletion, err)
	}
	return nil
}

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
