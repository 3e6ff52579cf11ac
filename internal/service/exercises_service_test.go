package service_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fitlog/internal/error_values"
	"github.com/limbo/fitlog/internal/repository"
	"github.com/limbo/fitlog/internal/service"
	"github.com/limbo/fitlog/pkg/entity"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type mockState int

const (
	stateSuccess = iota
	stateDBError
	stateExerciseExistsError
	stateExerciseNotFoundError
	stateUserNotFoundError
	stateWrongOwner
)

type exercisesRepoMock struct {
	state mockState
}

// Variables for tests
var (
	userID       = uuid.New()
	userName     = "test_owner"
	userEmail    = "owner@test.dev"
	userPassHash = "test_passhash"
	exerciseID   = uuid.New()
	testExercise = entity.Exercise{
		ID:        exerciseID,
		UserID:    userID,
		Name:      "Bench Press",
		Category:  "Chest",
		Notes:     "pause at the bottom",
		CreatedAt: time.Now(),
	}
)

func (ermock *exercisesRepoMock) Create(ctx context.Context, exercise *entity.Exercise) (uuid.UUID, error) {
	switch ermock.state {
	case stateUserNotFoundError:
		return uuid.UUID{}, errorvalues.ErrOwnerNotFound
	case stateExerciseExistsError:
		return uuid.UUID{}, errorvalues.ErrExerciseExists
	case stateDBError:
		return uuid.UUID{}, errors.New("db error")
	default:
		return exerciseID, nil
	}
}

func (ermock *exercisesRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*entity.Exercise, error) {
	switch ermock.state {
	case stateExerciseNotFoundError:
		return nil, errorvalues.ErrExerciseNotFound
	case stateDBError:
		return nil, errors.New("db error")
	case stateWrongOwner:
		return &entity.Exercise{
			ID:        testExercise.ID,
			UserID:    uuid.New(),
			Name:      testExercise.Name,
			Category:  testExercise.Category,
			Notes:     testExercise.Notes,
			CreatedAt: testExercise.CreatedAt,
		}, nil
	default:
		e := testExercise
		return &e, nil
	}
}

func (ermock *exercisesRepoMock) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Exercise, error) {
	switch ermock.state {
	case stateUserNotFoundError:
		return []*entity.Exercise{}, nil
	case stateDBError:
		return nil, errors.New("db error")
	default:
		e := testExercise
		return []*entity.Exercise{&e}, nil
	}
}

func (ermock *exercisesRepoMock) Update(ctx context.Context, exercise *entity.Exercise) error {
	switch ermock.state {
	case stateDBError:
		return errors.New("db error")
	case stateExerciseNotFoundError:
		return errorvalues.ErrExerciseNotFound
	case stateExerciseExistsError:
		return errorvalues.ErrExerciseExists
	default:
		return nil
	}
}

func (ermock *exercisesRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	switch ermock.state {
	case stateDBError:
		return errors.New("db error")
	case stateExerciseNotFoundError:
		return errorvalues.ErrExerciseNotFound
	default:
		return nil
	}
}

func (ermock *exercisesRepoMock) DeleteByUserID(ctx context.Context, uid uuid.UUID) error {
	if ermock.state == stateDBError {
		return errors.New("db error")
	}
	return nil
}

func TestCreateExercise(t *testing.T) {
	mock := &exercisesRepoMock{state: stateSuccess}
	s := service.NewExercisesService(mock)
	ctx := context.Background()
	req := service.CreateExerciseRequest{
		Name:     testExercise.Name,
		Category: testExercise.Category,
		Notes:    testExercise.Notes,
	}
	t.Run("success", func(t *testing.T) {
		e, err := s.CreateExercise(ctx, userID, &req)
		assert.NoError(t, err)
		assert.Equal(t, testExercise, *e)
	})
	t.Run("validation error", func(t *testing.T) {
		_, err := s.CreateExercise(ctx, userID, &service.CreateExerciseRequest{
			Name: "no category",
		})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("db error", func(t *testing.T) {
		mock.state = stateDBError
		_, err := s.CreateExercise(ctx, userID, &req)
		assert.Error(t, err)
	})
	t.Run("owner not found", func(t *testing.T) {
		mock.state = stateUserNotFoundError
		_, err := s.CreateExercise(ctx, userID, &req)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("exercise duplication", func(t *testing.T) {
		mock.state = stateExerciseExistsError
		_, err := s.CreateExercise(ctx, userID, &req)
		assert.ErrorIs(t, err, errorvalues.ErrExerciseExists)
	})
}

func TestGetUserExercises(t *testing.T) {
	mock := &exercisesRepoMock{state: stateSuccess}
	s := service.NewExercisesService(mock)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		exercises, err := s.GetUserExercises(
			ctx,
			userID,
			service.PaginationOpts{
				Limit:  10,
				Offset: 0,
			},
		)
		assert.NoError(t, err)
		assert.Equal(t, 1, len(exercises))
		assert.Equal(t, testExercise, *exercises[0])
	})
	t.Run("db error", func(t *testing.T) {
		mock.state = stateDBError
		_, err := s.GetUserExercises(
			ctx,
			userID,
			service.PaginationOpts{
				Limit:  10,
				Offset: 0,
			},
		)
		assert.Error(t, err)
	})
}

func TestUpdateExercise(t *testing.T) {
	mock := &exercisesRepoMock{state: stateSuccess}
	s := service.NewExercisesService(mock)
	ctx := context.Background()
	req := service.CreateExerciseRequest{
		Name:     "Incline Bench Press",
		Category: "Chest",
	}
	t.Run("success", func(t *testing.T) {
		e, err := s.UpdateExercise(ctx, exerciseID, userID, &req)
		assert.NoError(t, err)
		assert.Equal(t, req.Name, e.Name)
		assert.Equal(t, req.Category, e.Category)
	})
	t.Run("validation error", func(t *testing.T) {
		_, err := s.UpdateExercise(ctx, exerciseID, userID, &service.CreateExerciseRequest{})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("wrong owner", func(t *testing.T) {
		mock.state = stateWrongOwner
		_, err := s.UpdateExercise(ctx, exerciseID, userID, &req)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("exercise not found", func(t *testing.T) {
		mock.state = stateExerciseNotFoundError
		_, err := s.UpdateExercise(ctx, exerciseID, userID, &req)
		assert.ErrorIs(t, err, errorvalues.ErrExerciseNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.state = stateDBError
		_, err := s.UpdateExercise(ctx, exerciseID, userID, &req)
		assert.Error(t, err)
	})
}

func TestDeleteExercise(t *testing.T) {
	mock := &exercisesRepoMock{state: stateSuccess}
	s := service.NewExercisesService(mock)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		err := s.DeleteExercise(ctx, exerciseID, userID)
		assert.NoError(t, err)
	})
	t.Run("wrong owner", func(t *testing.T) {
		mock.state = stateWrongOwner
		err := s.DeleteExercise(ctx, exerciseID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("exercise not found", func(t *testing.T) {
		mock.state = stateExerciseNotFoundError
		err := s.DeleteExercise(ctx, exerciseID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrExerciseNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.state = stateDBError
		err := s.DeleteExercise(ctx, exerciseID, userID)
		assert.Error(t, err)
	})
}

func TestExercisesServiceIntegrational(t *testing.T) {
	cfg := setupExercisesTestDB(t)
	repo := repository.NewExercisesRepo(cfg)
	s := service.NewExercisesService(repo)
	exercises := []*entity.Exercise{}
	for i := range 5 {
		exercises = append(exercises, &entity.Exercise{
			Name:     fmt.Sprintf("test_exercise_%d", i),
			Category: fmt.Sprintf("test_category_%d", i),
			Notes:    fmt.Sprintf("test_notes_%d", i),
		})
	}
	ctx := context.Background()
	t.Run("create exercise", func(t *testing.T) {
		t.Run("success", func(t *testing.T) {
			for i, e := range exercises {
				res, err := s.CreateExercise(ctx, userID, &service.CreateExerciseRequest{
					Name:     e.Name,
					Category: e.Category,
					Notes:    e.Notes,
				})
				assert.NoError(t, err)
				assert.Equal(t, res.Name, e.Name)
				assert.Equal(t, res.Category, e.Category)
				exercises[i] = res
			}
		})
		t.Run("error: unexist user", func(t *testing.T) {
			_, err := s.CreateExercise(ctx, uuid.New(), &service.CreateExerciseRequest{
				Name:     "aaa",
				Category: "bbb",
			})
			assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
		})
		t.Run("error: exercise exists", func(t *testing.T) {
			_, err := s.CreateExercise(ctx, userID, &service.CreateExerciseRequest{
				Name:     exercises[0].Name,
				Category: exercises[0].Category,
			})
			assert.ErrorIs(t, err, errorvalues.ErrExerciseExists)
		})
	})
	t.Run("get user's exercises", func(t *testing.T) {
		t.Run("got all", func(t *testing.T) {
			result, err := s.GetUserExercises(ctx, userID, service.PaginationOpts{Limit: 5, Offset: 0})
			assert.NoError(t, err)
			assert.Equal(t, 5, len(result))
			for i := range result {
				assert.Equal(t, *exercises[i], *result[i])
			}
		})
		t.Run("got some", func(t *testing.T) {
			limit, offset := 2, 2
			result, err := s.GetUserExercises(ctx, userID, service.PaginationOpts{Limit: limit, Offset: offset})
			assert.NoError(t, err)
			assert.Equal(t, limit, len(result))
			for i := range limit {
				assert.Equal(t, *exercises[i+offset], *result[i])
			}
		})
	})

	t.Run("update exercise", func(t *testing.T) {
		t.Run("success", func(t *testing.T) {
			res, err := s.UpdateExercise(ctx, exercises[0].ID, userID, &service.CreateExerciseRequest{
				Name:     "renamed",
				Category: exercises[0].Category,
			})
			assert.NoError(t, err)
			assert.Equal(t, "renamed", res.Name)
			exercises[0] = res
		})
		t.Run("error: wrong owner", func(t *testing.T) {
			_, err := s.UpdateExercise(ctx, exercises[0].ID, uuid.New(), &service.CreateExerciseRequest{
				Name:     "nope",
				Category: "nope",
			})
			assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
		})
		t.Run("error: name taken", func(t *testing.T) {
			_, err := s.UpdateExercise(ctx, exercises[0].ID, userID, &service.CreateExerciseRequest{
				Name:     exercises[1].Name,
				Category: exercises[1].Category,
			})
			assert.ErrorIs(t, err, errorvalues.ErrExerciseExists)
		})
	})

	t.Run("delete exercise", func(t *testing.T) {
		t.Run("success", func(t *testing.T) {
			err := s.DeleteExercise(ctx, exercises[0].ID, userID)
			assert.NoError(t, err)
		})
		t.Run("error: wrong owner", func(t *testing.T) {
			err := s.DeleteExercise(ctx, exercises[1].ID, uuid.New())
			assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
		})
		t.Run("error: exercise not found", func(t *testing.T) {
			err := s.DeleteExercise(ctx, exercises[0].ID, userID)
			assert.ErrorIs(t, err, errorvalues.ErrExerciseNotFound)
		})
	})
}

func setupExercisesTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("fitlog"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	connStr, err := container.ConnectionString(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	connStr += "sslmode=disable"
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	err = goose.Up(conn, "../../migrations")
	if err != nil {
		t.Fatal(err)
	}
	_, err = conn.Exec(`INSERT INTO users (id, name, email, password_hash) VALUES ($1, $2, $3, $4);`, userID, userName, userEmail, userPassHash)
	if err != nil {
		t.Fatal("adding mock user error: " + err.Error())
	}
	conn.Close()
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	return &testPGConfig{
		connStr: connStr,
	}
}
