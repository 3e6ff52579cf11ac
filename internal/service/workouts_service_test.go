package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/fitlog/internal/error_values"
	"github.com/limbo/fitlog/internal/repository/mocks"
	"github.com/limbo/fitlog/internal/service"
	"github.com/limbo/fitlog/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestCreateEntry(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	workoutsRepo := mocks.NewMockWorkoutsRepositoryI(ctrl)

	serv := service.NewWorkoutsService(workoutsRepo)
	entryID := uuid.New()
	ownerID := uuid.New()
	date := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	req := service.CreateWorkoutRequest{
		ExerciseID: uuid.New(),
		Date:       date,
		Sets:       3,
		Reps:       8,
		Weight:     80,
	}
	stored := entity.WorkoutEntry{
		ID:         entryID,
		UserID:     ownerID,
		ExerciseID: req.ExerciseID,
		Date:       date,
		Sets:       req.Sets,
		Reps:       req.Reps,
		Weight:     req.Weight,
		CreatedAt:  time.Now(),
	}
	testCases := []struct {
		Desc         string
		Error        error
		Req          service.CreateWorkoutRequest
		MockPrepFunc func()
	}{
		{
			Desc:  "success",
			Error: nil,
			Req:   req,
			MockPrepFunc: func() {
				workoutsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entryID, nil)
				workoutsRepo.EXPECT().GetByID(gomock.Any(), entryID).Return(&stored, nil)
			},
		},
		{
			Desc:  "error validation",
			Error: errorvalues.ErrValidation,
			Req: service.CreateWorkoutRequest{
				ExerciseID: req.ExerciseID,
				Date:       date,
				Sets:       0,
				Reps:       8,
			},
			MockPrepFunc: func() {},
		},
		{
			Desc:  "error unknown user",
			Error: errorvalues.ErrUserNotFound,
			Req:   req,
			MockPrepFunc: func() {
				workoutsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.UUID{}, errorvalues.ErrOwnerNotFound)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			result, err := serv.CreateEntry(ctx, ownerID, &tc.Req)
			assert.ErrorIs(t, err, tc.Error)
			if tc.Error == nil {
				assert.Equal(t, stored, *result)
			}
		})
	}
	t.Run("error db", func(t *testing.T) {
		workoutsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.UUID{}, errors.New("db error"))
		_, err := serv.CreateEntry(ctx, ownerID, &req)
		assert.Error(t, err)
	})
}

func TestGetEntriesForDay(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	workoutsRepo := mocks.NewMockWorkoutsRepositoryI(ctrl)

	serv := service.NewWorkoutsService(workoutsRepo)
	ownerID := uuid.New()
	// mid-day timestamp has to collapse to the UTC day bounds
	day := time.Date(2026, 3, 14, 15, 42, 7, 0, time.UTC)
	from := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)
	stored := []*entity.WorkoutEntry{
		{
			ID:         uuid.New(),
			UserID:     ownerID,
			ExerciseID: uuid.New(),
			Date:       from.Add(10 * time.Hour),
			Sets:       5,
			Reps:       5,
			Weight:     100,
		},
	}
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		workoutsRepo.EXPECT().GetByUserAndDateRange(gomock.Any(), ownerID, from, to).Return(stored, nil)
		result, err := serv.GetEntriesForDay(ctx, ownerID, day)
		assert.NoError(t, err)
		assert.Equal(t, stored, result)
	})
	t.Run("db error", func(t *testing.T) {
		workoutsRepo.EXPECT().GetByUserAndDateRange(gomock.Any(), ownerID, from, to).Return(nil, errors.New("db error"))
		_, err := serv.GetEntriesForDay(ctx, ownerID, day)
		assert.Error(t, err)
	})
}

func TestGetUserEntries(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	workoutsRepo := mocks.NewMockWorkoutsRepositoryI(ctrl)

	serv := service.NewWorkoutsService(workoutsRepo)
	ownerID := uuid.New()
	stored := []*entity.WorkoutEntry{
		{
			ID:         uuid.New(),
			UserID:     ownerID,
			ExerciseID: uuid.New(),
			Date:       time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
			Sets:       3,
			Reps:       8,
			Weight:     80,
		},
	}
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		workoutsRepo.EXPECT().GetByUserID(gomock.Any(), ownerID, 10, 0).Return(stored, nil)
		result, err := serv.GetUserEntries(ctx, ownerID, service.PaginationOpts{Limit: 10, Offset: 0})
		assert.NoError(t, err)
		assert.Equal(t, stored, result)
	})
	t.Run("db error", func(t *testing.T) {
		workoutsRepo.EXPECT().GetByUserID(gomock.Any(), ownerID, 10, 0).Return(nil, errors.New("db error"))
		_, err := serv.GetUserEntries(ctx, ownerID, service.PaginationOpts{Limit: 10, Offset: 0})
		assert.Error(t, err)
	})
}

func TestUpdateEntry(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	workoutsRepo := mocks.NewMockWorkoutsRepositoryI(ctrl)

	serv := service.NewWorkoutsService(workoutsRepo)
	entryID := uuid.New()
	ownerID := uuid.New()
	date := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	req := service.CreateWorkoutRequest{
		ExerciseID: uuid.New(),
		Date:       date,
		Sets:       5,
		Reps:       3,
		Weight:     110,
	}
	stored := func(owner uuid.UUID) *entity.WorkoutEntry {
		return &entity.WorkoutEntry{
			ID:         entryID,
			UserID:     owner,
			ExerciseID: uuid.New(),
			Date:       date.Add(-24 * time.Hour),
			Sets:       3,
			Reps:       8,
			Weight:     80,
		}
	}
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "success",
			Error: nil,
			MockPrepFunc: func() {
				workoutsRepo.EXPECT().GetByID(gomock.Any(), entryID).Return(stored(ownerID), nil)
				workoutsRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			Desc:  "error wrong owner",
			Error: errorvalues.ErrWrongOwner,
			MockPrepFunc: func() {
				workoutsRepo.EXPECT().GetByID(gomock.Any(), entryID).Return(stored(uuid.New()), nil)
			},
		},
		{
			Desc:  "error entry not found",
			Error: errorvalues.ErrWorkoutNotFound,
			MockPrepFunc: func() {
				workoutsRepo.EXPECT().GetByID(gomock.Any(), entryID).Return(nil, errorvalues.ErrWorkoutNotFound)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			result, err := serv.UpdateEntry(ctx, entryID, ownerID, &req)
			assert.ErrorIs(t, err, tc.Error)
			if tc.Error == nil {
				assert.Equal(t, req.ExerciseID, result.ExerciseID)
				assert.Equal(t, req.Date, result.Date)
				assert.Equal(t, req.Sets, result.Sets)
				assert.Equal(t, req.Reps, result.Reps)
				assert.Equal(t, req.Weight, result.Weight)
			}
		})
	}
}

func TestDeleteEntry(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	workoutsRepo := mocks.NewMockWorkoutsRepositoryI(ctrl)

	serv := service.NewWorkoutsService(workoutsRepo)
	entryID := uuid.New()
	ownerID := uuid.New()
	stored := func(owner uuid.UUID) *entity.WorkoutEntry {
		return &entity.WorkoutEntry{
			ID:     entryID,
			UserID: owner,
			Sets:   3,
			Reps:   8,
		}
	}
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "success",
			Error: nil,
			MockPrepFunc: func() {
				workoutsRepo.EXPECT().GetByID(gomock.Any(), entryID).Return(stored(ownerID), nil)
				workoutsRepo.EXPECT().Delete(gomock.Any(), entryID).Return(nil)
			},
		},
		{
			Desc:  "error wrong owner",
			Error: errorvalues.ErrWrongOwner,
			MockPrepFunc: func() {
				workoutsRepo.EXPECT().GetByID(gomock.Any(), entryID).Return(stored(uuid.New()), nil)
			},
		},
		{
			Desc:  "error entry not found",
			Error: errorvalues.ErrWorkoutNotFound,
			MockPrepFunc: func() {
				workoutsRepo.EXPECT().GetByID(gomock.Any(), entryID).Return(nil, errorvalues.ErrWorkoutNotFound)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := serv.DeleteEntry(ctx, entryID, ownerID)
			assert.ErrorIs(t, err, tc.Error)
		})
	}
}

func TestDayWindow(t *testing.T) {
	t.Parallel()
	loc := time.FixedZone("UTC+3", 3*60*60)
	testCases := []struct {
		Desc string
		In   time.Time
		From time.Time
		To   time.Time
	}{
		{
			Desc: "midnight stays",
			In:   time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
			From: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			Desc: "mid-day truncated",
			In:   time.Date(2026, 3, 14, 23, 59, 59, 0, time.UTC),
			From: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			Desc: "offset zone converted to UTC first",
			In:   time.Date(2026, 3, 15, 1, 30, 0, 0, loc),
			From: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			from, to := service.DayWindow(tc.In)
			assert.Equal(t, tc.From, from)
			assert.Equal(t, tc.To, to)
		})
	}
}
