package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/fitlog/internal/error_values"
	"github.com/limbo/fitlog/internal/service"
	"github.com/limbo/fitlog/pkg/entity"
	"github.com/limbo/fitlog/pkg/httputil"
)

type WorkoutRequest struct {
	Date       string  `json:"date"`
	ExerciseID string  `json:"exercise_id"`
	Sets       int     `json:"sets"`
	Reps       int     `json:"reps"`
	Weight     float64 `json:"weight"`
}

type GetWorkoutsResponse struct {
	UserID   string                 `json:"uid"`
	Page     int                    `json:"page,omitempty"`
	Limit    int                    `json:"limit,omitempty"`
	Date     string                 `json:"date,omitempty"`
	Workouts []*entity.WorkoutEntry `json:"workouts"`
}

// parseDate accepts RFC3339 timestamps and day-only YYYY-MM-DD values;
// day-only values mean midnight UTC.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func (s *Server) workoutRequestToService(req *WorkoutRequest) (*service.CreateWorkoutRequest, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, errors.New("invalid date: " + err.Error())
	}
	exerciseID := uuid.UUID{}
	if req.ExerciseID != "" {
		exerciseID, err = uuid.Parse(req.ExerciseID)
		if err != nil {
			return nil, errors.New("invalid exercise id: " + err.Error())
		}
	}
	return &service.CreateWorkoutRequest{
		ExerciseID: exerciseID,
		Date:       date,
		Sets:       req.Sets,
		Reps:       req.Reps,
		Weight:     req.Weight,
	}, nil
}

func (s *Server) CreateWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create workout error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req WorkoutRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create workout error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	servReq, err := s.workoutRequestToService(&req)
	if err != nil {
		logger.Error("create workout error: " + err.Error())
		httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	entry, err := s.workoutsService.CreateEntry(ctx, uid, servReq)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("create workout error: invalid fields", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "sets and reps have to be positive, weight non-negative", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create workout error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't create workout: user doesn't exists", nil)
		default:
			logger.Error("create workout error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating workout", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, entry)
	logger.Info("workout entry created")
}

func (s *Server) GetWorkouts(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get workouts error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	if date := r.URL.Query().Get("date"); date != "" {
		day, err := parseDate(date)
		if err != nil {
			logger.Error("get workouts error: invalid date filter")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "date has to be YYYY-MM-DD", nil)
			return
		}
		workouts, err := s.workoutsService.GetEntriesForDay(ctx, uid, day)
		if err != nil {
			logger.Error("getting workouts list error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting workouts list", nil)
			return
		}
		httputil.WriteJSONResponse(w, http.StatusOK, GetWorkoutsResponse{
			UserID:   uid.String(),
			Date:     date,
			Workouts: workouts,
		})
		logger.Info("workouts provided")
		return
	}
	limit, page := paginationFromQuery(r)
	offset := (page - 1) * limit
	workouts, err := s.workoutsService.GetUserEntries(ctx, uid, service.PaginationOpts{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		logger.Error("getting workouts list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting workouts list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetWorkoutsResponse{
		UserID:   uid.String(),
		Page:     page,
		Limit:    limit,
		Workouts: workouts,
	})
	logger.Info("workouts provided")
}

func (s *Server) UpdateWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update workout error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update workout error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid workout id in path value", nil)
		return
	}
	var req WorkoutRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update workout error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	servReq, err := s.workoutRequestToService(&req)
	if err != nil {
		logger.Error("update workout error: " + err.Error())
		httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	entry, err := s.workoutsService.UpdateEntry(ctx, id, uid, servReq)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("update workout error: invalid fields", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "sets and reps have to be positive, weight non-negative", nil)
		case errors.Is(err, errorvalues.ErrWorkoutNotFound):
			logger.Error("update workout error: unexist workout")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "workout doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("update workout error: workout has different owner")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "workout doesn't exist", nil)
		default:
			logger.Error("update workout error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating workout", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
	logger.Info("workout entry updated")
}

func (s *Server) DeleteWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("workout deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("workout deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid workout id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.workoutsService.DeleteEntry(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrWorkoutNotFound):
			logger.Error("workout deletion error: unexist workout")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "workout doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("workout deletion error: workout has different owner")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "workout doesn't exist", nil)
		default:
			logger.Error("workout deletion error: service error")
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting workout", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"message": "workout deleted"})
	logger.Info("workout entry deleted")
}
