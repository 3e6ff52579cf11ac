package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/fitlog/internal/error_values"
	"github.com/limbo/fitlog/internal/service"
	"github.com/limbo/fitlog/pkg/entity"
	"github.com/limbo/fitlog/pkg/httputil"
)

type ExerciseRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Notes    string `json:"notes"`
}

type GetExercisesResponse struct {
	UserID    string             `json:"uid"`
	Page      int                `json:"page"`
	Limit     int                `json:"limit"`
	Exercises []*entity.Exercise `json:"exercises"`
}

func paginationFromQuery(r *http.Request) (limit, page int) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	page, err = strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	return limit, page
}

func (s *Server) CreateExercise(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create exercise error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req ExerciseRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create exercise error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	exercise, err := s.exercisesService.CreateExercise(ctx, uid, &service.CreateExerciseRequest{
		Name:     req.Name,
		Category: req.Category,
		Notes:    req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("create exercise error: invalid fields", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "name and category are required", nil)
		case errors.Is(err, errorvalues.ErrExerciseExists):
			logger.Error("create exercise error: attempt to create existed exercise")
			httputil.WriteErrorResponse(w, http.StatusConflict, "exercise already exists", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create exercise error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't create exercise: user doesn't exists", nil)
		default:
			logger.Error("create exercise error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating exercise", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, exercise)
	logger.Info("exercise created")
}

func (s *Server) GetExercises(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get exercises error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	limit, page := paginationFromQuery(r)
	offset := (page - 1) * limit
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	exercises, err := s.exercisesService.GetUserExercises(ctx, uid, service.PaginationOpts{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		logger.Error("getting exercises list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting exercises list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetExercisesResponse{
		UserID:    uid.String(),
		Page:      page,
		Limit:     limit,
		Exercises: exercises,
	})
	logger.Info("exercises provided")
}

func (s *Server) UpdateExercise(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update exercise error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update exercise error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid exercise id in path value", nil)
		return
	}
	var req ExerciseRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update exercise error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	exercise, err := s.exercisesService.UpdateExercise(ctx, id, uid, &service.CreateExerciseRequest{
		Name:     req.Name,
		Category: req.Category,
		Notes:    req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("update exercise error: invalid fields", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "name and category are required", nil)
		case errors.Is(err, errorvalues.ErrExerciseNotFound):
			logger.Error("update exercise error: unexist exercise")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "exercise doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("update exercise error: exercise has different owner")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "exercise doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrExerciseExists):
			logger.Error("update exercise error: name already taken")
			httputil.WriteErrorResponse(w, http.StatusConflict, "exercise already exists", nil)
		default:
			logger.Error("update exercise error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating exercise", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, exercise)
	logger.Info("exercise updated")
}

func (s *Server) DeleteExercise(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("exercise deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("exercise deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid exercise id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.exercisesService.DeleteExercise(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrExerciseNotFound):
			logger.Error("exercise deletion error: unexist exercise")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "exercise doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("exercise deletion error: exercise has different owner")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "exercise doesn't exist", nil)
		default:
			logger.Error("exercise deletion error: service error")
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting exercise", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"message": "exercise deleted"})
	logger.Info("exercise deleted")
}
