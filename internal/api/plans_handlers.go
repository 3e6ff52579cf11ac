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

type CreatePlanRequest struct {
	Title       string `json:"title"`
	Description string `json:"desc"`
	Duration    string `json:"duration"`
	Difficulty  string `json:"difficulty"`
}

type UpdatePlanRequest struct {
	Title          string              `json:"title"`
	Description    string              `json:"desc"`
	Duration       string              `json:"duration"`
	Difficulty     string              `json:"difficulty"`
	ScheduledTasks entity.WeekSchedule `json:"scheduledTasks"`
}

func (s *Server) CreatePlan(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create plan error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreatePlanRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create plan error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	plan, err := s.plansService.CreatePlan(ctx, uid, &service.CreatePlanRequest{
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		Difficulty:  req.Difficulty,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("create plan error: invalid fields", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "title, description, duration and difficulty are required", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create plan error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't create plan: user doesn't exists", nil)
		default:
			logger.Error("create plan error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating plan", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, plan)
	logger.Info("plan created")
}

func (s *Server) GetPlans(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get plans error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	plans, err := s.plansService.GetUserPlans(ctx, uid)
	if err != nil {
		logger.Error("getting plans list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting plans list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, plans)
	logger.Info("plans provided")
}

func (s *Server) GetPlan(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get plan error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get plan error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid plan id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	plan, err := s.plansService.GetPlan(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrPlanNotFound):
			logger.Error("get plan error: unexist plan")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "plan doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("get plan error: plan has different owner")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "plan doesn't exist", nil)
		default:
			logger.Error("get plan error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting plan", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, plan)
	logger.Info("plan provided")
}

func (s *Server) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update plan error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update plan error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid plan id in path value", nil)
		return
	}
	var req UpdatePlanRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update plan error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	plan, err := s.plansService.UpdatePlan(ctx, id, uid, &service.UpdatePlanRequest{
		Title:          req.Title,
		Description:    req.Description,
		Duration:       req.Duration,
		Difficulty:     req.Difficulty,
		ScheduledTasks: req.ScheduledTasks,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("update plan error: invalid fields", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid plan fields", err)
		case errors.Is(err, errorvalues.ErrPlanNotFound):
			logger.Error("update plan error: unexist plan")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "plan doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("update plan error: plan has different owner")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "plan doesn't exist", nil)
		default:
			logger.Error("update plan error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating plan", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, plan)
	logger.Info("plan updated")
}

func (s *Server) DeletePlan(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("plan deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("plan deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid plan id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.plansService.DeletePlan(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrPlanNotFound):
			logger.Error("plan deletion error: unexist plan")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "plan doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("plan deletion error: plan has different owner")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "plan doesn't exist", nil)
		default:
			logger.Error("plan deletion error: service error")
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting plan", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"message": "plan deleted successfully"})
	logger.Info("plan deleted")
}
