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

type CreateTodoRequest struct {
	Title string `json:"title"`
}

type UpdateTodoRequest struct {
	IsCompleted *bool `json:"isCompleted"`
}

type GetTodosResponse struct {
	UserID string             `json:"uid"`
	Date   string             `json:"date"`
	Todos  []*entity.TodoItem `json:"todos"`
}

func (s *Server) CreateTodo(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create todo error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateTodoRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create todo error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	todo, err := s.todosService.CreateTodo(ctx, uid, &service.CreateTodoRequest{
		Title: req.Title,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("create todo error: invalid fields", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "title is required", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create todo error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't create todo: user doesn't exists", nil)
		default:
			logger.Error("create todo error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating todo", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, todo)
	logger.Info("todo created")
}

func (s *Server) GetTodos(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get todos error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		logger.Error("get todos error: missing date filter")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "date parameter is required", nil)
		return
	}
	day, err := parseDate(date)
	if err != nil {
		logger.Error("get todos error: invalid date filter")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "date has to be YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	todos, err := s.todosService.GetTodosForDay(ctx, uid, day)
	if err != nil {
		logger.Error("getting todos list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting todos list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetTodosResponse{
		UserID: uid.String(),
		Date:   date,
		Todos:  todos,
	})
	logger.Info("todos provided")
}

func (s *Server) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update todo error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update todo error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid todo id in path value", nil)
		return
	}
	var req UpdateTodoRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.IsCompleted == nil {
		logger.Error("update todo error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "isCompleted is required", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	todo, err := s.todosService.SetCompleted(ctx, id, uid, *req.IsCompleted)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrTodoNotFound):
			logger.Error("update todo error: unexist todo")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "todo doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("update todo error: todo has different owner")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "todo doesn't exist", nil)
		default:
			logger.Error("update todo error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating todo", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, todo)
	logger.Info("todo updated")
}

func (s *Server) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("todo deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("todo deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid todo id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.todosService.DeleteTodo(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrTodoNotFound):
			logger.Error("todo deletion error: unexist todo")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "todo doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("todo deletion error: todo has different owner")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "todo doesn't exist", nil)
		default:
			logger.Error("todo deletion error: service error")
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting todo", nil)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("todo deleted")
}
