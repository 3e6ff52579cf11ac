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

type TodosService struct {
	repo repository.TodosRepositoryI
}

func NewTodosService(todosRepo repository.TodosRepositoryI) *TodosService {
	if todosRepo == nil {
		log.Fatal("provided nil todosRepo")
	}
	return &TodosService{
		repo: todosRepo,
	}
}

func (ts *TodosService) CreateTodo(ctx context.Context, uid uuid.UUID, req *CreateTodoRequest) (*entity.TodoItem, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	t := entity.TodoItem{
		UserID:      uid,
		Title:       req.Title,
		IsCompleted: false,
		Date:        time.Now().UTC(),
	}
	id, err := ts.repo.Create(ctx, &t)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("todos repository error: " + err.Error())
	}
	todo, err := ts.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTodoNotFound) {
			return nil, err
		}
		return nil, errors.New("todos repository error: " + err.Error())
	}
	return todo, nil
}

func (ts *TodosService) GetTodosForDay(ctx context.Context, uid uuid.UUID, day time.Time) ([]*entity.TodoItem, error) {
	from, to := DayWindow(day)
	todos, err := ts.repo.GetByUserAndDateRange(ctx, uid, from, to)
	if err != nil {
		return nil, errors.New("todos repository error: " + err.Error())
	}
	return todos, nil
}

func (ts *TodosService) SetCompleted(ctx context.Context, todoID, uid uuid.UUID, isCompleted bool) (*entity.TodoItem, error) {
	todo, err := ts.repo.GetByID(ctx, todoID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTodoNotFound) {
			return nil, err
		}
		return nil, errors.New("todos repository error: " + err.Error())
	}
	if todo.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	err = ts.repo.SetCompleted(ctx, todoID, isCompleted)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTodoNotFound) {
			return nil, err
		}
		return nil, errors.New("todos repository error: " + err.Error())
	}
	todo.IsCompleted = isCompleted
	return todo, nil
}

func (ts *TodosService) DeleteTodo(ctx context.Context, todoID, uid uuid.UUID) error {
	todo, err := ts.repo.GetByID(ctx, todoID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTodoNotFound) {
			return err
		}
		return errors.New("todos repository error: " + err.Error())
	}
	if todo.UserID != uid {
		return errorvalues.ErrWrongOwner
	}
	err = ts.repo.Delete(ctx, todoID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTodoNotFound) {
			return err
		}
		return errors.New("todos repository error: " + err.Error())
	}
	return nil
}
