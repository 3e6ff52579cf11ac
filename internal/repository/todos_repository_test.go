package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/fitlog/internal/error_values"
	"github.com/limbo/fitlog/internal/repository"
	"github.com/limbo/fitlog/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

func TestCreateTodo(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewTodosRepoWithConn(mock)
	todo := entity.TodoItem{
		UserID:      userID,
		Title:       "morning run",
		IsCompleted: false,
		Date:        time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
	tid := uuid.New()
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO todos (user_id, title, is_completed, todo_date) VALUES ($1, $2, $3, $4) RETURNING id;`)
	t.Run("successfully created", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(todo.UserID, todo.Title, todo.IsCompleted, todo.Date).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(tid))
		id, err := repo.Create(ctx, &todo)
		assert.NoError(t, err)
		assert.Equal(t, tid, id)
	})
	t.Run("FK violation", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(todo.UserID, todo.Title, todo.IsCompleted, todo.Date).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.Create(ctx, &todo)
		assert.ErrorIs(t, err, errorvalues.ErrOwnerNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(todo.UserID, todo.Title, todo.IsCompleted, todo.Date).
			WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, &todo)
		assert.Error(t, err)
	})
}

func TestGetTodoByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewTodosRepoWithConn(mock)
	todo := entity.TodoItem{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       "morning run",
		IsCompleted: true,
		Date:        time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		CreatedAt:   time.Now(),
	}
	query := regexp.QuoteMeta(`SELECT user_id, title, is_completed, todo_date, created_at FROM todos WHERE id = $1;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(todo.ID).
			WillReturnRows(pgxmock.NewRows([]string{"user_id", "title", "is_completed", "todo_date", "created_at"}).
				AddRow(todo.UserID, todo.Title, todo.IsCompleted, todo.Date, todo.CreatedAt),
			)
		result, err := repo.GetByID(ctx, todo.ID)
		assert.NoError(t, err)
		assert.Equal(t, todo, *result)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(todo.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, todo.ID)
		assert.ErrorIs(t, err, errorvalues.ErrTodoNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(todo.ID).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByID(ctx, todo.ID)
		assert.Error(t, err)
	})
}

func TestGetTodosByUserAndDateRange(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewTodosRepoWithConn(mock)
	from := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)
	todos := []*entity.TodoItem{
		{
			ID:          uuid.New(),
			UserID:      userID,
			Title:       "evening stretch",
			IsCompleted: false,
			Date:        from.Add(time.Hour * 19),
			CreatedAt:   time.Now(),
		},
		{
			ID:          uuid.New(),
			UserID:      userID,
			Title:       "morning run",
			IsCompleted: true,
			Date:        from.Add(time.Hour * 9),
			CreatedAt:   time.Now(),
		},
	}
	query := regexp.QuoteMeta(`SELECT id, user_id, title, is_completed, todo_date, created_at
		FROM todos WHERE user_id = $1 AND todo_date >= $2 AND todo_date < $3 ORDER BY todo_date DESC;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "user_id", "title", "is_completed", "todo_date", "created_at"})
		for _, td := range todos {
			rows.AddRow(td.ID, td.UserID, td.Title, td.IsCompleted, td.Date, td.CreatedAt)
		}
		mock.ExpectQuery(query).
			WithArgs(userID, from, to).
			WillReturnRows(rows)
		result, err := repo.GetByUserAndDateRange(ctx, userID, from, to)
		assert.NoError(t, err)
		assert.Equal(t, 2, len(result))
		for i := range result {
			assert.Equal(t, *todos[i], *result[i])
		}
	})
	t.Run("nothing in range", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID, from, to).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "title", "is_completed", "todo_date", "created_at"}))
		result, err := repo.GetByUserAndDateRange(ctx, userID, from, to)
		assert.NoError(t, err)
		assert.Equal(t, 0, len(result))
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID, from, to).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByUserAndDateRange(ctx, userID, from, to)
		assert.Error(t, err)
	})
}

func TestSetTodoCompleted(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewTodosRepoWithConn(mock)
	query := regexp.QuoteMeta(`UPDATE todos SET is_completed = $1 WHERE id = $2;`)
	ctx := context.Background()
	id := uuid.New()
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(true, id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.SetCompleted(ctx, id, true)
		assert.NoError(t, err)
	})
	t.Run("uncheck", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(false, id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.SetCompleted(ctx, id, false)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(true, id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.SetCompleted(ctx, id, true)
		assert.ErrorIs(t, err, errorvalues.ErrTodoNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(true, id).
			WillReturnError(errors.New("db error"))
		err := repo.SetCompleted(ctx, id, true)
		assert.Error(t, err)
	})
}

func TestDeleteTodo(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewTodosRepoWithConn(mock)
	query := regexp.QuoteMeta(`DELETE FROM todos WHERE id = $1;`)
	ctx := context.Background()
	id := uuid.New()
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		err := repo.Delete(ctx, id)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		err := repo.Delete(ctx, id)
		assert.ErrorIs(t, err, errorvalues.ErrTodoNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id).
			WillReturnError(errors.New("db error"))
		err := repo.Delete(ctx, id)
		assert.Error(t, err)
	})
}

func TestDeleteTodosByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewTodosRepoWithConn(mock)
	query := regexp.QuoteMeta(`DELETE FROM todos WHERE user_id = $1;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(userID).
			WillReturnResult(pgxmock.NewResult("DELETE", 4))
		err := repo.DeleteByUserID(ctx, userID)
		assert.NoError(t, err)
	})
	t.Run("nothing to delete is fine", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(userID).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		err := repo.DeleteByUserID(ctx, userID)
		assert.NoError(t, err)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(userID).
			WillReturnError(errors.New("db error"))
		err := repo.DeleteByUserID(ctx, userID)
		assert.Error(t, err)
	})
}
