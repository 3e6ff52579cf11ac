package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/fitlog/internal/error_values"
	"github.com/limbo/fitlog/pkg/cleanup"
	"github.com/limbo/fitlog/pkg/entity"
)

type TodosRepository struct {
	conn PgConnection
}

func NewTodosRepo(cfg DBConfig) *TodosRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for todosRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for todosRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &TodosRepository{
		conn: pool,
	}
}

func NewTodosRepoWithConn(conn PgConnection) *TodosRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for todosRepo: " + err.Error())
	}
	return &TodosRepository{
		conn: conn,
	}
}

func (tr *TodosRepository) Create(ctx context.Context, todo *entity.TodoItem) (uuid.UUID, error) {
	var id uuid.UUID
	row := tr.conn.QueryRow(ctx, `INSERT INTO todos (user_id, title, is_completed, todo_date) VALUES ($1, $2, $3, $4) RETURNING id;`,
		todo.UserID,
		todo.Title,
		todo.IsCompleted,
		todo.Date,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrOwnerNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating todo db error: " + err.Error())
	}
	return id, nil
}

func (tr *TodosRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.TodoItem, error) {
	var todo entity.TodoItem
	todo.ID = id
	row := tr.conn.QueryRow(ctx, `SELECT user_id, title, is_completed, todo_date, created_at FROM todos WHERE id = $1;`, id)
	if err := row.Scan(&todo.UserID, &todo.Title, &todo.IsCompleted, &todo.Date, &todo.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTodoNotFound
		}
		return nil, errors.New("getting todo by id error: " + err.Error())
	}
	return &todo, nil
}

func (tr *TodosRepository) GetByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]*entity.TodoItem, error) {
	todos := make([]*entity.TodoItem, 0)
	rows, err := tr.conn.Query(ctx, `SELECT id, user_id, title, is_completed, todo_date, created_at
		FROM todos WHERE user_id = $1 AND todo_date >= $2 AND todo_date < $3 ORDER BY todo_date DESC;`, uid, from, to)
	if err != nil {
		return nil, errors.New("getting todos by date range error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		t := entity.TodoItem{}
		err = rows.Scan(&t.ID, &t.UserID, &t.Title, &t.IsCompleted, &t.Date, &t.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling todo error: " + err.Error())
		}
		todos = append(todos, &t)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return todos, nil
}

func (tr *TodosRepository) SetCompleted(ctx context.Context, id uuid.UUID, isCompleted bool) error {
	ct, err := tr.conn.Exec(ctx, `UPDATE todos SET is_completed = $1 WHERE id = $2;`, isCompleted, id)
	if err != nil {
		return errors.New("error updating todo: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTodoNotFound
	}
	return nil
}

func (tr *TodosRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := tr.conn.Exec(ctx, `DELETE FROM todos WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting todo: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTodoNotFound
	}
	return nil
}

func (tr *TodosRepository) DeleteByUserID(ctx context.Context, uid uuid.UUID) error {
	_, err := tr.conn.Exec(ctx, `DELETE FROM todos WHERE user_id = $1;`, uid)
	if err != nil {
		return errors.New("error deleting user todos: " + err.Error())
	}
	return nil
}
