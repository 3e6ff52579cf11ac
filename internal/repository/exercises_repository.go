package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/fitlog/internal/error_values"
	"github.com/limbo/fitlog/pkg/cleanup"
	"github.com/limbo/fitlog/pkg/entity"
)

type ExercisesRepository struct {
	conn PgConnection
}

func NewExercisesRepo(cfg DBConfig) *ExercisesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for exercisesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for exercisesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ExercisesRepository{
		conn: pool,
	}
}

func NewExercisesRepoWithConn(conn PgConnection) *ExercisesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for exercisesRepo: " + err.Error())
	}
	return &ExercisesRepository{
		conn: conn,
	}
}

func (er *ExercisesRepository) Create(ctx context.Context, exercise *entity.Exercise) (uuid.UUID, error) {
	var id uuid.UUID
	row := er.conn.QueryRow(ctx, `INSERT INTO exercises (user_id, name, category, notes) VALUES ($1, $2, $3, $4) RETURNING id;`,
		exercise.UserID,
		exercise.Name,
		exercise.Category,
		exercise.Notes,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return uuid.UUID{}, errorvalues.ErrExerciseExists
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrOwnerNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating exercise db error: " + err.Error())
	}
	return id, nil
}

func (er *ExercisesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Exercise, error) {
	var exercise entity.Exercise
	exercise.ID = id
	row := er.conn.QueryRow(ctx, `SELECT user_id, name, category, notes, created_at FROM exercises WHERE id = $1;`, id)
	if err := row.Scan(&exercise.UserID, &exercise.Name, &exercise.Category, &exercise.Notes, &exercise.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrExerciseNotFound
		}
		return nil, errors.New("getting exercise by id error: " + err.Error())
	}
	return &exercise, nil
}

func (er *ExercisesRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Exercise, error) {
	exercises := make([]*entity.Exercise, 0)
	rows, err := er.conn.Query(ctx, `SELECT id, user_id, name, category, notes, created_at
		FROM exercises WHERE user_id = $1 ORDER BY created_at LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("getting exercises by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		e := entity.Exercise{}
		err = rows.Scan(&e.ID, &e.UserID, &e.Name, &e.Category, &e.Notes, &e.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling exercise error: " + err.Error())
		}
		exercises = append(exercises, &e)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return exercises, nil
}

func (er *ExercisesRepository) Update(ctx context.Context, exercise *entity.Exercise) error {
	ct, err := er.conn.Exec(ctx, `UPDATE exercises SET name = $1, category = $2, notes = $3 WHERE id = $4;`,
		exercise.Name, exercise.Category, exercise.Notes, exercise.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return errorvalues.ErrExerciseExists
		}
		return errors.New("error updating exercise: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrExerciseNotFound
	}
	return nil
}

func (er *ExercisesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := er.conn.Exec(ctx, `DELETE FROM exercises WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting exercise: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrExerciseNotFound
	}
	return nil
}

func (er *ExercisesRepository) DeleteByUserID(ctx context.Context, uid uuid.UUID) error {
	_, err := er.conn.Exec(ctx, `DELETE FROM exercises WHERE user_id = $1;`, uid)
	if err != nil {
		return errors.New("error deleting user exercises: " + err.Error())
	}
	return nil
}
