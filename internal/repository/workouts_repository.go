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

type WorkoutsRepository struct {
	conn PgConnection
}

func NewWorkoutsRepo(cfg DBConfig) *WorkoutsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for workoutsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for workoutsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &WorkoutsRepository{
		conn: pool,
	}
}

func NewWorkoutsRepoWithConn(conn PgConnection) *WorkoutsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for workoutsRepo: " + err.Error())
	}
	return &WorkoutsRepository{
		conn: conn,
	}
}

// ExerciseID is stored without a foreign key: entries referencing a deleted
// exercise stay readable.
func (wr *WorkoutsRepository) Create(ctx context.Context, workout *entity.WorkoutEntry) (uuid.UUID, error) {
	var id uuid.UUID
	row := wr.conn.QueryRow(ctx, `INSERT INTO workouts (user_id, exercise_id, workout_date, sets, reps, weight) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;`,
		workout.UserID,
		workout.ExerciseID,
		workout.Date,
		workout.Sets,
		workout.Reps,
		workout.Weight,
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
		return uuid.UUID{}, errors.New("creating workout entry db error: " + err.Error())
	}
	return id, nil
}

func (wr *WorkoutsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.WorkoutEntry, error) {
	var workout entity.WorkoutEntry
	workout.ID = id
	row := wr.conn.QueryRow(ctx, `SELECT user_id, exercise_id, workout_date, sets, reps, weight, created_at FROM workouts WHERE id = $1;`, id)
	if err := row.Scan(&workout.UserID, &workout.ExerciseID, &workout.Date, &workout.Sets, &workout.Reps, &workout.Weight, &workout.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrWorkoutNotFound
		}
		return nil, errors.New("getting workout entry by id error: " + err.Error())
	}
	return &workout, nil
}

func (wr *WorkoutsRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.WorkoutEntry, error) {
	rows, err := wr.conn.Query(ctx, `SELECT id, user_id, exercise_id, workout_date, sets, reps, weight, created_at
		FROM workouts WHERE user_id = $1 ORDER BY workout_date DESC LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("getting workout entries by uid error: " + err.Error())
	}
	return scanWorkoutRows(rows)
}

func (wr *WorkoutsRepository) GetByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]*entity.WorkoutEntry, error) {
	rows, err := wr.conn.Query(ctx, `SELECT id, user_id, exercise_id, workout_date, sets, reps, weight, created_at
		FROM workouts WHERE user_id = $1 AND workout_date >= $2 AND workout_date < $3 ORDER BY workout_date DESC;`, uid, from, to)
	if err != nil {
		return nil, errors.New("getting workout entries by date range error: " + err.Error())
	}
	return scanWorkoutRows(rows)
}

func scanWorkoutRows(rows pgx.Rows) ([]*entity.WorkoutEntry, error) {
	workouts := make([]*entity.WorkoutEntry, 0)
	defer rows.Close()
	for rows.Next() {
		w := entity.WorkoutEntry{}
		err := rows.Scan(&w.ID, &w.UserID, &w.ExerciseID, &w.Date, &w.Sets, &w.Reps, &w.Weight, &w.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling workout entry error: " + err.Error())
		}
		workouts = append(workouts, &w)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return workouts, nil
}

func (wr *WorkoutsRepository) Update(ctx context.Context, workout *entity.WorkoutEntry) error {
	ct, err := wr.conn.Exec(ctx, `UPDATE workouts SET exercise_id = $1, workout_date = $2, sets = $3, reps = $4, weight = $5 WHERE id = $6;`,
		workout.ExerciseID, workout.Date, workout.Sets, workout.Reps, workout.Weight, workout.ID,
	)
	if err != nil {
		return errors.New("error updating workout entry: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrWorkoutNotFound
	}
	return nil
}

func (wr *WorkoutsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := wr.conn.Exec(ctx, `DELETE FROM workouts WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting workout entry: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrWorkoutNotFound
	}
	return nil
}

func (wr *WorkoutsRepository) DeleteByUserID(ctx context.Context, uid uuid.UUID) error {
	_, err := wr.conn.Exec(ctx, `DELETE FROM workouts WHERE user_id = $1;`, uid)
	if err != nil {
		return errors.New("error deleting user workout entries: " + err.Error())
	}
	return nil
}
