package repository

import (
	"context"
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/fitlog/internal/error_values"
	"github.com/limbo/fitlog/pkg/cleanup"
	"github.com/limbo/fitlog/pkg/entity"
)

// PlansRepository stores the weekly schedule as a jsonb column, so the whole
// map is replaced on every update (last writer wins).
type PlansRepository struct {
	conn PgConnection
}

func NewPlansRepo(cfg DBConfig) *PlansRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for plansRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for plansRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &PlansRepository{
		conn: pool,
	}
}

func NewPlansRepoWithConn(conn PgConnection) *PlansRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for plansRepo: " + err.Error())
	}
	return &PlansRepository{
		conn: conn,
	}
}

func (pr *PlansRepository) Create(ctx context.Context, plan *entity.Plan) (uuid.UUID, error) {
	schedule, err := sonic.ConfigDefault.Marshal(plan.ScheduledTasks)
	if err != nil {
		return uuid.UUID{}, errors.New("marshalling schedule error: " + err.Error())
	}
	var id uuid.UUID
	row := pr.conn.QueryRow(ctx, `INSERT INTO plans (user_id, title, description, duration, difficulty, scheduled_tasks) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;`,
		plan.UserID,
		plan.Title,
		plan.Description,
		plan.Duration,
		plan.Difficulty,
		schedule,
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
		return uuid.UUID{}, errors.New("creating plan db error: " + err.Error())
	}
	return id, nil
}

func (pr *PlansRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Plan, error) {
	var plan entity.Plan
	var schedule []byte
	plan.ID = id
	row := pr.conn.QueryRow(ctx, `SELECT user_id, title, description, duration, difficulty, scheduled_tasks, created_at, updated_at FROM plans WHERE id = $1;`, id)
	if err := row.Scan(&plan.UserID, &plan.Title, &plan.Description, &plan.Duration, &plan.Difficulty, &schedule, &plan.CreatedAt, &plan.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrPlanNotFound
		}
		return nil, errors.New("getting plan by id error: " + err.Error())
	}
	if err := sonic.ConfigDefault.Unmarshal(schedule, &plan.ScheduledTasks); err != nil {
		return nil, errors.New("unmarshalling schedule error: " + err.Error())
	}
	plan.ScheduledTasks.Normalize()
	return &plan, nil
}

func (pr *PlansRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Plan, error) {
	plans := make([]*entity.Plan, 0)
	rows, err := pr.conn.Query(ctx, `SELECT id, user_id, title, description, duration, difficulty, scheduled_tasks, created_at, updated_at
		FROM plans WHERE user_id = $1 ORDER BY created_at;`, uid)
	if err != nil {
		return nil, errors.New("getting plans by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		p := entity.Plan{}
		var schedule []byte
		err = rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.Duration, &p.Difficulty, &schedule, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling plan error: " + err.Error())
		}
		if err = sonic.ConfigDefault.Unmarshal(schedule, &p.ScheduledTasks); err != nil {
			return nil, errors.New("unmarshalling schedule error: " + err.Error())
		}
		p.ScheduledTasks.Normalize()
		plans = append(plans, &p)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return plans, nil
}

func (pr *PlansRepository) Update(ctx context.Context, plan *entity.Plan) error {
	schedule, err := sonic.ConfigDefault.Marshal(plan.ScheduledTasks)
	if err != nil {
		return errors.New("marshalling schedule error: " + err.Error())
	}
	ct, err := pr.conn.Exec(ctx, `UPDATE plans SET title = $1, description = $2, duration = $3, difficulty = $4, scheduled_tasks = $5, updated_at = NOW() WHERE id = $6;`,
		plan.Title, plan.Description, plan.Duration, plan.Difficulty, schedule, plan.ID,
	)
	if err != nil {
		return errors.New("error updating plan: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrPlanNotFound
	}
	return nil
}

func (pr *PlansRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := pr.conn.Exec(ctx, `DELETE FROM plans WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting plan: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrPlanNotFound
	}
	return nil
}

func (pr *PlansRepository) DeleteByUserID(ctx context.Context, uid uuid.UUID) error {
	_, err := pr.conn.Exec(ctx, `DELETE FROM plans WHERE user_id = $1;`, uid)
	if err != nil {
		return errors.New("error deleting user plans: " + err.Error())
	}
	return nil
}
