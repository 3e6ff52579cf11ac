package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fitlog/internal/error_values"
	"github.com/limbo/fitlog/internal/repository"
	"github.com/limbo/fitlog/pkg/entity"
)

var planTaskTypes = []string{"exercise", "diet", "custom"}

type PlansService struct {
	repo repository.PlansRepositoryI
}

func NewPlansService(plansRepo repository.PlansRepositoryI) *PlansService {
	if plansRepo == nil {
		log.Fatal("provided nil plansRepo")
	}
	return &PlansService{
		repo: plansRepo,
	}
}

func (ps *PlansService) CreatePlan(ctx context.Context, uid uuid.UUID, req *CreatePlanRequest) (*entity.Plan, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	p := entity.Plan{
		UserID:         uid,
		Title:          req.Title,
		Description:    req.Description,
		Duration:       req.Duration,
		Difficulty:     req.Difficulty,
		ScheduledTasks: entity.NewWeekSchedule(),
	}
	id, err := ps.repo.Create(ctx, &p)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("plans repository error: " + err.Error())
	}
	plan, err := ps.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPlanNotFound) {
			return nil, err
		}
		return nil, errors.New("plans repository error: " + err.Error())
	}
	return plan, nil
}

func (ps *PlansService) GetUserPlans(ctx context.Context, uid uuid.UUID) ([]*entity.Plan, error) {
	plans, err := ps.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("plans repository error: " + err.Error())
	}
	return plans, nil
}

func (ps *PlansService) GetPlan(ctx context.Context, planID, uid uuid.UUID) (*entity.Plan, error) {
	plan, err := ps.repo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPlanNotFound) {
			return nil, err
		}
		return nil, errors.New("plans repository error: " + err.Error())
	}
	if plan.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return plan, nil
}

// UpdatePlan replaces the plan fields and the whole schedule map in one
// write. Concurrent updates are last-writer-wins. Incoming tasks keep their
// ids; tasks without one are assigned a fresh uuid, so clients may synthesize
// tasks locally before saving.
func (ps *PlansService) UpdatePlan(ctx context.Context, planID, uid uuid.UUID, req *UpdatePlanRequest) (*entity.Plan, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	if err := validateSchedule(req.ScheduledTasks); err != nil {
		return nil, err
	}
	plan, err := ps.repo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPlanNotFound) {
			return nil, err
		}
		return nil, errors.New("plans repository error: " + err.Error())
	}
	if plan.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	schedule := make(entity.WeekSchedule, len(entity.WeekDays))
	for day, tasks := range req.ScheduledTasks {
		bucket := make([]entity.PlanTask, 0, len(tasks))
		for _, task := range tasks {
			if task.ID == uuid.Nil {
				task.ID = uuid.New()
			}
			bucket = append(bucket, task)
		}
		schedule[day] = bucket
	}
	schedule.Normalize()
	plan.Title = req.Title
	plan.Description = req.Description
	plan.Duration = req.Duration
	plan.Difficulty = req.Difficulty
	plan.ScheduledTasks = schedule
	err = ps.repo.Update(ctx, plan)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPlanNotFound) {
			return nil, err
		}
		return nil, errors.New("plans repository error: " + err.Error())
	}
	return plan, nil
}

func (ps *PlansService) DeletePlan(ctx context.Context, planID, uid uuid.UUID) error {
	plan, err := ps.repo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPlanNotFound) {
			return err
		}
		return errors.New("plans repository error: " + err.Error())
	}
	if plan.UserID != uid {
		return errorvalues.ErrWrongOwner
	}
	err = ps.repo.Delete(ctx, planID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPlanNotFound) {
			return err
		}
		return errors.New("plans repository error: " + err.Error())
	}
	return nil
}

func validateSchedule(schedule entity.WeekSchedule) error {
	for day, tasks := range schedule {
		if !slices.Contains(entity.WeekDays, day) {
			return fmt.Errorf("%w: unknown day key %q", errorvalues.ErrValidation, day)
		}
		for _, task := range tasks {
			if task.Title == "" {
				return fmt.Errorf("%w: task title is required on %s", errorvalues.ErrValidation, day)
			}
			if !slices.Contains(planTaskTypes, task.Type) {
				return fmt.Errorf("%w: unknown task type %q on %s", errorvalues.ErrValidation, task.Type, day)
			}
			if task.Time != "" {
				if err := validate.Var(task.Time, "hhmm"); err != nil {
					return fmt.Errorf("%w: task time %q on %s is not HH:MM", errorvalues.ErrValidation, task.Time, day)
				}
			}
		}
	}
	return nil
}
