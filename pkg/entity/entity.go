package entity

import (
	"time"

	"github.com/google/uuid"
)

// WeekDays holds the canonical schedule keys in display order.
var WeekDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

type User struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Images        []string  `json:"images"`
	SelectedImage string    `json:"selectedImage"`
	CreatedAt     time.Time `json:"created_at"`
}

type Exercise struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"uid"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type WorkoutEntry struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"uid"`
	ExerciseID uuid.UUID `json:"exercise_id"`
	Date       time.Time `json:"date"`
	Sets       int       `json:"sets"`
	Reps       int       `json:"reps"`
	Weight     float64   `json:"weight"`
	CreatedAt  time.Time `json:"created_at"`
}

type TodoItem struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"uid"`
	Title       string    `json:"title"`
	IsCompleted bool      `json:"isCompleted"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// PlanTask is a single scheduled item inside a plan's day bucket.
// Time is an optional "HH:MM" time of day.
type PlanTask struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Type  string    `json:"type"`
	Time  string    `json:"time,omitempty"`
}

// WeekSchedule maps a day name from WeekDays to its ordered task list.
type WeekSchedule map[string][]PlanTask

// NewWeekSchedule builds a schedule with all seven days present and empty.
func NewWeekSchedule() WeekSchedule {
	schedule := make(WeekSchedule, len(WeekDays))
	for _, day := range WeekDays {
		schedule[day] = []PlanTask{}
	}
	return schedule
}

// Normalize fills in missing day keys with empty task lists.
func (ws WeekSchedule) Normalize() {
	for _, day := range WeekDays {
		if ws[day] == nil {
			ws[day] = []PlanTask{}
		}
	}
}

type Plan struct {
	ID             uuid.UUID    `json:"id"`
	UserID         uuid.UUID    `json:"uid"`
	Title          string       `json:"title"`
	Description    string       `json:"desc"`
	Duration       string       `json:"duration"`
	Difficulty     string       `json:"difficulty"`
	ScheduledTasks WeekSchedule `json:"scheduledTasks"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
