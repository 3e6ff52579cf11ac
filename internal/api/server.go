package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/fitlog/internal/service"
)

type Server struct {
	mx               *chi.Mux
	userService      service.UserServiceI
	exercisesService service.ExercisesServiceI
	workoutsService  service.WorkoutsServiceI
	todosService     service.TodosServiceI
	plansService     service.PlansServiceI
	jwtService       JWTServiceI
}

type ServicesList struct {
	UserService      service.UserServiceI
	ExercisesService service.ExercisesServiceI
	WorkoutsService  service.WorkoutsServiceI
	TodosService     service.TodosServiceI
	PlansService     service.PlansServiceI
	JwtService       JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:               chi.NewMux(),
		userService:      servicesOptions.UserService,
		exercisesService: servicesOptions.ExercisesService,
		workoutsService:  servicesOptions.WorkoutsService,
		todosService:     servicesOptions.TodosService,
		plansService:     servicesOptions.PlansService,
		jwtService:       servicesOptions.JwtService,
	}
}

func (s *Server) Run(address string) error {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Route("/exercises", func(r chi.Router) {
				r.Get("/", s.GetExercises)
				r.Post("/", s.CreateExercise)
				r.Put("/{id}", s.UpdateExercise)
				r.Delete("/{id}", s.DeleteExercise)
			})
			r.Route("/workouts", func(r chi.Router) {
				r.Get("/", s.GetWorkouts)
				r.Post("/", s.CreateWorkout)
				r.Put("/{id}", s.UpdateWorkout)
				r.Delete("/{id}", s.DeleteWorkout)
			})
			r.Route("/todos", func(r chi.Router) {
				r.Get("/", s.GetTodos)
				r.Post("/", s.CreateTodo)
				r.Patch("/{id}", s.UpdateTodo)
				r.Delete("/{id}", s.DeleteTodo)
			})
			r.Route("/plans", func(r chi.Router) {
				r.Get("/", s.GetPlans)
				r.Post("/", s.CreatePlan)
				r.Get("/{id}", s.GetPlan)
				r.Patch("/{id}", s.UpdatePlan)
				r.Delete("/{id}", s.DeletePlan)
			})
			r.Route("/profile", func(r chi.Router) {
				r.Get("/", s.GetProfile)
				r.Post("/", s.MutateProfile)
				r.Delete("/", s.DeleteAccount)
			})
		})
	})
	return http.ListenAndServe(address, s.mx)
}
