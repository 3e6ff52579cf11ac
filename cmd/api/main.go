// @title Fitness-tracker API
// @description API for personal fitness tracker "Fitlog"
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/limbo/fitlog/internal/api"
	"github.com/limbo/fitlog/internal/repository"
	"github.com/limbo/fitlog/internal/service"
	"github.com/limbo/fitlog/pkg/cleanup"
	"github.com/limbo/fitlog/pkg/config"
	jwtservice "github.com/limbo/fitlog/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	defer cleanup.CleanUp()
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	usersRepo := repository.NewUsersRepo(&dbCfg)
	exercisesRepo := repository.NewExercisesRepo(&dbCfg)
	workoutsRepo := repository.NewWorkoutsRepo(&dbCfg)
	todosRepo := repository.NewTodosRepo(&dbCfg)
	plansRepo := repository.NewPlansRepo(&dbCfg)
	serv := api.New(&api.ServicesList{
		UserService:      service.NewUserService(usersRepo, exercisesRepo, workoutsRepo, todosRepo, plansRepo),
		ExercisesService: service.NewExercisesService(exercisesRepo),
		WorkoutsService:  service.NewWorkoutsService(workoutsRepo),
		TodosService:     service.NewTodosService(todosRepo),
		PlansService:     service.NewPlansService(plansRepo),
		JwtService:       jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
