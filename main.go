package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/beka-birhanu/pickle-maze/api"
	gameapi "github.com/beka-birhanu/pickle-maze/api/game"
	api_i "github.com/beka-birhanu/pickle-maze/api/i"
	"github.com/beka-birhanu/pickle-maze/config"
	logger "github.com/beka-birhanu/pickle-maze/infrastruture/log"
	"github.com/beka-birhanu/pickle-maze/infrastruture/token"
	"github.com/beka-birhanu/pickle-maze/maze"
	"github.com/beka-birhanu/pickle-maze/service"
	"github.com/beka-birhanu/pickle-maze/service/i"
	"github.com/gin-gonic/gin"
)

// Global variables for dependencies
var (
	mazeGenerator      *maze.Generator
	gameSessionManager i.GameSessionManager
	jwtTokenizer       i.Tokenizer
	gameController     api_i.Controller
	router             *api.Router
	appLogger          i.Logger
)

func initMazeGenerator() {
	mazeLogger, err := logger.New("MAZE", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze logger: %v", err))
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	mazeGenerator = maze.NewGenerator(rng, maze.WithAttemptHook(func(attempt int, solvable bool) {
		if !solvable {
			mazeLogger.Warning(fmt.Sprintf("Attempt %d produced an unsolvable maze", attempt))
		}
	}))
	appLogger.Info("Maze generator initialized")
}

func initSessionManager() {
	sessionLogger, err := logger.New("SESSION-MANAGER", config.ColorBlue, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating session manager logger: %v", err))
		os.Exit(1)
	}

	gameSessionManager, err = service.NewGameSessionManager(&service.Config{
		Generator:   mazeGenerator,
		Logger:      sessionLogger,
		DefaultSize: config.Envs.MazeDefaultSize,
		MaxSize:     config.Envs.MazeMaxSize,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating session manager: %v", err))
		os.Exit(1)
	}

	appLogger.Info("Session manager initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initGameController() {
	controllerLogger, err := logger.New("GAME-API", config.ColorMagenta, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating game controller logger: %v", err))
		os.Exit(1)
	}

	ttl := time.Duration(config.Envs.GameTokenTTLMin) * time.Minute
	gameController, err = gameapi.NewGameController(gameSessionManager, jwtTokenizer, ttl, controllerLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating game controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Game controller initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{gameController},
		AuthorizationMiddleware: gameapi.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)
	gin.SetMode(config.Envs.GinMode)

	initMazeGenerator()
	initSessionManager()
	initJWTTokenizer()
	initGameController()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
