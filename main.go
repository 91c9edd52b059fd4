package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/labyrinth-api/api"
	challengeapi "github.com/beka-birhanu/labyrinth-api/api/challenge"
	api_i "github.com/beka-birhanu/labyrinth-api/api/i"
	"github.com/beka-birhanu/labyrinth-api/api/identity"
	"github.com/beka-birhanu/labyrinth-api/config"
	"github.com/beka-birhanu/labyrinth-api/infrastruture/repo"
	"github.com/beka-birhanu/labyrinth-api/infrastruture/scoreboard"
	"github.com/beka-birhanu/labyrinth-api/infrastruture/token"
	"github.com/beka-birhanu/labyrinth-api/logger"
	"github.com/beka-birhanu/labyrinth-api/service"
	"github.com/beka-birhanu/labyrinth-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const scoreBoardTTLSeconds = 7 * 24 * 60 * 60 // Scores expire a week after the last submission.

// Global variables for dependencies
var (
	mongoClient         *mongo.Client
	redisClient         *redis.Client
	userRepo            i.UserRepo
	challengeRepo       i.ChallengeRepo
	scoreBoard          i.ScoreBoard
	jwtTokenizer        i.Tokenizer
	authService         i.Authenticator
	challengeService    i.Challenger
	authController      api_i.Controller
	challengeController api_i.Controller
	router              *api.Router
	appLogger           logger.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initRepos(client *mongo.Client) {
	userRepo = repo.NewUserRepo(client, config.Envs.DBName, "users")
	challengeRepo = repo.NewChallengeRepo(client, config.Envs.DBName, "challenges")
	appLogger.Info("Repositories initialized")
}

func initScoreBoard() {
	var err error
	scoreBoard, err = scoreboard.NewRedisScoreBoard(redisClient, scoreBoardTTLSeconds)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating score board: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Score board initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func initChallengeService() {
	challengeLogger, err := logger.New("CHALLENGE", config.ColorPurple, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating challenge logger: %v", err))
		os.Exit(1)
	}

	challengeService, err = service.NewChallengeService(service.ChallengeServiceConfig{
		Repo:          challengeRepo,
		ScoreBoard:    scoreBoard,
		Logger:        challengeLogger,
		DefaultWidth:  config.Envs.DefaultMazeWidth,
		DefaultHeight: config.Envs.DefaultMazeHeight,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating challenge service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Challenge service initialized")
}

func initControllers() {
	authController = identity.NewIdentityServer(authService)
	challengeController = challengeapi.NewChallengeServer(challengeService)
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, challengeController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	// Initialize dependencies
	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Creating app logger: %v\n", err)
		os.Exit(1)
	}

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initRedis(ctx)
	defer func() {
		_ = redisClient.Close()
	}()

	initRepos(mongoClient)
	initScoreBoard()
	initJWTTokenizer()
	initAuthService()
	initChallengeService()
	initControllers()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
