package di

import (
	"context"
	"fmt"

	"campus-client/api"
	"campus-client/api/campus"
	"campus-client/config"
	"campus-client/dao/cache"
	"campus-client/dao/session"
	"campus-client/db"
	"campus-client/server"
	"campus-client/server/handlers"
	services "campus-client/service"

	"github.com/go-playground/validator/v10"
	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// Container holds all application dependencies.
type Container struct {
	LocalStore          db.LocalStore
	SessionDao          *session.SessionDAO
	AvailabilityCache   *cache.AvailabilityCache
	CampusAPI           campus.CampusAPI
	AvailabilityService *services.AvailabilityService
	SpaceService        *services.SpaceService
	AuthService         *services.AuthService
	BookingService      *services.BookingService
	ComplaintService    *services.ComplaintService
	AvailabilityHandler *handlers.AvailabilityHandler
	SpaceHandler        *handlers.SpaceHandler
	BookingHandler      *handlers.BookingHandler
	ComplaintHandler    *handlers.ComplaintHandler
	AuthHandler         *handlers.AuthHandler
	MuxRouter           *mux.Router
	Router              *server.Router
	CampusHttpServer    *server.CampusHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(cfg *config.Config, logger zerolog.Logger) *Container {
	logger.Info().Str("env", cfg.Env).Msg("initializing container")
	ctx := context.Background()

	// Session store: Redis by default, in-memory for tests/local runs
	// without one.
	var localStore db.LocalStore
	if cfg.UseMemoryStore {
		logger.Info().Msg("using in-memory session store")
		localStore = db.NewMemoryLocalStore()
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		redisStore := db.NewRedisLocalStore(ctx, redisInternalClient)
		if err := redisStore.Ping(); err != nil {
			panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
		}
		localStore = redisStore
	}

	sessionDao := session.NewSessionDAO(localStore)
	availabilityCache := cache.NewAvailabilityCache()

	// Campus API - using mock outside prod.
	var campusApi campus.CampusAPI
	if cfg.Env != config.ENV_PROD {
		campusApi = campus.NewCampusApiClientMock()
		logger.Info().Msg("using mock campus api")
	} else {
		logger.Info().Str("baseUrl", cfg.CampusBaseURL).Msg("using prod campus api")
		httpClient := api.NewHTTPClient(cfg.CampusBaseURL)
		campusApi = campus.NewCampusApiClient(httpClient)
	}

	validate := validator.New()

	availabilityService := services.NewAvailabilityService(availabilityCache, campusApi, logger)
	spaceService := services.NewSpaceService(campusApi, sessionDao, logger)
	authService := services.NewAuthService(campusApi, sessionDao, validate, logger)
	bookingService := services.NewBookingService(campusApi, sessionDao, availabilityService, authService, validate, logger)
	complaintService := services.NewComplaintService(campusApi, authService, validate, logger)

	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService, logger)
	spaceHandler := handlers.NewSpaceHandler(spaceService, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	complaintHandler := handlers.NewComplaintHandler(complaintService, logger)
	authHandler := handlers.NewAuthHandler(authService, logger)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(availabilityHandler, spaceHandler, bookingHandler, complaintHandler, authHandler, muxRouter)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	campusHttpServer := server.NewCampusHttpServer(router, muxRouter, addr, logger)

	return &Container{
		LocalStore:          localStore,
		SessionDao:          sessionDao,
		AvailabilityCache:   availabilityCache,
		CampusAPI:           campusApi,
		AvailabilityService: availabilityService,
		SpaceService:        spaceService,
		AuthService:         authService,
		BookingService:      bookingService,
		ComplaintService:    complaintService,
		AvailabilityHandler: availabilityHandler,
		SpaceHandler:        spaceHandler,
		BookingHandler:      bookingHandler,
		ComplaintHandler:    complaintHandler,
		AuthHandler:         authHandler,
		MuxRouter:           muxRouter,
		Router:              router,
		CampusHttpServer:    campusHttpServer,
	}
}
