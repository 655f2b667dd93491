package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gorilla "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// CampusHttpServer hosts the client pages and JSON endpoints locally and
// shuts down gracefully on SIGINT/SIGTERM.
type CampusHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	addr      string
	logger    zerolog.Logger
}

func NewCampusHttpServer(router *Router, muxRouter *mux.Router, addr string, logger zerolog.Logger) *CampusHttpServer {
	return &CampusHttpServer{
		router:    router,
		muxRouter: muxRouter,
		addr:      addr,
		logger:    logger.With().Str("component", "http_server").Logger(),
	}
}

func (s *CampusHttpServer) Start() {
	s.router.RegisterRoutes()

	handler := gorilla.CORS(
		gorilla.AllowedOrigins([]string{"*"}),
		gorilla.AllowedMethods([]string{"GET", "POST", "PATCH", "OPTIONS"}),
		gorilla.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(s.muxRouter)
	handler = gorilla.LoggingHandler(os.Stdout, handler)

	srv := &http.Server{
		Addr:    s.addr,
		Handler: handler,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.logger.Info().Str("addr", s.addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	<-stop
	s.logger.Info().Msg("shutting down the server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		s.logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	s.logger.Info().Msg("server exiting")
}
