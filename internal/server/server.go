package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/hostaltucan/reservas-api/internal/api"
	"github.com/hostaltucan/reservas-api/internal/core/service"
	"github.com/hostaltucan/reservas-api/internal/infrastructure/auth"
	"github.com/hostaltucan/reservas-api/internal/infrastructure/config"
	"github.com/hostaltucan/reservas-api/internal/infrastructure/db/mysql"
)

const shutdownTimeout = 10 * time.Second

// Server wraps the HTTP server and database pool.
type Server struct {
	httpServer *http.Server
	db         *sql.DB
	log        zerolog.Logger
}

// New connects to MySQL and wires repositories, services and routes.
func New(ctx context.Context, cfg config.Config, log zerolog.Logger) (*Server, error) {
	db, err := mysql.Connect(ctx, MySQLConfig(cfg))
	if err != nil {
		return nil, err
	}

	userRepo := mysql.NewUserRepository(db)
	reservationRepo := mysql.NewReservationRepository(db)
	tokens := auth.NewJWT(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	router := api.NewRouter(api.Deps{
		Logger:       log,
		Tokens:       tokens,
		Auth:         service.NewAuthService(userRepo, tokens, log),
		Users:        service.NewUserService(userRepo, cfg.Auth.BcryptCost, log),
		Reservations: service.NewReservationService(reservationRepo, log),
		DB:           db,
	})

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{httpServer: httpServer, db: db, log: log}, nil
}

// MySQLConfig maps runtime configuration onto the driver settings.
func MySQLConfig(cfg config.Config) mysql.Config {
	return mysql.Config{
		Host:     cfg.MySQL.Host,
		Port:     cfg.MySQL.Port,
		User:     cfg.MySQL.User,
		Password: cfg.MySQL.Password,
		Name:     cfg.MySQL.Name,
	}
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests and
// closes the database pool.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.httpServer.Addr).Msg("http server listening")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		_ = s.db.Close()
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.httpServer.Shutdown(shutdownCtx)
	if cerr := s.db.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}
