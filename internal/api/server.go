package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/api/handler"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/api/handler/router"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/config"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/scheduler"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/usecases/authenticating"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/usecases/offering"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	offerService offering.Manager,
	authenticator authenticating.Authenticator,
	backupService *scheduler.SnapshotBackupService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		SnapshotBackupService: backupService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Offers(offerService)...),
		router.WithRoutes(handler.Funnel(offerService)...),
		router.WithRoutes(handler.Testing(offerService)...),
		router.WithRoutes(handler.Scale(offerService)...),
		router.WithRoutes(handler.Checklists(offerService)...),
		router.WithRoutes(handler.Vault(offerService)...),
		router.WithRoutes(handler.Dashboard(offerService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
