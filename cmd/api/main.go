package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/kbrerx/Centro-de-operaciones-INFINITY/infrastructure/database/postgres"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/infrastructure/repository"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/api"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/config"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/scheduler"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/usecases/authenticating"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/usecases/offering"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel, cfg.App.LogFormat)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	workspaceRepo := repository.NewWorkspaceRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	offerService := offering.NewService(cfg, workspaceRepo)
	authenticator := authenticating.NewService(userRepo, cfg)

	backupService := scheduler.NewSnapshotBackupService(offerService, cfg)
	if err := backupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de backup de snapshot")
	} else {
		logrus.Info("Agendador de backup de snapshot iniciado com sucesso")
	}

	server, err := api.New(cfg, offerService, authenticator, backupService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados, já testada pelo construtor
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
