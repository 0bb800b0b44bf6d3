// Package scheduler contém os serviços de agendamento do workspace
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/config"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/usecases/offering"
)

// SnapshotBackupService agenda a cópia diária do estado do workspace para a
// tabela de backups, com poda dos backups excedentes
type SnapshotBackupService struct {
	scheduler           *gocron.Scheduler
	offerService        offering.Manager
	config              config.SnapshotBackup
	backupRunning       bool
	backupMutex         sync.Mutex
	lastBackupStartedAt time.Time
	lastBackupEndedAt   time.Time
}

func NewSnapshotBackupService(offerService offering.Manager, cfg *config.Config) *SnapshotBackupService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.SnapshotBackup.CronSchedule,
		"retention":     cfg.SnapshotBackup.Retention,
	}).Info("Configuração do agendador de backup do workspace carregada")

	return &SnapshotBackupService{
		scheduler:    scheduler,
		offerService: offerService,
		config:       cfg.SnapshotBackup,
	}
}

func (s *SnapshotBackupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de backup do workspace desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de backup do workspace")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunBackup(); err != nil {
			logrus.WithError(err).Error("Erro no backup do workspace")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar backup do workspace: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de backup do workspace")
		s.scheduler.Stop()
	}()

	return nil
}

// RunBackup executa uma rodada de backup, ignorando chamadas concorrentes
func (s *SnapshotBackupService) RunBackup() error {
	s.backupMutex.Lock()
	if s.backupRunning {
		s.backupMutex.Unlock()
		logrus.Warn("Backup do workspace já está em execução")
		return nil
	}
	s.backupRunning = true
	s.lastBackupStartedAt = time.Now()
	s.backupMutex.Unlock()

	defer func() {
		s.backupMutex.Lock()
		s.backupRunning = false
		s.lastBackupEndedAt = time.Now()
		s.backupMutex.Unlock()
	}()

	logrus.Info("Iniciando backup do workspace")

	if err := s.offerService.BackupNow(); err != nil {
		return err
	}

	logrus.Info("Backup do workspace concluído")
	return nil
}

// TriggerManualBackup dispara um backup fora do horário agendado
func (s *SnapshotBackupService) TriggerManualBackup() {
	s.backupMutex.Lock()
	if s.backupRunning {
		s.backupMutex.Unlock()
		logrus.Info("Backup do workspace já em andamento, ignorando solicitação manual")
		return
	}
	s.backupMutex.Unlock()

	logrus.Info("Iniciando backup manual do workspace")
	go func() {
		if err := s.RunBackup(); err != nil {
			logrus.WithError(err).Error("Erro no backup manual do workspace")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *SnapshotBackupService) GetStatus() map[string]any {
	s.backupMutex.Lock()
	defer s.backupMutex.Unlock()

	return map[string]any{
		"backup_enabled":         s.config.Enabled,
		"backup_cron":            s.config.CronSchedule,
		"backup_retention":       s.config.Retention,
		"backup_running":         s.backupRunning,
		"last_backup_started_at": s.lastBackupStartedAt,
		"last_backup_ended_at":   s.lastBackupEndedAt,
	}
}
