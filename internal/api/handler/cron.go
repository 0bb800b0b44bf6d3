package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/scheduler"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSnapshotBackup = "snapshot-backup"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	SnapshotBackupService *scheduler.SnapshotBackupService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeSnapshotBackup:
			if services.SnapshotBackupService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de backup de snapshot não disponível", nil)
				return
			}
			services.SnapshotBackupService.TriggerManualBackup()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: snapshot-backup", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		writeJSON(w, http.StatusOK, map[string]any{
			"snapshot-backup": services.SnapshotBackupService.GetStatus(),
		})
	}
}
