package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/kbrerx/Centro-de-operaciones-INFINITY/infrastructure/database/postgres"
	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/domain"
)

const (
	workspacesTable       = "workspaces"
	workspaceBackupsTable = "workspace_backups"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// WorkspaceRepository persiste o estado completo de um workspace como um
// único documento JSON. Cada workspace ocupa uma linha na tabela.
type WorkspaceRepository interface {
	Load(workspaceID string) (*domain.Snapshot, error)
	Save(workspaceID string, snapshot *domain.Snapshot) error
	CopyToBackup(workspaceID string) error
	PruneBackups(workspaceID string, keep int) error
}

type workspaceRepository struct {
	conn *postgres.Connection
}

func NewWorkspaceRepository(conn *postgres.Connection) WorkspaceRepository {
	return &workspaceRepository{
		conn: conn,
	}
}

// Load busca o snapshot do workspace. Retorna (nil, nil) quando o
// workspace ainda não foi inicializado.
func (r *workspaceRepository) Load(workspaceID string) (*domain.Snapshot, error) {
	queryBuilder := squirrel.
		Select("state").
		From(workspacesTable).
		Where(squirrel.Eq{"workspace_id": workspaceID}).
		PlaceholderFormat(squirrel.Dollar)

	querySQL, queryArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	var raw []byte
	err = r.conn.QueryRow(querySQL, queryArgs...).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar o estado do workspace")
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar o estado do workspace")
	}

	snapshot.Normalize()

	return &snapshot, nil
}

// Save grava o snapshot completo, criando a linha na primeira gravação.
func (r *workspaceRepository) Save(workspaceID string, snapshot *domain.Snapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return errors.Wrap(err, "erro ao codificar o estado do workspace")
	}

	queryBuilder := squirrel.
		Insert(workspacesTable).
		Columns("workspace_id", "state", "updated_at").
		Values(workspaceID, raw, time.Now().UTC()).
		Suffix("ON CONFLICT (workspace_id) DO UPDATE SET state = EXCLUDED.state, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(squirrel.Dollar)

	querySQL, queryArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(querySQL, queryArgs...)
	if err != nil {
		return errors.Wrap(err, "erro ao gravar o estado do workspace")
	}

	return nil
}

// CopyToBackup duplica o estado atual do workspace na tabela de backups.
func (r *workspaceRepository) CopyToBackup(workspaceID string) error {
	queryBuilder := squirrel.
		Insert(workspaceBackupsTable).
		Columns("workspace_id", "state", "created_at").
		Select(squirrel.
			Select("workspace_id", "state").
			Column("?", time.Now().UTC()).
			From(workspacesTable).
			Where(squirrel.Eq{"workspace_id": workspaceID}),
		).
		PlaceholderFormat(squirrel.Dollar)

	querySQL, queryArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(querySQL, queryArgs...)
	if err != nil {
		return errors.Wrap(err, "erro ao copiar o estado para backup")
	}

	return nil
}

// PruneBackups mantém apenas os N backups mais recentes do workspace.
func (r *workspaceRepository) PruneBackups(workspaceID string, keep int) error {
	if keep <= 0 {
		return nil
	}

	querySQL := `
		DELETE FROM workspace_backups
		WHERE workspace_id = $1
		AND id NOT IN (
			SELECT id FROM workspace_backups
			WHERE workspace_id = $1
			ORDER BY created_at DESC
			LIMIT $2
		)`

	_, err := r.conn.Exec(querySQL, workspaceID, keep)
	if err != nil {
		return errors.Wrap(err, "erro ao remover backups antigos")
	}

	return nil
}
