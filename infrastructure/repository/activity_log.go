package repository

import (
	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/estatecerenti/umkm-monitoring-api/infrastructure/database/postgres"
	"github.com/estatecerenti/umkm-monitoring-api/internal/domain"
)

const activityLogsTable = "activity_logs"

// ActivityLogRepository is append-only. Callers treat Append as best effort.
type ActivityLogRepository interface {
	Append(log *domain.ActivityLog) error
	ListLogs(limit int) ([]*domain.ActivityLog, error)
}

type activityLogRepository struct {
	conn *postgres.Connection
}

func NewActivityLogRepository(conn *postgres.Connection) ActivityLogRepository {
	return &activityLogRepository{
		conn: conn,
	}
}

func (r *activityLogRepository) Append(log *domain.ActivityLog) error {
	queryBuilder := squirrel.
		Insert(activityLogsTable).
		Columns("log_id", "user_name", "action", "related", "created_at").
		Values(log.ID, log.UserName, log.Action, []byte(log.Related), log.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	insertSQL, insertArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(insertSQL, insertArgs...)
	return err
}

func (r *activityLogRepository) ListLogs(limit int) ([]*domain.ActivityLog, error) {
	queryBuilder := squirrel.
		Select("log_id", "user_name", "action", "related", "created_at").
		From(activityLogsTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	logsSQL, logsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(logsSQL, logsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*domain.ActivityLog
	for rows.Next() {
		var entry domain.ActivityLog
		var related []byte
		if err := rows.Scan(&entry.ID, &entry.UserName, &entry.Action, &related, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entry.Related = related
		logs = append(logs, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}
