package repository

import (
	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/estatecerenti/umkm-monitoring-api/infrastructure/database/postgres"
	"github.com/estatecerenti/umkm-monitoring-api/internal/domain"
)

const bookkeepingTable = "bookkeeping_entries"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// BookkeepingRepository holds the owner-submitted monitoring entries, keyed
// by submitter and entry id. Reads are whole-subtree snapshots: the
// reconciliation engine always consumes the full set.
type BookkeepingRepository interface {
	Snapshot() (domain.BookkeepingSnapshot, error)
	DeleteEntry(submitterRef, entryID string) error
}

type bookkeepingRepository struct {
	conn *postgres.Connection
}

func NewBookkeepingRepository(conn *postgres.Connection) BookkeepingRepository {
	return &bookkeepingRepository{
		conn: conn,
	}
}

func (r *bookkeepingRepository) Snapshot() (domain.BookkeepingSnapshot, error) {
	queryBuilder := squirrel.
		Select("submitter_ref", "entry_id", "payload").
		From(bookkeepingTable).
		OrderBy("submitter_ref ASC", "entry_id ASC").
		PlaceholderFormat(squirrel.Dollar)

	entriesSQL, entriesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(entriesSQL, entriesArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snapshot := make(domain.BookkeepingSnapshot)
	for rows.Next() {
		var (
			submitterRef string
			entryID      string
			payload      []byte
		)
		if err := rows.Scan(&submitterRef, &entryID, &payload); err != nil {
			return nil, err
		}

		var record domain.RawMonitoringRecord
		if err := json.Unmarshal(payload, &record); err != nil {
			logrus.Warnf("skipping undecodable bookkeeping entry %s/%s: %v", submitterRef, entryID, err)
			continue
		}

		if snapshot[submitterRef] == nil {
			snapshot[submitterRef] = make(map[string]*domain.RawMonitoringRecord)
		}
		snapshot[submitterRef][entryID] = &record
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return snapshot, nil
}

func (r *bookkeepingRepository) DeleteEntry(submitterRef, entryID string) error {
	queryBuilder := squirrel.
		Delete(bookkeepingTable).
		Where(squirrel.Eq{"submitter_ref": submitterRef, "entry_id": entryID}).
		PlaceholderFormat(squirrel.Dollar)

	deleteSQL, deleteArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(deleteSQL, deleteArgs...)
	return err
}
