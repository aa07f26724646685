package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/estatecerenti/umkm-monitoring-api/infrastructure/database/postgres"
	"github.com/estatecerenti/umkm-monitoring-api/internal/domain"
)

const mseRecordsTable = "mse_records"

// MSERecordRepository holds the admin-entered monitoring records. The full
// form payload is stored as one document per record; a comparison payload
// can be attached to an existing record later.
type MSERecordRepository interface {
	Snapshot() (domain.ManualSnapshot, error)
	Get(recordID string) (*domain.RawMonitoringRecord, error)
	Save(record *domain.RawMonitoringRecord) error
	Update(record *domain.RawMonitoringRecord) error
	Delete(recordID string) error
	AttachComparison(recordID string, payload jsoniter.RawMessage, comparisonDate string) error
}

type mseRecordRepository struct {
	conn *postgres.Connection
}

func NewMSERecordRepository(conn *postgres.Connection) MSERecordRepository {
	return &mseRecordRepository{
		conn: conn,
	}
}

func (r *mseRecordRepository) Snapshot() (domain.ManualSnapshot, error) {
	queryBuilder := squirrel.
		Select("record_id", "payload").
		From(mseRecordsTable).
		OrderBy("record_id ASC").
		PlaceholderFormat(squirrel.Dollar)

	recordsSQL, recordsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(recordsSQL, recordsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snapshot := make(domain.ManualSnapshot)
	for rows.Next() {
		var (
			recordID string
			payload  []byte
		)
		if err := rows.Scan(&recordID, &payload); err != nil {
			return nil, err
		}

		var record domain.RawMonitoringRecord
		if err := json.Unmarshal(payload, &record); err != nil {
			logrus.Warnf("skipping undecodable mse record %s: %v", recordID, err)
			continue
		}

		snapshot[recordID] = &record
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return snapshot, nil
}

func (r *mseRecordRepository) Get(recordID string) (*domain.RawMonitoringRecord, error) {
	var payload []byte
	err := r.conn.QueryRow(
		"SELECT payload FROM mse_records WHERE record_id = $1",
		recordID,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var record domain.RawMonitoringRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *mseRecordRepository) Save(record *domain.RawMonitoringRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}

	queryBuilder := squirrel.
		Insert(mseRecordsTable).
		Columns("record_id", "payload").
		Values(record.ID, payload).
		PlaceholderFormat(squirrel.Dollar)

	insertSQL, insertArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(insertSQL, insertArgs...)
	return err
}

func (r *mseRecordRepository) Update(record *domain.RawMonitoringRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}

	queryBuilder := squirrel.
		Update(mseRecordsTable).
		Set("payload", payload).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"record_id": record.ID}).
		PlaceholderFormat(squirrel.Dollar)

	updateSQL, updateArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.Exec(updateSQL, updateArgs...)
	if err != nil {
		return err
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *mseRecordRepository) Delete(recordID string) error {
	queryBuilder := squirrel.
		Delete(mseRecordsTable).
		Where(squirrel.Eq{"record_id": recordID}).
		PlaceholderFormat(squirrel.Dollar)

	deleteSQL, deleteArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(deleteSQL, deleteArgs...)
	return err
}

// AttachComparison stores a comparison payload inside an existing record's
// document. Read-modify-write; concurrent attaches to the same record are
// last-writer-wins, same as the form it serves.
func (r *mseRecordRepository) AttachComparison(recordID string, payload jsoniter.RawMessage, comparisonDate string) error {
	record, err := r.Get(recordID)
	if err != nil {
		return err
	}
	if record == nil {
		return sql.ErrNoRows
	}

	record.ID = recordID
	record.Comparison = payload
	record.ComparisonDate = comparisonDate

	return r.Update(record)
}
