package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/estatecerenti/umkm-monitoring-api/infrastructure/database/postgres"
	"github.com/estatecerenti/umkm-monitoring-api/internal/domain"
)

const datasetsTable = "prepost_datasets"

// DatasetRepository holds the Pre-Post Test result sets. Participant rows
// stay an opaque document; only the envelope is columnar.
type DatasetRepository interface {
	ListDatasets() ([]*domain.Dataset, error)
	GetDataset(datasetID string) (*domain.Dataset, error)
	SaveDataset(dataset *domain.Dataset) error
	UpdateDataset(dataset *domain.Dataset) error
	DeleteDataset(datasetID string) error
}

type datasetRepository struct {
	conn *postgres.Connection
}

func NewDatasetRepository(conn *postgres.Connection) DatasetRepository {
	return &datasetRepository{
		conn: conn,
	}
}

func (r *datasetRepository) ListDatasets() ([]*domain.Dataset, error) {
	queryBuilder := squirrel.
		Select("dataset_id", "title", "pre_date", "post_date", "raw", "created_at_millis").
		From(datasetsTable).
		OrderBy("created_at_millis DESC").
		PlaceholderFormat(squirrel.Dollar)

	datasetsSQL, datasetsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(datasetsSQL, datasetsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var datasets []*domain.Dataset
	for rows.Next() {
		var ds domain.Dataset
		if err := rows.Scan(&ds.ID, &ds.Title, &ds.PreDate, &ds.PostDate, &ds.Raw, &ds.CreatedAt); err != nil {
			return nil, err
		}
		datasets = append(datasets, &ds)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return datasets, nil
}

func (r *datasetRepository) GetDataset(datasetID string) (*domain.Dataset, error) {
	var ds domain.Dataset
	err := r.conn.QueryRow(
		"SELECT dataset_id, title, pre_date, post_date, raw, created_at_millis FROM prepost_datasets WHERE dataset_id = $1",
		datasetID,
	).Scan(&ds.ID, &ds.Title, &ds.PreDate, &ds.PostDate, &ds.Raw, &ds.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &ds, nil
}

func (r *datasetRepository) SaveDataset(dataset *domain.Dataset) error {
	queryBuilder := squirrel.
		Insert(datasetsTable).
		Columns("dataset_id", "title", "pre_date", "post_date", "raw", "created_at_millis").
		Values(dataset.ID, dataset.Title, dataset.PreDate, dataset.PostDate, []byte(dataset.Raw), dataset.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	insertSQL, insertArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(insertSQL, insertArgs...)
	return err
}

func (r *datasetRepository) UpdateDataset(dataset *domain.Dataset) error {
	queryBuilder := squirrel.
		Update(datasetsTable).
		Set("title", dataset.Title).
		Set("pre_date", dataset.PreDate).
		Set("post_date", dataset.PostDate).
		Set("raw", []byte(dataset.Raw)).
		Where(squirrel.Eq{"dataset_id": dataset.ID}).
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

func (r *datasetRepository) DeleteDataset(datasetID string) error {
	queryBuilder := squirrel.
		Delete(datasetsTable).
		Where(squirrel.Eq{"dataset_id": datasetID}).
		PlaceholderFormat(squirrel.Dollar)

	deleteSQL, deleteArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(deleteSQL, deleteArgs...)
	return err
}
