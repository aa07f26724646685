package prepost

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/estatecerenti/umkm-monitoring-api/infrastructure/repository"
	"github.com/estatecerenti/umkm-monitoring-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrDatasetNotFound = errors.New("dataset tidak ditemukan")
	ErrMissingTitle    = errors.New("judul dataset wajib diisi")
)

// DatasetInput is the upload payload: the envelope plus the raw participant
// rows as parsed by the console from the spreadsheet.
type DatasetInput struct {
	Title    string              `json:"title"`
	PreDate  string              `json:"preDate"`
	PostDate string              `json:"postDate"`
	Raw      jsoniter.RawMessage `json:"raw"`
}

// DatasetSummary is the list row: the envelope plus the participant count,
// without the raw rows.
type DatasetSummary struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	PreDate          string `json:"preDate"`
	PostDate         string `json:"postDate"`
	ParticipantCount int    `json:"jumlahPeserta"`
	CreatedAt        int64  `json:"createdAt"`
}

type DatasetManager interface {
	ListDatasets() ([]*DatasetSummary, error)
	GetDataset(datasetID string) (*domain.Dataset, error)
	CreateDataset(ctx context.Context, input *DatasetInput, actorName string) (*domain.Dataset, error)
	UpdateDataset(ctx context.Context, datasetID string, input *DatasetInput, actorName string) error
	DeleteDataset(ctx context.Context, datasetID, actorName string) error
}

type Service struct {
	datasetRepo repository.DatasetRepository
	logRepo     repository.ActivityLogRepository
}

func NewService(datasetRepo repository.DatasetRepository, logRepo repository.ActivityLogRepository) DatasetManager {
	return &Service{
		datasetRepo: datasetRepo,
		logRepo:     logRepo,
	}
}

func (s *Service) ListDatasets() ([]*DatasetSummary, error) {
	datasets, err := s.datasetRepo.ListDatasets()
	if err != nil {
		return nil, err
	}

	summaries := make([]*DatasetSummary, 0, len(datasets))
	for _, ds := range datasets {
		summaries = append(summaries, &DatasetSummary{
			ID:               ds.ID,
			Title:            ds.Title,
			PreDate:          ds.PreDate,
			PostDate:         ds.PostDate,
			ParticipantCount: ds.ParticipantCount(),
			CreatedAt:        ds.CreatedAt,
		})
	}

	return summaries, nil
}

func (s *Service) GetDataset(datasetID string) (*domain.Dataset, error) {
	ds, err := s.datasetRepo.GetDataset(datasetID)
	if err != nil {
		return nil, err
	}
	if ds == nil {
		return nil, ErrDatasetNotFound
	}
	return ds, nil
}

func (s *Service) CreateDataset(ctx context.Context, input *DatasetInput, actorName string) (*domain.Dataset, error) {
	if input.Title == "" {
		return nil, ErrMissingTitle
	}

	ds := &domain.Dataset{
		ID:        uuid.NewString(),
		Title:     input.Title,
		PreDate:   input.PreDate,
		PostDate:  input.PostDate,
		Raw:       input.Raw,
		CreatedAt: time.Now().UnixMilli(),
	}

	if len(ds.Raw) == 0 {
		ds.Raw = jsoniter.RawMessage("[]")
	}

	if err := s.datasetRepo.SaveDataset(ds); err != nil {
		return nil, err
	}

	s.appendLog(actorName, "Menambah dataset Pre-Post Test", ds.Title)

	return ds, nil
}

func (s *Service) UpdateDataset(ctx context.Context, datasetID string, input *DatasetInput, actorName string) error {
	if input.Title == "" {
		return ErrMissingTitle
	}

	existing, err := s.datasetRepo.GetDataset(datasetID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrDatasetNotFound
	}

	existing.Title = input.Title
	existing.PreDate = input.PreDate
	existing.PostDate = input.PostDate
	if len(input.Raw) > 0 {
		existing.Raw = input.Raw
	}

	if err := s.datasetRepo.UpdateDataset(existing); err != nil {
		return err
	}

	s.appendLog(actorName, "Mengubah dataset Pre-Post Test", existing.Title)

	return nil
}

func (s *Service) DeleteDataset(ctx context.Context, datasetID, actorName string) error {
	existing, err := s.datasetRepo.GetDataset(datasetID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrDatasetNotFound
	}

	if err := s.datasetRepo.DeleteDataset(datasetID); err != nil {
		return err
	}

	s.appendLog(actorName, "Menghapus dataset Pre-Post Test", existing.Title)

	return nil
}

func (s *Service) appendLog(actorName, action string, related any) {
	payload, err := json.Marshal(related)
	if err != nil {
		payload = nil
	}

	entry := &domain.ActivityLog{
		ID:        uuid.NewString(),
		UserName:  actorName,
		Action:    action,
		Related:   payload,
		CreatedAt: time.Now(),
	}

	if err := s.logRepo.Append(entry); err != nil {
		logrus.WithError(err).Warn("could not append activity log")
	}
}
