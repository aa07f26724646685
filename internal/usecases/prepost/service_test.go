package prepost

import (
	"context"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/estatecerenti/umkm-monitoring-api/infrastructure/repository/mocks"
	"github.com/estatecerenti/umkm-monitoring-api/internal/domain"
)

func newServiceWithMocks(t *testing.T) (DatasetManager, *mocks.MockDatasetRepository, *mocks.MockActivityLogRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)

	datasetRepo := mocks.NewMockDatasetRepository(ctrl)
	logRepo := mocks.NewMockActivityLogRepository(ctrl)

	return NewService(datasetRepo, logRepo), datasetRepo, logRepo
}

func TestListDatasets_SummarizesParticipants(t *testing.T) {
	service, datasetRepo, _ := newServiceWithMocks(t)

	datasetRepo.EXPECT().ListDatasets().Return([]*domain.Dataset{
		{
			ID:    "ds-1",
			Title: "Pelatihan Pembukuan",
			Raw:   jsoniter.RawMessage(`[{"nama":"Siti"},{"nama":"Budi"}]`),
		},
		{
			ID:    "ds-2",
			Title: "Pelatihan Pemasaran",
			Raw:   jsoniter.RawMessage(`[]`),
		},
	}, nil)

	summaries, err := service.ListDatasets()
	assert.NoError(t, err)
	assert.Len(t, summaries, 2)
	assert.Equal(t, 2, summaries[0].ParticipantCount)
	assert.Equal(t, 0, summaries[1].ParticipantCount)
}

func TestCreateDataset(t *testing.T) {
	service, datasetRepo, logRepo := newServiceWithMocks(t)

	var saved *domain.Dataset
	datasetRepo.EXPECT().SaveDataset(gomock.Any()).DoAndReturn(func(ds *domain.Dataset) error {
		saved = ds
		return nil
	})
	logRepo.EXPECT().Append(gomock.Any()).Return(nil)

	input := &DatasetInput{
		Title:    "Pelatihan Pembukuan",
		PreDate:  "2024-01-10",
		PostDate: "2024-01-24",
	}

	created, err := service.CreateDataset(context.Background(), input, "Admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotZero(t, created.CreatedAt)

	// A missing payload is stored as an empty list, not null.
	assert.Equal(t, jsoniter.RawMessage("[]"), saved.Raw)
}

func TestCreateDataset_RequiresTitle(t *testing.T) {
	service, _, _ := newServiceWithMocks(t)

	_, err := service.CreateDataset(context.Background(), &DatasetInput{}, "Admin")
	assert.ErrorIs(t, err, ErrMissingTitle)
}

func TestUpdateDataset_KeepsRawWhenOmitted(t *testing.T) {
	service, datasetRepo, logRepo := newServiceWithMocks(t)

	existing := &domain.Dataset{
		ID:    "ds-1",
		Title: "Lama",
		Raw:   jsoniter.RawMessage(`[{"nama":"Siti"}]`),
	}
	datasetRepo.EXPECT().GetDataset("ds-1").Return(existing, nil)

	var updated *domain.Dataset
	datasetRepo.EXPECT().UpdateDataset(gomock.Any()).DoAndReturn(func(ds *domain.Dataset) error {
		updated = ds
		return nil
	})
	logRepo.EXPECT().Append(gomock.Any()).Return(nil)

	err := service.UpdateDataset(context.Background(), "ds-1", &DatasetInput{Title: "Baru"}, "Admin")
	assert.NoError(t, err)
	assert.Equal(t, "Baru", updated.Title)
	assert.Equal(t, jsoniter.RawMessage(`[{"nama":"Siti"}]`), updated.Raw)
}

func TestDeleteDataset_Unknown(t *testing.T) {
	service, datasetRepo, _ := newServiceWithMocks(t)

	datasetRepo.EXPECT().GetDataset("missing").Return(nil, nil)

	err := service.DeleteDataset(context.Background(), "missing", "Admin")
	assert.ErrorIs(t, err, ErrDatasetNotFound)
}
