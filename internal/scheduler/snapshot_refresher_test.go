package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/estatecerenti/umkm-monitoring-api/infrastructure/repository/mocks"
	"github.com/estatecerenti/umkm-monitoring-api/internal/config"
	"github.com/estatecerenti/umkm-monitoring-api/internal/domain"
)

func newRefresherWithMocks(t *testing.T) (*SnapshotRefresher, *mocks.MockBookkeepingRepository, *mocks.MockMSERecordRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	bookkeepingRepo := mocks.NewMockBookkeepingRepository(ctrl)
	mseRecordRepo := mocks.NewMockMSERecordRepository(ctrl)

	appConfig := &config.Config{
		SnapshotRefresh: config.SnapshotRefresh{Enabled: false},
	}

	return NewSnapshotRefresher(bookkeepingRepo, mseRecordRepo, appConfig), bookkeepingRepo, mseRecordRepo
}

func TestSnapshotRefresher_Refresh(t *testing.T) {
	refresher, bookkeepingRepo, mseRecordRepo := newRefresherWithMocks(t)

	bookkeepingRepo.EXPECT().Snapshot().Return(domain.BookkeepingSnapshot{
		"uid1": {
			"e1": &domain.RawMonitoringRecord{
				Meta: domain.RecordMeta{OwnerName: "Siti", BusinessName: "Keripik", RecordDate: "2024-01-10"},
			},
		},
	}, nil)
	mseRecordRepo.EXPECT().Snapshot().Return(domain.ManualSnapshot{
		"m1": &domain.RawMonitoringRecord{
			Meta: domain.RecordMeta{OwnerName: "Siti", BusinessName: "Keripik", RecordDate: "2024-02-10"},
		},
	}, nil)

	err := refresher.Refresh(context.Background())
	assert.NoError(t, err)

	timelines, batch := refresher.Current()
	assert.Len(t, batch, 2)
	assert.Len(t, timelines, 1)
	assert.Equal(t, "m1", timelines[0].Latest.ID)
	assert.Equal(t, domain.SourceAdmin, timelines[0].Latest.Source)

	_, ready := refresher.RefreshedAt()
	assert.True(t, ready)
}

func TestSnapshotRefresher_RefreshKeepsPreviousResultOnError(t *testing.T) {
	refresher, bookkeepingRepo, mseRecordRepo := newRefresherWithMocks(t)

	bookkeepingRepo.EXPECT().Snapshot().Return(domain.BookkeepingSnapshot{}, nil)
	mseRecordRepo.EXPECT().Snapshot().Return(domain.ManualSnapshot{
		"m1": &domain.RawMonitoringRecord{
			Meta: domain.RecordMeta{OwnerName: "Budi", BusinessName: "Madu", RecordDate: "2024-03-01"},
		},
	}, nil)

	assert.NoError(t, refresher.Refresh(context.Background()))

	bookkeepingRepo.EXPECT().Snapshot().Return(nil, errors.New("connection reset"))

	err := refresher.Refresh(context.Background())
	assert.Error(t, err)

	timelines, _ := refresher.Current()
	assert.Len(t, timelines, 1, "failed pass must not clear the previous result")
}

func TestSnapshotRefresher_TriggerCoalesces(t *testing.T) {
	refresher, _, _ := newRefresherWithMocks(t)

	refresher.Trigger()
	refresher.Trigger()
	refresher.Trigger()

	assert.Len(t, refresher.trigger, 1)
}
