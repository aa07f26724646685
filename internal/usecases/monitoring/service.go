package monitoring

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/estatecerenti/umkm-monitoring-api/infrastructure/repository"
	"github.com/estatecerenti/umkm-monitoring-api/internal/domain"
	"github.com/estatecerenti/umkm-monitoring-api/internal/usecases/reconciling"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrRecordNotFound = errors.New("data monitoring tidak ditemukan")

// SnapshotSource is the reconciled-result holder the service reads from and
// notifies after writes.
type SnapshotSource interface {
	Current() ([]*domain.ReconciledTimeline, []*domain.MonitoringRecord)
	Trigger()
}

// ListItem is one row of the monitoring table.
type ListItem struct {
	ID              string            `json:"id"`
	Source          string            `json:"sumber"`
	Meta            domain.RecordMeta `json:"meta"`
	EffectiveDate   string            `json:"effectiveDate"`
	ComparisonCount int               `json:"jumlahPerbandingan"`
}

// Detail is the full view of one reconciled identity.
type Detail struct {
	ID               string                      `json:"id"`
	Source           string                      `json:"sumber"`
	Meta             domain.RecordMeta           `json:"meta"`
	Sections         []domain.MonitoringSection  `json:"monitoring"`
	ComparisonSeries []domain.ComparisonSnapshot `json:"comparisonSeries"`
	EffectiveDate    string                      `json:"effectiveDate"`
}

// RecordInput is the admin entry form payload.
type RecordInput struct {
	Meta     domain.RecordMeta          `json:"meta"`
	Sections []domain.MonitoringSection `json:"monitoring"`
}

type Monitorer interface {
	ListMonitoring(query string) []*ListItem
	GetDetail(recordID string) (*Detail, error)
	GetChart(recordID string) ([]domain.ChartPoint, error)
	CreateRecord(ctx context.Context, input *RecordInput, actorName string) (*domain.RawMonitoringRecord, error)
	UpdateRecord(ctx context.Context, recordID string, input *RecordInput, actorName string) error
	Recalculate(sections []domain.MonitoringSection) domain.DerivedFinancials
	AttachComparison(ctx context.Context, recordID string, payload jsoniter.RawMessage, comparisonDate, actorName string) error
	DeleteMonitoring(ctx context.Context, recordID, actorName string) error
}

type Service struct {
	snapshots       SnapshotSource
	mseRecordRepo   repository.MSERecordRepository
	bookkeepingRepo repository.BookkeepingRepository
	logRepo         repository.ActivityLogRepository
}

func NewService(
	snapshots SnapshotSource,
	mseRecordRepo repository.MSERecordRepository,
	bookkeepingRepo repository.BookkeepingRepository,
	logRepo repository.ActivityLogRepository,
) Monitorer {
	return &Service{
		snapshots:       snapshots,
		mseRecordRepo:   mseRecordRepo,
		bookkeepingRepo: bookkeepingRepo,
		logRepo:         logRepo,
	}
}

// ListMonitoring returns the reconciled identities, newest first. The query
// filters on owner name, village and business name, case-insensitive.
func (s *Service) ListMonitoring(query string) []*ListItem {
	timelines, _ := s.snapshots.Current()
	query = strings.ToLower(strings.TrimSpace(query))

	items := make([]*ListItem, 0, len(timelines))
	for _, tl := range timelines {
		meta := tl.Latest.Meta
		if query != "" &&
			!strings.Contains(strings.ToLower(meta.OwnerName), query) &&
			!strings.Contains(strings.ToLower(meta.Village), query) &&
			!strings.Contains(strings.ToLower(meta.BusinessName), query) {
			continue
		}

		items = append(items, &ListItem{
			ID:              tl.Latest.ID,
			Source:          tl.Latest.Source.ProvenanceLabel(),
			Meta:            meta,
			EffectiveDate:   tl.EffectiveDate,
			ComparisonCount: len(tl.ComparisonSeries),
		})
	}

	return items
}

func (s *Service) findTimeline(recordID string) *domain.ReconciledTimeline {
	timelines, _ := s.snapshots.Current()
	for _, tl := range timelines {
		if tl.Latest.ID == recordID {
			return tl
		}
	}
	return nil
}

func (s *Service) GetDetail(recordID string) (*Detail, error) {
	tl := s.findTimeline(recordID)
	if tl == nil {
		return nil, ErrRecordNotFound
	}

	meta, sections := reconciling.DetailView(tl)

	return &Detail{
		ID:               tl.Latest.ID,
		Source:           tl.Latest.Source.ProvenanceLabel(),
		Meta:             meta,
		Sections:         sections,
		ComparisonSeries: tl.ComparisonSeries,
		EffectiveDate:    tl.EffectiveDate,
	}, nil
}

func (s *Service) GetChart(recordID string) ([]domain.ChartPoint, error) {
	_, batch := s.snapshots.Current()
	for _, rec := range batch {
		if rec.ID == recordID {
			return reconciling.ChartSeries(rec, batch), nil
		}
	}
	return nil, ErrRecordNotFound
}

// CreateRecord persists a new admin entry. Derived fields are recomputed
// server-side before the write so a stale client cannot store inconsistent
// totals.
func (s *Service) CreateRecord(ctx context.Context, input *RecordInput, actorName string) (*domain.RawMonitoringRecord, error) {
	record := s.applyDerived(input)
	record.ID = uuid.NewString()
	record.CreatedAt = time.Now().UnixMilli()

	if err := s.mseRecordRepo.Save(record); err != nil {
		return nil, err
	}

	s.appendLog(actorName, "Menambah data monitoring", record.Meta)
	s.snapshots.Trigger()

	return record, nil
}

func (s *Service) UpdateRecord(ctx context.Context, recordID string, input *RecordInput, actorName string) error {
	existing, err := s.mseRecordRepo.Get(recordID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrRecordNotFound
	}

	record := s.applyDerived(input)
	record.ID = recordID
	record.CreatedAt = existing.CreatedAt
	// An attached comparison survives a form edit.
	record.Comparison = existing.Comparison
	record.ComparisonDate = existing.ComparisonDate

	if err := s.mseRecordRepo.Update(record); err != nil {
		return err
	}

	s.appendLog(actorName, "Mengubah data monitoring", record.Meta)
	s.snapshots.Trigger()

	return nil
}

func (s *Service) Recalculate(sections []domain.MonitoringSection) domain.DerivedFinancials {
	return reconciling.RecalculateDerived(sections)
}

func (s *Service) applyDerived(input *RecordInput) *domain.RawMonitoringRecord {
	derived := reconciling.RecalculateDerived(input.Sections)

	meta := input.Meta
	meta.NetProfit = domain.Amount(derived.NetProfit)
	meta.Classification = derived.Classification

	return &domain.RawMonitoringRecord{
		Meta:     meta,
		Sections: derived.Sections,
	}
}

func (s *Service) AttachComparison(ctx context.Context, recordID string, payload jsoniter.RawMessage, comparisonDate, actorName string) error {
	if err := s.mseRecordRepo.AttachComparison(recordID, payload, comparisonDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRecordNotFound
		}
		return err
	}

	s.appendLog(actorName, "Menambah data perbandingan", map[string]string{"id": recordID, "tanggal": comparisonDate})
	s.snapshots.Trigger()

	return nil
}

// DeleteMonitoring removes the record behind a reconciled row, routing the
// delete to the store it came from.
func (s *Service) DeleteMonitoring(ctx context.Context, recordID, actorName string) error {
	_, batch := s.snapshots.Current()

	var target *domain.MonitoringRecord
	for _, rec := range batch {
		if rec.ID == recordID {
			target = rec
			break
		}
	}
	if target == nil {
		return ErrRecordNotFound
	}

	var err error
	if target.Source == domain.SourceOwner {
		err = s.bookkeepingRepo.DeleteEntry(target.SubmitterRef, target.ID)
	} else {
		err = s.mseRecordRepo.Delete(target.ID)
	}
	if err != nil {
		return err
	}

	s.appendLog(actorName, "Menghapus data monitoring", target.Meta)
	s.snapshots.Trigger()

	return nil
}

// appendLog writes an activity log entry, best effort.
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
