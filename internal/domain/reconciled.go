package domain

// ReconciledTimeline is the computed view of one business identity: the most
// current record plus its comparison points, never persisted.
type ReconciledTimeline struct {
	Identity         string               `json:"identity"`
	Latest           *MonitoringRecord    `json:"latest"`
	ComparisonSeries []ComparisonSnapshot `json:"comparisonSeries"`
	EffectiveDate    string               `json:"effectiveDate"`
}

// ChartPoint is one observation of the widened trend series.
type ChartPoint struct {
	Date          string  `json:"tanggal"`
	Revenue       float64 `json:"omset"`
	Production    float64 `json:"produksi"`
	OperatingCost float64 `json:"biaya"`
	FixedLabor    float64 `json:"tenagaKerjaTetap"`
	CasualLabor   float64 `json:"tenagaKerjaTidakTetap"`
	Profit        float64 `json:"laba"`
}

// DerivedFinancials is the server-side recompute of the read-only form
// fields, returned both to the editing client and applied before persisting.
type DerivedFinancials struct {
	TotalProduction    float64             `json:"totalProduksi"`
	TotalOperatingCost float64             `json:"totalBiaya"`
	NetProfit          float64             `json:"labaBersih"`
	Classification     string              `json:"klasifikasi"`
	Sections           []MonitoringSection `json:"monitoring"`
}

// ExportRow is one spreadsheet line of the monitoring export. Identity cells
// repeat per row; the writer merges them vertically per group.
type ExportRow struct {
	OwnerName    string
	BusinessName string
	Village      string
	RecordDate   string
	SectionName  string
	ItemLabel    string
	ItemValue    string
}

// ExportGroup is the block of rows belonging to one reconciled identity,
// with the span of identity cells to merge.
type ExportGroup struct {
	Rows []ExportRow
	Span int
}
