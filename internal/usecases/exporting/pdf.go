package exporting

import (
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/estatecerenti/umkm-monitoring-api/internal/domain"
)

// WriteMonitoringPDF renders one monitoring form as a PDF: the business
// header followed by each section and its line items.
func WriteMonitoringPDF(w io.Writer, meta domain.RecordMeta, sections []domain.MonitoringSection) error {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Halaman {current} dari {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, "Formulir Monitoring UMKM", props.Text{
			Size:  16,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)

	headerRows := [][2]string{
		{"Nama Mitra", meta.OwnerName},
		{"Nama Usaha", meta.BusinessName},
		{"No. HP / WA", meta.ContactPhone},
		{"Desa", meta.Village},
		{"Kota/Kabupaten", meta.City},
		{"Estate", meta.EstateUnit},
		{"Nama CDO", meta.FieldOfficerName},
		{"Tanggal Monitoring", meta.RecordDate},
		{"Klasifikasi", meta.Classification},
	}

	for _, hr := range headerRows {
		m.AddRow(6,
			text.NewCol(4, hr[0], props.Text{Size: 9, Style: fontstyle.Bold}),
			text.NewCol(8, orDash(hr[1]), props.Text{Size: 9}),
		)
	}

	for _, section := range sections {
		m.AddRow(9,
			text.NewCol(12, section.Name, props.Text{
				Size:  10,
				Style: fontstyle.Bold,
				Top:   3,
			}),
		)

		if len(section.Items) == 0 {
			m.AddRow(6, text.NewCol(12, "-", props.Text{Size: 9}))
			continue
		}

		for _, item := range section.Items {
			m.AddRow(6,
				text.NewCol(6, orDash(item.Label), props.Text{Size: 9}),
				text.NewCol(6, orDash(item.Value), props.Text{Size: 9, Align: align.Right}),
			)
		}
	}

	m.AddRow(8, col.New(12))

	document, err := m.Generate()
	if err != nil {
		return err
	}

	_, err = w.Write(document.GetBytes())
	return err
}
