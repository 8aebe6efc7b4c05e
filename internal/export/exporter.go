// AngelaMos | 2026
// exporter.go

package export

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/account"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/core"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/opportunity"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/quality"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/survey"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/user"
)

const (
	ContentType    = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	headerColor    = "2563EB"
	fileNameLayout = "20060102_150405"
)

type Sources struct {
	Users         user.Repository
	Accounts      account.Repository
	Opportunities opportunity.Repository
	Quality       quality.Repository
	Surveys       survey.Repository
}

// Exporter dumps every business table into one workbook, one sheet per
// table.
type Exporter struct {
	src Sources
	now func() time.Time
}

func NewExporter(src Sources) *Exporter {
	return &Exporter{src: src, now: core.Now}
}

func (e *Exporter) WithClock(now func() time.Time) *Exporter {
	e.now = now
	return e
}

// FileName is the attachment name for an export taken now.
func (e *Exporter) FileName() string {
	return "export_als_groupe_" + e.now().UTC().Format(fileNameLayout) + ".xlsx"
}

type sheet struct {
	name    string
	headers []string
	rows    func(ctx context.Context) ([][]any, error)
}

func (e *Exporter) sheets() []sheet {
	return []sheet{
		{"Utilisateurs", userHeaders, e.userRows},
		{"Clients_Prospects", accountHeaders, e.accountRows},
		{"Opportunités", opportunityHeaders, e.opportunityRows},
		{"Fiches_Qualité", recordHeaders, e.recordRows},
		{"Incidents", incidentHeaders, e.incidentRows},
		{"Enquêtes_Satisfaction", surveyHeaders, e.surveyRows},
	}
}

func (e *Exporter) Write(ctx context.Context, w io.Writer) error {
	ctx, span := core.StartSpan(ctx, "export.write")
	defer span.End()

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{headerColor},
		},
		Font: &excelize.Font{
			Bold:  true,
			Color: "FFFFFF",
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	defaultSheet := f.GetSheetName(0)

	for i, s := range e.sheets() {
		if i == 0 {
			err = f.SetSheetName(defaultSheet, s.name)
		} else {
			_, err = f.NewSheet(s.name)
		}
		if err != nil {
			return fmt.Errorf("create sheet %s: %w", s.name, err)
		}

		rows, loadErr := s.rows(ctx)
		if loadErr != nil {
			core.SetSpanError(ctx, loadErr)
			return fmt.Errorf("load %s: %w", s.name, loadErr)
		}

		if err := writeSheet(f, s, headerStyle, rows); err != nil {
			return err
		}

		core.AddSpanEvent(ctx, "sheet written",
			attribute.String("sheet", s.name),
			attribute.Int("rows", len(rows)),
		)
	}

	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	return nil
}

func writeSheet(f *excelize.File, s sheet, headerStyle int, rows [][]any) error {
	sw, err := f.NewStreamWriter(s.name)
	if err != nil {
		return fmt.Errorf("stream %s: %w", s.name, err)
	}

	header := make([]any, len(s.headers))
	for i, h := range s.headers {
		header[i] = excelize.Cell{StyleID: headerStyle, Value: h}
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("%s header: %w", s.name, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("%s row %d: %w", s.name, i+2, err)
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("%s row %d: %w", s.name, i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", s.name, err)
	}

	return nil
}

func text(p *string) any {
	return core.StringValue(p)
}

func number(p *float64) any {
	if p == nil {
		return ""
	}
	return *p
}

func integer(p *int) any {
	if p == nil {
		return ""
	}
	return *p
}

func timestamp(t *time.Time) any {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func created(t time.Time) any {
	return timestamp(&t)
}
