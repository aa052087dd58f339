package pdfexport

import (
	"bytes"
	"fmt"
	"time"

	pipelineapimodels "ats-backend/models/api/pipeline"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

const (
	fontFamily = "Arial"
	lineHeight = 7.0
)

var stageColumns = []struct {
	title string
	width float64
}{
	{"#", 12},
	{"Stage", 68},
	{"Status", 38},
	{"Decision", 32},
	{"Updated", 40},
}

// GenerateTracker renders the stage tracker of one candidate over all requirements.
func GenerateTracker(candidateName string, items []pipelineapimodels.TrackerItem) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateTracker panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(fmt.Sprintf("Candidate tracker - %s", candidateName), true)
	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", 16)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Candidate tracker: %s", candidateName)), "", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s", time.Now().Format("2006-01-02 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	if len(items) == 0 {
		pdf.SetFont(fontFamily, "I", 11)
		pdf.CellFormat(0, lineHeight, "The candidate is not mapped to any requirement.", "", 1, "L", false, 0, "")
	}
	for _, item := range items {
		writeRequirement(pdf, tr, item)
	}
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRequirement(pdf *fpdf.Fpdf, tr func(string) string, item pipelineapimodels.TrackerItem) {
	pdf.SetFont(fontFamily, "B", 12)
	title := item.Requirement.Title
	if item.Requirement.Location != "" {
		title = fmt.Sprintf("%s (%s)", title, item.Requirement.Location)
	}
	pdf.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")
	if item.Current != nil {
		pdf.SetFont(fontFamily, "", 10)
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("Current: %s - %s", item.Current.StageName, item.Current.Status)), "", 1, "L", false, 0, "")
	}

	pdf.SetFont(fontFamily, "B", 10)
	pdf.SetFillColor(217, 225, 242)
	for _, col := range stageColumns {
		pdf.CellFormat(col.width, lineHeight, col.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(fontFamily, "", 10)
	for _, stage := range item.Stages {
		updated := "-"
		if stage.UpdatedAt != nil {
			updated = stage.UpdatedAt.Format("2006-01-02 15:04")
		}
		values := []string{
			fmt.Sprintf("%d", stage.StageOrder),
			tr(stage.StageName),
			string(stage.Status),
			string(stage.Decision),
			updated,
		}
		for idx, col := range stageColumns {
			pdf.CellFormat(col.width, lineHeight, values[idx], "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(6)
}
