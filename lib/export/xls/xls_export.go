package xlsexport

import (
	"bytes"

	reportsapimodels "ats-backend/models/api/reports"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportPipeline(requirementTitle string, list []reportsapimodels.PipelineRow) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const sheetName = "Pipeline"

var pipelineHeaders = []string{"Candidate", "E-mail", "Stage", "Status", "Decision", "Updated"}

func (i impl) ExportPipeline(requirementTitle string, list []reportsapimodels.PipelineRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("unable to close xlsx file")
		}
	}()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, errors.Wrap(err, "unable to rename sheet")
	}
	row := 1
	if err := writeColumn(f, sheetName, 1, row, requirementTitle); err != nil {
		return nil, errors.Wrap(err, "unable to write title")
	}
	err := setRangeStyle(f, sheetName, 1, row, 1, row, &excelize.Style{
		Font: &excelize.Font{Bold: true, Family: fontFamily, Size: 14},
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to style title")
	}
	row, err = writeHeader(f, sheetName, row, pipelineHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "unable to write xlsx header")
	}
	if len(list) != 0 {
		if _, err = writePipelineData(f, sheetName, list, row); err != nil {
			return nil, errors.Wrap(err, "unable to write xlsx data")
		}
	}
	return f.WriteToBuffer()
}

func writePipelineData(f *excelize.File, sheet string, list []reportsapimodels.PipelineRow, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(pipelineHeaders), row+len(list)); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		updated := ""
		if !item.UpdatedAt.IsZero() {
			updated = item.UpdatedAt.Format("2006-01-02 15:04")
		}
		err := writeRow(f, sheet, row,
			item.CandidateName,
			item.CandidateEmail,
			item.StageName,
			string(item.Status),
			string(item.Decision),
			updated,
		)
		if err != nil {
			return row, err
		}
	}
	return row, nil
}
