package xlsexport

import (
	"testing"
	"time"

	"ats-backend/models"
	reportsapimodels "ats-backend/models/api/reports"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportPipeline(t *testing.T) {
	buf, err := impl{}.ExportPipeline("Go Developer", []reportsapimodels.PipelineRow{
		{
			CandidateName:  "Asha",
			CandidateEmail: "asha@example.com",
			StageName:      "Round 1",
			Status:         models.ProgressStatusCompleted,
			Decision:       models.DecisionMoveNext,
			UpdatedAt:      time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
		},
	})
	require.Nil(t, err)

	f, err := excelize.OpenReader(buf)
	require.Nil(t, err)
	defer f.Close()
	rows, err := f.GetRows(sheetName)
	require.Nil(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "Go Developer", rows[0][0])
	require.Equal(t, pipelineHeaders, rows[1])
	require.Equal(t, []string{"Asha", "asha@example.com", "Round 1", "COMPLETED", "MOVE_NEXT", "2024-05-01 10:30"}, rows[2])
}
