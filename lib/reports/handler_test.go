package reports

import (
	"bytes"
	"testing"

	xlsexport "ats-backend/lib/export/xls"
	"ats-backend/lib/notify"
	"ats-backend/lib/pipeline"
	stagestore "ats-backend/lib/requirement/stage-store"
	apperrors "ats-backend/lib/utils/app-errors"
	testdb "ats-backend/lib/utils/test-db"
	"ats-backend/models"
	dbmodels "ats-backend/models/db"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	conn        *gorm.DB
	provider    Provider
	client      dbmodels.Client
	requirement dbmodels.Requirement
	stages      []dbmodels.RequirementStage
	asha        dbmodels.Candidate
	ravi        dbmodels.Candidate
}

func getInstance(t *testing.T) fixture {
	conn := testdb.New(t)
	xlsexport.NewHandler()
	f := fixture{conn: conn}
	f.provider = NewInstance(conn, pipeline.NewInstance(conn, &notify.Recorder{}), xlsexport.Instance)

	f.client = dbmodels.Client{Name: "Acme", Status: models.ClientStatusActive}
	require.Nil(t, conn.Create(&f.client).Error)
	require.Nil(t, conn.Create(&dbmodels.Client{Name: "Dormant", Status: models.ClientStatusInactive}).Error)
	f.requirement = dbmodels.Requirement{ClientID: f.client.ID, Title: "Go Developer", Location: "Pune", NoOfRounds: 2, Status: models.RequirementStatusOpen}
	require.Nil(t, conn.Create(&f.requirement).Error)
	require.Nil(t, conn.Create(&dbmodels.Requirement{ClientID: f.client.ID, Title: "Legacy", Location: "Delhi", NoOfRounds: 7, Status: models.RequirementStatusOpen}).Error)
	require.Nil(t, conn.Create(&dbmodels.Requirement{ClientID: f.client.ID, Title: "Done", Location: "Delhi", NoOfRounds: 1, Status: models.RequirementStatusClosed}).Error)
	require.Nil(t, conn.Create(&dbmodels.RequirementAllocation{RequirementID: f.requirement.ID, RecruiterID: "rec-1", AssignedBy: "adm-1"}).Error)

	var err error
	f.stages, err = stagestore.NewInstance(conn).CreateRounds(f.requirement.ID, 2, nil)
	require.Nil(t, err)

	f.asha = dbmodels.Candidate{Name: "Asha Rao", Email: "asha@example.com"}
	require.Nil(t, conn.Create(&f.asha).Error)
	f.ravi = dbmodels.Candidate{Name: "Ravi", Email: "ravi@example.com"}
	require.Nil(t, conn.Create(&f.ravi).Error)

	f.addProgress(t, f.asha.ID, f.stages[0], models.ProgressStatusCompleted)
	f.addProgress(t, f.asha.ID, f.stages[1], models.ProgressStatusCompleted)
	f.addProgress(t, f.ravi.ID, f.stages[0], models.ProgressStatusInProgress)
	require.Nil(t, conn.Create(&dbmodels.CandidateProgress{
		CandidateID:   f.ravi.ID,
		RequirementID: f.requirement.ID,
		StageID:       dbmodels.PipelineStageID,
		StageName:     models.StageLabelManualReview,
		Status:        models.ProgressStatusReviewRequired,
		Decision:      models.DecisionNone,
	}).Error)
	return f
}

func (f fixture) addProgress(t *testing.T, candidateID string, stage dbmodels.RequirementStage, status models.ProgressStatus) {
	require.Nil(t, f.conn.Create(&dbmodels.CandidateProgress{
		CandidateID:   candidateID,
		RequirementID: f.requirement.ID,
		StageID:       stage.ID,
		StageName:     stage.StageName,
		Status:        status,
		Decision:      models.DecisionMoveNext,
	}).Error)
}

func TestDashboardStats(t *testing.T) {
	f := getInstance(t)
	stats, err := f.provider.DashboardStats()
	require.Nil(t, err)
	require.EqualValues(t, 3, stats.TotalRequirements)
	require.EqualValues(t, 2, stats.OpenRequirements)
	require.EqualValues(t, 1, stats.ClosedRequirements)
	require.EqualValues(t, 1, stats.AssignedRequirements)
	require.EqualValues(t, 1, stats.Urgent)
	require.EqualValues(t, 1, stats.PendingReview)
	require.Equal(t, 33.33, stats.ClosedGrowthPercent)
}

func TestGlobalStats(t *testing.T) {
	f := getInstance(t)
	stats, err := f.provider.GlobalStats()
	require.Nil(t, err)
	require.EqualValues(t, 3, stats.Requirements.Total)
	require.EqualValues(t, 2, stats.Requirements.Open)
	require.EqualValues(t, 2, stats.Candidates)
	require.EqualValues(t, 1, stats.Selections)
	require.Len(t, stats.ClientStats, 2)
	require.Equal(t, "Acme", stats.ClientStats[0].ClientName)
	require.EqualValues(t, 3, stats.ClientStats[0].ReqCount)
	require.EqualValues(t, 0, stats.ClientStats[1].ReqCount)
}

func TestRequirementStats(t *testing.T) {
	f := getInstance(t)
	stats, err := f.provider.RequirementStats(f.requirement.ID)
	require.Nil(t, err)
	require.Equal(t, "Go Developer", stats.Requirement.Title)
	require.EqualValues(t, 2, stats.TotalCandidates)
	require.EqualValues(t, 1, stats.SelectedCandidates)
	for _, stat := range stats.Stats {
		require.NotContains(t, models.ManualStageLabels, stat.StageName)
	}
	require.Len(t, stats.Stats, 3)

	_, err = f.provider.RequirementStats("missing")
	require.True(t, apperrors.IsNotFound(err))
}

func TestStageCandidates(t *testing.T) {
	f := getInstance(t)
	list, err := f.provider.StageCandidates(f.requirement.ID, f.stages[0].StageName)
	require.Nil(t, err)
	require.Len(t, list, 2)

	_, err = f.provider.StageCandidates(f.requirement.ID, " ")
	require.True(t, apperrors.IsValidation(err))
}

func TestClients(t *testing.T) {
	f := getInstance(t)
	clients, err := f.provider.ActiveClients()
	require.Nil(t, err)
	require.Len(t, clients, 1)
	list, err := f.provider.ClientRequirements(f.client.ID)
	require.Nil(t, err)
	require.Len(t, list, 3)
}

func TestExports(t *testing.T) {
	f := getInstance(t)
	t.Run("pipeline xlsx", func(t *testing.T) {
		buf, name, err := f.provider.ExportRequirementXls(f.requirement.ID)
		require.Nil(t, err)
		require.Equal(t, "pipeline_Go_Developer.xlsx", name)
		require.NotZero(t, buf.Len())
	})
	t.Run("tracker pdf", func(t *testing.T) {
		file, name, err := f.provider.ExportTrackerPdf(f.asha.ID)
		require.Nil(t, err)
		require.Equal(t, "tracker_Asha_Rao.pdf", name)
		require.True(t, bytes.HasPrefix(file, []byte("%PDF-")))

		_, _, err = f.provider.ExportTrackerPdf("missing")
		require.True(t, apperrors.IsNotFound(err))
	})
}
