package pipeline

import (
	"ats-backend/lib/notify"
	stagestore "ats-backend/lib/requirement/stage-store"
	apperrors "ats-backend/lib/utils/app-errors"
	testdb "ats-backend/lib/utils/test-db"
	"ats-backend/models"
	pipelineapimodels "ats-backend/models/api/pipeline"
	dbmodels "ats-backend/models/db"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	conn        *gorm.DB
	notifier    *notify.Recorder
	provider    Provider
	requirement dbmodels.Requirement
	candidate   dbmodels.Candidate
}

func getInstance(t *testing.T, rounds int) fixture {
	conn := testdb.New(t)
	f := fixture{
		conn:     conn,
		notifier: &notify.Recorder{},
	}
	f.provider = NewInstance(conn, f.notifier)

	client := dbmodels.Client{Name: "Acme", Status: models.ClientStatusActive}
	require.Nil(t, conn.Create(&client).Error)
	f.requirement = dbmodels.Requirement{
		ClientID:   client.ID,
		Title:      "Backend Engineer",
		Location:   "Hyderabad",
		NoOfRounds: rounds,
		Status:     models.RequirementStatusOpen,
	}
	require.Nil(t, conn.Create(&f.requirement).Error)
	if rounds > 0 {
		_, err := stagestore.NewInstance(conn).CreateRounds(f.requirement.ID, rounds, nil)
		require.Nil(t, err)
	}
	f.candidate = dbmodels.Candidate{Name: "Asha Rao", Email: "asha@example.com"}
	require.Nil(t, conn.Create(&f.candidate).Error)
	return f
}

func (f fixture) count(t *testing.T, model interface{}) int64 {
	var count int64
	require.Nil(t, f.conn.Model(model).
		Where("candidate_id = ? and requirement_id = ?", f.candidate.ID, f.requirement.ID).
		Count(&count).Error)
	return count
}

func (f fixture) progress(t *testing.T) []dbmodels.CandidateProgress {
	list := []dbmodels.CandidateProgress{}
	require.Nil(t, f.conn.
		Where("candidate_id = ? and requirement_id = ?", f.candidate.ID, f.requirement.ID).
		Order("updated_at desc").
		Find(&list).Error)
	return list
}

func TestRecruiterDecision(t *testing.T) {
	t.Run(`move next without next stage changes nothing`, func(t *testing.T) {
		f := getInstance(t, 3)
		_, err := f.provider.RecruiterDecision(pipelineapimodels.RecruiterDecision{
			CandidateID:   f.candidate.ID,
			RequirementID: f.requirement.ID,
			Decision:      models.DecisionMoveNext,
		})
		require.True(t, apperrors.IsValidation(err))
		require.EqualValues(t, 0, f.count(t, &dbmodels.CandidateProgress{}))
		require.EqualValues(t, 0, f.count(t, &dbmodels.Interview{}))
		require.Len(t, f.notifier.Events, 0)
	})
	t.Run(`invalid decision and missing fields`, func(t *testing.T) {
		f := getInstance(t, 1)
		_, err := f.provider.RecruiterDecision(pipelineapimodels.RecruiterDecision{
			CandidateID:   f.candidate.ID,
			RequirementID: f.requirement.ID,
			Decision:      models.DecisionNone,
		})
		require.True(t, apperrors.IsValidation(err))
		_, err = f.provider.RecruiterDecision(pipelineapimodels.RecruiterDecision{
			RequirementID: f.requirement.ID,
			Decision:      models.DecisionHold,
		})
		require.True(t, apperrors.IsValidation(err))
	})
	t.Run(`unresolvable requirement or candidate`, func(t *testing.T) {
		f := getInstance(t, 1)
		_, err := f.provider.RecruiterDecision(pipelineapimodels.RecruiterDecision{
			CandidateID:   f.candidate.ID,
			RequirementID: "Data Scientist",
			Decision:      models.DecisionHold,
		})
		require.True(t, apperrors.IsNotFound(err))
		_, err = f.provider.RecruiterDecision(pipelineapimodels.RecruiterDecision{
			CandidateID:   "missing",
			RequirementID: f.requirement.ID,
			Decision:      models.DecisionHold,
		})
		require.True(t, apperrors.IsNotFound(err))
		require.EqualValues(t, 0, f.count(t, &dbmodels.CandidateProgress{}))
	})
	t.Run(`move next then reject rewrites the same row`, func(t *testing.T) {
		f := getInstance(t, 3)
		result, err := f.provider.RecruiterDecision(pipelineapimodels.RecruiterDecision{
			CandidateID:   f.candidate.ID,
			RequirementID: f.requirement.ID,
			Decision:      models.DecisionMoveNext,
			NextStage:     "Round 2",
		})
		require.Nil(t, err)
		require.Equal(t, "updated", result.Status)
		require.Equal(t, models.DecisionMoveNext, result.Decision)

		rows := f.progress(t)
		require.Len(t, rows, 1)
		require.Equal(t, "Round 2", rows[0].StageName)
		require.Equal(t, models.ProgressStatusInProgress, rows[0].Status)
		require.Equal(t, models.DecisionMoveNext, rows[0].Decision)
		require.Equal(t, models.DecisionMoveNext, rows[0].ManualDecision)

		interviews := []dbmodels.Interview{}
		require.Nil(t, f.conn.Where("candidate_id = ?", f.candidate.ID).Find(&interviews).Error)
		require.Len(t, interviews, 1)
		require.Equal(t, "Round 2", interviews[0].Stage)
		require.Equal(t, models.InterviewStatusScheduled, interviews[0].Status)
		require.Equal(t, f.requirement.ID, interviews[0].RequirementID)

		_, err = f.provider.RecruiterDecision(pipelineapimodels.RecruiterDecision{
			CandidateID:   f.candidate.ID,
			RequirementID: f.requirement.ID,
			Decision:      models.DecisionReject,
		})
		require.Nil(t, err)
		rows = f.progress(t)
		require.Len(t, rows, 1)
		require.Equal(t, models.ProgressStatusRejected, rows[0].Status)
		require.Equal(t, models.DecisionReject, rows[0].Decision)
		require.Equal(t, "Rejected", rows[0].StageName)
		require.EqualValues(t, 1, f.count(t, &dbmodels.Interview{}))

		tracker, err := f.provider.GetTracker(f.candidate.ID)
		require.Nil(t, err)
		require.Len(t, tracker, 1)
		require.Equal(t, models.ProgressStatusRejected, tracker[0].Current.Status)
		require.Equal(t, []string{notify.EventRecruiterDecision, notify.EventRecruiterDecision}, f.notifier.Names())
	})
	t.Run(`requirement resolved by title and location`, func(t *testing.T) {
		f := getInstance(t, 1)
		_, err := f.provider.RecruiterDecision(pipelineapimodels.RecruiterDecision{
			CandidateID:   f.candidate.ID,
			RequirementID: "backend engineer",
			Decision:      models.DecisionHold,
		})
		require.Nil(t, err)
		_, err = f.provider.RecruiterDecision(pipelineapimodels.RecruiterDecision{
			CandidateID:   f.candidate.ID,
			RequirementID: "Engineer Hyder",
			Decision:      models.DecisionHold,
		})
		require.Nil(t, err)
		rows := f.progress(t)
		require.Len(t, rows, 1)
		require.True(t, rows[0].IsPipelineLevel())
		require.Equal(t, "On Hold", rows[0].StageName)
		require.Equal(t, models.ProgressStatusPending, rows[0].Status)
	})
	t.Run(`moving between defined stages completes the previous one`, func(t *testing.T) {
		f := getInstance(t, 3)
		for _, stage := range []string{"Round 1", "round 2"} {
			_, err := f.provider.RecruiterDecision(pipelineapimodels.RecruiterDecision{
				CandidateID:   f.candidate.ID,
				RequirementID: f.requirement.ID,
				Decision:      models.DecisionMoveNext,
				NextStage:     stage,
			})
			require.Nil(t, err)
		}
		tracker, err := f.provider.GetTracker(f.candidate.ID)
		require.Nil(t, err)
		require.Len(t, tracker, 1)
		stages := tracker[0].Stages
		require.Len(t, stages, 3)
		require.Equal(t, models.ProgressStatusCompleted, stages[0].Status)
		require.Equal(t, models.ProgressStatusInProgress, stages[1].Status)
		require.Equal(t, models.ProgressStatusPending, stages[2].Status)
		require.Equal(t, models.DecisionNone, stages[2].Decision)
		require.Nil(t, stages[2].UpdatedAt)
		require.Equal(t, stages[1].StageID, tracker[0].Current.StageID)
		require.EqualValues(t, 2, f.count(t, &dbmodels.Interview{}))
	})
}

func TestTracker(t *testing.T) {
	t.Run(`unknown candidate`, func(t *testing.T) {
		f := getInstance(t, 1)
		_, err := f.provider.GetTracker("missing")
		require.True(t, apperrors.IsNotFound(err))
	})
	t.Run(`no records means no requirements`, func(t *testing.T) {
		f := getInstance(t, 3)
		tracker, err := f.provider.GetTracker(f.candidate.ID)
		require.Nil(t, err)
		require.Len(t, tracker, 0)
	})
	t.Run(`assigned candidate sees all stages pending`, func(t *testing.T) {
		f := getInstance(t, 3)
		_, err := f.provider.AssignCandidate(pipelineapimodels.AssignCandidate{
			CandidateID:   f.candidate.ID,
			RequirementID: f.requirement.ID,
		})
		require.Nil(t, err)
		tracker, err := f.provider.GetTracker(f.candidate.ID)
		require.Nil(t, err)
		require.Len(t, tracker, 1)
		require.Equal(t, f.requirement.ID, tracker[0].Requirement.ID)
		require.Len(t, tracker[0].Stages, 3)
		for k, stage := range tracker[0].Stages {
			require.Equal(t, k+1, stage.StageOrder)
			require.Equal(t, models.ProgressStatusPending, stage.Status)
			require.Equal(t, models.DecisionNone, stage.Decision)
		}
		require.Equal(t, "Round 1", tracker[0].Stages[0].StageName)
		require.Equal(t, "Round 3", tracker[0].Stages[2].StageName)
		require.Equal(t, "Manual Assignment", tracker[0].Current.StageName)
	})
	t.Run(`failed screening stays visible`, func(t *testing.T) {
		f := getInstance(t, 2)
		err := f.conn.Transaction(func(tx *gorm.DB) error {
			_, err := f.provider.ApplyScreeningResult(tx, f.candidate.ID, f.requirement, false)
			return err
		})
		require.Nil(t, err)
		tracker, err := f.provider.GetTracker(f.candidate.ID)
		require.Nil(t, err)
		require.Len(t, tracker, 1)
		require.NotNil(t, tracker[0].Current)
		require.Equal(t, "Screening Failed", tracker[0].Current.StageName)
		require.Equal(t, models.ProgressStatusReviewRequired, tracker[0].Current.Status)
		require.Equal(t, models.DecisionHold, tracker[0].Current.Decision)
		require.Len(t, tracker[0].Stages, 2)
	})
	t.Run(`screening only requirement is listed`, func(t *testing.T) {
		f := getInstance(t, 2)
		rec := dbmodels.CandidateScreening{
			CandidateID:   f.candidate.ID,
			RequirementID: f.requirement.ID,
			Status:        models.ScreeningStatusError,
		}
		require.Nil(t, f.conn.Create(&rec).Error)
		tracker, err := f.provider.GetTracker(f.candidate.ID)
		require.Nil(t, err)
		require.Len(t, tracker, 1)
		require.Nil(t, tracker[0].Current)
		require.Len(t, tracker[0].Stages, 2)
	})
}

func TestAssignCandidate(t *testing.T) {
	t.Run(`does not reset existing progress`, func(t *testing.T) {
		f := getInstance(t, 1)
		err := f.conn.Transaction(func(tx *gorm.DB) error {
			_, err := f.provider.ApplyScreeningResult(tx, f.candidate.ID, f.requirement, true)
			return err
		})
		require.Nil(t, err)
		item, err := f.provider.AssignCandidate(pipelineapimodels.AssignCandidate{
			CandidateID:   f.candidate.ID,
			RequirementID: f.requirement.Title,
		})
		require.Nil(t, err)
		require.Equal(t, "Manual Review", item.StageName)
		require.Equal(t, models.ProgressStatusReviewRequired, item.Status)
		require.Len(t, f.notifier.Events, 0)
	})
}

func TestStages(t *testing.T) {
	t.Run(`create once`, func(t *testing.T) {
		f := getInstance(t, 0)
		list, err := f.provider.StagesCreate(f.requirement.ID, pipelineapimodels.StagesCreate{
			NoOfRounds: 2,
			StageNames: []string{"HR", ""},
		})
		require.Nil(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "HR", list[0].StageName)
		require.Equal(t, "Round 2", list[1].StageName)

		_, err = f.provider.StagesCreate(f.requirement.ID, pipelineapimodels.StagesCreate{NoOfRounds: 1})
		require.True(t, apperrors.IsConflict(err))

		stored, err := f.provider.StageList(f.requirement.ID)
		require.Nil(t, err)
		require.Len(t, stored, 2)
	})
	t.Run(`unknown requirement`, func(t *testing.T) {
		f := getInstance(t, 0)
		_, err := f.provider.StageList("missing")
		require.True(t, apperrors.IsNotFound(err))
	})
}

func TestUpdateStageStatus(t *testing.T) {
	f := getInstance(t, 2)
	stages, err := f.provider.StageList(f.requirement.ID)
	require.Nil(t, err)

	t.Run(`upsert twice keeps one row`, func(t *testing.T) {
		for _, status := range []models.ProgressStatus{models.ProgressStatusInProgress, models.ProgressStatusCompleted} {
			msg, err := f.provider.UpdateStageStatus(pipelineapimodels.StageStatusUpdate{
				CandidateID:   f.candidate.ID,
				RequirementID: f.requirement.ID,
				StageID:       stages[0].ID,
				Status:        status,
			})
			require.Nil(t, err)
			require.NotEmpty(t, msg)
		}
		rows := f.progress(t)
		require.Len(t, rows, 1)
		require.Equal(t, models.ProgressStatusCompleted, rows[0].Status)
		require.Equal(t, "Round 1", rows[0].StageName)
	})
	t.Run(`stage of another requirement`, func(t *testing.T) {
		_, err := f.provider.UpdateStageStatus(pipelineapimodels.StageStatusUpdate{
			CandidateID:   f.candidate.ID,
			RequirementID: f.requirement.ID,
			StageID:       "foreign-stage",
			Status:        models.ProgressStatusCompleted,
		})
		require.True(t, apperrors.IsNotFound(err))
	})
	t.Run(`invalid status`, func(t *testing.T) {
		_, err := f.provider.UpdateStageStatus(pipelineapimodels.StageStatusUpdate{
			CandidateID:   f.candidate.ID,
			RequirementID: f.requirement.ID,
			StageID:       stages[0].ID,
			Status:        "DONE",
		})
		require.True(t, apperrors.IsValidation(err))
	})
}

func TestInterviews(t *testing.T) {
	f := getInstance(t, 2)

	t.Run(`schedule moves progress`, func(t *testing.T) {
		item, err := f.provider.ScheduleInterview(pipelineapimodels.InterviewCreate{
			CandidateID:   f.candidate.ID,
			RequirementID: f.requirement.ID,
			Stage:         "Round 1",
			Date:          "2026-11-02",
			Time:          "10:30",
			Duration:      45,
			Mode:          "Online",
		})
		require.Nil(t, err)
		require.Equal(t, models.InterviewStatusScheduled, item.Status)
		require.Equal(t, "IT", item.Category)

		rows := f.progress(t)
		require.Len(t, rows, 1)
		require.Equal(t, "Round 1", rows[0].StageName)
		require.Equal(t, models.ProgressStatusInProgress, rows[0].Status)
		require.False(t, rows[0].IsPipelineLevel())
	})
	t.Run(`invalid date`, func(t *testing.T) {
		_, err := f.provider.ScheduleInterview(pipelineapimodels.InterviewCreate{
			CandidateID:   f.candidate.ID,
			RequirementID: f.requirement.ID,
			Stage:         "Round 1",
			Date:          "02.11.2026",
		})
		require.True(t, apperrors.IsValidation(err))
	})
	t.Run(`cancelled interviews are hidden`, func(t *testing.T) {
		list, err := f.provider.InterviewList(pipelineapimodels.InterviewFilter{})
		require.Nil(t, err)
		require.Len(t, list, 1)
		require.Nil(t, f.provider.InterviewUpdateStatus(list[0].ID, models.InterviewStatusCancelled))
		list, err = f.provider.InterviewList(pipelineapimodels.InterviewFilter{})
		require.Nil(t, err)
		require.Len(t, list, 0)
		list, err = f.provider.InterviewList(pipelineapimodels.InterviewFilter{Status: "cancelled"})
		require.Nil(t, err)
		require.Len(t, list, 1)
	})
	t.Run(`update unknown interview`, func(t *testing.T) {
		err := f.provider.InterviewUpdateStage("missing", "Round 2")
		require.True(t, apperrors.IsNotFound(err))
	})
	t.Run(`candidate progress details`, func(t *testing.T) {
		details, err := f.provider.GetCandidateProgress(f.candidate.ID, f.requirement.Title)
		require.Nil(t, err)
		require.Equal(t, f.candidate.Name, details.CandidateName)
		require.Len(t, details.Progress, 1)
		require.Len(t, details.Interviews, 1)
		require.Nil(t, details.Screening)
		require.NotNil(t, details.Current)

		current, err := f.provider.ListCurrentProgress()
		require.Nil(t, err)
		require.Len(t, current, 1)
		require.Equal(t, f.requirement.Title, current[0].RequirementTitle)
		require.Equal(t, f.candidate.Name, current[0].CandidateName)
	})
}

func TestInterviewUpdateStage(t *testing.T) {
	f := getInstance(t, 3)
	item, err := f.provider.ScheduleInterview(pipelineapimodels.InterviewCreate{
		CandidateID:   f.candidate.ID,
		RequirementID: f.requirement.ID,
		Stage:         "Round 1",
		Date:          "2026-11-02",
		Time:          "10:30",
	})
	require.Nil(t, err)

	t.Run(`progress follows the interview`, func(t *testing.T) {
		require.Nil(t, f.provider.InterviewUpdateStage(item.ID, "Round 2"))

		tracker, err := f.provider.GetTracker(f.candidate.ID)
		require.Nil(t, err)
		require.Len(t, tracker, 1)
		require.NotNil(t, tracker[0].Current)
		require.Equal(t, "Round 2", tracker[0].Current.StageName)
		require.Equal(t, models.ProgressStatusInProgress, tracker[0].Current.Status)
		require.Equal(t, models.DecisionMoveNext, tracker[0].Current.Decision)
		require.Equal(t, models.ProgressStatusCompleted, tracker[0].Stages[0].Status)
		require.Equal(t, models.ProgressStatusInProgress, tracker[0].Stages[1].Status)
		require.Equal(t, models.ProgressStatusPending, tracker[0].Stages[2].Status)

		list, err := f.provider.InterviewList(pipelineapimodels.InterviewFilter{CandidateID: f.candidate.ID})
		require.Nil(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "Round 2", list[0].Stage)
	})
	t.Run(`blank stage`, func(t *testing.T) {
		err := f.provider.InterviewUpdateStage(item.ID, "  ")
		require.True(t, apperrors.IsValidation(err))
	})
}

func TestDecisionRollback(t *testing.T) {
	f := getInstance(t, 3)
	_, err := f.provider.RecruiterDecision(pipelineapimodels.RecruiterDecision{
		CandidateID:   f.candidate.ID,
		RequirementID: f.requirement.ID,
		Decision:      models.DecisionMoveNext,
		NextStage:     "Round 1",
	})
	require.Nil(t, err)
	require.Len(t, f.notifier.Events, 1)

	require.Nil(t, f.conn.Migrator().DropTable(&dbmodels.Interview{}))
	_, err = f.provider.RecruiterDecision(pipelineapimodels.RecruiterDecision{
		CandidateID:   f.candidate.ID,
		RequirementID: f.requirement.ID,
		Decision:      models.DecisionMoveNext,
		NextStage:     "Round 2",
	})
	require.NotNil(t, err)

	rows := f.progress(t)
	require.Len(t, rows, 1)
	require.Equal(t, "Round 1", rows[0].StageName)
	require.Equal(t, models.ProgressStatusInProgress, rows[0].Status)
	require.Len(t, f.notifier.Events, 1)
}
