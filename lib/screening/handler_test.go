package screening

import (
	"context"
	"testing"

	"ats-backend/lib/ai/llm"
	"ats-backend/lib/notify"
	"ats-backend/lib/pipeline"
	apperrors "ats-backend/lib/utils/app-errors"
	testdb "ats-backend/lib/utils/test-db"
	"ats-backend/models"
	screeningapimodels "ats-backend/models/api/screening"
	dbmodels "ats-backend/models/db"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	conn        *gorm.DB
	model       *llm.Static
	notifier    *notify.Recorder
	provider    Provider
	requirement dbmodels.Requirement
	candidate   dbmodels.Candidate
}

func getInstance(t *testing.T, model *llm.Static) fixture {
	conn := testdb.New(t)
	f := fixture{
		conn:     conn,
		model:    model,
		notifier: &notify.Recorder{},
	}
	f.provider = NewInstance(conn, model, pipeline.NewInstance(conn, f.notifier), f.notifier)

	f.requirement = dbmodels.Requirement{
		Title:          "Data Engineer",
		Location:       "Pune",
		SkillsRequired: "Spark, SQL",
		NoOfRounds:     2,
	}
	require.Nil(t, conn.Create(&f.requirement).Error)
	f.candidate = dbmodels.Candidate{Name: "Ravi Kumar", Skills: "Spark, Scala"}
	require.Nil(t, conn.Create(&f.candidate).Error)
	return f
}

func (f fixture) progress(t *testing.T) []dbmodels.CandidateProgress {
	list := []dbmodels.CandidateProgress{}
	require.Nil(t, f.conn.
		Where("candidate_id = ? and requirement_id = ?", f.candidate.ID, f.requirement.ID).
		Find(&list).Error)
	return list
}

func TestScreenCandidate(t *testing.T) {
	t.Run("successful screening", func(t *testing.T) {
		f := getInstance(t, &llm.Static{
			Answer: `{"score": 81.239, "rationale": ["Spark"], "red_flags": [], "recommend": "SHORTLISTED"}`,
			Model:  "gemini-test",
		})
		resp, err := f.provider.ScreenCandidate(context.Background(), screeningapimodels.ScreenRequest{
			CandidateID:    f.candidate.ID,
			RequirementRef: "data engineer",
		})
		require.Nil(t, err)
		require.Equal(t, 81.24, resp.Score)
		require.Equal(t, models.RecommendShortlisted, resp.Recommend)
		require.Equal(t, f.requirement.ID, resp.RequirementID)
		require.Contains(t, f.model.Texts[0], "Spark, SQL")

		progress := f.progress(t)
		require.Len(t, progress, 1)
		require.True(t, progress[0].IsPipelineLevel())
		require.Equal(t, models.StageLabelManualReview, progress[0].StageName)
		require.Equal(t, models.ProgressStatusReviewRequired, progress[0].Status)
		require.Equal(t, models.DecisionNone, progress[0].Decision)

		list, err := f.provider.ScreeningList(f.candidate.ID)
		require.Nil(t, err)
		require.Len(t, list, 1)
		require.Equal(t, models.ScreeningStatusDone, list[0].Status)
		require.Equal(t, "gemini-test", list[0].ModelVersion)
		require.Equal(t, []string{"Spark"}, list[0].Rationale)

		require.Equal(t, []string{notify.EventScreeningCompleted}, f.notifier.Names())
	})
	t.Run("model failure still records progress", func(t *testing.T) {
		f := getInstance(t, &llm.Static{Err: errors.New("deadline exceeded")})
		resp, err := f.provider.ScreenCandidate(context.Background(), screeningapimodels.ScreenRequest{
			CandidateID:   f.candidate.ID,
			RequirementID: f.requirement.ID,
		})
		require.Nil(t, err)
		require.Equal(t, 0.0, resp.Score)
		require.Equal(t, models.RecommendManualReview, resp.Recommend)
		require.Contains(t, resp.Message, "deadline exceeded")

		progress := f.progress(t)
		require.Len(t, progress, 1)
		require.Equal(t, models.StageLabelScreeningFailed, progress[0].StageName)
		require.Equal(t, models.ProgressStatusReviewRequired, progress[0].Status)
		require.Equal(t, models.DecisionHold, progress[0].Decision)

		list, err := f.provider.ScreeningList(f.candidate.ID)
		require.Nil(t, err)
		require.Len(t, list, 1)
		require.Equal(t, models.ScreeningStatusError, list[0].Status)
		require.Equal(t, "deadline exceeded", list[0].Error)
		require.Len(t, f.notifier.Events, 0)
	})
	t.Run("rescreening overwrites the pipeline row", func(t *testing.T) {
		f := getInstance(t, &llm.Static{Answer: "not json"})
		req := screeningapimodels.ScreenRequest{CandidateID: f.candidate.ID, RequirementID: f.requirement.ID}
		_, err := f.provider.ScreenCandidate(context.Background(), req)
		require.Nil(t, err)
		f.model.Answer = `{"score": 40}`
		_, err = f.provider.ScreenCandidate(context.Background(), req)
		require.Nil(t, err)

		progress := f.progress(t)
		require.Len(t, progress, 1)
		require.Equal(t, models.StageLabelManualReview, progress[0].StageName)
	})
	t.Run("unknown candidate", func(t *testing.T) {
		f := getInstance(t, &llm.Static{})
		_, err := f.provider.ScreenCandidate(context.Background(), screeningapimodels.ScreenRequest{
			CandidateID:   "missing",
			RequirementID: f.requirement.ID,
		})
		require.True(t, apperrors.IsNotFound(err))
		require.Len(t, f.model.Texts, 0)
	})
	t.Run("unknown requirement", func(t *testing.T) {
		f := getInstance(t, &llm.Static{})
		_, err := f.provider.ScreenCandidate(context.Background(), screeningapimodels.ScreenRequest{
			CandidateID:   f.candidate.ID,
			RequirementID: "Frontend Engineer",
		})
		require.True(t, apperrors.IsNotFound(err))
	})
	t.Run("missing candidate id", func(t *testing.T) {
		f := getInstance(t, &llm.Static{})
		_, err := f.provider.ScreenCandidate(context.Background(), screeningapimodels.ScreenRequest{RequirementID: "x"})
		require.True(t, apperrors.IsValidation(err))
	})
}
