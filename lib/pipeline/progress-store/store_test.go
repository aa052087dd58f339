package progressstore

import (
	testdb "ats-backend/lib/utils/test-db"
	"ats-backend/models"
	dbmodels "ats-backend/models/db"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUpsert(t *testing.T) {
	conn := testdb.New(t)
	store := NewInstance(conn)

	countRows := func(candidateID, requirementID string) int64 {
		var count int64
		err := conn.Model(&dbmodels.CandidateProgress{}).
			Where("candidate_id = ? and requirement_id = ?", candidateID, requirementID).
			Count(&count).Error
		require.Nil(t, err)
		return count
	}

	t.Run(`second write overwrites the same row`, func(t *testing.T) {
		first, err := store.Upsert(dbmodels.CandidateProgress{
			CandidateID:   "c1",
			RequirementID: "r1",
			StageID:       "s1",
			StageName:     "Round 1",
			Status:        models.ProgressStatusInProgress,
			Decision:      models.DecisionMoveNext,
		})
		require.Nil(t, err)
		require.NotNil(t, first)

		second, err := store.Upsert(dbmodels.CandidateProgress{
			CandidateID:   "c1",
			RequirementID: "r1",
			StageID:       "s1",
			StageName:     "Rejected",
			Status:        models.ProgressStatusRejected,
			Decision:      models.DecisionReject,
		})
		require.Nil(t, err)
		require.Equal(t, first.ID, second.ID)
		require.Equal(t, models.ProgressStatusRejected, second.Status)
		require.Equal(t, models.DecisionReject, second.Decision)
		require.Equal(t, "Rejected", second.StageName)
		require.False(t, second.UpdatedAt.Before(first.UpdatedAt))
		require.EqualValues(t, 1, countRows("c1", "r1"))
	})
	t.Run(`different stages are different rows`, func(t *testing.T) {
		_, err := store.Upsert(dbmodels.CandidateProgress{
			CandidateID:   "c1",
			RequirementID: "r1",
			StageID:       dbmodels.PipelineStageID,
			StageName:     models.StageLabelManualReview,
			Status:        models.ProgressStatusReviewRequired,
		})
		require.Nil(t, err)
		require.EqualValues(t, 2, countRows("c1", "r1"))

		latest, err := store.Latest("c1", "r1")
		require.Nil(t, err)
		require.True(t, latest.IsPipelineLevel())
		require.Equal(t, models.DecisionNone, latest.Decision)

		defined, err := store.LatestDefinedStage("c1", "r1")
		require.Nil(t, err)
		require.Equal(t, "s1", defined.StageID)
	})
	t.Run(`automated write keeps manual decision`, func(t *testing.T) {
		_, err := store.Upsert(dbmodels.CandidateProgress{
			CandidateID:    "c2",
			RequirementID:  "r1",
			StageName:      models.StageLabelOnHold,
			Status:         models.ProgressStatusPending,
			Decision:       models.DecisionHold,
			ManualDecision: models.DecisionHold,
		})
		require.Nil(t, err)
		rec, err := store.Upsert(dbmodels.CandidateProgress{
			CandidateID:   "c2",
			RequirementID: "r1",
			StageName:     models.StageLabelManualReview,
			Status:        models.ProgressStatusReviewRequired,
			Decision:      models.DecisionNone,
		}, ColumnsAutomated...)
		require.Nil(t, err)
		require.Equal(t, models.DecisionHold, rec.ManualDecision)
		require.Equal(t, models.DecisionNone, rec.Decision)
	})
	t.Run(`insert if absent never resets progress`, func(t *testing.T) {
		inserted, err := store.InsertIfAbsent(dbmodels.CandidateProgress{
			CandidateID:   "c2",
			RequirementID: "r1",
			StageName:     models.StageLabelManualAssignment,
			Status:        models.ProgressStatusPending,
			Decision:      models.DecisionNone,
		})
		require.Nil(t, err)
		require.False(t, inserted)
		rec, err := store.Get("c2", "r1", dbmodels.PipelineStageID)
		require.Nil(t, err)
		require.Equal(t, models.StageLabelManualReview, rec.StageName)

		inserted, err = store.InsertIfAbsent(dbmodels.CandidateProgress{
			CandidateID:   "c3",
			RequirementID: "r1",
			StageName:     models.StageLabelManualAssignment,
			Status:        models.ProgressStatusPending,
			Decision:      models.DecisionNone,
		})
		require.Nil(t, err)
		require.True(t, inserted)
	})
	t.Run(`set status`, func(t *testing.T) {
		rec, err := store.Get("c3", "r1", dbmodels.PipelineStageID)
		require.Nil(t, err)
		time.Sleep(time.Millisecond)
		require.Nil(t, store.SetStatus(rec.ID, models.ProgressStatusCompleted))
		updated, err := store.Get("c3", "r1", dbmodels.PipelineStageID)
		require.Nil(t, err)
		require.Equal(t, models.ProgressStatusCompleted, updated.Status)
		require.True(t, updated.UpdatedAt.After(rec.UpdatedAt))
	})
	t.Run(`latest per candidate`, func(t *testing.T) {
		list, err := store.ListLatestPerCandidate()
		require.Nil(t, err)
		require.Len(t, list, 3)
		byCandidate := map[string]dbmodels.CandidateProgress{}
		for _, rec := range list {
			byCandidate[rec.CandidateID] = rec
		}
		require.Equal(t, models.StageLabelManualReview, byCandidate["c1"].StageName)
	})
	t.Run(`delete by requirement`, func(t *testing.T) {
		require.Nil(t, store.DeleteByRequirement("r1"))
		list, err := store.ListByRequirement("r1")
		require.Nil(t, err)
		require.Len(t, list, 0)
	})
}
