package pipeline

import (
	"ats-backend/lib/notify"
	interviewstore "ats-backend/lib/pipeline/interview-store"
	progressstore "ats-backend/lib/pipeline/progress-store"
	apperrors "ats-backend/lib/utils/app-errors"
	"ats-backend/models"
	pipelineapimodels "ats-backend/models/api/pipeline"
	dbmodels "ats-backend/models/db"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func (i impl) ScheduleInterview(data pipelineapimodels.InterviewCreate) (item pipelineapimodels.InterviewView, err error) {
	if err = data.Validate(); err != nil {
		return item, err
	}
	requirement, err := i.resolveRequirement(data.RequirementID)
	if err != nil {
		return item, err
	}
	candidate, err := i.getCandidate(data.CandidateID)
	if err != nil {
		return item, err
	}
	category := strings.TrimSpace(data.Category)
	if category == "" {
		category = requirement.GetCategory()
	}
	rec := dbmodels.Interview{
		CandidateID:   candidate.ID,
		RequirementID: requirement.ID,
		Category:      category,
		Stage:         data.Stage,
		Date:          data.Date,
		Time:          data.Time,
		Duration:      data.Duration,
		Mode:          data.Mode,
		Location:      data.Location,
		Interviewer:   data.Interviewer,
		Notes:         data.Notes,
		Status:        models.InterviewStatusScheduled,
	}
	err = i.db.Transaction(func(tx *gorm.DB) error {
		id, err := interviewstore.NewInstance(tx).Create(rec)
		if err != nil {
			return errors.Wrap(err, "unable to create interview")
		}
		rec.ID = id
		stageID, err := i.decisionTarget(tx, candidate.ID, requirement.ID, models.DecisionMoveNext, data.Stage)
		if err != nil {
			return err
		}
		_, err = progressstore.NewInstance(tx).Upsert(dbmodels.CandidateProgress{
			CandidateID:   candidate.ID,
			RequirementID: requirement.ID,
			StageID:       stageID,
			StageName:     data.Stage,
			Status:        models.ProgressStatusInProgress,
			Decision:      models.DecisionMoveNext,
			Category:      category,
		}, progressstore.ColumnsAutomated...)
		return err
	})
	if err != nil {
		return item, err
	}
	saved, err := i.interviewStore.GetByID(rec.ID)
	if err != nil {
		return item, err
	}
	if saved != nil {
		rec = *saved
	}
	i.getLogger(requirement.ID, candidate.ID).
		WithField("interview_id", rec.ID).
		WithField("stage", rec.Stage).
		Info("interview scheduled")
	i.notifier.Notify(notify.EventInterviewScheduled, map[string]interface{}{
		"interview_id":   rec.ID,
		"candidate_id":   candidate.ID,
		"candidate_name": candidate.Name,
		"requirement_id": requirement.ID,
		"requirement":    requirement.Title,
		"stage":          rec.Stage,
		"date":           rec.Date,
		"time":           rec.Time,
		"mode":           rec.Mode,
		"interviewer":    rec.Interviewer,
	})
	return pipelineapimodels.InterviewConvert(rec), nil
}

func (i impl) InterviewList(filter pipelineapimodels.InterviewFilter) (list []pipelineapimodels.InterviewView, err error) {
	status := models.InterviewStatus(strings.ToUpper(strings.TrimSpace(filter.Status)))
	if status != "" && !status.IsValid() {
		return nil, apperrors.NewValidation("invalid interview status: %q", filter.Status)
	}
	recs, err := i.interviewStore.List(interviewstore.Filter{
		CandidateID:   filter.CandidateID,
		RequirementID: filter.RequirementID,
		Status:        status,
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to list interviews")
	}
	return pipelineapimodels.InterviewListConvert(recs), nil
}

func (i impl) InterviewUpdateStage(id, stage string) error {
	stage = strings.TrimSpace(stage)
	if stage == "" {
		return apperrors.NewValidation("stage is required")
	}
	rec, err := i.getInterview(id)
	if err != nil {
		return err
	}
	err = i.db.Transaction(func(tx *gorm.DB) error {
		if err := interviewstore.NewInstance(tx).Update(id, map[string]interface{}{"stage": stage}); err != nil {
			return err
		}
		stageID, err := i.decisionTarget(tx, rec.CandidateID, rec.RequirementID, models.DecisionMoveNext, stage)
		if err != nil {
			return err
		}
		_, err = progressstore.NewInstance(tx).Upsert(dbmodels.CandidateProgress{
			CandidateID:   rec.CandidateID,
			RequirementID: rec.RequirementID,
			StageID:       stageID,
			StageName:     stage,
			Status:        models.ProgressStatusInProgress,
			Decision:      models.DecisionMoveNext,
			Category:      rec.Category,
		}, progressstore.ColumnsAutomated...)
		return err
	})
	if err != nil {
		return err
	}
	i.getLogger(rec.RequirementID, rec.CandidateID).
		WithField("interview_id", id).
		WithField("stage", stage).
		Info("interview stage updated")
	return nil
}

func (i impl) InterviewUpdateStatus(id string, status models.InterviewStatus) error {
	if !status.IsValid() {
		return apperrors.NewValidation("invalid interview status: %q", status)
	}
	if _, err := i.getInterview(id); err != nil {
		return err
	}
	return i.interviewStore.Update(id, map[string]interface{}{"status": status})
}

func (i impl) getInterview(id string) (*dbmodels.Interview, error) {
	rec, err := i.interviewStore.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "unable to get interview")
	}
	if rec == nil {
		return nil, apperrors.NewNotFound("interview", id)
	}
	return rec, nil
}
