package pipeline

import (
	"ats-backend/db"
	candidatestore "ats-backend/lib/candidate/store"
	"ats-backend/lib/notify"
	interviewstore "ats-backend/lib/pipeline/interview-store"
	progressstore "ats-backend/lib/pipeline/progress-store"
	stagestore "ats-backend/lib/requirement/stage-store"
	requirementstore "ats-backend/lib/requirement/store"
	screeningstore "ats-backend/lib/screening/store"
	apperrors "ats-backend/lib/utils/app-errors"
	"ats-backend/models"
	pipelineapimodels "ats-backend/models/api/pipeline"
	dbmodels "ats-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	StageList(requirementID string) (list []pipelineapimodels.StageView, err error)
	StagesCreate(requirementID string, data pipelineapimodels.StagesCreate) (list []pipelineapimodels.StageView, err error)
	UpdateStageStatus(data pipelineapimodels.StageStatusUpdate) (message string, err error)
	RecruiterDecision(data pipelineapimodels.RecruiterDecision) (result pipelineapimodels.DecisionResult, err error)
	ApplyScreeningResult(tx *gorm.DB, candidateID string, requirement dbmodels.Requirement, succeeded bool) (*dbmodels.CandidateProgress, error)
	AssignCandidate(data pipelineapimodels.AssignCandidate) (item pipelineapimodels.ProgressView, err error)
	GetTracker(candidateID string) (list []pipelineapimodels.TrackerItem, err error)
	GetCandidateProgress(candidateID, requirementRef string) (item pipelineapimodels.CandidateProgressDetails, err error)
	ListCurrentProgress() (list []pipelineapimodels.CurrentProgressView, err error)
	ScheduleInterview(data pipelineapimodels.InterviewCreate) (item pipelineapimodels.InterviewView, err error)
	InterviewList(filter pipelineapimodels.InterviewFilter) (list []pipelineapimodels.InterviewView, err error)
	InterviewUpdateStage(id, stage string) error
	InterviewUpdateStatus(id string, status models.InterviewStatus) error
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(db.DB, notify.Instance)
}

func NewInstance(conn *gorm.DB, notifier notify.Provider) Provider {
	return impl{
		db:               conn,
		notifier:         notifier,
		stageStore:       stagestore.NewInstance(conn),
		progressStore:    progressstore.NewInstance(conn),
		interviewStore:   interviewstore.NewInstance(conn),
		requirementStore: requirementstore.NewInstance(conn),
		candidateStore:   candidatestore.NewInstance(conn),
		screeningStore:   screeningstore.NewInstance(conn),
	}
}

type impl struct {
	db               *gorm.DB
	notifier         notify.Provider
	stageStore       stagestore.Provider
	progressStore    progressstore.Provider
	interviewStore   interviewstore.Provider
	requirementStore requirementstore.Provider
	candidateStore   candidatestore.Provider
	screeningStore   screeningstore.Provider
}

func (i impl) StageList(requirementID string) (list []pipelineapimodels.StageView, err error) {
	if _, err = i.getRequirement(requirementID); err != nil {
		return nil, err
	}
	stages, err := i.stageStore.List(requirementID)
	if err != nil {
		return nil, errors.Wrap(err, "unable to list requirement stages")
	}
	return pipelineapimodels.StageListConvert(stages), nil
}

func (i impl) StagesCreate(requirementID string, data pipelineapimodels.StagesCreate) (list []pipelineapimodels.StageView, err error) {
	if err = data.Validate(); err != nil {
		return nil, err
	}
	if _, err = i.getRequirement(requirementID); err != nil {
		return nil, err
	}
	var created []dbmodels.RequirementStage
	err = i.db.Transaction(func(tx *gorm.DB) error {
		store := stagestore.NewInstance(tx)
		count, err := store.Count(requirementID)
		if err != nil {
			return err
		}
		if count != 0 {
			return apperrors.NewConflict("requirement already has %d stage(s), stages cannot be renumbered", count)
		}
		created, err = store.CreateRounds(requirementID, data.NoOfRounds, data.StageNames)
		if err != nil {
			return err
		}
		return tx.Model(&dbmodels.Requirement{}).
			Where("id = ?", requirementID).
			Update("no_of_rounds", len(created)).
			Error
	})
	if err != nil {
		return nil, err
	}
	i.getLogger(requirementID, "").
		WithField("stages", len(created)).
		Info("requirement stages created")
	return pipelineapimodels.StageListConvert(created), nil
}

func (i impl) UpdateStageStatus(data pipelineapimodels.StageStatusUpdate) (message string, err error) {
	if err = data.Validate(); err != nil {
		return "", err
	}
	requirement, err := i.getRequirement(data.RequirementID)
	if err != nil {
		return "", err
	}
	if _, err = i.getCandidate(data.CandidateID); err != nil {
		return "", err
	}
	stage, err := i.stageStore.GetByID(requirement.ID, data.StageID)
	if err != nil {
		return "", errors.Wrap(err, "unable to get requirement stage")
	}
	if stage == nil {
		return "", apperrors.NewNotFound("stage", data.StageID)
	}
	_, err = i.progressStore.Upsert(dbmodels.CandidateProgress{
		CandidateID:   data.CandidateID,
		RequirementID: requirement.ID,
		StageID:       stage.ID,
		StageName:     stage.StageName,
		Status:        data.Status,
		Decision:      data.Decision,
		Category:      requirement.GetCategory(),
	}, progressstore.ColumnsAutomated...)
	if err != nil {
		return "", err
	}
	i.getLogger(requirement.ID, data.CandidateID).
		WithField("stage_id", stage.ID).
		WithField("status", data.Status).
		Info("stage status updated")
	i.notifier.Notify(notify.EventStageStatusUpdated, map[string]interface{}{
		"candidate_id":   data.CandidateID,
		"requirement_id": requirement.ID,
		"stage_id":       stage.ID,
		"stage_name":     stage.StageName,
		"status":         data.Status,
		"decision":       data.Decision,
	})
	return "Stage status updated", nil
}

func (i impl) RecruiterDecision(data pipelineapimodels.RecruiterDecision) (result pipelineapimodels.DecisionResult, err error) {
	if err = data.Validate(); err != nil {
		return result, err
	}
	outcome, err := Transition(data.Decision, data.NextStage)
	if err != nil {
		return result, err
	}
	requirement, err := i.resolveRequirement(data.GetRequirementRef())
	if err != nil {
		return result, err
	}
	candidate, err := i.getCandidate(data.CandidateID)
	if err != nil {
		return result, err
	}
	logger := i.getLogger(requirement.ID, candidate.ID)

	var progress *dbmodels.CandidateProgress
	interviewID := ""
	err = i.db.Transaction(func(tx *gorm.DB) error {
		progressStore := progressstore.NewInstance(tx)
		stageID, err := i.decisionTarget(tx, candidate.ID, requirement.ID, data.Decision, data.NextStage)
		if err != nil {
			return err
		}
		progress, err = progressStore.Upsert(dbmodels.CandidateProgress{
			CandidateID:    candidate.ID,
			RequirementID:  requirement.ID,
			StageID:        stageID,
			StageName:      outcome.StageLabel,
			Status:         outcome.Status,
			Decision:       outcome.Decision,
			ManualDecision: outcome.Decision,
			Category:       requirement.GetCategory(),
		})
		if err != nil {
			return err
		}
		if outcome.ScheduleInterview {
			interviewID, err = interviewstore.NewInstance(tx).Create(dbmodels.Interview{
				CandidateID:   candidate.ID,
				RequirementID: requirement.ID,
				Category:      requirement.GetCategory(),
				Stage:         data.NextStage,
				Status:        models.InterviewStatusScheduled,
			})
			if err != nil {
				return errors.Wrap(err, "unable to schedule interview")
			}
		}
		return nil
	})
	if err != nil {
		return result, err
	}
	logger.
		WithField("decision", data.Decision).
		WithField("stage_name", progress.StageName).
		WithField("recruiter", data.Recruiter).
		Info("recruiter decision applied")
	i.notifier.Notify(notify.EventRecruiterDecision, map[string]interface{}{
		"candidate_id":   candidate.ID,
		"candidate_name": candidate.Name,
		"requirement_id": requirement.ID,
		"requirement":    requirement.Title,
		"decision":       data.Decision,
		"next_stage":     data.NextStage,
		"status":         progress.Status,
		"interview_id":   interviewID,
		"recruiter":      data.Recruiter,
	})
	return pipelineapimodels.DecisionResult{
		Status:   "updated",
		Decision: data.Decision,
	}, nil
}

// decisionTarget picks the progress row a decision is written to. A MOVE_NEXT
// naming a defined stage targets that stage and completes the stage it leaves;
// any other decision rewrites the current row.
func (i impl) decisionTarget(tx *gorm.DB, candidateID, requirementID string, decision models.Decision, nextStage string) (stageID string, err error) {
	progressStore := progressstore.NewInstance(tx)
	if decision == models.DecisionMoveNext {
		stage, err := stagestore.NewInstance(tx).FindByName(requirementID, nextStage)
		if err != nil {
			return "", errors.Wrap(err, "unable to find requirement stage")
		}
		if stage != nil {
			current, err := progressStore.LatestDefinedStage(candidateID, requirementID)
			if err != nil {
				return "", err
			}
			if current != nil && current.StageID != stage.ID &&
				current.Status != models.ProgressStatusRejected &&
				current.Status != models.ProgressStatusCompleted {
				if err = progressStore.SetStatus(current.ID, models.ProgressStatusCompleted); err != nil {
					return "", errors.Wrap(err, "unable to complete previous stage")
				}
			}
			return stage.ID, nil
		}
	}
	current, err := progressStore.Latest(candidateID, requirementID)
	if err != nil {
		return "", err
	}
	if current != nil {
		return current.StageID, nil
	}
	return dbmodels.PipelineStageID, nil
}

func (i impl) ApplyScreeningResult(tx *gorm.DB, candidateID string, requirement dbmodels.Requirement, succeeded bool) (*dbmodels.CandidateProgress, error) {
	outcome := ScreeningOutcome(succeeded)
	return progressstore.NewInstance(tx).Upsert(dbmodels.CandidateProgress{
		CandidateID:   candidateID,
		RequirementID: requirement.ID,
		StageID:       dbmodels.PipelineStageID,
		StageName:     outcome.StageLabel,
		Status:        outcome.Status,
		Decision:      outcome.Decision,
		Category:      requirement.GetCategory(),
	}, progressstore.ColumnsAutomated...)
}

func (i impl) AssignCandidate(data pipelineapimodels.AssignCandidate) (item pipelineapimodels.ProgressView, err error) {
	if err = data.Validate(); err != nil {
		return item, err
	}
	requirement, err := i.resolveRequirement(data.GetRequirementRef())
	if err != nil {
		return item, err
	}
	candidate, err := i.getCandidate(data.CandidateID)
	if err != nil {
		return item, err
	}
	inserted, err := i.progressStore.InsertIfAbsent(dbmodels.CandidateProgress{
		CandidateID:    candidate.ID,
		RequirementID:  requirement.ID,
		StageID:        dbmodels.PipelineStageID,
		StageName:      models.StageLabelManualAssignment,
		Status:         models.ProgressStatusPending,
		Decision:       models.DecisionNone,
		ManualDecision: models.DecisionNone,
		Category:       requirement.GetCategory(),
	})
	if err != nil {
		return item, err
	}
	rec, err := i.progressStore.Get(candidate.ID, requirement.ID, dbmodels.PipelineStageID)
	if err != nil {
		return item, err
	}
	if rec == nil {
		return item, errors.New("assigned progress row not found")
	}
	if inserted {
		i.getLogger(requirement.ID, candidate.ID).Info("candidate assigned to requirement")
		i.notifier.Notify(notify.EventCandidateAssigned, map[string]interface{}{
			"candidate_id":   candidate.ID,
			"candidate_name": candidate.Name,
			"requirement_id": requirement.ID,
			"requirement":    requirement.Title,
		})
	}
	return pipelineapimodels.ProgressConvert(*rec), nil
}

func (i impl) getRequirement(id string) (*dbmodels.Requirement, error) {
	rec, err := i.requirementStore.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "unable to get requirement")
	}
	if rec == nil {
		return nil, apperrors.NewNotFound("requirement", id)
	}
	return rec, nil
}

func (i impl) resolveRequirement(ref string) (*dbmodels.Requirement, error) {
	rec, err := i.requirementStore.Resolve(ref)
	if err != nil {
		return nil, errors.Wrap(err, "unable to resolve requirement")
	}
	if rec == nil {
		return nil, apperrors.NewNotFound("requirement", ref)
	}
	return rec, nil
}

func (i impl) getCandidate(id string) (*dbmodels.Candidate, error) {
	rec, err := i.candidateStore.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "unable to get candidate")
	}
	if rec == nil {
		return nil, apperrors.NewNotFound("candidate", id)
	}
	return rec, nil
}

func (i impl) getLogger(requirementID, candidateID string) *log.Entry {
	logger := log.WithField("requirement_id", requirementID)
	if candidateID != "" {
		logger = logger.WithField("candidate_id", candidateID)
	}
	return logger
}
