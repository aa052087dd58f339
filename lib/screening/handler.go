package screening

import (
	"context"
	"fmt"
	"time"

	"ats-backend/db"
	"ats-backend/lib/ai/llm"
	candidatestore "ats-backend/lib/candidate/store"
	"ats-backend/lib/notify"
	"ats-backend/lib/pipeline"
	requirementstore "ats-backend/lib/requirement/store"
	screeningstore "ats-backend/lib/screening/store"
	apperrors "ats-backend/lib/utils/app-errors"
	"ats-backend/lib/utils/lock"
	"ats-backend/models"
	screeningapimodels "ats-backend/models/api/screening"
	dbmodels "ats-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	screeningTimeout  = 60 * time.Second
	screeningLockWait = 100 * time.Millisecond
)

type Provider interface {
	ScreenCandidate(ctx context.Context, data screeningapimodels.ScreenRequest) (resp screeningapimodels.ScreenResponse, err error)
	ScreeningList(candidateID string) (list []screeningapimodels.ScreeningView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(db.DB, llm.Instance, pipeline.Instance, notify.Instance)
}

func NewInstance(conn *gorm.DB, model llm.Provider, pipelineProvider pipeline.Provider, notifier notify.Provider) Provider {
	return impl{
		db:               conn,
		model:            model,
		pipeline:         pipelineProvider,
		notifier:         notifier,
		candidateStore:   candidatestore.NewInstance(conn),
		requirementStore: requirementstore.NewInstance(conn),
		screeningStore:   screeningstore.NewInstance(conn),
	}
}

type impl struct {
	db               *gorm.DB
	model            llm.Provider
	pipeline         pipeline.Provider
	notifier         notify.Provider
	candidateStore   candidatestore.Provider
	requirementStore requirementstore.Provider
	screeningStore   screeningstore.Provider
}

func (i impl) ScreenCandidate(ctx context.Context, data screeningapimodels.ScreenRequest) (resp screeningapimodels.ScreenResponse, err error) {
	if err = data.Validate(); err != nil {
		return resp, err
	}
	candidate, err := i.candidateStore.GetByID(data.CandidateID)
	if err != nil {
		return resp, errors.Wrap(err, "unable to get candidate")
	}
	if candidate == nil {
		return resp, apperrors.NewNotFound("candidate", data.CandidateID)
	}
	requirement, err := i.requirementStore.Resolve(data.GetRequirementRef())
	if err != nil {
		return resp, errors.Wrap(err, "unable to resolve requirement")
	}
	if requirement == nil {
		return resp, apperrors.NewNotFound("requirement", data.GetRequirementRef())
	}

	key := fmt.Sprintf("screening:%s:%s", candidate.ID, requirement.ID)
	success, err := lock.WithDelay(ctx, key, screeningLockWait, func() error {
		var screenErr error
		resp, screenErr = i.screen(ctx, *candidate, *requirement)
		return screenErr
	})
	if err != nil {
		return resp, err
	}
	if !success {
		return resp, apperrors.NewConflict("screening of candidate %s for requirement %s is already running", candidate.ID, requirement.ID)
	}
	return resp, nil
}

func (i impl) screen(ctx context.Context, candidate dbmodels.Candidate, requirement dbmodels.Requirement) (resp screeningapimodels.ScreenResponse, err error) {
	logger := log.
		WithField("candidate_id", candidate.ID).
		WithField("requirement_id", requirement.ID)

	result, aiErr := i.runModel(ctx, candidate, requirement)
	if aiErr != nil {
		logger.WithError(aiErr).Warn("AI screening failed, candidate left for manual review")
	}

	rec := dbmodels.CandidateScreening{
		CandidateID:   candidate.ID,
		RequirementID: requirement.ID,
		ModelVersion:  i.model.ModelName(),
	}
	if aiErr == nil {
		rec.AiScore = result.Score
		rec.AiRationale = result.Rationale
		rec.RedFlags = result.RedFlags
		rec.Recommend = result.Recommend
		rec.Status = models.ScreeningStatusDone
	} else {
		rec.Recommend = models.RecommendManualReview
		rec.Status = models.ScreeningStatusError
		rec.Error = aiErr.Error()
	}

	err = i.db.Transaction(func(tx *gorm.DB) error {
		rec.ID, err = screeningstore.NewInstance(tx).Create(rec)
		if err != nil {
			return errors.Wrap(err, "unable to save screening")
		}
		_, err = i.pipeline.ApplyScreeningResult(tx, candidate.ID, requirement, aiErr == nil)
		if err != nil {
			return errors.Wrap(err, "unable to update candidate progress")
		}
		return nil
	})
	if err != nil {
		return resp, err
	}

	resp = screeningapimodels.ScreenResponse{
		ScreeningID:   rec.ID,
		CandidateID:   candidate.ID,
		RequirementID: requirement.ID,
		ModelVersion:  rec.ModelVersion,
	}
	if aiErr != nil {
		resp.Result = screeningapimodels.Result{
			Score:     0,
			Rationale: []string{},
			RedFlags:  []string{},
			Recommend: models.RecommendManualReview,
		}
		resp.Message = fmt.Sprintf("AI screening failed (%s), candidate moved to manual review", aiErr.Error())
		return resp, nil
	}
	resp.Result = result
	resp.Message = "Candidate screened successfully"
	logger.
		WithField("score", result.Score).
		WithField("recommend", result.Recommend).
		Info("candidate screened")
	i.notifier.Notify(notify.EventScreeningCompleted, map[string]interface{}{
		"candidate_id":   candidate.ID,
		"requirement_id": requirement.ID,
		"ai_score":       result.Score,
		"recommend":      result.Recommend,
	})
	return resp, nil
}

func (i impl) ScreeningList(candidateID string) (list []screeningapimodels.ScreeningView, err error) {
	candidate, err := i.candidateStore.GetByID(candidateID)
	if err != nil {
		return nil, errors.Wrap(err, "unable to get candidate")
	}
	if candidate == nil {
		return nil, apperrors.NewNotFound("candidate", candidateID)
	}
	recs, err := i.screeningStore.ListByCandidate(candidateID)
	if err != nil {
		return nil, errors.Wrap(err, "unable to list screenings")
	}
	list = make([]screeningapimodels.ScreeningView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, screeningapimodels.ScreeningConvert(rec))
	}
	return list, nil
}

func (i impl) runModel(ctx context.Context, candidate dbmodels.Candidate, requirement dbmodels.Requirement) (result screeningapimodels.Result, err error) {
	ctx, cancel := context.WithTimeout(ctx, screeningTimeout)
	defer cancel()
	answer, err := i.model.Generate(ctx, screeningInstruction, buildScreeningText(candidate, requirement))
	if err != nil {
		return result, err
	}
	return ParseAIResponse(answer)
}
