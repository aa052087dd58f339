package pipeline

import (
	interviewstore "ats-backend/lib/pipeline/interview-store"
	"ats-backend/models"
	pipelineapimodels "ats-backend/models/api/pipeline"
	screeningapimodels "ats-backend/models/api/screening"
	dbmodels "ats-backend/models/db"
	"sort"

	"github.com/pkg/errors"
)

func (i impl) GetTracker(candidateID string) (list []pipelineapimodels.TrackerItem, err error) {
	if _, err = i.getCandidate(candidateID); err != nil {
		return nil, err
	}
	progressList, err := i.progressStore.ListByCandidate(candidateID)
	if err != nil {
		return nil, errors.Wrap(err, "unable to list candidate progress")
	}
	screenings, err := i.screeningStore.ListByCandidate(candidateID)
	if err != nil {
		return nil, errors.Wrap(err, "unable to list candidate screenings")
	}

	requirementIDs := make([]string, 0, len(progressList)+len(screenings))
	seen := map[string]struct{}{}
	addID := func(id string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		requirementIDs = append(requirementIDs, id)
	}
	progressByRequirement := map[string][]dbmodels.CandidateProgress{}
	for _, rec := range progressList {
		addID(rec.RequirementID)
		progressByRequirement[rec.RequirementID] = append(progressByRequirement[rec.RequirementID], rec)
	}
	for _, rec := range screenings {
		addID(rec.RequirementID)
	}
	if len(requirementIDs) == 0 {
		return []pipelineapimodels.TrackerItem{}, nil
	}

	requirements, err := i.requirementStore.ListByIDs(requirementIDs)
	if err != nil {
		return nil, errors.Wrap(err, "unable to list requirements")
	}
	stages, err := i.stageStore.ListByRequirements(requirementIDs)
	if err != nil {
		return nil, errors.Wrap(err, "unable to list requirement stages")
	}
	stagesByRequirement := map[string][]dbmodels.RequirementStage{}
	for _, stage := range stages {
		stagesByRequirement[stage.RequirementID] = append(stagesByRequirement[stage.RequirementID], stage)
	}

	list = make([]pipelineapimodels.TrackerItem, 0, len(requirements))
	for _, requirement := range requirements {
		list = append(list, buildTrackerItem(requirement, stagesByRequirement[requirement.ID], progressByRequirement[requirement.ID]))
	}
	return list, nil
}

// buildTrackerItem merges the ordered stage list with progress rows keyed by stage
// id. Stages without a row are PENDING/NONE.
func buildTrackerItem(requirement dbmodels.Requirement, stages []dbmodels.RequirementStage, progress []dbmodels.CandidateProgress) pipelineapimodels.TrackerItem {
	sort.SliceStable(stages, func(a, b int) bool {
		return stages[a].StageOrder < stages[b].StageOrder
	})
	byStage := make(map[string]dbmodels.CandidateProgress, len(progress))
	var current *dbmodels.CandidateProgress
	for k, rec := range progress {
		byStage[rec.StageID] = rec
		if current == nil || rec.UpdatedAt.After(current.UpdatedAt) {
			current = &progress[k]
		}
	}
	item := pipelineapimodels.TrackerItem{
		Requirement: pipelineapimodels.TrackerRequirementConvert(requirement),
		Stages:      make([]pipelineapimodels.TrackerStage, 0, len(stages)),
	}
	for _, stage := range stages {
		entry := pipelineapimodels.TrackerStage{
			StageID:        stage.ID,
			StageName:      stage.StageName,
			StageOrder:     stage.StageOrder,
			Status:         models.ProgressStatusPending,
			Decision:       models.DecisionNone,
			ManualDecision: models.DecisionNone,
		}
		if rec, ok := byStage[stage.ID]; ok {
			entry.Status = rec.Status
			entry.Decision = rec.Decision
			entry.ManualDecision = rec.ManualDecision
			updatedAt := rec.UpdatedAt
			entry.UpdatedAt = &updatedAt
		}
		item.Stages = append(item.Stages, entry)
	}
	if current != nil {
		view := pipelineapimodels.ProgressConvert(*current)
		item.Current = &view
	}
	return item
}

func (i impl) GetCandidateProgress(candidateID, requirementRef string) (item pipelineapimodels.CandidateProgressDetails, err error) {
	candidate, err := i.getCandidate(candidateID)
	if err != nil {
		return item, err
	}
	requirement, err := i.resolveRequirement(requirementRef)
	if err != nil {
		return item, err
	}
	progressList, err := i.progressStore.ListByCandidateRequirement(candidate.ID, requirement.ID)
	if err != nil {
		return item, errors.Wrap(err, "unable to list candidate progress")
	}
	screening, err := i.screeningStore.Latest(candidate.ID, requirement.ID)
	if err != nil {
		return item, errors.Wrap(err, "unable to get latest screening")
	}
	interviews, err := i.interviewStore.List(interviewstore.Filter{
		CandidateID:      candidate.ID,
		RequirementID:    requirement.ID,
		IncludeCancelled: true,
	})
	if err != nil {
		return item, errors.Wrap(err, "unable to list interviews")
	}
	item = pipelineapimodels.CandidateProgressDetails{
		CandidateID:   candidate.ID,
		CandidateName: candidate.Name,
		Requirement:   pipelineapimodels.TrackerRequirementConvert(*requirement),
		Progress:      pipelineapimodels.ProgressListConvert(progressList),
		Interviews:    pipelineapimodels.InterviewListConvert(interviews),
	}
	if len(progressList) != 0 {
		current := pipelineapimodels.ProgressConvert(progressList[0])
		item.Current = &current
	}
	if screening != nil {
		view := screeningapimodels.ScreeningConvert(*screening)
		item.Screening = &view
	}
	return item, nil
}

func (i impl) ListCurrentProgress() (list []pipelineapimodels.CurrentProgressView, err error) {
	progressList, err := i.progressStore.ListLatestPerCandidate()
	if err != nil {
		return nil, errors.Wrap(err, "unable to list current progress")
	}
	candidateIDs := make([]string, 0, len(progressList))
	requirementIDs := make([]string, 0, len(progressList))
	for _, rec := range progressList {
		candidateIDs = append(candidateIDs, rec.CandidateID)
		requirementIDs = append(requirementIDs, rec.RequirementID)
	}
	candidates, err := i.candidateStore.ListByIDs(candidateIDs)
	if err != nil {
		return nil, errors.Wrap(err, "unable to list candidates")
	}
	requirements, err := i.requirementStore.ListByIDs(requirementIDs)
	if err != nil {
		return nil, errors.Wrap(err, "unable to list requirements")
	}
	candidateNames := make(map[string]string, len(candidates))
	for _, rec := range candidates {
		candidateNames[rec.ID] = rec.Name
	}
	requirementTitles := make(map[string]string, len(requirements))
	for _, rec := range requirements {
		requirementTitles[rec.ID] = rec.Title
	}
	list = make([]pipelineapimodels.CurrentProgressView, 0, len(progressList))
	for _, rec := range progressList {
		list = append(list, pipelineapimodels.CurrentProgressView{
			ProgressView:     pipelineapimodels.ProgressConvert(rec),
			CandidateName:    candidateNames[rec.CandidateID],
			RequirementTitle: requirementTitles[rec.RequirementID],
		})
	}
	return list, nil
}
