package reports

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"time"

	"ats-backend/db"
	candidatestore "ats-backend/lib/candidate/store"
	pdfexport "ats-backend/lib/export/pdf"
	xlsexport "ats-backend/lib/export/xls"
	"ats-backend/lib/pipeline"
	reportsstore "ats-backend/lib/reports/store"
	requirementstore "ats-backend/lib/requirement/store"
	apperrors "ats-backend/lib/utils/app-errors"
	initchecker "ats-backend/lib/utils/init-checker"
	"ats-backend/models"
	reportsapimodels "ats-backend/models/api/reports"
	dbmodels "ats-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// urgentRounds is the round count above which an open requirement is urgent.
const urgentRounds = 5

type Provider interface {
	DashboardStats() (stats reportsapimodels.DashboardStats, err error)
	GlobalStats() (stats reportsapimodels.GlobalStats, err error)
	RequirementStats(requirementID string) (stats reportsapimodels.RequirementStats, err error)
	StageCandidates(requirementID, stageName string) (list []reportsapimodels.StageCandidate, err error)
	ActiveClients() (list []reportsapimodels.ClientItem, err error)
	ClientRequirements(clientID string) (list []reportsapimodels.ClientRequirement, err error)
	ExportRequirementXls(requirementID string) (buf *bytes.Buffer, fileName string, err error)
	ExportTrackerPdf(candidateID string) (file []byte, fileName string, err error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"pipeline", pipeline.Instance,
		"xlsexport", xlsexport.Instance,
	)
	Instance = NewInstance(db.DB, pipeline.Instance, xlsexport.Instance)
}

func NewInstance(conn *gorm.DB, pipelineProvider pipeline.Provider, xls xlsexport.Provider) Provider {
	return impl{
		store:            reportsstore.NewInstance(conn),
		requirementStore: requirementstore.NewInstance(conn),
		candidateStore:   candidatestore.NewInstance(conn),
		pipeline:         pipelineProvider,
		xls:              xls,
	}
}

type impl struct {
	store            reportsstore.Provider
	requirementStore requirementstore.Provider
	candidateStore   candidatestore.Provider
	pipeline         pipeline.Provider
	xls              xlsexport.Provider
}

func (i impl) DashboardStats() (stats reportsapimodels.DashboardStats, err error) {
	var closedThisMonth int64
	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	counters := []struct {
		name  string
		out   *int64
		count func() (int64, error)
	}{
		{"total", &stats.TotalRequirements, func() (int64, error) { return i.store.CountRequirements("") }},
		{"open", &stats.OpenRequirements, func() (int64, error) { return i.store.CountRequirements(models.RequirementStatusOpen) }},
		{"closed", &stats.ClosedRequirements, func() (int64, error) { return i.store.CountRequirements(models.RequirementStatusClosed) }},
		{"on hold", &stats.OnHoldRequirements, func() (int64, error) { return i.store.CountRequirements(models.RequirementStatusOnHold) }},
		{"assigned", &stats.AssignedRequirements, i.store.CountAssignedRequirements},
		{"urgent", &stats.Urgent, func() (int64, error) { return i.store.CountUrgent(urgentRounds) }},
		{"pending review", &stats.PendingReview, i.store.CountUnassignedOpen},
		{"closed this month", &closedThisMonth, func() (int64, error) { return i.store.CountClosedSince(startOfMonth) }},
	}
	for _, counter := range counters {
		if *counter.out, err = counter.count(); err != nil {
			return stats, errors.Wrapf(err, "unable to count %s requirements", counter.name)
		}
	}
	if stats.TotalRequirements != 0 {
		stats.ClosedGrowthPercent = math.Round(float64(closedThisMonth)/float64(stats.TotalRequirements)*100*100) / 100
	}
	return stats, nil
}

func (i impl) GlobalStats() (stats reportsapimodels.GlobalStats, err error) {
	g := new(errgroup.Group)
	g.Go(func() (err error) {
		stats.Requirements.Total, err = i.store.CountRequirements("")
		return errors.Wrap(err, "unable to count requirements")
	})
	g.Go(func() (err error) {
		stats.Requirements.Open, err = i.store.CountRequirements(models.RequirementStatusOpen)
		return errors.Wrap(err, "unable to count open requirements")
	})
	g.Go(func() (err error) {
		stats.Requirements.Closed, err = i.store.CountRequirements(models.RequirementStatusClosed)
		return errors.Wrap(err, "unable to count closed requirements")
	})
	g.Go(func() (err error) {
		stats.Candidates, err = i.store.CountCandidates()
		return errors.Wrap(err, "unable to count candidates")
	})
	g.Go(func() (err error) {
		stats.Selections, err = i.store.CountSelections("")
		return errors.Wrap(err, "unable to count selections")
	})
	g.Go(func() (err error) {
		stats.ClientStats, err = i.store.ClientStats()
		return errors.Wrap(err, "unable to collect client stats")
	})
	if err = g.Wait(); err != nil {
		return reportsapimodels.GlobalStats{}, err
	}
	return stats, nil
}

func (i impl) RequirementStats(requirementID string) (stats reportsapimodels.RequirementStats, err error) {
	rec, err := i.getRequirement(requirementID)
	if err != nil {
		return stats, err
	}
	stats.Requirement = reportsapimodels.RequirementSummary{
		ID:         rec.ID,
		Title:      rec.Title,
		NoOfRounds: rec.NoOfRounds,
		Status:     rec.Status,
	}
	stats.Stats, err = i.store.StageStats(requirementID, models.ManualStageLabels)
	if err != nil {
		return stats, errors.Wrap(err, "unable to collect stage stats")
	}
	stats.TotalCandidates, err = i.store.CountPipelineCandidates(requirementID)
	if err != nil {
		return stats, errors.Wrap(err, "unable to count pipeline candidates")
	}
	stats.SelectedCandidates, err = i.store.CountSelections(requirementID)
	if err != nil {
		return stats, errors.Wrap(err, "unable to count selections")
	}
	return stats, nil
}

func (i impl) StageCandidates(requirementID, stageName string) (list []reportsapimodels.StageCandidate, err error) {
	if strings.TrimSpace(stageName) == "" {
		return nil, apperrors.NewValidation("stage_name required")
	}
	if _, err = i.getRequirement(requirementID); err != nil {
		return nil, err
	}
	list, err = i.store.StageCandidates(requirementID, stageName)
	if err != nil {
		return nil, errors.Wrap(err, "unable to list stage candidates")
	}
	return list, nil
}

func (i impl) ActiveClients() (list []reportsapimodels.ClientItem, err error) {
	list, err = i.store.ActiveClients()
	if err != nil {
		return nil, errors.Wrap(err, "unable to list clients")
	}
	return list, nil
}

func (i impl) ClientRequirements(clientID string) (list []reportsapimodels.ClientRequirement, err error) {
	list, err = i.store.ClientRequirements(clientID)
	if err != nil {
		return nil, errors.Wrap(err, "unable to list client requirements")
	}
	return list, nil
}

func (i impl) ExportRequirementXls(requirementID string) (buf *bytes.Buffer, fileName string, err error) {
	rec, err := i.getRequirement(requirementID)
	if err != nil {
		return nil, "", err
	}
	rows, err := i.store.PipelineRows(requirementID)
	if err != nil {
		return nil, "", errors.Wrap(err, "unable to collect pipeline rows")
	}
	buf, err = i.xls.ExportPipeline(rec.Title, rows)
	if err != nil {
		log.
			WithField("requirement_id", requirementID).
			WithError(err).
			Error("pipeline xlsx export failed")
		return nil, "", err
	}
	return buf, fmt.Sprintf("pipeline_%s.xlsx", fileSafe(rec.Title)), nil
}

func (i impl) ExportTrackerPdf(candidateID string) (file []byte, fileName string, err error) {
	candidate, err := i.candidateStore.GetByID(candidateID)
	if err != nil {
		return nil, "", errors.Wrap(err, "unable to get candidate")
	}
	if candidate == nil {
		return nil, "", apperrors.NewNotFound("candidate", candidateID)
	}
	items, err := i.pipeline.GetTracker(candidateID)
	if err != nil {
		return nil, "", err
	}
	file, err = pdfexport.GenerateTracker(candidate.Name, items)
	if err != nil {
		log.
			WithField("candidate_id", candidateID).
			WithError(err).
			Error("tracker pdf export failed")
		return nil, "", err
	}
	return file, fmt.Sprintf("tracker_%s.pdf", fileSafe(candidate.Name)), nil
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

func fileSafe(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "export"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		}
		return '_'
	}, name)
}
