package requirement

import (
	"fmt"
	"time"

	"ats-backend/db"
	clientstore "ats-backend/lib/client/store"
	"ats-backend/lib/notify"
	interviewstore "ats-backend/lib/pipeline/interview-store"
	progressstore "ats-backend/lib/pipeline/progress-store"
	allocationstore "ats-backend/lib/requirement/allocation-store"
	stagestore "ats-backend/lib/requirement/stage-store"
	requirementstore "ats-backend/lib/requirement/store"
	screeningstore "ats-backend/lib/screening/store"
	"ats-backend/lib/smtp"
	usersstore "ats-backend/lib/users/store"
	apperrors "ats-backend/lib/utils/app-errors"
	"ats-backend/lib/utils/helpers"
	"ats-backend/models"
	authapimodels "ats-backend/models/api/auth"
	requirementapimodels "ats-backend/models/api/requirement"
	dbmodels "ats-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const recentLimit = 5

type Provider interface {
	Create(user authapimodels.UserInfo, data requirementapimodels.RequirementData) (id string, err error)
	Update(id string, data requirementapimodels.RequirementData) error
	GetByID(id string) (item requirementapimodels.RequirementView, err error)
	List(user authapimodels.UserInfo, filter requirementapimodels.RequirementFilter) (list []requirementapimodels.RequirementView, err error)
	Recent() (list []requirementapimodels.RecentRequirementView, err error)
	Delete(id string) error
	Allocate(requirementID string, data requirementapimodels.AllocationCreate) (item requirementapimodels.AllocationView, err error)
	AllocationList(requirementID string) (list []requirementapimodels.AllocationView, err error)
	RecruiterRequirements(recruiterID string) (list []requirementapimodels.RecruiterRequirementView, err error)
	AllAllocations() (list []requirementapimodels.AllocationView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(db.DB, notify.Instance, smtp.Instance)
}

func NewInstance(conn *gorm.DB, notifier notify.Provider, mailer smtp.Provider) Provider {
	return impl{
		db:              conn,
		notifier:        notifier,
		mailer:          mailer,
		store:           requirementstore.NewInstance(conn),
		clientStore:     clientstore.NewInstance(conn),
		allocationStore: allocationstore.NewInstance(conn),
		usersStore:      usersstore.NewInstance(conn),
	}
}

type impl struct {
	db              *gorm.DB
	notifier        notify.Provider
	mailer          smtp.Provider
	store           requirementstore.Provider
	clientStore     clientstore.Provider
	allocationStore allocationstore.Provider
	usersStore      usersstore.Provider
}

func (i impl) Create(user authapimodels.UserInfo, data requirementapimodels.RequirementData) (id string, err error) {
	if err = data.Validate(); err != nil {
		return "", err
	}
	data = data.Sanitized()
	client, err := i.getClient(data.ClientID)
	if err != nil {
		return "", err
	}
	rec := dbmodels.Requirement{
		ClientID:           client.ID,
		Title:              data.Title,
		Description:        data.Description,
		Location:           data.Location,
		SkillsRequired:     data.SkillsRequired,
		ExperienceRequired: data.GetExperience(),
		CtcRange:           data.CtcRange,
		Category:           data.Category,
		Status:             data.Status,
		CreatedBy:          user.ID,
	}
	var stages []dbmodels.RequirementStage
	err = i.db.Transaction(func(tx *gorm.DB) error {
		id, err = requirementstore.NewInstance(tx).Create(rec)
		if err != nil {
			return errors.Wrap(err, "unable to create requirement")
		}
		stages, err = stagestore.NewInstance(tx).CreateRounds(id, data.NoOfRounds, data.StageNames)
		if err != nil {
			return errors.Wrap(err, "unable to create requirement stages")
		}
		return tx.Model(&dbmodels.Requirement{}).
			Where("id = ?", id).
			Update("no_of_rounds", len(stages)).
			Error
	})
	if err != nil {
		return "", err
	}
	log.
		WithField("requirement_id", id).
		WithField("client_id", client.ID).
		WithField("stages", len(stages)).
		Info("requirement created")
	i.notifier.Notify(notify.EventRequirementCreated, map[string]interface{}{
		"id":                  id,
		"title":               rec.Title,
		"description":         helpers.Shorten(rec.Description, 100),
		"location":            rec.Location,
		"client_id":           client.ID,
		"client_name":         client.Name,
		"skills_required":     rec.SkillsRequired,
		"experience_required": rec.ExperienceRequired,
		"ctc_range":           rec.CtcRange,
		"no_of_rounds":        len(stages),
		"created_by":          user.Name,
		"created_by_id":       user.ID,
		"created_by_role":     user.Role,
		"created_at":          time.Now().Format(time.RFC3339),
	})
	return id, nil
}

func (i impl) Update(id string, data requirementapimodels.RequirementData) error {
	if err := data.Validate(); err != nil {
		return err
	}
	data = data.Sanitized()
	if _, err := i.getRequirement(id); err != nil {
		return err
	}
	if _, err := i.getClient(data.ClientID); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"client_id":           data.ClientID,
		"title":               data.Title,
		"description":         data.Description,
		"location":            data.Location,
		"skills_required":     data.SkillsRequired,
		"experience_required": data.GetExperience(),
		"ctc_range":           data.CtcRange,
		"category":            data.Category,
		"status":              data.Status,
	}
	if err := i.store.Update(id, updMap); err != nil {
		return errors.Wrap(err, "unable to update requirement")
	}
	return nil
}

func (i impl) GetByID(id string) (item requirementapimodels.RequirementView, err error) {
	rec, err := i.getRequirement(id)
	if err != nil {
		return item, err
	}
	return requirementapimodels.RequirementConvert(*rec), nil
}

func (i impl) List(user authapimodels.UserInfo, filter requirementapimodels.RequirementFilter) (list []requirementapimodels.RequirementView, err error) {
	storeFilter := requirementstore.Filter{
		ClientID: filter.ClientID,
		Status:   filter.Status,
		Search:   filter.Search,
	}
	switch {
	case user.SeesAllData():
	case user.Role == models.UserRoleClient:
		if user.ClientID == "" {
			return []requirementapimodels.RequirementView{}, nil
		}
		storeFilter.ClientID = user.ClientID
	case user.Role.CanTakeAllocation():
		storeFilter.IDs, err = i.allocationStore.RequirementIDsByRecruiter(user.ID)
		if err != nil {
			return nil, errors.Wrap(err, "unable to get allocated requirements")
		}
		storeFilter.OnlyIDsUsed = true
	default:
		return []requirementapimodels.RequirementView{}, nil
	}
	recs, err := i.store.List(storeFilter)
	if err != nil {
		return nil, errors.Wrap(err, "unable to list requirements")
	}
	return requirementapimodels.RequirementListConvert(recs), nil
}

func (i impl) Recent() (list []requirementapimodels.RecentRequirementView, err error) {
	recs, err := i.store.List(requirementstore.Filter{Limit: recentLimit})
	if err != nil {
		return nil, errors.Wrap(err, "unable to list recent requirements")
	}
	list = make([]requirementapimodels.RecentRequirementView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, requirementapimodels.RecentRequirementConvert(rec))
	}
	return list, nil
}

// Delete removes the requirement with its stages, allocations and every
// pipeline record that references it.
func (i impl) Delete(id string) error {
	if _, err := i.getRequirement(id); err != nil {
		return err
	}
	err := i.db.Transaction(func(tx *gorm.DB) error {
		if err := progressstore.NewInstance(tx).DeleteByRequirement(id); err != nil {
			return errors.Wrap(err, "unable to delete candidate progress")
		}
		if err := screeningstore.NewInstance(tx).DeleteByRequirement(id); err != nil {
			return errors.Wrap(err, "unable to delete screenings")
		}
		if err := interviewstore.NewInstance(tx).DeleteByRequirement(id); err != nil {
			return errors.Wrap(err, "unable to delete interviews")
		}
		if err := stagestore.NewInstance(tx).DeleteByRequirement(id); err != nil {
			return errors.Wrap(err, "unable to delete requirement stages")
		}
		if err := allocationstore.NewInstance(tx).DeleteByRequirement(id); err != nil {
			return errors.Wrap(err, "unable to delete allocations")
		}
		return requirementstore.NewInstance(tx).Delete(id)
	})
	if err != nil {
		return err
	}
	log.WithField("requirement_id", id).Info("requirement deleted")
	return nil
}

func (i impl) Allocate(requirementID string, data requirementapimodels.AllocationCreate) (item requirementapimodels.AllocationView, err error) {
	if err = data.Validate(); err != nil {
		return item, err
	}
	requirement, err := i.getRequirement(requirementID)
	if err != nil {
		return item, err
	}
	recruiter, err := i.usersStore.GetByID(data.RecruiterID)
	if err != nil {
		return item, errors.Wrap(err, "unable to get recruiter")
	}
	if recruiter == nil {
		return item, apperrors.NewNotFound("recruiter", data.RecruiterID)
	}
	if !recruiter.Role.CanTakeAllocation() {
		return item, apperrors.NewValidation("user %s is a %s, requirements are allocated to recruiters and team leads", recruiter.Name, recruiter.Role.ToHuman())
	}
	exist, err := i.allocationStore.Find(requirement.ID, recruiter.ID)
	if err != nil {
		return item, errors.Wrap(err, "unable to check allocation")
	}
	if exist != nil {
		return item, apperrors.NewConflict("requirement is already allocated to %s", recruiter.Name)
	}
	assigner, err := i.usersStore.GetByID(data.AssignedBy)
	if err != nil {
		return item, errors.Wrap(err, "unable to get assigner")
	}
	rec := dbmodels.RequirementAllocation{
		RequirementID: requirement.ID,
		RecruiterID:   recruiter.ID,
		AssignedBy:    data.AssignedBy,
		Status:        models.AllocationStatusAssigned,
	}
	rec.ID, err = i.allocationStore.Create(rec)
	if err != nil {
		return item, errors.Wrap(err, "unable to create allocation")
	}
	rec.Requirement = requirement
	rec.Recruiter = recruiter

	logger := log.
		WithField("requirement_id", requirement.ID).
		WithField("recruiter_id", recruiter.ID)
	logger.Info("requirement allocated")

	payload := map[string]interface{}{
		"allocation_id":     rec.ID,
		"requirement_id":    requirement.ID,
		"requirement_title": requirement.Title,
		"client_id":         requirement.ClientID,
		"recruiter_id":      recruiter.ID,
		"recruiter_name":    recruiter.Name,
		"recruiter_email":   recruiter.Email,
		"assigned_by_id":    data.AssignedBy,
		"status":            rec.Status,
	}
	if requirement.Client != nil {
		payload["client_name"] = requirement.Client.Name
	}
	from := models.SystemUser
	if assigner != nil {
		from = assigner.Name
		payload["assigned_by_name"] = assigner.Name
		payload["assigned_by_email"] = assigner.Email
	}
	i.notifier.Notify(notify.EventRequirementAssigned, payload)
	if i.mailer != nil && recruiter.Email != "" {
		err = i.mailer.SendEMail(from, recruiter.Email, allocationMessage(*requirement), "Requirement assigned")
		if err != nil {
			logger.WithError(err).Warn("allocation e-mail not sent")
		}
	}
	return requirementapimodels.AllocationConvert(rec), nil
}

func (i impl) AllocationList(requirementID string) (list []requirementapimodels.AllocationView, err error) {
	if _, err = i.getRequirement(requirementID); err != nil {
		return nil, err
	}
	recs, err := i.allocationStore.ListByRequirement(requirementID)
	if err != nil {
		return nil, errors.Wrap(err, "unable to list allocations")
	}
	return requirementapimodels.AllocationListConvert(recs), nil
}

func (i impl) AllAllocations() (list []requirementapimodels.AllocationView, err error) {
	recs, err := i.allocationStore.ListAll()
	if err != nil {
		return nil, errors.Wrap(err, "unable to list allocations")
	}
	return requirementapimodels.AllocationListConvert(recs), nil
}

func (i impl) RecruiterRequirements(recruiterID string) (list []requirementapimodels.RecruiterRequirementView, err error) {
	recs, err := i.allocationStore.ListByRecruiter(recruiterID)
	if err != nil {
		return nil, errors.Wrap(err, "unable to list recruiter allocations")
	}
	list = make([]requirementapimodels.RecruiterRequirementView, 0, len(recs))
	for _, rec := range recs {
		if rec.Requirement == nil {
			continue
		}
		list = append(list, requirementapimodels.RecruiterRequirementView{
			AllocationID: rec.ID,
			AssignedDate: rec.CreatedAt,
			Status:       rec.Status,
			AssignedBy:   rec.AssignedBy,
			Requirement:  requirementapimodels.RequirementConvert(*rec.Requirement),
		})
	}
	return list, nil
}

func (i impl) getRequirement(id string) (*dbmodels.Requirement, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "unable to get requirement")
	}
	if rec == nil {
		return nil, apperrors.NewNotFound("requirement", id)
	}
	return rec, nil
}

func (i impl) getClient(id string) (*dbmodels.Client, error) {
	rec, err := i.clientStore.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "unable to get client")
	}
	if rec == nil {
		return nil, apperrors.NewValidation("invalid client_id: %s", id)
	}
	return rec, nil
}

func allocationMessage(requirement dbmodels.Requirement) string {
	msg := fmt.Sprintf("You have been assigned the requirement \"%s\"", requirement.Title)
	if requirement.Location != "" {
		msg += fmt.Sprintf(" (%s)", requirement.Location)
	}
	if requirement.Client != nil {
		msg += fmt.Sprintf(" for %s", requirement.Client.Name)
	}
	return msg + "."
}
