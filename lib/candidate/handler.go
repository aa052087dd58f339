package candidate

import (
	"context"
	"strings"

	"ats-backend/db"
	candidatestore "ats-backend/lib/candidate/store"
	filestorage "ats-backend/lib/file-storage"
	interviewstore "ats-backend/lib/pipeline/interview-store"
	progressstore "ats-backend/lib/pipeline/progress-store"
	screeningstore "ats-backend/lib/screening/store"
	apperrors "ats-backend/lib/utils/app-errors"
	"ats-backend/models"
	authapimodels "ats-backend/models/api/auth"
	candidateapimodels "ats-backend/models/api/candidate"
	dbmodels "ats-backend/models/db"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(ctx context.Context, user authapimodels.UserInfo, data candidateapimodels.CandidateData, resume *filestorage.UploadFile) (id string, err error)
	Update(ctx context.Context, id string, data candidateapimodels.CandidateData, resume *filestorage.UploadFile) error
	GetByID(id string) (item candidateapimodels.CandidateView, err error)
	List(user authapimodels.UserInfo, filter candidateapimodels.CandidateFilter) (list []candidateapimodels.CandidateView, rowCount int64, err error)
	Delete(ctx context.Context, id string) error
	GetResume(ctx context.Context, id string) (file *filestorage.File, fileName string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(db.DB, filestorage.Instance)
}

func NewInstance(conn *gorm.DB, storage filestorage.Provider) Provider {
	return impl{
		db:      conn,
		storage: storage,
		store:   candidatestore.NewInstance(conn),
	}
}

type impl struct {
	db      *gorm.DB
	storage filestorage.Provider
	store   candidatestore.Provider
}

func (i impl) Create(ctx context.Context, user authapimodels.UserInfo, data candidateapimodels.CandidateData, resume *filestorage.UploadFile) (id string, err error) {
	if err = data.Validate(); err != nil {
		return "", err
	}
	if resume != nil {
		if _, err = filestorage.ResumeContentType(resume.FileName); err != nil {
			return "", apperrors.NewValidation("%s", err.Error())
		}
	}
	rec := dbmodels.Candidate{
		Name:       strings.TrimSpace(data.Name),
		Email:      strings.TrimSpace(data.Email),
		Phone:      strings.TrimSpace(data.Phone),
		Skills:     data.Skills,
		Education:  data.Education,
		Experience: data.Experience,
		Ctc:        data.Ctc,
		Ectc:       data.Ectc,
		Source:     data.Source,
	}
	rec.ID = uuid.NewString()
	if user.ID != "" {
		rec.CreatedBy = &user.ID
	}
	if resume != nil {
		rec.ResumeKey, err = i.storage.UploadResume(ctx, rec.ID, *resume)
		if err != nil {
			return "", err
		}
		rec.ResumeFileName = resume.FileName
		rec.ResumeContentType, _ = filestorage.ResumeContentType(resume.FileName)
	}
	id, err = i.store.Create(rec)
	if err != nil {
		if rec.ResumeKey != "" {
			i.removeResume(ctx, rec.ResumeKey)
		}
		return "", errors.Wrap(err, "unable to create candidate")
	}
	log.
		WithField("candidate_id", id).
		WithField("created_by", user.ID).
		Info("candidate created")
	return id, nil
}

func (i impl) Update(ctx context.Context, id string, data candidateapimodels.CandidateData, resume *filestorage.UploadFile) error {
	if err := data.Validate(); err != nil {
		return err
	}
	rec, err := i.getCandidate(id)
	if err != nil {
		return err
	}
	updMap := data.UpdateMap()
	if resume != nil {
		contentType, err := filestorage.ResumeContentType(resume.FileName)
		if err != nil {
			return apperrors.NewValidation("%s", err.Error())
		}
		key, err := i.storage.UploadResume(ctx, id, *resume)
		if err != nil {
			return err
		}
		updMap["resume_key"] = key
		updMap["resume_file_name"] = resume.FileName
		updMap["resume_content_type"] = contentType
	}
	if err = i.store.Update(id, updMap); err != nil {
		return errors.Wrap(err, "unable to update candidate")
	}
	if resume != nil && rec.HasResume() {
		i.removeResume(ctx, rec.ResumeKey)
	}
	return nil
}

func (i impl) GetByID(id string) (item candidateapimodels.CandidateView, err error) {
	rec, err := i.getCandidate(id)
	if err != nil {
		return item, err
	}
	return candidateapimodels.CandidateConvert(*rec), nil
}

func (i impl) List(user authapimodels.UserInfo, filter candidateapimodels.CandidateFilter) (list []candidateapimodels.CandidateView, rowCount int64, err error) {
	storeFilter := candidatestore.Filter{Search: filter.Search}
	if user.Role == models.UserRoleRecruiter {
		storeFilter.CreatedBy = user.ID
	}
	if filter.Paged() {
		storeFilter.Offset, storeFilter.Limit = filter.Offset()
	}
	recs, rowCount, err := i.store.List(storeFilter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "unable to list candidates")
	}
	return candidateapimodels.CandidateListConvert(recs), rowCount, nil
}

// Delete removes the candidate with its pipeline records.
func (i impl) Delete(ctx context.Context, id string) error {
	rec, err := i.getCandidate(id)
	if err != nil {
		return err
	}
	err = i.db.Transaction(func(tx *gorm.DB) error {
		if err := progressstore.NewInstance(tx).DeleteByCandidate(id); err != nil {
			return errors.Wrap(err, "unable to delete candidate progress")
		}
		if err := interviewstore.NewInstance(tx).DeleteByCandidate(id); err != nil {
			return errors.Wrap(err, "unable to delete interviews")
		}
		if err := screeningstore.NewInstance(tx).DeleteByCandidate(id); err != nil {
			return errors.Wrap(err, "unable to delete screenings")
		}
		return candidatestore.NewInstance(tx).Delete(id)
	})
	if err != nil {
		return err
	}
	if rec.HasResume() {
		i.removeResume(ctx, rec.ResumeKey)
	}
	log.WithField("candidate_id", id).Info("candidate deleted")
	return nil
}

func (i impl) GetResume(ctx context.Context, id string) (file *filestorage.File, fileName string, err error) {
	rec, err := i.getCandidate(id)
	if err != nil {
		return nil, "", err
	}
	if !rec.HasResume() {
		return nil, "", apperrors.NewNotFound("resume", id)
	}
	file, err = i.storage.GetResume(ctx, rec.ResumeKey)
	if err != nil {
		if errors.Is(err, filestorage.ErrNotFound) {
			return nil, "", apperrors.NewNotFound("resume", id)
		}
		return nil, "", err
	}
	return file, rec.ResumeFileName, nil
}

func (i impl) getCandidate(id string) (*dbmodels.Candidate, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "unable to get candidate")
	}
	if rec == nil {
		return nil, apperrors.NewNotFound("candidate", id)
	}
	return rec, nil
}

func (i impl) removeResume(ctx context.Context, key string) {
	if err := i.storage.DeleteResume(ctx, key); err != nil {
		log.WithError(err).WithField("key", key).Warn("resume not removed from storage")
	}
}
