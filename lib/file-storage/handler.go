package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"

	"ats-backend/config"
	s3client "ats-backend/s3"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("file not found")

var allowedResumeExt = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

type Provider interface {
	UploadResume(ctx context.Context, candidateID string, file UploadFile) (key string, err error)
	GetResume(ctx context.Context, key string) (*File, error)
	DeleteResume(ctx context.Context, key string) error
}

type UploadFile struct {
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

type File struct {
	ContentType string
	Size        int64
	Body        io.ReadCloser
}

var Instance Provider

func NewHandler() {
	if s3client.Client == nil {
		log.Warn("S3 client is not initialized, resume upload disabled")
		Instance = disabled{}
		return
	}
	Instance = NewInstance(s3client.Client, config.Conf.S3.BucketName)
}

func NewInstance(client *minio.Client, bucketName string) Provider {
	return &impl{
		client:     client,
		bucketName: bucketName,
	}
}

type impl struct {
	client     *minio.Client
	bucketName string
}

func (i impl) UploadResume(ctx context.Context, candidateID string, file UploadFile) (key string, err error) {
	contentType, err := ResumeContentType(file.FileName)
	if err != nil {
		return "", err
	}
	key = resumeKey(candidateID, file.FileName)
	_, err = i.client.PutObject(ctx, i.bucketName, key, file.Reader, file.Size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "unable to upload resume")
	}
	log.
		WithField("candidate_id", candidateID).
		WithField("key", key).
		Info("resume uploaded")
	return key, nil
}

func (i impl) GetResume(ctx context.Context, key string) (*File, error) {
	obj, err := i.client.GetObject(ctx, i.bucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "unable to get resume")
	}
	info, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "unable to get resume info")
	}
	return &File{
		ContentType: info.ContentType,
		Size:        info.Size,
		Body:        obj,
	}, nil
}

func (i impl) DeleteResume(ctx context.Context, key string) error {
	err := i.client.RemoveObject(ctx, i.bucketName, key, minio.RemoveObjectOptions{})
	if err != nil {
		return errors.Wrap(err, "unable to delete resume")
	}
	return nil
}

// ResumeContentType validates the resume extension and returns its mime type.
func ResumeContentType(fileName string) (string, error) {
	ext := strings.ToLower(path.Ext(fileName))
	contentType, ok := allowedResumeExt[ext]
	if !ok {
		return "", errors.Errorf("invalid file type %q, allowed: pdf, doc, docx", ext)
	}
	return contentType, nil
}

func resumeKey(candidateID, fileName string) string {
	return fmt.Sprintf("resumes/%s/%s%s", candidateID, uuid.NewString(), strings.ToLower(path.Ext(fileName)))
}

type disabled struct{}

func (disabled) UploadResume(ctx context.Context, candidateID string, file UploadFile) (string, error) {
	return "", errors.New("file storage is not configured")
}

func (disabled) GetResume(ctx context.Context, key string) (*File, error) {
	return nil, ErrNotFound
}

func (disabled) DeleteResume(ctx context.Context, key string) error {
	return nil
}

// Memory keeps files in process memory.
type Memory struct {
	mu    sync.Mutex
	files map[string]memoryFile
}

type memoryFile struct {
	contentType string
	data        []byte
}

func (m *Memory) UploadResume(ctx context.Context, candidateID string, file UploadFile) (string, error) {
	contentType, err := ResumeContentType(file.FileName)
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(file.Reader)
	if err != nil {
		return "", err
	}
	key := resumeKey(candidateID, file.FileName)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.files == nil {
		m.files = map[string]memoryFile{}
	}
	m.files[key] = memoryFile{contentType: contentType, data: data}
	return key, nil
}

func (m *Memory) GetResume(ctx context.Context, key string) (*File, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.files[key]
	if !ok {
		return nil, ErrNotFound
	}
	return &File{
		ContentType: f.contentType,
		Size:        int64(len(f.data)),
		Body:        io.NopCloser(bytes.NewReader(f.data)),
	}, nil
}

func (m *Memory) DeleteResume(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, key)
	return nil
}
