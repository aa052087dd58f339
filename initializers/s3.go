package initializers

import (
	"context"

	"ats-backend/config"
	s3client "ats-backend/s3"

	log "github.com/sirupsen/logrus"
)

func InitS3() {
	if config.Conf.S3.Endpoint == "" {
		log.Warn("S3 endpoint is not set, resume storage disabled")
		return
	}
	minioClient, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("S3 client init failed")
		return
	}
	if err = s3client.MakeBucket(context.Background(), minioClient); err != nil {
		log.WithError(err).Error("S3 bucket check failed")
		return
	}
	s3client.Client = minioClient
	log.Info("S3 client initialized")
}
