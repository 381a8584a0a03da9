package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
)

// GCSStorage implements Client using Google Cloud Storage.
type GCSStorage struct {
	client *gcs.Client
	bucket string
}

// NewGCSStorage creates a GCS-backed Client using Application Default
// Credentials.
func NewGCSStorage(ctx context.Context, bucket string) (*GCSStorage, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}
	return &GCSStorage{client: client, bucket: bucket}, nil
}

func (s *GCSStorage) put(ctx context.Context, key string, data []byte) error {
	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = "application/json"
	if _, err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("gcs write %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("gcs close %s: %w", key, err)
	}
	return nil
}

func (s *GCSStorage) get(ctx context.Context, key string) ([]byte, error) {
	r, err := s.client.Bucket(s.bucket).Object(key).NewReader(ctx)
	if err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return nil, fmt.Errorf("gcs read %s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("gcs read %s: %w", key, err)
	}
	defer r.Close()
	return io.ReadAll(r)
}

func (s *GCSStorage) PutSurvey(ctx context.Context, surveyID string, data []byte) error {
	key, err := surveyKey(surveyID)
	if err != nil {
		return err
	}
	return s.put(ctx, key, data)
}

func (s *GCSStorage) GetSurvey(ctx context.Context, surveyID string) ([]byte, error) {
	key, err := surveyKey(surveyID)
	if err != nil {
		return nil, err
	}
	return s.get(ctx, key)
}

func (s *GCSStorage) PutSubmission(ctx context.Context, surveyID, submissionID string, data []byte) error {
	key, err := submissionKey(surveyID, submissionID)
	if err != nil {
		return err
	}
	return s.put(ctx, key, data)
}

func (s *GCSStorage) GetSubmission(ctx context.Context, surveyID, submissionID string) ([]byte, error) {
	key, err := submissionKey(surveyID, submissionID)
	if err != nil {
		return nil, err
	}
	return s.get(ctx, key)
}
