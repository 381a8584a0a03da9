// Package storage keeps survey documents and filled-out submissions in blob
// storage, keyed by survey ID and submission ID.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/surveyscope/surveyscope/pkg/config"
	"github.com/surveyscope/surveyscope/pkg/respondent"
	"github.com/surveyscope/surveyscope/pkg/survey"
)

// ErrNotFound is returned, wrapped, when a blob does not exist.
var ErrNotFound = errors.New("blob not found")

// Client abstracts blob storage for surveys and submissions.
type Client interface {
	PutSurvey(ctx context.Context, surveyID string, data []byte) error
	GetSurvey(ctx context.Context, surveyID string) ([]byte, error)
	PutSubmission(ctx context.Context, surveyID, submissionID string, data []byte) error
	GetSubmission(ctx context.Context, surveyID, submissionID string) ([]byte, error)
}

// New builds the backend selected by cfg. A "none" backend yields a nil
// Client and no error.
func New(ctx context.Context, cfg config.StorageConfig, localDefault string) (Client, error) {
	switch cfg.Backend {
	case "", "local":
		dir := cfg.LocalPath
		if dir == "" {
			dir = localDefault
		}
		return NewLocalStorage(dir), nil
	case "s3":
		if cfg.Bucket == "" {
			return nil, fmt.Errorf("s3 storage needs a bucket")
		}
		s, err := NewS3Storage(ctx, S3Config{
			Bucket:    cfg.Bucket,
			Region:    cfg.Region,
			Endpoint:  cfg.Endpoint,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
		})
		if err != nil {
			return nil, err
		}
		return s, nil
	case "gcs":
		if cfg.Bucket == "" {
			return nil, fmt.Errorf("gcs storage needs a bucket")
		}
		s, err := NewGCSStorage(ctx, cfg.Bucket)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "none":
		return nil, nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
}

// SaveSubmission stores a submission together with the survey it answers.
func SaveSubmission(ctx context.Context, c Client, sub *respondent.Submission) error {
	surveyID := sub.Survey.ID()
	if surveyID == "" {
		return fmt.Errorf("submission %s: survey has no id", sub.ID)
	}
	doc, err := survey.Encode(sub.Survey, survey.FormatJSON)
	if err != nil {
		return fmt.Errorf("encode survey %s: %w", surveyID, err)
	}
	if err := c.PutSurvey(ctx, surveyID, doc); err != nil {
		return err
	}
	data, err := respondent.Marshal(sub)
	if err != nil {
		return fmt.Errorf("encode submission %s: %w", sub.ID, err)
	}
	return c.PutSubmission(ctx, surveyID, sub.ID, data)
}

// LoadSubmission fetches and re-validates a stored submission.
func LoadSubmission(ctx context.Context, c Client, surveyID, submissionID string) (*respondent.Submission, error) {
	data, err := c.GetSubmission(ctx, surveyID, submissionID)
	if err != nil {
		return nil, err
	}
	return respondent.Unmarshal(data)
}

// LoadSurvey fetches and validates a stored survey document.
func LoadSurvey(ctx context.Context, c Client, surveyID string) (*survey.Survey, error) {
	data, err := c.GetSurvey(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	return survey.Decode(data, survey.FormatJSON)
}

func surveyKey(surveyID string) (string, error) {
	if err := checkID("survey", surveyID); err != nil {
		return "", err
	}
	return surveyID + "/survey.json", nil
}

func submissionKey(surveyID, submissionID string) (string, error) {
	if err := checkID("survey", surveyID); err != nil {
		return "", err
	}
	if err := checkID("submission", submissionID); err != nil {
		return "", err
	}
	return surveyID + "/submissions/" + submissionID + ".json", nil
}

// checkID keeps every key inside its bucket prefix or base directory.
func checkID(kind, id string) error {
	if id == "" {
		return fmt.Errorf("empty %s id", kind)
	}
	if err := survey.ValidateID(id); err != nil {
		return fmt.Errorf("%s id: %w", kind, err)
	}
	return nil
}

// LocalStorage implements Client using the local filesystem.
type LocalStorage struct {
	BaseDir string
}

// NewLocalStorage creates a LocalStorage rooted at the given directory.
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{BaseDir: baseDir}
}

func (s *LocalStorage) path(key string) string {
	return filepath.Join(s.BaseDir, filepath.FromSlash(key))
}

func (s *LocalStorage) put(key string, data []byte) error {
	path := s.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *LocalStorage) get(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	return data, err
}

func (s *LocalStorage) PutSurvey(ctx context.Context, surveyID string, data []byte) error {
	key, err := surveyKey(surveyID)
	if err != nil {
		return err
	}
	return s.put(key, data)
}

func (s *LocalStorage) GetSurvey(ctx context.Context, surveyID string) ([]byte, error) {
	key, err := surveyKey(surveyID)
	if err != nil {
		return nil, err
	}
	return s.get(key)
}

func (s *LocalStorage) PutSubmission(ctx context.Context, surveyID, submissionID string, data []byte) error {
	key, err := submissionKey(surveyID, submissionID)
	if err != nil {
		return err
	}
	return s.put(key, data)
}

func (s *LocalStorage) GetSubmission(ctx context.Context, surveyID, submissionID string) ([]byte, error) {
	key, err := submissionKey(surveyID, submissionID)
	if err != nil {
		return nil, err
	}
	return s.get(key)
}
