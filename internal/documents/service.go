package documents

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"career-backend/internal/parse"
	"career-backend/internal/profile"
	"career-backend/internal/shared/telemetry"
	"career-backend/internal/staging"
	"career-backend/internal/users"
)

// Service runs the upload pipeline: stage, parse, persist, enrich profile.
type Service struct {
	Staging   *staging.Store
	Repo      Repo
	Users     *users.Service
	Profiles  profile.Repo
	Extractor *profile.Extractor
}

// UploadInput carries one upload request through the pipeline.
type UploadInput struct {
	UserID    string
	SessionID string
	Email     string
	Name      string
	Kind      string
	FileName  string
	MimeType  string
	File      io.Reader
}

// Upload validates the request, parses the staged file into text and
// records the document. For CVs it then tries to enrich the user's
// profile; that step never fails the upload.
func (s *Service) Upload(ctx context.Context, in UploadInput) (Document, error) {
	in.Kind = strings.TrimSpace(in.Kind)
	in.FileName = strings.TrimSpace(in.FileName)
	in.MimeType = strings.TrimSpace(in.MimeType)

	if in.UserID == "" {
		return Document{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if !ValidKind(in.Kind) {
		return Document{}, fmt.Errorf("%w: type must be %q or %q", ErrInvalidInput, KindCV, KindCoverLetter)
	}
	if in.FileName == "" {
		return Document{}, fmt.Errorf("%w: file name is required", ErrInvalidInput)
	}
	if in.MimeType != parse.MimePDF && in.MimeType != parse.MimeDOCX {
		return Document{}, fmt.Errorf("%w: %s", ErrUnsupportedType, in.MimeType)
	}

	staged, err := s.Staging.Stage(ctx, in.UserID, in.FileName, in.MimeType, in.File)
	if err != nil {
		return Document{}, fmt.Errorf("stage upload: %w", err)
	}
	// parse.Text releases the staged file itself; Release is idempotent,
	// so this only covers paths that never reach the parser.
	defer staged.Release()

	text, err := parse.Text(staged)
	if err != nil {
		return Document{}, err
	}

	if s.Users != nil {
		if err := s.Users.EnsureExists(ctx, in.UserID, in.Email, in.Name); err != nil {
			telemetry.Error("users.ensure_failed", map[string]any{
				"userId": in.UserID,
				"error":  err.Error(),
			})
		}
	}

	doc := Document{
		ID:        uuid.NewString(),
		UserID:    in.UserID,
		FileName:  in.FileName,
		Kind:      in.Kind,
		Content:   text,
		SessionID: in.SessionID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, fmt.Errorf("persist document: %w", err)
	}

	if doc.Kind == KindCV {
		s.enrichProfile(ctx, in.UserID, in.SessionID, text)
	}

	return doc, nil
}

// enrichProfile extracts structured fields from a CV and merges them into
// the stored profile. Failures are logged and absorbed.
func (s *Service) enrichProfile(ctx context.Context, userID, sessionID, cvText string) {
	if s.Extractor == nil || s.Profiles == nil {
		return
	}

	extracted := s.Extractor.Extract(ctx, cvText)
	if extracted == nil || !extracted.HasData() {
		telemetry.Info("profile.extraction_skipped", map[string]any{"userId": userID})
		return
	}

	var existing *profile.Record
	if rec, err := s.Profiles.GetByUser(ctx, userID); err == nil {
		existing = &rec
	} else if !errors.Is(err, profile.ErrNotFound) {
		telemetry.Error("profile.load_failed", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return
	}

	merged := profile.Reconcile(extracted, existing, userID, sessionID)
	if err := s.Profiles.Upsert(ctx, merged); err != nil {
		telemetry.Error("profile.upsert_failed", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
	}
}

// Get returns a document owned by the user.
func (s *Service) Get(ctx context.Context, userID, documentID string) (Document, error) {
	if userID == "" || documentID == "" {
		return Document{}, fmt.Errorf("%w: user id and document id are required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, userID, documentID)
}

// List returns the user's documents, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Document, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Delete removes a document owned by the user.
func (s *Service) Delete(ctx context.Context, userID, documentID string) error {
	if userID == "" || documentID == "" {
		return fmt.Errorf("%w: user id and document id are required", ErrInvalidInput)
	}
	return s.Repo.Delete(ctx, userID, documentID)
}
