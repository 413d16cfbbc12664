// Package staging holds uploaded files on local disk for the duration of a
// single upload request. A staged file has exactly one owner and is removed
// by Release once the parser is done with it.
package staging

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"career-backend/internal/shared/telemetry"
	"career-backend/internal/shared/util"
)

// StagedUpload is a transient on-disk copy of an uploaded file awaiting parsing.
type StagedUpload struct {
	Path      string
	FileName  string
	MimeType  string
	SizeBytes int64
}

// Release removes the staged file. Removal is best-effort and idempotent: a
// second Release is a no-op and a cleanup error never surfaces to the caller.
func (u *StagedUpload) Release() {
	if u == nil || u.Path == "" {
		return
	}
	if err := os.Remove(u.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		telemetry.Error("staging.release.failed", map[string]any{
			"path": u.Path,
			"err":  err.Error(),
		})
	}
}

// Store stages uploads under a base directory, namespaced per user.
type Store struct {
	baseDir string
}

// New creates a staging store rooted at baseDir.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Stage writes the reader to disk under the user's namespace with a random
// prefix and returns a handle the caller owns. The declared media type is
// recorded as-is; staging never inspects content.
func (s *Store) Stage(ctx context.Context, userID, fileName, mimeType string, r io.Reader) (*StagedUpload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sanitizedName, err := util.SanitizeFileName(fileName)
	if err != nil {
		return nil, fmt.Errorf("sanitize file name: %w", err)
	}

	dirPath := filepath.Join(s.baseDir, util.HashUserKey(userID))
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}

	fullPath := filepath.Join(dirPath, randomID()+"_"+sanitizedName)
	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open staged file: %w", err)
	}

	size, err := io.Copy(f, r)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(fullPath)
		return nil, fmt.Errorf("write staged file: %w", err)
	}

	return &StagedUpload{
		Path:      fullPath,
		FileName:  fileName,
		MimeType:  mimeType,
		SizeBytes: size,
	}, nil
}

func randomID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}
