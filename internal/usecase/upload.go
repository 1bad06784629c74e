package usecase

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/suitopia/internal/domain/errors"
)

// UploadURLPrefix is the public path uploaded files are served under.
const UploadURLPrefix = "/uploads/"

var whitespace = regexp.MustCompile(`\s+`)

// UploadUseCase stores uploaded images on local disk.
type UploadUseCase struct {
	dir string
	now func() time.Time
}

// NewUploadUseCase constructs UploadUseCase writing into dir.
func NewUploadUseCase(dir string) *UploadUseCase {
	return &UploadUseCase{dir: dir, now: time.Now}
}

// Dir returns the directory uploads are written to.
func (u *UploadUseCase) Dir() string {
	return u.dir
}

// Save writes the content under a timestamped name and returns its public URL.
func (u *UploadUseCase) Save(ctx context.Context, name string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" || strings.TrimSpace(base) == "" {
		return "", fmt.Errorf("%w: file name is required", domainErrors.ErrValidation)
	}
	filename := fmt.Sprintf("%d-%s", u.now().UnixMilli(), whitespace.ReplaceAllString(base, "_"))

	if err := os.MkdirAll(u.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	f, err := os.Create(filepath.Join(u.dir, filename))
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}
	if _, err := io.Copy(f, content); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close upload: %w", err)
	}

	return UploadURLPrefix + filename, nil
}
