package uploads

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verifiedboiy/fanmeetzone/logger"
)

// ErrBadExtension rejects files outside the image allow-list.
var ErrBadExtension = errors.New("unsupported file type")

var allowedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Writer stores uploaded proof/profile images on the local filesystem and
// hands back the stable path they can be fetched from later.
type Writer struct {
	Dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir}
}

// Save persists a multipart upload under a timestamped random name and
// returns its retrieval path ("/uploads/<name>"). A nil header means the
// field was simply not submitted; that is not an error, the URL is just
// empty.
func (w *Writer) Save(fh *multipart.FileHeader) (string, error) {
	if fh == nil || fh.Filename == "" {
		return "", nil
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext == "" {
		ext = ".png"
	}
	if !allowedExts[ext] {
		logger.Log.Warn(fmt.Sprintf("[uploads] Rejected upload %q: bad extension %s", fh.Filename, ext))
		return "", fmt.Errorf("%w: %s", ErrBadExtension, ext)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := time.Now().UTC().Format("20060102150405") + "_" + randomSuffix(6) + ext
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}

	dst, err := os.Create(filepath.Join(w.Dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	logger.Log.Info(fmt.Sprintf("[uploads] Stored %s (%d bytes).", name, fh.Size))
	return "/uploads/" + name, nil
}

const suffixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomSuffix(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	for i := range b {
		b[i] = suffixAlphabet[int(b[i])%len(suffixAlphabet)]
	}
	return string(b)
}
