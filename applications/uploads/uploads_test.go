package uploads

import (
	"bytes"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// buildFileHeader runs real multipart encoding so Save sees the same header
// echo would hand it.
func buildFileHeader(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	r := multipart.NewReader(&buf, w.Boundary())
	form, err := r.ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File[field]
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	return files[0]
}

func TestSaveStoresFileAndReturnsPath(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	fh := buildFileHeader(t, "gift_proof", "receipt.png", []byte("png-bytes"))
	url, err := w.Save(fh)
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/") {
		t.Fatalf("url %q does not start with /uploads/", url)
	}
	if !strings.HasSuffix(url, ".png") {
		t.Fatalf("url %q lost the extension", url)
	}

	name := strings.TrimPrefix(url, "/uploads/")
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("stored content = %q", data)
	}
}

func TestSaveRejectsBadExtension(t *testing.T) {
	w := NewWriter(t.TempDir())

	fh := buildFileHeader(t, "gift_proof", "malware.exe", []byte("nope"))
	_, err := w.Save(fh)
	if !errors.Is(err, ErrBadExtension) {
		t.Fatalf("want ErrBadExtension, got %v", err)
	}
}

func TestSaveNilHeaderIsNotAnError(t *testing.T) {
	w := NewWriter(t.TempDir())

	url, err := w.Save(nil)
	if err != nil {
		t.Fatalf("nil header should be a no-op, got %v", err)
	}
	if url != "" {
		t.Fatalf("nil header should yield empty url, got %q", url)
	}
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	w := NewWriter(t.TempDir())

	a, err := w.Save(buildFileHeader(t, "f", "one.jpg", []byte("a")))
	if err != nil {
		t.Fatal(err)
	}
	b, err := w.Save(buildFileHeader(t, "f", "one.jpg", []byte("b")))
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatalf("two uploads of the same filename collided: %q", a)
	}
}
