// internal/contact/store.go
package contact

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FileStore writes each body to its own file named
// <yyyymmdd-hhmmss>-<token>.txt so that concurrent saves never collide.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Save names the file after at, the time the submission was received.
func (s *FileStore) Save(body string, at time.Time) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create message dir: %w", err)
	}

	token := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	name := fmt.Sprintf("%s-%s.txt", at.Format("20060102-150405"), token)
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return "", fmt.Errorf("create message file: %w", err)
	}
	if _, err := f.WriteString(body); err != nil {
		f.Close()
		return "", fmt.Errorf("write message file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close message file: %w", err)
	}
	return path, nil
}
