package document

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/admin"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/attendance"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/chat"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/diary"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/employee"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/leave"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/project"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/settings"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/metrics"
)

// Document is the entire datastore: one JSON file holding every collection.
// Key names match the legacy document so existing db.json files load as-is.
type Document struct {
	SchemaVersion int `json:"schemaVersion"`

	Employees     []employee.Employee     `json:"employees"`
	Attendance    []attendance.Attendance `json:"attendance"`
	LeaveRequests []leave.LeaveRequest    `json:"leaveRequests"`
	DayDiary      []diary.Entry           `json:"dayDiary"`
	Projects      []project.Project       `json:"projects"`
	ChatGroups    []chat.Group            `json:"chatGroups"`
	ChatMessages  []chat.Message          `json:"chatMessages"`
	AdminProfiles []admin.Profile         `json:"adminProfiles"`

	// UserChatStatus holds the per-(user, group) read watermarks.
	UserChatStatus []chat.ReadStatus `json:"userChatStatus"`

	Settings settings.OfficeSettings `json:"settings"`

	// AdminProfile is the legacy singular field; the admin-seed migration moves
	// it into AdminProfiles.
	AdminProfile *admin.Profile `json:"adminProfile,omitempty"`
}

// Store owns the document and its file. All repository types share one Store;
// the RWMutex makes every mutation a single-writer critical section that reads
// current state, applies the change and persists before releasing the lock.
type Store struct {
	mu   sync.RWMutex
	path string
	doc  *Document
}

// Open reads the document at path, creating it when missing, and brings it to
// the current schema version.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		var doc Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse datastore %s: %w", path, err)
		}
		s.doc = &doc
	case errors.Is(err, os.ErrNotExist):
		s.doc = &Document{}
	default:
		return nil, fmt.Errorf("failed to read datastore %s: %w", path, err)
	}

	migrated, err := migrate(s.doc)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate datastore: %w", err)
	}
	if migrated {
		if err := s.persist(); err != nil {
			return nil, err
		}
	}

	slog.Info("Datastore opened", "path", path, "schema_version", s.doc.SchemaVersion)
	return s, nil
}

// View runs fn with the document under the read lock. fn must not mutate the
// document or retain references past its return; copy what you keep.
func (s *Store) View(fn func(doc *Document) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.doc)
}

// Mutate runs fn with the document under the write lock and persists the
// result. When fn errors nothing is written; when the persist itself fails the
// in-memory document is rolled back so memory never diverges from disk.
func (s *Store) Mutate(fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, err := json.Marshal(s.doc)
	if err != nil {
		return fmt.Errorf("failed to snapshot datastore: %w", err)
	}

	if err := fn(s.doc); err != nil {
		return err
	}

	if err := s.persist(); err != nil {
		restored := &Document{}
		if restoreErr := json.Unmarshal(snapshot, restored); restoreErr == nil {
			s.doc = restored
		}
		return err
	}
	return nil
}

// persist writes the document atomically: marshal, write a temp file in the
// same directory, fsync, rename over the target. Callers hold the write lock.
func (s *Store) persist() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal datastore: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp datastore file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write datastore: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to sync datastore: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp datastore file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace datastore file: %w", err)
	}

	metrics.DocumentSaved()
	return nil
}
