package document

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/admin"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/attendance"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/chat"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/diary"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/employee"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/leave"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/project"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/settings"
)

// Default office settings for a document that has never been configured.
const (
	DefaultOfficeLatitude  = 19.0760
	DefaultOfficeLongitude = 72.8777
	DefaultClockInRadius   = 500
)

// Default admin credentials seeded into an empty document.
const (
	DefaultAdminName     = "Admin"
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
	DefaultAdminAvatar   = "https://placehold.co/100x100.png"
)

type migration struct {
	version int
	name    string
	apply   func(doc *Document) error
}

// migrations run in order against any document older than the last entry.
// Each must be idempotent: documents written by older builds may have had some
// of the work done already by the legacy property-presence checks.
var migrations = []migration{
	{1, "init_collections", migrateInitCollections},
	{2, "seed_admin_profile", migrateSeedAdminProfile},
	{3, "hash_plaintext_passwords", migrateHashPlaintextPasswords},
}

// migrate brings doc up to the newest schema version. Returns true when any
// migration ran and the document needs persisting.
func migrate(doc *Document) (bool, error) {
	changed := false
	for _, m := range migrations {
		if doc.SchemaVersion >= m.version {
			continue
		}
		if err := m.apply(doc); err != nil {
			return false, fmt.Errorf("migration %d (%s): %w", m.version, m.name, err)
		}
		doc.SchemaVersion = m.version
		changed = true
		slog.Info("Datastore migration applied", "version", m.version, "name", m.name)
	}
	return changed, nil
}

// migrateInitCollections replaces nil collections with empty ones and fills in
// default office settings.
func migrateInitCollections(doc *Document) error {
	if doc.Employees == nil {
		doc.Employees = []employee.Employee{}
	}
	if doc.Attendance == nil {
		doc.Attendance = []attendance.Attendance{}
	}
	if doc.LeaveRequests == nil {
		doc.LeaveRequests = []leave.LeaveRequest{}
	}
	if doc.DayDiary == nil {
		doc.DayDiary = []diary.Entry{}
	}
	if doc.Projects == nil {
		doc.Projects = []project.Project{}
	}
	if doc.ChatGroups == nil {
		doc.ChatGroups = []chat.Group{}
	}
	if doc.ChatMessages == nil {
		doc.ChatMessages = []chat.Message{}
	}
	if doc.AdminProfiles == nil {
		doc.AdminProfiles = []admin.Profile{}
	}
	if doc.UserChatStatus == nil {
		doc.UserChatStatus = []chat.ReadStatus{}
	}

	if doc.Settings.ClockInRadius == 0 {
		doc.Settings = settings.OfficeSettings{
			OfficeLocation: settings.Location{
				Latitude:  DefaultOfficeLatitude,
				Longitude: DefaultOfficeLongitude,
			},
			ClockInRadius: DefaultClockInRadius,
		}
	}
	return nil
}

// migrateSeedAdminProfile guarantees at least one admin login exists. A legacy
// singular adminProfile object is promoted into the adminProfiles collection;
// otherwise the default admin is seeded.
func migrateSeedAdminProfile(doc *Document) error {
	if len(doc.AdminProfiles) > 0 {
		doc.AdminProfile = nil
		return nil
	}

	profile := admin.Profile{
		ID:       uuid.NewString(),
		Name:     DefaultAdminName,
		Avatar:   DefaultAdminAvatar,
		Username: DefaultAdminUsername,
		Password: DefaultAdminPassword,
	}
	if legacy := doc.AdminProfile; legacy != nil {
		if legacy.Name != "" {
			profile.Name = legacy.Name
		}
		if legacy.Avatar != "" {
			profile.Avatar = legacy.Avatar
		}
		if legacy.Username != "" {
			profile.Username = legacy.Username
		}
		if legacy.Password != "" {
			profile.Password = legacy.Password
		}
		if legacy.PasswordHash != "" {
			profile.PasswordHash = legacy.PasswordHash
			profile.Password = ""
		}
	}

	doc.AdminProfiles = append(doc.AdminProfiles, profile)
	doc.AdminProfile = nil
	return nil
}

// migrateHashPlaintextPasswords moves legacy plaintext credentials into bcrypt
// hashes for employees and admin profiles.
func migrateHashPlaintextPasswords(doc *Document) error {
	for i := range doc.Employees {
		if doc.Employees[i].Password == "" {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(doc.Employees[i].Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash employee password: %w", err)
		}
		doc.Employees[i].PasswordHash = string(hash)
		doc.Employees[i].Password = ""
	}

	for i := range doc.AdminProfiles {
		if doc.AdminProfiles[i].Password == "" {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(doc.AdminProfiles[i].Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}
		doc.AdminProfiles[i].PasswordHash = string(hash)
		doc.AdminProfiles[i].Password = ""
	}
	return nil
}
