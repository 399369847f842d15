package migrations

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/linskybing/campus-helpdesk/internal/domain/campus"
	"github.com/linskybing/campus-helpdesk/internal/domain/category"
	"github.com/linskybing/campus-helpdesk/internal/domain/committee"
	"github.com/linskybing/campus-helpdesk/internal/domain/outbox"
	"github.com/linskybing/campus-helpdesk/internal/domain/status"
	"github.com/linskybing/campus-helpdesk/internal/domain/student"
	"github.com/linskybing/campus-helpdesk/internal/domain/ticket"
	"github.com/linskybing/campus-helpdesk/internal/domain/user"
	"gopkg.in/yaml.v2"
	"gorm.io/gorm"
)

//go:embed default_seed.yaml
var defaultSeed []byte

type SeedStatus struct {
	Value           string `yaml:"value"`
	Label           string `yaml:"label"`
	Description     string `yaml:"description"`
	ProgressPercent int    `yaml:"progress_percent"`
	BadgeColor      string `yaml:"badge_color"`
	IsFinal         bool   `yaml:"is_final"`
	DisplayOrder    int    `yaml:"display_order"`
}

type SeedFile struct {
	Statuses    []SeedStatus `yaml:"statuses"`
	SuperAdmins []string     `yaml:"super_admins"`
}

// Run migrates the schema and applies the seed file. An empty or missing
// path falls back to the built-in seed.
func Run(db *gorm.DB, seedPath string) error {
	if err := AutoMigrate(db); err != nil {
		return err
	}
	seed, err := LoadSeed(seedPath)
	if err != nil {
		return err
	}
	return Seed(db, seed)
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&campus.Unit{},
		&student.Student{},
		&committee.Committee{},
		&committee.Member{},
		&status.Status{},
		&category.Category{},
		&category.Subcategory{},
		&category.SubSubcategory{},
		&category.Field{},
		&category.FieldOption{},
		&ticket.Ticket{},
		&outbox.Event{},
	)
}

func LoadSeed(path string) (SeedFile, error) {
	raw := defaultSeed
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			raw = b
		case errors.Is(err, os.ErrNotExist):
			slog.Warn("seed file not found, using built-in seed", "path", path)
		default:
			return SeedFile{}, err
		}
	}
	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return SeedFile{}, fmt.Errorf("parse seed: %w", err)
	}
	return seed, nil
}

// Seed inserts statuses whose value is not present yet and promotes the
// listed subjects. Existing status rows are left untouched.
func Seed(db *gorm.DB, seed SeedFile) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, s := range seed.Statuses {
			value := status.Normalize(s.Value)
			var n int64
			if err := tx.Model(&status.Status{}).Where("value = ?", value).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				continue
			}
			row := status.Status{
				Value:           value,
				Label:           s.Label,
				Description:     s.Description,
				ProgressPercent: s.ProgressPercent,
				BadgeColor:      s.BadgeColor,
				IsActive:        true,
				IsFinal:         s.IsFinal,
				DisplayOrder:    s.DisplayOrder,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("seed status %s: %w", value, err)
			}
			slog.Info("seeded status", "value", value)
		}

		for _, subject := range seed.SuperAdmins {
			var u user.User
			err := tx.Where("external_id = ?", subject).First(&u).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				u = user.User{ExternalID: subject, Role: user.RoleSuperAdmin, Active: true}
				if err := tx.Create(&u).Error; err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}
			if u.Role != user.RoleSuperAdmin {
				if err := tx.Model(&u).Update("role", user.RoleSuperAdmin).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}
