// Package database seeds reference data for development stores.
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"resto-backend/internal/model"
)

// SeedOptions controls the administrator account created by SeedAll.
type SeedOptions struct {
	AdminRoleID   uint
	AdminUserID   string // token subject; generated when empty
	AdminEmail    string
	AdminPassword string
}

// SeedResult reports what the administrator ended up as.
type SeedResult struct {
	AdminUserID     string
	AdminEmployeeID uint
	LocationID      uint
}

var staffRoles = []model.Role{
	{Name: "Cook", Description: "Kitchen line"},
	{Name: "Server", Description: "Front of house"},
	{Name: "Host", Description: "Greets and seats guests"},
	{Name: "Dishwasher", Description: "Back of house cleaning"},
}

var categories = []model.Category{
	{Name: "Starters"},
	{Name: "Mains"},
	{Name: "Desserts"},
	{Name: "Drinks"},
}

// SeedAll inserts roles, a location, dish categories and an administrator.
// It is safe to run repeatedly.
func SeedAll(ctx context.Context, db *gorm.DB, opts SeedOptions, log *zap.Logger) (*SeedResult, error) {
	if opts.AdminRoleID == 0 {
		return nil, fmt.Errorf("admin role id is required")
	}
	now := time.Now()
	res := &SeedResult{}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, r := range staffRoles {
			r.StampCreated(now)
			if err := tx.Where(model.Role{Name: r.Name}).FirstOrCreate(&r).Error; err != nil {
				return fmt.Errorf("seed role %s: %w", r.Name, err)
			}
		}

		// The admin role id is fixed by configuration, so it is inserted with that id.
		admin := model.Role{ID: opts.AdminRoleID, Name: "Admin", Description: "Manages schedules"}
		admin.StampCreated(now)
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&admin).Error; err != nil {
			return fmt.Errorf("seed admin role: %w", err)
		}

		loc := model.RestaurantLocation{Address: "1 Main Street", EmployeesCount: 1}
		loc.StampCreated(now)
		if err := tx.Where(model.RestaurantLocation{Address: loc.Address}).FirstOrCreate(&loc).Error; err != nil {
			return fmt.Errorf("seed location: %w", err)
		}
		res.LocationID = loc.ID

		for _, c := range categories {
			c.StampCreated(now)
			if err := tx.Where(model.Category{Name: c.Name}).FirstOrCreate(&c).Error; err != nil {
				return fmt.Errorf("seed category %s: %w", c.Name, err)
			}
		}

		return seedAdmin(tx, opts, loc.ID, now, res)
	})
	if err != nil {
		return nil, err
	}
	log.Info("seeding finished",
		zap.String("admin_user_id", res.AdminUserID),
		zap.Uint("admin_employee_id", res.AdminEmployeeID),
		zap.Uint("location_id", res.LocationID),
	)
	return res, nil
}

func seedAdmin(tx *gorm.DB, opts SeedOptions, locationID uint, now time.Time, res *SeedResult) error {
	var existing model.Employee
	err := tx.Where("role_id = ? AND user_id IS NOT NULL", opts.AdminRoleID).First(&existing).Error
	switch {
	case err == nil:
		res.AdminUserID = *existing.UserID
		res.AdminEmployeeID = existing.ID
		return nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("look up admin: %w", err)
	}

	userID := opts.AdminUserID
	if userID == "" {
		userID = uuid.NewString()
	}
	emp := model.Employee{
		UserID:     &userID,
		FullName:   "Administrator",
		Email:      opts.AdminEmail,
		IsFeatured: true,
		RoleID:     &opts.AdminRoleID,
		LocationID: &locationID,
	}
	if opts.AdminPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(opts.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		emp.PasswordHash = string(hash)
	}
	emp.StampCreated(now)
	if err := tx.Create(&emp).Error; err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	res.AdminUserID = userID
	res.AdminEmployeeID = emp.ID
	return nil
}
