package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	gormModels "redline-garage/pitwall/internal/models/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// EnsureUser inserts the user on first sight. Existing rows are left alone.
func (r *UserRepository) EnsureUser(ctx context.Context, id, name, email string) error {
	user := gormModels.User{ID: id}
	if name != "" {
		user.Name = &name
	}
	if email != "" {
		user.Email = &email
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(&user).Error
	if err != nil {
		return fmt.Errorf("failed to ensure user: %w", err)
	}
	return nil
}

// GetByID returns nil when the user does not exist.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*gormModels.User, error) {
	var user gormModels.User

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}
