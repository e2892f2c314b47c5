package repository

import (
	"strings"

	"github.com/evandrarf/mock-interview-be/internal/entity"
	"gorm.io/gorm"
)

type (
	UserRepository interface {
		Create(db *gorm.DB, user *entity.User) error
		FindByEmail(db *gorm.DB, email string) (*entity.User, error)
		FindByID(db *gorm.DB, id uint) (*entity.User, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(db *gorm.DB, user *entity.User) error {
	if db == nil {
		db = r.db
	}
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	return db.Create(user).Error
}

func (r *userRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	if db == nil {
		db = r.db
	}
	var user entity.User
	err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(db *gorm.DB, id uint) (*entity.User, error) {
	if db == nil {
		db = r.db
	}
	var user entity.User
	if err := db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
