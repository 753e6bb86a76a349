package repository

import (
	"github.com/Fer-Urbina/LittleLemon/entity"
	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByUsername(username string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CountByIdentity(username, email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	return count, err
}

// UpdateRole flips the role column; returns rows affected so callers can
// distinguish a missing user.
func (r *UserRepository) UpdateRole(username, role string) (int64, error) {
	res := r.DB.Model(&entity.User{}).
		Where("username = ?", username).
		Update("role", role)
	return res.RowsAffected, res.Error
}
