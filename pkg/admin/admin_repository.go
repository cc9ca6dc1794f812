package admin

import (
	"Relief-Aid-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	AdminRepository interface {
		GetAdminByUsername(ctx context.Context, username string) (*entities.Admin, error)
		CreateAdmin(ctx context.Context, admin *entities.Admin) error
		UpdatePassword(ctx context.Context, username string, password string) error
	}

	adminRepository struct {
		db *gorm.DB
	}
)

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetAdminByUsername(ctx context.Context, username string) (*entities.Admin, error) {
	var admin entities.Admin
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) CreateAdmin(ctx context.Context, admin *entities.Admin) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

func (r *adminRepository) UpdatePassword(ctx context.Context, username string, password string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Admin{}).
		Where("username = ?", username).
		Update("password", password).Error
}
