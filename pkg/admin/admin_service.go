package admin

import (
	"Relief-Aid-Backend/domain"
	"Relief-Aid-Backend/entities"
	"Relief-Aid-Backend/pkg/jwt"
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	AdminService interface {
		Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
		UpsertAdmin(ctx context.Context, username string, password string) error
	}

	adminService struct {
		adminRepository AdminRepository
		jwtService      jwt.JWTService
	}
)

func NewAdminService(adminRepository AdminRepository, jwtService jwt.JWTService) AdminService {
	return &adminService{
		adminRepository: adminRepository,
		jwtService:      jwtService,
	}
}

func (s *adminService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	admin, err := s.adminRepository.GetAdminByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateTokenAdmin(admin.ID.String())
	return &domain.LoginResponse{Token: token}, nil
}

func (s *adminService) UpsertAdmin(ctx context.Context, username string, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return err
	}

	_, err = s.adminRepository.GetAdminByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.adminRepository.CreateAdmin(ctx, &entities.Admin{
				ID:       uuid.New(),
				Username: username,
				Password: string(hashed),
			})
		}
		return err
	}

	return s.adminRepository.UpdatePassword(ctx, username, string(hashed))
}
