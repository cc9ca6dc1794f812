package donation

import (
	"Relief-Aid-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	DonationRepository interface {
		CreateDonation(ctx context.Context, donation *entities.Donation) error
		GetAllDonations(ctx context.Context) ([]*entities.Donation, error)
		SumAmount(ctx context.Context, donationType string) (int64, error)
		CountDonations(ctx context.Context, donationType string) (int64, error)

		CreatePackage(ctx context.Context, pkg *entities.DonationPackage) error
		GetPackages(ctx context.Context) ([]*entities.DonationPackage, error)
		GetPackageByID(ctx context.Context, id string) (*entities.DonationPackage, error)
		CountDonationsByPackage(ctx context.Context) (map[uuid.UUID]int64, error)
	}

	donationRepository struct {
		db *gorm.DB
	}
)

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) CreateDonation(ctx context.Context, donation *entities.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *donationRepository) GetAllDonations(ctx context.Context) ([]*entities.Donation, error) {
	var donations []*entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("DonationPackage").
		Order("created_at DESC, id DESC").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) SumAmount(ctx context.Context, donationType string) (int64, error) {
	var result struct {
		Total int64
	}

	query := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Select("COALESCE(SUM(amount), 0) as total")
	if donationType != "" {
		query = query.Where("type = ?", donationType)
	}

	if err := query.Scan(&result).Error; err != nil {
		return 0, err
	}
	return result.Total, nil
}

func (r *donationRepository) CountDonations(ctx context.Context, donationType string) (int64, error) {
	var count int64

	query := r.db.WithContext(ctx).Model(&entities.Donation{})
	if donationType != "" {
		query = query.Where("type = ?", donationType)
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *donationRepository) CreatePackage(ctx context.Context, pkg *entities.DonationPackage) error {
	return r.db.WithContext(ctx).Create(pkg).Error
}

func (r *donationRepository) GetPackages(ctx context.Context) ([]*entities.DonationPackage, error) {
	var packages []*entities.DonationPackage
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at ASC, id ASC").
		Find(&packages).Error; err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *donationRepository) GetPackageByID(ctx context.Context, id string) (*entities.DonationPackage, error) {
	var pkg entities.DonationPackage
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&pkg).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *donationRepository) CountDonationsByPackage(ctx context.Context) (map[uuid.UUID]int64, error) {
	var rows []struct {
		PackageID uuid.UUID
		Count     int64
	}

	if err := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Select("package_id, COUNT(*) as count").
		Where("type = ? AND package_id IS NOT NULL", entities.DonationTypePackage).
		Group("package_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.PackageID] = row.Count
	}
	return counts, nil
}
