package donation

import (
	"Relief-Aid-Backend/domain"
	"Relief-Aid-Backend/entities"
	"Relief-Aid-Backend/internal/utils/storage"
	"Relief-Aid-Backend/pkg/payment"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeDonationRepository struct {
	donations []*entities.Donation
	packages  []*entities.DonationPackage
}

func (f *fakeDonationRepository) CreateDonation(_ context.Context, donation *entities.Donation) error {
	f.donations = append(f.donations, donation)
	return nil
}

func (f *fakeDonationRepository) GetAllDonations(_ context.Context) ([]*entities.Donation, error) {
	return f.donations, nil
}

func (f *fakeDonationRepository) SumAmount(_ context.Context, donationType string) (int64, error) {
	var total int64
	for _, d := range f.donations {
		if donationType == "" || d.Type == donationType {
			total += d.Amount
		}
	}
	return total, nil
}

func (f *fakeDonationRepository) CountDonations(_ context.Context, donationType string) (int64, error) {
	var count int64
	for _, d := range f.donations {
		if donationType == "" || d.Type == donationType {
			count++
		}
	}
	return count, nil
}

func (f *fakeDonationRepository) CreatePackage(_ context.Context, pkg *entities.DonationPackage) error {
	f.packages = append(f.packages, pkg)
	return nil
}

func (f *fakeDonationRepository) GetPackages(_ context.Context) ([]*entities.DonationPackage, error) {
	return f.packages, nil
}

func (f *fakeDonationRepository) GetPackageByID(_ context.Context, id string) (*entities.DonationPackage, error) {
	for _, pkg := range f.packages {
		if pkg.ID.String() == id {
			return pkg, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDonationRepository) CountDonationsByPackage(_ context.Context) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64)
	for _, d := range f.donations {
		if d.Type == entities.DonationTypePackage && d.PackageID != nil {
			counts[*d.PackageID]++
		}
	}
	return counts, nil
}

func newTestService(repo *fakeDonationRepository) DonationService {
	return NewDonationService(repo, payment.NewPaymentService(), storage.AwsS3{})
}

func seedPackage(t *testing.T, service DonationService, name string, items []domain.CreatePackageItemRequest) *domain.DonationPackage {
	t.Helper()
	pkg, err := service.CreatePackage(context.Background(), domain.CreatePackageRequest{
		Name:  name,
		Items: items,
	})
	require.NoError(t, err)
	return pkg
}

func familyRationPack(t *testing.T, service DonationService) *domain.DonationPackage {
	return seedPackage(t, service, "Family Ration Pack", []domain.CreatePackageItemRequest{
		{Name: "Rice 5kg", UnitPrice: 1200, Quantity: 2},
		{Name: "Dhal 1kg", UnitPrice: 450, Quantity: 4},
		{Name: "Drinking Water 5L", UnitPrice: 350, Quantity: 8},
	})
}

func TestGetDonationStats(t *testing.T) {
	repo := &fakeDonationRepository{}
	service := newTestService(repo)

	pkg := familyRationPack(t, service)
	pkgID := uuid.MustParse(pkg.ID)

	repo.donations = []*entities.Donation{
		{ID: uuid.New(), Amount: 500, Type: entities.DonationTypeCash},
		{ID: uuid.New(), Amount: 2000, Type: entities.DonationTypePackage, PackageID: &pkgID},
		{ID: uuid.New(), Amount: 1000, Type: entities.DonationTypeCash},
	}

	stats, err := service.GetDonationStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3500), stats.TotalAmount)
	assert.Equal(t, int64(3), stats.Donors)
	assert.Equal(t, int64(1500), stats.CashTotal)
	assert.Equal(t, int64(2000), stats.PackageTotal)
	assert.Equal(t, int64(1), stats.PackageCount)
}

func TestGetDonationStatsEmptyStore(t *testing.T) {
	service := newTestService(&fakeDonationRepository{})

	stats, err := service.GetDonationStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalAmount)
	assert.Equal(t, int64(0), stats.Donors)
	assert.Equal(t, int64(0), stats.CashTotal)
	assert.Equal(t, int64(0), stats.PackageTotal)
	assert.Equal(t, int64(0), stats.PackageCount)
}

func TestPackageTotalMatchesItemSubtotals(t *testing.T) {
	repo := &fakeDonationRepository{}
	service := newTestService(repo)

	familyRationPack(t, service)
	seedPackage(t, service, "Medical Kit", []domain.CreatePackageItemRequest{
		{Name: "First Aid Box", UnitPrice: 2500, Quantity: 1},
		{Name: "Paracetamol Strip", UnitPrice: 120, Quantity: 10},
	})

	packages, err := service.GetPackages(context.Background())
	require.NoError(t, err)
	require.Len(t, packages, 2)

	for _, pkg := range packages {
		var sum int64
		for _, item := range pkg.Items {
			sum += item.UnitPrice * int64(item.Quantity)
		}
		assert.Equal(t, pkg.Total, sum, "package %s total must equal sum of item subtotals", pkg.Name)
	}
}

func TestPackageDonationCounts(t *testing.T) {
	repo := &fakeDonationRepository{}
	service := newTestService(repo)

	pkg := familyRationPack(t, service)

	packages, err := service.GetPackages(context.Background())
	require.NoError(t, err)
	require.Len(t, packages, 1)
	assert.Equal(t, int64(0), packages[0].DonationCount)

	for i := 0; i < 3; i++ {
		_, err := service.CreateDonation(context.Background(), domain.CreateDonationRequest{
			Amount:     pkg.Total,
			DonorName:  "Donor",
			DonorPhone: "0770000000",
			Type:       entities.DonationTypePackage,
			PackageID:  pkg.ID,
		})
		require.NoError(t, err)
	}

	// A cash donation must not change any package's count.
	_, err = service.CreateDonation(context.Background(), domain.CreateDonationRequest{
		Amount:     500,
		DonorName:  "Cash Donor",
		DonorPhone: "0771111111",
		Type:       entities.DonationTypeCash,
	})
	require.NoError(t, err)

	packages, err = service.GetPackages(context.Background())
	require.NoError(t, err)
	require.Len(t, packages, 1)
	assert.Equal(t, int64(3), packages[0].DonationCount)
}

func TestCreateDonationCash(t *testing.T) {
	repo := &fakeDonationRepository{}
	service := newTestService(repo)

	result, err := service.CreateDonation(context.Background(), domain.CreateDonationRequest{
		Amount:     2500,
		DonorName:  "Kamala Silva",
		DonorPhone: "0712345678",
		Type:       entities.DonationTypeCash,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.TransactionID, "txn_"))
	assert.Equal(t, int64(2500), result.Donation.Amount)
	assert.Equal(t, entities.DonationTypeCash, result.Donation.Type)
	assert.Len(t, repo.donations, 1)
}

func TestCreateDonationUnknownPackage(t *testing.T) {
	service := newTestService(&fakeDonationRepository{})

	_, err := service.CreateDonation(context.Background(), domain.CreateDonationRequest{
		Amount:     2000,
		DonorName:  "Donor",
		DonorPhone: "0770000000",
		Type:       entities.DonationTypePackage,
		PackageID:  uuid.New().String(),
	})
	assert.ErrorIs(t, err, domain.ErrPackageNotFound)
}

func TestCreateDonationAmountMustBeMultipleOfPackageTotal(t *testing.T) {
	repo := &fakeDonationRepository{}
	service := newTestService(repo)

	pkg := familyRationPack(t, service)

	_, err := service.CreateDonation(context.Background(), domain.CreateDonationRequest{
		Amount:     pkg.Total + 1,
		DonorName:  "Donor",
		DonorPhone: "0770000000",
		Type:       entities.DonationTypePackage,
		PackageID:  pkg.ID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPackageAmount)

	// Two whole packages is fine.
	_, err = service.CreateDonation(context.Background(), domain.CreateDonationRequest{
		Amount:     pkg.Total * 2,
		DonorName:  "Donor",
		DonorPhone: "0770000000",
		Type:       entities.DonationTypePackage,
		PackageID:  pkg.ID,
	})
	assert.NoError(t, err)
}

func TestCreateDonationEnumeratesViolations(t *testing.T) {
	service := newTestService(&fakeDonationRepository{})

	_, err := service.CreateDonation(context.Background(), domain.CreateDonationRequest{
		Amount:     0,
		DonorName:  " ",
		DonorPhone: "",
		Type:       "TRANSFER",
	})
	require.Error(t, err)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "amount must be a positive integer")
	assert.Contains(t, validationErr.Fields, "donorName is required")
	assert.Contains(t, validationErr.Fields, "donorPhone is required")
	assert.Contains(t, validationErr.Fields, "type must be CASH or PACKAGE")
}

func TestCreatePackageRejectsEmptyItems(t *testing.T) {
	service := newTestService(&fakeDonationRepository{})

	_, err := service.CreatePackage(context.Background(), domain.CreatePackageRequest{
		Name:  "Empty Pack",
		Items: nil,
	})
	require.Error(t, err)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "items must contain at least one item")
}
