package donation

import (
	"Relief-Aid-Backend/domain"
	"Relief-Aid-Backend/entities"
	"Relief-Aid-Backend/internal/utils/mailing"
	"Relief-Aid-Backend/internal/utils/storage"
	"Relief-Aid-Backend/pkg/payment"
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	DonationService interface {
		GetDonationStats(ctx context.Context) (*domain.DonationStats, error)
		GetAllDonations(ctx context.Context) ([]*domain.Donation, error)
		CreateDonation(ctx context.Context, req domain.CreateDonationRequest) (*domain.CreateDonationResponse, error)

		GetPackages(ctx context.Context) ([]*domain.DonationPackage, error)
		CreatePackage(ctx context.Context, req domain.CreatePackageRequest) (*domain.DonationPackage, error)
		UploadPackageImage(file *multipart.FileHeader) (string, error)
	}

	donationService struct {
		donationRepository DonationRepository
		paymentService     payment.PaymentService
		s3                 storage.AwsS3
	}
)

func NewDonationService(donationRepository DonationRepository, paymentService payment.PaymentService, s3 storage.AwsS3) DonationService {
	return &donationService{
		donationRepository: donationRepository,
		paymentService:     paymentService,
		s3:                 s3,
	}
}

func (s *donationService) GetDonationStats(ctx context.Context) (*domain.DonationStats, error) {
	totalAmount, err := s.donationRepository.SumAmount(ctx, "")
	if err != nil {
		return nil, domain.ErrStatsUnavailable
	}

	donors, err := s.donationRepository.CountDonations(ctx, "")
	if err != nil {
		return nil, domain.ErrStatsUnavailable
	}

	cashTotal, err := s.donationRepository.SumAmount(ctx, entities.DonationTypeCash)
	if err != nil {
		return nil, domain.ErrStatsUnavailable
	}

	packageTotal, err := s.donationRepository.SumAmount(ctx, entities.DonationTypePackage)
	if err != nil {
		return nil, domain.ErrStatsUnavailable
	}

	packageCount, err := s.donationRepository.CountDonations(ctx, entities.DonationTypePackage)
	if err != nil {
		return nil, domain.ErrStatsUnavailable
	}

	return &domain.DonationStats{
		TotalAmount:  totalAmount,
		Donors:       donors,
		CashTotal:    cashTotal,
		PackageTotal: packageTotal,
		PackageCount: packageCount,
	}, nil
}

func (s *donationService) GetAllDonations(ctx context.Context) ([]*domain.Donation, error) {
	donations, err := s.donationRepository.GetAllDonations(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Donation, 0, len(donations))
	for _, d := range donations {
		result = append(result, toDomainDonation(d))
	}
	return result, nil
}

func (s *donationService) CreateDonation(ctx context.Context, req domain.CreateDonationRequest) (*domain.CreateDonationResponse, error) {
	if err := validateDonation(req); err != nil {
		return nil, err
	}

	var packageID *uuid.UUID
	if req.Type == entities.DonationTypePackage {
		pkg, err := s.donationRepository.GetPackageByID(ctx, req.PackageID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrPackageNotFound
			}
			return nil, err
		}

		// The amount field is authoritative; the chosen quantity is not
		// persisted, so it must resolve to a whole number of packages.
		if pkg.Total <= 0 || req.Amount%pkg.Total != 0 {
			return nil, domain.ErrInvalidPackageAmount
		}

		packageID = &pkg.ID
	}

	paymentResult, err := s.paymentService.Authorize(ctx, req.Amount)
	if err != nil {
		return nil, err
	}

	donation := &entities.Donation{
		ID:         uuid.New(),
		Amount:     req.Amount,
		DonorName:  req.DonorName,
		DonorPhone: req.DonorPhone,
		DonorEmail: req.DonorEmail,
		Type:       req.Type,
		PackageID:  packageID,
	}

	if err := s.donationRepository.CreateDonation(ctx, donation); err != nil {
		return nil, err
	}

	if donation.DonorEmail != "" {
		go sendDonationReceipt(donation.DonorEmail, donation.DonorName, donation.Amount, paymentResult.TransactionID)
	}

	return &domain.CreateDonationResponse{
		Donation:      toDomainDonation(donation),
		TransactionID: paymentResult.TransactionID,
	}, nil
}

func (s *donationService) GetPackages(ctx context.Context) ([]*domain.DonationPackage, error) {
	packages, err := s.donationRepository.GetPackages(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.donationRepository.CountDonationsByPackage(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.DonationPackage, 0, len(packages))
	for _, pkg := range packages {
		mapped := toDomainPackage(pkg)
		mapped.DonationCount = counts[pkg.ID]
		result = append(result, mapped)
	}
	return result, nil
}

func (s *donationService) CreatePackage(ctx context.Context, req domain.CreatePackageRequest) (*domain.DonationPackage, error) {
	if err := validatePackage(req); err != nil {
		return nil, err
	}

	packageID := uuid.New()

	var total int64
	items := make([]*entities.PackageItem, 0, len(req.Items))
	for _, item := range req.Items {
		total += item.UnitPrice * int64(item.Quantity)
		items = append(items, &entities.PackageItem{
			ID:        uuid.New(),
			PackageID: packageID,
			Name:      strings.TrimSpace(item.Name),
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	pkg := &entities.DonationPackage{
		ID:          packageID,
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		ImageURL:    req.ImageURL,
		Total:       total,
		Items:       items,
	}

	if err := s.donationRepository.CreatePackage(ctx, pkg); err != nil {
		return nil, err
	}

	return toDomainPackage(pkg), nil
}

func (s *donationService) UploadPackageImage(file *multipart.FileHeader) (string, error) {
	objectKey, err := s.s3.UploadFile(
		fmt.Sprintf("package-%s", uuid.New().String()),
		file,
		"packages",
		storage.AllowImage...,
	)
	if err != nil {
		return "", err
	}
	return s.s3.GetPublicLinkKey(objectKey), nil
}

func validateDonation(req domain.CreateDonationRequest) error {
	var fields []string

	if req.Amount <= 0 {
		fields = append(fields, "amount must be a positive integer")
	}
	if strings.TrimSpace(req.DonorName) == "" {
		fields = append(fields, "donorName is required")
	}
	if strings.TrimSpace(req.DonorPhone) == "" {
		fields = append(fields, "donorPhone is required")
	}

	switch req.Type {
	case entities.DonationTypeCash:
		if req.PackageID != "" {
			fields = append(fields, "packageId is only allowed for PACKAGE donations")
		}
	case entities.DonationTypePackage:
		if req.PackageID == "" {
			fields = append(fields, "packageId is required for PACKAGE donations")
		}
	default:
		fields = append(fields, "type must be CASH or PACKAGE")
	}

	if len(fields) > 0 {
		return domain.NewValidationError(fields...)
	}
	return nil
}

func validatePackage(req domain.CreatePackageRequest) error {
	var fields []string

	if strings.TrimSpace(req.Name) == "" {
		fields = append(fields, "name is required")
	}
	if len(req.Items) == 0 {
		fields = append(fields, "items must contain at least one item")
	}
	for i, item := range req.Items {
		if strings.TrimSpace(item.Name) == "" {
			fields = append(fields, fmt.Sprintf("items[%d].name is required", i))
		}
		if item.UnitPrice <= 0 {
			fields = append(fields, fmt.Sprintf("items[%d].unitPrice must be positive", i))
		}
		if item.Quantity <= 0 {
			fields = append(fields, fmt.Sprintf("items[%d].quantity must be positive", i))
		}
	}

	if len(fields) > 0 {
		return domain.NewValidationError(fields...)
	}
	return nil
}

func sendDonationReceipt(email, name string, amount int64, transactionID string) {
	body := fmt.Sprintf(
		"<p>Dear %s,</p><p>Thank you for your donation of %d. Your transaction reference is <b>%s</b>.</p><p>Relief Aid Team</p>",
		name, amount, transactionID,
	)
	if err := mailing.SendMail(email, "Thank you for your donation", body); err != nil {
		log.Printf("failed to send donation receipt to %s: %v", email, err)
	}
}

func toDomainDonation(d *entities.Donation) *domain.Donation {
	result := &domain.Donation{
		ID:         d.ID.String(),
		Amount:     d.Amount,
		DonorName:  d.DonorName,
		DonorPhone: d.DonorPhone,
		DonorEmail: d.DonorEmail,
		Type:       d.Type,
		CreatedAt:  d.CreatedAt,
	}
	if d.PackageID != nil {
		result.PackageID = d.PackageID.String()
	}
	if d.DonationPackage != nil {
		result.DonationPackage = toDomainPackage(d.DonationPackage)
	}
	return result
}

func toDomainPackage(pkg *entities.DonationPackage) *domain.DonationPackage {
	items := make([]*domain.PackageItem, 0, len(pkg.Items))
	for _, item := range pkg.Items {
		items = append(items, &domain.PackageItem{
			ID:        item.ID.String(),
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	return &domain.DonationPackage{
		ID:          pkg.ID.String(),
		Name:        pkg.Name,
		Description: pkg.Description,
		ImageURL:    pkg.ImageURL,
		Total:       pkg.Total,
		Items:       items,
		CreatedAt:   pkg.CreatedAt,
	}
}
