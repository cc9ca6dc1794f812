package request

import (
	"Relief-Aid-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	RequestRepository interface {
		CreateRequest(ctx context.Context, request *entities.HelpRequest) error
		GetRequestByID(ctx context.Context, id string) (*entities.HelpRequest, error)
		MarkApproved(ctx context.Context, id string) error
		GetRequests(ctx context.Context, approvedOnly bool) ([]*entities.HelpRequest, error)
	}

	requestRepository struct {
		db *gorm.DB
	}
)

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) CreateRequest(ctx context.Context, request *entities.HelpRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *requestRepository) GetRequestByID(ctx context.Context, id string) (*entities.HelpRequest, error) {
	var request entities.HelpRequest
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) MarkApproved(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&entities.HelpRequest{}).
		Where("id = ?", id).
		Update("approved", true).Error
}

func (r *requestRepository) GetRequests(ctx context.Context, approvedOnly bool) ([]*entities.HelpRequest, error) {
	var requests []*entities.HelpRequest

	query := r.db.WithContext(ctx)
	if approvedOnly {
		query = query.Where("approved = ?", true)
	}

	if err := query.Order("created_at DESC, id DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}
