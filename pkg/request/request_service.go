package request

import (
	"Relief-Aid-Backend/domain"
	"Relief-Aid-Backend/entities"
	"Relief-Aid-Backend/pkg/settings"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RequestService interface {
		SubmitRequest(ctx context.Context, req domain.HelpRequestSubmission) (*domain.HelpRequest, error)
		ApproveRequest(ctx context.Context, id string) (*domain.HelpRequest, error)
		GetRequests(ctx context.Context, approvedOnly bool) ([]*domain.HelpRequest, error)
	}

	requestService struct {
		requestRepository RequestRepository
		settingsService   settings.SettingsService
	}
)

func NewRequestService(requestRepository RequestRepository, settingsService settings.SettingsService) RequestService {
	return &requestService{
		requestRepository: requestRepository,
		settingsService:   settingsService,
	}
}

func (s *requestService) SubmitRequest(ctx context.Context, req domain.HelpRequestSubmission) (*domain.HelpRequest, error) {
	if err := validateSubmission(req); err != nil {
		return nil, err
	}

	// Read the toggle before the insert. A toggle racing this read may affect
	// the initial state of this one submission; that window is accepted.
	autoApprove, err := s.settingsService.GetAutoApprove(ctx)
	if err != nil {
		return nil, err
	}

	request := &entities.HelpRequest{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		Phone:       strings.TrimSpace(req.Phone),
		Location:    strings.TrimSpace(req.Location),
		NeedTypes:   req.NeedTypes,
		Description: strings.TrimSpace(req.Description),
		Approved:    autoApprove,
	}

	if err := s.requestRepository.CreateRequest(ctx, request); err != nil {
		return nil, err
	}

	return toDomainRequest(request), nil
}

func (s *requestService) ApproveRequest(ctx context.Context, id string) (*domain.HelpRequest, error) {
	request, err := s.requestRepository.GetRequestByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}

	// Approving an already-approved request is a no-op success.
	if !request.Approved {
		if err := s.requestRepository.MarkApproved(ctx, id); err != nil {
			return nil, err
		}
		request.Approved = true
	}

	return toDomainRequest(request), nil
}

func (s *requestService) GetRequests(ctx context.Context, approvedOnly bool) ([]*domain.HelpRequest, error) {
	requests, err := s.requestRepository.GetRequests(ctx, approvedOnly)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.HelpRequest, 0, len(requests))
	for _, request := range requests {
		result = append(result, toDomainRequest(request))
	}
	return result, nil
}

func validateSubmission(req domain.HelpRequestSubmission) error {
	var fields []string

	if strings.TrimSpace(req.Name) == "" {
		fields = append(fields, "name is required")
	}
	if strings.TrimSpace(req.Phone) == "" {
		fields = append(fields, "phone is required")
	}
	if strings.TrimSpace(req.Location) == "" {
		fields = append(fields, "location is required")
	}
	if len(req.NeedTypes) == 0 {
		fields = append(fields, "needTypes must contain at least one need type")
	}
	for _, needType := range req.NeedTypes {
		if !isKnownNeedType(needType) {
			fields = append(fields, fmt.Sprintf("needTypes contains unknown need type: %s", needType))
		}
	}
	if strings.TrimSpace(req.Description) == "" {
		fields = append(fields, "description is required")
	}

	if len(fields) > 0 {
		return domain.NewValidationError(fields...)
	}
	return nil
}

func isKnownNeedType(needType string) bool {
	for _, known := range domain.NeedTypes {
		if needType == known {
			return true
		}
	}
	return false
}

func toDomainRequest(request *entities.HelpRequest) *domain.HelpRequest {
	return &domain.HelpRequest{
		ID:          request.ID.String(),
		Name:        request.Name,
		Phone:       request.Phone,
		Location:    request.Location,
		NeedTypes:   request.NeedTypes,
		Description: request.Description,
		Approved:    request.Approved,
		CreatedAt:   request.CreatedAt,
	}
}
