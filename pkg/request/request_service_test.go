package request

import (
	"Relief-Aid-Backend/domain"
	"Relief-Aid-Backend/entities"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRequestRepository struct {
	requests []*entities.HelpRequest
}

func (f *fakeRequestRepository) CreateRequest(_ context.Context, request *entities.HelpRequest) error {
	f.requests = append(f.requests, request)
	return nil
}

func (f *fakeRequestRepository) GetRequestByID(_ context.Context, id string) (*entities.HelpRequest, error) {
	for _, request := range f.requests {
		if request.ID.String() == id {
			return request, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRequestRepository) MarkApproved(_ context.Context, id string) error {
	for _, request := range f.requests {
		if request.ID.String() == id {
			request.Approved = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRequestRepository) GetRequests(_ context.Context, approvedOnly bool) ([]*entities.HelpRequest, error) {
	if !approvedOnly {
		return f.requests, nil
	}
	var approved []*entities.HelpRequest
	for _, request := range f.requests {
		if request.Approved {
			approved = append(approved, request)
		}
	}
	return approved, nil
}

type fakeSettingsService struct {
	autoApprove bool
	err         error
}

func (f *fakeSettingsService) GetAutoApprove(_ context.Context) (bool, error) {
	return f.autoApprove, f.err
}

func (f *fakeSettingsService) SetAutoApprove(_ context.Context, value bool) (bool, error) {
	f.autoApprove = value
	return value, nil
}

func validSubmission() domain.HelpRequestSubmission {
	return domain.HelpRequestSubmission{
		Name:        "Nimal Perera",
		Phone:       "0771234567",
		Location:    "Galle",
		NeedTypes:   []string{"Food & Water", "Shelter & Repairs"},
		Description: "House flooded, need supplies for family of four",
	}
}

func TestSubmitRequestPendingByDefault(t *testing.T) {
	service := NewRequestService(&fakeRequestRepository{}, &fakeSettingsService{autoApprove: false})

	created, err := service.SubmitRequest(context.Background(), validSubmission())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.Approved)
}

func TestSubmitRequestAutoApproved(t *testing.T) {
	service := NewRequestService(&fakeRequestRepository{}, &fakeSettingsService{autoApprove: true})

	created, err := service.SubmitRequest(context.Background(), validSubmission())
	require.NoError(t, err)
	assert.True(t, created.Approved)
}

func TestSubmitRequestTrimsWhitespace(t *testing.T) {
	service := NewRequestService(&fakeRequestRepository{}, &fakeSettingsService{})

	submission := validSubmission()
	submission.Name = "  Nimal Perera  "
	submission.Location = " Galle "

	created, err := service.SubmitRequest(context.Background(), submission)
	require.NoError(t, err)
	assert.Equal(t, "Nimal Perera", created.Name)
	assert.Equal(t, "Galle", created.Location)
}

func TestSubmitRequestEnumeratesAllViolations(t *testing.T) {
	service := NewRequestService(&fakeRequestRepository{}, &fakeSettingsService{})

	_, err := service.SubmitRequest(context.Background(), domain.HelpRequestSubmission{
		Name:        "",
		Phone:       "x",
		Location:    "y",
		NeedTypes:   []string{},
		Description: "z",
	})
	require.Error(t, err)

	var validationErr *domain.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.GreaterOrEqual(t, len(validationErr.Fields), 2)
	assert.Contains(t, validationErr.Fields, "name is required")
	assert.Contains(t, validationErr.Fields, "needTypes must contain at least one need type")
}

func TestSubmitRequestWhitespaceOnlyFieldsFail(t *testing.T) {
	service := NewRequestService(&fakeRequestRepository{}, &fakeSettingsService{})

	submission := validSubmission()
	submission.Name = "   "
	submission.Description = "\t\n"

	_, err := service.SubmitRequest(context.Background(), submission)
	require.Error(t, err)

	var validationErr *domain.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Fields, "name is required")
	assert.Contains(t, validationErr.Fields, "description is required")
}

func TestSubmitRequestRejectsUnknownNeedType(t *testing.T) {
	service := NewRequestService(&fakeRequestRepository{}, &fakeSettingsService{})

	submission := validSubmission()
	submission.NeedTypes = []string{"Food & Water", "Helicopters"}

	_, err := service.SubmitRequest(context.Background(), submission)
	require.Error(t, err)

	var validationErr *domain.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Fields, "needTypes contains unknown need type: Helicopters")
}

func TestApproveRequestIsIdempotent(t *testing.T) {
	repo := &fakeRequestRepository{}
	service := NewRequestService(repo, &fakeSettingsService{})

	created, err := service.SubmitRequest(context.Background(), validSubmission())
	require.NoError(t, err)
	assert.False(t, created.Approved)

	first, err := service.ApproveRequest(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, first.Approved)

	second, err := service.ApproveRequest(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, second.Approved)
}

func TestApproveRequestNotFound(t *testing.T) {
	service := NewRequestService(&fakeRequestRepository{}, &fakeSettingsService{})

	_, err := service.ApproveRequest(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
}

func TestGetRequestsFiltersApproved(t *testing.T) {
	repo := &fakeRequestRepository{}
	service := NewRequestService(repo, &fakeSettingsService{})

	first, err := service.SubmitRequest(context.Background(), validSubmission())
	require.NoError(t, err)
	_, err = service.SubmitRequest(context.Background(), validSubmission())
	require.NoError(t, err)

	_, err = service.ApproveRequest(context.Background(), first.ID)
	require.NoError(t, err)

	all, err := service.GetRequests(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	approved, err := service.GetRequests(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, first.ID, approved[0].ID)
}
