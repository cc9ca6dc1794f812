package handlers

import (
	"Relief-Aid-Backend/domain"
	"Relief-Aid-Backend/internal/api/presenters"
	"Relief-Aid-Backend/pkg/request"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type (
	RequestHandler interface {
		GetRequests(c *fiber.Ctx) error
		SubmitRequest(c *fiber.Ctx) error
		ApproveRequest(c *fiber.Ctx) error
	}

	requestHandler struct {
		requestService request.RequestService
		validator      *validator.Validate
	}
)

func NewRequestHandler(requestService request.RequestService, validator *validator.Validate) RequestHandler {
	return &requestHandler{
		requestService: requestService,
		validator:      validator,
	}
}

func (h *requestHandler) GetRequests(c *fiber.Ctx) error {
	approvedOnly := c.Query("approved") == "true"

	requests, err := h.requestService.GetRequests(c.Context(), approvedOnly)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRequests, err)
	}

	return presenters.SuccessResponse(c, requests, fiber.StatusOK, domain.MessageSuccessGetRequests)
}

func (h *requestHandler) SubmitRequest(c *fiber.Ctx) error {
	req := new(domain.HelpRequestSubmission)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	created, err := h.requestService.SubmitRequest(c.Context(), *req)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitRequest, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSubmitRequest, err)
	}

	return presenters.SuccessResponse(c, created, fiber.StatusCreated, domain.MessageSuccessSubmitRequest)
}

func (h *requestHandler) ApproveRequest(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedApproveRequest, domain.ErrParseUUID)
	}

	approved, err := h.requestService.ApproveRequest(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRequestNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedApproveRequest, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedApproveRequest, err)
	}

	return presenters.SuccessResponse(c, approved, fiber.StatusOK, domain.MessageSuccessApproveRequest)
}
