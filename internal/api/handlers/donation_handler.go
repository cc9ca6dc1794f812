package handlers

import (
	"Relief-Aid-Backend/domain"
	"Relief-Aid-Backend/internal/api/presenters"
	"Relief-Aid-Backend/pkg/donation"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DonationHandler interface {
		GetPackages(c *fiber.Ctx) error
		GetDonationStats(c *fiber.Ctx) error
		GetAllDonations(c *fiber.Ctx) error
		CreatePayment(c *fiber.Ctx) error
		CreatePackage(c *fiber.Ctx) error
		UploadPackageImage(c *fiber.Ctx) error
	}

	donationHandler struct {
		donationService donation.DonationService
		validator       *validator.Validate
	}
)

func NewDonationHandler(donationService donation.DonationService, validator *validator.Validate) DonationHandler {
	return &donationHandler{
		donationService: donationService,
		validator:       validator,
	}
}

func (h *donationHandler) GetPackages(c *fiber.Ctx) error {
	packages, err := h.donationService.GetPackages(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPackages, err)
	}

	return presenters.SuccessResponse(c, packages, fiber.StatusOK, domain.MessageSuccessGetPackages)
}

func (h *donationHandler) GetDonationStats(c *fiber.Ctx) error {
	stats, err := h.donationService.GetDonationStats(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetDonationStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetDonationStats)
}

func (h *donationHandler) GetAllDonations(c *fiber.Ctx) error {
	donations, err := h.donationService.GetAllDonations(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetDonations, err)
	}

	return presenters.SuccessResponse(c, donations, fiber.StatusOK, domain.MessageSuccessGetDonations)
}

func (h *donationHandler) CreatePayment(c *fiber.Ctx) error {
	req := new(domain.CreateDonationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDonation, err)
	}

	result, err := h.donationService.CreateDonation(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, donationErrorStatus(err), domain.MessageFailedCreateDonation, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusCreated, domain.MessageSuccessCreateDonation)
}

func (h *donationHandler) CreatePackage(c *fiber.Ctx) error {
	req := new(domain.CreatePackageRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePackage, err)
	}

	pkg, err := h.donationService.CreatePackage(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, donationErrorStatus(err), domain.MessageFailedCreatePackage, err)
	}

	return presenters.SuccessResponse(c, pkg, fiber.StatusCreated, domain.MessageSuccessCreatePackage)
}

func (h *donationHandler) UploadPackageImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	imageURL, err := h.donationService.UploadPackageImage(file)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreatePackage, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"imageUrl": imageURL,
	}, fiber.StatusCreated, domain.MessageSuccessUploadPackageFile)
}

func donationErrorStatus(err error) int {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr),
		errors.Is(err, domain.ErrPackageNotFound),
		errors.Is(err, domain.ErrInvalidDonationType),
		errors.Is(err, domain.ErrInvalidPackageAmount):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
