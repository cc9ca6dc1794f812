package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetPackages       = "packages retrieved successfully"
	MessageSuccessGetDonations      = "donations retrieved successfully"
	MessageSuccessGetDonationStats  = "donation totals retrieved successfully"
	MessageSuccessCreateDonation    = "donation successful"
	MessageSuccessCreatePackage     = "package created successfully"
	MessageSuccessUploadPackageFile = "package image uploaded successfully"

	MessageFailedGetPackages      = "failed to retrieve packages"
	MessageFailedGetDonations     = "failed to retrieve donations"
	MessageFailedGetDonationStats = "failed to retrieve donation totals"
	MessageFailedCreateDonation   = "failed to create donation"
	MessageFailedCreatePackage    = "failed to create package"

	ErrStatsUnavailable     = errors.New("donation stats unavailable")
	ErrPackageNotFound      = errors.New("donation package not found")
	ErrInvalidDonationType  = errors.New("invalid donation type")
	ErrInvalidPackageAmount = errors.New("amount must be a positive multiple of the package total")
)

type (
	DonationStats struct {
		TotalAmount  int64 `json:"totalAmount"`
		Donors       int64 `json:"donors"`
		CashTotal    int64 `json:"cashTotal"`
		PackageTotal int64 `json:"packageTotal"`
		PackageCount int64 `json:"packageCount"`
	}

	CreateDonationRequest struct {
		Amount     int64  `json:"amount" validate:"required,gt=0"`
		DonorName  string `json:"donorName" validate:"required"`
		DonorPhone string `json:"donorPhone" validate:"required"`
		DonorEmail string `json:"donorEmail" validate:"omitempty,email"`
		Type       string `json:"type" validate:"required,oneof=CASH PACKAGE"`
		PackageID  string `json:"packageId" validate:"omitempty,uuid"`
	}

	Donation struct {
		ID              string           `json:"id"`
		Amount          int64            `json:"amount"`
		DonorName       string           `json:"donorName"`
		DonorPhone      string           `json:"donorPhone"`
		DonorEmail      string           `json:"donorEmail,omitempty"`
		Type            string           `json:"type"`
		PackageID       string           `json:"packageId,omitempty"`
		DonationPackage *DonationPackage `json:"donationPackage,omitempty"`
		CreatedAt       time.Time        `json:"createdAt"`
	}

	CreateDonationResponse struct {
		Donation      *Donation `json:"donation"`
		TransactionID string    `json:"transactionId"`
	}

	PackageItem struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		UnitPrice int64  `json:"unitPrice"`
		Quantity  int    `json:"quantity"`
	}

	DonationPackage struct {
		ID            string         `json:"id"`
		Name          string         `json:"name"`
		Description   string         `json:"description"`
		ImageURL      string         `json:"imageUrl,omitempty"`
		Total         int64          `json:"total"`
		Items         []*PackageItem `json:"items,omitempty"`
		DonationCount int64          `json:"donationCount"`
		CreatedAt     time.Time      `json:"createdAt"`
	}

	CreatePackageItemRequest struct {
		Name      string `json:"name" validate:"required"`
		UnitPrice int64  `json:"unitPrice" validate:"required,gt=0"`
		Quantity  int    `json:"quantity" validate:"required,gt=0"`
	}

	CreatePackageRequest struct {
		Name        string                     `json:"name" validate:"required"`
		Description string                     `json:"description" validate:"omitempty"`
		ImageURL    string                     `json:"imageUrl" validate:"omitempty,url"`
		Items       []CreatePackageItemRequest `json:"items" validate:"required,min=1,dive"`
	}
)
