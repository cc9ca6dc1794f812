package domain

import (
	"errors"
	"time"
)

// NeedTypes is the fixed vocabulary a help request may draw from.
var NeedTypes = []string{
	"Food & Water",
	"Medical Supplies",
	"Shelter & Repairs",
	"Clothing",
	"Education Support",
	"Other",
}

var (
	MessageSuccessSubmitRequest  = "Request submitted successfully"
	MessageSuccessApproveRequest = "Request approved successfully"
	MessageSuccessGetRequests    = "requests retrieved successfully"

	MessageFailedSubmitRequest  = "Failed to submit request"
	MessageFailedApproveRequest = "Failed to approve request"
	MessageFailedGetRequests    = "Failed to fetch requests"

	ErrRequestNotFound = errors.New("help request not found")
)

type (
	HelpRequestSubmission struct {
		Name        string   `json:"name" validate:"required"`
		Phone       string   `json:"phone" validate:"required"`
		Location    string   `json:"location" validate:"required"`
		NeedTypes   []string `json:"needTypes" validate:"required,min=1"`
		Description string   `json:"description" validate:"required"`
	}

	HelpRequest struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Phone       string    `json:"phone"`
		Location    string    `json:"location"`
		NeedTypes   []string  `json:"needTypes"`
		Description string    `json:"description"`
		Approved    bool      `json:"approved"`
		CreatedAt   time.Time `json:"createdAt"`
	}
)
