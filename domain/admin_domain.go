package domain

import (
	"errors"
)

var (
	MessageSuccessLogin = "login successful"

	MessageFailedLogin = "login failed"

	ErrInvalidCredentials = errors.New("invalid username or password")
)

type (
	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required,min=6"`
	}

	LoginResponse struct {
		Token string `json:"token"`
	}
)
