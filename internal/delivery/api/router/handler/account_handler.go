// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"pizarra/internal/delivery/api/response"
	"pizarra/internal/delivery/api/validator"
	domainerrors "pizarra/internal/domain/errors"
	"pizarra/internal/errors"
	"pizarra/internal/usecase"

	"github.com/labstack/echo/v4"
)

// RegisterRequest is the body of POST /api/register. Field order sets the order in
// which validation failures are reported.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest is the body of POST /api/login. It is not validated.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AccountHandler serves registration and login.
type AccountHandler struct {
	uc usecase.AccountUsecase
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// Register handles the account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return errors.Wrap(domainerrors.ErrInvalidRequestBody, err.Error())
	}

	if err := c.Validate(&req); err != nil {
		return registerValidationError(err)
	}

	if !h.uc.Register(c.Request().Context(), req.Username, req.Password) {
		return errors.WithStack(domainerrors.ErrAccountAlreadyExists)
	}

	return response.Success(c, http.StatusOK, "Registration successful")
}

// Login handles the login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return errors.Wrap(domainerrors.ErrInvalidRequestBody, err.Error())
	}

	if !h.uc.Verify(c.Request().Context(), req.Username, req.Password) {
		return errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	return response.Success(c, http.StatusOK, "Login successful")
}

func registerValidationError(err error) error {
	field, ok := validator.FirstInvalidField(err)
	if !ok {
		return errors.WithStack(err)
	}

	switch field {
	case "username":
		return errors.WithStack(domainerrors.ErrUsernameTooShort)
	case "password":
		return errors.WithStack(domainerrors.ErrPasswordTooShort)
	default:
		return errors.WithStack(domainerrors.ErrInvalidRequestBody)
	}
}
