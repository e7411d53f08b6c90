package auth

import (
	"BlogNest/pkg/response"
	"net/http"
)

var (
	ErrEmailAlreadyExists = response.NewError(http.StatusConflict, "email already taken")
	ErrInvalidCredentials = response.NewError(http.StatusUnauthorized, "the provided credentials are incorrect")
	ErrAccountLocked      = response.NewError(http.StatusLocked, "your account is locked, please contact support")
	ErrUserNotFound       = response.NewError(http.StatusNotFound, "user not found")
	ErrInvalidFileType    = response.NewError(http.StatusUnprocessableEntity, "invalid file type")
	ErrFileTooLarge       = response.NewError(http.StatusUnprocessableEntity, "file too large")
	ErrFailedToUpload     = response.NewError(http.StatusInternalServerError, "failed to upload file")
	ErrCreateUser         = response.NewError(http.StatusInternalServerError, "failed to create user")
)
