package user

import (
	"BlogNest/pkg/response"
	"net/http"
)

var (
	ErrUserNotFound       = response.NewError(http.StatusNotFound, "user not found")
	ErrEmailAlreadyExists = response.NewError(http.StatusConflict, "email already taken")
	ErrNotAccountOwner    = response.NewError(http.StatusForbidden, "you are not allowed to modify this account")
	ErrIncorrectPassword  = response.NewError(http.StatusBadRequest, "current password is incorrect")
	ErrNoFileUploaded     = response.NewError(http.StatusBadRequest, "no file uploaded")
	ErrInvalidFileType    = response.NewError(http.StatusUnprocessableEntity, "invalid file type")
	ErrFileTooLarge       = response.NewError(http.StatusUnprocessableEntity, "file too large")
	ErrFailedToUpload     = response.NewError(http.StatusInternalServerError, "failed to upload file")
)
