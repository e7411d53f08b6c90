package blog

import (
	"BlogNest/pkg/response"
	"net/http"
)

var (
	ErrBlogNotFound       = response.NewError(http.StatusNotFound, "blog not found")
	ErrTitleAlreadyExists = response.NewError(http.StatusConflict, "title already taken")
	ErrNotBlogCreator     = response.NewError(http.StatusForbidden, "you are not allowed to modify this blog")
	ErrNoFileUploaded     = response.NewError(http.StatusBadRequest, "no file uploaded")
	ErrInvalidFileType    = response.NewError(http.StatusUnprocessableEntity, "invalid file type")
	ErrFileTooLarge       = response.NewError(http.StatusUnprocessableEntity, "file too large")
	ErrFailedToUpload     = response.NewError(http.StatusInternalServerError, "failed to upload file")
	ErrCreateBlog         = response.NewError(http.StatusInternalServerError, "failed to create blog")
)
