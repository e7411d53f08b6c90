package like

import (
	"BlogNest/pkg/response"
	"net/http"
)

var (
	ErrLikeNotFound = response.NewError(http.StatusNotFound, "like not found")
	ErrBlogNotFound = response.NewError(http.StatusNotFound, "blog not found")
)
