package comment

import (
	"BlogNest/pkg/response"
	"net/http"
)

var (
	ErrCommentNotFound  = response.NewError(http.StatusNotFound, "comment not found")
	ErrBlogNotFound     = response.NewError(http.StatusNotFound, "blog not found")
	ErrNotCommentAuthor = response.NewError(http.StatusForbidden, "you are not allowed to modify this comment")
)
