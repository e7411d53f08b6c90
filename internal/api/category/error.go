package category

import (
	"BlogNest/pkg/response"
	"net/http"
)

var (
	ErrCategoryNotFound  = response.NewError(http.StatusNotFound, "category not found")
	ErrCategoryNameTaken = response.NewError(http.StatusConflict, "category name already taken")
)
