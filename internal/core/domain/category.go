package domain

import "errors"

var ErrCategoryNotFound = errors.New("category not found")
var ErrCategoryInUse = errors.New("category is being used by news articles")

// Category groups news articles. Categories may nest one level at a time via
// ParentCategoryID.
type Category struct {
	CategoryID          int64  `json:"categoryId"`
	CategoryName        string `json:"categoryName"`
	CategoryDescription string `json:"categoryDescription"`
	ParentCategoryID    *int64 `json:"parentCategoryId,omitempty"`
	IsActive            bool   `json:"isActive"`
}
