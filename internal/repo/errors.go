package repo

import "errors"

var (
	ErrProductNotFound       = errors.New("product not found")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrProfileNotFound       = errors.New("profile not found")
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrDuplicatedValueUnique = errors.New("duplicated value for unique column")
)
