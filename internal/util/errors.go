package util

import (
	"errors"
	"fmt"
)

// 响应映射使用的错误类别，见 RespondError
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthenticated = errors.New("not authenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("already exists")
	ErrUpstream        = errors.New("upstream generation error")
	ErrParse           = errors.New("could not parse response")
)

var (
	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)
	ErrProfileNotFound  = fmt.Errorf("profile %w", ErrNotFound)
	ErrGoalNotFound     = fmt.Errorf("goal %w", ErrNotFound)
	ErrResourceNotFound = fmt.Errorf("resource %w", ErrNotFound)
	ErrBookmarkNotFound = fmt.Errorf("bookmark %w", ErrNotFound)
	ErrProfileExists    = fmt.Errorf("profile %w", ErrConflict)
	ErrBookmarkExists   = fmt.Errorf("bookmark %w", ErrConflict)
	ErrSelfBookmark     = fmt.Errorf("%w: cannot bookmark yourself", ErrInvalidInput)
	ErrAIKeyMissing     = errors.New("generator API key not configured")
)
