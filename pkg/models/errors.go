package models

import "fmt"

type AppError struct {
	AppErrorType AppErrorType
	Err          error
}

type AppErrorType string

func (e AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.AppErrorType, e.Err)
	}
	return string(e.AppErrorType)
}

func (e AppError) Unwrap() error {
	return e.Err
}

// Is matches any AppError of the same type, whatever it wraps.
func (e AppError) Is(target error) bool {
	t, ok := target.(AppError)
	return ok && t.AppErrorType == e.AppErrorType
}

const (
	ErrUsage       AppErrorType = "invalid arguments"
	ErrSchemaLoad  AppErrorType = "failed to load schema"
	ErrConfig      AppErrorType = "invalid configuration"
	ErrRenderError AppErrorType = "failed to render report"
)
