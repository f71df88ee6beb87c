package domain

import "errors"

var (
	ErrFormNameRequired = errors.New("form name is required")
	ErrInvalidFieldType = errors.New("invalid field type")
)
