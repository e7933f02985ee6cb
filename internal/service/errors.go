package service

import "errors"

var (
	ErrInvalidRecord  = errors.New("invalid record")
	ErrRecordNotFound = errors.New("record not found")
)
