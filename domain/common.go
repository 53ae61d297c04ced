package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"

	ErrInvalidInput    = errors.New("required field is empty")
	ErrInvalidDate     = errors.New("invalid expiry date")
	ErrInvalidQuantity = errors.New("quantity must be a non-negative number")
	ErrImportMalformed = errors.New("no valid recipes to import")
)
