package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID      = errors.New("invalid user ID")
	ErrInvalidRecordingID = errors.New("invalid recording id")
	ErrInvalidFileName    = errors.New("invalid file name")
	ErrInvalidContentType = errors.New("invalid content type")
	ErrEmptyObjectKey     = errors.New("object key is required")
	ErrUnexpectedParams   = errors.New("encryption params given for an unencrypted recording")
)
