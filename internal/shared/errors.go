package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Catalog errors
	ErrCatalogUnavailable = fmt.Errorf("catalog unavailable")
	ErrSongNotFound       = fmt.Errorf("song not found")

	// Upload validation errors, in the order the fallback checks them.
	// The reject reasons are surfaced verbatim to the user.
	ErrUploadRejected = fmt.Errorf("upload rejected")
	ErrNoFileSelected = fmt.Errorf("no file selected")
	ErrWrongFileType  = fmt.Errorf("wrong file type")
	ErrInvalidJSON    = fmt.Errorf("invalid JSON format")

	// API and service errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
	ErrTimeout            = fmt.Errorf("operation timed out")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
