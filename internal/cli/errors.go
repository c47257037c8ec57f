package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by agents.
const (
	// Project errors
	ErrProjectNotFound     = "PROJECT_NOT_FOUND"
	ErrProjectNotSpecified = "PROJECT_NOT_SPECIFIED"
	ErrConfigInvalid       = "CONFIG_INVALID"

	// Scene errors
	ErrSceneNotFound = "SCENE_NOT_FOUND"

	// File errors
	ErrFileReadError      = "FILE_READ_ERROR"
	ErrFileOutsideProject = "FILE_OUTSIDE_PROJECT"

	// Cache errors
	ErrDatabaseError = "DATABASE_ERROR"
	ErrCacheLocked   = "CACHE_LOCKED"
	ErrGUIDNotFound  = "GUID_NOT_FOUND"

	// Input errors
	ErrInvalidInput    = "INVALID_INPUT"
	ErrMissingArgument = "MISSING_ARGUMENT"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)

// Warning codes for non-fatal issues.
const (
	WarnCacheWriteFailed = "CACHE_WRITE_FAILED"
	WarnSceneUnreadable  = "SCENE_UNREADABLE"
)
