package service

import "errors"

// Service layer errors. Handlers map these onto HTTP status codes; every
// other error coming out of the service is a propagated store or provider failure.
var (
	ErrGameNotFound  = errors.New("game not found")
	ErrImageNotFound = errors.New("image not found")

	// ErrInsufficientIdentity means the duplicate check was handed a game without
	// the fields that identify it. Indexed games always carry them, so this is a
	// caller bug rather than bad user input.
	ErrInsufficientIdentity = errors.New("game lacks the file path, title or release date needed to check for duplicates")

	ErrImageTooLarge        = errors.New("image exceeds the maximum size")
	ErrUnsupportedMediaType = errors.New("downloaded file is not an image")
)
