package generation

import "errors"

// Common errors returned by topic generators.
var (
	// ErrGenerationFailed is returned when topic generation fails for any general reason.
	ErrGenerationFailed = errors.New("failed to generate topics")

	// ErrInvalidResponse is returned when the LLM response cannot be parsed or is malformed.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrInvalidConfig is returned when the generator configuration is invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrEmptySubject is returned when no subject name is given.
	ErrEmptySubject = errors.New("subject cannot be empty")
)
