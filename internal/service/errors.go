package service

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidOption    = errors.New("option is not one of the question options")
	ErrUnknownTrait     = errors.New("unknown trait")
	ErrSessionNotFound  = errors.New("quiz session not found")
	ErrQuestionNotFound = errors.New("question not found for this session")
	ErrResultNotFound   = errors.New("results not generated yet")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrChatUnavailable  = errors.New("chat unavailable")
	ErrRateLimited      = errors.New("rate limited")
)
