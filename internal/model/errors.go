package model

import "errors"

var (
	// ErrNetworkFailure - score server unreachable or answered with a non-2xx status
	ErrNetworkFailure = errors.New("score server unreachable")
	// ErrMalformedResponse - score server answered with an unexpected payload
	ErrMalformedResponse = errors.New("malformed score server response")
	// ErrStorageUnavailable - local snapshot store cannot be read or written
	ErrStorageUnavailable = errors.New("local storage unavailable")

	ErrRoundInProgress = errors.New("round in progress")
	ErrNothingToReplay = errors.New("no finished round to replay")
	ErrRoundNotStarted = errors.New("round not started")

	ErrScoreRequired  = errors.New("score is required")
	ErrPlayerNotFound = errors.New("no scores found for player")
)
