package planner

import "errors"

// Sentinel errors returned before any scheduling state is created.
// Callers match them with errors.Is and map them to user-facing messages.
var (
	// ErrNoTopics means the topic input contained no parsable topics.
	ErrNoTopics = errors.New("no topics provided")

	// ErrExamDateNotFuture means the exam date is today or in the past.
	ErrExamDateNotFuture = errors.New("exam date must be in the future")

	// ErrInsufficientTime means the computed study budget is zero or negative.
	ErrInsufficientTime = errors.New("insufficient study time")
)
