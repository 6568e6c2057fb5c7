package observable

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrUnknownOperation     = errors.New("unknown operation")
	// ErrNoEvictionVictim indicates that a full set could not free a slot.
	// It is raised as a panic since it can only result from a bug.
	ErrNoEvictionVictim = errors.New("no eviction victim")
)
