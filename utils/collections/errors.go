package collections

import "errors"

var (
	ErrCollectionEmpty = errors.New("collection empty")
)
