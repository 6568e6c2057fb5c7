package observable

import (
	"github.com/goccy/go-json"
)

// MarshalJSON encodes the elements of the set as an array, in the order
// returned by Values.
func (s *Set[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}
