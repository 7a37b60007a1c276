package dto

import "encoding/json"

// Optional distinguishes the three states a field can take in a partial-update
// payload: absent (Set false), explicit null (Set true, Valid false), and an
// explicit value (Set true, Valid true). encoding/json never calls
// UnmarshalJSON for absent keys, which is what makes the distinction work.
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Valid: true, Value: v}
}

func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}
