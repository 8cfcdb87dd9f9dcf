package common

import (
	"fmt"
)

type Optional[T any] struct {
	Value     T
	IsPresent bool
}

func (p *Optional[T]) String() string {
	if !p.IsPresent {
		return "[-]"
	}
	return fmt.Sprintf("[%v]", p.Value)
}

// Get returns the value and whether it is present, in the comma-ok form.
func (p Optional[T]) Get() (T, bool) {
	return p.Value, p.IsPresent
}

// OrElse returns the value when present and fallback otherwise.
func (p Optional[T]) OrElse(fallback T) T {
	if !p.IsPresent {
		return fallback
	}
	return p.Value
}

func NewOptional[T any](value T, isPresent bool) Optional[T] {
	return Optional[T]{Value: value, IsPresent: isPresent}
}

// FromPointer builds an Optional that is present iff ptr is not nil.
func FromPointer[T any](ptr *T) Optional[T] {
	if ptr == nil {
		return Optional[T]{}
	}
	return Optional[T]{Value: *ptr, IsPresent: true}
}

// ToPointer is the inverse of FromPointer.
func ToPointer[T any](o Optional[T]) *T {
	if !o.IsPresent {
		return nil
	}
	v := o.Value
	return &v
}
