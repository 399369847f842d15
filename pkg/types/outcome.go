package types

// Outcome is the result of a lookup that is allowed to fail soft.
// A degraded Outcome carries a fallback value and the cause, so callers can
// tell "no data" apart from "data unavailable".
type Outcome[T any] struct {
	Value    T
	Degraded bool
	Cause    error
}

func Complete[T any](v T) Outcome[T] {
	return Outcome[T]{Value: v}
}

func Degraded[T any](fallback T, cause error) Outcome[T] {
	return Outcome[T]{Value: fallback, Degraded: true, Cause: cause}
}
