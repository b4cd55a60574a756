package shared

type IError interface {
	error
	comparable
}

// Result carries either a value or an error, never both.
type Result[T any, E IError] struct {
	Value T
	Err   E
	Ok    bool
}

func ResultOk[T any, E IError](value T) *Result[T, E] {
	return &Result[T, E]{Value: value, Ok: true}
}

func ResultErr[T any, E IError](err E) *Result[T, E] {
	return &Result[T, E]{Err: err}
}

func (r *Result[T, E]) Unwrap() T {
	if !r.Ok {
		panic(r.Err)
	}
	return r.Value
}

func (r *Result[T, E]) UnwrapOr(or T) T {
	return Ternary(r.Ok, r.Value, or)
}

func (r *Result[T, E]) UnwrapOrElse(orElse func() T) T {
	if r.Ok {
		return r.Value
	}
	return orElse()
}

// Into converts the result to the usual (value, error) pair.
// A failed result always yields a non-nil error.
func (r *Result[T, E]) Into() (T, error) {
	if !r.Ok {
		var zero T
		return zero, r.Err
	}
	return r.Value, nil
}
