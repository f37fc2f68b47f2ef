package numvec

// Result carries the outcome of an operation whose failure is an
// ordinary event rather than an error: the value, plus whether the
// operation succeeded.  Value is the zero value when OK is false.
type Result[T Element] struct {
	Value T
	OK    bool
}

func Succeeded[T Element](v T) Result[T] {
	return Result[T]{Value: v, OK: true}
}

func Failed[T Element]() Result[T] {
	return Result[T]{}
}
