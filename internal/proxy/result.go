package proxy

// Result is the outcome of one upstream call: either a value or the text
// of the error that replaced it. Callers must check Failed before Value.
type Result[T any] struct {
	Value  T
	ErrMsg string
	Failed bool
}

func Ok[T any](value T) Result[T] {
	return Result[T]{Value: value}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{ErrMsg: err.Error(), Failed: true}
}
