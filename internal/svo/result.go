package svo

type Kind uint8

const (
	KindAbsent Kind = iota
	KindParsed
	KindUnparsable
)

func (k Kind) String() string {
	switch k {
	case KindParsed:
		return "parsed"
	case KindUnparsable:
		return "unparsable"
	default:
		return "absent"
	}
}

// Result is the outcome of a try-parse: a value, nothing (blank input),
// or an unparsable marker. The zero Result is absent.
type Result[T any] struct {
	kind  Kind
	value T
	err   *UnparsableError
}

func Absent[T any]() Result[T] {
	return Result[T]{kind: KindAbsent}
}

func Parsed[T any](v T) Result[T] {
	return Result[T]{kind: KindParsed, value: v}
}

func Failed[T any](err *UnparsableError) Result[T] {
	return Result[T]{kind: KindUnparsable, err: err}
}

func (r Result[T]) Kind() Kind { return r.kind }

func (r Result[T]) IsAbsent() bool { return r.kind == KindAbsent }

// Value returns the parsed value; ok is false for absent and unparsable results.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.kind == KindParsed
}

// Unparsable returns the failure marker, or nil when the result is not a failure.
func (r Result[T]) Unparsable() *UnparsableError {
	return r.err
}

// Err returns the failure as an error, or nil.
func (r Result[T]) Err() error {
	if r.err == nil {
		return nil
	}
	return r.err
}
