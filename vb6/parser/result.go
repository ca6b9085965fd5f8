package parser

// Result pairs an optional value with the failures collected while
// producing it. A present value never implies an empty failure list: a
// tree synthesized around recovered errors is still a value.
type Result[T any] struct {
	value    T
	ok       bool
	failures []Failure
}

func OK[T any](value T, failures ...Failure) Result[T] {
	return Result[T]{value: value, ok: true, failures: failures}
}

func Fail[T any](failures ...Failure) Result[T] {
	return Result[T]{failures: failures}
}

func (r Result[T]) HasResult() bool {
	return r.ok
}

func (r Result[T]) HasFailures() bool {
	return len(r.failures) > 0
}

func (r Result[T]) Failures() []Failure {
	return r.failures
}

// Value returns the carried value and whether one is present. Callers must
// decide for themselves whether to act on a value that arrived alongside
// failures.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.ok
}

// Unpack splits the result into all of its parts by value.
func (r Result[T]) Unpack() (T, bool, []Failure) {
	return r.value, r.ok, r.failures
}

// MustValue is for callers that have already checked HasResult.
func (r Result[T]) MustValue() T {
	if !r.ok {
		panic("parser: MustValue on a result without a value")
	}
	return r.value
}

func (r *Result[T]) PushFailure(f Failure) {
	r.failures = append(r.failures, f)
}

// AppendFailures folds the failures of a sub-parse into this result
// without touching the value, so lexing failures survive into the result
// of a higher-level parse.
func (r *Result[T]) AppendFailures(failures []Failure) {
	r.failures = append(r.failures, failures...)
}
