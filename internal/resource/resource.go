package resource

import "fmt"

// Kind tags which of the four states a Resource is in.
type Kind int

const (
	KindEmpty Kind = iota
	KindLoading
	KindSuccess
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindLoading:
		return "loading"
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	default:
		return "empty"
	}
}

// Resource is the lifecycle of one fetch: Empty, Loading, Success(value)
// or Error(err). The zero value is Empty. Values are immutable; every
// transition builds a new Resource.
type Resource[T any] struct {
	kind  Kind
	value T
	err   error
}

func Empty[T any]() Resource[T] { return Resource[T]{} }

func Loading[T any]() Resource[T] { return Resource[T]{kind: KindLoading} }

func Success[T any](v T) Resource[T] { return Resource[T]{kind: KindSuccess, value: v} }

// Error wraps a fetch failure. A nil err is still an Error resource.
func Error[T any](err error) Resource[T] { return Resource[T]{kind: KindError, err: err} }

func (r Resource[T]) Kind() Kind      { return r.kind }
func (r Resource[T]) IsEmpty() bool   { return r.kind == KindEmpty }
func (r Resource[T]) IsLoading() bool { return r.kind == KindLoading }
func (r Resource[T]) IsSuccess() bool { return r.kind == KindSuccess }
func (r Resource[T]) IsError() bool   { return r.kind == KindError }

// Value returns the success value. ok is false for every other kind.
func (r Resource[T]) Value() (v T, ok bool) {
	if r.kind != KindSuccess {
		return v, false
	}
	return r.value, true
}

// ValueOr returns the success value, or fallback.
func (r Resource[T]) ValueOr(fallback T) T {
	if r.kind != KindSuccess {
		return fallback
	}
	return r.value
}

// Err returns the failure carried by an Error resource, nil otherwise.
func (r Resource[T]) Err() error {
	if r.kind != KindError {
		return nil
	}
	return r.err
}

func (r Resource[T]) ToLoading() Resource[T]        { return Loading[T]() }
func (r Resource[T]) ToSuccess(v T) Resource[T]     { return Success(v) }
func (r Resource[T]) ToError(err error) Resource[T] { return Error[T](err) }

func (r Resource[T]) String() string {
	switch r.kind {
	case KindSuccess:
		return fmt.Sprintf("success(%v)", r.value)
	case KindError:
		return fmt.Sprintf("error(%v)", r.err)
	default:
		return r.kind.String()
	}
}
