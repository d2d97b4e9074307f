package mls

import "fmt"

// Error is returned by the ambient, owning-buffer API and by leafstore.
// The four core operations (Public, Sign, Recover and the size oracles)
// never return one: they signal failure by returning nil or 0.
type Error interface {
	error
	Inner() error // the wrapped error, if any
}

type errorImpl struct {
	msg   string
	inner error
}

func (err *errorImpl) Error() string {
	if err.inner != nil {
		return fmt.Sprintf("%s: %s", err.msg, err.inner.Error())
	}
	return err.msg
}

func (err *errorImpl) Inner() error { return err.inner }

func errorf(format string, a ...interface{}) *errorImpl {
	return &errorImpl{msg: fmt.Sprintf(format, a...)}
}

func wrapErrorf(err error, format string, a ...interface{}) *errorImpl {
	return &errorImpl{msg: fmt.Sprintf(format, a...), inner: err}
}

// NewError constructs an Error carrying msg and no inner error. It is
// exported for ambient infrastructure built around the core, such as
// leafstore, that needs to report its own failures as an mls.Error.
func NewError(msg string) Error {
	return &errorImpl{msg: msg}
}

// WrapError constructs an Error carrying msg with err as its Inner.
func WrapError(err error, msg string) Error {
	return &errorImpl{msg: msg, inner: err}
}
