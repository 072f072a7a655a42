package image

import (
	"errors"

	"github.com/ezrec/msp430/translate"
)

var f = translate.From

var (
	// ErrNoSection flags TI-TXT data bytes before any @addr header.
	ErrNoSection = errors.New(f("data before section header"))
)

// ErrImageSize flags an image that does not fit the address space.
type ErrImageSize int

func (err ErrImageSize) Error() string {
	return f("image of %d bytes does not fit the 64K address space", int(err))
}

func (err ErrImageSize) Is(target error) (ok bool) {
	_, ok = target.(ErrImageSize)
	return
}

// ErrSyntax indicates the location of a TI-TXT syntax error.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
