// Package codecerr defines the terminal error taxonomy shared by every
// stage of the DDS/GTF codec: header parse, format classification,
// layout planning and the byte mover. Every kind is a terminal condition
// for the operation in progress; nothing in this codec retries.
package codecerr

import "github.com/pkg/errors"

// Kind names one of the terminal failure conditions a codec invocation
// can surface to its caller.
type Kind int

const (
	InvalidMagic Kind = iota
	InvalidSize
	DX10Unsupported
	DdsEof
	GtfEof
	GtfAlignment
	GtfCount
	DdsImageCount
	UnsupportedHeader
	UnsupportedFormat
	OverflowBytes
	FileTooLong
	TextureNotFound
)

func (k Kind) String() string {
	switch k {
	case InvalidMagic:
		return "InvalidMagic"
	case InvalidSize:
		return "InvalidSize"
	case DX10Unsupported:
		return "DX10Unsupported"
	case DdsEof:
		return "DdsEof"
	case GtfEof:
		return "GtfEof"
	case GtfAlignment:
		return "GtfAlignment"
	case GtfCount:
		return "GtfCount"
	case DdsImageCount:
		return "DdsImageCount"
	case UnsupportedHeader:
		return "UnsupportedHeader"
	case UnsupportedFormat:
		return "UnsupportedFormat"
	case OverflowBytes:
		return "OverflowBytes"
	case FileTooLong:
		return "FileTooLong"
	case TextureNotFound:
		return "TextureNotFound"
	default:
		return "Unknown"
	}
}

// Error wraps a Kind with the pkg/errors-produced cause chain, so callers
// keep a readable %+v stack trace while still being able to switch on Kind.
type Error struct {
	kind  Kind
	cause error
}

func (e *Error) Error() string {
	return e.cause.Error()
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) Kind() Kind {
	return e.kind
}

// New builds a terminal error of the given kind, formatted like errors.Errorf.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{kind: kind, cause: errors.Errorf(format, args...)}
}

// Wrap attaches a Kind to an existing cause, formatted like errors.Wrapf.
func Wrap(kind Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{kind: kind, cause: errors.Wrapf(cause, format, args...)}
}

// KindOf reports the Kind of err if it (or something in its chain) is a
// *Error, and false otherwise.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.kind, true
	}
	return 0, false
}

// Is reports whether err carries the given Kind anywhere in its chain.
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
