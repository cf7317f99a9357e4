package hashwires

import (
	"fmt"
	goLog "log"
)

// Kind is the closed error taxonomy every fallible operation in this
// package draws from. No other kind of error leaks from the core.
type Kind uint8

const (
	_ Kind = iota
	UnsupportedBase
	InvalidBitWidth
	InvalidSeedLength
	InvalidValue
	ValueExceedsMaxBits
	ThresholdExceedsValue
	ThresholdTooLarge
	MalformedCommitment
	MalformedProof
	VerificationFailed
	HashFailure
)

func (k Kind) String() string {
	switch k {
	case UnsupportedBase:
		return "UnsupportedBase"
	case InvalidBitWidth:
		return "InvalidBitWidth"
	case InvalidSeedLength:
		return "InvalidSeedLength"
	case InvalidValue:
		return "InvalidValue"
	case ValueExceedsMaxBits:
		return "ValueExceedsMaxBits"
	case ThresholdExceedsValue:
		return "ThresholdExceedsValue"
	case ThresholdTooLarge:
		return "ThresholdTooLarge"
	case MalformedCommitment:
		return "MalformedCommitment"
	case MalformedProof:
		return "MalformedProof"
	case VerificationFailed:
		return "VerificationFailed"
	case HashFailure:
		return "HashFailure"
	default:
		return "UnknownError"
	}
}

// Error is the error type returned by every fallible operation in
// this package. Callers that don't care about Kind()/Inner() can keep
// treating it as a plain error.
type Error interface {
	error
	Kind() Kind
	Inner() error // wrapped error, if any
}

type errorImpl struct {
	kind  Kind
	msg   string
	inner error
}

func (err *errorImpl) Kind() Kind    { return err.kind }
func (err *errorImpl) Inner() error  { return err.inner }
func (err *errorImpl) Unwrap() error { return err.inner }

func (err *errorImpl) Error() string {
	if err.inner != nil {
		return fmt.Sprintf("%s: %s: %s", err.kind, err.msg, err.inner.Error())
	}
	return fmt.Sprintf("%s: %s", err.kind, err.msg)
}

// newError formats a new Error of the given Kind, logging it through
// the installed Logger (a no-op unless a caller opted in with
// SetLogger/EnableLogging).
func newError(kind Kind, format string, a ...interface{}) *errorImpl {
	msg := fmt.Sprintf(format, a...)
	log.Logf("hashwires: %s: %s", kind, msg)
	return &errorImpl{kind: kind, msg: msg}
}

// wrapError formats a new Error of the given Kind that wraps another,
// logging it the same way newError does.
func wrapError(kind Kind, err error, format string, a ...interface{}) *errorImpl {
	msg := fmt.Sprintf(format, a...)
	log.Logf("hashwires: %s: %s: %v", kind, msg, err)
	return &errorImpl{kind: kind, msg: msg, inner: err}
}

// IsKind reports whether err is a Error of the given Kind.
func IsKind(err error, kind Kind) bool {
	he, ok := err.(Error)
	return ok && he.Kind() == kind
}

// Logger receives diagnostic messages about rejected operations, one
// per newError/wrapError call. The default Logger is a no-op; callers
// opt into an actual destination with SetLogger/EnableLogging.
type Logger interface {
	Logf(format string, a ...interface{})
}

type dummyLogger struct{}

func (logger *dummyLogger) Logf(format string, a ...interface{}) {}

type stdlibLogger struct{}

func (logger *stdlibLogger) Logf(format string, a ...interface{}) {
	goLog.Printf(format, a...)
}

var log Logger = &dummyLogger{}

// EnableLogging sends diagnostic messages to the standard log package.
// For more flexibility, see SetLogger.
func EnableLogging() {
	SetLogger(&stdlibLogger{})
}

// SetLogger installs logger as the destination for diagnostic
// messages. Passing nil disables logging again.
func SetLogger(logger Logger) {
	if logger == nil {
		log = &dummyLogger{}
		return
	}
	log = logger
}
