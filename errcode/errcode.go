package errcode

// Code is a stable error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK            Code = "ok"
	InvalidParams Code = "invalid_params"

	// Fatal: a register view disagrees with the hardware encoding.
	UnknownEncoding Code = "unknown_encoding"
	InvalidField    Code = "invalid_field"

	// Fatal: programming-contract violations.
	NoTaskToRepeat  Code = "no_task_to_repeat"
	HandleConsumed  Code = "handle_consumed"
	PeripheralTaken Code = "peripheral_taken"

	Error Code = "error" // generic fallback
)

// Optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Is lets errors.Is match an *E against its bare Code.
func (e *E) Is(target error) bool {
	c, ok := target.(Code)
	return ok && c == e.C
}

// Fatal panics with an *E. Used for conditions the firmware cannot recover
// from; on TinyGo a panic halts the core.
func Fatal(c Code, op, msg string) {
	panic(&E{C: c, Op: op, Msg: msg})
}

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}

// Recovered maps a recovered panic value to a Code. Non-error values map to Error.
func Recovered(v any) Code {
	if err, ok := v.(error); ok {
		return Of(err)
	}
	return Error
}
