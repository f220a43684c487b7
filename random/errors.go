package random

import "fmt"

// These mirror three of the dice package's ErrorKind values, but exist as
// their own type here to avoid an import cycle (dice imports random). They
// are purely internal: fetchOnce's errors only ever drive the backoff/retry
// loop in Fetch, which never returns an error to its own caller.
type errorKind int

const (
	ErrRandomOrgOutOfRange errorKind = iota
	ErrRandomOrgInvalidResponse
	ErrRandomOrgUnreachable
)

var errorKindNames = [...]string{
	ErrRandomOrgOutOfRange:      "random.org: value out of range",
	ErrRandomOrgInvalidResponse: "random.org: invalid response",
	ErrRandomOrgUnreachable:     "random.org: unreachable",
}

func (k errorKind) String() string {
	if int(k) < 0 || int(k) >= len(errorKindNames) {
		return "unknown"
	}
	return errorKindNames[k]
}

type oracleError struct {
	kind   errorKind
	detail string
}

func (e *oracleError) Error() string {
	if e.detail == "" {
		return e.kind.String()
	}
	return e.kind.String() + ": " + e.detail
}

func newError(kind errorKind, args ...interface{}) *oracleError {
	return &oracleError{kind: kind, detail: fmt.Sprint(args...)}
}
