package errcode

import "strings"

// digestSeparator joins digests in log output.
const digestSeparator = "|"

// Stack records the chain of errors accumulated along a call path,
// oldest first, plus the raw third-party error text if any. The zero
// value is an empty stack ready for use.
type Stack struct {
	errs []*Error

	// ThirdPartyError holds the unprocessed upstream error text.
	ThirdPartyError string
}

// Push appends err as the newest error.
func (s *Stack) Push(err *Error) {
	s.errs = append(s.errs, err)
}

// Current returns the newest error, or nil for an empty stack.
func (s *Stack) Current() *Error {
	if len(s.errs) == 0 {
		return nil
	}
	return s.errs[len(s.errs)-1]
}

// CurrentCode returns the newest error's encoded code, or "".
func (s *Stack) CurrentCode() string {
	if e := s.Current(); e != nil {
		return e.Code.String()
	}
	return ""
}

// Root returns the oldest error, or nil for an empty stack.
func (s *Stack) Root() *Error {
	if len(s.errs) == 0 {
		return nil
	}
	return s.errs[0]
}

// Errors returns the stack oldest-first.
func (s *Stack) Errors() []*Error {
	out := make([]*Error, len(s.errs))
	copy(out, s.errs)
	return out
}

// Digest joins the error digests newest-first for log lines.
func (s *Stack) Digest() string {
	parts := make([]string, 0, len(s.errs))
	for i := len(s.errs) - 1; i >= 0; i-- {
		parts = append(parts, s.errs[i].Digest())
	}
	return strings.Join(parts, digestSeparator)
}

// Error implements error using the newest entry; an empty stack reads
// as "".
func (s *Stack) Error() string {
	if e := s.Current(); e != nil {
		return e.Error()
	}
	return ""
}
