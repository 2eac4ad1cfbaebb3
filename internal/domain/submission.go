package domain

// Token identifies one submit of a form. Settles carrying an older token are
// discarded.
type Token uint64

// Submission is the busy/result/error slot owned by one form.
//
// Before the first submit and while a request is in flight both result and
// error are empty; once the current request settles exactly one is set.
type Submission[T any] struct {
	gen    Token
	busy   bool
	result *T
	err    string
	closed bool
}

// Begin starts a submit. It refuses while a request is in flight or after the
// owner closed the submission.
func (s *Submission[T]) Begin() (Token, bool) {
	if s.busy || s.closed {
		return 0, false
	}
	s.gen++
	s.busy = true
	s.result = nil
	s.err = ""
	return s.gen, true
}

// Settle applies the outcome of the submit identified by tok. It reports
// whether the outcome was applied.
func (s *Submission[T]) Settle(tok Token, o Outcome[T]) bool {
	if s.closed || tok != s.gen || !s.busy {
		return false
	}
	s.busy = false

	if v, ok := o.Value(); ok {
		s.result = &v
		s.err = ""
		return true
	}

	f, _ := o.Failure()
	s.result = nil
	s.err = f.Message
	if s.err == "" {
		s.err = GenericFailureMessage
	}
	return true
}

// Close marks the owner gone. Pending and future settles are discarded.
func (s *Submission[T]) Close() {
	s.closed = true
	s.busy = false
}

func (s *Submission[T]) Busy() bool   { return s.busy }
func (s *Submission[T]) Closed() bool { return s.closed }
func (s *Submission[T]) Err() string  { return s.err }

func (s *Submission[T]) Result() (T, bool) {
	if s.result == nil {
		var zero T
		return zero, false
	}
	return *s.result, true
}

// Settled reports whether the last submit has produced a result or an error.
func (s *Submission[T]) Settled() bool {
	return !s.busy && (s.result != nil || s.err != "")
}
