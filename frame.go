package framestack

import "errors"

type frameCloser interface {
	closeFrame(d frameDesc) error
}

// Frame is the guard for one open frame. Close it exactly once, in the
// reverse order frames were opened; the usual pattern is
//
//	f := s.OpenFrame()
//	defer f.Close()
//
// which closes the frame on every exit path of the enclosing function.
type Frame struct {
	owner frameCloser
	desc  frameDesc
}

// Close pops every entry pushed since the frame was opened, newest first, and
// retires the frame. It fails with ErrFrameOrder, changing nothing, if a frame
// opened after this one is still open, and with ErrFrameClosed if the frame
// was already closed. Errors returned by io.Closer values during teardown are
// joined into the result after the frame has been retired.
func (f *Frame) Close() error {
	return f.owner.closeFrame(f.desc)
}

// Depth returns the frame's depth. The root frame has depth 0, so guards
// always report 1 or more.
func (f *Frame) Depth() int { return f.desc.depth }

// runScope opens a frame, runs fn, and closes the frame whether fn returns or
// panics. A close error is joined with fn's error.
func runScope(open func() *Frame, fn func() error) (err error) {
	f := open()
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return fn()
}
