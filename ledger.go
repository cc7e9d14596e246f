package framestack

import "fmt"

// frameMark records where an open frame starts in the backing store and the
// epoch it was opened under.
type frameMark struct {
	start int
	epoch uint64
}

// frameDesc identifies one opening of a frame.
type frameDesc struct {
	depth int
	epoch uint64
}

// ledger is the stack of open frames. epochs[d] is the epoch the next frame
// opened at depth d will receive; it advances every time a frame at depth d
// retires, so descriptors and handles captured earlier stop matching.
type ledger struct {
	frames []frameMark
	epochs []uint64
}

func (l *ledger) open(start int) frameDesc {
	d := len(l.frames)
	if d == len(l.epochs) {
		l.epochs = append(l.epochs, 1)
	}
	l.frames = append(l.frames, frameMark{start: start, epoch: l.epochs[d]})
	return frameDesc{depth: d, epoch: l.epochs[d]}
}

// top returns the depth of the innermost open frame, or -1 if none is open.
func (l *ledger) top() int { return len(l.frames) - 1 }

func (l *ledger) topDesc() frameDesc {
	d := l.top()
	return frameDesc{depth: d, epoch: l.frames[d].epoch}
}

// live reports whether the frame opened as (depth, epoch) is still open.
func (l *ledger) live(depth int, epoch uint64) bool {
	return depth >= 0 && depth < len(l.frames) && l.frames[depth].epoch == epoch
}

// check reports whether d may be closed now.
func (l *ledger) check(d frameDesc) error {
	if !l.live(d.depth, d.epoch) {
		return fmt.Errorf("%w: depth %d", ErrFrameClosed, d.depth)
	}
	if top := l.top(); d.depth != top {
		return fmt.Errorf("%w: frame %d closed while frame %d is open", ErrFrameOrder, d.depth, top)
	}
	return nil
}

// retire pops the innermost frame and advances its depth's epoch.
func (l *ledger) retire() frameMark {
	d := l.top()
	m := l.frames[d]
	l.frames = l.frames[:d]
	l.epochs[d]++
	return m
}

// bounds returns the slot range [start, end) owned by the frame at depth.
func (l *ledger) bounds(depth, storeLen int) (start, end int) {
	start = l.frames[depth].start
	end = storeLen
	if depth+1 < len(l.frames) {
		end = l.frames[depth+1].start
	}
	return start, end
}
