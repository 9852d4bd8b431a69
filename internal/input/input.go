package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last byte.
// Terminals never report key-up, so holding is inferred from auto-repeat.
const keyHoldDuration = 120 * time.Millisecond

// Frame is one frame's worth of terminal input.
type Frame struct {
	Held    [keyCount]bool
	Pressed []Key // Keys seen this frame, in arrival order (for menu navigation)
	Raw     []byte
}

// Stream delivers terminal bytes via a channel and remembers when each key was last seen.
type Stream struct {
	ch       chan byte
	lastSeen [keyCount]time.Time
	closed   bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// Read drains all available bytes (non-blocking) and returns the frame's input.
func (s *Stream) Read(now time.Time) Frame {
	var buf []byte
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}
	return s.parse(buf, now)
}

// parse decodes bytes into keys, including CSI arrow sequences.
func (s *Stream) parse(buf []byte, now time.Time) Frame {
	f := Frame{Raw: buf}
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			if k, ok := arrowKey(buf[i+2]); ok {
				s.lastSeen[k] = now
				f.Pressed = append(f.Pressed, k)
				i += 2
				continue
			}
		}
		if k, ok := byteKey(b); ok {
			s.lastSeen[k] = now
			f.Pressed = append(f.Pressed, k)
		}
	}
	for k := range f.Held {
		f.Held[k] = !s.lastSeen[k].IsZero() && now.Sub(s.lastSeen[k]) < keyHoldDuration
	}
	return f
}

// Apply pushes the frame's held keys into st.
func (f Frame) Apply(st *State) {
	for k, down := range f.Held {
		st.Set(Key(k), down)
	}
}

// Reset forgets all key timestamps so nothing carries over between screens.
func (s *Stream) Reset() {
	s.lastSeen = [keyCount]time.Time{}
}

func arrowKey(b byte) (Key, bool) {
	switch b {
	case 'A':
		return KeyUp, true
	case 'B':
		return KeyDown, true
	case 'C':
		return KeyRight, true
	case 'D':
		return KeyLeft, true
	}
	return 0, false
}

func byteKey(b byte) (Key, bool) {
	switch b {
	case 'q', 'Q':
		return KeyQuit, true
	case 'a', 'A':
		return KeyLeft, true
	case 'd', 'D':
		return KeyRight, true
	case 'w', 'W':
		return KeyUp, true
	case 's', 'S':
		return KeyDown, true
	case ' ':
		return KeyFire, true
	case '\n', '\r':
		return KeyConfirm, true
	case '\x1b', '\b', '\x7f':
		return KeyBack, true
	}
	return 0, false
}
