package protocol

// maxBuffered caps how many bytes a Reassembler holds while waiting for the
// rest of a frame.
const maxBuffered = 512

// Reassembler joins notifications into whole frames. A frame may arrive split
// across several notifications, and one notification may carry several
// frames. Bytes before a frame prefix are discarded.
type Reassembler struct {
	buf []byte
}

// Feed appends data and returns every frame it completes, oldest first. The
// returned frames are not validated; pass them to Parse.
func (r *Reassembler) Feed(data []byte) [][]byte {
	r.buf = append(r.buf, data...)

	var frames [][]byte
	for {
		start := -1
		for i, b := range r.buf {
			if b == FramePrefix {
				start = i
				break
			}
		}
		if start < 0 {
			r.buf = r.buf[:0]
			break
		}
		r.buf = r.buf[start:]

		if len(r.buf) < 2 {
			break
		}
		size := 2 + int(r.buf[1])
		if len(r.buf) < size {
			break
		}

		frame := make([]byte, size)
		copy(frame, r.buf[:size])
		frames = append(frames, frame)
		r.buf = r.buf[size:]
	}

	if len(r.buf) > maxBuffered {
		r.buf = r.buf[:0]
	}
	return frames
}

// Pending returns how many bytes are buffered.
func (r *Reassembler) Pending() int {
	return len(r.buf)
}

// Reset drops anything buffered.
func (r *Reassembler) Reset() {
	r.buf = r.buf[:0]
}
