package kmp

import "io"

// streamBufSize is the read chunk used by the reader scans.
const streamBufSize = 32 * 1024

// FindReader scans r for m's pattern and returns the absolute byte offset
// of the first occurrence, or NotFound once r is exhausted. The match state
// carries across read boundaries, so the scan uses constant memory no
// matter how large the stream is or where chunk boundaries fall.
func FindReader(m *Matcher[byte], r io.Reader) (int64, error) {
	var off int64
	s := 0
	buf := make([]byte, streamBufSize)
	for {
		n, err := r.Read(buf)
		for i := 0; i < n; i++ {
			for s > 0 && buf[i] != m.pattern[s] {
				s = m.failure[s]
			}
			if buf[i] == m.pattern[s] {
				s++
			}
			if s == len(m.pattern) {
				return off + int64(i) - int64(len(m.pattern)) + 1, nil
			}
		}
		off += int64(n)
		if err == io.EOF {
			return NotFound, nil
		}
		if err != nil {
			return NotFound, err
		}
	}
}

// CountReader scans r and returns the number of occurrences of m's pattern,
// counting overlapping occurrences exactly as Matcher.Count does.
func CountReader(m *Matcher[byte], r io.Reader) (int64, error) {
	var count int64
	s := 0
	buf := make([]byte, streamBufSize)
	for {
		n, err := r.Read(buf)
		for i := 0; i < n; i++ {
			for s > 0 && buf[i] != m.pattern[s] {
				s = m.failure[s]
			}
			if buf[i] == m.pattern[s] {
				s++
			}
			if s == len(m.pattern) {
				count++
				s = m.failure[s]
			}
		}
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, err
		}
	}
}
