// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic sources for exercising code that
// consumes audio.Source. The interface is implemented structurally rather
// than imported, keeping the package free of cycles.
package audiotest

import "io"

// MockSource produces interleaved frames from a generator function until a
// fixed frame budget is exhausted, then reports io.EOF.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int // frame budget
	emitted    int
	gen        func(frame, channel int) float32
}

// NewMockSource returns a source that emits frames frames of channels
// interleaved samples, each produced by gen.
func NewMockSource(sampleRate, channels, frames int, gen func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		gen:        gen,
	}
}

// NewSilentSource returns a source of all-zero samples.
func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 {
		return 0
	})
}

// NewConstantSource returns a source where every sample has the same value.
func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.emitted >= m.frames {
		return 0, io.EOF
	}

	want := len(dst) / m.channels
	if left := m.frames - m.emitted; want > left {
		want = left
	}

	for f := range want {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.gen(m.emitted+f, ch)
		}
	}
	m.emitted += want

	if m.emitted >= m.frames {
		return want * m.channels, io.EOF
	}
	return want * m.channels, nil
}
