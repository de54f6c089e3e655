// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audhal/muxer"
	"github.com/ik5/audhal/wire"
)

func init() {
	muxer.Register(muxer.OutputFormatWAVE, func(w io.WriteSeeker) (muxer.Engine, error) {
		return NewEngine(w), nil
	})
	muxer.RegisterAppend(muxer.OutputFormatWAVE, func(rw io.ReadWriteSeeker, mode muxer.AppendMode) (muxer.Engine, error) {
		return NewAppendEngine(rw, mode)
	})
}

// Engine is the reference muxer engine: a single-track PCM 16-bit WAV
// writer built on go-audio/wav. It exists to exercise and demonstrate the
// muxer facade; production container writers live outside this module.
type Engine struct {
	w   io.WriteSeeker
	enc *gowav.Encoder

	track    *muxer.TrackFormat
	channels int

	// Samples carried over from an existing file in append mode, written
	// out before any new sample on Start.
	carried []int

	started bool
	stopped bool

	intBuf *goaudio.IntBuffer
}

// NewEngine returns an engine writing a fresh WAV file to w.
func NewEngine(w io.WriteSeeker) *Engine {
	return &Engine{w: w}
}

// NewAppendEngine reopens an existing PCM 16-bit WAV in rw and prepares
// to continue its data chunk. The existing samples are re-emitted on
// Start, so the file header is rewritten consistently on Stop.
func NewAppendEngine(rw io.ReadWriteSeeker, mode muxer.AppendMode) (*Engine, error) {
	dec := gowav.NewDecoder(rw)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	if dec.WavAudioFormat != 1 || dec.BitDepth != 16 {
		return nil, fmt.Errorf("%w: %s", muxer.ErrFormatUnsupported, ErrOnlyPCM16bitSupported)
	}
	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, fmt.Errorf("%w: %s", muxer.ErrFormatUnsupported, ErrUnsupportedWavLayout)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading existing samples: %w", err)
	}

	carried := buf.Data
	if mode == muxer.AppendIgnoreLastSample && len(carried) >= format.NumChannels {
		// The final frame may be truncated; drop it.
		carried = carried[:len(carried)-format.NumChannels]
	}

	if _, err := rw.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding for append: %w", err)
	}

	track := muxer.TrackFormat{
		Format:        wire.PCMFormat(wire.PCMTypeInt16),
		ChannelLayout: wire.MakeIndexMask(wire.IndexMaskFor(format.NumChannels)),
		SampleRate:    int32(format.SampleRate),
	}
	return &Engine{
		w:        rw,
		track:    &track,
		channels: format.NumChannels,
		carried:  carried,
	}, nil
}

// channelCount derives a fixed channel count from a track's layout. Only
// layout and index masks describe one; voice masks and unset layouts do
// not identify a WAV channel configuration.
func channelCount(layout wire.ChannelLayout) int {
	switch layout.Tag() {
	case wire.LayoutTagLayoutMask, wire.LayoutTagIndexMask:
		return layout.ChannelCount()
	default:
		return 0
	}
}

func (e *Engine) AddTrack(format muxer.TrackFormat) (int, error) {
	if e.stopped {
		return -1, muxer.ErrStopped
	}
	if e.started {
		return -1, fmt.Errorf("add track after start: %w", muxer.ErrAlreadyStarted)
	}
	if e.track != nil {
		// Append mode pre-seeds the track; adding a matching one refers
		// to it, anything else cannot go into the same WAV.
		if e.carried != nil && format == *e.track {
			return 0, nil
		}
		return -1, fmt.Errorf("%w: WAV holds a single track", muxer.ErrFormatUnsupported)
	}
	if format.Format != wire.PCMFormat(wire.PCMTypeInt16) {
		return -1, fmt.Errorf("%w: WAV engine writes PCM 16-bit only, got %s",
			muxer.ErrFormatUnsupported, format.Format)
	}
	channels := channelCount(format.ChannelLayout)
	if channels < 1 {
		return -1, fmt.Errorf("%w: layout %s has no fixed channel count",
			muxer.ErrFormatUnsupported, format.ChannelLayout)
	}
	if format.SampleRate < 1 {
		return -1, fmt.Errorf("%w: sample rate %d", muxer.ErrFormatUnsupported, format.SampleRate)
	}

	e.track = &format
	e.channels = channels
	return 0, nil
}

func (e *Engine) Start() error {
	if e.stopped {
		return muxer.ErrStopped
	}
	if e.started {
		return muxer.ErrAlreadyStarted
	}
	if e.track == nil {
		return fmt.Errorf("start without track: %w", muxer.ErrNotStarted)
	}

	e.enc = gowav.NewEncoder(e.w, int(e.track.SampleRate), 16, e.channels, 1)
	e.started = true

	if len(e.carried) > 0 {
		buf := &goaudio.IntBuffer{
			Data:           e.carried,
			Format:         &goaudio.Format{NumChannels: e.channels, SampleRate: int(e.track.SampleRate)},
			SourceBitDepth: 16,
		}
		if err := e.enc.Write(buf); err != nil {
			return fmt.Errorf("rewriting existing samples: %w", err)
		}
		e.carried = nil
	}
	return nil
}

func (e *Engine) WriteSample(track int, sample []byte, info muxer.SampleInfo) error {
	if e.stopped {
		return muxer.ErrStopped
	}
	if !e.started {
		return muxer.ErrNotStarted
	}
	if track != 0 || e.track == nil {
		return muxer.ErrTrackOutOfRange
	}

	frameBytes := 2 * e.channels
	if len(sample) == 0 || len(sample)%frameBytes != 0 {
		return fmt.Errorf("%w: %d bytes is no whole number of %d-byte frames",
			muxer.ErrMalformedSample, len(sample), frameBytes)
	}

	samples := len(sample) / 2
	if e.intBuf == nil || cap(e.intBuf.Data) < samples {
		e.intBuf = &goaudio.IntBuffer{
			Data:           make([]int, samples),
			Format:         &goaudio.Format{NumChannels: e.channels, SampleRate: int(e.track.SampleRate)},
			SourceBitDepth: 16,
		}
	}
	e.intBuf.Data = e.intBuf.Data[:samples]
	for i := range samples {
		e.intBuf.Data[i] = int(int16(binary.LittleEndian.Uint16(sample[2*i : 2*i+2])))
	}

	if err := e.enc.Write(e.intBuf); err != nil {
		return fmt.Errorf("writing samples: %w", err)
	}
	return nil
}

func (e *Engine) Stop() error {
	if e.stopped {
		return muxer.ErrStopped
	}
	if !e.started {
		return muxer.ErrNotStarted
	}
	e.stopped = true
	if err := e.enc.Close(); err != nil {
		return fmt.Errorf("finalizing WAV: %w", err)
	}
	return nil
}

func (e *Engine) TrackCount() int {
	if e.track == nil {
		return 0
	}
	return 1
}

func (e *Engine) TrackFormat(track int) (muxer.TrackFormat, error) {
	if track != 0 || e.track == nil {
		return muxer.TrackFormat{}, muxer.ErrTrackOutOfRange
	}
	return *e.track, nil
}

// SetLocation is unsupported: WAV carries no geotag.
func (e *Engine) SetLocation(latitudeE4, longitudeE4 int32) error {
	return muxer.ErrOperationUnsupported
}

// SetOrientationHint is unsupported: WAV carries no orientation.
func (e *Engine) SetOrientationHint(degrees int32) error {
	return muxer.ErrOperationUnsupported
}
