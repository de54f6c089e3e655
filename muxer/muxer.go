// SPDX-License-Identifier: EPL-2.0

package muxer

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ik5/audhal/wire"
)

// OutputFormat enumerates container formats an engine can be registered
// for.
type OutputFormat int32

const (
	OutputFormatMPEG4 OutputFormat = iota
	OutputFormatWebM
	OutputFormatThreeGPP
	OutputFormatHEIF
	OutputFormatOgg
	OutputFormatWAVE
)

// AppendMode selects how appending joins the existing container data.
type AppendMode int32

const (
	// AppendIgnoreLastSample drops the final sample of the existing data
	// before appending, assuming it may be truncated.
	AppendIgnoreLastSample AppendMode = 0
	// AppendToExistingData appends directly after the existing data.
	AppendToExistingData AppendMode = 1
)

// SampleFlags annotate a written sample.
type SampleFlags uint32

const (
	SampleFlagSync         SampleFlags = 1
	SampleFlagCodecConfig  SampleFlags = 2
	SampleFlagEndOfStream  SampleFlags = 4
	SampleFlagPartialFrame SampleFlags = 8
)

// SampleInfo locates a sample inside a caller buffer and carries its
// timing and flags.
type SampleInfo struct {
	Offset             int
	Size               int
	PresentationTimeUs int64
	Flags              SampleFlags
}

// TrackFormat describes one track in wire metadata terms.
type TrackFormat struct {
	Format        wire.FormatDescription
	ChannelLayout wire.ChannelLayout
	SampleRate    int32
}

// Engine is the container writer behind the facade. Implementations own
// the mux state machine; the facade owns argument validation and error
// translation.
type Engine interface {
	AddTrack(format TrackFormat) (int, error)
	Start() error
	WriteSample(track int, sample []byte, info SampleInfo) error
	Stop() error
	TrackCount() int
	TrackFormat(track int) (TrackFormat, error)
	SetLocation(latitudeE4, longitudeE4 int32) error
	SetOrientationHint(degrees int32) error
}

// Muxer forwards operations to an Engine and translates its failures into
// status-carrying errors.
type Muxer struct {
	engine   Engine
	log      *slog.Logger
	registry *Registry
}

// Option configures a Muxer.
type Option func(*Muxer)

// WithLogger makes the muxer log each forwarded operation at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Muxer) {
		if logger != nil {
			m.log = logger
		}
	}
}

// WithRegistry resolves engines from reg instead of the default registry.
func WithRegistry(reg *Registry) Option {
	return func(m *Muxer) {
		m.registry = reg
	}
}

// registry is resolved before engine construction, so it lives on the
// Muxer only during New/Append.
func (m *Muxer) applyOptions(opts []Option) {
	m.log = slog.New(slog.DiscardHandler)
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = defaultRegistry
	}
}

// New creates a muxer writing a fresh container of the given format to w.
// Formats without a registered engine fail with StatusUnsupported.
func New(format OutputFormat, w io.WriteSeeker, opts ...Option) (*Muxer, error) {
	m := &Muxer{}
	m.applyOptions(opts)

	factory, ok := m.registry.Get(format)
	if !ok {
		return nil, fail("new", StatusUnsupported,
			fmt.Errorf("%w: no engine for output format %d", ErrFormatUnsupported, int32(format)))
	}
	engine, err := factory(w)
	if err != nil {
		return nil, translate("new", err)
	}
	m.engine = engine
	m.log.Debug("muxer created", "format", int32(format))
	return m, nil
}

// Append reopens an existing container of the given format in rw and
// prepares to continue it according to mode.
func Append(format OutputFormat, rw io.ReadWriteSeeker, mode AppendMode, opts ...Option) (*Muxer, error) {
	m := &Muxer{}
	m.applyOptions(opts)

	factory, ok := m.registry.GetAppend(format)
	if !ok {
		return nil, fail("append", StatusUnsupported,
			fmt.Errorf("%w: no append engine for output format %d", ErrFormatUnsupported, int32(format)))
	}
	engine, err := factory(rw, mode)
	if err != nil {
		return nil, translate("append", err)
	}
	m.engine = engine
	m.log.Debug("muxer reopened for append", "format", int32(format), "mode", int32(mode))
	return m, nil
}

// AddTrack registers a track with the engine and returns its index. On
// failure the index is negative.
func (m *Muxer) AddTrack(format TrackFormat) (int, error) {
	track, err := m.engine.AddTrack(format)
	if err != nil {
		return -1, translate("add track", err)
	}
	m.log.Debug("track added", "track", track, "format", format.Format.String())
	return track, nil
}

// Start transitions the engine into the writing state.
func (m *Muxer) Start() error {
	m.log.Debug("start")
	return translate("start", m.engine.Start())
}

// Stop finalizes the container. The muxer is unusable afterwards.
func (m *Muxer) Stop() error {
	m.log.Debug("stop")
	return translate("stop", m.engine.Stop())
}

// WriteSampleData writes the sample described by info out of data to the
// given track. Offset and size must select a range inside data.
func (m *Muxer) WriteSampleData(track int, data []byte, info SampleInfo) error {
	if info.Offset < 0 || info.Size < 0 || info.Offset+info.Size > len(data) {
		return fail("write sample data", StatusInvalidParameter,
			fmt.Errorf("sample range [%d:%d] outside buffer of %d bytes",
				info.Offset, info.Offset+info.Size, len(data)))
	}
	sample := data[info.Offset : info.Offset+info.Size]
	return translate("write sample data", m.engine.WriteSample(track, sample, info))
}

// SetLocation stores a geotag. Latitude must be within [-90, 90] and
// longitude within [-180, 180] degrees; values are forwarded to the
// engine as fixed-point degrees multiplied by 10000.
func (m *Muxer) SetLocation(latitude, longitude float32) error {
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return fail("set location", StatusInvalidParameter,
			fmt.Errorf("location (%v, %v) out of range", latitude, longitude))
	}
	return translate("set location",
		m.engine.SetLocation(int32(latitude*10000), int32(longitude*10000)))
}

// SetOrientationHint stores a playback rotation hint. Only quarter turns
// are accepted.
func (m *Muxer) SetOrientationHint(degrees int) error {
	switch degrees {
	case 0, 90, 180, 270:
	default:
		return fail("set orientation hint", StatusInvalidParameter,
			fmt.Errorf("orientation %d not a quarter turn", degrees))
	}
	return translate("set orientation hint", m.engine.SetOrientationHint(int32(degrees)))
}

// TrackCount reports the number of tracks added so far.
func (m *Muxer) TrackCount() int {
	return m.engine.TrackCount()
}

// TrackFormat returns the format a track was added with.
func (m *Muxer) TrackFormat(track int) (TrackFormat, error) {
	format, err := m.engine.TrackFormat(track)
	if err != nil {
		return TrackFormat{}, translate("track format", err)
	}
	return format, nil
}
