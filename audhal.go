// SPDX-License-Identifier: EPL-2.0

package audhal

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/audhal/audio"
	"github.com/ik5/audhal/formats/aiff"
	"github.com/ik5/audhal/formats/mp3"
	"github.com/ik5/audhal/formats/vorbis"
	"github.com/ik5/audhal/formats/wav"
	"github.com/ik5/audhal/muxer"
	"github.com/ik5/audhal/utils"
	"github.com/ik5/audhal/wire"
)

// Decoders returns a registry with every decoder this module ships,
// keyed by format name: "wav", "mp3", "ogg", "aiff".
func Decoders() *audio.Registry {
	registry := audio.NewRegistry()
	registry.Register("wav", wav.Decoder{})
	registry.Register("mp3", mp3.Decoder{})
	registry.Register("ogg", vorbis.Decoder{})
	registry.Register("aiff", aiff.Decoder{})
	return registry
}

// CollectPCM16 drains a source and converts its samples to 16-bit PCM.
// bufferSize is the read chunk in samples (e.g. 4096).
func CollectPCM16(src audio.Source, bufferSize int) ([]int16, error) {
	if bufferSize < 1 {
		bufferSize = 4096
	}

	pcm16 := make([]int16, 0, bufferSize)
	buf := make([]float32, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		for i := range n {
			pcm16 = append(pcm16, utils.Float32ToInt16(buf[i]))
		}
		if err == io.EOF {
			return pcm16, nil
		}
		if err != nil {
			return pcm16, fmt.Errorf("reading samples: %w", err)
		}
	}
}

// TransmuxWAV drains a decoded source and writes it out as a PCM 16-bit
// WAV through the muxer facade. The source's rate and channel count are
// kept; only the sample representation changes.
func TransmuxWAV(w io.WriteSeeker, src audio.Source, bufferSize int) error {
	if bufferSize < 1 {
		bufferSize = 4096
	}
	channels := src.Channels()
	if channels < 1 {
		return fmt.Errorf("source reports %d channels", channels)
	}
	// Whole frames only.
	bufferSize -= bufferSize % channels
	if bufferSize == 0 {
		bufferSize = channels
	}

	m, err := muxer.New(muxer.OutputFormatWAVE, w)
	if err != nil {
		return err
	}

	track, err := m.AddTrack(muxer.TrackFormat{
		Format:        wire.PCMFormat(wire.PCMTypeInt16),
		ChannelLayout: wire.MakeIndexMask(wire.IndexMaskFor(channels)),
		SampleRate:    int32(src.SampleRate()),
	})
	if err != nil {
		return err
	}
	if err := m.Start(); err != nil {
		return err
	}

	buf := make([]float32, bufferSize)
	// Pending carry can push a flush past bufferSize by up to a frame.
	data := make([]byte, 2*(bufferSize+channels))
	var pending []float32
	var framesWritten int64

	flush := func(samples []float32) error {
		if len(samples) == 0 {
			return nil
		}
		for i, s := range samples {
			binary.LittleEndian.PutUint16(data[2*i:], uint16(utils.Float32ToInt16(s)))
		}
		info := muxer.SampleInfo{
			Size:               2 * len(samples),
			PresentationTimeUs: framesWritten * 1_000_000 / int64(src.SampleRate()),
		}
		if err := m.WriteSampleData(track, data[:2*len(samples)], info); err != nil {
			return err
		}
		framesWritten += int64(len(samples) / channels)
		return nil
	}

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			pending = append(pending, buf[:n]...)
			whole := len(pending) - len(pending)%channels
			if flushErr := flush(pending[:whole]); flushErr != nil {
				return flushErr
			}
			pending = pending[:copy(pending, pending[whole:])]
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading samples: %w", err)
		}
	}

	if len(pending) != 0 {
		return fmt.Errorf("source ended mid-frame with %d stray samples", len(pending))
	}
	return m.Stop()
}
