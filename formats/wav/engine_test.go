// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/audhal/muxer"
	"github.com/ik5/audhal/wire"
)

func pcm16Bytes(samples []int16) []byte {
	out := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}
	return out
}

func monoTrack(rate int32) muxer.TrackFormat {
	return muxer.TrackFormat{
		Format:        wire.PCMFormat(wire.PCMTypeInt16),
		ChannelLayout: wire.MakeLayoutMask(wire.LayoutMono),
		SampleRate:    rate,
	}
}

func tempWAVPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "out.wav")
}

func readAllSamples(t *testing.T, path string) (rate, channels int, samples []int16) {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening result: %v", err)
	}
	defer f.Close()

	decoder := Decoder{}
	src, err := decoder.Decode(f)
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}

	buf := make([]float32, 256)
	for {
		n, err := src.ReadSamples(buf)
		for i := range n {
			samples = append(samples, int16(buf[i]*32768.0))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("reading result samples: %v", err)
		}
	}

	return src.SampleRate(), src.Channels(), samples
}

func TestEngine_MuxMonoFile(t *testing.T) {
	t.Parallel()

	path := tempWAVPath(t)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating file: %v", err)
	}
	defer f.Close()

	m, err := muxer.New(muxer.OutputFormatWAVE, f)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	track, err := m.AddTrack(monoTrack(8000))
	if err != nil {
		t.Fatalf("AddTrack() error = %v", err)
	}
	if track != 0 {
		t.Fatalf("AddTrack() track = %d, want 0", track)
	}

	if err := m.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	want := []int16{0, 1000, -1000, 32767, -32768, 500}
	data := pcm16Bytes(want)
	info := muxer.SampleInfo{Offset: 0, Size: len(data)}
	if err := m.WriteSampleData(track, data, info); err != nil {
		t.Fatalf("WriteSampleData() error = %v", err)
	}

	if err := m.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}

	rate, channels, got := readAllSamples(t, path)
	if rate != 8000 {
		t.Errorf("result sample rate = %d, want 8000", rate)
	}
	if channels != 1 {
		t.Errorf("result channels = %d, want 1", channels)
	}
	if len(got) != len(want) {
		t.Fatalf("result has %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestEngine_MuxStereoWithOffset(t *testing.T) {
	t.Parallel()

	path := tempWAVPath(t)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating file: %v", err)
	}
	defer f.Close()

	m, err := muxer.New(muxer.OutputFormatWAVE, f)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	format := muxer.TrackFormat{
		Format:        wire.PCMFormat(wire.PCMTypeInt16),
		ChannelLayout: wire.MakeIndexMask(wire.IndexMaskFor(2)),
		SampleRate:    44100,
	}
	track, err := m.AddTrack(format)
	if err != nil {
		t.Fatalf("AddTrack() error = %v", err)
	}
	if err := m.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	// Sample range sits in the middle of a larger buffer.
	want := []int16{100, -100, 200, -200}
	payload := pcm16Bytes(want)
	data := append(append([]byte{0xde, 0xad}, payload...), 0xbe, 0xef)
	info := muxer.SampleInfo{Offset: 2, Size: len(payload)}
	if err := m.WriteSampleData(track, data, info); err != nil {
		t.Fatalf("WriteSampleData() error = %v", err)
	}

	if err := m.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}

	rate, channels, got := readAllSamples(t, path)
	if rate != 44100 {
		t.Errorf("result sample rate = %d, want 44100", rate)
	}
	if channels != 2 {
		t.Errorf("result channels = %d, want 2", channels)
	}
	if len(got) != len(want) {
		t.Fatalf("result has %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestEngine_Append(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mode     muxer.AppendMode
		existing []int16
		appended []int16
		want     []int16
	}{
		{
			name:     "AppendToExistingData",
			mode:     muxer.AppendToExistingData,
			existing: []int16{10, 20, 30},
			appended: []int16{40, 50},
			want:     []int16{10, 20, 30, 40, 50},
		},
		{
			name:     "AppendIgnoreLastSample",
			mode:     muxer.AppendIgnoreLastSample,
			existing: []int16{10, 20, 30},
			appended: []int16{40, 50},
			want:     []int16{10, 20, 40, 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := tempWAVPath(t)
			f, err := os.Create(path)
			if err != nil {
				t.Fatalf("creating file: %v", err)
			}

			m, err := muxer.New(muxer.OutputFormatWAVE, f)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if _, err := m.AddTrack(monoTrack(8000)); err != nil {
				t.Fatalf("AddTrack() error = %v", err)
			}
			if err := m.Start(); err != nil {
				t.Fatalf("Start() error = %v", err)
			}
			data := pcm16Bytes(tt.existing)
			if err := m.WriteSampleData(0, data, muxer.SampleInfo{Size: len(data)}); err != nil {
				t.Fatalf("WriteSampleData() error = %v", err)
			}
			if err := m.Stop(); err != nil {
				t.Fatalf("Stop() error = %v", err)
			}
			f.Close()

			// Reopen and continue the file.
			f2, err := os.OpenFile(path, os.O_RDWR, 0)
			if err != nil {
				t.Fatalf("reopening file: %v", err)
			}
			defer f2.Close()

			m2, err := muxer.Append(muxer.OutputFormatWAVE, f2, tt.mode)
			if err != nil {
				t.Fatalf("Append() error = %v", err)
			}

			if m2.TrackCount() != 1 {
				t.Errorf("TrackCount() = %d, want 1", m2.TrackCount())
			}
			format, err := m2.TrackFormat(0)
			if err != nil {
				t.Fatalf("TrackFormat() error = %v", err)
			}
			if format.SampleRate != 8000 {
				t.Errorf("TrackFormat() sample rate = %d, want 8000", format.SampleRate)
			}

			if err := m2.Start(); err != nil {
				t.Fatalf("Start() after append error = %v", err)
			}
			data2 := pcm16Bytes(tt.appended)
			if err := m2.WriteSampleData(0, data2, muxer.SampleInfo{Size: len(data2)}); err != nil {
				t.Fatalf("WriteSampleData() after append error = %v", err)
			}
			if err := m2.Stop(); err != nil {
				t.Fatalf("Stop() after append error = %v", err)
			}

			_, _, got := readAllSamples(t, path)
			if len(got) != len(tt.want) {
				t.Fatalf("result has %d samples, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("sample[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestEngine_RejectsNonPCM16Track(t *testing.T) {
	t.Parallel()

	f, err := os.Create(tempWAVPath(t))
	if err != nil {
		t.Fatalf("creating file: %v", err)
	}
	defer f.Close()

	m, err := muxer.New(muxer.OutputFormatWAVE, f)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	format := muxer.TrackFormat{
		Format:        wire.BitstreamFormat("audio/mpeg"),
		ChannelLayout: wire.MakeLayoutMask(wire.LayoutStereo),
		SampleRate:    44100,
	}
	track, err := m.AddTrack(format)
	if err == nil {
		t.Fatal("AddTrack() error = nil, want unsupported format error")
	}
	if track >= 0 {
		t.Errorf("AddTrack() track = %d, want negative", track)
	}
	if got := muxer.StatusOf(err); got != muxer.StatusUnsupported {
		t.Errorf("StatusOf() = %s, want %s", got, muxer.StatusUnsupported)
	}
}

func TestEngine_RejectsSecondTrack(t *testing.T) {
	t.Parallel()

	f, err := os.Create(tempWAVPath(t))
	if err != nil {
		t.Fatalf("creating file: %v", err)
	}
	defer f.Close()

	m, err := muxer.New(muxer.OutputFormatWAVE, f)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := m.AddTrack(monoTrack(8000)); err != nil {
		t.Fatalf("first AddTrack() error = %v", err)
	}

	_, err = m.AddTrack(monoTrack(8000))
	if err == nil {
		t.Fatal("second AddTrack() error = nil, want unsupported format error")
	}
	if got := muxer.StatusOf(err); got != muxer.StatusUnsupported {
		t.Errorf("StatusOf() = %s, want %s", got, muxer.StatusUnsupported)
	}
}

func TestEngine_RejectsVoiceMaskLayout(t *testing.T) {
	t.Parallel()

	f, err := os.Create(tempWAVPath(t))
	if err != nil {
		t.Fatalf("creating file: %v", err)
	}
	defer f.Close()

	m, err := muxer.New(muxer.OutputFormatWAVE, f)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	format := muxer.TrackFormat{
		Format:        wire.PCMFormat(wire.PCMTypeInt16),
		ChannelLayout: wire.MakeVoiceMask(wire.VoiceUplinkMono),
		SampleRate:    8000,
	}
	if _, err := m.AddTrack(format); err == nil {
		t.Error("AddTrack() error = nil, want error for voice mask layout")
	}
}

func TestEngine_StateMachine(t *testing.T) {
	t.Parallel()

	f, err := os.Create(tempWAVPath(t))
	if err != nil {
		t.Fatalf("creating file: %v", err)
	}
	defer f.Close()

	m, err := muxer.New(muxer.OutputFormatWAVE, f)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	data := pcm16Bytes([]int16{1, 2})
	info := muxer.SampleInfo{Size: len(data)}

	// Write before start fails.
	if err := m.WriteSampleData(0, data, info); !errors.Is(err, muxer.ErrNotStarted) {
		t.Errorf("WriteSampleData() before Start error = %v, want ErrNotStarted", err)
	}

	// Start without a track fails.
	if err := m.Start(); muxer.StatusOf(err) != muxer.StatusInvalidOperation {
		t.Errorf("Start() without track status = %s, want %s",
			muxer.StatusOf(err), muxer.StatusInvalidOperation)
	}

	if _, err := m.AddTrack(monoTrack(8000)); err != nil {
		t.Fatalf("AddTrack() error = %v", err)
	}
	if err := m.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	// Double start fails.
	if err := m.Start(); !errors.Is(err, muxer.ErrAlreadyStarted) {
		t.Errorf("second Start() error = %v, want ErrAlreadyStarted", err)
	}

	// Adding a track while running fails.
	if _, err := m.AddTrack(monoTrack(8000)); !errors.Is(err, muxer.ErrAlreadyStarted) {
		t.Errorf("AddTrack() after Start error = %v, want ErrAlreadyStarted", err)
	}

	// Unknown track index fails.
	if err := m.WriteSampleData(3, data, info); !errors.Is(err, muxer.ErrTrackOutOfRange) {
		t.Errorf("WriteSampleData() track 3 error = %v, want ErrTrackOutOfRange", err)
	}

	if err := m.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}

	// Everything after stop fails.
	if err := m.WriteSampleData(0, data, info); !errors.Is(err, muxer.ErrStopped) {
		t.Errorf("WriteSampleData() after Stop error = %v, want ErrStopped", err)
	}
	if err := m.Stop(); !errors.Is(err, muxer.ErrStopped) {
		t.Errorf("second Stop() error = %v, want ErrStopped", err)
	}
}

func TestEngine_MalformedSample(t *testing.T) {
	t.Parallel()

	f, err := os.Create(tempWAVPath(t))
	if err != nil {
		t.Fatalf("creating file: %v", err)
	}
	defer f.Close()

	m, err := muxer.New(muxer.OutputFormatWAVE, f)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Stereo frames are 4 bytes each.
	format := muxer.TrackFormat{
		Format:        wire.PCMFormat(wire.PCMTypeInt16),
		ChannelLayout: wire.MakeLayoutMask(wire.LayoutStereo),
		SampleRate:    8000,
	}
	if _, err := m.AddTrack(format); err != nil {
		t.Fatalf("AddTrack() error = %v", err)
	}
	if err := m.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	data := []byte{1, 2, 3, 4, 5, 6}
	err = m.WriteSampleData(0, data, muxer.SampleInfo{Size: len(data)})
	if !errors.Is(err, muxer.ErrMalformedSample) {
		t.Errorf("WriteSampleData() error = %v, want ErrMalformedSample", err)
	}
	if got := muxer.StatusOf(err); got != muxer.StatusMalformed {
		t.Errorf("StatusOf() = %s, want %s", got, muxer.StatusMalformed)
	}
}

func TestEngine_LocationAndOrientationUnsupported(t *testing.T) {
	t.Parallel()

	f, err := os.Create(tempWAVPath(t))
	if err != nil {
		t.Fatalf("creating file: %v", err)
	}
	defer f.Close()

	m, err := muxer.New(muxer.OutputFormatWAVE, f)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := m.SetLocation(32.0, 34.8); !errors.Is(err, muxer.ErrOperationUnsupported) {
		t.Errorf("SetLocation() error = %v, want ErrOperationUnsupported", err)
	}
	if err := m.SetOrientationHint(90); !errors.Is(err, muxer.ErrOperationUnsupported) {
		t.Errorf("SetOrientationHint() error = %v, want ErrOperationUnsupported", err)
	}
}

func TestAppend_NotWAVFile(t *testing.T) {
	t.Parallel()

	path := tempWAVPath(t)
	if err := os.WriteFile(path, []byte("NOT A WAV FILE DATA"), 0o600); err != nil {
		t.Fatalf("writing file: %v", err)
	}
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		t.Fatalf("opening file: %v", err)
	}
	defer f.Close()

	_, err = muxer.Append(muxer.OutputFormatWAVE, f, muxer.AppendToExistingData)
	if err == nil {
		t.Fatal("Append() error = nil, want error for non-WAV file")
	}
}

// BenchmarkEngine_WriteSample benchmarks writing PCM chunks through the
// muxer facade.
func BenchmarkEngine_WriteSample(b *testing.B) {
	f, err := os.Create(filepath.Join(b.TempDir(), "bench.wav"))
	if err != nil {
		b.Fatalf("creating file: %v", err)
	}
	defer f.Close()

	m, err := muxer.New(muxer.OutputFormatWAVE, f)
	if err != nil {
		b.Fatalf("New() error = %v", err)
	}
	if _, err := m.AddTrack(monoTrack(44100)); err != nil {
		b.Fatalf("AddTrack() error = %v", err)
	}
	if err := m.Start(); err != nil {
		b.Fatalf("Start() error = %v", err)
	}

	samples := make([]int16, 4096)
	for i := range samples {
		samples[i] = int16(i % 1000)
	}
	data := pcm16Bytes(samples)
	info := muxer.SampleInfo{Size: len(data)}

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		if err := m.WriteSampleData(0, data, info); err != nil {
			b.Fatalf("WriteSampleData() error = %v", err)
		}
	}
}
