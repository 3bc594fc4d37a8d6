package blackrock

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testElectrode struct {
	id    uint16
	label string
}

// buildNSx assembles a minimal NEURALCD file: basic header, one
// extended header per electrode, and one zero-filled data packet per
// point count in packets.
func buildNSx(t *testing.T, period uint32, electrodes []testElectrode, packets []uint32) []byte {
	t.Helper()

	var buf bytes.Buffer
	buf.WriteString("NEURALCD")
	buf.WriteByte(2) // spec major
	buf.WriteByte(3) // spec minor

	headerBytes := uint32(basicHeaderSize + extendedHeaderSize*len(electrodes))
	_ = binary.Write(&buf, binary.LittleEndian, headerBytes)

	buf.Write(padded("testfile", 16))
	buf.Write(make([]byte, 256)) // comment
	_ = binary.Write(&buf, binary.LittleEndian, period)
	_ = binary.Write(&buf, binary.LittleEndian, uint32(ClockRate))
	buf.Write(make([]byte, 16)) // time origin
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(electrodes)))

	for _, elec := range electrodes {
		buf.WriteString("CC")
		_ = binary.Write(&buf, binary.LittleEndian, elec.id)
		buf.Write(padded(elec.label, 16))
		buf.WriteByte(1) // connector
		buf.WriteByte(1) // pin
		// digital/analog ranges, units, filter settings
		buf.Write(make([]byte, 8))
		buf.Write(padded("uV", 16))
		buf.Write(make([]byte, 20))
	}

	for _, points := range packets {
		buf.WriteByte(packetMarker)
		_ = binary.Write(&buf, binary.LittleEndian, uint32(0)) // timestamp
		_ = binary.Write(&buf, binary.LittleEndian, points)
		buf.Write(make([]byte, int(points)*len(electrodes)*2))
	}

	return buf.Bytes()
}

func padded(s string, n int) []byte {
	b := make([]byte, n)
	copy(b, s)
	return b
}

func writeTemp(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rec_neu_001.ns5")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestOpenReadsHeaders(t *testing.T) {
	electrodes := []testElectrode{
		{id: 1, label: "137"},
		{id: 129, label: "ainp3"},
		{id: 144, label: "ainp16"},
	}
	path := writeTemp(t, buildNSx(t, 1, electrodes, []uint32{100}))

	nsx, err := Open(path)
	require.NoError(t, err)
	defer nsx.Close()

	assert.Equal(t, uint8(2), nsx.SpecMajor)
	assert.Equal(t, uint8(3), nsx.SpecMinor)
	assert.Equal(t, "testfile", nsx.Label)
	assert.Equal(t, ClockRate, nsx.SampleRate())
	assert.Equal(t, 3, nsx.ChannelCount())

	got := nsx.Electrodes()
	require.Len(t, got, 3)
	assert.Equal(t, uint16(1), got[0].ID)
	assert.Equal(t, "137", got[0].Label)
	assert.Equal(t, "ainp3", got[1].Label)
	assert.Equal(t, "ainp16", got[2].Label)
	assert.Equal(t, "uV", got[0].Units)
}

func TestSampleRateFromPeriod(t *testing.T) {
	// period 6 is the 5 kHz continuous stream
	path := writeTemp(t, buildNSx(t, 6, []testElectrode{{id: 1, label: "1"}}, nil))

	nsx, err := Open(path)
	require.NoError(t, err)
	defer nsx.Close()

	assert.Equal(t, 5000, nsx.SampleRate())
}

func TestDurationSumsPackets(t *testing.T) {
	electrodes := []testElectrode{{id: 1, label: "1"}, {id: 2, label: "2"}}
	path := writeTemp(t, buildNSx(t, 1, electrodes, []uint32{30000, 60000}))

	nsx, err := Open(path)
	require.NoError(t, err)
	defer nsx.Close()

	duration, err := nsx.Duration()
	require.NoError(t, err)
	assert.InDelta(t, 3.0, duration, 1e-9)
}

func TestDurationEmptyFile(t *testing.T) {
	path := writeTemp(t, buildNSx(t, 1, []testElectrode{{id: 1, label: "1"}}, nil))

	nsx, err := Open(path)
	require.NoError(t, err)
	defer nsx.Close()

	duration, err := nsx.Duration()
	require.NoError(t, err)
	assert.Zero(t, duration)
}

func TestOpenRejectsUnknownMagic(t *testing.T) {
	data := buildNSx(t, 1, []testElectrode{{id: 1, label: "1"}}, nil)
	copy(data[0:8], "NEURALSG")
	path := writeTemp(t, data)

	_, err := Open(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestOpenRejectsHeaderSizeMismatch(t *testing.T) {
	data := buildNSx(t, 1, []testElectrode{{id: 1, label: "1"}}, nil)
	binary.LittleEndian.PutUint32(data[10:14], 9999)
	path := writeTemp(t, data)

	_, err := Open(path)
	require.Error(t, err)
}

func TestDurationRejectsTruncatedPacket(t *testing.T) {
	data := buildNSx(t, 1, []testElectrode{{id: 1, label: "1"}}, []uint32{1000})
	data = data[:len(data)-10]
	path := writeTemp(t, data)

	nsx, err := Open(path)
	require.NoError(t, err)
	defer nsx.Close()

	_, err = nsx.Duration()
	require.Error(t, err)
}

func TestDurationRejectsBadMarker(t *testing.T) {
	electrodes := []testElectrode{{id: 1, label: "1"}}
	data := buildNSx(t, 1, electrodes, []uint32{10})
	data[basicHeaderSize+extendedHeaderSize] = 0x7f
	path := writeTemp(t, data)

	nsx, err := Open(path)
	require.NoError(t, err)
	defer nsx.Close()

	_, err = nsx.Duration()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad data packet marker")
}
