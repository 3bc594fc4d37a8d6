// Package blackrock reads the header metadata of Blackrock NSx
// continuous-recording files (file spec 2.2/2.3, "NEURALCD").
//
// Only the fields the catalog needs are surfaced: per-electrode IDs
// and labels, the sampling rate, and the recording duration. Sample
// data itself is never loaded; Duration walks the data packet headers
// and seeks past the payloads.
package blackrock

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

const (
	magic = "NEURALCD"

	// ClockRate is the Blackrock global sample clock (Hz). The basic
	// header stores the sampling period in 1/30000 s units.
	ClockRate = 30000

	basicHeaderSize    = 314
	extendedHeaderSize = 66
	packetHeaderSize   = 9
	packetMarker       = 0x01
)

// Electrode is one channel's extended header entry. The order of
// electrodes in the file header defines the channel indexing used by
// the catalog.
type Electrode struct {
	ID         uint16
	Label      string
	Connector  uint8
	Pin        uint8
	MinDigital int16
	MaxDigital int16
	MinAnalog  int16
	MaxAnalog  int16
	Units      string
}

// File is an open NSx file.
type File struct {
	f    *os.File
	path string
	size int64

	SpecMajor  uint8
	SpecMinor  uint8
	Label      string
	Period     uint32
	Resolution uint32

	electrodes []Electrode
	dataStart  int64
}

// Open reads and validates the NSx headers of the file at path.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	nsx, err := parse(f, path)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("parse nsx %s: %w", path, err)
	}
	return nsx, nil
}

func parse(f *os.File, path string) (*File, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	basic := make([]byte, basicHeaderSize)
	if _, err := io.ReadFull(f, basic); err != nil {
		return nil, fmt.Errorf("read basic header: %w", err)
	}

	if string(basic[0:8]) != magic {
		return nil, fmt.Errorf("unsupported file type %q", trimNul(basic[0:8]))
	}

	nsx := &File{
		f:          f,
		path:       path,
		size:       info.Size(),
		SpecMajor:  basic[8],
		SpecMinor:  basic[9],
		Label:      trimNul(basic[14:30]),
		Period:     binary.LittleEndian.Uint32(basic[286:290]),
		Resolution: binary.LittleEndian.Uint32(basic[290:294]),
	}

	if nsx.Period == 0 {
		return nil, fmt.Errorf("invalid sampling period 0")
	}

	headerBytes := binary.LittleEndian.Uint32(basic[10:14])
	channelCount := binary.LittleEndian.Uint32(basic[310:314])
	if want := uint32(basicHeaderSize) + channelCount*extendedHeaderSize; headerBytes != want {
		return nil, fmt.Errorf("header size %d does not match %d channels", headerBytes, channelCount)
	}

	nsx.electrodes = make([]Electrode, 0, channelCount)
	ext := make([]byte, extendedHeaderSize)
	for i := uint32(0); i < channelCount; i++ {
		if _, err := io.ReadFull(f, ext); err != nil {
			return nil, fmt.Errorf("read extended header %d: %w", i, err)
		}
		if string(ext[0:2]) != "CC" {
			return nil, fmt.Errorf("extended header %d: unexpected type %q", i, ext[0:2])
		}
		nsx.electrodes = append(nsx.electrodes, Electrode{
			ID:         binary.LittleEndian.Uint16(ext[2:4]),
			Label:      trimNul(ext[4:20]),
			Connector:  ext[20],
			Pin:        ext[21],
			MinDigital: int16(binary.LittleEndian.Uint16(ext[22:24])),
			MaxDigital: int16(binary.LittleEndian.Uint16(ext[24:26])),
			MinAnalog:  int16(binary.LittleEndian.Uint16(ext[26:28])),
			MaxAnalog:  int16(binary.LittleEndian.Uint16(ext[28:30])),
			Units:      trimNul(ext[30:46]),
		})
	}

	nsx.dataStart = int64(headerBytes)
	return nsx, nil
}

// Path returns the path the file was opened from.
func (n *File) Path() string { return n.path }

// Electrodes returns the per-channel header entries in file order.
func (n *File) Electrodes() []Electrode { return n.electrodes }

// ChannelCount returns the number of channels in the file.
func (n *File) ChannelCount() int { return len(n.electrodes) }

// SampleRate returns the sampling rate in Hz.
func (n *File) SampleRate() int {
	return ClockRate / int(n.Period)
}

// Duration returns the recorded duration in seconds, summed over all
// data packets. Payloads are seeked past, not read.
func (n *File) Duration() (float64, error) {
	if _, err := n.f.Seek(n.dataStart, io.SeekStart); err != nil {
		return 0, err
	}

	var totalPoints uint64
	header := make([]byte, packetHeaderSize)
	offset := n.dataStart

	for offset < n.size {
		if _, err := io.ReadFull(n.f, header); err != nil {
			return 0, fmt.Errorf("read data packet header at %d: %w", offset, err)
		}
		if header[0] != packetMarker {
			return 0, fmt.Errorf("bad data packet marker 0x%02x at %d", header[0], offset)
		}

		points := binary.LittleEndian.Uint32(header[5:9])
		payload := int64(points) * int64(len(n.electrodes)) * 2
		offset += packetHeaderSize + payload
		if offset > n.size {
			return 0, fmt.Errorf("truncated data packet at %d", offset-payload-packetHeaderSize)
		}

		totalPoints += uint64(points)
		if _, err := n.f.Seek(payload, io.SeekCurrent); err != nil {
			return 0, err
		}
	}

	return float64(totalPoints) * float64(n.Period) / ClockRate, nil
}

// Close releases the underlying file handle.
func (n *File) Close() error {
	return n.f.Close()
}

func trimNul(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
