// Package wav encodes and decodes 16-bit PCM WAV data. It covers exactly what
// the voice pipeline needs: turning engine output into float samples for
// post-processing and writing processed samples back out as a playable file.
package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidHeader     = errors.New("wav: invalid header")
	ErrUnsupportedFormat = errors.New("wav: unsupported format")
	ErrMissingChunk      = errors.New("wav: missing chunk")
	ErrTruncated         = errors.New("wav: truncated data")
	ErrInvalidSampleRate = errors.New("wav: invalid sample rate")
)

const (
	formatPCM      = 1
	bitsPerSample  = 16
	bytesPerSample = 2
)

// Encode writes mono float32 samples as a 16-bit PCM WAV file. Samples are
// clamped to [-1, 1] before quantization.
func Encode(samples []float32, sampleRate int) ([]byte, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	dataSize := len(samples) * bytesPerSample

	var buf bytes.Buffer
	buf.Grow(44 + dataSize)

	buf.WriteString("RIFF")
	writeUint32(&buf, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	writeUint32(&buf, 16)
	writeUint16(&buf, formatPCM)
	writeUint16(&buf, 1) // mono
	writeUint32(&buf, uint32(sampleRate))
	writeUint32(&buf, uint32(sampleRate*bytesPerSample))
	writeUint16(&buf, bytesPerSample)
	writeUint16(&buf, bitsPerSample)

	buf.WriteString("data")
	writeUint32(&buf, uint32(dataSize))

	for _, s := range samples {
		if s > 1 {
			s = 1
		}

		if s < -1 {
			s = -1
		}

		writeUint16(&buf, uint16(int16(math.Round(float64(s)*32767))))
	}

	return buf.Bytes(), nil
}

// Decode parses a 16-bit PCM WAV file into float32 samples in [-1, 1].
// Multi-channel input is downmixed to mono by averaging.
func Decode(data []byte) ([]float32, int, error) {
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, 0, ErrInvalidHeader
	}

	var (
		channels   int
		sampleRate int
		haveFormat bool
	)

	offset := 12

	for offset+8 <= len(data) {
		id := string(data[offset : offset+4])
		size := int(binary.LittleEndian.Uint32(data[offset+4 : offset+8]))

		body := offset + 8

		if body+size > len(data) {
			return nil, 0, ErrTruncated
		}

		switch id {
		case "fmt ":
			if size < 16 {
				return nil, 0, ErrInvalidHeader
			}

			format := int(binary.LittleEndian.Uint16(data[body : body+2]))
			channels = int(binary.LittleEndian.Uint16(data[body+2 : body+4]))
			sampleRate = int(binary.LittleEndian.Uint32(data[body+4 : body+8]))
			bits := int(binary.LittleEndian.Uint16(data[body+14 : body+16]))

			if format != formatPCM || bits != bitsPerSample {
				return nil, 0, fmt.Errorf("%w: format=%d bits=%d", ErrUnsupportedFormat, format, bits)
			}

			if channels < 1 || sampleRate <= 0 {
				return nil, 0, ErrInvalidHeader
			}

			haveFormat = true

		case "data":
			if !haveFormat {
				return nil, 0, fmt.Errorf("%w: fmt before data", ErrMissingChunk)
			}

			return decodeFrames(data[body:body+size], channels), sampleRate, nil
		}

		// chunks are word-aligned
		offset = body + size + size%2
	}

	return nil, 0, fmt.Errorf("%w: data", ErrMissingChunk)
}

func decodeFrames(raw []byte, channels int) []float32 {
	frameSize := channels * bytesPerSample
	frames := len(raw) / frameSize

	samples := make([]float32, frames)

	for i := range frames {
		var sum float32

		for c := range channels {
			off := i*frameSize + c*bytesPerSample
			val := int16(binary.LittleEndian.Uint16(raw[off : off+2]))
			sum += float32(val) / 32768
		}

		samples[i] = sum / float32(channels)
	}

	return samples
}

func writeUint16(buf *bytes.Buffer, v uint16) {
	var b [2]byte

	binary.LittleEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte

	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}
