// Package jpegquality estimates the quality setting a JPEG file was encoded
// with. It reads the quantization tables from the DQT segments and matches
// them against the ITU-T T.81 Annex K reference tables scaled the way libjpeg
// and image/jpeg scale them for a given quality.
package jpegquality

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

var (
	ErrInvalidJPEG  = errors.New("invalid JPEG header")
	ErrWrongTable   = errors.New("wrong size for quantization table")
	ErrShortSegment = errors.New("short segment length")
	ErrShortDQT     = errors.New("section DQT is too short")
	ErrMissingDQT   = errors.New("no quantization tables found")
)

const (
	markerSOI = 0xffd8
	markerEOI = 0xffd9
	markerSOS = 0xffda
	markerDQT = 0xffdb
)

// Reference luminance quantization table from ITU-T T.81, Annex K.
var luminanceQuant = [64]int{
	16, 11, 10, 16, 24, 40, 51, 61,
	12, 12, 14, 19, 26, 58, 60, 55,
	14, 13, 16, 24, 40, 57, 69, 56,
	14, 17, 22, 29, 51, 87, 80, 62,
	18, 22, 37, 56, 68, 109, 103, 77,
	24, 35, 55, 64, 81, 104, 113, 92,
	49, 64, 78, 87, 103, 121, 120, 101,
	72, 92, 95, 98, 112, 100, 103, 99,
}

// Reference chrominance quantization table from ITU-T T.81, Annex K.
var chrominanceQuant = [64]int{
	17, 18, 24, 47, 99, 99, 99, 99,
	18, 21, 26, 66, 99, 99, 99, 99,
	24, 26, 56, 99, 99, 99, 99, 99,
	47, 66, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
}

type jpegReader struct {
	rs      io.ReadSeeker
	quality int
}

// New parses JPEG data from rs and prepares a quality estimate. The reader is
// rewound first, so the same reader can be handed to New repeatedly.
func New(rs io.ReadSeeker) (*jpegReader, error) {
	jr := &jpegReader{rs: rs}
	if err := jr.parse(); err != nil {
		return nil, err
	}
	return jr, nil
}

// NewWithBytes parses JPEG data from a byte slice.
func NewWithBytes(data []byte) (*jpegReader, error) {
	return New(bytes.NewReader(data))
}

// Quality returns the estimated encoding quality in the range [1, 100].
func (jr *jpegReader) Quality() int {
	return jr.quality
}

// tableSum accumulates quantization coefficients for one table class.
type tableSum struct {
	sum   int
	count int
}

func (ts *tableSum) add(sum int) {
	ts.sum += sum
	ts.count++
}

func (jr *jpegReader) parse() error {
	if _, err := jr.rs.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if jr.readMarker() != markerSOI {
		return ErrInvalidJPEG
	}

	var lum, chroma tableSum
	for {
		marker := jr.readMarker()
		if marker == 0 {
			return ErrInvalidJPEG
		}
		if marker == markerEOI || marker == markerSOS {
			// Tables never follow the entropy-coded data.
			break
		}

		length, err := jr.readUint16()
		if err != nil || length < 2 {
			return ErrShortSegment
		}
		payload := length - 2

		if marker != markerDQT {
			if _, err := jr.rs.Seek(int64(payload), io.SeekCurrent); err != nil {
				return err
			}
			continue
		}

		// A single DQT segment may carry several tables, each prefixed with
		// a precision/destination byte.
		for payload > 0 {
			pqtq, err := jr.readByte()
			if err != nil {
				return ErrShortDQT
			}
			payload--

			prec := int(pqtq >> 4)
			id := int(pqtq & 0x0f)
			if prec > 1 || id > 3 {
				return ErrWrongTable
			}

			n := 64 * (prec + 1)
			if payload < n {
				return ErrShortDQT
			}
			buf := make([]byte, n)
			if _, err := io.ReadFull(jr.rs, buf); err != nil {
				return ErrShortDQT
			}
			payload -= n

			var sum int
			if prec == 0 {
				for _, v := range buf {
					sum += int(v)
				}
			} else {
				for i := 0; i < n; i += 2 {
					sum += int(binary.BigEndian.Uint16(buf[i:]))
				}
			}
			if id == 0 {
				lum.add(sum)
			} else {
				chroma.add(sum)
			}
		}
	}

	if lum.count+chroma.count == 0 {
		return ErrMissingDQT
	}
	jr.quality = estimateQuality(lum, chroma)
	return nil
}

// estimateQuality finds the quality whose scaled reference tables come
// closest to the observed coefficient sums. Encoders that derive their
// tables from the Annex K references with the IJG scaling formula (libjpeg,
// image/jpeg) are matched exactly; anything else gets a nearest fit.
func estimateQuality(lum, chroma tableSum) int {
	observed := lum.sum + chroma.sum

	best, bestDist := 1, int(^uint(0)>>1)
	for q := 1; q <= 100; q++ {
		predicted := lum.count*scaledTableSum(&luminanceQuant, q) +
			chroma.count*scaledTableSum(&chrominanceQuant, q)
		dist := predicted - observed
		if dist < 0 {
			dist = -dist
		}
		if dist < bestDist {
			best, bestDist = q, dist
		}
	}
	return best
}

// scaledTableSum sums a reference table scaled to the given quality using the
// IJG formula: quality 50 keeps the table as is, lower qualities multiply it,
// higher qualities shrink it, with every coefficient clamped to [1, 255].
func scaledTableSum(base *[64]int, quality int) int {
	scale := 200 - 2*quality
	if quality < 50 {
		scale = 5000 / quality
	}
	var sum int
	for _, v := range base {
		x := (v*scale + 50) / 100
		if x < 1 {
			x = 1
		} else if x > 255 {
			x = 255
		}
		sum += x
	}
	return sum
}

// readMarker reads the next JPEG marker at the current position. Fill bytes
// (repeated 0xff) before the marker code are skipped. Returns 0 when the
// stream ends or the bytes at the current position are not a marker.
func (jr *jpegReader) readMarker() int {
	b, err := jr.readByte()
	if err != nil || b != 0xff {
		return 0
	}
	for {
		b, err = jr.readByte()
		if err != nil {
			return 0
		}
		switch b {
		case 0xff:
			continue
		case 0x00:
			// Stuffed byte, not a marker.
			return 0
		default:
			return 0xff00 | int(b)
		}
	}
}

func (jr *jpegReader) readByte() (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(jr.rs, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (jr *jpegReader) readUint16() (int, error) {
	var buf [2]byte
	if _, err := io.ReadFull(jr.rs, buf[:]); err != nil {
		return 0, err
	}
	return int(binary.BigEndian.Uint16(buf[:])), nil
}
