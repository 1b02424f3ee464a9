package varframe

import (
	"encoding/binary"
	"hash/crc32"
	"math"

	"github.com/klauspost/compress/zstd"
)

// Encoder frames payloads. The zero value is ready to use; the first
// compressed frame initializes the compressor. Not safe for concurrent
// use.
type Encoder struct {
	zenc *zstd.Encoder
}

// EncodeFrame returns payload as a single frame. FlagCompressed
// compresses the payload before framing.
func (e *Encoder) EncodeFrame(payload []byte, flags byte) ([]byte, error) {
	return e.appendFrame(nil, payload, flags)
}

// EncodeAll frames every payload into one contiguous batch, the form
// Decoder.DecodeAll consumes.
func (e *Encoder) EncodeAll(payloads [][]byte, flags byte) ([]byte, error) {
	var out []byte
	for _, p := range payloads {
		var err error
		out, err = e.appendFrame(out, p, flags)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// appendFrame writes header and body with a length placeholder, patches
// the length once the frame size is known, then seals the frame with a
// CRC over everything after the magic.
func (e *Encoder) appendFrame(dst, payload []byte, flags byte) ([]byte, error) {
	body := payload
	if flags&FlagCompressed != 0 {
		if e.zenc == nil {
			zenc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
			if err != nil {
				return nil, err
			}
			e.zenc = zenc
		}
		body = e.zenc.EncodeAll(payload, nil)
	}

	mark := len(dst)
	dst = binary.LittleEndian.AppendUint16(dst, Magic)
	dst = append(dst, flags)
	dst = binary.LittleEndian.AppendUint32(dst, 0) // length, patched below
	dst = append(dst, body...)

	total := len(dst) - mark + crcSize
	if uint64(total) > math.MaxUint32 {
		return nil, ErrFrameTooLarge
	}
	binary.LittleEndian.PutUint32(dst[mark+3:], uint32(total))

	crc := crc32.ChecksumIEEE(dst[mark+2:])
	return binary.LittleEndian.AppendUint32(dst, crc), nil
}
