package varframe

import (
	"encoding/binary"
	"hash/crc32"

	"github.com/klauspost/compress/zstd"

	rcslice "github.com/Phlosioneer/rc-slice2"
	"github.com/Phlosioneer/rc-slice2/internal/overflow"
)

// Decoder splits framed batches into payload views. The zero value is
// ready to use; the first compressed frame initializes the decompressor.
// Not safe for concurrent use.
type Decoder struct {
	zdec *zstd.Decoder
}

// DecodeAll validates every frame in data and returns one payload view
// per frame. Ownership of data transfers to the views: uncompressed
// payloads share a single counted buffer that is released when the last
// of them is freed, while compressed payloads decompress into views of
// their own. Each returned view must be freed by the caller.
//
// On any malformed frame nothing is returned and no view stays alive.
// A length field smaller than a frame's fixed overhead is
// ErrLengthMismatch; a frame claiming more bytes than data holds is
// ErrShortFrame.
func (d *Decoder) DecodeAll(data []byte) ([]*rcslice.View[byte], error) {
	base := rcslice.NewBytes(data)
	h := base.Handle()

	var views []*rcslice.View[byte]
	fail := func(err error) ([]*rcslice.View[byte], error) {
		for _, v := range views {
			v.Free()
		}
		base.Free()
		return nil, err
	}

	for off := 0; off < len(data); {
		if len(data)-off < minFrame {
			return fail(ErrShortFrame)
		}
		if binary.LittleEndian.Uint16(data[off:]) != Magic {
			return fail(ErrBadMagic)
		}
		flags := data[off+2]
		length := int(binary.LittleEndian.Uint32(data[off+3:]))
		if length < minFrame {
			return fail(ErrLengthMismatch)
		}
		end, ok := overflow.Add(off, length)
		if !ok || end > len(data) {
			return fail(ErrShortFrame)
		}
		crc := binary.LittleEndian.Uint32(data[end-crcSize:])
		if crc32.ChecksumIEEE(data[off+2:end-crcSize]) != crc {
			return fail(ErrCRCMismatch)
		}

		payStart, payEnd := off+headerSize, end-crcSize
		if flags&FlagCompressed != 0 {
			raw, err := d.decompress(data[payStart:payEnd])
			if err != nil {
				return fail(err)
			}
			views = append(views, rcslice.NewBytes(raw))
		} else {
			views = append(views, h.View(rcslice.Span(payStart, payEnd)))
		}
		off = end
	}

	base.Free()
	return views, nil
}

func (d *Decoder) decompress(comp []byte) ([]byte, error) {
	if d.zdec == nil {
		// Cap per-frame decompression; frames come from untrusted input.
		zdec, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(64<<20))
		if err != nil {
			return nil, err
		}
		d.zdec = zdec
	}
	return d.zdec.DecodeAll(comp, nil)
}
