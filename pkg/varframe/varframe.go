// Package varframe frames variable-length byte payloads for storage and
// transport. A frame is a fixed little-endian header, the payload
// (optionally zstd-compressed), and a trailing CRC32:
//
//	magic(2) | flags(1) | length(4) | payload | crc32(4)
//
// The length field counts the whole frame, magic and CRC included. The
// CRC is IEEE, computed over everything after the magic.
//
// Decoding a batch is zero-copy: every uncompressed payload comes back as
// a counted view into the one input buffer, so callers keep, split, and
// drop frames independently without copying and the buffer is released
// when the last view goes.
package varframe

import "errors"

// Magic opens every frame; "FV" on the wire.
const Magic uint16 = 0x4656

const (
	headerSize = 7 // magic(2) + flags(1) + length(4)
	crcSize    = 4
	minFrame   = headerSize + crcSize
)

// Frame flags.
const (
	// FlagCompressed marks the payload as zstd-compressed.
	FlagCompressed byte = 1 << 0
)

var (
	ErrShortFrame     = errors.New("truncated frame")
	ErrBadMagic       = errors.New("bad magic")
	ErrLengthMismatch = errors.New("bad length field")
	ErrCRCMismatch    = errors.New("crc mismatch")
	ErrFrameTooLarge  = errors.New("frame exceeds 4 GiB")
)
