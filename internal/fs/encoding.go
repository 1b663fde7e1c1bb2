package fs

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// UnicodeEncoding identifies a byte-order-marked encoding at the start of a source.
type UnicodeEncoding int

const (
	EncodingUnknown UnicodeEncoding = iota
	EncodingUTF8BOM
	EncodingUTF16LE
	EncodingUTF16BE
)

const encodingSampleSize = 4

func (e UnicodeEncoding) String() string {
	switch e {
	case EncodingUTF8BOM:
		return "utf-8-bom"
	case EncodingUTF16LE:
		return "utf-16le"
	case EncodingUTF16BE:
		return "utf-16be"
	default:
		return "bytes"
	}
}

// DetectUnicodeEncoding inspects the leading bytes of sample for a BOM.
func DetectUnicodeEncoding(sample []byte) UnicodeEncoding {
	if len(sample) >= 3 && sample[0] == 0xEF && sample[1] == 0xBB && sample[2] == 0xBF {
		return EncodingUTF8BOM
	}
	if len(sample) >= 2 {
		switch {
		case sample[0] == 0xFF && sample[1] == 0xFE:
			return EncodingUTF16LE
		case sample[0] == 0xFE && sample[1] == 0xFF:
			return EncodingUTF16BE
		}
	}
	return EncodingUnknown
}

// transcoder returns a function wrapping a reader positioned at the start of
// the content so it yields UTF-8, or nil when the bytes are paged as-is.
// UTF-8 BOMs are left in place: the bytes already are UTF-8.
func transcoder(enc UnicodeEncoding) func(io.Reader) io.Reader {
	var endian unicode.Endianness
	switch enc {
	case EncodingUTF16LE:
		endian = unicode.LittleEndian
	case EncodingUTF16BE:
		endian = unicode.BigEndian
	default:
		return nil
	}
	return func(r io.Reader) io.Reader {
		decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
		return transform.NewReader(r, decoder)
	}
}
