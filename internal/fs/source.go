package fs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kk-code-lab/page/internal/textutil"
)

const sourceBufferSize = 64 * 1024

// ErrNotSeekable is returned when a forward-only source is asked to rewind.
var ErrNotSeekable = errors.New("source is not seekable")

// ErrPendingByte is returned by PushBack when a byte is already pending.
var ErrPendingByte = errors.New("look-ahead byte already pending")

// Source is the byte sequence being paged. Seekable sources know their size
// and can rewind to the start; streams only move forward.
//
// A Source holds at most one pending byte: the soft-wrap look-ahead that a
// line render read but did not emit.
type Source struct {
	name       string
	raw        io.Reader
	seeker     io.Seeker
	closer     io.Closer
	reader     *bufio.Reader
	transcode  func(io.Reader) io.Reader
	encoding   UnicodeEncoding
	size       int64
	pending    byte
	hasPending bool
}

// NewStreamSource wraps r as a forward-only source of unknown size, even if r
// happens to implement io.Seeker.
func NewStreamSource(name string, r io.Reader) *Source {
	s := &Source{name: name, raw: r}
	if c, ok := r.(io.Closer); ok {
		s.closer = c
	}
	s.reader = bufio.NewReaderSize(r, sourceBufferSize)
	return s
}

// NewSeekableSource wraps rs as a rewindable source of the given size. A
// size of zero or less means unknown.
func NewSeekableSource(name string, rs io.ReadSeeker, size int64) *Source {
	s := &Source{name: name, raw: rs, seeker: rs}
	if c, ok := rs.(io.Closer); ok {
		s.closer = c
	}
	if size > 0 {
		s.size = size
	}
	s.reader = bufio.NewReaderSize(rs, sourceBufferSize)
	return s
}

// Open opens a named file. Regular files are seekable with a known size;
// anything else (fifos, character devices) is paged as a stream. UTF-16
// files with a byte-order mark are transcoded to UTF-8 and report an unknown
// size, since their byte count no longer matches what is rendered.
func Open(path string) (*Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open file %s: %w", textutil.SanitizeTerminalText(path), err)
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("cannot stat file %s: %w", textutil.SanitizeTerminalText(path), err)
	}
	if !info.Mode().IsRegular() {
		return NewStreamSource(path, file), nil
	}

	sample := make([]byte, encodingSampleSize)
	n, err := file.ReadAt(sample, 0)
	if err != nil && !errors.Is(err, io.EOF) {
		_ = file.Close()
		return nil, fmt.Errorf("cannot read file %s: %w", textutil.SanitizeTerminalText(path), err)
	}

	enc := DetectUnicodeEncoding(sample[:n])
	transcode := transcoder(enc)
	if transcode == nil {
		source := NewSeekableSource(path, file, info.Size())
		source.encoding = enc
		return source, nil
	}

	source := &Source{
		name:      path,
		raw:       file,
		seeker:    file,
		closer:    file,
		transcode: transcode,
		encoding:  enc,
	}
	source.reader = bufio.NewReaderSize(transcode(file), sourceBufferSize)
	return source, nil
}

// Name returns the name the source was opened with.
func (s *Source) Name() string {
	return s.name
}

// Encoding returns the detected content encoding.
func (s *Source) Encoding() UnicodeEncoding {
	return s.encoding
}

// Seekable reports whether Rewind can succeed.
func (s *Source) Seekable() bool {
	return s.seeker != nil
}

// Size returns the total byte size, or 0 when unknown.
func (s *Source) Size() int64 {
	return s.size
}

// ReadByte returns the pending byte if there is one, otherwise the next byte
// of the underlying reader.
func (s *Source) ReadByte() (byte, error) {
	if s.hasPending {
		s.hasPending = false
		return s.pending, nil
	}
	return s.reader.ReadByte()
}

// PushBack makes b the next byte ReadByte returns.
func (s *Source) PushBack(b byte) error {
	if s.hasPending {
		return ErrPendingByte
	}
	s.pending = b
	s.hasPending = true
	return nil
}

// Rewind moves back to the first byte and drops any pending byte. On failure
// the read position is unchanged.
func (s *Source) Rewind() error {
	if s.seeker == nil {
		return ErrNotSeekable
	}
	if _, err := s.seeker.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind %s: %w", textutil.SanitizeTerminalText(s.name), err)
	}
	s.hasPending = false
	if s.transcode != nil {
		s.reader.Reset(s.transcode(s.raw))
	} else {
		s.reader.Reset(s.raw)
	}
	return nil
}

// Close releases the underlying reader when it is closable.
func (s *Source) Close() error {
	if s == nil || s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}
