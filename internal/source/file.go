package source

import (
	"bytes"
	"os"

	"github.com/zeebo/blake3"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Load reads a file from disk. The content is kept byte-for-byte.
func Load(path string) (*File, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	flags := FileFlags(0)
	if bytes.HasPrefix(content, utf8BOM) {
		flags |= FileHadBOM
	}
	return newFile(path, content, flags), nil
}

// NewVirtual wraps in-memory content (tests, stdin) as a File.
func NewVirtual(name string, content []byte) *File {
	return newFile(name, content, FileVirtual)
}

func newFile(path string, content []byte, flags FileFlags) *File {
	return &File{
		Path:    normalizePath(path),
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    HashContent(content),
		Flags:   flags,
	}
}

// HashContent returns the fingerprint stored in File.Hash.
func HashContent(content []byte) [32]byte {
	return blake3.Sum256(content)
}

// Virtual reports whether the file has no backing path on disk.
func (f *File) Virtual() bool {
	return f.Flags&FileVirtual != 0
}

// Text returns the file content as a string.
func (f *File) Text() string {
	return string(f.Content)
}

// Resolve converts an absolute span into line and column positions.
func (f *File) Resolve(span Span) (start, end LineCol) {
	return toLineCol(f.Content, f.LineIdx, span.Start), toLineCol(f.Content, f.LineIdx, span.End)
}

// GetLine возвращает строку с заданным номером (1-based) без завершающего \n.
// Если строка не существует, возвращает пустую строку.
func (f *File) GetLine(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}
	var start int
	switch {
	case lineNum == 1:
		start = 0
	case int(lineNum-2) < len(f.LineIdx):
		start = int(f.LineIdx[lineNum-2]) + 1
	default:
		return ""
	}
	end := len(f.Content)
	if int(lineNum-1) < len(f.LineIdx) {
		end = int(f.LineIdx[lineNum-1])
	}
	if start > end {
		return ""
	}
	return string(bytes.TrimSuffix(f.Content[start:end], []byte{'\r'}))
}
