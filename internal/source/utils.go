package source

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"
)

func toOffset(n int) (uint32, error) {
	off, err := safecast.Conv[uint32](n)
	if err != nil {
		return 0, fmt.Errorf("offset %d overflows uint32: %w", n, err)
	}
	return off, nil
}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, len(content)/32)
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

// ToLineCol resolves a byte offset of content into a 1-based line and a
// 1-based column counted in decoded characters.
func ToLineCol(content []byte, off uint32) LineCol {
	return toLineCol(content, buildLineIndex(content), off)
}

func toLineCol(content []byte, lineIdx []uint32, off uint32) LineCol {
	if int(off) > len(content) {
		off = uint32(len(content))
	}

	// бинпоиск: находим количество переводов строк строго до off
	lo, hi := 0, len(lineIdx)
	for lo < hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	line := lo

	var lineStart uint32
	if line > 0 {
		lineStart = lineIdx[line-1] + 1
	}
	col := utf8.RuneCount(content[lineStart:off])
	return LineCol{Line: uint32(line + 1), Col: uint32(col + 1)}
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}

// RelativePath returns target relative to base in slash form. Targets outside
// base are returned as cleaned absolute paths.
func RelativePath(target, base string) (string, error) {
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return "", err
	}
	absBase, err := filepath.Abs(base)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absBase, absTarget)
	if err != nil {
		return normalizePath(absTarget), nil
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return normalizePath(absTarget), nil
	}
	return normalizePath(rel), nil
}
