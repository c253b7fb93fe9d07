package sfc

import (
	"fmt"
	"regexp"
	"strings"

	"fortio.org/safecast"

	"sfclint/internal/source"
)

// Block is one extracted sub-document.
type Block struct {
	// Text is the content strictly between the opening tag's '>' and the
	// closing tag.
	Text string
	// Start is the anchor of Text inside the original document. It is 0 when
	// the block is absent.
	Start uint32
	// Present distinguishes an empty block from a missing one.
	Present bool
	// OpenTag holds the opening tag source between the tag name and '>',
	// e.g. ` setup lang="ts"`.
	OpenTag string
}

// Span returns the block content span in original-document coordinates.
func (b Block) Span() source.Span {
	return source.Span{Start: b.Start, End: b.Start + uint32(len(b.Text))}
}

// Empty reports whether the block has no content (absent or present but empty).
func (b Block) Empty() bool {
	return b.Text == ""
}

var langAttr = regexp.MustCompile(`(?i)(?:^|\s)lang\s*=\s*["']?([A-Za-z]+)`)

// Lang returns the lowercased value of the opening tag's lang attribute, or "".
func (b Block) Lang() string {
	m := langAttr.FindStringSubmatch(b.OpenTag)
	if m == nil {
		return ""
	}
	return strings.ToLower(m[1])
}

// Document is a component file decomposed into sub-documents.
type Document struct {
	Path     string
	Text     string
	Script   Block
	Template Block
}

// Extract decomposes text into script and template sub-documents.
func Extract(path, text string) (*Document, error) {
	if _, err := safecast.Conv[uint32](len(text)); err != nil {
		return nil, fmt.Errorf("%s: file too large: %w", path, err)
	}
	return &Document{
		Path:     path,
		Text:     text,
		Script:   extractBlock(text, "script"),
		Template: extractBlock(text, "template"),
	}, nil
}

// extractBlock finds the first "<name", the first '>' after it and the first
// "</name>" after that. Any missing piece yields an absent block.
func extractBlock(text, name string) Block {
	open := strings.Index(text, "<"+name)
	if open < 0 {
		return Block{}
	}
	gt := strings.IndexByte(text[open:], '>')
	if gt < 0 {
		return Block{}
	}
	contentStart := open + gt + 1
	closeRel := strings.Index(text[contentStart:], "</"+name+">")
	if closeRel < 0 {
		return Block{}
	}
	return Block{
		Text:    text[contentStart : contentStart+closeRel],
		Start:   uint32(contentStart),
		Present: true,
		OpenTag: text[open+1+len(name) : open+gt],
	}
}
