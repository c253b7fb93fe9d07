// Package sfc splits a single-file component into its script and template
// sub-documents.
//
// Each sub-document keeps an anchor: the absolute byte offset in the original
// text where its content begins. Analyses working on a sub-document report
// spans in its local coordinates and translate them with Span.ShiftRight
// before they leave the analysis.
//
// Extraction is a first-match scan. It does not understand multiple blocks of
// the same kind, nested tags with the same name, or tags that appear inside
// string literals and comments. These are accepted limitations.
package sfc
