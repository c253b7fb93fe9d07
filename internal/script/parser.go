// Package script parses the script sub-document of a component into a
// tree-sitter syntax tree. Node byte offsets are relative to the script text.
package script

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Lang selects the grammar used for a script block.
type Lang uint8

const (
	LangTypeScript Lang = iota
	LangTSX
	LangJavaScript
)

func (l Lang) String() string {
	switch l {
	case LangTypeScript:
		return "typescript"
	case LangTSX:
		return "tsx"
	case LangJavaScript:
		return "javascript"
	default:
		return "unknown"
	}
}

// LangFromAttr maps a <script lang="…"> value to a grammar. An empty or
// unknown value selects TypeScript, which also accepts plain JavaScript.
func LangFromAttr(lang string) Lang {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "tsx":
		return LangTSX
	case "js", "jsx", "javascript", "mjs":
		return LangJavaScript
	default:
		return LangTypeScript
	}
}

func (l Lang) grammar() *sitter.Language {
	switch l {
	case LangTSX:
		return tsx.GetLanguage()
	case LangJavaScript:
		return javascript.GetLanguage()
	default:
		return typescript.GetLanguage()
	}
}

// Program is a parsed script sub-document. It must be closed after use.
type Program struct {
	Lang   Lang
	Source []byte
	tree   *sitter.Tree
}

// Parse builds a syntax tree for src. Syntax errors do not fail the parse;
// they show up as ERROR nodes in the tree.
func Parse(ctx context.Context, src string, lang Lang) (*Program, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(lang.grammar())

	source := []byte(src)
	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", lang, err)
	}
	return &Program{Lang: lang, Source: source, tree: tree}, nil
}

// Root returns the program node.
func (p *Program) Root() *sitter.Node {
	if p == nil || p.tree == nil {
		return nil
	}
	return p.tree.RootNode()
}

// Close releases the underlying tree.
func (p *Program) Close() {
	if p == nil || p.tree == nil {
		return
	}
	p.tree.Close()
	p.tree = nil
}
