package script

import (
	sitter "github.com/smacker/go-tree-sitter"

	"sfclint/internal/source"
)

// Node types of the JavaScript/TypeScript grammars used by the rules.
const (
	NodeProgram             = "program"
	NodeStatementBlock      = "statement_block"
	NodeExpressionStatement = "expression_statement"
	NodeCallExpression      = "call_expression"
	NodeMemberExpression    = "member_expression"
	NodeIdentifier          = "identifier"
	NodePropertyIdentifier  = "property_identifier"
	NodeSwitchCase          = "switch_case"
	NodeSwitchDefault       = "switch_default"
)

// Walk visits n and its descendants in source order. Returning false from
// visit skips the node's children.
func Walk(n *sitter.Node, visit func(*sitter.Node) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		Walk(n.Child(i), visit)
	}
}

// SpanOf returns the node span relative to the script sub-document.
func SpanOf(n *sitter.Node) source.Span {
	return source.Span{Start: n.StartByte(), End: n.EndByte()}
}

// Text returns the source text of n.
func (p *Program) Text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return n.Content(p.Source)
}

// Member describes a non-computed member access `object.property` whose
// object is a plain identifier.
type Member struct {
	Object   string
	Property string
	Node     *sitter.Node
}

// MemberParts matches n against `ident.prop`. Computed access (`a[b]`) and
// chained objects (`a.b.c` as a whole) do not match.
func (p *Program) MemberParts(n *sitter.Node) (Member, bool) {
	if n == nil || n.Type() != NodeMemberExpression {
		return Member{}, false
	}
	obj := n.ChildByFieldName("object")
	prop := n.ChildByFieldName("property")
	if obj == nil || prop == nil {
		return Member{}, false
	}
	if obj.Type() != NodeIdentifier || prop.Type() != NodePropertyIdentifier {
		return Member{}, false
	}
	return Member{Object: p.Text(obj), Property: p.Text(prop), Node: n}, true
}

// CallOf returns the callee of an expression statement that consists of a
// single call, e.g. `console.log(x);`.
func CallOf(stmt *sitter.Node) (call, callee *sitter.Node, ok bool) {
	if stmt == nil || stmt.Type() != NodeExpressionStatement || stmt.NamedChildCount() == 0 {
		return nil, nil, false
	}
	call = stmt.NamedChild(0)
	if call == nil || call.Type() != NodeCallExpression {
		return nil, nil, false
	}
	callee = call.ChildByFieldName("function")
	if callee == nil {
		return nil, nil, false
	}
	return call, callee, true
}

// InStatementList reports whether the statement sits directly in a program,
// block or switch clause, where it can be replaced by a comment.
func InStatementList(stmt *sitter.Node) bool {
	parent := stmt.Parent()
	if parent == nil {
		return false
	}
	switch parent.Type() {
	case NodeProgram, NodeStatementBlock, NodeSwitchCase, NodeSwitchDefault:
		return true
	default:
		return false
	}
}
