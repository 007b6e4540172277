package mdconverter

import (
	"github.com/rgonek/notion-md-converter/converter"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

// convertDocument walks the document's top-level children in order and
// concatenates whatever blocks each one maps to. The result is a flat
// sequence; nesting only happens inside list items and tables.
func (s *state) convertDocument(root ast.Node) []converter.Block {
	var blocks []converter.Block
	for child := root.FirstChild(); child != nil; child = child.NextSibling() {
		blocks = append(blocks, s.convertBlockNode(child)...)
	}
	return blocks
}

// convertBlockNode maps a single block-level AST node to zero or more
// blocks. Inline images surface as extra blocks after the one that carried
// them, since rich text cannot embed images.
func (s *state) convertBlockNode(node ast.Node) []converter.Block {
	switch typed := node.(type) {
	case *ast.Heading:
		return s.convertHeadingNode(typed)
	case *ast.Paragraph:
		return s.convertTextualNode("paragraph", typed)
	case *ast.Blockquote:
		return s.convertTextualNode("quote", typed)
	case *ast.FencedCodeBlock:
		return s.convertFencedCodeBlockNode(typed)
	case *ast.CodeBlock:
		return s.convertCodeBlockNode(typed)
	case *ast.HTMLBlock:
		return s.convertHTMLBlockNode(typed)
	case *ast.List:
		return s.convertListNode(typed)
	case *extast.Table:
		return s.convertTableNode(typed)
	case *ast.ThematicBreak:
		return []converter.Block{{Type: "divider"}}
	default:
		s.warnUnknownBlock(node.Kind().String())
		return nil
	}
}
