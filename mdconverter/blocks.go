package mdconverter

import (
	"fmt"
	"strings"

	"github.com/rgonek/notion-md-converter/converter"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func (s *state) convertHeadingNode(node *ast.Heading) []converter.Block {
	runs, images := s.convertSpans(node)
	block := converter.Block{
		Type: fmt.Sprintf("heading_%d", node.Level),
		Data: converter.BlockData{RichText: runs},
	}
	return append([]converter.Block{block}, images...)
}

// convertTextualNode handles the block kinds whose data is just a rich text
// sequence: paragraphs and quotes. Extracted images follow the block.
func (s *state) convertTextualNode(blockType string, node ast.Node) []converter.Block {
	runs, images := s.convertSpans(node)
	block := converter.Block{
		Type: blockType,
		Data: converter.BlockData{RichText: runs},
	}
	return append([]converter.Block{block}, images...)
}

func (s *state) convertFencedCodeBlockNode(node *ast.FencedCodeBlock) []converter.Block {
	language := s.mapLanguage(string(node.Language(s.source)))
	return []converter.Block{codeBlock(s.blockLinesValue(node), language)}
}

func (s *state) convertCodeBlockNode(node *ast.CodeBlock) []converter.Block {
	return []converter.Block{codeBlock(s.blockLinesValue(node), "")}
}

// convertHTMLBlockNode wraps a raw HTML block in a code block. HTML is
// never interpreted, only carried as literal text.
func (s *state) convertHTMLBlockNode(node *ast.HTMLBlock) []converter.Block {
	var sb strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		sb.Write(line.Value(s.source))
	}
	if node.HasClosure() {
		sb.Write(node.ClosureLine.Value(s.source))
	}

	return []converter.Block{codeBlock(strings.TrimSuffix(sb.String(), "\n"), "")}
}

func codeBlock(content, language string) converter.Block {
	data := converter.BlockData{Language: language}
	if content != "" {
		data.RichText = []converter.RichText{textRun(content)}
	}
	return converter.Block{Type: "code", Data: data}
}

func (s *state) blockLinesValue(node ast.Node) string {
	var sb strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		sb.Write(line.Value(s.source))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func rawSegmentsValue(segments *text.Segments, source []byte) string {
	if segments == nil {
		return ""
	}

	var sb strings.Builder
	for i := 0; i < segments.Len(); i++ {
		seg := segments.At(i)
		sb.Write(seg.Value(source))
	}
	return sb.String()
}
