package mdconverter

import (
	"fmt"
	"strings"

	"github.com/rgonek/notion-md-converter/converter"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

// convertSpans flattens a span tree into rich text runs plus the image
// blocks extracted from it, both in document order.
func (s *state) convertSpans(parent ast.Node) ([]converter.RichText, []converter.Block) {
	var runs []converter.RichText
	var images []converter.Block

	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		childRuns, childImages := s.convertSpanNode(child)
		runs = append(runs, childRuns...)
		images = append(images, childImages...)
	}

	return runs, images
}

func (s *state) convertSpanNode(node ast.Node) ([]converter.RichText, []converter.Block) {
	switch typed := node.(type) {
	case *ast.Image:
		return nil, []converter.Block{externalImageBlock(string(typed.Destination))}

	case *ast.Text:
		var runs []converter.RichText
		if value := string(typed.Value(s.source)); value != "" {
			runs = append(runs, textRun(value))
		}
		if typed.HardLineBreak() {
			runs = append(runs, textRun("\n"))
		} else if typed.SoftLineBreak() {
			runs = append(runs, textRun(" "))
		}
		return runs, nil

	case *ast.String:
		return []converter.RichText{textRun(string(typed.Value))}, nil

	case *ast.RawHTML:
		if value := rawSegmentsValue(typed.Segments, s.source); value != "" {
			return []converter.RichText{textRun(value)}, nil
		}
		return nil, nil

	case *ast.Emphasis:
		runs, images := s.convertSpans(typed)
		if typed.Level >= 2 {
			return withAnnotation(runs, func(a *converter.Annotations) { a.Bold = true }), images
		}
		return withAnnotation(runs, func(a *converter.Annotations) { a.Italic = true }), images

	case *ast.CodeSpan:
		runs, images := s.convertSpans(typed)
		return withAnnotation(runs, func(a *converter.Annotations) { a.Code = true }), images

	case *extast.Strikethrough:
		runs, images := s.convertSpans(typed)
		return withAnnotation(runs, func(a *converter.Annotations) { a.Strikethrough = true }), images

	case *ast.Link:
		runs, images := s.convertSpans(typed)
		if href := strings.TrimSpace(string(typed.Destination)); href != "" {
			runs = withLink(runs, href)
		}
		return runs, images

	case *ast.AutoLink:
		url := string(typed.URL(s.source))
		return withLink([]converter.RichText{textRun(string(typed.Label(s.source)))}, url), nil

	default:
		if node.HasChildren() {
			return s.convertSpans(node)
		}
		return s.warnUnknownSpan(node), nil
	}
}

func (s *state) warnUnknownSpan(node ast.Node) []converter.RichText {
	textValue := strings.TrimSpace(string(node.Text(s.source)))
	if textValue == "" {
		return nil
	}

	nodeKind := node.Kind().String()
	s.addWarning(
		converter.WarningUnknownNode,
		nodeKind,
		fmt.Sprintf("unsupported markdown inline node: %s", nodeKind),
	)

	return []converter.RichText{textRun(textValue)}
}

func textRun(content string) converter.RichText {
	return converter.RichText{
		Type:      "text",
		Text:      &converter.TextContent{Content: content},
		PlainText: content,
	}
}

func externalImageBlock(url string) converter.Block {
	return converter.Block{
		Type: "image",
		Data: converter.BlockData{
			Type:     "external",
			External: &converter.FileRef{URL: url},
		},
	}
}

// withAnnotation returns fresh runs with the given style flag applied on
// top of whatever annotations the runs already carry. Runs produced by
// deeper recursion are never mutated in place.
func withAnnotation(runs []converter.RichText, apply func(*converter.Annotations)) []converter.RichText {
	if len(runs) == 0 {
		return runs
	}

	out := make([]converter.RichText, len(runs))
	for i, run := range runs {
		apply(&run.Annotations)
		out[i] = run
	}
	return out
}

// withLink returns fresh runs pointing at href, overwriting any target set
// deeper in the tree. Nested links do not occur in the source grammar.
func withLink(runs []converter.RichText, href string) []converter.RichText {
	if len(runs) == 0 {
		return runs
	}

	out := make([]converter.RichText, len(runs))
	for i, run := range runs {
		if run.Text != nil {
			content := *run.Text
			content.Link = &converter.Link{URL: href}
			run.Text = &content
		} else {
			run.Text = &converter.TextContent{Link: &converter.Link{URL: href}}
		}
		run.Href = href
		out[i] = run
	}
	return out
}
