package converter

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Converter renders a fetched block tree to markdown-flavored text.
type Converter struct {
	config Config
}

// New creates a new Converter with the given config.
func New(config Config) *Converter {
	return &Converter{
		config: config,
	}
}

type renderState struct {
	config   Config
	warnings []Warning
}

// Convert takes a JSON array of rendered blocks, as delivered by the block
// fetch layer, and returns the rendered text.
func (c *Converter) Convert(input []byte) (Result, error) {
	var blocks []RenderedBlock
	if err := json.Unmarshal(input, &blocks); err != nil {
		return Result{}, fmt.Errorf("failed to parse block JSON: %w", err)
	}

	return c.Render(blocks)
}

// Render renders an in-memory block sequence to text. Each top-level block
// renders on its own line; blocks that render to nothing are omitted from
// the join entirely.
func (c *Converter) Render(blocks []RenderedBlock) (Result, error) {
	s := &renderState{config: c.config}

	var parts []string
	for pos, block := range blocks {
		text, err := s.renderBlock(block, pos)
		if err != nil {
			return Result{}, err
		}
		if text != "" {
			parts = append(parts, text)
		}
	}

	return Result{
		Markdown: strings.Join(parts, "\n"),
		Warnings: s.warnings,
	}, nil
}

func (s *renderState) addWarning(warnType WarningType, nodeType, message string) {
	s.warnings = append(s.warnings, Warning{
		Type:     warnType,
		NodeType: nodeType,
		Message:  message,
	})
}

// renderBlock renders a single block. pos is the block's 0-based index
// within its sibling list; numbered list markers are derived from it rather
// than stored on the block.
func (s *renderState) renderBlock(block RenderedBlock, pos int) (string, error) {
	data := block.Data

	switch block.Type {
	case "bookmark":
		return fmt.Sprintf("[%s](%s)", richTextToText(data.Caption), data.URL), nil

	case "breadcrumb", "table_of_contents":
		return "", nil

	case "bulleted_list_item":
		children, err := s.renderChildren(block)
		if err != nil {
			return "", err
		}
		return "- " + richTextToText(data.RichText) + children, nil

	case "callout":
		return richTextToText(data.RichText), nil

	case "child_database", "child_page":
		return fmt.Sprintf("[%s](page_id=%s)", data.Title, block.ID), nil

	case "code":
		return fmt.Sprintf("```%s\n%s\n```", data.Language, richTextToText(data.RichText)), nil

	case "column_list", "synced_block":
		return s.renderChildren(block)

	case "divider":
		return "---", nil

	case "embed", "link_preview":
		return fmt.Sprintf("[%s](%s)", data.URL, data.URL), nil

	case "equation":
		return data.Expression, nil

	case "file":
		label := richTextToText(data.Caption)
		if label == "" {
			label = data.Name
		}
		if label == "" {
			label = data.URL
		}
		return fmt.Sprintf("[%s](%s)", label, data.URL), nil

	case "image", "pdf", "video":
		url := mediaURL(data)
		return fmt.Sprintf("![%s](%s)", url, url), nil

	case "mention":
		// A mention's data describes the referenced object; render it as
		// if it were a block of its own.
		if data.Type == "" {
			return "", nil
		}
		referenced := RenderedBlock{Type: data.Type}
		if data.Data != nil {
			referenced.Data = *data.Data
		}
		return s.renderBlock(referenced, 0)

	case "numbered_list_item":
		children, err := s.renderChildren(block)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d. ", pos+1) + richTextToText(data.RichText) + children, nil

	case "paragraph", "toggle":
		children, err := s.renderChildren(block)
		if err != nil {
			return "", err
		}
		return richTextToText(data.RichText) + children, nil

	case "quote":
		children, err := s.renderChildren(block)
		if err != nil {
			return "", err
		}
		return "> " + richTextToText(data.RichText) + children, nil

	case "table":
		// Full cell retrieval is left to the fetch layer; reference only.
		return fmt.Sprintf("[Table](table_id=%s)", block.ID), nil

	case "to_do":
		prefix := "- [ ]"
		if data.Checked {
			prefix = "- [x]"
		}
		children, err := s.renderChildren(block)
		if err != nil {
			return "", err
		}
		return prefix + richTextToText(data.RichText) + children, nil

	default:
		if level, ok := headingLevel(block.Type); ok {
			children, err := s.renderChildren(block)
			if err != nil {
				return "", err
			}
			return strings.Repeat("#", level) + " " + richTextToText(data.RichText) + children, nil
		}

		if s.config.Strict {
			return "", fmt.Errorf("unknown block type: %s", block.Type)
		}
		s.addWarning(
			WarningUnknownNode,
			block.Type,
			fmt.Sprintf("unsupported block type: %s", block.Type),
		)
		return "", nil
	}
}

// renderChildren renders a block's resolved children, each indented one tab
// level deeper than the parent line. Children that render to nothing are
// skipped.
func (s *renderState) renderChildren(block RenderedBlock) (string, error) {
	var sb strings.Builder
	for pos, child := range block.Children {
		text, err := s.renderBlock(child, pos)
		if err != nil {
			return "", err
		}
		if text == "" {
			continue
		}
		sb.WriteString("\n\t")
		sb.WriteString(strings.ReplaceAll(text, "\n", "\n\t"))
	}
	return sb.String(), nil
}

func headingLevel(blockType string) (int, bool) {
	suffix, ok := strings.CutPrefix(blockType, "heading_")
	if !ok {
		return 0, false
	}
	level, err := strconv.Atoi(suffix)
	if err != nil || level < 1 {
		return 0, false
	}
	return level, true
}

// richTextToText flattens a rich text sequence to plain text. Runs that
// carry a link render with the (text)[url] wrapper; that syntax is the
// upstream convention and is reproduced exactly.
func richTextToText(runs []RichText) string {
	var sb strings.Builder
	for _, run := range runs {
		text := run.PlainText
		if text == "" && run.Text != nil {
			text = run.Text.Content
		}
		if run.Href != "" {
			sb.WriteString("(")
			sb.WriteString(text)
			sb.WriteString(")[")
			sb.WriteString(run.Href)
			sb.WriteString("]")
		} else {
			sb.WriteString(text)
		}
	}
	return sb.String()
}

// mediaURL resolves a media block's source URL using the data type
// discriminator, falling back to whichever source record is present.
func mediaURL(data BlockData) string {
	switch data.Type {
	case "external":
		if data.External != nil {
			return data.External.URL
		}
	case "file":
		if data.File != nil {
			return data.File.URL
		}
	}
	if data.External != nil {
		return data.External.URL
	}
	if data.File != nil {
		return data.File.URL
	}
	return ""
}
