package mdconverter

import (
	"fmt"

	"github.com/rgonek/notion-md-converter/converter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Converter converts markdown to a block sequence.
type Converter struct {
	config Config
	parser goldmark.Markdown
}

type state struct {
	config   Config
	source   []byte
	warnings []converter.Warning
}

// New creates a new Converter with the given config.
func New(config Config) (*Converter, error) {
	cfg := config.clone()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Converter{
		config: cfg,
		parser: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}, nil
}

// Convert takes a markdown document and returns the ordered block sequence
// it maps to. Conversion is total: markdown constructs without a block
// equivalent are skipped and surfaced as warnings.
func (c *Converter) Convert(markdown string) (Result, error) {
	s := &state{
		config: c.config,
		source: []byte(markdown),
	}

	root := c.parser.Parser().Parse(text.NewReader(s.source))

	return Result{
		Blocks:   s.convertDocument(root),
		Warnings: s.warnings,
	}, nil
}

func (s *state) addWarning(warnType converter.WarningType, nodeType, message string) {
	s.warnings = append(s.warnings, converter.Warning{
		Type:     warnType,
		NodeType: nodeType,
		Message:  message,
	})
}

func (s *state) mapLanguage(language string) string {
	if mapped, ok := s.config.LanguageMap[language]; ok {
		return mapped
	}
	return language
}

func (s *state) warnUnknownBlock(nodeKind string) {
	s.addWarning(
		converter.WarningUnknownNode,
		nodeKind,
		fmt.Sprintf("unsupported markdown block node: %s", nodeKind),
	)
}
