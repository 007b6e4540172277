package mdconverter

import "github.com/rgonek/notion-md-converter/converter"

// Result holds the output of a markdown conversion. Blocks marshals to the
// payload shape expected by a page-creation children array.
type Result struct {
	Blocks   []converter.Block   `json:"blocks"`
	Warnings []converter.Warning `json:"warnings,omitempty"`
}
