package mdconverter

import (
	"github.com/rgonek/notion-md-converter/converter"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

// convertTableNode emits a table block whose children are the header row
// followed by every body row. table_width is the widest row encountered,
// header included.
func (s *state) convertTableNode(node *extast.Table) []converter.Block {
	var rows []converter.Block
	width := 0

	for row := node.FirstChild(); row != nil; row = row.NextSibling() {
		switch row.(type) {
		case *extast.TableHeader, *extast.TableRow:
			cells := s.convertTableRowCells(row)
			if len(cells) > width {
				width = len(cells)
			}
			rows = append(rows, converter.Block{
				Type: "table_row",
				Data: converter.BlockData{Cells: cells},
			})
		}
	}

	if len(rows) == 0 {
		return nil
	}

	return []converter.Block{{
		Type: "table",
		Data: converter.BlockData{
			TableWidth: width,
			Children:   rows,
		},
	}}
}

func (s *state) convertTableRowCells(row ast.Node) [][]converter.RichText {
	var cells [][]converter.RichText
	for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
		if _, ok := cell.(*extast.TableCell); !ok {
			continue
		}

		runs, images := s.convertSpans(cell)
		if len(images) > 0 {
			s.addWarning(
				converter.WarningDroppedFeature,
				cell.Kind().String(),
				"table cells cannot carry image blocks; image dropped",
			)
		}
		cells = append(cells, runs)
	}
	return cells
}
