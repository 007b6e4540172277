package mdconverter

import (
	"github.com/rgonek/notion-md-converter/converter"
	"github.com/yuin/goldmark/ast"
)

// convertListNode flattens a list into one block per item. The list itself
// has no block equivalent; ordering survives through item positions, and
// display numbers are derived positionally at render time.
func (s *state) convertListNode(node *ast.List) []converter.Block {
	itemType := "bulleted_list_item"
	if node.IsOrdered() {
		itemType = "numbered_list_item"
	}

	var items []converter.Block
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		item, ok := child.(*ast.ListItem)
		if !ok {
			continue
		}
		items = append(items, s.convertListItemNode(item, itemType))
	}

	return items
}

func (s *state) convertListItemNode(node *ast.ListItem, itemType string) converter.Block {
	data := converter.BlockData{}
	var images []converter.Block

	// The item's first child carries its own text; any list that follows
	// is the nested sub-list.
	first := node.FirstChild()
	textConsumed := false
	switch first.(type) {
	case *ast.TextBlock, *ast.Paragraph:
		data.RichText, images = s.convertSpans(first)
		textConsumed = true
	}

	var nested []converter.Block
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if textConsumed && child == first {
			continue
		}
		if sublist, ok := child.(*ast.List); ok {
			nested = append(nested, s.convertListNode(sublist)...)
			continue
		}
		s.addWarning(
			converter.WarningDroppedFeature,
			child.Kind().String(),
			"list items only carry their own text and nested lists; extra block dropped",
		)
	}

	// Images cannot live inline in the item's rich text, so they are
	// hoisted to the front of the item's children.
	if len(images) > 0 || len(nested) > 0 {
		data.Children = append(images, nested...)
	}

	return converter.Block{Type: itemType, Data: data}
}
