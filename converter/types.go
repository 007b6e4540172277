package converter

import "encoding/json"

// Annotations holds the style flags attached to a rich text run.
type Annotations struct {
	Bold          bool `json:"bold,omitempty"`
	Italic        bool `json:"italic,omitempty"`
	Code          bool `json:"code,omitempty"`
	Strikethrough bool `json:"strikethrough,omitempty"`
}

// Link is a URL attached to a rich text run.
type Link struct {
	URL string `json:"url"`
}

// TextContent holds the literal content of a rich text run.
type TextContent struct {
	Content string `json:"content"`
	Link    *Link  `json:"link,omitempty"`
}

// RichText is a single styled text run, the atomic unit of block content.
type RichText struct {
	Type        string       `json:"type,omitempty"`
	Text        *TextContent `json:"text,omitempty"`
	Annotations Annotations  `json:"annotations"`
	PlainText   string       `json:"plain_text,omitempty"`
	Href        string       `json:"href,omitempty"`
}

// FileRef is a media source record, either an externally hosted URL or a
// file stored by the document service.
type FileRef struct {
	URL string `json:"url"`
}

// BlockData holds the type-specific payload of a block. Only the fields
// relevant to the block's type are populated; everything else stays zero
// and is omitted from the wire form.
type BlockData struct {
	RichText   []RichText `json:"rich_text,omitempty"`
	Caption    []RichText `json:"caption,omitempty"`
	Language   string     `json:"language,omitempty"`
	URL        string     `json:"url,omitempty"`
	Title      string     `json:"title,omitempty"`
	Name       string     `json:"name,omitempty"`
	Expression string     `json:"expression,omitempty"`
	Checked    bool       `json:"checked,omitempty"`

	// Media source discriminator ("external" or "file") and the matching
	// source record. For mention data, Type and Data describe the
	// referenced sub-object instead.
	Type     string     `json:"type,omitempty"`
	External *FileRef   `json:"external,omitempty"`
	File     *FileRef   `json:"file,omitempty"`
	Data     *BlockData `json:"data,omitempty"`

	TableWidth int          `json:"table_width,omitempty"`
	Cells      [][]RichText `json:"cells,omitempty"`
	Children   []Block      `json:"children,omitempty"`
}

// Block is a document block as produced by markdown conversion, before it
// has been persisted. It marshals to the page-content payload shape, where
// the data sits under a key named after the block type:
//
//	{"object":"block","type":"paragraph","paragraph":{...}}
type Block struct {
	Type string
	Data BlockData
}

// MarshalJSON renders the block in the payload shape expected by the
// children array of a page-creation or block-insertion request.
func (b Block) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"object": "block",
		"type":   b.Type,
		b.Type:   b.Data,
	})
}

// UnmarshalJSON reverses MarshalJSON, reading the data record from the key
// named after the block type.
func (b *Block) UnmarshalJSON(input []byte) error {
	var raw struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(input, &raw); err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(input, &fields); err != nil {
		return err
	}

	b.Type = raw.Type
	b.Data = BlockData{}
	if data, ok := fields[raw.Type]; ok {
		return json.Unmarshal(data, &b.Data)
	}
	return nil
}

// RenderedBlock is a block as delivered by the fetch layer: the block data
// plus persistence metadata, with children already resolved recursively.
type RenderedBlock struct {
	ID          string          `json:"id,omitempty"`
	CreatedAt   string          `json:"created_at,omitempty"`
	ModifiedAt  string          `json:"modified_at,omitempty"`
	Type        string          `json:"type"`
	Data        BlockData       `json:"data"`
	HasChildren bool            `json:"has_children,omitempty"`
	Children    []RenderedBlock `json:"children,omitempty"`
}
