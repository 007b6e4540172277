package converter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockMarshalsToPayloadShape(t *testing.T) {
	block := Block{
		Type: "paragraph",
		Data: BlockData{
			RichText: []RichText{{
				Type:      "text",
				Text:      &TextContent{Content: "hello"},
				PlainText: "hello",
			}},
		},
	}

	payload, err := json.Marshal(block)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.JSONEq(t, `"block"`, string(decoded["object"]))
	assert.JSONEq(t, `"paragraph"`, string(decoded["type"]))
	assert.JSONEq(t,
		`{"rich_text":[{"type":"text","text":{"content":"hello"},"annotations":{},"plain_text":"hello"}]}`,
		string(decoded["paragraph"]))

	var roundTripped Block
	require.NoError(t, json.Unmarshal(payload, &roundTripped))
	assert.Equal(t, block, roundTripped)
}

func TestBlockMarshalEmptyData(t *testing.T) {
	payload, err := json.Marshal(Block{Type: "divider"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"object":"block","type":"divider","divider":{}}`, string(payload))
}

func TestImageBlockPayload(t *testing.T) {
	block := Block{
		Type: "image",
		Data: BlockData{
			Type:     "external",
			External: &FileRef{URL: "https://img.example/cat.png"},
		},
	}

	payload, err := json.Marshal(block)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"object":"block","type":"image","image":{"type":"external","external":{"url":"https://img.example/cat.png"}}}`,
		string(payload))
}
