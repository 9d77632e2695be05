// Package doc defines the document and block records exchanged with the
// host CMS. They are plain data, owned by the caller and never persisted
// here.
package doc

// BlockType identifies the structural kind of a block.
type BlockType string

const (
	BlockParagraph BlockType = "paragraph"
	BlockHeading   BlockType = "heading"
	BlockCode      BlockType = "code"
	BlockList      BlockType = "list"
	BlockQuote     BlockType = "quote"
	BlockTable     BlockType = "table"
	BlockHTML      BlockType = "html"
)

// SuggestedTag is a machine-proposed tag awaiting user acceptance.
// Source names the producer that proposed it.
type SuggestedTag struct {
	Tag        string  `json:"tag"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source,omitempty"`
}

// Block is one editable unit of a document.
type Block struct {
	ID            string         `json:"id"`
	Content       string         `json:"content"`
	Type          BlockType      `json:"type"`
	Tags          []string       `json:"tags,omitempty"`
	SuggestedTags []SuggestedTag `json:"suggestedTags,omitempty"`
}

// Document is a note with its accepted tags and block structure.
type Document struct {
	Content string   `json:"content"`
	Tags    []string `json:"tags,omitempty"`
	Blocks  []Block  `json:"blocks,omitempty"`
}
