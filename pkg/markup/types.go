package markup

// Root is the top-level structure handed to the presentation layer's editor.
type Root struct {
	Root Node `json:"root"`
}

// Node is one node of the structural tree. The schema matches what the
// Lexical-based frontend consumes.
type Node struct {
	Type     string `json:"type"`
	Version  int    `json:"version"`
	Children []Node `json:"children,omitempty"`

	// Text specific
	Text   string `json:"text,omitempty"`
	Format int    `json:"format,omitempty"` // bitmask

	// Heading specific
	Tag string `json:"tag,omitempty"` // h2, h3

	// List specific
	ListType string `json:"listType,omitempty"` // bullet, number
	Start    int    `json:"start,omitempty"`

	// ListItem specific
	Value int `json:"value,omitempty"`

	// Code block specific
	Language string `json:"language,omitempty"`
}

// Text format bitmask.
const (
	FormatBold = 1
	FormatCode = 16
)

const nodeVersion = 1
