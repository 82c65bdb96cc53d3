// Package npf models Tumblr Neue Post Format content blocks and compiles
// an ordered block sequence into the wire shapes the posts API expects:
// a flat content array, a rows layout, and a multipart file map.
//
// See: https://www.tumblr.com/docs/npf
package npf

// Payload is one NPF content block as it appears on the wire.
type Payload = map[string]any

// Block is the closed set of units a post can be built from. The compiler
// dispatches over the four capability interfaces below plus the structural
// ReadMore and Row types; anything else is rejected at compile time.
type Block interface {
	isBlock()
}

// ContentBlock produces exactly one payload.
type ContentBlock interface {
	Block
	Payload() Payload
}

// MultiBlock expands into an ordered sequence of payloads, e.g. a list
// block that becomes one payload per item.
type MultiBlock interface {
	Block
	Payloads() []Payload
}

// DataBlock produces one payload plus one file attachment. File reads the
// backing resource on every call; nothing is opened at construction time.
type DataBlock interface {
	ContentBlock
	File() (File, error)
}

// File is a multipart attachment riding alongside the JSON body of a post
// request, keyed by the identifier its block's media entry references.
type File struct {
	Identifier string
	Data       []byte
	MimeType   string
}

// Text is a text content block. Subtype is one of the fixed NPF text
// subtypes ("heading1", "quote", ...) or empty for plain text. Extra holds
// caller-supplied wire fields merged into the payload; the fixed type,
// text and subtype keys always win over a colliding extra key.
type Text struct {
	Content string
	Subtype string
	Extra   map[string]any
}

func (*Text) isBlock() {}

// NewText returns a plain text block.
func NewText(content string, extra map[string]any) *Text {
	return &Text{Content: content, Extra: extra}
}

// NewHeading returns a heading1 text block.
func NewHeading(content string, extra map[string]any) *Text {
	return &Text{Content: content, Subtype: "heading1", Extra: extra}
}

// NewSubheading returns a heading2 text block.
func NewSubheading(content string, extra map[string]any) *Text {
	return &Text{Content: content, Subtype: "heading2", Extra: extra}
}

// NewCursive returns a quirky text block.
func NewCursive(content string, extra map[string]any) *Text {
	return &Text{Content: content, Subtype: "quirky", Extra: extra}
}

// NewQuote returns a quote text block.
func NewQuote(content string, extra map[string]any) *Text {
	return &Text{Content: content, Subtype: "quote", Extra: extra}
}

// NewIndented returns an indented text block.
func NewIndented(content string, extra map[string]any) *Text {
	return &Text{Content: content, Subtype: "indented", Extra: extra}
}

// NewChat returns a chat text block.
func NewChat(content string, extra map[string]any) *Text {
	return &Text{Content: content, Subtype: "chat", Extra: extra}
}

// NewOrderedListItem returns a single ordered-list-item text block.
func NewOrderedListItem(content string, extra map[string]any) *Text {
	return &Text{Content: content, Subtype: "ordered-list-item", Extra: extra}
}

// NewUnorderedListItem returns a single unordered-list-item text block.
func NewUnorderedListItem(content string, extra map[string]any) *Text {
	return &Text{Content: content, Subtype: "unordered-list-item", Extra: extra}
}

func (t *Text) Payload() Payload {
	p := make(Payload, len(t.Extra)+3)
	for k, v := range t.Extra {
		p[k] = v
	}
	p["type"] = "text"
	p["text"] = t.Content
	if t.Subtype != "" {
		p["subtype"] = t.Subtype
	}
	return p
}

// OrderedList expands into one ordered-list-item payload per item.
// The extra fields given at construction are shared by every item.
type OrderedList struct {
	Items []*Text
}

func (*OrderedList) isBlock() {}

// NewOrderedList builds an ordered list from plain item strings.
func NewOrderedList(items []string, extra map[string]any) *OrderedList {
	l := &OrderedList{Items: make([]*Text, 0, len(items))}
	for _, item := range items {
		l.Items = append(l.Items, NewOrderedListItem(item, extra))
	}
	return l
}

func (l *OrderedList) Payloads() []Payload {
	out := make([]Payload, 0, len(l.Items))
	for _, item := range l.Items {
		out = append(out, item.Payload())
	}
	return out
}

// UnorderedList expands into one unordered-list-item payload per item.
type UnorderedList struct {
	Items []*Text
}

func (*UnorderedList) isBlock() {}

// NewUnorderedList builds an unordered list from plain item strings.
func NewUnorderedList(items []string, extra map[string]any) *UnorderedList {
	l := &UnorderedList{Items: make([]*Text, 0, len(items))}
	for _, item := range items {
		l.Items = append(l.Items, NewUnorderedListItem(item, extra))
	}
	return l
}

func (l *UnorderedList) Payloads() []Payload {
	out := make([]Payload, 0, len(l.Items))
	for _, item := range l.Items {
		out = append(out, item.Payload())
	}
	return out
}
