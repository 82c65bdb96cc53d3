package npf

import (
	"errors"
	"fmt"
)

// ErrDuplicateReadMore is returned when a block sequence contains more
// than one ReadMore.
var ErrDuplicateReadMore = errors.New("only one read-more block is allowed per post")

// DisplayRow is one visual row of the layout, referencing indices into the
// flat content array.
type DisplayRow struct {
	Blocks []int `json:"blocks"`
}

// Layout describes how the flat content array is grouped into rows and
// where the post is truncated.
type Layout struct {
	Type          string       `json:"type"`
	Display       []DisplayRow `json:"display"`
	TruncateAfter *int         `json:"truncate_after,omitempty"`
}

// Content is the result of compiling a block sequence: the flat content
// array, the (single-element, by wire convention) layout array, and the
// multipart files keyed by identifier. A Content is built fresh per
// Compile call and never mutated afterwards.
type Content struct {
	Blocks []Payload
	Layout []Layout
	Files  map[string]File
}

// Compile turns an ordered block sequence into post content. Indices in
// the layout are assigned in strict input order with no gaps: a list block
// contributes one display row per item, a Row contributes a single display
// row spanning all of its children, and a ReadMore contributes no payload
// but records the index of the last payload appended before it.
//
// File-backed blocks are materialized here, not at construction; a read
// failure aborts the compile.
func Compile(blocks ...Block) (*Content, error) {
	content := &Content{
		Blocks: []Payload{},
		Files:  map[string]File{},
	}
	layout := Layout{
		Type:    "rows",
		Display: []DisplayRow{},
	}

	for _, blk := range blocks {
		switch b := blk.(type) {
		case ReadMore:
			if layout.TruncateAfter != nil {
				return nil, ErrDuplicateReadMore
			}
			after := len(content.Blocks) - 1
			layout.TruncateAfter = &after
		case *Row:
			row := DisplayRow{Blocks: make([]int, 0, len(b.Images))}
			for _, img := range b.Images {
				file, err := img.File()
				if err != nil {
					return nil, err
				}
				row.Blocks = append(row.Blocks, len(content.Blocks))
				content.Blocks = append(content.Blocks, img.Payload())
				content.Files[file.Identifier] = file
			}
			layout.Display = append(layout.Display, row)
		case DataBlock:
			file, err := b.File()
			if err != nil {
				return nil, err
			}
			layout.Display = append(layout.Display, DisplayRow{
				Blocks: []int{len(content.Blocks)},
			})
			content.Blocks = append(content.Blocks, b.Payload())
			content.Files[file.Identifier] = file
		case MultiBlock:
			for _, payload := range b.Payloads() {
				layout.Display = append(layout.Display, DisplayRow{
					Blocks: []int{len(content.Blocks)},
				})
				content.Blocks = append(content.Blocks, payload)
			}
		case ContentBlock:
			layout.Display = append(layout.Display, DisplayRow{
				Blocks: []int{len(content.Blocks)},
			})
			content.Blocks = append(content.Blocks, b.Payload())
		default:
			return nil, fmt.Errorf("unsupported block type %T", blk)
		}
	}

	content.Layout = []Layout{layout}
	return content, nil
}
