// Package postfile parses YAML post documents into NPF blocks, so posts
// can be authored declaratively and fed to the client from the CLI.
//
// A document looks like:
//
//	tags: [golang, photos]
//	blocks:
//	  - type: heading
//	    text: Trip report
//	  - type: text
//	    text: We went places.
//	  - type: row
//	    images:
//	      - {path: a.jpg, mime: image/jpeg, alt: first}
//	      - {path: b.jpg, mime: image/jpeg, alt: second}
//	  - type: read_more
//	  - type: poll
//	    question: Where next?
//	    options: [mountains, sea]
//	    expire_after: 72h
package postfile

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tinyland-inc/tumblweed/pkg/npf"
)

// Document is one parsed post document.
type Document struct {
	Tags   []string     `yaml:"tags"`
	Blocks []blockEntry `yaml:"blocks"`
}

type blockEntry struct {
	Type string `yaml:"type"`

	// text-like blocks
	Text  string         `yaml:"text"`
	Extra map[string]any `yaml:"extra"`

	// list blocks
	Items []string `yaml:"items"`

	// poll
	Question    string        `yaml:"question"`
	Options     []string      `yaml:"options"`
	ExpireAfter time.Duration `yaml:"expire_after"`

	// image
	Path    string `yaml:"path"`
	Mime    string `yaml:"mime"`
	Alt     string `yaml:"alt"`
	Caption string `yaml:"caption"`

	// row
	Images []imageEntry `yaml:"images"`
}

type imageEntry struct {
	Path    string `yaml:"path"`
	Mime    string `yaml:"mime"`
	Alt     string `yaml:"alt"`
	Caption string `yaml:"caption"`
}

// Parse reads a YAML post document.
func Parse(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing post document: %w", err)
	}
	return &doc, nil
}

// ParseFile reads a YAML post document from disk.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// NPFBlocks converts the document's entries into NPF blocks, in order.
func (d *Document) NPFBlocks() ([]npf.Block, error) {
	blocks := make([]npf.Block, 0, len(d.Blocks))
	for i, entry := range d.Blocks {
		block, err := entry.toBlock()
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

func (e blockEntry) toBlock() (npf.Block, error) {
	switch e.Type {
	case "text":
		return npf.NewText(e.Text, e.Extra), nil
	case "heading":
		return npf.NewHeading(e.Text, e.Extra), nil
	case "subheading":
		return npf.NewSubheading(e.Text, e.Extra), nil
	case "cursive":
		return npf.NewCursive(e.Text, e.Extra), nil
	case "quote":
		return npf.NewQuote(e.Text, e.Extra), nil
	case "indented":
		return npf.NewIndented(e.Text, e.Extra), nil
	case "chat":
		return npf.NewChat(e.Text, e.Extra), nil
	case "ordered_list":
		return npf.NewOrderedList(e.Items, e.Extra), nil
	case "unordered_list":
		return npf.NewUnorderedList(e.Items, e.Extra), nil
	case "poll":
		var opts []npf.PollOption
		if e.ExpireAfter > 0 {
			opts = append(opts, npf.WithExpireAfter(e.ExpireAfter))
		}
		return npf.NewPoll(e.Question, e.Options, opts...)
	case "image":
		return buildImage(imageEntry{Path: e.Path, Mime: e.Mime, Alt: e.Alt, Caption: e.Caption})
	case "row":
		images := make([]*npf.Image, 0, len(e.Images))
		for _, img := range e.Images {
			block, err := buildImage(img)
			if err != nil {
				return nil, err
			}
			images = append(images, block)
		}
		return npf.NewRow(images...), nil
	case "read_more":
		return npf.ReadMore{}, nil
	case "":
		return nil, fmt.Errorf("block entry has no type")
	default:
		return nil, fmt.Errorf("unknown block type %q", e.Type)
	}
}

func buildImage(img imageEntry) (*npf.Image, error) {
	if img.Path == "" {
		return nil, fmt.Errorf("image entry has no path")
	}
	if img.Mime == "" {
		return nil, fmt.Errorf("image %s has no mime type", img.Path)
	}
	var opts []npf.ImageOption
	if img.Caption != "" {
		opts = append(opts, npf.WithCaption(img.Caption))
	}
	return npf.NewImage(img.Path, img.Mime, img.Alt, opts...), nil
}
