package npf

import (
	"fmt"
	"os"

	"github.com/google/uuid"
)

// Image is an image content block backed by a local file. The file
// identifier is a UUID generated at construction; the backing file is not
// touched until File is called, so an Image can be built and discarded
// without any filesystem access.
//
// See: https://www.tumblr.com/docs/npf#content-block-type-image
type Image struct {
	Path     string
	MimeType string
	AltText  string
	Caption  string

	fid string
}

func (*Image) isBlock() {}

// ImageOption configures an Image at construction.
type ImageOption func(*Image)

// WithCaption sets the caption shown under the image.
func WithCaption(caption string) ImageOption {
	return func(i *Image) { i.Caption = caption }
}

// NewImage builds an image block for the file at path.
func NewImage(path, mimeType, altText string, opts ...ImageOption) *Image {
	img := &Image{
		Path:     path,
		MimeType: mimeType,
		AltText:  altText,
		fid:      uuid.NewString(),
	}
	for _, opt := range opts {
		opt(img)
	}
	return img
}

// Identifier returns the generated file identifier referenced by the
// block's media entry and the multipart file map.
func (i *Image) Identifier() string { return i.fid }

func (i *Image) Payload() Payload {
	p := Payload{
		"type": "image",
		"media": []map[string]any{
			{"type": i.MimeType, "identifier": i.fid},
		},
		"alt_text": i.AltText,
	}
	if i.Caption != "" {
		p["caption"] = i.Caption
	}
	return p
}

// File reads the backing file and returns it as a multipart attachment.
// The read happens on every call; nothing is cached.
func (i *Image) File() (File, error) {
	data, err := os.ReadFile(i.Path)
	if err != nil {
		return File{}, fmt.Errorf("reading image %s: %w", i.Path, err)
	}
	return File{Identifier: i.fid, Data: data, MimeType: i.MimeType}, nil
}

// ReadMore inserts a "keep reading" bar that truncates the post. Only one
// is allowed per post.
//
// See: https://www.tumblr.com/docs/npf#read-more
type ReadMore struct{}

func (ReadMore) isBlock() {}

// Row groups several images into one visual row. The children contribute
// their payloads and files individually, but the layout references them
// as a single display unit.
type Row struct {
	Images []*Image
}

func (*Row) isBlock() {}

// NewRow builds a row from the given images, kept in input order.
func NewRow(images ...*Image) *Row {
	return &Row{Images: images}
}
