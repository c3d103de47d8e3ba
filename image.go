package trellis

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/trellisui/trellis/internal/debug"
)

// Image renders encoded image bytes (PNG, JPEG or GIF). Malformed bytes
// degrade locally: the view renders empty at zero size and the rest of the
// tree updates normally.
type Image struct {
	Source []byte
}

var _ View = Image{}

// imageChildren caches the decoded image so re-decoding only happens when
// the source bytes change.
type imageChildren struct {
	NoChildren
	source  []byte
	decoded image.Image
	size    Size
}

func (v Image) BuildChildren(b Backend, env Environment, snap *Snapshot) Children {
	return &imageChildren{}
}

func (v Image) BuildWidget(children Children, b Backend) Widget {
	return b.CreateImageView()
}

func (v Image) Layout(w Widget, children Children, proposal Proposal, env Environment, b Backend, dry bool) ViewSize {
	c := children.(*imageChildren)

	if !bytes.Equal(c.source, v.Source) {
		c.source = v.Source
		c.decoded = nil
		if len(v.Source) > 0 {
			img, _, err := image.Decode(bytes.NewReader(v.Source))
			if err != nil {
				debug.Log("Image: decode failed: %v", err)
			} else {
				c.decoded = img
			}
		}
	}

	if c.decoded == nil {
		c.size = Size{}
		return ViewSize{MaxWidth: 0, MaxHeight: 0}
	}

	bounds := c.decoded.Bounds()
	natural := Size{W: bounds.Dx(), H: bounds.Dy()}
	size := Size{
		W: proposal.Width.Resolve(natural.W),
		H: proposal.Height.Resolve(natural.H),
	}
	c.size = size
	return ViewSize{
		Size:                size,
		Ideal:               natural,
		IdealWidthForHeight: natural.W,
		IdealHeightForWidth: natural.H,
		MinWidth:            0,
		MinHeight:           0,
		MaxWidth:            Unbounded,
		MaxHeight:           Unbounded,
	}
}

func (v Image) Commit(w Widget, children Children, env Environment, b Backend) {
	c := children.(*imageChildren)
	b.UpdateImageView(w, c.decoded, c.size)
	b.SetSize(w, c.size)
}
