package plu

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/signadot/plu/codec"
	"github.com/signadot/plu/debug"
	"github.com/signadot/plu/encode"
	"github.com/signadot/plu/format"
	"github.com/signadot/plu/ir"
)

// Document is a loaded property list and the format writes use.
type Document struct {
	Root *ir.Node
	// Format is the active format: the detected format, XML for inline
	// literals, or the last format forced by a write op.
	Format format.Format
	// Source is the format the document was decoded from.
	Source format.Format

	// Out receives GET output and writes to "-".
	Out io.Writer
	// Colors, when non-nil, colors classic text written to Out.
	Colors *encode.Colors
	Log    *slog.Logger
}

// IsInline reports whether src is a property list literal rather than a
// file name.
func IsInline(src string) bool {
	if src == "" {
		return false
	}
	switch src[0] {
	case '(', '{', '"', '<':
		return true
	}
	return false
}

// Load decodes src, which is either an inline literal or a file name.
// Inline literals are written as XML by -w; files keep their detected
// format.
func Load(src string) (*Document, error) {
	var (
		data   []byte
		inline = IsInline(src)
	)
	if inline {
		data = []byte(src)
	} else {
		d, err := os.ReadFile(src)
		if err != nil {
			return nil, fmt.Errorf("%w: couldn't open %s: %w", codec.ErrIO, src, err)
		}
		data = d
	}
	root, f, err := codec.Decode(data)
	if err != nil {
		if inline {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", src, err)
	}
	doc := New(root, f)
	if inline {
		doc.Format = format.XMLFormat
	}
	if debug.Load() {
		debug.Logger.Debug("load", "src", src, "inline", inline, "source", doc.Source, "active", doc.Format)
	}
	return doc, nil
}

// New creates a document around root, decoded from format f, writing to
// standard output.
func New(root *ir.Node, f format.Format) *Document {
	return &Document{
		Root:   root,
		Format: f,
		Source: f,
		Out:    os.Stdout,
		Log:    slog.Default(),
	}
}

// Get prints the classic text form of the value at path.
func (d *Document) Get(path string) error {
	node, err := d.Root.GetPath(path)
	if err != nil {
		return err
	}
	return codec.Encode(node, d.Out, format.ClassicFormat, d.encOpts()...)
}

// Set decodes lit and stores it at path.
func (d *Document) Set(path, lit string) error {
	v, err := codec.DecodeValue(lit)
	if err != nil {
		return err
	}
	return d.Root.SetPath(path, v)
}

// Remove deletes the value at path.
func (d *Document) Remove(path string) error {
	return d.Root.RemovePath(path)
}

// Write writes the whole document to dest in the active format. dest "-"
// means Out.
func (d *Document) Write(dest string) error {
	if dest == "-" {
		var opts []encode.EncodeOption
		if d.Format.IsClassic() {
			opts = d.encOpts()
		}
		return codec.Encode(d.Root, d.Out, d.Format, opts...)
	}
	f, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("%w: couldn't open %s: %w", codec.ErrIO, dest, err)
	}
	if err := codec.Encode(d.Root, f, d.Format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: couldn't write %s: %w", codec.ErrIO, dest, err)
	}
	return nil
}

// Convert makes f the active format.
func (d *Document) Convert(f format.Format) {
	if f != d.Source && d.Log != nil {
		d.Log.Info("converting", "from", d.Source, "to", f)
	}
	d.Format = f
}

func (d *Document) encOpts() []encode.EncodeOption {
	if d.Colors == nil {
		return nil
	}
	return []encode.EncodeOption{encode.EncodeColors(d.Colors)}
}
