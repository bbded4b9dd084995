package skeleton

import (
	"fmt"
	"io"
	"strings"

	"github.com/ddddddO/gtree"

	"acstools/internal/model"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat accepts a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (want text, json, yaml or toml)", s)
}

// Encode writes the depth-bounded tree to w. Text goes through Write;
// structured formats are produced by gtree under a root named ".".
func Encode(w io.Writer, root *model.TreeNode, opts Options, format Format) error {
	var encoding gtree.Option
	switch format {
	case FormatText:
		return Write(w, root, opts)
	case FormatJSON:
		encoding = gtree.WithEncodeJSON()
	case FormatYAML:
		encoding = gtree.WithEncodeYAML()
	case FormatTOML:
		encoding = gtree.WithEncodeTOML()
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	groot := gtree.NewRoot(".")
	graft(groot, root, 0, opts)
	if err := gtree.OutputProgrammably(w, groot, encoding); err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return nil
}

// graft copies the visible part of src below dst, in display order.
func graft(dst *gtree.Node, src *model.TreeNode, level int, opts Options) {
	if level >= opts.MaxDepth {
		return
	}
	for _, n := range Ordered(src) {
		graft(dst.Add(Label(n, opts.Classify)), n, level+1, opts)
	}
}
