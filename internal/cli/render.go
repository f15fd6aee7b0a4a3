package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pidcanvas/pidcanvas/pkg/graph"
	"github.com/pidcanvas/pidcanvas/pkg/render/nodelink"
)

const defaultPNGScale = 2.0 // raster export density

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file path (or base path for multiple formats)
	formats  []string // output formats: "svg", "pdf", "png", "dot"
	detailed bool     // show symbol and coordinate details on node labels
	scale    float64  // PNG export scale
}

// renderCommand creates the render command generating diagram files from a
// scene. Fixed scenes keep their saved coordinates via pinned positions;
// hierarchical scenes are laid out by Graphviz.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{scale: defaultPNGScale}

	cmd := &cobra.Command{
		Use:   "render [scene.json]",
		Short: "Render a scene to SVG, PDF, or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), pdf, png, dot (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show symbol and coordinate details")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG export scale")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{"svg"}
	}
	return strings.Split(s, ",")
}

func validateFormats(formats []string) error {
	for _, f := range formats {
		switch f {
		case "svg", "pdf", "png", "dot":
		default:
			return fmt.Errorf("unknown format %q (want svg, pdf, png, or dot)", f)
		}
	}
	return nil
}

func (c *CLI) runRender(path string, opts *renderOpts) error {
	scene, err := graph.ReadSceneFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}

	dot := nodelink.ToDOT(scene, nodelink.Options{Detailed: opts.detailed})

	spinner := newSpinner("Rendering...")
	spinner.Start()
	outputs := map[string][]byte{}
	for _, format := range opts.formats {
		data, err := renderFormat(scene, dot, format, opts.scale)
		if err != nil {
			spinner.Stop()
			return fmt.Errorf("render %s: %w", format, err)
		}
		outputs[format] = data
	}
	spinner.Stop()

	printSuccess("Rendered %s", filepath.Base(path))
	printGraphStats(len(scene.Nodes), len(scene.Edges))
	for _, format := range opts.formats {
		out := outputPath(path, opts.output, format, len(opts.formats) > 1)
		if err := os.WriteFile(out, outputs[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", format, err)
		}
		printFile(out)
	}
	return nil
}

// renderFormat produces one output format. Fixed scenes go through the
// pinned renderer so saved coordinates survive the export.
func renderFormat(scene graph.Scene, dot, format string, scale float64) ([]byte, error) {
	pinned := scene.IsFixed()

	switch format {
	case "dot":
		return []byte(dot), nil
	case "svg":
		if pinned {
			return nodelink.RenderPinnedSVG(dot)
		}
		return nodelink.RenderSVG(dot)
	case "pdf":
		return nodelink.RenderPDF(dot)
	case "png":
		return nodelink.RenderPNG(dot, scale)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// outputPath picks the file name for one rendered format.
func outputPath(input, output, format string, multi bool) string {
	if output != "" && !multi {
		return output
	}
	base := output
	if base == "" {
		base = input[:len(input)-len(filepath.Ext(input))]
		base = strings.TrimSuffix(base, ".scene")
	}
	return base + "." + format
}
