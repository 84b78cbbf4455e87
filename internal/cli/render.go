package cli

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/underline/canvas"
	"github.com/gogpu/underline/decoration"
	"github.com/gogpu/underline/internal/config"
	"github.com/gogpu/underline/layout"
	"github.com/gogpu/underline/markup"
)

// DemoMarkdown is rendered when no input is given.
const DemoMarkdown = "The [elegant underline](https://example.com) leaves room for the " +
	"descenders of [jumping pygmy giraffes](https://example.com/giraffes)."

type renderFlags struct {
	output  string
	width   int
	size    float64
	align   string
	state   string
	font    string
	legacy  bool
	indent  int
	spacing float64
}

func newRenderCommand(g *globalOptions) *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render [file.md | -]",
		Short: "Render Markdown to a PNG image",
		Long: `Render a Markdown file, or standard input when the argument is "-", to a
PNG image. Links are drawn with the configured decoration. Without an
argument a short demo paragraph is rendered.

Flags override the values of the config file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, cfg); err != nil {
				return err
			}

			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			src, err := readInput(cmd.InOrStdin(), input)
			if err != nil {
				return err
			}

			img, err := Render(cfg, src, flags.options()...)
			if err != nil {
				return err
			}
			if err := img.SavePNG(flags.output); err != nil {
				return err
			}

			b := img.Bounds()
			g.logger.Info("rendered", FieldInput, inputName(input), FieldOutput, flags.output,
				FieldWidth, b.Dx(), FieldHeight, b.Dy())
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.output, "output", "o", "underline.png", "output PNG file")
	f.IntVar(&flags.width, "width", 0, "paragraph width in pixels")
	f.Float64Var(&flags.size, "size", 0, "text size in pixels")
	f.StringVar(&flags.align, "align", "", "paragraph alignment: left, center or right")
	f.StringVar(&flags.state, "state", "", "link decoration: none, simple, wide, intersections or elegant")
	f.StringVar(&flags.font, "font", "", "font family: go or lmroman")
	f.BoolVar(&flags.legacy, "legacy", false, "draw flat underlines through the descenders")
	f.IntVar(&flags.indent, "indent", 0, "first line indent of every paragraph in pixels")
	f.Float64Var(&flags.spacing, "line-spacing", 1, "line height multiplier")

	return cmd
}

// apply copies the flags set on the command line into cfg and validates it.
func (r *renderFlags) apply(cmd *cobra.Command, cfg *config.File) error {
	changed := cmd.Flags().Changed
	if changed("width") {
		cfg.Width = r.width
	}
	if changed("size") {
		cfg.TextSize = r.size
	}
	if changed("align") {
		cfg.Align = r.align
	}
	if changed("state") {
		cfg.DemoState = r.state
	}
	if changed("font") {
		cfg.Font = r.font
	}
	return cfg.Validate()
}

func (r *renderFlags) options() []RenderOption {
	return []RenderOption{
		WithLegacy(r.legacy),
		WithIndent(r.indent),
		WithLineSpacing(r.spacing),
	}
}

func readInput(stdin io.Reader, name string) ([]byte, error) {
	switch name {
	case "":
		return []byte(DemoMarkdown), nil
	case "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	default:
		// #nosec G304 -- input path is provided by the user
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		return data, nil
	}
}

func inputName(name string) string {
	switch name {
	case "":
		return "demo"
	case "-":
		return "stdin"
	default:
		return name
	}
}

// RenderOption configures Render.
type RenderOption func(*renderOptions)

type renderOptions struct {
	legacy      bool
	indent      int
	lineSpacing float64
	background  color.Color
}

// WithLegacy draws flat underlines instead of carved ones.
func WithLegacy(legacy bool) RenderOption {
	return func(o *renderOptions) {
		o.legacy = legacy
	}
}

// WithIndent indents the first line of every paragraph.
func WithIndent(px int) RenderOption {
	return func(o *renderOptions) {
		o.indent = px
	}
}

// WithLineSpacing sets the line height multiplier.
func WithLineSpacing(f float64) RenderOption {
	return func(o *renderOptions) {
		o.lineSpacing = f
	}
}

// WithBackground sets the image background. The default is white.
func WithBackground(c color.Color) RenderOption {
	return func(o *renderOptions) {
		o.background = c
	}
}

// Render lays out the Markdown src as configured by cfg and draws it on a
// new image sized to the text plus padding.
func Render(cfg *config.File, src []byte, opts ...RenderOption) (*canvas.Image, error) {
	o := renderOptions{lineSpacing: 1, background: color.White}
	for _, opt := range opts {
		opt(&o)
	}

	align, err := cfg.TextAlign()
	if err != nil {
		return nil, err
	}
	state, err := cfg.State()
	if err != nil {
		return nil, err
	}
	fonts, err := markup.FontsByName(cfg.Font)
	if err != nil {
		return nil, err
	}

	doc, err := markup.Parse(src, fonts,
		markup.WithParagraphIndent(o.indent),
		markup.WithAnchorOptions(
			decoration.WithParams(cfg.Params()),
			decoration.WithDemoState(state),
			decoration.WithLegacy(o.legacy),
		))
	if err != nil {
		return nil, err
	}

	paint := fonts.Paint(cfg.TextSize)
	paint.Align = align
	l := layout.New(doc.Text, paint, cfg.Width, layout.WithLineSpacing(o.lineSpacing))

	img := canvas.New(cfg.Width+2*cfg.Padding, int(math.Ceil(l.Height()))+2*cfg.Padding)
	img.Clear(o.background)
	l.Draw(img, cfg.Padding, cfg.Padding)
	return img, nil
}
