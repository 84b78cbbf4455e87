// Package markup turns Markdown into styled text ready for layout.
//
// Paragraphs, headings, list items and code block lines become
// paragraphs of the text, separated by '\n'. Emphasis, strong emphasis and
// code spans switch the typeface, headings are enlarged and every link
// becomes a decoration.Anchor, so it is drawn with the elegant underline.
package markup

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	gmtext "github.com/yuin/goldmark/text"

	"github.com/gogpu/underline/decoration"
	"github.com/gogpu/underline/styled"
	"github.com/gogpu/underline/text"
)

// Document is parsed Markdown.
type Document struct {
	// Text is the styled text, decorated with a Shim when it has links.
	Text *styled.Text

	// Anchors are the links of the document in source order.
	Anchors []*decoration.Anchor
}

// Option configures Parse.
type Option func(*options)

type options struct {
	anchor []decoration.AnchorOption
	indent int
}

// WithAnchorOptions configures every anchor created for a link.
func WithAnchorOptions(opts ...decoration.AnchorOption) Option {
	return func(o *options) {
		o.anchor = append(o.anchor, opts...)
	}
}

// WithParagraphIndent indents the first line of every paragraph and list
// item by px pixels.
func WithParagraphIndent(px int) Option {
	return func(o *options) {
		o.indent = max(px, 0)
	}
}

// Parse converts the Markdown src into a Document styled with fonts.
// Text outside any style span is meant to be drawn with a paint using
// fonts.Regular; see Fonts.Paint. Missing faces fall back to Regular.
func Parse(src []byte, fonts *Fonts, opts ...Option) (*Document, error) {
	if fonts == nil || fonts.Regular == nil {
		return nil, fmt.Errorf("markup: %w", text.ErrNoFont)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	md := goldmark.New(goldmark.WithExtensions(extension.Linkify))
	root := md.Parser().Parse(gmtext.NewReader(src))

	b := &builder{src: src, fonts: fonts.withFallbacks(), opts: o}
	b.blocks(root)

	t := styled.New(b.sb.String())
	for _, p := range b.spans {
		if p.start >= p.end {
			continue
		}
		if err := t.SetSpan(p.style, p.start, p.end); err != nil {
			return nil, fmt.Errorf("markup: %w", err)
		}
	}

	doc := &Document{Text: t}
	for _, l := range b.links {
		if l.start >= l.end {
			continue
		}
		a, err := decoration.Link(t, l.url, l.start, l.end, o.anchor...)
		if err != nil {
			return nil, fmt.Errorf("markup: link %q: %w", l.url, err)
		}
		doc.Anchors = append(doc.Anchors, a)
	}
	return doc, nil
}

// Paint returns a paint for the regular face at size.
func (f *Fonts) Paint(size float64) *text.Paint {
	return text.NewPaint(f.Regular, size)
}

func (f *Fonts) withFallbacks() *Fonts {
	c := *f
	for _, face := range []**text.FontSource{&c.Bold, &c.Italic, &c.Mono} {
		if *face == nil {
			*face = c.Regular
		}
	}
	return &c
}

type pending struct {
	style      any
	start, end int
}

type pendingLink struct {
	url        string
	start, end int
}

// builder flattens the goldmark tree into a string and the spans over it.
// Spans are recorded when they open, so an outer style comes before the
// styles nested in it and those win.
type builder struct {
	src   []byte
	fonts *Fonts
	opts  options

	sb      strings.Builder
	started bool
	spans   []pending
	links   []pendingLink
}

func (b *builder) open(style any) int {
	b.spans = append(b.spans, pending{style: style, start: b.sb.Len(), end: -1})
	return len(b.spans) - 1
}

func (b *builder) close(i int) {
	b.spans[i].end = b.sb.Len()
}

// newParagraph separates a new paragraph from the previous one and
// returns its start.
func (b *builder) newParagraph() int {
	if b.started {
		b.sb.WriteByte('\n')
	}
	b.started = true
	return b.sb.Len()
}

func (b *builder) indent() int {
	if b.opts.indent == 0 {
		return -1
	}
	return b.open(styled.Margin{First: b.opts.indent})
}

func (b *builder) closeIndent(i int) {
	if i >= 0 {
		b.close(i)
	}
}

func (b *builder) blocks(parent ast.Node) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		b.block(n)
	}
}

func (b *builder) block(n ast.Node) {
	switch n := n.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		b.newParagraph()
		margin := b.indent()
		b.inlines(n)
		b.closeIndent(margin)

	case *ast.Heading:
		b.newParagraph()
		face := b.open(styled.Typeface{Source: b.fonts.Bold})
		size := b.open(styled.RelativeSize{Proportion: headingScale(n.Level)})
		b.inlines(n)
		b.close(size)
		b.close(face)

	case *ast.List:
		num := n.Start
		for item := n.FirstChild(); item != nil; item = item.NextSibling() {
			marker := "• "
			if n.IsOrdered() {
				marker = strconv.Itoa(num) + ". "
				num++
			}
			b.listItem(item, marker)
		}

	case *ast.Blockquote:
		b.blocks(n)

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			b.newParagraph()
			mono := b.open(styled.Typeface{Source: b.fonts.Mono})
			seg := lines.At(i)
			b.sb.WriteString(strings.TrimRight(string(seg.Value(b.src)), "\r\n"))
			b.close(mono)
		}
	}
}

// listItem writes the marker and the first text block of item on one
// paragraph; nested blocks follow as paragraphs of their own.
func (b *builder) listItem(item ast.Node, marker string) {
	b.newParagraph()
	margin := b.indent()
	b.sb.WriteString(marker)

	child := item.FirstChild()
	switch child.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		b.inlines(child)
		child = child.NextSibling()
	}
	b.closeIndent(margin)

	for ; child != nil; child = child.NextSibling() {
		b.block(child)
	}
}

func (b *builder) inlines(parent ast.Node) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch n := n.(type) {
		case *ast.Text:
			b.sb.Write(n.Segment.Value(b.src))
			switch {
			case n.HardLineBreak():
				b.sb.WriteByte('\n')
			case n.SoftLineBreak():
				b.sb.WriteByte(' ')
			}

		case *ast.String:
			b.sb.Write(n.Value)

		case *ast.Emphasis:
			face := b.fonts.Italic
			if n.Level >= 2 {
				face = b.fonts.Bold
			}
			i := b.open(styled.Typeface{Source: face})
			b.inlines(n)
			b.close(i)

		case *ast.CodeSpan:
			i := b.open(styled.Typeface{Source: b.fonts.Mono})
			b.inlines(n)
			b.close(i)

		case *ast.Link:
			start := b.sb.Len()
			b.inlines(n)
			b.links = append(b.links, pendingLink{url: string(n.Destination), start: start, end: b.sb.Len()})

		case *ast.AutoLink:
			start := b.sb.Len()
			b.sb.Write(n.Label(b.src))
			b.links = append(b.links, pendingLink{url: string(n.URL(b.src)), start: start, end: b.sb.Len()})

		case *ast.Image:
			// Only the alt text is kept.
			b.inlines(n)
		}
	}
}

func headingScale(level int) float64 {
	switch level {
	case 1:
		return 2
	case 2:
		return 1.5
	case 3:
		return 1.25
	default:
		return 1
	}
}
