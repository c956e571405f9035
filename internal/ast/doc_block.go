package ast

import (
	"strings"

	"hufflint/internal/source"
	"hufflint/internal/token"
)

// DocBlock is a contiguous run of '///' lines attached to the file (H1) or
// to the next declaration (H2).
type DocBlock struct {
	Span  source.Span
	Lines []token.Token // DocComment / FileDocComment tokens in order
	// FileLevel is true when the block opens with an H1 title.
	FileLevel bool
}

// DocSection is one recognized H3 subsection of a doc block.
type DocSection struct {
	Heading string // heading text after '### '
	Tok     token.Token
	Body    []token.Token // lines until the next heading
}

// Known subsection headings with a mandated list style.
const (
	SectionDirectives   = "Directives"
	SectionPanics       = "Panics"
	SectionTemplateArgs = "Template Arguments"
)

// DocLineBody strips the '///' prefix and one optional leading space.
func DocLineBody(tok token.Token) string {
	body := strings.TrimPrefix(tok.Text, "///")
	body = strings.TrimPrefix(body, " ")
	return body
}

// Title returns the heading text of the block's first H1/H2 line, or "".
func (b *DocBlock) Title() string {
	for _, tok := range b.Lines {
		body := DocLineBody(tok)
		if strings.HasPrefix(body, "# ") {
			return strings.TrimSpace(body[2:])
		}
		if strings.HasPrefix(body, "## ") {
			return strings.TrimSpace(body[3:])
		}
	}
	return ""
}

// Sections splits the block into H3 subsections, preserving order.
func (b *DocBlock) Sections() []DocSection {
	var out []DocSection
	var cur *DocSection
	for _, tok := range b.Lines {
		body := DocLineBody(tok)
		if strings.HasPrefix(body, "### ") {
			if cur != nil {
				out = append(out, *cur)
			}
			cur = &DocSection{
				Heading: strings.TrimSpace(body[4:]),
				Tok:     tok,
			}
			continue
		}
		if cur != nil {
			cur.Body = append(cur.Body, tok)
		}
	}
	if cur != nil {
		out = append(out, *cur)
	}
	return out
}

// HeadingLevel returns the markdown heading level of a doc line (0 if the
// line is not a heading).
func HeadingLevel(tok token.Token) int {
	body := DocLineBody(tok)
	level := 0
	for level < len(body) && body[level] == '#' {
		level++
	}
	if level == 0 || level >= len(body) || body[level] != ' ' {
		return 0
	}
	return level
}
