// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package helpdeskui

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/Deon62/MSP-ictSupport/lib/tui"
)

// wrapBreakpoints are the characters ansi.Wrap may break lines at.
const wrapBreakpoints = " ,.;-+|"

var chatParser = sync.OnceValue(func() goldmark.Markdown {
	// One shared parser; per-call state lives in the reader.
	return goldmark.New(goldmark.WithExtensions(extension.GFM))
})

// renderTerminalMarkdown turns markdown into styled terminal text at
// the given width. Assistant replies are the main consumer; plain text
// passes through unchanged apart from reflow. Single newlines inside a
// paragraph become spaces, so text the server hard-wrapped reflows to
// whatever width the terminal actually has.
func renderTerminalMarkdown(input string, theme tui.Theme, width int) string {
	if input == "" {
		return ""
	}
	source := []byte(input)
	document := chatParser().Parser().Parse(text.NewReader(source))

	// The output always targets a terminal even when stderr is not one
	// (tests, piped logs), so pin the color profile instead of letting
	// lipgloss auto-detect and strip the styling.
	styler := lipgloss.NewRenderer(os.Stderr, termenv.WithProfile(termenv.ANSI256))
	styler.SetColorProfile(termenv.ANSI256)

	walker := &chatMarkdown{
		source: source,
		theme:  theme,
		width:  width,
		styler: styler,
	}
	ast.Walk(document, walker.visit)

	return strings.TrimRight(walker.out.String(), "\n")
}

// chatMarkdown renders a goldmark AST by direct traversal. Terminal
// output needs accumulate-then-wrap semantics (collect a paragraph's
// inline runs, then word-wrap the whole thing), which goldmark's own
// renderer interface does not give us, so block handling, an inline
// accumulator, and an indent stack live here instead.
type chatMarkdown struct {
	source []byte
	theme  tui.Theme
	width  int
	styler *lipgloss.Renderer

	out    strings.Builder // finished lines
	inline strings.Builder // current paragraph/heading, pre-wrap

	indent indentStack
	// bullet, when set, replaces the indent for the next emitted line
	// only. List items set it on entry.
	bullet string

	// Emphasis nesting depths. Depths rather than flags so that
	// **a _b_ c** keeps bold across the inner italic span.
	bold          int
	italic        int
	strikethrough int

	lists []listLevel

	// Newlines currently at the end of out; drives blank-line collapse.
	trailingNewlines int
}

type listLevel struct {
	ordered bool
	number  int
	tight   bool
}

// indentStack tracks nested block prefixes (blockquote bars, list item
// continuations) as both text and visible width.
type indentStack struct {
	levels []struct {
		text  string
		width int
	}
	text  string
	width int
}

func (stack *indentStack) push(text string, width int) {
	stack.levels = append(stack.levels, struct {
		text  string
		width int
	}{text, width})
	stack.text += text
	stack.width += width
}

func (stack *indentStack) pop() {
	if len(stack.levels) == 0 {
		return
	}
	top := stack.levels[len(stack.levels)-1]
	stack.levels = stack.levels[:len(stack.levels)-1]
	stack.text = stack.text[:len(stack.text)-len(top.text)]
	stack.width -= top.width
}

func (m *chatMarkdown) style() lipgloss.Style {
	return m.styler.NewStyle()
}

// contentWidth is what remains after indentation, floored so deep
// nesting degrades to narrow text instead of one-rune columns.
func (m *chatMarkdown) contentWidth() int {
	return max(m.width-m.indent.width, 10)
}

func (m *chatMarkdown) inTightList() bool {
	return len(m.lists) > 0 && m.lists[len(m.lists)-1].tight
}

func (m *chatMarkdown) write(s string) {
	if s == "" {
		return
	}
	m.out.WriteString(s)

	trailing := 0
	for i := len(s) - 1; i >= 0 && s[i] == '\n'; i-- {
		trailing++
	}
	if trailing == len(s) {
		m.trailingNewlines += trailing
	} else {
		m.trailingNewlines = trailing
	}
}

func (m *chatMarkdown) endLine() {
	if m.trailingNewlines < 1 {
		m.write("\n")
	}
}

func (m *chatMarkdown) blankLine() {
	for m.trailingNewlines < 2 {
		m.write("\n")
	}
}

// takePrefix yields the prefix for the next line: the pending list
// bullet exactly once, the plain indent otherwise.
func (m *chatMarkdown) takePrefix() string {
	if m.bullet != "" {
		bullet := m.bullet
		m.bullet = ""
		return bullet
	}
	return m.indent.text
}

// indentLines prefixes every line of content, consuming the pending
// bullet on the first.
func (m *chatMarkdown) indentLines(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if i == 0 {
			lines[i] = m.takePrefix() + line
		} else {
			lines[i] = m.indent.text + line
		}
	}
	return strings.Join(lines, "\n")
}

// flushParagraph wraps whatever inline content has accumulated and
// returns it indented, clearing the accumulator.
func (m *chatMarkdown) flushParagraph() string {
	content := m.inline.String()
	m.inline.Reset()
	if content == "" {
		return ""
	}
	return m.indentLines(ansi.Wrap(content, m.contentWidth(), wrapBreakpoints))
}

// inlineStyle renders a text run with whatever emphasis is open.
func (m *chatMarkdown) inlineStyle(content string) string {
	style := m.style().Foreground(m.theme.NormalText)
	if m.bold > 0 {
		style = style.Bold(true)
	}
	if m.italic > 0 {
		style = style.Italic(true)
	}
	if m.strikethrough > 0 {
		style = style.Strikethrough(true)
	}
	return style.Render(content)
}

// collectInline renders a node's children into a string on the side,
// leaving the live accumulator and emphasis depths untouched.
func (m *chatMarkdown) collectInline(node ast.Node) string {
	savedInline := m.inline.String()
	savedBold, savedItalic, savedStrike := m.bold, m.italic, m.strikethrough

	m.inline.Reset()
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		ast.Walk(child, m.visit)
	}
	collected := m.inline.String()

	m.inline.Reset()
	m.inline.WriteString(savedInline)
	m.bold, m.italic, m.strikethrough = savedBold, savedItalic, savedStrike
	return collected
}

func (m *chatMarkdown) visit(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch typed := node.(type) {
	case *ast.Document:

	case *ast.Paragraph, *ast.TextBlock:
		if entering {
			m.inline.Reset()
			break
		}
		if flushed := m.flushParagraph(); flushed != "" {
			m.write(flushed)
			m.endLine()
			if !m.inTightList() {
				m.blankLine()
			}
		}

	case *ast.Heading:
		if entering {
			m.inline.Reset()
		} else {
			m.heading(typed)
		}

	case *ast.FencedCodeBlock:
		if entering {
			m.codeBlock(m.blockText(typed), string(typed.Language(m.source)))
			return ast.WalkSkipChildren, nil
		}

	case *ast.CodeBlock:
		if entering {
			m.codeBlock(m.blockText(typed), "")
			return ast.WalkSkipChildren, nil
		}

	case *ast.Blockquote:
		if entering {
			m.indent.push("│ ", 2)
		} else {
			m.indent.pop()
			m.blankLine()
		}

	case *ast.List:
		if entering {
			number := 0
			if typed.IsOrdered() {
				number = typed.Start
			}
			m.lists = append(m.lists, listLevel{
				ordered: typed.IsOrdered(),
				number:  number,
				tight:   typed.IsTight,
			})
		} else {
			m.lists = m.lists[:len(m.lists)-1]
			if !m.inTightList() {
				m.blankLine()
			}
		}

	case *ast.ListItem:
		if entering {
			m.enterListItem()
		} else {
			m.indent.pop()
			if m.inTightList() {
				m.endLine()
			} else {
				m.blankLine()
			}
		}

	case *ast.ThematicBreak:
		if entering {
			m.rule()
		}

	case *ast.Text:
		if entering {
			m.inline.WriteString(m.inlineStyle(string(typed.Segment.Value(m.source))))
			if typed.SoftLineBreak() {
				// Soft breaks become spaces so the paragraph reflows.
				m.inline.WriteString(" ")
			}
			if typed.HardLineBreak() {
				m.inline.WriteString("\n")
			}
		}

	case *ast.String:
		if entering {
			m.inline.WriteString(m.inlineStyle(string(typed.Value)))
		}

	case *ast.Emphasis:
		delta := 1
		if !entering {
			delta = -1
		}
		if typed.Level >= 2 {
			m.bold += delta
		} else {
			m.italic += delta
		}

	case *ast.CodeSpan:
		if entering {
			m.codeSpan(typed)
			return ast.WalkSkipChildren, nil
		}

	case *ast.Link:
		if entering {
			m.link(typed)
			return ast.WalkSkipChildren, nil
		}

	case *ast.AutoLink:
		if entering {
			url := string(typed.URL(m.source))
			m.inline.WriteString(m.style().Foreground(m.theme.FaintText).Render(url))
		}

	default:
		// GFM strikethrough is the one extension node chat replies use;
		// tables and task lists fall through and render their inline
		// children bare.
		if node.Kind() == extast.KindStrikethrough {
			if entering {
				m.strikethrough++
			} else {
				m.strikethrough--
			}
		}
	}

	return ast.WalkContinue, nil
}

func (m *chatMarkdown) heading(heading *ast.Heading) {
	// Drop inline styling; the heading's own style replaces it.
	content := ansi.Strip(m.inline.String())
	m.inline.Reset()
	if content == "" {
		return
	}

	color := m.theme.NormalText
	if heading.Level <= 2 {
		color = m.theme.HeaderForeground
	}
	rendered := m.style().Bold(true).Foreground(color).Render(content)

	m.blankLine()
	m.write(m.indentLines(ansi.Wrap(rendered, m.contentWidth(), wrapBreakpoints)))
	m.endLine()
	m.blankLine()
}

// blockText concatenates the raw source lines of a code block.
func (m *chatMarkdown) blockText(node ast.Node) string {
	var raw strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		raw.Write(line.Value(m.source))
	}
	return raw.String()
}

// codeBlock emits a code block with chroma highlighting when the fence
// names a language; unknown languages and highlight failures fall back
// to faint plain text.
func (m *chatMarkdown) codeBlock(code, language string) {
	var rendered string
	if language != "" {
		var highlighted strings.Builder
		if quick.Highlight(&highlighted, code, language, "terminal256", "monokai") == nil {
			rendered = highlighted.String()
		}
	}
	if rendered == "" {
		rendered = m.style().Foreground(m.theme.FaintText).Render(code)
	}

	m.blankLine()
	for _, line := range strings.Split(strings.TrimRight(rendered, "\n"), "\n") {
		m.write(m.takePrefix() + line)
		m.endLine()
	}
	m.blankLine()
}

func (m *chatMarkdown) enterListItem() {
	if len(m.lists) == 0 {
		return
	}
	level := &m.lists[len(m.lists)-1]

	bullet := "- "
	if level.ordered {
		bullet = fmt.Sprintf("%d. ", level.number)
		level.number++
	}

	// Bullets are ASCII, so byte length is visible width. The bullet
	// replaces the whole indent on the item's first line; continuation
	// lines hang under the text.
	m.bullet = m.indent.text + bullet
	m.indent.push(strings.Repeat(" ", len(bullet)), len(bullet))
}

func (m *chatMarkdown) rule() {
	line := strings.Repeat("─", m.contentWidth())
	m.blankLine()
	m.write(m.indentLines(m.style().Foreground(m.theme.BorderColor).Render(line)))
	m.endLine()
	m.blankLine()
}

func (m *chatMarkdown) codeSpan(node *ast.CodeSpan) {
	var code strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch typed := child.(type) {
		case *ast.Text:
			code.Write(typed.Segment.Value(m.source))
		case *ast.String:
			code.Write(typed.Value)
		}
	}
	m.inline.WriteString(m.style().Foreground(m.theme.FaintText).Render(code.String()))
}

func (m *chatMarkdown) link(node *ast.Link) {
	// collectInline styles the link text already; only the destination
	// needs dressing here.
	m.inline.WriteString(m.collectInline(node))
	if url := string(node.Destination); url != "" {
		m.inline.WriteString(" " + m.style().Foreground(m.theme.FaintText).Render("("+url+")"))
	}
}
