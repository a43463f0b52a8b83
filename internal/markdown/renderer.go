// Package markdown renders note content as styled terminal text for the
// detail view. Notes are written in GitHub Flavored Markdown; the renderer
// walks the goldmark AST directly because terminal output needs
// accumulate-then-wrap semantics that goldmark's streaming HTML renderer
// does not provide.
package markdown

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var (
	parserInstance goldmark.Markdown
	parserOnce     sync.Once
)

// The parser configuration never changes and a goldmark parser is safe to
// share between calls.
func getParser() goldmark.Markdown {
	parserOnce.Do(func() {
		parserInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		)
	})
	return parserInstance
}

var (
	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"})
	boldStyle     = lipgloss.NewStyle().Bold(true)
	italicStyle   = lipgloss.NewStyle().Italic(true)
	strikeStyle   = lipgloss.NewStyle().Strikethrough(true)
	codeStyle     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"})
	linkStyle     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"})
	ruleStyle     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"})
	checkedStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#03BF87", Dark: "#04B575"})
	tableHeadBold = lipgloss.NewStyle().Bold(true)
)

// Render parses source as GitHub Flavored Markdown and returns styled
// terminal text wrapped to width. Soft line breaks inside paragraphs become
// spaces so hard-wrapped source reflows at any terminal width.
func Render(source string, width int) string {
	if strings.TrimSpace(source) == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	src := []byte(source)
	document := getParser().Parser().Parse(text.NewReader(src))

	r := &renderer{source: src, width: width}
	_ = ast.Walk(document, r.walk)

	return strings.TrimRight(r.output.String(), "\n")
}

// renderer accumulates inline content per block and flushes it word-wrapped
// when the block closes.
type renderer struct {
	source []byte
	width  int

	output strings.Builder
	inline strings.Builder

	// Indentation accumulated from nested blockquotes and list items.
	prefix string

	// pendingBullet replaces the prefix for the first emitted line of a
	// list item, then clears.
	pendingBullet string

	boldDepth   int
	italicDepth int
	strikeDepth int

	listStack []listState

	trailingNewlines int
}

type listState struct {
	ordered bool
	counter int
	tight   bool

	// itemIndent is the width of the current item's bullet, removed from
	// the prefix when the item closes.
	itemIndent int
}

func (r *renderer) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node.Kind() {
	case ast.KindParagraph, ast.KindTextBlock:
		if entering {
			r.inline.Reset()
		} else {
			r.flushParagraph()
		}

	case ast.KindHeading:
		if entering {
			r.inline.Reset()
		} else {
			r.flushHeading(node.(*ast.Heading))
		}

	case ast.KindFencedCodeBlock, ast.KindCodeBlock:
		if entering {
			r.writeCodeBlock(node)
			return ast.WalkSkipChildren, nil
		}

	case ast.KindBlockquote:
		if entering {
			r.prefix += "│ "
		} else {
			r.prefix = r.prefix[:len(r.prefix)-len("│ ")]
			r.ensureBlankLine()
		}

	case ast.KindList:
		if entering {
			list := node.(*ast.List)
			start := 0
			if list.IsOrdered() {
				start = list.Start
			}
			r.listStack = append(r.listStack, listState{
				ordered: list.IsOrdered(),
				counter: start,
				tight:   list.IsTight,
			})
		} else {
			r.listStack = r.listStack[:len(r.listStack)-1]
			if !r.inTightList() {
				r.ensureBlankLine()
			}
		}

	case ast.KindListItem:
		if entering {
			r.enterListItem()
		} else {
			r.leaveListItem()
		}

	case ast.KindThematicBreak:
		if entering {
			r.ensureBlankLine()
			r.write(r.prefix + ruleStyle.Render(strings.Repeat("─", r.contentWidth())) + "\n")
			r.ensureBlankLine()
		}

	case ast.KindText:
		if entering {
			r.writeText(node.(*ast.Text))
		}

	case ast.KindString:
		if entering {
			r.inline.WriteString(r.styled(string(node.(*ast.String).Value)))
		}

	case ast.KindEmphasis:
		emphasis := node.(*ast.Emphasis)
		delta := 1
		if !entering {
			delta = -1
		}
		if emphasis.Level >= 2 {
			r.boldDepth += delta
		} else {
			r.italicDepth += delta
		}

	case ast.KindCodeSpan:
		if entering {
			r.inline.WriteString(codeStyle.Render(r.nodeText(node)))
			return ast.WalkSkipChildren, nil
		}

	case ast.KindLink:
		if entering {
			link := node.(*ast.Link)
			r.inline.WriteString(r.childText(node))
			if url := string(link.Destination); url != "" {
				r.inline.WriteString(" " + linkStyle.Render("("+url+")"))
			}
			return ast.WalkSkipChildren, nil
		}

	case ast.KindAutoLink:
		if entering {
			r.inline.WriteString(linkStyle.Render(string(node.(*ast.AutoLink).URL(r.source))))
		}

	case ast.KindImage:
		if entering {
			image := node.(*ast.Image)
			r.inline.WriteString(linkStyle.Render("[" + r.childText(node) + "]"))
			if url := string(image.Destination); url != "" {
				r.inline.WriteString(" " + linkStyle.Render("("+url+")"))
			}
			return ast.WalkSkipChildren, nil
		}

	case extast.KindStrikethrough:
		if entering {
			r.strikeDepth++
		} else {
			r.strikeDepth--
		}

	case extast.KindTaskCheckBox:
		if entering {
			if node.(*extast.TaskCheckBox).IsChecked {
				r.inline.WriteString(checkedStyle.Render("[x]") + " ")
			} else {
				r.inline.WriteString("[ ] ")
			}
		}

	case extast.KindTable:
		if entering {
			r.writeTable(node.(*extast.Table))
			return ast.WalkSkipChildren, nil
		}
	}

	return ast.WalkContinue, nil
}

func (r *renderer) styled(content string) string {
	switch {
	case r.boldDepth > 0 && r.strikeDepth > 0:
		return boldStyle.Strikethrough(true).Render(content)
	case r.boldDepth > 0:
		return boldStyle.Render(content)
	case r.italicDepth > 0:
		return italicStyle.Render(content)
	case r.strikeDepth > 0:
		return strikeStyle.Render(content)
	default:
		return content
	}
}

func (r *renderer) writeText(node *ast.Text) {
	r.inline.WriteString(r.styled(string(node.Segment.Value(r.source))))
	if node.SoftLineBreak() {
		// Soft break becomes a space: the wrap below reflows the text.
		r.inline.WriteString(" ")
	}
	if node.HardLineBreak() {
		r.inline.WriteString("\n")
	}
}

func (r *renderer) contentWidth() int {
	width := r.width - lipgloss.Width(r.prefix)
	if width < 10 {
		width = 10
	}
	return width
}

// flushBlock word-wraps content to the available width, prepends the line
// prefixes, and writes the result followed by a newline.
func (r *renderer) flushBlock(content string) {
	wrapped := lipgloss.NewStyle().Width(r.contentWidth()).Render(content)
	for i, line := range strings.Split(wrapped, "\n") {
		if i == 0 && r.pendingBullet != "" {
			r.write(r.pendingBullet + line + "\n")
			r.pendingBullet = ""
			continue
		}
		r.write(r.prefix + line + "\n")
	}
}

func (r *renderer) flushParagraph() {
	content := strings.TrimRight(r.inline.String(), " ")
	r.inline.Reset()
	if content == "" {
		return
	}
	r.flushBlock(content)
	if !r.inTightList() {
		r.ensureBlankLine()
	}
}

func (r *renderer) flushHeading(heading *ast.Heading) {
	content := r.inline.String()
	r.inline.Reset()
	if content == "" {
		return
	}

	style := boldStyle
	if heading.Level <= 2 {
		style = headingStyle
	}
	r.ensureBlankLine()
	r.flushBlock(style.Render(content))
	r.ensureBlankLine()
}

func (r *renderer) writeCodeBlock(node ast.Node) {
	var code strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		code.Write(seg.Value(r.source))
	}

	r.ensureBlankLine()
	for _, line := range strings.Split(strings.TrimRight(code.String(), "\n"), "\n") {
		r.write(r.prefix + "  " + codeStyle.Render(line) + "\n")
	}
	r.ensureBlankLine()
}

func (r *renderer) enterListItem() {
	if len(r.listStack) == 0 {
		return
	}
	top := &r.listStack[len(r.listStack)-1]

	bullet := "• "
	if top.ordered {
		bullet = fmt.Sprintf("%d. ", top.counter)
		top.counter++
	}

	top.itemIndent = lipgloss.Width(bullet)
	r.pendingBullet = r.prefix + bullet
	r.prefix += strings.Repeat(" ", top.itemIndent)
}

func (r *renderer) leaveListItem() {
	if len(r.listStack) == 0 {
		return
	}
	top := r.listStack[len(r.listStack)-1]

	r.prefix = r.prefix[:len(r.prefix)-top.itemIndent]
	r.pendingBullet = ""
	if !r.inTightList() {
		r.ensureBlankLine()
	}
}

func (r *renderer) inTightList() bool {
	if len(r.listStack) == 0 {
		return false
	}
	return r.listStack[len(r.listStack)-1].tight
}

func (r *renderer) writeTable(table *extast.Table) {
	var header []string
	var rows [][]string
	for child := table.FirstChild(); child != nil; child = child.NextSibling() {
		switch child.Kind() {
		case extast.KindTableHeader:
			header = r.collectRow(child)
		case extast.KindTableRow:
			rows = append(rows, r.collectRow(child))
		}
	}

	columns := len(header)
	if columns == 0 {
		return
	}

	widths := make([]int, columns)
	measure := func(row []string) {
		for i, cell := range row {
			if i < columns && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}
	measure(header)
	for _, row := range rows {
		measure(row)
	}

	pad := func(row []string) string {
		parts := make([]string, columns)
		for i := 0; i < columns; i++ {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			parts[i] = cell + strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
		}
		return strings.Join(parts, "  ")
	}

	r.ensureBlankLine()
	r.write(r.prefix + tableHeadBold.Render(pad(header)) + "\n")
	rule := make([]string, columns)
	for i, w := range widths {
		rule[i] = strings.Repeat("─", w)
	}
	r.write(r.prefix + ruleStyle.Render(strings.Join(rule, "  ")) + "\n")
	for _, row := range rows {
		r.write(r.prefix + pad(row) + "\n")
	}
	r.ensureBlankLine()
}

func (r *renderer) collectRow(row ast.Node) []string {
	var cells []string
	for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
		if cell.Kind() == extast.KindTableCell {
			cells = append(cells, r.childText(cell))
		}
	}
	return cells
}

// childText renders a node's inline children to a string without touching
// the caller's inline buffer.
func (r *renderer) childText(node ast.Node) string {
	saved := r.inline.String()
	r.inline.Reset()
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		_ = ast.Walk(child, r.walk)
	}
	result := r.inline.String()
	r.inline.Reset()
	r.inline.WriteString(saved)
	return result
}

// nodeText extracts raw source text from a node's text children.
func (r *renderer) nodeText(node ast.Node) string {
	var out strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch typed := child.(type) {
		case *ast.Text:
			out.Write(typed.Segment.Value(r.source))
		case *ast.String:
			out.Write(typed.Value)
		}
	}
	return out.String()
}

func (r *renderer) write(s string) {
	if s == "" {
		return
	}
	r.output.WriteString(s)

	trailing := 0
	allNewlines := true
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] != '\n' {
			allNewlines = false
			break
		}
		trailing++
	}
	if allNewlines {
		r.trailingNewlines += trailing
	} else {
		r.trailingNewlines = trailing
	}
}

func (r *renderer) ensureBlankLine() {
	for r.trailingNewlines < 2 {
		r.write("\n")
	}
}
