package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests assert on structure and text content, not ANSI sequences: in a test
// environment without a TTY lipgloss degrades to plain output.

func TestRender_Empty(t *testing.T) {
	assert.Equal(t, "", Render("", 80))
	assert.Equal(t, "", Render("   \n\t\n", 80))
}

func TestRender_Paragraph_SoftBreaksReflow(t *testing.T) {
	source := "first part\nsecond part"

	got := Render(source, 80)

	assert.Contains(t, got, "first part second part", "single newlines inside a paragraph must become spaces")
}

func TestRender_Paragraph_WrapsToWidth(t *testing.T) {
	source := strings.Repeat("word ", 30)

	got := Render(source, 40)

	for _, line := range strings.Split(got, "\n") {
		assert.LessOrEqual(t, len(line), 40, "line %q exceeds the requested width", line)
	}
	assert.Greater(t, strings.Count(got, "\n"), 0, "long paragraph must wrap onto several lines")
}

func TestRender_Heading(t *testing.T) {
	got := Render("# Shopping list\n\nmilk and eggs", 80)

	assert.Contains(t, got, "Shopping list")
	assert.Contains(t, got, "milk and eggs")
}

func TestRender_UnorderedList(t *testing.T) {
	got := Render("- milk\n- eggs\n- bread", 80)

	assert.Contains(t, got, "• milk")
	assert.Contains(t, got, "• eggs")
	assert.Contains(t, got, "• bread")
}

func TestRender_OrderedList_KeepsNumbering(t *testing.T) {
	got := Render("1. first\n2. second\n3. third", 80)

	assert.Contains(t, got, "1. first")
	assert.Contains(t, got, "2. second")
	assert.Contains(t, got, "3. third")
}

func TestRender_NestedList_Indents(t *testing.T) {
	got := Render("- outer\n  - inner", 80)

	require.Contains(t, got, "• outer")
	assert.Contains(t, got, "  • inner")
}

func TestRender_FencedCodeBlock_PreservedVerbatim(t *testing.T) {
	source := "```\nfunc main() {\n\tprintln(\"hi\")\n}\n```"

	got := Render(source, 80)

	assert.Contains(t, got, "func main() {")
	assert.Contains(t, got, "println(\"hi\")")
}

func TestRender_Blockquote_Prefixed(t *testing.T) {
	got := Render("> quoted line", 80)

	assert.Contains(t, got, "│ quoted line")
}

func TestRender_TaskList(t *testing.T) {
	got := Render("- [x] done\n- [ ] pending", 80)

	assert.Contains(t, got, "[x]")
	assert.Contains(t, got, "done")
	assert.Contains(t, got, "[ ] pending")
}

func TestRender_Link_ShowsDestination(t *testing.T) {
	got := Render("see [the docs](https://example.com/docs)", 80)

	assert.Contains(t, got, "the docs")
	assert.Contains(t, got, "(https://example.com/docs)")
}

func TestRender_Table(t *testing.T) {
	source := "| Name | Qty |\n| --- | --- |\n| milk | 2 |\n| eggs | 12 |"

	got := Render(source, 80)

	assert.Contains(t, got, "Name")
	assert.Contains(t, got, "milk")
	assert.Contains(t, got, "12")
	assert.Contains(t, got, "─", "table header must be underlined")
}

func TestRender_ThematicBreak(t *testing.T) {
	got := Render("above\n\n---\n\nbelow", 40)

	assert.Contains(t, got, strings.Repeat("─", 40))
}

func TestRender_TinyWidth_DoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		Render("# heading\n\nsome paragraph text that is long enough to wrap", 1)
	})
}
