package picocog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnWidths(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		rows [][]string
		want []int
	}{
		"basic":        {rows: [][]string{{"a", "bb"}, {"ccc", "d"}}, want: []int{3, 2}},
		"ragged":       {rows: [][]string{{"a"}, {"bb", "c", "dddd"}}, want: []int{2, 1, 4}},
		"empty cell":   {rows: [][]string{{"", "x"}}, want: []int{0, 1}},
		"wide runes":   {rows: [][]string{{"你好"}, {"abc"}}, want: []int{4}},
		"single row":   {rows: [][]string{{"only"}}, want: []int{4}},
		"empty rowset": {rows: nil, want: nil},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, columnWidths(tt.rows))
		})
	}
}

func TestAlignRows(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		rows [][]string
		want []string
	}{
		"trailing column padded": {
			rows: [][]string{{"a", "bb"}, {"ccc", "d"}},
			want: []string{"a  bb", "cccd "},
		},
		"short row stops early": {
			rows: [][]string{{"a", "b", "c"}, {"dd"}},
			want: []string{"a bc", "dd"},
		},
		"wide runes pad by display width": {
			rows: [][]string{{"你好", "x"}, {"go", "y"}},
			want: []string{"你好x", "go  y"},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, alignRows(tt.rows))
		})
	}
}

func TestPadRight(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab  ", padRight("ab", 4))
	assert.Equal(t, "ab", padRight("ab", 2))
	assert.Equal(t, "abc", padRight("abc", 2))
	assert.Equal(t, "", padRight("", 0))
	// "你" occupies two display cells, so one space reaches width three.
	assert.Equal(t, "你 ", padRight("你", 3))
}

func TestFlushCommitsRowsBeforePendingText(t *testing.T) {
	t.Parallel()
	w := New()
	w.Write("text")
	w.WritelnRow("r")
	w.flush()
	assert.Equal(t, []fragment{
		line{text: "r"},
		line{text: "text"},
	}, w.content)
}

func TestFlushCommitsEmptyPendingAsBlankLine(t *testing.T) {
	t.Parallel()
	w := New()
	w.WritelnRow("k", "v")
	w.flush()
	assert.Equal(t, []fragment{line{text: "kv"}, line{}}, w.content)
	assert.False(t, w.dirty)
	assert.Zero(t, w.pending.Len())
}

func TestFlushRowsLeavesPendingText(t *testing.T) {
	t.Parallel()
	w := New()
	w.Write("pending")
	w.WritelnRow("row")
	w.flushRows()
	assert.Equal(t, []fragment{line{text: "row"}}, w.content)
	assert.Equal(t, "pending", w.pending.String())
	assert.True(t, w.dirty)
	assert.Empty(t, w.rows)
}

func TestFlushRecordsCurrentLevel(t *testing.T) {
	t.Parallel()
	w := New()
	w.Write("x")
	w.IndentRight()
	w.IndentRight()
	w.flush()
	assert.Equal(t, []fragment{line{text: "x", indent: 2}}, w.content)
}

func TestDirtyTransitions(t *testing.T) {
	t.Parallel()
	w := New()
	assert.False(t, w.dirty)
	w.Write("a")
	assert.True(t, w.dirty)
	w.flush()
	assert.False(t, w.dirty)
	w.WritelnRow("b")
	assert.True(t, w.dirty)
	w.Writeln("c")
	assert.False(t, w.dirty)
}

func TestCreateDeferredWriterAppendsChild(t *testing.T) {
	t.Parallel()
	w := New()
	child := w.CreateDeferredWriter()
	assert.Len(t, w.content, 1)
	assert.Same(t, child, w.content[0])
}

func TestCreateDeferredWriterCommitsDirtyState(t *testing.T) {
	t.Parallel()
	w := New()
	w.Write("before")
	child := w.CreateDeferredWriter()
	assert.Len(t, w.content, 2)
	assert.Equal(t, line{text: "before"}, w.content[0])
	assert.Same(t, child, w.content[1])
	assert.False(t, w.dirty)
}

func TestChildInheritsLevelAndIndentText(t *testing.T) {
	t.Parallel()
	w := NewWithIndent("\t")
	w.IndentRight()
	child := w.CreateDeferredWriter()
	assert.Equal(t, 1, child.indents)
	assert.Equal(t, "\t", child.ic)
	assert.True(t, child.generate)
	assert.True(t, child.generateIfEmpty)
}

func TestNumLinesCounting(t *testing.T) {
	t.Parallel()
	w := New()
	assert.Zero(t, w.numLines)
	w.Write("a")
	w.Writeln("b")
	w.WritelnRow("c")
	// Deferred creation flushes the dirty batch (one extra line) and then
	// counts the reservation itself.
	w.CreateDeferredWriter()
	assert.Equal(t, 5, w.numLines)
}

func TestBodyEmpty(t *testing.T) {
	t.Parallel()
	w := New()
	assert.True(t, w.bodyEmpty())
	w.Write("x")
	assert.False(t, w.bodyEmpty())

	// Pending rows alone don't count; they commit before render consults
	// bodyEmpty.
	w2 := New()
	w2.WritelnRow("r")
	assert.True(t, w2.bodyEmpty())
	w2.flush()
	assert.False(t, w2.bodyEmpty())
}
