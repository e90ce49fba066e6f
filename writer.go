package picocog

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInvalidIndentation is the package's only failure: an indent-left,
// direct or folded into a compound write, that would take the indentation
// level below zero. The offending method panics with an error wrapping it
// and leaves the level unchanged.
var ErrInvalidIndentation = errors.New("invalid indentation")

// DefaultIndent is the indentation text used by [New]: three spaces,
// emitted once per indentation level.
const DefaultIndent = "   "

const lineSep = "\n"

// Writer assembles indented text line by line and renders it to one flat
// string. Lines commit at the writer's current indentation level, deferred
// child writers reserve positions that are filled in later, and batched
// rows commit with their columns aligned.
//
// A Writer holds two kinds of pending state ahead of its committed
// fragments: raw text accumulated by [Writer.Write], and the row batch
// accumulated by [Writer.WritelnRow]. Pending state commits when an
// operation needs the content order locked in, and at the latest when
// rendering starts.
//
// A Writer is not safe for concurrent use; confine a writer tree to one
// goroutine.
type Writer struct {
	indents  int
	numLines int

	generate        bool
	generateIfEmpty bool

	dirty   bool
	pending strings.Builder
	rows    [][]string
	content []fragment

	ic string // indent text, emitted once per level
}

// New returns an empty writer at indentation level zero using
// [DefaultIndent].
func New() *Writer {
	return NewWithIndent(DefaultIndent)
}

// NewWithIndent returns an empty writer at indentation level zero that
// emits ic once per level. An empty ic renders every line flush left.
func NewWithIndent(ic string) *Writer {
	return &Writer{
		generate:        true,
		generateIfEmpty: true,
		ic:              ic,
	}
}

func newChild(indents int, ic string) *Writer {
	w := NewWithIndent(ic)
	w.indents = indents
	return w
}

// Write appends s to the pending line without committing it, so one line
// can be assembled across several calls. The next [Writer.Writeln]
// completes the line; rendering commits a still-pending line as is.
func (w *Writer) Write(s string) *Writer {
	w.numLines++
	w.dirty = true
	w.pending.WriteString(s)
	return w
}

// Writef appends fmt-formatted text to the pending line.
func (w *Writer) Writef(format string, args ...any) *Writer {
	return w.Write(fmt.Sprintf(format, args...))
}

// Writeln commits one line at the current indentation level: any pending
// row batch resolves first, then the pending text followed by s becomes the
// line. The line is fully committed when Writeln returns.
func (w *Writer) Writeln(s string) *Writer {
	w.numLines++
	w.pending.WriteString(s)
	w.flush()
	return w
}

// Writelnf commits one fmt-formatted line via [Writer.Writeln].
func (w *Writer) Writelnf(format string, args ...any) *Writer {
	return w.Writeln(fmt.Sprintf(format, args...))
}

// WritelnRow adds one row of columns to the pending row batch. The batch
// commits as a group — on the next [Writer.Writeln], deferred-writer
// creation, or render — with every column right-padded by spaces to the
// widest value of its column across the batch, the trailing column
// included. Columns are joined with no separator beyond the padding;
// separators belong in the column text itself. An empty string still holds
// its column's width, so later columns stay aligned.
//
// Rows commit at the indentation level current when the batch flushes.
func (w *Writer) WritelnRow(columns ...string) *Writer {
	w.rows = append(w.rows, columns)
	w.dirty = true
	w.numLines++
	return w
}

// WritelnR commits s via [Writer.Writeln] and indents right, the shape of
// opening a block:
//
//	w.WritelnR("if ok {")
func (w *Writer) WritelnR(s string) *Writer {
	w.Writeln(s)
	w.IndentRight()
	return w
}

// WritelnL commits the pending row batch at the current level, dedents,
// then commits s via [Writer.Writeln], the shape of closing a block. Like
// [Writer.IndentLeft] it panics when the level is already zero.
func (w *Writer) WritelnL(s string) *Writer {
	w.flushRows()
	w.IndentLeft()
	w.Writeln(s)
	return w
}

// WritelnLR commits s one level left of the surrounding block and restores
// the level, the shape of a "} else {" line between two block bodies.
func (w *Writer) WritelnLR(s string) *Writer {
	w.flushRows()
	w.IndentLeft()
	w.Writeln(s)
	w.IndentRight()
	return w
}

// IndentRight moves subsequent commits one indentation level deeper.
func (w *Writer) IndentRight() {
	w.indents++
}

// IndentLeft moves subsequent commits one indentation level shallower. It
// panics with an error wrapping [ErrInvalidIndentation] when the level is
// already zero, leaving the level unchanged; hitting it means the
// generator's open and close calls are mismatched.
func (w *Writer) IndentLeft() {
	if w.indents == 0 {
		panic(fmt.Errorf("%w: indent level cannot drop below zero", ErrInvalidIndentation))
	}
	w.indents--
}

// CreateDeferredWriter reserves the current position in the content
// sequence and returns a child writer that renders there. The child starts
// at this writer's current indentation level and indent text. Content
// written to the child at any later time still renders at the reserved
// position — how sections like import blocks get filled in after the code
// that needs them has been generated.
//
// Any pending state commits first, so content written before the
// reservation renders before the child.
func (w *Writer) CreateDeferredWriter() *Writer {
	if w.dirty {
		w.flush()
		w.numLines++
	}
	inner := newChild(w.indents, w.ic)
	w.content = append(w.content, inner)
	w.numLines++
	return inner
}

// SetGenerate controls whether the writer renders at all. When generate is
// false the writer and everything nested in it render to nothing.
func (w *Writer) SetGenerate(generate bool) {
	w.generate = generate
}

// Generate reports whether the writer renders. It defaults to true.
func (w *Writer) Generate() bool {
	return w.generate
}

// SetGenerateIfEmpty controls whether the writer renders when it holds no
// content. When false, a writer with no committed fragments and no pending
// text renders to nothing, so deferred sections that were never filled in
// disappear from the output.
func (w *Writer) SetGenerateIfEmpty(generateIfEmpty bool) {
	w.generateIfEmpty = generateIfEmpty
}

// GenerateIfEmpty reports whether the writer renders when it holds no
// content. It defaults to true.
func (w *Writer) GenerateIfEmpty() bool {
	return w.generateIfEmpty
}

// IsEmpty reports whether the writer has never been written to. Pending
// content counts as written: a writer that has only seen [Writer.Write] or
// [Writer.WritelnRow] calls is not empty.
func (w *Writer) IsEmpty() bool {
	return w.numLines == 0
}

// flush commits all pending state: the row batch resolves to aligned lines
// first, then the pending text — even when empty — becomes one more line at
// the current indentation level. Both buffers clear.
func (w *Writer) flush() {
	w.flushRows()
	w.content = append(w.content, line{text: w.pending.String(), indent: w.indents})
	w.pending.Reset()
	w.dirty = false
}

// flushRows commits the pending row batch as column-aligned lines at the
// current indentation level. The pending text buffer is untouched.
func (w *Writer) flushRows() {
	if len(w.rows) == 0 {
		return
	}
	for _, text := range alignRows(w.rows) {
		w.content = append(w.content, line{text: text, indent: w.indents})
	}
	w.rows = w.rows[:0]
}

// Render commits any pending state and returns the assembled text, each
// line prefixed by its recorded level plus indentBase repetitions of the
// indent text. Rendering twice without writes in between returns the same
// string.
func (w *Writer) Render(indentBase int) string {
	var sb strings.Builder
	w.render(&sb, indentBase)
	return sb.String()
}

// String renders the assembled text at indentation base zero.
func (w *Writer) String() string {
	return w.Render(0)
}

// WriteTo renders the assembled text at indentation base zero and writes it
// to dst. It implements [io.WriterTo].
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	n, err := io.WriteString(dst, w.Render(0))
	return int64(n), err
}

func (w *Writer) render(sb *strings.Builder, indentBase int) {
	if w.dirty {
		w.flush()
	}
	if !w.generate || (!w.generateIfEmpty && w.bodyEmpty()) {
		return
	}
	for _, item := range w.content {
		switch item := item.(type) {
		case line:
			for range indentBase + item.indent {
				sb.WriteString(w.ic)
			}
			sb.WriteString(item.text)
			sb.WriteString(lineSep)
		case *Writer:
			item.render(sb, indentBase)
		}
	}
}

// bodyEmpty reports whether nothing is committed or buffered as pending
// text. render consults it after flushing, when any pending rows have
// already become content.
func (w *Writer) bodyEmpty() bool {
	return len(w.content) == 0 && w.pending.Len() == 0
}
