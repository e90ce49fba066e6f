// Package picocog assembles indented text for code generators.
//
// A [Writer] collects lines at a logical indentation level and renders the
// whole document to one flat string, so a generator never does its own
// indentation bookkeeping. Three capabilities cover most generated output:
// compound write-and-indent methods for block structure, deferred child
// writers for sections filled in out of order, and row batching for column
// alignment.
//
//	w := picocog.New()
//	w.WritelnR("func greet(name string) {")
//	w.Writelnf("fmt.Printf(%q, name)", "hello, %s\n")
//	w.WritelnL("}")
//	fmt.Print(w)
//
// # Lines and indentation
//
// [Writer.Writeln] commits one line at the current level. [Writer.Write]
// appends to a pending line that the next Writeln completes, for lines
// assembled piecewise. [Writer.IndentRight] and [Writer.IndentLeft] move
// the level by hand; the compound forms [Writer.WritelnR] (write, then
// indent), [Writer.WritelnL] (dedent, then write), and [Writer.WritelnLR]
// (dedent for one line) map to opening a block, closing a block, and
// "} else {" shapes.
//
// Each line records the level it was committed at. [Writer.Render] adds its
// indentBase argument on top of every recorded level, so a whole document
// can be shifted right when embedded in other output. The indent text
// defaults to [DefaultIndent]; [NewWithIndent] swaps in tabs or any other
// unit.
//
// Dedenting below level zero panics with an error wrapping
// [ErrInvalidIndentation]. It always means mismatched open/close calls in
// the generator and has to be fixed at the call site. No other operation
// can fail: empty strings, empty rows, and empty batches are all valid.
//
// # Deferred sections
//
// [Writer.CreateDeferredWriter] reserves a position in the output and hands
// back a child [Writer] for it. The generator keeps the child and fills it
// in whenever convenient — the classic case is an import block that is only
// known once the rest of the file has been written:
//
//	file := picocog.New()
//	file.Writeln("package main")
//	file.Writeln("")
//	imports := file.CreateDeferredWriter()
//	file.WritelnR("func main() {")
//	file.Writeln(`fmt.Println("hi")`) // the fmt dependency shows up here
//	file.WritelnL("}")
//	imports.Writeln(`import "fmt"`) // fill the reserved section last
//
// Pair a deferred writer with [Writer.SetGenerateIfEmpty] to drop sections
// that end up with no content, and [Writer.SetGenerate] to switch a section
// off wholesale.
//
// # Column alignment
//
// [Writer.WritelnRow] batches rows of columns. The batch commits as one
// group, every column right-padded with spaces to the widest value of its
// column across the batch:
//
//	w.WritelnRow("ID", " int64")
//	w.WritelnRow("CreatedAt", " time.Time")
//
// renders as
//
//	ID        int64
//	CreatedAt time.Time
//
// Columns are joined with no separator beyond the padding, so separators
// (here the space before the type) belong in the column text. The trailing
// column of a row pads to its column width like any other — the first line
// above ends in four spaces.
//
// # Rendering
//
// [Writer.Render] and [Writer.String] walk the fragment sequence in order,
// splicing each deferred child's output in at its reserved position.
// [Writer.WriteTo] hands the rendered text to an [io.Writer]; persisting it
// is the caller's business. Rendering commits pending state but is
// otherwise idempotent: rendering twice without writes in between returns
// the same string, and [Writer.IsEmpty] is unaffected.
//
// # Concurrency
//
// A Writer and its children form one mutable tree with no locking. Confine
// a tree to a single goroutine; concurrent use is undefined behavior.
package picocog
