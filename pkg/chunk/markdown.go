package chunk

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	gmext "github.com/yuin/goldmark/extension"
)

// MarkdownChunker splits markdown source into structural chunks annotated
// with the heading path active at the point each chunk ends, per the
// segmentation policy: a block-ending event finalizes the current block; a
// Heading both finalizes what came before it and emits its own title as a
// chunk while updating the heading stack; a thematic break finalizes but
// emits nothing.
//
// Parsing goes through goldmark's AST (with the GFM extension so tables are
// recognized) rather than a hand-rolled scanner.
type MarkdownChunker struct {
	tokenizer Tokenizer
	md        goldmark.Markdown
}

// MarkdownOption configures a MarkdownChunker.
type MarkdownOption func(*MarkdownChunker)

// WithTokenizer injects a token counter. When absent, TokenCount is left nil
// on every emitted chunk.
func WithTokenizer(t Tokenizer) MarkdownOption {
	return func(c *MarkdownChunker) {
		c.tokenizer = t
	}
}

// NewMarkdownChunker creates a markdown chunker.
func NewMarkdownChunker(opts ...MarkdownOption) *MarkdownChunker {
	c := &MarkdownChunker{
		md: goldmark.New(goldmark.WithExtensions(gmext.GFM)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type headingEntry struct {
	level int
	title string
}

// Chunk implements Chunker.
func (c *MarkdownChunker) Chunk(source string) []ChunkData {
	src := []byte(source)
	doc := c.md.Parser().Parse(text.NewReader(src))

	var chunks []ChunkData
	var stack []headingEntry

	headingPath := func() string {
		titles := make([]string, len(stack))
		for i, e := range stack {
			titles[i] = e.title
		}
		return strings.Join(titles, " > ")
	}

	emit := func(start, end int) {
		if start >= end {
			return
		}
		txt := string(src[start:end])
		if strings.TrimSpace(txt) == "" {
			return
		}
		cd := ChunkData{Start: start, End: end, HeadingPath: headingPath()}
		if c.tokenizer != nil {
			n := c.tokenizer.Count(txt)
			cd.TokenCount = &n
		}
		chunks = append(chunks, cd)
	}

	var walk func(n ast.Node)
	walk = func(n ast.Node) {
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			switch node := child.(type) {
			case *ast.Heading:
				start, end, ok := lineSpan(node)
				title := ""
				if ok {
					title = strings.TrimSpace(string(src[start:end]))
				}
				for len(stack) > 0 && stack[len(stack)-1].level >= node.Level {
					stack = stack[:len(stack)-1]
				}
				stack = append(stack, headingEntry{level: node.Level, title: title})
				if ok {
					emit(start, end)
				}
			case *ast.ThematicBreak:
				// finalizes the preceding block; nothing of its own to emit.
			case *east.Table:
				if start, end, ok := subtreeSpan(node); ok {
					emit(start, end)
				}
			case *ast.List, *ast.ListItem, *ast.Blockquote:
				walk(node)
			default:
				if start, end, ok := lineSpan(node); ok {
					emit(start, end)
				} else {
					walk(node)
				}
			}
		}
	}
	walk(doc)

	return chunks
}

type linedNode interface {
	Lines() *text.Segments
}

// lineSpan returns the byte range spanned by a node's own source lines, if
// it is a leaf block that tracks them directly.
func lineSpan(n ast.Node) (start, end int, ok bool) {
	ln, isLined := n.(linedNode)
	if !isLined {
		return 0, 0, false
	}
	segs := ln.Lines()
	if segs == nil || segs.Len() == 0 {
		return 0, 0, false
	}
	first := segs.At(0)
	last := segs.At(segs.Len() - 1)
	return first.Start, last.Stop, true
}

// subtreeSpan computes the overall byte range covered by a subtree by
// taking the min/max over every descendant's source position. Used for
// container nodes (tables) that should be chunked as a single unit. Table
// cells hold their text as inline segments rather than block lines, so
// both are considered.
func subtreeSpan(n ast.Node) (start, end int, ok bool) {
	start, end = -1, -1
	widen := func(s, e int) {
		if start == -1 || s < start {
			start = s
		}
		if end == -1 || e > end {
			end = e
		}
	}
	var visit func(ast.Node)
	visit = func(node ast.Node) {
		if s, e, lok := lineSpan(node); lok {
			widen(s, e)
		}
		if txt, isText := node.(*ast.Text); isText {
			widen(txt.Segment.Start, txt.Segment.Stop)
		}
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			visit(c)
		}
	}
	visit(n)
	return start, end, start != -1 && end != -1
}
