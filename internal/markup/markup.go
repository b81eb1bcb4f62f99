// Package markup extracts ordered text content from the XHTML specification
// document. Two views are provided: Lines flattens the body into the reading
// order the method segmenter expects, and Blocks walks every element so the
// table parsers can track heading context.
package markup

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/keibalab/jvspec/internal/normalize"
)

// Block is one element of the document body in pre-order. Text is the
// concatenation of all nested text, normalized. Rows is populated for table
// blocks only: one slice per descendant row, header cells (th) before data
// cells (td), each cell's text nodes joined by single spaces.
type Block struct {
	Tag  string
	Text string
	Rows [][]string
}

// Document is a parsed specification document.
type Document struct {
	body *html.Node
}

// ParseFile reads and parses the document at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()
	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

// Parse parses a document from r.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &Document{body: findElement(root, "body")}, nil
}

// Lines flattens the document body into ordered non-empty text lines:
// headings become #-prefixed lines, paragraphs and list items pass through
// verbatim, and tables contribute one line per row with cells joined by
// " | ". The walk visits every element, so content nested inside table
// cells also appears on its own.
func (d *Document) Lines() []string {
	var lines []string
	if d.body == nil {
		return lines
	}
	walkElements(d.body, func(n *html.Node) {
		switch n.Data {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			if heading := normalize.Text(textContent(n)); heading != "" {
				level := int(n.Data[1] - '0')
				lines = append(lines, strings.Repeat("#", level)+" "+heading)
			}
		case "p", "li":
			if content := normalize.Text(textContent(n)); content != "" {
				lines = append(lines, content)
			}
		case "table":
			for _, tr := range descendants(n, "tr") {
				var cells []string
				for _, cell := range append(childElements(tr, "td"), childElements(tr, "th")...) {
					cells = append(cells, normalize.Text(textContent(cell)))
				}
				if len(cells) > 0 {
					lines = append(lines, strings.Join(cells, " | "))
				}
			}
		}
	})
	out := lines[:0]
	for _, line := range lines {
		if line = normalize.Text(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Blocks returns every element of the body in pre-order.
func (d *Document) Blocks() []Block {
	var blocks []Block
	if d.body == nil {
		return blocks
	}
	walkElements(d.body, func(n *html.Node) {
		b := Block{Tag: n.Data, Text: normalize.Text(textContent(n))}
		if n.Data == "table" {
			b.Rows = tableRows(n)
		}
		blocks = append(blocks, b)
	})
	return blocks
}

// Tables returns the row grids of every table in the body, in document order.
func (d *Document) Tables() [][][]string {
	var tables [][][]string
	if d.body == nil {
		return tables
	}
	walkElements(d.body, func(n *html.Node) {
		if n.Data == "table" {
			tables = append(tables, tableRows(n))
		}
	})
	return tables
}

func tableRows(table *html.Node) [][]string {
	var rows [][]string
	for _, tr := range descendants(table, "tr") {
		var row []string
		for _, cell := range append(childElements(tr, "th"), childElements(tr, "td")...) {
			row = append(row, normalize.Text(strings.Join(textParts(cell), " ")))
		}
		rows = append(rows, row)
	}
	return rows
}

// walkElements visits every element under root in pre-order, root excluded.
func walkElements(root *html.Node, visit func(*html.Node)) {
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			visit(c)
		}
		walkElements(c, visit)
	}
}

// textContent concatenates all text beneath n in document order.
func textContent(n *html.Node) string {
	return strings.Join(textParts(n), "")
}

// textParts collects the non-empty text nodes beneath n in document order.
func textParts(n *html.Node) []string {
	var parts []string
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode && node.Data != "" {
			parts = append(parts, node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return parts
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func descendants(n *html.Node, tag string) []*html.Node {
	var nodes []*html.Node
	walkElements(n, func(c *html.Node) {
		if c.Data == tag {
			nodes = append(nodes, c)
		}
	})
	return nodes
}

func childElements(n *html.Node, tag string) []*html.Node {
	var nodes []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			nodes = append(nodes, c)
		}
	}
	return nodes
}
