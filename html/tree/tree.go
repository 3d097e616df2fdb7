// Package tree parses HTML fixtures and computes the style
// of each element from its inline "style" attribute.
package tree

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	pr "github.com/benoitkugler/gridlayout/css/properties"
	"github.com/benoitkugler/gridlayout/logger"
)

// Document is a parsed HTML document, with computed styles.
type Document struct {
	// Root is the <html> element.
	Root *Element
}

// Element is an HTML element with its computed style.
// Text and comment nodes are not represented, but are still
// accessible through [Node].
type Element struct {
	Node     *html.Node
	Tag      string
	Parent   *Element
	Children []*Element
	Style    pr.Properties
}

// Get returns the value of the attribute `name`, or an empty string.
func (e *Element) Get(name string) string {
	for _, attr := range e.Node.Attr {
		if attr.Key == name {
			return attr.Val
		}
	}
	return ""
}

// Has returns true if the attribute `name` is present.
func (e *Element) Has(name string) bool {
	for _, attr := range e.Node.Attr {
		if attr.Key == name {
			return true
		}
	}
	return false
}

// ID returns the "id" attribute.
func (e *Element) ID() string { return e.Get("id") }

// Text returns the concatenated text content of the element.
func (e *Element) Text() string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.Node)
	return b.String()
}

// Find returns the first element (in tree order) whose id is `id`,
// or nil.
func (e *Element) Find(id string) *Element {
	if e.ID() == id {
		return e
	}
	for _, child := range e.Children {
		if found := child.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// Body returns the <body> element, or the root if not found.
func (d *Document) Body() *Element {
	for _, child := range d.Root.Children {
		if child.Tag == "body" {
			return child
		}
	}
	return d.Root
}

// Parse reads an HTML document and computes the style of its elements.
// Invalid style declarations are dropped and reported with [logger.WarningLogger].
func Parse(r io.Reader) (*Document, error) {
	logger.ProgressLogger.Println("Step 1 - Parsing HTML")

	root, err := html.ParseWithOptions(r, html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, fmt.Errorf("invalid html input: %w", err)
	}
	// html.Parse wraps the <html> tag
	node := root.FirstChild
	for node != nil && node.Type != html.ElementNode {
		node = node.NextSibling
	}
	if node == nil {
		return nil, fmt.Errorf("invalid html input: missing root element")
	}

	logger.ProgressLogger.Println("Step 2 - Computing styles")
	return &Document{Root: buildElement(node, nil)}, nil
}

// ParseString is a convenience wrapper around [Parse].
func ParseString(content string) (*Document, error) {
	return Parse(strings.NewReader(content))
}

func buildElement(node *html.Node, parent *Element) *Element {
	out := &Element{Node: node, Tag: node.Data, Parent: parent}
	var parentStyle pr.Properties
	if parent != nil {
		parentStyle = parent.Style
	}
	out.Style = computeStyle(out, parentStyle)
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode {
			continue
		}
		out.Children = append(out.Children, buildElement(child, out))
	}
	return out
}
