package markup

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html/charset"
)

// Node is an element of a markup tree, or a text run when Name is empty.
type Node struct {
	Name     string
	Attrs    map[string]string
	Children []*Node
	Text     string // for text nodes only
}

// IsText returns true for the plain text nodes.
func (n *Node) IsText() bool { return n.Name == "" }

// Attr returns the trimmed value of the attribute name,
// or "" if it is missing.
func (n *Node) Attr(name string) string {
	if n == nil {
		return ""
	}
	return strings.TrimSpace(n.Attrs[name])
}

// HasAttr returns true if the attribute is present and not blank.
func (n *Node) HasAttr(name string) bool { return n.Attr(name) != "" }

// Content returns the concatenation of all the text nodes below n.
func (n *Node) Content() string {
	if n.IsText() {
		return n.Text
	}
	var sb strings.Builder
	n.writeContent(&sb)
	return sb.String()
}

func (n *Node) writeContent(sb *strings.Builder) {
	for _, c := range n.Children {
		if c.IsText() {
			sb.WriteString(c.Text)
		} else {
			c.writeContent(sb)
		}
	}
}

// Elements returns the element children of n, ignoring text.
func (n *Node) Elements() []*Node {
	var out []*Node
	for _, c := range n.Children {
		if !c.IsText() {
			out = append(out, c)
		}
	}
	return out
}

// Parse reads an XML fragment and returns its root element.
// Namespaces are dropped : only local names are kept.
// Comments, processing instructions and directives are ignored.
func Parse(stream io.Reader) (*Node, error) {
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	var (
		root  *Node
		stack []*Node
	)
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("%w: %s", ErrInvalidMarkup, err)
		}
		switch se := t.(type) {
		case xml.StartElement:
			node := &Node{Name: se.Name.Local, Attrs: make(map[string]string, len(se.Attr))}
			for _, attr := range se.Attr {
				node.Attrs[attr.Name.Local] = attr.Value
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: several root elements", ErrInvalidMarkup)
				}
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 { // whitespace around the root
				continue
			}
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, &Node{Text: string(se)})
		}
	}
	if root == nil {
		return nil, fmt.Errorf("%w: no element found", ErrInvalidMarkup)
	}
	return root, nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(s string) (*Node, error) {
	return Parse(strings.NewReader(s))
}

// ParseFile reads and parses the file at path.
func ParseFile(path string) (*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}
