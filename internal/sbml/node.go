package sbml

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/gemstack/gemkit/model"
)

type (
	// Node wraps the external parser's element tree with namespace-tolerant
	// navigation helpers.  The loader never touches bytes: etree parses the
	// document and everything above works on Nodes.
	Node struct {
		*etree.Element
	}
)

// FromElement wraps an etree element.
func FromElement(element *etree.Element) *Node {
	return &Node{Element: element}
}

// Name returns the element's local name, without any namespace prefix.
func (n *Node) Name() string {
	return n.Tag
}

// AttrValue returns the value of the attribute with the given local name,
// irrespective of its namespace prefix.
func (n *Node) AttrValue(name string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key == name {
			return attr.Value, true
		}
	}
	return "", false
}

// AttrOrDefault returns the attribute value or the supplied default.
func (n *Node) AttrOrDefault(name, defaultValue string) string {
	if value, ok := n.AttrValue(name); ok {
		return value
	}
	return defaultValue
}

// RequiredAttr returns the attribute value or an error naming the element
// and the missing attribute.
func (n *Node) RequiredAttr(name string) (string, error) {
	value, ok := n.AttrValue(name)
	if !ok {
		return "", fmt.Errorf("element %s: missing required attribute %q", n.Tag, name)
	}
	return value, nil
}

// BoolAttr parses a boolean attribute, returning defaultValue when absent.
func (n *Node) BoolAttr(name string, defaultValue bool) (bool, error) {
	text, ok := n.AttrValue(name)
	if !ok {
		return defaultValue, nil
	}
	value, err := strconv.ParseBool(text)
	if err != nil {
		return false, fmt.Errorf("element %s: attribute %q is not a boolean: %q", n.Tag, name, text)
	}
	return value, nil
}

// FloatAttr parses a numeric attribute accepting the INF and -INF literal
// tokens as exact IEEE infinities.
func (n *Node) FloatAttr(name string) (float64, bool, error) {
	text, ok := n.AttrValue(name)
	if !ok {
		return 0, false, nil
	}
	value, err := model.ParseValue(text)
	if err != nil {
		return 0, true, fmt.Errorf("element %s: attribute %q: %w", n.Tag, name, err)
	}
	return value, true, nil
}

// IntAttr parses an integer attribute, returning defaultValue when absent.
func (n *Node) IntAttr(name string, defaultValue int) (int, error) {
	text, ok := n.AttrValue(name)
	if !ok {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("element %s: attribute %q is not an integer: %q", n.Tag, name, text)
	}
	return value, nil
}

// Child returns the first child element with the given local name or nil.
func (n *Node) Child(local string) *Node {
	for _, child := range n.Element.ChildElements() {
		if child.Tag == local {
			return &Node{Element: child}
		}
	}
	return nil
}

// Children returns all child elements, filtered by local name unless local
// is empty.
func (n *Node) Children(local string) []*Node {
	var ret []*Node
	for _, child := range n.Element.ChildElements() {
		if local == "" || child.Tag == local {
			ret = append(ret, &Node{Element: child})
		}
	}
	return ret
}

// Items invokes the callback for every child element in document order.
func (n *Node) Items(callback func(index int, node *Node) error) error {
	for i, child := range n.Element.ChildElements() {
		if err := callback(i, &Node{Element: child}); err != nil {
			return err
		}
	}
	return nil
}
