package menu

import "fmt"

// Data is the field map a menu node is built from.
type Data map[string]any

// Node is one entry in a menu tree, keyed by its identifier.
type Node interface {
	ID() string
}

// Tree is a menu structure that accepts new child nodes.
type Tree interface {
	AddChild(node Node)
}

// NodeFactory builds nodes compatible with a given tree.
type NodeFactory interface {
	// Create builds a node from data. idField names the key in data that holds
	// the node identifier.
	Create(data Data, idField string, tree Tree) Node
}

// NodeFactoryFunc adapts a function to the NodeFactory interface.
type NodeFactoryFunc func(data Data, idField string, tree Tree) Node

// Create calls f(data, idField, tree).
func (f NodeFactoryFunc) Create(data Data, idField string, tree Tree) Node {
	return f(data, idField, tree)
}

// Item represents an individual item in the menu, which may contain sub-items.
type Item struct {
	// Key is the identifier of the item, unique within the menu by convention.
	Key string `json:"id"`

	// Name is the display name of the item.
	Name string `json:"name"`

	// URL is the link target of the item.
	URL string `json:"url,omitempty"`

	// HasActive is set when a descendant of this item is the current page.
	HasActive bool `json:"has_active"`

	// IsActive is set when this item is the current page.
	IsActive bool `json:"is_active"`

	// Items are the sub-items of this item.
	Items []*Item `json:"items,omitempty"`
}

// ID returns the item identifier.
func (i *Item) ID() string {
	return i.Key
}

// AddChild appends node to the item's sub-items.
// Nodes that are not *Item are ignored.
func (i *Item) AddChild(node Node) {
	if it, ok := node.(*Item); ok {
		i.Items = append(i.Items, it)
	}
}

// ItemFactory is the NodeFactory for the in-memory menu.
var ItemFactory NodeFactory = NodeFactoryFunc(NewItem)

// NewItem builds an *Item from data. Missing keys leave the zero value.
// The tree argument is accepted for NodeFactory compatibility; the item is not
// attached to it.
func NewItem(data Data, idField string, _ Tree) Node {
	return &Item{
		Key:       stringField(data, idField),
		Name:      stringField(data, "name"),
		URL:       stringField(data, "url"),
		HasActive: boolField(data, "has_active"),
		IsActive:  boolField(data, "is_active"),
	}
}

func stringField(data Data, key string) string {
	v, ok := data[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func boolField(data Data, key string) bool {
	b, _ := data[key].(bool)
	return b
}
