// This package defines the types needed to handle the CSS properties
// involved in grid layout.
//
// Style computation is done in two steps :
//
//	[]parser.Token (validation)-> DeclaredValue (cascade, tree package)-> CssProperty
package properties

import (
	"github.com/benoitkugler/gridlayout/utils"
)

type Fl = utils.Fl

// DeclaredValue is the most general CSS input for a property,
// one of:
//   - the special "initial" or "inherit" keywords.
//   - a validated [CssProperty]
type DeclaredValue interface {
	isDeclaredValue()
}

func (DefaultValue) isDeclaredValue() {}

// CssProperty is the final form of a css input, a.k.a. the computed value.
type CssProperty interface {
	DeclaredValue

	isCssProperty()
}

type DefaultValue uint8

const (
	Inherit DefaultValue = iota + 1
	Initial
)

func NewDefaultValue(s string) DefaultValue {
	if s == "initial" {
		return Initial
	}
	return Inherit
}

func (d DefaultValue) String() string {
	switch d {
	case Inherit:
		return "<inherit>"
	case Initial:
		return "<initial>"
	default:
		return "invalid value"
	}
}

// KnownProp efficiently encode a known CSS property
type KnownProp uint8

func (p KnownProp) String() string { return propsNames[p] }

// IsInherited returns true for properties inherited
// by default.
func (p KnownProp) IsInherited() bool { return Inherited.Has(p) }

// Properties is a general container for computed properties.
//
// In addition to the generic acces, an attempt to provide a "type safe" way is provided through the
// GetXXX and SetXXX methods. It relies on the convention than all the keys should be present,
// and values never be nil.
type Properties map[KnownProp]CssProperty

// Copy return a shallow copy.
func (p Properties) Copy() Properties {
	out := make(Properties, len(p))
	for name, v := range p {
		out[name] = v
	}
	return out
}

// UpdateWith merge the entries from `other` to `p`.
func (p Properties) UpdateWith(other Properties) {
	for k, v := range other {
		p[k] = v
	}
}

// PropSet is a set of properties.
type PropSet map[KnownProp]struct{}

func NewPropSet(props ...KnownProp) PropSet {
	out := make(PropSet, len(props))
	for _, p := range props {
		out[p] = utils.Has
	}
	return out
}

func (ps PropSet) Has(p KnownProp) bool {
	_, has := ps[p]
	return has
}

var _ StyleAccessor = Properties(nil)
