// Package drawer derives the class state of the collapsible sidebar and its
// expandable menu items. Event handlers call these pure functions with the
// current class string and write back the result.
package drawer

import (
	"strings"

	"gitlab.com/tinyland/lab/charlotte/pkg/ident"
)

const (
	// BaseClass is the class list of an open drawer.
	BaseClass = "sidebar bg-shade0"
	// ClosedClass is appended to BaseClass while the drawer is collapsed.
	ClosedClass = "close"

	// ShowMenu and HideMenu are the two states of a multi item.
	ShowMenu = "showMenu"
	HideMenu = "hideMenu"

	// OpenTrigger is the id of the control that toggles the drawer.
	OpenTrigger = "open-drawer"
	// ID is the id of the drawer element itself.
	ID = "drawer"

	multiItemComponent = "DrawerMultiLi"
)

// Drawer is the open/closed state of the sidebar. The zero value is an open
// drawer with the default class list; New returns a closed one, which is how
// the drawer starts on page load.
type Drawer struct {
	base   string
	closed bool
}

// New returns a closed drawer. An empty base uses BaseClass.
func New(base string) Drawer {
	return Drawer{base: base, closed: true}
}

// Open reports whether the drawer is expanded.
func (d Drawer) Open() bool { return !d.closed }

// Toggle returns the drawer in the opposite state.
func (d Drawer) Toggle() Drawer {
	d.closed = !d.closed
	return d
}

// Class returns the class list for the current state.
func (d Drawer) Class() string {
	base := d.baseClass()
	if d.closed {
		return base + " " + ClosedClass
	}
	return base
}

func (d Drawer) baseClass() string {
	if d.base == "" {
		return BaseClass
	}
	return d.base
}

// ToggleClass maps the current drawer class to the next one: an open drawer
// (exactly base) closes, anything else opens.
func ToggleClass(base, current string) string {
	if base == "" {
		base = BaseClass
	}
	if strings.Join(strings.Fields(current), " ") == base {
		return base + " " + ClosedClass
	}
	return base
}

// MultiItem is a drawer entry with a sub-menu.
type MultiItem struct {
	Name     string
	Icon     string
	Submenu  []string
	Instance string
	expanded bool
}

// NewMultiItem returns a collapsed item. An empty instance gets a generated one.
func NewMultiItem(name, icon string, submenu []string, instance string) MultiItem {
	if instance == "" {
		instance = ident.NewInstance()
	}
	return MultiItem{
		Name:     name,
		Icon:     icon,
		Submenu:  append([]string(nil), submenu...),
		Instance: instance,
	}
}

// ItemID is the id of the list element whose class toggles.
func (m MultiItem) ItemID() ident.ID {
	return ident.New(multiItemComponent, "Li", m.Instance)
}

// ArrowID is the id of the chevron that triggers the toggle.
func (m MultiItem) ArrowID() ident.ID {
	return ident.New(multiItemComponent, "arrow", m.Instance)
}

// Expanded reports whether the sub-menu is shown.
func (m MultiItem) Expanded() bool { return m.expanded }

// Toggle returns the item in the opposite state.
func (m MultiItem) Toggle() MultiItem {
	m.expanded = !m.expanded
	return m
}

// Class returns ShowMenu or HideMenu.
func (m MultiItem) Class() string {
	if m.expanded {
		return ShowMenu
	}
	return HideMenu
}

// ToggleMenu maps the current item class to the next one.
func ToggleMenu(current string) string {
	if current == ShowMenu {
		return HideMenu
	}
	return ShowMenu
}

// ItemPattern matches the list element of every multi item, for handlers
// registered once for all instances.
func ItemPattern() ident.ID {
	return ident.ID{Component: multiItemComponent, Subcomponent: "Li", Instance: ident.Wildcard}
}

// ArrowPattern matches the chevron of every multi item.
func ArrowPattern() ident.ID {
	return ident.ID{Component: multiItemComponent, Subcomponent: "arrow", Instance: ident.Wildcard}
}
