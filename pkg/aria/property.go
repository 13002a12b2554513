package aria

// Property identifies an accessibility property: a descriptive attribute of
// an element that changes less often than a state, such as a label or a
// position in a set.
type Property int

// PropertyNone is the reserved sentinel for "no property". It has no
// descriptor and must never be passed to the collection or default lookup
// functions.
const PropertyNone Property = -1

const (
	// PropertyActiveDescendant identifies the currently active element when
	// focus is on a composite widget. Value type: reference.
	PropertyActiveDescendant Property = iota
	// PropertyAutocomplete indicates whether and how input completion is
	// offered. Value type: Autocomplete token.
	PropertyAutocomplete
	// PropertyControls identifies the element whose contents are controlled
	// by this one. Value type: reference.
	PropertyControls
	// PropertyDescribedBy identifies the element that describes this one.
	// Value type: reference.
	PropertyDescribedBy
	// PropertyFlowTo identifies the next element in an alternate reading
	// order. Value type: reference.
	PropertyFlowTo
	// PropertyHasPopup indicates the element can trigger a popup.
	// Value type: boolean.
	PropertyHasPopup
	// PropertyLabel is the string label describing the element.
	// Value type: string.
	PropertyLabel
	// PropertyLabelledBy identifies the element that labels this one.
	// Value type: reference.
	PropertyLabelledBy
	// PropertyLevel is the hierarchical level of the element.
	// Value type: integer.
	PropertyLevel
	// PropertyMultiLine indicates a text box accepts multiple lines.
	// Value type: boolean.
	PropertyMultiLine
	// PropertyMultiSelectable indicates more than one item can be selected.
	// Value type: boolean.
	PropertyMultiSelectable
	// PropertyOrientation indicates the element's orientation.
	// Value type: Orientation token.
	PropertyOrientation
	// PropertyOwns identifies elements owned by this one when the ownership
	// is not reflected in the hierarchy. Value type: reference.
	PropertyOwns
	// PropertyPosInSet is the element's position in the current set.
	// Value type: integer.
	PropertyPosInSet
	// PropertyReadOnly indicates the element is not editable.
	// Value type: boolean.
	PropertyReadOnly
	// PropertyRelevant indicates what notifications the user agent triggers
	// when the accessibility tree is modified. Value type: string.
	PropertyRelevant
	// PropertyRequired indicates user input is required before submission.
	// Value type: boolean.
	PropertyRequired
	// PropertySetSize is the number of items in the current set.
	// Value type: integer.
	PropertySetSize
	// PropertySort indicates how items are sorted.
	// Value type: Sort token.
	PropertySort
	// PropertyValueMax is the maximum allowed value for a range widget.
	// Value type: number.
	PropertyValueMax
	// PropertyValueMin is the minimum allowed value for a range widget.
	// Value type: number.
	PropertyValueMin
	// PropertyValueNow is the current value of a range widget.
	// Value type: number.
	PropertyValueNow
	// PropertyValueText is the human-readable text alternative of ValueNow.
	// Value type: string.
	PropertyValueText
)

// numProperties is the number of valid non-sentinel properties.
const numProperties = int(PropertyValueText) + 1

func (p Property) String() string {
	if p == PropertyNone {
		return "none"
	}
	if int(p) < 0 || int(p) >= numProperties {
		return "unknown"
	}
	return collectProps[p].name
}

// AllProperties returns the valid non-sentinel properties in table order.
func AllProperties() []Property {
	props := make([]Property, numProperties)
	for i := range props {
		props[i] = Property(i)
	}
	return props
}
