// Package schema defines the fixed Super Dispatch import template: an ordered
// list of output column specs, each carrying the rule that derives its values.
//
// The template was historically expressed as a map keyed by output header.
// Two entries were both named "Delivery City", so the first mapping was
// silently unreachable. Representing the schema as an ordered slice of
// distinct specs keeps every column addressable and makes the output order
// explicit instead of depending on map semantics.
package schema

// RuleKind selects how an output column derives its values. It is a closed
// set; the transform engine dispatches on it per column spec.
type RuleKind int

const (
	// FromSource copies a named source column, normalized.
	FromSource RuleKind = iota
	// Constant fills every row with the same literal value.
	Constant
	// DecodedFromVin derives the model label from the VIN's 4th character.
	DecodedFromVin
	// Empty leaves every row blank (placeholder column).
	Empty
)

// Column is one output column spec: the output header plus its derivation
// rule. Source is set for FromSource, Value for Constant. Zip and State mark
// the extra normalization FromSource columns receive.
type Column struct {
	Name   string
	Kind   RuleKind
	Source string
	Value  string
	Zip    bool
	State  bool
}

// Template returns the Super Dispatch import schema. Order matters: the
// downstream importer consumes columns positionally, including the literal
// five-space placeholder header in the first slot.
//
// The returned slice is freshly allocated so callers may not corrupt the
// template for concurrent requests.
func Template() []Column {
	return []Column{
		{Name: "     ", Kind: Empty},
		{Name: "model", Kind: DecodedFromVin},
		{Name: "Carrier Price per Vehicle", Kind: Empty},
		{Name: "Pickup State", Kind: FromSource, Source: "OriginState", State: true},
		{Name: "Pickup City", Kind: FromSource, Source: "OriginCity"},
		{Name: "Delivery State", Kind: FromSource, Source: "DestinationState", State: true},
		{Name: "Delivery City", Kind: FromSource, Source: "DestinationCity"},
		{Name: "Pickup Zip Code", Kind: FromSource, Source: "OriginZip", Zip: true},
		{Name: "VIN", Kind: FromSource, Source: "Vin"},
		{Name: "Order ID", Kind: FromSource, Source: "ShipmentNumber"},
		{Name: "Pickup Street", Kind: FromSource, Source: "OriginAddress"},
		{Name: "Pickup Contact Phone", Kind: FromSource, Source: "OriginContactPhone"},
		{Name: "Delivery Street", Kind: FromSource, Source: "DestinationAddress"},
		{Name: "Delivery Zip Code", Kind: FromSource, Source: "DestinationZip", Zip: true},
		{Name: "Delivery Contact Phone", Kind: FromSource, Source: "DestinationContactPhone"},
		{Name: "Carrier Payment Method", Kind: Constant, Value: "check"},
		{Name: "Carrier Payment Terms", Kind: Constant, Value: "10_days"},
		{Name: "Pickup Date Type", Kind: Constant, Value: "estimated"},
		{Name: "Delivery Date Type", Kind: Constant, Value: "estimated"},
	}
}
