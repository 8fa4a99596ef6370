package diagram

// Selection is the single selected node, if any. Kind says which of Box or
// Connector is meaningful.
type Selection struct {
	Kind      Kind
	Box       BoxID
	Connector ConnectorKey
}

// NoSelection is the empty selection.
var NoSelection = Selection{}

func selectBox(id BoxID) Selection {
	return Selection{Kind: KindBox, Box: id}
}

func selectConnector(key ConnectorKey) Selection {
	return Selection{Kind: KindConnector, Connector: key}
}

// IsNone reports whether nothing is selected.
func (s Selection) IsNone() bool {
	return s.Kind == KindNone
}

// IsBox reports whether the box id is selected.
func (s Selection) IsBox(id BoxID) bool {
	return s.Kind == KindBox && s.Box == id
}

// IsConnector reports whether the connector key is selected.
func (s Selection) IsConnector(key ConnectorKey) bool {
	return s.Kind == KindConnector && s.Connector == key
}
