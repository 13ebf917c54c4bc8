package card

// ActionSet displays a group of actions inside the card body.
// https://adaptivecards.io/explorer/ActionSet.html
func ActionSet() *Node {
	return NewNode(KindActionSet)
}

// ActionOpenURL opens the given URL when invoked, either in an external
// browser or within an embedded one.
func ActionOpenURL(url string) *Node {
	return NewNode(KindActionOpenURL).Set("url", url)
}

// ActionSubmit gathers input fields, merges them with the optional data
// attribute, and sends an event to the client.
// https://adaptivecards.io/explorer/Action.Submit.html
func ActionSubmit() *Node {
	return NewNode(KindActionSubmit)
}

// ActionShowCard reveals a nested sub-card when the button is clicked.
// Elements and actions added while the cursor is on this node land in the
// sub-card's body and action list.
func ActionShowCard() *Node {
	return NewNode(KindActionShowCard)
}

// ActionToggleVisibility toggles the visibility of the card elements named
// by its TargetElement children.
func ActionToggleVisibility() *Node {
	return NewNode(KindActionToggleVisibility)
}

// TargetElement is one entry of Action.ToggleVisibility's target list.
func TargetElement(elementID string) *Node {
	return NewNode(KindTargetElement).Set("elementId", elementID)
}
