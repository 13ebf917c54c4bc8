package card

// InputText lets a user enter free-form text.
// https://adaptivecards.io/explorer/Input.Text.html
func InputText(id string) *Node {
	return NewNode(KindInputText).Set("id", id)
}

// InputNumber lets a user enter a number.
func InputNumber(id string) *Node {
	return NewNode(KindInputNumber).Set("id", id)
}

// InputDate lets a user choose a date.
func InputDate(id string) *Node {
	return NewNode(KindInputDate).Set("id", id)
}

// InputTime lets a user select a time.
func InputTime(id string) *Node {
	return NewNode(KindInputTime).Set("id", id)
}

// InputToggle lets a user choose between two options.
func InputToggle(title, id string) *Node {
	return NewNode(KindInputToggle).Set("title", title).Set("id", id)
}

// InputChoice is a single selectable option inside an InputChoiceSet.
func InputChoice(title, value string) *Node {
	return NewNode(KindInputChoice).Set("title", title).Set("value", value)
}

// InputChoiceSet lets a user pick from a set of InputChoice children.
func InputChoiceSet(id string) *Node {
	return NewNode(KindInputChoiceSet).Set("id", id)
}
