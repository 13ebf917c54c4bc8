package card

// Container groups items together.
// https://adaptivecards.io/explorer/Container.html
func Container() *Node {
	return NewNode(KindContainer)
}

// Column is a container that lives inside a ColumnSet.
func Column() *Node {
	return NewNode(KindColumn)
}

// ColumnSet divides a region into columns, letting elements sit side by side.
func ColumnSet() *Node {
	return NewNode(KindColumnSet)
}

// TextBlock displays text with control over size, weight and color.
// https://adaptivecards.io/explorer/TextBlock.html
func TextBlock(text string) *Node {
	return NewNode(KindTextBlock).Set("text", text)
}

// RichTextBlock holds a sequence of TextRun inlines.
func RichTextBlock() *Node {
	return NewNode(KindRichTextBlock)
}

// TextRun is a single run of formatted text inside a RichTextBlock.
func TextRun(text string) *Node {
	return NewNode(KindTextRun).Set("text", text)
}

// Image displays an image. Acceptable formats are PNG, JPEG and GIF.
func Image(url string) *Node {
	return NewNode(KindImage).Set("url", url)
}

// ImageSet displays a collection of images, gallery style.
func ImageSet() *Node {
	return NewNode(KindImageSet)
}

// Media displays a player for audio or video content; add MediaSource
// children for the available encodings.
func Media() *Node {
	return NewNode(KindMedia)
}

// MediaSource is a single source for a Media element.
func MediaSource(mimeType, url string) *Node {
	return NewNode(KindMediaSource).Set("mimeType", mimeType).Set("url", url)
}

// Fact is a single title/value pair inside a FactSet.
func Fact(title, value string) *Node {
	return NewNode(KindFact).Set("title", title).Set("value", value)
}

// FactSet displays a series of facts in tabular form.
// https://adaptivecards.io/explorer/FactSet.html
func FactSet() *Node {
	return NewNode(KindFactSet)
}
