package adaptivecardbuilder_test

import (
	"context"
	"fmt"
	"log"

	adaptivecardbuilder "github.com/ku222/AdaptiveCardBuilder"
	"github.com/ku222/AdaptiveCardBuilder/pkg/adapters/memory"
	"github.com/ku222/AdaptiveCardBuilder/pkg/card"
)

// ExampleNew demonstrates building and serializing a card with the facade.
func ExampleNew() {
	c := adaptivecardbuilder.New()
	if _, err := c.Add(card.TextBlock("Hello")); err != nil {
		log.Fatal(err)
	}
	c.BackToTop()
	if _, err := c.Add(card.ActionOpenURL("https://example.com").Set("title", "Open")); err != nil {
		log.Fatal(err)
	}

	out, err := c.ToJSON()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out)
	// Output: {"type":"AdaptiveCard","version":"1.2","$schema":"http://adaptivecards.io/schemas/adaptive-card.json","body":[{"type":"TextBlock","text":"Hello"}],"actions":[{"type":"Action.OpenUrl","url":"https://example.com","title":"Open"}]}
}

// ExampleCard_ToJSONTranslated demonstrates serializing the same card in
// another language through an injected translator.
func ExampleCard_ToJSONTranslated() {
	translator := memory.New(
		memory.WithEntry("fr", "Good morning!", "Bonjour!"),
	)

	c := adaptivecardbuilder.New(adaptivecardbuilder.WithTranslator(translator))
	if _, err := c.Add(card.TextBlock("Good morning!")); err != nil {
		log.Fatal(err)
	}

	out, err := c.ToJSONTranslated(context.Background(), "fr")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out)
	// Output: {"type":"AdaptiveCard","version":"1.2","$schema":"http://adaptivecards.io/schemas/adaptive-card.json","body":[{"type":"TextBlock","text":"Bonjour!"}],"actions":[]}
}
