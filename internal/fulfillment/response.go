package fulfillment

// Response is the webhook reply body.
type Response struct {
	FulfillmentMessages []Message `json:"fulfillmentMessages"`
}

// Message is one fulfillment message. Exactly one of Text, Card or Payload is set.
type Message struct {
	Platform string         `json:"platform,omitempty"`
	Text     *Text          `json:"text,omitempty"`
	Card     *Card          `json:"card,omitempty"`
	Payload  map[string]any `json:"payload,omitempty"`
}

// Text is the text variant.
type Text struct {
	Text []string `json:"text"`
}

// Card is the basic card variant.
type Card struct {
	Title    string       `json:"title"`
	Subtitle string       `json:"subtitle"`
	ImageURI string       `json:"imageUri,omitempty"`
	Buttons  []CardButton `json:"buttons,omitempty"`
}

// CardButton opens Postback when tapped.
type CardButton struct {
	Text     string `json:"text"`
	Postback string `json:"postback"`
}

// NewTextResponse builds a reply with a single text message.
func NewTextResponse(text string) *Response {
	return &Response{
		FulfillmentMessages: []Message{{Text: &Text{Text: []string{text}}}},
	}
}

// NewResponse builds a reply from messages. The list is never encoded as null.
func NewResponse(messages ...Message) *Response {
	if messages == nil {
		messages = []Message{}
	}
	return &Response{FulfillmentMessages: messages}
}

// NewCardMessage builds a card message.
func NewCardMessage(card Card) Message {
	return Message{Card: &card}
}

// Cards returns the card variants in order.
func (r *Response) Cards() []Card {
	if r == nil {
		return nil
	}
	cards := make([]Card, 0, len(r.FulfillmentMessages))
	for _, m := range r.FulfillmentMessages {
		if m.Card != nil {
			cards = append(cards, *m.Card)
		}
	}
	return cards
}

// Texts returns every text line in order.
func (r *Response) Texts() []string {
	if r == nil {
		return nil
	}
	var texts []string
	for _, m := range r.FulfillmentMessages {
		if m.Text != nil {
			texts = append(texts, m.Text.Text...)
		}
	}
	return texts
}
