package lineutil

import (
	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
)

// untitled replaces empty titles; LINE rejects empty text components.
const untitled = "(untitled)"

// LinkCard is the content of one carousel bubble.
type LinkCard struct {
	Title       string
	Body        string
	ButtonLabel string
	URL         string
}

// NewLinkCardBubble renders a card as a bubble with a red title header,
// a wrapped body and one link button.
//
// Layout:
//
//	┌───────────────────────┐
//	│ Title (bold, white)   │  <- header
//	│ Body text...          │  <- body (omitted if empty)
//	│ [ BUTTON LABEL ]      │  <- footer
//	└───────────────────────┘
func NewLinkCardBubble(card LinkCard) messaging_api.FlexBubble {
	title := card.Title
	if title == "" {
		title = untitled
	}
	header := NewVerticalBox(BoxStyle{Padding: SpacingL, Background: ColorHeroBg},
		NewText(TruncateRunes(title, BubbleTitleLimit), TextStyle{
			Weight:      messaging_api.FlexTextWEIGHT_BOLD,
			Size:        "md",
			Color:       ColorHeroText,
			LineSpacing: LineSpacingNormal,
			MaxLines:    3,
		}))

	var body *messaging_api.FlexBox
	if card.Body != "" {
		body = NewVerticalBox(BoxStyle{Padding: SpacingL},
			NewText(TruncateRunes(card.Body, BubbleBodyLimit), TextStyle{
				Size:     "sm",
				Color:    ColorText,
				MaxLines: 8,
			}))
	}

	footer := NewVerticalBox(BoxStyle{Spacing: SpacingS},
		NewLinkButton(card.ButtonLabel, card.URL, ColorPrimary))

	return NewBubble(header, body, footer)
}

// NewLinkCardCarousel builds a Flex carousel message from cards.
// Returns nil when cards is empty.
func NewLinkCardCarousel(altText string, cards []LinkCard) *messaging_api.FlexMessage {
	if len(cards) == 0 {
		return nil
	}
	bubbles := make([]messaging_api.FlexBubble, 0, len(cards))
	for _, c := range cards {
		bubbles = append(bubbles, NewLinkCardBubble(c))
	}
	return NewFlexMessage(altText, NewCarousel(bubbles))
}
