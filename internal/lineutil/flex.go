package lineutil

import (
	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
)

// TextStyle is the appearance of a wrapped text component.
type TextStyle struct {
	Weight      messaging_api.FlexTextWEIGHT
	Size        string
	Color       string
	LineSpacing string
	MaxLines    int32
}

// BoxStyle is the appearance of a vertical box.
type BoxStyle struct {
	Padding    string
	Background string
	Spacing    string
}

// NewText returns a text component that wraps within its box.
func NewText(text string, s TextStyle) *messaging_api.FlexText {
	return &messaging_api.FlexText{
		Text:        text,
		Wrap:        true,
		Weight:      s.Weight,
		Size:        s.Size,
		Color:       s.Color,
		LineSpacing: s.LineSpacing,
		MaxLines:    max(s.MaxLines, 0),
	}
}

// NewVerticalBox stacks contents top to bottom.
func NewVerticalBox(s BoxStyle, contents ...messaging_api.FlexComponentInterface) *messaging_api.FlexBox {
	return &messaging_api.FlexBox{
		Layout:          messaging_api.FlexBoxLAYOUT_VERTICAL,
		Contents:        contents,
		PaddingAll:      s.Padding,
		BackgroundColor: s.Background,
		Spacing:         s.Spacing,
	}
}

// NewLinkButton returns a small primary button opening uri.
func NewLinkButton(label, uri, color string) *messaging_api.FlexButton {
	return &messaging_api.FlexButton{
		Action: &messaging_api.UriAction{
			Label: TruncateRunes(label, MaxActionLabel),
			Uri:   uri,
		},
		Style:  messaging_api.FlexButtonSTYLE_PRIMARY,
		Height: messaging_api.FlexButtonHEIGHT_SM,
		Color:  color,
	}
}

// NewBubble assembles a bubble; any section may be nil.
func NewBubble(header, body, footer *messaging_api.FlexBox) messaging_api.FlexBubble {
	return messaging_api.FlexBubble{Header: header, Body: body, Footer: footer}
}

// NewCarousel drops bubbles past MaxFlexCarouselBubbleCount.
func NewCarousel(bubbles []messaging_api.FlexBubble) *messaging_api.FlexCarousel {
	return &messaging_api.FlexCarousel{Contents: bubbles[:min(len(bubbles), MaxFlexCarouselBubbleCount)]}
}

// NewFlexMessage wraps contents with alt text for notifications and old clients.
func NewFlexMessage(altText string, contents messaging_api.FlexContainerInterface) *messaging_api.FlexMessage {
	return &messaging_api.FlexMessage{
		AltText:  TruncateRunes(altText, MaxAltTextLength),
		Contents: contents,
	}
}

// TruncateRunes shortens text to at most limit runes, ending in "..." when
// there is room for it.
func TruncateRunes(text string, limit int) string {
	runes := []rune(text)
	switch {
	case len(runes) <= limit:
		return text
	case limit <= 3:
		return string(runes[:max(limit, 0)])
	default:
		return string(runes[:limit-3]) + "..."
	}
}
