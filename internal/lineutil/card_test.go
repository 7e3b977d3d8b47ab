package lineutil

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLinkCardBubble(t *testing.T) {
	bubble := NewLinkCardBubble(LinkCard{
		Title:       "Lunch?",
		Body:        "Anyone at Union South?",
		ButtonLabel: "READ MORE",
		URL:         "https://cs571.org/f23/badgerchat/chatrooms/Union%20South/",
	})

	require.NotNil(t, bubble.Header)
	require.NotNil(t, bubble.Body)
	require.NotNil(t, bubble.Footer)

	title, ok := bubble.Header.Contents[0].(*messaging_api.FlexText)
	require.True(t, ok)
	assert.Equal(t, "Lunch?", title.Text)

	btn, ok := bubble.Footer.Contents[0].(*messaging_api.FlexButton)
	require.True(t, ok)
	action, ok := btn.Action.(*messaging_api.UriAction)
	require.True(t, ok)
	assert.Equal(t, "https://cs571.org/f23/badgerchat/chatrooms/Union%20South/", action.Uri)
}

func TestNewLinkCardBubble_EmptyFields(t *testing.T) {
	bubble := NewLinkCardBubble(LinkCard{ButtonLabel: "READ MORE", URL: "https://example.com"})

	title, ok := bubble.Header.Contents[0].(*messaging_api.FlexText)
	require.True(t, ok)
	assert.NotEmpty(t, title.Text)
	assert.Nil(t, bubble.Body)
}

func TestNewLinkCardBubble_LongBody(t *testing.T) {
	bubble := NewLinkCardBubble(LinkCard{
		Title: "t", Body: strings.Repeat("long ", 200), ButtonLabel: "READ MORE", URL: "https://example.com",
	})
	text, ok := bubble.Body.Contents[0].(*messaging_api.FlexText)
	require.True(t, ok)
	assert.LessOrEqual(t, len([]rune(text.Text)), BubbleBodyLimit)
	assert.True(t, strings.HasSuffix(text.Text, "..."))
}

func TestNewLinkCardCarousel(t *testing.T) {
	assert.Nil(t, NewLinkCardCarousel("none", nil))

	msg := NewLinkCardCarousel("Latest posts", []LinkCard{
		{Title: "a", Body: "1", ButtonLabel: "READ MORE", URL: "https://example.com/a"},
		{Title: "b", Body: "2", ButtonLabel: "READ MORE", URL: "https://example.com/b"},
	})
	require.NotNil(t, msg)
	assert.Equal(t, "Latest posts", msg.AltText)

	carousel, ok := msg.Contents.(*messaging_api.FlexCarousel)
	require.True(t, ok)
	assert.Len(t, carousel.Contents, 2)

	b, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"type":"flex"`)
	assert.Contains(t, string(b), `"type":"carousel"`)
}
