// Package chatroom implements the intents that read BadgerChat chatrooms:
// when the latest post was made and the most recent posts as cards.
package chatroom

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/garyellow/badgerchat-fulfillment/internal/bot"
	domerrors "github.com/garyellow/badgerchat-fulfillment/internal/errors"
	"github.com/garyellow/badgerchat-fulfillment/internal/fulfillment"
	"github.com/garyellow/badgerchat-fulfillment/internal/lineutil"
	"github.com/garyellow/badgerchat-fulfillment/internal/locale"
	"github.com/garyellow/badgerchat-fulfillment/internal/logger"
	"github.com/garyellow/badgerchat-fulfillment/internal/messageapi"
)

// Module constants
const (
	ModuleName = "chatroom"

	IntentLatestPost       = "GetWhenPosted"
	IntentChatroomMessages = "GetChatroomMessages"

	ParamChatroom    = "chatroom"
	ParamNumMessages = "numMessages"

	// MaxCards caps the cards returned for one request.
	MaxCards = 5

	readMoreLabel = "READ MORE"
	sourceLINE    = "line"
	firstPage     = 1

	opLatestPost = "latest_post"
	opCards      = "chatroom_cards"
)

// User-facing texts
const (
	msgMissingChatroom = "Which chatroom are you interested in?"
	msgUpstream        = "Sorry, I couldn't reach BadgerChat right now. Please try again later."
	msgMalformed       = "Sorry, BadgerChat sent back something I couldn't understand."
	msgNoMessages      = "No messages found in %s."
	msgLatestPost      = "The last message in %s was posted on %s at %s!"
	altTextCards       = "Latest posts in %s"
)

// MessageFetcher reads one page of a chatroom.
type MessageFetcher interface {
	FetchMessages(ctx context.Context, chatroom string, page int) (*messageapi.MessagePage, error)
}

// Handler answers chatroom intents.
type Handler struct {
	fetcher    MessageFetcher
	formatter  *locale.Formatter
	webBaseURL string
	logger     *logger.Logger
}

// NewHandler creates a new chatroom handler. webBaseURL is the BadgerChat
// web origin that READ MORE links point at.
func NewHandler(fetcher MessageFetcher, formatter *locale.Formatter, webBaseURL string, log *logger.Logger) *Handler {
	return &Handler{
		fetcher:    fetcher,
		formatter:  formatter,
		webBaseURL: strings.TrimRight(webBaseURL, "/"),
		logger:     log,
	}
}

// Name returns the module name
func (h *Handler) Name() string {
	return ModuleName
}

// Register binds the module's intents.
func (h *Handler) Register(r *bot.Registry) {
	r.Register(IntentLatestPost, bot.HandlerFunc(h.HandleLatestPost))
	r.Register(IntentChatroomMessages, bot.HandlerFunc(h.HandleChatroomMessages))
}

// HandleLatestPost reports when the newest post in a chatroom was made.
func (h *Handler) HandleLatestPost(ctx context.Context, req *fulfillment.WebhookRequest) (*fulfillment.Response, error) {
	wrapper := domerrors.NewWrapper(ModuleName, opLatestPost)
	log := h.logger.WithModule(ModuleName)

	room, ok := req.Params().String(ParamChatroom)
	if !ok {
		return nil, wrapper.Wrap(domerrors.ErrMissingParameter, msgMissingChatroom)
	}

	page, err := h.fetcher.FetchMessages(ctx, room, firstPage)
	if err != nil {
		return nil, wrapFetchError(wrapper, err)
	}

	latest, err := page.Latest()
	if err != nil {
		return nil, wrapper.Wrapf(err, msgNoMessages, room)
	}

	created, err := latest.CreatedAt()
	if err != nil {
		return nil, wrapper.Wrap(err, msgMalformed)
	}

	date, clock := h.formatter.Format(created, req.LanguageCode())
	log.WithFields(map[string]any{
		"chatroom": room,
		"created":  latest.Created,
		"date":     date,
	}).DebugContext(ctx, "Parsed latest post date")

	return fulfillment.NewTextResponse(fmt.Sprintf(msgLatestPost, room, date, clock)), nil
}

// HandleChatroomMessages returns the newest posts of a chatroom as cards,
// in the order the service lists them.
func (h *Handler) HandleChatroomMessages(ctx context.Context, req *fulfillment.WebhookRequest) (*fulfillment.Response, error) {
	wrapper := domerrors.NewWrapper(ModuleName, opCards)
	log := h.logger.WithModule(ModuleName)

	room, ok := req.Params().String(ParamChatroom)
	if !ok {
		return nil, wrapper.Wrap(domerrors.ErrMissingParameter, msgMissingChatroom)
	}
	count := req.Params().PostCount(ParamNumMessages, MaxCards)

	page, err := h.fetcher.FetchMessages(ctx, room, firstPage)
	if err != nil {
		return nil, wrapFetchError(wrapper, err)
	}

	posts := page.First(count)
	link := ChatroomURL(h.webBaseURL, room)

	messages := make([]fulfillment.Message, 0, len(posts)+1)
	linkCards := make([]lineutil.LinkCard, 0, len(posts))
	for _, p := range posts {
		messages = append(messages, fulfillment.NewCardMessage(fulfillment.Card{
			Title:    p.Title,
			Subtitle: p.Content,
			Buttons:  []fulfillment.CardButton{{Text: readMoreLabel, Postback: link}},
		}))
		linkCards = append(linkCards, lineutil.LinkCard{
			Title:       p.Title,
			Body:        p.Content,
			ButtonLabel: readMoreLabel,
			URL:         link,
		})
	}

	if req.Source() == sourceLINE {
		if flex := lineutil.NewLinkCardCarousel(fmt.Sprintf(altTextCards, room), linkCards); flex != nil {
			messages = append(messages, fulfillment.Message{
				Platform: "LINE",
				Payload:  map[string]any{"line": flex},
			})
		}
	}

	log.WithFields(map[string]any{
		"chatroom":  room,
		"requested": count,
		"returned":  len(posts),
	}).DebugContext(ctx, "Built chatroom cards")

	return fulfillment.NewResponse(messages...), nil
}

// ChatroomURL returns the BadgerChat web page of a chatroom.
func ChatroomURL(webBaseURL, chatroom string) string {
	return strings.TrimRight(webBaseURL, "/") + "/f23/badgerchat/chatrooms/" + url.PathEscape(chatroom) + "/"
}

func wrapFetchError(wrapper *domerrors.ErrorWrapper, err error) error {
	if errors.Is(err, domerrors.ErrMalformedResponse) {
		return wrapper.Wrap(err, msgMalformed)
	}
	return wrapper.Wrap(err, msgUpstream)
}

var _ MessageFetcher = (*messageapi.Client)(nil)
