package lineutil

// LINE API Character Limits (Rune count)
// References: https://developers.line.biz/en/reference/messaging-api/
const (
	MaxAltTextLength = 400 // Flex message alt text length
	MaxActionLabel   = 20  // Button action label length

	MaxFlexCarouselBubbleCount = 12 // Max bubbles in a Flex carousel
)

// Application-defined limits for readable bubbles
const (
	BubbleTitleLimit = 80
	BubbleBodyLimit  = 300
)
