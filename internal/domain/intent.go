package domain

import "time"

// Intent is the closed-set classification of a user utterance.
type Intent string

const (
	IntentTime    Intent = "time"
	IntentWeather Intent = "weather"
	IntentNews    Intent = "news"
	IntentSendSMS Intent = "send_sms"
	IntentPicture Intent = "picture"
	IntentVideo   Intent = "video"
	IntentExit    Intent = "exit"
	IntentUnknown Intent = "unknown"
)

// Utterance is one transcribed spoken command. It is consumed once and
// never persisted.
type Utterance struct {
	Text       string
	CapturedAt time.Time
}

// DisplayColumns is the line width of the wearable's panel. The display
// surface clips the message line at this many runes.
const DisplayColumns = 17

// Frame is what one draw of the display shows. It carries no state between
// draws; both lines are recomputed every time.
type Frame struct {
	Clock   string
	Message string
}
