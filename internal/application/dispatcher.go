package application

import (
	"strings"

	"smart-glasses/internal/domain"
)

type matchRule struct {
	intent   domain.Intent
	keywords []string
}

// dispatchOrder resolves ambiguity deterministically: the first matching
// rule wins, so an utterance containing both "news" and "exit" exits.
// Changing the order changes the contract.
var dispatchOrder = []matchRule{
	{domain.IntentExit, []string{"exit"}},
	{domain.IntentNews, []string{"news"}},
	{domain.IntentSendSMS, []string{"sms", "message"}},
	{domain.IntentTime, []string{"time"}},
	{domain.IntentWeather, []string{"weather"}},
	{domain.IntentPicture, []string{"picture", "photo"}},
	{domain.IntentVideo, []string{"video"}},
}

// Dispatch classifies an utterance by case-insensitive substring match
// against the ordered keyword sets. Unknown is not an error: the caller
// hands the whole utterance to the knowledge fallback chain.
func Dispatch(utterance string) domain.Intent {
	text := strings.ToLower(utterance)
	for _, rule := range dispatchOrder {
		for _, keyword := range rule.keywords {
			if strings.Contains(text, keyword) {
				return rule.intent
			}
		}
	}
	return domain.IntentUnknown
}
