package blackjack

import (
	"blackjack-server/pkg/deck"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const logMessageLimit = 25

// LogMessage is a round event shown to the player
type LogMessage struct {
	UUID    string       `json:"uuid"`
	Cards   []*deck.Card `json:"cards,omitempty"`
	Message string       `json:"message"`
	Time    time.Time    `json:"time"`
}

// addLogMessage records a message, keeping only the most recent ones
func (g *Game) addLogMessage(cards []*deck.Card, format string, a ...interface{}) {
	m := append(g.logMessages, &LogMessage{
		UUID:    uuid.New().String(),
		Cards:   cards,
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	})

	if count := len(m); count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	g.logMessages = m
}

// LogMessages returns the most recent round events, oldest first
func (g *Game) LogMessages() []*LogMessage {
	messages := make([]*LogMessage, len(g.logMessages))
	copy(messages, g.logMessages)

	return messages
}
