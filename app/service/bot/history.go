package bot

import (
	"fmt"
	"strings"
	"time"
)

// History is the append-only list of conversation turns. It lives for
// the process only and grows by exactly one turn per chat exchange.
type History struct {
	turns []Turn
}

func (h *History) add(user, bot string) {
	h.turns = append(h.turns, Turn{
		User: user,
		Bot:  bot,
		At:   time.Now(),
	})
}

func (h *History) format() string {
	if len(h.turns) == 0 {
		return ""
	}

	var builder strings.Builder

	for _, turn := range h.turns {
		builder.WriteString(fmt.Sprintf("Human: %s\n", turn.User))
		builder.WriteString(fmt.Sprintf("AI: %s\n", turn.Bot))
	}

	return strings.TrimRight(builder.String(), "\n")
}

// recent returns up to n latest turns, newest last.
func (h *History) recent(n int) []Turn {
	if len(h.turns) <= n {
		return h.turns
	}
	return h.turns[len(h.turns)-n:]
}

func (h *History) clear() {
	h.turns = nil
}
