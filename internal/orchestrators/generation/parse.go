package generation

import (
	"encoding/json"
	"strings"

	"github.com/cardforge/forge-api/internal/entities"
	"github.com/cardforge/forge-api/internal/errors"
)

// unitReply is the tolerant wire shape of a model reply before coercion and
// validation. Stat values arrive as numbers of either kind; unknown
// top-level fields are ignored.
type unitReply struct {
	Name      string             `json:"name"`
	Rarity    string             `json:"rarity"`
	Archetype string             `json:"archetype"`
	Stats     map[string]float64 `json:"stats"`
}

// itemReply is the tolerant wire shape of a model item reply.
type itemReply struct {
	Name     string             `json:"name"`
	Rarity   string             `json:"rarity"`
	Slot     string             `json:"slot"`
	Bonuses  map[string]float64 `json:"bonuses"`
	Modifier *entities.Modifier `json:"modifier"`
}

// stripFences removes an optional markdown code fence wrapper: the first
// line when it opens a fence (with or without a language tag), and the last
// line when it is exactly a closing fence.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	lines := strings.Split(text, "\n")
	lines = lines[1:]
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

func parseUnitReply(raw string) (*unitReply, error) {
	var reply unitReply
	if err := json.Unmarshal([]byte(stripFences(raw)), &reply); err != nil {
		return nil, errors.Wrap(err, "failed to parse model reply")
	}
	return &reply, nil
}

func parseItemReply(raw string) (*itemReply, error) {
	var reply itemReply
	if err := json.Unmarshal([]byte(stripFences(raw)), &reply); err != nil {
		return nil, errors.Wrap(err, "failed to parse model reply")
	}
	return &reply, nil
}
