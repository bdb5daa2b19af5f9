// Package assistant parses chat input into structured planning commands.
// Commands the parser recognizes are executed directly against the user's
// planning data; anything else falls through to the conversational model.
package assistant

import (
	"regexp"
	"strconv"
	"strings"
)

// CommandKind enumerates the structured actions the assistant can take
// without involving the conversational model.
type CommandKind string

const (
	KindAddGuest     CommandKind = "add_guest"
	KindSetBudget    CommandKind = "set_budget"
	KindAddTodo      CommandKind = "add_todo"
	KindNavigate     CommandKind = "navigate"
	KindUnrecognized CommandKind = "unrecognized"
)

// Command is the parsed form of one chat message. Only the fields for the
// matched kind are populated.
type Command struct {
	Kind      CommandKind
	GuestName string  // add_guest
	Category  string  // set_budget, empty for the overall budget
	Amount    float64 // set_budget
	TodoTitle string  // add_todo
	Target    string  // navigate, a normalized page name
}

var (
	reAddTodo = regexp.MustCompile(`(?i)^(?:add|create)\s+(?:a\s+)?(?:todo|task)[:\s]\s*(.+)$`)
	reRemind  = regexp.MustCompile(`(?i)^remind\s+me\s+to\s+(.+)$`)

	reAddGuestExplicit = regexp.MustCompile(`(?i)^add\s+guest\s+(.+)$`)
	reAddGuestSuffix   = regexp.MustCompile(`(?i)^add\s+(.+?)\s+to\s+(?:the\s+|my\s+)?guest\s?list$`)

	reSetBudgetCategory = regexp.MustCompile(`(?i)^set\s+(?:the\s+)?(.+?)\s+budget\s+to\s+\$?([0-9][0-9,]*(?:\.[0-9]+)?)$`)
	reSetBudgetTotal    = regexp.MustCompile(`(?i)^set\s+(?:the\s+|my\s+)?budget\s+to\s+\$?([0-9][0-9,]*(?:\.[0-9]+)?)$`)

	reNavigate = regexp.MustCompile(`(?i)^(?:go\s+to|open|show\s+me|show|navigate\s+to)\s+(?:the\s+|my\s+)?([a-z\- ]+?)(?:\s+page|\s+tab|\s+screen)?$`)
)

// navigationTargets maps spoken page names to canonical route names.
var navigationTargets = map[string]string{
	"guests":        "guests",
	"guest list":    "guests",
	"budget":        "budget",
	"todos":         "todos",
	"todo list":     "todos",
	"checklist":     "todos",
	"tasks":         "todos",
	"seating":       "seating",
	"seating chart": "seating",
	"vendors":       "vendors",
	"registry":      "registries",
	"registries":    "registries",
	"dashboard":     "dashboard",
	"home":          "dashboard",
}

// Parse interprets one chat message. Match order matters: task phrasing
// also starts with "add", so tasks are tried before guests.
func Parse(input string) Command {
	text := strings.TrimSpace(input)
	text = strings.TrimSuffix(text, ".")
	text = strings.TrimSuffix(text, "!")

	if m := reAddTodo.FindStringSubmatch(text); m != nil {
		return Command{Kind: KindAddTodo, TodoTitle: strings.TrimSpace(m[1])}
	}
	if m := reRemind.FindStringSubmatch(text); m != nil {
		return Command{Kind: KindAddTodo, TodoTitle: strings.TrimSpace(m[1])}
	}

	if m := reSetBudgetTotal.FindStringSubmatch(text); m != nil {
		if amount, ok := parseAmount(m[1]); ok {
			return Command{Kind: KindSetBudget, Amount: amount}
		}
	}
	if m := reSetBudgetCategory.FindStringSubmatch(text); m != nil {
		if amount, ok := parseAmount(m[2]); ok {
			return Command{
				Kind:     KindSetBudget,
				Category: strings.ToLower(strings.TrimSpace(m[1])),
				Amount:   amount,
			}
		}
	}

	if m := reAddGuestSuffix.FindStringSubmatch(text); m != nil {
		return Command{Kind: KindAddGuest, GuestName: guestName(m[1])}
	}
	if m := reAddGuestExplicit.FindStringSubmatch(text); m != nil {
		return Command{Kind: KindAddGuest, GuestName: guestName(m[1])}
	}

	if m := reNavigate.FindStringSubmatch(text); m != nil {
		spoken := strings.ToLower(strings.TrimSpace(m[1]))
		if target, ok := navigationTargets[spoken]; ok {
			return Command{Kind: KindNavigate, Target: target}
		}
	}

	return Command{Kind: KindUnrecognized}
}

// guestName trims an optional "guest " prefix left over when both guest
// phrasings appear in one message ("add guest Priya to the guest list").
func guestName(raw string) string {
	name := strings.TrimSpace(raw)
	if len(name) > 6 && strings.EqualFold(name[:6], "guest ") {
		name = strings.TrimSpace(name[6:])
	}

	return name
}

func parseAmount(raw string) (float64, bool) {
	cleaned := strings.ReplaceAll(raw, ",", "")
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || amount < 0 {
		return 0, false
	}

	return amount, true
}
