package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_AddGuest(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"explicit guest keyword", "add guest Priya Sharma", "Priya Sharma"},
		{"guest list suffix", "add Rohan to the guest list", "Rohan"},
		{"guest list without article", "add Mira Patel to guest list", "Mira Patel"},
		{"both phrasings combined", "add guest Priya to the guest list", "Priya"},
		{"uppercase verb", "Add guest Dev", "Dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := Parse(tt.input)
			assert.Equal(t, KindAddGuest, cmd.Kind)
			assert.Equal(t, tt.want, cmd.GuestName)
		})
	}
}

func TestParse_SetBudget(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantCategory string
		wantAmount   float64
	}{
		{"overall budget", "set budget to 20000", "", 20000},
		{"overall with article", "set my budget to $25,000", "", 25000},
		{"category budget", "set the venue budget to 5000", "venue", 5000},
		{"category with dollar sign", "set catering budget to $12,500.50", "catering", 12500.50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := Parse(tt.input)
			assert.Equal(t, KindSetBudget, cmd.Kind)
			assert.Equal(t, tt.wantCategory, cmd.Category)
			assert.InDelta(t, tt.wantAmount, cmd.Amount, 0.001)
		})
	}
}

func TestParse_AddTodo(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"todo keyword", "add todo book the DJ", "book the DJ"},
		{"task keyword", "create a task: send invitations", "send invitations"},
		{"remind phrasing", "remind me to call the florist", "call the florist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := Parse(tt.input)
			assert.Equal(t, KindAddTodo, cmd.Kind)
			assert.Equal(t, tt.want, cmd.TodoTitle)
		})
	}
}

func TestParse_Navigate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"go to page", "go to the guests page", "guests"},
		{"open", "open budget", "budget"},
		{"show me", "show me the seating chart", "seating"},
		{"synonym checklist", "go to my checklist", "todos"},
		{"registry singular", "open the registry page", "registries"},
		{"home maps to dashboard", "go to home", "dashboard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := Parse(tt.input)
			assert.Equal(t, KindNavigate, cmd.Kind)
			assert.Equal(t, tt.want, cmd.Target)
		})
	}
}

func TestParse_Unrecognized(t *testing.T) {
	tests := []string{
		"what should my budget be?",
		"help me plan a beach wedding",
		"go to the moon",
		"set budget to banana",
		"",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			cmd := Parse(input)
			assert.Equal(t, KindUnrecognized, cmd.Kind)
		})
	}
}

func TestParse_TrailingPunctuation(t *testing.T) {
	cmd := Parse("add guest Anika.")
	assert.Equal(t, KindAddGuest, cmd.Kind)
	assert.Equal(t, "Anika", cmd.GuestName)
}
