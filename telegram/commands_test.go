package telegram

import (
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/mroshb/trivia_bot/internal/config"
	"github.com/mroshb/trivia_bot/internal/game"
	"github.com/mroshb/trivia_bot/internal/trivia"
)

func testBot() *Bot {
	return &Bot{
		config: &config.Config{
			DefaultQuestionCount: 5,
			DefaultDifficulty:    trivia.DifficultyEasy,
			DefaultCategory:      trivia.CategoryGeneral,
		},
	}
}

func TestBuildCommandRegistry(t *testing.T) {
	registry := testBot().buildCommandRegistry()

	for _, name := range []string{"join", "trivia", "answer", "leaderboard", "reset", "help"} {
		if _, ok := registry[name]; !ok {
			t.Errorf("command %q missing from registry", name)
		}
	}

	triviaSpec := registry["trivia"]
	if len(triviaSpec.Params) != 3 {
		t.Fatalf("trivia params = %d, want 3", len(triviaSpec.Params))
	}
	if triviaSpec.Params[0].Default != "5" {
		t.Errorf("amount default = %q, want 5", triviaSpec.Params[0].Default)
	}
}

func TestValidateArgs_Trivia(t *testing.T) {
	spec := testBot().buildCommandRegistry()["trivia"]

	tests := []struct {
		name    string
		raw     string
		want    []string
		wantErr bool
	}{
		{
			name: "all defaults",
			raw:  "",
			want: []string{"5", "easy", "general"},
		},
		{
			name: "explicit values",
			raw:  "10 hard computers",
			want: []string{"10", "hard", "computers"},
		},
		{
			name: "amount clamped low",
			raw:  "0",
			want: []string{"1", "easy", "general"},
		},
		{
			name: "amount clamped high",
			raw:  "1000",
			want: []string{"100", "easy", "general"},
		},
		{
			name: "case insensitive choice",
			raw:  "5 HARD Computers",
			want: []string{"5", "hard", "computers"},
		},
		{
			name: "single letter shorthand",
			raw:  "5 m c",
			want: []string{"5", "medium", "computers"},
		},
		{
			name:    "amount not a number",
			raw:     "lots",
			wantErr: true,
		},
		{
			name:    "unknown difficulty",
			raw:     "5 impossible",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validateArgs(spec, tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Errorf("validateArgs(%q) expected error, got %v", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("validateArgs(%q) error = %v", tt.raw, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("validateArgs(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestValidateArgs_Answer(t *testing.T) {
	spec := testBot().buildCommandRegistry()["answer"]

	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "True", want: game.AnswerTrue},
		{raw: "false", want: game.AnswerFalse},
		{raw: "T", want: game.AnswerTrue},
		{raw: "f", want: game.AnswerFalse},
		{raw: "", wantErr: true},      // answer is required
		{raw: "maybe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(strconv.Quote(tt.raw), func(t *testing.T) {
			got, err := validateArgs(spec, tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Errorf("validateArgs(%q) expected error, got %v", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("validateArgs(%q) error = %v", tt.raw, err)
			}
			if got[0] != tt.want {
				t.Errorf("validateArgs(%q) = %q, want %q", tt.raw, got[0], tt.want)
			}
		})
	}
}

func TestMatchChoice_AmbiguousShorthand(t *testing.T) {
	if _, ok := matchChoice("c", []string{"cats", "cars"}); ok {
		t.Error("ambiguous shorthand accepted")
	}
}

func TestUsageMessage(t *testing.T) {
	spec := testBot().buildCommandRegistry()["trivia"]
	usage := usageMessage(spec)

	if usage == "" {
		t.Fatal("empty usage")
	}
	for _, fragment := range []string{"/trivia", "[amount]", "[difficulty]", "[category]", "easy | medium | hard"} {
		if !strings.Contains(usage, fragment) {
			t.Errorf("usage %q missing %q", usage, fragment)
		}
	}
}
