package telegram

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/mroshb/trivia_bot/internal/game"
	"github.com/mroshb/trivia_bot/internal/trivia"
)

type ParamKind int

const (
	ParamInt ParamKind = iota
	ParamChoice
)

// ParamSpec declares one positional command argument: its type, allowed
// values and default. An empty Default makes the argument required.
type ParamSpec struct {
	Name    string
	Kind    ParamKind
	Choices []string
	Default string
	Min     int
	Max     int
}

type CommandSpec struct {
	Name        string
	Description string
	Params      []ParamSpec
	Handler     func(b *Bot, msg *tgbotapi.Message, args []string)
}

// buildCommandRegistry declares every command with its parameter schema.
// Arguments are validated against the schema before a handler ever runs, so
// handlers can assume canonical values and a clamped amount.
func (b *Bot) buildCommandRegistry() map[string]CommandSpec {
	specs := []CommandSpec{
		{
			Name:        "join",
			Description: "join the game in this chat",
			Handler: func(b *Bot, msg *tgbotapi.Message, _ []string) {
				b.handlers.HandleJoin(msg.Chat.ID, msg.From.ID, displayName(msg.From), b)
			},
		},
		{
			Name:        "trivia",
			Description: "start a round",
			Params: []ParamSpec{
				{Name: "amount", Kind: ParamInt, Default: strconv.Itoa(b.config.DefaultQuestionCount), Min: 1, Max: 100},
				{Name: "difficulty", Kind: ParamChoice, Choices: trivia.Difficulties(), Default: b.config.DefaultDifficulty},
				{Name: "category", Kind: ParamChoice, Choices: trivia.Categories(), Default: b.config.DefaultCategory},
			},
			Handler: func(b *Bot, msg *tgbotapi.Message, args []string) {
				amount, _ := strconv.Atoi(args[0])
				b.handlers.HandleStart(msg.Chat.ID, amount, args[1], args[2], b)
			},
		},
		{
			Name:        "answer",
			Description: "answer the current question",
			Params: []ParamSpec{
				{Name: "answer", Kind: ParamChoice, Choices: game.BinaryChoices()},
			},
			Handler: func(b *Bot, msg *tgbotapi.Message, args []string) {
				b.handlers.HandleAnswer(msg.Chat.ID, msg.From.ID, displayName(msg.From), args[0], b)
			},
		},
		{
			Name:        "leaderboard",
			Description: "current standings",
			Handler: func(b *Bot, msg *tgbotapi.Message, _ []string) {
				b.handlers.HandleLeaderboard(msg.Chat.ID, b)
			},
		},
		{
			Name:        "reset",
			Description: "abandon the current round",
			Handler: func(b *Bot, msg *tgbotapi.Message, _ []string) {
				b.handlers.HandleReset(msg.Chat.ID, b)
			},
		},
		{
			Name:        "help",
			Description: "how to play",
			Handler: func(b *Bot, msg *tgbotapi.Message, _ []string) {
				b.handlers.HandleHelp(msg.Chat.ID, b)
			},
		},
	}

	registry := make(map[string]CommandSpec, len(specs))
	for _, spec := range specs {
		registry[spec.Name] = spec
	}
	return registry
}

// validateArgs resolves the raw argument string against the schema:
// positional fields, defaults for anything omitted, integers clamped to
// [Min, Max], choices matched case-insensitively (a single letter works when
// it is unambiguous, so "/answer T" scores as "True").
func validateArgs(spec CommandSpec, raw string) ([]string, error) {
	fields := strings.Fields(raw)
	args := make([]string, len(spec.Params))

	for i, param := range spec.Params {
		value := param.Default
		if i < len(fields) {
			value = fields[i]
		}
		if value == "" {
			return nil, fmt.Errorf("missing argument %q", param.Name)
		}

		switch param.Kind {
		case ParamInt:
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("%s must be a number", param.Name)
			}
			if n < param.Min {
				n = param.Min
			}
			if n > param.Max {
				n = param.Max
			}
			args[i] = strconv.Itoa(n)

		case ParamChoice:
			choice, ok := matchChoice(value, param.Choices)
			if !ok {
				return nil, fmt.Errorf("%s must be one of: %s", param.Name, strings.Join(param.Choices, ", "))
			}
			args[i] = choice
		}
	}

	return args, nil
}

func matchChoice(value string, choices []string) (string, bool) {
	for _, choice := range choices {
		if strings.EqualFold(value, choice) {
			return choice, true
		}
	}

	// Single-letter shorthand, accepted only when unambiguous
	if len([]rune(value)) == 1 {
		match := ""
		for _, choice := range choices {
			if strings.EqualFold(value, choice[:1]) {
				if match != "" {
					return "", false
				}
				match = choice
			}
		}
		if match != "" {
			return match, true
		}
	}

	return "", false
}

func usageMessage(spec CommandSpec) string {
	var sb strings.Builder
	sb.WriteString("Usage: /")
	sb.WriteString(spec.Name)
	for _, param := range spec.Params {
		if param.Default != "" {
			sb.WriteString(fmt.Sprintf(" [%s]", param.Name))
		} else {
			sb.WriteString(fmt.Sprintf(" <%s>", param.Name))
		}
	}
	for _, param := range spec.Params {
		if len(param.Choices) > 0 {
			sb.WriteString(fmt.Sprintf("\n%s: %s", param.Name, strings.Join(param.Choices, " | ")))
		}
	}
	return sb.String()
}
