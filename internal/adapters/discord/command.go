package discord

import (
	"github.com/bwmarrin/discordgo"

	"yogabot/internal/domain"
	"yogabot/internal/domain/timeline"
	"yogabot/internal/ports/output"
)

const commandName = "yoga"

const (
	subProgram   = "program"
	subDay       = "day"
	subProgress  = "progress"
	subComplete  = "complete"
	subLanguage  = "language"
	subReminders = "reminders"
	subReset     = "reset"

	optNumber  = "number"
	optDay     = "day"
	optLocale  = "locale"
	optEnabled = "enabled"
)

// discordLocales maps the bot locales (other than the default) to the
// Discord client locales used for command localizations.
var discordLocales = map[string]discordgo.Locale{
	domain.LocaleGerman:  discordgo.German,
	domain.LocaleSpanish: discordgo.SpanishES,
}

func localizations(t output.T, key string) map[discordgo.Locale]string {
	out := make(map[discordgo.Locale]string, len(discordLocales))
	for locale, dl := range discordLocales {
		out[dl] = t.T(locale, key, nil)
	}
	return out
}

func describe(t output.T, key string) (string, map[discordgo.Locale]string) {
	return t.T(domain.DefaultLocale, key, nil), localizations(t, key)
}

func subcommand(t output.T, name string, options ...*discordgo.ApplicationCommandOption) *discordgo.ApplicationCommandOption {
	desc, loc := describe(t, "commands."+name)
	return &discordgo.ApplicationCommandOption{
		Type:                     discordgo.ApplicationCommandOptionSubCommand,
		Name:                     name,
		Description:              desc,
		DescriptionLocalizations: loc,
		Options:                  options,
	}
}

func dayOption(t output.T, name string) *discordgo.ApplicationCommandOption {
	desc, loc := describe(t, "commands.options."+name)
	minDay := float64(1)
	return &discordgo.ApplicationCommandOption{
		Type:                     discordgo.ApplicationCommandOptionInteger,
		Name:                     name,
		Description:              desc,
		DescriptionLocalizations: loc,
		Required:                 true,
		MinValue:                 &minDay,
		MaxValue:                 timeline.TotalDays,
	}
}

func localeOption(t output.T) *discordgo.ApplicationCommandOption {
	desc, loc := describe(t, "commands.options."+optLocale)
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.SupportedLocales()))
	for _, locale := range domain.SupportedLocales() {
		// Each language is listed under its own name.
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  t.T(locale, "languages."+locale, nil),
			Value: locale,
		})
	}
	return &discordgo.ApplicationCommandOption{
		Type:                     discordgo.ApplicationCommandOptionString,
		Name:                     optLocale,
		Description:              desc,
		DescriptionLocalizations: loc,
		Required:                 true,
		Choices:                  choices,
	}
}

func enabledOption(t output.T) *discordgo.ApplicationCommandOption {
	desc, loc := describe(t, "commands.options."+optEnabled)
	return &discordgo.ApplicationCommandOption{
		Type:                     discordgo.ApplicationCommandOptionBoolean,
		Name:                     optEnabled,
		Description:              desc,
		DescriptionLocalizations: loc,
		Required:                 true,
	}
}

// buildCommand describes the /yoga command tree with localized descriptions.
func buildCommand(t output.T) *discordgo.ApplicationCommand {
	desc, loc := describe(t, "commands."+commandName)
	return &discordgo.ApplicationCommand{
		Name:                     commandName,
		Description:              desc,
		DescriptionLocalizations: &loc,
		Options: []*discordgo.ApplicationCommandOption{
			subcommand(t, subProgram),
			subcommand(t, subDay, dayOption(t, optNumber)),
			subcommand(t, subProgress),
			subcommand(t, subComplete, dayOption(t, optDay)),
			subcommand(t, subLanguage, localeOption(t)),
			subcommand(t, subReminders, enabledOption(t)),
			subcommand(t, subReset),
		},
	}
}
