package discord

import (
	"github.com/bwmarrin/discordgo"
)

// reply is what a subcommand answers with. Content and Embed may both be set.
type reply struct {
	Content string
	Embed   *discordgo.MessageEmbed
}

// Nick > GlobalName > Username
func resolveDisplayName(member *discordgo.Member) string {
	if member == nil || member.User == nil {
		return ""
	}
	if member.Nick != "" {
		return member.Nick
	}
	return userDisplayName(member.User)
}

func userDisplayName(u *discordgo.User) string {
	if u == nil {
		return ""
	}
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}

// interactionUser returns the invoking user id and display name for both
// guild and DM interactions.
func interactionUser(i *discordgo.Interaction) (string, string) {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID, resolveDisplayName(i.Member)
	}
	if i.User != nil {
		return i.User.ID, userDisplayName(i.User)
	}
	return "", ""
}

func respondEphemeral(s *discordgo.Session, i *discordgo.Interaction, r reply) error {
	data := &discordgo.InteractionResponseData{
		Content: r.Content,
		Flags:   discordgo.MessageFlagsEphemeral,
	}
	if r.Embed != nil {
		data.Embeds = []*discordgo.MessageEmbed{r.Embed}
	}
	return s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// commandInput is the parsed form of a /yoga invocation.
type commandInput struct {
	UserID     string
	Username   string
	Locale     string
	Subcommand string
	Options    map[string]*discordgo.ApplicationCommandInteractionDataOption
}

func parseCommand(i *discordgo.Interaction) commandInput {
	userID, username := interactionUser(i)
	in := commandInput{
		UserID:   userID,
		Username: username,
		Locale:   string(i.Locale),
		Options:  map[string]*discordgo.ApplicationCommandInteractionDataOption{},
	}
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return in
	}
	sub := data.Options[0]
	in.Subcommand = sub.Name
	for _, opt := range sub.Options {
		in.Options[opt.Name] = opt
	}
	return in
}

func (in commandInput) intOption(name string) int {
	opt, ok := in.Options[name]
	if !ok {
		return 0
	}
	return int(opt.IntValue())
}

func (in commandInput) stringOption(name string) string {
	opt, ok := in.Options[name]
	if !ok {
		return ""
	}
	return opt.StringValue()
}

func (in commandInput) boolOption(name string) bool {
	opt, ok := in.Options[name]
	if !ok {
		return false
	}
	return opt.BoolValue()
}
