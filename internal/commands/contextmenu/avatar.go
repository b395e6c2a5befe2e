// Package contextmenu provides the user and message context menu commands.
package contextmenu

import (
	"fmt"

	"github.com/PancyStudios/PancyCommandsGo/pkg/appcommands"
	"github.com/bwmarrin/discordgo"
)

// createAvatarCommand creates the "ver avatar" user context command
func createAvatarCommand() (*appcommands.Command, error) {
	return appcommands.NewUserCommand("Ver Avatar", avatarHandler)
}

// avatarHandler shows the avatar of the selected user
func avatarHandler(ctx *appcommands.Context, user *discordgo.User) error {
	if user == nil {
		return ctx.ReplyEphemeral("❌ No se pudo resolver el usuario.")
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🖼 Avatar de %s", user.Username),
		Color: 0x5865F2,
		Image: &discordgo.MessageEmbedImage{
			URL: user.AvatarURL("512"),
		},
	}
	return ctx.ReplyEmbed(embed)
}
