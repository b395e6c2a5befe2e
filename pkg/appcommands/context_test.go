package appcommands

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

// TestReplyMethodSignatures verifies the reply surface exists with the
// expected shapes (compile-time check)
func TestReplyMethodSignatures(t *testing.T) {
	type replyFunc func(*Context, string) error
	type embedFunc func(*Context, *discordgo.MessageEmbed) error

	var _ replyFunc = (*Context).Reply
	var _ replyFunc = (*Context).ReplyEphemeral
	var _ replyFunc = (*Context).EditReply
	var _ embedFunc = (*Context).ReplyEmbed
	var _ embedFunc = (*Context).ReplyEphemeralEmbed
	var _ embedFunc = (*Context).EditReplyEmbed

	t.Log("✅ reply methods exist with the expected signatures")
}

// TestContextUser verifies the member/user fallback
func TestContextUser(t *testing.T) {
	inGuild := &Context{
		Interaction: &discordgo.InteractionCreate{
			Interaction: &discordgo.Interaction{
				Member: &discordgo.Member{User: &discordgo.User{ID: "u1"}},
			},
		},
	}
	if got := inGuild.User(); got == nil || got.ID != "u1" {
		t.Errorf("User in guild = %v, want member user", got)
	}

	inDM := &Context{
		Interaction: &discordgo.InteractionCreate{
			Interaction: &discordgo.Interaction{
				User: &discordgo.User{ID: "u2"},
			},
		},
	}
	if got := inDM.User(); got == nil || got.ID != "u2" {
		t.Errorf("User in DM = %v, want interaction user", got)
	}
}
