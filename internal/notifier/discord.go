package notifier

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/hy-wedding/rsvp-api/internal/models"
)

type Notifier interface {
	NotifyRSVP(rsvp models.RSVP) error
}

// DiscordNotifier announces every new RSVP to the couple's private
// channel. It is advisory: a failed announcement never fails the
// submission that triggered it.
type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordNotifier(botToken, channelID string) (*DiscordNotifier, error) {
	if botToken == "" || channelID == "" {
		return nil, fmt.Errorf("discord notifier not configured")
	}
	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, err
	}
	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
	}, nil
}

func (n *DiscordNotifier) NotifyRSVP(rsvp models.RSVP) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	status := "出席 🎉"
	if rsvp.Status == models.NotAttending {
		status = "欠席 😢"
	}

	side := "新郎側"
	if rsvp.GuestSide == models.BrideSide {
		side = "新婦側"
	}

	allergyStr := "なし"
	if rsvp.AllergyFlag == models.AllergyPresent {
		allergyStr = strings.Join(rsvp.Allergy, "、")
	}

	messageStr := ""
	if rsvp.GuestMessage != "" {
		messageStr = fmt.Sprintf("\n**Message:** %s", rsvp.GuestMessage)
	}

	message := fmt.Sprintf("💌 **New RSVP**\n**Guest:** %s (%s %s)\n**Side:** %s\n**Status:** %s\n**Allergies:** %s%s",
		rsvp.DisplayName(),
		rsvp.RomFamilyName,
		rsvp.RomFirstName,
		side,
		status,
		allergyStr,
		messageStr,
	)

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		log.Warn().Err(err).Msg("failed to send discord message")
		return err
	}

	return nil
}
