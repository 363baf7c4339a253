package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config is constructed once at startup and passed down read-only.
// The wedding display values are opaque strings owned by whoever
// configures the deployment; this service never interprets them.
type Config struct {
	Port         string `mapstructure:"PORT"`
	DatabasePath string `mapstructure:"DATABASE_PATH"`

	GroomName    string `mapstructure:"GROOM_NAME"`
	BrideName    string `mapstructure:"BRIDE_NAME"`
	WeddingDate  string `mapstructure:"WEDDING_DATE"`
	VenueName    string `mapstructure:"VENUE_NAME"`
	RSVPDeadline string `mapstructure:"RSVP_DEADLINE"`

	// Base path the form redirects to after a successful submission.
	ConfirmationURL string `mapstructure:"CONFIRMATION_URL"`

	DiscordBotToken               string `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordNotificationsChannelID string `mapstructure:"DISCORD_NOTIFICATIONS_CHANNEL_ID"`

	Debug bool `mapstructure:"DEBUG"`
}

func LoadConfig() *Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "wedding.db")
	viper.SetDefault("GROOM_NAME", "Groom")
	viper.SetDefault("BRIDE_NAME", "Bride")
	viper.SetDefault("CONFIRMATION_URL", "/rsvp/thank-you")

	viper.BindEnv("GROOM_NAME")
	viper.BindEnv("BRIDE_NAME")
	viper.BindEnv("WEDDING_DATE")
	viper.BindEnv("VENUE_NAME")
	viper.BindEnv("RSVP_DEADLINE")
	viper.BindEnv("CONFIRMATION_URL")
	viper.BindEnv("DISCORD_BOT_TOKEN")
	viper.BindEnv("DISCORD_NOTIFICATIONS_CHANNEL_ID")
	viper.BindEnv("DEBUG")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatal().Err(err).Msg("unable to decode config")
	}

	return &config
}
