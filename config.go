package bio

import (
	"fmt"
	"regexp"

	"github.com/sirupsen/logrus"

	"github.com/eringen/bio/typography"
)

// Config holds all configuration for a bio build.
type Config struct {
	ContentDir string // Source content root (default "content")
	SiteFile   string // Site metadata YAML (default "site.yaml")
	OutDir     string // Build output (default "public")
	ProfilePic string // Bundled picture, relative to ContentDir (default "assets/profile-pic.jpg")

	AvatarPattern *regexp.Regexp // Absolute-path match for the avatar (default /profile-pic.jpg/)
	AvatarWidth   int            // default 50
	AvatarHeight  int            // default 50

	Addr string // Preview listen address (default ":3000")
	Env  string // "development" or "production" (default "development")

	Author  string // Overrides site.yaml author when set
	Twitter string // Overrides site.yaml social.twitter when set

	Typography typography.Typography
}

var defaultAvatarPattern = regexp.MustCompile(`profile-pic\.jpg`)

func (c *Config) setDefaults() {
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.SiteFile == "" {
		c.SiteFile = "site.yaml"
	}
	if c.OutDir == "" {
		c.OutDir = "public"
	}
	if c.ProfilePic == "" {
		c.ProfilePic = "assets/profile-pic.jpg"
	}
	if c.AvatarPattern == nil {
		c.AvatarPattern = defaultAvatarPattern
	}
	if c.AvatarWidth <= 0 {
		c.AvatarWidth = defaultFixedSize
	}
	if c.AvatarHeight <= 0 {
		c.AvatarHeight = defaultFixedSize
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.Env == "" {
		c.Env = "development"
	}
	if c.Typography.BaseLineHeight == 0 {
		c.Typography = typography.Default()
	}
}

// ConfigFromEnv builds a Config from BIO_* and SITE_* environment variables.
func ConfigFromEnv() Config {
	return Config{
		ContentDir: EnvOr("BIO_CONTENT_DIR", "content"),
		SiteFile:   EnvOr("BIO_SITE_FILE", "site.yaml"),
		OutDir:     EnvOr("BIO_OUT_DIR", "public"),
		ProfilePic: EnvOr("BIO_PROFILE_PIC", "assets/profile-pic.jpg"),
		Addr:       EnvOr("BIO_ADDR", ":3000"),
		Env:        EnvOr("BIO_ENV", "development"),
		Author:     EnvOr("SITE_AUTHOR", ""),
		Twitter:    EnvOr("SITE_TWITTER", ""),
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithLogger replaces the default logger.
func WithLogger(l *logrus.Logger) Option {
	return func(a *App) {
		a.log = l
	}
}

// WithAvatarPattern overrides the avatar path match.
func WithAvatarPattern(re *regexp.Regexp) Option {
	return func(a *App) {
		a.Config.AvatarPattern = re
	}
}

// OptionsFromEnv returns the Options controlled by the environment.
// BIO_AVATAR_PATTERN replaces the avatar path match.
func OptionsFromEnv() ([]Option, error) {
	var opts []Option
	if p := EnvOr("BIO_AVATAR_PATTERN", ""); p != "" {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("BIO_AVATAR_PATTERN: %w", err)
		}
		opts = append(opts, WithAvatarPattern(re))
	}
	return opts, nil
}
