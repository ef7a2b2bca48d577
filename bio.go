// Package bio builds the author bio fragment of a static blog: it queries
// site metadata and a fixed-size avatar at build time, bundles the profile
// picture, and renders the fragment with the views package.
//
// The same build can be written to disk or previewed through an Echo server.
package bio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/eringen/bio/views"
)

const fragmentFile = "bio.html"

// App wires the query, asset bundling and rendering together.
type App struct {
	Config Config
	Echo   *echo.Echo

	log   *logrus.Logger
	props *BioProps // set by Prepare
}

// New creates an App with the given configuration.
func New(cfg Config, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.log == nil {
		a.log = NewLogger(a.Config.Env)
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true
	return a
}

// Build runs the bio query, bundles the profile picture and returns the
// props for one render pass.
func (a *App) Build(ctx context.Context) (BioProps, error) {
	cfg := a.Config
	data, err := Query(ctx, QueryOptions{
		ContentDir:    cfg.ContentDir,
		SiteFile:      cfg.SiteFile,
		AvatarPattern: cfg.AvatarPattern,
		Width:         cfg.AvatarWidth,
		Height:        cfg.AvatarHeight,
		OutDir:        cfg.OutDir,
	})
	if err != nil {
		return BioProps{}, fmt.Errorf("bio query: %w", err)
	}
	if cfg.Author != "" {
		data.Site.Author = cfg.Author
	}
	if cfg.Twitter != "" {
		data.Site.Social.Twitter = cfg.Twitter
	}
	a.log.WithFields(logrus.Fields{
		"author": data.Site.Author,
		"avatar": data.Avatar.Src,
	}).Debug("bio query resolved")

	pic, err := ResolveAsset(cfg.ContentDir, cfg.ProfilePic, cfg.OutDir)
	if err != nil {
		return BioProps{}, err
	}
	a.log.WithField("src", pic).Debug("profile picture bundled")

	return BioProps{
		Site:       data.Site,
		ProfilePic: pic,
		Avatar:     data.Avatar,
		Rhythm:     cfg.Typography,
	}, nil
}

// RenderTo builds and writes the bio fragment to w.
func (a *App) RenderTo(ctx context.Context, w io.Writer) error {
	p, err := a.Build(ctx)
	if err != nil {
		return err
	}
	return views.Bio(p).Render(ctx, w)
}

// WriteFragment builds the bio and writes it to OutDir/bio.html, returning the path.
func (a *App) WriteFragment(ctx context.Context) (string, error) {
	var buf bytes.Buffer
	if err := a.RenderTo(ctx, &buf); err != nil {
		return "", err
	}
	if err := os.MkdirAll(a.Config.OutDir, 0o755); err != nil {
		return "", fmt.Errorf("create out dir: %w", err)
	}
	out := filepath.Join(a.Config.OutDir, fragmentFile)
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write fragment: %w", err)
	}
	a.log.WithFields(logrus.Fields{"path": out, "bytes": buf.Len()}).Info("bio fragment written")
	return out, nil
}
