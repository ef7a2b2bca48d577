package bio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// ErrAvatarNotFound is returned when no content file matches the avatar pattern.
var ErrAvatarNotFound = errors.New("bio: no file matches avatar pattern")

// errStopWalk ends the content walk at the first match.
var errStopWalk = errors.New("stop walk")

// QueryOptions describes the bio query: where to look for the avatar, how to
// size it, and where site metadata lives.
type QueryOptions struct {
	ContentDir    string
	SiteFile      string
	AvatarPattern *regexp.Regexp
	Width         int
	Height        int
	OutDir        string // when set, fixed variants are written here
}

// Query resolves the avatar and site metadata in one pass, returning the
// object the bio component renders from.
func Query(ctx context.Context, opts QueryOptions) (BioData, error) {
	if opts.AvatarPattern == nil {
		opts.AvatarPattern = defaultAvatarPattern
	}

	site, err := LoadSiteMetadata(opts.SiteFile)
	if err != nil {
		return BioData{}, err
	}

	path, err := findFile(ctx, opts.ContentDir, opts.AvatarPattern)
	if err != nil {
		return BioData{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return BioData{}, fmt.Errorf("open avatar: %w", err)
	}
	defer f.Close()

	avatar, variants, err := ProcessFixed(f, filepath.Base(path), FixedOptions{Width: opts.Width, Height: opts.Height})
	if err != nil {
		return BioData{}, fmt.Errorf("avatar %s: %w", path, err)
	}
	if opts.OutDir != "" {
		if err := WriteVariants(opts.OutDir, variants); err != nil {
			return BioData{}, err
		}
	}
	return BioData{Avatar: avatar, Site: site}, nil
}

// LoadSiteMetadata reads the site-wide metadata YAML file.
func LoadSiteMetadata(path string) (SiteMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SiteMetadata{}, fmt.Errorf("read site metadata: %w", err)
	}
	var doc struct {
		SiteMetadata SiteMetadata `yaml:"siteMetadata"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return SiteMetadata{}, fmt.Errorf("parse site metadata %s: %w", path, err)
	}
	return doc.SiteMetadata, nil
}

// findFile returns the first regular file under root, in lexical order, whose
// absolute slash-separated path matches re.
func findFile(ctx context.Context, root string, re *regexp.Regexp) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve content dir: %w", err)
	}
	var found string
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.Type().IsRegular() && re.MatchString(filepath.ToSlash(path)) {
			found = path
			return errStopWalk
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStopWalk) {
		return "", fmt.Errorf("walk %s: %w", root, err)
	}
	if found == "" {
		return "", fmt.Errorf("%w: %s under %s", ErrAvatarNotFound, re, root)
	}
	return found, nil
}
