package views

import "github.com/eringen/bio/typography"

// Social holds the site's social handles.
type Social struct {
	Twitter string `yaml:"twitter"` // handle without the leading "@"
}

// SiteMetadata is the site-wide configuration the bio reads.
type SiteMetadata struct {
	Title       string `yaml:"title"`
	Author      string `yaml:"author"`
	Description string `yaml:"description"`
	SiteURL     string `yaml:"siteUrl"`
	Social      Social `yaml:"social"`
}

// FixedImage is a pre-sized, pre-encoded image produced at build time.
// Bio reads only Width and Height; Src, SrcSet and Base64 complete the
// descriptor the avatar query returns, for pages that want the responsive
// variants or the blur-up placeholder.
type FixedImage struct {
	Src    string // public path of the 1x variant
	SrcSet string // "path 1x, path 1.5x, ..." over the produced densities
	Base64 string // data URI placeholder
	Width  int
	Height int
}

// BioProps is everything the Bio component needs for one render pass.
type BioProps struct {
	Site       SiteMetadata
	ProfilePic string // resolved source of the bundled profile picture
	Avatar     FixedImage
	Rhythm     typography.Typography
}
