package bio

import "github.com/eringen/bio/views"

// Value types shared with the views package so templates and the query layer
// agree on one shape.
type (
	SiteMetadata = views.SiteMetadata
	Social       = views.Social
	FixedImage   = views.FixedImage
	BioProps     = views.BioProps
)

// BioData is the resolved result of the bio query: the avatar descriptor and
// the site metadata, in the shape the component consumes.
type BioData struct {
	Avatar FixedImage
	Site   SiteMetadata
}
