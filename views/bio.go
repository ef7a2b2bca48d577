package views

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

const (
	bioLead  = "A blog by "
	bioTrail = " where he documents his journey of learning Vue from the perspective of a Vue Newbie."
)

// Bio renders the author avatar followed by the byline paragraph.
func Bio(p BioProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, bioMarkup(p))
		return err
	})
}

func bioMarkup(p BioProps) string {
	r := p.Rhythm
	author := templ.EscapeString(p.Site.Author)
	href := templ.EscapeString(string(templ.URL(TwitterURL(p.Site.Social.Twitter))))

	container := inlineStyle(
		declaration{"display", "flex"},
		declaration{"margin-bottom", r.Rhythm(2.5)},
	)
	size := r.Rhythm(2)
	avatar := inlineStyle(
		declaration{"margin-right", r.Rhythm(1.0 / 2)},
		declaration{"margin-bottom", "0"},
		declaration{"width", size},
		declaration{"height", size},
		declaration{"border-radius", "50%"},
	)

	var b strings.Builder
	b.WriteString(`<div style="`)
	b.WriteString(templ.EscapeString(container))
	b.WriteString(`"><img src="`)
	b.WriteString(templ.EscapeString(p.ProfilePic))
	b.WriteString(`" alt="`)
	b.WriteString(author)
	b.WriteString(`"`)
	if w, h := intrinsicSize(p.Avatar); w > 0 {
		b.WriteString(` width="` + strconv.Itoa(w) + `" height="` + strconv.Itoa(h) + `"`)
	}
	b.WriteString(` style="`)
	b.WriteString(templ.EscapeString(avatar))
	b.WriteString(`"><p>`)
	b.WriteString(bioLead)
	b.WriteString(`<a href="`)
	b.WriteString(href)
	b.WriteString(`"><strong>`)
	b.WriteString(author)
	b.WriteString(`</strong></a>`)
	b.WriteString(bioTrail)
	b.WriteString(`</p></div>`)
	return b.String()
}

// intrinsicSize keeps the img square even if the descriptor is not.
func intrinsicSize(img FixedImage) (int, int) {
	n := img.Width
	if img.Height < n {
		n = img.Height
	}
	return n, n
}
