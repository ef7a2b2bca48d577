package bio

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/eringen/bio/views"
)

func (a *App) handleHome(c echo.Context) error {
	bio := views.Bio(*a.props)
	if c.Request().Header.Get("HX-Request") == "true" && c.QueryParam("partial") == "bio" {
		return Render(c, bio)
	}
	return Render(c, views.Page(a.props.Site, bio))
}

func (a *App) handleBio(c echo.Context) error {
	return Render(c, views.Bio(*a.props))
}

func handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
	}
	if code >= 500 {
		a.log.WithFields(logrus.Fields{
			"uri":   c.Request().RequestURI,
			"error": err.Error(),
		}).Error("server error")
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
