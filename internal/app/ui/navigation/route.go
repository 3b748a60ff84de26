package navigation

import (
	"fmt"
	"strings"

	"swatch/internal/app/errors"
	"swatch/internal/config"
)

// Route identifies a page of the application by its path
type Route string

const (
	RouteSingle   Route = config.RouteSingle
	RouteGradient Route = config.RouteGradient
)

var routes = []Route{RouteSingle, RouteGradient}

// String returns the path of the route
func (r Route) String() string {
	return string(r)
}

// Title returns the label shown in the navigation bar
func (r Route) Title() string {
	switch r {
	case RouteSingle:
		return "Single color"
	case RouteGradient:
		return "Gradient"
	default:
		return "unknown"
	}
}

// ParseRoute maps a path to a known route, ignoring surrounding spaces and a trailing slash
func ParseRoute(path string) (Route, error) {
	p := strings.TrimSpace(path)
	if len(p) > 1 {
		p = strings.TrimSuffix(p, "/")
	}

	if p == "" {
		p = string(RouteSingle)
	}

	for _, r := range routes {
		if string(r) == p {
			return r, nil
		}
	}

	return "", fmt.Errorf("%w: '%s'", errors.ErrUnknownRoute, path)
}
