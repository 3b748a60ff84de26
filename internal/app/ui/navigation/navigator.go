//go:generate mockgen -source=navigator.go -destination=navigator_mock.go -package=navigation

package navigation

// Navigator tracks which route is on screen
type Navigator interface {
	// Current returns the active route
	Current() Route
	// SwitchTo changes to the specified route
	SwitchTo(route Route)
	// Toggle switches between the single color and gradient routes
	Toggle()
	// Routes lists every route in navigation bar order
	Routes() []Route
}

type navigator struct {
	current Route
}

// NewNavigator creates a navigator starting on the single color route
func NewNavigator() Navigator {
	return &navigator{
		current: RouteSingle,
	}
}

func (n *navigator) Current() Route {
	return n.current
}

func (n *navigator) SwitchTo(route Route) {
	n.current = route
}

func (n *navigator) Toggle() {
	if n.current == RouteSingle {
		n.current = RouteGradient
	} else {
		n.current = RouteSingle
	}
}

func (n *navigator) Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)

	return out
}
