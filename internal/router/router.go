// Package router models the client's view table and the navigation guard
// that gates entry to protected views.
package router

import "github.com/romsper/testing-playground-client/internal/api"

// Route describes a navigable view.
type Route struct {
	Name         string
	Path         string
	RequiresAuth bool
}

// DefaultRoutes is the storefront view table. The orders view is the only
// one requiring authentication.
func DefaultRoutes() []Route {
	return []Route{
		{Name: "home", Path: "/"},
		{Name: "contact", Path: "/contact"},
		{Name: "products", Path: "/products"},
		{Name: "orders", Path: "/orders", RequiresAuth: true},
		{Name: "not-found", Path: "/404"},
	}
}

// Router resolves view names against the route table, applying the
// navigation guard on the way.
type Router struct {
	routes   []Route
	home     Route
	notFound Route
	tokens   api.TokenSource
}

// New creates a Router over the given table. The "home" route is the guard's
// redirect target and the "not-found" route catches unknown names; both must
// be present in the table.
func New(routes []Route, tokens api.TokenSource) *Router {
	r := &Router{
		routes: routes,
		tokens: tokens,
	}
	for _, route := range routes {
		switch route.Name {
		case "home":
			r.home = route
		case "not-found":
			r.notFound = route
		}
	}

	return r
}

// Resolve returns the route registered under name, redirecting to home when
// the guard denies entry and to not-found when no such route exists.
func (r *Router) Resolve(name string) Route {
	for _, route := range r.routes {
		if route.Name != name {
			continue
		}
		if !Allowed(route, r.tokens.AccessToken()) {
			return r.home
		}

		return route
	}

	return r.notFound
}

// Allowed is the navigation guard: a synchronous, side-effect-free predicate
// over the route and the current access token. Views that do not require
// authentication are always allowed.
func Allowed(route Route, token string) bool {
	if !route.RequiresAuth {
		return true
	}

	return token != ""
}
