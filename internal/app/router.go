package app

import (
	"net/url"
	"strings"

	"notes/internal/types"
)

type routeKind int

const (
	routeList routeKind = iota
	routeCreate
	routeEdit
)

// Route is a location in the UI: "/", "/new" or "/notes/{id}".
type Route struct {
	kind routeKind
	id   types.NoteID
}

func ListRoute() Route {
	return Route{kind: routeList}
}

func CreateRoute() Route {
	return Route{kind: routeCreate}
}

func EditRoute(id types.NoteID) Route {
	if id.IsZero() {
		return ListRoute()
	}
	return Route{kind: routeEdit, id: id}
}

// ParseRoute maps a path to a route. Anything unrecognized is the list.
func ParseRoute(path string) Route {
	path = strings.TrimSpace(path)
	switch path {
	case "", "/":
		return ListRoute()
	case "/new":
		return CreateRoute()
	}
	rest, ok := strings.CutPrefix(path, "/notes/")
	if !ok || rest == "" || strings.Contains(rest, "/") {
		return ListRoute()
	}
	id, err := url.PathUnescape(rest)
	if err != nil {
		return ListRoute()
	}
	return EditRoute(types.NoteID(id))
}

func (r Route) Path() string {
	switch r.kind {
	case routeCreate:
		return "/new"
	case routeEdit:
		return "/notes/" + url.PathEscape(r.id.String())
	default:
		return "/"
	}
}

func (r Route) NoteID() types.NoteID {
	return r.id
}
