// package server contains middleware & handlers for the metadata backend
package server

import (
	"net/http"
)

// Middleware wraps an http.Handler and returns a new http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// Route pairs an HTTP method with the path pattern it is served on.
type Route struct {
	Method string
	Path   string
}

// Handler defines the interface for HTTP request handlers in the metadata backend.
//
// Method filtering happens in the router, so ServeHTTP only ever sees
// requests with the method its route declared.
type Handler interface {
	http.Handler
	Routes() []Route // Routes returns the method/path pairs this handler serves
}

// Router defines the interface for HTTP routing and middleware management.
type Router interface {
	Use(middleware ...Middleware)                     // Use adds middleware to the router's middleware stack
	Handle(method, path string, handler http.Handler) // Handle registers a handler for one method/path pair
	Handler(handler Handler)                          // Handler registers every route a Handler declares
	ServeHTTP(w http.ResponseWriter, r *http.Request) // ServeHTTP implements http.Handler for the entire router
}
