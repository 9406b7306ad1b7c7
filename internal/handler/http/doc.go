// Package http implements the HTTP transport layer of the auth API.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as bearer authentication, request tracing, access logging and
// response compression are handled here before requests are delegated to the
// service layer.
package http
