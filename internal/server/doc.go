// Package server runs the transport servers of the API.
//
// The HTTP server carries the REST API; the optional gRPC server exposes
// the health service. Both stop gracefully on SIGTERM, SIGINT or SIGQUIT.
package server
