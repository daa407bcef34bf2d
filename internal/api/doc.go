// Package api handles incoming HTTP requests, request validation, and
// response formatting. It acts as an adapter between external clients and
// the task store, translating HTTP concerns to store operations and store
// outcomes back to status codes.
package api
