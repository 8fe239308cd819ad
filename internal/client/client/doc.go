// Package client contains the HTTP clients for the two Around backends.
//
// # Overview
//
//  1. AuthClient wraps the registration/authorization backend: Register
//     (POST /signup), Authorize (POST /signin) and CheckToken
//     (GET /users/me with a bearer token).
//  2. ContentClient wraps the content backend: profile, avatar, cards and
//     likes. It holds a bearer token that can be set or cleared at any time
//     and is injected into every request.
//  3. Both share one response handler: a 2xx body is decoded (leniently for
//     the auth backend, where an empty or non-JSON body counts as {}), any
//     other status becomes a *ResponseError carrying status code, status
//     text, message, raw body and request URL.
//
// # Error Handling
//
// Failures are never retried or swallowed. Transport failures wrap
// ErrUnavailable; a 401 matches ErrUnauthorized through errors.Is. Use
// StatusCode to read the HTTP status of any other failure.
//
// Both clients are safe for concurrent use.
package client
