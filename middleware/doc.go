// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /ideas", middleware.WithLogging(handler))

Logs request start (request_id, method, path, remote) and completion
(request_id, duration_ms). Voter identity strings are never logged.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

# JSON Helpers

JSONResponse, ErrorResponse, and ParseJSONBody keep handler bodies free
of encoding boilerplate. ErrorResponse always emits the models.ErrorResponse
shape.
*/
package middleware
