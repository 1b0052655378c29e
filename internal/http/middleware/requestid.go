package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the standard header name used to propagate request IDs.
	RequestIDHeader = "X-Request-ID"
	// RequestIDLocalKey is the key used to store the request ID in Fiber's context locals.
	RequestIDLocalKey = "request_id"

	maxRequestIDLen = 128
)

// RequestID ensures every request carries a request ID.
//
// Behavior:
// - Reads X-Request-ID from the incoming request header.
// - If missing, longer than 128 bytes or not printable ASCII, generates a new UUID.
// - Stores the value in Fiber context locals under RequestIDLocalKey.
// - Adds X-Request-ID to the response header with the same value.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if !validRequestID(id) {
			id = uuid.NewString()
		}

		c.Locals(RequestIDLocalKey, id)
		c.Set(RequestIDHeader, id)

		return c.Next()
	}
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
