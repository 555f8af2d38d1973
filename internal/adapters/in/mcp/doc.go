// Package mcp exposes the order workflow as Model Context Protocol tools over stdio.
//
// Every tool returns its result as JSON text. Failures reported by the shop
// (validation, missing records, stock) come back as tool errors so the
// client can read them; malformed arguments are protocol errors.
package mcp
