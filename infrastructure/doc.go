// Package infrastructure contains the concrete implementations of the
// core interfaces: cache backends (memory, SQLite, Redis), the outbound
// HTTP client and the structured logger. Core packages depend only on
// the interfaces, never on anything in here.
package infrastructure
