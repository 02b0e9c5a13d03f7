// Package queries contains the read side of the drone fleet.
// Handlers read straight from the database with raw SQL and return read
// models; they never load aggregates through repositories.
package queries
