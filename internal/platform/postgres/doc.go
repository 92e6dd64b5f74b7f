// Package postgres implements the internal/store interfaces on PostgreSQL
// through pgx's database/sql driver. It also embeds the goose migrations
// that create the schema and seed the syllabus.
package postgres
