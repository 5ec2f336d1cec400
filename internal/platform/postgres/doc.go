// Package postgres provides PostgreSQL implementations of the store
// interfaces. All queries use parameter binding exclusively, and raw
// database errors never escape this package: constraint violations and
// missing rows are translated into the sentinel errors defined in the
// store package.
package postgres
