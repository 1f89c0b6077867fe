// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (records, identifiers, queries), the closed Error
// type and contracts (interfaces) only.
package domain
