// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Memory is the predicate function for memory builders.
type Memory func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// PersonaConfiguration is the predicate function for personaconfiguration builders.
type PersonaConfiguration func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)
