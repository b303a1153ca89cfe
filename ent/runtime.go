// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/conclave-dev/conclave/ent/event"
	"github.com/conclave-dev/conclave/ent/memory"
	"github.com/conclave-dev/conclave/ent/message"
	"github.com/conclave-dev/conclave/ent/personaconfiguration"
	"github.com/conclave-dev/conclave/ent/schema"
	"github.com/conclave-dev/conclave/ent/session"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	memoryFields := schema.Memory{}.Fields()
	_ = memoryFields
	// memoryDescCreatedAt is the schema descriptor for created_at field.
	memoryDescCreatedAt := memoryFields[5].Descriptor()
	// memory.DefaultCreatedAt holds the default value on creation for the created_at field.
	memory.DefaultCreatedAt = memoryDescCreatedAt.Default.(func() time.Time)
	// memoryDescAccessCount is the schema descriptor for access_count field.
	memoryDescAccessCount := memoryFields[6].Descriptor()
	// memory.DefaultAccessCount holds the default value on creation for the access_count field.
	memory.DefaultAccessCount = memoryDescAccessCount.Default.(int)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescIsStuck is the schema descriptor for is_stuck field.
	messageDescIsStuck := messageFields[9].Descriptor()
	// message.DefaultIsStuck holds the default value on creation for the is_stuck field.
	message.DefaultIsStuck = messageDescIsStuck.Default.(bool)
	// messageDescTimestamp is the schema descriptor for timestamp field.
	messageDescTimestamp := messageFields[12].Descriptor()
	// message.DefaultTimestamp holds the default value on creation for the timestamp field.
	message.DefaultTimestamp = messageDescTimestamp.Default.(func() time.Time)
	personaconfigurationFields := schema.PersonaConfiguration{}.Fields()
	_ = personaconfigurationFields
	// personaconfigurationDescEnabled is the schema descriptor for enabled field.
	personaconfigurationDescEnabled := personaconfigurationFields[7].Descriptor()
	// personaconfiguration.DefaultEnabled holds the default value on creation for the enabled field.
	personaconfiguration.DefaultEnabled = personaconfigurationDescEnabled.Default.(bool)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[6].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescUpdatedAt is the schema descriptor for updated_at field.
	sessionDescUpdatedAt := sessionFields[7].Descriptor()
	// session.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	session.DefaultUpdatedAt = sessionDescUpdatedAt.Default.(func() time.Time)
	// session.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	session.UpdateDefaultUpdatedAt = sessionDescUpdatedAt.UpdateDefault.(func() time.Time)
}
