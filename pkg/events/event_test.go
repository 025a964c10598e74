package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewBaseEvent(t *testing.T) {
	before := time.Now().UTC()
	evt := NewBaseEvent("bureau.client.updated", "client-19", "Client")
	after := time.Now().UTC()

	assert.NotEmpty(t, evt.EventID())
	assert.Equal(t, "bureau.client.updated", evt.EventType())
	assert.Equal(t, "client-19", evt.AggregateID())
	assert.Equal(t, "Client", evt.AggregateType())
	assert.False(t, evt.OccurredAt().Before(before))
	assert.False(t, evt.OccurredAt().After(after))
}

func TestBaseEventIDsAreUnique(t *testing.T) {
	a := NewBaseEvent("x", "1", "T")
	b := NewBaseEvent("x", "1", "T")
	assert.NotEqual(t, a.EventID(), b.EventID())
}
