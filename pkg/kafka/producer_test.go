package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateWriterReusesWriters(t *testing.T) {
	p := NewProducer(Config{Brokers: []string{"localhost:9092"}})
	defer p.Close()

	w1 := p.getOrCreateWriter("bureau.events")
	w2 := p.getOrCreateWriter("bureau.events")
	w3 := p.getOrCreateWriter("bureau.ingestion")

	assert.Same(t, w1, w2)
	assert.NotSame(t, w1, w3)
}

func TestCloseClearsWriters(t *testing.T) {
	p := NewProducer(Config{Brokers: []string{"localhost:9092"}})
	p.getOrCreateWriter("bureau.events")

	require.NoError(t, p.Close())
	assert.Empty(t, p.writers)
}
