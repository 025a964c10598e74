package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agarciagaray/mi-riesgo/internal/domain/event"
	"github.com/agarciagaray/mi-riesgo/internal/domain/model"
)

func newTestClient(t *testing.T) model.Client {
	t.Helper()
	client, err := model.NewClient(
		1, 1,
		"1020304050", "Ana María Gómez",
		date(1988, time.March, 14),
		"Calle 45 # 12-30", "3001234567", "ana@example.com",
		date(2023, time.June, 1),
	)
	require.NoError(t, err)
	return client
}

func TestNewClient_RequiresIdentity(t *testing.T) {
	_, err := model.NewClient(1, 1, "", "Ana", date(1988, time.March, 14), "", "", "", time.Now())
	assert.Error(t, err)

	_, err = model.NewClient(1, 1, "1020304050", "", date(1988, time.March, 14), "", "", "", time.Now())
	assert.Error(t, err)
}

func TestNewClient_SeedsContactHistories(t *testing.T) {
	client := newTestClient(t)

	require.Len(t, client.Addresses(), 1)
	assert.Equal(t, "Calle 45 # 12-30", client.Addresses()[0].Value)
	require.Len(t, client.Phones(), 1)
	require.Len(t, client.Emails(), 1)
}

func TestUpdateContact_PrependsChangedValues(t *testing.T) {
	client := newTestClient(t)
	now := date(2024, time.February, 1)

	updated, err := client.UpdateContact(
		"Ana María Gómez",
		"Carrera 7 # 80-45", // changed
		"3001234567",        // unchanged
		"ana.gomez@example.com", // changed
		nil,
		now,
	)
	require.NoError(t, err)

	addresses := updated.Addresses()
	require.Len(t, addresses, 2)
	assert.Equal(t, "Carrera 7 # 80-45", addresses[0].Value)
	assert.Equal(t, now, addresses[0].DateModified)
	assert.Equal(t, "Calle 45 # 12-30", addresses[1].Value)

	assert.Len(t, updated.Phones(), 1)
	require.Len(t, updated.Emails(), 2)

	// The original aggregate is untouched.
	assert.Len(t, client.Addresses(), 1)
}

func TestUpdateContact_SameValueIsIdempotent(t *testing.T) {
	client := newTestClient(t)

	once, err := client.UpdateContact("Ana María Gómez", "Calle 45 # 12-30", "3001234567", "ana@example.com", nil, date(2024, time.February, 1))
	require.NoError(t, err)
	twice, err := once.UpdateContact("Ana María Gómez", "Calle 45 # 12-30", "3001234567", "ana@example.com", nil, date(2024, time.March, 1))
	require.NoError(t, err)

	assert.Len(t, twice.Addresses(), 1)
	assert.Len(t, twice.Phones(), 1)
	assert.Len(t, twice.Emails(), 1)
}

func TestUpdateContact_ReplacesFlags(t *testing.T) {
	client := newTestClient(t)

	updated, err := client.UpdateContact("Ana María Gómez", "", "", "", []string{"Fraude"}, date(2024, time.February, 1))
	require.NoError(t, err)
	assert.True(t, updated.HasFlag("Fraude"))

	cleared, err := updated.UpdateContact("Ana María Gómez", "", "", "", nil, date(2024, time.March, 1))
	require.NoError(t, err)
	assert.False(t, cleared.HasFlag("Fraude"))
}

func TestUpdateContact_RecordsEvent(t *testing.T) {
	client := newTestClient(t)

	updated, err := client.UpdateContact("Ana Gómez", "", "", "", nil, date(2024, time.February, 1))
	require.NoError(t, err)

	events := updated.DomainEvents()
	require.Len(t, events, 1)
	evt, ok := events[0].(event.ClientUpdated)
	require.True(t, ok)
	assert.Equal(t, "bureau.client.updated", evt.EventType())
	assert.Equal(t, "1", evt.AggregateID())
	assert.Equal(t, "Ana Gómez", evt.FullName)

	assert.Empty(t, updated.ClearEvents().DomainEvents())
}

func TestUpdateContact_EmptyNameRejected(t *testing.T) {
	client := newTestClient(t)

	_, err := client.UpdateContact("", "", "", "", nil, time.Now())
	assert.Error(t, err)
}

func TestFlags_DefensiveCopy(t *testing.T) {
	client := model.ReconstructClient(
		1, 1, "1020304050", "Ana",
		date(1988, time.March, 14),
		nil, nil, nil,
		[]string{"Castigado"},
	)

	flags := client.Flags()
	flags[0] = "mutated"
	assert.True(t, client.HasFlag("Castigado"))
}
