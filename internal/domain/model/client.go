package model

import (
	"errors"
	"time"

	"github.com/agarciagaray/mi-riesgo/internal/domain/event"
)

// ---------------------------------------------------------------------------
// Client aggregate root
// ---------------------------------------------------------------------------

// Client is an immutable aggregate. Mutations return a new copy.
//
// Contact histories are prepend-only: the first entry of each list is the
// active value and older entries are never removed.
type Client struct {
	id                 int64
	companyID          int64
	nationalIdentifier string
	fullName           string
	birthDate          time.Time
	addresses          []HistoricEntry
	phones             []HistoricEntry
	emails             []HistoricEntry
	flags              []string
	domainEvents       []event.DomainEvent
}

// NewClient creates a client record as produced by ingestion.
func NewClient(
	id, companyID int64,
	nationalIdentifier, fullName string,
	birthDate time.Time,
	address, phone, email string,
	now time.Time,
) (Client, error) {
	if nationalIdentifier == "" {
		return Client{}, errors.New("national identifier is required")
	}
	if fullName == "" {
		return Client{}, errors.New("full name is required")
	}

	c := Client{
		id:                 id,
		companyID:          companyID,
		nationalIdentifier: nationalIdentifier,
		fullName:           fullName,
		birthDate:          birthDate,
	}
	if address != "" {
		c.addresses = []HistoricEntry{{Value: address, DateModified: now}}
	}
	if phone != "" {
		c.phones = []HistoricEntry{{Value: phone, DateModified: now}}
	}
	if email != "" {
		c.emails = []HistoricEntry{{Value: email, DateModified: now}}
	}
	return c, nil
}

// ReconstructClient rebuilds a Client aggregate from persistence.
func ReconstructClient(
	id, companyID int64,
	nationalIdentifier, fullName string,
	birthDate time.Time,
	addresses, phones, emails []HistoricEntry,
	flags []string,
) Client {
	return Client{
		id:                 id,
		companyID:          companyID,
		nationalIdentifier: nationalIdentifier,
		fullName:           fullName,
		birthDate:          birthDate,
		addresses:          addresses,
		phones:             phones,
		emails:             emails,
		flags:              flags,
	}
}

// ---------------------------------------------------------------------------
// State transitions
// ---------------------------------------------------------------------------

// UpdateContact applies an analyst edit. Changed contact fields are prepended
// to their history lists; unchanged fields leave the history untouched. The
// flag set is replaced wholesale.
func (c Client) UpdateContact(fullName, address, phone, email string, flags []string, now time.Time) (Client, error) {
	if fullName == "" {
		return c, errors.New("full name is required")
	}

	next := c
	next.fullName = fullName
	next.addresses = prependIfChanged(c.addresses, address, now)
	next.phones = prependIfChanged(c.phones, phone, now)
	next.emails = prependIfChanged(c.emails, email, now)
	next.flags = append([]string(nil), flags...)

	next.domainEvents = append(copyEvents(c.domainEvents), event.NewClientUpdated(
		c.id, c.nationalIdentifier, fullName, flags,
	))
	return next, nil
}

// prependIfChanged adds a new history entry when the value differs from the
// currently active one. Empty values are ignored.
func prependIfChanged(history []HistoricEntry, value string, now time.Time) []HistoricEntry {
	if value == "" || (len(history) > 0 && history[0].Value == value) {
		return history
	}
	next := make([]HistoricEntry, 0, len(history)+1)
	next = append(next, HistoricEntry{Value: value, DateModified: now})
	return append(next, history...)
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (c Client) ID() int64                  { return c.id }
func (c Client) CompanyID() int64           { return c.companyID }
func (c Client) NationalIdentifier() string { return c.nationalIdentifier }
func (c Client) FullName() string           { return c.fullName }
func (c Client) BirthDate() time.Time       { return c.birthDate }

// Addresses returns a defensive copy of the address history, newest first.
func (c Client) Addresses() []HistoricEntry { return copyHistory(c.addresses) }

// Phones returns a defensive copy of the phone history, newest first.
func (c Client) Phones() []HistoricEntry { return copyHistory(c.phones) }

// Emails returns a defensive copy of the email history, newest first.
func (c Client) Emails() []HistoricEntry { return copyHistory(c.emails) }

// Flags returns a defensive copy of the client's risk flags.
func (c Client) Flags() []string {
	if c.flags == nil {
		return nil
	}
	return append([]string(nil), c.flags...)
}

// HasFlag reports whether the client carries the given risk flag.
func (c Client) HasFlag(flag string) bool {
	for _, f := range c.flags {
		if f == flag {
			return true
		}
	}
	return false
}

// DomainEvents returns the events recorded by state transitions.
func (c Client) DomainEvents() []event.DomainEvent { return c.domainEvents }

// ClearEvents returns a copy with an empty event list.
func (c Client) ClearEvents() Client {
	next := c
	next.domainEvents = nil
	return next
}

func copyHistory(history []HistoricEntry) []HistoricEntry {
	if history == nil {
		return nil
	}
	out := make([]HistoricEntry, len(history))
	copy(out, history)
	return out
}

func copyEvents(events []event.DomainEvent) []event.DomainEvent {
	if events == nil {
		return nil
	}
	out := make([]event.DomainEvent, len(events))
	copy(out, events)
	return out
}
