// Package contacts contains the in-memory contact list that the contract tests exercise.
package contacts

import (
	"errors"
	"fmt"
	"sync"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// ErrInvalidArgument is returned by ContactManager.AddContact when a required field is null.
var ErrInvalidArgument = errors.New("invalid argument")

// Contact is a single entry in the contact list. Its fields cannot be changed after it is created.
type Contact struct {
	firstName   string
	lastName    string
	phoneNumber string
}

func (c Contact) FirstName() string   { return c.firstName }
func (c Contact) LastName() string    { return c.lastName }
func (c Contact) PhoneNumber() string { return c.phoneNumber }

func (c Contact) String() string {
	return fmt.Sprintf("%s %s <%s>", c.firstName, c.lastName, c.phoneNumber)
}

// ContactManager owns an ordered list of contacts.
//
// Contacts are only ever appended; the list is never deduplicated, reordered, or trimmed. It is
// safe to call ContactManager methods from multiple goroutines.
type ContactManager struct {
	contacts []Contact
	lock     sync.Mutex
}

// NewContactManager creates an empty ContactManager.
func NewContactManager() *ContactManager {
	return &ContactManager{}
}

// AddContact validates the three fields and appends a new Contact to the list.
//
// An undefined OptionalString stands for a null value. If any field is null, AddContact returns an
// error wrapping ErrInvalidArgument and the list is not modified. Empty strings are accepted, and
// the phone number is not checked for any particular format.
func (m *ContactManager) AddContact(firstName, lastName, phoneNumber ldvalue.OptionalString) error {
	if err := requireField("first name", firstName); err != nil {
		return err
	}
	if err := requireField("last name", lastName); err != nil {
		return err
	}
	if err := requireField("phone number", phoneNumber); err != nil {
		return err
	}
	m.add(Contact{
		firstName:   firstName.StringValue(),
		lastName:    lastName.StringValue(),
		phoneNumber: phoneNumber.StringValue(),
	})
	return nil
}

// AddContactStrings is a shortcut for AddContact when none of the values can be null, so it
// cannot fail.
func (m *ContactManager) AddContactStrings(firstName, lastName, phoneNumber string) {
	m.add(Contact{firstName: firstName, lastName: lastName, phoneNumber: phoneNumber})
}

func (m *ContactManager) add(c Contact) {
	m.lock.Lock()
	m.contacts = append(m.contacts, c)
	m.lock.Unlock()
}

// GetAllContacts returns a copy of the contact list in the order the contacts were added.
func (m *ContactManager) GetAllContacts() []Contact {
	m.lock.Lock()
	ret := append([]Contact(nil), m.contacts...)
	m.lock.Unlock()
	return ret
}

// Len returns the number of contacts in the list.
func (m *ContactManager) Len() int {
	m.lock.Lock()
	defer m.lock.Unlock()
	return len(m.contacts)
}

func requireField(name string, value ldvalue.OptionalString) error {
	if !value.IsDefined() {
		return fmt.Errorf("%w: %s must not be null", ErrInvalidArgument, name)
	}
	return nil
}
