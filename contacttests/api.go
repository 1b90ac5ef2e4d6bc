package contacttests

import (
	"github.com/launchdarkly/contact-manager-tests/contacts"
	"github.com/launchdarkly/contact-manager-tests/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	defaultFirstName   = "Homi"
	defaultLastName    = "Bodhanwala"
	defaultPhoneNumber = "0123456789"
)

// contactFields is the expected content of a contact.
type contactFields struct {
	firstName, lastName, phoneNumber string
}

func fieldsOf(c contacts.Contact) contactFields {
	return contactFields{c.FirstName(), c.LastName(), c.PhoneNumber()}
}

func str(s string) ldvalue.OptionalString { return ldvalue.NewOptionalString(s) }

var null = ldvalue.OptionalString{}

// addContact adds a contact and fails the test immediately if that is not successful.
func addContact(t *framework.Context, m *contacts.ContactManager, firstName, lastName, phoneNumber string) {
	t.Debug("Adding contact: %s, %s, %s", firstName, lastName, phoneNumber)
	require.NoError(t, m.AddContact(str(firstName), str(lastName), str(phoneNumber)))
}

// requireSingleContact verifies that the manager holds exactly one contact with the given fields.
func requireSingleContact(t *framework.Context, m *contacts.ContactManager, firstName, lastName, phoneNumber string) {
	all := m.GetAllContacts()
	require.NotEmpty(t, all)
	require.Len(t, all, 1)
	assert.Equal(t, contactFields{firstName, lastName, phoneNumber}, fieldsOf(all[0]))
}

// requireContacts verifies the exact content and order of the manager's contacts.
func requireContacts(t *framework.Context, m *contacts.ContactManager, expected ...contactFields) {
	var actual []contactFields
	for _, c := range m.GetAllContacts() {
		actual = append(actual, fieldsOf(c))
	}
	require.Equal(t, expected, actual)
}

// requireInvalidArgument verifies that AddContact is rejected and leaves the manager unchanged.
func requireInvalidArgument(
	t *framework.Context,
	m *contacts.ContactManager,
	firstName, lastName, phoneNumber ldvalue.OptionalString,
) {
	before := m.Len()
	err := m.AddContact(firstName, lastName, phoneNumber)
	require.Error(t, err)
	t.Debug("AddContact returned: %s", err)
	assert.ErrorIs(t, err, contacts.ErrInvalidArgument)
	assert.Equal(t, before, m.Len(), "contact list should not change after a rejected AddContact")
}
