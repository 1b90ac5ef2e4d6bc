package contacttests

import (
	"github.com/launchdarkly/contact-manager-tests/framework"
)

func (s *contactTests) DoContactCreationTests(t *framework.Context) {
	s.withNewManager(t)

	t.Run("creates contact", func(t *framework.Context) {
		addContact(t, s.manager, defaultFirstName, defaultLastName, defaultPhoneNumber)
		requireSingleContact(t, s.manager, defaultFirstName, defaultLastName, defaultPhoneNumber)
	})

	t.Run("keeps insertion order", func(t *framework.Context) {
		addContact(t, s.manager, "Homi", "Bodhanwala", "0123456789")
		addContact(t, s.manager, "Ada", "Lovelace", "0123456987")
		addContact(t, s.manager, "Alan", "Turing", "0123456897")
		requireContacts(t, s.manager,
			contactFields{"Homi", "Bodhanwala", "0123456789"},
			contactFields{"Ada", "Lovelace", "0123456987"},
			contactFields{"Alan", "Turing", "0123456897"},
		)
	})

	t.Run("keeps duplicates", func(t *framework.Context) {
		addContact(t, s.manager, defaultFirstName, defaultLastName, defaultPhoneNumber)
		addContact(t, s.manager, defaultFirstName, defaultLastName, defaultPhoneNumber)
		same := contactFields{defaultFirstName, defaultLastName, defaultPhoneNumber}
		requireContacts(t, s.manager, same, same)
	})

	t.Run("accepts empty strings", func(t *framework.Context) {
		addContact(t, s.manager, "", "", "")
		requireSingleContact(t, s.manager, "", "", "")
	})

	t.Run("does not validate phone number format", func(t *framework.Context) {
		addContact(t, s.manager, defaultFirstName, defaultLastName, "call me maybe")
		requireSingleContact(t, s.manager, defaultFirstName, defaultLastName, "call me maybe")
	})
}
