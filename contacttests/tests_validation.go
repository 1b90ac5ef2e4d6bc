package contacttests

import (
	"github.com/launchdarkly/contact-manager-tests/framework"
)

func (s *contactTests) DoNullValidationTests(t *framework.Context) {
	s.withNewManager(t)

	t.Run("first name is null", func(t *framework.Context) {
		requireInvalidArgument(t, s.manager, null, str(defaultLastName), str(defaultPhoneNumber))
	})

	t.Run("last name is null", func(t *framework.Context) {
		requireInvalidArgument(t, s.manager, str(defaultFirstName), null, str(defaultPhoneNumber))
	})

	t.Run("phone number is null", func(t *framework.Context) {
		requireInvalidArgument(t, s.manager, str(defaultFirstName), str(defaultLastName), null)
	})

	t.Run("rejected contact leaves existing contacts alone", func(t *framework.Context) {
		addContact(t, s.manager, defaultFirstName, defaultLastName, defaultPhoneNumber)
		requireInvalidArgument(t, s.manager, null, null, null)
		requireSingleContact(t, s.manager, defaultFirstName, defaultLastName, defaultPhoneNumber)
	})
}
