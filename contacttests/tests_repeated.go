package contacttests

import (
	"github.com/launchdarkly/contact-manager-tests/framework"
)

const repetitions = 5

func (s *contactTests) DoRepeatedTests(t *framework.Context) {
	s.withNewManager(t)

	t.Repeat("contact creation", repetitions,
		"repeating contact creation {currentRepetition} of {totalRepetitions}",
		func(t *framework.Context, info framework.RepetitionInfo) {
			t.Debug("repetition %d of %d", info.Current, info.Total)
			addContact(t, s.manager, defaultFirstName, defaultLastName, defaultPhoneNumber)
			requireSingleContact(t, s.manager, defaultFirstName, defaultLastName, defaultPhoneNumber)
		})
}
