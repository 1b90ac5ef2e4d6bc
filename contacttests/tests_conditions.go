package contacttests

import (
	"github.com/launchdarkly/contact-manager-tests/framework"
)

func (s *contactTests) DoPlatformTests(t *framework.Context) {
	s.withNewManager(t)

	t.Run("only on macOS", func(t *framework.Context) {
		t.RequireOS("darwin")
		addContact(t, s.manager, defaultFirstName, defaultLastName, defaultPhoneNumber)
		requireSingleContact(t, s.manager, defaultFirstName, defaultLastName, defaultPhoneNumber)
	})

	t.Run("not on Windows", func(t *framework.Context) {
		t.SkipOnOS("windows")
		addContact(t, s.manager, defaultFirstName, defaultLastName, defaultPhoneNumber)
		requireSingleContact(t, s.manager, defaultFirstName, defaultLastName, defaultPhoneNumber)
	})
}

// EnvVariable is the environment variable that selects the developer-machine test. It can also be
// set in the env file given on the command line.
const EnvVariable = "ENV"

func (s *contactTests) DoEnvironmentTests(t *framework.Context) {
	s.withNewManager(t)

	t.Run("on developer machine", func(t *framework.Context) {
		t.AssumeEnv(EnvVariable, "DEV")
		addContact(t, s.manager, defaultFirstName, defaultLastName, defaultPhoneNumber)
		requireSingleContact(t, s.manager, defaultFirstName, defaultLastName, defaultPhoneNumber)
	})
}
