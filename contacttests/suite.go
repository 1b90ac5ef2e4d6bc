package contacttests

import (
	"github.com/launchdarkly/contact-manager-tests/contacts"
	"github.com/launchdarkly/contact-manager-tests/framework"
)

// DefaultDataFile is the CSV file of phone numbers used by the CSV file source test, relative to
// the repository root. It is used if SuiteParams.DataFile is empty.
const DefaultDataFile = "contacttests/testdata/data.csv"

// SuiteParams holds settings that are specific to the contact tests.
type SuiteParams struct {
	// DataFile is the path of the CSV file for the CSV file source test. The first line is a header.
	DataFile string
}

// contactTests is the shared state of the suite. Every test gets a new ContactManager from the
// BeforeEach hook that each group registers.
type contactTests struct {
	params  SuiteParams
	manager *contacts.ContactManager
	logger  framework.Logger
}

func RunTestSuite(
	config framework.Config,
	params SuiteParams,
	testLogger framework.TestLogger,
	debugLogger framework.Logger,
) framework.Results {
	if params.DataFile == "" {
		params.DataFile = DefaultDataFile
	}
	if debugLogger == nil {
		debugLogger = framework.NullLogger()
	}
	s := &contactTests{params: params, logger: debugLogger}

	groups := []struct {
		name   string
		action func(*framework.Context)
	}{
		{"contact creation", s.DoContactCreationTests},
		{"null validation", s.DoNullValidationTests},
		{"platform", s.DoPlatformTests},
		{"environment", s.DoEnvironmentTests},
		{"repeated", s.DoRepeatedTests},
		{"parameterized", s.DoParameterizedTests},
	}

	return framework.Run(config, testLogger, func(t *framework.Context) {
		s.logger.Printf("Starting contact manager tests")
		t.Defer(func() { s.logger.Printf("Finished contact manager tests") })

		for _, g := range groups {
			g := g
			t.Run(g.name, func(t *framework.Context) {
				groupLogger := framework.LoggerWithPrefix(s.logger, "["+g.name+"] ")
				groupLogger.Printf("Starting group")
				t.Defer(func() { groupLogger.Printf("Finished group") })
				g.action(t)
			})
		}
	})
}

// withNewManager registers the hooks that give each subtest of t its own empty ContactManager.
func (s *contactTests) withNewManager(t *framework.Context) {
	t.BeforeEach(func(t *framework.Context) {
		s.manager = contacts.NewContactManager()
	})
	t.AfterEach(func(t *framework.Context) {
		t.Debug("Contacts at end of test: %v", s.manager.GetAllContacts())
		s.manager = nil
	})
}
