package config

const (
	// DefaultConfigFile is read if it exists and no other config file was specified.
	DefaultConfigFile = "contact-tests.yaml"
	// DefaultEnvFile is read if it exists and no other env file was specified.
	DefaultEnvFile = ".env"
	// DefaultDataFile is the CSV file used by the CSV file source test, relative to the repository root.
	DefaultDataFile = "contacttests/testdata/data.csv"
)
