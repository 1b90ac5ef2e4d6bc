package contacttests

import (
	"github.com/launchdarkly/contact-manager-tests/framework"
)

func phoneNumberList() []string {
	return []string{"0123456789", "0123456987", "0123456897"}
}

func (s *contactTests) DoParameterizedTests(t *framework.Context) {
	s.withNewManager(t)

	createWithPhoneNumber := func(t *framework.Context, phoneNumber string) {
		addContact(t, s.manager, defaultFirstName, defaultLastName, phoneNumber)
		requireSingleContact(t, s.manager, defaultFirstName, defaultLastName, phoneNumber)
	}

	framework.RunEach(t, "value source",
		[]string{"0123456789", "0123456789", "0123456789"}, createWithPhoneNumber)

	framework.RunEach(t, "method source", phoneNumberList(), createWithPhoneNumber)

	framework.RunEachFrom(t, "csv source", func() ([]string, error) {
		rows, err := framework.CSVSource("0123456789", "0123456987", "0123456897")
		return framework.FirstColumn(rows), err
	}, createWithPhoneNumber)

	framework.RunEachFrom(t, "csv file source", func() ([]string, error) {
		rows, err := framework.CSVFileSource(s.params.DataFile, 1)
		return framework.FirstColumn(rows), err
	}, createWithPhoneNumber)
}
