package framework

import (
	"strconv"
	"strings"
)

// DefaultRepetitionName is the name template used by Repeat if none is given.
const DefaultRepetitionName = "repetition {currentRepetition} of {totalRepetitions}"

// RepetitionInfo tells a repeated test which repetition it is.
type RepetitionInfo struct {
	Current int
	Total   int
}

// Repeat runs the same action count times, each as its own subtest within a group called name.
//
// Subtest names come from nameTemplate, in which "{currentRepetition}" and "{totalRepetitions}"
// are replaced with the 1-based repetition number and the count. An empty template means
// DefaultRepetitionName. BeforeEach and AfterEach hooks of c apply to every repetition.
func (c *Context) Repeat(name string, count int, nameTemplate string, action func(*Context, RepetitionInfo)) {
	if nameTemplate == "" {
		nameTemplate = DefaultRepetitionName
	}
	c.runContainer(name, func(c *Context) {
		for i := 1; i <= count; i++ {
			info := RepetitionInfo{Current: i, Total: count}
			c.Run(repetitionName(nameTemplate, info), func(c *Context) {
				action(c, info)
			})
		}
	})
}

func repetitionName(template string, info RepetitionInfo) string {
	return strings.NewReplacer(
		"{currentRepetition}", strconv.Itoa(info.Current),
		"{totalRepetitions}", strconv.Itoa(info.Total),
	).Replace(template)
}
