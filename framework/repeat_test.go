package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepeat(t *testing.T) {
	var infos []RepetitionInfo
	var ids []string
	results := Run(Config{}, nil, func(c *Context) {
		c.Repeat("repeated", 3, "", func(c *Context, info RepetitionInfo) {
			infos = append(infos, info)
			ids = append(ids, c.ID().String())
		})
	})
	assert.True(t, results.OK())
	assert.Equal(t, []RepetitionInfo{{1, 3}, {2, 3}, {3, 3}}, infos)
	assert.Equal(t, []string{
		"repeated/repetition 1 of 3",
		"repeated/repetition 2 of 3",
		"repeated/repetition 3 of 3",
	}, ids)
}

func TestRepeatWithCustomName(t *testing.T) {
	var ids []string
	Run(Config{}, nil, func(c *Context) {
		c.Repeat("r", 2, "run #{currentRepetition}/{totalRepetitions}", func(c *Context, _ RepetitionInfo) {
			ids = append(ids, c.ID().String())
		})
	})
	assert.Equal(t, []string{"r/run #1/2", "r/run #2/2"}, ids)
}

func TestRepeatAppliesHooksToEachRepetition(t *testing.T) {
	var calls []string
	Run(Config{}, nil, func(c *Context) {
		c.BeforeEach(func(c *Context) { calls = append(calls, "before "+c.ID().String()) })
		c.AfterEach(func(c *Context) { calls = append(calls, "after "+c.ID().String()) })
		c.Repeat("r", 2, "{currentRepetition}", func(c *Context, _ RepetitionInfo) {
			calls = append(calls, "test "+c.ID().String())
		})
	})
	assert.Equal(t, []string{
		"before r/1", "test r/1", "after r/1",
		"before r/2", "test r/2", "after r/2",
	}, calls)
}

func TestRepeatZeroTimes(t *testing.T) {
	ran := false
	results := Run(Config{}, nil, func(c *Context) {
		c.Repeat("r", 0, "", func(*Context, RepetitionInfo) { ran = true })
	})
	assert.False(t, ran)
	assert.Equal(t, []string{"r"}, testIDs(results.Tests))
}
