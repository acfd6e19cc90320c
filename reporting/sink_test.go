package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bdd-infra/bdd-acceptor/types"
)

type countingSink struct {
	calls int
}

func (c *countingSink) StartSuite(string)              { c.calls++ }
func (c *countingSink) StopSuite()                     { c.calls++ }
func (c *countingSink) StartTest(string, types.Labels) { c.calls++ }
func (c *countingSink) StopTest(types.Result)          { c.calls++ }
func (c *countingSink) StartStep(string)               { c.calls++ }
func (c *countingSink) StopStep(types.ResultStatus)    { c.calls++ }
func (c *countingSink) Attach(string, string, []byte)  { c.calls++ }

func TestMultiSinkFansOut(t *testing.T) {
	a := &countingSink{}
	b := &countingSink{}
	m := NewMultiSink(a, b)

	m.StartSuite("s")
	m.StartTest("t", types.Labels{})
	m.StartStep("step")
	m.Attach("n", "text/plain", nil)
	m.StopStep(types.ResultStatusPassed)
	m.StopTest(types.Result{Status: types.ResultStatusPassed})
	m.StopSuite()

	assert.Equal(t, 7, a.calls)
	assert.Equal(t, 7, b.calls)
}

func TestMultiSinkEmpty(t *testing.T) {
	m := NewMultiSink()
	assert.NotPanics(t, func() {
		m.StartSuite("s")
		m.StopSuite()
	})
}
