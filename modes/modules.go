package modes

import (
	"context"
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForProduction is wired into the tekla binary.
type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) T() *testing.T {
	return nil
}

func (ModuleForProduction) Mode() Mode {
	return ModeProduction
}

func (ModuleForProduction) Context() context.Context {
	return context.Background()
}

// ModuleForTest ignores config files on the machine running the tests.
type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}

func (m ModuleForTest) Mode() Mode {
	return ModeDevelopment
}

// Context is canceled when the test ends.
func (m ModuleForTest) Context() context.Context {
	return m.t.Context()
}
