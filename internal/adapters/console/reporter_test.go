package console_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/nobs/internal/adapters/console"
	"go.trai.ch/nobs/internal/core/domain"
)

func TestReporter_JobStarted(t *testing.T) {
	var buf bytes.Buffer
	r := console.NewWithWriter(&buf)

	r.JobStarted(25, 0, 4, domain.KindCompile, "g++ -c -o a.o a.cpp")

	out := buf.String()
	assert.Contains(t, out, "[ 25%]")
	assert.Contains(t, out, "0/4")
	assert.Contains(t, out, "Compiling")
	assert.Contains(t, out, "g++ -c -o a.o a.cpp")
}

func TestReporter_JobStarted_PercentPadding(t *testing.T) {
	var buf bytes.Buffer
	r := console.NewWithWriter(&buf)

	r.JobStarted(100, 3, 4, domain.KindLink, "g++ -o app a.o")

	assert.Contains(t, buf.String(), "[100%]")
	assert.Contains(t, buf.String(), "Linking")
}

func TestReporter_Lifecycle(t *testing.T) {
	var buf bytes.Buffer
	r := console.NewWithWriter(&buf)

	r.BuildStarted("app", 4, 2)
	r.LinkCompleted("app")
	r.BuildFailed(7)
	r.NothingToBuild("lib")

	out := buf.String()
	assert.Contains(t, out, "Running build of app with 4 jobs (max 2 parallel)")
	assert.Contains(t, out, "Linking of app completed successfully.")
	assert.Contains(t, out, "code 7")
	assert.Contains(t, out, "Nothing to build for target lib.")

	if got := strings.Count(out, "\n"); got != 4 {
		t.Errorf("expected 4 lines, got %d", got)
	}
}
