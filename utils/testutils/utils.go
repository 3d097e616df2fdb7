package testutils

import (
	"bytes"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/benoitkugler/gridlayout/logger"
)

func AssertEqual(t *testing.T, got, exp interface{}) {
	t.Helper()
	if diff := cmp.Diff(exp, got, cmpopts.EquateEmpty(), cmp.Exporter(func(reflect.Type) bool { return true })); diff != "" {
		t.Fatalf("expected\n%v\n got \n%v\n(-want +got)\n%s", exp, got, diff)
	}
}

// CapturedLogs stores the warnings emitted while it is active.
type CapturedLogs struct {
	buf      bytes.Buffer
	previous io.Writer
}

// CaptureLogs redirects [logger.WarningLogger] until one
// of the Assert methods is called.
func CaptureLogs() *CapturedLogs {
	out := &CapturedLogs{previous: logger.WarningLogger.Writer()}
	logger.WarningLogger.SetOutput(&out.buf)
	return out
}

func (c *CapturedLogs) release() {
	logger.WarningLogger.SetOutput(c.previous)
}

// Logs returns the captured lines and stops the capture.
func (c *CapturedLogs) Logs() []string {
	c.release()
	s := strings.TrimSpace(c.buf.String())
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (c *CapturedLogs) AssertNoLogs(t *testing.T) {
	t.Helper()
	if l := c.Logs(); len(l) != 0 {
		t.Fatalf("unexpected logs: %v", l)
	}
}

// CheckLogs asserts that exactly len(expected) warnings were emitted,
// each containing the corresponding expected fragment.
func (c *CapturedLogs) CheckLogs(t *testing.T, expected ...string) {
	t.Helper()
	l := c.Logs()
	if len(l) != len(expected) {
		t.Fatalf("expected %d logs, got %d: %v", len(expected), len(l), l)
	}
	for i, exp := range expected {
		if !strings.Contains(l[i], exp) {
			t.Fatalf("log %d: expected %q in %q", i, exp, l[i])
		}
	}
}

func AssertNoErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
}
