package utils

import (
	"bytes"
	stderrors "errors"
	"os"
	"strings"
	"testing"

	"github.com/disk2iso/disk2iso-web/src/internal/log"
)

type failingCloser struct{ closed bool }

func (f *failingCloser) Close() error {
	f.closed = true
	return stderrors.New("disk full")
}

func TestCloseOrWarn(t *testing.T) {
	var stdout, stderr bytes.Buffer
	log.SetOutput(&stdout, &stderr)
	defer log.SetOutput(os.Stdout, os.Stderr)

	c := &failingCloser{}
	CloseOrWarn(c)

	if !c.closed {
		t.Fatal("Expected Close to be called")
	}
	if !strings.Contains(stdout.String()+stderr.String(), "disk full") {
		t.Errorf("Expected a warning mentioning the close error, got %q / %q", stdout.String(), stderr.String())
	}
}
