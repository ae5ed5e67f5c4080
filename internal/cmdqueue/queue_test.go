package cmdqueue

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	warns, errors int
}

func (r *recorder) Info(string, ...interface{})    {}
func (r *recorder) Success(string, ...interface{}) {}
func (r *recorder) Warn(string, ...interface{})    { r.warns++ }
func (r *recorder) Error(string, ...interface{})   { r.errors++ }

func TestReadCommands(t *testing.T) {
	in := strings.NewReader("echo one\n\n  echo two  \n\n")
	got, err := ReadCommands(in)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"echo one", "echo two"}, got); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestExec_StreamsOutput(t *testing.T) {
	var out bytes.Buffer
	result := Exec(context.Background(), "echo hello", &out)
	require.NoError(t, result.Err)
	require.Contains(t, out.String(), "hello")
	require.Equal(t, "hello", result.Tail)
}

func TestExec_Failure(t *testing.T) {
	var out bytes.Buffer
	result := Exec(context.Background(), "echo oops; exit 3", &out)
	require.Error(t, result.Err)
	require.Contains(t, result.Tail, "oops")
}

func TestRun_AllSucceed(t *testing.T) {
	var out bytes.Buffer
	stats := Run(context.Background(), []string{"true", "echo ok"}, 3, &out, &recorder{})
	require.Equal(t, Stats{Total: 2, Succeeded: 2}, stats)
}

func TestRun_RetriesThenSucceeds(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "marker")
	// Fails until the marker exists, creating it on the first attempt.
	cmd := fmt.Sprintf("test -f %s || { touch %s; exit 1; }", marker, marker)

	var out bytes.Buffer
	rec := &recorder{}
	stats := Run(context.Background(), []string{cmd}, 3, &out, rec)
	require.Equal(t, Stats{Total: 1, Succeeded: 1}, stats)
	require.Positive(t, rec.warns)

	_, err := os.Stat(marker)
	require.NoError(t, err)
}

func TestRun_ExhaustsRetries(t *testing.T) {
	var out bytes.Buffer
	rec := &recorder{}
	stats := Run(context.Background(), []string{"exit 7", "echo ok"}, 1, &out, rec)
	require.Equal(t, Stats{Total: 2, Succeeded: 1, Failed: 1}, stats)
	require.Equal(t, 1, rec.errors)
}

func TestRun_CancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	stats := Run(ctx, []string{"echo never", "echo never2"}, 0, &out, &recorder{})
	require.Equal(t, Stats{Total: 2, Failed: 2}, stats)
	require.Empty(t, out.String())
}
