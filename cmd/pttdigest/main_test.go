package main_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	main "github.com/fwojciec/pttdigest/cmd/pttdigest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// listingServer serves one thread item per page and fails the pages in failing.
func listingServer(t *testing.T, failing ...string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		for _, f := range failing {
			if page == f {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, `<html><body>
<div class="thread-item">
	<a href="/bbs/HatePolitics/M.%s.A/"><span class="thread-title"> 標題 %s </span></a>
	<div class="e7-top">
		<span class="e7-floor">1F</span><span class="f11">推</span>
		<span class="e7-author">bob</span><span class="yellow--text">: 好文</span>
		<span class="grey--text">1.1.1.1 01/01 00:00</span>
	</div>
</div>
</body></html>`, page, page)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, strings.NewReader(""), &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "pttdigest")
	assert.Contains(t, stdout.String(), "--rate")
}

func TestMain_Run_WritesReportAndSkipsFailedPage(t *testing.T) {
	t.Parallel()

	srv := listingServer(t, "1")
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer

	err := main.NewMain().Run(context.Background(),
		[]string{"alice", "3", "--origin", srv.URL, "--dir", dir},
		strings.NewReader(""), &stdout, &stderr)

	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "alice.txt"))
	require.NoError(t, err)
	assert.Equal(t,
		"標題 0\nhttps://www.ptt.cc/bbs/HatePolitics/M.0.A.html\n1F 推 bob: 好文 1.1.1.1 01/01 00:00\n\n"+
			"標題 2\nhttps://www.ptt.cc/bbs/HatePolitics/M.2.A.html\n1F 推 bob: 好文 1.1.1.1 01/01 00:00\n\n",
		string(content))

	// Staging files are swept
	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "alice.txt", files[0].Name())

	assert.Contains(t, stdout.String(), "downloaded alice0.txt")
	assert.Contains(t, stdout.String(), "removed alice2.txt")
	assert.Contains(t, stdout.String(), "Report saved to")
	assert.Contains(t, stderr.String(), "failed to download page 1")
}

func TestMain_Run_KeepLeavesStagedPages(t *testing.T) {
	t.Parallel()

	srv := listingServer(t)
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer

	err := main.NewMain().Run(context.Background(),
		[]string{"alice", "2", "--origin", srv.URL, "--dir", dir, "--keep"},
		strings.NewReader(""), &stdout, &stderr)

	require.NoError(t, err)
	for _, name := range []string{"alice.txt", "alice0.txt", "alice1.txt"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestMain_Run_PromptsForMissingInput(t *testing.T) {
	t.Parallel()

	srv := listingServer(t)
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer

	err := main.NewMain().Run(context.Background(),
		[]string{"--origin", srv.URL, "--dir", dir},
		strings.NewReader("alice\n1\n"), &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Enter user ID: ")
	assert.Contains(t, stdout.String(), "Enter number of pages: ")
	_, err = os.Stat(filepath.Join(dir, "alice.txt"))
	assert.NoError(t, err)
}

func TestMain_Run_InvalidPageCountAbortsBeforeIO(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		args  []string
		stdin string
		msg   string
	}{
		{"non-integer argument", []string{"alice", "abc"}, "", "valid integer"},
		{"zero argument", []string{"alice", "0"}, "", "greater than 0"},
		{"negative prompt", nil, "alice\n-2\n", "greater than 0"},
		{"empty user prompt", nil, "\n", "user ID required"},
		{"user with parent path", []string{"../x", "1"}, "", "path separator"},
		{"user with backslash prompt", nil, "a\\b\n1\n", "path separator"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			requested := false
			srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				requested = true
			}))
			defer srv.Close()

			dir := t.TempDir()
			args := append(tt.args, "--origin", srv.URL, "--dir", dir)
			var stdout, stderr bytes.Buffer

			err := main.NewMain().Run(context.Background(), args, strings.NewReader(tt.stdin), &stdout, &stderr)

			require.Error(t, err)
			assert.Contains(t, stderr.String(), tt.msg)
			assert.Equal(t, 1, strings.Count(stderr.String(), "error:"))
			assert.False(t, requested, "no request should be made")
			files, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Empty(t, files)
		})
	}
}

func TestParsePageCount(t *testing.T) {
	t.Parallel()

	n, err := main.ParsePageCount(" 3 ")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = main.ParsePageCount("3.5")
	assert.Error(t, err)

	_, err = main.ParsePageCount("0")
	assert.Error(t, err)
}
