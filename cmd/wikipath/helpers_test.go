package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"testing"
)

// isolateEnv points HOME at an empty temp dir and clears every variable the
// CLI reads, so neither the developer's config file nor environment leaks in.
func isolateEnv(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{
		"WIKIPATH_API_URL", "WIKIPATH_USER_AGENT", "WIKIPATH_STRATEGY", "WIKIPATH_DEPTH",
		"WIKIPATH_TIMEOUT", "WIKIPATH_CONCURRENCY", "WIKIPATH_MAX_VISITED", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("WIKIPATH_RATE_LIMIT", "1000")
	t.Setenv("WIKIPATH_RATE_BURST", "100")

	return home
}

// writeConfigFile writes ~/.wikipath/config.yaml below home.
func writeConfigFile(t *testing.T, home, content string) {
	t.Helper()

	dir := filepath.Join(home, ".wikipath")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

// captureStdout replaces os.Stdout with a pipe, calls f, then returns the
// captured output and restores os.Stdout. It is NOT safe for parallel use
// because os.Stdout is a package-level variable.
func captureStdout(t *testing.T, f func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w

	done := make(chan struct{})
	var buf bytes.Buffer
	go func() {
		io.Copy(&buf, r)
		close(done)
	}()

	f()

	w.Close()
	<-done
	os.Stdout = orig
	r.Close()
	return buf.String()
}

// executeArgs runs a fresh root command with args and returns any error.
// It suppresses cobra's own output so test output stays clean.
func executeArgs(t *testing.T, args ...string) error {
	t.Helper()
	root := newRootCmd()
	root.SetOut(&strings.Builder{})
	root.SetErr(&strings.Builder{})
	root.SetArgs(args)
	_, err := root.ExecuteC()
	return err
}

// fakeWiki serves the two api.php queries wikipath issues over a fixed link graph.
type fakeWiki struct {
	graph map[string][]string
	ids   map[string]int64
}

func newFakeWiki(t *testing.T, graph map[string][]string) *httptest.Server {
	t.Helper()

	titles := make([]string, 0, len(graph))
	for title := range graph {
		titles = append(titles, title)
	}
	sort.Strings(titles)

	fw := &fakeWiki{graph: graph, ids: map[string]int64{}}
	for i, title := range titles {
		fw.ids[title] = int64(i + 1)
	}

	srv := httptest.NewServer(fw)
	t.Cleanup(srv.Close)

	return srv
}

func (fw *fakeWiki) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	w.Header().Set("Content-Type", "application/json")

	if title := q.Get("titles"); title != "" {
		id, ok := fw.ids[title]
		if !ok {
			writeJSON(w, map[string]any{"query": map[string]any{
				"pages": []map[string]any{{"ns": 0, "title": title, "missing": true}},
			}})
			return
		}
		writeJSON(w, map[string]any{"query": map[string]any{
			"pages": []map[string]any{{"pageid": id, "ns": 0, "title": title}},
		}})
		return
	}

	id, _ := strconv.ParseInt(q.Get("pageids"), 10, 64)
	for title, tid := range fw.ids {
		if tid != id {
			continue
		}
		links := make([]map[string]any, 0, len(fw.graph[title]))
		for _, l := range fw.graph[title] {
			links = append(links, map[string]any{"ns": 0, "title": l})
		}
		writeJSON(w, map[string]any{"query": map[string]any{
			"pages": []map[string]any{{"pageid": id, "ns": 0, "title": title, "links": links}},
		}})
		return
	}

	writeJSON(w, map[string]any{"query": map[string]any{
		"pages": []map[string]any{{"pageid": id, "missing": true}},
	}})
}

func writeJSON(w http.ResponseWriter, v any) {
	_ = json.NewEncoder(w).Encode(v)
}
