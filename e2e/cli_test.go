package e2e_test

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/stopwatch/internal/api"
	"github.com/mcoot/stopwatch/internal/factory"
	"github.com/mcoot/stopwatch/internal/testutil"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath  string
	serverURL   string
	sessionFile string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(t.TempDir(), "stopwatch-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/stopwatch")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath:  binaryPath,
		serverURL:   serverURL,
		sessionFile: filepath.Join(t.TempDir(), "session"),
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--session-file", r.sessionFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	cmd.Env = filteredEnv()
	output, err := cmd.CombinedOutput()
	return string(output), err
}

// runJSON runs a command that must succeed and decodes its output into v
func (r *cliRunner) runJSON(t *testing.T, v any, args ...string) {
	t.Helper()
	output, err := r.run(args...)
	require.NoError(t, err, "command %v failed: %s", args, output)
	require.NoError(t, json.Unmarshal([]byte(output), v), "bad output from %v: %s", args, output)
}

// filteredEnv drops STOPWATCH_* variables so flags fully control the CLI
func filteredEnv() []string {
	var env []string
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "STOPWATCH_") {
			env = append(env, kv)
		}
	}
	return env
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	server   *http.Server
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	// Create application
	logger := testutil.NopLogger()
	app, err := factory.New(factory.Config{Logger: logger})
	require.NoError(t, err)

	// Drive clocks in real time
	ctx, cancel := context.WithCancel(context.Background())
	go app.TickDriver.Run(ctx)

	router := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		SessionController: app.SessionController,
		HubManager:        app.HubManager,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		server: server,
		addr:   serverURL,
		shutdown: func() {
			cancel()
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			_ = server.Shutdown(shutdownCtx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type durationResponse struct {
	Seconds float64 `json:"seconds"`
	Display string  `json:"display"`
}

type clockResponse struct {
	Elapsed        durationResponse `json:"elapsed"`
	Running        bool             `json:"running"`
	PenaltySeconds int              `json:"penalty_seconds"`
	Recorded       durationResponse `json:"recorded"`
	Recordable     bool             `json:"recordable"`
}

type personResponse struct {
	ID      string             `json:"id"`
	Name    string             `json:"name"`
	Times   []durationResponse `json:"times"`
	Summary struct {
		MostRecent       *durationResponse `json:"most_recent"`
		SecondMostRecent *durationResponse `json:"second_most_recent"`
		Fastest          *durationResponse `json:"fastest"`
	} `json:"summary"`
}

type sessionResponse struct {
	Code   string           `json:"code"`
	Clock  clockResponse    `json:"clock"`
	People []personResponse `json:"people"`
	Names  []string         `json:"names"`
}

type addPersonResponse struct {
	PersonID string          `json:"person_id"`
	Session  sessionResponse `json:"session"`
}

type recordResponse struct {
	Recorded bool            `json:"recorded"`
	Session  sessionResponse `json:"session"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// lap runs the clock for roughly d of wall time and pauses it
func lap(t *testing.T, cli *cliRunner, d time.Duration) clockResponse {
	t.Helper()
	var started clockResponse
	cli.runJSON(t, &started, "clock", "start")
	require.True(t, started.Running)

	time.Sleep(d)

	var paused clockResponse
	cli.runJSON(t, &paused, "clock", "pause")
	require.False(t, paused.Running)
	require.True(t, paused.Recordable, "clock did not advance")
	return paused
}

func TestCLIHealth(t *testing.T) {
	server := startTestServer(t)
	defer server.shutdown()

	cli := newCLIRunner(t, server.addr)

	var resp healthResponse
	cli.runJSON(t, &resp, "health")
	assert.Equal(t, "ok", resp.Status)
}

func TestCLITimingFlow(t *testing.T) {
	server := startTestServer(t)
	defer server.shutdown()

	cli := newCLIRunner(t, server.addr)

	// Create a session; its code becomes the current session
	var sess sessionResponse
	cli.runJSON(t, &sess, "session", "new")
	require.Len(t, sess.Code, 6)

	saved, err := os.ReadFile(cli.sessionFile)
	require.NoError(t, err)
	assert.Equal(t, sess.Code, string(saved))

	// First lap with a two second penalty
	paused := lap(t, cli, 100*time.Millisecond)

	var penalised clockResponse
	cli.runJSON(t, &penalised, "clock", "penalty", "2")
	assert.Equal(t, 2, penalised.PenaltySeconds)
	assert.InDelta(t, paused.Elapsed.Seconds+2, penalised.Recorded.Seconds, 1e-9)

	var added addPersonResponse
	cli.runJSON(t, &added, "person", "add", "Alice")
	assert.NotEmpty(t, added.PersonID)
	assert.Zero(t, added.Session.Clock.Elapsed.Seconds)
	assert.Zero(t, added.Session.Clock.PenaltySeconds)

	// Second lap recorded against Alice
	lap(t, cli, 50*time.Millisecond)

	var recorded recordResponse
	cli.runJSON(t, &recorded, "person", "record", "Alice")
	assert.True(t, recorded.Recorded)

	var alice personResponse
	cli.runJSON(t, &alice, "person", "get", added.PersonID)
	require.Len(t, alice.Times, 2)
	assert.GreaterOrEqual(t, alice.Times[0].Seconds, 2.0)
	require.NotNil(t, alice.Summary.Fastest)
	assert.Equal(t, alice.Times[1].Display, alice.Summary.Fastest.Display)

	// Unknown names are ignored and leave the clock as it was
	stopped := lap(t, cli, 50*time.Millisecond)
	cli.runJSON(t, &recorded, "person", "record", "Bob")
	assert.False(t, recorded.Recorded)
	assert.Equal(t, stopped.Elapsed.Display, recorded.Session.Clock.Elapsed.Display)

	var names struct {
		Names []string `json:"names"`
	}
	cli.runJSON(t, &names, "person", "names")
	assert.Equal(t, []string{"Alice"}, names.Names)

	// Delete the session and forget it
	output, err := cli.run("session", "delete")
	require.NoError(t, err, output)
	_, err = os.Stat(cli.sessionFile)
	assert.True(t, os.IsNotExist(err))
}

func TestCLIErrors(t *testing.T) {
	server := startTestServer(t)
	defer server.shutdown()

	cli := newCLIRunner(t, server.addr)

	// No current session yet
	output, err := cli.run("clock", "start")
	assert.Error(t, err)
	assert.Contains(t, output, "no session")

	// Unknown session
	output, err = cli.run("--session", "NOPE00", "session", "get")
	assert.Error(t, err)
	assert.Contains(t, output, "SESSION_NOT_FOUND")

	var sess sessionResponse
	cli.runJSON(t, &sess, "session", "new")

	// Nothing to record on a fresh clock
	output, err = cli.run("person", "add", "Alice")
	assert.Error(t, err)
	assert.Contains(t, output, "NOTHING_TO_RECORD")

	// Penalty outside the picker range
	lap(t, cli, 50*time.Millisecond)
	output, err = cli.run("clock", "penalty", "31")
	assert.Error(t, err)
	assert.Contains(t, output, "INVALID_PENALTY")

	output, err = cli.run("clock", "penalty", "soon")
	assert.Error(t, err)
	assert.Contains(t, output, "invalid penalty")
}
