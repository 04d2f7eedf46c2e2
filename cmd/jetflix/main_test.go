package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/google/go-cmp/cmp"

	"github.com/fabler/jetflix/internal/catalog"
	"github.com/fabler/jetflix/internal/config"
	"github.com/fabler/jetflix/internal/ctxlog"
	"github.com/fabler/jetflix/internal/model"
	"github.com/fabler/jetflix/internal/tmdb"
)

func useTestApp(t *testing.T) {
	t.Helper()
	previous := newApp
	newApp = func() fyne.App { return test.NewApp() }
	t.Cleanup(func() { newApp = previous })
	t.Setenv(config.EnvAPIKey, "")
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

// fakeTMDB serves popular and upcoming; everything else fails
func fakeTMDB(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("api_key") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"status_code":7,"status_message":"Invalid API key"}`)
			return
		}
		switch r.URL.Path {
		case "/movie/popular":
			fmt.Fprintf(w, `{"page":%s,"results":[{"id":7,"title":"Se7en","release_date":"1995-09-22","vote_average":8.36,"vote_count":10}]}`, r.URL.Query().Get("page"))
		case "/movie/upcoming":
			fmt.Fprint(w, `{"page":1,"results":[{"id":9,"original_title":"Untitled"}]}`)
		default:
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprint(w, `{"status_code":43,"status_message":"Maintenance"}`)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestVersionCmd(t *testing.T) {
	out, _, err := execute(t, "version", "--short")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != version {
		t.Errorf("version --short = %q", out)
	}

	out, _, err = execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, AppName) || !strings.Contains(out, "Go version") {
		t.Errorf("version output = %q", out)
	}
}

func TestSectionsCmd(t *testing.T) {
	useTestApp(t)
	srv := fakeTMDB(t)

	out, errOut, err := execute(t, "sections", "--api-key", "secret", "--base-url", srv.URL,
		"--kind", "popular", "--kind", "upcoming", "--kind", "top-rated")
	if err != nil {
		t.Fatalf("sections error: %v (stderr %q)", err, errOut)
	}

	expected := "# popular\n7\t1995\t8.4\tSe7en\n# upcoming\n9\t-\t—\tUntitled\n"
	if diff := cmp.Diff(expected, out); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(errOut, "top_rated:") || !strings.Contains(errOut, "Maintenance") {
		t.Errorf("stderr should report the failed section, got %q", errOut)
	}
}

func TestSectionsCmd_AllFailed(t *testing.T) {
	useTestApp(t)
	srv := fakeTMDB(t)

	_, _, err := execute(t, "sections", "--api-key", "wrong", "--base-url", srv.URL, "--kind", "popular")
	if !errors.Is(err, errAllSectionsFailed) {
		t.Errorf("error = %v, expected errAllSectionsFailed", err)
	}
}

func TestSectionsCmd_Validation(t *testing.T) {
	useTestApp(t)

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"missing key", []string{"sections"}, tmdb.ErrMissingAPIKey},
		{"bad page", []string{"sections", "--api-key", "k", "--page", "0"}, tmdb.ErrInvalidPage},
	}
	for _, tt := range tests {
		if _, _, err := execute(t, tt.args...); !errors.Is(err, tt.want) {
			t.Errorf("%s: error = %v, expected %v", tt.name, err, tt.want)
		}
	}

	if _, _, err := execute(t, "sections", "--api-key", "k", "--kind", "documentaries"); err == nil {
		t.Error("unknown kind should fail")
	}
}

func TestParseKinds(t *testing.T) {
	all, err := parseKinds(nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(catalog.AllSectionKinds(), all); diff != "" {
		t.Errorf("default kinds mismatch (-want +got):\n%s", diff)
	}

	got, err := parseKinds([]string{"now-playing", "TRENDING"})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]catalog.SectionKind{catalog.KindNowPlaying, catalog.KindTrending}, got); diff != "" {
		t.Errorf("parsed kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSettings_Layering(t *testing.T) {
	useTestApp(t)

	path := filepath.Join(t.TempDir(), "jetflix.hcl")
	content := `
api_key         = "from-file"
language        = "ru-RU"
max_random_page = 3
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	flags := globalFlags{configPath: path}
	settings, err := flags.loadSettings(newApp())
	if err != nil {
		t.Fatal(err)
	}
	if settings.GetAPIKey() != "from-file" || settings.GetContentLanguage() != "ru-RU" || settings.GetMaxRandomPage() != 3 {
		t.Errorf("file values not applied: key=%q lang=%q max=%d",
			settings.GetAPIKey(), settings.GetContentLanguage(), settings.GetMaxRandomPage())
	}

	t.Setenv(config.EnvAPIKey, "from-env")
	settings, err = flags.loadSettings(newApp())
	if err != nil {
		t.Fatal(err)
	}
	if settings.GetAPIKey() != "from-env" {
		t.Errorf("environment should override the file, got %q", settings.GetAPIKey())
	}

	flags.apiKey = "from-flag"
	flags.language = "pt-BR"
	settings, err = flags.loadSettings(newApp())
	if err != nil {
		t.Fatal(err)
	}
	if settings.GetAPIKey() != "from-flag" || settings.GetContentLanguage() != "pt-BR" {
		t.Errorf("flags should win: key=%q lang=%q", settings.GetAPIKey(), settings.GetContentLanguage())
	}
}

func TestLoadSettings_FlagsAreNotStored(t *testing.T) {
	useTestApp(t)
	t.Setenv(config.EnvAPIKey, "")
	a := newApp()
	config.NewSettings(a).SetAPIKey("saved")

	withFlag := globalFlags{apiKey: "one-off", baseURL: "http://mirror.local/3"}
	settings, err := withFlag.loadSettings(a)
	if err != nil {
		t.Fatal(err)
	}
	if opts := settings.ClientOptions(userAgent()); opts.APIKey != "one-off" || opts.BaseURL != "http://mirror.local/3" {
		t.Errorf("flags not applied: %+v", opts)
	}

	settings, err = (&globalFlags{}).loadSettings(a)
	if err != nil {
		t.Fatal(err)
	}
	if got := settings.GetAPIKey(); got != "saved" {
		t.Errorf("stored key = %q, expected saved", got)
	}
	if got := settings.GetBaseURL(); got != tmdb.DefaultBaseURL {
		t.Errorf("stored base URL = %q, expected default", got)
	}
	if got := a.Preferences().String(config.KeyAPIKey); got != "saved" {
		t.Errorf("preferences key = %q, expected saved", got)
	}
}

func TestLoadSettings_BadFile(t *testing.T) {
	useTestApp(t)

	path := filepath.Join(t.TempDir(), "broken.hcl")
	if err := os.WriteFile(path, []byte("api_key = "), 0o600); err != nil {
		t.Fatal(err)
	}
	flags := globalFlags{configPath: path}
	if _, err := flags.loadSettings(newApp()); err == nil {
		t.Error("a malformed config file should fail")
	}
}

func TestHomeBuilder(t *testing.T) {
	useTestApp(t)
	srv := fakeTMDB(t)

	settings := config.NewSettings(newApp())
	build := homeBuilder(settings, nil)

	if _, err := build(context.Background()); !errors.Is(err, tmdb.ErrMissingAPIKey) {
		t.Fatalf("error = %v, expected ErrMissingAPIKey", err)
	}

	settings.SetAPIKey("secret")
	settings.SetBaseURL(srv.URL)
	settings.SetRandomPages(false)

	collector, _ := newCollector()
	build = homeBuilder(settings, collector)
	ctx, cancel := context.WithCancel(ctxlog.WithLogger(context.Background(), ctxlog.Discard()))
	defer cancel()

	home, err := build(ctx)
	if err != nil {
		t.Fatal(err)
	}
	awaitCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
	defer done()
	if err := home.AwaitAll(awaitCtx); err != nil {
		t.Fatal(err)
	}

	popular, ok := home.Popular.CurrentMovies()
	if diff := cmp.Diff([]int64{7}, ids(popular)); !ok || diff != "" {
		t.Errorf("popular mismatch (-want +got):\n%s", diff)
	}
	if !home.Originals.State().IsError() {
		t.Errorf("top rated state = %s, expected error", home.Originals.State().State())
	}
}

func ids(movies []model.Movie) []int64 {
	out := make([]int64, 0, len(movies))
	for _, m := range movies {
		out = append(out, m.ID)
	}
	return out
}

type stubServer struct {
	err      error
	deadline bool
}

func (s *stubServer) Shutdown(ctx context.Context) error {
	_, s.deadline = ctx.Deadline()
	return s.err
}

func TestShutdownMetrics(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantLog bool
	}{
		{"clean", nil, false},
		{"deadline exceeded", context.DeadlineExceeded, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			srv := &stubServer{err: tt.err}
			shutdownMetrics(srv, time.Second, ctxlog.New(&buf, "info"))

			if !srv.deadline {
				t.Error("shutdown context should carry a deadline")
			}
			logged := strings.Contains(buf.String(), "level=WARN") &&
				strings.Contains(buf.String(), "metrics server shutdown failed")
			if logged != tt.wantLog {
				t.Errorf("warn logged = %v, expected %v; output: %s", logged, tt.wantLog, buf.String())
			}
		})
	}
}
