package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/amir20/logview/internal/history"
	"github.com/sirupsen/logrus"
)

func parse(t *testing.T, args ...string) (Cli, error) {
	t.Helper()
	var cli Cli
	parser, err := kong.New(&cli, Vars())
	if err != nil {
		t.Fatalf("kong.New failed: %v", err)
	}
	_, err = parser.Parse(args)
	return cli, err
}

func TestCli_Defaults(t *testing.T) {
	cli, err := parse(t)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cli.URL != history.DefaultResourceURL {
		t.Errorf("unexpected url %q", cli.URL)
	}
	if cli.PageSize != 10 || cli.Sort != "time" || cli.Order != "desc" {
		t.Errorf("unexpected defaults %+v", cli)
	}
	if cli.Timeout != 0 {
		t.Errorf("expected no timeout by default, got %s", cli.Timeout)
	}

	s := cli.ViewState()
	if s != history.DefaultViewState() {
		t.Errorf("expected default view state, got %+v", s)
	}
}

func TestCli_Overrides(t *testing.T) {
	cli, err := parse(t,
		"--url", "http://example.com/api/logs/abc",
		"--page-size", "25",
		"--sort", "event",
		"--order", "asc",
		"--timeout", "5s",
	)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cli.Timeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %s", cli.Timeout)
	}

	s := cli.ViewState()
	want := history.ViewState{SortField: history.SortByEvent, Direction: history.Ascending, PageSize: 25}
	if s != want {
		t.Errorf("got %+v, want %+v", s, want)
	}
}

func TestCli_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"zero page size", []string{"--page-size", "0"}, "page-size"},
		{"relative url", []string{"--url", "/api/logs"}, "absolute"},
		{"unknown sort", []string{"--sort", "name"}, "sort"},
		{"unknown order", []string{"--order", "up"}, "order"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	cli, err := parse(t, "--log-file", filepath.Join(t.TempDir(), "logview.log"), "--log-level", "debug")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	log, closer, err := NewLogger(cli)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	defer closer.Close()

	if !log.IsLevelEnabled(logrus.DebugLevel) {
		t.Error("expected debug level enabled")
	}
}

func TestNewHistoryClient(t *testing.T) {
	cli, err := parse(t, "--url", "http://example.com/logs")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	client := NewHistoryClient(cli, nil)
	if client.URL() != "http://example.com/logs" {
		t.Errorf("unexpected url %q", client.URL())
	}
}
