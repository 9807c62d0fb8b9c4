package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/amir20/logview/internal/history"
)

type Cli struct {
	URL       string        `help:"Log history endpoint." name:"url" default:"${url}"`
	PageSize  int           `help:"Rows shown per page." name:"page-size" default:"10"`
	Sort      string        `help:"Initial sort field." name:"sort" enum:"time,event" default:"time"`
	Order     string        `help:"Initial sort direction." name:"order" enum:"asc,desc" default:"desc"`
	Timeout   time.Duration `help:"Request timeout, 0 waits forever." name:"timeout" default:"0s"`
	UserAgent string        `help:"User-Agent sent with the request." name:"user-agent" default:"logview"`
	LogFile   string        `help:"File receiving diagnostic output." name:"log-file" type:"path" default:"${logfile}"`
	LogLevel  string        `help:"Diagnostic log level." name:"log-level" enum:"debug,info,warn,error" default:"info"`
	Version   bool          `help:"Show version information." default:"false" name:"version" short:"v"`
}

// Vars are the interpolation variables used by the Cli defaults.
func Vars() kong.Vars {
	return kong.Vars{
		"url":     history.DefaultResourceURL,
		"logfile": filepath.Join(os.TempDir(), "logview.log"),
	}
}

func (c Cli) Validate() error {
	if c.PageSize <= 0 {
		return fmt.Errorf("--page-size must be positive, got %d", c.PageSize)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("--timeout must not be negative")
	}
	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("invalid --url: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("--url must be an absolute URL, got %q", c.URL)
	}
	return nil
}

// ViewState is the list page's initial state.
func (c Cli) ViewState() history.ViewState {
	field, err := history.ParseSortField(c.Sort)
	if err != nil {
		field = history.SortByTime
	}
	dir, err := history.ParseDirection(c.Order)
	if err != nil {
		dir = history.Descending
	}
	return history.NewViewState(field, dir, c.PageSize)
}
