// Package finboard wires together the configuration, the token storage,
// and the API client used by the finboard CLI.
package finboard

import (
	"net/http"
	"os"

	"github.com/finboard/finboard-cli/config"
	"github.com/finboard/finboard-cli/internal/apiclient"
	"github.com/finboard/finboard-cli/internal/kvstore"
	"github.com/finboard/finboard-cli/internal/model"
	"github.com/finboard/finboard-cli/internal/tokenstore"
	"github.com/finboard/finboard-cli/utils"
	"github.com/pkg/errors"
)

// Context for the finboard CLI
type Context struct {
	Config *config.Config
	Client *apiclient.Client
	Tokens *tokenstore.Store

	// HTTPClient is the OPTIONAL HTTP client. The default
	// is [http.DefaultClient].
	HTTPClient model.HTTPClient

	// Logger is the OPTIONAL logger.
	Logger model.Logger

	// BaseURL and Contract OPTIONALLY override the config file.
	BaseURL  string
	Contract string

	Home       string
	configPath string
}

// MaybeLocateHome figures out the finboard home, unless already set.
func (c *Context) MaybeLocateHome() error {
	if c.Home != "" {
		return nil
	}
	home, err := utils.GetFinboardHome()
	if err != nil {
		return err
	}
	c.Home = home
	return nil
}

// Init the finboard manager
func (c *Context) Init() error {
	if err := c.MaybeLocateHome(); err != nil {
		return errors.Wrap(err, "locating home")
	}
	for _, d := range utils.RequiredDirs(c.Home) {
		if err := os.MkdirAll(d, 0700); err != nil {
			return errors.Wrap(err, "creating home")
		}
	}

	configPath := c.configPath
	if configPath == "" {
		configPath = utils.ConfigPath(c.Home)
	}
	cfg, err := config.ReadConfig(configPath)
	if err != nil {
		return errors.Wrap(err, "reading config")
	}
	if err := cfg.Override(c.BaseURL, c.Contract); err != nil {
		return errors.Wrap(err, "applying command line overrides")
	}
	c.Config = cfg

	logger := model.ValidLoggerOrDefault(c.Logger)
	kvs, err := kvstore.NewFS(utils.KVStoreDir(c.Home))
	if err != nil {
		return errors.Wrap(err, "opening kvstore")
	}
	c.Tokens = tokenstore.New(kvs, logger)
	if err := c.Tokens.Migrate(); err != nil {
		return errors.Wrap(err, "migrating token")
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = UserAgent
	}
	client, err := apiclient.New(&apiclient.Config{
		BaseURL:    cfg.BaseURL,
		Contract:   cfg.ClientContract(),
		HTTPClient: httpClient,
		LogBody:    cfg.LogBody,
		Logger:     logger,
		Timeout:    cfg.CallTimeout(),
		Tokens:     c.Tokens,
		UserAgent:  userAgent,
	})
	if err != nil {
		return errors.Wrap(err, "creating client")
	}
	c.Client = client
	return nil
}

// NewContext creates a new context instance. Empty configPath and
// homePath select the defaults.
func NewContext(configPath string, homePath string) *Context {
	return &Context{
		Home:       homePath,
		configPath: configPath,
	}
}
