package core

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	ServerConfig
	Site SiteConfig
}

// ParseConfig parses the configuration from the default files and paths.
func ParseConfig() (*Config, error) {
	serverConfig, err := parseServerConfig()
	if err != nil {
		return nil, err
	}

	siteConfig, err := parseSiteConfig(serverConfig.SourceDirectory)
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerConfig: *serverConfig,
		Site:         *siteConfig,
	}, nil
}

type ServerConfig struct {
	Development     bool
	SourceDirectory string
	PublicDirectory string
	Port            int
	BaseURL         string
}

func parseServerConfig() (*ServerConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.AddConfigPath(".")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	conf := &ServerConfig{}
	err = v.Unmarshal(conf)
	if err != nil {
		return nil, err
	}

	err = conf.validate()
	if err != nil {
		return nil, err
	}

	return conf, nil
}

func (c *ServerConfig) validate() error {
	var err error

	c.SourceDirectory, err = filepath.Abs(c.SourceDirectory)
	if err != nil {
		return err
	}

	c.PublicDirectory, err = filepath.Abs(c.PublicDirectory)
	if err != nil {
		return err
	}

	if c.Port < 0 {
		return fmt.Errorf("config: Port should be positive number or 0")
	}

	baseUrl, err := url.Parse(c.BaseURL)
	if err != nil {
		return err
	}
	baseUrl.Path = ""

	if baseUrl.String() != c.BaseURL {
		return fmt.Errorf("config: BaseURL should be %s", baseUrl.String())
	}

	return nil
}

func (c *ServerConfig) resolvedURL(refStr string) *url.URL {
	ref, _ := url.Parse(refStr)
	base, _ := url.Parse(c.BaseURL)
	return base.ResolveReference(ref)
}

func (c *ServerConfig) AbsoluteURL(refStr string) string {
	resolved := c.resolvedURL(refStr)
	if resolved == nil {
		return ""
	}
	return resolved.String()
}

func (c *ServerConfig) RelativeURL(refStr string) string {
	resolved := c.resolvedURL(refStr)
	if resolved == nil {
		return refStr
	}
	return resolved.Path
}

type Author struct {
	Name    string
	Email   string
	Photo   string
	Handle  string
	Tagline string
}

type SiteConfig struct {
	Title       string
	Description string

	// DateFormat is the default date pattern used when a locale does not
	// carry its own. Patterns use dd, MM, MMM, MMMM, yyyy style tokens.
	DateFormat string

	// Locales lists the supported locales. The first one is the primary
	// locale, whose records carry no locale marker.
	Locales []*Locale

	Params struct {
		Author Author
	}
}

func parseSiteConfig(dir string) (*SiteConfig, error) {
	v := viper.New()
	v.SetConfigName("site")
	v.AddConfigPath(dir)

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	conf := &SiteConfig{}
	err = v.Unmarshal(conf)
	if err != nil {
		return nil, err
	}

	err = conf.Validate()
	if err != nil {
		return nil, err
	}

	return conf, nil
}

func (c *SiteConfig) Validate() error {
	if c.Title == "" {
		return errors.New("site config: Title is empty")
	}

	if len(c.Locales) == 0 {
		return errors.New("site config: at least one locale is required")
	}

	if c.DateFormat == "" {
		c.DateFormat = defaultDateFormat
	}

	seen := map[string]bool{}
	for i, locale := range c.Locales {
		if err := locale.validate(); err != nil {
			return err
		}

		if seen[locale.Code] {
			return fmt.Errorf("site config: duplicated locale %q", locale.Code)
		}
		seen[locale.Code] = true

		locale.primary = i == 0
	}

	return nil
}

// Primary returns the primary locale, that is, the one whose content
// records carry no locale marker.
func (c *SiteConfig) Primary() *Locale {
	return c.Locales[0]
}

func (c *SiteConfig) Locale(code string) (*Locale, bool) {
	for _, locale := range c.Locales {
		if locale.Code == code {
			return locale, true
		}
	}

	return nil, false
}
