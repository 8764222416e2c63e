package config

import "time"

type Config interface {
	Address() string
	Port() string
	ListenAddr() string

	Directory() string
	SetDirectory(dir string)

	MaxRequestSize() int
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	LineJoinedBody() bool

	LogLevel() string
	LogJSON() bool
}

func MustLoad() (Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg, err := parse()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *config) Address() string                { return c.address }
func (c *config) Port() string                   { return c.port }
func (c *config) ListenAddr() string             { return c.address + ":" + c.port }
func (c *config) Directory() string              { return c.directory }
func (c *config) MaxRequestSize() int            { return c.maxRequestSize }
func (c *config) ReadTimeout() time.Duration     { return c.readTimeout }
func (c *config) ShutdownTimeout() time.Duration { return c.shutdownTimeout }
func (c *config) LineJoinedBody() bool           { return c.lineJoinedBody }
func (c *config) LogLevel() string               { return c.logLevel }
func (c *config) LogJSON() bool                  { return c.logJSON }

// SetDirectory overrides the base directory, used for the --directory flag.
func (c *config) SetDirectory(dir string) { c.directory = dir }
