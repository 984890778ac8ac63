package server

import (
	"fmt"
	"os"

	"cloud-demo-apps/internal/config"
	"cloud-demo-apps/internal/handlers"
	"cloud-demo-apps/pkg/lambda"
)

// Container holds all application dependencies
type Container struct {
	Config   *config.Config
	Runtime  *lambda.Runtime
	Profile  handlers.Profile
	Hostname handlers.HostnameFunc

	EchoHandler   *handlers.EchoHandler
	StaticHandler *handlers.StaticHandler
	ALBHandler    *handlers.ALBHandler
}

// Option customizes a container
type Option func(*Container)

// WithRuntime replaces the process-wide runtime
func WithRuntime(rt *lambda.Runtime) Option {
	return func(c *Container) {
		c.Runtime = rt
	}
}

// WithHostname replaces the hostname resolver
func WithHostname(fn handlers.HostnameFunc) Option {
	return func(c *Container) {
		c.Hostname = fn
	}
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}

	profile, err := handlers.LookupProfile(cfg.Profile, cfg.IndexMessage)
	if err != nil {
		return nil, fmt.Errorf("failed to select profile: %w", err)
	}

	container := &Container{
		Config:   cfg,
		Runtime:  lambda.GetRuntime(),
		Profile:  profile,
		Hostname: os.Hostname,
	}

	for _, opt := range opts {
		opt(container)
	}

	container.EchoHandler = handlers.NewEchoHandler(container.Runtime)
	container.StaticHandler = handlers.NewStaticHandler(container.Runtime)
	container.ALBHandler = handlers.NewALBHandler(container.Runtime)

	return container, nil
}

// Close cleans up all resources
func (c *Container) Close() error {
	return nil
}
