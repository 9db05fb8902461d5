package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/serenitas/pkg/app"
	"tableflip.dev/serenitas/pkg/logger"
)

// Runner coordinates MCP server startup. The server only speaks stdio.
type Runner struct {
	App     *app.Service
	Log     logger.Logger
	Name    string
	Version string
}

// Run starts the Model Context Protocol server using stdio transport.
func Run(ctx context.Context, a *app.Service, log logger.Logger) error {
	r := Runner{
		App:     a,
		Log:     log,
		Name:    "serenitas",
		Version: "dev",
	}
	return r.Do(ctx)
}

// NewServer builds the MCP server with every resource and tool registered.
func (r Runner) NewServer() (*server.MCPServer, error) {
	if r.App == nil {
		return nil, errors.New("mcp runner requires a service")
	}
	if !r.App.Hydrated() {
		return nil, app.ErrNotHydrated
	}
	name := r.Name
	if name == "" {
		name = "serenitas"
	}
	version := r.Version
	if version == "" {
		version = "dev"
	}

	srv := server.NewMCPServer(
		fmt.Sprintf("%s MCP", name),
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Read and write a personal journal and its library of curated reflections via MCP."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)

	svc := NewService(r.App, r.Log)
	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv, nil
}

// Do executes the runner.
func (r Runner) Do(ctx context.Context) error {
	srv, err := r.NewServer()
	if err != nil {
		return err
	}
	if r.Log != nil {
		r.Log.Info("mcp server starting", logger.String("transport", "stdio"))
	}
	return server.ServeStdio(srv)
}
