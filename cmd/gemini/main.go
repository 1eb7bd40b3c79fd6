package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	backend "github.com/docloom/go-gemini/pkg/backend"
	geminiclient "github.com/docloom/go-gemini/pkg/client"
	godotenv "github.com/joho/godotenv"
	client "github.com/mutablelogic/go-client"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug    bool          `name:"debug" help:"Enable debug output"`
	Verbose  bool          `name:"verbose" help:"Enable verbose output"`
	Timeout  time.Duration `name:"timeout" help:"Request timeout"`
	Endpoint string        `name:"endpoint" help:"Override the API endpoint"`

	// Backends
	Gemini `embed:"" help:"Gemini configuration"`
	Vertex `embed:"" help:"Vertex AI configuration"`

	// Context
	ctx context.Context
}

type Gemini struct {
	ApiKey string `env:"GEMINI_API_KEY" help:"Gemini API key"`
}

type Vertex struct {
	Project string `env:"GCP_PROJECT" help:"Google Cloud project, selects Vertex AI"`
	Region  string `env:"GCP_REGION" default:"us-west1" help:"Google Cloud region"`
}

type CLI struct {
	Globals

	// Commands
	Generate GenerateCmd `cmd:"" help:"Generate content from a prompt"`
	Models   ModelsCmd   `cmd:"" help:"List available models"`
	Model    ModelCmd    `cmd:"" help:"Get model metadata"`
	Check    CheckCmd    `cmd:"" help:"Check model availability"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Gemini API command line interface"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{},
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx

	// Fall back to the alternate key variable
	if cli.ApiKey == "" {
		cli.ApiKey = os.Getenv("GOOGLE_API_KEY")
	}

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Target returns the backend target resolved from the global flags
func (g *Globals) Target() (backend.Target, error) {
	if g.Project != "" {
		return backend.Vertex(g.Project, g.Region)
	}
	return backend.Gemini(), nil
}

// Client returns an API client configured from the global flags
func (g *Globals) Client() (*geminiclient.Client, error) {
	target, err := g.Target()
	if err != nil {
		return nil, err
	}

	// Client options
	opts := []client.ClientOpt{}
	if g.Debug || g.Verbose {
		opts = append(opts, client.OptTrace(os.Stderr, g.Verbose))
	}
	if g.Timeout > 0 {
		opts = append(opts, client.OptTimeout(g.Timeout))
	}
	if g.Endpoint != "" {
		opts = append(opts, client.OptEndpoint(g.Endpoint))
	}

	return geminiclient.New(g.ctx, target, g.ApiKey, opts...)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}
