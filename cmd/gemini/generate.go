package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	// Packages
	gemini "github.com/docloom/go-gemini"
	opt "github.com/docloom/go-gemini/pkg/opt"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type GenerateCmd struct {
	Model       string   `arg:"" help:"Model name"`
	Prompt      []string `arg:"" optional:"" help:"Prompt"`
	File        []string `type:"file" short:"f" help:"Files to attach"`
	System      string   `flag:"system" help:"Set the system prompt"`
	Temperature *float64 `flag:"temperature" short:"t" help:"Temperature for sampling"`
	MaxTokens   *uint    `flag:"max-tokens" help:"Maximum number of output tokens"`
	TopP        *float64 `flag:"top-p" help:"Nucleus sampling probability"`
	TopK        *uint    `flag:"top-k" help:"Top-k sampling"`
	Stop        []string `flag:"stop" help:"Stop sequences"`
	JSON        bool     `flag:"json" help:"Print the raw response as JSON"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *GenerateCmd) Run(globals *Globals) error {
	client, err := globals.Client()
	if err != nil {
		return err
	}

	// If we are piping content in via stdin
	var prompt []byte
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return gemini.ErrInternalServerError.Withf("failed to stat stdin: %v", err)
	}
	if (fileInfo.Mode() & os.ModeCharDevice) == 0 {
		if data, err := io.ReadAll(os.Stdin); err != nil {
			return err
		} else if len(data) > 0 {
			prompt = data
		}
	}

	// Append any further prompt
	if arg := strings.Join(cmd.Prompt, " "); arg != "" {
		if len(prompt) > 0 {
			prompt = append(prompt, []byte("\n\n")...)
		}
		prompt = append(prompt, []byte(arg)...)
	}

	// Options
	opts := []opt.Opt{}
	if cmd.System != "" {
		opts = append(opts, opt.WithSystemPrompt(cmd.System))
	}
	if cmd.Temperature != nil {
		opts = append(opts, opt.WithTemperature(*cmd.Temperature))
	}
	if cmd.MaxTokens != nil {
		opts = append(opts, opt.WithMaxTokens(*cmd.MaxTokens))
	}
	if cmd.TopP != nil {
		opts = append(opts, opt.WithTopP(*cmd.TopP))
	}
	if cmd.TopK != nil {
		opts = append(opts, opt.WithTopK(*cmd.TopK))
	}
	if len(cmd.Stop) > 0 {
		opts = append(opts, opt.WithStopSequences(cmd.Stop...))
	}

	// Add attachments
	for _, file := range cmd.File {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer f.Close()
		opts = append(opts, opt.WithAttachment(f))
	}

	// Generate the content
	response, err := client.Generate(globals.ctx, cmd.Model, string(prompt), opts...)
	if err != nil {
		return err
	}

	// Print the response
	if cmd.JSON {
		data, err := json.MarshalIndent(response, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	} else {
		fmt.Println(response.Text())
	}
	return nil
}
