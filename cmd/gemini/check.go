package main

import (
	"fmt"
	"os"

	// Packages
	geminiclient "github.com/docloom/go-gemini/pkg/client"
	yaml "gopkg.in/yaml.v3"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type CheckCmd struct {
	Models []string `arg:"" optional:"" help:"Models to check, defaults to the known candidates"`
	Config string   `type:"file" help:"YAML file with a custom candidate list"`
}

// checkConfig is the YAML shape accepted by the --config flag
type checkConfig struct {
	Models []geminiclient.Candidate `yaml:"models"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *CheckCmd) Run(globals *Globals) error {
	client, err := globals.Client()
	if err != nil {
		return err
	}

	// Assemble the candidate list
	candidates, err := cmd.candidates()
	if err != nil {
		return err
	}
	names := make([]string, 0, len(candidates))
	notes := make(map[string]string, len(candidates))
	for _, candidate := range candidates {
		names = append(names, candidate.Model)
		notes[candidate.Model] = candidate.Note
	}

	// Probe each model in turn
	fmt.Printf("Checking %d models on %v\n\n", len(names), client.Target())
	results := client.CheckModels(globals.ctx, names...)

	// Print the report
	var available, unavailable int
	for _, result := range results {
		note := notes[result.Model]
		if note != "" {
			note = " (" + note + ")"
		}
		switch result.Status {
		case geminiclient.Available:
			available++
			fmt.Printf("  %-28s available%s, %d tokens used\n", result.Model, note, result.Tokens)
		default:
			unavailable++
			fmt.Printf("  %-28s %v%s\n", result.Model, result.Status, note)
			if globals.Verbose && result.Err != nil {
				fmt.Printf("    %v\n", result.Err)
			}
		}
	}

	// Summary and recommendation
	fmt.Printf("\n%d available, %d unavailable\n", available, unavailable)
	if model := geminiclient.Recommend(results); model != "" {
		fmt.Printf("Recommended model: %s\n", model)
	} else {
		fmt.Println("No models available, check the project and region")
	}
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// candidates returns the models to probe: explicit arguments win over the
// --config file, which wins over the default candidate list
func (cmd *CheckCmd) candidates() ([]geminiclient.Candidate, error) {
	if len(cmd.Models) > 0 {
		candidates := make([]geminiclient.Candidate, 0, len(cmd.Models))
		for _, model := range cmd.Models {
			candidates = append(candidates, geminiclient.Candidate{Model: model})
		}
		return candidates, nil
	}
	if cmd.Config != "" {
		data, err := os.ReadFile(cmd.Config)
		if err != nil {
			return nil, err
		}
		var config checkConfig
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, err
		}
		if len(config.Models) == 0 {
			return nil, fmt.Errorf("%s: no models listed", cmd.Config)
		}
		return config.Models, nil
	}
	return geminiclient.DefaultCandidates, nil
}
