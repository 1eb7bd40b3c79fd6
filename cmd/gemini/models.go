package main

import (
	"fmt"

	// Packages
	schema "github.com/docloom/go-gemini/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ModelsCmd struct {
	Long bool `flag:"long" short:"l" help:"Print model descriptions"`
}

type ModelCmd struct {
	Name string `arg:"" help:"Model name"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *ModelsCmd) Run(globals *Globals) error {
	// Vertex has no listing call
	if globals.Project != "" {
		return fmt.Errorf("model listing is not available on vertex, run %q to probe availability", execName()+" check")
	}

	client, err := globals.Client()
	if err != nil {
		return err
	}
	models, err := client.ListModels(globals.ctx)
	if err != nil {
		return err
	}

	// Print the models
	for _, model := range models {
		if cmd.Long {
			fmt.Printf("%-40s %s\n", model.ID(), modelDescription(model))
		} else {
			fmt.Println(model.ID())
		}
	}
	return nil
}

func (cmd *ModelCmd) Run(globals *Globals) error {
	client, err := globals.Client()
	if err != nil {
		return err
	}
	model, err := client.GetModel(globals.ctx, cmd.Name)
	if err != nil {
		return err
	}
	fmt.Println(model)
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func modelDescription(model *schema.Model) string {
	if model.Description != "" {
		return model.Description
	}
	return model.DisplayName
}
