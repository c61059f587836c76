package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// statusCmd runs a discovery pass and prints the startup state snapshot.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Run discovery and print the startup state as JSON",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	snap := a.discover(cmd.Context())
	out := struct {
		Status       interface{} `json:"startup"`
		Domains      []string    `json:"domains"`
		Instructions []string    `json:"instructions"`
	}{
		Status:       snap,
		Domains:      a.registry.IDs(),
		Instructions: a.instr.IDs(),
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
