package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// domainsCmd lists registered domains or shows one in detail.
var domainsCmd = &cobra.Command{
	Use:   "domains [id]",
	Short: "List registered domains, or show one domain's spec and instruction",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDomains,
}

func runDomains(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireReady(cmd.Context()); err != nil {
		return err
	}

	if len(args) == 1 {
		return showDomain(a, args[0])
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tMAX TOKENS\tDESCRIPTION")
	for _, id := range a.registry.IDs() {
		spec, _ := a.registry.Get(id)
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", spec.ID, spec.Model, spec.MaxTokens, spec.Description)
	}
	return w.Flush()
}

func showDomain(a *app, id string) error {
	spec, ok := a.registry.Get(id)
	if !ok {
		return fmt.Errorf("domain %q is not registered (known: %v)", id, a.registry.IDs())
	}

	data, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	fmt.Println()
	fmt.Println("Instruction:")
	fmt.Println(a.instr.For(id))
	return nil
}
