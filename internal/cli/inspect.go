package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"inversion-spec/internal/app"
)

type inspectOptions struct {
	Doc string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the resolved API surface of a document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Doc, "doc", "", "Document path (json or yaml)")
	_ = viper.BindPFlag("doc", cmd.Flags().Lookup("doc"))
	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(ctx, app.InspectRequest{
		DocPath: resolveString(cmd, opts.Doc, "doc", "doc"),
	})
	if err != nil {
		return err
	}
	summary := result.Summary

	fmt.Printf("%s (id %s, revision %d)\n", summary.Title, summary.ID, summary.Revision)
	if summary.Unique != nil {
		fmt.Printf("unique: %t\n", *summary.Unique)
	}
	fmt.Printf("error type: %s\n", summary.ErrorType)

	fmt.Println("types:")
	for _, entry := range summary.Types {
		if entry.Kind != entry.Canonical {
			fmt.Printf("  %s: %s (resolves to %s)\n", entry.Name, entry.Kind, entry.Canonical)
			continue
		}
		fmt.Printf("  %s: %s\n", entry.Name, entry.Kind)
	}

	fmt.Println("features:")
	for _, feature := range summary.Features {
		stability := "unstable"
		if feature.Stable {
			stability = fmt.Sprintf("stable since revision %d", feature.StablizedRevision)
		}
		suffix := ""
		if feature.Deprecated {
			suffix = ", deprecated"
		}
		fmt.Printf("  %s: %s%s\n", feature.Name, stability, suffix)
	}

	fmt.Println("calls:")
	for _, call := range summary.Calls {
		fmt.Printf("  %s [%s] feature=%s input=%s result=%s|%s\n",
			call.Name, call.Direction, call.Feature, call.Input, call.Output, call.Error)
	}
	return nil
}
