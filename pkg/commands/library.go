package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/serenitas/pkg/commands/options"
	"tableflip.dev/serenitas/pkg/runner/library"
)

func addLibrary(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}
	co := &options.CategoryOptions{}

	cmd := &cobra.Command{
		Use:     "library",
		Short:   "list the library of reflections",
		Aliases: []string{"lecturas", "biblioteca"},
		Example: `
serenitas library
serenitas library --category poesía
serenitas library --show-id --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			category, err := co.Category()
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := openSession(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			l := library.List{
				Category: category,
				ShowID:   io.ShowID,
				JSON:     oo.JSON,
				Service:  s.svc,
			}
			return oo.HandleError(l.Do(cmd.Context()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	options.AddCategoryArgs(cmd, co)

	topLevel.AddCommand(cmd)
}

func addDiscover(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "discover",
		Short:   "add a random reflection from the curated corpus to the library",
		Aliases: []string{"descubrir"},
		Example: `
serenitas discover
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			d := library.Discover{ShowID: io.ShowID, Service: s.svc}
			return output.HandleError(d.Do(cmd.Context()))
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addRead(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "read <id>",
		Short:   "read a library item",
		Aliases: []string{"leer"},
		Example: `
serenitas read 3
`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return libraryCompletions(cmd, toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			r := library.Read{ID: args[0], ShowID: io.ShowID, Service: s.svc}
			return output.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
