package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/serenitas/pkg/commands/options"
	"tableflip.dev/serenitas/pkg/runner/write"
)

func addWrite(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	eo := &options.EntryOptions{}

	cmd := &cobra.Command{
		Use:     "write [content]",
		Short:   "write a journal entry, or edit one with --id",
		Aliases: []string{"escribir"},
		Example: `
serenitas write "Hoy fue un buen día"
serenitas write --title "Gratitud" < notes.txt
serenitas write --reflect-on 3 --content "Lo que depende de mí"
serenitas write --id 1746086400000 --content "corregido"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if err := eo.ResolveContent(args, cmd.InOrStdin()); err != nil {
				return err
			}
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			w := write.Write{
				ID:        io.ID,
				ReflectOn: eo.ReflectOn,
				Title:     eo.Title,
				TitleSet:  eo.TitleSet(cmd),
				Content:   eo.Content,
				ShowID:    true,
				Service:   s.svc,
			}
			return output.HandleError(w.Do(cmd.Context()))
		},
	}

	options.AddIDArgs(cmd, io)
	options.AddEntryArgs(cmd, eo)
	_ = cmd.RegisterFlagCompletionFunc("id", func(cmd *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return entryCompletions(cmd, toComplete), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("reflect-on", func(cmd *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return libraryCompletions(cmd, toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
