package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/serenitas/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "serenitas",
		Short: options.Wrap80("A quiet journal with a library of reflections to write about."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addJournal(topLevel)
	addWrite(topLevel)
	addLibrary(topLevel)
	addDiscover(topLevel)
	addRead(topLevel)
	addReport(topLevel)
	addExport(topLevel)
	addInfo(topLevel)
	addMCP(topLevel)
	addCompletions(topLevel)
	addUpgrade(topLevel)
	addVersion(topLevel)
}
