package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(serenitas completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(serenitas completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func entryCompletions(cmd *cobra.Command, toComplete string) []string {
	s, err := openSession(cmd.Context())
	if err != nil {
		return nil
	}
	defer s.Close()
	entries, err := s.svc.Entries()
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.HasPrefix(e.ID, toComplete) {
			out = append(out, e.ID+"\t"+e.DisplayTitle())
		}
	}
	return out
}

func libraryCompletions(cmd *cobra.Command, toComplete string) []string {
	s, err := openSession(cmd.Context())
	if err != nil {
		return nil
	}
	defer s.Close()
	items, err := s.svc.Library()
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if strings.HasPrefix(it.ID, toComplete) {
			out = append(out, it.ID+"\t"+it.Title)
		}
	}
	return out
}
