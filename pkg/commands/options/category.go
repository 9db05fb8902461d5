package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/serenitas/pkg/library"
)

// CategoryOptions narrows a library listing.
type CategoryOptions struct {
	Raw string
}

func AddCategoryArgs(cmd *cobra.Command, o *CategoryOptions) {
	names := make([]string, 0, len(library.AllCategories()))
	for _, c := range library.AllCategories() {
		names = append(names, c.String())
	}
	cmd.Flags().StringVar(&o.Raw, "category", "",
		"Only show one category: "+strings.Join(names, ", ")+".")
	_ = cmd.RegisterFlagCompletionFunc("category", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

// Category parses the flag. An empty flag means every category.
func (o *CategoryOptions) Category() (library.Category, error) {
	if strings.TrimSpace(o.Raw) == "" {
		return "", nil
	}
	return library.ParseCategory(o.Raw)
}
