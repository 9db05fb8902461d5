package options

import (
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// EntryOptions are the editor fields for the write command.
type EntryOptions struct {
	Title     string
	Content   string
	ReflectOn string
}

func AddEntryArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		"Title of the entry. Defaults to the existing title, or a generated one.")
	cmd.Flags().StringVarP(&o.Content, "content", "c", "",
		"Content of the entry. Read from stdin when omitted.")
	cmd.Flags().StringVar(&o.ReflectOn, "reflect-on", "",
		"Library item id the new entry reflects on.")
}

// TitleSet reports whether --title was passed, even if empty.
func (o *EntryOptions) TitleSet(cmd *cobra.Command) bool {
	return cmd.Flags().Changed("title")
}

// ResolveContent fills Content from args or r when the flag was not given.
func (o *EntryOptions) ResolveContent(args []string, r io.Reader) error {
	if o.Content != "" {
		return nil
	}
	if len(args) > 0 {
		o.Content = strings.Join(args, " ")
		return nil
	}
	if r == nil {
		return errors.New("no content given")
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	o.Content = strings.TrimRight(string(b), "\n")
	return nil
}
