package cli

import (
	"fmt"
	"sort"
	"sync"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	ahk "github.com/spyoungtech/ahk-rewrite"
)

var (
	winTitle string
	winClass string
)

// windowsCmd lists windows with their handles and titles.
var windowsCmd = &cobra.Command{
	Use:   "windows",
	Short: "List windows",
	Long: `Windows lists matching top-level windows with their handle, class,
and title. With no filter, all windows are listed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := newEngine()
		defer engine.Close()

		spec := ahk.WinSpec{Title: winTitle}
		if winClass != "" {
			spec.Title = joinSpec(winTitle, "ahk_class "+winClass)
		}

		wins, err := engine.ListWindows(cmd.Context(), spec)
		if err != nil {
			return err
		}

		type row struct {
			id    string
			class string
			title string
		}

		rows := make([]row, len(wins))

		// Commands serialize on the daemon; the group collects per-window
		// lookups and stops on the first failure.
		g, ctx := errgroup.WithContext(cmd.Context())

		var mu sync.Mutex

		for i, win := range wins {
			g.Go(func() error {
				title, err := win.Title(ctx)
				if err != nil {
					return err
				}

				class, err := win.Class(ctx)
				if err != nil {
					return err
				}

				mu.Lock()
				rows[i] = row{id: win.ID(), class: class, title: title}
				mu.Unlock()

				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return err
		}

		sort.Slice(rows, func(i, j int) bool { return rows[i].id < rows[j].id })

		idColor := color.New(color.FgCyan)
		classColor := color.New(color.FgMagenta)

		for _, r := range rows {
			fmt.Printf("%s  %s  %s\n",
				idColor.Sprint(r.id), classColor.Sprintf("%-20s", r.class), r.title)
		}

		fmt.Printf("%d windows\n", len(rows))

		return nil
	},
}

// joinSpec combines title-match criteria with a space, skipping empties.
func joinSpec(parts ...string) string {
	out := ""

	for _, p := range parts {
		if p == "" {
			continue
		}

		if out != "" {
			out += " "
		}

		out += p
	}

	return out
}

func init() {
	windowsCmd.Flags().StringVar(&winTitle, "title", "", "filter by window title")
	windowsCmd.Flags().StringVar(&winClass, "class", "", "filter by window class")
	RootCmd.AddCommand(windowsCmd)
}
