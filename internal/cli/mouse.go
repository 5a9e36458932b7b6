package cli

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	ahk "github.com/spyoungtech/ahk-rewrite"
)

var (
	moveSpeed    int
	moveRelative bool
	clickButton  string
)

// mouseCmd groups cursor operations.
var mouseCmd = &cobra.Command{
	Use:   "mouse",
	Short: "Mouse operations",
}

var mousePosCmd = &cobra.Command{
	Use:   "pos",
	Short: "Print the cursor position",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := newEngine()
		defer engine.Close()

		pos, err := engine.MousePosition(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("%d,%d\n", pos.X, pos.Y)

		return nil
	},
}

var mouseMoveCmd = &cobra.Command{
	Use:   "move X Y",
	Short: "Move the cursor",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid x %q: %w", args[0], err)
		}

		y, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid y %q: %w", args[1], err)
		}

		engine := newEngine()
		defer engine.Close()

		if err := engine.MouseMove(cmd.Context(), x, y, moveSpeed, moveRelative); err != nil {
			return err
		}

		color.New(color.FgGreen).Printf("moved to %d,%d\n", x, y)

		return nil
	},
}

var mouseClickCmd = &cobra.Command{
	Use:   "click [X Y]",
	Short: "Click at the cursor or at X Y",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := ahk.ClickOptions{Button: clickButton}

		if len(args) == 2 {
			x, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid x %q: %w", args[0], err)
			}

			y, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid y %q: %w", args[1], err)
			}

			opts.X, opts.Y = x, y
		} else if len(args) == 1 {
			return fmt.Errorf("click takes both X and Y or neither")
		}

		engine := newEngine()
		defer engine.Close()

		return engine.Click(cmd.Context(), opts)
	},
}

func init() {
	mouseMoveCmd.Flags().IntVar(&moveSpeed, "speed", 2, "movement speed, 0 (instant) to 100 (slowest)")
	mouseMoveCmd.Flags().BoolVar(&moveRelative, "relative", false, "treat X Y as offsets from the current position")
	mouseClickCmd.Flags().StringVar(&clickButton, "button", "left", "button to click")

	mouseCmd.AddCommand(mousePosCmd)
	mouseCmd.AddCommand(mouseMoveCmd)
	mouseCmd.AddCommand(mouseClickCmd)
	RootCmd.AddCommand(mouseCmd)
}
