package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/randkit/randkit/random"
)

// toIntE reads arg as a decimal integer. Leading zeros are dropped first, so
// "08" is 8 rather than a malformed octal literal; 0x, 0o and 0b prefixes
// still select their base.
func toIntE(arg string) (int, error) {
	sign, digits := "", arg
	if strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
		sign, digits = digits[:1], digits[1:]
	}
	if len(digits) > 1 && digits[0] == '0' && !strings.ContainsAny(digits[1:2], "xXoObB") {
		digits = strings.TrimLeft(digits, "0")
		if digits == "" || digits[0] == '_' {
			digits = "0" + digits
		}
	}
	return cast.ToIntE(sign + digits)
}

func printLines(cmd *cobra.Command, items []string) {
	for _, item := range items {
		fmt.Fprintln(cmd.OutOrStdout(), item)
	}
}

func (a *app) randomCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Print a float in [0, 1)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var v float64
			if err := draw(func() { v = random.Random(a.opt()) }); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

func (a *app) uniformCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "uniform [min] [max]",
		Short: "Print a float in [min, max)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			argMin, err := cast.ToFloat64E(args[0])
			if err != nil {
				return err
			}
			argMax, err := cast.ToFloat64E(args[1])
			if err != nil {
				return err
			}
			var v float64
			if err := draw(func() { v = random.Uniform(argMin, argMax, a.opt()) }); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

func (a *app) randIntCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "randint [min] [max]",
		Short: "Print an integer in [min, max]",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			argMin, err := toIntE(args[0])
			if err != nil {
				return err
			}
			argMax, err := toIntE(args[1])
			if err != nil {
				return err
			}
			if argMin > argMax {
				return fmt.Errorf("min %d is greater than max %d", argMin, argMax)
			}
			var v int
			if err := draw(func() { v = random.RandInt(argMin, argMax, a.opt()) }); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

func (a *app) choiceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "choice [item]...",
		Short: "Print one of the items",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var chosen string
			if err := draw(func() { chosen = random.Choice(args, a.opt()) }); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), chosen)
			return nil
		},
	}
}

func (a *app) choicesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "choices [n] [item]...",
		Short: "Print n items drawn with replacement, one per line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := toIntE(args[0])
			if err != nil {
				return err
			}
			if n < 0 {
				return fmt.Errorf("negative number of choices %d", n)
			}
			var chosen []string
			if err := draw(func() { chosen = random.Choices(args[1:], n, a.opt()) }); err != nil {
				return err
			}
			printLines(cmd, chosen)
			return nil
		},
	}
}

func (a *app) shuffleCommand() *cobra.Command {
	var uniform bool
	cmd := &cobra.Command{
		Use:   "shuffle [item]...",
		Short: "Print the items in random order, one per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			shuffle := random.Shuffle[[]string]
			if uniform {
				shuffle = random.ShuffleUniform[[]string]
			}
			if err := draw(func() { shuffle(args, a.opt()) }); err != nil {
				return err
			}
			printLines(cmd, args)
			return nil
		},
	}
	cmd.Flags().BoolVar(&uniform, "uniform", false, "use a Fisher-Yates shuffle instead of a randomized sort")
	return cmd
}

func (a *app) sampleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sample [size] [item]...",
		Short: "Print size distinct items, one per line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := toIntE(args[0])
			if err != nil {
				return err
			}
			if size < 0 {
				return fmt.Errorf("negative sample size %d", size)
			}
			var sampled []string
			if err := draw(func() { sampled = random.Sample(args[1:], size, a.opt()) }); err != nil {
				return err
			}
			printLines(cmd, sampled)
			return nil
		},
	}
}
