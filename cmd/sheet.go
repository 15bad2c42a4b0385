package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathadventure/internal/problemgen"
	"github.com/abhisek/mathadventure/internal/session"
)

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Print a worksheet of problems without repeats",
	Example: `  mathadventure sheet --tier 4-8 --count 20
  mathadventure sheet --tier 8+ --count 30 --seed 7 --answers`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tierArg, _ := cmd.Flags().GetString("tier")
		count, _ := cmd.Flags().GetInt("count")
		answers, _ := cmd.Flags().GetBool("answers")

		tier, err := problemgen.ParseTier(tierArg)
		if err != nil {
			return err
		}
		if count <= 0 {
			return errors.New("count must be positive")
		}

		d, err := newDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		if n := len(problemgen.Space(tier)); count > n {
			fmt.Fprintf(cmd.ErrOrStderr(),
				"warning: %s has only %d different problems; some will repeat\n", tier.DisplayName(), n)
		}

		d.logger.Info().Str("tier", tier.String()).Int("count", count).Msg("printing worksheet")
		return writeSheet(cmd.OutOrStdout(), d.generator, tier, count, answers)
	},
}

func init() {
	sheetCmd.Flags().String("tier", "", "Level: 2-4, 4-8 or 8+")
	sheetCmd.Flags().Int("count", 20, "Number of problems")
	sheetCmd.Flags().Bool("answers", false, "Append an answer key")
	_ = sheetCmd.MarkFlagRequired("tier")
}

// writeSheet prints count problems drawn from a single seen-set, so no
// problem repeats until the tier's problem space runs out.
func writeSheet(w io.Writer, gen session.Generator, tier problemgen.Tier, count int, answers bool) error {
	seen := problemgen.NewSeenSet()
	problems := make([]problemgen.Problem, count)
	for i := range problems {
		problems[i] = gen.Generate(tier, seen)
	}

	if _, err := fmt.Fprintf(w, "Math Adventure! %s (%s)\n\n", tier.DisplayName(), tier.Tagline()); err != nil {
		return err
	}
	for i, p := range problems {
		if _, err := fmt.Fprintf(w, "%3d.  %s = ____\n", i+1, p); err != nil {
			return err
		}
	}

	if !answers {
		return nil
	}
	if _, err := fmt.Fprint(w, "\nAnswers\n\n"); err != nil {
		return err
	}
	for i, p := range problems {
		if _, err := fmt.Fprintf(w, "%3d.  %s = %d\n", i+1, p, p.Answer); err != nil {
			return err
		}
	}
	return nil
}
