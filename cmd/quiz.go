package cmd

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/edgeai/edgeai/internal/quiz"
	"github.com/edgeai/edgeai/internal/ui/theme"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take a five-question quiz in the terminal",
	Long: `Answer five multiple-choice questions. Answers are revealed at the end.

Enter 1-4 or A-D for each question.`,
	RunE: runQuiz,
}

func init() {
	quizCmd.Flags().Uint64("seed", 0, "Seed for question selection (0 = random)")
	quizCmd.Flags().Int("rounds", 1, "Number of rounds to play; later rounds avoid repeats")
}

func runQuiz(cmd *cobra.Command, args []string) error {
	seed, _ := cmd.Flags().GetUint64("seed")
	rounds, _ := cmd.Flags().GetInt("rounds")

	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer e.logger.Sync() //nolint:errcheck

	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewPCG(seed, seed))
	}
	session, err := quiz.NewSession(e.catalog.Questions(), rng)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()
	for i := 0; i < max(rounds, 1); i++ {
		round := session.Start()
		if !playRound(round, scanner, out) {
			fmt.Fprintln(out, "\n(input closed)")
			return nil
		}
		e.logger.Info("quiz round completed",
			zap.Int("round", session.Rounds()),
			zap.Int("score", round.Score()),
		)
	}
	return nil
}

// playRound asks every question of r and prints the results. It returns
// false when input ends before the round is complete.
func playRound(r *quiz.Round, scanner *bufio.Scanner, out io.Writer) bool {
	for !r.Completed() {
		q := r.Current()
		fmt.Fprintf(out, "── Question %d/%d ──\n", r.Step()+1, r.Total())
		fmt.Fprintln(out, q.Prompt)
		for j, c := range q.Options {
			fmt.Fprintf(out, "  %d) %s\n", j+1, c)
		}

		for {
			fmt.Fprint(out, "\nYour answer: ")
			if !scanner.Scan() {
				return false
			}
			if choice, ok := parseChoice(scanner.Text()); ok && r.Select(choice) {
				break
			}
			fmt.Fprintln(out, "Please enter 1-4 or A-D.")
		}
		r.ConfirmAndAdvance()
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "── Quiz Complete! %d/%d ──\n", r.Score(), r.Total())
	fmt.Fprintln(out, quiz.Verdict(r.Score()))
	for i, item := range r.Review() {
		fmt.Fprintln(out)
		if item.Correct {
			lipgloss.Fprintf(out, "%d. %s  %s\n", i+1, theme.Correct.Render("✓ Correct"), item.Prompt)
		} else {
			lipgloss.Fprintf(out, "%d. %s  %s\n", i+1, theme.Incorrect.Render("✗ Incorrect"), item.Prompt)
		}
		fmt.Fprintf(out, "   Your Choice: %s\n", item.SelectedText)
		if !item.Correct {
			fmt.Fprintf(out, "   Correct Answer: %s\n", item.CorrectText)
		}
		fmt.Fprintf(out, "   Educational Insight: %s\n", item.Explanation)
	}
	fmt.Fprintln(out)
	return true
}

// parseChoice maps "1".."4" or "a".."d" to an option index.
func parseChoice(s string) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 1 {
		return 0, false
	}
	switch c := s[0]; {
	case c >= '1' && c <= '9':
		return int(c - '1'), true
	case c >= 'a' && c <= 'i':
		return int(c - 'a'), true
	}
	return 0, false
}
