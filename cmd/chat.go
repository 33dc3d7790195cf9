package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edgeai/edgeai/internal/chat"
	"github.com/edgeai/edgeai/internal/llm"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the EDGE-AI assistant in the terminal",
	Long: `Start a plain-text conversation with the assistant.

Type /reset to start over and /quit (or end input) to leave.
With --once, ask a single question and print the reply.`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().String("once", "", "Ask one question and exit")
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer e.logger.Sync() //nolint:errcheck

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo(), e.logger)
	if err != nil {
		return fmt.Errorf("LLM provider: %w (set EDGEAI_GEMINI_API_KEY or GEMINI_API_KEY)", err)
	}

	once, _ := cmd.Flags().GetString("once")
	session := chat.NewSession()
	assistant := chat.NewAssistant(provider)
	out := cmd.OutOrStdout()

	if once != "" {
		msg, ok := session.Send(ctx, assistant, once)
		if !ok {
			return fmt.Errorf("empty question")
		}
		fmt.Fprintln(out, msg.Text)
		return nil
	}

	return chatLoop(ctx, session, assistant, cmd.InOrStdin(), out)
}

// chatLoop reads one message per line until /quit or end of input.
func chatLoop(ctx context.Context, session *chat.Session, c chat.Completer, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintf(out, "EDGE-AI: %s\n", chat.Greeting)

	for {
		fmt.Fprint(out, "\nYou: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
			continue
		case "/quit", "/exit":
			return nil
		case "/reset":
			session.Reset()
			fmt.Fprintf(out, "EDGE-AI: %s\n", chat.Greeting)
			continue
		}

		msg, ok := session.Send(ctx, c, line)
		if !ok {
			continue
		}
		fmt.Fprintf(out, "EDGE-AI: %s\n", msg.Text)
	}
}
