package main

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jonathan/resume-builder/internal/voice"
	"github.com/spf13/cobra"
)

var voiceCmd = &cobra.Command{
	Use:   "voice",
	Short: "Edit the saved resume with spoken-style commands",
	Long: `Reads commands from stdin, one utterance per line, such as "add skill Python" or
"my email is jane@example.com". A blank line or a pause ends the utterance. Each command is
classified with the Gemini API and applied; the resume is saved when input ends.`,
	RunE: runVoice,
}

var (
	voiceSilence time.Duration
)

func init() {
	voiceCmd.Flags().DurationVar(&voiceSilence, "silence", voice.DefaultSilenceTimeout, "Pause that ends an utterance")
	rootCmd.AddCommand(voiceCmd)
}

func runVoice(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	client, err := a.llmClient(ctx)
	if err != nil {
		return err
	}
	if client == nil {
		return errNoAPIKey
	}

	out := cmd.OutOrStdout()
	session := voice.NewSession(
		voice.NewLineRecognizer(cmd.InOrStdin()),
		voice.NewLLMClassifier(client),
		a.store,
		voice.WithSilenceTimeout(voiceSilence),
		voice.WithLogger(a.logger),
		voice.WithObserver(a.metrics),
	)
	defer session.Close()

	var processed atomic.Bool
	session.OnChange(func(state voice.State, transcript string) {
		if state == voice.StateProcessing {
			processed.Store(true)
			_, _ = fmt.Fprintf(out, "> %s\n", transcript)
		}
	})

	applied := 0
	for session.State() != voice.StateUnavailable && ctx.Err() == nil {
		if err := session.Start(ctx); err != nil {
			var recErr *voice.RecognizerError
			if errors.As(err, &recErr) {
				break
			}
			return err
		}
		session.Wait()

		if !processed.Swap(false) {
			continue
		}
		last := session.LastCommand()
		if last == nil || last.Intent() == voice.IntentUnknown {
			_, _ = fmt.Fprintln(out, "  not understood")
			continue
		}
		applied++
		_, _ = fmt.Fprintf(out, "  applied %s\n", last.Intent())
	}

	if applied == 0 {
		_, _ = fmt.Fprintln(out, "No changes")
		return nil
	}
	if err := a.save(ctx); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Applied %d command(s)\n", applied)
	return nil
}
