package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goodluck-cu/a-tool-of-memorize/internal/infrastructure/serialization"
)

func newEncodeCmd() *cobra.Command {
	var (
		asBase64 bool
		output   string
	)

	cmd := &cobra.Command{
		Use:   "encode <file>",
		Short: "Re-encode a question file as JSON or Base64",
		Long: `Read a question file in either supported encoding, normalize it and
write it back out as pretty-printed JSON or, with --base64, as a Base64
wrapped JSON document suitable for hosting.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			questions, err := serialization.Decode(string(raw))
			if err != nil {
				return err
			}
			questions = serialization.Normalize(questions)

			var encoded string
			if asBase64 {
				encoded, err = serialization.EncodeBase64(questions)
			} else {
				encoded, err = serialization.Encode(questions)
			}
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Println(encoded)
				return nil
			}
			if err := os.WriteFile(output, []byte(encoded), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			fmt.Printf("Wrote %d question(s) to %s\n", len(questions), output)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asBase64, "base64", false, "Emit Base64 wrapped JSON instead of plain JSON")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")
	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file|url>",
		Short: "Check that a question source decodes and is well formed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := args[0]

			if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
				return withDeps(func(d *Deps) error {
					result, err := d.Manager.FetchQuestions(cmd.Context(), arg)
					if err != nil {
						return err
					}
					if !serialization.Validate(result.Questions) {
						return fmt.Errorf("%s decodes but contains malformed questions", arg)
					}
					fmt.Printf("%s is valid: %d question(s)\n", arg, len(result.Questions))
					return nil
				})
			}

			raw, err := os.ReadFile(arg)
			if err != nil {
				return fmt.Errorf("reading %s: %w", arg, err)
			}

			questions, err := serialization.Decode(string(raw))
			if err != nil {
				return err
			}
			if !serialization.Validate(questions) {
				return fmt.Errorf("%s decodes but contains malformed questions", arg)
			}

			fmt.Printf("%s is valid: %d question(s)\n", arg, len(questions))
			return nil
		},
	}
}
