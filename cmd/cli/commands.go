package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"agentforge/internal/assistant"
	"agentforge/internal/evaluation"
)

var version = "dev"

type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "agentforge",
		Short:         "Route requests to specialist LLM agents",
		Long:          "AgentForge classifies a request, runs the matching agent and grades outputs with an LLM judge.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config.yaml (default: ./config, . or /etc/app)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		newRouteCmd(opts),
		newRunCmd(opts),
		newJudgeCmd(opts),
	)
	return root
}

func newRouteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "route <text>",
		Short: "Classify a request and print the routing decision",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := newApp(ctx, opts, true)
			if err != nil {
				return err
			}
			defer app.Close()

			out, err := app.uc.Route(ctx, assistant.RouteInput{Text: strings.Join(args, " ")})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out.Decision)
		},
	}
}

func newRunCmd(opts *rootOptions) *cobra.Command {
	var (
		category string
		userID   string
		extra    string
	)

	cmd := &cobra.Command{
		Use:   "run <text>",
		Short: "Route a request (unless --category is set) and run the agent",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := newApp(ctx, opts, category == "")
			if err != nil {
				return err
			}
			defer app.Close()

			out, err := app.uc.Execute(ctx, assistant.ExecuteInput{
				UserID:   userID,
				Text:     strings.Join(args, " "),
				Category: category,
				Context:  extra,
			})
			if err != nil {
				return err
			}
			if out.Decision != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "routed to %s (%s, %.3f)\n",
					out.Decision.Category, out.Decision.Method, out.Decision.Confidence)
			}
			return printJSON(cmd.OutOrStdout(), out.Result)
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "skip routing and use this category")
	cmd.Flags().StringVar(&userID, "user", "", "user id for conversation context")
	cmd.Flags().StringVar(&extra, "context", "", "additional context passed to the agent")
	return cmd
}

func newJudgeCmd(opts *rootOptions) *cobra.Command {
	var task, output string

	cmd := &cobra.Command{
		Use:   "judge",
		Short: "Grade an agent output against its task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := newApp(ctx, opts, false)
			if err != nil {
				return err
			}
			defer app.Close()

			out, err := app.uc.Judge(ctx, evaluation.JudgeInput{Task: task, Output: output})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out.Verdict)
		},
	}
	cmd.Flags().StringVar(&task, "task", "", "the original task")
	cmd.Flags().StringVar(&output, "output", "", "the agent output to grade")
	_ = cmd.MarkFlagRequired("task")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
