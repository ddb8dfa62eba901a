package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	skillx "github.com/tanpawarit/ddg-instant-answer-skill/agent/agents/skill"
	localex "github.com/tanpawarit/ddg-instant-answer-skill/agent/locale"
	lookupx "github.com/tanpawarit/ddg-instant-answer-skill/agent/lookup"
	toolx "github.com/tanpawarit/ddg-instant-answer-skill/agent/tool"
	configx "github.com/tanpawarit/ddg-instant-answer-skill/pkg/config"
	ddgx "github.com/tanpawarit/ddg-instant-answer-skill/pkg/ddg"
	logx "github.com/tanpawarit/ddg-instant-answer-skill/pkg/logger"
	_ "github.com/tanpawarit/ddg-instant-answer-skill/pkg/logger/autoload"
)

type app struct {
	skill  *skillx.Skill
	lookup *lookupx.Service
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		envFile string
		lang    string
	)

	root := &cobra.Command{
		Use:           "ddgskill",
		Short:         "Answer 'what is' questions with DuckDuckGo instant answers",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if envFile == "" {
				return nil
			}
			configx.SetEnvFile(envFile)
			logCfg, err := configx.New[logx.Config]("LOG")
			if err != nil {
				return err
			}
			logx.Init(*logCfg)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env", "", "path to a .env file")
	root.PersistentFlags().StringVar(&lang, "lang", "", "locale of the word lists (default from SKILL_LOCALE)")

	root.AddCommand(
		&cobra.Command{
			Use:   "ask <utterance...>",
			Short: "Handle an utterance addressed to the skill and speak the answer",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := newApp(lang, newStdoutHost(cmd.OutOrStdout()))
				if err != nil {
					return err
				}
				return a.skill.HandleAsk(cmd.Context(), strings.Join(args, " "))
			},
		},
		&cobra.Command{
			Use:   "query <phrase...>",
			Short: "Offer an answer to a common-query phrase",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := newApp(lang, newStdoutHost(cmd.OutOrStdout()))
				if err != nil {
					return err
				}
				matched, err := a.skill.MatchQueryPhrase(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				if !matched {
					log.Info().Msg("no match")
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "lookup <topic...>",
			Short: "Run the instant_answer.lookup tool and print its JSON result",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := newApp(lang, newStdoutHost(cmd.OutOrStdout()))
				if err != nil {
					return err
				}
				lt, err := toolx.NewLookupTool(a.lookup)
				if err != nil {
					return err
				}
				argsJSON, err := json.Marshal(map[string]string{"query": strings.Join(args, " ")})
				if err != nil {
					return err
				}
				out, err := lt.InvokableRun(cmd.Context(), string(argsJSON))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			},
		},
		&cobra.Command{
			Use:   "tool-info",
			Short: "Print the tool schema exposed to eino agents",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(toolx.LookupToolInfo())
			},
		},
		&cobra.Command{
			Use:   "locales",
			Short: "List the embedded locales",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				for _, l := range localex.Available() {
					fmt.Fprintln(cmd.OutOrStdout(), l)
				}
			},
		},
	)

	return root
}

func newApp(lang string, host *stdoutHost) (*app, error) {
	ddgCfg, err := configx.New[ddgx.Config]("DDG")
	if err != nil {
		return nil, fmt.Errorf("load ddg config: %w", err)
	}
	client, err := ddgx.NewClient(*ddgCfg)
	if err != nil {
		return nil, err
	}

	skillCfg, err := configx.New[skillx.Config]("SKILL")
	if err != nil {
		return nil, fmt.Errorf("load skill config: %w", err)
	}
	if lang == "" {
		lang = skillCfg.Locale
	}
	lists, err := localex.Load(lang)
	if err != nil {
		return nil, err
	}

	lookup, err := lookupx.New(client, lists)
	if err != nil {
		return nil, err
	}
	skill, err := skillx.New(host, lookup, lists)
	if err != nil {
		return nil, err
	}

	return &app{skill: skill, lookup: lookup}, nil
}
