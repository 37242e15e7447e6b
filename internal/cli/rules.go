package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/slidefmt/internal/logging"
	"github.com/yaklabco/slidefmt/pkg/rewrite"
	_ "github.com/yaklabco/slidefmt/pkg/rewrite/rules" // Register built-in rules
)

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
}

// ruleSetInfo represents a rule set in JSON output.
type ruleSetInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Members     []string `json:"members"`
}

func newRulesCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available rewrite rules",
		Long: `List all available rewrite rules with their names, descriptions,
and tags. Rules are applied in the order given to --rules, or in the
order defined by the selected rule set.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules := rewrite.DefaultCatalog.Rules()

			if format == formatJSON {
				return outputRulesJSON(cmd, rules)
			}

			logger := logging.NewInteractive()
			logger.Info("available rules")

			for _, rule := range rules {
				keyvals := []any{logging.FieldDescription, rule.Description()}
				if tags := rule.Tags(); len(tags) > 0 {
					keyvals = append(keyvals, "tags", strings.Join(tags, ","))
				}
				logger.Info(rule.Name(), keyvals...)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")

	return cmd
}

func newRuleSetsCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "rulesets",
		Aliases: []string{"rule-sets", "sets"},
		Short:   "List available rule sets",
		Long: `List the named rule sets and their member rules, in the order
the members run.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sets := rewrite.DefaultCatalog.Sets()

			if format == formatJSON {
				return outputRuleSetsJSON(cmd, sets)
			}

			logger := logging.NewInteractive()
			logger.Info("available rule sets")

			for _, set := range sets {
				logger.Info(set.Name,
					logging.FieldDescription, set.Description,
					logging.FieldMembers, strings.Join(set.Members, ","),
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")

	return cmd
}

// outputRulesJSON outputs rules as a JSON array.
func outputRulesJSON(cmd *cobra.Command, rules []rewrite.Rule) error {
	infos := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, ruleInfo{
			Name:        rule.Name(),
			Description: rule.Description(),
			Tags:        rule.Tags(),
		})
	}
	return encodeJSON(cmd, infos)
}

// outputRuleSetsJSON outputs rule sets as a JSON array.
func outputRuleSetsJSON(cmd *cobra.Command, sets []rewrite.RuleSet) error {
	infos := make([]ruleSetInfo, 0, len(sets))
	for _, set := range sets {
		infos = append(infos, ruleSetInfo{
			Name:        set.Name,
			Description: set.Description,
			Members:     set.Members,
		})
	}
	return encodeJSON(cmd, infos)
}

func encodeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}
