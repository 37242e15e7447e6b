package config

// Template returns a commented starter configuration written by
// `slidefmt init`.
func Template() string {
	return `# slidefmt configuration
# See "slidefmt rules" and "slidefmt rulesets" for available names.

# Named rule set applied by default. Ignored when "rules" is set.
rule_set: basic_formatting

# Explicit ordered rule list. Order matters: clean_transitions must run
# after default_transition and section_transition.
# rules:
#   - remove_bold_from_titles
#   - ensure_space_between_title_subtitle

# HTML marker inserted after titles by add_spacing_after_titles.
# spacing_tag: <p class="py-2"/>

# Glob patterns for files to skip.
# ignore:
#   - "drafts/**"

# Keep a sidecar .slidefmt.bak of each file before its first rewrite.
backups:
  enabled: false

# Worker count for multi-file runs. 0 uses one worker per CPU.
jobs: 0
`
}
