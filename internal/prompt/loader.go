package prompt

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// overrideFile is the on-disk shape of a prompt override file: a mapping of
// category name to kind name to template text. Template text may reference
// {code}, {message}, {problem_description}, and the other Vars fields by
// their snake_case names.
type overrideFile map[string]map[string]string

// LoadOverrides reads a YAML prompt override file and installs its templates
// on top of the built-in ones. Unknown categories or kinds in the file are
// ignored rather than rejected, so an override file written for a newer
// build still loads.
func (r *Resolver) LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read prompt overrides: %w", err)
	}

	var file overrideFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse prompt overrides: %w", err)
	}

	for categoryName, kinds := range file {
		category := Category(categoryName)
		if _, ok := r.templates[category]; !ok {
			continue
		}
		for kindName, text := range kinds {
			kind := Kind(kindName)
			if _, ok := r.templates[category][kind]; !ok {
				continue
			}
			r.templates[category][kind] = literalTemplate(text)
		}
	}

	return nil
}

// literalTemplate wraps raw override text as a formatter that substitutes
// the known placeholder names. Unknown placeholders are left untouched so a
// typo degrades to visible text instead of an error.
func literalTemplate(text string) formatter {
	return func(v Vars) string {
		replacer := strings.NewReplacer(
			"{code}", v.Code,
			"{additional_context}", v.AdditionalContext,
			"{problem_description}", v.ProblemDescription,
			"{additional_requirements}", v.AdditionalRequirements,
			"{message}", v.Message,
			"{conversation_context}", v.ConversationContext,
			"{code_purpose}", v.CodePurpose,
		)
		return replacer.Replace(text)
	}
}
