// Package rules contains the built-in analyses.
package rules

import (
	"sfclint/internal/rule"
)

// All returns the built-in rules in registration order.
func All() []rule.Rule {
	return []rule.Rule{
		NoConsole{},
		NoProcessEnv{},
		NoVHtml{},
		RequireVForKey{},
		MustacheSpacing{},
		PreferImportMeta{},
	}
}

// Default returns a registry with every built-in rule.
func Default() *rule.Registry {
	reg, err := rule.NewRegistry(All()...)
	if err != nil {
		// built-in ids are unique
		panic(err)
	}
	return reg
}
