package donation

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/createrainforest/bosweb/pkg/form"
	"github.com/createrainforest/bosweb/pkg/formcheck"
	"github.com/createrainforest/bosweb/pkg/locale"
)

//go:embed rules.yaml
var defaultRulesYAML []byte

// TransferRules are the mail transfer checks for one language.
type TransferRules struct {
	// LockLabel relabels the submit button once the form is accepted.
	LockLabel string
	// LockFirst disables the submit button before the outcome is known, so a
	// rejected form stays locked.
	LockFirst bool
	Rules     []formcheck.Rule
}

type transferRulesDoc struct {
	LockLabel string     `yaml:"lock_label"`
	LockFirst bool       `yaml:"lock_first"`
	Rules     [][]string `yaml:"rules"`
}

// ParseTransferRules decodes per-language rule sets from YAML. Language keys
// must name site languages.
func ParseTransferRules(data []byte) (map[string]TransferRules, error) {
	var doc map[string]transferRulesDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTransferRules, err)
	}

	sets := make(map[string]TransferRules, len(doc))
	for lang, d := range doc {
		code := locale.Exact(lang)
		if code == "" {
			return nil, fmt.Errorf("%w: unsupported language %q", ErrMalformedTransferRules, lang)
		}

		flat := make([]string, 0, len(d.Rules)*4)
		for i, tuple := range d.Rules {
			if len(tuple) != 4 {
				return nil, fmt.Errorf("%w: %s rule %d has %d elements", ErrMalformedTransferRules, lang, i, len(tuple))
			}
			flat = append(flat, tuple...)
		}
		rules, err := formcheck.ParseRules(flat...)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrMalformedTransferRules, lang, err)
		}

		sets[code] = TransferRules{
			LockLabel: d.LockLabel,
			LockFirst: d.LockFirst,
			Rules:     rules,
		}
	}
	return sets, nil
}

// DefaultTransferRules returns the built-in rule sets.
var DefaultTransferRules = sync.OnceValues(func() (map[string]TransferRules, error) {
	return ParseTransferRules(defaultRulesYAML)
})

// MailTransfer checks mail transfer forms in the visitor's language.
type MailTransfer struct {
	sets map[string]TransferRules
}

// NewMailTransfer creates a checker over the given rule sets.
func NewMailTransfer(sets map[string]TransferRules) *MailTransfer {
	return &MailTransfer{sets: sets}
}

// Rules returns the rule set for lang.
func (m *MailTransfer) Rules(lang string) (TransferRules, error) {
	set, ok := m.sets[locale.Exact(lang)]
	if !ok {
		return TransferRules{}, fmt.Errorf("%w: %q", ErrUnknownTransferLocale, lang)
	}
	return set, nil
}

// Check validates f against the rules for lang. The rule set is returned
// alongside the validation error so callers can lock the submit button.
func (m *MailTransfer) Check(lang string, f *form.Form) (TransferRules, error) {
	set, err := m.Rules(lang)
	if err != nil {
		return TransferRules{}, err
	}
	return set, formcheck.Validate(f, set.Rules...)
}
