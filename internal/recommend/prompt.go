package recommend

import (
	"fmt"
	"sort"
	"strings"
)

// PreferencePlaceholder is what callers put in a custom template
// where the customer's preference text should go.
const PreferencePlaceholder = "{preference}"

// BuildPrompt produces the strict-JSON suggestion prompt. The
// beverage and condiment id lists keep the model constrained to
// items the kiosk can actually serve.
func BuildPrompt(preference string, beverageIDs, condimentIDs []string) string {
	// Stable ordering so prompts are reproducible.
	sort.Strings(beverageIDs)
	sort.Strings(condimentIDs)

	return fmt.Sprintf(`
You are a beverage recommendation engine for a drink kiosk.

Your task:
- Suggest ONE beverage and up to TWO condiments for the customer.
- Output MUST be valid JSON.
- Output MUST start with { and end with }.
- Output MUST contain ONLY JSON.
- NO explanations.
- NO markdown.
- NO extra text.

Allowed beverage ids: %s
Allowed condiment ids: %s

Required JSON schema:
{
  "beverage": "string",
  "condiments": ["string"],
  "reason": "string"
}

Customer preference:
%s`,
		strings.Join(beverageIDs, ", "),
		strings.Join(condimentIDs, ", "),
		preference,
	)
}

// RenderTemplate substitutes the preference into a caller-supplied
// template. Templates without the placeholder get the preference
// appended so it is never silently dropped.
func RenderTemplate(template, preference string) string {
	if strings.Contains(template, PreferencePlaceholder) {
		return strings.ReplaceAll(template, PreferencePlaceholder, preference)
	}
	return template + "\n\nCustomer preference:\n" + preference
}
