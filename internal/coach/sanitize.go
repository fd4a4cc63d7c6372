package coach

import "strings"

// NoTipText replaces an empty completion.
const NoTipText = "No tip generated."

// reasoningTags are removed literally, in this order.
var reasoningTags = []string{"/think", "</think>", "/no_think", "<", ">"}

// CleanTip trims the completion text and strips reasoning markers left by the model.
func CleanTip(raw string) string {
	tip := strings.TrimSpace(raw)
	if tip == "" {
		tip = NoTipText
	}
	for _, tag := range reasoningTags {
		tip = strings.TrimSpace(strings.ReplaceAll(tip, tag, ""))
	}
	return tip
}
