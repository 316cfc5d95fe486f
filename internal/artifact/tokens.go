package artifact

// ApproxTokens estimates the token count of text as len/4. This is the
// character approximation the dataset tooling has always reported when
// no tokenizer is available; it is only used for progress stats, never
// for request budgeting.
func ApproxTokens(text string) int {
	return len(text) / 4
}

// ApproxResultTokens sums the approximate input and output tokens of a
// result set.
func ApproxResultTokens(results []Result) (inputTokens, outputTokens int) {
	for _, r := range results {
		inputTokens += ApproxTokens(r.Input)
		outputTokens += ApproxTokens(r.Output)
	}
	return inputTokens, outputTokens
}
