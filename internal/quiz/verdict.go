package quiz

// Verdict returns the results headline for a score out of RoundSize.
func Verdict(score int) string {
	switch {
	case score >= RoundSize:
		return "Incredible! You have a perfect understanding of gender equality."
	case score >= 3:
		return "Great job! You have a strong grasp of the fundamentals."
	default:
		return "Good effort! Review the answers below to learn more."
	}
}
