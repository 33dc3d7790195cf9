package router

// View names a top-level screen of the app.
type View int

const (
	ViewHome View = iota
	ViewModules
	ViewChat
	ViewStatistics
	ViewQuiz
	ViewResources
	ViewFeedback
)

// MenuViews lists the views reachable from home, in menu order.
func MenuViews() []View {
	return []View{ViewModules, ViewChat, ViewStatistics, ViewQuiz, ViewResources, ViewFeedback}
}

// String returns the short name used in navigation and the header.
func (v View) String() string {
	switch v {
	case ViewHome:
		return "Home"
	case ViewModules:
		return "Modules"
	case ViewChat:
		return "AI Chatbot"
	case ViewStatistics:
		return "Statistics"
	case ViewQuiz:
		return "Quiz"
	case ViewResources:
		return "Resources"
	case ViewFeedback:
		return "Feedback"
	}
	return "Unknown"
}

// Heading returns the feature title shown on the home menu.
func (v View) Heading() string {
	switch v {
	case ViewModules:
		return "Library & Articles"
	case ViewChat:
		return "AI Companion"
	case ViewStatistics:
		return "Data Statistics"
	case ViewQuiz:
		return "Take a Quiz"
	case ViewResources:
		return "Resources"
	case ViewFeedback:
		return "Submit Feedback"
	}
	return v.String()
}

// Description returns the one-line blurb for the home menu.
func (v View) Description() string {
	switch v {
	case ViewModules:
		return "Access comprehensive lessons on laws, SOGIE, and read featured articles on global gender issues."
	case ViewChat:
		return "Have a safe, private conversation about gender equality questions with our smart AI assistant."
	case ViewStatistics:
		return "Analyze localized data and visual representations of gender disparities in the Philippines."
	case ViewQuiz:
		return "Challenge yourself and test your knowledge on Philippine laws and gender concepts."
	case ViewResources:
		return "Partner organizations and the sources behind every module."
	case ViewFeedback:
		return "Tell us about your experience. Is the content clear? Is the chatbot helpful?"
	}
	return ""
}
