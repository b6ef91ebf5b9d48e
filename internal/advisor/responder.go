// Package advisor implements the chat assistant: canned keyword answers, the
// client for the external advisor backend and the session service that keeps
// transcripts.
package advisor

import (
	"strings"

	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

const (
	ResponseGreeting  = "Hello! I'm FinIQ, your AI financial advisor. I can help with budgeting, saving, investing, and debt planning. What would you like to know?"
	ResponseBudget    = "Based on your income, I recommend following the 50/30/20 rule: 50% for needs, 30% for wants, and 20% for savings and debt repayment."
	ResponseSave      = "To boost your savings, try automating transfers to a high-yield savings account right after payday. Even small amounts add up over time!"
	ResponseInvest    = "For beginner investors, consider starting with low-cost index funds or ETFs. They provide diversification with minimal fees."
	ResponseDebt      = "When tackling debt, focus on high-interest debt first (like credit cards) while making minimum payments on others. This is called the avalanche method."
	ResponseEmergency = "Aim to build an emergency fund that covers 3-6 months of essential expenses. Keep it in an easily accessible account."
	ResponseNotSure   = "I'm not sure I understand your question. Could you rephrase it? I can help with budgeting, saving, investing, and debt management."
)

type rule struct {
	patterns []string
	response string
}

// rules are evaluated in order, the first match wins. Patterns match anywhere
// in the message, so "hi" also matches "this".
var rules = []rule{
	{[]string{"*hello*", "*hi*"}, ResponseGreeting},
	{[]string{"*budget*", "*spend*"}, ResponseBudget},
	{[]string{"*save*", "*saving*"}, ResponseSave},
	{[]string{"*invest*", "*stock*"}, ResponseInvest},
	{[]string{"*debt*", "*loan*", "*credit*"}, ResponseDebt},
	{[]string{"*emergency*", "*fund*"}, ResponseEmergency},
}

// Respond returns the canned answer for a message.
func Respond(message string) string {
	lower := strings.ToLower(message)

	for _, r := range rules {
		for _, p := range r.patterns {
			if glob.Glob(p, lower) {
				return r.response
			}
		}
	}

	return ResponseNotSure
}

var suggestedQuestions = []string{
	"How much should I save each month?",
	"How do I create a budget?",
	"Should I pay off debt or invest?",
	"How do I start investing with little money?",
}

// SuggestedQuestions returns example questions to offer to new users.
func SuggestedQuestions() []string {
	return slices.Clone(suggestedQuestions)
}
