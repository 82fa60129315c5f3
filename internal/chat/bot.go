package chat

import (
	"math/rand"
	"strings"
)

// Bot is the keyword-matched fallback chatbot. It is always
// available and never fails, which is what makes the AI path
// safe to attempt first.
type Bot struct{}

func NewBot() *Bot {
	return &Bot{}
}

var greetings = []string{
	"Hello! Welcome to the smart beverage kiosk. What can I get you?",
	"Hi there! What would you like to drink today?",
	"Welcome! Coffee or tea?",
}

var greetingKeywords = []string{
	"hello", "hi", "hey", "good morning", "good afternoon", "good evening",
}

// beverageInfo maps a keyword in the customer's message to a
// canned fact about that drink.
var beverageInfo = map[string]string{
	"coffee":    "Coffee is rich in antioxidants; a cup or two a day is good company",
	"latte":     "A latte is smooth and milky, espresso softened with steamed milk",
	"mocha":     "Mocha is the perfect meeting of coffee and chocolate",
	"americano": "An americano is light and clean with a long finish",
	"tea":       "Tea is full of polyphenols with antioxidant benefits",
	"juice":     "Juice is packed with vitamins, a great energy boost",
	"soda":      "Soda is cool and refreshing, best enjoyed in moderation",
}

// Keep this ordered so repeated keyword hits are deterministic
// for the same message.
var beverageInfoOrder = []string{
	"americano", "latte", "mocha", "coffee", "tea", "juice", "soda",
}

var defaultReplies = []string{
	"We have coffee, tea, juice, and soda. Which would you like to try?",
	"Shall I walk you through our specialty drinks?",
	"Tell me what flavors you like and I can suggest something.",
}

// Greeting returns a random welcome line.
func (b *Bot) Greeting() string {
	return greetings[rand.Intn(len(greetings))]
}

// Reply answers a customer message: greetings get a greeting,
// drink names get their canned fact, anything else gets a
// gentle prompt. An empty message reads as a greeting.
func (b *Bot) Reply(message string) string {
	message = strings.ToLower(strings.TrimSpace(message))
	if message == "" {
		return b.Greeting()
	}

	for _, kw := range greetingKeywords {
		if strings.Contains(message, kw) {
			return b.Greeting()
		}
	}

	for _, kw := range beverageInfoOrder {
		if strings.Contains(message, kw) {
			return beverageInfo[kw]
		}
	}

	return defaultReplies[rand.Intn(len(defaultReplies))]
}
