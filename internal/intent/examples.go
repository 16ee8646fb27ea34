package intent

import "github.com/oolnhq/insights-service/internal/domain"

// CanonicalExamples are the example questions the corpus is generated from.
// cmd/embedcorpus embeds each sentence and writes the result to the corpus
// file the classifier loads at startup.
var CanonicalExamples = map[string][]string{
	domain.IntentDeposit: {
		"How much did I deposit?",
		"What was the total deposit this month?",
		"Did I put any money in?",
		"How much did I add to my account?",
		"Total incoming funds?",
		"How much money did I transfer into the account?",
		"What's the sum of all my deposits?",
		"Did I fund the account this month?",
		"How much cash did I put in?",
	},
	domain.IntentMostProfitable: {
		"What was my most profitable trade?",
		"Show me my biggest win.",
		"Which trade earned the most?",
		"What was my best trade?",
		"What was my top performing trade?",
		"Which option made me the most money?",
		"Where did I make the most profit?",
		"Which trade brought in the most gains?",
		"Most lucrative trade?",
	},
	domain.IntentExpiredLossPercent: {
		"How much did I lose from expired options?",
		"What percent of my losses were from options expiring?",
		"Did many of my trades expire worthless?",
		"What were my expired option losses?",
		"How often did I let options expire?",
		"Losses from letting options expire?",
		"Were any options held until expiry and lost value?",
		"How bad were my expired option losses?",
		"Did I lose anything to worthless expirations?",
	},
	domain.IntentWinRate: {
		"What's my win rate?",
		"How often do I win?",
		"How many of my trades were winners?",
		"What's my trade success rate?",
		"What fraction of trades were profitable?",
		"Did I win more than I lost?",
		"How many winning trades did I have?",
		"What's the percentage of trades I won?",
		"Is my win ratio high?",
	},
	domain.IntentProfit: {
		"What's my profit or loss?",
		"How much money did I make?",
		"Am I profitable overall?",
		"Did I come out ahead?",
		"Was this month profitable?",
		"What's my net gain or loss?",
		"How much money did I earn overall?",
		"How did I do financially?",
		"Did I make or lose money?",
	},
	domain.IntentWithdrawal: {
		"How much did I withdraw?",
		"Did I take any money out?",
		"Total withdrawals this month?",
		"How much money left my account?",
		"Did I remove any funds?",
		"Were there any withdrawals?",
		"How much did I pull out of the account?",
		"What's the total withdrawn amount?",
		"Money I cashed out?",
	},
	domain.IntentTradeCount: {
		"How many trades did I make?",
		"What's the total trade count?",
		"How active was I?",
		"Did I trade a lot?",
		"How busy was my trading?",
		"How many positions did I open?",
		"Number of trades this month?",
		"What's the volume of my trades?",
		"Count of trades executed?",
	},
	domain.IntentPositionSize: {
		"What's my average position size?",
		"How big were my trades?",
		"What size positions do I usually open?",
		"Typical trade size?",
		"Average trade amount?",
		"How much do I risk per trade?",
		"What's the usual dollar amount per trade?",
		"How large were my positions on average?",
		"What's the typical size of my trades?",
	},
}
