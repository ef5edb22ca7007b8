package catalog

import "time"

// Default returns the built-in workplace-readiness assessment catalog.
// Content is authored here; the engine itself is catalog-agnostic.
func Default() *Catalog {
	return New([]Scene{
		{
			ID:    "welcome",
			Kind:  KindNarrative,
			Title: "Welcome",
			Prompt: "Welcome to your workplace readiness assessment. Over the next " +
				"few scenes you'll face situations drawn from a typical week at a " +
				"growing company. There are no trick questions — respond the way " +
				"you actually would.",
			Narration: "Welcome to your workplace readiness assessment. Take your " +
				"time, and respond the way you actually would.",
		},
		{
			ID:        "voice-intro",
			Kind:      KindVoice,
			Title:     "Introduce Yourself",
			Dimension: "communication",
			TimeLimit: 2 * time.Minute,
			Prompt:    "Record a short spoken introduction for your new team.",
			Voice: &VoicePayload{
				Scenario: "It's your first day. Your manager asks you to introduce " +
					"yourself at standup: who you are, what you'll be working on, " +
					"and one thing the team should know about how you work best.",
				Hints: []string{
					"Aim for 30-60 seconds",
					"Mention your role and one working preference",
				},
			},
		},
		{
			ID:        "email-followup",
			Kind:      KindWritten,
			Title:     "Client Follow-up",
			Dimension: "professionalism",
			TimeLimit: 5 * time.Minute,
			Prompt:    "Write the follow-up email.",
			Written: &WrittenPayload{
				Scenario: "A client emailed this morning saying the report your team " +
					"delivered yesterday has the wrong quarter's figures in section 3. " +
					"You checked: they're right. Write a reply that acknowledges the " +
					"mistake, explains what happens next, and keeps their confidence.",
				MinWords: 40,
				MaxWords: 180,
			},
		},
		{
			ID:        "monday-triage",
			Kind:      KindPriority,
			Title:     "Monday Triage",
			Dimension: "organization",
			TimeLimit: 3 * time.Minute,
			Prompt:    "Order these tasks for your Monday, most pressing first.",
			Priority: &PriorityPayload{
				Tasks: []Task{
					{ID: "outage-note", Title: "Write the customer notice for Friday's outage", DueInHours: 2, Urgency: 5, Importance: 5},
					{ID: "board-deck", Title: "Draft slides for Thursday's board review", DueInHours: 72, Urgency: 2, Importance: 5},
					{ID: "expense-report", Title: "Submit last month's expense report", DueInHours: 48, Urgency: 2, Importance: 1},
					{ID: "deck-numbers", Title: "Pull the revenue numbers the slides need", DueInHours: 48, Urgency: 3, Importance: 4, DependsOn: "board-deck"},
				},
			},
		},
		{
			ID:        "upset-customer",
			Kind:      KindRolePlay,
			Title:     "Upset Customer",
			Dimension: "empathy",
			Prompt:    "A long-time customer calls about a billing mistake. Choose your replies.",
			RolePlay: &RolePlayPayload{
				Persona: "Dana, a customer of four years, charged twice this month",
				Turns: []DialogueTurn{
					{
						Speaker: "Dana",
						Text: "I've been charged twice this month and nobody has " +
							"answered my emails for three days. Honestly, I'm about done.",
					},
					{
						Speaker: "You",
						Text:    "How do you open?",
						Options: []DialogueOption{
							{
								Label:   "I'm sorry — being double-charged and then ignored is not okay. Let me pull up your account right now.",
								Quality: "strong", Weight: 5,
								Reply: "Thank you. That's the first time someone's actually said that.",
							},
							{
								Label:   "Billing issues are handled by another team, but I can forward your message.",
								Quality: "weak", Weight: 1,
								Reply: "So I have to wait another three days? Unbelievable.",
							},
							{
								Label:   "Refunds usually process automatically, it should sort itself out.",
								Quality: "adequate", Weight: 2,
								Reply: "\"Should\" is not very reassuring after three days of silence.",
							},
						},
					},
					{
						Speaker: "Dana",
						Text:    "Okay. The duplicate charge is from the 14th. What happens now?",
					},
					{
						Speaker: "You",
						Text:    "How do you close?",
						Options: []DialogueOption{
							{
								Label:   "I've issued the refund — you'll see it in 3-5 days. I'm also replying to your email thread now so you have this in writing, with my name on it.",
								Quality: "strong", Weight: 5,
								Reply: "That's exactly what I needed. Thank you.",
							},
							{
								Label:   "The refund is in. Anything else?",
								Quality: "adequate", Weight: 3,
								Reply: "...No, I suppose that's it.",
							},
							{
								Label:   "It should be fixed. If not, email us again.",
								Quality: "weak", Weight: 1,
								Reply: "Email again. Right. That worked so well last time.",
							},
						},
					},
				},
			},
		},
		{
			ID:        "launch-slip",
			Kind:      KindBranching,
			Title:     "The Slipping Launch",
			Dimension: "problem-solving",
			Prompt:    "Work through the situation. Each decision shapes the next.",
			Branching: &BranchingPayload{
				Start:          "discover",
				ChoicePointCap: DefaultChoicePointCap,
				Nodes: []BranchNode{
					{
						ID: "discover",
						Situation: "Two weeks before launch, you discover the payment " +
							"integration fails for about 10% of test transactions. The " +
							"vendor hasn't responded in two days.",
						Choices: []BranchChoice{
							{
								Label: "Tell your lead today, with the failure data and a proposed workaround", Points: 85, Quality: "strong",
								Feedback: "Early escalation with data and options is exactly right.",
								Next:     "lead-reacts",
							},
							{
								Label: "Keep debugging quietly — you might fix it before anyone notices", Points: 25, Quality: "weak",
								Feedback: "Hiding a launch risk trades a hard conversation now for a worse one later.",
								Next:     "lead-reacts",
							},
							{
								Label: "Email the vendor again and wait for their answer", Points: 45, Quality: "adequate",
								Feedback: "Following up is fine, but two silent days already showed waiting isn't working.",
								Next:     "lead-reacts",
							},
						},
					},
					{
						ID: "lead-reacts",
						Situation: "Your lead asks: \"Can we still make the date?\" The honest " +
							"answer is: only if the vendor fixes their side this week.",
						Choices: []BranchChoice{
							{
								Label: "Say exactly that, and suggest a fallback: launch with the old processor for the affected flows", Points: 85, Quality: "strong",
								Feedback: "Honest status plus a concrete fallback keeps the decision where it belongs.",
							},
							{
								Label: "Say yes — the vendor will probably come through", Points: 15, Quality: "weak",
								Feedback: "Committing to a date you don't control sets the team up to miss it.",
							},
							{
								Label: "Say you need a few more days to be sure", Points: 40, Quality: "adequate",
								Feedback: "Buying time is sometimes right, but here the facts are already clear.",
							},
						},
					},
				},
			},
		},
		{
			ID:        "standup-recap",
			Kind:      KindListening,
			Title:     "Standup Recap",
			Dimension: "active-listening",
			TimeLimit: 3 * time.Minute,
			Prompt:    "Listen to the recording, then answer the questions.",
			Listening: &ListeningPayload{
				Script: "Quick update from this morning's standup. The mobile release " +
					"moves from Tuesday to Thursday because the app store review is " +
					"taking longer than expected. Priya owns the release notes and " +
					"needs everyone's changes listed by Wednesday noon. And the " +
					"support rotation swaps this week: Marcus covers Monday through " +
					"Wednesday, and Lena takes the rest of the week.",
				Questions: []ListeningQuestion{
					{
						Text:    "When does the mobile release now ship?",
						Options: []string{"Tuesday", "Thursday", "Wednesday", "Next Monday"},
						Answer:  1,
					},
					{
						Text:    "What does Priya need by Wednesday noon?",
						Options: []string{"Everyone's changes for the release notes", "App store screenshots", "The support schedule", "Test results"},
						Answer:  0,
					},
					{
						Text:    "Who covers support at the end of the week?",
						Options: []string{"Priya", "Marcus", "Lena", "You"},
						Answer:  2,
					},
				},
			},
		},
		{
			ID:        "vendor-gift",
			Kind:      KindJudgment,
			Title:     "The Vendor Gift",
			Dimension: "integrity",
			Prompt:    "Pick the response closest to what you would actually do.",
			Judgment: &JudgmentPayload{
				Situation: "A vendor you're evaluating for a major contract sends you " +
					"a personal gift: tickets to a sold-out game, worth several " +
					"hundred dollars. The decision is due next week.",
				Options: []JudgmentOption{
					{
						Label:   "Decline the gift, disclose it to your manager, and continue the evaluation on the merits",
						Ethical: 5, Practical: 4,
						Feedback: "Declining and disclosing protects both the decision and you.",
					},
					{
						Label:   "Accept it — it won't affect your judgment",
						Ethical: 1, Practical: 2,
						Feedback: "Even if your judgment holds, the appearance alone compromises the decision.",
					},
					{
						Label:   "Decline quietly and say nothing",
						Ethical: 3, Practical: 3,
						Feedback: "Declining is right; not disclosing leaves the attempt invisible to the process.",
					},
					{
						Label:   "Accept, but recuse yourself from the decision",
						Ethical: 2, Practical: 1,
						Feedback: "Recusal after accepting still rewards the tactic and loses your expertise.",
					},
				},
			},
		},
		{
			ID:        "printer-fire",
			Kind:      KindQuickfire,
			Title:     "Think Fast",
			Dimension: "initiative",
			TimeLimit: 45 * time.Second,
			Prompt:    "One or two sentences. Go with your first instinct.",
			Quickfire: &QuickfirePayload{
				Situation: "You're first into the office and the shared printer is " +
					"smoking. Nobody else arrives for twenty minutes. What do you do, " +
					"in order?",
			},
		},
		{
			ID:    "progress-check",
			Kind:  KindReview,
			Title: "Progress Check",
			Prompt: "Here's how your profile is shaping up so far. Scores keep " +
				"updating as you complete the remaining scenes.",
		},
		{
			ID:    "wrap-up",
			Kind:  KindCompletion,
			Title: "Assessment Complete",
			Prompt: "That's the full set. Your skill profile below is built from " +
				"every challenge you completed and is saved for your records.",
		},
	})
}

// DefaultChoicePointCap is the per-choice point ceiling used by the built-in
// catalog's branching scenes. Authors may override it per payload.
const DefaultChoicePointCap = 85
