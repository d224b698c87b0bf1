package catalog

// Compiled-in content for the baby development journeys. Mirrors the
// content team's authoring format: journeys split into weeks, each week
// a mix of reading topics and quizzes, plus the bot question bank used
// by the guided sessions.

const builtinVersion = "2024.2"

var builtinJourneys = []Journey{
	{
		ID:    "baby-month-1",
		Title: "Your Baby's First Month",
		Weeks: []Week{
			{
				ID:       "bm1-week-1",
				Title:    "Getting to Know Your Newborn",
				TopicIDs: []string{"bm1-w1-sleep", "bm1-w1-feeding", "bm1-w1-crying"},
				QuizIDs:  []string{"bm1-w1-quiz-basics", "bm1-w1-quiz-routine"},
			},
			{
				ID:       "bm1-week-2",
				Title:    "Early Reflexes",
				TopicIDs: []string{"bm1-w2-reflexes", "bm1-w2-grasping"},
				QuizIDs:  []string{"bm1-w2-quiz-reflexes"},
			},
			{
				ID:       "bm1-week-3",
				Title:    "Senses and Bonding",
				TopicIDs: []string{"bm1-w3-vision", "bm1-w3-hearing", "bm1-w3-skin-contact"},
				QuizIDs:  []string{"bm1-w3-quiz-senses"},
			},
			{
				ID:       "bm1-week-4",
				Title:    "First Month Review",
				TopicIDs: []string{"bm1-w4-growth", "bm1-w4-checkup"},
				QuizIDs:  []string{"bm1-w4-quiz-review"},
			},
		},
	},
	{
		ID:    "baby-month-2",
		Title: "Your Baby's Second Month",
		Weeks: []Week{
			{
				ID:       "bm2-week-1",
				Title:    "Social Smiles",
				TopicIDs: []string{"bm2-w1-smiling", "bm2-w1-cooing"},
				QuizIDs:  []string{"bm2-w1-quiz-social"},
			},
			{
				ID:       "bm2-week-2",
				Title:    "Head Control and Tummy Time",
				TopicIDs: []string{"bm2-w2-tummy-time", "bm2-w2-head-control", "bm2-w2-safe-play"},
				QuizIDs:  []string{"bm2-w2-quiz-motor", "bm2-w2-quiz-safety"},
			},
		},
	},
}

var builtinQuestions = []Question{
	{
		ID:   "q-sleep-hours",
		Text: "How many hours does your baby sleep in a typical day?",
		Options: []string{
			"Less than 10 hours",
			"10 to 14 hours",
			"14 to 18 hours",
			"More than 18 hours",
		},
	},
	{
		ID:   "q-feeding-frequency",
		Text: "How often does your baby feed?",
		Options: []string{
			"Every 1-2 hours",
			"Every 2-3 hours",
			"Every 3-4 hours",
			"Less often than every 4 hours",
		},
	},
	{
		ID:   "q-responds-to-sound",
		Text: "Does your baby startle or turn towards sudden sounds?",
		Options: []string{
			"Yes, consistently",
			"Sometimes",
			"Rarely",
			"I haven't noticed",
		},
	},
	{
		ID:   "q-eye-contact",
		Text: "Does your baby make eye contact during feeding or play?",
		Options: []string{
			"Yes, often",
			"Occasionally",
			"Not yet",
		},
	},
	{
		ID:   "q-social-smile",
		Text: "Has your baby smiled in response to your face or voice?",
		Options: []string{
			"Yes",
			"Not yet",
			"Not sure",
		},
	},
	{
		ID:   "q-head-lift",
		Text: "During tummy time, can your baby briefly lift their head?",
		Options: []string{
			"Yes, easily",
			"Yes, briefly",
			"Not yet",
			"We haven't tried tummy time",
		},
	},
	{
		ID:   "q-grasp-reflex",
		Text: "Does your baby grip your finger when you touch their palm?",
		Options: []string{
			"Yes, firmly",
			"Yes, lightly",
			"Not yet",
		},
	},
	{
		ID:   "q-soothing",
		Text: "What soothes your baby most effectively?",
		Options: []string{
			"Being held or rocked",
			"Feeding",
			"White noise or gentle sounds",
			"Nothing seems to work yet",
		},
	},
	{
		ID:   "q-follow-object",
		Text: "Does your baby follow a slowly moving object with their eyes?",
		Options: []string{
			"Yes, smoothly",
			"Yes, with some effort",
			"Not yet",
		},
	},
	{
		ID:   "q-vocalizing",
		Text: "Does your baby make cooing or gurgling sounds?",
		Options: []string{
			"Yes, often",
			"Occasionally",
			"Not yet",
		},
	},
}

var builtinBadges = []BadgeDefinition{
	{
		ID:          "first-week-done",
		Name:        "First Steps",
		Description: "Completed the first week of the first month journey",
		Trigger:     TriggerWeekCompleted,
		JourneyID:   "baby-month-1",
		WeekID:      "bm1-week-1",
	},
	{
		ID:          "month-one-finisher",
		Name:        "One Month Strong",
		Description: "Completed the final week of the first month journey",
		Trigger:     TriggerWeekCompleted,
		JourneyID:   "baby-month-1",
		WeekID:      "bm1-week-4",
	},
	{
		ID:          "curious-reader",
		Name:        "Curious Reader",
		Description: "Read five topics to completion",
		Trigger:     TriggerTopicsCompleted,
		Threshold:   5,
	},
	{
		ID:          "quiz-explorer",
		Name:        "Quiz Explorer",
		Description: "Completed three quizzes",
		Trigger:     TriggerQuizzesCompleted,
		Threshold:   3,
	},
	{
		ID:          "bot-graduate",
		Name:        "Journey Bot Graduate",
		Description: "Answered every question in a bot session",
		Trigger:     TriggerSessionCompleted,
	},
}
