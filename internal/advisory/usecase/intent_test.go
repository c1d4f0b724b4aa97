package usecase

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name    string
		message string
		want    Intent
	}{
		{"english pest", "what pest is eating my cotton?", IntentPest},
		{"hindi pest", "मेरी फसल में कीट लग गए हैं", IntentPest},
		{"disease by symptom word", "leaves have rust spots", IntentDisease},
		{"hindi disease", "धान में झुलसा रोग", IntentDisease},
		{"crop query", "tell me about wheat crop", IntentCrop},
		{"hindi crop", "गेहूं की जानकारी दो", IntentCrop},
		{"scheme", "how to apply for pm kisan", IntentScheme},
		{"hindi scheme", "बीमा योजना के बारे में बताओ", IntentScheme},
		{"weather", "will it rain tomorrow", IntentWeather},
		{"mandi", "what is the market rate today", IntentMandi},
		{"soil", "which fertilizer should I use", IntentSoil},
		{"greeting", "hello", IntentGreeting},
		{"unknown", "random unrelated text", IntentGeneral},
		{"case insensitive", "WHAT PEST IS THIS", IntentPest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classify(tc.message); got != tc.want {
				t.Errorf("classify(%q) = %q, want %q", tc.message, got, tc.want)
			}
		})
	}
}

func TestClassifyIdempotent(t *testing.T) {
	messages := []string{
		"what pest is eating my cotton?",
		"मेरी फसल में कीट",
		"random unrelated text",
	}
	for _, msg := range messages {
		first := classify(msg)
		second := classify(msg)
		if first != second {
			t.Errorf("classify(%q) not idempotent: %q then %q", msg, first, second)
		}
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	// Crop triggers are checked before mandi, so a message matching both
	// lands on crop intent.
	if got := classify("wheat rate today"); got != IntentCrop {
		t.Errorf("expected crop intent by priority order, got %q", got)
	}

	// Pest triggers are checked before crop: a pest complaint naming a
	// crop is still a pest question.
	if got := classify("bollworm in my cotton field"); got != IntentPest {
		t.Errorf("expected pest intent by priority order, got %q", got)
	}
}
