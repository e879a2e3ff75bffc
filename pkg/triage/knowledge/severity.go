package knowledge

// severityKeywords groups trigger words by tier. The classifier checks
// tiers in order urgent > moderate > low; the first hit wins.
var severityKeywords = map[string][]string{
	"urgent": {
		"chest pain", "seene me dard", "सीने में दर्द",
		"can't breathe", "cant breathe", "difficulty breathing", "breathing difficulty",
		"saans nahi", "saans lene me dikkat", "सांस लेने में तकलीफ",
		"unconscious", "behosh", "बेहोश",
		"severe bleeding", "khoon", "खून",
		"bahut tez dard", "unbearable pain",
	},
	"moderate": {
		"fever", "bukhar", "बुखार", "tez bukhar",
		"vomiting", "ulti", "उल्टी",
		"persistent pain", "lagatar dard",
		"dehydration", "pani ki kami",
	},
	"low": {
		"cold", "sardi", "सर्दी",
		"cough", "khansi", "खांसी",
		"mild headache", "halka dard",
		"runny nose", "sneezing", "chheenk",
	},
}

// redFlagPhrases force high severity and the emergency flag no matter
// what else is in the message.
var redFlagPhrases = []string{
	"chest pain",
	"seene me dard",
	"seene mein dard",
	"सीने में दर्द",
	"can't breathe",
	"cant breathe",
	"cannot breathe",
	"difficulty breathing",
	"breathing difficulty",
	"saans nahi aa rahi",
	"saans lene me dikkat",
	"सांस नहीं",
	"unconscious",
	"behosh",
	"severe bleeding",
	"suicide",
	"khudkushi",
}

// severe / mild adjectives used by the extractor's modifier pass.
var (
	SevereAdjectives = []string{"bahut", "tez", "tej", "बहुत", "तेज़", "severe", "intense", "unbearable", "zyada"}
	MildAdjectives   = []string{"thoda", "halka", "halki", "थोड़ा", "हल्का", "mild", "slight", "little"}
)
