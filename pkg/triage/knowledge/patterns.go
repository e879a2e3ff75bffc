package knowledge

// patternTable backs the rule tier of the response cascade. Keywords
// mix English, Devanagari and romanized forms so one table serves every
// input language; responses fall back to English when a language has no
// localized text.
var patternTable = []Pattern{
	{
		Symptom:  "fever",
		Keywords: []string{"fever", "bukhar", "बुखार", "तेज़ बुखार", "high temperature", "garmi"},
		Responses: map[string]string{
			"hi": "मैं समझ गया आपको बुखार है। कितने दिन से बुखार है?",
			"en": "I understand you have fever. How many days have you had fever?",
		},
		FollowUps: map[string]string{
			"hi": "क्या साथ में सिरदर्द या गले में खराश भी है?",
			"en": "Do you also have headache or sore throat?",
		},
		Urgency:  "medium",
		Category: "fever",
	},
	{
		Symptom:  "headache",
		Keywords: []string{"headache", "सिरदर्द", "sir dard", "sar dard", "head pain"},
		Responses: map[string]string{
			"hi": "सिरदर्द की समस्या है। कितना तेज़ दर्द है 1 से 10 के बीच?",
			"en": "You have headache. How severe is the pain on scale 1 to 10?",
		},
		FollowUps: map[string]string{
			"hi": "क्या चक्कर भी आ रहे हैं या उल्टी का मन है?",
			"en": "Are you feeling dizzy or nauseous?",
		},
		Urgency:  "medium",
		Category: "headache",
	},
	{
		Symptom:  "stomach pain",
		Keywords: []string{"stomach pain", "pet dard", "पेट दर्द", "pet mein dard", "belly pain", "गैस"},
		Responses: map[string]string{
			"hi": "पेट दर्द हो रहा है। दर्द कहाँ पर ज्यादा है - ऊपर या नीचे?",
			"en": "You have stomach pain. Where is the pain more - upper or lower abdomen?",
		},
		FollowUps: map[string]string{
			"hi": "क्या दस्त या कब्ज़ की समस्या भी है?",
			"en": "Do you have diarrhea or constipation?",
		},
		Urgency:  "medium",
		Category: "stomach",
	},
	{
		Symptom:  "vomiting",
		Keywords: []string{"vomiting", "उल्टी", "ulti", "vomit", "throwing up", "जी मचलाना"},
		Responses: map[string]string{
			"hi": "उल्टी हो रही है। कितनी बार उल्टी हुई है आज?",
			"en": "You are vomiting. How many times have you vomited today?",
		},
		FollowUps: map[string]string{
			"hi": "क्या पानी पीने से भी उल्टी होती है?",
			"en": "Do you vomit even after drinking water?",
		},
		Urgency:  "high",
		Category: "vomiting",
	},
	{
		Symptom:  "cold",
		Keywords: []string{"cold", "cough", "सर्दी", "खांसी", "जुकाम", "khansi", "sardi", "runny nose"},
		Responses: map[string]string{
			"hi": "सर्दी-खांसी है। कब से शुरू हुआ है?",
			"en": "You have cold and cough. When did it start?",
		},
		FollowUps: map[string]string{
			"hi": "क्या बलगम आता है या सूखी खांसी है?",
			"en": "Is there phlegm or is it dry cough?",
		},
		Urgency:  "low",
		Category: "cold",
	},
	{
		Symptom:  "skin rash",
		Keywords: []string{"skin", "rash", "खुजली", "itching", "khujli", "दाने", "allergy"},
		Responses: map[string]string{
			"hi": "त्वचा की समस्या है। कहाँ पर खुजली या दाने हैं?",
			"en": "You have skin problem. Where is the itching or rash?",
		},
		FollowUps: map[string]string{
			"hi": "क्या पहले भी ऐसी एलर्जी हुई है?",
			"en": "Have you had such allergy before?",
		},
		Urgency:  "low",
		Category: "skin",
	},
	{
		Symptom:  "chest pain",
		Keywords: []string{"chest pain", "seene me dard", "सीने में दर्द", "chest tightness"},
		Responses: map[string]string{
			"hi": "सीने में दर्द गंभीर हो सकता है। कृपया तुरंत नजदीकी अस्पताल जाएं।",
			"en": "Chest pain can be serious. Please go to the nearest hospital immediately.",
		},
		FollowUps: map[string]string{
			"hi": "क्या दर्द बांह या जबड़े की तरफ जा रहा है?",
			"en": "Is the pain spreading to your arm or jaw?",
		},
		Urgency:  "high",
		Category: "emergency",
	},
	{
		Symptom:  "breathing difficulty",
		Keywords: []string{"can't breathe", "cant breathe", "breathing", "saans", "सांस", "breathless"},
		Responses: map[string]string{
			"hi": "सांस की तकलीफ गंभीर है। सीधे बैठें और तुरंत चिकित्सा सहायता लें।",
			"en": "Breathing difficulty is serious. Sit upright and seek medical help immediately.",
		},
		FollowUps: map[string]string{
			"hi": "क्या यह अचानक शुरू हुआ?",
			"en": "Did this start suddenly?",
		},
		Urgency:  "high",
		Category: "emergency",
	},
}

// GoodbyeWords short-circuit the cascade into a farewell.
var GoodbyeWords = []string{
	"bye", "goodbye", "thanks", "thank you", "dhanyawad", "धन्यवाद",
	"shukriya", "शुक्रिया", "bas", "बस", "alvida", "अलविदा", "ok bye",
}

var farewellByLanguage = map[string]string{
	"en": "Take care! Follow the advice given and consult a doctor if symptoms worsen. Get well soon!",
	"hi": "अपना ख्याल रखें! बताई गई सलाह का पालन करें और लक्षण बढ़ने पर डॉक्टर से मिलें। जल्दी स्वस्थ हों!",
}

var emergencyByLanguage = map[string]string{
	"en": "This may be a medical emergency. Please call emergency services or go to the nearest hospital immediately.",
	"hi": "यह आपातकालीन स्थिति हो सकती है। कृपया तुरंत एम्बुलेंस बुलाएं या नजदीकी अस्पताल जाएं।",
}

var genericByLanguage = map[string]string{
	"en": "I understand you are not feeling well. Please tell me more about your symptoms - what is troubling you, since when, and how severe is it?",
	"hi": "मैं समझता हूं आपकी तबीयत ठीक नहीं है। कृपया अपने लक्षणों के बारे में और बताएं - क्या परेशानी है, कब से है, और कितनी तेज़ है?",
}
