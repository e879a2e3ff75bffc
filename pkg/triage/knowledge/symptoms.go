package knowledge

// symptomSurfaceMap folds the many ways a symptom is written into one
// canonical name. Multi-word phrases are checked before single words by
// the extractor, so "pet dard" wins over bare "pet".
var symptomSurfaceMap = map[string]string{
	// fever
	"fever":       "fever",
	"bukhar":      "fever",
	"bukhaar":     "fever",
	"बुखार":       "fever",
	"tap":         "fever",
	"temperature": "fever",

	// headache
	"headache": "headache",
	"sir dard": "headache",
	"sar dard": "headache",
	"sirdard":  "headache",
	"सिरदर्द":  "headache",

	// stomach pain
	"stomach pain":  "stomach pain",
	"pet dard":      "stomach pain",
	"paet dard":     "stomach pain",
	"pet mein dard": "stomach pain",
	"पेट दर्द":      "stomach pain",
	"belly pain":    "stomach pain",

	// chest pain
	"chest pain":    "chest pain",
	"seene me dard": "chest pain",
	"seene mein dard": "chest pain",
	"chati me dard": "chest pain",
	"सीने में दर्द": "chest pain",

	// breathing
	"breathing difficulty": "breathing difficulty",
	"saans ki takleef":     "breathing difficulty",
	"saans lene me dikkat": "breathing difficulty",
	"shortness of breath":  "breathing difficulty",
	"सांस लेने में तकलीफ":  "breathing difficulty",

	// cough / cold
	"cough":  "cough",
	"khansi": "cough",
	"khasi":  "cough",
	"खांसी":  "cough",
	"cold":   "cold",
	"sardi":  "cold",
	"zukaam": "cold",
	"jukam":  "cold",
	"जुकाम":  "cold",
	"सर्दी":  "cold",

	// sore throat
	"sore throat":  "sore throat",
	"gala kharab":  "sore throat",
	"gale me dard": "sore throat",
	"गले में खराश": "sore throat",

	// vomiting
	"vomiting":    "vomiting",
	"ulti":        "vomiting",
	"qaai":        "vomiting",
	"उल्टी":       "vomiting",
	"throwing up": "vomiting",

	// diarrhea
	"diarrhea":     "diarrhea",
	"dast":         "diarrhea",
	"loose motion": "diarrhea",
	"दस्त":         "diarrhea",

	// weakness / dizziness
	"weakness":  "weakness",
	"kamzori":   "weakness",
	"कमजोरी":    "weakness",
	"dizziness": "dizziness",
	"chakkar":   "dizziness",
	"चक्कर":     "dizziness",

	// body ache
	"body ache":   "body ache",
	"badan dard":  "body ache",
	"बदन दर्द":    "body ache",
	"kamar dard":  "back pain",
	"कमर दर्द":    "back pain",
	"back pain":   "back pain",

	// skin
	"rash":    "skin rash",
	"khujli":  "skin rash",
	"खुजली":   "skin rash",
	"daane":   "skin rash",
	"दाने":    "skin rash",
	"itching": "skin rash",

	// burning
	"jalan":   "burning sensation",
	"जलन":     "burning sensation",
	"burning": "burning sensation",
}

// treatmentTable keys on canonical symptom names.
var treatmentTable = map[string]Treatment{
	"fever": {
		Advice: map[string]string{
			"en": "For fever: Take rest, drink plenty of water, eat light food.",
			"hi": "बुखार के लिए: आराम करें, पानी ज्यादा पियें, हल्का भोजन लें।",
		},
		Medicines: []MedicineTemplate{
			{Name: "Paracetamol", Composition: "Paracetamol 500mg", Dosage: "500mg", Frequency: "3 times daily", Duration: "3 days", Timing: "after meals"},
			{Name: "Crocin Advance", Composition: "Paracetamol 500mg", Dosage: "1 tablet", Frequency: "every 6 hours", Duration: "2 days", Timing: "after meals"},
		},
		Tests: []TestTemplate{
			{Name: "Complete Blood Count (CBC)", Type: "blood", Urgency: "routine", Instructions: "Fasting not required"},
			{Name: "Malaria Antigen Test", Type: "blood", Urgency: "routine", Instructions: "If fever persists over 3 days"},
		},
		FollowUp: map[string]string{
			"en": "How many days have you had fever?",
			"hi": "कितने दिन से बुखार है?",
		},
	},
	"headache": {
		Advice: map[string]string{
			"en": "For headache: Rest in a quiet dark room, stay hydrated, avoid screens.",
			"hi": "सिरदर्द के लिए: शांत कमरे में आराम करें, पानी पियें, स्क्रीन से बचें।",
		},
		Medicines: []MedicineTemplate{
			{Name: "Paracetamol", Composition: "Paracetamol 500mg", Dosage: "500mg", Frequency: "twice daily", Duration: "2 days", Timing: "after meals"},
		},
		Tests: []TestTemplate{
			{Name: "Blood Pressure Check", Type: "physical", Urgency: "routine", Instructions: "Measure when headache is present"},
		},
		FollowUp: map[string]string{
			"en": "How severe is the pain on a scale of 1 to 10?",
			"hi": "दर्द 1 से 10 के बीच कितना तेज़ है?",
		},
	},
	"stomach pain": {
		Advice: map[string]string{
			"en": "For stomach pain: Avoid empty stomach, reduce oily food, drink more water.",
			"hi": "पेट दर्द के लिए: खाली पेट न रहें, तेल-मसाले से बचें, पानी ज्यादा पियें।",
		},
		Medicines: []MedicineTemplate{
			{Name: "ENO", Composition: "Fruit salt", Dosage: "1 sachet", Frequency: "as needed", Duration: "2 days", Timing: "after meals"},
			{Name: "Gelusil", Composition: "Antacid", Dosage: "2 tablets", Frequency: "after meals", Duration: "3 days", Timing: "after meals"},
		},
		Tests: []TestTemplate{
			{Name: "Stool Test", Type: "lab", Urgency: "routine", Instructions: "Morning sample"},
			{Name: "Abdominal Ultrasound", Type: "imaging", Urgency: "routine", Instructions: "If pain persists"},
		},
		FollowUp: map[string]string{
			"en": "Where is the pain more, upper or lower abdomen?",
			"hi": "दर्द कहाँ पर ज्यादा है, ऊपर या नीचे?",
		},
	},
	"chest pain": {
		Advice: map[string]string{
			"en": "Chest pain needs urgent evaluation. Do not exert yourself and seek medical help immediately.",
			"hi": "सीने में दर्द गंभीर हो सकता है। मेहनत न करें और तुरंत डॉक्टर से मिलें।",
		},
		Medicines: nil,
		Tests: []TestTemplate{
			{Name: "ECG", Type: "cardiac", Urgency: "urgent", Instructions: "As soon as possible"},
		},
		FollowUp: map[string]string{
			"en": "Is the pain spreading to your arm, jaw or back?",
			"hi": "क्या दर्द बांह, जबड़े या पीठ की तरफ जा रहा है?",
		},
	},
	"breathing difficulty": {
		Advice: map[string]string{
			"en": "Breathing difficulty needs urgent evaluation. Sit upright and seek medical help immediately.",
			"hi": "सांस की तकलीफ गंभीर है। सीधे बैठें और तुरंत चिकित्सा सहायता लें।",
		},
		Medicines: nil,
		Tests: []TestTemplate{
			{Name: "Chest X-Ray", Type: "imaging", Urgency: "urgent", Instructions: "As soon as possible"},
			{Name: "SpO2 Monitoring", Type: "physical", Urgency: "urgent", Instructions: "Check oxygen saturation"},
		},
		FollowUp: map[string]string{
			"en": "Did this start suddenly or gradually?",
			"hi": "क्या यह अचानक शुरू हुआ या धीरे-धीरे?",
		},
	},
	"cough": {
		Advice: map[string]string{
			"en": "For cough: Warm fluids, honey ginger tea, avoid cold drinks.",
			"hi": "खांसी के लिए: गर्म पानी पियें, शहद-अदरक लें, ठंडी चीजों से बचें।",
		},
		Medicines: []MedicineTemplate{
			{Name: "Benadryl Syrup", Composition: "Diphenhydramine", Dosage: "10ml", Frequency: "3 times daily", Duration: "5 days", Timing: "after meals"},
		},
		Tests: []TestTemplate{
			{Name: "Chest X-Ray", Type: "imaging", Urgency: "routine", Instructions: "If cough persists over 2 weeks"},
		},
		FollowUp: map[string]string{
			"en": "Is there phlegm or is it a dry cough?",
			"hi": "क्या बलगम आता है या सूखी खांसी है?",
		},
	},
	"cold": {
		Advice: map[string]string{
			"en": "For cold: Steam inhalation, warm fluids, rest.",
			"hi": "जुकाम के लिए: भाप लें, गर्म पानी पियें, आराम करें।",
		},
		Medicines: []MedicineTemplate{
			{Name: "Cetirizine", Composition: "Cetirizine 10mg", Dosage: "1 tablet", Frequency: "once at night", Duration: "3 days", Timing: "bedtime"},
		},
		FollowUp: map[string]string{
			"en": "When did it start?",
			"hi": "कब से शुरू हुआ है?",
		},
	},
	"vomiting": {
		Advice: map[string]string{
			"en": "For vomiting: Small frequent sips of water or ORS, avoid solid food for a few hours.",
			"hi": "उल्टी के लिए: थोड़ा-थोड़ा पानी या ORS पियें, कुछ घंटे ठोस भोजन से बचें।",
		},
		Medicines: []MedicineTemplate{
			{Name: "Domperidone", Composition: "Domperidone 10mg", Dosage: "1 tablet", Frequency: "before meals", Duration: "2 days", Timing: "before meals"},
			{Name: "ORS", Composition: "Oral rehydration salts", Dosage: "1 sachet in 1L water", Frequency: "sip through the day", Duration: "2 days", Timing: "any"},
		},
		Tests: []TestTemplate{
			{Name: "Electrolyte Panel", Type: "blood", Urgency: "routine", Instructions: "If vomiting persists"},
		},
		FollowUp: map[string]string{
			"en": "How many times have you vomited today?",
			"hi": "आज कितनी बार उल्टी हुई है?",
		},
	},
	"diarrhea": {
		Advice: map[string]string{
			"en": "For diarrhea: ORS after every loose stool, avoid dairy, eat light.",
			"hi": "दस्त के लिए: हर दस्त के बाद ORS पियें, दूध से बचें, हल्का खाना खाएं।",
		},
		Medicines: []MedicineTemplate{
			{Name: "ORS", Composition: "Oral rehydration salts", Dosage: "1 sachet in 1L water", Frequency: "after each loose stool", Duration: "3 days", Timing: "any"},
			{Name: "Loperamide", Composition: "Loperamide 2mg", Dosage: "1 tablet", Frequency: "after loose stool, max 4/day", Duration: "2 days", Timing: "any"},
		},
		Tests: []TestTemplate{
			{Name: "Stool Test", Type: "lab", Urgency: "routine", Instructions: "If lasting over 3 days"},
		},
		FollowUp: map[string]string{
			"en": "Do you have diarrhea or constipation as well?",
			"hi": "क्या दस्त या कब्ज़ की समस्या भी है?",
		},
	},
	"sore throat": {
		Advice: map[string]string{
			"en": "For sore throat: Warm salt water gargles, warm fluids.",
			"hi": "गले की खराश के लिए: नमक के गर्म पानी से गरारे करें।",
		},
		Medicines: []MedicineTemplate{
			{Name: "Strepsils", Composition: "Amylmetacresol lozenge", Dosage: "1 lozenge", Frequency: "every 4 hours", Duration: "3 days", Timing: "any"},
		},
		FollowUp: map[string]string{
			"en": "Is it painful to swallow?",
			"hi": "क्या निगलने में दर्द होता है?",
		},
	},
	"skin rash": {
		Advice: map[string]string{
			"en": "For skin rash: Keep the area clean and dry, avoid scratching.",
			"hi": "दाने/खुजली के लिए: जगह साफ और सूखी रखें, खुजलाएं नहीं।",
		},
		Medicines: []MedicineTemplate{
			{Name: "Cetirizine", Composition: "Cetirizine 10mg", Dosage: "1 tablet", Frequency: "once at night", Duration: "5 days", Timing: "bedtime"},
		},
		FollowUp: map[string]string{
			"en": "Where is the itching or rash?",
			"hi": "कहाँ पर खुजली या दाने हैं?",
		},
	},
}
