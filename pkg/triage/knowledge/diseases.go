package knowledge

// diseaseTable lists recognizable conditions with the surface variants
// patients actually type: Devanagari, romanized Hindi and English, plus
// colloquial descriptions ("machhar wala bukhar").
var diseaseTable = []Disease{
	{
		Name:       "malaria",
		Variants:   []string{"malaria", "मलेरिया", "maleria", "bukhar wali bimari", "machhar wala bukhar"},
		Medication: "Antimalarials (Chloroquine, Artemisinin)",
		Warning:    "Prevent mosquito bites, avoid stagnant water",
	},
	{
		Name:       "dengue",
		Variants:   []string{"dengue", "डेंगू", "dengu", "platelet kam hona", "haddi tod bukhar"},
		Medication: "Hydration, Paracetamol (avoid Aspirin)",
		Warning:    "Platelet monitoring, no NSAIDs",
	},
	{
		Name:       "typhoid",
		Variants:   []string{"typhoid", "टायफाइड", "taifoid", "pani wala bukhar"},
		Medication: "Antibiotics (Ciprofloxacin, Azithromycin)",
		Warning:    "Boil water, hygiene important",
	},
	{
		Name:       "tuberculosis",
		Variants:   []string{"tuberculosis", "टीबी", "tb", "khaansi wali bimari", "phephdo ka rog"},
		Medication: "DOTS therapy (Rifampin, Isoniazid)",
		Warning:    "Complete course, avoid alcohol",
	},
	{
		Name:       "cholera",
		Variants:   []string{"cholera", "हैजा", "haija", "ultii dast ki bimari"},
		Medication: "ORS, Antibiotics (Doxycycline)",
		Warning:    "Drink clean water, hygiene",
	},
	{
		Name:       "hypertension",
		Variants:   []string{"hypertension", "हाई बीपी", "high bp", "bp badhna", "blood pressure"},
		Medication: "Beta-blockers (Atenolol), ACE inhibitors",
		Warning:    "Low salt, regular checkup",
	},
	{
		Name:       "diabetes",
		Variants:   []string{"diabetes", "शुगर", "sugar ki bimari", "blood sugar"},
		Medication: "Metformin, Insulin",
		Warning:    "Avoid sweets, exercise",
	},
	{
		Name:       "asthma",
		Variants:   []string{"asthma", "दमा", "saans ki takleef", "inhaler wali bimari"},
		Medication: "Inhalers (Salbutamol)",
		Warning:    "Avoid dust, smoke",
	},
	{
		Name:       "migraine",
		Variants:   []string{"migraine", "माइग्रेन", "aadha sir dard", "dimaag phatna"},
		Medication: "Painkillers (Sumatriptan)",
		Warning:    "Avoid triggers",
	},
	{
		Name:       "acidity",
		Variants:   []string{"acidity", "एसिडिटी", "pet me jalan", "seene me jalan"},
		Medication: "Antacids (Pantoprazole)",
		Warning:    "Avoid spicy food",
	},
	{
		Name:       "fever",
		Variants:   []string{"fever", "बुखार", "bukhar", "tap", "temperature"},
		Medication: "Paracetamol 500mg every 6 hours",
		Warning:    "Stay hydrated, rest completely",
	},
	{
		Name:       "cough",
		Variants:   []string{"cough", "खांसी", "khaansi", "khansi", "khasi"},
		Medication: "Honey ginger tea, Cough syrup",
		Warning:    "Avoid cold drinks",
	},
	{
		Name:       "stomach infection",
		Variants:   []string{"stomach infection", "पेट का infection", "food poisoning", "pet kharab"},
		Medication: "Antispasmodic, ORS, light diet",
		Warning:    "Light diet, plenty of water",
	},
	{
		Name:       "diarrhea",
		Variants:   []string{"diarrhea", "दस्त", "dast", "loose motion", "patla"},
		Medication: "ORS solution, Loperamide",
		Warning:    "Stay hydrated, avoid dairy",
	},
	{
		Name:       "vomiting",
		Variants:   []string{"vomiting", "उल्टी", "ulti", "qaai", "throwing up"},
		Medication: "Domperidone, ORS",
		Warning:    "Small frequent sips of water",
	},
}
