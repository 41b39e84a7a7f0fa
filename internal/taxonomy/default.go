package taxonomy

// Default is the fixed fraud taxonomy. Identifiers and phrase lists are a
// behavioral contract with downstream dashboards; do not edit casually.
var Default = []Definition{
	{ID: "phishing", Phrases: []string{"phishing", "spoofing", "email scam", "email fraud", "fake email", "smishing", "vishing"}},
	{ID: "extortion", Phrases: []string{"extortion", "blackmail", "ransom demand"}},
	{ID: "personal_data_breach", Phrases: []string{"data breach", "information leak", "personal data exposure"}},
	{ID: "non_payment_non_delivery", Phrases: []string{"non-payment", "non delivery", "failed delivery", "did not pay", "didn't pay"}},
	{ID: "investment", Phrases: []string{"investment fraud", "ponzi scheme", "pyramid scheme", "securities fraud"}},
	{ID: "tech_support", Phrases: []string{"tech support scam", "fake tech help", "technical support fraud"}},
	{ID: "business_email_compromise", Phrases: []string{"business email compromise", "bec scam", "ceo fraud"}},
	{ID: "identity_theft", Phrases: []string{"identity theft", "id theft", "stolen identity", "identity fraud"}},
	{ID: "employment", Phrases: []string{"employment scam", "job scam", "fake job posting"}},
	{ID: "confidence_romance", Phrases: []string{"romance scam", "dating scam", "catfishing"}},
	{ID: "government_impersonation", Phrases: []string{"government impersonation", "fake irs", "fake police", "fake fbi"}},
	{ID: "credit_card_check_fraud", Phrases: []string{"credit card fraud", "check fraud", "bank fraud"}},
	{ID: "harassment_stalking", Phrases: []string{"harassment", "stalking", "cyberstalking"}},
	{ID: "real_estate", Phrases: []string{"real estate fraud", "property scam", "mortgage fraud"}},
	{ID: "advanced_fee", Phrases: []string{"advanced fee scam", "upfront fee", "prepayment scam"}},
	{ID: "crimes_against_children", Phrases: []string{"child exploitation", "child abuse", "child pornography"}},
	{ID: "lottery_sweepstakes_inheritance", Phrases: []string{"lottery scam", "sweepstakes fraud", "inheritance scam"}},
	{ID: "ransomware", Phrases: []string{"ransomware", "malware ransom"}},
	{ID: "overpayment", Phrases: []string{"overpayment scam", "refund scam"}},
	{ID: "ipr_copyright_counterfeit", Phrases: []string{"copyright infringement", "counterfeit goods", "fake products"}},
	{ID: "threats_of_violence", Phrases: []string{"threats", "violence threats"}},
	{ID: "sim_swap", Phrases: []string{"sim swap", "sim hijacking"}},
	{ID: "botnet", Phrases: []string{"botnet", "ddos network"}},
	{ID: "malware", Phrases: []string{"malware", "virus infection", "trojan"}},
	{ID: "cryptocurrency", Phrases: []string{"crypto scam", "bitcoin fraud", "cryptocurrency scam", "crypto theft"}},
}
