package knowledge

var seedEntries = map[string]ReportEntry{
	"eightfold ai": {
		Short: `
### 1. Executive Summary
Eightfold AI is a leader in Talent Intelligence, using AI to match skills to jobs.

### 2. Financials
Valued at ~$2.1B (Series E). Backed by SoftBank.

### 3. Strategy
Expanding into Europe/Asia. Focus on "Responsible AI".

### 4. Risks
Competition from Workday/LinkedIn.
`,
		Long: `
### 1. Executive Summary
Eightfold AI is the category creator for Talent Intelligence. Unlike legacy ATS systems, it uses deep learning to predict candidate potential. They serve Global 2000 clients like DuPont and Starbucks.

<br>

### 2. Financial Overview
* **Valuation:** ~$2.1B (Unicorn status).
* **Funding:** Heavily capitalized by SoftBank Vision Fund 2 and General Catalyst.
* **Growth:** Currently in pre-IPO hyper-growth phase.

<br>

### 3. Strategic Priorities
* **Global Expansion:** Aggressive hiring in EMEA and APAC.
* **Product:** "Responsible AI" features to audit algorithms for bias (critical for NYC AI Law compliance).
* **Partnerships:** Deep integration with SAP SuccessFactors.

<br>

### 4. Key Risks & Challenges
* **Market Saturation:** Legacy players like Workday are building native AI features.
* **Regulatory:** New AI hiring laws in the EU and US could slow down enterprise sales cycles.
`,
	},
	"tesla": {
		Short: `
### 1. Executive Summary
Tesla is an EV and energy leader.

### 2. Financials
~$700B Market Cap. Margins tightening.

### 3. Strategy
Cybertruck ramp & Autonomy.

### 4. Risks
Price wars with BYD.
`,
		Long: `
### 1. Executive Summary
Tesla is transitioning from a pure EV carmaker to an AI/Robotics company.

<br>

### 2. Financial Overview
* **Market Cap:** ~$700B.
* **Revenue:** Auto margins are down due to price cuts, but Energy storage revenue is up 100% YoY.

<br>

### 3. Strategic Priorities
* **Robotaxi:** Shifting all resources to solve Full Self-Driving (FSD).
* **Optimus:** Humanoid robot development is a primary long-term goal.

<br>

### 4. Key Risks & Challenges
* **China:** BYD is undercutting Tesla prices significantly.
* **Leadership:** Investor concern over Elon Musk's focus on X/Twitter.
`,
	},
}
