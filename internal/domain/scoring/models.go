package scoring

// Quarter holds one calendar quarter of sales metrics.
type Quarter struct {
	TeamMargin        int `json:"marginTim"`
	TeamNA            int `json:"naTim"`
	PersonalMargin    int `json:"marginPribadi"`
	PersonalCustomers int `json:"nasabahPribadi"`
}

// Team is the active head count per hierarchy level at audit time.
type Team struct {
	BC  int `json:"jumlahBC"`
	SBC int `json:"jumlahSBC"`
	BSM int `json:"jumlahBsM"`
	SBM int `json:"jumlahSBM"`
	EM  int `json:"jumlahEM"`
	SEM int `json:"jumlahSEM"`
	VBM int `json:"jumlahVBM"`
}

// Total counts every level.
func (t Team) Total() int {
	return t.BC + t.SBC + t.BSM + t.SBM + t.EM + t.SEM + t.VBM
}

// Direct counts the four levels reported as the active team in reports
// and promotion checks.
func (t Team) Direct() int {
	return t.BC + t.SBC + t.BSM + t.SBM
}

type PillarAnswer struct {
	PillarID  int `json:"pillarId"`
	SelfScore int `json:"selfScore"`
}

// Input is one audit submission. BirthDate uses DD-MM-YYYY.
type Input struct {
	Name      string         `json:"nama"`
	JobTitle  string         `json:"jabatan"`
	Branch    string         `json:"cabang"`
	BirthDate string         `json:"tanggalLahir"`
	Quarters  [4]Quarter     `json:"quarters"`
	Team      Team           `json:"team"`
	Answers   []PillarAnswer `json:"pillarAnswers"`
}

// TeamMargins returns the four quarterly team margins in quarter order.
func (in Input) TeamMargins() [4]int {
	var out [4]int
	for i, q := range in.Quarters {
		out[i] = q.TeamMargin
	}
	return out
}

type PillarResult struct {
	PillarID     int    `json:"pillarId"`
	PillarName   string `json:"pillarName"`
	SelfScore    int    `json:"selfScore"`
	RealityScore int    `json:"realityScore"`
	Gap          int    `json:"gap"`
	Insight      string `json:"insight"`
}

// Classification is the aggregate view over the 18 pillar results.
type Classification struct {
	TotalSelfScore    int
	TotalRealityScore int
	TotalGap          int
	Zone              Zone
	Profile           Profile
}

type SWOT struct {
	Strength    []string `json:"strength"`
	Weakness    []string `json:"weakness"`
	Opportunity []string `json:"opportunity"`
	Threat      []string `json:"threat"`
}

type ActionItem struct {
	Period   string `json:"periode"`
	Target   string `json:"target"`
	Activity string `json:"aktivitas"`
	PIC      string `json:"pic"`
	Output   string `json:"output"`
}

// QuarterProgress percentages are stored unclamped; display layers clamp.
type QuarterProgress struct {
	Quarter          string `json:"kuartalBerjalan"`
	DaysLeft         int    `json:"sisaHari"`
	TargetMargin     int    `json:"targetMargin"`
	RealizedMargin   int    `json:"realisasiMargin"`
	MarginPercentage int    `json:"percentageMargin"`
	TargetNA         int    `json:"targetNA"`
	RealizedNA       int    `json:"realisasiNA"`
	NAPercentage     int    `json:"percentageNA"`
	Note             string `json:"catatan"`
}

type EarlyWarning struct {
	Factor    string `json:"faktor"`
	Indicator string `json:"indikator"`
	Risk      string `json:"risiko"`
	QuickFix  string `json:"saranCepat"`
}

type VisionAlignment struct {
	Status    VisionStatus `json:"status"`
	Narrative string       `json:"narasi"`
}

type Report struct {
	ExecutiveSummary string          `json:"executiveSummary"`
	Insight          string          `json:"insightLengkap"`
	SWOT             SWOT            `json:"swotAnalysis"`
	CoachingPoints   []string        `json:"coachingPoints"`
	ActionPlan       []ActionItem    `json:"actionPlan"`
	Progress         QuarterProgress `json:"progressKuartal"`
	EarlyWarnings    []EarlyWarning  `json:"ews"`
	Vision           VisionAlignment `json:"kesesuaianVisi"`
}

type Requirement struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Met   bool   `json:"met"`
}

type Recommendation struct {
	CurrentLevel string        `json:"currentLevel"`
	Decision     Decision      `json:"recommendation"`
	NextLevel    string        `json:"nextLevel"`
	Reason       string        `json:"reason"`
	Consequence  string        `json:"konsekuensi"`
	NextStep     string        `json:"nextStep"`
	Strategy     Strategy      `json:"strategyType"`
	Requirements []Requirement `json:"requirements"`
}

type Magic struct {
	Nickname          string     `json:"julukan"`
	Narrative         string     `json:"narasi"`
	Zodiac            string     `json:"zodiak"`
	Generation        Generation `json:"generasi"`
	Booster           string     `json:"zodiakBooster"`
	CoachingHighlight string     `json:"coachingHighlight"`
	CallToAction      string     `json:"callToAction"`
	Quote             string     `json:"quote"`
}

// Result is everything derived from an Input. It is never mutated after
// Compute returns.
type Result struct {
	Pillars           []PillarResult `json:"pillarAnswers"`
	TotalSelfScore    int            `json:"totalSelfScore"`
	TotalRealityScore int            `json:"totalRealityScore"`
	TotalGap          int            `json:"totalGap"`
	ZonaKinerja       string         `json:"zonaKinerja"`
	ZonaPerilaku      string         `json:"zonaPerilaku"`
	ZonaFinal         Zone           `json:"zonaFinal"`
	Profil            Profile        `json:"profil"`
	AuditReport       Report         `json:"auditReport"`
	Prodem            Recommendation `json:"prodemRekomendasi"`
	Magic             Magic          `json:"magicSection"`
}
