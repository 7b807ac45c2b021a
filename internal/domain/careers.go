package domain

// Career is one static catalog entry. The catalog is code-defined reference
// data and never persisted. Membership in groups like "stable" or
// "autonomous" is carried as explicit tags rather than title keywords.
type Career struct {
	ID          string
	Title       string
	SalaryMinGr int // monthly gross, PLN
	SalaryMaxGr int
	Holland     []string
	// Requirements maps competency keys to the level (1-10) the career expects.
	Requirements map[CompetencyKey]float64
	Environment  string
	EnvTags      []EnvironmentKey
	Stable       bool
	Autonomous   bool
	Travel       bool
	Description  string
}

// SalaryMid returns the midpoint of the salary range.
func (c Career) SalaryMid() float64 {
	return float64(c.SalaryMinGr+c.SalaryMaxGr) / 2
}

// HasEnvTag reports whether the career carries the given environment tag.
func (c Career) HasEnvTag(k EnvironmentKey) bool {
	for _, t := range c.EnvTags {
		if t == k {
			return true
		}
	}
	return false
}

// CareerCatalog returns the static career catalog in its canonical order.
// The matcher's sort is stable, so this order is the final tie-break.
func CareerCatalog() []Career {
	return careerCatalog
}

var careerCatalog = []Career{
	{
		ID: "software-engineer", Title: "Programista", SalaryMinGr: 8000, SalaryMaxGr: 22000,
		Holland: []string{"I", "R", "C"},
		Requirements: map[CompetencyKey]float64{
			CompTechnical: 8, CompAnalytical: 8, CompProblemSolving: 7, CompDigital: 9,
		},
		Environment: "Praca biurowa lub zdalna przy komputerze",
		EnvTags:     []EnvironmentKey{EnvOffice, EnvRemote},
		Autonomous:  true,
		Description: "Projektowanie i rozwój oprogramowania.",
	},
	{
		ID: "data-analyst", Title: "Analityk danych", SalaryMinGr: 7000, SalaryMaxGr: 16000,
		Holland: []string{"I", "C", "E"},
		Requirements: map[CompetencyKey]float64{
			CompAnalytical: 9, CompDigital: 7, CompOrganization: 6,
		},
		Environment: "Biuro, praca z danymi i raportami",
		EnvTags:     []EnvironmentKey{EnvOffice, EnvRemote},
		Stable:      true,
		Description: "Analiza danych biznesowych i budowa raportów.",
	},
	{
		ID: "construction-manager", Title: "Kierownik budowy", SalaryMinGr: 9000, SalaryMaxGr: 18000,
		Holland: []string{"R", "E", "C"},
		Requirements: map[CompetencyKey]float64{
			CompTechnical: 7, CompLeadership: 8, CompOrganization: 8, CompStressResistance: 7,
		},
		Environment: "Plac budowy, nadzór nad zespołem wykonawczym",
		EnvTags:     []EnvironmentKey{EnvConstructionSite, EnvOutdoor},
		Travel:      true,
		Description: "Koordynacja prac budowlanych i zespołów.",
	},
	{
		ID: "electrician", Title: "Elektryk", SalaryMinGr: 5500, SalaryMaxGr: 11000,
		Holland: []string{"R", "I", "C"},
		Requirements: map[CompetencyKey]float64{
			CompTechnical: 8, CompProblemSolving: 6, CompIndependence: 6,
		},
		Environment: "Warsztat i instalacje u klientów",
		EnvTags:     []EnvironmentKey{EnvWorkshop, EnvConstructionSite},
		Stable:      true, Travel: true,
		Description: "Montaż i serwis instalacji elektrycznych.",
	},
	{
		ID: "graphic-designer", Title: "Grafik komputerowy", SalaryMinGr: 5000, SalaryMaxGr: 12000,
		Holland: []string{"A", "I", "E"},
		Requirements: map[CompetencyKey]float64{
			CompCreativity: 9, CompDigital: 7, CompCommunication: 5,
		},
		Environment: "Studio kreatywne lub praca zdalna",
		EnvTags:     []EnvironmentKey{EnvOffice, EnvRemote},
		Autonomous:  true,
		Description: "Projektowanie identyfikacji wizualnej i materiałów cyfrowych.",
	},
	{
		ID: "nurse", Title: "Pielęgniarka / Pielęgniarz", SalaryMinGr: 5800, SalaryMaxGr: 9500,
		Holland: []string{"S", "I", "R"},
		Requirements: map[CompetencyKey]float64{
			CompCommunication: 7, CompTeamwork: 7, CompStressResistance: 8,
		},
		Environment: "Szpital lub przychodnia, praca zmianowa",
		EnvTags:     []EnvironmentKey{},
		Stable:      true,
		Description: "Opieka nad pacjentami i wsparcie zespołu medycznego.",
	},
	{
		ID: "teacher", Title: "Nauczyciel", SalaryMinGr: 4800, SalaryMaxGr: 8500,
		Holland: []string{"S", "A", "E"},
		Requirements: map[CompetencyKey]float64{
			CompCommunication: 8, CompOrganization: 6, CompAdaptability: 6,
		},
		Environment: "Szkoła, sala lekcyjna",
		EnvTags:     []EnvironmentKey{EnvOffice},
		Stable:      true,
		Description: "Nauczanie i praca wychowawcza z młodzieżą.",
	},
	{
		ID: "sales-manager", Title: "Menedżer sprzedaży", SalaryMinGr: 8000, SalaryMaxGr: 20000,
		Holland: []string{"E", "S", "C"},
		Requirements: map[CompetencyKey]float64{
			CompCommunication: 8, CompLeadership: 7, CompStressResistance: 7,
		},
		Environment: "Biuro i częste spotkania z klientami",
		EnvTags:     []EnvironmentKey{EnvOffice},
		Travel:      true,
		Description: "Budowa zespołu handlowego i realizacja celów sprzedażowych.",
	},
	{
		ID: "accountant", Title: "Księgowy", SalaryMinGr: 6000, SalaryMaxGr: 12000,
		Holland: []string{"C", "I", "E"},
		Requirements: map[CompetencyKey]float64{
			CompOrganization: 9, CompAnalytical: 7, CompDigital: 5,
		},
		Environment: "Biuro rachunkowe, praca dokumentacyjna",
		EnvTags:     []EnvironmentKey{EnvOffice},
		Stable:      true,
		Description: "Prowadzenie ksiąg i rozliczeń podatkowych.",
	},
	{
		ID: "mechanic", Title: "Mechanik samochodowy", SalaryMinGr: 5000, SalaryMaxGr: 10000,
		Holland: []string{"R", "C", "I"},
		Requirements: map[CompetencyKey]float64{
			CompTechnical: 8, CompProblemSolving: 7, CompIndependence: 5,
		},
		Environment: "Warsztat samochodowy",
		EnvTags:     []EnvironmentKey{EnvWorkshop},
		Stable:      true,
		Description: "Diagnostyka i naprawa pojazdów.",
	},
	{
		ID: "hr-specialist", Title: "Specjalista HR", SalaryMinGr: 5500, SalaryMaxGr: 11000,
		Holland: []string{"S", "E", "C"},
		Requirements: map[CompetencyKey]float64{
			CompCommunication: 8, CompOrganization: 7, CompTeamwork: 7,
		},
		Environment: "Biuro, praca z ludźmi",
		EnvTags:     []EnvironmentKey{EnvOffice},
		Stable:      true,
		Description: "Rekrutacja i rozwój pracowników.",
	},
	{
		ID: "logistics-specialist", Title: "Specjalista ds. logistyki", SalaryMinGr: 6000, SalaryMaxGr: 12000,
		Holland: []string{"C", "E", "R"},
		Requirements: map[CompetencyKey]float64{
			CompOrganization: 8, CompAnalytical: 6, CompStressResistance: 6,
		},
		Environment: "Biuro i magazyn, koordynacja dostaw",
		EnvTags:     []EnvironmentKey{EnvOffice, EnvOutdoor},
		Travel:      true,
		Description: "Planowanie łańcucha dostaw i transportu.",
	},
	{
		ID: "physiotherapist", Title: "Fizjoterapeuta", SalaryMinGr: 5000, SalaryMaxGr: 10000,
		Holland: []string{"S", "R", "I"},
		Requirements: map[CompetencyKey]float64{
			CompCommunication: 7, CompTechnical: 5, CompAdaptability: 6,
		},
		Environment: "Gabinet lub praca z pacjentem w terenie",
		EnvTags:     []EnvironmentKey{EnvWorkshop},
		Autonomous:  true,
		Description: "Rehabilitacja i terapia ruchowa pacjentów.",
	},
	{
		ID: "marketing-specialist", Title: "Specjalista ds. marketingu", SalaryMinGr: 6000, SalaryMaxGr: 14000,
		Holland: []string{"A", "E", "S"},
		Requirements: map[CompetencyKey]float64{
			CompCreativity: 8, CompCommunication: 7, CompDigital: 7,
		},
		Environment: "Biuro lub praca zdalna, projekty kampanii",
		EnvTags:     []EnvironmentKey{EnvOffice, EnvRemote},
		Autonomous:  true,
		Description: "Planowanie i realizacja kampanii marketingowych.",
	},
	{
		ID: "surveyor", Title: "Geodeta", SalaryMinGr: 6000, SalaryMaxGr: 11000,
		Holland: []string{"R", "I", "C"},
		Requirements: map[CompetencyKey]float64{
			CompTechnical: 7, CompAnalytical: 7, CompIndependence: 7,
		},
		Environment: "Pomiary w terenie i na placach budowy",
		EnvTags:     []EnvironmentKey{EnvOutdoor, EnvConstructionSite},
		Autonomous:  true, Travel: true,
		Description: "Pomiary geodezyjne i dokumentacja terenu.",
	},
	{
		ID: "project-manager", Title: "Kierownik projektu", SalaryMinGr: 9000, SalaryMaxGr: 20000,
		Holland: []string{"E", "C", "S"},
		Requirements: map[CompetencyKey]float64{
			CompLeadership: 8, CompOrganization: 8, CompCommunication: 8, CompStressResistance: 7,
		},
		Environment: "Biuro, zarządzanie zespołem projektowym",
		EnvTags:     []EnvironmentKey{EnvOffice, EnvRemote},
		Autonomous:  true,
		Description: "Prowadzenie projektów od planu po wdrożenie.",
	},
}
