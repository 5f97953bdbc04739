package evaluation

// RankBander derives an academic rank and hourly rate from a total
// score. The real band boundaries are institution policy; deployments
// inject their own bander and the engine only assumes the mapping is
// monotonic in the total.
type RankBander func(total float64) (rank string, ratePerHour float64)

type RankBand struct {
	MinTotal    float64
	Rank        string
	RatePerHour float64
}

// DefaultRankBands is a placeholder banding pending confirmation of the
// institutional table. Bands must be sorted by MinTotal ascending.
var DefaultRankBands = []RankBand{
	{MinTotal: 0, Rank: "Instructor I", RatePerHour: 250.00},
	{MinTotal: 175, Rank: "Instructor II", RatePerHour: 312.50},
	{MinTotal: 190, Rank: "Instructor III", RatePerHour: 343.75},
	{MinTotal: 205, Rank: "Assistant Professor I", RatePerHour: 375.00},
	{MinTotal: 220, Rank: "Associate Professor I", RatePerHour: 437.50},
	{MinTotal: 235, Rank: "Professor I", RatePerHour: 500.00},
}

func BandsToBander(bands []RankBand) RankBander {
	return func(total float64) (string, float64) {
		rank := ""
		rate := 0.0
		for _, band := range bands {
			if total >= band.MinTotal {
				rank = band.Rank
				rate = band.RatePerHour
			}
		}
		return rank, rate
	}
}

// Rubric is the immutable scoring configuration. It is built once at
// startup and injected into the service; nothing mutates it afterwards.
type Rubric struct {
	EducationMax        float64
	ExperienceMax       float64
	ProfessionalMax     float64
	TechnologicalMax    float64
	DegreeUnitCap       float64
	AdditionalCredCap   float64
	OfficeSkillsCap     float64
	AppSkillsCap        float64
	TechTrainingCap     float64
	MastersUnitWeight   float64
	BachelorsUnitWeight float64
	StateYearWeight     float64
	OtherYearWeight     float64
	IntlTrainingWeight  float64
	NatTrainingWeight   float64
	LocalTrainingWeight float64
	CreativeWorkWeight  float64
	AdminWeights        map[string]float64
	IndustryWeights     map[string]float64
	TeachingWeights     map[string]float64
	Credits             CreditTable
	PassingThreshold    float64
	RankBander          RankBander
}

func DefaultRubric() Rubric {
	return Rubric{
		EducationMax:        85,
		ExperienceMax:       25,
		ProfessionalMax:     90,
		TechnologicalMax:    50,
		DegreeUnitCap:       85,
		AdditionalCredCap:   10,
		OfficeSkillsCap:     15,
		AppSkillsCap:        10,
		TechTrainingCap:     10,
		MastersUnitWeight:   4,
		BachelorsUnitWeight: 3,
		StateYearWeight:     1,
		OtherYearWeight:     0.75,
		IntlTrainingWeight:  5,
		NatTrainingWeight:   3,
		LocalTrainingWeight: 2,
		CreativeWorkWeight:  0.25,
		AdminWeights: map[string]float64{
			"president":       3,
			"vice_president":  2.5,
			"dean":            2,
			"department_head": 1,
		},
		IndustryWeights: map[string]float64{
			"engineer":       1.5,
			"technician":     1,
			"skilled_worker": 0.5,
		},
		TeachingWeights: map[string]float64{
			"cooperating_teacher": 1.5,
			"basic_education":     1,
		},
		Credits:          DefaultCreditTable(),
		PassingThreshold: 175,
		RankBander:       BandsToBander(DefaultRankBands),
	}
}

func (r Rubric) TotalMax() float64 {
	return r.EducationMax + r.ExperienceMax + r.ProfessionalMax + r.TechnologicalMax
}
