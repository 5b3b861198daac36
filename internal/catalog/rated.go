package catalog

import (
	"github.com/HerbHall/bigoref/pkg/complexity"
	"github.com/HerbHall/bigoref/pkg/models"
)

// RatedQuestion is a question annotated with its complexity ratings.
type RatedQuestion struct {
	models.InterviewQuestion
	TimeRating      complexity.Rating `json:"time_rating"`
	SpaceRating     complexity.Rating `json:"space_rating"`
	DifficultyColor string            `json:"difficulty_color"`
}

// AlgorithmRatings rates each cost of an algorithm.
type AlgorithmRatings struct {
	Best    complexity.Rating `json:"best"`
	Average complexity.Rating `json:"average"`
	Worst   complexity.Rating `json:"worst"`
	Space   complexity.Rating `json:"space"`
	// Overall is the worst of the four.
	Overall complexity.Rating `json:"overall"`
}

// RatedAlgorithm is an algorithm annotated with its ratings.
type RatedAlgorithm struct {
	models.AlgorithmEntry
	Ratings AlgorithmRatings `json:"ratings"`
}

// OperationRatings rates the four basic operations.
type OperationRatings struct {
	Access complexity.Rating `json:"access"`
	Search complexity.Rating `json:"search"`
	Insert complexity.Rating `json:"insert"`
	Delete complexity.Rating `json:"delete"`
}

// StructureRatings rates every cost of a data structure.
type StructureRatings struct {
	Average OperationRatings  `json:"average"`
	Worst   OperationRatings  `json:"worst"`
	Space   complexity.Rating `json:"space"`
	// Overall is the worst of every listed cost, average and worst case.
	Overall complexity.Rating `json:"overall"`
}

// RatedStructure is a data structure annotated with its ratings.
type RatedStructure struct {
	models.DataStructureEntry
	Ratings StructureRatings `json:"ratings"`
}

// RateQuestions annotates every question.
func (e *Engine) RateQuestions(qs []models.InterviewQuestion) []RatedQuestion {
	out := make([]RatedQuestion, len(qs))
	for i, q := range qs {
		out[i] = RatedQuestion{
			InterviewQuestion: q,
			TimeRating:        e.Rate(q.Time),
			SpaceRating:       e.Rate(q.Space),
			DifficultyColor:   q.Difficulty.Color(),
		}
	}
	return out
}

// RateAlgorithms annotates every algorithm.
func (e *Engine) RateAlgorithms(as []models.AlgorithmEntry) []RatedAlgorithm {
	out := make([]RatedAlgorithm, len(as))
	for i, a := range as {
		out[i] = RatedAlgorithm{
			AlgorithmEntry: a,
			Ratings: AlgorithmRatings{
				Best:    e.Rate(a.Best),
				Average: e.Rate(a.Average),
				Worst:   e.Rate(a.Worst),
				Space:   e.Rate(a.Space),
				Overall: complexity.Worst(a.Best, a.Average, a.Worst, a.Space),
			},
		}
	}
	return out
}

// RateStructures annotates every data structure.
func (e *Engine) RateStructures(ds []models.DataStructureEntry) []RatedStructure {
	out := make([]RatedStructure, len(ds))
	for i, d := range ds {
		out[i] = RatedStructure{
			DataStructureEntry: d,
			Ratings: StructureRatings{
				Average: e.rateOps(d.Average),
				Worst:   e.rateOps(d.Worst),
				Space:   e.Rate(d.Space),
				Overall: complexity.Worst(structureNotations(d)...),
			},
		}
	}
	return out
}

func (e *Engine) rateOps(c models.OperationCosts) OperationRatings {
	return OperationRatings{
		Access: e.Rate(c.Access),
		Search: e.Rate(c.Search),
		Insert: e.Rate(c.Insert),
		Delete: e.Rate(c.Delete),
	}
}

func structureNotations(d models.DataStructureEntry) []string {
	out := append(d.Average.Notations(), d.Worst.Notations()...)
	return append(out, d.Space)
}
