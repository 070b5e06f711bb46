package scoring

import "strings"

// conditionWeight maps an ICD-10 code prefix to its clinical risk points.
// Kept as an ordered list so prefix matching is deterministic; the first
// matching prefix wins.
type conditionWeight struct {
	prefix string
	points float64
}

var conditionWeights = []conditionWeight{
	{"E11", 15}, // Type 2 diabetes
	{"I10", 12}, // Hypertension
	{"I25", 25}, // Coronary artery disease
	{"J44", 20}, // COPD
	{"N18", 30}, // Chronic kidney disease
	{"C", 40},   // Cancer (any C code)
	{"F20", 22}, // Schizophrenia
	{"F03", 35}, // Dementia
	{"I50", 28}, // Heart failure
	{"J45", 10}, // Asthma
}

// highCostFamilies are condition families that multiply the predicted
// cost: cancer, CKD, heart failure, dementia.
var highCostFamilies = []string{"C", "N18", "I50", "F03"}

func conditionPoints(code string) (float64, bool) {
	for _, cw := range conditionWeights {
		if strings.HasPrefix(code, cw.prefix) {
			return cw.points, true
		}
	}
	return 0, false
}
