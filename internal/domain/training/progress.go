package training

// Progress es la escala ordinal de progreso.
// @Enum poor, fair, good, excellent
type Progress string

const (
	ProgressPoor      Progress = "poor"
	ProgressFair      Progress = "fair"
	ProgressGood      Progress = "good"
	ProgressExcellent Progress = "excellent"
)

// Tabla bidireccional explícita nivel <-> puntaje 1..4. No dependemos del
// orden de declaración de las constantes.
var progressScore = map[Progress]int{
	ProgressPoor:      1,
	ProgressFair:      2,
	ProgressGood:      3,
	ProgressExcellent: 4,
}

// neutralScore es el punto medio usado como promedio de un conjunto vacío
// y como puntaje de un nivel desconocido.
const neutralScore = 2

func scoreOf(p Progress) int {
	if s, ok := progressScore[p]; ok {
		return s
	}
	return neutralScore
}

// bucketProgress re-proyecta un promedio continuo sobre la escala ordinal
// con umbrales fijos. Los umbrales son inclusivos: 3.5 cae en "good".
func bucketProgress(avg float64) Progress {
	switch {
	case avg <= 1.5:
		return ProgressPoor
	case avg <= 2.5:
		return ProgressFair
	case avg <= 3.5:
		return ProgressGood
	default:
		return ProgressExcellent
	}
}
