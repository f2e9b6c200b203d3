package student

import "math"

// Status is the discrete performance classification of a student relative to
// the expected-points curve. Values are the display labels used by the sheet.
type Status string

const (
	StatusFinalizada Status = "Finalizada"
	StatusEliteII    Status = "Elite II"
	StatusEliteI     Status = "Elite I"
	StatusAvanzada   Status = "Avanzada"
	StatusAlDia      Status = "Al Día"
	StatusAtrasada   Status = "Atrasada"
	StatusRiesgo     Status = "En Riesgo"
	StatusSinIniciar Status = "Sin Iniciar"
)

// OrderedStatuses lists all statuses from best to worst.
var OrderedStatuses = []Status{
	StatusFinalizada,
	StatusEliteII,
	StatusEliteI,
	StatusAvanzada,
	StatusAlDia,
	StatusAtrasada,
	StatusRiesgo,
	StatusSinIniciar,
}

// Rank orders statuses for comparison; higher is better.
func (s Status) Rank() int {
	for i, st := range OrderedStatuses {
		if st == s {
			return len(OrderedStatuses) - i
		}
	}
	return 0
}

// Classification thresholds on diff = totalPoints - expectedPoints.
// These are fixed constants of the program, calibrated by the staff; the
// strict vs non-strict comparisons at each cutoff are load-bearing.
const (
	eliteIIThreshold  = 150 // diff > 150
	eliteIThreshold   = 100 // diff > 100
	avanzadaThreshold = 0   // diff > 0
	alDiaThreshold    = -25 // diff >= -25
	riesgoThreshold   = -75 // diff < -75; -75 <= diff < -25 is Atrasada
)

// Classify maps an actual/expected point comparison to a Status.
// Completion always wins, and a student with zero points has not started
// regardless of what the curve expects (even when it expects 0).
func Classify(totalPoints int, expectedPoints float64, maxTotalPoints int) Status {
	switch {
	case totalPoints == maxTotalPoints:
		return StatusFinalizada
	case totalPoints == 0:
		return StatusSinIniciar
	}

	diff := float64(totalPoints) - expectedPoints
	switch {
	case diff > eliteIIThreshold:
		return StatusEliteII
	case diff > eliteIThreshold:
		return StatusEliteI
	case diff > avanzadaThreshold:
		return StatusAvanzada
	case diff >= alDiaThreshold:
		return StatusAlDia
	case diff < riesgoThreshold:
		return StatusRiesgo
	default:
		return StatusAtrasada
	}
}

// NextTarget describes the cheapest improvement available from a student's
// current standing: either the next status band up, or program completion
// when that is nearer (or when no band remains above the current one).
type NextTarget struct {
	PointsNeeded int    `json:"pointsNeeded"`
	Next         Status `json:"nextStatus"`
	ToCompletion bool   `json:"toCompletion"`
}

// bandFloor is the diff threshold that admits each reachable band.
var bandFloor = map[Status]float64{
	StatusAtrasada: riesgoThreshold,
	StatusAlDia:    alDiaThreshold,
	StatusAvanzada: avanzadaThreshold,
	StatusEliteI:   eliteIThreshold,
	StatusEliteII:  eliteIIThreshold,
}

// nextBand maps each status to the band immediately above it.
var nextBand = map[Status]Status{
	StatusRiesgo:   StatusAtrasada,
	StatusAtrasada: StatusAlDia,
	StatusAlDia:    StatusAvanzada,
	StatusAvanzada: StatusEliteI,
	StatusEliteI:   StatusEliteII,
}

// NextStatusTarget computes the minimum point increment that moves a student
// into the next-higher status band, inverting the band's threshold:
// target total = ceil(expected + floor + 1). The increment is compared against
// the points left to full completion and the cheaper path wins.
func NextStatusTarget(totalPoints int, expectedPoints float64, maxTotalPoints int) (NextTarget, bool) {
	current := Classify(totalPoints, expectedPoints, maxTotalPoints)
	if current == StatusFinalizada {
		return NextTarget{}, false
	}

	toCompletion := maxTotalPoints - totalPoints

	next, ok := nextBand[current]
	if current == StatusSinIniciar {
		// any point leaves the floor state; the resulting band depends on
		// the curve, so report the classification one point would yield
		next, ok = Classify(1, expectedPoints, maxTotalPoints), true
	}
	if !ok {
		// already at the top non-completion band
		return NextTarget{PointsNeeded: toCompletion, Next: StatusFinalizada, ToCompletion: true}, true
	}

	var needed int
	if current == StatusSinIniciar {
		needed = 1
	} else {
		target := int(math.Ceil(expectedPoints + bandFloor[next] + 1))
		needed = target - totalPoints
	}

	if needed <= 0 || needed >= toCompletion {
		return NextTarget{PointsNeeded: toCompletion, Next: StatusFinalizada, ToCompletion: true}, true
	}
	return NextTarget{PointsNeeded: needed, Next: next}, true
}
