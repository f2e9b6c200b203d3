package student

import "testing"

func TestClassify(t *testing.T) {
	const maxTotal = 200

	tests := []struct {
		name     string
		total    int
		expected float64
		want     Status
	}{
		{"zero points before start", 0, 0, StatusSinIniciar},
		{"zero points mid program", 0, 100, StatusSinIniciar},
		{"full score", maxTotal, 100, StatusFinalizada},
		{"full score at program end", maxTotal, 200, StatusFinalizada},
		{"diff exactly 150 stays Elite I", 250, 100, StatusEliteI},
		{"diff above 150", 251, 100, StatusEliteII},
		{"diff exactly 100 stays Avanzada", 200, 100, StatusAvanzada},
		{"diff above 100", 201, 100, StatusEliteI},
		{"diff 75", 175, 100, StatusAvanzada},
		{"diff exactly 0 is Al Día", 100, 100, StatusAlDia},
		{"diff -25 still Al Día", 75, 100, StatusAlDia},
		{"diff -26 is Atrasada", 74, 100, StatusAtrasada},
		{"diff -75 still Atrasada", 25, 100, StatusAtrasada},
		{"diff -76 is En Riesgo", 24, 100, StatusRiesgo},
		{"fractional expected", 80, 79.5, StatusAvanzada},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.total, tt.expected, maxTotal); got != tt.want {
				t.Errorf("Classify(%d, %v) = %s, want %s", tt.total, tt.expected, got, tt.want)
			}
		})
	}
}

func TestStatus_Rank(t *testing.T) {
	for i := 1; i < len(OrderedStatuses); i++ {
		better, worse := OrderedStatuses[i-1], OrderedStatuses[i]
		if better.Rank() <= worse.Rank() {
			t.Errorf("%s.Rank() = %d, not above %s.Rank() = %d", better, better.Rank(), worse, worse.Rank())
		}
	}
	if got := Status("lol").Rank(); got != 0 {
		t.Errorf("unknown status Rank() = %d, want 0", got)
	}
}

func TestNextStatusTarget(t *testing.T) {
	const maxTotal = 200

	tests := []struct {
		name     string
		total    int
		expected float64
		want     NextTarget
		wantOK   bool
	}{
		{
			name: "En Riesgo climbs to Atrasada", total: 20, expected: 100,
			want: NextTarget{PointsNeeded: 6, Next: StatusAtrasada}, wantOK: true,
		},
		{
			name: "Atrasada climbs to Al Día", total: 60, expected: 100,
			want: NextTarget{PointsNeeded: 16, Next: StatusAlDia}, wantOK: true,
		},
		{
			name: "Al Día climbs to Avanzada", total: 80, expected: 100,
			want: NextTarget{PointsNeeded: 21, Next: StatusAvanzada}, wantOK: true,
		},
		{
			name: "Elite II only has completion left", total: 180, expected: 10,
			want: NextTarget{PointsNeeded: 20, Next: StatusFinalizada, ToCompletion: true}, wantOK: true,
		},
		{
			name: "completion nearer than next band", total: 195, expected: 180,
			want: NextTarget{PointsNeeded: 5, Next: StatusFinalizada, ToCompletion: true}, wantOK: true,
		},
		{
			name: "Sin Iniciar needs a single point", total: 0, expected: 0,
			want: NextTarget{PointsNeeded: 1, Next: StatusAvanzada}, wantOK: true,
		},
		{
			name: "already finished", total: maxTotal, expected: 200,
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NextStatusTarget(tt.total, tt.expected, maxTotal)
			if ok != tt.wantOK {
				t.Fatalf("NextStatusTarget() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("NextStatusTarget() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
