package student

import (
	"time"

	"github.com/impulsa/seguimiento/core"
)

// Rank badges for the leaderboard; only awarded to students with points.
const (
	BadgeTop3  = "Top 3"
	BadgeTop5  = "Top 5"
	BadgeTop10 = "Top 10"
)

type (
	// LastModification records the before/after totals of the most recent
	// point-affecting edit.
	LastModification struct {
		Timestamp           time.Time `json:"timestamp"`
		PreviousTotalPoints int       `json:"previousTotalPoints"`
		NewTotalPoints      int       `json:"newTotalPoints"`
	}

	// Student mirrors one row of the cohort sheet. TotalPoints,
	// ExpectedPoints, Status and RankBadge are derived and refreshed on load
	// and on every point-affecting mutation; they are never trusted stale.
	Student struct {
		ID           int    `json:"id"`
		Name         string `json:"name"`
		Phone        string `json:"phone,omitempty"`
		Institucion  string `json:"institucion,omitempty"`
		Departamento string `json:"departamento,omitempty"`

		CourseProgress []int   `json:"courseProgress"`
		TotalPoints    int     `json:"totalPoints"`
		ExpectedPoints float64 `json:"expectedPoints"`
		Status         Status  `json:"status"`
		RankBadge      string  `json:"rankBadge,omitempty"`

		IdentityVerified       bool   `json:"identityVerified"`
		TwoFactorVerified      bool   `json:"twoFactorVerified"`
		CertificateStatus      []bool `json:"certificateStatus"`
		FinalCertificateStatus bool   `json:"finalCertificateStatus"`
		DTVStatus              bool   `json:"dtvStatus"`

		LastModification *LastModification `json:"lastModification,omitempty"`
	}
)

// SumProgress is the student's cumulative point total across courses.
func (s *Student) SumProgress() int {
	var sum int
	for _, p := range s.CourseProgress {
		sum += p
	}
	return sum
}

// Recompute refreshes the derived fields from the course progress and the
// expected-points curve.
func (s *Student) Recompute(expectedPoints float64, maxTotalPoints int) {
	s.TotalPoints = s.SumProgress()
	s.ExpectedPoints = expectedPoints
	s.Status = Classify(s.TotalPoints, expectedPoints, maxTotalPoints)
}

// SetProgress applies an instructor edit to one course, silently clamping to
// [0, maxPerCourse], and records the before/after totals. now is the edit
// timestamp; derived fields still need a Recompute by the caller.
func (s *Student) SetProgress(course, points, maxPerCourse int, now time.Time) {
	if course < 0 || course >= len(s.CourseProgress) {
		return
	}
	if points < 0 {
		points = 0
	} else if points > maxPerCourse {
		points = maxPerCourse
	}

	prev := s.SumProgress()
	s.CourseProgress[course] = points
	s.LastModification = &LastModification{
		Timestamp:           now,
		PreviousTotalPoints: prev,
		NewTotalPoints:      s.SumProgress(),
	}
}

// Clone returns a deep copy, so snapshots never share slices with the roster.
func (s Student) Clone() Student {
	out := s
	out.CourseProgress = append([]int(nil), s.CourseProgress...)
	out.CertificateStatus = append([]bool(nil), s.CertificateStatus...)
	if s.LastModification != nil {
		lm := *s.LastModification
		out.LastModification = &lm
	}
	return out
}

// EqualBase reports whether two records carry the same base (non-derived)
// data. Derived fields are excluded on purpose: expected points move with the
// calendar day, and comparing them would flag every record as changed.
func (s Student) EqualBase(o Student) bool {
	if s.ID != o.ID ||
		s.Name != o.Name ||
		s.Phone != o.Phone ||
		s.Institucion != o.Institucion ||
		s.Departamento != o.Departamento ||
		s.IdentityVerified != o.IdentityVerified ||
		s.TwoFactorVerified != o.TwoFactorVerified ||
		s.FinalCertificateStatus != o.FinalCertificateStatus ||
		s.DTVStatus != o.DTVStatus {
		return false
	}
	if len(s.CourseProgress) != len(o.CourseProgress) {
		return false
	}
	for i := range s.CourseProgress {
		if s.CourseProgress[i] != o.CourseProgress[i] {
			return false
		}
	}
	if len(s.CertificateStatus) != len(o.CertificateStatus) {
		return false
	}
	for i := range s.CertificateStatus {
		if s.CertificateStatus[i] != o.CertificateStatus[i] {
			return false
		}
	}
	switch {
	case s.LastModification == nil && o.LastModification == nil:
	case s.LastModification == nil || o.LastModification == nil:
		return false
	default:
		if !s.LastModification.Timestamp.Equal(o.LastModification.Timestamp) ||
			s.LastModification.PreviousTotalPoints != o.LastModification.PreviousTotalPoints ||
			s.LastModification.NewTotalPoints != o.LastModification.NewTotalPoints {
			return false
		}
	}
	return true
}

// UpdateStudent defines what detail fields an operator may edit directly.
// Point edits go through SetProgress instead.
type UpdateStudent struct {
	Name         string `json:"name"`
	Phone        string `json:"phone" validate:"omitempty,phone"`
	Institucion  string `json:"institucion"`
	Departamento string `json:"departamento"`

	IdentityVerified       *bool  `json:"identityVerified"`
	TwoFactorVerified      *bool  `json:"twoFactorVerified"`
	CertificateStatus      []bool `json:"certificateStatus"`
	FinalCertificateStatus *bool  `json:"finalCertificateStatus"`
	DTVStatus              *bool  `json:"dtvStatus"`
}

// Validate cleans and validates the input against the registered validators.
func (uu *UpdateStudent) Validate(validate Validator) error {
	uu.Name = core.CleanString(uu.Name)
	uu.Phone = core.CleanString(uu.Phone)
	uu.Institucion = core.CleanString(uu.Institucion)
	uu.Departamento = core.CleanString(uu.Departamento)
	return validate.Struct(uu)
}

// Validator abstracts the validator instance passed down from the app wiring.
type Validator interface {
	Struct(s interface{}) error
}

// apply copies the provided fields onto the record.
func (uu UpdateStudent) apply(s *Student) {
	if uu.Name != "" {
		s.Name = uu.Name
	}
	if uu.Phone != "" {
		s.Phone = uu.Phone
	}
	if uu.Institucion != "" {
		s.Institucion = uu.Institucion
	}
	if uu.Departamento != "" {
		s.Departamento = uu.Departamento
	}
	if uu.IdentityVerified != nil {
		s.IdentityVerified = *uu.IdentityVerified
	}
	if uu.TwoFactorVerified != nil {
		s.TwoFactorVerified = *uu.TwoFactorVerified
	}
	if uu.CertificateStatus != nil {
		s.CertificateStatus = append([]bool(nil), uu.CertificateStatus...)
	}
	if uu.FinalCertificateStatus != nil {
		s.FinalCertificateStatus = *uu.FinalCertificateStatus
	}
	if uu.DTVStatus != nil {
		s.DTVStatus = *uu.DTVStatus
	}
}
