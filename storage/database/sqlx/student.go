// Package sqlxrepos is the PostgreSQL student.Store: a mirror of the cohort
// sheet kept in a single table. Writes follow the same batch-only semantics
// as the sheet endpoint: the full set replaces the previous one atomically.
package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/impulsa/seguimiento/core/student"
)

type studentStore struct {
	db *sqlx.DB
}

var _ student.Store = (*studentStore)(nil) // interface compliance check

func NewStudentStore(db *sqlx.DB) *studentStore {
	return &studentStore{db: db}
}

type studentRow struct {
	ID                     int            `db:"id"`
	Name                   string         `db:"name"`
	Phone                  null.String    `db:"phone"`
	Institucion            null.String    `db:"institucion"`
	Departamento           null.String    `db:"departamento"`
	CourseProgress         pq.Int64Array  `db:"course_progress"`
	IdentityVerified       bool           `db:"identity_verified"`
	TwoFactorVerified      bool           `db:"two_factor_verified"`
	CertificateStatus      pq.BoolArray   `db:"certificate_status"`
	FinalCertificateStatus bool           `db:"final_certificate_status"`
	DTVStatus              bool           `db:"dtv_status"`
	LastModifiedAt         null.Time      `db:"last_modified_at"`
	PreviousTotalPoints    null.Int       `db:"previous_total_points"`
	NewTotalPoints         null.Int       `db:"new_total_points"`
}

func toRow(s student.Student) studentRow {
	row := studentRow{
		ID:                     s.ID,
		Name:                   s.Name,
		Phone:                  null.NewString(s.Phone, s.Phone != ""),
		Institucion:            null.NewString(s.Institucion, s.Institucion != ""),
		Departamento:           null.NewString(s.Departamento, s.Departamento != ""),
		CourseProgress:         make(pq.Int64Array, len(s.CourseProgress)),
		IdentityVerified:       s.IdentityVerified,
		TwoFactorVerified:      s.TwoFactorVerified,
		CertificateStatus:      pq.BoolArray(append([]bool(nil), s.CertificateStatus...)),
		FinalCertificateStatus: s.FinalCertificateStatus,
		DTVStatus:              s.DTVStatus,
	}
	for i, p := range s.CourseProgress {
		row.CourseProgress[i] = int64(p)
	}
	if lm := s.LastModification; lm != nil {
		row.LastModifiedAt = null.TimeFrom(lm.Timestamp.UTC())
		row.PreviousTotalPoints = null.IntFrom(lm.PreviousTotalPoints)
		row.NewTotalPoints = null.IntFrom(lm.NewTotalPoints)
	}
	return row
}

func fromRow(row studentRow) student.Student {
	s := student.Student{
		ID:                     row.ID,
		Name:                   row.Name,
		Phone:                  row.Phone.String,
		Institucion:            row.Institucion.String,
		Departamento:           row.Departamento.String,
		CourseProgress:         make([]int, len(row.CourseProgress)),
		IdentityVerified:       row.IdentityVerified,
		TwoFactorVerified:      row.TwoFactorVerified,
		CertificateStatus:      append([]bool(nil), row.CertificateStatus...),
		FinalCertificateStatus: row.FinalCertificateStatus,
		DTVStatus:              row.DTVStatus,
	}
	for i, p := range row.CourseProgress {
		s.CourseProgress[i] = int(p)
	}
	if row.LastModifiedAt.Valid {
		s.LastModification = &student.LastModification{
			Timestamp:           row.LastModifiedAt.Time,
			PreviousTotalPoints: row.PreviousTotalPoints.Int,
			NewTotalPoints:      row.NewTotalPoints.Int,
		}
	}
	return s
}

func (st *studentStore) FetchAll(ctx context.Context) ([]student.Student, error) {
	var rows []studentRow
	err := st.db.SelectContext(ctx, &rows, `SELECT * FROM student ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "querying students")
	}

	students := make([]student.Student, 0, len(rows))
	for _, row := range rows {
		students = append(students, fromRow(row))
	}
	return students, nil
}

func (st *studentStore) SaveAll(ctx context.Context, students []student.Student) error {
	tx, err := st.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.ExecContext(ctx, `DELETE FROM student`); err != nil {
		return errors.Wrap(err, "clearing students")
	}

	const insert = `
		INSERT INTO student (
			id, name, phone, institucion, departamento, course_progress,
			identity_verified, two_factor_verified, certificate_status,
			final_certificate_status, dtv_status,
			last_modified_at, previous_total_points, new_total_points
		) VALUES (
			:id, :name, :phone, :institucion, :departamento, :course_progress,
			:identity_verified, :two_factor_verified, :certificate_status,
			:final_certificate_status, :dtv_status,
			:last_modified_at, :previous_total_points, :new_total_points
		)`
	for _, s := range students {
		if _, err = tx.NamedExecContext(ctx, insert, toRow(s)); err != nil {
			return errors.Wrapf(err, "inserting student %d", s.ID)
		}
	}

	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "committing batch")
	}
	return nil
}
