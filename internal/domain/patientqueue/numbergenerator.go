package patientqueue

import (
	"context"
	"fmt"
	"strings"

	"antrean/internal/domain/doctor"
	"antrean/internal/shared/biztime"
	"antrean/internal/shared/errors"
)

// NumberGenerator derives the human-readable queue number for a doctor's
// next registration.
type NumberGenerator interface {
	Generate(ctx context.Context, doctorID uint) (string, error)
}

// SpecializationNumberGenerator builds numbers as a two-letter
// specialization prefix plus a zero-padded per-doctor daily sequence:
// specialization "Reproduksi" with 5 entries today yields "RE006". The
// count is always taken against today's clinic-day boundary at the moment
// of the call, never against a caller-supplied date. Padding is a minimum
// width of three digits, so the thousandth entry widens to four ("PE1000").
type SpecializationNumberGenerator struct {
	doctors doctor.Repository
	entries Repository
}

func NewSpecializationNumberGenerator(doctors doctor.Repository, entries Repository) *SpecializationNumberGenerator {
	return &SpecializationNumberGenerator{
		doctors: doctors,
		entries: entries,
	}
}

func (g *SpecializationNumberGenerator) Generate(ctx context.Context, doctorID uint) (string, error) {
	doc, err := g.doctors.FindByID(ctx, doctorID)
	if err != nil || doc == nil || !doc.HasSpecialization() {
		return "", errors.NewValidationError("Dokter tidak ditemukan atau tidak memiliki spesialisasi")
	}

	// A one-character specialization cannot yield a two-letter prefix;
	// refuse instead of emitting a malformed label.
	if len(doc.Specialization()) < 2 {
		return "", errors.NewValidationError(
			"Dokter tidak ditemukan atau tidak memiliki spesialisasi",
			fmt.Sprintf("specialization %q is too short for a queue prefix", doc.Specialization()),
		)
	}

	prefix := strings.ToUpper(doc.Specialization()[:2])

	dayStart, dayEnd := biztime.DayBoundsUTC(biztime.NowUTC())
	count, err := g.entries.CountForDoctor(ctx, doctorID, dayStart, dayEnd)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%03d", prefix, count+1), nil
}
