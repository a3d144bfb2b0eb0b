package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/priroda-razuma/internal/config"
	"github.com/tartampluch/priroda-razuma/internal/records"
)

// PatientSource supplies the patients a feed is built from.
// *backend.Client satisfies it.
type PatientSource interface {
	ListPatients(ctx context.Context) ([]records.Patient, error)
}

// FileSource reads patients from a local vCard file.
type FileSource struct {
	Path string
}

// ListPatients decodes every card of the file.
func (f FileSource) ListPatients(ctx context.Context) ([]records.Patient, error) {
	if f.Path == "" {
		return nil, errors.New(config.ErrLocalPathEmpty)
	}
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, err
	}
	// Best effort close on a read-only file.
	defer func() { _ = file.Close() }()
	return DecodeVCards(ctx, file)
}

// DecodeVCards reads patients from a vCard stream. The name comes from FN,
// falling back to N; the id from X-PATIENT-ID; BDAY is kept as written and
// validated later. Malformed cards are logged and skipped.
func DecodeVCards(ctx context.Context, r io.Reader) ([]records.Patient, error) {
	dec := vcard.NewDecoder(r)
	var patients []records.Patient
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyError, err)
			continue
		}

		patients = append(patients, records.Patient{
			ID:          cardID(card),
			FIO:         cardName(card),
			DateOfBirth: strings.TrimSpace(card.Value(vcard.FieldBirthday)),
		})
	}
	return patients, nil
}

func cardName(card vcard.Card) string {
	if fn := strings.TrimSpace(card.Value(vcard.FieldFormattedName)); fn != "" {
		return fn
	}
	if n := card.Name(); n != nil {
		if fio := records.JoinFIO(n.FamilyName, n.GivenName, n.AdditionalName); fio != "" {
			return fio
		}
	}
	return config.FallbackName
}

func cardID(card vcard.Card) int {
	id, err := strconv.Atoi(strings.TrimSpace(card.Value(config.VCardPatientID)))
	if err != nil {
		return 0
	}
	return id
}

// ExportVCards writes patients as vCard 4.0, one card each.
func ExportVCards(w io.Writer, patients []records.Patient) error {
	enc := vcard.NewEncoder(w)
	for _, p := range patients {
		fio := records.SplitFIO(p.FIO)

		card := make(vcard.Card)
		card.SetValue(vcard.FieldVersion, config.VCardVersion)
		card.SetValue(vcard.FieldFormattedName, p.FIO)
		card.SetName(&vcard.Name{
			FamilyName:     fio.Last,
			GivenName:      fio.First,
			AdditionalName: fio.Patronymic,
		})
		if p.DateOfBirth != "" {
			card.SetValue(vcard.FieldBirthday, p.DateOfBirth)
		}
		card.SetValue(config.VCardPatientID, strconv.Itoa(p.ID))

		if err := enc.Encode(card); err != nil {
			return fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
		}
	}
	return nil
}
