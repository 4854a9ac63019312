package person

import (
	"directory/pkg/validation"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// CSVHeader is the first record of every CSV export.
var CSVHeader = []string{ //nolint: gochecknoglobals
	"Name", "Email", "DateOfBirth", "Age", "Gender", "Country", "Address", "ReceiveNewsLetters",
}

// WriteCSV writes the header and then one record per person, in order.
func WriteCSV(w io.Writer, persons []View) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("could not write csv header: %w", err)
	}

	for _, p := range persons {
		if err := cw.Write(csvRecord(p)); err != nil {
			return fmt.Errorf("could not write csv record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("could not flush csv: %w", err)
	}

	return nil
}

func csvRecord(p View) []string {
	var dob, age, country string
	if p.DateOfBirth != nil {
		dob = p.DateOfBirth.Format(validation.DateLayout)
	}
	if p.Age != nil {
		age = strconv.Itoa(*p.Age)
	}
	if p.Country != nil {
		country = *p.Country
	}

	return []string{
		p.Name,
		p.Email,
		dob,
		age,
		p.Gender,
		country,
		p.Address,
		boolText(p.ReceiveNewsLetters),
	}
}

func boolText(b bool) string {
	if b {
		return "True"
	}

	return "False"
}
