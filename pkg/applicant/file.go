package applicant

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/macropower/scholar/pkg/yaml"
)

const schemaURL = "https://github.com/macropower/scholar/applicants.json"

var ErrNoApplicants = errors.New("no applicants")

// Record is the serialized form of an [Applicant].
type Record struct {
	// Name is the applicant's display name.
	Name string `json:"name" jsonschema:"title=Name"`
	// Extracurriculars lists activity names; they are normalized on load.
	Extracurriculars []string `json:"extracurriculars,omitempty" jsonschema:"title=Extracurriculars"`
	// GPA on a 4.0 scale.
	GPA float64 `json:"gpa,omitempty" jsonschema:"title=GPA"`
	// Income is the household income in dollars.
	Income float64 `json:"income,omitempty" jsonschema:"title=Income"`
	// Awards is the number of awards received.
	Awards int `json:"awards,omitempty" jsonschema:"title=Awards"`
}

// Applicant builds an [Applicant] from r with [New].
func (r Record) Applicant() *Applicant {
	return New(r.Name, r.GPA, r.Income, r.Extracurriculars, r.Awards)
}

// File is the document accepted by [Load].
type File struct {
	Applicants []Record `json:"applicants" jsonschema:"title=Applicants"`
}

var fileValidator = sync.OnceValues(func() (*yaml.Validator, error) {
	schema, err := Schema()
	if err != nil {
		return nil, err
	}

	return yaml.NewValidator(schemaURL, schema)
})

// Schema returns the JSON schema of [File].
func Schema() ([]byte, error) {
	b, err := yaml.NewSchemaGenerator(&File{}).Generate()
	if err != nil {
		return nil, fmt.Errorf("generate applicant schema: %w", err)
	}

	return b, nil
}

// Load reads, validates and decodes an applicant document from r.
func Load(r io.Reader) ([]*Applicant, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read applicants: %w", err)
	}

	return Parse(data)
}

// LoadFile calls [Load] on the file at path.
func LoadFile(path string) ([]*Applicant, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path is user input by design.
	if err != nil {
		return nil, fmt.Errorf("open applicants: %w", err)
	}
	defer f.Close() //nolint:errcheck // Read-only.

	as, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return as, nil
}

// Parse validates data against [Schema] and decodes it.
func Parse(data []byte) ([]*Applicant, error) {
	v, err := fileValidator()
	if err != nil {
		return nil, err
	}

	var raw any
	if err := yaml.NewBytesDecoder(data).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode applicants: %w", yaml.WithSource(err, data))
	}

	if err := v.Validate(raw); err != nil {
		return nil, fmt.Errorf("invalid applicants: %w", yaml.WithSource(err, data))
	}

	var f File
	if err := yaml.NewBytesDecoder(data).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode applicants: %w", yaml.WithSource(err, data))
	}

	if len(f.Applicants) == 0 {
		return nil, ErrNoApplicants
	}

	out := make([]*Applicant, 0, len(f.Applicants))
	for _, rec := range f.Applicants {
		out = append(out, rec.Applicant())
	}

	return out, nil
}
