package intake

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

const (
	CSVMediaType    = "text/csv"
	CSVExtension    = ".csv"
	DefaultMaxBytes = 5 * 1024 * 1024
)

// Candidate is a file offered for intake before validation. Name and
// DeclaredType are compared exactly as given.
type Candidate struct {
	Name         string
	DeclaredType string
	SizeBytes    int64 `validate:"gte=0"`
}

// Validator checks candidates in order: structure, type, then size.
type Validator struct {
	maxBytes int64
	validate *validator.Validate
}

func NewValidator(maxBytes int64) *Validator {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Validator{
		maxBytes: maxBytes,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (v *Validator) MaxBytes() int64 {
	return v.maxBytes
}

func (v *Validator) Check(c Candidate) (File, error) {
	if err := v.validate.Struct(c); err != nil {
		return File{}, errors.Wrap(ErrInvalidCandidate, describeValidation(err))
	}

	// Either a CSV media type or a .csv name is enough.
	if c.DeclaredType != CSVMediaType && !strings.HasSuffix(c.Name, CSVExtension) {
		return File{}, errors.Wrapf(ErrInvalidFileType, "name=%q type=%q", c.Name, c.DeclaredType)
	}
	if c.SizeBytes > v.maxBytes {
		return File{}, errors.Wrapf(ErrFileTooLarge, "size=%d max=%d", c.SizeBytes, v.maxBytes)
	}

	return File{Name: c.Name, DeclaredType: c.DeclaredType, SizeBytes: c.SizeBytes}, nil
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, ", ")
}

func rejectionNotice(err error, maxBytes int64) Notice {
	switch Reason(err) {
	case ReasonInvalidFileType:
		return Notice{Kind: NoticeError, Title: "Invalid file format", Description: "Please upload a CSV file."}
	case ReasonFileTooLarge:
		return Notice{Kind: NoticeError, Title: "File too large", Description: fmt.Sprintf("File size should not exceed %s.", formatMegabytes(maxBytes))}
	default:
		return Notice{Kind: NoticeError, Title: "Invalid file", Description: "The selected file could not be read."}
	}
}

func successNotice(name string) Notice {
	return Notice{Kind: NoticeSuccess, Title: "File uploaded successfully", Description: name + " has been uploaded."}
}

func formatMegabytes(n int64) string {
	const mb = 1024 * 1024
	if n%mb == 0 {
		return fmt.Sprintf("%dMB", n/mb)
	}
	return fmt.Sprintf("%d bytes", n)
}
