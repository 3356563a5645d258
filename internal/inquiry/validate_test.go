package inquiry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSubmission() Submission {
	return Submission{
		Name:    "Ada Lovelace",
		Company: "Analytical Engines Ltd",
		Email:   "ada@engines.example",
		Phone:   "+44 (20) 7946-0000",
		Package: "Gold",
		BoothID: "G02",
		Consent: true,
	}
}

func TestSubmissionValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		modify func(s *Submission)
		want   []FieldError
	}{
		{
			name:   "valid",
			modify: func(*Submission) {},
		},
		{
			name:   "phone is optional",
			modify: func(s *Submission) { s.Phone = "" },
		},
		{
			name:   "blank name",
			modify: func(s *Submission) { s.Name = "   " },
			want:   []FieldError{{Field: "name", Message: "Name is required."}},
		},
		{
			name:   "missing company",
			modify: func(s *Submission) { s.Company = "" },
			want:   []FieldError{{Field: "company", Message: "Company is required."}},
		},
		{
			name:   "missing email",
			modify: func(s *Submission) { s.Email = "" },
			want:   []FieldError{{Field: "email", Message: "Email is required."}},
		},
		{
			name:   "malformed email",
			modify: func(s *Submission) { s.Email = "ada at engines" },
			want:   []FieldError{{Field: "email", Message: "Please enter a valid email address."}},
		},
		{
			name:   "letters in phone",
			modify: func(s *Submission) { s.Phone = "call me" },
			want:   []FieldError{{Field: "phone", Message: "Please enter a valid phone number."}},
		},
		{
			name:   "unknown package",
			modify: func(s *Submission) { s.Package = "diamond" },
			want:   []FieldError{{Field: "package", Message: "Please make a selection."}},
		},
		{
			name:   "no consent",
			modify: func(s *Submission) { s.Consent = false },
			want:   []FieldError{{Field: "consent", Message: "You must consent to continue."}},
		},
		{
			name: "errors keep field order",
			modify: func(s *Submission) {
				s.Consent = false
				s.Name = ""
			},
			want: []FieldError{
				{Field: "name", Message: "Name is required."},
				{Field: "consent", Message: "You must consent to continue."},
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := validSubmission()
			tc.modify(&s)

			assert.Equal(t, tc.want, s.Validate())
		})
	}
}

func TestValidateUsesFieldLabel(t *testing.T) {
	t.Parallel()

	errs := Validate([]Field{
		{Name: "organization", Label: "Organization", Kind: KindCompany},
		{Name: "notes", Kind: FieldKind(99), Value: ""},
	})

	assert.Equal(t, []FieldError{{Field: "organization", Message: "Organization is required."}}, errs)
}
