package feedback

// Score bounds for every analyzed entity.
const (
	MinScore     = 1
	MaxScore     = 10
	DefaultScore = 5
)

// Request is a validated feedback submission.
type Request struct {
	Message string
}

// Analysis is the structured result extracted from a feedback message.
type Analysis struct {
	Doctor   int    `json:"doctor"`
	Nurse    int    `json:"nurse"`
	Hospital int    `json:"hospital"`
	Notes    string `json:"notes"`
}

// Record is one row of analyzed_feedback. ID and creation time belong to the store.
type Record struct {
	Message       string
	DoctorScore   int
	NurseScore    int
	HospitalScore int
	NotesAnalysis string
}

// NewRecord pairs the original message with its analysis.
func NewRecord(message string, a Analysis) Record {
	return Record{
		Message:       message,
		DoctorScore:   a.Doctor,
		NurseScore:    a.Nurse,
		HospitalScore: a.Hospital,
		NotesAnalysis: a.Notes,
	}
}
