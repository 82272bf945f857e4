package configstore

// Status is the outcome tag of a Result.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

// Messages carried in Result.Details.
const (
	MsgValueSet       = "Value has been set"
	MsgSectionCreated = " - Section was created"
	MsgNoValues       = "No values were set"
	MsgSectionMissing = "Section doesn't exist"
	MsgOptionMissing  = "Option doesn't exist"
	MsgRemoved        = "Removed item"
	MsgRemoveMissing  = "Item didn't exist to be removed"
	MsgInvalidAction  = "Invalid action"
	MsgBackupCreated  = "Backup created"
	MsgBackupRestored = "Backup restored"
)

// Result is the uniform outcome of every store operation.
//
// Details holds a message string, or the data the operation returned:
// []string for listings, string for a single value or the raw file, and
// map[string]string for a whole section.
type Result struct {
	Status  Status `json:"status"`
	Details any    `json:"details"`
}

func success(details any) Result {
	return Result{Status: StatusSuccess, Details: details}
}

func failure(msg string) Result {
	return Result{Status: StatusFailure, Details: msg}
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool {
	return r.Status == StatusSuccess
}

// Message returns Details when it is a string, or "" otherwise.
func (r Result) Message() string {
	s, _ := r.Details.(string)
	return s
}

// Strings returns Details when it is a list of names.
func (r Result) Strings() []string {
	ss, _ := r.Details.([]string)
	return ss
}

// Options returns Details when it is a section's option map.
func (r Result) Options() map[string]string {
	m, _ := r.Details.(map[string]string)
	return m
}
