package models

// Executive has no timestamp: the backend's order is kept as delivered.
type Executive struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Mobile      string `json:"mobile"`
	Designation string `json:"designation"`
	Permission  string `json:"permission"`
	Approved    bool   `json:"approved"`
	Blocked     bool   `json:"blocked"`
}

func (e Executive) RecordID() string { return e.ID }

func (e Executive) SearchFields() []string {
	return []string{e.Name, e.Email, e.Mobile, e.ID}
}

func (e Executive) StatusValue() string {
	switch {
	case e.Blocked:
		return "Blocked"
	case e.Approved:
		return "Approved"
	}
	return "Pending"
}

// Editable reports whether an operator with the given role may change this
// executive: admins always can, others only while it is unapproved or holds
// write permission.
func (e Executive) Editable(operator Role) bool {
	return operator == RoleAdmin || e.Permission == "Write" || e.Permission == "Both" || !e.Approved
}
