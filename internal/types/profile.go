package types

// UserProfile holds the reporter identity fields merged into every rendered
// document. All fields are plain strings; empty string is a valid value,
// not a missing one.
type UserProfile struct {
	FullName   string `json:"full_name"`
	Profession string `json:"profession"`
	CNI        string `json:"cni"`
	PPN        string `json:"ppn"`
}
