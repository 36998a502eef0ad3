package ai

// Candidate is the excerpt of a directory record shown to the model
// during re-ranking. Index is the caller's identifier for the record and
// is what the model is asked to echo back.
type Candidate struct {
	// Index is the stable identifier of the record in the caller's
	// candidate set.
	Index int

	// Name is the employee's display name.
	Name string

	// JobTitle is the employee's role.
	JobTitle string

	// Bio is the employee's free-text biography.
	Bio string

	// Skills is the employee's comma-separated skill list.
	Skills string
}
