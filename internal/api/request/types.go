package request

// SetPenaltyRequest is the request body for selecting a penalty
type SetPenaltyRequest struct {
	Seconds *int `json:"seconds"`
}

// AddPersonRequest is the request body for adding a person
type AddPersonRequest struct {
	Name string `json:"name"`
}

// RecordRequest is the request body for recording a time to a person
type RecordRequest struct {
	Name string `json:"name"`
}
