package remotefeed

// Listing mirrors one entry of the feed's jobs array. Salary stays a raw
// string here; the sync task owns the parsing rules.
type Listing struct {
	Title    string `json:"title"`
	Company  string `json:"company_name"`
	Descr    string `json:"description"`
	Location string `json:"candidate_required_location"`
	Salary   string `json:"salary"`
	Category string `json:"category"`
}
