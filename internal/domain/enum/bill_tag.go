package enum

// BillTag is a derived classification of a bill used by list filters
// and the dashboard. It is never persisted; it is computed from the
// bill's delivery flags, item completion and delivery date.
type BillTag string

const (
	BillTagAll         BillTag = "All"
	BillTagUndelivered BillTag = "Undelivered"
	BillTagUrgent      BillTag = "Urgent"
	BillTagDone        BillTag = "Done"
)

// IsValid checks if the bill tag is valid
func (t BillTag) IsValid() bool {
	switch t {
	case BillTagAll, BillTagUndelivered, BillTagUrgent, BillTagDone:
		return true
	}
	return false
}

func (t BillTag) String() string {
	return string(t)
}
