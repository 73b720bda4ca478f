package enum

// BillNoMode selects how new bill numbers are allocated.
type BillNoMode string

const (
	// BillNoModeLegacy reads the newest bill and increments its number.
	// Concurrent creates can collide; kept for data compatibility.
	BillNoModeLegacy BillNoMode = "legacy"
	// BillNoModeAtomic allocates from a sequence row inside the create
	// transaction and cannot hand out duplicates.
	BillNoModeAtomic BillNoMode = "atomic"
)

// IsValid checks if the bill number mode is valid
func (m BillNoMode) IsValid() bool {
	return m == BillNoModeLegacy || m == BillNoModeAtomic
}

func (m BillNoMode) String() string {
	return string(m)
}
