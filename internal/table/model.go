package table

// Table statuses.
const (
	StatusAvailable = "AVAILABLE"
	StatusOccupied  = "OCCUPIED"
	StatusReserved  = "RESERVED"
)

// Table is a physical table orders can be assigned to.
type Table struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Status   string `json:"status"`
}

func ValidStatus(s string) bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusReserved:
		return true
	}
	return false
}
