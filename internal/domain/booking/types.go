package booking

type Status string

const (
	StatusLiberated  Status = "liberated"
	StatusReserved   Status = "reserved"
	StatusOccupied   Status = "occupied"
	StatusCheckedOut Status = "checked-out"
	StatusBlocked    Status = "blocked"
)

// transitions lists the statuses reachable from each status.
// checked-out is terminal.
var transitions = map[Status][]Status{
	StatusLiberated: {StatusReserved, StatusBlocked},
	StatusReserved:  {StatusOccupied, StatusLiberated, StatusBlocked},
	StatusOccupied:  {StatusCheckedOut, StatusBlocked},
	StatusBlocked:   {StatusLiberated, StatusReserved},
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusLiberated, StatusReserved, StatusOccupied, StatusCheckedOut, StatusBlocked:
		return true
	default:
		return false
	}
}

// Holds reports whether a booking in this status occupies its room's dates.
func (s Status) Holds() bool {
	return s != StatusLiberated
}

func (s Status) IsTerminal() bool {
	return s == StatusCheckedOut
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s Status) IsDeletable() bool {
	return s == StatusLiberated || s == StatusReserved
}

// HoldingStatuses is the set used when loading a room's reserved intervals.
func HoldingStatuses() []Status {
	return []Status{StatusReserved, StatusOccupied, StatusCheckedOut, StatusBlocked}
}
