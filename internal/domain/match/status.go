package match

import "fmt"

// Provider status codes for a football match.
const (
	StatusAbnormal        = 0
	StatusNotStarted      = 1
	StatusFirstHalf       = 2
	StatusHalfTime        = 3
	StatusSecondHalf      = 4
	StatusOvertime        = 5
	StatusOvertimeLegacy  = 6
	StatusPenaltyShootout = 7
	StatusEnded           = 8
	StatusDelayed         = 9
	StatusInterrupted     = 10
	StatusCutInHalf       = 11
	StatusCancelled       = 12
	StatusToBeDetermined  = 13
)

var statusNames = map[int]string{
	StatusAbnormal:        "Abnormal",
	StatusNotStarted:      "Not started",
	StatusFirstHalf:       "First half",
	StatusHalfTime:        "Half-time",
	StatusSecondHalf:      "Second half",
	StatusOvertime:        "Overtime",
	StatusOvertimeLegacy:  "Overtime (deprecated)",
	StatusPenaltyShootout: "Penalty Shoot-out",
	StatusEnded:           "End",
	StatusDelayed:         "Delay",
	StatusInterrupted:     "Interrupt",
	StatusCutInHalf:       "Cut in half",
	StatusCancelled:       "Cancel",
	StatusToBeDetermined:  "To be determined",
}

// statusRanks orders in-play phases for display; anything else sorts last.
var statusRanks = map[int]int{
	StatusFirstHalf:       1,
	StatusHalfTime:        2,
	StatusSecondHalf:      3,
	StatusOvertime:        4,
	StatusOvertimeLegacy:  5,
	StatusPenaltyShootout: 6,
}

// DescribeStatus renders a status code for match summaries.
func DescribeStatus(id int) string {
	if name, ok := statusNames[id]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (%d)", id)
}

// DescribeStatusDetailed renders a status code for operator-facing reports.
// Abnormal matches carry a hint that downstream displays should hide them.
func DescribeStatusDetailed(id int) string {
	if id == StatusAbnormal {
		return "Abnormal (suggest hiding)"
	}
	if name, ok := statusNames[id]; ok {
		return name
	}
	return fmt.Sprintf("Unknown Status (ID: %d)", id)
}

// StatusRank returns the display ordering of an in-play status. Codes outside
// the in-play range rank 99 so they fall to the end of any sorted group.
func StatusRank(id int) int {
	if rank, ok := statusRanks[id]; ok {
		return rank
	}
	return 99
}

// IsInPlay reports whether the clock is running on the match. The deprecated
// overtime code is excluded here; summaries never flag it as in play.
func IsInPlay(id int) bool {
	switch id {
	case StatusFirstHalf, StatusHalfTime, StatusSecondHalf, StatusOvertime, StatusPenaltyShootout:
		return true
	default:
		return false
	}
}

// IsLive reports whether the match belongs in a live listing. Unlike
// IsInPlay this accepts the deprecated overtime code, which some feeds
// still emit.
func IsLive(id int) bool {
	return id == StatusOvertimeLegacy || IsInPlay(id)
}
