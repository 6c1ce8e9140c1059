package roster

// Slot is the coarse half-day classification of a shift by its start time.
type Slot string

const (
	SlotTM Slot = "TM"
	SlotTT Slot = "TT"
)

// DefaultSlotCutoff splits the day: starts before it are TM, the rest TT.
const DefaultSlotCutoff = "14:00"

// Canonical time ranges offered as defaults when assigning a whole slot.
var (
	SlotTMTimes = TimeRange{Start: "08:00", End: "15:00"}
	SlotTTTimes = TimeRange{Start: "14:00", End: "21:00"}
)

type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func TimesForSlot(s Slot) TimeRange {
	if s == SlotTM {
		return SlotTMTimes
	}
	return SlotTTTimes
}

// SlotFromStart classifies a zero-padded "HH:MM" start time. Lexicographic
// comparison equals chronological comparison for valid clock times.
func SlotFromStart(start, cutoff string) Slot {
	if cutoff == "" {
		cutoff = DefaultSlotCutoff
	}
	if start < cutoff {
		return SlotTM
	}
	return SlotTT
}
