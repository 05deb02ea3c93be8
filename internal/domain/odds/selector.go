package odds

import (
	"math"
	"strings"

	"github.com/riskibarqy/match-center/internal/platform/payload"
)

// Window bounds for the representative snapshot, in match minutes.
const (
	windowStart   = 3
	windowEnd     = 6
	fallbackLimit = 10
	windowCenter  = 4.5
)

// SelectWindow picks the representative snapshots from one market's time
// series. All entries whose minute falls in [3,6] win; failing that, the
// single entry under minute 10 closest to 4.5 (first occurrence breaks
// ties); failing that, nothing. Entries whose minute marker has no leading
// integer are discarded up front.
func SelectWindow(entries []any) []Entry {
	type timed struct {
		minute int
		entry  Entry
	}

	parsed := make([]timed, 0, len(entries))
	for _, item := range entries {
		entry := payload.List(item)
		if len(entry) < 2 {
			continue
		}
		minute, ok := payload.LeadingInt(entry[1])
		if !ok {
			continue
		}
		parsed = append(parsed, timed{minute: minute, entry: entry})
	}

	var inWindow []Entry
	for _, p := range parsed {
		if p.minute >= windowStart && p.minute <= windowEnd {
			inWindow = append(inWindow, p.entry)
		}
	}
	if len(inWindow) > 0 {
		return inWindow
	}

	var best Entry
	bestDistance := math.Inf(1)
	for _, p := range parsed {
		if p.minute >= fallbackLimit {
			continue
		}
		distance := math.Abs(float64(p.minute) - windowCenter)
		if distance < bestDistance {
			bestDistance = distance
			best = p.entry
		}
	}
	if best == nil {
		return nil
	}
	return []Entry{best}
}

// Resolve builds the full odds block for one merged match object. Markets
// without a usable snapshot stay nil; the raw series is always carried.
func Resolve(m payload.Object) Resolved {
	raw := payload.Map(m["odds"])
	if raw == nil {
		raw = payload.Object{}
	}

	resolved := Resolved{
		BothTeamsToScore: map[string]any{},
		OverUnder:        map[string]OverUnderLine{},
		Raw:              raw,
	}

	if entry := firstSelected(raw[MarketFullTimeResult]); entry != nil {
		resolved.FullTimeResult = &FullTimeResult{
			Home:      entry[2],
			Draw:      entry[3],
			Away:      entry[4],
			Timestamp: entry[0],
			MatchTime: entry[1],
		}
	}

	if entry := firstSelected(raw[MarketSpread]); entry != nil {
		resolved.Spread = &Spread{
			Handicap:  entry[3],
			Home:      entry[2],
			Away:      entry[4],
			Timestamp: entry[0],
			MatchTime: entry[1],
		}
	}

	for _, entry := range SelectWindow(payload.List(raw[MarketOverUnder])) {
		if len(entry) < 5 {
			continue
		}
		key := payload.String(entry[3])
		if key == "" {
			continue
		}
		line := OverUnderLine{
			Line:      entry[3],
			Over:      entry[2],
			Under:     entry[4],
			Timestamp: entry[0],
			MatchTime: entry[1],
		}
		if _, exists := resolved.OverUnder[key]; !exists {
			resolved.OverUnder[key] = line
		}
		if resolved.PrimaryOverUnder == nil {
			primary := line
			resolved.PrimaryOverUnder = &primary
		}
	}

	resolveBothTeamsToScore(m, &resolved)
	return resolved
}

// firstSelected returns the first window snapshot with all five positional
// slots, or nil.
func firstSelected(series any) Entry {
	for _, entry := range SelectWindow(payload.List(series)) {
		if len(entry) >= 5 {
			return entry
		}
		break
	}
	return nil
}

func resolveBothTeamsToScore(m payload.Object, resolved *Resolved) {
	markets := payload.List(payload.Map(m["betting"])["markets"])
	for _, item := range markets {
		market := payload.Map(item)
		if payload.String(market["name"]) != "Both Teams to Score" {
			continue
		}
		for _, rawSelection := range payload.List(market["selections"]) {
			selection := payload.Map(rawSelection)
			name := strings.ToLower(payload.String(selection["name"]))
			if name == "yes" || name == "no" {
				resolved.BothTeamsToScore[name] = selection["odds"]
			}
		}
	}
}
