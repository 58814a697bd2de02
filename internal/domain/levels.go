package domain

// English proficiency levels, ordered.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

var levelOrder = []string{LevelBeginner, LevelIntermediate, LevelAdvanced}

// Direction of a level change, as reported in quiz evaluations.
const (
	LevelChangeProgression  = "progression"
	LevelChangeRetrocession = "retrocession"
)

// IsValidLevel reports whether l is one of the three proficiency levels.
func IsValidLevel(l string) bool {
	return levelRank(l) >= 0
}

func levelRank(l string) int {
	for i, v := range levelOrder {
		if v == l {
			return i
		}
	}
	return -1
}

// NextLevel returns the level one step up, or the same level when already at
// the top.
func NextLevel(l string) string {
	r := levelRank(l)
	if r < 0 || r == len(levelOrder)-1 {
		return l
	}
	return levelOrder[r+1]
}

// PrevLevel returns the level one step down, or the same level when already
// at the bottom.
func PrevLevel(l string) string {
	r := levelRank(l)
	if r <= 0 {
		return l
	}
	return levelOrder[r-1]
}

// AdjacentLevels returns the neighbours of l, nearest first. Used by the
// fallback bank to pad a short topic cell.
func AdjacentLevels(l string) []string {
	var out []string
	if up := NextLevel(l); up != l {
		out = append(out, up)
	}
	if down := PrevLevel(l); down != l {
		out = append(out, down)
	}
	return out
}
