package fragment

import (
	"strings"
)

// EpisodeFilename derives the base filename (without extension) for an
// episode: the number itself, or "0-" plus the aired date without hyphens
// for episode 0. source names the episode in errors.
func EpisodeFilename(source string, episode *Object) (name string, number float64, err error) {
	num := FieldOf(episode, "number")
	if !num.IsNumber() {
		return "", 0, &MissingFieldError{Source: source, Field: "number"}
	}
	if num.Num != 0 {
		return FormatNumber(num.Num), num.Num, nil
	}

	aired := FieldOf(episode, "aired")
	if !aired.IsString() {
		return "", 0, &MissingFieldError{Source: source, Field: "aired"}
	}
	if strings.ContainsAny(aired.Str, `/\`) {
		return "", 0, &InvalidFieldError{Source: source, Field: "aired", Reason: "contains a path separator"}
	}
	return "0-" + strings.ReplaceAll(aired.Str, "-", ""), 0, nil
}

// Allocator hands out episode filenames that are unique within one split
// run.
type Allocator struct {
	taken map[string]bool
}

// NewAllocator returns an allocator with nothing taken.
func NewAllocator() *Allocator {
	return &Allocator{taken: make(map[string]bool)}
}

// Allocate claims name, or the first free collision variant of it.
//
// On collision the part after the first "-" is read as a counter (1 when it
// is absent or not a number, otherwise incremented) and the candidate
// becomes "<number>-<counter>". The counter is rebuilt from number alone, so
// a date-based "0-20200101" continues as "0-20200102" and any other suffix
// is dropped.
func (a *Allocator) Allocate(name string, number float64) (string, error) {
	for a.taken[name] {
		count := 1.0
		parts := strings.Split(name, "-")
		if len(parts) > 1 {
			if n, ok := ParseNumber(parts[1]); ok {
				count = n + 1
			}
		}
		next := FormatNumber(number) + "-" + FormatNumber(count)
		if next == name {
			return "", &CollisionError{Name: name}
		}
		name = next
	}
	a.taken[name] = true
	return name, nil
}
