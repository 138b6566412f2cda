package fragment

import (
	"regexp"
)

// titlePattern matches "<name>（<name:zh>）" with full-width parentheses.
var titlePattern = regexp.MustCompile(`^(.+)（(.+)）$`)

// SplitTitle splits a composite title into its name and Chinese name.
func SplitTitle(title string) (name, nameZh string, ok bool) {
	m := titlePattern.FindStringSubmatch(title)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// RenameTitle returns episode with its "title" member replaced, in place, by
// "name" and "name:zh". ok is false when the title is missing, not a string,
// or not of the composite form; episode is then returned unchanged.
func RenameTitle(episode *Object) (renamed *Object, ok bool, err error) {
	title := FieldOf(episode, "title")
	if !title.IsString() {
		return episode, false, nil
	}
	name, nameZh, ok := SplitTitle(title.Str)
	if !ok {
		return episode, false, nil
	}

	nameRaw, err := marshalString(name)
	if err != nil {
		return nil, false, err
	}
	nameZhRaw, err := marshalString(nameZh)
	if err != nil {
		return nil, false, err
	}

	renamed, _ = episode.Replace("title",
		Member{Key: "name", Value: nameRaw},
		Member{Key: "name:zh", Value: nameZhRaw},
	)
	return renamed, true, nil
}
