package schema

import (
	"bytes"
	"encoding/json"
	"sort"
)

// LanguageList is an ordered language distribution. It unmarshals from
// either a JSON array of {name, percentage} records or a flat
// name-to-percentage object, so callers upstream can hand over whichever
// shape their data source produces. Scoring code only ever sees the list.
type LanguageList []Language

// UnmarshalJSON accepts both supported input shapes.
func (l *LanguageList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var byName map[string]float64
		if err := json.Unmarshal(data, &byName); err != nil {
			return err
		}
		*l = NormalizeLanguageMap(byName)
		return nil
	}

	var list []Language
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*l = list
	return nil
}

// NormalizeLanguageMap converts a name-to-value map into an ordered list of
// percentage shares. Values may be percentages or raw byte counts; shares are
// renormalized against the total either way. Map iteration order is not
// stable in Go, so entries are ordered by share descending, then name.
func NormalizeLanguageMap(byName map[string]float64) LanguageList {
	total := 0.0
	for _, v := range byName {
		total += v
	}
	if total == 0 {
		total = 1
	}

	list := make(LanguageList, 0, len(byName))
	for name, v := range byName {
		list = append(list, Language{Name: name, Percentage: v / total * 100})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Percentage != list[j].Percentage {
			return list[i].Percentage > list[j].Percentage
		}
		return list[i].Name < list[j].Name
	})
	return list
}

// Names returns the language names in list order.
func (l LanguageList) Names() []string {
	names := make([]string, len(l))
	for i, lang := range l {
		names[i] = lang.Name
	}
	return names
}

// NameSet returns the set of language names.
func (l LanguageList) NameSet() map[string]struct{} {
	set := make(map[string]struct{}, len(l))
	for _, lang := range l {
		set[lang.Name] = struct{}{}
	}
	return set
}
