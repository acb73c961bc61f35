package usecase

import (
	"regexp"
	"strings"
)

// Value character classes are preserved from the historical extraction
// patterns: SKU values are word characters only, tag values allow word
// characters, space, dot and @. Widening them would change the grouping
// keys of existing synthesis outputs.
const tagValueClass = `([\w .@]*)`

var reservationTypeRegex = regexp.MustCompile(`^([\w /-]*),`)

// FieldExtractor holds the extraction patterns, compiled once from the
// configured additional-info criteria key and FinOps tag keys.
type FieldExtractor struct {
	criteriaKey string
	skuRegex    *regexp.Regexp
	tagKeys     []string
	tagRegexes  map[string]*regexp.Regexp
	projRegexes map[string]*regexp.Regexp
}

// NewFieldExtractor compiles the extraction patterns for the given
// criteria key and tag keys.
func NewFieldExtractor(criteriaKey string, tagKeys []string) *FieldExtractor {
	e := &FieldExtractor{
		criteriaKey: criteriaKey,
		tagKeys:     tagKeys,
		tagRegexes:  make(map[string]*regexp.Regexp, len(tagKeys)),
		projRegexes: make(map[string]*regexp.Regexp, len(tagKeys)),
	}
	if criteriaKey != "" {
		e.skuRegex = regexp.MustCompile(`"` + regexp.QuoteMeta(criteriaKey) + `":"(\w*)"`)
	}
	for _, key := range tagKeys {
		quoted := regexp.QuoteMeta(key)
		e.tagRegexes[key] = regexp.MustCompile(`"` + quoted + `"\s*:\s*"` + tagValueClass + `"`)
		e.projRegexes[key] = regexp.MustCompile(`'` + quoted + `': '` + tagValueClass + `'`)
	}
	return e
}

// SKU extracts the configured criteria value from the additional-info
// blob. Absent key or non-matching value yields "".
func (e *FieldExtractor) SKU(info string) string {
	if e.skuRegex == nil || !strings.Contains(info, e.criteriaKey) {
		return ""
	}
	m := e.skuRegex.FindStringSubmatch(info)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// ReservationType extracts the leading comma-delimited segment of a
// product order name. Exports embed a non-breaking space between the type
// and the term; it is stripped before matching. Trivial text (3 characters
// or fewer) yields "".
func ReservationType(product string) string {
	product = strings.ReplaceAll(product, "\u00a0", "")
	if len(product) <= 3 {
		return ""
	}
	m := reservationTypeRegex.FindStringSubmatch(product)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// Tags extracts the configured FinOps tags present in the tags blob.
// Only keys actually found appear in the result; absent keys are omitted,
// not defaulted.
func (e *FieldExtractor) Tags(blob string) map[string]string {
	tags := map[string]string{}
	if len(blob) <= 3 {
		return tags
	}
	for _, key := range e.tagKeys {
		if !strings.Contains(blob, key) {
			continue
		}
		m := e.tagRegexes[key].FindStringSubmatch(blob)
		if m == nil {
			continue
		}
		tags[key] = strings.TrimSpace(m[1])
	}
	return tags
}

// SerializeTags renders an extracted tag mapping in the stable
// intermediate form: single-quoted pairs in configured-key order. An empty
// mapping serializes to "", not to the textual empty-mapping form.
func (e *FieldExtractor) SerializeTags(tags map[string]string) string {
	if len(tags) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("{")
	first := true
	for _, key := range e.tagKeys {
		value, ok := tags[key]
		if !ok {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		b.WriteString("'" + key + "': '" + value + "'")
		first = false
	}
	b.WriteString("}")
	return b.String()
}

// ProjectTag re-extracts one key's value from the serialized intermediate
// form. The quoting convention matches SerializeTags exactly; empty input
// or an absent key yields "".
func (e *FieldExtractor) ProjectTag(serialized, key string) string {
	if serialized == "" || !strings.Contains(serialized, key) {
		return ""
	}
	re, ok := e.projRegexes[key]
	if !ok {
		re = regexp.MustCompile(`'` + regexp.QuoteMeta(key) + `': '` + tagValueClass + `'`)
	}
	m := re.FindStringSubmatch(serialized)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
