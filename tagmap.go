package asn1codec

/*
tagmap.go implements the per-codec tag map registry (component 4.1):
a (class -> tag number -> universal type) table consulted during decode
to interpret non-universal tags. UNIVERSAL tags never need a lookup —
the tag number already is the universal type.
*/

import "sync"

// TagMap resolves non-UNIVERSAL (class, tag number) pairs to a
// universal tag number during decode. A zero-value TagMap is not ready
// for use; construct one with [NewTagMap].
type TagMap struct {
	mu    sync.RWMutex
	table map[TagClass]map[int]int
}

// NewTagMap returns a TagMap preloaded with the default APPLICATION
// mapping specified for LDAP compatibility (spec §6). CONTEXT and
// PRIVATE start empty.
func NewTagMap() *TagMap {
	m := &TagMap{table: map[TagClass]map[int]int{
		ClassApplication: defaultApplicationMap(),
		ClassContext:     {},
		ClassPrivate:     {},
	}}
	return m
}

func defaultApplicationMap() map[int]int {
	m := map[int]int{}
	for _, t := range []int{0, 1, 3, 4, 5, 6, 7, 8, 9, 11, 12, 13, 14, 15, 19, 23, 24, 25} {
		m[t] = TagSequence
	}
	m[2] = TagNull
	m[10] = TagOctetString
	m[16] = TagInteger
	return m
}

// SetTypeMap replaces the mapping for a non-UNIVERSAL class. Passing
// [ClassUniversal] is a no-op error since UNIVERSAL tags are implicit
// and never consult the registry.
func (m *TagMap) SetTypeMap(class TagClass, mapping map[int]int) error {
	if class == ClassUniversal {
		return invalidArgument("cannot override the UNIVERSAL tag map")
	}
	cp := make(map[int]int, len(mapping))
	for k, v := range mapping {
		cp[k] = v
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.table == nil {
		m.table = map[TagClass]map[int]int{}
	}
	m.table[class] = cp
	return nil
}

// resolve returns the universal tag number registered for (class, tag),
// and whether one was found. UNIVERSAL class always resolves to itself.
func (m *TagMap) resolve(class TagClass, tag int) (int, bool) {
	if class == ClassUniversal {
		return tag, true
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	classMap, ok := m.table[class]
	if !ok {
		return 0, false
	}
	u, ok := classMap[tag]
	return u, ok
}
