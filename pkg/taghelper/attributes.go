package taghelper

// Attribute is a single name/value pair on an element. Values are stored
// unescaped.
type Attribute struct {
	Name  string
	Value string
}

// Attributes keeps element attributes in document order.
type Attributes []Attribute

// Get returns the value of the first attribute with the given name.
func (a Attributes) Get(name string) (string, bool) {
	key := normalizeName(name)
	for _, attr := range a {
		if normalizeName(attr.Name) == key {
			return attr.Value, true
		}
	}
	return "", false
}

// Has reports whether the attribute is present.
func (a Attributes) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Set replaces the first attribute with the given name or appends a new one.
func (a *Attributes) Set(name, value string) {
	key := normalizeName(name)
	for idx, attr := range *a {
		if normalizeName(attr.Name) == key {
			(*a)[idx].Value = value
			return
		}
	}
	*a = append(*a, Attribute{Name: name, Value: value})
}

// Remove deletes every attribute with the given name and reports whether any
// were removed.
func (a *Attributes) Remove(name string) bool {
	key := normalizeName(name)
	kept := (*a)[:0]
	removed := false
	for _, attr := range *a {
		if normalizeName(attr.Name) == key {
			removed = true
			continue
		}
		kept = append(kept, attr)
	}
	*a = kept
	return removed
}

// Clone returns an independent copy.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	out := make(Attributes, len(a))
	copy(out, a)
	return out
}
