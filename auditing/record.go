package auditing

// Record is an insertion-ordered set of string fields. Setting an existing
// key overwrites its value without moving it, so log lines render the same
// fields in the same positions every time.
type Record struct {
	keys   []string
	values map[string]string
}

// NewRecord creates an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[string]string)}
}

// Set stores value under key, appending the key if it is new.
func (r *Record) Set(key, value string) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value for key and whether the key is present.
func (r *Record) Get(key string) (string, bool) {
	value, ok := r.values[key]
	return value, ok
}

// Has reports whether key is present.
func (r *Record) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.keys)
}

// Keys returns the field names in insertion order.
func (r *Record) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Merge appends every field of other onto r, keeping other's order.
func (r *Record) Merge(other *Record) {
	for _, key := range other.keys {
		r.Set(key, other.values[key])
	}
}
