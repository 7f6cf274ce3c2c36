package domain

// CompileRecord is the persisted fingerprint used to decide whether a
// source needs recompiling. One record lives in a `<object>.meta` side-car
// next to the object file it describes.
//
// Change detection is deliberately coarse: modification time plus the
// flattened flag string. Reordering flags produces a different joined
// string and counts as a change; file contents are never hashed.
type CompileRecord struct {
	// SourceFile is the source path relative to the project root.
	SourceFile string
	// ObjectFile is the absolute object file path the source compiles to.
	ObjectFile string
	// CompileFlags is the flattened flag string, possibly empty.
	CompileFlags string
	// SourceTimestamp is the source's modification time token
	// (UnixNano), or 0 if the file did not exist when fingerprinted.
	SourceTimestamp int64
}

// Equal reports structural equality over all four fields. A source needs
// recompilation iff its stored record is absent or not Equal to the
// freshly computed fingerprint.
func (r CompileRecord) Equal(other CompileRecord) bool {
	return r.SourceFile == other.SourceFile &&
		r.ObjectFile == other.ObjectFile &&
		r.CompileFlags == other.CompileFlags &&
		r.SourceTimestamp == other.SourceTimestamp
}
