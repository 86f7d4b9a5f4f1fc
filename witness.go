package typestatex

// Presence is the state domain of a singular slot that may be assigned at
// most once. Its only states are Unset and Set.
type Presence interface {
	presence()
}

// Cardinality is the state domain of a multi-valued slot. The witness only
// tracks whether at least one value has been added, never the count.
type Cardinality interface {
	cardinality()
}

// Unset is the initial Presence witness.
type Unset struct{}

// Set is the Presence witness of an assigned slot. No transition leaves it.
type Set struct{}

// Empty is the initial Cardinality witness.
type Empty struct{}

// NonEmpty is the Cardinality witness after the first insertion. Further
// insertions keep it.
type NonEmpty struct{}

func (Unset) presence()       {}
func (Set) presence()         {}
func (Empty) cardinality()    {}
func (NonEmpty) cardinality() {}

func (Unset) String() string    { return "Unset" }
func (Set) String() string      { return "Set" }
func (Empty) String() string    { return "Empty" }
func (NonEmpty) String() string { return "NonEmpty" }

// Witness is any marker that can name itself. All witnesses in this module
// satisfy it, including domains declared by other packages.
type Witness interface {
	~struct{}
	String() string
}

// Name returns the name of witness W. It reads no runtime state: the zero
// value of a witness is its only value.
func Name[W Witness]() string {
	var w W
	return w.String()
}

// Ready reports whether presence witness P is Set.
func Ready[P Presence]() bool {
	var p P
	_, ok := any(p).(Set)
	return ok
}

// Filled reports whether cardinality witness C is NonEmpty.
func Filled[C Cardinality]() bool {
	var c C
	_, ok := any(c).(NonEmpty)
	return ok
}
