package cpu

import (
	"iter"
)

// Symbol is a label bound to an instruction address.
type Symbol struct {
	Label   string
	Address int
}

// SymbolTable maps labels to addresses, preserving definition order.
type SymbolTable struct {
	symbols []Symbol
	index   map[string]int
}

// Insert adds a new label. Redefining a label is an error.
func (st *SymbolTable) Insert(label string, address int) (err error) {
	if prior, ok := st.Lookup(label); ok {
		err = &ErrLabelDuplicate{Label: label, Address: prior}
		return
	}

	if st.index == nil {
		st.index = make(map[string]int, 16)
	}
	st.index[label] = len(st.symbols)
	st.symbols = append(st.symbols, Symbol{Label: label, Address: address})

	return
}

// Lookup returns the address of a label.
func (st *SymbolTable) Lookup(label string) (address int, ok bool) {
	n, ok := st.index[label]
	if ok {
		address = st.symbols[n].Address
	}
	return
}

// Exists returns true if the label is defined.
func (st *SymbolTable) Exists(label string) bool {
	_, ok := st.index[label]
	return ok
}

// Len returns the number of defined labels.
func (st *SymbolTable) Len() int {
	return len(st.symbols)
}

// All iterates over the labels in definition order.
func (st *SymbolTable) All() iter.Seq2[string, int] {
	return func(yield func(label string, address int) bool) {
		for _, sym := range st.symbols {
			if !yield(sym.Label, sym.Address) {
				return
			}
		}
	}
}

// Reset removes all labels.
func (st *SymbolTable) Reset() {
	st.symbols = st.symbols[:0]
	clear(st.index)
}
