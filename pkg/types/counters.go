package types

// Counters reports the comparison counts left by the most recent search of
// each kind. Reading them never resets them.
type Counters struct {
	ArrayLinear int `json:"array_linear"` // Last sequential search or removal on the array.
	ArrayBinary int `json:"array_binary"` // Last binary search on the array.
	ListLinear  int `json:"list_linear"`  // Last search or removal walk on the list.
}
