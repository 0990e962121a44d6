package service

import "fmt"

// pairByIDOrPosition memetakan tiap input ke indeks data tersimpan.
// Jika semua input membawa id, pasangkan lewat id; jika tidak ada yang
// membawa id, pasangkan lewat posisi. Jumlah harus sama dengan data tersimpan.
func pairByIDOrPosition(stored []uint, input []*uint, label string) ([]int, string) {
	if len(input) != len(stored) {
		return nil, fmt.Sprintf("jumlah %s harus sama dengan data tersimpan (%d).", label, len(stored))
	}

	withID := 0
	for _, id := range input {
		if id != nil {
			withID++
		}
	}

	pairs := make([]int, len(input))
	switch withID {
	case 0:
		for i := range input {
			pairs[i] = i
		}
		return pairs, ""
	case len(input):
	default:
		return nil, fmt.Sprintf("id %s harus diisi semua atau dikosongkan semua.", label)
	}

	index := make(map[uint]int, len(stored))
	for i, id := range stored {
		index[id] = i
	}
	used := make(map[int]bool, len(input))
	for k, id := range input {
		i, ok := index[*id]
		if !ok {
			return nil, fmt.Sprintf("id %s %d tidak ditemukan.", label, *id)
		}
		if used[i] {
			return nil, fmt.Sprintf("id %s %d dikirim lebih dari sekali.", label, *id)
		}
		used[i] = true
		pairs[k] = i
	}
	return pairs, ""
}
