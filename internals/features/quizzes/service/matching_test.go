package service

import (
	"reflect"
	"testing"
)

func ids(vs ...uint) []*uint {
	out := make([]*uint, len(vs))
	for i := range vs {
		v := vs[i]
		out[i] = &v
	}
	return out
}

func TestPairByIDOrPosition(t *testing.T) {
	stored := []uint{10, 20, 30}

	tests := []struct {
		name    string
		input   []*uint
		want    []int
		wantErr bool
	}{
		{"positional", []*uint{nil, nil, nil}, []int{0, 1, 2}, false},
		{"by id reordered", ids(30, 10, 20), []int{2, 0, 1}, false},
		{"count mismatch", []*uint{nil, nil}, nil, true},
		{"mixed ids", append(ids(10, 20), nil), nil, true},
		{"unknown id", ids(10, 20, 99), nil, true},
		{"duplicate id", ids(10, 10, 20), nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, msg := pairByIDOrPosition(stored, tt.input, "questions")
			if (msg != "") != tt.wantErr {
				t.Fatalf("msg = %q, wantErr %v", msg, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("pairs = %v, want %v", got, tt.want)
			}
		})
	}
}
