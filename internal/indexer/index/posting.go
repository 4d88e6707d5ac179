package index

import "sort"

// Posting is the ascending position list of one word within one location.
type Posting struct {
	Location  string
	Positions []int
}

type PostingList []Posting

// TermEntry is a word together with its postings ordered by location.
type TermEntry struct {
	Word     string
	Postings PostingList
}

// positionSet keeps positions ascending and unique. Documents are scanned in
// order, so the common insert is an append.
type positionSet []int

func (s *positionSet) insert(pos int) {
	ps := *s
	n := len(ps)
	if n == 0 || ps[n-1] < pos {
		*s = append(ps, pos)
		return
	}
	i := sort.SearchInts(ps, pos)
	if i < n && ps[i] == pos {
		return
	}
	ps = append(ps, 0)
	copy(ps[i+1:], ps[i:])
	ps[i] = pos
	*s = ps
}

func (s positionSet) first() int {
	return s[0]
}
