package cluster

// IDSet is a mutable set of row IDs used while assembling clusters.
type IDSet map[uint]struct{}

func NewIDSet(ids ...uint) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s IDSet) Add(id uint) {
	s[id] = struct{}{}
}

func (s IDSet) Remove(id uint) {
	delete(s, id)
}

func (s IDSet) Has(id uint) bool {
	_, ok := s[id]
	return ok
}

func (s IDSet) Len() int {
	return len(s)
}

// Min returns the smallest ID in the set. The set must not be empty.
func (s IDSet) Min() uint {
	var min uint
	first := true
	for id := range s {
		if first || id < min {
			min = id
			first = false
		}
	}
	return min
}

// PopMin removes and returns the smallest ID in the set. Popping the
// minimum keeps traversal order deterministic within one update run.
func (s IDSet) PopMin() uint {
	min := s.Min()
	delete(s, min)
	return min
}

func (s IDSet) Update(other IDSet) {
	for id := range other {
		s[id] = struct{}{}
	}
}

// IDs returns the members in ascending order.
func (s IDSet) IDs() []uint {
	out := make([]uint, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// Group pairs a ticket ID set with a transaction ID set for cluster assembly.
type Group struct {
	Tickets      IDSet
	Transactions IDSet
}

func NewGroup() Group {
	return Group{Tickets: NewIDSet(), Transactions: NewIDSet()}
}

func (g Group) Update(other Group) {
	g.Tickets.Update(other.Tickets)
	g.Transactions.Update(other.Transactions)
}

func (g Group) HasTickets() bool {
	return len(g.Tickets) > 0
}

func (g Group) HasTransactions() bool {
	return len(g.Transactions) > 0
}

func (g Group) HasItems() bool {
	return g.HasTickets() || g.HasTransactions()
}
