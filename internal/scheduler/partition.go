package scheduler

// colorPartition groups vertex ids by color class. Built once at scheduler
// construction and immutable afterwards, so concurrent reads need no
// synchronization. Within one class no two vertices are adjacent; that is
// the coloring collaborator's contract and is not verified here.
type colorPartition struct {
	classes [][]int
}

// buildPartition buckets vertices 0..numVertices-1 by colorOf, growing the
// class list as new colors appear. An empty graph yields an empty partition.
func buildPartition(numVertices int, colorOf func(v int) int) colorPartition {
	var p colorPartition
	for v := 0; v < numVertices; v++ {
		c := colorOf(v)
		for c >= len(p.classes) {
			p.classes = append(p.classes, nil)
		}
		p.classes[c] = append(p.classes[c], v)
	}
	return p
}

// numClasses returns the number of color classes.
func (p colorPartition) numClasses() int {
	return len(p.classes)
}

// class returns the ordered vertex ids of color class c.
func (p colorPartition) class(c int) []int {
	return p.classes[c]
}

// numVertices returns the total number of vertices across all classes.
func (p colorPartition) numVertices() int {
	total := 0
	for _, class := range p.classes {
		total += len(class)
	}
	return total
}
