package path

import (
	"container/heap"
	"math"
)

// DijkstraSource describes the graph searched by Dijkstra.
type DijkstraSource[T any] interface {
	GetNeighbors(node T) []T
	GetCost(currentNode T, neighbor T) float64
}

// Dijkstra explores the graph from source and returns the cost of every node
// reachable within maxCost, together with each node's predecessor.
func Dijkstra[T comparable](source T, maxCost float64, dataSource DijkstraSource[T]) (dist map[T]float64, prev map[T]T) {
	dist = make(map[T]float64)
	prev = make(map[T]T)
	existingNodes := make(map[T]*PqItem[T])
	dist[source] = 0
	getDist := func(n T) float64 {
		if d, ok := dist[n]; ok {
			return d
		}
		return math.MaxFloat64
	}

	sourceNode := NewNode(source)
	existingNodes[source] = sourceNode
	Q := NewPriorityQueue([]*PqItem[T]{sourceNode})
	for Q.Len() > 0 {
		currentNode := heap.Pop(&Q).(*PqItem[T])
		current := currentNode.GetValue()
		if currentNode.GetPriority() > getDist(current) {
			continue
		}
		for _, neighbor := range dataSource.GetNeighbors(current) {
			neighborDist := getDist(current) + dataSource.GetCost(current, neighbor)
			if neighborDist > maxCost || neighborDist >= getDist(neighbor) {
				continue
			}
			dist[neighbor] = neighborDist
			prev[neighbor] = current
			if existingNode, ok := existingNodes[neighbor]; ok && existingNode.GetIndex() >= 0 {
				Q.update(existingNode, neighborDist)
				continue
			}
			neighborNode := NewNode(neighbor)
			neighborNode.SetPriority(neighborDist)
			existingNodes[neighbor] = neighborNode
			heap.Push(&Q, neighborNode)
		}
	}
	return
}

// PathTo walks the predecessors back from target. It returns nil when target
// was not reached; the path includes both ends.
func PathTo[T comparable](prev map[T]T, source, target T) []T {
	if source == target {
		return []T{source}
	}
	if _, ok := prev[target]; !ok {
		return nil
	}
	reversed := []T{target}
	for current := target; current != source; {
		current = prev[current]
		reversed = append(reversed, current)
	}
	result := make([]T, len(reversed))
	for i, node := range reversed {
		result[len(reversed)-1-i] = node
	}
	return result
}
